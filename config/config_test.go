package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Server.Addr)
	assert.Equal(t, 10*time.Second, cfg.Server.ShutdownTimeout)
	assert.Equal(t, "", cfg.Redis.Addr)
	assert.Equal(t, 0.80, cfg.Policy.MaxLoanToValue)
	assert.Equal(t, 0.20, cfg.Policy.MinDownPaymentRatio)
	assert.Equal(t, 4.5, cfg.Policy.StandardAnnualRatePercent)
	assert.Equal(t, 25, cfg.Policy.MaxTenureYears)
	assert.Equal(t, 40.0, cfg.Policy.MaxEMIPercentOfIncome)
	assert.Equal(t, 100_000.0, cfg.Extractor.RentCeiling)
	assert.Contains(t, cfg.Extractor.PriceKeywords, "aed")
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Setenv("MORTGAGE_SERVER_ADDR", ":9090")
	t.Setenv("MORTGAGE_LLM_API_KEY", "test-key")
	t.Setenv("MORTGAGE_REDIS_ADDR", "localhost:6379")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.Server.Addr)
	assert.Equal(t, "test-key", cfg.LLM.APIKey)
	assert.Equal(t, "localhost:6379", cfg.Redis.Addr)
}

func TestLoad_FileOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := []byte(`
server:
  addr: ":7070"
policy:
  rent_tolerance_percent: 15
`)
	require.NoError(t, os.WriteFile(path, content, 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, ":7070", cfg.Server.Addr)
	assert.Equal(t, 15.0, cfg.Policy.RentTolerancePercent)
	// untouched keys keep their defaults
	assert.Equal(t, 0.07, cfg.Policy.UpfrontCostRatio)
}

func TestLoad_MissingFileErrors(t *testing.T) {
	_, err := Load("/does/not/exist.yaml")
	assert.Error(t, err)
}
