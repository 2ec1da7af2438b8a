package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"

	"mortgage-agent/service"
)

type ServerConfig struct {
	Addr            string        `mapstructure:"addr"`
	ReadTimeout     time.Duration `mapstructure:"read_timeout"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout"`
	IdleTimeout     time.Duration `mapstructure:"idle_timeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
	RateLimit       int           `mapstructure:"rate_limit"`
	RateWindow      time.Duration `mapstructure:"rate_window"`
}

type RedisConfig struct {
	// Addr empty means sessions live in process memory.
	Addr       string        `mapstructure:"addr"`
	SessionTTL time.Duration `mapstructure:"session_ttl"`
}

type Config struct {
	Server    ServerConfig            `mapstructure:"server"`
	Redis     RedisConfig             `mapstructure:"redis"`
	LLM       service.AIServiceConfig `mapstructure:"llm"`
	Policy    service.Policy          `mapstructure:"policy"`
	Extractor service.ExtractorConfig `mapstructure:"extractor"`
}

// Load reads configuration from an optional yaml file and the MORTGAGE_*
// environment (MORTGAGE_LLM_API_KEY, MORTGAGE_REDIS_ADDR, ...), on top of
// the built-in defaults.
func Load(path string) (*Config, error) {
	v := viper.New()

	setDefaults(v)

	v.SetEnvPrefix("MORTGAGE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.addr", ":8080")
	v.SetDefault("server.read_timeout", 15*time.Second)
	v.SetDefault("server.write_timeout", 15*time.Second)
	v.SetDefault("server.idle_timeout", 60*time.Second)
	v.SetDefault("server.shutdown_timeout", 10*time.Second)
	v.SetDefault("server.rate_limit", 20)
	v.SetDefault("server.rate_window", time.Minute)

	v.SetDefault("redis.addr", "")
	v.SetDefault("redis.session_ttl", 24*time.Hour)

	llm := service.DefaultAIServiceConfig()
	v.SetDefault("llm.api_key", "")
	v.SetDefault("llm.base_url", "")
	v.SetDefault("llm.model", llm.Model)
	v.SetDefault("llm.max_retries", llm.MaxRetries)
	v.SetDefault("llm.requests_per_second", llm.RequestsSec)
	v.SetDefault("llm.timeout", llm.Timeout)

	policy := service.DefaultPolicy()
	v.SetDefault("policy.max_loan_to_value", policy.MaxLoanToValue)
	v.SetDefault("policy.min_down_payment_ratio", policy.MinDownPaymentRatio)
	v.SetDefault("policy.upfront_cost_ratio", policy.UpfrontCostRatio)
	v.SetDefault("policy.standard_annual_rate_percent", policy.StandardAnnualRatePercent)
	v.SetDefault("policy.max_tenure_years", policy.MaxTenureYears)
	v.SetDefault("policy.short_stay_threshold_years", policy.ShortStayThresholdYears)
	v.SetDefault("policy.long_stay_threshold_years", policy.LongStayThresholdYears)
	v.SetDefault("policy.annual_maintenance_ratio", policy.AnnualMaintenanceRatio)
	v.SetDefault("policy.rent_tolerance_percent", policy.RentTolerancePercent)
	v.SetDefault("policy.max_emi_percent_of_income", policy.MaxEMIPercentOfIncome)

	extractor := service.DefaultExtractorConfig()
	v.SetDefault("extractor.income_keywords", extractor.IncomeKeywords)
	v.SetDefault("extractor.price_keywords", extractor.PriceKeywords)
	v.SetDefault("extractor.rent_keywords", extractor.RentKeywords)
	v.SetDefault("extractor.stay_keywords", extractor.StayKeywords)
	v.SetDefault("extractor.down_payment_keywords", extractor.DownPaymentKeywords)
	v.SetDefault("extractor.rent_ceiling", extractor.RentCeiling)
}
