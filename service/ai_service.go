package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	openai "github.com/sashabaranov/go-openai"
	"golang.org/x/time/rate"
)

const systemPrompt = "You are Zara, a friendly UAE mortgage advisor helping expats understand " +
	"mortgages. The numbers you are given were computed deterministically and are " +
	"authoritative: present them in natural language, do NOT recompute, re-derive or " +
	"adjust them. Respond concisely and explain the calculations in plain words."

// Narrator is the narrow boundary to the natural-language collaborator.
// Implementations never let provider response shapes leak past Generate.
type Narrator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// AIServiceConfig configures the LLM adapter. BaseURL switches provider:
// Groq and Gemini both expose OpenAI-compatible endpoints, so a single
// adapter covers all three.
type AIServiceConfig struct {
	APIKey      string  `mapstructure:"api_key"`
	BaseURL     string  `mapstructure:"base_url"`
	Model       string  `mapstructure:"model"`
	MaxRetries  int     `mapstructure:"max_retries"`
	RequestsSec float64 `mapstructure:"requests_per_second"`
	Timeout     time.Duration
}

const defaultModel = "gpt-4o-mini"

func DefaultAIServiceConfig() AIServiceConfig {
	return AIServiceConfig{
		Model:       defaultModel,
		MaxRetries:  3,
		RequestsSec: 3,
		Timeout:     30 * time.Second,
	}
}

type AIService struct {
	client  *openai.Client
	cfg     AIServiceConfig
	limiter *rate.Limiter
	enabled bool
	logger  zerolog.Logger

	// sleep is swapped out in tests to avoid real backoff waits.
	sleep func(time.Duration)
}

func NewAIService(cfg AIServiceConfig, logger zerolog.Logger) *AIService {
	if cfg.Model == "" {
		cfg.Model = defaultModel
	}
	if cfg.MaxRetries <= 0 {
		cfg.MaxRetries = 3
	}
	if cfg.RequestsSec <= 0 {
		cfg.RequestsSec = 3
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 30 * time.Second
	}

	clientCfg := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		clientCfg.BaseURL = cfg.BaseURL
	}

	return &AIService{
		client:  openai.NewClientWithConfig(clientCfg),
		cfg:     cfg,
		limiter: rate.NewLimiter(rate.Limit(cfg.RequestsSec), 5),
		enabled: cfg.APIKey != "",
		logger:  logger,
		sleep:   time.Sleep,
	}
}

// Generate asks the LLM to phrase the given prompt. Transient failures
// are retried a bounded number of times with a doubling backoff starting
// at 2 seconds; the caller falls back to a deterministic template when
// this returns an error.
func (s *AIService) Generate(ctx context.Context, prompt string) (string, error) {
	if !s.enabled {
		return "", ErrNarratorDisabled
	}

	var lastErr error
	backoff := 2 * time.Second

	for attempt := 1; attempt <= s.cfg.MaxRetries; attempt++ {
		if err := s.limiter.Wait(ctx); err != nil {
			return "", err
		}

		attemptCtx, cancel := context.WithTimeout(ctx, s.cfg.Timeout)
		resp, err := s.client.CreateChatCompletion(attemptCtx, openai.ChatCompletionRequest{
			Model: s.cfg.Model,
			Messages: []openai.ChatCompletionMessage{
				{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
				{Role: openai.ChatMessageRoleUser, Content: prompt},
			},
			Temperature: 0.2,
		})
		cancel()

		if err == nil && len(resp.Choices) > 0 {
			return resp.Choices[0].Message.Content, nil
		}
		if err == nil {
			err = fmt.Errorf("no choices in response")
		}
		lastErr = err

		s.logger.Warn().Err(err).Int("attempt", attempt).Msg("LLM call failed")

		if attempt < s.cfg.MaxRetries {
			if ctx.Err() != nil {
				return "", ctx.Err()
			}
			s.sleep(backoff)
			backoff *= 2
		}
	}

	return "", fmt.Errorf("%w: %d attempts failed, last error: %v",
		ErrNarratorUnavailable, s.cfg.MaxRetries, lastErr)
}
