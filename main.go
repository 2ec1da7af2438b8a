package main

import (
	"context"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"

	"mortgage-agent/config"
	httpLayer "mortgage-agent/http"
	"mortgage-agent/repository"
	"mortgage-agent/service"
)

func main() {
	cfgPath := flag.String("config", "", "path to an optional yaml config file")
	flag.Parse()

	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to load configuration")
	}

	var sessions repository.SessionRepository
	if cfg.Redis.Addr != "" {
		sessions = repository.NewSessionRepositoryRedis(cfg.Redis.Addr, cfg.Redis.SessionTTL)
		logger.Info().Str("addr", cfg.Redis.Addr).Msg("using redis session store")
	} else {
		sessions = repository.NewSessionRepositoryMemory()
		logger.Info().Msg("using in-memory session store")
	}

	calculations := repository.NewCalculationRepositoryMemory()

	mortgageService := service.NewMortgageService(cfg.Policy, calculations, logger)
	decisionService := service.NewDecisionService(cfg.Policy, mortgageService, logger)
	extractorService := service.NewExtractorService(cfg.Extractor)
	narrator := service.NewAIService(cfg.LLM, logger)
	advisorService := service.NewAdvisorService(
		extractorService, decisionService, sessions, narrator, logger)
	feedbackService := service.NewFeedbackService(sessions)

	rateLimiter := httpLayer.NewRateLimiter(cfg.Server.RateLimit, cfg.Server.RateWindow)
	defer rateLimiter.Stop()

	router := httpLayer.NewRouter(logger, httpLayer.RouterDeps{
		Chat:     httpLayer.NewChatHandler(advisorService),
		Mortgage: httpLayer.NewMortgageHandler(mortgageService, advisorService),
		Feedback: httpLayer.NewFeedbackHandler(feedbackService),
		Limiter:  rateLimiter,
	})

	server := &http.Server{
		Addr:         cfg.Server.Addr,
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	serverErr := make(chan error, 1)
	go func() {
		logger.Info().Str("addr", cfg.Server.Addr).Msg("mortgage advisor API listening")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErr <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErr:
		logger.Error().Err(err).Msg("server failed to start")
		return
	case <-quit:
		logger.Info().Msg("shutting down server")
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		logger.Error().Err(err).Msg("error during server shutdown")
	}

	logger.Info().Msg("server exited")
}
