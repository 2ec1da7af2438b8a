package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"
)

type RouterDeps struct {
	Chat     *ChatHandler
	Mortgage *MortgageHandler
	Feedback *FeedbackHandler
	Limiter  *RateLimiter
}

// NewRouter wires every endpoint behind the per-IP rate limiter and a
// request-scoped logger.
func NewRouter(logger zerolog.Logger, deps RouterDeps) *chi.Mux {
	router := chi.NewRouter()

	router.Use(requestLogger(logger))
	router.Use(middleware.Recoverer)

	router.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	router.Group(func(r chi.Router) {
		r.Use(RateLimitMiddleware(deps.Limiter))

		r.Post("/chat", deps.Chat.Chat)
		r.Post("/mortgage/affordability", deps.Mortgage.Affordability)
		r.Post("/mortgage/emi", deps.Mortgage.MonthlyInstallment)
		r.Post("/mortgage/evaluate", deps.Mortgage.Evaluate)
		r.Post("/feedback", deps.Feedback.Record)
	})

	return router
}

func requestLogger(logger zerolog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			reqLogger := logger.With().
				Str("method", r.Method).
				Str("path", r.URL.Path).
				Str("remote_ip", r.RemoteAddr).
				Logger()

			ctx := reqLogger.WithContext(r.Context())
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
