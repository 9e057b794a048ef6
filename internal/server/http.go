package server

import (
	"context"
	"net/http"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/triviaworks/trivia-api/internal/config"
	"github.com/triviaworks/trivia-api/internal/trivia"
)

// NewHTTPServer wires the trivia endpoints plus base routes (health,
// metrics) behind the shared middleware chain.
func NewHTTPServer(cfg *config.App, logger zerolog.Logger, pool *pgxpool.Pool, redisClient *redis.Client, handlers *trivia.HTTPHandlers) *http.Server {
	mux := http.NewServeMux()

	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if err := pingDependencies(r.Context(), pool, redisClient); err != nil {
			logger.Error().Err(err).Msg("dependency ping failed")
			w.WriteHeader(http.StatusBadGateway)
			_, _ = w.Write([]byte(`{"status":"degraded"}`))
			return
		}
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})

	mux.Handle("/metrics", promhttp.Handler())

	mux.HandleFunc("/categories", handlers.HandleCategories)
	mux.HandleFunc("/categories/{id}/questions", handlers.HandleQuestionsByCategory)
	mux.HandleFunc("/questions", handlers.HandleQuestions)
	mux.HandleFunc("/questions/{id}", handlers.HandleDeleteQuestion)
	mux.HandleFunc("/search_question", handlers.HandleSearch)
	mux.HandleFunc("/quizzes", handlers.HandleQuiz)

	var handler http.Handler = mux
	handler = metricsMiddleware(handler)
	handler = requestLogMiddleware(logger, handler)
	handler = corsMiddleware(cfg.CORS, handler)

	return &http.Server{
		Addr:    cfg.HTTPAddr,
		Handler: handler,
	}
}

func pingDependencies(ctx context.Context, pool *pgxpool.Pool, redisClient *redis.Client) error {
	if err := pool.Ping(ctx); err != nil {
		return err
	}
	return redisClient.Ping(ctx).Err()
}
