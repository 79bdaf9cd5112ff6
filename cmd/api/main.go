package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/passforge/passforge-go/internal/analyzer"
	"github.com/passforge/passforge-go/internal/config"
	"github.com/passforge/passforge-go/internal/middleware"
	"github.com/passforge/passforge-go/internal/server"
	"github.com/redis/go-redis/v9"
)

func main() {
	if err := godotenv.Load(); err != nil {
		slog.Warn("no .env file found, using environment variables")
	}

	cfg := config.Load()

	opts := server.Options{
		AnalyzeRatePerSec: cfg.AnalyzeRatePerSec,
		AnalyzeBurst:      cfg.AnalyzeBurst,
		TrustProxyHeaders: cfg.TrustProxyHeaders,
	}

	if cfg.AnalyzerEnabled() {
		llm, err := analyzer.NewOpenAICompleter(analyzer.Settings{
			Model:   cfg.OpenAIModel,
			APIKey:  cfg.OpenAIAPIKey,
			BaseURL: cfg.OpenAIBaseURL,
		})
		if err != nil {
			slog.Error("invalid analyzer settings", "error", err)
			os.Exit(1)
		}
		opts.Analyzer = analyzer.New(llm)
	} else {
		slog.Warn("OPENAI_API_KEY not set, strength analysis disabled")
	}

	// A shared Redis bucket keeps the model budget global across replicas.
	if cfg.RedisURL != "" {
		redisOpts, err := redis.ParseURL(cfg.RedisURL)
		if err != nil {
			slog.Error("invalid REDIS_URL", "error", err)
			os.Exit(1)
		}
		rdb := redis.NewClient(redisOpts)
		defer rdb.Close()

		pingCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		if err := rdb.Ping(pingCtx).Err(); err != nil {
			slog.Warn("redis ping failed, limiter fails open until it recovers", "error", err)
		}
		cancel()

		bucket := middleware.NewRedisTokenBucket(rdb, "passforge:analyze", cfg.AnalyzeRatePerSec, cfg.AnalyzeBurst,
			middleware.ClientKey(cfg.TrustProxyHeaders))
		opts.AnalyzeLimiter = bucket.Middleware
	}

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           server.NewRouter(opts),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		slog.Info("server starting", "port", cfg.Port, "env", cfg.Env)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("server forced shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("server stopped")
}
