package main

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/hollis-cloud/resumerag/internal/config"
	dbRedis "github.com/hollis-cloud/resumerag/internal/db/redis"
	"github.com/hollis-cloud/resumerag/internal/domain"
	"github.com/hollis-cloud/resumerag/internal/extract"
	logpkg "github.com/hollis-cloud/resumerag/internal/logger"
	"github.com/hollis-cloud/resumerag/internal/metrics"
	corpusrepo "github.com/hollis-cloud/resumerag/internal/repository/corpus"
	"github.com/hollis-cloud/resumerag/internal/repository/embcache"
	chiTransport "github.com/hollis-cloud/resumerag/internal/transport/chi"
	geminiGen "github.com/hollis-cloud/resumerag/internal/transport/gemini"
	openaiEmb "github.com/hollis-cloud/resumerag/internal/transport/openai"
	analyzeuc "github.com/hollis-cloud/resumerag/internal/usecase/analyze"
	healthuc "github.com/hollis-cloud/resumerag/internal/usecase/health"
	ingestuc "github.com/hollis-cloud/resumerag/internal/usecase/ingest"
	"github.com/hollis-cloud/resumerag/internal/usecase/prompt"
	retrievaluc "github.com/hollis-cloud/resumerag/internal/usecase/retrieval"
	"github.com/hollis-cloud/resumerag/internal/usecase/score"
	seeduc "github.com/hollis-cloud/resumerag/internal/usecase/seed"
	"github.com/hollis-cloud/resumerag/internal/version"
)

func main() {
	// Load configuration based on ENV
	env := config.GetEnv()

	cfg, err := config.Load(env)
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	logger, err := logpkg.New(env, cfg.Logging.Level)
	if err != nil {
		panic("failed to create logger: " + err.Error())
	}
	defer func() { _ = logger.Sync() }()

	logger.Info("Starting resumerag API server",
		zap.String("version", version.Version),
		zap.String("commit", version.Commit),
		zap.String("env", env),
		zap.Int("http_port", cfg.HTTP.Port),
		zap.Strings("db_addrs", cfg.Database.Addrs),
	)

	store, err := dbRedis.NewStore(dbRedis.Config{
		Addrs:    cfg.Database.Addrs,
		Username: cfg.Database.Username,
		Password: cfg.Database.Password,
	})
	if err != nil {
		logger.Fatal("Failed to create vector store", zap.Error(err))
	}
	defer store.Close()

	ctx := context.Background()
	if err := store.WaitForReady(ctx, time.Duration(cfg.Database.ReadinessTimeout)*time.Second); err != nil {
		logger.Fatal("Vector store not ready", zap.Error(err))
	}
	logger.Info("Connected to vector store")

	// Register provider metrics explicitly (no init())
	metrics.RegisterProviderMetrics()

	// Embedder chain — composition root
	base := openaiEmb.NewEmbedder(&openaiEmb.Config{
		APIKey:     cfg.Embedding.APIKey,
		BaseURL:    cfg.Embedding.BaseURL,
		Model:      cfg.Embedding.Model,
		Dimensions: cfg.Embedding.Dimensions,
		Provider:   cfg.Embedding.Provider,
		Timeout:    time.Duration(cfg.Embedding.TimeoutSec) * time.Second,
		Logger:     logger,
	})
	var embedder domain.Embedder = base
	if cfg.Embedding.Cache {
		embedder = embcache.New(base, store, metrics.EmbeddingCacheTotal, logger).
			WithTTL(time.Duration(cfg.Embedding.CacheTTLHours) * time.Hour)
	}
	logger.Info("Embedder created",
		zap.String("provider", cfg.Embedding.Provider),
		zap.String("model", cfg.Embedding.Model),
		zap.Int("dimensions", cfg.Embedding.Dimensions),
		zap.Bool("cache", cfg.Embedding.Cache),
	)

	generator, err := geminiGen.NewGenerator(ctx, &geminiGen.Config{
		APIKey:          cfg.Generation.APIKey,
		Model:           cfg.Generation.Model,
		MaxOutputTokens: cfg.Generation.MaxOutputTokens,
		Timeout:         time.Duration(cfg.Generation.TimeoutSec) * time.Second,
		Logger:          logger,
	})
	if err != nil {
		logger.Fatal("Failed to create generator", zap.Error(err))
	}

	corpusRepo := corpusrepo.New(store, cfg.Embedding.Dimensions).WithHNSW(corpusrepo.HNSWConfig{
		M:           cfg.Retrieval.HNSWM,
		EFConstruct: cfg.Retrieval.HNSWEFConstruct,
	})
	for _, name := range []string{cfg.Corpora.Resumes, cfg.Corpora.BestPractices} {
		if err := corpusRepo.EnsureIndex(ctx, name); err != nil {
			logger.Fatal("Failed to create corpus index", zap.String("corpus", name), zap.Error(err))
		}
	}

	resumeIngest := ingestuc.New(embedder, corpusRepo, cfg.Corpora.Resumes)
	practiceIngest := ingestuc.New(embedder, corpusRepo, cfg.Corpora.BestPractices)
	resumeRetriever := retrievaluc.New(embedder, corpusRepo, cfg.Corpora.Resumes, cfg.Retrieval.TopK)
	practiceRetriever := retrievaluc.New(embedder, corpusRepo, cfg.Corpora.BestPractices, cfg.Retrieval.TopK)

	// Seed the guidance corpus; ingestion is idempotent, so every startup
	// converges to the same corpus.
	if cfg.Corpora.SeedFile != "" {
		if err := seeduc.New(practiceIngest, logger).FromFile(ctx, cfg.Corpora.SeedFile); err != nil {
			logger.Warn("Best practices seeding failed", zap.Error(err))
		}
	}

	analyzeSvc := analyzeuc.New(
		extract.PDFText,
		extract.NewContactExtractor(),
		resumeIngest,
		resumeRetriever,
		practiceRetriever,
		prompt.NewComposer(),
		generator,
		score.NewParser(),
	)
	// Health probes the base provider: the cache decorator has no probe of
	// its own.
	healthSvc := healthuc.New(store, base)

	server := chiTransport.NewServer(analyzeSvc, healthSvc, logger, cfg.HTTP.MaxUploadMB)

	r := chi.NewRouter()
	r.Use(jsonRecoverer(logger))
	r.Use(chiMiddleware.RequestID)
	r.Use(wideEventMiddleware(logger))
	r.Use(chiTransport.CORSMiddleware())
	r.Use(metrics.Middleware())
	server.Routes(r)

	addr := fmt.Sprintf(":%d", cfg.HTTP.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.HTTP.ReadTimeoutSec) * time.Second,
		WriteTimeout: time.Duration(cfg.HTTP.WriteTimeoutSec) * time.Second,
	}

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	go func() {
		logger.Info("Starting HTTP server", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("HTTP server error", zap.Error(err))
		}
	}()

	<-quit
	logger.Info("Received shutdown signal")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.HTTP.ShutdownSec)*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Error during shutdown", zap.Error(err))
	}

	logger.Info("Server stopped gracefully")
}

// jsonRecoverer is a recovery middleware that returns JSON instead of a plain text stacktrace.
func jsonRecoverer(logger *zap.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rvr := recover(); rvr != nil {
					logger.Error("panic recovered",
						zap.Any("panic", rvr),
						zap.Stack("stacktrace"),
					)
					w.Header().Set("Content-Type", "application/json")
					w.WriteHeader(http.StatusInternalServerError)
					_ = json.NewEncoder(w).Encode(map[string]string{
						"error": "internal error",
					})
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}

// wideEventMiddleware emits a canonical log line per request and propagates X-Request-ID.
func wideEventMiddleware(logger *zap.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			// chi.middleware.RequestID already placed request_id in context
			requestID := chiMiddleware.GetReqID(r.Context())
			if requestID != "" {
				w.Header().Set("X-Request-ID", requestID)
			}

			// Per-request logger with request_id
			reqLogger := logger.With(zap.String("request_id", requestID))
			ctx := logpkg.ContextWithLogger(r.Context(), reqLogger)

			ww := chiMiddleware.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r.WithContext(ctx))

			// Canonical log line — one line per request
			reqLogger.Info("http_request",
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.Int("status", ww.Status()),
				zap.Duration("latency", time.Since(start)),
				zap.String("ip", r.RemoteAddr),
				zap.Int64("content_length", r.ContentLength),
				zap.String("user_agent", r.UserAgent()),
				zap.Int("response_bytes", ww.BytesWritten()),
			)
		})
	}
}
