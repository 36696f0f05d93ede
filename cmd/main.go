package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"
	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"

	"github.com/openvin/vin-decoder/internal/cache"
	"github.com/openvin/vin-decoder/internal/config"
	"github.com/openvin/vin-decoder/internal/handler"
	"github.com/openvin/vin-decoder/internal/history"
	"github.com/openvin/vin-decoder/internal/metrics"
	"github.com/openvin/vin-decoder/internal/nhtsa"
	"github.com/openvin/vin-decoder/internal/pricing"
	"github.com/openvin/vin-decoder/internal/service"
	"github.com/openvin/vin-decoder/internal/vision"

	_ "github.com/openvin/vin-decoder/docs"
	httpSwagger "github.com/swaggo/http-swagger"
)

const indexPage = "static/index.html"

// @title VIN Decoder API
// @version 1.0
// @description Reads VINs from plate photos and decodes vehicle information.
// @BasePath /
func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := godotenv.Load(); err != nil {
		log.Debug("no .env file found, using process environment")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config error: %v", err)
	}

	logger := log.New()
	logger.SetFormatter(&log.JSONFormatter{})

	extractor := vision.NewExtractor(
		logger,
		openai.NewClient(
			option.WithAPIKey(cfg.OpenAI.APIKey),
			option.WithBaseURL(cfg.OpenAI.BaseURL),
		), cfg.OpenAI)

	lookup := nhtsa.NewClient(logger, cfg.NHTSA)
	estimator := pricing.NewEstimator(logger, cfg.Valuation)
	store := history.NewStore(logger, cfg.History)

	decodeService := service.NewDecodeService(logger, extractor, lookup, estimator, store)

	if cfg.CacheEnable {
		redisCache := cache.NewRedisCache(
			cfg.RedisConfig.Addr,
			cfg.RedisConfig.Password,
			cfg.RedisConfig.DB,
			cfg.RedisConfig.TTL,
		)
		decodeService.SetCacheClient(redisCache)
		logger.Info("set redis as vehicle details cache")
	}

	h := handler.NewDecodeHandler(decodeService, indexPage)

	r := chi.NewRouter()
	r.Use([]func(http.Handler) http.Handler{
		middleware.Logger,
		middleware.Recoverer,
		middleware.Throttle(cfg.Server.ThrottleLimit),
		middleware.Timeout(cfg.Server.Timeout),
		metrics.Middleware,
		cors.Handler(cors.Options{
			AllowedOrigins: []string{"*"},
			AllowedMethods: []string{"GET", "POST", "OPTIONS"},
			AllowedHeaders: []string{"Accept", "Content-Type"},
			MaxAge:         300,
		}),
	}...)

	r.Get("/", h.Index)
	r.Post("/api/decode-vin", h.DecodeVIN)
	r.Get("/api/history", h.History)
	r.Get("/health", h.Health)
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))
	r.Handle("/metrics", promhttp.Handler())

	srv := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: r,
	}

	go func() {
		logger.Infof("server started :%s", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatalf("listen error: %v", err)
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Fatalf("server forced to shutdown: %v", err)
	}
	logger.Info("server stopped")
}
