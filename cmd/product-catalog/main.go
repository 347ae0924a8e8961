// @title						Product Catalog API
// @version					1.0
// @description				Cached product lookups for the owning user.
// @host						localhost:8080
// @BasePath					/api/v1
// @securityDefinitions.apikey	BearerAuth
// @in							header
// @name						Authorization
package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/pasale/product-catalog/docs"
	"github.com/pasale/product-catalog/internal/api/handlers"
	"github.com/pasale/product-catalog/internal/api/middleware"
	"github.com/pasale/product-catalog/internal/cache"
	"github.com/pasale/product-catalog/internal/config"
	"github.com/pasale/product-catalog/internal/health"
	"github.com/pasale/product-catalog/internal/metrics"
	repository "github.com/pasale/product-catalog/internal/repositories"
	service "github.com/pasale/product-catalog/internal/services"
	"github.com/pasale/product-catalog/internal/telemetry"
	httpSwagger "github.com/swaggo/http-swagger"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

func main() {

	// Logger setup
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	// Load config
	cfg := config.MustLoad()

	ctx := context.Background()

	// Tracing setup
	shutdownTracing, err := telemetry.Setup(ctx, &cfg.Otel)
	if err != nil {
		slog.Error("❌ Error setting up tracing", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Database setup
	repos, err := repository.New(cfg)
	if err != nil {
		slog.Error("❌ Error accessing the database", slog.String("error", err.Error()))
		os.Exit(1)
	}

	defer func() {
		if err := repos.Close(); err != nil {
			slog.Error("⚠️ Error closing database connection", slog.String("error", err.Error()))
		} else {
			slog.Info("✅ Database connection closed")
		}
	}()

	// Cache setup
	store, err := newCacheStore(ctx, cfg)
	if err != nil {
		slog.Error("❌ Error accessing the cache backend", slog.String("backend", cfg.Cache.Backend), slog.String("error", err.Error()))
		os.Exit(1)
	}

	defer func() {
		if err := store.Close(); err != nil {
			slog.Error("⚠️ Error closing cache", slog.String("error", err.Error()))
		}
	}()

	asideOpts := []cache.AsideOption{cache.WithDefaultTTL(cfg.Cache.DefaultTTL), cache.WithLogger(logger)}
	if cfg.Cache.SingleFlight {
		asideOpts = append(asideOpts, cache.WithSingleFlight())
	}
	aside := cache.NewAside(store, asideOpts...)

	jwtKey := []byte(cfg.Security.JWTKey)
	productService := service.NewProductService(repos.Product, aside, cfg.Cache.DefaultTTL)
	productHandler := handlers.NewProductHandler(productService)
	authMiddleware := middleware.NewAuthMiddleware(jwtKey)

	healthHandler, err := health.NewHealthHandler(cfg, &health.Endpoints{Cache: store})
	if err != nil {
		slog.Error("❌ Error creating health handler", slog.String("error", err.Error()))
		os.Exit(1)
	}

	slog.Info("storage initialized",
		slog.String("env", cfg.Env),
		slog.String("version", "1.0.0"),
		slog.String("cache_backend", cfg.Cache.Backend),
		slog.Bool("single_flight", cfg.Cache.SingleFlight),
	)

	// Setup router
	routerMux := http.NewServeMux()
	routerMux.HandleFunc("GET /api/v1/products/{id}", authMiddleware.Authenticate(productHandler.GetProduct()))
	routerMux.HandleFunc("GET /api/v1/products", authMiddleware.Authenticate(productHandler.ListProducts()))
	routerMux.Handle("GET /metrics", metrics.Handler())
	routerMux.Handle("GET /health", healthHandler.Handler())
	routerMux.Handle("GET /swagger/", httpSwagger.WrapHandler)

	// Middleware chaining
	var handler http.Handler = routerMux
	handler = metrics.Middleware(handler)
	handler = middleware.Logging(handler)
	handler = otelhttp.NewHandler(handler, "product-catalog")

	// Setup http server
	server := http.Server{
		Addr:    cfg.Addr,
		Handler: handler,
	}

	slog.Info("🚀 Server is starting...", slog.String("address", cfg.Addr))

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)

	go func() {

		if err := server.ListenAndServe(); err != http.ErrServerClosed {
			slog.Error("❌ Failed to start server", slog.Any("error", err.Error()))
		}
	}()

	<-done

	slog.Warn("🛑 Shutdown signal received. Preparing to stop the server...")

	// Graceful shutdown
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("⚠️ Server shutdown encountered an issue", slog.String("error", err.Error()))
	} else {
		slog.Info("✅ Server shut down gracefully. All connections closed.")
	}

	if err := shutdownTracing(shutdownCtx); err != nil {
		slog.Error("⚠️ Error flushing traces", slog.String("error", err.Error()))
	}

}

func newCacheStore(ctx context.Context, cfg *config.Config) (cache.Cache, error) {

	if cfg.Cache.Backend == config.CacheBackendMemory {
		return cache.NewMemoryCache(&cfg.Cache), nil
	}

	client, err := cache.NewRedisClient(ctx, &cfg.RedisConnect)
	if err != nil {
		return nil, err
	}

	return cache.NewRedisCache(client, &cfg.Cache), nil
}
