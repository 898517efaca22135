package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humaecho"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	"github.com/mercadoflow/meli-gateway/internal/api/handlers"
	"github.com/mercadoflow/meli-gateway/internal/api/middleware"
	"github.com/mercadoflow/meli-gateway/internal/config"
	"github.com/mercadoflow/meli-gateway/internal/meli"
	"github.com/mercadoflow/meli-gateway/internal/store"
	"github.com/mercadoflow/meli-gateway/pkg/logger"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the gateway API server",
	RunE:  runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	log := logger.New(cfg.Logging.Level, cfg.Logging.Format)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	db, err := store.NewPostgresStore(ctx, cfg.Database.DSN())
	cancel()
	if err != nil {
		return fmt.Errorf("connecting to database: %w", err)
	}
	defer db.Close()

	refresher := meli.NewRefresher(db, cfg.Meli.ClientID, cfg.Meli.ClientSecret,
		meli.WithTokenURL(cfg.Meli.TokenURL),
		meli.WithRefresherLogger(log),
	)

	limiter := meli.NewRateLimiter(
		cfg.Meli.RateLimit.PerSecond,
		cfg.Meli.RateLimit.Burst,
		cfg.Meli.RateLimit.DailyLimit,
	)

	client := meli.NewClient(db, refresher,
		meli.WithBaseURL(cfg.Meli.BaseURL),
		meli.WithSiteID(cfg.Meli.SiteID),
		meli.WithHTTPClient(&http.Client{Timeout: cfg.Meli.Timeout}),
		meli.WithRateLimiter(limiter),
		meli.WithLogger(log),
	)

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(middleware.RequestLog(log))
	e.Use(middleware.Recovery(log))
	e.Use(middleware.Metrics())

	health := handlers.NewHealthHandler(db)
	e.GET("/healthz", health.Healthz)
	e.GET("/readyz", health.Readyz)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	humaConfig := huma.DefaultConfig("meli-gateway", "1.0.0")
	humaConfig.Info.Description = "Backend-for-frontend gateway for MercadoLibre sellers."
	api := humaecho.New(e, humaConfig)

	handlers.RegisterCategoryRoutes(api, handlers.NewCategoryHandler(client))
	handlers.RegisterProductRoutes(api, handlers.NewProductHandler(client))
	handlers.RegisterImageRoutes(api, handlers.NewImageHandler(client))
	handlers.RegisterSizeChartRoutes(api, handlers.NewSizeChartHandler(client))
	handlers.RegisterRulesRoutes(api, handlers.NewRulesHandler())
	handlers.RegisterQuotaRoutes(api, handlers.NewQuotaHandler(limiter))

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	log.Info("starting server", "addr", addr, "site_id", cfg.Meli.SiteID)

	go func() {
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("server error", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down server")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutting down server: %w", err)
	}

	log.Info("server stopped")
	return nil
}
