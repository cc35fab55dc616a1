package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humaecho"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	"github.com/donaldgifford/storefront/internal/api/handlers"
	mw "github.com/donaldgifford/storefront/internal/api/middleware"
	"github.com/donaldgifford/storefront/internal/catalog"
	"github.com/donaldgifford/storefront/internal/meli"
	"github.com/donaldgifford/storefront/internal/scheduler"
	"github.com/donaldgifford/storefront/internal/telemetry"
	"github.com/donaldgifford/storefront/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the API server",
	RunE:  runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	cfg, log, err := loadConfig()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	tel, err := telemetry.Setup(ctx, telemetry.Config{
		Endpoint:       cfg.Telemetry.OTLPEndpoint,
		ServiceName:    cfg.Telemetry.ServiceName,
		ServiceVersion: Version,
	}, log)
	if err != nil {
		return fmt.Errorf("setting up telemetry: %w", err)
	}
	defer func() {
		sctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := tel.Shutdown(sctx); err != nil {
			log.Warn("telemetry shutdown failed", "error", err)
		}
	}()

	pg, err := openStore(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer pg.Close()

	if err := pg.Migrate(ctx); err != nil {
		return fmt.Errorf("running migrations: %w", err)
	}

	m := newMarketplace(cfg.Marketplace, pg.Credentials(), log, tel.TracerProvider, tel.MeterProvider)
	if cfg.Marketplace.ClientID == "" || cfg.Marketplace.ClientSecret == "" {
		log.Warn("marketplace client credentials not configured; ingestion and token refresh will fail")
	}

	svc := catalog.NewService(pg, m.items,
		catalog.WithLogger(logger.Component(log, "catalog")),
		catalog.WithTracerProvider(tel.TracerProvider),
		catalog.WithPageSizes(cfg.Catalog.DefaultPageSize, cfg.Catalog.MaxPageSize),
	)

	if cfg.Marketplace.KeepaliveInterval > 0 {
		ka, err := scheduler.NewKeepalive(m.refresher, cfg.Marketplace.KeepaliveInterval,
			logger.Component(log, "keepalive"))
		if err != nil {
			return fmt.Errorf("creating token keepalive: %w", err)
		}
		ka.Start()
		defer func() { <-ka.Stop().Done() }()
	}

	e := newServer(log, serverDeps{
		db:         pg,
		products:   svc,
		categories: svc,
		brands:     svc,
		partners:   svc,
		items:      m.items,
		refresher:  m.refresher,
	})
	e.Server.ReadTimeout = cfg.Server.ReadTimeout
	e.Server.WriteTimeout = cfg.Server.WriteTimeout

	addr := cfg.Server.Addr()
	log.Info("starting server", "addr", addr, "version", Version)

	errCh := make(chan error, 1)
	go func() {
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server error: %w", err)
		}
	case <-ctx.Done():
	}

	log.Info("shutting down server")

	sctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := e.Shutdown(sctx); err != nil {
		return fmt.Errorf("shutting down server: %w", err)
	}

	log.Info("server stopped")
	return nil
}

type serverDeps struct {
	db         handlers.Pinger
	products   catalog.ProductService
	categories catalog.CategoryService
	brands     catalog.BrandService
	partners   catalog.PartnerService
	items      meli.ItemFetcher
	refresher  meli.TokenRefresher
}

// newServer builds the Echo instance with operational endpoints and the huma
// API mounted on it.
func newServer(log *slog.Logger, d serverDeps) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(mw.Recovery(log))
	e.Use(mw.RequestLog(logger.Component(log, "http")))
	e.Use(mw.Metrics())

	health := handlers.NewHealthHandler(d.db)
	e.GET("/healthz", health.Healthz)
	e.GET("/readyz", health.Readyz)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	humaCfg := huma.DefaultConfig("Storefront API", Version)
	humaCfg.Info.Description = "Catalog of MercadoLibre products with live price and stock sync."
	api := humaecho.New(e, humaCfg)

	handlers.RegisterProductRoutes(api, handlers.NewProductsHandler(d.products))
	handlers.RegisterCategoryRoutes(api, handlers.NewCategoriesHandler(d.categories))
	handlers.RegisterBrandRoutes(api, handlers.NewBrandsHandler(d.brands))
	handlers.RegisterPartnerRoutes(api, handlers.NewPartnersHandler(d.partners))
	handlers.RegisterMarketplaceRoutes(api, handlers.NewMarketplaceHandler(d.items, d.refresher))

	return e
}
