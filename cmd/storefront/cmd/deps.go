package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"

	"github.com/donaldgifford/storefront/internal/config"
	"github.com/donaldgifford/storefront/internal/credentials"
	"github.com/donaldgifford/storefront/internal/meli"
	"github.com/donaldgifford/storefront/internal/store"
	"github.com/donaldgifford/storefront/pkg/logger"
)

func loadConfig() (*config.Config, *slog.Logger, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, nil, fmt.Errorf("loading config: %w", err)
	}
	log := logger.New(cfg.Logging.Level, cfg.Logging.Format)
	slog.SetDefault(log)
	return cfg, log, nil
}

func openStore(ctx context.Context, cfg *config.Config, log *slog.Logger) (*store.PostgresStore, error) {
	log.Info("connecting to database", "host", cfg.Database.Host, "name", cfg.Database.Name)

	pg, err := store.NewPostgresStore(ctx, cfg.Database.DSN(), cfg.Database.PoolSize)
	if err != nil {
		return nil, fmt.Errorf("connecting to database: %w", err)
	}
	return pg, nil
}

// marketplace bundles the token refresher and item fetcher that share one
// credential store, HTTP client and rate limiter.
type marketplace struct {
	refresher *meli.Refresher
	items     *meli.Client
}

func newMarketplace(
	cfg config.MarketplaceConfig,
	persisted credentials.Store,
	log *slog.Logger,
	tp trace.TracerProvider,
	mp metric.MeterProvider,
) *marketplace {
	creds := credentials.WithBootstrap(persisted, cfg.BootstrapCredentials())
	httpClient := &http.Client{Timeout: cfg.Timeout}
	limiter := meli.NewRateLimiter(cfg.RateLimit.PerSecond, cfg.RateLimit.Burst)
	meliLog := logger.Component(log, "meli")

	refresher := meli.NewRefresher(cfg.ClientID, cfg.ClientSecret, creds,
		meli.WithTokenURL(cfg.TokenURL),
		meli.WithHTTPClient(httpClient),
		meli.WithRefresherRateLimiter(limiter),
		meli.WithLogger(meliLog),
		meli.WithTracerProvider(tp),
		meli.WithMeterProvider(mp),
	)

	items := meli.NewClient(creds, refresher,
		meli.WithAPIURL(cfg.APIURL),
		meli.WithClientHTTPClient(httpClient),
		meli.WithRateLimiter(limiter),
		meli.WithClientLogger(meliLog),
		meli.WithClientTracerProvider(tp),
		meli.WithClientMeterProvider(mp),
	)

	return &marketplace{refresher: refresher, items: items}
}
