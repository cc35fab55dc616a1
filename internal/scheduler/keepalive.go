// Package scheduler runs the optional token keepalive job. A MercadoLibre
// refresh token that goes unused for months expires, so a store that sees
// little traffic refreshes on a fixed interval instead of waiting for the
// next item fetch.
package scheduler

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/donaldgifford/storefront/internal/meli"
	"github.com/donaldgifford/storefront/internal/metrics"
)

const defaultRunTimeout = 30 * time.Second

// Keepalive refreshes the marketplace token pair on a cron schedule.
type Keepalive struct {
	cron      *cron.Cron
	refresher meli.TokenRefresher
	log       *slog.Logger
	timeout   time.Duration
	entryID   cron.EntryID
	now       func() time.Time
}

// NewKeepalive registers a refresh every interval. Failures are logged and
// left for the next tick.
func NewKeepalive(
	refresher meli.TokenRefresher,
	interval time.Duration,
	log *slog.Logger,
) (*Keepalive, error) {
	if interval <= 0 {
		return nil, errors.New("keepalive interval must be positive")
	}

	k := &Keepalive{
		refresher: refresher,
		log:       log,
		timeout:   defaultRunTimeout,
		now:       time.Now,
	}
	k.cron = cron.New(cron.WithChain(cron.SkipIfStillRunning(cronLogger{log})))

	id, err := k.cron.AddFunc("@every "+interval.String(), k.run)
	if err != nil {
		return nil, err
	}
	k.entryID = id

	return k, nil
}

// Start begins running the schedule.
func (k *Keepalive) Start() {
	k.log.Info("token keepalive started")
	k.cron.Start()
	k.SyncNextRunTimestamp()
}

// Stop halts the schedule. The returned context is done once a running
// refresh has finished.
func (k *Keepalive) Stop() context.Context {
	k.log.Info("token keepalive stopping")
	return k.cron.Stop()
}

// Entries returns the registered cron entries for inspection.
func (k *Keepalive) Entries() []cron.Entry {
	return k.cron.Entries()
}

// SyncNextRunTimestamp publishes the next scheduled refresh time.
func (k *Keepalive) SyncNextRunTimestamp() {
	next := k.cron.Entry(k.entryID).Next
	if !next.IsZero() {
		metrics.KeepaliveNextRun.Set(float64(next.Unix()))
	}
}

func (k *Keepalive) run() {
	ctx, cancel := context.WithTimeout(context.Background(), k.timeout)
	defer cancel()

	_ = k.RunOnce(ctx)
	k.SyncNextRunTimestamp()
}

// RunOnce performs a single refresh and records its outcome.
func (k *Keepalive) RunOnce(ctx context.Context) error {
	pair, err := k.refresher.Refresh(ctx)
	if err != nil {
		metrics.KeepaliveRunsTotal.WithLabelValues("failure").Inc()
		k.log.Error("scheduled token refresh failed", "error", err)
		return err
	}

	metrics.KeepaliveRunsTotal.WithLabelValues("success").Inc()
	metrics.KeepaliveLastSuccess.Set(float64(k.now().Unix()))
	k.log.Info("scheduled token refresh succeeded", "expires_in", pair.ExpiresIn)
	return nil
}

// cronLogger routes robfig/cron's internal logging to slog.
type cronLogger struct {
	log *slog.Logger
}

func (l cronLogger) Info(msg string, keysAndValues ...any) {
	l.log.Debug(msg, keysAndValues...)
}

func (l cronLogger) Error(err error, msg string, keysAndValues ...any) {
	l.log.Error(msg, append([]any{"error", err}, keysAndValues...)...)
}
