package main

import "errors"

// KnownMetrics is the set of metric names exported by the storefront API
// plus recording rule names referenced in dashboards and alerts.
var KnownMetrics = map[string]bool{
	// HTTP metrics.
	"storefront_http_request_duration_seconds": true,
	"storefront_http_requests_total":           true,

	// Health metrics.
	"storefront_healthz_up": true,
	"storefront_readyz_up":  true,

	// Marketplace metrics.
	"storefront_marketplace_requests_total":     true,
	"storefront_token_refreshes_total":          true,
	"storefront_marketplace_auth_retries_total": true,

	// Catalog metrics.
	"storefront_ingestions_total":               true,
	"storefront_ingestion_duration_seconds":     true,
	"storefront_catalog_query_duration_seconds": true,

	// Keepalive metrics.
	"storefront_keepalive_last_success_timestamp": true,
	"storefront_keepalive_next_run_timestamp":     true,
	"storefront_keepalive_runs_total":             true,

	// Recording rules.
	"storefront:http_requests:rate5m":        true,
	"storefront:http_errors:rate5m":          true,
	"storefront:marketplace_requests:rate5m": true,
	"storefront:marketplace_errors:rate5m":   true,
	"storefront:ingestions:rate5m":           true,
	"storefront:ingestion_failures:rate5m":   true,

	// Standard Prometheus metrics referenced in dashboards.
	"up":                         true,
	"process_start_time_seconds": true,
}

// Config controls which artifacts the generator produces and where they go.
type Config struct {
	OutputDir        string
	DashboardEnabled bool
	RulesEnabled     bool
}

// DefaultConfig returns a Config that generates all artifacts into ../../deploy
// (relative to tools/dashgen/).
func DefaultConfig() Config {
	return Config{
		OutputDir:        "../../deploy",
		DashboardEnabled: true,
		RulesEnabled:     true,
	}
}

// Validate checks that the config is usable.
func (c Config) Validate() error {
	if c.OutputDir == "" {
		return errors.New("output directory must be set")
	}
	if !c.DashboardEnabled && !c.RulesEnabled {
		return errors.New("at least one of dashboard or rules must be enabled")
	}
	return nil
}
