package meli

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"sync"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"

	"github.com/donaldgifford/storefront/internal/credentials"
	"github.com/donaldgifford/storefront/internal/errs"
	"github.com/donaldgifford/storefront/internal/metrics"
)

// Refresher implements TokenRefresher using the MercadoLibre OAuth2
// refresh_token grant. The new pair is persisted to the credential store
// before it is returned. Refreshes are serialized so concurrent callers
// holding the same stale token trigger a single network exchange.
type Refresher struct {
	clientID     string
	clientSecret string
	tokenURL     string
	creds        credentials.Store

	caller caller
	logger *slog.Logger
	tracer trace.Tracer

	mu sync.Mutex
}

// RefresherOption configures the Refresher.
type RefresherOption func(*Refresher)

// WithTokenURL overrides the default MercadoLibre token endpoint.
func WithTokenURL(u string) RefresherOption {
	return func(r *Refresher) {
		r.tokenURL = u
	}
}

// WithHTTPClient overrides the default HTTP client.
func WithHTTPClient(c *http.Client) RefresherOption {
	return func(r *Refresher) {
		r.caller.client = c
	}
}

// WithRefresherRateLimiter routes token requests through rl.
func WithRefresherRateLimiter(rl *RateLimiter) RefresherOption {
	return func(r *Refresher) {
		r.caller.limiter = rl
	}
}

// WithLogger sets the logger.
func WithLogger(l *slog.Logger) RefresherOption {
	return func(r *Refresher) {
		r.logger = l
	}
}

// WithTracerProvider overrides the global tracer provider.
func WithTracerProvider(tp trace.TracerProvider) RefresherOption {
	return func(r *Refresher) {
		r.tracer = tp.Tracer(instrumentationName)
	}
}

// WithMeterProvider overrides the global meter provider.
func WithMeterProvider(mp metric.MeterProvider) RefresherOption {
	return func(r *Refresher) {
		client, limiter := r.caller.client, r.caller.limiter
		r.caller = newCaller(mp)
		r.caller.client, r.caller.limiter = client, limiter
	}
}

// NewRefresher creates a token refresher. Empty client credentials are
// accepted here and reported as configuration errors on first use.
func NewRefresher(
	clientID, clientSecret string,
	creds credentials.Store,
	opts ...RefresherOption,
) *Refresher {
	r := &Refresher{
		clientID:     clientID,
		clientSecret: clientSecret,
		tokenURL:     DefaultTokenURL,
		creds:        creds,
		caller:       newCaller(otel.GetMeterProvider()),
		logger:       slog.Default(),
		tracer:       otel.GetTracerProvider().Tracer(instrumentationName),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

type tokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresIn    int    `json:"expires_in"`
	TokenType    string `json:"token_type"`
}

// Refresh exchanges the stored refresh token for a new pair.
func (r *Refresher) Refresh(ctx context.Context) (*credentials.TokenPair, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.refreshLocked(ctx)
}

// RefreshIfStale refreshes only when the stored access token is still
// staleAccess.
func (r *Refresher) RefreshIfStale(
	ctx context.Context,
	staleAccess string,
) (*credentials.TokenPair, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	current, ok, err := r.creds.Get(ctx, credentials.AccessToken)
	if err != nil {
		return nil, fmt.Errorf("reading access token: %w", err)
	}
	if ok && current != "" && current != staleAccess {
		refresh, _, err := r.creds.Get(ctx, credentials.RefreshToken)
		if err != nil {
			return nil, fmt.Errorf("reading refresh token: %w", err)
		}
		metrics.TokenRefreshesTotal.WithLabelValues("skipped").Inc()
		return &credentials.TokenPair{AccessToken: current, RefreshToken: refresh}, nil
	}

	return r.refreshLocked(ctx)
}

func (r *Refresher) refreshLocked(ctx context.Context) (*credentials.TokenPair, error) {
	if r.clientID == "" {
		return nil, &errs.ConfigurationError{Setting: "marketplace.client_id"}
	}
	if r.clientSecret == "" {
		return nil, &errs.ConfigurationError{Setting: "marketplace.client_secret"}
	}

	refreshToken, ok, err := r.creds.Get(ctx, credentials.RefreshToken)
	if err != nil {
		return nil, fmt.Errorf("reading refresh token: %w", err)
	}
	if !ok || refreshToken == "" {
		return nil, &errs.ConfigurationError{Setting: "marketplace.refresh_token"}
	}

	ctx, span := r.tracer.Start(ctx, "meli.refresh_token")
	defer span.End()

	pair, err := r.exchange(ctx, refreshToken)
	if err != nil {
		metrics.TokenRefreshesTotal.WithLabelValues("failed").Inc()
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		r.logger.Error("token refresh failed", "error", err)
		return nil, err
	}

	if err := r.creds.SetPair(ctx, *pair); err != nil {
		metrics.TokenRefreshesTotal.WithLabelValues("failed").Inc()
		span.RecordError(err)
		span.SetStatus(codes.Error, "persisting token pair")
		return nil, fmt.Errorf("persisting token pair: %w", err)
	}

	metrics.TokenRefreshesTotal.WithLabelValues("success").Inc()
	r.logger.Info("marketplace token refreshed", "expires_in", pair.ExpiresIn)

	return pair, nil
}

func (r *Refresher) exchange(ctx context.Context, refreshToken string) (*credentials.TokenPair, error) {
	form := url.Values{
		"grant_type":    {"refresh_token"},
		"client_id":     {r.clientID},
		"client_secret": {r.clientSecret},
		"refresh_token": {refreshToken},
	}

	req, err := http.NewRequestWithContext(
		ctx,
		http.MethodPost,
		r.tokenURL,
		strings.NewReader(form.Encode()),
	)
	if err != nil {
		return nil, fmt.Errorf("creating token request: %w", err)
	}

	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Accept", "application/json")

	status, body, err := r.caller.do(ctx, "refresh_token", req)
	if err != nil {
		return nil, err
	}

	if !isSuccess(status) {
		return nil, &errs.UpstreamAuthError{
			Status:  status,
			Message: errorMessage(body),
			Body:    string(body),
		}
	}

	var tr tokenResponse
	if err := json.Unmarshal(body, &tr); err != nil {
		return nil, &errs.UpstreamError{
			Status: status,
			Body:   string(body),
			Err:    fmt.Errorf("parsing token response: %w", err),
		}
	}
	if tr.AccessToken == "" {
		return nil, &errs.UpstreamAuthError{
			Status:  status,
			Message: "token response has no access_token",
			Body:    string(body),
		}
	}

	// The endpoint rotates refresh tokens, but keep the old one if it ever
	// omits the field rather than persisting an empty value.
	if tr.RefreshToken == "" {
		tr.RefreshToken = refreshToken
	}

	return &credentials.TokenPair{
		AccessToken:  tr.AccessToken,
		RefreshToken: tr.RefreshToken,
		ExpiresIn:    tr.ExpiresIn,
		TokenType:    tr.TokenType,
	}, nil
}
