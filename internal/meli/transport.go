package meli

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strconv"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"

	"github.com/donaldgifford/storefront/internal/errs"
	"github.com/donaldgifford/storefront/internal/metrics"
)

const defaultTimeout = 8 * time.Second

// caller performs one rate-limited, instrumented HTTP round trip.
type caller struct {
	client   *http.Client
	limiter  *RateLimiter
	duration metric.Float64Histogram
}

func newCaller(mp metric.MeterProvider) caller {
	h, err := mp.Meter(instrumentationName).Float64Histogram(
		"storefront.marketplace.duration",
		metric.WithUnit("s"),
		metric.WithDescription("Duration of marketplace API calls."),
	)
	if err != nil {
		h, _ = noop.NewMeterProvider().Meter(instrumentationName).Float64Histogram("noop") //nolint:errcheck // noop never fails
	}
	return caller{
		client:   &http.Client{Timeout: defaultTimeout},
		duration: h,
	}
}

// do sends req and returns the status and full body. Transport failures,
// timeouts and rate limiter cancellation come back as *errs.UpstreamError.
func (c *caller) do(ctx context.Context, operation string, req *http.Request) (int, []byte, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return 0, nil, &errs.UpstreamError{Err: err}
	}

	start := time.Now()
	status := "error"
	defer func() {
		metrics.MarketplaceRequestsTotal.WithLabelValues(operation, status).Inc()
		c.duration.Record(ctx, time.Since(start).Seconds(), metric.WithAttributes(
			attribute.String("operation", operation),
			attribute.String("status", status),
		))
	}()

	resp, err := c.client.Do(req)
	if err != nil {
		return 0, nil, &errs.UpstreamError{Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, nil, &errs.UpstreamError{Err: err}
	}

	status = strconv.Itoa(resp.StatusCode)
	return resp.StatusCode, body, nil
}

type apiErrorResponse struct {
	Message          string `json:"message"`
	Error            string `json:"error"`
	ErrorDescription string `json:"error_description"`
}

// errorMessage extracts a human readable message from a marketplace error
// body. It returns "" when the body is not the usual JSON error shape.
func errorMessage(body []byte) string {
	var r apiErrorResponse
	if err := json.Unmarshal(body, &r); err != nil {
		return ""
	}
	switch {
	case r.Message != "":
		return r.Message
	case r.ErrorDescription != "":
		return r.ErrorDescription
	default:
		return r.Error
	}
}

func isAuthFailure(status int) bool {
	return status == http.StatusUnauthorized || status == http.StatusForbidden
}

func isSuccess(status int) bool {
	return status >= 200 && status < 300
}
