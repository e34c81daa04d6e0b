package vendors

import (
	"context"
	"net/http"
	"time"

	"github.com/diwise/greenhouse-monitoring/internal/pkg/infrastructure/metrics"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

const DefaultTimeout = 10 * time.Second

// OnFailure decides what a vendor call returns when it fails. A policy either
// substitutes a value or hands the error back to the caller.
type OnFailure[T any] func(ctx context.Context, err error) (T, error)

// ReturnPlaceholder substitutes the value produced by f and swallows the error
func ReturnPlaceholder[T any](vendor, call string, f func() T) OnFailure[T] {
	return func(ctx context.Context, err error) (T, error) {
		log := logging.GetFromContext(ctx)
		log.Warn().Err(err).Str("vendor", vendor).Str("call", call).Msg("vendor call failed, using placeholder")

		metrics.VendorFallbacks.WithLabelValues(vendor, call).Inc()

		return f(), nil
	}
}

// Propagate returns the error unchanged
func Propagate[T any]() OnFailure[T] {
	return func(ctx context.Context, err error) (T, error) {
		var zero T
		return zero, err
	}
}

// NewHTTPClient returns a traced client with a bounded timeout. A zero timeout
// falls back to DefaultTimeout.
func NewHTTPClient(timeout time.Duration) *http.Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	return &http.Client{
		Timeout:   timeout,
		Transport: otelhttp.NewTransport(http.DefaultTransport),
	}
}
