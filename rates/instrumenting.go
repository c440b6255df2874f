package rates

import (
	"context"
	"errors"
	"github.com/prometheus/client_golang/prometheus"
	"go-price-calculator/domain"
	"time"
)

// Metrics collectors for rate lookups
type Metrics struct {
	// RequestsTotal counts lookups by result: ok, request_failed, value_not_found, parsing_error
	RequestsTotal *prometheus.CounterVec
	// RequestDuration observes lookup latency in seconds
	RequestDuration prometheus.Histogram
}

// NewMetrics creates the collectors and registers them with reg
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		RequestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "exchange_rate_requests_total",
				Help: "Number of USD exchange rate lookups",
			},
			[]string{"result"},
		),
		RequestDuration: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "exchange_rate_request_duration_seconds",
				Help:    "Duration of USD exchange rate lookups",
				Buckets: prometheus.DefBuckets,
			},
		),
	}
	reg.MustRegister(m.RequestsTotal, m.RequestDuration)
	return m
}

// instrumentingClient decorates a rates.Client with prometheus metrics
type instrumentingClient struct {
	next    Client
	metrics *Metrics
}

// NewInstrumentingClient returns a new instrumenting client
func NewInstrumentingClient(metrics *Metrics, c Client) Client {
	return &instrumentingClient{
		next:    c,
		metrics: metrics,
	}
}

func (c *instrumentingClient) USDRate(ctx context.Context) (rate domain.Rate, err error) {
	defer func(begin time.Time) {
		c.metrics.RequestsTotal.WithLabelValues(result(err)).Inc()
		c.metrics.RequestDuration.Observe(time.Since(begin).Seconds())
	}(time.Now())
	return c.next.USDRate(ctx)
}

// result maps an error to its metric label
func result(err error) string {
	var parsingErr *ResponseParsingError
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, ErrRequestFailed):
		return "request_failed"
	case errors.Is(err, ErrValueNotFound):
		return "value_not_found"
	case errors.As(err, &parsingErr):
		return "parsing_error"
	default:
		return "error"
	}
}
