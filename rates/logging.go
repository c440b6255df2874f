package rates

import (
	"context"
	"github.com/go-kit/log"
	"go-price-calculator/domain"
	"time"
)

// loggingClient decorates a rates.Client with logging
type loggingClient struct {
	next   Client
	logger log.Logger
}

// NewLoggingClient return a new logging client
func NewLoggingClient(logger log.Logger, c Client) Client {
	return &loggingClient{
		next:   c,
		logger: logger,
	}
}

func (c *loggingClient) USDRate(ctx context.Context) (rate domain.Rate, err error) {
	defer func(begin time.Time) {
		c.logger.Log(
			"method", "usd_rate",
			"rate", rate,
			"took", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return c.next.USDRate(ctx)
}
