package convert

import (
	"context"
	"github.com/go-kit/log"
	"go-price-calculator/domain"
	"time"
)

// loggingService decorates a convert.Service with logging
type loggingService struct {
	logger log.Logger
	next   Service
}

// NewLoggingService returns a new instance of a logging Service
func NewLoggingService(logger log.Logger, s Service) Service {
	return &loggingService{
		next:   s,
		logger: logger,
	}
}

func (s *loggingService) Convert(ctx context.Context, amount domain.Amount, currency domain.Currency) (converted string, err error) {
	defer func(begin time.Time) {
		s.logger.Log(
			"method", "convert",
			"amount", amount,
			"currency", currency,
			"converted", converted,
			"took", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.Convert(ctx, amount, currency)
}
