package convert

import (
	"context"
	"fmt"
	"go-price-calculator/domain"
	"go-price-calculator/rates"
)

// ConvertCurrency converts a euro amount and formats it in currency.
// Only Usd consults client, and it does so on every call.
func ConvertCurrency(ctx context.Context, amountInEuros float64, currency domain.Currency, client rates.Client) (string, error) {
	switch currency {
	case domain.Krupnic:
		return Format(amountInEuros*KrupnicRate, currency), nil
	case domain.Zorglub:
		return Format(amountInEuros*ZorglubRate, currency), nil
	case domain.Usd:
		rate, err := client.USDRate(ctx)
		if err != nil {
			return "", err
		}
		return Format(amountInEuros*float64(rate), currency), nil
	default:
		return "", fmt.Errorf("convert to [%v]: %w", currency, domain.ErrUnknownCurrency)
	}
}

// Service interface for converting euro amounts to another currency
type Service interface {
	Convert(ctx context.Context, amount domain.Amount, currency domain.Currency) (string, error)
}

// service converts with a fixed rates.Client
type service struct {
	// client to look up the USD rate
	client rates.Client
}

// NewService constructs a valid Service
func NewService(client rates.Client) Service {
	return &service{
		client: client,
	}
}

func (s *service) Convert(ctx context.Context, amount domain.Amount, currency domain.Currency) (string, error) {
	return ConvertCurrency(ctx, float64(amount), currency, s.client)
}
