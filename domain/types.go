package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Currency one of the fixed currencies a euro amount can be converted to
type Currency int

const (
	Krupnic Currency = iota
	Zorglub
	Usd
)

// ErrUnknownCurrency is returned when a currency name does not match a supported Currency
var ErrUnknownCurrency = errors.New("unknown currency")

var currencyNames = map[Currency]string{
	Krupnic: "Krupnic",
	Zorglub: "Zorglub",
	Usd:     "Usd",
}

func (c Currency) String() string {
	if name, ok := currencyNames[c]; ok {
		return name
	}
	return fmt.Sprintf("Currency(%d)", int(c))
}

// ParseCurrency maps a case-insensitive currency name to a Currency
func ParseCurrency(s string) (Currency, error) {
	for c, name := range currencyNames {
		if strings.EqualFold(name, strings.TrimSpace(s)) {
			return c, nil
		}
	}
	return 0, fmt.Errorf("parse currency [%v]: %w", s, ErrUnknownCurrency)
}

// Amount a monetary amount in euros... which is a float
type Amount float64

// Rate an exchange rate
type Rate float64
