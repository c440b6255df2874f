package convert

import (
	"fmt"
	"go-price-calculator/domain"
)

// Fixed conversion rates from euros
const (
	KrupnicRate = 2.0
	ZorglubRate = 3.0
)

var suffixes = map[domain.Currency]string{
	domain.Krupnic: "Krupnic",
	domain.Zorglub: "Zorglub",
	domain.Usd:     "$",
}

// Format renders an amount with two decimals and the currency suffix, e.g. "40.00 Krupnic"
func Format(amount float64, currency domain.Currency) string {
	suffix, ok := suffixes[currency]
	if !ok {
		suffix = currency.String()
	}
	return fmt.Sprintf("%.2f %s", amount, suffix)
}
