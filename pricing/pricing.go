package pricing

import "fmt"

// Discount tiers, applied to the subtotal before tax. Thresholds are exclusive.
const (
	HighTierThreshold = 5000.0
	HighTierFactor    = 0.95

	LowTierThreshold = 1000.0
	LowTierFactor    = 0.97
)

// CalculatePrice computes the discounted and taxed price of quantity items.
// A nil taxRate means no tax.
func CalculatePrice(quantity uint, unitPrice float64, taxRate *Percentage) float64 {
	tax := 0.0
	if taxRate != nil {
		tax = taxRate.Get() / 100.0
	}

	subtotal := float64(quantity) * unitPrice

	return Discount(subtotal) * (1 + tax)
}

// Discount applies the tiered discount to a subtotal
func Discount(subtotal float64) float64 {
	switch {
	case subtotal > HighTierThreshold:
		return subtotal * HighTierFactor
	case subtotal > LowTierThreshold:
		return subtotal * LowTierFactor
	default:
		return subtotal
	}
}

// CalculatePriceFormatted is CalculatePrice rendered in euros, e.g. "1840.58 €"
func CalculatePriceFormatted(quantity uint, unitPrice float64, taxRate *Percentage) string {
	return fmt.Sprintf("%.2f €", CalculatePrice(quantity, unitPrice, taxRate))
}
