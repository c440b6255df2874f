package pricing

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidPercentage is returned for a value outside [0, 100]
var ErrInvalidPercentage = errors.New("percentage must be between 0 and 100")

// Percentage a ratio in the closed interval [0, 100]
type Percentage struct {
	value float64
}

// NewPercentage constructs a valid Percentage
func NewPercentage(value float64) (Percentage, error) {
	if math.IsNaN(value) || value < 0 || value > 100 {
		return Percentage{}, fmt.Errorf("new percentage [%v]: %w", value, ErrInvalidPercentage)
	}
	return Percentage{value: value}, nil
}

// MustPercentage is like NewPercentage but panics on an invalid value.
func MustPercentage(value float64) Percentage {
	p, err := NewPercentage(value)
	if err != nil {
		panic(err)
	}
	return p
}

// Get returns the ratio, e.g. 20 for 20%
func (p Percentage) Get() float64 {
	return p.value
}
