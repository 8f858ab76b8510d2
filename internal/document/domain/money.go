package document

import (
	"math"

	"github.com/shopspring/decimal"
)

// finite maps NaN and infinities to 0; decimal.NewFromFloat panics on them.
func finite(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}

// Round2 rounds a money value to two decimals.
func Round2(v float64) float64 {
	f, _ := decimal.NewFromFloat(finite(v)).Round(2).Float64()
	return f
}

// FormatAmount renders a money value with exactly two decimals. Caller-supplied
// figures pass through this formatting only; they are never recomputed.
func FormatAmount(v float64) string {
	return decimal.NewFromFloat(finite(v)).Round(2).StringFixed(2)
}

// FormatRate renders a percentage without trailing zeros ("18", "12.5").
func FormatRate(v float64) string {
	return decimal.NewFromFloat(finite(v)).String()
}

// FormatQuantity renders a quantity as a whole number.
func FormatQuantity(v float64) string {
	return decimal.NewFromFloat(finite(v)).Round(0).StringFixed(0)
}
