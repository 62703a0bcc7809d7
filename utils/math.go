package utils

import (
	"fmt"
	"math"
	"strconv"
)

// FormatPercent renders a percentage value as "1.23%".
func FormatPercent(v float64) string {
	return fmt.Sprintf("%.2f%%", v)
}

// FormatAmount renders an amount with at most eight fractional digits,
// or fewer when the token itself has fewer decimals.
func FormatAmount(amount float64, decimals int) string {
	places := decimals
	if places > 8 {
		places = 8
	}
	return strconv.FormatFloat(amount, 'f', places, 64)
}

// TruncateAmount floors an amount at the given number of decimal places.
func TruncateAmount(amount float64, decimals int) float64 {
	pow := math.Pow10(decimals)
	return math.Floor(amount*pow) / pow
}

// ParsePositiveAmount parses an already format-validated decimal string and
// reports whether it is strictly positive.
func ParsePositiveAmount(raw string) (float64, bool) {
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) || v <= 0 {
		return 0, false
	}
	return v, true
}
