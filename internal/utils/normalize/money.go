// Package normalize turns raw spreadsheet cell values into canonical cents, dates,
// months and branch codes. Every function here is total: bad input yields a zero
// value, never an error or a panic.
package normalize

import (
	"math"
	"strings"

	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// maxCents keeps conversions inside int64 range.
var maxCents = decimal.NewFromInt(math.MaxInt64 / 2)

// ToCents converts a monetary cell into integer cents.
//
// Strings keep only digits, ',', '.' and '-'. When both separators appear the
// period is a thousands separator and the comma the decimal one; a lone comma is
// also a decimal separator. Anything unparseable becomes 0.
func ToCents(raw any) int64 {
	switch v := raw.(type) {
	case nil:
		return 0
	case string:
		return stringToCents(v)
	case *string:
		if v == nil {
			return 0
		}
		return stringToCents(*v)
	case float64:
		return floatToCents(v)
	case float32:
		return floatToCents(float64(v))
	case int:
		return int64(v) * 100
	case int32:
		return int64(v) * 100
	case int64:
		return v * 100
	case decimal.Decimal:
		return decimalToCents(v)
	}
	return 0
}

func floatToCents(f float64) int64 {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	return decimalToCents(decimal.NewFromFloat(f))
}

func decimalToCents(d decimal.Decimal) int64 {
	cents := d.Mul(hundred).Round(0)
	if cents.Abs().GreaterThan(maxCents) {
		return 0
	}
	return cents.IntPart()
}

func stringToCents(s string) int64 {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if (r >= '0' && r <= '9') || r == ',' || r == '.' || r == '-' {
			b.WriteRune(r)
		}
	}
	cleaned := b.String()
	if cleaned == "" {
		return 0
	}

	hasComma := strings.Contains(cleaned, ",")
	hasDot := strings.Contains(cleaned, ".")
	switch {
	case hasComma && hasDot:
		cleaned = strings.ReplaceAll(cleaned, ".", "")
		cleaned = strings.ReplaceAll(cleaned, ",", ".")
	case hasComma:
		cleaned = strings.ReplaceAll(cleaned, ",", ".")
	}

	d, err := decimal.NewFromString(cleaned)
	if err != nil {
		return 0
	}
	return decimalToCents(d)
}

// AbsCents returns the magnitude of a cents value. Invoiced values are stored
// non-negative regardless of how the sheet signed them.
func AbsCents(c int64) int64 {
	if c < 0 {
		return -c
	}
	return c
}
