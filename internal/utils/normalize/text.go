package normalize

import (
	"math"
	"regexp"
	"strconv"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var (
	nonAlphanumericRegex = regexp.MustCompile(`[^a-z0-9 ]+`)
	whitespaceRegex      = regexp.MustCompile(`\s+`)
	leadingDigitsRegex   = regexp.MustCompile(`^\d+`)
)

// NormalizeText folds a header or label for comparison: accents removed, lower case,
// punctuation turned into spaces, runs of whitespace collapsed and trimmed.
// "Mês ", "MES" and "mes" all normalize to "mes".
func NormalizeText(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	result, _, err := transform.String(t, s)
	if err != nil {
		result = s
	}
	result = strings.ToLower(result)
	result = nonAlphanumericRegex.ReplaceAllString(result, " ")
	result = whitespaceRegex.ReplaceAllString(result, " ")
	return strings.TrimSpace(result)
}

// ParseBranchCode reads a branch code cell. Accepts numbers, "003", "3.0" and
// labels like "3 - FILIAL SUL". Missing codes, and codes outside 1..MaxInt32
// (the range of the stored column), return nil.
func ParseBranchCode(raw any) *int {
	var f float64
	switch v := raw.(type) {
	case float64:
		f = v
	case int:
		f = float64(v)
	case string:
		s := strings.TrimSpace(v)
		if parsed, err := strconv.ParseFloat(strings.ReplaceAll(s, ",", "."), 64); err == nil {
			f = parsed
			break
		}
		digits := leadingDigitsRegex.FindString(s)
		if digits == "" {
			return nil
		}
		n, err := strconv.ParseInt(digits, 10, 64)
		if err != nil {
			return nil
		}
		f = float64(n)
	default:
		return nil
	}
	if math.IsNaN(f) || f != math.Trunc(f) || f < 1 || f > math.MaxInt32 {
		return nil
	}
	code := int(f)
	return &code
}
