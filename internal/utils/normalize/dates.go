package normalize

import (
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"
)

var brDateRegex = regexp.MustCompile(`^(\d{1,2})/(\d{1,2})/(\d{2}|\d{4})$`)

// twoDigitYearPivot splits two-digit years: below it is 20xx, from it on is 19xx.
const twoDigitYearPivot = 50

// ParseFlexibleDate converts a cell into a calendar date (UTC midnight).
// time.Time values pass through, numbers are Excel 1900-system serials and strings
// must be DD/MM/YYYY or DD/MM/YY, optionally followed by a time part. Anything else
// returns nil.
func ParseFlexibleDate(raw any) *time.Time {
	switch v := raw.(type) {
	case time.Time:
		return &v
	case *time.Time:
		return v
	case float64:
		return fromSerial(v)
	case float32:
		return fromSerial(float64(v))
	case int:
		return fromSerial(float64(v))
	case int64:
		return fromSerial(float64(v))
	case string:
		return fromBRString(v)
	}
	return nil
}

func fromSerial(serial float64) *time.Time {
	if math.IsNaN(serial) || math.IsInf(serial, 0) || serial < 1 || serial > 2958465 {
		return nil
	}
	t, err := excelize.ExcelDateToTime(serial, false)
	if err != nil {
		return nil
	}
	d := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	return &d
}

func fromBRString(s string) *time.Time {
	s = strings.TrimSpace(s)
	if i := strings.IndexByte(s, ' '); i > 0 {
		s = s[:i]
	}
	m := brDateRegex.FindStringSubmatch(s)
	if m == nil {
		return nil
	}
	day, _ := strconv.Atoi(m[1])
	month, _ := strconv.Atoi(m[2])
	year, _ := strconv.Atoi(m[3])
	if len(m[3]) == 2 {
		if year < twoDigitYearPivot {
			year += 2000
		} else {
			year += 1900
		}
	}
	if month < 1 || month > 12 || day < 1 {
		return nil
	}
	d := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	// time.Date normalizes 31/02 into March; reject instead.
	if d.Day() != day || int(d.Month()) != month {
		return nil
	}
	return &d
}

// MonthOf returns the 1-based month of a date, or nil for a nil date.
func MonthOf(t *time.Time) *int {
	if t == nil {
		return nil
	}
	m := int(t.Month())
	return &m
}

var monthNames = map[string]int{
	"jan": 1, "janeiro": 1,
	"fev": 2, "fevereiro": 2,
	"mar": 3, "marco": 3,
	"abr": 4, "abril": 4,
	"mai": 5, "maio": 5,
	"jun": 6, "junho": 6,
	"jul": 7, "julho": 7,
	"ago": 8, "agosto": 8,
	"set": 9, "setembro": 9,
	"out": 10, "outubro": 10,
	"nov": 11, "novembro": 11,
	"dez": 12, "dezembro": 12,
}

// ParseMonth reads an explicit month cell: a number 1..12 or a Portuguese month name
// (full or abbreviated). Out-of-range or unknown values return nil.
func ParseMonth(raw any) *int {
	var m int
	switch v := raw.(type) {
	case float64:
		if v != math.Trunc(v) {
			return nil
		}
		m = int(v)
	case int:
		m = v
	case string:
		s := NormalizeText(v)
		if s == "" {
			return nil
		}
		if n, ok := monthNames[s]; ok {
			m = n
			break
		}
		f, err := strconv.ParseFloat(strings.ReplaceAll(s, ",", "."), 64)
		if err != nil || f != math.Trunc(f) {
			return nil
		}
		m = int(f)
	default:
		return nil
	}
	if m < 1 || m > 12 {
		return nil
	}
	return &m
}
