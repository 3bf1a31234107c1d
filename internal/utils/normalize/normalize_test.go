package normalize_test

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SscSPs/financial_reports_app/internal/utils/normalize"
)

func TestToCents(t *testing.T) {
	tests := []struct {
		name string
		raw  any
		want int64
	}{
		{"nil", nil, 0},
		{"empty", "", 0},
		{"garbage", "abc", 0},
		{"brazilian thousands", "1.234,56", 123456},
		{"dot decimal", "1234.56", 123456},
		{"comma decimal", "1234,56", 123456},
		{"currency prefix", "R$ 1.234,56", 123456},
		{"negative", "-10,5", -1050},
		{"float", 1234.56, 123456},
		{"float rounding", 0.125, 13},
		{"int", 12, 1200},
		{"lone minus", "-", 0},
		{"time is not money", time.Now(), 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, normalize.ToCents(tt.raw))
		})
	}
}

func TestAbsCents(t *testing.T) {
	assert.Equal(t, int64(500), normalize.AbsCents(-500))
	assert.Equal(t, int64(500), normalize.AbsCents(500))
}

func TestParseFlexibleDate(t *testing.T) {
	t.Run("brazilian four digit year", func(t *testing.T) {
		got := normalize.ParseFlexibleDate("15/03/2024")
		require.NotNil(t, got)
		assert.Equal(t, time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC), *got)
	})

	t.Run("two digit year below pivot", func(t *testing.T) {
		got := normalize.ParseFlexibleDate("15/03/24")
		require.NotNil(t, got)
		assert.Equal(t, 2024, got.Year())
	})

	t.Run("two digit year from pivot", func(t *testing.T) {
		got := normalize.ParseFlexibleDate("01/01/75")
		require.NotNil(t, got)
		assert.Equal(t, 1975, got.Year())
	})

	t.Run("excel serial", func(t *testing.T) {
		// 45366 is 2024-03-15 in the 1900 date system.
		got := normalize.ParseFlexibleDate(float64(45366))
		require.NotNil(t, got)
		assert.Equal(t, time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC), *got)
	})

	t.Run("time part is ignored", func(t *testing.T) {
		got := normalize.ParseFlexibleDate("15/03/2024 10:30:00")
		require.NotNil(t, got)
		assert.Equal(t, 15, got.Day())
	})

	t.Run("time passes through", func(t *testing.T) {
		in := time.Date(2023, 7, 1, 12, 0, 0, 0, time.UTC)
		got := normalize.ParseFlexibleDate(in)
		require.NotNil(t, got)
		assert.Equal(t, in, *got)
	})

	for _, bad := range []any{nil, "", "2024-03-15", "31/02/2024", "99/99/99", "hello", float64(-3), true} {
		assert.Nil(t, normalize.ParseFlexibleDate(bad), "%v", bad)
	}
}

func TestMonthOf(t *testing.T) {
	assert.Nil(t, normalize.MonthOf(nil))
	d := time.Date(2024, 11, 2, 0, 0, 0, 0, time.UTC)
	m := normalize.MonthOf(&d)
	require.NotNil(t, m)
	assert.Equal(t, 11, *m)
}

func TestParseMonth(t *testing.T) {
	cases := map[any]int{
		float64(3): 3,
		"03":       3,
		"Março":    3,
		"DEZ":      12,
		7:          7,
	}
	for raw, want := range cases {
		got := normalize.ParseMonth(raw)
		require.NotNil(t, got, "%v", raw)
		assert.Equal(t, want, *got)
	}
	for _, bad := range []any{nil, "", "13", float64(0), "2.5", "quinta"} {
		assert.Nil(t, normalize.ParseMonth(bad), "%v", bad)
	}
}

func TestNormalizeText(t *testing.T) {
	assert.Equal(t, "mes", normalize.NormalizeText(" Mês "))
	assert.Equal(t, "fixa variavel", normalize.NormalizeText("FIXA/VARIÁVEL"))
	assert.Equal(t, "desc cc sintetico", normalize.NormalizeText("Desc.  CC Sintético"))
	assert.Equal(t, "", normalize.NormalizeText("  "))
}

func TestParseBranchCode(t *testing.T) {
	cases := map[any]int{
		float64(2):       2,
		"003":            3,
		"7.0":            7,
		"4 - FILIAL SUL": 4,
	}
	for raw, want := range cases {
		got := normalize.ParseBranchCode(raw)
		require.NotNil(t, got, "%v", raw)
		assert.Equal(t, want, *got)
	}
	maxCode := normalize.ParseBranchCode(float64(math.MaxInt32))
	require.NotNil(t, maxCode)
	assert.Equal(t, math.MaxInt32, *maxCode)

	oversized := []any{"4294967297", float64(1 << 40), "9999999999 - FILIAL", math.Inf(1)}
	for _, bad := range append([]any{nil, "", "MATRIZ", float64(0), "-1", float64(1.5)}, oversized...) {
		assert.Nil(t, normalize.ParseBranchCode(bad), "%v", bad)
	}
}
