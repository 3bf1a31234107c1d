package accounting

import (
	"github.com/shopspring/decimal"

	"github.com/SscSPs/financial_reports_app/internal/core/domain"
)

var hundred = decimal.NewFromInt(100)

// Percentage returns part/whole×100 rounded to two decimal places. A zero whole
// yields 0, never NaN or Inf.
func Percentage(part, whole int64) float64 {
	if whole == 0 {
		return 0
	}
	pct := decimal.NewFromInt(part).Mul(hundred).Div(decimal.NewFromInt(whole)).Round(2)
	f, _ := pct.Float64()
	return f
}

// Average returns total/count in whole cents, rounded half away from zero. A zero
// count yields 0.
func Average(total int64, count int) int64 {
	if count <= 0 {
		return 0
	}
	return decimal.NewFromInt(total).Div(decimal.NewFromInt(int64(count))).Round(0).IntPart()
}

// BuildDRE derives the income statement lines from its three inputs.
func BuildDRE(revenue, expenses, payroll int64) domain.DRESummary {
	operating := revenue - expenses
	net := operating - payroll
	return domain.DRESummary{
		Revenue:         revenue,
		Expenses:        expenses,
		Payroll:         payroll,
		OperatingProfit: operating,
		NetProfit:       net,
		OperatingMargin: Percentage(operating, revenue),
		NetMargin:       Percentage(net, revenue),
	}
}

// SumDRE adds up DRE columns and recomputes the margins on the sums.
func SumDRE(columns ...domain.DRESummary) domain.DRESummary {
	var revenue, expenses, payroll int64
	for _, c := range columns {
		revenue += c.Revenue
		expenses += c.Expenses
		payroll += c.Payroll
	}
	return BuildDRE(revenue, expenses, payroll)
}
