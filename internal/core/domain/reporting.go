package domain

import "time"

// Rollup aggregates settlements for one vendor or client.
type Rollup struct {
	Name           string     `json:"name"`
	Total          int64      `json:"total"`
	Count          int        `json:"count"`
	Average        int64      `json:"average"`
	LastSettlement *time.Time `json:"lastSettlement,omitempty"`
}

// Breakdown is one slice of a distribution chart.
type Breakdown struct {
	Label string `json:"label"`
	Total int64  `json:"total"`
}

// DashboardSummary is the KPI block of the dashboard page.
type DashboardSummary struct {
	TotalRevenue         int64       `json:"totalRevenue"`
	TotalExpense         int64       `json:"totalExpense"`
	TotalPayroll         int64       `json:"totalPayroll"`
	Result               int64       `json:"result"`
	GrossMargin          float64     `json:"grossMargin"`
	TotalInvoicedRevenue int64       `json:"totalInvoicedRevenue"`
	TotalInvoicedExpense int64       `json:"totalInvoicedExpense"`
	ReceivableCount      int         `json:"receivableCount"`
	PayableCount         int         `json:"payableCount"`
	TopVendors           []Rollup    `json:"topVendors"`
	TopClients           []Rollup    `json:"topClients"`
	ExpenseByCategory    []Breakdown `json:"expenseByCategory"`
	ExpenseByCostCenter  []Breakdown `json:"expenseByCostCenter"`
}

// DRESummary is the income statement for one scope.
type DRESummary struct {
	Revenue         int64   `json:"revenue"`
	Expenses        int64   `json:"expenses"`
	Payroll         int64   `json:"payroll"`
	OperatingProfit int64   `json:"operatingProfit"`
	NetProfit       int64   `json:"netProfit"`
	OperatingMargin float64 `json:"operatingMargin"`
	NetMargin       float64 `json:"netMargin"`
}

// DREComparison pairs the month-filtered DRE with the full-period DRE.
type DREComparison struct {
	Month    *int       `json:"month,omitempty"`
	Filtered DRESummary `json:"filtered"`
	Total    DRESummary `json:"total"`
}

// DREMonthColumn is one month of the DRE pivot.
type DREMonthColumn struct {
	Month int `json:"month"`
	DRESummary
}

// DREByMonth is the columnar DRE pivot plus its total column.
type DREByMonth struct {
	Months []DREMonthColumn `json:"months"`
	Total  DRESummary       `json:"total"`
}

// MonthlyPoint is one point of the revenue/expense trend.
type MonthlyPoint struct {
	Month   int   `json:"month"`
	Revenue int64 `json:"revenue"`
	Expense int64 `json:"expense"`
	Result  int64 `json:"result"`
}

// SettlementStats are the derived figures of a drill-down.
type SettlementStats struct {
	TotalInvoiced  int64      `json:"totalInvoiced"`
	TotalSettled   int64      `json:"totalSettled"`
	Count          int        `json:"count"`
	Average        int64      `json:"average"`
	LastSettlement *time.Time `json:"lastSettlement,omitempty"`
}

// VendorDetail lists every payable of one vendor.
type VendorDetail struct {
	Vendor   string          `json:"vendor"`
	Payables []Payable       `json:"payables"`
	Stats    SettlementStats `json:"stats"`
}

// ClientDetail lists every receivable of one client.
type ClientDetail struct {
	Client      string          `json:"client"`
	Receivables []Receivable    `json:"receivables"`
	Stats       SettlementStats `json:"stats"`
}

// PayrollGroup totals payroll by area and payment type.
type PayrollGroup struct {
	Area        string `json:"area"`
	PaymentType string `json:"paymentType"`
	Employees   int    `json:"employees"`
	Total       int64  `json:"total"`
}

// PayrollSummary is the payroll breakdown for a scope.
type PayrollSummary struct {
	Groups []PayrollGroup `json:"groups"`
	Total  int64          `json:"total"`
}

// BankBalanceReport lists bank balances and their column totals.
type BankBalanceReport struct {
	Balances      []BankBalance `json:"balances"`
	TotalBalance  int64         `json:"totalBalance"`
	SystemBalance int64         `json:"systemBalance"`
	Deviation     int64         `json:"deviation"`
}
