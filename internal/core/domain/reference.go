package domain

import (
	"fmt"
	"strings"
)

// AccountCategory is inferred from the chart-of-accounts code prefix.
type AccountCategory string

const (
	CategoryRevenue     AccountCategory = "revenue"
	CategoryExpense     AccountCategory = "expense"
	CategoryCostOfGoods AccountCategory = "cost_of_goods"
	CategoryOther       AccountCategory = "other"
)

// ParseAccountCategory accepts the API spelling of a category. Empty means any
// category and returns "".
func ParseAccountCategory(s string) (AccountCategory, error) {
	switch c := AccountCategory(strings.ToLower(strings.TrimSpace(s))); c {
	case "", CategoryRevenue, CategoryExpense, CategoryCostOfGoods, CategoryOther:
		return c, nil
	}
	return "", fmt.Errorf("unknown account category %q", s)
}

// ChartOfAccountsEntry is a global reference row, upserted by Code.
type ChartOfAccountsEntry struct {
	Code        string          `json:"code"`
	Description string          `json:"description"`
	Category    AccountCategory `json:"category"`
}

// CostCenterEntry is a global reference row, upserted by Code.
type CostCenterEntry struct {
	Code        string `json:"code"`
	Description string `json:"description"`
}

// VendorEntry is a global reference row, upserted by Code.
type VendorEntry struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

// Branch (filial) is derived from the branch codes found on payables and receivables.
type Branch struct {
	Code int    `json:"code"`
	Name string `json:"name"`
}

// DefaultBranchName names a branch registered from a bare code.
func DefaultBranchName(code int) string {
	return fmt.Sprintf("Filial %d", code)
}
