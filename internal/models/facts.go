package models

import "time"

// LedgerRow is the shared column layout of the payables and receivables tables.
// Class* columns are the expense_* columns on payables and revenue_* on receivables;
// Party* are vendor_* or client_*; Settled* are value_paid/payment_date or
// value_received/receipt_date.
type LedgerRow struct {
	ID              int64      `db:"id"`
	UploadID        string     `db:"upload_id"`
	CCSyntheticCode string     `db:"cc_synthetic_code"`
	CCSyntheticDesc string     `db:"cc_synthetic_desc"`
	CCAnalyticCode  string     `db:"cc_analytic_code"`
	CCAnalyticDesc  string     `db:"cc_analytic_desc"`
	ClassSynCode    string     `db:"class_synthetic_code"`
	ClassSynDesc    string     `db:"class_synthetic_desc"`
	ClassAnaCode    string     `db:"class_analytic_code"`
	ClassAnaDesc    string     `db:"class_analytic_desc"`
	CostType        *string    `db:"cost_type"`
	PartyCode       string     `db:"party_code"`
	PartyName       string     `db:"party_name"`
	Memo            string     `db:"memo"`
	DocumentType    string     `db:"document_type"`
	DocumentNumber  string     `db:"document_number"`
	Value           int64      `db:"value"`
	Settled         *int64     `db:"settled"`
	LaunchDate      *time.Time `db:"launch_date"`
	DueDate         *time.Time `db:"due_date"`
	SettlementDate  *time.Time `db:"settlement_date"`
	Month           *int16     `db:"month"`
	BankCode        string     `db:"bank_code"`
	BankAccount     string     `db:"bank_account"`
	BranchCode      *int32     `db:"branch_code"`
}

// PayrollLine is the payroll_lines table row.
type PayrollLine struct {
	PayrollLineID  int64   `db:"payroll_line_id"`
	UploadID       string  `db:"upload_id"`
	Area           string  `db:"area"`
	CostCenterCode string  `db:"cost_center_code"`
	EmployeeName   string  `db:"employee_name"`
	PaymentType    string  `db:"payment_type"`
	EmploymentType string  `db:"employment_type"`
	Months         []int64 `db:"months"`
	Total          int64   `db:"total"`
}

// BankBalance is the bank_balances table row.
type BankBalance struct {
	BankBalanceID int64  `db:"bank_balance_id"`
	UploadID      string `db:"upload_id"`
	BankName      string `db:"bank_name"`
	AccountType   string `db:"account_type"`
	TotalBalance  int64  `db:"total_balance"`
	SystemBalance int64  `db:"system_balance"`
	Deviation     int64  `db:"deviation"`
	Month         *int16 `db:"month"`
	Year          *int32 `db:"year"`
}
