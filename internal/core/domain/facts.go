package domain

import "time"

// CostType distinguishes fixed from variable expenses.
type CostType string

const (
	CostFixed    CostType = "fixed"
	CostVariable CostType = "variable"
)

// Classification is a synthetic/analytic code pair with descriptions, used for
// cost centers and for expense or revenue classifications.
type Classification struct {
	SyntheticCode string `json:"syntheticCode"`
	SyntheticDesc string `json:"syntheticDesc"`
	AnalyticCode  string `json:"analyticCode"`
	AnalyticDesc  string `json:"analyticDesc"`
}

// Label returns the most specific description available.
func (c Classification) Label() string {
	if c.AnalyticDesc != "" {
		return c.AnalyticDesc
	}
	return c.SyntheticDesc
}

// Payable is one accounts-payable row of an upload. Value and ValuePaid are cents.
type Payable struct {
	PayableID      int64          `json:"payableID"`
	UploadID       string         `json:"uploadID"`
	CostCenter     Classification `json:"costCenter"`
	Expense        Classification `json:"expense"`
	CostType       *CostType      `json:"costType,omitempty"`
	VendorCode     string         `json:"vendorCode"`
	VendorName     string         `json:"vendorName"`
	Memo           string         `json:"memo"`
	DocumentType   string         `json:"documentType"`
	DocumentNumber string         `json:"documentNumber"`
	Value          int64          `json:"value"`
	ValuePaid      *int64         `json:"valuePaid,omitempty"`
	LaunchDate     *time.Time     `json:"launchDate,omitempty"`
	DueDate        *time.Time     `json:"dueDate,omitempty"`
	PaymentDate    *time.Time     `json:"paymentDate,omitempty"`
	Month          *int           `json:"month,omitempty"`
	BankCode       string         `json:"bankCode"`
	BankAccount    string         `json:"bankAccount"`
	BranchCode     *int           `json:"branchCode,omitempty"`
}

// Paid returns the settled amount, zero when unpaid.
func (p Payable) Paid() int64 {
	if p.ValuePaid == nil {
		return 0
	}
	return *p.ValuePaid
}

// Receivable mirrors Payable on the revenue side.
type Receivable struct {
	ReceivableID   int64          `json:"receivableID"`
	UploadID       string         `json:"uploadID"`
	CostCenter     Classification `json:"costCenter"`
	Revenue        Classification `json:"revenue"`
	ClientCode     string         `json:"clientCode"`
	ClientName     string         `json:"clientName"`
	Memo           string         `json:"memo"`
	DocumentType   string         `json:"documentType"`
	DocumentNumber string         `json:"documentNumber"`
	Value          int64          `json:"value"`
	ValueReceived  *int64         `json:"valueReceived,omitempty"`
	LaunchDate     *time.Time     `json:"launchDate,omitempty"`
	DueDate        *time.Time     `json:"dueDate,omitempty"`
	ReceiptDate    *time.Time     `json:"receiptDate,omitempty"`
	Month          *int           `json:"month,omitempty"`
	BankCode       string         `json:"bankCode"`
	BankAccount    string         `json:"bankAccount"`
	BranchCode     *int           `json:"branchCode,omitempty"`
}

// Received returns the settled amount, zero when nothing was received.
func (r Receivable) Received() int64 {
	if r.ValueReceived == nil {
		return 0
	}
	return *r.ValueReceived
}

// PayrollMonths is the number of monthly amount columns on the payroll sheet.
const PayrollMonths = 8

// PayrollLine is one (employee, payment type) row of the payroll sheet.
type PayrollLine struct {
	PayrollLineID  int64                `json:"payrollLineID"`
	UploadID       string               `json:"uploadID"`
	Area           string               `json:"area"`
	CostCenterCode string               `json:"costCenterCode"`
	EmployeeName   string               `json:"employeeName"`
	PaymentType    string               `json:"paymentType"`
	EmploymentType string               `json:"employmentType"`
	Months         [PayrollMonths]int64 `json:"months"`
	Total          int64                `json:"total"`
}

// Amount returns the payroll cost of the line. A nil month yields the stored total,
// falling back to the sum of the month columns when the total cell was empty.
func (l PayrollLine) Amount(month *int) int64 {
	if month != nil {
		if *month < 1 || *month > PayrollMonths {
			return 0
		}
		return l.Months[*month-1]
	}
	if l.Total != 0 {
		return l.Total
	}
	var sum int64
	for _, v := range l.Months {
		sum += v
	}
	return sum
}

// BankBalance is one row of the bank statement block.
type BankBalance struct {
	BankBalanceID int64  `json:"bankBalanceID"`
	UploadID      string `json:"uploadID"`
	BankName      string `json:"bankName"`
	AccountType   string `json:"accountType"`
	TotalBalance  int64  `json:"totalBalance"`
	SystemBalance int64  `json:"systemBalance"`
	Deviation     int64  `json:"deviation"`
	Month         *int   `json:"month,omitempty"`
	Year          *int   `json:"year,omitempty"`
}

// Batch groups every record extracted from a single workbook.
type Batch struct {
	Accounts     []ChartOfAccountsEntry
	CostCenters  []CostCenterEntry
	Vendors      []VendorEntry
	Payables     []Payable
	Receivables  []Receivable
	PayrollLines []PayrollLine
	BankBalances []BankBalance
}

// StampUpload sets uploadID on every upload-scoped record.
func (b *Batch) StampUpload(uploadID string) {
	for i := range b.Payables {
		b.Payables[i].UploadID = uploadID
	}
	for i := range b.Receivables {
		b.Receivables[i].UploadID = uploadID
	}
	for i := range b.PayrollLines {
		b.PayrollLines[i].UploadID = uploadID
	}
	for i := range b.BankBalances {
		b.BankBalances[i].UploadID = uploadID
	}
}
