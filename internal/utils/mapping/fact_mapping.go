package mapping

import (
	"math"

	"github.com/SscSPs/financial_reports_app/internal/core/domain"
	"github.com/SscSPs/financial_reports_app/internal/models"
)

func toInt16Ptr(v *int) *int16 {
	if v == nil {
		return nil
	}
	n := int16(*v)
	return &n
}

func fromInt16Ptr(v *int16) *int {
	if v == nil {
		return nil
	}
	n := int(*v)
	return &n
}

// toInt32Ptr drops values the branch_code column cannot hold.
func toInt32Ptr(v *int) *int32 {
	if v == nil || *v < math.MinInt32 || *v > math.MaxInt32 {
		return nil
	}
	n := int32(*v)
	return &n
}

func fromInt32Ptr(v *int32) *int {
	if v == nil {
		return nil
	}
	n := int(*v)
	return &n
}

func setClassification(m *models.LedgerRow, cc, class domain.Classification) {
	m.CCSyntheticCode, m.CCSyntheticDesc = cc.SyntheticCode, cc.SyntheticDesc
	m.CCAnalyticCode, m.CCAnalyticDesc = cc.AnalyticCode, cc.AnalyticDesc
	m.ClassSynCode, m.ClassSynDesc = class.SyntheticCode, class.SyntheticDesc
	m.ClassAnaCode, m.ClassAnaDesc = class.AnalyticCode, class.AnalyticDesc
}

func costCenterOf(m models.LedgerRow) domain.Classification {
	return domain.Classification{
		SyntheticCode: m.CCSyntheticCode,
		SyntheticDesc: m.CCSyntheticDesc,
		AnalyticCode:  m.CCAnalyticCode,
		AnalyticDesc:  m.CCAnalyticDesc,
	}
}

func classOf(m models.LedgerRow) domain.Classification {
	return domain.Classification{
		SyntheticCode: m.ClassSynCode,
		SyntheticDesc: m.ClassSynDesc,
		AnalyticCode:  m.ClassAnaCode,
		AnalyticDesc:  m.ClassAnaDesc,
	}
}

// ToModelPayable converts a domain Payable to a ledger row
func ToModelPayable(d domain.Payable) models.LedgerRow {
	m := models.LedgerRow{
		ID:             d.PayableID,
		UploadID:       d.UploadID,
		PartyCode:      d.VendorCode,
		PartyName:      d.VendorName,
		Memo:           d.Memo,
		DocumentType:   d.DocumentType,
		DocumentNumber: d.DocumentNumber,
		Value:          d.Value,
		Settled:        d.ValuePaid,
		LaunchDate:     d.LaunchDate,
		DueDate:        d.DueDate,
		SettlementDate: d.PaymentDate,
		Month:          toInt16Ptr(d.Month),
		BankCode:       d.BankCode,
		BankAccount:    d.BankAccount,
		BranchCode:     toInt32Ptr(d.BranchCode),
	}
	setClassification(&m, d.CostCenter, d.Expense)
	if d.CostType != nil {
		ct := string(*d.CostType)
		m.CostType = &ct
	}
	return m
}

// ToDomainPayable converts a ledger row to a domain Payable
func ToDomainPayable(m models.LedgerRow) domain.Payable {
	d := domain.Payable{
		PayableID:      m.ID,
		UploadID:       m.UploadID,
		CostCenter:     costCenterOf(m),
		Expense:        classOf(m),
		VendorCode:     m.PartyCode,
		VendorName:     m.PartyName,
		Memo:           m.Memo,
		DocumentType:   m.DocumentType,
		DocumentNumber: m.DocumentNumber,
		Value:          m.Value,
		ValuePaid:      m.Settled,
		LaunchDate:     m.LaunchDate,
		DueDate:        m.DueDate,
		PaymentDate:    m.SettlementDate,
		Month:          fromInt16Ptr(m.Month),
		BankCode:       m.BankCode,
		BankAccount:    m.BankAccount,
		BranchCode:     fromInt32Ptr(m.BranchCode),
	}
	if m.CostType != nil {
		ct := domain.CostType(*m.CostType)
		d.CostType = &ct
	}
	return d
}

// ToModelReceivable converts a domain Receivable to a ledger row
func ToModelReceivable(d domain.Receivable) models.LedgerRow {
	m := models.LedgerRow{
		ID:             d.ReceivableID,
		UploadID:       d.UploadID,
		PartyCode:      d.ClientCode,
		PartyName:      d.ClientName,
		Memo:           d.Memo,
		DocumentType:   d.DocumentType,
		DocumentNumber: d.DocumentNumber,
		Value:          d.Value,
		Settled:        d.ValueReceived,
		LaunchDate:     d.LaunchDate,
		DueDate:        d.DueDate,
		SettlementDate: d.ReceiptDate,
		Month:          toInt16Ptr(d.Month),
		BankCode:       d.BankCode,
		BankAccount:    d.BankAccount,
		BranchCode:     toInt32Ptr(d.BranchCode),
	}
	setClassification(&m, d.CostCenter, d.Revenue)
	return m
}

// ToDomainReceivable converts a ledger row to a domain Receivable
func ToDomainReceivable(m models.LedgerRow) domain.Receivable {
	return domain.Receivable{
		ReceivableID:   m.ID,
		UploadID:       m.UploadID,
		CostCenter:     costCenterOf(m),
		Revenue:        classOf(m),
		ClientCode:     m.PartyCode,
		ClientName:     m.PartyName,
		Memo:           m.Memo,
		DocumentType:   m.DocumentType,
		DocumentNumber: m.DocumentNumber,
		Value:          m.Value,
		ValueReceived:  m.Settled,
		LaunchDate:     m.LaunchDate,
		DueDate:        m.DueDate,
		ReceiptDate:    m.SettlementDate,
		Month:          fromInt16Ptr(m.Month),
		BankCode:       m.BankCode,
		BankAccount:    m.BankAccount,
		BranchCode:     fromInt32Ptr(m.BranchCode),
	}
}

// ToModelPayrollLine converts a domain PayrollLine to a model PayrollLine
func ToModelPayrollLine(d domain.PayrollLine) models.PayrollLine {
	months := make([]int64, domain.PayrollMonths)
	copy(months, d.Months[:])
	return models.PayrollLine{
		PayrollLineID:  d.PayrollLineID,
		UploadID:       d.UploadID,
		Area:           d.Area,
		CostCenterCode: d.CostCenterCode,
		EmployeeName:   d.EmployeeName,
		PaymentType:    d.PaymentType,
		EmploymentType: d.EmploymentType,
		Months:         months,
		Total:          d.Total,
	}
}

// ToDomainPayrollLine converts a model PayrollLine to a domain PayrollLine.
// Extra stored month values are ignored and missing ones read as zero.
func ToDomainPayrollLine(m models.PayrollLine) domain.PayrollLine {
	d := domain.PayrollLine{
		PayrollLineID:  m.PayrollLineID,
		UploadID:       m.UploadID,
		Area:           m.Area,
		CostCenterCode: m.CostCenterCode,
		EmployeeName:   m.EmployeeName,
		PaymentType:    m.PaymentType,
		EmploymentType: m.EmploymentType,
		Total:          m.Total,
	}
	copy(d.Months[:], m.Months)
	return d
}

// ToModelBankBalance converts a domain BankBalance to a model BankBalance
func ToModelBankBalance(d domain.BankBalance) models.BankBalance {
	return models.BankBalance{
		BankBalanceID: d.BankBalanceID,
		UploadID:      d.UploadID,
		BankName:      d.BankName,
		AccountType:   d.AccountType,
		TotalBalance:  d.TotalBalance,
		SystemBalance: d.SystemBalance,
		Deviation:     d.Deviation,
		Month:         toInt16Ptr(d.Month),
		Year:          toInt32Ptr(d.Year),
	}
}

// ToDomainBankBalance converts a model BankBalance to a domain BankBalance
func ToDomainBankBalance(m models.BankBalance) domain.BankBalance {
	return domain.BankBalance{
		BankBalanceID: m.BankBalanceID,
		UploadID:      m.UploadID,
		BankName:      m.BankName,
		AccountType:   m.AccountType,
		TotalBalance:  m.TotalBalance,
		SystemBalance: m.SystemBalance,
		Deviation:     m.Deviation,
		Month:         fromInt16Ptr(m.Month),
		Year:          fromInt32Ptr(m.Year),
	}
}
