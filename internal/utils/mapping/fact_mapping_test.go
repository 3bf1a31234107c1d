package mapping

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/SscSPs/financial_reports_app/internal/core/domain"
	"github.com/SscSPs/financial_reports_app/internal/models"
	"github.com/SscSPs/financial_reports_app/internal/utils/normalize"
)

func TestPayableMappingKeepsNullables(t *testing.T) {
	month, branch := 3, 7
	paid := int64(1500)
	ct := domain.CostFixed
	launch := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	d := domain.Payable{
		PayableID:  9,
		UploadID:   "u1",
		CostCenter: domain.Classification{AnalyticCode: "100", AnalyticDesc: "Adm"},
		Expense:    domain.Classification{SyntheticDesc: "Ocupação", AnalyticDesc: "Aluguel"},
		CostType:   &ct,
		VendorName: "ACME",
		Value:      1500,
		ValuePaid:  &paid,
		LaunchDate: &launch,
		Month:      &month,
		BranchCode: &branch,
	}

	m := ToModelPayable(d)
	assert.Equal(t, "Aluguel", m.ClassAnaDesc)
	assert.Equal(t, int16(3), *m.Month)
	assert.Equal(t, int32(7), *m.BranchCode)
	assert.Equal(t, "fixed", *m.CostType)

	assert.Equal(t, d, ToDomainPayable(m))

	empty := ToDomainPayable(models.LedgerRow{})
	assert.Nil(t, empty.Month)
	assert.Nil(t, empty.BranchCode)
	assert.Nil(t, empty.CostType)
	assert.Nil(t, empty.ValuePaid)
}

func TestBranchCodeSurvivesTheRowModel(t *testing.T) {
	for _, raw := range []any{"4294967297", float64(math.MaxInt32), "12 - FILIAL NORTE"} {
		parsed := normalize.ParseBranchCode(raw)

		payable := ToDomainPayable(ToModelPayable(domain.Payable{BranchCode: parsed}))
		receivable := ToDomainReceivable(ToModelReceivable(domain.Receivable{BranchCode: parsed}))
		assert.Equal(t, parsed, payable.BranchCode, "%v", raw)
		assert.Equal(t, parsed, receivable.BranchCode, "%v", raw)
	}

	oversized := 1 << 32
	assert.Nil(t, ToModelPayable(domain.Payable{BranchCode: &oversized}).BranchCode)
}

func TestPayrollLineMappingPadsMonths(t *testing.T) {
	d := ToDomainPayrollLine(models.PayrollLine{Months: []int64{1, 2, 3}, Total: 6})
	assert.Equal(t, [domain.PayrollMonths]int64{1, 2, 3}, d.Months)

	m := ToModelPayrollLine(d)
	assert.Len(t, m.Months, domain.PayrollMonths)
}
