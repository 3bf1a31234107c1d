package workbook

import (
	"strings"

	"github.com/SscSPs/financial_reports_app/internal/core/domain"
	"github.com/SscSPs/financial_reports_app/internal/utils/normalize"
)

type recordKind string

const (
	kindAccounts     recordKind = "chart_of_accounts"
	kindCostCenters  recordKind = "cost_centers"
	kindVendors      recordKind = "vendors"
	kindPayables     recordKind = "payables"
	kindReceivables  recordKind = "receivables"
	kindPayroll      recordKind = "payroll"
	kindBankBalances recordKind = "bank_balances"
)

// sheetRule binds a record kind to the sheet names it may appear under. Names are
// compared after normalize.NormalizeText, so case, accents and padding are ignored.
type sheetRule struct {
	kind    recordKind
	aliases [2]string
}

var sheetRules = []sheetRule{
	{kind: kindAccounts, aliases: [2]string{"PC", "PLANO DE CONTAS"}},
	{kind: kindCostCenters, aliases: [2]string{"CC", "CENTROS DE CUSTO"}},
	{kind: kindVendors, aliases: [2]string{"FORN", "FORNECEDORES"}},
	{kind: kindPayables, aliases: [2]string{"CP", "CONTAS A PAGAR"}},
	{kind: kindReceivables, aliases: [2]string{"CR", "CONTAS A RECEBER"}},
	{kind: kindPayroll, aliases: [2]string{"FOLHA", "FOLHA DE PAGAMENTO"}},
	{kind: kindBankBalances, aliases: [2]string{"SALDOS", "SALDOS BANCARIOS"}},
}

// findSheet returns the workbook sheet matching the rule, preferring the first alias.
func (r sheetRule) findSheet(names []string) (string, bool) {
	for _, alias := range r.aliases {
		want := normalize.NormalizeText(alias)
		for _, name := range names {
			if normalize.NormalizeText(name) == want {
				return name, true
			}
		}
	}
	return "", false
}

// Bank statement block markers.
var (
	bankMarkers    = []string{"extrato bancario", "bank statement"}
	bankTerminator = "total"
	bankHeaderRows = []string{"banco", "bank", "instituicao"}
)

// Header cells that mark the column-title row of a positional sheet.
var (
	referenceHeaderCodes = []string{"codigo", "cod", "code", "conta", "centro de custo", "cc"}
	payrollNameHeaders   = []string{"nome", "colaborador", "funcionario", "empregado"}
)

// Payroll sheet positional layout.
const (
	payrollColArea = iota
	payrollColCostCenter
	payrollColName
	payrollColPaymentType
	payrollColEmploymentType
	payrollColFirstMonth
)

const payrollColTotal = payrollColFirstMonth + domain.PayrollMonths

// inferCategory maps a chart-of-accounts code to its category by leading digit.
func inferCategory(code string) domain.AccountCategory {
	code = strings.TrimSpace(code)
	if code == "" {
		return domain.CategoryOther
	}
	switch code[0] {
	case '1':
		return domain.CategoryRevenue
	case '2':
		return domain.CategoryCostOfGoods
	case '3', '4':
		return domain.CategoryExpense
	}
	return domain.CategoryOther
}

// parseCostType reads the fixed/variable flag.
func parseCostType(raw string) *domain.CostType {
	s := strings.ToUpper(strings.TrimSpace(raw))
	if s == "" {
		return nil
	}
	var ct domain.CostType
	switch s[0] {
	case 'F':
		ct = domain.CostFixed
	case 'V':
		ct = domain.CostVariable
	default:
		return nil
	}
	return &ct
}

func containsString(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
