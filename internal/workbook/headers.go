package workbook

import (
	"log/slog"

	"github.com/schollz/closestmatch"

	"github.com/SscSPs/financial_reports_app/internal/utils/normalize"
)

type field string

// Ledger fields shared by the payables and receivables sheets. Party is the vendor
// on payables and the client on receivables; settled is the paid or received amount.
const (
	fieldCCSyntheticCode  field = "cc_synthetic_code"
	fieldCCSyntheticDesc  field = "cc_synthetic_desc"
	fieldCCAnalyticCode   field = "cc_analytic_code"
	fieldCCAnalyticDesc   field = "cc_analytic_desc"
	fieldClsSyntheticCode field = "class_synthetic_code"
	fieldClsSyntheticDesc field = "class_synthetic_desc"
	fieldClsAnalyticCode  field = "class_analytic_code"
	fieldClsAnalyticDesc  field = "class_analytic_desc"
	fieldCostType         field = "cost_type"
	fieldPartyCode        field = "party_code"
	fieldPartyName        field = "party_name"
	fieldMemo             field = "memo"
	fieldDocumentType     field = "document_type"
	fieldDocumentNumber   field = "document_number"
	fieldValue            field = "value"
	fieldSettled          field = "settled"
	fieldLaunchDate       field = "launch_date"
	fieldDueDate          field = "due_date"
	fieldSettlementDate   field = "settlement_date"
	fieldMonth            field = "month"
	fieldBankCode         field = "bank_code"
	fieldBankAccount      field = "bank_account"
	fieldBranch           field = "branch"
)

// headerAliases lists the accepted header texts of one field, already in
// normalized form.
type headerAliases struct {
	field    field
	aliases  []string
	required bool
}

type headerTable []headerAliases

var sharedLedgerHeaders = headerTable{
	{field: fieldCCSyntheticCode, aliases: []string{"cc sintetico", "cod cc sintetico", "centro de custo sintetico"}},
	{field: fieldCCSyntheticDesc, aliases: []string{"desc cc sintetico", "descricao cc sintetico"}},
	{field: fieldCCAnalyticCode, aliases: []string{"cc analitico", "cod cc analitico", "centro de custo"}},
	{field: fieldCCAnalyticDesc, aliases: []string{"desc cc analitico", "descricao cc analitico", "desc centro de custo"}},
	{field: fieldClsSyntheticCode, aliases: []string{"cl sintetico", "cod cl sintetico", "classificacao sintetica"}},
	{field: fieldClsSyntheticDesc, aliases: []string{"desc cl sintetico", "descricao cl sintetico", "desc classificacao sintetica"}},
	{field: fieldClsAnalyticCode, aliases: []string{"cl analitico", "cod cl analitico", "classificacao analitica"}},
	{field: fieldClsAnalyticDesc, aliases: []string{"desc cl analitico", "descricao cl analitico", "desc classificacao analitica", "classificacao", "categoria"}},
	{field: fieldCostType, aliases: []string{"fixa variavel", "fixo variavel", "f v", "tipo custo", "tipo de custo"}},
	{field: fieldMemo, aliases: []string{"historico", "obs", "observacao", "descricao"}},
	{field: fieldDocumentType, aliases: []string{"tpdoc", "tp doc", "tipo doc", "tipo documento"}},
	{field: fieldDocumentNumber, aliases: []string{"nrdoc", "nr doc", "documento", "numero documento"}},
	{field: fieldValue, aliases: []string{"valor", "valor total", "vlr"}, required: true},
	{field: fieldLaunchDate, aliases: []string{"dtlanc", "dt lanc", "data lancamento", "emissao", "data emissao"}},
	{field: fieldDueDate, aliases: []string{"dtvenc", "dt venc", "vencimento", "data vencimento"}},
	{field: fieldMonth, aliases: []string{"mes", "mes ref", "competencia"}},
	{field: fieldBankCode, aliases: []string{"banco", "cod banco"}},
	{field: fieldBankAccount, aliases: []string{"conta", "conta corrente"}},
	{field: fieldBranch, aliases: []string{"filial", "codfilial", "cod filial", "empresa"}},
}

var payableHeaders = append(headerTable{
	{field: fieldPartyCode, aliases: []string{"codforn", "cod forn", "cod fornecedor", "codigo fornecedor"}},
	{field: fieldPartyName, aliases: []string{"fornecedor", "nome", "nome fornecedor", "razao social"}},
	{field: fieldSettled, aliases: []string{"vpago", "valor pago", "vlr pago"}},
	{field: fieldSettlementDate, aliases: []string{"dtpag", "dt pag", "data pagamento"}},
}, sharedLedgerHeaders...)

var receivableHeaders = append(headerTable{
	{field: fieldPartyCode, aliases: []string{"codcli", "cod cli", "cod cliente", "codigo cliente"}},
	{field: fieldPartyName, aliases: []string{"nome", "cliente", "nome cliente", "razao social"}},
	{field: fieldSettled, aliases: []string{"vpago", "vrecebido", "valor recebido", "vlr recebido"}},
	{field: fieldSettlementDate, aliases: []string{"dtpag", "dtrec", "dt rec", "data recebimento", "data pagamento"}},
}, sharedLedgerHeaders...)

// headerScanRows bounds the search for the header row.
const headerScanRows = 10

// columnMap is a resolved header: field to zero-based column index.
type columnMap map[field]int

func (t headerTable) resolve(header []string) columnMap {
	cols := make(columnMap)
	taken := make(map[int]bool)
	for _, h := range t {
		for idx, cell := range header {
			if taken[idx] {
				continue
			}
			if containsString(h.aliases, normalize.NormalizeText(cell)) {
				cols[h.field] = idx
				taken[idx] = true
				break
			}
		}
	}
	return cols
}

// locateHeader picks, among the first rows, the one that binds the most fields.
func (t headerTable) locateHeader(rows [][]string) (int, columnMap) {
	best, bestCols := -1, columnMap{}
	for i := 0; i < len(rows) && i < headerScanRows; i++ {
		cols := t.resolve(rows[i])
		if len(cols) > len(bestCols) {
			best, bestCols = i, cols
		}
	}
	return best, bestCols
}

// missingRequired reports required fields absent from cols, logging the closest
// header text found so a renamed column is easy to spot.
func (t headerTable) missingRequired(logger *slog.Logger, sheet string, header []string, cols columnMap) []field {
	var missing []field
	var cm *closestmatch.ClosestMatch
	for _, h := range t {
		if !h.required {
			continue
		}
		if _, ok := cols[h.field]; ok {
			continue
		}
		missing = append(missing, h.field)

		if cm == nil {
			normalized := make([]string, 0, len(header))
			for _, cell := range header {
				if n := normalize.NormalizeText(cell); n != "" {
					normalized = append(normalized, n)
				}
			}
			if len(normalized) == 0 {
				continue
			}
			cm = closestmatch.New(normalized, []int{2, 3})
		}
		logger.Warn("Required column not found",
			"sheet", sheet, "field", string(h.field), "accepted", h.aliases, "closest_header", cm.Closest(h.aliases[0]))
	}
	return missing
}
