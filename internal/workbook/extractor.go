package workbook

import (
	"log/slog"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/SscSPs/financial_reports_app/internal/core/domain"
	"github.com/SscSPs/financial_reports_app/internal/utils/normalize"
)

// Extractor runs every sheet rule against a workbook. Data-quality problems never
// fail extraction: missing sheets yield no records and malformed rows are skipped.
type Extractor struct {
	logger *slog.Logger
}

// NewExtractor creates an Extractor. A nil logger falls back to slog.Default.
func NewExtractor(logger *slog.Logger) *Extractor {
	if logger == nil {
		logger = slog.Default()
	}
	return &Extractor{logger: logger}
}

// Extract reads all known sheets of wb into one batch. Records are not yet stamped
// with an upload ID.
func (e *Extractor) Extract(wb Workbook) *domain.Batch {
	batch := &domain.Batch{}
	names := wb.SheetNames()

	for _, rule := range sheetRules {
		sheet, ok := rule.findSheet(names)
		if !ok {
			e.logger.Debug("Sheet not present", "kind", string(rule.kind), "aliases", rule.aliases)
			continue
		}
		rows, err := wb.Rows(sheet)
		if err != nil {
			e.logger.Warn("Failed to read sheet", "sheet", sheet, "error", err)
			continue
		}

		logger := e.logger.With("sheet", sheet, "kind", string(rule.kind))
		switch rule.kind {
		case kindAccounts:
			batch.Accounts = extractAccounts(logger, rows)
		case kindCostCenters:
			batch.CostCenters = extractCostCenters(logger, rows)
		case kindVendors:
			batch.Vendors = extractVendors(logger, rows)
		case kindPayables:
			batch.Payables = extractPayables(logger, sheet, rows)
		case kindReceivables:
			batch.Receivables = extractReceivables(logger, sheet, rows)
		case kindPayroll:
			batch.PayrollLines = extractPayroll(logger, rows)
		case kindBankBalances:
			batch.BankBalances = extractBankBalances(logger, rows)
		}
	}
	return batch
}

func cell(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

func (c columnMap) text(row []string, f field) string {
	idx, ok := c[f]
	if !ok {
		return ""
	}
	return cell(row, idx)
}

// value returns the cell of f typed for the normalizer: plain numeric text becomes
// a float64 (raw numbers and date serials), anything else stays a string.
func (c columnMap) value(row []string, f field) any {
	return typed(c.text(row, f))
}

func typed(s string) any {
	if s == "" {
		return nil
	}
	if !strings.ContainsRune(s, ',') {
		if f, err := strconv.ParseFloat(s, 64); err == nil {
			return f
		}
	}
	return s
}

func isBlank(row []string) bool {
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}

// twoColumn reads the positional (code, description) reference sheets.
func twoColumn(logger *slog.Logger, rows [][]string, emit func(code, desc string)) {
	for i, row := range rows {
		code, desc := cell(row, 0), cell(row, 1)
		if code == "" || desc == "" {
			if !isBlank(row) {
				logger.Debug("Skipping reference row without code or description", "row", i+1)
			}
			continue
		}
		if i < headerScanRows && containsString(referenceHeaderCodes, normalize.NormalizeText(code)) {
			continue
		}
		emit(code, desc)
	}
}

func extractAccounts(logger *slog.Logger, rows [][]string) []domain.ChartOfAccountsEntry {
	var out []domain.ChartOfAccountsEntry
	twoColumn(logger, rows, func(code, desc string) {
		out = append(out, domain.ChartOfAccountsEntry{Code: code, Description: desc, Category: inferCategory(code)})
	})
	return out
}

func extractCostCenters(logger *slog.Logger, rows [][]string) []domain.CostCenterEntry {
	var out []domain.CostCenterEntry
	twoColumn(logger, rows, func(code, desc string) {
		out = append(out, domain.CostCenterEntry{Code: code, Description: desc})
	})
	return out
}

func extractVendors(logger *slog.Logger, rows [][]string) []domain.VendorEntry {
	var out []domain.VendorEntry
	twoColumn(logger, rows, func(code, name string) {
		out = append(out, domain.VendorEntry{Code: code, Name: name})
	})
	return out
}

// ledgerRow holds the fields common to payables and receivables.
type ledgerRow struct {
	costCenter     domain.Classification
	class          domain.Classification
	costType       *domain.CostType
	partyCode      string
	partyName      string
	memo           string
	documentType   string
	documentNumber string
	value          int64
	settled        *int64
	launchDate     *time.Time
	dueDate        *time.Time
	settlementDate *time.Time
	month          *int
	bankCode       string
	bankAccount    string
	branchCode     *int
}

// extractLedger reads a header-driven payables or receivables sheet. A row needs a
// value cell; everything else is optional.
func extractLedger(logger *slog.Logger, sheet string, rows [][]string, table headerTable) []ledgerRow {
	headerIdx, cols := table.locateHeader(rows)
	if headerIdx < 0 {
		logger.Warn("No header row found")
		return nil
	}
	if missing := table.missingRequired(logger, sheet, rows[headerIdx], cols); len(missing) > 0 {
		return nil
	}

	var out []ledgerRow
	for i := headerIdx + 1; i < len(rows); i++ {
		row := rows[i]
		if isBlank(row) {
			continue
		}
		rawValue := cols.text(row, fieldValue)
		if rawValue == "" {
			logger.Debug("Skipping row without value", "row", i+1)
			continue
		}
		if strings.HasPrefix(normalize.NormalizeText(cols.text(row, fieldPartyName)), "total") {
			logger.Debug("Skipping subtotal row", "row", i+1)
			continue
		}

		lr := ledgerRow{
			costCenter: domain.Classification{
				SyntheticCode: cols.text(row, fieldCCSyntheticCode),
				SyntheticDesc: cols.text(row, fieldCCSyntheticDesc),
				AnalyticCode:  cols.text(row, fieldCCAnalyticCode),
				AnalyticDesc:  cols.text(row, fieldCCAnalyticDesc),
			},
			class: domain.Classification{
				SyntheticCode: cols.text(row, fieldClsSyntheticCode),
				SyntheticDesc: cols.text(row, fieldClsSyntheticDesc),
				AnalyticCode:  cols.text(row, fieldClsAnalyticCode),
				AnalyticDesc:  cols.text(row, fieldClsAnalyticDesc),
			},
			costType:       parseCostType(cols.text(row, fieldCostType)),
			partyCode:      cols.text(row, fieldPartyCode),
			partyName:      cols.text(row, fieldPartyName),
			memo:           cols.text(row, fieldMemo),
			documentType:   cols.text(row, fieldDocumentType),
			documentNumber: cols.text(row, fieldDocumentNumber),
			value:          normalize.AbsCents(normalize.ToCents(typed(rawValue))),
			launchDate:     normalize.ParseFlexibleDate(cols.value(row, fieldLaunchDate)),
			dueDate:        normalize.ParseFlexibleDate(cols.value(row, fieldDueDate)),
			settlementDate: normalize.ParseFlexibleDate(cols.value(row, fieldSettlementDate)),
			bankCode:       cols.text(row, fieldBankCode),
			bankAccount:    cols.text(row, fieldBankAccount),
			branchCode:     normalize.ParseBranchCode(cols.value(row, fieldBranch)),
		}
		if raw := cols.value(row, fieldSettled); raw != nil {
			settled := normalize.AbsCents(normalize.ToCents(raw))
			lr.settled = &settled
		}
		lr.month = normalize.ParseMonth(cols.value(row, fieldMonth))
		if lr.month == nil {
			lr.month = normalize.MonthOf(lr.launchDate)
		}
		out = append(out, lr)
	}
	return out
}

func extractPayables(logger *slog.Logger, sheet string, rows [][]string) []domain.Payable {
	ledger := extractLedger(logger, sheet, rows, payableHeaders)
	out := make([]domain.Payable, 0, len(ledger))
	for _, lr := range ledger {
		out = append(out, domain.Payable{
			CostCenter:     lr.costCenter,
			Expense:        lr.class,
			CostType:       lr.costType,
			VendorCode:     lr.partyCode,
			VendorName:     lr.partyName,
			Memo:           lr.memo,
			DocumentType:   lr.documentType,
			DocumentNumber: lr.documentNumber,
			Value:          lr.value,
			ValuePaid:      lr.settled,
			LaunchDate:     lr.launchDate,
			DueDate:        lr.dueDate,
			PaymentDate:    lr.settlementDate,
			Month:          lr.month,
			BankCode:       lr.bankCode,
			BankAccount:    lr.bankAccount,
			BranchCode:     lr.branchCode,
		})
	}
	return out
}

func extractReceivables(logger *slog.Logger, sheet string, rows [][]string) []domain.Receivable {
	ledger := extractLedger(logger, sheet, rows, receivableHeaders)
	out := make([]domain.Receivable, 0, len(ledger))
	for _, lr := range ledger {
		out = append(out, domain.Receivable{
			CostCenter:     lr.costCenter,
			Revenue:        lr.class,
			ClientCode:     lr.partyCode,
			ClientName:     lr.partyName,
			Memo:           lr.memo,
			DocumentType:   lr.documentType,
			DocumentNumber: lr.documentNumber,
			Value:          lr.value,
			ValueReceived:  lr.settled,
			LaunchDate:     lr.launchDate,
			DueDate:        lr.dueDate,
			ReceiptDate:    lr.settlementDate,
			Month:          lr.month,
			BankCode:       lr.bankCode,
			BankAccount:    lr.bankAccount,
			BranchCode:     lr.branchCode,
		})
	}
	return out
}

// extractPayroll reads the positional payroll sheet. Data starts after the header
// row (the one naming the employee column) or at the top when there is none. Blank
// area cells inherit the area above, which is how merged cells read back.
func extractPayroll(logger *slog.Logger, rows [][]string) []domain.PayrollLine {
	start := 0
	for i := 0; i < len(rows) && i < headerScanRows; i++ {
		if containsString(payrollNameHeaders, normalize.NormalizeText(cell(rows[i], payrollColName))) {
			start = i + 1
			break
		}
	}

	var out []domain.PayrollLine
	area := ""
	for i := start; i < len(rows); i++ {
		row := rows[i]
		if a := cell(row, payrollColArea); a != "" {
			area = a
		}
		name := cell(row, payrollColName)
		if name == "" {
			continue
		}
		if strings.Contains(normalize.NormalizeText(name), "total") ||
			strings.HasPrefix(normalize.NormalizeText(cell(row, payrollColArea)), "total") {
			logger.Debug("Skipping payroll subtotal row", "row", i+1)
			continue
		}

		line := domain.PayrollLine{
			Area:           area,
			CostCenterCode: cell(row, payrollColCostCenter),
			EmployeeName:   name,
			PaymentType:    cell(row, payrollColPaymentType),
			EmploymentType: cell(row, payrollColEmploymentType),
			Total:          normalize.ToCents(typed(cell(row, payrollColTotal))),
		}
		for m := 0; m < domain.PayrollMonths; m++ {
			line.Months[m] = normalize.ToCents(typed(cell(row, payrollColFirstMonth+m)))
		}
		out = append(out, line)
	}
	return out
}

var periodRegex = regexp.MustCompile(`\b(\d{1,2})/(\d{4})\b`)

// extractBankBalances reads the block that follows the bank statement marker.
// Columns are relative to the marker: name, account type, total, system, deviation.
func extractBankBalances(logger *slog.Logger, rows [][]string) []domain.BankBalance {
	markerRow, markerCol := -1, -1
	for i, row := range rows {
		for j, c := range row {
			n := normalize.NormalizeText(c)
			for _, m := range bankMarkers {
				if strings.Contains(n, m) {
					markerRow, markerCol = i, j
					break
				}
			}
			if markerRow >= 0 {
				break
			}
		}
		if markerRow >= 0 {
			break
		}
	}
	if markerRow < 0 {
		logger.Warn("Bank statement marker not found")
		return nil
	}

	month, year := statementPeriod(rows[markerRow])

	var out []domain.BankBalance
	for i := markerRow + 1; i < len(rows); i++ {
		row := rows[i]
		name := cell(row, markerCol)
		n := normalize.NormalizeText(name)
		if strings.HasPrefix(n, bankTerminator) {
			break
		}
		if name == "" || containsString(bankHeaderRows, n) {
			continue
		}

		total := normalize.ToCents(typed(cell(row, markerCol+2)))
		system := normalize.ToCents(typed(cell(row, markerCol+3)))
		rawDeviation := cell(row, markerCol+4)
		deviation := total - system
		if rawDeviation != "" {
			deviation = normalize.ToCents(typed(rawDeviation))
		}
		out = append(out, domain.BankBalance{
			BankName:      name,
			AccountType:   cell(row, markerCol+1),
			TotalBalance:  total,
			SystemBalance: system,
			Deviation:     deviation,
			Month:         month,
			Year:          year,
		})
	}
	return out
}

// statementPeriod looks for an MM/YYYY cell on the marker row.
func statementPeriod(row []string) (*int, *int) {
	for _, c := range row {
		m := periodRegex.FindStringSubmatch(c)
		if m == nil {
			continue
		}
		month, _ := strconv.Atoi(m[1])
		year, _ := strconv.Atoi(m[2])
		if month < 1 || month > 12 {
			continue
		}
		return &month, &year
	}
	return nil, nil
}
