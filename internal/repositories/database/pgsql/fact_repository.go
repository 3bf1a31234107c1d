package pgsql

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/SscSPs/financial_reports_app/internal/core/domain"
	portsrepo "github.com/SscSPs/financial_reports_app/internal/core/ports/repositories"
	"github.com/SscSPs/financial_reports_app/internal/models"
	"github.com/SscSPs/financial_reports_app/internal/utils/mapping"
)

type PgxFactRepository struct {
	BaseRepository
}

// newPgxFactRepository creates a new repository for upload-scoped facts.
func newPgxFactRepository(pool *pgxpool.Pool) portsrepo.FactRepositoryFacade {
	return &PgxFactRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.FactRepositoryFacade = (*PgxFactRepository)(nil)

// ledgerTable names the columns that differ between payables and receivables.
// Only payables carry a cost type.
type ledgerTable struct {
	name, id, class, party, settled, settledAt string
	hasCostType                                bool
}

var (
	payablesTable    = ledgerTable{"payables", "payable_id", "expense", "vendor", "value_paid", "payment_date", true}
	receivablesTable = ledgerTable{"receivables", "receivable_id", "revenue", "client", "value_received", "receipt_date", false}
)

func (t ledgerTable) columns() string {
	return fmt.Sprintf(`cc_synthetic_code, cc_synthetic_desc, cc_analytic_code, cc_analytic_desc,
		%[1]s_synthetic_code, %[1]s_synthetic_desc, %[1]s_analytic_code, %[1]s_analytic_desc,
		%[2]s_code, %[2]s_name, memo, document_type, document_number, value, %[3]s,
		launch_date, due_date, %[4]s, month, bank_code, bank_account, branch_code`,
		t.class, t.party, t.settled, t.settledAt)
}

// ledgerColumnCount is the number of columns listed by columns().
const ledgerColumnCount = 22

func (t ledgerTable) insertQuery() string {
	cols := "upload_id, " + t.columns()
	n := 1 + ledgerColumnCount
	if t.hasCostType {
		cols = "upload_id, cost_type, " + t.columns()
		n++
	}
	placeholders := make([]string, n)
	for i := range placeholders {
		placeholders[i] = fmt.Sprintf("$%d", i+1)
	}
	return fmt.Sprintf(`INSERT INTO %s (%s) VALUES (%s);`, t.name, cols, strings.Join(placeholders, ", "))
}

// selectQuery filters by upload, branch scope, optional month and optional party.
func (t ledgerTable) selectQuery() string {
	costType := "cost_type"
	if !t.hasCostType {
		costType = "NULL::text"
	}
	return fmt.Sprintf(`
		SELECT %[2]s, upload_id::text, %[3]s, %[4]s
		FROM %[1]s
		WHERE upload_id = $1
		  AND (branch_code = ANY($2) OR ($3 AND branch_code IS NULL))
		  AND ($4::smallint IS NULL OR month = $4)
		  AND ($5 = '' OR lower(trim(%[5]s_name)) = lower(trim($5)))
		ORDER BY %[2]s;
	`, t.name, t.id, costType, t.columns(), t.party)
}

func (r *PgxFactRepository) insertLedger(ctx context.Context, t ledgerTable, rows []models.LedgerRow) error {
	query := t.insertQuery()
	batch := &pgx.Batch{}
	for _, m := range rows {
		args := []any{m.UploadID}
		if t.hasCostType {
			args = append(args, m.CostType)
		}
		args = append(args,
			m.CCSyntheticCode, m.CCSyntheticDesc, m.CCAnalyticCode, m.CCAnalyticDesc,
			m.ClassSynCode, m.ClassSynDesc, m.ClassAnaCode, m.ClassAnaDesc,
			m.PartyCode, m.PartyName, m.Memo, m.DocumentType, m.DocumentNumber,
			m.Value, m.Settled, m.LaunchDate, m.DueDate, m.SettlementDate,
			m.Month, m.BankCode, m.BankAccount, m.BranchCode,
		)
		batch.Queue(query, args...)
	}
	return r.sendBatch(ctx, batch, t.name+" insert")
}

func (r *PgxFactRepository) findLedger(ctx context.Context, t ledgerTable, f portsrepo.FactFilter) ([]models.LedgerRow, error) {
	if !isUUID(f.UploadID) {
		return nil, nil
	}
	var month *int16
	if f.Month != nil {
		m := int16(*f.Month)
		month = &m
	}
	codes := f.Branches.Codes
	if codes == nil {
		codes = []int{}
	}

	rows, err := r.Pool.Query(ctx, t.selectQuery(), f.UploadID, codes, f.Branches.Consolidated, month, f.Party)
	if err != nil {
		return nil, fmt.Errorf("failed to query %s: %w", t.name, err)
	}
	defer rows.Close()

	result, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.LedgerRow, error) {
		var m models.LedgerRow
		err := row.Scan(
			&m.ID, &m.UploadID, &m.CostType,
			&m.CCSyntheticCode, &m.CCSyntheticDesc, &m.CCAnalyticCode, &m.CCAnalyticDesc,
			&m.ClassSynCode, &m.ClassSynDesc, &m.ClassAnaCode, &m.ClassAnaDesc,
			&m.PartyCode, &m.PartyName, &m.Memo, &m.DocumentType, &m.DocumentNumber,
			&m.Value, &m.Settled, &m.LaunchDate, &m.DueDate, &m.SettlementDate,
			&m.Month, &m.BankCode, &m.BankAccount, &m.BranchCode,
		)
		return m, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan %s: %w", t.name, err)
	}
	return result, nil
}

// InsertPayables appends payables in one batch.
func (r *PgxFactRepository) InsertPayables(ctx context.Context, rows []domain.Payable) error {
	ms := make([]models.LedgerRow, len(rows))
	for i, p := range rows {
		ms[i] = mapping.ToModelPayable(p)
	}
	return r.insertLedger(ctx, payablesTable, ms)
}

// InsertReceivables appends receivables in one batch.
func (r *PgxFactRepository) InsertReceivables(ctx context.Context, rows []domain.Receivable) error {
	ms := make([]models.LedgerRow, len(rows))
	for i, rc := range rows {
		ms[i] = mapping.ToModelReceivable(rc)
	}
	return r.insertLedger(ctx, receivablesTable, ms)
}

// FindPayables returns the payables matching the filter.
func (r *PgxFactRepository) FindPayables(ctx context.Context, f portsrepo.FactFilter) ([]domain.Payable, error) {
	ms, err := r.findLedger(ctx, payablesTable, f)
	if err != nil {
		return nil, err
	}
	out := make([]domain.Payable, len(ms))
	for i, m := range ms {
		out[i] = mapping.ToDomainPayable(m)
	}
	return out, nil
}

// FindReceivables returns the receivables matching the filter.
func (r *PgxFactRepository) FindReceivables(ctx context.Context, f portsrepo.FactFilter) ([]domain.Receivable, error) {
	ms, err := r.findLedger(ctx, receivablesTable, f)
	if err != nil {
		return nil, err
	}
	out := make([]domain.Receivable, len(ms))
	for i, m := range ms {
		out[i] = mapping.ToDomainReceivable(m)
	}
	return out, nil
}

// InsertPayrollLines appends payroll lines in one batch.
func (r *PgxFactRepository) InsertPayrollLines(ctx context.Context, rows []domain.PayrollLine) error {
	query := `
		INSERT INTO payroll_lines (upload_id, area, cost_center_code, employee_name, payment_type, employment_type, months, total)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
	`
	batch := &pgx.Batch{}
	for _, l := range rows {
		m := mapping.ToModelPayrollLine(l)
		batch.Queue(query, m.UploadID, m.Area, m.CostCenterCode, m.EmployeeName, m.PaymentType, m.EmploymentType, m.Months, m.Total)
	}
	return r.sendBatch(ctx, batch, "payroll insert")
}

// FindPayrollLines returns every payroll line of the upload.
func (r *PgxFactRepository) FindPayrollLines(ctx context.Context, uploadID string) ([]domain.PayrollLine, error) {
	if !isUUID(uploadID) {
		return nil, nil
	}
	query := `
		SELECT payroll_line_id, upload_id::text, area, cost_center_code, employee_name, payment_type, employment_type, months, total
		FROM payroll_lines
		WHERE upload_id = $1
		ORDER BY payroll_line_id;
	`
	rows, err := r.Pool.Query(ctx, query, uploadID)
	if err != nil {
		return nil, fmt.Errorf("failed to query payroll lines: %w", err)
	}
	defer rows.Close()

	ms, err := pgx.CollectRows(rows, pgx.RowToStructByPos[models.PayrollLine])
	if err != nil {
		return nil, fmt.Errorf("failed to scan payroll lines: %w", err)
	}
	out := make([]domain.PayrollLine, len(ms))
	for i, m := range ms {
		out[i] = mapping.ToDomainPayrollLine(m)
	}
	return out, nil
}

// InsertBankBalances appends bank balances in one batch.
func (r *PgxFactRepository) InsertBankBalances(ctx context.Context, rows []domain.BankBalance) error {
	query := `
		INSERT INTO bank_balances (upload_id, bank_name, account_type, total_balance, system_balance, deviation, month, year)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
	`
	batch := &pgx.Batch{}
	for _, b := range rows {
		m := mapping.ToModelBankBalance(b)
		batch.Queue(query, m.UploadID, m.BankName, m.AccountType, m.TotalBalance, m.SystemBalance, m.Deviation, m.Month, m.Year)
	}
	return r.sendBatch(ctx, batch, "bank balance insert")
}

// FindBankBalances returns every bank balance of the upload.
func (r *PgxFactRepository) FindBankBalances(ctx context.Context, uploadID string) ([]domain.BankBalance, error) {
	if !isUUID(uploadID) {
		return nil, nil
	}
	query := `
		SELECT bank_balance_id, upload_id::text, bank_name, account_type, total_balance, system_balance, deviation, month, year
		FROM bank_balances
		WHERE upload_id = $1
		ORDER BY bank_balance_id;
	`
	rows, err := r.Pool.Query(ctx, query, uploadID)
	if err != nil {
		return nil, fmt.Errorf("failed to query bank balances: %w", err)
	}
	defer rows.Close()

	ms, err := pgx.CollectRows(rows, pgx.RowToStructByPos[models.BankBalance])
	if err != nil {
		return nil, fmt.Errorf("failed to scan bank balances: %w", err)
	}
	out := make([]domain.BankBalance, len(ms))
	for i, m := range ms {
		out[i] = mapping.ToDomainBankBalance(m)
	}
	return out, nil
}

// DistinctBranchCodes returns the branch codes used by the upload's ledgers.
func (r *PgxFactRepository) DistinctBranchCodes(ctx context.Context, uploadID string) ([]int, error) {
	if !isUUID(uploadID) {
		return []int{}, nil
	}
	query := `
		SELECT branch_code FROM payables WHERE upload_id = $1 AND branch_code IS NOT NULL
		UNION
		SELECT branch_code FROM receivables WHERE upload_id = $1 AND branch_code IS NOT NULL
		ORDER BY 1;
	`
	rows, err := r.Pool.Query(ctx, query, uploadID)
	if err != nil {
		return nil, fmt.Errorf("failed to query branch codes: %w", err)
	}
	defer rows.Close()

	codes, err := pgx.CollectRows(rows, pgx.RowTo[int])
	if err != nil {
		return nil, fmt.Errorf("failed to scan branch codes: %w", err)
	}
	return codes, nil
}

// CountFacts counts every fact row of the upload.
func (r *PgxFactRepository) CountFacts(ctx context.Context, uploadID string) (int, error) {
	if !isUUID(uploadID) {
		return 0, nil
	}
	query := `
		SELECT (SELECT COUNT(*) FROM payables WHERE upload_id = $1)
		     + (SELECT COUNT(*) FROM receivables WHERE upload_id = $1)
		     + (SELECT COUNT(*) FROM payroll_lines WHERE upload_id = $1)
		     + (SELECT COUNT(*) FROM bank_balances WHERE upload_id = $1);
	`
	var n int64
	if err := r.Pool.QueryRow(ctx, query, uploadID).Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count facts: %w", err)
	}
	return int(n), nil
}
