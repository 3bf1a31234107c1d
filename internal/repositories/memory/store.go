// Package memory is an in-process implementation of the repository ports. It backs
// the service tests and the memory storage driver.
package memory

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/SscSPs/financial_reports_app/internal/apperrors"
	"github.com/SscSPs/financial_reports_app/internal/core/domain"
	portsrepo "github.com/SscSPs/financial_reports_app/internal/core/ports/repositories"
	"github.com/SscSPs/financial_reports_app/internal/utils/pagination"
)

// Store keeps every table in maps guarded by a single RWMutex.
type Store struct {
	mu sync.RWMutex

	uploads     map[string]domain.Upload
	accounts    map[string]domain.ChartOfAccountsEntry
	costCenters map[string]domain.CostCenterEntry
	vendors     map[string]domain.VendorEntry
	branches    map[int]domain.Branch

	payables     []domain.Payable
	receivables  []domain.Receivable
	payrollLines []domain.PayrollLine
	bankBalances []domain.BankBalance
	nextID       int64
}

// NewStore creates an empty store.
func NewStore() *Store {
	s := &Store{}
	s.reset()
	return s
}

func (s *Store) reset() {
	s.uploads = make(map[string]domain.Upload)
	s.accounts = make(map[string]domain.ChartOfAccountsEntry)
	s.costCenters = make(map[string]domain.CostCenterEntry)
	s.vendors = make(map[string]domain.VendorEntry)
	s.branches = make(map[int]domain.Branch)
	s.payables = nil
	s.receivables = nil
	s.payrollLines = nil
	s.bankBalances = nil
}

// NewRepositoryProvider wires one Store into every repository port.
func NewRepositoryProvider(store *Store) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		UploadRepo:      store,
		ReferenceRepo:   store,
		FactRepo:        store,
		MaintenanceRepo: store,
	}
}

var (
	_ portsrepo.UploadRepositoryFacade    = (*Store)(nil)
	_ portsrepo.ReferenceRepositoryFacade = (*Store)(nil)
	_ portsrepo.FactRepositoryFacade      = (*Store)(nil)
	_ portsrepo.MaintenanceRepository     = (*Store)(nil)
)

func (s *Store) id() int64 {
	s.nextID++
	return s.nextID
}

// Uploads

func (s *Store) SaveUpload(_ context.Context, upload domain.Upload) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.uploads[upload.UploadID]; ok {
		return apperrors.ErrDuplicate
	}
	s.uploads[upload.UploadID] = upload
	return nil
}

func (s *Store) FinishUpload(_ context.Context, uploadID string, status domain.UploadStatus, errorMessage *string, finishedAt time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.uploads[uploadID]
	if !ok || u.Status != domain.UploadProcessing {
		return apperrors.ErrNotFound
	}
	u.Status = status
	u.ErrorMessage = errorMessage
	u.FinishedAt = &finishedAt
	s.uploads[uploadID] = u
	return nil
}

func (s *Store) FindUploadByID(_ context.Context, uploadID string) (*domain.Upload, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	u, ok := s.uploads[uploadID]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return &u, nil
}

func (s *Store) ListUploads(_ context.Context, limit int, after *pagination.Cursor) ([]domain.Upload, error) {
	if limit <= 0 {
		return []domain.Upload{}, nil
	}
	s.mu.RLock()
	all := make([]domain.Upload, 0, len(s.uploads))
	for _, u := range s.uploads {
		all = append(all, u)
	}
	s.mu.RUnlock()

	sort.Slice(all, func(i, j int) bool {
		if all[i].CreatedAt.Equal(all[j].CreatedAt) {
			return all[i].UploadID > all[j].UploadID
		}
		return all[i].CreatedAt.After(all[j].CreatedAt)
	})

	out := make([]domain.Upload, 0, limit)
	for _, u := range all {
		if after != nil && !after.Before(u.CreatedAt, u.UploadID) {
			continue
		}
		if len(out) == limit {
			break
		}
		out = append(out, u)
	}
	return out, nil
}

// Reference tables

func (s *Store) UpsertAccounts(_ context.Context, entries []domain.ChartOfAccountsEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, e := range entries {
		s.accounts[e.Code] = e
	}
	return nil
}

func (s *Store) UpsertCostCenters(_ context.Context, entries []domain.CostCenterEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, e := range entries {
		s.costCenters[e.Code] = e
	}
	return nil
}

func (s *Store) UpsertVendors(_ context.Context, entries []domain.VendorEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, e := range entries {
		s.vendors[e.Code] = e
	}
	return nil
}

func (s *Store) RegisterBranches(_ context.Context, branches []domain.Branch) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	added := 0
	for _, b := range branches {
		if _, ok := s.branches[b.Code]; ok {
			continue
		}
		s.branches[b.Code] = b
		added++
	}
	return added, nil
}

func (s *Store) ListAccounts(_ context.Context) ([]domain.ChartOfAccountsEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.ChartOfAccountsEntry, 0, len(s.accounts))
	for _, e := range s.accounts {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Code < out[j].Code })
	return out, nil
}

func (s *Store) ListCostCenters(_ context.Context) ([]domain.CostCenterEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.CostCenterEntry, 0, len(s.costCenters))
	for _, e := range s.costCenters {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Code < out[j].Code })
	return out, nil
}

func (s *Store) ListVendors(_ context.Context) ([]domain.VendorEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.VendorEntry, 0, len(s.vendors))
	for _, e := range s.vendors {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Code < out[j].Code })
	return out, nil
}

func (s *Store) FindBranchesByCodes(_ context.Context, codes []int) ([]domain.Branch, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Branch, 0, len(codes))
	for _, c := range codes {
		if b, ok := s.branches[c]; ok {
			out = append(out, b)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Code < out[j].Code })
	return out, nil
}

// Facts

func (s *Store) InsertPayables(_ context.Context, rows []domain.Payable) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, r := range rows {
		r.PayableID = s.id()
		s.payables = append(s.payables, r)
	}
	return nil
}

func (s *Store) InsertReceivables(_ context.Context, rows []domain.Receivable) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, r := range rows {
		r.ReceivableID = s.id()
		s.receivables = append(s.receivables, r)
	}
	return nil
}

func (s *Store) InsertPayrollLines(_ context.Context, rows []domain.PayrollLine) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, r := range rows {
		r.PayrollLineID = s.id()
		s.payrollLines = append(s.payrollLines, r)
	}
	return nil
}

func (s *Store) InsertBankBalances(_ context.Context, rows []domain.BankBalance) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, r := range rows {
		r.BankBalanceID = s.id()
		s.bankBalances = append(s.bankBalances, r)
	}
	return nil
}

func matchFilter(f portsrepo.FactFilter, uploadID string, month, branch *int, party string) bool {
	if uploadID != f.UploadID || !f.Branches.Includes(branch) {
		return false
	}
	if f.Month != nil && (month == nil || *month != *f.Month) {
		return false
	}
	return f.Party == "" || strings.EqualFold(strings.TrimSpace(party), strings.TrimSpace(f.Party))
}

func (s *Store) FindPayables(_ context.Context, f portsrepo.FactFilter) ([]domain.Payable, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := []domain.Payable{}
	for _, p := range s.payables {
		if matchFilter(f, p.UploadID, p.Month, p.BranchCode, p.VendorName) {
			out = append(out, p)
		}
	}
	return out, nil
}

func (s *Store) FindReceivables(_ context.Context, f portsrepo.FactFilter) ([]domain.Receivable, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := []domain.Receivable{}
	for _, r := range s.receivables {
		if matchFilter(f, r.UploadID, r.Month, r.BranchCode, r.ClientName) {
			out = append(out, r)
		}
	}
	return out, nil
}

func (s *Store) FindPayrollLines(_ context.Context, uploadID string) ([]domain.PayrollLine, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := []domain.PayrollLine{}
	for _, l := range s.payrollLines {
		if l.UploadID == uploadID {
			out = append(out, l)
		}
	}
	return out, nil
}

func (s *Store) FindBankBalances(_ context.Context, uploadID string) ([]domain.BankBalance, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := []domain.BankBalance{}
	for _, b := range s.bankBalances {
		if b.UploadID == uploadID {
			out = append(out, b)
		}
	}
	return out, nil
}

func (s *Store) DistinctBranchCodes(_ context.Context, uploadID string) ([]int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	seen := make(map[int]bool)
	for _, p := range s.payables {
		if p.UploadID == uploadID && p.BranchCode != nil {
			seen[*p.BranchCode] = true
		}
	}
	for _, r := range s.receivables {
		if r.UploadID == uploadID && r.BranchCode != nil {
			seen[*r.BranchCode] = true
		}
	}
	codes := make([]int, 0, len(seen))
	for c := range seen {
		codes = append(codes, c)
	}
	sort.Ints(codes)
	return codes, nil
}

func (s *Store) CountFacts(_ context.Context, uploadID string) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	n := 0
	for _, p := range s.payables {
		if p.UploadID == uploadID {
			n++
		}
	}
	for _, r := range s.receivables {
		if r.UploadID == uploadID {
			n++
		}
	}
	for _, l := range s.payrollLines {
		if l.UploadID == uploadID {
			n++
		}
	}
	for _, b := range s.bankBalances {
		if b.UploadID == uploadID {
			n++
		}
	}
	return n, nil
}

// Maintenance

func (s *Store) ClearAll(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.reset()
	return nil
}
