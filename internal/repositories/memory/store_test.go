package memory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SscSPs/financial_reports_app/internal/apperrors"
	"github.com/SscSPs/financial_reports_app/internal/core/domain"
	portsrepo "github.com/SscSPs/financial_reports_app/internal/core/ports/repositories"
	"github.com/SscSPs/financial_reports_app/internal/utils/pagination"
)

func intPtr(i int) *int { return &i }

func TestFinishUploadIsSingleShot(t *testing.T) {
	ctx := context.Background()
	s := NewStore()
	require.NoError(t, s.SaveUpload(ctx, domain.Upload{UploadID: "u1", Status: domain.UploadProcessing}))
	assert.ErrorIs(t, s.SaveUpload(ctx, domain.Upload{UploadID: "u1"}), apperrors.ErrDuplicate)

	require.NoError(t, s.FinishUpload(ctx, "u1", domain.UploadCompleted, nil, time.Now()))
	assert.ErrorIs(t, s.FinishUpload(ctx, "u1", domain.UploadFailed, nil, time.Now()), apperrors.ErrNotFound)

	u, err := s.FindUploadByID(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, domain.UploadCompleted, u.Status)
	assert.NotNil(t, u.FinishedAt)
}

func TestListUploadsPaging(t *testing.T) {
	ctx := context.Background()
	s := NewStore()
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	for i, id := range []string{"a", "b", "c"} {
		require.NoError(t, s.SaveUpload(ctx, domain.Upload{UploadID: id, CreatedAt: base.Add(time.Duration(i) * time.Hour)}))
	}

	page, err := s.ListUploads(ctx, 2, nil)
	require.NoError(t, err)
	require.Len(t, page, 2)
	assert.Equal(t, "c", page[0].UploadID)
	assert.Equal(t, "b", page[1].UploadID)

	next, err := s.ListUploads(ctx, 2, &pagination.Cursor{CreatedAt: page[1].CreatedAt, ID: page[1].UploadID})
	require.NoError(t, err)
	require.Len(t, next, 1)
	assert.Equal(t, "a", next[0].UploadID)
}

func TestFactFilter(t *testing.T) {
	ctx := context.Background()
	s := NewStore()
	require.NoError(t, s.InsertPayables(ctx, []domain.Payable{
		{UploadID: "u1", VendorName: "ACME", Month: intPtr(3), BranchCode: intPtr(1)},
		{UploadID: "u1", VendorName: "Other", Month: intPtr(4), BranchCode: intPtr(2)},
		{UploadID: "u1", VendorName: "acme ", Month: intPtr(3)},
		{UploadID: "u2", VendorName: "ACME", Month: intPtr(3), BranchCode: intPtr(1)},
	}))

	explicit := portsrepo.FactFilter{UploadID: "u1", Branches: domain.BranchScope{Codes: []int{1, 2}}}
	rows, err := s.FindPayables(ctx, explicit)
	require.NoError(t, err)
	assert.Len(t, rows, 2, "rows without a branch need a consolidated scope")

	consolidated := portsrepo.FactFilter{UploadID: "u1", Branches: domain.BranchScope{Codes: []int{1, 2}, Consolidated: true}}
	rows, err = s.FindPayables(ctx, consolidated)
	require.NoError(t, err)
	assert.Len(t, rows, 3)

	consolidated.Month = intPtr(3)
	consolidated.Party = "ACME"
	rows, err = s.FindPayables(ctx, consolidated)
	require.NoError(t, err)
	assert.Len(t, rows, 2)
	assert.NotZero(t, rows[0].PayableID)

	codes, err := s.DistinctBranchCodes(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2}, codes)

	n, err := s.CountFacts(ctx, "u2")
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestRegisterBranchesKeepsExistingNames(t *testing.T) {
	ctx := context.Background()
	s := NewStore()
	added, err := s.RegisterBranches(ctx, []domain.Branch{{Code: 1, Name: "Matriz"}})
	require.NoError(t, err)
	assert.Equal(t, 1, added)

	added, err = s.RegisterBranches(ctx, []domain.Branch{{Code: 1, Name: "Filial 1"}, {Code: 3, Name: "Filial 3"}})
	require.NoError(t, err)
	assert.Equal(t, 1, added)

	branches, err := s.FindBranchesByCodes(ctx, []int{3, 1, 9})
	require.NoError(t, err)
	assert.Equal(t, []domain.Branch{{Code: 1, Name: "Matriz"}, {Code: 3, Name: "Filial 3"}}, branches)

	require.NoError(t, s.ClearAll(ctx))
	branches, err = s.FindBranchesByCodes(ctx, []int{1, 3})
	require.NoError(t, err)
	assert.Empty(t, branches)
}
