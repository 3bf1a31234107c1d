package dto_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SscSPs/financial_reports_app/internal/core/domain"
	"github.com/SscSPs/financial_reports_app/internal/dto"
)

func TestBranchCodes(t *testing.T) {
	cases := []struct {
		in   string
		want []int
	}{
		{"", nil},
		{"consolidated", nil},
		{" Consolidated ", nil},
		{"3", []int{3}},
		{"7, 2,,3", []int{2, 3, 7}},
	}
	for _, tc := range cases {
		got, err := dto.ReportQueryParams{Branches: tc.in}.BranchCodes()
		require.NoError(t, err, tc.in)
		assert.Equal(t, tc.want, got, tc.in)
	}

	for _, bad := range []string{"abc", "1,x", "0", "-2", "4294967297"} {
		_, err := dto.ReportQueryParams{Branches: bad}.BranchCodes()
		assert.Error(t, err, bad)
	}
}

func TestToScopeResponse_EmptyBranchesIsEmptyList(t *testing.T) {
	resp := dto.ToScopeResponse(domain.Scope{UploadID: "u", ViewMode: domain.ViewAll, Branches: domain.BranchScope{Consolidated: true}})
	assert.Equal(t, []int{}, resp.Branches)
	assert.True(t, resp.Consolidated)
	assert.Equal(t, "all", resp.ViewMode)
}

func TestRegisterValidators_Idempotent(t *testing.T) {
	require.NoError(t, dto.RegisterValidators())
	require.NoError(t, dto.RegisterValidators())
}
