package dto

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/SscSPs/financial_reports_app/internal/core/domain"
)

// ReportQueryParams are the scope parameters shared by every report endpoint.
// Branches is a comma separated list of branch codes, or "consolidated".
type ReportQueryParams struct {
	Month    *int   `form:"month" binding:"omitempty,min=1,max=12"`
	Branches string `form:"branches"`
	ViewMode string `form:"viewMode" binding:"omitempty,viewmode"`
	Limit    int    `form:"limit" binding:"omitempty,min=1,max=100"`
}

// BranchCodes parses Branches. Empty and the consolidated sentinel return nil.
func (p ReportQueryParams) BranchCodes() ([]int, error) {
	raw := strings.TrimSpace(p.Branches)
	if raw == "" || strings.EqualFold(raw, domain.ConsolidatedScope) {
		return nil, nil
	}
	var codes []int
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		code, err := strconv.ParseInt(part, 10, 32)
		if err != nil || code <= 0 {
			return nil, fmt.Errorf("invalid branch code %q", part)
		}
		codes = append(codes, int(code))
	}
	sort.Ints(codes)
	return codes, nil
}

// ScopeResponse echoes the resolved scope of a report.
type ScopeResponse struct {
	UploadID     string `json:"uploadID"`
	Month        *int   `json:"month,omitempty"`
	Branches     []int  `json:"branches"`
	Consolidated bool   `json:"consolidated"`
	ViewMode     string `json:"viewMode"`
}

// ReportResponse is the envelope of every report endpoint.
type ReportResponse[T any] struct {
	Scope ScopeResponse `json:"scope"`
	Data  T             `json:"data"`
}

// ToScopeResponse converts a resolved domain.Scope.
func ToScopeResponse(s domain.Scope) ScopeResponse {
	branches := s.Branches.Codes
	if branches == nil {
		branches = []int{}
	}
	return ScopeResponse{
		UploadID:     s.UploadID,
		Month:        s.Month,
		Branches:     branches,
		Consolidated: s.Branches.Consolidated,
		ViewMode:     string(s.ViewMode),
	}
}

// NewReportResponse wraps data with its scope.
func NewReportResponse[T any](s domain.Scope, data T) ReportResponse[T] {
	return ReportResponse[T]{Scope: ToScopeResponse(s), Data: data}
}

// BranchesResponse lists the branches of an upload.
type BranchesResponse struct {
	Branches []domain.Branch `json:"branches"`
}

// ReferenceQueryParams filters the chart of accounts listing.
type ReferenceQueryParams struct {
	Category string `form:"category"`
}

// AccountsResponse lists chart-of-accounts entries.
type AccountsResponse struct {
	Accounts []domain.ChartOfAccountsEntry `json:"accounts"`
}

// CostCentersResponse lists cost centers.
type CostCentersResponse struct {
	CostCenters []domain.CostCenterEntry `json:"costCenters"`
}

// VendorsResponse lists registered vendors.
type VendorsResponse struct {
	Vendors []domain.VendorEntry `json:"vendors"`
}
