package domain

import (
	"fmt"
	"strings"
)

// ViewMode selects which rows take part in an aggregation by settlement status.
type ViewMode string

const (
	ViewRealized  ViewMode = "realized"
	ViewProjected ViewMode = "projected"
	ViewAll       ViewMode = "all"
)

// ParseViewMode accepts the API spelling of a view mode. Empty defaults to all.
func ParseViewMode(s string) (ViewMode, error) {
	switch ViewMode(strings.ToLower(strings.TrimSpace(s))) {
	case "", ViewAll:
		return ViewAll, nil
	case ViewRealized:
		return ViewRealized, nil
	case ViewProjected:
		return ViewProjected, nil
	}
	return "", fmt.Errorf("unknown view mode %q", s)
}

// Keeps reports whether a row with the given settled amount belongs to the view.
func (v ViewMode) Keeps(settled int64) bool {
	switch v {
	case ViewRealized:
		return settled > 0
	case ViewProjected:
		return settled <= 0
	default:
		return true
	}
}

// Measure returns the amount a row contributes to DRE totals under the view:
// settled money for realized, invoiced value otherwise.
func (v ViewMode) Measure(value, settled int64) int64 {
	if v == ViewRealized {
		return settled
	}
	return value
}

// ConsolidatedScope is the API sentinel for "every branch of the upload".
const ConsolidatedScope = "consolidated"

// BranchScope is an explicit set of branch codes. Consolidated marks a set that was
// resolved from the sentinel; only such a scope also admits rows without a branch.
type BranchScope struct {
	Codes        []int `json:"codes"`
	Consolidated bool  `json:"consolidated"`
}

// Includes reports whether a row with the given branch code is in scope.
func (b BranchScope) Includes(code *int) bool {
	if code == nil {
		return b.Consolidated
	}
	for _, c := range b.Codes {
		if c == *code {
			return true
		}
	}
	return false
}

// Scope is the set of parameters threaded through every aggregation call.
type Scope struct {
	UploadID string
	Month    *int
	Branches BranchScope
	ViewMode ViewMode
}

// WithoutMonth returns a copy of the scope covering every month.
func (s Scope) WithoutMonth() Scope {
	s.Month = nil
	return s
}

// MatchesMonth reports whether a row month satisfies the scope's month filter.
func (s Scope) MatchesMonth(month *int) bool {
	if s.Month == nil {
		return true
	}
	return month != nil && *month == *s.Month
}
