package services

import (
	"sort"
	"strings"
	"time"

	"github.com/SscSPs/financial_reports_app/internal/core/domain"
	"github.com/SscSPs/financial_reports_app/internal/utils/accounting"
)

// settlement is the common shape of a payable or receivable row.
type settlement struct {
	party   string
	label   string
	center  string
	value   int64
	settled int64
	at      *time.Time
	month   *int
}

func payableSettlements(rows []domain.Payable) []settlement {
	out := make([]settlement, len(rows))
	for i, p := range rows {
		out[i] = settlement{
			party:   p.VendorName,
			label:   p.Expense.Label(),
			center:  p.CostCenter.Label(),
			value:   p.Value,
			settled: p.Paid(),
			at:      p.PaymentDate,
			month:   p.Month,
		}
	}
	return out
}

func receivableSettlements(rows []domain.Receivable) []settlement {
	out := make([]settlement, len(rows))
	for i, r := range rows {
		out[i] = settlement{
			party:   r.ClientName,
			label:   r.Revenue.Label(),
			center:  r.CostCenter.Label(),
			value:   r.Value,
			settled: r.Received(),
			at:      r.ReceiptDate,
			month:   r.Month,
		}
	}
	return out
}

// keep returns the rows that belong to the view.
func keep(rows []settlement, view domain.ViewMode) []settlement {
	out := make([]settlement, 0, len(rows))
	for _, r := range rows {
		if view.Keeps(r.settled) {
			out = append(out, r)
		}
	}
	return out
}

// settledTotal sums strictly positive settlements only.
func settledTotal(rows []settlement) int64 {
	var total int64
	for _, r := range rows {
		if r.settled > 0 {
			total += r.settled
		}
	}
	return total
}

func invoicedTotal(rows []settlement) int64 {
	var total int64
	for _, r := range rows {
		total += r.value
	}
	return total
}

func measuredTotal(rows []settlement, view domain.ViewMode) int64 {
	var total int64
	for _, r := range rows {
		total += view.Measure(r.value, r.settled)
	}
	return total
}

func later(current, candidate *time.Time) *time.Time {
	if candidate == nil {
		return current
	}
	if current == nil || candidate.After(*current) {
		t := *candidate
		return &t
	}
	return current
}

// rollup groups settled rows by trimmed party name, largest total first.
func rollup(rows []settlement, limit int) []domain.Rollup {
	groups := map[string]*domain.Rollup{}
	for _, r := range rows {
		name := strings.TrimSpace(r.party)
		if name == "" || r.settled <= 0 {
			continue
		}
		g, ok := groups[name]
		if !ok {
			g = &domain.Rollup{Name: name}
			groups[name] = g
		}
		g.Total += r.settled
		g.Count++
		g.LastSettlement = later(g.LastSettlement, r.at)
	}

	out := make([]domain.Rollup, 0, len(groups))
	for _, g := range groups {
		g.Average = accounting.Average(g.Total, g.Count)
		out = append(out, *g)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Total != out[j].Total {
			return out[i].Total > out[j].Total
		}
		return out[i].Name < out[j].Name
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}

const (
	uncategorized = "Sem categoria"
	noCostCenter  = "Sem centro de custo"
)

type breakdownKey int

const (
	byCategory breakdownKey = iota
	byCostCenter
)

// breakdown sums settled amounts per label, largest first.
func breakdown(rows []settlement, by breakdownKey) []domain.Breakdown {
	totals := map[string]int64{}
	for _, r := range rows {
		if r.settled <= 0 {
			continue
		}
		label, fallback := r.label, uncategorized
		if by == byCostCenter {
			label, fallback = r.center, noCostCenter
		}
		label = strings.TrimSpace(label)
		if label == "" {
			label = fallback
		}
		totals[label] += r.settled
	}

	out := make([]domain.Breakdown, 0, len(totals))
	for label, total := range totals {
		out = append(out, domain.Breakdown{Label: label, Total: total})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Total != out[j].Total {
			return out[i].Total > out[j].Total
		}
		return out[i].Label < out[j].Label
	})
	return out
}

func stats(rows []settlement) domain.SettlementStats {
	st := domain.SettlementStats{}
	for _, r := range rows {
		st.TotalInvoiced += r.value
		if r.settled > 0 {
			st.TotalSettled += r.settled
			st.Count++
			st.LastSettlement = later(st.LastSettlement, r.at)
		}
	}
	st.Average = accounting.Average(st.TotalSettled, st.Count)
	return st
}

func payrollTotal(lines []domain.PayrollLine, month *int) int64 {
	var total int64
	for _, l := range lines {
		total += l.Amount(month)
	}
	return total
}
