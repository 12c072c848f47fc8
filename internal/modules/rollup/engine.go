package rollup

import (
	"fmt"
	"sort"
	"strings"

	"github.com/rs/zerolog"
)

// LedgerSource is the read surface the engine consumes. *Ledger satisfies
// it in production; tests substitute fixed slices.
type LedgerSource interface {
	Projects() ([]ProjectRow, error)
	Invoices() ([]InvoiceRow, error)
	Cash() ([]CashRow, error)
	DebtsAssets() ([]DebtAssetRow, error)
}

// Engine computes project and company summaries from a fresh ledger read.
type Engine struct {
	ledger LedgerSource
	log    zerolog.Logger
}

// NewEngine creates a rollup engine
func NewEngine(ledger LedgerSource, log zerolog.Logger) *Engine {
	return &Engine{
		ledger: ledger,
		log:    log.With().Str("component", "rollup").Logger(),
	}
}

// validCashRow enforces the cash book invariant during rollup: an entry
// must not carry both a positive debit and a positive credit, and neither
// side may be negative. Invalid rows are skipped everywhere (per-project
// and company totals) so they can never mis-sum; the write path rejects
// them up front, so these only occur via legacy or out-of-band data.
func validCashRow(c CashRow) bool {
	if c.Debit < 0 || c.Credit < 0 {
		return false
	}
	return !(c.Debit > 0 && c.Credit > 0)
}

// Summarize reads all four source tables and produces one ProjectSummary
// per project code observed in any of them, plus the company aggregate.
// Rows with a blank project code are excluded from per-project summaries
// but still counted in the company totals. Any accessor failure fails the
// whole rollup; a partial summary is never produced.
func (e *Engine) Summarize() ([]ProjectSummary, CompanySummary, error) {
	var company CompanySummary

	projects, err := e.ledger.Projects()
	if err != nil {
		return nil, company, fmt.Errorf("rollup aborted: %w", err)
	}
	invoices, err := e.ledger.Invoices()
	if err != nil {
		return nil, company, fmt.Errorf("rollup aborted: %w", err)
	}
	cash, err := e.ledger.Cash()
	if err != nil {
		return nil, company, fmt.Errorf("rollup aborted: %w", err)
	}
	debtsAssets, err := e.ledger.DebtsAssets()
	if err != nil {
		return nil, company, fmt.Errorf("rollup aborted: %w", err)
	}

	// Union of project codes across all four tables. A code seen only in
	// the cash book (no registered project row) still gets a summary.
	byCode := make(map[string]*ProjectSummary)
	summary := func(code string) *ProjectSummary {
		s, ok := byCode[code]
		if !ok {
			s = &ProjectSummary{ProjectCode: code}
			byCode[code] = s
		}
		return s
	}

	for _, p := range projects {
		if p.Code == "" {
			continue
		}
		s := summary(p.Code)
		s.Name = p.Name
		s.ClientName = p.ClientName
		s.ContractValue = p.ContractValue
		s.Status = p.Status
	}

	paidRevenue := 0.0
	for _, inv := range invoices {
		company.TotalRevenue += inv.Amount
		if strings.EqualFold(inv.Status, "Paid") {
			paidRevenue += inv.Amount
		}
		if inv.Code != "" {
			summary(inv.Code).Revenue += inv.Amount
		}
	}

	for _, c := range cash {
		if !validCashRow(c) {
			e.log.Warn().
				Str("project_code", c.Code).
				Float64("debit", c.Debit).
				Float64("credit", c.Credit).
				Msg("Skipping cash entry violating debit/credit invariant")
			continue
		}
		company.TotalCashIn += c.Debit
		company.TotalCashOut += c.Credit
		if c.Code != "" {
			s := summary(c.Code)
			s.CashIn += c.Debit
			s.CashOut += c.Credit
		}
	}

	for _, da := range debtsAssets {
		isDebt := strings.EqualFold(da.Type, "Debt")
		if isDebt {
			company.TotalDebts += da.Amount
		} else {
			company.TotalAssets += da.Amount
		}
		if da.Code != "" {
			s := summary(da.Code)
			if isDebt {
				s.Debts += da.Amount
			} else {
				s.Assets += da.Amount
			}
		}
	}

	// Derived per-project fields. Estimated profit uses cash-out as a
	// proxy for cost (cash basis, not accrual).
	summaries := make([]ProjectSummary, 0, len(byCode))
	for _, s := range byCode {
		s.NetCash = s.CashIn - s.CashOut
		s.EstimatedProfit = s.Revenue - s.CashOut
		if s.Revenue > 0 {
			m := 100 * s.EstimatedProfit / s.Revenue
			s.ProfitMarginPercent = &m
		}
		summaries = append(summaries, *s)
	}

	// Stable output order keeps repeated rollups byte-identical.
	sort.Slice(summaries, func(i, j int) bool {
		return summaries[i].ProjectCode < summaries[j].ProjectCode
	})

	company.ProjectCount = len(summaries)
	company.TotalNetCash = company.TotalCashIn - company.TotalCashOut
	company.TotalEstimatedProfit = company.TotalRevenue - company.TotalCashOut

	if company.TotalRevenue > 0 {
		m := 100 * company.TotalEstimatedProfit / company.TotalRevenue
		company.OverallMarginPercent = &m

		cr := 100 * paidRevenue / company.TotalRevenue
		company.CollectionRatioPercent = &cr
	}
	if company.TotalAssets > 0 {
		r := company.TotalDebts / company.TotalAssets
		company.DebtToAssetsRatio = &r
	}
	if company.TotalDebts > 0 {
		r := company.TotalNetCash / company.TotalDebts
		company.CashCoverageRatio = &r
	}

	return summaries, company, nil
}

// Metric selects the ranking for TopProjects.
type Metric string

const (
	ByProfit  Metric = "profit"
	ByRevenue Metric = "revenue"
)

// TopProjects ranks summaries descending by the metric, ties broken by
// ascending project code for determinism, and returns at most n entries.
func TopProjects(summaries []ProjectSummary, by Metric, n int) []ProjectSummary {
	ranked := make([]ProjectSummary, len(summaries))
	copy(ranked, summaries)

	value := func(s ProjectSummary) float64 {
		if by == ByRevenue {
			return s.Revenue
		}
		return s.EstimatedProfit
	}

	sort.Slice(ranked, func(i, j int) bool {
		vi, vj := value(ranked[i]), value(ranked[j])
		if vi != vj {
			return vi > vj
		}
		return ranked[i].ProjectCode < ranked[j].ProjectCode
	})

	if n >= 0 && n < len(ranked) {
		ranked = ranked[:n]
	}
	return ranked
}
