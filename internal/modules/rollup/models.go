// Package rollup joins the independently entered ledger tables (projects,
// invoices, cash book, debts & fixed assets) into per-project and
// company-wide financial summaries, and derives ratios and alerts from
// them. Summaries are recomputed from a fresh read on every request; the
// package holds no state between calls.
package rollup

import "time"

// ProjectRow is a normalized row from the projects table.
type ProjectRow struct {
	Code          string
	Name          string
	ClientName    string
	ContractValue float64
	Status        string
}

// InvoiceRow is a normalized row from the invoices table. Code is ""
// when the invoice is not tied to a project.
type InvoiceRow struct {
	Code   string
	Amount float64
	Status string
	Date   time.Time
}

// CashRow is a normalized row from the cash book. A valid row has a
// positive debit (cash in) XOR a positive credit (cash out).
type CashRow struct {
	Code   string
	Debit  float64
	Credit float64
	Date   time.Time
}

// DebtAssetRow is a normalized row from the debts_fixed table.
// Type is "Debt" or "Fixed Asset".
type DebtAssetRow struct {
	Code   string
	Type   string
	Amount float64
}

// ProjectSummary is the per-project rollup. It is derived, never
// persisted, and keyed by project code. ProfitMarginPercent is nil when
// revenue is zero.
type ProjectSummary struct {
	ProjectCode         string   `json:"project_code"`
	Name                string   `json:"name"`
	ClientName          string   `json:"client_name"`
	ContractValue       float64  `json:"contract_value"`
	Status              string   `json:"status"`
	Revenue             float64  `json:"revenue"`
	CashIn              float64  `json:"cash_in"`
	CashOut             float64  `json:"cash_out"`
	NetCash             float64  `json:"net_cash"`
	Debts               float64  `json:"debts"`
	Assets              float64  `json:"assets"`
	EstimatedProfit     float64  `json:"estimated_profit"`
	ProfitMarginPercent *float64 `json:"profit_margin_percent"`
}

// CompanySummary aggregates all ledger rows, including rows without a
// project code. Each ratio is nil when its denominator is zero.
type CompanySummary struct {
	ProjectCount           int      `json:"project_count"`
	TotalRevenue           float64  `json:"total_revenue"`
	TotalCashIn            float64  `json:"total_cash_in"`
	TotalCashOut           float64  `json:"total_cash_out"`
	TotalNetCash           float64  `json:"total_net_cash"`
	TotalDebts             float64  `json:"total_debts"`
	TotalAssets            float64  `json:"total_assets"`
	TotalEstimatedProfit   float64  `json:"total_estimated_profit"`
	OverallMarginPercent   *float64 `json:"overall_profit_margin_percent"`
	DebtToAssetsRatio      *float64 `json:"debt_to_assets_ratio"`
	CashCoverageRatio      *float64 `json:"cash_coverage_ratio"`
	CollectionRatioPercent *float64 `json:"collection_ratio_percent"`
}

// Severity classifies an alert.
type Severity string

const (
	SeverityCritical Severity = "critical"
	SeverityWarning  Severity = "warning"
	SeverityOK       Severity = "ok"
)

// Alert is one threshold condition derived from a CompanySummary.
type Alert struct {
	Severity Severity `json:"severity"`
	Code     string   `json:"code"`
	Message  string   `json:"message"`
}
