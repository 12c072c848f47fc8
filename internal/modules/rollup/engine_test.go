package rollup

import (
	"fmt"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeLedger returns fixed slices, standing in for the storage-backed
// accessors.
type fakeLedger struct {
	projects []ProjectRow
	invoices []InvoiceRow
	cash     []CashRow
	debts    []DebtAssetRow

	failProjects bool
}

func (f *fakeLedger) Projects() ([]ProjectRow, error) {
	if f.failProjects {
		return nil, fmt.Errorf("simulated read failure")
	}
	return f.projects, nil
}
func (f *fakeLedger) Invoices() ([]InvoiceRow, error)    { return f.invoices, nil }
func (f *fakeLedger) Cash() ([]CashRow, error)           { return f.cash, nil }
func (f *fakeLedger) DebtsAssets() ([]DebtAssetRow, error) { return f.debts, nil }

func newTestEngine(ledger LedgerSource) *Engine {
	return NewEngine(ledger, zerolog.Nop())
}

// Scenario A from the dashboard acceptance data: one project with a paid
// and a draft invoice, mixed cash movements, one debt, no assets.
func TestSummarize_SingleProject(t *testing.T) {
	ledger := &fakeLedger{
		projects: []ProjectRow{{Code: "P1", Name: "HQ Fitout", ClientName: "ACME", ContractValue: 5000, Status: "Active"}},
		invoices: []InvoiceRow{
			{Code: "P1", Amount: 1000, Status: "Paid"},
			{Code: "P1", Amount: 500, Status: "Draft"},
		},
		cash: []CashRow{
			{Code: "P1", Debit: 800},
			{Code: "P1", Credit: 300},
		},
		debts: []DebtAssetRow{{Code: "P1", Type: "Debt", Amount: 200}},
	}

	summaries, company, err := newTestEngine(ledger).Summarize()
	require.NoError(t, err)
	require.Len(t, summaries, 1)

	s := summaries[0]
	assert.Equal(t, "P1", s.ProjectCode)
	assert.Equal(t, "HQ Fitout", s.Name)
	assert.Equal(t, 1500.0, s.Revenue)
	assert.Equal(t, 800.0, s.CashIn)
	assert.Equal(t, 300.0, s.CashOut)
	assert.Equal(t, 500.0, s.NetCash)
	assert.Equal(t, 200.0, s.Debts)
	assert.Equal(t, 0.0, s.Assets)
	assert.Equal(t, 1200.0, s.EstimatedProfit)
	require.NotNil(t, s.ProfitMarginPercent)
	assert.InDelta(t, 80.0, *s.ProfitMarginPercent, 1e-9)

	// No assets registered, so debt/assets has no denominator.
	assert.Nil(t, company.DebtToAssetsRatio)
	require.NotNil(t, company.CollectionRatioPercent)
	assert.InDelta(t, 100.0*1000/1500, *company.CollectionRatioPercent, 1e-9)
	require.NotNil(t, company.CashCoverageRatio)
	assert.InDelta(t, 500.0/200, *company.CashCoverageRatio, 1e-9)
}

// Scenario B: no rows anywhere.
func TestSummarize_EmptyLedgers(t *testing.T) {
	summaries, company, err := newTestEngine(&fakeLedger{}).Summarize()
	require.NoError(t, err)

	assert.Empty(t, summaries)
	assert.Equal(t, 0.0, company.TotalRevenue)
	assert.Equal(t, 0.0, company.TotalNetCash)
	assert.Equal(t, 0.0, company.TotalDebts)
	assert.Equal(t, 0.0, company.TotalAssets)
	assert.Nil(t, company.OverallMarginPercent)
	assert.Nil(t, company.DebtToAssetsRatio)
	assert.Nil(t, company.CashCoverageRatio)
	assert.Nil(t, company.CollectionRatioPercent)

	alerts := EvaluateAlerts(company)
	require.Len(t, alerts, 1)
	assert.Equal(t, SeverityOK, alerts[0].Severity)
}

// Scenario D: a code present only in the cash book must still appear.
func TestSummarize_CodeOnlyInCashBook(t *testing.T) {
	ledger := &fakeLedger{
		cash: []CashRow{{Code: "GHOST", Debit: 100}},
	}

	summaries, _, err := newTestEngine(ledger).Summarize()
	require.NoError(t, err)
	require.Len(t, summaries, 1)

	s := summaries[0]
	assert.Equal(t, "GHOST", s.ProjectCode)
	assert.Equal(t, "", s.Name)
	assert.Equal(t, 0.0, s.Revenue)
	assert.Equal(t, 0.0, s.Debts)
	assert.Equal(t, 0.0, s.Assets)
	assert.Equal(t, 100.0, s.NetCash)
	assert.Nil(t, s.ProfitMarginPercent, "zero revenue must yield null margin")
}

func TestSummarize_BlankCodesExcludedPerProjectButCounted(t *testing.T) {
	ledger := &fakeLedger{
		invoices: []InvoiceRow{
			{Code: "P1", Amount: 1000, Status: "Paid"},
			{Code: "", Amount: 400, Status: "Submitted"}, // unassigned invoice
		},
		cash: []CashRow{
			{Code: "", Debit: 50},
		},
	}

	summaries, company, err := newTestEngine(ledger).Summarize()
	require.NoError(t, err)

	require.Len(t, summaries, 1)
	assert.Equal(t, "P1", summaries[0].ProjectCode)
	assert.Equal(t, 1000.0, summaries[0].Revenue)

	assert.Equal(t, 1400.0, company.TotalRevenue)
	assert.Equal(t, 50.0, company.TotalCashIn)
}

func TestSummarize_NetCashAdditiveAcrossProjects(t *testing.T) {
	ledger := &fakeLedger{
		cash: []CashRow{
			{Code: "P1", Debit: 800},
			{Code: "P1", Credit: 300},
			{Code: "P2", Debit: 100},
			{Code: "P2", Credit: 450},
		},
	}

	summaries, company, err := newTestEngine(ledger).Summarize()
	require.NoError(t, err)
	require.Len(t, summaries, 2)

	sum := 0.0
	for _, s := range summaries {
		assert.Equal(t, s.CashIn-s.CashOut, s.NetCash)
		sum += s.NetCash
	}
	assert.Equal(t, sum, company.TotalNetCash)
	assert.Equal(t, company.TotalCashIn-company.TotalCashOut, company.TotalNetCash)
}

func TestSummarize_SkipsInvalidCashRows(t *testing.T) {
	ledger := &fakeLedger{
		cash: []CashRow{
			{Code: "P1", Debit: 100},
			{Code: "P1", Debit: 70, Credit: 30}, // both sides set, skipped
			{Code: "P1", Debit: -5},             // negative, skipped
		},
	}

	summaries, company, err := newTestEngine(ledger).Summarize()
	require.NoError(t, err)
	require.Len(t, summaries, 1)

	assert.Equal(t, 100.0, summaries[0].CashIn)
	assert.Equal(t, 0.0, summaries[0].CashOut)
	assert.Equal(t, 100.0, company.TotalCashIn)
	assert.Equal(t, 0.0, company.TotalCashOut)
}

func TestSummarize_PaidStatusCaseInsensitive(t *testing.T) {
	ledger := &fakeLedger{
		invoices: []InvoiceRow{
			{Code: "P1", Amount: 600, Status: "PAID"},
			{Code: "P1", Amount: 400, Status: "paid"},
			{Code: "P1", Amount: 1000, Status: "Draft"},
		},
	}

	_, company, err := newTestEngine(ledger).Summarize()
	require.NoError(t, err)

	require.NotNil(t, company.CollectionRatioPercent)
	assert.InDelta(t, 50.0, *company.CollectionRatioPercent, 1e-9)
}

func TestSummarize_FailedAccessorFailsWholeRollup(t *testing.T) {
	ledger := &fakeLedger{
		failProjects: true,
		invoices:     []InvoiceRow{{Code: "P1", Amount: 100, Status: "Paid"}},
	}

	summaries, _, err := newTestEngine(ledger).Summarize()
	require.Error(t, err)
	assert.Nil(t, summaries, "a failed read must never degrade to zero rows")
}

func TestSummarize_Idempotent(t *testing.T) {
	ledger := &fakeLedger{
		projects: []ProjectRow{
			{Code: "B", Name: "Beta"},
			{Code: "A", Name: "Alpha"},
		},
		invoices: []InvoiceRow{
			{Code: "A", Amount: 100, Status: "Paid"},
			{Code: "B", Amount: 300, Status: "Draft"},
		},
		cash:  []CashRow{{Code: "A", Debit: 20}},
		debts: []DebtAssetRow{{Code: "B", Type: "Fixed Asset", Amount: 900}},
	}
	engine := newTestEngine(ledger)

	first, firstCompany, err := engine.Summarize()
	require.NoError(t, err)
	second, secondCompany, err := engine.Summarize()
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, firstCompany, secondCompany)

	// And ordered by project code regardless of input order.
	assert.Equal(t, "A", first[0].ProjectCode)
	assert.Equal(t, "B", first[1].ProjectCode)
}

func TestTopProjects_RankingAndTieBreak(t *testing.T) {
	summaries := []ProjectSummary{
		{ProjectCode: "C", EstimatedProfit: 50, Revenue: 10},
		{ProjectCode: "A", EstimatedProfit: 100, Revenue: 400},
		{ProjectCode: "B", EstimatedProfit: 100, Revenue: 200},
		{ProjectCode: "D", EstimatedProfit: -10, Revenue: 900},
	}

	top := TopProjects(summaries, ByProfit, 3)
	require.Len(t, top, 3)
	// A and B tie on profit; ascending code breaks the tie.
	assert.Equal(t, "A", top[0].ProjectCode)
	assert.Equal(t, "B", top[1].ProjectCode)
	assert.Equal(t, "C", top[2].ProjectCode)

	byRevenue := TopProjects(summaries, ByRevenue, 2)
	require.Len(t, byRevenue, 2)
	assert.Equal(t, "D", byRevenue[0].ProjectCode)
	assert.Equal(t, "A", byRevenue[1].ProjectCode)

	// Input order must be left untouched.
	assert.Equal(t, "C", summaries[0].ProjectCode)
}
