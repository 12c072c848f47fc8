package rollup

import "fmt"

// Alert thresholds.
const (
	debtToAssetsAlertRatio = 1.0
	collectionAlertPercent = 70.0
)

// EvaluateAlerts derives the ordered alert sequence from a company
// summary. The negative-cash check is exclusive with the below-debts
// warning: at most one of the two fires. When nothing fires a single
// "ok" entry is returned, so callers always get a non-empty sequence.
func EvaluateAlerts(c CompanySummary) []Alert {
	var alerts []Alert

	if c.TotalNetCash < 0 {
		alerts = append(alerts, Alert{
			Severity: SeverityCritical,
			Code:     "negative_net_cash",
			Message:  "Net cash is negative - review spending and cash commitments",
		})
	} else if c.TotalNetCash < c.TotalDebts && c.TotalDebts > 0 {
		alerts = append(alerts, Alert{
			Severity: SeverityWarning,
			Code:     "net_cash_below_debts",
			Message:  "Net cash is below total debts - review collection and repayment plans",
		})
	}

	if c.DebtToAssetsRatio != nil && *c.DebtToAssetsRatio > debtToAssetsAlertRatio {
		alerts = append(alerts, Alert{
			Severity: SeverityWarning,
			Code:     "debts_exceed_assets",
			Message:  "Debt/assets ratio is above 1 - debts exceed the value of fixed assets",
		})
	}

	if c.CollectionRatioPercent != nil && *c.CollectionRatioPercent < collectionAlertPercent {
		alerts = append(alerts, Alert{
			Severity: SeverityWarning,
			Code:     "low_collection_ratio",
			Message:  fmt.Sprintf("Collection ratio is below %.0f%% - invoice collection is weak", collectionAlertPercent),
		})
	}

	if len(alerts) == 0 {
		alerts = append(alerts, Alert{
			Severity: SeverityOK,
			Code:     "ok",
			Message:  "No major alerts detected - financial position is currently stable",
		})
	}

	return alerts
}
