package reports

// MonthlyFlow is aggregated cash movement for one calendar month
type MonthlyFlow struct {
	Month   string  `json:"month"`
	CashIn  float64 `json:"cash_in"`
	CashOut float64 `json:"cash_out"`
	Net     float64 `json:"net"`
}

// FlowStats summarizes the monthly net flow series
type FlowStats struct {
	Months        int     `json:"months"`
	MeanNet       float64 `json:"mean_net"`
	StdDevNet     float64 `json:"stddev_net"`
	MeanGrowthPct float64 `json:"mean_growth_percent"`
}

// CashTrend is the monthly flow series with its summary statistics
type CashTrend struct {
	Series []MonthlyFlow `json:"series"`
	Stats  FlowStats     `json:"stats"`
}

// RecentActivity bundles the latest invoices and cash entries
type RecentActivity struct {
	Invoices []RecentInvoice   `json:"invoices"`
	Cash     []RecentCashEntry `json:"cash"`
}

// RecentInvoice is a trimmed invoice row for activity feeds
type RecentInvoice struct {
	ID          int     `json:"id"`
	InvoiceNo   string  `json:"invoice_no"`
	Date        string  `json:"date"`
	ProjectCode string  `json:"project_code"`
	Amount      float64 `json:"amount"`
	Status      string  `json:"status"`
}

// RecentCashEntry is a trimmed cash book row for activity feeds
type RecentCashEntry struct {
	ID          int     `json:"id"`
	Date        string  `json:"date"`
	ProjectCode string  `json:"project_code"`
	Description string  `json:"description"`
	Debit       float64 `json:"debit"`
	Credit      float64 `json:"credit"`
}
