package reports

import (
	"fmt"
	"sort"

	"github.com/rs/zerolog"

	"github.com/omarembaby39-afk/Nps-Acc/internal/database"
	"github.com/omarembaby39-afk/Nps-Acc/pkg/stats"
)

// Service computes reporting aggregates over the cash book and invoices
type Service struct {
	db  *database.DB
	log zerolog.Logger
}

// NewService creates a new reports service
func NewService(db *database.DB, log zerolog.Logger) *Service {
	return &Service{
		db:  db,
		log: log.With().Str("component", "reports").Logger(),
	}
}

// MonthlyCashTrend groups cash book entries by calendar month and
// summarizes the net flow series. Rows with dates shorter than
// YYYY-MM are skipped.
func (s *Service) MonthlyCashTrend() (*CashTrend, error) {
	res, err := s.db.Query("SELECT date, debit, credit FROM cash_book")
	if err != nil {
		return nil, fmt.Errorf("failed to query cash_book: %w", err)
	}

	byMonth := map[string]*MonthlyFlow{}
	for _, row := range res.Rows {
		date := row.String("date")
		if len(date) < 7 {
			s.log.Warn().Str("date", date).Msg("Skipping cash row with unusable date")
			continue
		}
		month := date[:7]

		m, ok := byMonth[month]
		if !ok {
			m = &MonthlyFlow{Month: month}
			byMonth[month] = m
		}
		m.CashIn += row.Float("debit")
		m.CashOut += row.Float("credit")
	}

	series := make([]MonthlyFlow, 0, len(byMonth))
	for _, m := range byMonth {
		m.Net = m.CashIn - m.CashOut
		series = append(series, *m)
	}
	sort.Slice(series, func(i, j int) bool { return series[i].Month < series[j].Month })

	nets := make([]float64, len(series))
	for i, m := range series {
		nets[i] = m.Net
	}

	trend := &CashTrend{
		Series: series,
		Stats: FlowStats{
			Months:        len(series),
			MeanNet:       stats.Mean(nets),
			StdDevNet:     stats.StdDev(nets),
			MeanGrowthPct: stats.Mean(stats.GrowthRates(nets)) * 100,
		},
	}
	return trend, nil
}

// Recent returns the latest n invoices and cash entries, newest first
func (s *Service) Recent(n int) (*RecentActivity, error) {
	if n < 1 {
		n = 5
	}

	invRes, err := s.db.Query(
		"SELECT id, invoice_no, date, project_code, amount, status FROM invoices ORDER BY date DESC, id DESC LIMIT ?", n)
	if err != nil {
		return nil, fmt.Errorf("failed to query invoices: %w", err)
	}

	cashRes, err := s.db.Query(
		"SELECT id, date, project_code, description, debit, credit FROM cash_book ORDER BY date DESC, id DESC LIMIT ?", n)
	if err != nil {
		return nil, fmt.Errorf("failed to query cash_book: %w", err)
	}

	out := &RecentActivity{
		Invoices: make([]RecentInvoice, 0, len(invRes.Rows)),
		Cash:     make([]RecentCashEntry, 0, len(cashRes.Rows)),
	}
	for _, row := range invRes.Rows {
		out.Invoices = append(out.Invoices, RecentInvoice{
			ID:          int(row.Int("id")),
			InvoiceNo:   row.String("invoice_no"),
			Date:        row.String("date"),
			ProjectCode: row.String("project_code"),
			Amount:      row.Float("amount"),
			Status:      row.String("status"),
		})
	}
	for _, row := range cashRes.Rows {
		out.Cash = append(out.Cash, RecentCashEntry{
			ID:          int(row.Int("id")),
			Date:        row.String("date"),
			ProjectCode: row.String("project_code"),
			Description: row.String("description"),
			Debit:       row.Float("debit"),
			Credit:      row.Float("credit"),
		})
	}
	return out, nil
}
