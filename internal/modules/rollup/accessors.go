package rollup

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/omarembaby39-afk/Nps-Acc/internal/database"
)

// Ledger provides the typed read path over the four source tables. Each
// accessor issues one parameterized read through the storage adapter and
// coerces the result into a fixed column set (currency fields to float64,
// dates to time.Time). An empty table yields an empty slice; a declared
// column missing from the table surfaces as SchemaMismatchError. A failed
// read fails the caller's rollup outright, it is never treated as zero
// rows.
type Ledger struct {
	db  *database.DB
	log zerolog.Logger
}

// NewLedger creates the ledger accessor set
func NewLedger(db *database.DB, log zerolog.Logger) *Ledger {
	return &Ledger{
		db:  db,
		log: log.With().Str("repo", "ledger").Logger(),
	}
}

// Projects returns all project registry rows.
func (l *Ledger) Projects() ([]ProjectRow, error) {
	res, err := l.db.Query("SELECT * FROM projects")
	if err != nil {
		return nil, fmt.Errorf("failed to read projects: %w", err)
	}
	if err := res.Require("projects", "project_code", "name", "client_name", "contract_value", "status"); err != nil {
		return nil, err
	}

	out := make([]ProjectRow, 0, len(res.Rows))
	for _, row := range res.Rows {
		out = append(out, ProjectRow{
			Code:          row.String("project_code"),
			Name:          row.String("name"),
			ClientName:    row.String("client_name"),
			ContractValue: row.Float("contract_value"),
			Status:        row.String("status"),
		})
	}
	return out, nil
}

// Invoices returns all invoice rows.
func (l *Ledger) Invoices() ([]InvoiceRow, error) {
	res, err := l.db.Query("SELECT * FROM invoices")
	if err != nil {
		return nil, fmt.Errorf("failed to read invoices: %w", err)
	}
	if err := res.Require("invoices", "project_code", "amount", "status"); err != nil {
		return nil, err
	}

	out := make([]InvoiceRow, 0, len(res.Rows))
	for _, row := range res.Rows {
		entry := InvoiceRow{
			Code:   row.String("project_code"),
			Amount: row.Float("amount"),
			Status: row.String("status"),
		}
		if d, ok := row.Date("date"); ok {
			entry.Date = d
		}
		out = append(out, entry)
	}
	return out, nil
}

// Cash returns all cash book rows.
func (l *Ledger) Cash() ([]CashRow, error) {
	res, err := l.db.Query("SELECT * FROM cash_book")
	if err != nil {
		return nil, fmt.Errorf("failed to read cash book: %w", err)
	}
	if err := res.Require("cash_book", "project_code", "debit", "credit"); err != nil {
		return nil, err
	}

	out := make([]CashRow, 0, len(res.Rows))
	for _, row := range res.Rows {
		entry := CashRow{
			Code:   row.String("project_code"),
			Debit:  row.Float("debit"),
			Credit: row.Float("credit"),
		}
		if d, ok := row.Date("date"); ok {
			entry.Date = d
		}
		out = append(out, entry)
	}
	return out, nil
}

// DebtsAssets returns all debt / fixed asset rows.
func (l *Ledger) DebtsAssets() ([]DebtAssetRow, error) {
	res, err := l.db.Query("SELECT * FROM debts_fixed")
	if err != nil {
		return nil, fmt.Errorf("failed to read debts_fixed: %w", err)
	}
	if err := res.Require("debts_fixed", "project_code", "type", "amount"); err != nil {
		return nil, err
	}

	out := make([]DebtAssetRow, 0, len(res.Rows))
	for _, row := range res.Rows {
		out = append(out, DebtAssetRow{
			Code:   row.String("project_code"),
			Type:   row.String("type"),
			Amount: row.Float("amount"),
		})
	}
	return out, nil
}
