package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/rs/zerolog"
	"github.com/xuri/excelize/v2"

	"github.com/omarembaby39-afk/Nps-Acc/internal/database"
	"github.com/omarembaby39-afk/Nps-Acc/internal/domain"
	"github.com/omarembaby39-afk/Nps-Acc/internal/modules/rollup"
)

// exportableTables is the allow-list for table exports. Anything else
// in a request is rejected before it reaches SQL.
var exportableTables = []string{
	"projects", "cash_book", "invoices", "debts_fixed",
	"people", "visas", "tickets", "accounts", "journal",
}

// Service streams table data as CSV and builds XLSX workbooks
type Service struct {
	db     *database.DB
	engine *rollup.Engine
	log    zerolog.Logger
}

// NewService creates a new export service
func NewService(db *database.DB, engine *rollup.Engine, log zerolog.Logger) *Service {
	return &Service{
		db:     db,
		engine: engine,
		log:    log.With().Str("component", "export").Logger(),
	}
}

// Tables returns the exportable table names
func (s *Service) Tables() []string {
	out := make([]string, len(exportableTables))
	copy(out, exportableTables)
	return out
}

func allowed(table string) bool {
	for _, t := range exportableTables {
		if t == table {
			return true
		}
	}
	return false
}

func cellString(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	case int64:
		return strconv.FormatInt(x, 10)
	default:
		return fmt.Sprintf("%v", x)
	}
}

// WriteCSV writes one table as CSV, header row first
func (s *Service) WriteCSV(table string, w io.Writer) error {
	if !allowed(table) {
		return domain.Invalid("table", "unknown table")
	}

	res, err := s.db.Query("SELECT * FROM " + table)
	if err != nil {
		return fmt.Errorf("failed to query %s: %w", table, err)
	}

	cw := csv.NewWriter(w)
	if err := cw.Write(res.Columns); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	record := make([]string, len(res.Columns))
	for _, row := range res.Rows {
		for i, col := range res.Columns {
			record[i] = cellString(row[col])
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("failed to write row: %w", err)
		}
	}

	cw.Flush()
	return cw.Error()
}

// WriteWorkbook writes all tables plus a computed Summary sheet as a
// single XLSX workbook
func (s *Service) WriteWorkbook(w io.Writer) error {
	f := excelize.NewFile()
	defer f.Close()

	for i, table := range exportableTables {
		if err := s.addTableSheet(f, table, i == 0); err != nil {
			return err
		}
	}
	if err := s.addSummarySheet(f); err != nil {
		return err
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}
	return nil
}

func (s *Service) addTableSheet(f *excelize.File, table string, first bool) error {
	res, err := s.db.Query("SELECT * FROM " + table)
	if err != nil {
		return fmt.Errorf("failed to query %s: %w", table, err)
	}

	// excelize creates Sheet1 by default; rename it for the first table.
	if first {
		if err := f.SetSheetName("Sheet1", table); err != nil {
			return fmt.Errorf("failed to rename sheet: %w", err)
		}
	} else {
		if _, err := f.NewSheet(table); err != nil {
			return fmt.Errorf("failed to add sheet %s: %w", table, err)
		}
	}

	header := make([]any, len(res.Columns))
	for i, col := range res.Columns {
		header[i] = col
	}
	if err := f.SetSheetRow(table, "A1", &header); err != nil {
		return fmt.Errorf("failed to write header for %s: %w", table, err)
	}

	for rowIdx, row := range res.Rows {
		cells := make([]any, len(res.Columns))
		for i, col := range res.Columns {
			cells[i] = row[col]
		}
		cell, _ := excelize.CoordinatesToCellName(1, rowIdx+2)
		if err := f.SetSheetRow(table, cell, &cells); err != nil {
			return fmt.Errorf("failed to write row for %s: %w", table, err)
		}
	}
	return nil
}

func (s *Service) addSummarySheet(f *excelize.File) error {
	summaries, company, err := s.engine.Summarize()
	if err != nil {
		return fmt.Errorf("failed to compute summary sheet: %w", err)
	}

	const sheet = "Summary"
	if _, err := f.NewSheet(sheet); err != nil {
		return fmt.Errorf("failed to add summary sheet: %w", err)
	}

	header := []any{"project_code", "name", "revenue", "cash_in", "cash_out", "net_cash", "debts", "assets", "estimated_profit"}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return fmt.Errorf("failed to write summary header: %w", err)
	}

	for i, ps := range summaries {
		cells := []any{ps.ProjectCode, ps.Name, ps.Revenue, ps.CashIn, ps.CashOut, ps.NetCash, ps.Debts, ps.Assets, ps.EstimatedProfit}
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		if err := f.SetSheetRow(sheet, cell, &cells); err != nil {
			return fmt.Errorf("failed to write summary row: %w", err)
		}
	}

	totals := []any{"TOTAL", "", company.TotalRevenue, company.TotalCashIn, company.TotalCashOut, company.TotalNetCash, company.TotalDebts, company.TotalAssets, company.TotalEstimatedProfit}
	cell, _ := excelize.CoordinatesToCellName(1, len(summaries)+3)
	if err := f.SetSheetRow(sheet, cell, &totals); err != nil {
		return fmt.Errorf("failed to write summary totals: %w", err)
	}
	return nil
}
