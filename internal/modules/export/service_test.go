package export

import (
	"bytes"
	"encoding/csv"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/omarembaby39-afk/Nps-Acc/internal/database"
	"github.com/omarembaby39-afk/Nps-Acc/internal/domain"
	"github.com/omarembaby39-afk/Nps-Acc/internal/modules/rollup"
)

func setupTestService(t *testing.T) (*Service, *database.DB) {
	t.Helper()

	db, err := database.New(database.Config{SQLitePath: ":memory:"}, zerolog.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	ledger := rollup.NewLedger(db, zerolog.Nop())
	engine := rollup.NewEngine(ledger, zerolog.Nop())
	return NewService(db, engine, zerolog.Nop()), db
}

func TestWriteCSV(t *testing.T) {
	svc, db := setupTestService(t)

	_, err := db.Insert(
		"INSERT INTO projects (project_code, name, contract_value, status) VALUES (?, ?, ?, ?)",
		"P1", "Tower", 50000.0, "Active")
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, svc.WriteCSV("projects", &buf))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Contains(t, records[0], "project_code")
	assert.Contains(t, records[1], "P1")
	assert.Contains(t, records[1], "Tower")
}

func TestWriteCSV_UnknownTableRejected(t *testing.T) {
	svc, _ := setupTestService(t)

	var buf bytes.Buffer
	err := svc.WriteCSV("sqlite_master", &buf)
	require.Error(t, err)

	var vErr *domain.ValidationError
	assert.ErrorAs(t, err, &vErr)
	assert.Zero(t, buf.Len())
}

func TestWriteWorkbook(t *testing.T) {
	svc, db := setupTestService(t)

	_, err := db.Insert(
		"INSERT INTO projects (project_code, name, contract_value, status) VALUES (?, ?, ?, ?)",
		"P1", "Tower", 50000.0, "Active")
	require.NoError(t, err)
	_, err = db.Insert(
		"INSERT INTO invoices (invoice_no, date, project_code, amount, status) VALUES (?, ?, ?, ?, ?)",
		"INV-001", "2024-01-15", "P1", 1500.0, "Paid")
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, svc.WriteWorkbook(&buf))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	sheets := f.GetSheetList()
	for _, want := range append(svc.Tables(), "Summary") {
		assert.Contains(t, sheets, want)
	}

	rows, err := f.GetRows("Summary")
	require.NoError(t, err)
	require.GreaterOrEqual(t, len(rows), 2)
	assert.Equal(t, "P1", rows[1][0])
}
