package debts

import (
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/omarembaby39-afk/Nps-Acc/internal/database"
	"github.com/omarembaby39-afk/Nps-Acc/internal/domain"
)

// Repository handles debt and fixed asset persistence
type Repository struct {
	db  *database.DB
	log zerolog.Logger
}

// NewRepository creates a new debts repository
func NewRepository(db *database.DB, log zerolog.Logger) *Repository {
	return &Repository{
		db:  db,
		log: log.With().Str("repo", "debts").Logger(),
	}
}

func validate(rec *Record) error {
	rec.Name = strings.TrimSpace(rec.Name)
	rec.ProjectCode = strings.TrimSpace(rec.ProjectCode)

	switch {
	case strings.EqualFold(rec.Type, TypeDebt):
		rec.Type = TypeDebt
	case strings.EqualFold(rec.Type, TypeFixedAsset):
		rec.Type = TypeFixedAsset
	default:
		return domain.Invalid("type", "must be Debt or Fixed Asset")
	}

	if rec.Name == "" {
		return domain.Invalid("name", "must not be blank")
	}
	if rec.Amount < 0 {
		return domain.Invalid("amount", "must not be negative")
	}
	if rec.StartDate != "" {
		if _, err := time.Parse("2006-01-02", rec.StartDate); err != nil {
			return domain.Invalid("start_date", "must be YYYY-MM-DD")
		}
	}
	return nil
}

// List returns all debt and fixed asset records
func (r *Repository) List() ([]Record, error) {
	res, err := r.db.Query("SELECT * FROM debts_fixed ORDER BY id")
	if err != nil {
		return nil, fmt.Errorf("failed to query debts_fixed: %w", err)
	}

	out := make([]Record, 0, len(res.Rows))
	for _, row := range res.Rows {
		out = append(out, scanRecord(row))
	}
	return out, nil
}

// Create inserts a new record
func (r *Repository) Create(rec *Record) error {
	if err := validate(rec); err != nil {
		return err
	}

	id, err := r.db.Insert(
		"INSERT INTO debts_fixed (type, name, project_code, amount, start_date, remarks) VALUES (?, ?, ?, ?, ?, ?)",
		rec.Type, rec.Name, rec.ProjectCode, rec.Amount, rec.StartDate, rec.Remarks,
	)
	if err != nil {
		return fmt.Errorf("failed to insert record: %w", err)
	}

	rec.ID = int(id)
	r.log.Info().Str("type", rec.Type).Str("name", rec.Name).Msg("Record created")
	return nil
}

// Update replaces a record by id
func (r *Repository) Update(id int, rec *Record) error {
	if err := validate(rec); err != nil {
		return err
	}

	result, err := r.db.Exec(
		"UPDATE debts_fixed SET type = ?, name = ?, project_code = ?, amount = ?, start_date = ?, remarks = ? WHERE id = ?",
		rec.Type, rec.Name, rec.ProjectCode, rec.Amount, rec.StartDate, rec.Remarks, id,
	)
	if err != nil {
		return fmt.Errorf("failed to update record: %w", err)
	}
	if n, _ := result.RowsAffected(); n == 0 {
		return domain.ErrNotFound
	}

	rec.ID = id
	return nil
}

// Delete removes a record by id
func (r *Repository) Delete(id int) error {
	result, err := r.db.Exec("DELETE FROM debts_fixed WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete record: %w", err)
	}
	if n, _ := result.RowsAffected(); n == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func scanRecord(row database.Row) Record {
	return Record{
		ID:          int(row.Int("id")),
		Type:        row.String("type"),
		Name:        row.String("name"),
		ProjectCode: row.String("project_code"),
		Amount:      row.Float("amount"),
		StartDate:   row.String("start_date"),
		Remarks:     row.String("remarks"),
	}
}
