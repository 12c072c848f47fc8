package cashbook

import (
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/omarembaby39-afk/Nps-Acc/internal/database"
	"github.com/omarembaby39-afk/Nps-Acc/internal/domain"
)

// Repository handles cash book persistence
type Repository struct {
	db  *database.DB
	log zerolog.Logger
}

// NewRepository creates a new cash book repository
func NewRepository(db *database.DB, log zerolog.Logger) *Repository {
	return &Repository{
		db:  db,
		log: log.With().Str("repo", "cashbook").Logger(),
	}
}

func validate(e *Entry) error {
	e.ProjectCode = strings.TrimSpace(e.ProjectCode)

	if e.Date == "" {
		return domain.Invalid("date", "must not be blank")
	}
	if _, err := time.Parse("2006-01-02", e.Date); err != nil {
		return domain.Invalid("date", "must be YYYY-MM-DD")
	}
	if e.Debit < 0 {
		return domain.Invalid("debit", "must not be negative")
	}
	if e.Credit < 0 {
		return domain.Invalid("credit", "must not be negative")
	}
	if e.Debit > 0 && e.Credit > 0 {
		return domain.Invalid("debit", "an entry cannot have both debit and credit")
	}
	if e.Debit == 0 && e.Credit == 0 {
		return domain.Invalid("debit", "an entry needs a debit or a credit")
	}
	return nil
}

// List returns cash entries, newest first, with an optional limit
func (r *Repository) List(limit *int) ([]Entry, error) {
	query := "SELECT * FROM cash_book ORDER BY date DESC, id DESC"
	if limit != nil {
		query += fmt.Sprintf(" LIMIT %d", *limit)
	}

	res, err := r.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to query cash book: %w", err)
	}

	out := make([]Entry, 0, len(res.Rows))
	for _, row := range res.Rows {
		out = append(out, scanEntry(row))
	}
	return out, nil
}

// ListByProject returns entries for one project, oldest first
func (r *Repository) ListByProject(code string) ([]Entry, error) {
	res, err := r.db.Query("SELECT * FROM cash_book WHERE project_code = ? ORDER BY date ASC, id ASC", code)
	if err != nil {
		return nil, fmt.Errorf("failed to query cash book by project: %w", err)
	}

	out := make([]Entry, 0, len(res.Rows))
	for _, row := range res.Rows {
		out = append(out, scanEntry(row))
	}
	return out, nil
}

// Create inserts a new cash entry
func (r *Repository) Create(e *Entry) error {
	if err := validate(e); err != nil {
		return err
	}

	id, err := r.db.Insert(
		`INSERT INTO cash_book (date, project_code, description, method, ref_no, debit, credit, remarks)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		e.Date, e.ProjectCode, e.Description, e.Method, e.RefNo, e.Debit, e.Credit, e.Remarks,
	)
	if err != nil {
		return fmt.Errorf("failed to insert cash entry: %w", err)
	}

	e.ID = int(id)
	return nil
}

// Update replaces a cash entry by id
func (r *Repository) Update(id int, e *Entry) error {
	if err := validate(e); err != nil {
		return err
	}

	result, err := r.db.Exec(
		`UPDATE cash_book SET date = ?, project_code = ?, description = ?, method = ?,
		 ref_no = ?, debit = ?, credit = ?, remarks = ? WHERE id = ?`,
		e.Date, e.ProjectCode, e.Description, e.Method, e.RefNo, e.Debit, e.Credit, e.Remarks, id,
	)
	if err != nil {
		return fmt.Errorf("failed to update cash entry: %w", err)
	}
	if n, _ := result.RowsAffected(); n == 0 {
		return domain.ErrNotFound
	}

	e.ID = id
	return nil
}

// Delete removes a cash entry by id
func (r *Repository) Delete(id int) error {
	result, err := r.db.Exec("DELETE FROM cash_book WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete cash entry: %w", err)
	}
	if n, _ := result.RowsAffected(); n == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func scanEntry(row database.Row) Entry {
	return Entry{
		ID:          int(row.Int("id")),
		Date:        row.String("date"),
		ProjectCode: row.String("project_code"),
		Description: row.String("description"),
		Method:      row.String("method"),
		RefNo:       row.String("ref_no"),
		Debit:       row.Float("debit"),
		Credit:      row.Float("credit"),
		Remarks:     row.String("remarks"),
	}
}
