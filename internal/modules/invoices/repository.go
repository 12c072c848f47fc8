package invoices

import (
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/omarembaby39-afk/Nps-Acc/internal/database"
	"github.com/omarembaby39-afk/Nps-Acc/internal/domain"
)

// Repository handles invoice persistence
type Repository struct {
	db  *database.DB
	log zerolog.Logger
}

// NewRepository creates a new invoice repository
func NewRepository(db *database.DB, log zerolog.Logger) *Repository {
	return &Repository{
		db:  db,
		log: log.With().Str("repo", "invoices").Logger(),
	}
}

func validStatus(s string) bool {
	switch {
	case strings.EqualFold(s, StatusDraft),
		strings.EqualFold(s, StatusSubmitted),
		strings.EqualFold(s, StatusPaid),
		strings.EqualFold(s, StatusCancelled):
		return true
	}
	return false
}

func validate(inv *Invoice) error {
	inv.InvoiceNo = strings.TrimSpace(inv.InvoiceNo)
	inv.ProjectCode = strings.TrimSpace(inv.ProjectCode)

	if inv.InvoiceNo == "" {
		return domain.Invalid("invoice_no", "must not be blank")
	}
	if inv.Date != "" {
		if _, err := time.Parse("2006-01-02", inv.Date); err != nil {
			return domain.Invalid("date", "must be YYYY-MM-DD")
		}
	}
	if !validStatus(inv.Status) {
		return domain.Invalid("status", "must be Draft, Submitted, Paid or Cancelled")
	}
	return nil
}

// List returns invoices, newest first, with an optional limit
func (r *Repository) List(limit *int) ([]Invoice, error) {
	query := "SELECT * FROM invoices ORDER BY date DESC, id DESC"
	if limit != nil {
		query += fmt.Sprintf(" LIMIT %d", *limit)
	}

	res, err := r.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to query invoices: %w", err)
	}

	out := make([]Invoice, 0, len(res.Rows))
	for _, row := range res.Rows {
		out = append(out, scanInvoice(row))
	}
	return out, nil
}

// GetByID returns one invoice or ErrNotFound
func (r *Repository) GetByID(id int) (*Invoice, error) {
	res, err := r.db.Query("SELECT * FROM invoices WHERE id = ?", id)
	if err != nil {
		return nil, fmt.Errorf("failed to query invoice: %w", err)
	}
	if len(res.Rows) == 0 {
		return nil, domain.ErrNotFound
	}

	inv := scanInvoice(res.Rows[0])
	return &inv, nil
}

// Create inserts a new invoice
func (r *Repository) Create(inv *Invoice) error {
	if err := validate(inv); err != nil {
		return err
	}

	id, err := r.db.Insert(
		`INSERT INTO invoices (invoice_no, date, project_code, client_name, description, amount, status, remarks, attachment_path)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		inv.InvoiceNo, inv.Date, inv.ProjectCode, inv.ClientName, inv.Description, inv.Amount, inv.Status, inv.Remarks, inv.AttachmentPath,
	)
	if err != nil {
		return fmt.Errorf("failed to insert invoice: %w", err)
	}

	inv.ID = int(id)
	r.log.Info().Str("invoice_no", inv.InvoiceNo).Msg("Invoice created")
	return nil
}

// Update replaces an invoice by id
func (r *Repository) Update(id int, inv *Invoice) error {
	if err := validate(inv); err != nil {
		return err
	}

	result, err := r.db.Exec(
		`UPDATE invoices SET invoice_no = ?, date = ?, project_code = ?, client_name = ?,
		 description = ?, amount = ?, status = ?, remarks = ? WHERE id = ?`,
		inv.InvoiceNo, inv.Date, inv.ProjectCode, inv.ClientName, inv.Description, inv.Amount, inv.Status, inv.Remarks, id,
	)
	if err != nil {
		return fmt.Errorf("failed to update invoice: %w", err)
	}
	if n, _ := result.RowsAffected(); n == 0 {
		return domain.ErrNotFound
	}

	inv.ID = id
	return nil
}

// SetAttachment records the stored file path for an invoice
func (r *Repository) SetAttachment(id int, path string) error {
	result, err := r.db.Exec("UPDATE invoices SET attachment_path = ? WHERE id = ?", path, id)
	if err != nil {
		return fmt.Errorf("failed to set attachment: %w", err)
	}
	if n, _ := result.RowsAffected(); n == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete removes an invoice by id
func (r *Repository) Delete(id int) error {
	result, err := r.db.Exec("DELETE FROM invoices WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete invoice: %w", err)
	}
	if n, _ := result.RowsAffected(); n == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func scanInvoice(row database.Row) Invoice {
	return Invoice{
		ID:             int(row.Int("id")),
		InvoiceNo:      row.String("invoice_no"),
		Date:           row.String("date"),
		ProjectCode:    row.String("project_code"),
		ClientName:     row.String("client_name"),
		Description:    row.String("description"),
		Amount:         row.Float("amount"),
		Status:         row.String("status"),
		Remarks:        row.String("remarks"),
		AttachmentPath: row.String("attachment_path"),
	}
}
