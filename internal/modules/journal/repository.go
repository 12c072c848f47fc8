package journal

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/omarembaby39-afk/Nps-Acc/internal/database"
	"github.com/omarembaby39-afk/Nps-Acc/internal/domain"
)

// Repository handles account and journal persistence
type Repository struct {
	db  *database.DB
	log zerolog.Logger
}

// NewRepository creates a new journal repository
func NewRepository(db *database.DB, log zerolog.Logger) *Repository {
	return &Repository{
		db:  db,
		log: log.With().Str("repo", "journal").Logger(),
	}
}

// ListAccounts returns the chart of accounts ordered by code
func (r *Repository) ListAccounts() ([]Account, error) {
	res, err := r.db.Query("SELECT * FROM accounts ORDER BY code")
	if err != nil {
		return nil, fmt.Errorf("failed to query accounts: %w", err)
	}

	out := make([]Account, 0, len(res.Rows))
	for _, row := range res.Rows {
		out = append(out, Account{
			ID:   int(row.Int("id")),
			Code: row.String("code"),
			Name: row.String("name"),
			Type: row.String("type"),
		})
	}
	return out, nil
}

// CreateAccount inserts a new account. Codes are unique.
func (r *Repository) CreateAccount(a *Account) error {
	a.Code = strings.TrimSpace(a.Code)
	if a.Code == "" {
		return domain.Invalid("code", "must not be blank")
	}

	existing, err := r.db.Query("SELECT id FROM accounts WHERE code = ?", a.Code)
	if err != nil {
		return fmt.Errorf("failed to check account code: %w", err)
	}
	if len(existing.Rows) > 0 {
		return domain.Invalid("code", "already exists")
	}

	id, err := r.db.Insert(
		"INSERT INTO accounts (code, name, type) VALUES (?, ?, ?)",
		a.Code, a.Name, a.Type,
	)
	if err != nil {
		return fmt.Errorf("failed to insert account: %w", err)
	}

	a.ID = int(id)
	r.log.Info().Str("code", a.Code).Msg("Account created")
	return nil
}

// DeleteAccount removes an account by id
func (r *Repository) DeleteAccount(id int) error {
	result, err := r.db.Exec("DELETE FROM accounts WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete account: %w", err)
	}
	if n, _ := result.RowsAffected(); n == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func validateEntry(e *Entry) error {
	e.AccountCode = strings.TrimSpace(e.AccountCode)

	if e.AccountCode == "" {
		return domain.Invalid("account_code", "must not be blank")
	}
	if e.Date == "" {
		return domain.Invalid("date", "must not be blank")
	}
	if _, err := time.Parse("2006-01-02", e.Date); err != nil {
		return domain.Invalid("date", "must be YYYY-MM-DD")
	}
	if e.Debit < 0 || e.Credit < 0 {
		return domain.Invalid("amount", "must not be negative")
	}
	if e.Debit > 0 && e.Credit > 0 {
		return domain.Invalid("amount", "a line is either a debit or a credit, not both")
	}
	if e.Debit == 0 && e.Credit == 0 {
		return domain.Invalid("amount", "a line must carry a debit or a credit")
	}
	return nil
}

// ListEntries returns journal lines, newest first
func (r *Repository) ListEntries() ([]Entry, error) {
	res, err := r.db.Query("SELECT * FROM journal ORDER BY date DESC, id DESC")
	if err != nil {
		return nil, fmt.Errorf("failed to query journal: %w", err)
	}

	out := make([]Entry, 0, len(res.Rows))
	for _, row := range res.Rows {
		out = append(out, scanEntry(row))
	}
	return out, nil
}

// CreateEntry posts a new journal line. The account must exist.
func (r *Repository) CreateEntry(e *Entry) error {
	if err := validateEntry(e); err != nil {
		return err
	}

	acct, err := r.db.Query("SELECT id FROM accounts WHERE code = ?", e.AccountCode)
	if err != nil {
		return fmt.Errorf("failed to check account code: %w", err)
	}
	if len(acct.Rows) == 0 {
		return domain.Invalid("account_code", "unknown account")
	}

	id, err := r.db.Insert(
		"INSERT INTO journal (date, account_code, description, debit, credit, ref) VALUES (?, ?, ?, ?, ?, ?)",
		e.Date, e.AccountCode, e.Description, e.Debit, e.Credit, e.Ref,
	)
	if err != nil {
		return fmt.Errorf("failed to insert journal line: %w", err)
	}

	e.ID = int(id)
	return nil
}

// DeleteEntry removes a journal line by id
func (r *Repository) DeleteEntry(id int) error {
	result, err := r.db.Exec("DELETE FROM journal WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete journal line: %w", err)
	}
	if n, _ := result.RowsAffected(); n == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// TrialBalance sums debits and credits per account. Accounts with no
// postings still appear, with zero totals.
func (r *Repository) TrialBalance() ([]TrialBalanceLine, error) {
	accounts, err := r.ListAccounts()
	if err != nil {
		return nil, err
	}
	entries, err := r.ListEntries()
	if err != nil {
		return nil, err
	}

	byCode := make(map[string]*TrialBalanceLine, len(accounts))
	for _, a := range accounts {
		byCode[a.Code] = &TrialBalanceLine{AccountCode: a.Code, AccountName: a.Name}
	}
	for _, e := range entries {
		line, ok := byCode[e.AccountCode]
		if !ok {
			// Orphaned postings still show up rather than silently vanish.
			line = &TrialBalanceLine{AccountCode: e.AccountCode}
			byCode[e.AccountCode] = line
		}
		line.TotalDebit += e.Debit
		line.TotalCredit += e.Credit
	}

	out := make([]TrialBalanceLine, 0, len(byCode))
	for _, line := range byCode {
		line.Balance = line.TotalDebit - line.TotalCredit
		out = append(out, *line)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].AccountCode < out[j].AccountCode })
	return out, nil
}

func scanEntry(row database.Row) Entry {
	return Entry{
		ID:          int(row.Int("id")),
		Date:        row.String("date"),
		AccountCode: row.String("account_code"),
		Description: row.String("description"),
		Debit:       row.Float("debit"),
		Credit:      row.Float("credit"),
		Ref:         row.String("ref"),
	}
}
