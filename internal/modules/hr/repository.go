package hr

import (
	"fmt"
	"sort"
	"strings"

	"github.com/rs/zerolog"

	"github.com/omarembaby39-afk/Nps-Acc/internal/database"
	"github.com/omarembaby39-afk/Nps-Acc/internal/domain"
)

// Repository handles people, visa and ticket persistence
type Repository struct {
	db  *database.DB
	log zerolog.Logger
}

// NewRepository creates a new HR repository
func NewRepository(db *database.DB, log zerolog.Logger) *Repository {
	return &Repository{
		db:  db,
		log: log.With().Str("repo", "hr").Logger(),
	}
}

// ListPeople returns all employees
func (r *Repository) ListPeople() ([]Person, error) {
	res, err := r.db.Query("SELECT * FROM people ORDER BY id")
	if err != nil {
		return nil, fmt.Errorf("failed to query people: %w", err)
	}

	out := make([]Person, 0, len(res.Rows))
	for _, row := range res.Rows {
		out = append(out, scanPerson(row))
	}
	return out, nil
}

// CreatePerson inserts a new employee
func (r *Repository) CreatePerson(p *Person) error {
	p.Name = strings.TrimSpace(p.Name)
	if p.Name == "" {
		return domain.Invalid("name", "must not be blank")
	}
	if p.BasicSalary < 0 {
		return domain.Invalid("basic_salary", "must not be negative")
	}
	if p.Allowance < 0 {
		return domain.Invalid("allowance", "must not be negative")
	}

	active := 0
	if p.IsActive {
		active = 1
	}

	id, err := r.db.Insert(
		"INSERT INTO people (emp_code, name, position, project_code, basic_salary, allowance, is_active) VALUES (?, ?, ?, ?, ?, ?, ?)",
		p.EmpCode, p.Name, p.Position, p.ProjectCode, p.BasicSalary, p.Allowance, active,
	)
	if err != nil {
		return fmt.Errorf("failed to insert person: %w", err)
	}

	p.ID = int(id)
	return nil
}

// UpdatePerson replaces an employee by id
func (r *Repository) UpdatePerson(id int, p *Person) error {
	p.Name = strings.TrimSpace(p.Name)
	if p.Name == "" {
		return domain.Invalid("name", "must not be blank")
	}

	active := 0
	if p.IsActive {
		active = 1
	}

	result, err := r.db.Exec(
		"UPDATE people SET emp_code = ?, name = ?, position = ?, project_code = ?, basic_salary = ?, allowance = ?, is_active = ? WHERE id = ?",
		p.EmpCode, p.Name, p.Position, p.ProjectCode, p.BasicSalary, p.Allowance, active, id,
	)
	if err != nil {
		return fmt.Errorf("failed to update person: %w", err)
	}
	if n, _ := result.RowsAffected(); n == 0 {
		return domain.ErrNotFound
	}

	p.ID = id
	return nil
}

// DeletePerson removes an employee by id
func (r *Repository) DeletePerson(id int) error {
	result, err := r.db.Exec("DELETE FROM people WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete person: %w", err)
	}
	if n, _ := result.RowsAffected(); n == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// ListVisas returns all visa records
func (r *Repository) ListVisas() ([]Visa, error) {
	res, err := r.db.Query("SELECT * FROM visas ORDER BY expiry_date")
	if err != nil {
		return nil, fmt.Errorf("failed to query visas: %w", err)
	}

	out := make([]Visa, 0, len(res.Rows))
	for _, row := range res.Rows {
		out = append(out, scanVisa(row))
	}
	return out, nil
}

// CreateVisa inserts a new visa record
func (r *Repository) CreateVisa(v *Visa) error {
	if v.Cost < 0 {
		return domain.Invalid("cost", "must not be negative")
	}

	id, err := r.db.Insert(
		"INSERT INTO visas (emp_code, name, visa_no, issue_date, expiry_date, cost, project_code) VALUES (?, ?, ?, ?, ?, ?, ?)",
		v.EmpCode, v.Name, v.VisaNo, v.IssueDate, v.ExpiryDate, v.Cost, v.ProjectCode,
	)
	if err != nil {
		return fmt.Errorf("failed to insert visa: %w", err)
	}

	v.ID = int(id)
	return nil
}

// DeleteVisa removes a visa record by id
func (r *Repository) DeleteVisa(id int) error {
	result, err := r.db.Exec("DELETE FROM visas WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete visa: %w", err)
	}
	if n, _ := result.RowsAffected(); n == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// ListTickets returns all ticket records
func (r *Repository) ListTickets() ([]Ticket, error) {
	res, err := r.db.Query("SELECT * FROM tickets ORDER BY travel_date")
	if err != nil {
		return nil, fmt.Errorf("failed to query tickets: %w", err)
	}

	out := make([]Ticket, 0, len(res.Rows))
	for _, row := range res.Rows {
		out = append(out, scanTicket(row))
	}
	return out, nil
}

// CreateTicket inserts a new ticket record
func (r *Repository) CreateTicket(tk *Ticket) error {
	if tk.Cost < 0 {
		return domain.Invalid("cost", "must not be negative")
	}

	id, err := r.db.Insert(
		"INSERT INTO tickets (emp_code, name, from_city, to_city, travel_date, cost, project_code) VALUES (?, ?, ?, ?, ?, ?, ?)",
		tk.EmpCode, tk.Name, tk.FromCity, tk.ToCity, tk.TravelDate, tk.Cost, tk.ProjectCode,
	)
	if err != nil {
		return fmt.Errorf("failed to insert ticket: %w", err)
	}

	tk.ID = int(id)
	return nil
}

// DeleteTicket removes a ticket record by id
func (r *Repository) DeleteTicket(id int) error {
	result, err := r.db.Exec("DELETE FROM tickets WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete ticket: %w", err)
	}
	if n, _ := result.RowsAffected(); n == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// PayrollByProject aggregates salary, visa and ticket cost per project
// code. Salary covers active employees only; visa and ticket costs
// accrue regardless of the employee's current status. Blank project
// codes group under "UNASSIGNED".
func (r *Repository) PayrollByProject() ([]PayrollSummary, error) {
	people, err := r.ListPeople()
	if err != nil {
		return nil, err
	}
	visas, err := r.ListVisas()
	if err != nil {
		return nil, err
	}
	tickets, err := r.ListTickets()
	if err != nil {
		return nil, err
	}

	byCode := map[string]*PayrollSummary{}
	get := func(code string) *PayrollSummary {
		code = strings.TrimSpace(code)
		if code == "" {
			code = "UNASSIGNED"
		}
		s, ok := byCode[code]
		if !ok {
			s = &PayrollSummary{ProjectCode: code}
			byCode[code] = s
		}
		return s
	}

	for _, p := range people {
		if !p.IsActive {
			continue
		}
		s := get(p.ProjectCode)
		s.Headcount++
		s.TotalSalary += p.BasicSalary + p.Allowance
	}
	for _, v := range visas {
		get(v.ProjectCode).TotalVisas += v.Cost
	}
	for _, tk := range tickets {
		get(tk.ProjectCode).TotalTickets += tk.Cost
	}

	out := make([]PayrollSummary, 0, len(byCode))
	for _, s := range byCode {
		out = append(out, *s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ProjectCode < out[j].ProjectCode })
	return out, nil
}

func scanPerson(row database.Row) Person {
	return Person{
		ID:          int(row.Int("id")),
		EmpCode:     row.String("emp_code"),
		Name:        row.String("name"),
		Position:    row.String("position"),
		ProjectCode: row.String("project_code"),
		BasicSalary: row.Float("basic_salary"),
		Allowance:   row.Float("allowance"),
		IsActive:    row.Int("is_active") != 0,
	}
}

func scanVisa(row database.Row) Visa {
	return Visa{
		ID:          int(row.Int("id")),
		EmpCode:     row.String("emp_code"),
		Name:        row.String("name"),
		VisaNo:      row.String("visa_no"),
		IssueDate:   row.String("issue_date"),
		ExpiryDate:  row.String("expiry_date"),
		Cost:        row.Float("cost"),
		ProjectCode: row.String("project_code"),
	}
}

func scanTicket(row database.Row) Ticket {
	return Ticket{
		ID:          int(row.Int("id")),
		EmpCode:     row.String("emp_code"),
		Name:        row.String("name"),
		FromCity:    row.String("from_city"),
		ToCity:      row.String("to_city"),
		TravelDate:  row.String("travel_date"),
		Cost:        row.Float("cost"),
		ProjectCode: row.String("project_code"),
	}
}
