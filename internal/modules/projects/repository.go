package projects

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/omarembaby39-afk/Nps-Acc/internal/database"
	"github.com/omarembaby39-afk/Nps-Acc/internal/domain"
)

// Repository handles project registry persistence
type Repository struct {
	db  *database.DB
	log zerolog.Logger
}

// NewRepository creates a new project repository
func NewRepository(db *database.DB, log zerolog.Logger) *Repository {
	return &Repository{
		db:  db,
		log: log.With().Str("repo", "projects").Logger(),
	}
}

func validate(p *Project) error {
	p.ProjectCode = strings.TrimSpace(p.ProjectCode)
	if p.ProjectCode == "" {
		return domain.Invalid("project_code", "must not be blank")
	}
	if p.ContractValue < 0 {
		return domain.Invalid("contract_value", "must not be negative")
	}
	return nil
}

// List returns all projects ordered by code
func (r *Repository) List() ([]Project, error) {
	res, err := r.db.Query("SELECT * FROM projects ORDER BY project_code ASC")
	if err != nil {
		return nil, fmt.Errorf("failed to query projects: %w", err)
	}

	out := make([]Project, 0, len(res.Rows))
	for _, row := range res.Rows {
		out = append(out, scanProject(row))
	}
	return out, nil
}

// GetByCode returns one project or ErrNotFound
func (r *Repository) GetByCode(code string) (*Project, error) {
	res, err := r.db.Query("SELECT * FROM projects WHERE project_code = ?", code)
	if err != nil {
		return nil, fmt.Errorf("failed to query project: %w", err)
	}
	if len(res.Rows) == 0 {
		return nil, domain.ErrNotFound
	}

	p := scanProject(res.Rows[0])
	return &p, nil
}

// Create inserts a new project
func (r *Repository) Create(p *Project) error {
	if err := validate(p); err != nil {
		return err
	}

	id, err := r.db.Insert(
		`INSERT INTO projects (project_code, name, client_name, location, contract_value, start_date, status, project_type)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		p.ProjectCode, p.Name, p.ClientName, p.Location, p.ContractValue, p.StartDate, p.Status, p.ProjectType,
	)
	if err != nil {
		return fmt.Errorf("failed to insert project: %w", err)
	}

	p.ID = int(id)
	r.log.Info().Str("project_code", p.ProjectCode).Msg("Project created")
	return nil
}

// Update replaces a project row by id
func (r *Repository) Update(id int, p *Project) error {
	if err := validate(p); err != nil {
		return err
	}

	result, err := r.db.Exec(
		`UPDATE projects SET project_code = ?, name = ?, client_name = ?, location = ?,
		 contract_value = ?, start_date = ?, status = ?, project_type = ? WHERE id = ?`,
		p.ProjectCode, p.Name, p.ClientName, p.Location, p.ContractValue, p.StartDate, p.Status, p.ProjectType, id,
	)
	if err != nil {
		return fmt.Errorf("failed to update project: %w", err)
	}
	if n, _ := result.RowsAffected(); n == 0 {
		return domain.ErrNotFound
	}

	p.ID = id
	return nil
}

// Delete removes a project row by id
func (r *Repository) Delete(id int) error {
	result, err := r.db.Exec("DELETE FROM projects WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete project: %w", err)
	}
	if n, _ := result.RowsAffected(); n == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func scanProject(row database.Row) Project {
	return Project{
		ID:            int(row.Int("id")),
		ProjectCode:   row.String("project_code"),
		Name:          row.String("name"),
		ClientName:    row.String("client_name"),
		Location:      row.String("location"),
		ContractValue: row.Float("contract_value"),
		StartDate:     row.String("start_date"),
		Status:        row.String("status"),
		ProjectType:   row.String("project_type"),
	}
}
