package hr

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/omarembaby39-afk/Nps-Acc/internal/database"
	"github.com/omarembaby39-afk/Nps-Acc/internal/domain"
)

func setupTestRepo(t *testing.T) *Repository {
	t.Helper()

	db, err := database.New(database.Config{SQLitePath: ":memory:"}, zerolog.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return NewRepository(db, zerolog.Nop())
}

func TestCreatePerson_Validation(t *testing.T) {
	repo := setupTestRepo(t)

	var vErr *domain.ValidationError
	assert.ErrorAs(t, repo.CreatePerson(&Person{Name: "  "}), &vErr)
	assert.ErrorAs(t, repo.CreatePerson(&Person{Name: "Ali", BasicSalary: -1}), &vErr)

	p := &Person{EmpCode: "E1", Name: "Ali", BasicSalary: 3000, Allowance: 500, IsActive: true}
	require.NoError(t, repo.CreatePerson(p))

	people, err := repo.ListPeople()
	require.NoError(t, err)
	require.Len(t, people, 1)
	assert.True(t, people[0].IsActive)
	assert.Equal(t, 3000.0, people[0].BasicSalary)
}

func TestPayrollByProject(t *testing.T) {
	repo := setupTestRepo(t)

	require.NoError(t, repo.CreatePerson(&Person{Name: "Ali", ProjectCode: "P1", BasicSalary: 3000, Allowance: 500, IsActive: true}))
	require.NoError(t, repo.CreatePerson(&Person{Name: "Omar", ProjectCode: "P1", BasicSalary: 2000, IsActive: true}))
	// Inactive staff are excluded from salary and headcount.
	require.NoError(t, repo.CreatePerson(&Person{Name: "Left", ProjectCode: "P1", BasicSalary: 9999, IsActive: false}))
	require.NoError(t, repo.CreatePerson(&Person{Name: "Sara", BasicSalary: 1000, IsActive: true}))

	require.NoError(t, repo.CreateVisa(&Visa{EmpCode: "E1", ProjectCode: "P1", Cost: 700}))
	require.NoError(t, repo.CreateTicket(&Ticket{EmpCode: "E1", ProjectCode: "P1", Cost: 450}))

	summary, err := repo.PayrollByProject()
	require.NoError(t, err)
	require.Len(t, summary, 2)

	// Sorted by project code, UNASSIGNED after P1.
	p1 := summary[0]
	assert.Equal(t, "P1", p1.ProjectCode)
	assert.Equal(t, 2, p1.Headcount)
	assert.Equal(t, 5500.0, p1.TotalSalary)
	assert.Equal(t, 700.0, p1.TotalVisas)
	assert.Equal(t, 450.0, p1.TotalTickets)

	un := summary[1]
	assert.Equal(t, "UNASSIGNED", un.ProjectCode)
	assert.Equal(t, 1, un.Headcount)
	assert.Equal(t, 1000.0, un.TotalSalary)
}

func TestVisaAndTicketLifecycle(t *testing.T) {
	repo := setupTestRepo(t)

	v := &Visa{EmpCode: "E1", Name: "Ali", VisaNo: "V-100", ExpiryDate: "2025-06-01", Cost: 700}
	require.NoError(t, repo.CreateVisa(v))
	assert.ErrorIs(t, repo.DeleteVisa(999), domain.ErrNotFound)
	require.NoError(t, repo.DeleteVisa(v.ID))

	tk := &Ticket{EmpCode: "E1", FromCity: "DXB", ToCity: "CAI", TravelDate: "2024-03-01", Cost: 450}
	require.NoError(t, repo.CreateTicket(tk))
	require.NoError(t, repo.DeleteTicket(tk.ID))

	var vErr *domain.ValidationError
	assert.ErrorAs(t, repo.CreateVisa(&Visa{Cost: -1}), &vErr)
	assert.ErrorAs(t, repo.CreateTicket(&Ticket{Cost: -1}), &vErr)
}
