package invoices

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

func TestCreateAndGet(t *testing.T) {
	repo := setupTestRepo(t)

	inv := &Invoice{
		InvoiceNo:   "INV-001",
		Date:        "2024-01-15",
		ProjectCode: "P1",
		ClientName:  "Acme",
		Amount:      1000,
		Status:      StatusSubmitted,
	}
	require.NoError(t, repo.Create(inv))
	assert.NotZero(t, inv.ID)

	got, err := repo.GetByID(inv.ID)
	require.NoError(t, err)
	assert.Equal(t, "INV-001", got.InvoiceNo)
	assert.Equal(t, 1000.0, got.Amount)

	_, err = repo.GetByID(999)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCreate_RejectsBadInput(t *testing.T) {
	repo := setupTestRepo(t)

	tests := []struct {
		name string
		inv  Invoice
	}{
		{"blank number", Invoice{Date: "2024-01-15", Status: StatusDraft}},
		{"unknown status", Invoice{InvoiceNo: "INV-002", Date: "2024-01-15", Status: "Pending"}},
		{"malformed date", Invoice{InvoiceNo: "INV-003", Date: "15/01/2024", Status: StatusDraft}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := repo.Create(&tt.inv)
			require.Error(t, err)

			var vErr *domain.ValidationError
			assert.ErrorAs(t, err, &vErr)
		})
	}
}

func TestCreate_StatusCaseInsensitive(t *testing.T) {
	repo := setupTestRepo(t)

	inv := &Invoice{InvoiceNo: "INV-004", Date: "2024-01-15", Status: "paid"}
	require.NoError(t, repo.Create(inv))
}

func TestUpdate_DoesNotTouchAttachment(t *testing.T) {
	repo := setupTestRepo(t)

	inv := &Invoice{InvoiceNo: "INV-005", Date: "2024-01-15", Status: StatusDraft}
	require.NoError(t, repo.Create(inv))
	require.NoError(t, repo.SetAttachment(inv.ID, "/tmp/att/INV_005.pdf"))

	inv.Status = StatusPaid
	require.NoError(t, repo.Update(inv.ID, inv))

	got, err := repo.GetByID(inv.ID)
	require.NoError(t, err)
	assert.Equal(t, StatusPaid, got.Status)
	assert.Equal(t, "/tmp/att/INV_005.pdf", got.AttachmentPath)
}

func TestSetAttachment_NotFound(t *testing.T) {
	repo := setupTestRepo(t)
	assert.ErrorIs(t, repo.SetAttachment(999, "/x"), domain.ErrNotFound)
}
