package debts

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

func TestCreate_NormalizesType(t *testing.T) {
	repo := setupTestRepo(t)

	rec := &Record{Type: "fixed asset", Name: "Excavator", Amount: 50000}
	require.NoError(t, repo.Create(rec))
	assert.Equal(t, TypeFixedAsset, rec.Type)

	records, err := repo.List()
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, TypeFixedAsset, records[0].Type)
}

func TestCreate_RejectsBadInput(t *testing.T) {
	repo := setupTestRepo(t)

	tests := []struct {
		name string
		rec  Record
	}{
		{"unknown type", Record{Type: "Liability", Name: "Loan", Amount: 100}},
		{"blank name", Record{Type: TypeDebt, Amount: 100}},
		{"negative amount", Record{Type: TypeDebt, Name: "Loan", Amount: -1}},
		{"malformed date", Record{Type: TypeDebt, Name: "Loan", Amount: 1, StartDate: "Jan 2024"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := repo.Create(&tt.rec)
			require.Error(t, err)

			var vErr *domain.ValidationError
			assert.ErrorAs(t, err, &vErr)
		})
	}
}

func TestUpdateAndDelete(t *testing.T) {
	repo := setupTestRepo(t)

	rec := &Record{Type: TypeDebt, Name: "Bank loan", Amount: 10000}
	require.NoError(t, repo.Create(rec))

	rec.Amount = 8000
	require.NoError(t, repo.Update(rec.ID, rec))

	records, err := repo.List()
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, 8000.0, records[0].Amount)

	require.NoError(t, repo.Delete(rec.ID))
	assert.ErrorIs(t, repo.Delete(rec.ID), domain.ErrNotFound)
}
