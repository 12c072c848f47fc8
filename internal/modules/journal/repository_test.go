package journal

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

func TestCreateAccount_UniqueCode(t *testing.T) {
	repo := setupTestRepo(t)

	require.NoError(t, repo.CreateAccount(&Account{Code: "1000", Name: "Cash", Type: "Asset"}))

	err := repo.CreateAccount(&Account{Code: "1000", Name: "Duplicate"})
	require.Error(t, err)

	var vErr *domain.ValidationError
	assert.ErrorAs(t, err, &vErr)

	assert.ErrorAs(t, repo.CreateAccount(&Account{Code: "  "}), &vErr)
}

func TestCreateEntry_RequiresKnownAccount(t *testing.T) {
	repo := setupTestRepo(t)

	err := repo.CreateEntry(&Entry{Date: "2024-01-10", AccountCode: "9999", Debit: 100})
	require.Error(t, err)

	var vErr *domain.ValidationError
	assert.ErrorAs(t, err, &vErr)

	require.NoError(t, repo.CreateAccount(&Account{Code: "1000", Name: "Cash", Type: "Asset"}))
	require.NoError(t, repo.CreateEntry(&Entry{Date: "2024-01-10", AccountCode: "1000", Debit: 100}))
}

func TestCreateEntry_LineInvariants(t *testing.T) {
	repo := setupTestRepo(t)
	require.NoError(t, repo.CreateAccount(&Account{Code: "1000", Name: "Cash"}))

	tests := []struct {
		name  string
		entry Entry
	}{
		{"both sides", Entry{Date: "2024-01-10", AccountCode: "1000", Debit: 100, Credit: 50}},
		{"neither side", Entry{Date: "2024-01-10", AccountCode: "1000"}},
		{"negative", Entry{Date: "2024-01-10", AccountCode: "1000", Debit: -5}},
		{"blank date", Entry{AccountCode: "1000", Debit: 100}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var vErr *domain.ValidationError
			assert.ErrorAs(t, repo.CreateEntry(&tt.entry), &vErr)
		})
	}
}

func TestTrialBalance(t *testing.T) {
	repo := setupTestRepo(t)

	require.NoError(t, repo.CreateAccount(&Account{Code: "1000", Name: "Cash", Type: "Asset"}))
	require.NoError(t, repo.CreateAccount(&Account{Code: "4000", Name: "Revenue", Type: "Income"}))
	require.NoError(t, repo.CreateAccount(&Account{Code: "5000", Name: "Expenses", Type: "Expense"}))

	require.NoError(t, repo.CreateEntry(&Entry{Date: "2024-01-10", AccountCode: "1000", Debit: 1000}))
	require.NoError(t, repo.CreateEntry(&Entry{Date: "2024-01-10", AccountCode: "4000", Credit: 1000}))
	require.NoError(t, repo.CreateEntry(&Entry{Date: "2024-01-12", AccountCode: "1000", Credit: 200}))

	lines, err := repo.TrialBalance()
	require.NoError(t, err)
	require.Len(t, lines, 3)

	cash := lines[0]
	assert.Equal(t, "1000", cash.AccountCode)
	assert.Equal(t, 1000.0, cash.TotalDebit)
	assert.Equal(t, 200.0, cash.TotalCredit)
	assert.Equal(t, 800.0, cash.Balance)

	revenue := lines[1]
	assert.Equal(t, -1000.0, revenue.Balance)

	// Unposted accounts still appear with zero totals.
	expenses := lines[2]
	assert.Equal(t, "5000", expenses.AccountCode)
	assert.Zero(t, expenses.TotalDebit)
	assert.Zero(t, expenses.Balance)

	// Debits equal credits across the book.
	var d, c float64
	for _, l := range lines {
		d += l.TotalDebit
		c += l.TotalCredit
	}
	assert.Equal(t, d, c)
}
