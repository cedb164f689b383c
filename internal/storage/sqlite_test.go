package storage

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thepnarinsuep-tech/fintrack/internal/model"
)

// Helper function to create migrated test storage backed by a temp file.
func createTestStorage(t *testing.T) *SQLiteStorage {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := NewSQLiteStorage(dbPath)
	if err != nil {
		t.Fatalf("Failed to create storage: %v", err)
	}

	if err := store.Migrate(context.Background()); err != nil {
		_ = store.Close()
		t.Fatalf("Failed to migrate: %v", err)
	}

	t.Cleanup(func() { _ = store.Close() })
	return store
}

func testSnapshot() model.Snapshot {
	return model.Snapshot{
		Accounts: []model.Account{
			{ID: "a1", Name: "Cash", Color: "emerald", Balance: decimal.RequireFromString("70")},
			{ID: "a2", Name: "Main Bank", Color: "blue", Balance: decimal.RequireFromString("-12.34")},
		},
		Transactions: []model.Transaction{
			{ID: "t2", Date: "2026-09-01", Type: model.TypeExpense, AccountID: "a1", Category: "Food", Amount: decimal.RequireFromString("30"), Note: "lunch"},
			{ID: "t1", Date: "2026-08-31", Type: model.TypeDebtPayment, AccountID: "a2", DebtID: "d1", Category: "Monthly Installment", Amount: decimal.RequireFromString("50.25")},
		},
		Debts: []model.Debt{
			{ID: "d1", Name: "Car Loan", TotalAmount: decimal.RequireFromString("500"), PaidAmount: decimal.RequireFromString("50.25")},
		},
	}
}

func TestSQLiteStorage_SaveLoadRoundTrip(t *testing.T) {
	store := createTestStorage(t)
	ctx := context.Background()

	saved := testSnapshot()
	require.NoError(t, store.SaveSnapshot(ctx, saved))

	loaded, err := store.LoadSnapshot(ctx)
	require.NoError(t, err)

	require.Len(t, loaded.Accounts, 2)
	assert.Equal(t, "a1", loaded.Accounts[0].ID)
	assert.Equal(t, "Cash", loaded.Accounts[0].Name)
	assert.Equal(t, "emerald", loaded.Accounts[0].Color)
	assert.True(t, loaded.Accounts[0].Balance.Equal(decimal.RequireFromString("70")))
	assert.True(t, loaded.Accounts[1].Balance.Equal(decimal.RequireFromString("-12.34")))

	require.Len(t, loaded.Transactions, 2)
	// Newest-first order must survive the round trip.
	assert.Equal(t, "t2", loaded.Transactions[0].ID)
	assert.Equal(t, "t1", loaded.Transactions[1].ID)
	assert.Equal(t, model.Date("2026-09-01"), loaded.Transactions[0].Date)
	assert.Equal(t, model.TypeExpense, loaded.Transactions[0].Type)
	assert.Equal(t, "lunch", loaded.Transactions[0].Note)
	assert.Equal(t, "d1", loaded.Transactions[1].DebtID)
	assert.True(t, loaded.Transactions[1].Amount.Equal(decimal.RequireFromString("50.25")))

	require.Len(t, loaded.Debts, 1)
	assert.Equal(t, "Car Loan", loaded.Debts[0].Name)
	assert.True(t, loaded.Debts[0].TotalAmount.Equal(decimal.RequireFromString("500")))
	assert.True(t, loaded.Debts[0].PaidAmount.Equal(decimal.RequireFromString("50.25")))
}

func TestSQLiteStorage_LoadWithoutSaveReturnsDefault(t *testing.T) {
	store := createTestStorage(t)

	snap, err := store.LoadSnapshot(context.Background())
	require.NoError(t, err)

	require.Len(t, snap.Accounts, 2)
	assert.Equal(t, "Cash", snap.Accounts[0].Name)
	assert.Equal(t, "Main Bank", snap.Accounts[1].Name)
	assert.True(t, snap.Accounts[0].Balance.IsZero())
	assert.True(t, snap.Accounts[1].Balance.IsZero())
	assert.Empty(t, snap.Transactions)
	assert.Empty(t, snap.Debts)
}

func TestSQLiteStorage_SaveReplacesPreviousSnapshot(t *testing.T) {
	store := createTestStorage(t)
	ctx := context.Background()

	require.NoError(t, store.SaveSnapshot(ctx, testSnapshot()))

	smaller := model.Snapshot{
		Accounts: []model.Account{
			{ID: "a1", Name: "Cash", Balance: decimal.Zero},
		},
	}
	require.NoError(t, store.SaveSnapshot(ctx, smaller))

	loaded, err := store.LoadSnapshot(ctx)
	require.NoError(t, err)
	assert.Len(t, loaded.Accounts, 1)
	assert.Empty(t, loaded.Transactions)
	assert.Empty(t, loaded.Debts)
}

func TestSQLiteStorage_SavedEmptySnapshotStaysEmpty(t *testing.T) {
	// Deleting everything and saving must not resurrect the default
	// accounts on the next load.
	store := createTestStorage(t)
	ctx := context.Background()

	require.NoError(t, store.SaveSnapshot(ctx, model.Snapshot{}))

	loaded, err := store.LoadSnapshot(ctx)
	require.NoError(t, err)
	assert.Empty(t, loaded.Accounts)
	assert.Empty(t, loaded.Transactions)
	assert.Empty(t, loaded.Debts)
}

func TestSQLiteStorage_RejectsInvalidSnapshot(t *testing.T) {
	store := createTestStorage(t)
	ctx := context.Background()

	tests := []struct {
		name string
		snap model.Snapshot
	}{
		{"account without id", model.Snapshot{Accounts: []model.Account{{Name: "Cash"}}}},
		{"debt without id", model.Snapshot{Debts: []model.Debt{{Name: "Loan"}}}},
		{"transaction without id", model.Snapshot{Transactions: []model.Transaction{{Type: model.TypeIncome}}}},
		{"transaction with unknown type", model.Snapshot{Transactions: []model.Transaction{{ID: "t1", Type: "TRANSFER"}}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := store.SaveSnapshot(ctx, tt.snap)
			assert.ErrorIs(t, err, ErrInvalidSnapshot)
		})
	}
}

func TestSQLiteStorage_PersistsAcrossReopen(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "reopen.db")
	ctx := context.Background()

	store, err := NewSQLiteStorage(dbPath)
	require.NoError(t, err)
	require.NoError(t, store.Migrate(ctx))
	require.NoError(t, store.SaveSnapshot(ctx, testSnapshot()))
	require.NoError(t, store.Close())

	reopened, err := NewSQLiteStorage(dbPath)
	require.NoError(t, err)
	defer func() { _ = reopened.Close() }()
	require.NoError(t, reopened.Migrate(ctx))

	loaded, err := reopened.LoadSnapshot(ctx)
	require.NoError(t, err)
	assert.Len(t, loaded.Accounts, 2)
	assert.Len(t, loaded.Transactions, 2)
	assert.Len(t, loaded.Debts, 1)
}

func TestNewSQLiteStorage_EmptyPath(t *testing.T) {
	_, err := NewSQLiteStorage("")
	assert.ErrorIs(t, err, ErrEmptyString)
}
