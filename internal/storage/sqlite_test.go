package storage

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/NaveenRajanKS004/SpendIQ/internal/model"
	"github.com/NaveenRajanKS004/SpendIQ/internal/service"
)

func setupStorage(t *testing.T) *SQLiteStorage {
	t.Helper()
	store, err := NewSQLiteStorage(filepath.Join(t.TempDir(), "spendiq.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	require.NoError(t, store.Migrate(context.Background()))
	return store
}

func newTxn(desc string, category model.Category, txnType model.TransactionType, amount int64) model.Transaction {
	return model.Transaction{
		Description: desc,
		Category:    category,
		Type:        txnType,
		Amount:      decimal.NewFromInt(amount),
	}
}

func TestNewSQLiteStorage_EmptyPath(t *testing.T) {
	_, err := NewSQLiteStorage("  ")
	assert.ErrorIs(t, err, ErrEmptyString)
}

func TestMigrate_Idempotent(t *testing.T) {
	store := setupStorage(t)
	require.NoError(t, store.Migrate(context.Background()))
}

func TestSaveAndGetTransaction(t *testing.T) {
	ctx := context.Background()
	store := setupStorage(t)

	txn := newTxn("SWIGGY ORDER 123456", model.CategoryFood, model.TypeExpense, 450)
	require.NoError(t, store.SaveTransaction(ctx, &txn))
	assert.NotZero(t, txn.ID)

	got, err := store.GetTransactionByID(ctx, txn.ID)
	require.NoError(t, err)
	assert.Equal(t, txn.Description, got.Description)
	assert.Equal(t, model.CategoryFood, got.Category)
	assert.Equal(t, model.TypeExpense, got.Type)
	assert.True(t, txn.Amount.Equal(got.Amount))
}

func TestSaveTransaction_Validation(t *testing.T) {
	ctx := context.Background()
	store := setupStorage(t)

	tests := []struct {
		name string
		txn  model.Transaction
	}{
		{
			name: "empty description",
			txn:  newTxn("  ", model.CategoryFood, model.TypeExpense, 10),
		},
		{
			name: "unknown category",
			txn:  newTxn("desc", model.Category("Gambling"), model.TypeExpense, 10),
		},
		{
			name: "unknown type",
			txn:  newTxn("desc", model.CategoryFood, model.TransactionType("refund"), 10),
		},
		{
			name: "negative amount",
			txn:  newTxn("desc", model.CategoryFood, model.TypeExpense, -10),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := store.SaveTransaction(ctx, &tt.txn)
			assert.ErrorIs(t, err, ErrInvalidTransaction)
		})
	}
}

func TestSaveTransaction_FallbackCategoryAllowed(t *testing.T) {
	ctx := context.Background()
	store := setupStorage(t)

	txn := newTxn("UNKNOWN MERCHANT", model.CategoryUncategorized, model.TypeExpense, 99)
	assert.NoError(t, store.SaveTransaction(ctx, &txn))
}

func TestSaveTransactions_Batch(t *testing.T) {
	ctx := context.Background()
	store := setupStorage(t)

	batch := []model.Transaction{
		newTxn("SWIGGY ORDER", model.CategoryFood, model.TypeExpense, 300),
		newTxn("SALARY CREDIT", model.CategoryIncome, model.TypeIncome, 50000),
	}
	inserted, err := store.SaveTransactions(ctx, batch)
	require.NoError(t, err)
	assert.Equal(t, 2, inserted)

	txns, err := store.GetTransactions(ctx, service.TransactionFilter{})
	require.NoError(t, err)
	assert.Len(t, txns, 2)
}

func TestGetTransactions_Filter(t *testing.T) {
	ctx := context.Background()
	store := setupStorage(t)

	now := time.Now().UTC()
	old := model.Transaction{
		Description: "OLD UBER RIDE",
		Category:    model.CategoryTransport,
		Type:        model.TypeExpense,
		Amount:      decimal.NewFromInt(200),
		CreatedAt:   now.AddDate(0, -2, 0),
	}
	recent := newTxn("AMAZON ORDER", model.CategoryShopping, model.TypeExpense, 1500)
	require.NoError(t, store.SaveTransaction(ctx, &old))
	require.NoError(t, store.SaveTransaction(ctx, &recent))

	byCategory, err := store.GetTransactions(ctx, service.TransactionFilter{Category: model.CategoryShopping})
	require.NoError(t, err)
	require.Len(t, byCategory, 1)
	assert.Equal(t, "AMAZON ORDER", byCategory[0].Description)

	start := now.AddDate(0, -1, 0)
	inRange, err := store.GetTransactions(ctx, service.TransactionFilter{StartDate: &start})
	require.NoError(t, err)
	require.Len(t, inRange, 1)
	assert.Equal(t, "AMAZON ORDER", inRange[0].Description)

	limited, err := store.GetTransactions(ctx, service.TransactionFilter{Limit: 1})
	require.NoError(t, err)
	assert.Len(t, limited, 1)
}

func TestUpdateTransactionCategory(t *testing.T) {
	ctx := context.Background()
	store := setupStorage(t)

	txn := newTxn("NETFLIX 4412", model.CategoryShopping, model.TypeExpense, 499)
	require.NoError(t, store.SaveTransaction(ctx, &txn))

	require.NoError(t, store.UpdateTransactionCategory(ctx, txn.ID, model.CategoryEntertainment))
	got, err := store.GetTransactionByID(ctx, txn.ID)
	require.NoError(t, err)
	assert.Equal(t, model.CategoryEntertainment, got.Category)

	err = store.UpdateTransactionCategory(ctx, txn.ID, model.Category("Gambling"))
	assert.ErrorIs(t, err, model.ErrInvalidCategory)

	err = store.UpdateTransactionCategory(ctx, 99999, model.CategoryFood)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestGetTotals(t *testing.T) {
	ctx := context.Background()
	store := setupStorage(t)

	for _, txn := range []model.Transaction{
		newTxn("SALARY", model.CategoryIncome, model.TypeIncome, 50000),
		newTxn("SWIGGY", model.CategoryFood, model.TypeExpense, 450),
		newTxn("UBER", model.CategoryTransport, model.TypeExpense, 250),
	} {
		txn := txn
		require.NoError(t, store.SaveTransaction(ctx, &txn))
	}

	totals, err := store.GetTotals(ctx)
	require.NoError(t, err)
	assert.True(t, totals.Income.Equal(decimal.NewFromInt(50000)))
	assert.True(t, totals.Expense.Equal(decimal.NewFromInt(700)))
	assert.True(t, totals.Balance.Equal(decimal.NewFromInt(49300)))
}

func TestGetCategoryTotals(t *testing.T) {
	ctx := context.Background()
	store := setupStorage(t)

	for _, txn := range []model.Transaction{
		newTxn("SWIGGY", model.CategoryFood, model.TypeExpense, 450),
		newTxn("ZOMATO", model.CategoryFood, model.TypeExpense, 550),
		newTxn("UBER", model.CategoryTransport, model.TypeExpense, 250),
		newTxn("SALARY", model.CategoryIncome, model.TypeIncome, 50000), // income excluded
	} {
		txn := txn
		require.NoError(t, store.SaveTransaction(ctx, &txn))
	}

	totals, err := store.GetCategoryTotals(ctx)
	require.NoError(t, err)
	require.Len(t, totals, 2)
	assert.Equal(t, model.CategoryFood, totals[0].Category)
	assert.True(t, totals[0].Total.Equal(decimal.NewFromInt(1000)))
	assert.Equal(t, model.CategoryTransport, totals[1].Category)
}

func TestGetMonthlySummaries(t *testing.T) {
	ctx := context.Background()
	store := setupStorage(t)

	january := time.Date(2025, 1, 15, 10, 0, 0, 0, time.UTC)
	february := time.Date(2025, 2, 3, 10, 0, 0, 0, time.UTC)
	for _, txn := range []model.Transaction{
		{Description: "SALARY", Category: model.CategoryIncome, Type: model.TypeIncome,
			Amount: decimal.NewFromInt(50000), CreatedAt: january},
		{Description: "SWIGGY", Category: model.CategoryFood, Type: model.TypeExpense,
			Amount: decimal.NewFromInt(450), CreatedAt: january},
		{Description: "UBER", Category: model.CategoryTransport, Type: model.TypeExpense,
			Amount: decimal.NewFromInt(250), CreatedAt: february},
	} {
		txn := txn
		require.NoError(t, store.SaveTransaction(ctx, &txn))
	}

	summaries, err := store.GetMonthlySummaries(ctx)
	require.NoError(t, err)
	require.Len(t, summaries, 2)

	assert.Equal(t, "2025-01", summaries[0].Month)
	assert.True(t, summaries[0].Income.Equal(decimal.NewFromInt(50000)))
	assert.True(t, summaries[0].Expense.Equal(decimal.NewFromInt(450)))
	assert.True(t, summaries[0].Balance.Equal(decimal.NewFromInt(49550)))

	assert.Equal(t, "2025-02", summaries[1].Month)
	assert.True(t, summaries[1].Expense.Equal(decimal.NewFromInt(250)))
}

func TestGetInsights(t *testing.T) {
	ctx := context.Background()
	store := setupStorage(t)

	insights, err := store.GetInsights(ctx)
	require.NoError(t, err)
	assert.Zero(t, insights.TotalTransactions)
	assert.Empty(t, insights.TopCategory)

	for _, txn := range []model.Transaction{
		newTxn("SWIGGY", model.CategoryFood, model.TypeExpense, 450),
		newTxn("ZOMATO", model.CategoryFood, model.TypeExpense, 550),
		newTxn("FLIGHT", model.CategoryTransport, model.TypeExpense, 900),
		newTxn("SALARY", model.CategoryIncome, model.TypeIncome, 50000),
	} {
		txn := txn
		require.NoError(t, store.SaveTransaction(ctx, &txn))
	}

	insights, err = store.GetInsights(ctx)
	require.NoError(t, err)
	assert.Equal(t, 4, insights.TotalTransactions)
	assert.True(t, insights.HighestExpense.Equal(decimal.NewFromInt(900)))
	assert.Equal(t, model.CategoryFood, insights.TopCategory)
}
