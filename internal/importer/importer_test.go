package importer

import (
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/NaveenRajanKS004/SpendIQ/internal/engine"
	"github.com/NaveenRajanKS004/SpendIQ/internal/model"
	"github.com/NaveenRajanKS004/SpendIQ/internal/service"
	"github.com/NaveenRajanKS004/SpendIQ/internal/storage"
)

func setupImporter(t *testing.T) (*Importer, *storage.SQLiteStorage) {
	t.Helper()
	store, err := storage.NewSQLiteStorage(filepath.Join(t.TempDir(), "spendiq.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	require.NoError(t, store.Migrate(context.Background()))

	return New(store, engine.New(nil)), store
}

func TestImport_ClassifiesBlankCategories(t *testing.T) {
	ctx := context.Background()
	imp, store := setupImporter(t)

	csv := strings.Join([]string{
		"description,amount,transaction_type,category",
		"SWIGGY ORDER 123456,450,expense,",          // rule layer: Food
		"SALARY CREDIT JULY,50000,income,",          // rule layer: Income
		"XYZ CORP PAYMENT,1200,expense,",            // no rule, no model: fallback
		"NETFLIX RENEWAL,499,expense,Entertainment", // explicit category kept
	}, "\n")

	result, err := imp.Import(ctx, strings.NewReader(csv))
	require.NoError(t, err)
	assert.Equal(t, 4, result.Inserted)
	assert.Empty(t, result.Skipped)

	txns, err := store.GetTransactions(ctx, service.TransactionFilter{})
	require.NoError(t, err)
	byDesc := make(map[string]model.Category, len(txns))
	for _, txn := range txns {
		byDesc[txn.Description] = txn.Category
	}
	assert.Equal(t, model.CategoryFood, byDesc["SWIGGY ORDER 123456"])
	assert.Equal(t, model.CategoryIncome, byDesc["SALARY CREDIT JULY"])
	assert.Equal(t, model.CategoryUncategorized, byDesc["XYZ CORP PAYMENT"])
	assert.Equal(t, model.CategoryEntertainment, byDesc["NETFLIX RENEWAL"])
}

func TestImport_SkipsCarryReasons(t *testing.T) {
	ctx := context.Background()
	imp, store := setupImporter(t)

	csv := strings.Join([]string{
		"description,amount,transaction_type,category",
		"SWIGGY ORDER,450,expense,",
		",100,expense,",                    // missing description
		"UBER RIDE,notanumber,expense,",    // bad amount
		"OLA RIDE,-50,expense,",            // negative amount
		"ZOMATO ORDER,300,refund,",         // bad type
		"SOME SHOP,100,expense,Gambling",   // unknown explicit category
	}, "\n")

	result, err := imp.Import(ctx, strings.NewReader(csv))
	require.NoError(t, err)
	assert.Equal(t, 1, result.Inserted)
	require.Equal(t, 5, result.SkippedCount())

	reasons := make([]string, 0, len(result.Skipped))
	for _, skip := range result.Skipped {
		assert.NotZero(t, skip.Line)
		reasons = append(reasons, skip.Reason)
	}
	joined := strings.Join(reasons, "; ")
	assert.Contains(t, joined, "missing description")
	assert.Contains(t, joined, "invalid amount")
	assert.Contains(t, joined, "negative amount")
	assert.Contains(t, joined, "invalid transaction_type")
	assert.Contains(t, joined, "unknown category")

	txns, err := store.GetTransactions(ctx, service.TransactionFilter{})
	require.NoError(t, err)
	assert.Len(t, txns, 1)
}

func TestImport_MissingHeaderColumn(t *testing.T) {
	imp, _ := setupImporter(t)

	_, err := imp.Import(context.Background(), strings.NewReader("description,amount\nX,1\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "transaction_type")
}

func TestImport_ProgressHook(t *testing.T) {
	imp, _ := setupImporter(t)

	processed := 0
	imp.Progress = func() { processed++ }

	csv := "description,amount,transaction_type\nSWIGGY,1,expense\nUBER,2,expense\n"
	_, err := imp.Import(context.Background(), strings.NewReader(csv))
	require.NoError(t, err)
	assert.Equal(t, 2, processed)
}

func TestImportFile_RejectsNonCSV(t *testing.T) {
	imp, _ := setupImporter(t)

	_, err := imp.ImportFile(context.Background(), "transactions.xlsx")
	assert.Error(t, err)
}
