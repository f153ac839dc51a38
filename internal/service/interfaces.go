// Package service defines the contracts between the categorization
// core and its collaborators.
package service

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/NaveenRajanKS004/SpendIQ/internal/model"
)

// TransactionFilter defines filtering options for transaction queries.
type TransactionFilter struct {
	StartDate *time.Time
	EndDate   *time.Time
	Category  model.Category
	Limit     int
	Offset    int
}

// Totals is the overall income/expense/balance summary.
type Totals struct {
	Income  decimal.Decimal
	Expense decimal.Decimal
	Balance decimal.Decimal
}

// MonthlySummary is one month's income/expense breakdown, keyed by
// "YYYY-MM".
type MonthlySummary struct {
	Month   string
	Income  decimal.Decimal
	Expense decimal.Decimal
	Balance decimal.Decimal
}

// CategoryTotal is the spend accumulated against one category.
type CategoryTotal struct {
	Category model.Category
	Total    decimal.Decimal
}

// Insights carries the headline numbers for the insights report.
type Insights struct {
	TopCategory       model.Category
	HighestExpense    decimal.Decimal
	TotalTransactions int
}

// Storage defines the contract for the persistence layer.
type Storage interface {
	// Transaction operations
	SaveTransaction(ctx context.Context, txn *model.Transaction) error
	SaveTransactions(ctx context.Context, txns []model.Transaction) (int, error)
	GetTransactionByID(ctx context.Context, id int64) (*model.Transaction, error)
	GetTransactions(ctx context.Context, filter TransactionFilter) ([]model.Transaction, error)
	UpdateTransactionCategory(ctx context.Context, id int64, category model.Category) error

	// Summary operations
	GetTotals(ctx context.Context) (*Totals, error)
	GetCategoryTotals(ctx context.Context) ([]CategoryTotal, error)
	GetMonthlySummaries(ctx context.Context) ([]MonthlySummary, error)
	GetInsights(ctx context.Context) (*Insights, error)

	// Lifecycle
	Migrate(ctx context.Context) error
	Close() error
}

// Classifier is the categorization contract the persistence callers
// use: one call per transaction creation and per bulk-import row.
type Classifier interface {
	Classify(description string, explicit string) (model.Category, error)
}
