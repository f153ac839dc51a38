package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType indicates whether a transaction is money in or money out.
type TransactionType string

// Transaction type constants.
const (
	TypeIncome  TransactionType = "income"
	TypeExpense TransactionType = "expense"
)

// ValidTransactionType reports whether t is a known transaction type.
func ValidTransactionType(t TransactionType) bool {
	return t == TypeIncome || t == TypeExpense
}

// Transaction represents a single logged financial transaction.
type Transaction struct {
	CreatedAt   time.Time
	Description string
	Category    Category
	Type        TransactionType
	Amount      decimal.Decimal
	ID          int64
	UserID      int64
}
