package feedback

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/NaveenRajanKS004/SpendIQ/internal/model"
	"github.com/NaveenRajanKS004/SpendIQ/internal/service"
)

// Corrector applies a user's category correction: it updates the
// stored transaction and appends the training signal to the ledger.
type Corrector struct {
	storage service.Storage
	ledger  *Store
}

// NewCorrector wires a corrector over the persistence layer and the
// feedback ledger.
func NewCorrector(storage service.Storage, ledger *Store) *Corrector {
	return &Corrector{storage: storage, ledger: ledger}
}

// Correct validates the new category, repoints the transaction record
// and appends a feedback record carrying the transaction's description.
// A ledger write failure fails the whole correction so the caller can
// retry; correcting the same transaction twice appends twice.
func (c *Corrector) Correct(ctx context.Context, transactionID int64, newCategory string) (*model.Transaction, error) {
	category, err := model.ParseCategory(newCategory)
	if err != nil {
		return nil, err
	}

	txn, err := c.storage.GetTransactionByID(ctx, transactionID)
	if err != nil {
		return nil, fmt.Errorf("failed to load transaction %d: %w", transactionID, err)
	}

	if err := c.storage.UpdateTransactionCategory(ctx, transactionID, category); err != nil {
		return nil, fmt.Errorf("failed to update transaction %d: %w", transactionID, err)
	}

	record := model.FeedbackRecord{
		Description: txn.Description,
		Category:    category,
		CreatedAt:   time.Now().UTC(),
	}
	if err := c.ledger.Append(record); err != nil {
		return nil, err
	}

	slog.Info("category corrected",
		"transaction_id", transactionID,
		"from", txn.Category,
		"to", category)

	txn.Category = category
	return txn, nil
}
