// Package importer ingests transaction CSV files, classifying rows
// that arrive without a category. Malformed rows are skipped but never
// silently: every skip is counted and carries a reason in the result.
package importer

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/NaveenRajanKS004/SpendIQ/internal/model"
	"github.com/NaveenRajanKS004/SpendIQ/internal/service"
)

// Importer reads transaction rows and persists them through the
// storage collaborator, invoking the categorization engine once per
// row that lacks an explicit category.
type Importer struct {
	storage    service.Storage
	classifier service.Classifier

	// Progress, when set, is called once per processed row.
	Progress func()
}

// New creates an importer over the given collaborators.
func New(storage service.Storage, classifier service.Classifier) *Importer {
	return &Importer{storage: storage, classifier: classifier}
}

// ImportFile imports a CSV file from disk.
func (i *Importer) ImportFile(ctx context.Context, path string) (*model.ImportResult, error) {
	if !strings.HasSuffix(strings.ToLower(path), ".csv") {
		return nil, fmt.Errorf("only CSV files are supported, got %s", path)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open import file: %w", err)
	}
	defer f.Close()

	return i.Import(ctx, f)
}

// Import reads CSV rows from r. The header must name at least
// description, amount and transaction_type; category is optional and
// classified when blank. Valid rows are inserted in a single batch.
func (i *Importer) Import(ctx context.Context, r io.Reader) (*model.ImportResult, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1 // malformed rows are per-row skips, not a failed import
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV header: %w", err)
	}
	columns := make(map[string]int, len(header))
	for idx, name := range header {
		columns[strings.ToLower(strings.TrimSpace(name))] = idx
	}
	for _, required := range []string{"description", "amount", "transaction_type"} {
		if _, ok := columns[required]; !ok {
			return nil, fmt.Errorf("CSV header missing required column %q", required)
		}
	}

	result := &model.ImportResult{}
	var txns []model.Transaction

	line := 1
	for {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("import interrupted: %w", err)
		}

		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		line++
		if err != nil {
			result.Skipped = append(result.Skipped, model.SkippedRow{
				Line: line, Reason: fmt.Sprintf("unparseable row: %v", err),
			})
			continue
		}
		if i.Progress != nil {
			i.Progress()
		}

		txn, reason := i.parseRow(record, columns)
		if reason != "" {
			result.Skipped = append(result.Skipped, model.SkippedRow{Line: line, Reason: reason})
			continue
		}
		txns = append(txns, *txn)
	}

	if len(txns) > 0 {
		inserted, err := i.storage.SaveTransactions(ctx, txns)
		if err != nil {
			return nil, fmt.Errorf("failed to save imported transactions: %w", err)
		}
		result.Inserted = inserted
	}

	slog.Info("import complete",
		"inserted", result.Inserted,
		"skipped", result.SkippedCount())

	return result, nil
}

// parseRow turns one CSV record into a transaction, or a non-empty
// skip reason.
func (i *Importer) parseRow(record []string, columns map[string]int) (*model.Transaction, string) {
	field := func(name string) string {
		idx, ok := columns[name]
		if !ok || idx >= len(record) {
			return ""
		}
		return strings.TrimSpace(record[idx])
	}

	description := field("description")
	if description == "" {
		return nil, "missing description"
	}

	amount, err := decimal.NewFromString(field("amount"))
	if err != nil {
		return nil, fmt.Sprintf("invalid amount %q", field("amount"))
	}
	if amount.IsNegative() {
		return nil, fmt.Sprintf("negative amount %q", field("amount"))
	}

	txnType := model.TransactionType(strings.ToLower(field("transaction_type")))
	if !model.ValidTransactionType(txnType) {
		return nil, fmt.Sprintf("invalid transaction_type %q", field("transaction_type"))
	}

	category, err := i.classifier.Classify(description, field("category"))
	if err != nil {
		return nil, fmt.Sprintf("unknown category %q", field("category"))
	}

	return &model.Transaction{
		Description: description,
		Category:    category,
		Type:        txnType,
		Amount:      amount,
	}, ""
}
