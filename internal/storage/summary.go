package storage

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/NaveenRajanKS004/SpendIQ/internal/model"
	"github.com/NaveenRajanKS004/SpendIQ/internal/service"
)

// GetTotals returns overall income, expense and balance.
func (s *SQLiteStorage) GetTotals(ctx context.Context) (*service.Totals, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT transaction_type, amount
		FROM transactions`)
	if err != nil {
		return nil, fmt.Errorf("failed to query totals: %w", err)
	}
	defer rows.Close()

	totals := &service.Totals{}
	for rows.Next() {
		var txnType, amount string
		if err := rows.Scan(&txnType, &amount); err != nil {
			return nil, fmt.Errorf("failed to scan totals row: %w", err)
		}
		value, err := decimal.NewFromString(amount)
		if err != nil {
			return nil, fmt.Errorf("corrupt amount %q: %w", amount, err)
		}
		switch model.TransactionType(txnType) {
		case model.TypeIncome:
			totals.Income = totals.Income.Add(value)
		case model.TypeExpense:
			totals.Expense = totals.Expense.Add(value)
		}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating totals: %w", err)
	}

	totals.Balance = totals.Income.Sub(totals.Expense)
	return totals, nil
}

// GetCategoryTotals returns expense totals per category, largest
// first.
func (s *SQLiteStorage) GetCategoryTotals(ctx context.Context) ([]service.CategoryTotal, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT category, amount
		FROM transactions
		WHERE transaction_type = ?`, string(model.TypeExpense))
	if err != nil {
		return nil, fmt.Errorf("failed to query category totals: %w", err)
	}
	defer rows.Close()

	byCategory := make(map[model.Category]decimal.Decimal)
	for rows.Next() {
		var category, amount string
		if err := rows.Scan(&category, &amount); err != nil {
			return nil, fmt.Errorf("failed to scan category row: %w", err)
		}
		value, err := decimal.NewFromString(amount)
		if err != nil {
			return nil, fmt.Errorf("corrupt amount %q: %w", amount, err)
		}
		c := model.Category(category)
		byCategory[c] = byCategory[c].Add(value)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating category totals: %w", err)
	}

	// Enum order first, then any stored fallback label, so output is
	// stable run to run.
	var totals []service.CategoryTotal
	for _, category := range append(model.Categories(), model.CategoryUncategorized) {
		if total, ok := byCategory[category]; ok {
			totals = append(totals, service.CategoryTotal{Category: category, Total: total})
		}
	}

	for i := 0; i < len(totals); i++ {
		for j := i + 1; j < len(totals); j++ {
			if totals[j].Total.GreaterThan(totals[i].Total) {
				totals[i], totals[j] = totals[j], totals[i]
			}
		}
	}
	return totals, nil
}

// GetMonthlySummaries returns an income/expense breakdown per calendar
// month in ascending month order.
func (s *SQLiteStorage) GetMonthlySummaries(ctx context.Context) ([]service.MonthlySummary, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT strftime('%Y-%m', created_at) AS month, transaction_type, amount
		FROM transactions
		ORDER BY month`)
	if err != nil {
		return nil, fmt.Errorf("failed to query monthly summaries: %w", err)
	}
	defer rows.Close()

	var months []string
	byMonth := make(map[string]*service.MonthlySummary)
	for rows.Next() {
		var month, txnType, amount string
		if err := rows.Scan(&month, &txnType, &amount); err != nil {
			return nil, fmt.Errorf("failed to scan monthly row: %w", err)
		}
		value, err := decimal.NewFromString(amount)
		if err != nil {
			return nil, fmt.Errorf("corrupt amount %q: %w", amount, err)
		}

		summary, ok := byMonth[month]
		if !ok {
			summary = &service.MonthlySummary{Month: month}
			byMonth[month] = summary
			months = append(months, month)
		}
		switch model.TransactionType(txnType) {
		case model.TypeIncome:
			summary.Income = summary.Income.Add(value)
		case model.TypeExpense:
			summary.Expense = summary.Expense.Add(value)
		}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating monthly summaries: %w", err)
	}

	summaries := make([]service.MonthlySummary, 0, len(months))
	for _, month := range months {
		summary := byMonth[month]
		summary.Balance = summary.Income.Sub(summary.Expense)
		summaries = append(summaries, *summary)
	}
	return summaries, nil
}

// GetInsights returns the headline numbers: transaction count, single
// highest expense and the top spending category.
func (s *SQLiteStorage) GetInsights(ctx context.Context) (*service.Insights, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	insights := &service.Insights{}
	err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM transactions`).Scan(&insights.TotalTransactions)
	if err != nil {
		return nil, fmt.Errorf("failed to count transactions: %w", err)
	}

	categoryTotals, err := s.GetCategoryTotals(ctx)
	if err != nil {
		return nil, err
	}
	if len(categoryTotals) > 0 {
		insights.TopCategory = categoryTotals[0].Category
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT amount FROM transactions WHERE transaction_type = ?`, string(model.TypeExpense))
	if err != nil {
		return nil, fmt.Errorf("failed to query expenses: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var amount string
		if err := rows.Scan(&amount); err != nil {
			return nil, fmt.Errorf("failed to scan expense: %w", err)
		}
		value, err := decimal.NewFromString(amount)
		if err != nil {
			return nil, fmt.Errorf("corrupt amount %q: %w", amount, err)
		}
		if value.GreaterThan(insights.HighestExpense) {
			insights.HighestExpense = value
		}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating expenses: %w", err)
	}

	return insights, nil
}
