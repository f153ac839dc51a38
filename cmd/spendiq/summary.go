package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

func summaryCmd() *cobra.Command {
	var (
		monthly    bool
		categories bool
		insights   bool
	)

	cmd := &cobra.Command{
		Use:   "summary",
		Short: "Show spending summaries",
		Long: `Show income/expense totals, optionally broken down by month or by
category, or the headline insights.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			switch {
			case monthly:
				summaries, err := store.GetMonthlySummaries(ctx)
				if err != nil {
					return err
				}
				if len(summaries) == 0 {
					fmt.Println("No transactions logged yet.")
					return nil
				}
				w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
				defer w.Flush()
				fmt.Fprintln(w, "MONTH\tINCOME\tEXPENSE\tBALANCE")
				for _, s := range summaries {
					fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
						s.Month, s.Income.StringFixed(2), s.Expense.StringFixed(2), s.Balance.StringFixed(2))
				}

			case categories:
				totals, err := store.GetCategoryTotals(ctx)
				if err != nil {
					return err
				}
				if len(totals) == 0 {
					fmt.Println("No expenses logged yet.")
					return nil
				}
				w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
				defer w.Flush()
				fmt.Fprintln(w, "CATEGORY\tTOTAL")
				for _, total := range totals {
					fmt.Fprintf(w, "%s\t%s\n", total.Category, total.Total.StringFixed(2))
				}

			case insights:
				result, err := store.GetInsights(ctx)
				if err != nil {
					return err
				}
				fmt.Printf("Transactions: %d\n", result.TotalTransactions)
				fmt.Printf("Highest expense: %s\n", result.HighestExpense.StringFixed(2))
				if result.TopCategory != "" {
					fmt.Printf("Top spending category: %s\n", result.TopCategory)
				}

			default:
				totals, err := store.GetTotals(ctx)
				if err != nil {
					return err
				}
				fmt.Printf("Income:  %s\n", totals.Income.StringFixed(2))
				fmt.Printf("Expense: %s\n", totals.Expense.StringFixed(2))
				fmt.Printf("Balance: %s\n", totals.Balance.StringFixed(2))
			}

			return nil
		},
	}

	cmd.Flags().BoolVar(&monthly, "monthly", false, "break down by calendar month")
	cmd.Flags().BoolVar(&categories, "categories", false, "break down expenses by category")
	cmd.Flags().BoolVar(&insights, "insights", false, "show headline insights")
	cmd.MarkFlagsMutuallyExclusive("monthly", "categories", "insights")
	return cmd
}
