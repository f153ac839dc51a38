package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/NaveenRajanKS004/SpendIQ/internal/model"
	"github.com/NaveenRajanKS004/SpendIQ/internal/service"
)

func addCmd() *cobra.Command {
	var (
		amountFlag   string
		typeFlag     string
		categoryFlag string
	)

	cmd := &cobra.Command{
		Use:   "add <description>",
		Short: "Log a transaction",
		Long: `Log one transaction. When --category is omitted the description is
run through the hybrid classifier.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			amount, err := decimal.NewFromString(amountFlag)
			if err != nil {
				return fmt.Errorf("invalid amount %q: %w", amountFlag, err)
			}

			txnType := model.TransactionType(typeFlag)
			if !model.ValidTransactionType(txnType) {
				return fmt.Errorf("invalid type %q (want income or expense)", typeFlag)
			}

			eng, err := initEngine()
			if err != nil {
				return err
			}

			description := args[0]
			for _, arg := range args[1:] {
				description += " " + arg
			}

			category, err := eng.Classify(description, categoryFlag)
			if err != nil {
				return err
			}

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			txn := &model.Transaction{
				Description: description,
				Category:    category,
				Type:        txnType,
				Amount:      amount,
			}
			if err := store.SaveTransaction(ctx, txn); err != nil {
				return err
			}

			fmt.Printf("Logged transaction %d: %s → %s\n", txn.ID, description, category)
			return nil
		},
	}

	cmd.Flags().StringVar(&amountFlag, "amount", "", "transaction amount (required)")
	cmd.Flags().StringVar(&typeFlag, "type", "expense", "transaction type (income or expense)")
	cmd.Flags().StringVar(&categoryFlag, "category", "", "explicit category (skips classification)")
	_ = cmd.MarkFlagRequired("amount")
	return cmd
}

func listCmd() *cobra.Command {
	var (
		categoryFlag string
		limitFlag    int
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List logged transactions",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			filter := service.TransactionFilter{Limit: limitFlag}
			if categoryFlag != "" {
				category, parseErr := model.ParseCategory(categoryFlag)
				if parseErr != nil {
					return parseErr
				}
				filter.Category = category
			}

			txns, err := store.GetTransactions(ctx, filter)
			if err != nil {
				return err
			}
			if len(txns) == 0 {
				fmt.Println("No transactions found.")
				return nil
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			defer w.Flush()
			fmt.Fprintln(w, "ID\tDATE\tDESCRIPTION\tCATEGORY\tTYPE\tAMOUNT")
			for _, txn := range txns {
				fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%s\n",
					txn.ID,
					txn.CreatedAt.Format("2006-01-02"),
					txn.Description,
					txn.Category,
					txn.Type,
					txn.Amount.StringFixed(2))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&categoryFlag, "category", "", "filter by category")
	cmd.Flags().IntVar(&limitFlag, "limit", 50, "maximum number of transactions to show")
	return cmd
}
