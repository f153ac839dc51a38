package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/NaveenRajanKS004/SpendIQ/internal/feedback"
)

func correctCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "correct <transaction-id> <category>",
		Short: "Correct a transaction's category",
		Long: `Repoint a logged transaction to the right category and append the
correction to the feedback ledger so the next retrain learns from it.
A failed ledger write fails the whole correction; retry it.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid transaction id %q: %w", args[0], err)
			}

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			corrector := feedback.NewCorrector(store, initLedger())
			txn, err := corrector.Correct(ctx, id, args[1])
			if err != nil {
				return err
			}

			fmt.Printf("Transaction %d corrected to %s; feedback recorded for the next retrain\n",
				txn.ID, txn.Category)
			return nil
		},
	}
}
