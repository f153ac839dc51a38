package main

import (
	"fmt"
	"os"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"github.com/NaveenRajanKS004/SpendIQ/internal/importer"
)

func importCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "import <file.csv>",
		Short: "Bulk-import transactions from a CSV file",
		Long: `Import transactions from a CSV file with columns description, amount,
transaction_type and an optional category. Rows without a category are
classified; malformed rows are skipped and reported with the reason.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			eng, err := initEngine()
			if err != nil {
				return err
			}

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			imp := importer.New(store, eng)

			bar := progressbar.NewOptions(-1,
				progressbar.OptionSetWriter(os.Stderr),
				progressbar.OptionShowCount(),
				progressbar.OptionSetDescription("Importing transactions..."),
				progressbar.OptionSpinnerType(14))
			imp.Progress = func() { _ = bar.Add(1) }

			result, err := imp.ImportFile(ctx, args[0])
			_ = bar.Finish()
			fmt.Fprintln(os.Stderr)
			if err != nil {
				return err
			}

			fmt.Printf("Imported %d transactions (%d skipped)\n", result.Inserted, result.SkippedCount())
			for _, skip := range result.Skipped {
				fmt.Printf("  line %d: %s\n", skip.Line, skip.Reason)
			}
			return nil
		},
	}
}
