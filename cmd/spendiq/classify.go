package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func classifyCmd() *cobra.Command {
	var explicit string

	cmd := &cobra.Command{
		Use:   "classify <description>",
		Short: "Categorize a transaction description",
		Long: `Run one description through the hybrid classifier and print the
resulting category. Useful for checking what a rule or the trained
model would do without logging a transaction.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			eng, err := initEngine()
			if err != nil {
				return err
			}

			description := strings.Join(args, " ")
			category, err := eng.Classify(description, explicit)
			if err != nil {
				return err
			}

			fmt.Println(category)
			return nil
		},
	}

	cmd.Flags().StringVar(&explicit, "category", "", "explicit category (skips classification entirely)")
	return cmd
}
