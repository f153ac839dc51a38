package main

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/NaveenRajanKS004/SpendIQ/internal/model"
)

func categoriesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "categories",
		Short: "List categories and their rule keywords",
		Long: `List the closed category set alongside the rule keywords that map to
each one. Rule keywords and the trained model are maintained
independently; this view helps spot where they disagree.`,
		RunE: func(_ *cobra.Command, _ []string) error {
			eng, err := initEngine()
			if err != nil {
				return err
			}

			keywords := make(map[model.Category][]string)
			for _, rule := range eng.Rules() {
				keywords[rule.Category] = append(keywords[rule.Category], rule.Keywords...)
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			defer w.Flush()
			fmt.Fprintln(w, "CATEGORY\tRULE KEYWORDS")
			for _, category := range model.Categories() {
				fmt.Fprintf(w, "%s\t%s\n", category, strings.Join(keywords[category], ", "))
			}
			fmt.Fprintf(w, "%s\t(fallback)\n", model.CategoryUncategorized)

			if snapshot := eng.Snapshot(); snapshot != nil {
				fmt.Fprintf(w, "\nModel classes: %d, trained at %s\n",
					len(snapshot.Classes()),
					snapshot.TrainedAt.Format("2006-01-02 15:04:05 MST"))
			} else {
				fmt.Fprintln(w, "\nNo classifier snapshot loaded (rule-only mode)")
			}
			return nil
		},
	}
}
