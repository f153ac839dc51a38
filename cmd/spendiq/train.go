package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/NaveenRajanKS004/SpendIQ/internal/config"
	"github.com/NaveenRajanKS004/SpendIQ/internal/training"
)

func trainCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "train",
		Short: "Retrain the statistical classifier",
		Long: `Rebuild the training set from the base dataset plus all accumulated
feedback, retrain the classifier, and publish the new snapshot
atomically. The previously published snapshot stays authoritative if
training fails or is interrupted.

The per-category evaluation is diagnostic: nothing in it blocks the
publish.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			job := training.NewJob(
				config.ExpandPath(viper.GetString("ml.dataset")),
				config.ExpandPath(viper.GetString("ml.snapshot")),
				initLedger(),
				nil)

			snapshot, eval, err := job.Run(cmd.Context())
			if err != nil {
				return err
			}

			fmt.Println(eval.String())
			fmt.Printf("Snapshot published: %d classes, trained at %s\n",
				len(snapshot.Classes()),
				snapshot.TrainedAt.Format("2006-01-02 15:04:05 MST"))
			return nil
		},
	}
}
