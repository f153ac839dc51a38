package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/spf13/viper"

	"github.com/NaveenRajanKS004/SpendIQ/internal/classifier"
	"github.com/NaveenRajanKS004/SpendIQ/internal/config"
	"github.com/NaveenRajanKS004/SpendIQ/internal/engine"
	"github.com/NaveenRajanKS004/SpendIQ/internal/feedback"
	"github.com/NaveenRajanKS004/SpendIQ/internal/rules"
	"github.com/NaveenRajanKS004/SpendIQ/internal/service"
	"github.com/NaveenRajanKS004/SpendIQ/internal/storage"
)

// initStorage initializes the storage service with proper path
// expansion and auto-migration.
func initStorage(ctx context.Context) (service.Storage, error) {
	dbPath := config.ExpandPath(viper.GetString("data.db"))

	store, err := storage.NewSQLiteStorage(dbPath)
	if err != nil {
		return nil, err
	}

	if err := store.Migrate(ctx); err != nil {
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return store, nil
}

// initEngine builds the categorization engine: rule table from config
// (falling back to the built-in one) plus the published snapshot when
// one exists. A missing or unreadable snapshot degrades to rule-only
// classification rather than failing the command.
func initEngine() (*engine.Engine, error) {
	table := rules.Table(nil)
	if rulesPath := viper.GetString("rules.file"); rulesPath != "" {
		loaded, err := rules.LoadTable(config.ExpandPath(rulesPath))
		if err != nil {
			return nil, err
		}
		table = loaded
	}

	eng := engine.New(rules.NewMatcher(table))

	snapshotPath := config.ExpandPath(viper.GetString("ml.snapshot"))
	snapshot, err := classifier.Load(snapshotPath)
	switch {
	case err == nil:
		eng.Swap(snapshot)
	case errors.Is(err, classifier.ErrSnapshotLoad):
		slog.Warn("no usable classifier snapshot, running rule-only",
			"path", snapshotPath,
			"error", err)
	default:
		return nil, err
	}

	return eng, nil
}

// initLedger opens the feedback ledger at its configured path.
func initLedger() *feedback.Store {
	return feedback.NewStore(config.ExpandPath(viper.GetString("ml.feedback")))
}
