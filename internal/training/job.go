package training

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/NaveenRajanKS004/SpendIQ/internal/classifier"
	"github.com/NaveenRajanKS004/SpendIQ/internal/engine"
	"github.com/NaveenRajanKS004/SpendIQ/internal/feedback"
)

// Job retrains the classifier from the base dataset plus accumulated
// feedback and atomically publishes the resulting snapshot. It runs
// out-of-band; training latency never blocks a categorization request,
// and a failed or canceled run leaves the previously published
// snapshot authoritative.
type Job struct {
	ledger       *feedback.Store
	engine       *engine.Engine
	basePath     string
	snapshotPath string
}

// NewJob creates a training job. engine may be nil when the caller
// only wants the artifact published to disk (e.g. a scheduled retrain
// in a separate process).
func NewJob(basePath, snapshotPath string, ledger *feedback.Store, eng *engine.Engine) *Job {
	return &Job{
		basePath:     basePath,
		snapshotPath: snapshotPath,
		ledger:       ledger,
		engine:       eng,
	}
}

// Run executes one full retrain cycle: build dataset, train, evaluate,
// publish. The snapshot is written to a temporary file in the target
// directory and renamed into place, so the active artifact is replaced
// whole or not at all; concurrent readers of the engine see either the
// old or the new snapshot, never a mix.
func (j *Job) Run(ctx context.Context) (*classifier.Snapshot, *classifier.Evaluation, error) {
	samples, err := BuildDataset(j.basePath, j.ledger)
	if err != nil {
		return nil, nil, err
	}

	snapshot, eval, err := classifier.Train(ctx, samples)
	if err != nil {
		return nil, nil, err
	}

	if err := j.publish(snapshot); err != nil {
		return nil, nil, err
	}

	if j.engine != nil {
		j.engine.Swap(snapshot)
	}

	slog.Info("training job complete",
		"snapshot", j.snapshotPath,
		"train_samples", eval.TrainSize,
		"accuracy", fmt.Sprintf("%.3f", eval.Accuracy))

	return snapshot, eval, nil
}

// publish writes the snapshot next to its final path and renames it
// into place. The active snapshot file is never written in place.
func (j *Job) publish(snapshot *classifier.Snapshot) error {
	dir := filepath.Dir(j.snapshotPath)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return fmt.Errorf("failed to create snapshot directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(j.snapshotPath)+".tmp-*")
	if err != nil {
		return fmt.Errorf("failed to create temporary snapshot: %w", err)
	}
	tmpPath := tmp.Name()
	_ = tmp.Close()

	if err := classifier.Save(snapshot, tmpPath); err != nil {
		_ = os.Remove(tmpPath)
		return err
	}

	if err := os.Rename(tmpPath, j.snapshotPath); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("failed to publish snapshot: %w", err)
	}
	return nil
}
