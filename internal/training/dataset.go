// Package training builds the combined dataset and runs the retrain
// and publish cycle for the statistical classifier.
package training

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/gocarina/gocsv"

	"github.com/NaveenRajanKS004/SpendIQ/internal/feedback"
	"github.com/NaveenRajanKS004/SpendIQ/internal/model"
)

// LoadBaseDataset reads the immutable shipped dataset.
func LoadBaseDataset(path string) ([]model.TrainingSample, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open base dataset: %w", err)
	}
	defer f.Close()

	var samples []model.TrainingSample
	if err := gocsv.Unmarshal(f, &samples); err != nil {
		return nil, fmt.Errorf("failed to parse base dataset %s: %w", path, err)
	}
	return samples, nil
}

// BuildDataset concatenates the base dataset with the feedback ledger,
// base samples first for reproducibility, and drops rows with a
// missing description or a label outside the closed enumeration.
func BuildDataset(basePath string, ledger *feedback.Store) ([]model.TrainingSample, error) {
	base, err := LoadBaseDataset(basePath)
	if err != nil {
		return nil, err
	}

	records, err := ledger.ReadAll()
	if err != nil {
		return nil, err
	}

	combined := make([]model.TrainingSample, 0, len(base)+len(records))
	combined = append(combined, base...)
	for _, record := range records {
		combined = append(combined, model.TrainingSample{
			Description: record.Description,
			Category:    record.Category,
		})
	}

	dropped := 0
	usable := combined[:0]
	for _, sample := range combined {
		if strings.TrimSpace(sample.Description) == "" || !model.ValidCategory(sample.Category) {
			dropped++
			continue
		}
		usable = append(usable, sample)
	}

	slog.Info("training dataset built",
		"base_samples", len(base),
		"feedback_samples", len(records),
		"dropped", dropped,
		"total", len(usable))

	return usable, nil
}
