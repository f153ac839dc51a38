// Package classifier implements the statistical layer of the hybrid
// categorization engine: a trainable bag-of-n-grams text classifier
// behind a narrow train/predict/load/save contract. The model itself
// is a TF-IDF weighted naive Bayes classifier; callers must treat the
// persisted artifact as an opaque versioned blob.
package classifier

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand"
	"time"

	"github.com/jbrukh/bayesian"

	"github.com/NaveenRajanKS004/SpendIQ/internal/model"
	"github.com/NaveenRajanKS004/SpendIQ/internal/textnorm"
)

// Training errors.
var (
	// ErrInsufficientData means the sample set cannot produce a model
	// at all (fewer than two distinct categories). Per-category
	// shortage only degrades the split, it never fails training.
	ErrInsufficientData = errors.New("insufficient training data")

	// ErrNoSignal means the text normalizes to nothing and cannot be
	// classified statistically.
	ErrNoSignal = errors.New("no classifiable terms")
)

// splitSeed fixes the train/test shuffle so training runs are
// reproducible for a given dataset.
const splitSeed = 42

// testFraction is the held-out share used for evaluation.
const testFraction = 0.2

// Snapshot is an immutable trained classifier artifact. It is created
// by Train or Load, never mutated afterwards, and superseded (not
// updated) by the next training run.
type Snapshot struct {
	TrainedAt time.Time
	cl        *bayesian.Classifier
	classes   []model.Category
	Samples   int
}

// Classes returns the categories the snapshot can predict.
func (s *Snapshot) Classes() []model.Category {
	out := make([]model.Category, len(s.classes))
	copy(out, s.classes)
	return out
}

// Predict returns the most likely category for an already-normalized
// description. The caller must normalize with textnorm exactly as the
// training pipeline did.
func (s *Snapshot) Predict(normalized string) (model.Category, error) {
	terms := documentTerms(normalized)
	if len(terms) == 0 {
		return "", ErrNoSignal
	}

	_, idx, _ := s.cl.LogScores(terms)
	return s.classes[idx], nil
}

// Train fits a classifier on the given samples and evaluates it on a
// held-out 20% split. The split is stratified by category when every
// category has at least two samples; otherwise it degrades to an
// unstratified split with an operator-visible warning rather than
// failing the run. Samples with empty normalized descriptions or
// labels outside the closed enumeration are dropped.
func Train(ctx context.Context, samples []model.TrainingSample) (*Snapshot, *Evaluation, error) {
	usable := make([]model.TrainingSample, 0, len(samples))
	for _, s := range samples {
		if !model.ValidCategory(s.Category) {
			continue
		}
		if norm := textnorm.Normalize(s.Description); norm != "" {
			usable = append(usable, model.TrainingSample{Description: norm, Category: s.Category})
		}
	}

	byCategory := make(map[model.Category]int)
	for _, s := range usable {
		byCategory[s.Category]++
	}
	if len(byCategory) < 2 {
		return nil, nil, fmt.Errorf("%w: need samples for at least 2 categories, have %d", ErrInsufficientData, len(byCategory))
	}

	stratify := true
	for category, n := range byCategory {
		if n < 2 {
			slog.Warn("category has fewer than 2 samples, disabling stratified split",
				"category", category,
				"samples", n)
			stratify = false
		}
	}

	train, test := split(usable, stratify)

	// Classes present anywhere in the dataset, in enum order, so the
	// class index layout does not depend on sample order.
	classes := make([]model.Category, 0, len(byCategory))
	bayesClasses := make([]bayesian.Class, 0, len(byCategory))
	for _, c := range model.Categories() {
		if byCategory[c] > 0 {
			classes = append(classes, c)
			bayesClasses = append(bayesClasses, bayesian.Class(c))
		}
	}

	cl := bayesian.NewClassifierTfIdf(bayesClasses...)
	for i, s := range train {
		if i%256 == 0 {
			if err := ctx.Err(); err != nil {
				return nil, nil, fmt.Errorf("training interrupted: %w", err)
			}
		}
		cl.Learn(documentTerms(s.Description), bayesian.Class(s.Category))
	}
	cl.ConvertTermsFreqToTfIdf()

	snapshot := &Snapshot{
		cl:        cl,
		classes:   classes,
		TrainedAt: time.Now().UTC(),
		Samples:   len(train),
	}

	eval, err := evaluate(ctx, snapshot, test, stratify, len(train))
	if err != nil {
		return nil, nil, err
	}

	slog.Info("classifier trained",
		"train_samples", len(train),
		"test_samples", len(test),
		"categories", len(classes),
		"stratified", stratify,
		"accuracy", fmt.Sprintf("%.3f", eval.Accuracy))

	return snapshot, eval, nil
}

// split shuffles deterministically and carves off the test fraction.
// Stratified mode splits within each category so rare categories keep
// their proportion on both sides and every category lands in the
// training half at least once.
func split(samples []model.TrainingSample, stratify bool) (train, test []model.TrainingSample) {
	rng := rand.New(rand.NewSource(splitSeed))

	if !stratify {
		shuffled := make([]model.TrainingSample, len(samples))
		copy(shuffled, samples)
		rng.Shuffle(len(shuffled), func(i, j int) {
			shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
		})
		cut := len(shuffled) - int(float64(len(shuffled))*testFraction)
		return shuffled[:cut], shuffled[cut:]
	}

	grouped := make(map[model.Category][]model.TrainingSample)
	for _, s := range samples {
		grouped[s.Category] = append(grouped[s.Category], s)
	}

	// Enum order keeps the split reproducible; map iteration would not.
	for _, category := range model.Categories() {
		group := grouped[category]
		if len(group) == 0 {
			continue
		}
		rng.Shuffle(len(group), func(i, j int) {
			group[i], group[j] = group[j], group[i]
		})
		take := int(float64(len(group)) * testFraction)
		if take >= len(group) {
			take = len(group) - 1
		}
		cut := len(group) - take
		train = append(train, group[:cut]...)
		test = append(test, group[cut:]...)
	}

	return train, test
}

// documentTerms produces the unigram+bigram term bag for a normalized
// description. Must stay identical between training and prediction.
func documentTerms(normalized string) []string {
	words := textnorm.Terms(normalized)
	if len(words) == 0 {
		return nil
	}

	terms := make([]string, 0, len(words)*2-1)
	terms = append(terms, words...)
	for i := 0; i+1 < len(words); i++ {
		terms = append(terms, words[i]+"_"+words[i+1])
	}
	return terms
}
