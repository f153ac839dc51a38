package classifier

import (
	"context"
	"fmt"
	"strings"

	"github.com/NaveenRajanKS004/SpendIQ/internal/model"
)

// Metrics holds the per-category scores computed on the held-out split.
type Metrics struct {
	Precision float64
	Recall    float64
	F1        float64
	Support   int
}

// Evaluation is the train-time diagnostic report. It is surfaced to
// the operator; nothing in it gates publishing a snapshot.
type Evaluation struct {
	PerCategory map[model.Category]Metrics
	Accuracy    float64
	TrainSize   int
	TestSize    int
	Stratified  bool
}

// evaluate scores the snapshot against the held-out samples.
func evaluate(ctx context.Context, s *Snapshot, test []model.TrainingSample, stratified bool, trainSize int) (*Evaluation, error) {
	eval := &Evaluation{
		PerCategory: make(map[model.Category]Metrics),
		TrainSize:   trainSize,
		TestSize:    len(test),
		Stratified:  stratified,
	}

	type counts struct{ tp, fp, fn int }
	byCategory := make(map[model.Category]*counts)
	for _, c := range s.classes {
		byCategory[c] = &counts{}
	}

	correct := 0
	for i, sample := range test {
		if i%256 == 0 {
			if err := ctx.Err(); err != nil {
				return nil, fmt.Errorf("evaluation interrupted: %w", err)
			}
		}

		predicted, err := s.Predict(sample.Description)
		if err != nil {
			continue
		}

		if predicted == sample.Category {
			correct++
			byCategory[sample.Category].tp++
		} else {
			byCategory[sample.Category].fn++
			byCategory[predicted].fp++
		}
	}

	if len(test) > 0 {
		eval.Accuracy = float64(correct) / float64(len(test))
	}

	for category, c := range byCategory {
		m := Metrics{Support: c.tp + c.fn}
		if c.tp+c.fp > 0 {
			m.Precision = float64(c.tp) / float64(c.tp+c.fp)
		}
		if c.tp+c.fn > 0 {
			m.Recall = float64(c.tp) / float64(c.tp+c.fn)
		}
		if m.Precision+m.Recall > 0 {
			m.F1 = 2 * m.Precision * m.Recall / (m.Precision + m.Recall)
		}
		eval.PerCategory[category] = m
	}

	return eval, nil
}

// String renders the report in a classification-report layout, one
// category per line in enum order.
func (e *Evaluation) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%-15s %9s %9s %9s %9s\n", "category", "precision", "recall", "f1", "support")
	for _, category := range model.Categories() {
		m, ok := e.PerCategory[category]
		if !ok {
			continue
		}
		fmt.Fprintf(&b, "%-15s %9.2f %9.2f %9.2f %9d\n", category, m.Precision, m.Recall, m.F1, m.Support)
	}
	fmt.Fprintf(&b, "\naccuracy %.3f on %d held-out samples (train=%d, stratified=%v)\n",
		e.Accuracy, e.TestSize, e.TrainSize, e.Stratified)
	return b.String()
}
