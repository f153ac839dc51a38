// Package engine implements the hybrid categorization engine: the
// deterministic rule layer first, the statistical classifier second,
// and a fixed fallback label when neither can answer.
package engine

import (
	"log/slog"
	"sync/atomic"

	"github.com/NaveenRajanKS004/SpendIQ/internal/classifier"
	"github.com/NaveenRajanKS004/SpendIQ/internal/model"
	"github.com/NaveenRajanKS004/SpendIQ/internal/rules"
	"github.com/NaveenRajanKS004/SpendIQ/internal/textnorm"
)

// Engine assigns a spending category to a free-text description. It is
// safe for concurrent use: Classify is read-only, and the active
// snapshot is replaced with a single atomic pointer swap so in-flight
// calls finish against whichever snapshot they captured.
type Engine struct {
	matcher  *rules.Matcher
	snapshot atomic.Pointer[classifier.Snapshot]
}

// New creates an engine with the given rule matcher and no loaded
// snapshot. A nil matcher gets the built-in rule table.
func New(matcher *rules.Matcher) *Engine {
	if matcher == nil {
		matcher = rules.NewMatcher(nil)
	}
	return &Engine{matcher: matcher}
}

// Classify resolves a description to a category.
//
// An explicit category always wins; the engine never overrides a user
// choice, but it does reject labels outside the closed enumeration.
// Otherwise the description is normalized once, the rule layer is
// tried, then the statistical layer, and finally the fixed fallback.
// No failure on the classification path escapes this method: the
// worst case is the fallback label.
func (e *Engine) Classify(description string, explicit string) (model.Category, error) {
	if explicit != "" {
		category, err := model.ParseCategory(explicit)
		if err != nil {
			return "", err
		}
		return category, nil
	}

	normalized := textnorm.Normalize(description)

	if category, ok := e.matcher.Match(normalized); ok {
		return category, nil
	}

	snapshot := e.snapshot.Load()
	if snapshot == nil || normalized == "" {
		return model.CategoryUncategorized, nil
	}

	category, err := snapshot.Predict(normalized)
	if err != nil {
		// Unclassifiable by statistics is a defined state, not a
		// caller-visible failure.
		slog.Debug("statistical prediction unavailable",
			"description", description,
			"error", err)
		return model.CategoryUncategorized, nil
	}
	if !model.ValidCategory(category) {
		slog.Warn("model produced a label outside the category set",
			"category", category)
		return model.CategoryUncategorized, nil
	}
	return category, nil
}

// Swap publishes a new snapshot. Calls issued after Swap returns see
// the new snapshot; calls concurrent with it see exactly one of the
// two, never a mix. A nil snapshot drops the statistical layer and the
// engine degrades to rules plus fallback.
func (e *Engine) Swap(snapshot *classifier.Snapshot) {
	e.snapshot.Store(snapshot)
	if snapshot != nil {
		slog.Info("classifier snapshot activated",
			"trained_at", snapshot.TrainedAt,
			"classes", len(snapshot.Classes()),
			"samples", snapshot.Samples)
	}
}

// Snapshot returns the currently active snapshot, or nil when the
// engine is running rule-only.
func (e *Engine) Snapshot() *classifier.Snapshot {
	return e.snapshot.Load()
}

// Rules exposes the rule table for operator inspection.
func (e *Engine) Rules() rules.Table {
	return e.matcher.Table()
}
