// Package model defines the core domain models used throughout the application.
package model

import (
	"errors"
	"fmt"
	"strings"
)

// Category is one label from the closed spending-category set.
type Category string

// The closed category enumeration. Declaration order here is also the
// iteration order of the rule table, which first-match-wins depends on.
const (
	CategoryIncome        Category = "Income"
	CategoryFood          Category = "Food"
	CategoryTransport     Category = "Transport"
	CategoryShopping      Category = "Shopping"
	CategoryHealthcare    Category = "Healthcare"
	CategoryUtilities     Category = "Utilities"
	CategoryEntertainment Category = "Entertainment"
	CategoryTransfers     Category = "Transfers"

	// CategoryUncategorized is the fixed fallback label. It is a valid
	// classification output but is never accepted as training feedback.
	CategoryUncategorized Category = "Uncategorized"
)

// ErrInvalidCategory is returned when a label outside the closed
// enumeration is offered as a classification or correction.
var ErrInvalidCategory = errors.New("invalid category")

// Categories returns the trainable categories in declaration order.
// The fallback label is excluded.
func Categories() []Category {
	return []Category{
		CategoryIncome,
		CategoryFood,
		CategoryTransport,
		CategoryShopping,
		CategoryHealthcare,
		CategoryUtilities,
		CategoryEntertainment,
		CategoryTransfers,
	}
}

// ValidCategory reports whether c is a trainable category.
func ValidCategory(c Category) bool {
	for _, known := range Categories() {
		if c == known {
			return true
		}
	}
	return false
}

// ParseCategory resolves a user-supplied label against the closed
// enumeration, case-insensitively. Unknown labels are rejected rather
// than stored.
func ParseCategory(s string) (Category, error) {
	name := strings.TrimSpace(s)
	for _, known := range Categories() {
		if strings.EqualFold(name, string(known)) {
			return known, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidCategory, s)
}
