package rules

import (
	"strings"

	"github.com/NaveenRajanKS004/SpendIQ/internal/model"
)

// Matcher evaluates descriptions against a rule table.
type Matcher struct {
	table Table
}

// NewMatcher creates a matcher over the given table. A nil table falls
// back to the built-in rule set.
func NewMatcher(table Table) *Matcher {
	if table == nil {
		table = DefaultTable()
	}
	return &Matcher{table: table}
}

// Match returns the first category whose any keyword is a substring of
// the description. Rules are tried in table-declaration order and
// keywords in declaration order within a rule; the first hit wins and
// short-circuits the statistical layer entirely. No hit returns false,
// which is a fall-through signal, not an error.
func (m *Matcher) Match(description string) (model.Category, bool) {
	description = strings.ToLower(description)
	if strings.TrimSpace(description) == "" {
		return "", false
	}

	for _, rule := range m.table {
		for _, keyword := range rule.Keywords {
			if strings.Contains(description, keyword) {
				return rule.Category, true
			}
		}
	}

	return "", false
}

// Table returns the matcher's rule table in declaration order.
func (m *Matcher) Table() Table {
	return m.table
}
