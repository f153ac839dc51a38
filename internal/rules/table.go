// Package rules implements the deterministic keyword layer of the
// hybrid classifier: an ordered category-to-keywords table evaluated
// first-match-wins ahead of the statistical layer.
package rules

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/NaveenRajanKS004/SpendIQ/internal/model"
)

// Rule maps one category to the lowercase keyword substrings that
// resolve to it.
type Rule struct {
	Category model.Category
	Keywords []string
}

// Table is an ordered rule list. Iteration order is declaration order;
// a description containing keywords for two categories always resolves
// to whichever rule appears first.
type Table []Rule

// DefaultTable returns the built-in rule set for unambiguous merchant
// strings.
func DefaultTable() Table {
	return Table{
		{Category: model.CategoryIncome, Keywords: []string{"salary", "bonus", "credit"}},
		{Category: model.CategoryFood, Keywords: []string{"swiggy", "zomato", "restaurant", "cafe", "kirana", "tea", "stall"}},
		{Category: model.CategoryTransport, Keywords: []string{"uber", "ola", "petrol", "fuel"}},
		{Category: model.CategoryShopping, Keywords: []string{"amazon", "flipkart", "myntra", "mall"}},
		{Category: model.CategoryHealthcare, Keywords: []string{"apollo", "medplus", "hospital", "clinic", "pharmacy"}},
		{Category: model.CategoryUtilities, Keywords: []string{"electricity", "water", "gas", "recharge", "internet"}},
		{Category: model.CategoryEntertainment, Keywords: []string{"netflix", "spotify", "movie", "gaming", "bookmyshow"}},
		{Category: model.CategoryTransfers, Keywords: []string{"upi to", "imps", "bank transfer", "sent to"}},
	}
}

// tableEntry is the YAML form of one rule. A sequence of entries keeps
// declaration order, which a map would not.
type tableEntry struct {
	Category string   `yaml:"category"`
	Keywords []string `yaml:"keywords"`
}

// LoadTable reads a rule table from a YAML file. Categories are
// validated against the closed enumeration and keywords are lowered at
// load time so matching never depends on how the file was authored.
func LoadTable(path string) (Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read rules file: %w", err)
	}

	var entries []tableEntry
	if err := yaml.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("failed to parse rules file %s: %w", path, err)
	}

	table := make(Table, 0, len(entries))
	for i, entry := range entries {
		category, err := model.ParseCategory(entry.Category)
		if err != nil {
			return nil, fmt.Errorf("rules file %s entry %d: %w", path, i, err)
		}

		keywords := make([]string, 0, len(entry.Keywords))
		for _, kw := range entry.Keywords {
			kw = strings.ToLower(strings.TrimSpace(kw))
			if kw == "" {
				continue
			}
			keywords = append(keywords, kw)
		}
		if len(keywords) == 0 {
			return nil, fmt.Errorf("rules file %s entry %d (%s): no keywords", path, i, category)
		}

		table = append(table, Rule{Category: category, Keywords: keywords})
	}

	return table, nil
}
