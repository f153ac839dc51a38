package rules

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/NaveenRajanKS004/SpendIQ/internal/model"
)

func TestMatcher_Match(t *testing.T) {
	tests := []struct {
		name         string
		table        Table
		description  string
		wantCategory model.Category
		wantHit      bool
	}{
		{
			name:         "simple keyword hit",
			description:  "swiggy order",
			wantCategory: model.CategoryFood,
			wantHit:      true,
		},
		{
			name:         "case insensitive",
			description:  "SWIGGY ORDER 123456",
			wantCategory: model.CategoryFood,
			wantHit:      true,
		},
		{
			name:         "multi word keyword",
			description:  "upi to ramesh",
			wantCategory: model.CategoryTransfers,
			wantHit:      true,
		},
		{
			name:        "no keyword matches",
			description: "xyz corp payment",
			wantHit:     false,
		},
		{
			name:        "empty description",
			description: "",
			wantHit:     false,
		},
		{
			name: "first declared rule wins over later one",
			table: Table{
				{Category: model.CategoryIncome, Keywords: []string{"salary"}},
				{Category: model.CategoryShopping, Keywords: []string{"mall"}},
			},
			description:  "salary credited at mall branch",
			wantCategory: model.CategoryIncome,
			wantHit:      true,
		},
		{
			name: "declaration order reversed flips the winner",
			table: Table{
				{Category: model.CategoryShopping, Keywords: []string{"mall"}},
				{Category: model.CategoryIncome, Keywords: []string{"salary"}},
			},
			description:  "salary credited at mall branch",
			wantCategory: model.CategoryShopping,
			wantHit:      true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewMatcher(tt.table)
			got, hit := m.Match(tt.description)
			assert.Equal(t, tt.wantHit, hit)
			if tt.wantHit {
				assert.Equal(t, tt.wantCategory, got)
			}
		})
	}
}

func TestMatcher_MatchIsDeterministic(t *testing.T) {
	m := NewMatcher(nil)
	first, hit := m.Match("uber ride to airport")
	require.True(t, hit)
	for i := 0; i < 100; i++ {
		got, ok := m.Match("uber ride to airport")
		require.True(t, ok)
		require.Equal(t, first, got)
	}
}

func TestLoadTable(t *testing.T) {
	t.Run("valid file preserves declaration order", func(t *testing.T) {
		path := writeRules(t, `
- category: Shopping
  keywords: [MALL, amazon]
- category: Income
  keywords: [salary]
`)
		table, err := LoadTable(path)
		require.NoError(t, err)
		require.Len(t, table, 2)
		assert.Equal(t, model.CategoryShopping, table[0].Category)
		assert.Equal(t, []string{"mall", "amazon"}, table[0].Keywords)
		assert.Equal(t, model.CategoryIncome, table[1].Category)

		// First-match-wins reflects file order, not enum order.
		got, hit := NewMatcher(table).Match("salary spent at mall")
		require.True(t, hit)
		assert.Equal(t, model.CategoryShopping, got)
	})

	t.Run("unknown category rejected", func(t *testing.T) {
		path := writeRules(t, `
- category: Groceries
  keywords: [kirana]
`)
		_, err := LoadTable(path)
		require.Error(t, err)
		assert.ErrorIs(t, err, model.ErrInvalidCategory)
	})

	t.Run("entry without keywords rejected", func(t *testing.T) {
		path := writeRules(t, `
- category: Food
  keywords: []
`)
		_, err := LoadTable(path)
		assert.Error(t, err)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadTable(filepath.Join(t.TempDir(), "absent.yaml"))
		assert.Error(t, err)
	})
}

func writeRules(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "rules.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}
