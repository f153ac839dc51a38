package model

// SkippedRow records why a single import row was not inserted.
type SkippedRow struct {
	Reason string
	Line   int
}

// ImportResult summarizes a bulk CSV import. Skipped rows are counted
// and carry a per-row reason so the caller can surface them instead of
// the import silently shrinking.
type ImportResult struct {
	Skipped  []SkippedRow
	Inserted int
}

// SkippedCount returns the number of rows that were not inserted.
func (r *ImportResult) SkippedCount() int {
	return len(r.Skipped)
}
