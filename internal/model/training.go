package model

import "time"

// TrainingSample is one (description, category) pair used to train the
// statistical classifier. The csv tags match the base dataset layout.
type TrainingSample struct {
	Description string   `csv:"description"`
	Category    Category `csv:"category"`
}

// FeedbackRecord is one appended user correction. The ledger is a
// training log, not a current-state table: correcting the same
// transaction twice produces two records.
type FeedbackRecord struct {
	Description string    `csv:"description"`
	Category    Category  `csv:"category"`
	CreatedAt   time.Time `csv:"created_at"`
}
