// Package feedback owns the append-only ledger of user corrections
// that feeds retraining. The ledger is a training log, not a
// current-state table: corrections never overwrite earlier records.
package feedback

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/gocarina/gocsv"

	"github.com/NaveenRajanKS004/SpendIQ/internal/model"
)

// ErrWriteFailed wraps ledger write failures. A dropped correction
// silently degrades future training, so appends must never fail
// silently; callers are expected to retry.
var ErrWriteFailed = errors.New("failed to write feedback record")

// Store is a durable append-only CSV ledger. Appends serialize behind
// a mutex so concurrent corrections cannot interleave partial records.
type Store struct {
	path string
	mu   sync.Mutex
}

// NewStore creates a ledger at path. The file is created lazily on
// first append; a missing file reads as an empty ledger.
func NewStore(path string) *Store {
	return &Store{path: path}
}

// Append durably writes one correction. The category is validated
// against the closed enumeration before anything touches the file: an
// unknown label fails with model.ErrInvalidCategory and leaves the
// ledger untouched.
func (s *Store) Append(record model.FeedbackRecord) error {
	if !model.ValidCategory(record.Category) {
		return fmt.Errorf("%w: %q", model.ErrInvalidCategory, record.Category)
	}
	if record.CreatedAt.IsZero() {
		record.CreatedAt = time.Now().UTC()
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o750); err != nil {
			return fmt.Errorf("%w: %v", ErrWriteFailed, err)
		}
	}

	writeHeader := false
	if info, err := os.Stat(s.path); errors.Is(err, os.ErrNotExist) {
		writeHeader = true
	} else if err != nil {
		return fmt.Errorf("%w: %v", ErrWriteFailed, err)
	} else if info.Size() == 0 {
		writeHeader = true
	}

	f, err := os.OpenFile(s.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o600)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrWriteFailed, err)
	}
	defer f.Close()

	rows := []model.FeedbackRecord{record}
	if writeHeader {
		err = gocsv.Marshal(rows, f)
	} else {
		err = gocsv.MarshalWithoutHeaders(rows, f)
	}
	if err != nil {
		return fmt.Errorf("%w: %v", ErrWriteFailed, err)
	}

	if err := f.Sync(); err != nil {
		return fmt.Errorf("%w: %v", ErrWriteFailed, err)
	}
	return nil
}

// ReadAll returns every appended record in append order. A missing
// ledger file is an empty ledger, not an error.
func (s *Store) ReadAll() ([]model.FeedbackRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	f, err := os.Open(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to open feedback ledger: %w", err)
	}
	defer f.Close()

	if info, statErr := f.Stat(); statErr == nil && info.Size() == 0 {
		return nil, nil
	}

	var records []model.FeedbackRecord
	if err := gocsv.Unmarshal(f, &records); err != nil {
		return nil, fmt.Errorf("failed to parse feedback ledger %s: %w", s.path, err)
	}
	return records, nil
}

// Path returns the ledger file location.
func (s *Store) Path() string {
	return s.path
}
