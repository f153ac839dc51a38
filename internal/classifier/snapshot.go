package classifier

import (
	"bytes"
	"encoding/gob"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/jbrukh/bayesian"

	"github.com/NaveenRajanKS004/SpendIQ/internal/model"
)

// SnapshotVersion is embedded in every saved artifact. Load rejects
// artifacts from a different classifier implementation generation
// instead of mis-deserializing them.
const SnapshotVersion = 1

// ErrSnapshotLoad is returned when a snapshot artifact is missing,
// corrupt, or written by an incompatible classifier version.
var ErrSnapshotLoad = errors.New("failed to load classifier snapshot")

// envelope is the on-disk form of a snapshot: a version tag and
// metadata around the opaque serialized model.
type envelope struct {
	TrainedAt time.Time
	Classes   []string
	Model     []byte
	Version   int
	Samples   int
}

// Save writes the snapshot to path. The write is plain and
// non-atomic; the training job is responsible for writing to a
// temporary path and publishing by rename.
func Save(s *Snapshot, path string) error {
	var modelBuf bytes.Buffer
	if err := s.cl.WriteTo(&modelBuf); err != nil {
		return fmt.Errorf("failed to serialize classifier: %w", err)
	}

	classes := make([]string, len(s.classes))
	for i, c := range s.classes {
		classes[i] = string(c)
	}

	var out bytes.Buffer
	env := envelope{
		Version:   SnapshotVersion,
		TrainedAt: s.TrainedAt,
		Classes:   classes,
		Samples:   s.Samples,
		Model:     modelBuf.Bytes(),
	}
	if err := gob.NewEncoder(&out).Encode(&env); err != nil {
		return fmt.Errorf("failed to encode snapshot envelope: %w", err)
	}

	if err := os.WriteFile(path, out.Bytes(), 0o600); err != nil {
		return fmt.Errorf("failed to write snapshot to %s: %w", path, err)
	}
	return nil
}

// Load reads a snapshot artifact from path. Every failure mode wraps
// ErrSnapshotLoad so callers can degrade to rule-only classification.
func Load(path string) (*Snapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSnapshotLoad, err)
	}

	var env envelope
	if err := gob.NewDecoder(bytes.NewReader(data)).Decode(&env); err != nil {
		return nil, fmt.Errorf("%w: corrupt envelope: %v", ErrSnapshotLoad, err)
	}
	if env.Version != SnapshotVersion {
		return nil, fmt.Errorf("%w: snapshot version %d, expected %d", ErrSnapshotLoad, env.Version, SnapshotVersion)
	}

	cl, err := bayesian.NewClassifierFromReader(bytes.NewReader(env.Model))
	if err != nil {
		return nil, fmt.Errorf("%w: corrupt model: %v", ErrSnapshotLoad, err)
	}

	classes := make([]model.Category, len(env.Classes))
	for i, name := range env.Classes {
		category, parseErr := model.ParseCategory(name)
		if parseErr != nil {
			return nil, fmt.Errorf("%w: unknown class %q", ErrSnapshotLoad, name)
		}
		classes[i] = category
	}
	if len(classes) < 2 {
		return nil, fmt.Errorf("%w: snapshot has %d classes", ErrSnapshotLoad, len(classes))
	}

	return &Snapshot{
		cl:        cl,
		classes:   classes,
		TrainedAt: env.TrainedAt,
		Samples:   env.Samples,
	}, nil
}
