package archive

import (
	"encoding/json"
	"fmt"
	"log"
	"sort"
	"time"

	"github.com/google/uuid"

	"pkg.jsn.cam/ricochet/pkg/generator"
	"pkg.jsn.cam/ricochet/pkg/ricochet"
	"pkg.jsn.cam/ricochet/pkg/storage"
)

var bucketRuns = []byte("runs")

// Run is one archived generator invocation, with enough information to
// rewrite its output byte for byte.
type Run struct {
	ID            string          `json:"id"`
	Generator     string          `json:"generator"`
	Seed          uint64          `json:"seed"`
	Count         int             `json:"count"`
	Output        string          `json:"output"`
	Bytes         int64           `json:"bytes"`
	FormatVersion string          `json:"format_version"`
	CreatedAt     time.Time       `json:"created_at"`
	Payload       json.RawMessage `json:"payload,omitempty"`
}

// Archive records generator runs in a storage.Backend
type Archive struct {
	backend storage.Backend
	now     func() time.Time
}

// New wraps backend, creating the runs bucket if needed.
func New(backend storage.Backend) (*Archive, error) {
	if err := backend.CreateBucket(bucketRuns); err != nil {
		return nil, fmt.Errorf("failed to create runs bucket: %w", err)
	}
	return &Archive{backend: backend, now: time.Now}, nil
}

// Open is New over a bbolt file at path.
func Open(path string) (*Archive, error) {
	backend, err := storage.NewBboltBackend(path)
	if err != nil {
		return nil, err
	}

	a, err := New(backend)
	if err != nil {
		backend.Close()
		return nil, err
	}
	return a, nil
}

// Record stores a completed run and returns it with its new ID.
func (a *Archive) Record(name string, seed uint64, result generator.Result) (Run, error) {
	payload, err := json.Marshal(result.Records)
	if err != nil {
		return Run{}, fmt.Errorf("failed to encode payload: %w", err)
	}

	run := Run{
		ID:            uuid.New().String(),
		Generator:     name,
		Seed:          seed,
		Count:         result.Records.Len(),
		Output:        result.Output,
		Bytes:         result.Bytes,
		FormatVersion: ricochet.FormatVersion,
		CreatedAt:     a.now().UTC(),
		Payload:       payload,
	}

	if err := storage.PutJSON(a.backend, bucketRuns, run.ID, run); err != nil {
		return Run{}, err
	}

	log.Printf("[ARCHIVE] Recorded run %s (%s, seed %d)", run.ID, run.Generator, run.Seed)
	return run, nil
}

// Get loads a run including its payload.
func (a *Archive) Get(id string) (Run, error) {
	if _, err := uuid.Parse(id); err != nil {
		return Run{}, fmt.Errorf("%w: invalid id %q: %w", ricochet.ErrRunNotFound, id, err)
	}

	var run Run
	found, err := storage.GetJSON(a.backend, bucketRuns, id, &run)
	if err != nil {
		return Run{}, err
	}
	if !found {
		return Run{}, fmt.Errorf("%w: %s", ricochet.ErrRunNotFound, id)
	}

	return run, nil
}

// List returns every run, newest first, without payloads.
func (a *Archive) List() ([]Run, error) {
	var runs []Run
	err := a.backend.ForEach(bucketRuns, func(k, v []byte) error {
		var run Run
		if err := json.Unmarshal(v, &run); err != nil {
			log.Printf("[ARCHIVE] Skipping unreadable run %s: %v", k, err)
			return nil
		}
		run.Payload = nil
		runs = append(runs, run)
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.SliceStable(runs, func(i, j int) bool {
		return runs[i].CreatedAt.After(runs[j].CreatedAt)
	})

	return runs, nil
}

// Forget removes a run.
func (a *Archive) Forget(id string) error {
	if _, err := a.Get(id); err != nil {
		return err
	}
	return a.backend.Delete(bucketRuns, []byte(id))
}

// Replay writes the archived payload of run id to output, or to the run's
// original output when output is empty.
func (a *Archive) Replay(id, output string) (Run, int64, error) {
	run, err := a.Get(id)
	if err != nil {
		return Run{}, 0, err
	}

	ok, err := ricochet.IsCompatibleVersion(run.FormatVersion, ricochet.FormatVersion)
	if err != nil {
		return Run{}, 0, fmt.Errorf("%w: %w", ricochet.ErrIncompatibleVersion, err)
	}
	if !ok {
		return Run{}, 0, ricochet.CompatibilityError(run.FormatVersion, ricochet.FormatVersion)
	}

	if output == "" {
		output = run.Output
	}

	n, err := ricochet.WriteJSON(output, run.Payload)
	if err != nil {
		return Run{}, 0, err
	}

	return run, n, nil
}

// Close closes the underlying backend
func (a *Archive) Close() error {
	return a.backend.Close()
}
