// Package records keeps the local best-score table
package records

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
)

// DefaultKeep is the table size used when none is configured
const DefaultKeep = 10

const fileVersion = 1

// ErrCorrupt is returned when the records file cannot be parsed
var ErrCorrupt = errors.New("records file corrupt")

// Record is one finished session
type Record struct {
	ID        string    `yaml:"id"`
	SessionID string    `yaml:"session_id,omitempty"`
	Score     int       `yaml:"score"`
	MaxCombo  int       `yaml:"max_combo"`
	Ticks     int64     `yaml:"ticks"`
	At        time.Time `yaml:"at"`
}

type recordsPersist struct {
	Version int      `yaml:"version"`
	Records []Record `yaml:"records"`
}

// Store is a score-ordered table persisted as YAML
type Store struct {
	mu      sync.Mutex
	path    string
	keep    int
	records []Record
}

// Open loads the table at path, a missing file yields an empty table
func Open(path string, keep int) (*Store, error) {
	if keep <= 0 {
		keep = DefaultKeep
	}
	s := &Store{path: path, keep: keep}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return s, nil
		}
		return nil, fmt.Errorf("read records: %w", err)
	}

	var payload recordsPersist
	if err := yaml.Unmarshal(data, &payload); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrCorrupt, path, err)
	}
	s.records = payload.Records
	s.sortAndTrim()
	return s, nil
}

// Path returns the backing file
func (s *Store) Path() string {
	return s.path
}

// Add inserts a record, persists the table, and returns its 1-based rank, 0 when it did not place
func (s *Store) Add(r Record) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	s.records = append(s.records, r)
	s.sortAndTrim()

	rank := 0
	for i := range s.records {
		if s.records[i].ID == r.ID {
			rank = i + 1
			break
		}
	}
	if rank == 0 {
		return 0, nil
	}
	if err := s.save(); err != nil {
		return rank, err
	}
	return rank, nil
}

// Best returns the highest recorded score, 0 for an empty table
func (s *Store) Best() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.records) == 0 {
		return 0
	}
	return s.records[0].Score
}

// Top returns a copy of the n best records
func (s *Store) Top(n int) []Record {
	s.mu.Lock()
	defer s.mu.Unlock()
	n = min(max(n, 0), len(s.records))
	out := make([]Record, n)
	copy(out, s.records[:n])
	return out
}

// Len returns the number of kept records
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.records)
}

// Descending by score, earlier records win ties
func (s *Store) sortAndTrim() {
	sort.SliceStable(s.records, func(i, j int) bool {
		return s.records[i].Score > s.records[j].Score
	})
	if len(s.records) > s.keep {
		s.records = s.records[:s.keep]
	}
}

// save writes through a temp file in the same directory and renames it into place
func (s *Store) save() error {
	data, err := yaml.Marshal(recordsPersist{Version: fileVersion, Records: s.records})
	if err != nil {
		return fmt.Errorf("encode records: %w", err)
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create records dir: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".records-*.tmp")
	if err != nil {
		return fmt.Errorf("create temp records: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("write records: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("close records: %w", err)
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("replace records: %w", err)
	}
	return nil
}
