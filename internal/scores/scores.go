// Package scores keeps the top-five high-score list and persists it through
// gdata, which maps to localStorage in the browser and to a per-user data
// directory elsewhere.
package scores

import (
	"cmp"
	"encoding/json"
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/quasilyte/gdata/v2"
	"github.com/samber/lo"
)

const (
	// StorageKey names the persisted list.
	StorageKey = "negatrisHighScores"
	// MaxEntries caps the list length.
	MaxEntries = 5

	scoresProp = "scores"
)

var ErrCorruptScores = errors.New("stored high scores are corrupt")

// List is a descending list of final scores.
type List []int

// Insert returns a new list with score added, sorted descending and truncated
// to MaxEntries. Equal scores are kept.
func (l List) Insert(score int) List {
	out := append(slices.Clone(l), score)
	slices.SortStableFunc(out, func(a, b int) int {
		return cmp.Compare(b, a)
	})
	if len(out) > MaxEntries {
		out = out[:MaxEntries]
	}
	return out
}

// Top returns the best score or 0 for an empty list.
func (l List) Top() int {
	if len(l) == 0 {
		return 0
	}
	return l[0]
}

func (l List) String() string {
	return strings.Join(lo.Map(l, func(s int, _ int) string {
		return strconv.Itoa(s)
	}), ", ")
}

// Backend is the part of *gdata.Manager the store uses.
type Backend interface {
	ObjectPropExists(objectKey, propKey string) bool
	LoadObjectProp(objectKey, propKey string) ([]byte, error)
	SaveObjectProp(objectKey, propKey string, data []byte) error
}

// Store holds the high-score list in memory and mirrors it to a Backend.
// A nil backend keeps the list in memory only.
type Store struct {
	backend Backend
	list    List
}

func NewStore(backend Backend) *Store {
	return &Store{backend: backend}
}

// Open creates a gdata-backed store for appName. When gdata cannot be opened
// the returned store is memory-only and the error says why.
func Open(appName string) (*Store, error) {
	m, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		return NewStore(nil), fmt.Errorf("open save data: %w", err)
	}
	return NewStore(m), nil
}

// Persistent reports whether the store writes through to a backend.
func (s *Store) Persistent() bool {
	return s.backend != nil
}

// List returns a copy of the current list.
func (s *Store) List() List {
	return slices.Clone(s.list)
}

// Load reads the stored list. A missing entry yields an empty list; an
// unreadable one leaves the list empty and returns ErrCorruptScores.
func (s *Store) Load() error {
	s.list = nil
	if s.backend == nil || !s.backend.ObjectPropExists(StorageKey, scoresProp) {
		return nil
	}
	data, err := s.backend.LoadObjectProp(StorageKey, scoresProp)
	if err != nil {
		return fmt.Errorf("load %s: %w", StorageKey, err)
	}
	var stored []int
	if err := json.Unmarshal(data, &stored); err != nil {
		return fmt.Errorf("%w: %v", ErrCorruptScores, err)
	}
	for _, v := range stored {
		s.list = s.list.Insert(v)
	}
	return nil
}

// Record inserts a final score and persists the updated list.
func (s *Store) Record(score int) (List, error) {
	s.list = s.list.Insert(score)
	if err := s.save(); err != nil {
		return s.List(), err
	}
	return s.List(), nil
}

func (s *Store) save() error {
	if s.backend == nil {
		return nil
	}
	data, err := json.Marshal(lo.Ternary(s.list == nil, List{}, s.list))
	if err != nil {
		return fmt.Errorf("encode %s: %w", StorageKey, err)
	}
	if err := s.backend.SaveObjectProp(StorageKey, scoresProp, data); err != nil {
		return fmt.Errorf("save %s: %w", StorageKey, err)
	}
	return nil
}
