package scores

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"os"
	"path/filepath"
	"slices"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memBackend struct {
	items   map[string][]byte
	saveErr error
}

func newMemBackend() *memBackend {
	return &memBackend{items: make(map[string][]byte)}
}

func (m *memBackend) ObjectPropExists(obj, prop string) bool {
	_, ok := m.items[obj+"/"+prop]
	return ok
}

func (m *memBackend) LoadObjectProp(obj, prop string) ([]byte, error) {
	return m.items[obj+"/"+prop], nil
}

func (m *memBackend) SaveObjectProp(obj, prop string, data []byte) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	m.items[obj+"/"+prop] = data
	return nil
}

func TestInsertKeepsTopFiveDescending(t *testing.T) {
	rng := rand.New(rand.NewPCG(7, 11))
	var l List
	for range 200 {
		l = l.Insert(rng.IntN(500))
		require.LessOrEqual(t, len(l), MaxEntries)
		require.True(t, slices.IsSortedFunc(l, func(a, b int) int { return b - a }), "not descending: %v", l)
	}
	assert.Len(t, l, MaxEntries)
}

func TestInsertKeepsDuplicates(t *testing.T) {
	l := List{50, 30}.Insert(30).Insert(30)
	assert.Equal(t, List{50, 30, 30, 30}, l)
}

func TestInsertDropsLowest(t *testing.T) {
	l := List{90, 80, 70, 60, 50}
	assert.Equal(t, List{90, 80, 70, 60, 50}, l.Insert(10))
	assert.Equal(t, List{100, 90, 80, 70, 60}, l.Insert(100))
	assert.Equal(t, List{90, 80, 70, 60, 50}, l, "insert does not mutate the receiver")
}

func TestTop(t *testing.T) {
	assert.Equal(t, 0, List(nil).Top())
	assert.Equal(t, 40, List{40, 10}.Top())
}

func TestStoreRoundTrip(t *testing.T) {
	backend := newMemBackend()
	s := NewStore(backend)
	require.NoError(t, s.Load())
	assert.Empty(t, s.List())

	for _, v := range []int{20, 70, 10} {
		_, err := s.Record(v)
		require.NoError(t, err)
	}
	assert.JSONEq(t, `[70,20,10]`, string(backend.items[StorageKey+"/scores"]))

	reloaded := NewStore(backend)
	require.NoError(t, reloaded.Load())
	assert.Equal(t, List{70, 20, 10}, reloaded.List())
}

func TestStoreLoadSortsAndCaps(t *testing.T) {
	backend := newMemBackend()
	backend.items[StorageKey+"/scores"] = []byte(`[1,9,3,7,5,8]`)
	s := NewStore(backend)
	require.NoError(t, s.Load())
	assert.Equal(t, List{9, 8, 7, 5, 3}, s.List())
}

func TestStoreLoadCorrupt(t *testing.T) {
	backend := newMemBackend()
	backend.items[StorageKey+"/scores"] = []byte(`not json`)
	s := NewStore(backend)
	err := s.Load()
	assert.ErrorIs(t, err, ErrCorruptScores)
	assert.Empty(t, s.List())

	l, err := s.Record(30)
	require.NoError(t, err)
	assert.Equal(t, List{30}, l, "a corrupt entry is replaced on the next save")
}

func TestStoreSaveError(t *testing.T) {
	backend := newMemBackend()
	backend.saveErr = errors.New("quota exceeded")
	s := NewStore(backend)
	l, err := s.Record(10)
	assert.Error(t, err)
	assert.Equal(t, List{10}, l, "the in-memory list still updates")
}

func TestMemoryOnlyStore(t *testing.T) {
	s := NewStore(nil)
	assert.False(t, s.Persistent())
	require.NoError(t, s.Load())
	l, err := s.Record(5)
	require.NoError(t, err)
	assert.Equal(t, List{5}, l)
}

func TestGdataStore(t *testing.T) {
	appName := fmt.Sprintf("negatris_test_%d", time.Now().UnixNano())
	s, err := Open(appName)
	if err != nil {
		t.Skipf("gdata unavailable: %v", err)
	}
	t.Cleanup(func() {
		if home, err := os.UserHomeDir(); err == nil {
			_ = os.RemoveAll(filepath.Join(home, ".local", "share", appName))
		}
	})
	require.True(t, s.Persistent())
	require.NoError(t, s.Load())
	_, err = s.Record(42)
	require.NoError(t, err)

	again, err := Open(appName)
	require.NoError(t, err)
	require.NoError(t, again.Load())
	assert.Equal(t, List{42}, again.List())
}

func TestListString(t *testing.T) {
	assert.Equal(t, "30, 20", List{30, 20}.String())
	assert.Equal(t, "", List(nil).String())
}
