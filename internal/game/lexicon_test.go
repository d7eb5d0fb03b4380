package game

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"negatris/internal/types"
)

func TestDefaultLexicon(t *testing.T) {
	lex, err := DefaultLexicon()
	require.NoError(t, err)
	assert.Equal(t, 55, lex.Len())

	p, ok := lex.PrefixOf("responsible")
	require.True(t, ok)
	assert.Equal(t, PrefixIr, p)

	_, ok = lex.PrefixOf("nonexistent")
	assert.False(t, ok)
}

func TestDefaultLexiconUsesEveryBucket(t *testing.T) {
	grouped := MustDefaultLexicon().ByPrefix()
	for _, b := range Buckets {
		assert.NotEmpty(t, grouped[b], "no words for %s", b)
	}
}

func TestNewLexiconRejectsBadTables(t *testing.T) {
	_, err := NewLexicon(nil)
	assert.ErrorIs(t, err, ErrEmptyLexicon)

	_, err = NewLexicon([]types.WordEntry{{Word: "happy", Prefix: "un-"}, {Word: "happy", Prefix: "un-"}})
	assert.ErrorIs(t, err, ErrDuplicateWord)

	_, err = NewLexicon([]types.WordEntry{{Word: "happy", Prefix: "non-"}})
	assert.ErrorIs(t, err, ErrUnknownPrefix)
}

func TestParseLexicon(t *testing.T) {
	lex, err := ParseLexicon([]byte("words:\n  - word: legal\n    prefix: il-\n"))
	require.NoError(t, err)
	assert.Equal(t, []string{"legal"}, lex.Words())

	_, err = ParseLexicon([]byte("words: [unterminated"))
	assert.Error(t, err)
}

func TestRandomIsUniformOverTable(t *testing.T) {
	lex := testLexicon(t)
	for i, want := range lex.Words() {
		assert.Equal(t, want, lex.Random(&scriptedRand{idx: i}))
	}
}

func TestByPrefixKeepsTableOrder(t *testing.T) {
	lex, err := NewLexicon([]types.WordEntry{
		{Word: "happy", Prefix: "un-"},
		{Word: "legal", Prefix: "il-"},
		{Word: "able", Prefix: "un-"},
	})
	require.NoError(t, err)

	want := map[Prefix][]string{
		PrefixUn: {"happy", "able"},
		PrefixIl: {"legal"},
	}
	if diff := cmp.Diff(want, lex.ByPrefix()); diff != "" {
		t.Errorf("ByPrefix mismatch (-want +got):\n%s", diff)
	}
}
