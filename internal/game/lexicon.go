package game

import (
	_ "embed"
	"errors"
	"fmt"

	"github.com/samber/lo"
	"gopkg.in/yaml.v3"

	"negatris/internal/types"
)

//go:embed data/words.yaml
var defaultWords []byte

var (
	ErrEmptyLexicon  = errors.New("lexicon has no words")
	ErrDuplicateWord = errors.New("duplicate word in lexicon")
	ErrUnknownPrefix = errors.New("unknown prefix in lexicon")
)

// Lexicon is the fixed table of root words and their correct prefixes.
type Lexicon struct {
	entries []types.WordEntry
	index   map[string]Prefix
}

// ParseLexicon decodes a YAML word list and validates every entry.
func ParseLexicon(data []byte) (*Lexicon, error) {
	var wl types.WordList
	if err := yaml.Unmarshal(data, &wl); err != nil {
		return nil, fmt.Errorf("decode word list: %w", err)
	}
	return NewLexicon(wl.Words)
}

// NewLexicon builds a lexicon from entries, preserving their order.
func NewLexicon(entries []types.WordEntry) (*Lexicon, error) {
	if len(entries) == 0 {
		return nil, ErrEmptyLexicon
	}
	index := make(map[string]Prefix, len(entries))
	for _, e := range entries {
		if _, dup := index[e.Word]; dup {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateWord, e.Word)
		}
		p := Prefix(e.Prefix)
		if !p.Valid() {
			return nil, fmt.Errorf("%w: %q for %q", ErrUnknownPrefix, e.Prefix, e.Word)
		}
		index[e.Word] = p
	}
	return &Lexicon{
		entries: append([]types.WordEntry(nil), entries...),
		index:   index,
	}, nil
}

// DefaultLexicon returns the embedded word table.
func DefaultLexicon() (*Lexicon, error) {
	return ParseLexicon(defaultWords)
}

// MustDefaultLexicon is DefaultLexicon for callers that cannot recover.
func MustDefaultLexicon() *Lexicon {
	lex, err := DefaultLexicon()
	if err != nil {
		panic(err)
	}
	return lex
}

func (l *Lexicon) Len() int {
	return len(l.entries)
}

// PrefixOf returns the correct prefix for word.
func (l *Lexicon) PrefixOf(word string) (Prefix, bool) {
	p, ok := l.index[word]
	return p, ok
}

// Words returns the root words in table order.
func (l *Lexicon) Words() []string {
	return lo.Map(l.entries, func(e types.WordEntry, _ int) string {
		return e.Word
	})
}

// ByPrefix groups the root words under their prefix.
func (l *Lexicon) ByPrefix() map[Prefix][]string {
	grouped := lo.GroupBy(l.entries, func(e types.WordEntry) Prefix {
		return Prefix(e.Prefix)
	})
	return lo.MapValues(grouped, func(es []types.WordEntry, _ Prefix) []string {
		return lo.Map(es, func(e types.WordEntry, _ int) string { return e.Word })
	})
}

// Random picks a word uniformly.
func (l *Lexicon) Random(rng Rand) string {
	return l.entries[rng.IntN(len(l.entries))].Word
}
