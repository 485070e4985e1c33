package dictionary

import (
	"sort"

	"github.com/mcoot/smartscrabble/internal/model"
)

// WordList is an immutable set of candidate words for an agent.
// Words are upper case, unique, at most MaxLength letters, and sorted.
type WordList struct {
	words     []string
	maxLength int
}

// NewWordList normalizes, deduplicates and length-filters words
func NewWordList(words []string, maxLength int) *WordList {
	seen := make(map[string]struct{}, len(words))
	kept := make([]string, 0, len(words))
	for _, w := range words {
		normalized, ok := model.NormalizeWord(w)
		if !ok || len(normalized) > maxLength {
			continue
		}
		if _, dup := seen[normalized]; dup {
			continue
		}
		seen[normalized] = struct{}{}
		kept = append(kept, normalized)
	}
	sort.Strings(kept)

	return &WordList{
		words:     kept,
		maxLength: maxLength,
	}
}

// Words returns the words in sorted order.
// The returned slice must not be modified.
func (l *WordList) Words() []string {
	return l.words
}

// Len returns the number of words
func (l *WordList) Len() int {
	return len(l.words)
}

// MaxLength returns the longest word length the list admits
func (l *WordList) MaxLength() int {
	return l.maxLength
}
