package model

import (
	"strings"
	"unicode"
)

// Blank is the rack symbol for a wildcard tile
const Blank rune = '_'

// Padding is the word character denoting a square that already holds a tile
const Padding rune = ' '

// Rack is a player's multiset of held tiles, in draw order
type Rack []rune

// ParseRack builds a rack from a string such as "CAT__", upper-casing letters
func ParseRack(s string) (Rack, error) {
	rack := make(Rack, 0, len(s))
	for _, ch := range s {
		if ch == Blank || ch == '?' || ch == '*' {
			rack = append(rack, Blank)
			continue
		}
		if !IsLetter(ch) {
			return nil, ErrInvalidRack
		}
		rack = append(rack, unicode.ToUpper(ch))
	}
	return rack, nil
}

// Clone returns a copy of the rack
func (r Rack) Clone() Rack {
	clone := make(Rack, len(r))
	copy(clone, r)
	return clone
}

// Count returns how many tiles of the given symbol the rack holds
func (r Rack) Count(tile rune) int {
	n := 0
	for _, t := range r {
		if t == tile {
			n++
		}
	}
	return n
}

// Remove returns the rack without the first occurrence of tile
func (r Rack) Remove(tile rune) (Rack, bool) {
	for i, t := range r {
		if t == tile {
			out := make(Rack, 0, len(r)-1)
			out = append(out, r[:i]...)
			return append(out, r[i+1:]...), true
		}
	}
	return r, false
}

// String returns the rack as a string of symbols
func (r Rack) String() string {
	return string(r)
}

// IsLetter reports whether ch is an A-Z letter in either case
func IsLetter(ch rune) bool {
	upper := unicode.ToUpper(ch)
	return upper >= 'A' && upper <= 'Z'
}

// NormalizeWord upper-cases a word, returning false if it has non-letters
func NormalizeWord(word string) (string, bool) {
	word = strings.TrimSpace(word)
	if word == "" {
		return "", false
	}
	for _, ch := range word {
		if !IsLetter(ch) {
			return "", false
		}
	}
	return strings.ToUpper(word), true
}
