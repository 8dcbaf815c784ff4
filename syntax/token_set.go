package syntax

import "tern/token"

// TokenSet is a small bit set of token kinds, used to drive parser
// recovery and first-set tests.
type TokenSet uint32

// NewTokenSet creates a token set containing the given kinds.
func NewTokenSet(kinds ...token.Kind) TokenSet {
	var ts TokenSet
	for _, k := range kinds {
		ts |= 1 << k
	}

	return ts
}

// With returns the set extended with the given kinds.
func (ts TokenSet) With(kinds ...token.Kind) TokenSet {
	return ts | NewTokenSet(kinds...)
}

// Contains returns whether the set contains the given kind.
func (ts TokenSet) Contains(k token.Kind) bool {
	return ts&(1<<k) != 0
}
