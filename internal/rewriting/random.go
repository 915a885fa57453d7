// Package rewriting implements the paragraph humanization pipeline.
package rewriting

import (
	"math/rand/v2"
	"slices"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Rand is the random source consumed by the pipeline. *rand.Rand from
// math/rand/v2 satisfies it.
type Rand interface {
	Float64() float64
	IntN(n int) int
}

// NewSeededRand returns a deterministic random source for reproducible runs.
func NewSeededRand(seed uint64) Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// globalRand draws from the process-wide math/rand/v2 source.
type globalRand struct{}

func (globalRand) Float64() float64 { return rand.Float64() }
func (globalRand) IntN(n int) int   { return rand.IntN(n) }

// chance reports whether a Bernoulli trial with probability p succeeds.
func (h *Humanizer) chance(p float64) bool {
	return h.rng.Float64() < p
}

// pick returns a uniformly chosen element of options.
func (h *Humanizer) pick(options []string) string {
	return options[h.rng.IntN(len(options))]
}

// between returns a uniformly chosen integer in [lo, hi].
func (h *Humanizer) between(lo, hi int) int {
	return lo + h.rng.IntN(hi-lo+1)
}

func insertWord(words []string, at int, word string) []string {
	return slices.Insert(words, at, word)
}

// lowerFirst lowercases the first rune of s.
func lowerFirst(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToLower(r)) + s[size:]
}

func wordCount(s string) int {
	return len(strings.Fields(s))
}
