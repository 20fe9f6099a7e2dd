// Package fuzzy filters records by case-insensitive substring search over
// the strings each record exposes.
package fuzzy

import (
	"context"
	"runtime"

	"github.com/zond/consoleutil"
	"golang.org/x/sync/errgroup"
	"golang.org/x/text/cases"
)

// Fold returns the case folded form of s, suitable as a match pattern.
func Fold(s string) string {
	return cases.Fold().String(s)
}

// Matcher searches for a pattern with Knuth-Morris-Pratt. A Matcher is
// not safe for concurrent use, since it folds haystacks with its own
// caser.
type Matcher struct {
	pattern []byte
	table   []int
	caser   cases.Caser
}

// NewMatcher returns a matcher for pattern. pattern should already be
// folded.
func NewMatcher(pattern string) *Matcher {
	m := &Matcher{
		pattern: []byte(pattern),
		table:   make([]int, len(pattern)),
		caser:   cases.Fold(),
	}
	k := 0
	for i := 1; i < len(m.pattern); i++ {
		for k > 0 && m.pattern[i] != m.pattern[k] {
			k = m.table[k-1]
		}
		if m.pattern[i] == m.pattern[k] {
			k++
		}
		m.table[i] = k
	}
	return m
}

// Match returns true if the folded haystack contains the pattern. The
// empty pattern matches everything.
func (m *Matcher) Match(haystack string) bool {
	if len(m.pattern) == 0 {
		return true
	}
	folded := m.caser.String(haystack)
	k := 0
	for i := 0; i < len(folded); i++ {
		for k > 0 && folded[i] != m.pattern[k] {
			k = m.table[k-1]
		}
		if folded[i] == m.pattern[k] {
			k++
		}
		if k == len(m.pattern) {
			return true
		}
	}
	return false
}

// Match is a convenience for one-off searches.
func Match(pattern, haystack string) bool {
	return NewMatcher(Fold(pattern)).Match(haystack)
}

// Enumerate returns the elements of src for which any string returned by
// haystacks contains match, ignoring case. match should already be folded.
// Empty haystacks are skipped, they never disqualify an element on their
// own. The empty match returns all of src.
//
// Elements are evaluated concurrently; the result keeps source order, and
// callers sort it the way their output needs.
func Enumerate[T any](ctx context.Context, match string, src []T, haystacks func(T) []string) ([]T, error) {
	if match == "" {
		return append([]T(nil), src...), nil
	}
	results := make([]bool, len(src))
	workers := runtime.GOMAXPROCS(0)
	chunk := (len(src) + workers - 1) / workers
	eg, ctx := errgroup.WithContext(ctx)
	for start := 0; start < len(src); start += chunk {
		end := min(start+chunk, len(src))
		eg.Go(func() error {
			m := NewMatcher(match)
			for i := start; i < end; i++ {
				if err := ctx.Err(); err != nil {
					return consoleutil.WithStack(err)
				}
				for _, haystack := range haystacks(src[i]) {
					if haystack == "" {
						continue
					}
					if m.Match(haystack) {
						results[i] = true
						break
					}
				}
			}
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	matched := make([]T, 0, len(src))
	for i, found := range results {
		if found {
			matched = append(matched, src[i])
		}
	}
	return matched, nil
}
