// internal/match/score.go
//
// String-similarity scoring for slug suggestions.
//
// Context
// -------
// When a requested service slug misses every catalog tier we still want to
// offer “did you mean” links, so we need a similarity score between the
// requested slug and each candidate keyword.  The score combines two
// views of the normalized strings:
//
//   • Levenshtein ratio  1 − dist/maxLen  — catches typos
//     ("kichen" vs "kitchen").
//   • Token Dice overlap 2·|A∩B| / (|A|+|B|) — catches reordered or
//     partial phrases ("remodeling kitchen" vs "kitchen remodeling").
//
// The final score is the larger of the two.  Identical normalized strings
// score exactly 1.0, the metric is symmetric, and for fixed-length inputs
// it decreases as edit distance grows.
//
// Notes
// -----
// • Both strings are normalized before scoring; callers may pass raw
//   slugs.
// • Empty-vs-empty scores 0, not 1: an empty request must never match.

package match

import (
	"strings"

	"github.com/wasatchbuilt/siteengine/internal/slug"
)

// Score returns the similarity of two slugs in [0.0, 1.0].
func Score(a, b string) float64 {
	na, nb := slug.Normalize(a), slug.Normalize(b)
	if na == "" || nb == "" {
		return 0
	}
	if na == nb {
		return 1
	}

	lev := levenshteinRatio(na, nb)
	dice := tokenDice(na, nb)
	if dice > lev {
		return dice
	}
	return lev
}

// levenshteinRatio maps edit distance onto [0,1]: 1 − dist/maxLen.
func levenshteinRatio(a, b string) float64 {
	maxLen := len(a)
	if len(b) > maxLen {
		maxLen = len(b)
	}
	if maxLen == 0 {
		return 0
	}
	return 1 - float64(levenshtein(a, b))/float64(maxLen)
}

// levenshtein computes edit distance with a rolling single-row table.
func levenshtein(a, b string) int {
	if len(a) == 0 {
		return len(b)
	}
	if len(b) == 0 {
		return len(a)
	}

	prev := make([]int, len(b)+1)
	for j := range prev {
		prev[j] = j
	}

	cur := make([]int, len(b)+1)
	for i := 1; i <= len(a); i++ {
		cur[0] = i
		for j := 1; j <= len(b); j++ {
			cost := 0
			if a[i-1] != b[j-1] {
				cost = 1
			}
			del := prev[j] + 1
			ins := cur[j-1] + 1
			sub := prev[j-1] + cost
			cur[j] = minOf(del, ins, sub)
		}
		prev, cur = cur, prev
	}
	return prev[len(b)]
}

func minOf(a, b, c int) int {
	if a < b && a < c {
		return a
	}
	if b < c {
		return b
	}
	return c
}

// tokenDice computes the Dice coefficient over the unique word-token sets
// of two normalized strings.
func tokenDice(a, b string) float64 {
	sa := tokenSet(a)
	sb := tokenSet(b)
	if len(sa) == 0 || len(sb) == 0 {
		return 0
	}
	common := 0
	for t := range sb {
		if sa[t] {
			common++
		}
	}
	return 2 * float64(common) / float64(len(sa)+len(sb))
}

func tokenSet(s string) map[string]bool {
	fields := strings.Fields(s)
	set := make(map[string]bool, len(fields))
	for _, f := range fields {
		set[f] = true
	}
	return set
}
