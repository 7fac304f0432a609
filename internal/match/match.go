// internal/match/match.go
//
// Closest-match suggestions for unresolved service slugs.
//
// Context
// -------
// The resolver calls ClosestMatches after both the database and the
// catalog index have missed.  Candidates are the catalog rows for the
// requested city when the city itself resolves, otherwise the whole
// catalog.  The result is a ranked suggestion list plus a single best
// match when the top score clears the acceptance threshold.
//
// The matcher is a pure function of (request, index): it never mutates
// the catalog, and identical inputs always produce identical output.
//
// Notes
// -----
// • The best match is advisory.  The resolver still reports NOT_FOUND and
//   lets the page layer decide between a “did you mean” page and a 404;
//   silently serving different content than the URL names is off the
//   table.

package match

import (
	"sort"

	"github.com/wasatchbuilt/siteengine/internal/catalog"
	"github.com/wasatchbuilt/siteengine/internal/slug"
)

const (
	// DefaultThreshold is the minimum top score for a confident match.
	DefaultThreshold = 0.6

	// MaxSuggestions caps the ranked list.
	MaxSuggestions = 5
)

// Suggestion pairs a candidate record with its similarity score.
type Suggestion struct {
	Record *catalog.Record
	Score  float64
}

// Result carries the ranked suggestions and the optional confident match.
type Result struct {
	Suggestions []Suggestion
	Best        *catalog.Record // nil unless the top score ≥ threshold
}

// Matcher scores request slugs against a catalog index.  The zero value
// uses DefaultThreshold; construct with New to tune it.
type Matcher struct {
	threshold float64
}

// New returns a Matcher with the given acceptance threshold.  Values
// outside (0, 1] fall back to DefaultThreshold.
func New(threshold float64) *Matcher {
	if threshold <= 0 || threshold > 1 {
		threshold = DefaultThreshold
	}
	return &Matcher{threshold: threshold}
}

// ClosestMatches ranks catalog candidates against the requested service
// slug.  City-scoped when the city resolves, catalog-wide otherwise.
func (m *Matcher) ClosestMatches(citySlug, serviceSlug string, idx *catalog.Index) Result {
	threshold := m.threshold
	if threshold == 0 {
		threshold = DefaultThreshold
	}

	if slug.Normalize(serviceSlug) == "" || idx == nil || idx.Len() == 0 {
		return Result{}
	}

	candidates := idx.ForCity(citySlug)
	if len(candidates) == 0 {
		all := idx.Records()
		candidates = make([]*catalog.Record, len(all))
		for i := range all {
			candidates[i] = &all[i]
		}
	}

	scored := make([]Suggestion, 0, len(candidates))
	for _, rec := range candidates {
		if s := Score(serviceSlug, rec.Keyword); s > 0 {
			scored = append(scored, Suggestion{Record: rec, Score: s})
		}
	}
	// Stable sort keeps catalog order for equal scores.
	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})

	if len(scored) > MaxSuggestions {
		scored = scored[:MaxSuggestions]
	}

	res := Result{Suggestions: scored}
	if len(scored) > 0 && scored[0].Score >= threshold {
		res.Best = scored[0].Record
	}
	return res
}
