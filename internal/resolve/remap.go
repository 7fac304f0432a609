// internal/resolve/remap.go
//
// Best-effort remap of catalog keywords onto curated content slugs.
//
// Context
// -------
// The landing-page catalog carries many more keywords than the curated
// content set: "laminate-installation" pages exist for every city, but
// the long-form copy lives under "flooring-installation".  contentFor
// resolves a service slug to its curated entry through three steps:
//
//   1. Direct hit in the content store.
//   2. Fixed alias table (niche keyword → parent service).
//   3. Token overlap: the store entry sharing the most words with the
//      request, accepted only on a strict majority of the request tokens.
//
// Whatever resolves is returned location-templated for the city.  A slug
// that survives none of the steps simply yields no curated copy; the
// merge layer synthesizes defaults instead.

package resolve

import (
	"github.com/wasatchbuilt/siteengine/internal/content"
	"github.com/wasatchbuilt/siteengine/internal/slug"
)

// contentAliases maps niche catalog keywords to the curated slug whose
// copy they reuse.  Editorial, kept small on purpose.
var contentAliases = map[string]string{
	"laminate-installation": "flooring-installation",
	"lvp-installation":      "flooring-installation",
	"carpet-installation":   "flooring-installation",
	"kitchen-renovation":    "kitchen-remodeling",
	"bathroom-renovation":   "bathroom-remodeling",
	"basement-remodeling":   "basement-finishing",
	"deck-building":         "deck-construction",
	"re-roofing":            "roofing-replacement",
}

// contentFor resolves a service slug to its location-templated curated
// entry, or (zero, false) when no curated copy applies.
func (r *Resolver) contentFor(serviceSlug, cityName string) (content.Entry, bool) {
	if r.store == nil {
		return content.Entry{}, false
	}

	target := serviceSlug
	if _, ok := r.store.Get(target); !ok {
		if alias, ok := contentAliases[target]; ok {
			target = alias
		} else if guess, ok := r.tokenRemap(target); ok {
			target = guess
		}
	}
	return r.store.LocationSpecific(target, cityName, "")
}

// tokenRemap picks the store entry sharing the most word tokens with the
// request slug.  Accepted only when more than half of the request's
// tokens are covered, so "custom-cabinetry" never borrows copy from an
// unrelated entry on one stray token.
func (r *Resolver) tokenRemap(serviceSlug string) (string, bool) {
	want := slug.Tokens(serviceSlug)
	if len(want) == 0 {
		return "", false
	}

	bestSlug, bestOverlap := "", 0
	for _, e := range r.store.All() {
		have := make(map[string]bool)
		for _, t := range slug.Tokens(e.Slug) {
			have[t] = true
		}
		overlap := 0
		for _, t := range want {
			if have[t] {
				overlap++
			}
		}
		if overlap > bestOverlap {
			bestSlug, bestOverlap = e.Slug, overlap
		}
	}
	if bestOverlap*2 > len(want) {
		return bestSlug, true
	}
	return "", false
}
