// internal/catalog/index.go
//
// Precomputed lookup indices over the landing-page catalog.
//
// Context
// -------
// Every page request resolves a (city, service) pair, and related-content
// selection needs per-category and per-keyword views.  All three lookups
// are answered from maps built once at boot, so steady-state queries never
// scan the record list.
//
// Workflow
// --------
//  1. NewIndex copies the source slice and builds three maps:
//     byURL       normalized "city|service" → *Record
//     byCategory  category → records in catalog order
//     byKeyword   normalized keyword → city slugs in catalog order
//  2. FindByURL normalizes both inputs before the map hit, so request
//     slugs, CSV slugs, and hand-typed variants all meet on the same key.
//
// Notes
// -----
// • Construction is side-effect-free with respect to the source slice;
//   rebuilding from the same rows yields identical indices.
// • The Index is immutable after NewIndex and safe for concurrent readers.
// • Duplicate (city, keyword) pairs keep the first row, matching the
//   CSV export contract; later duplicates are logged and dropped.

package catalog

import (
	"go.uber.org/zap"

	"github.com/wasatchbuilt/siteengine/internal/slug"
)

// Index answers exact and related-item catalog queries.
type Index struct {
	records    []Record
	byURL      map[string]*Record
	byCategory map[string][]*Record
	byKeyword  map[string][]string  // keyword → city slugs, catalog order
	byCity     map[string][]*Record // normalized city slug → records
}

// urlKey builds the byURL map key from normalized inputs.
func urlKey(citySlug, serviceSlug string) string {
	return slug.Normalize(citySlug) + "|" + slug.Normalize(serviceSlug)
}

// NewIndex builds all lookup structures from the source rows.
func NewIndex(records []Record) *Index {
	idx := &Index{
		records:    make([]Record, len(records)),
		byURL:      make(map[string]*Record, len(records)),
		byCategory: make(map[string][]*Record),
		byKeyword:  make(map[string][]string),
		byCity:     make(map[string][]*Record),
	}
	copy(idx.records, records)

	seenCity := make(map[string]map[string]bool) // keyword → city set
	for i := range idx.records {
		rec := &idx.records[i]

		key := urlKey(rec.CitySlug, rec.Keyword)
		if _, dup := idx.byURL[key]; dup {
			zap.S().Warnw("catalog duplicate page dropped",
				"city", rec.CitySlug, "keyword", rec.Keyword)
			continue
		}
		idx.byURL[key] = rec

		if rec.Category != "" {
			idx.byCategory[rec.Category] = append(idx.byCategory[rec.Category], rec)
		}

		city := slug.Normalize(rec.CitySlug)
		idx.byCity[city] = append(idx.byCity[city], rec)

		kw := slug.Normalize(rec.Keyword)
		if seenCity[kw] == nil {
			seenCity[kw] = make(map[string]bool)
		}
		if !seenCity[kw][rec.CitySlug] {
			seenCity[kw][rec.CitySlug] = true
			idx.byKeyword[kw] = append(idx.byKeyword[kw], rec.CitySlug)
		}
	}
	return idx
}

// Len reports the number of catalog rows, duplicates included.
func (idx *Index) Len() int { return len(idx.records) }

// Records returns the rows in catalog order.  Callers must not mutate.
func (idx *Index) Records() []Record { return idx.records }

// FindByURL returns the record for a (city, service) pair, or (nil, false)
// on a miss.  Both inputs are normalized before lookup.
func (idx *Index) FindByURL(citySlug, serviceSlug string) (*Record, bool) {
	rec, ok := idx.byURL[urlKey(citySlug, serviceSlug)]
	return rec, ok
}

// ByCategory returns all records in a category, catalog order.
func (idx *Index) ByCategory(category string) []*Record {
	return idx.byCategory[category]
}

// CitiesForService returns the city slugs offering a service keyword, in
// catalog order with duplicates removed.
func (idx *Index) CitiesForService(keyword string) []string {
	return idx.byKeyword[slug.Normalize(keyword)]
}

// ForCity returns all records for one city, catalog order.  Used by the
// fuzzy matcher to restrict candidates when the city itself resolves.
func (idx *Index) ForCity(citySlug string) []*Record {
	return idx.byCity[slug.Normalize(citySlug)]
}

// HasCity reports whether any record exists for the city.
func (idx *Index) HasCity(citySlug string) bool {
	return len(idx.ForCity(citySlug)) > 0
}
