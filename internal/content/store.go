// internal/content/store.go
//
// In-memory curated content store.
//
// Context
// -------
// The Store holds the loaded Entry catalog and answers every content
// lookup the resolver and the category pages need.  It is immutable after
// New and safe for concurrent readers; all location-specific reads return
// copies, never views into stored state.
//
// Region templating
// -----------------
// Long-form copy is written against one placeholder region literal (the
// configured token, `Utah` by default).  LocationSpecific substitutes the
// requested city display name for every occurrence in every text field
// (descriptions, benefits, steps, FAQs, warranty, and the rest) and
// derives city-specific keyword phrases.  The invariant is that no output
// string still carries the token.  The token is configurable so a future
// content set can use an unambiguous marker without code changes.
//
// Failure semantics
// -----------------
// Unknown slugs return (zero, false).  Absence is a normal branch for
// callers, never an error.

package content

import "strings"

// DefaultRegionToken is the placeholder literal used by the shipped
// content set.
const DefaultRegionToken = "Utah"

// Options tune a Store.  The zero value selects the defaults.
type Options struct {
	RegionToken string // placeholder literal to substitute; "" → DefaultRegionToken
}

// Store answers curated-content lookups.  Construct with New.
type Store struct {
	entries []Entry
	bySlug  map[string]int // slug → position in entries
	token   string
}

// New builds a Store from loaded entries.  Entry order is preserved as
// catalog order.
func New(entries []Entry, opts Options) *Store {
	token := opts.RegionToken
	if token == "" {
		token = DefaultRegionToken
	}
	s := &Store{
		entries: make([]Entry, len(entries)),
		bySlug:  make(map[string]int, len(entries)),
		token:   token,
	}
	copy(s.entries, entries)
	for i := range s.entries {
		if _, dup := s.bySlug[s.entries[i].Slug]; !dup {
			s.bySlug[s.entries[i].Slug] = i
		}
	}
	return s
}

// Len reports the catalog size.
func (s *Store) Len() int { return len(s.entries) }

// Get returns the entry for a canonical slug, or (zero, false).
func (s *Store) Get(slug string) (Entry, bool) {
	i, ok := s.bySlug[slug]
	if !ok {
		return Entry{}, false
	}
	return s.entries[i], true
}

// All returns every entry in catalog order.  Callers must treat slice
// fields as read-only.
func (s *Store) All() []Entry {
	out := make([]Entry, len(s.entries))
	copy(out, s.entries)
	return out
}

// ByCategory returns entries whose slug maps to the category tag in the
// fixed mapping table, catalog order.
func (s *Store) ByCategory(category string) []Entry {
	var out []Entry
	for _, e := range s.entries {
		if CategoryOf(e.Slug) == category {
			out = append(out, e)
		}
	}
	return out
}

// LocationSpecific returns a copy of the base entry with the region token
// substituted by the city display name in every text field, and the
// keyword list extended with city-derived phrases.  The stored entry is
// never modified.  regionAbbrev defaults to "UT" when empty.
func (s *Store) LocationSpecific(slug, cityName, regionAbbrev string) (Entry, bool) {
	base, ok := s.Get(slug)
	if !ok {
		return Entry{}, false
	}
	if regionAbbrev == "" {
		regionAbbrev = "UT"
	}

	sub := func(v string) string { return strings.ReplaceAll(v, s.token, cityName) }
	subList := func(in []string) []string {
		if in == nil {
			return nil
		}
		out := make([]string, len(in))
		for i, v := range in {
			out[i] = sub(v)
		}
		return out
	}

	e := base // shallow copy; slice fields below are rebuilt, not appended to
	e.Title = sub(base.Title)
	e.ShortDescription = sub(base.ShortDescription)
	e.LongDescription = sub(base.LongDescription)
	e.MetaDescription = sub(base.MetaDescription)

	e.Benefits = subList(base.Benefits)
	e.ProblemsSolved = subList(base.ProblemsSolved)
	e.WhyChooseUs = subList(base.WhyChooseUs)
	e.Materials = subList(base.Materials)
	e.Certifications = subList(base.Certifications)
	e.PriceRange = sub(base.PriceRange)
	e.Timeline = sub(base.Timeline)
	e.Warranty = sub(base.Warranty)

	if base.ProcessSteps != nil {
		e.ProcessSteps = make([]Step, len(base.ProcessSteps))
		for i, st := range base.ProcessSteps {
			st.Title = sub(st.Title)
			st.Description = sub(st.Description)
			st.Duration = sub(st.Duration)
			e.ProcessSteps[i] = st
		}
	}
	if base.FAQs != nil {
		e.FAQs = make([]FAQ, len(base.FAQs))
		for i, f := range base.FAQs {
			f.Question = sub(f.Question)
			f.Answer = sub(f.Answer)
			f.Category = sub(f.Category)
			e.FAQs[i] = f
		}
	}

	kw := make([]string, 0, len(base.Keywords)*2+2)
	for _, k := range base.Keywords {
		k = sub(k)
		kw = append(kw, k, k+" "+cityName)
	}
	kw = append(kw,
		strings.ToLower(e.Title)+" "+cityName,
		strings.ToLower(e.Title)+" "+cityName+" "+regionAbbrev,
	)
	e.Keywords = kw

	return e, true
}

// Related resolves RelatedSlugs through Get, silently dropping references
// that do not resolve.  The result never contains the entry itself.
func (s *Store) Related(slug string) []Entry {
	base, ok := s.Get(slug)
	if !ok {
		return nil
	}
	var out []Entry
	for _, rs := range base.RelatedSlugs {
		if rs == slug {
			continue
		}
		if e, ok := s.Get(rs); ok {
			out = append(out, e)
		}
	}
	return out
}

// Search returns entries whose title, keywords, or short description
// contain the query, case-insensitively.  No ranking; catalog order.  An
// empty query matches nothing.
func (s *Store) Search(query string) []Entry {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return nil
	}
	var out []Entry
	for _, e := range s.entries {
		if s.matches(e, q) {
			out = append(out, e)
		}
	}
	return out
}

func (s *Store) matches(e Entry, q string) bool {
	if strings.Contains(strings.ToLower(e.Title), q) {
		return true
	}
	if strings.Contains(strings.ToLower(e.ShortDescription), q) {
		return true
	}
	for _, k := range e.Keywords {
		if strings.Contains(strings.ToLower(k), q) {
			return true
		}
	}
	return false
}
