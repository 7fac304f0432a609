// internal/content/store_test.go
//
// Unit-tests for the YAML loader and the content Store.
//
// Context
// -------
// Fixtures live under testdata/: a three-entry catalog in services/, a
// duplicate-slug pair in dup/, and a file with a misspelled key in bad/.
// The location-templating tests pin the copy-on-read contract: the stored
// base entry must be bit-identical before and after a LocationSpecific
// call, and no placeholder token may survive in the returned copy.

package content

import (
	"fmt"
	"strings"
	"testing"
)

func loadStore(t *testing.T) *Store {
	t.Helper()
	entries, err := LoadDir("testdata/services")
	if err != nil {
		t.Fatalf("LoadDir: %v", err)
	}
	return New(entries, Options{})
}

func TestLoadDir_CatalogOrder(t *testing.T) {
	entries, err := LoadDir("testdata/services")
	if err != nil {
		t.Fatalf("LoadDir: %v", err)
	}
	want := []string{"kitchen-remodeling", "basement-finishing", "deck-construction"}
	if len(entries) != len(want) {
		t.Fatalf("loaded %d entries, want %d", len(entries), len(want))
	}
	for i, w := range want {
		if entries[i].Slug != w {
			t.Errorf("entry %d = %s, want %s (file-name order)", i, entries[i].Slug, w)
		}
	}
}

func TestLoadDir_DuplicateSlugFails(t *testing.T) {
	if _, err := LoadDir("testdata/dup"); err == nil {
		t.Fatal("expected duplicate-slug error")
	}
}

func TestLoadEntry_UnknownFieldFails(t *testing.T) {
	if _, err := LoadEntry("testdata/bad/01-typo.yaml"); err == nil {
		t.Fatal("expected unknown-field error for misspelled key")
	}
}

func TestGet(t *testing.T) {
	s := loadStore(t)

	e, ok := s.Get("kitchen-remodeling")
	if !ok || e.Title != "Kitchen Remodeling" {
		t.Fatalf("Get hit: ok=%v entry=%+v", ok, e)
	}
	if _, ok := s.Get("roofing-replacement"); ok {
		t.Fatal("Get returned ok for absent slug")
	}
}

func TestByCategory(t *testing.T) {
	s := loadStore(t)

	got := s.ByCategory("remodeling")
	if len(got) != 2 {
		t.Fatalf("remodeling: %d entries, want 2", len(got))
	}
	if got[0].Slug != "kitchen-remodeling" || got[1].Slug != "basement-finishing" {
		t.Fatalf("category order: %s, %s", got[0].Slug, got[1].Slug)
	}
	if got := s.ByCategory("plumbing"); got != nil {
		t.Fatalf("unknown category: got %d entries, want none", len(got))
	}
}

// entryTexts flattens every text field of an entry for token sweeps.
func entryTexts(e Entry) map[string]string {
	out := map[string]string{
		"title":             e.Title,
		"short_description": e.ShortDescription,
		"long_description":  e.LongDescription,
		"meta_description":  e.MetaDescription,
		"price_range":       e.PriceRange,
		"timeline":          e.Timeline,
		"warranty":          e.Warranty,
	}
	collect := func(name string, vals []string) {
		for i, v := range vals {
			out[fmt.Sprintf("%s[%d]", name, i)] = v
		}
	}
	collect("keywords", e.Keywords)
	collect("benefits", e.Benefits)
	collect("problems_solved", e.ProblemsSolved)
	collect("why_choose_us", e.WhyChooseUs)
	collect("materials", e.Materials)
	collect("certifications", e.Certifications)
	for i, st := range e.ProcessSteps {
		out[fmt.Sprintf("process_steps[%d].title", i)] = st.Title
		out[fmt.Sprintf("process_steps[%d].description", i)] = st.Description
		out[fmt.Sprintf("process_steps[%d].duration", i)] = st.Duration
	}
	for i, f := range e.FAQs {
		out[fmt.Sprintf("faqs[%d].question", i)] = f.Question
		out[fmt.Sprintf("faqs[%d].answer", i)] = f.Answer
		out[fmt.Sprintf("faqs[%d].category", i)] = f.Category
	}
	return out
}

func TestLocationSpecific_SubstitutesEveryToken(t *testing.T) {
	s := loadStore(t)

	e, ok := s.LocationSpecific("kitchen-remodeling", "Draper", "")
	if !ok {
		t.Fatal("LocationSpecific miss")
	}
	for field, text := range entryTexts(e) {
		if strings.Contains(text, DefaultRegionToken) {
			t.Errorf("%s still contains region token: %q", field, text)
		}
	}
	// The fixture plants the token in the fields most easily missed.
	if !strings.Contains(e.FAQs[0].Question, "Draper") {
		t.Errorf("faq question not city-templated: %q", e.FAQs[0].Question)
	}
	if !strings.Contains(e.Warranty, "Draper") {
		t.Errorf("warranty not city-templated: %q", e.Warranty)
	}
	if !strings.Contains(e.ProcessSteps[1].Description, "Draper") {
		t.Errorf("process step not city-templated: %q", e.ProcessSteps[1].Description)
	}
}

// Sweep the shipped content set: a city page must never render the
// region placeholder, whichever entry it came from.
func TestLocationSpecific_ShippedContentCarriesNoToken(t *testing.T) {
	entries, err := LoadDir("../../content/services")
	if err != nil {
		t.Fatalf("LoadDir shipped content: %v", err)
	}
	s := New(entries, Options{})

	for _, base := range entries {
		e, ok := s.LocationSpecific(base.Slug, "Draper", "")
		if !ok {
			t.Fatalf("LocationSpecific miss for %s", base.Slug)
		}
		for field, text := range entryTexts(e) {
			if strings.Contains(text, DefaultRegionToken) {
				t.Errorf("%s: %s still contains region token: %q", base.Slug, field, text)
			}
		}
	}
}

func TestLocationSpecific_DerivedKeywords(t *testing.T) {
	s := loadStore(t)

	e, _ := s.LocationSpecific("kitchen-remodeling", "Sandy", "UT")
	var foundCity, foundAbbrev bool
	for _, k := range e.Keywords {
		if k == "kitchen remodeling Sandy" {
			foundCity = true
		}
		if k == "kitchen remodeling Sandy UT" {
			foundAbbrev = true
		}
	}
	if !foundCity || !foundAbbrev {
		t.Fatalf("derived keywords missing: %v", e.Keywords)
	}
}

func TestLocationSpecific_DoesNotMutateBase(t *testing.T) {
	s := loadStore(t)

	before, _ := s.Get("kitchen-remodeling")
	kwLen := len(before.Keywords)

	_, _ = s.LocationSpecific("kitchen-remodeling", "Draper", "")

	after, _ := s.Get("kitchen-remodeling")
	if !strings.Contains(after.LongDescription, DefaultRegionToken) {
		t.Fatal("base long_description lost its region token")
	}
	if len(after.Keywords) != kwLen {
		t.Fatalf("base keywords grew: %d → %d", kwLen, len(after.Keywords))
	}
}

func TestRelated(t *testing.T) {
	s := loadStore(t)

	// kitchen-remodeling references basement-finishing (present) and
	// custom-cabinetry (absent): exactly one resolves.
	got := s.Related("kitchen-remodeling")
	if len(got) != 1 || got[0].Slug != "basement-finishing" {
		t.Fatalf("Related(kitchen-remodeling) = %+v", got)
	}

	// deck-construction references itself plus a dangling slug: both drop.
	if got := s.Related("deck-construction"); len(got) != 0 {
		t.Fatalf("Related(deck-construction) = %+v, want empty", got)
	}

	base, _ := s.Get("kitchen-remodeling")
	if len(s.Related("kitchen-remodeling")) > len(base.RelatedSlugs) {
		t.Fatal("Related longer than RelatedSlugs")
	}
}

func TestSearch(t *testing.T) {
	s := loadStore(t)

	got := s.Search("BASEMENT")
	if len(got) != 1 || got[0].Slug != "basement-finishing" {
		t.Fatalf("Search(BASEMENT) = %+v", got)
	}
	if got := s.Search(""); got != nil {
		t.Fatal("empty query must match nothing")
	}
	// Catalog order, not relevance: "utah" appears in multiple entries.
	got = s.Search("utah")
	if len(got) < 2 || got[0].Slug != "kitchen-remodeling" {
		t.Fatalf("Search(utah) order: %+v", got)
	}
}
