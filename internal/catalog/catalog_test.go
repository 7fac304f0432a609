// internal/catalog/catalog_test.go
//
// Unit-tests for the CSV loader and the lookup indices.
//
// Context
// -------
// The index is the first fallback tier after the database, so these tests
// pin the round-trip property (every loaded row is findable by its own
// identity pair), slug-variant folding, duplicate handling, and the
// catalog-order guarantees the related-content selector depends on.

package catalog

import (
	"reflect"
	"strings"
	"testing"
)

const fixtureCSV = `city_slug,keyword,category,url_path,seo_title,meta_description,h1,json_ld,internal_links
sandy-ut,kitchen-remodeling,remodeling,/sandy-ut/kitchen-remodeling,Kitchen Remodeling in Sandy,Remodel your Sandy kitchen.,Kitchen Remodeling,,
sandy-ut,basement-finishing,remodeling,/sandy-ut/basement-finishing,Basement Finishing in Sandy,Finish your Sandy basement.,Basement Finishing,,
draper-ut,kitchen-remodeling,remodeling,/draper-ut/kitchen-remodeling,Kitchen Remodeling in Draper,Remodel your Draper kitchen.,Kitchen Remodeling,,
draper-ut,deck-construction,outdoor,/draper-ut/deck-construction,Deck Construction in Draper,Build a Draper deck.,Deck Construction,,
,missing-city,remodeling,/bad,Bad,Bad,Bad,,
murray-ut,kitchen-remodeling,remodeling,/murray-ut/kitchen-remodeling,Kitchen Remodeling in Murray,Remodel your Murray kitchen.,Kitchen Remodeling,,
`

func loadFixture(t *testing.T) []Record {
	t.Helper()
	recs, err := LoadCSV(strings.NewReader(fixtureCSV))
	if err != nil {
		t.Fatalf("LoadCSV: %v", err)
	}
	return recs
}

func TestLoadCSV_SkipsRowsMissingIdentity(t *testing.T) {
	recs := loadFixture(t)
	if len(recs) != 5 {
		t.Fatalf("loaded %d records, want 5 (bad row skipped)", len(recs))
	}
	for _, r := range recs {
		if r.CitySlug == "" || r.Keyword == "" {
			t.Fatalf("record with empty identity survived: %+v", r)
		}
	}
}

func TestLoadCSV_HeaderMissingColumn(t *testing.T) {
	_, err := LoadCSV(strings.NewReader("city_slug,category\nsandy-ut,remodeling\n"))
	if err == nil {
		t.Fatal("expected error for header without keyword column")
	}
}

func TestFindByURL_RoundTrip(t *testing.T) {
	recs := loadFixture(t)
	idx := NewIndex(recs)

	for _, r := range recs {
		got, ok := idx.FindByURL(r.CitySlug, r.Keyword)
		if !ok {
			t.Fatalf("round-trip miss for (%s, %s)", r.CitySlug, r.Keyword)
		}
		if got.URLPath != r.URLPath {
			t.Fatalf("round-trip wrong record: got %s, want %s", got.URLPath, r.URLPath)
		}
	}
}

func TestFindByURL_NormalizesInputs(t *testing.T) {
	idx := NewIndex(loadFixture(t))

	got, ok := idx.FindByURL("Sandy-UT", "Kitchen_Remodeling")
	if !ok {
		t.Fatal("variant slugs did not fold to the catalog key")
	}
	if got.SEOTitle != "Kitchen Remodeling in Sandy" {
		t.Fatalf("wrong record: %s", got.SEOTitle)
	}

	if _, ok := idx.FindByURL("sandy-ut", "roofing"); ok {
		t.Fatal("expected miss for unknown service")
	}
}

func TestIndex_IdempotentConstruction(t *testing.T) {
	recs := loadFixture(t)
	a, b := NewIndex(recs), NewIndex(recs)

	if !reflect.DeepEqual(a.Records(), b.Records()) {
		t.Fatal("records differ between rebuilds")
	}
	if !reflect.DeepEqual(a.CitiesForService("kitchen-remodeling"),
		b.CitiesForService("kitchen-remodeling")) {
		t.Fatal("keyword index differs between rebuilds")
	}
}

func TestCitiesForService_CatalogOrder(t *testing.T) {
	idx := NewIndex(loadFixture(t))

	got := idx.CitiesForService("kitchen-remodeling")
	want := []string{"sandy-ut", "draper-ut", "murray-ut"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("CitiesForService = %v, want %v", got, want)
	}
}

func TestByCategory_CatalogOrder(t *testing.T) {
	idx := NewIndex(loadFixture(t))

	recs := idx.ByCategory("remodeling")
	if len(recs) != 4 {
		t.Fatalf("remodeling: got %d records, want 4", len(recs))
	}
	if recs[0].URLPath != "/sandy-ut/kitchen-remodeling" {
		t.Fatalf("category order broken, first = %s", recs[0].URLPath)
	}
}

func TestForCity(t *testing.T) {
	idx := NewIndex(loadFixture(t))

	recs := idx.ForCity("draper-ut")
	if len(recs) != 2 {
		t.Fatalf("draper-ut: got %d records, want 2", len(recs))
	}
	if !idx.HasCity("murray-ut") {
		t.Fatal("HasCity(murray-ut) = false")
	}
	if idx.HasCity("ogden-ut") {
		t.Fatal("HasCity(ogden-ut) = true for absent city")
	}
}

func TestNewIndex_DropsDuplicatePairs(t *testing.T) {
	recs := []Record{
		{CitySlug: "sandy-ut", Keyword: "roofing", URLPath: "/first"},
		{CitySlug: "sandy-ut", Keyword: "roofing", URLPath: "/second"},
	}
	idx := NewIndex(recs)

	got, ok := idx.FindByURL("sandy-ut", "roofing")
	if !ok || got.URLPath != "/first" {
		t.Fatalf("duplicate handling: got %+v, ok=%v; want first row kept", got, ok)
	}
}
