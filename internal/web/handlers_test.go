package web

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"

	"github.com/wasatchbuilt/siteengine/internal/catalog"
	"github.com/wasatchbuilt/siteengine/internal/content"
	"github.com/wasatchbuilt/siteengine/internal/lead"
	"github.com/wasatchbuilt/siteengine/internal/match"
	"github.com/wasatchbuilt/siteengine/internal/resolve"
)

func testIndex() *catalog.Index {
	return catalog.NewIndex([]catalog.Record{
		{CitySlug: "sandy-ut", Keyword: "kitchen remodeling", Category: "remodeling",
			URLPath: "/sandy-ut/kitchen-remodeling", SEOTitle: "Kitchen Remodeling in Sandy | Wasatch Built",
			H1: "Kitchen Remodeling in Sandy"},
		{CitySlug: "draper-ut", Keyword: "kitchen remodeling", Category: "remodeling",
			URLPath: "/draper-ut/kitchen-remodeling", H1: "Kitchen Remodeling in Draper"},
		{CitySlug: "sandy-ut", Keyword: "basement finishing", Category: "remodeling",
			URLPath: "/sandy-ut/basement-finishing", H1: "Basement Finishing in Sandy"},
	})
}

func testStore(t *testing.T) *content.Store {
	t.Helper()
	entries := []content.Entry{
		{
			Slug:             "kitchen-remodeling",
			Title:            "Kitchen Remodeling",
			ShortDescription: "Full kitchen remodels across Utah.",
			LongDescription:  "We remodel kitchens across Utah with licensed crews.",
			Keywords:         []string{"kitchen remodeling"},
			PriceRange:       "$25,000 - $75,000",
		},
		{
			Slug:             "basement-finishing",
			Title:            "Basement Finishing",
			ShortDescription: "Turn unfinished space into living space.",
			LongDescription:  "Basement finishing for Utah homes.",
		},
	}
	return content.New(entries, content.Options{})
}

func testServer(t *testing.T) (*Server, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	idx := testIndex()
	store := testStore(t)
	resolver := resolve.New(idx, store, match.New(0), nil, nil)
	leads := lead.NewService(lead.NewRepository(sqlx.NewDb(db, "sqlmock")), nil, nil)

	return NewServer(idx, store, resolver, leads, Options{BaseURL: "https://wasatchbuilt.com"}, nil), mock
}

func doJSON(t *testing.T, h http.Handler, method, path, body string) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)

	var out map[string]any
	if ct := rr.Header().Get("Content-Type"); strings.HasPrefix(ct, "application/json") {
		if err := json.Unmarshal(rr.Body.Bytes(), &out); err != nil {
			t.Fatalf("bad JSON body: %v\n%s", err, rr.Body.String())
		}
	}
	return rr, out
}

func TestPageRoute_ResolvedPage(t *testing.T) {
	s, _ := testServer(t)
	h := s.Router()

	rr, body := doJSON(t, h, http.MethodGet, "/sandy-ut/kitchen-remodeling", "")
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rr.Code)
	}
	if body["found"] != true {
		t.Fatalf("found = %v, want true", body["found"])
	}
	if body["source"] != "catalog" {
		t.Fatalf("source = %v, want catalog", body["source"])
	}
	head, ok := body["head"].(map[string]any)
	if !ok {
		t.Fatal("missing head block")
	}
	title, _ := head["title"].(string)
	if !strings.Contains(title, "Kitchen Remodeling in Sandy") {
		t.Fatalf("head title = %q", title)
	}
	links, _ := head["links"].(string)
	if !strings.Contains(links, `https://wasatchbuilt.com/sandy-ut/kitchen-remodeling`) {
		t.Fatalf("canonical missing from links: %q", links)
	}
}

func TestPageRoute_TypoReturnsSuggestions(t *testing.T) {
	s, _ := testServer(t)
	h := s.Router()

	rr, body := doJSON(t, h, http.MethodGet, "/sandy-ut/kichen-remodel", "")
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200 did-you-mean", rr.Code)
	}
	if body["found"] != false {
		t.Fatalf("found = %v, want false", body["found"])
	}
	sugs, ok := body["suggestions"].([]any)
	if !ok || len(sugs) == 0 {
		t.Fatal("expected suggestions for a close typo")
	}
	top := sugs[0].(map[string]any)
	if top["url_path"] != "/sandy-ut/kitchen-remodeling" {
		t.Fatalf("top suggestion = %v", top["url_path"])
	}
}

func TestPageRoute_GarbageIs404(t *testing.T) {
	s, _ := testServer(t)
	h := s.Router()

	rr, _ := doJSON(t, h, http.MethodGet, "/sandy-ut/zzzzqqqq", "")
	if rr.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rr.Code)
	}
}

func TestServiceHubRoute(t *testing.T) {
	s, _ := testServer(t)
	h := s.Router()

	rr, body := doJSON(t, h, http.MethodGet, "/services/kitchen-remodeling", "")
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rr.Code)
	}
	if body["title"] != "Kitchen Remodeling" {
		t.Fatalf("title = %v", body["title"])
	}
	cities, ok := body["cities"].([]any)
	if !ok || len(cities) != 2 {
		t.Fatalf("cities = %v, want sandy and draper", body["cities"])
	}
	first := cities[0].(map[string]any)
	if first["city_slug"] != "sandy-ut" || first["name"] != "Sandy" {
		t.Fatalf("first city = %v", first)
	}

	rr, _ = doJSON(t, h, http.MethodGet, "/services/unknown-service", "")
	if rr.Code != http.StatusNotFound {
		t.Fatalf("unknown service status = %d, want 404", rr.Code)
	}
}

func TestLeadRoute(t *testing.T) {
	s, mock := testServer(t)
	h := s.Router()

	mock.ExpectExec("INSERT INTO lead").WillReturnResult(sqlmock.NewResult(3, 1))

	payload := `{"name":"Dana Merrill","email":"dana@example.com","phone":"801-555-0142",
		"city_slug":"sandy-ut","service_slug":"kitchen-remodeling","message":"Quote please."}`
	rr, body := doJSON(t, h, http.MethodPost, "/lead", payload)
	if rr.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201: %s", rr.Code, rr.Body.String())
	}
	if body["id"] != float64(3) {
		t.Fatalf("id = %v, want 3", body["id"])
	}
}

func TestLeadRoute_ValidationFailure(t *testing.T) {
	s, _ := testServer(t)
	h := s.Router()

	rr, body := doJSON(t, h, http.MethodPost, "/lead", `{"name":"Dana","email":"nope"}`)
	if rr.Code != http.StatusUnprocessableEntity {
		t.Fatalf("status = %d, want 422", rr.Code)
	}
	fields, ok := body["fields"].([]any)
	if !ok || len(fields) == 0 {
		t.Fatal("expected failing field names")
	}
}

func TestLeadRoute_MalformedBody(t *testing.T) {
	s, _ := testServer(t)
	h := s.Router()

	rr, _ := doJSON(t, h, http.MethodPost, "/lead", `{"name":`)
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rr.Code)
	}
}

func TestLeadRoute_AttributionFromRequestInfo(t *testing.T) {
	s, mock := testServer(t)
	h := s.Router()

	// Device and browser come from the request-info middleware; geo stays
	// empty with no GeoLite2 database loaded.
	mock.ExpectExec("INSERT INTO lead").
		WithArgs("Dana Merrill", "dana@example.com", "", "", "", "",
			"Desktop", "Chrome", "", "").
		WillReturnResult(sqlmock.NewResult(11, 1))

	req := httptest.NewRequest(http.MethodPost, "/lead",
		strings.NewReader(`{"name":"Dana Merrill","email":"dana@example.com"}`))
	req.Header.Set("User-Agent",
		"Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/124.0.0.0 Safari/537.36")
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)

	if rr.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201: %s", rr.Code, rr.Body.String())
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}

func TestLeadRoute_BotRejected(t *testing.T) {
	s, _ := testServer(t)
	h := s.Router()

	req := httptest.NewRequest(http.MethodPost, "/lead",
		strings.NewReader(`{"name":"Dana Merrill","email":"dana@example.com"}`))
	req.Header.Set("User-Agent", "Googlebot/2.1 (+http://www.google.com/bot.html)")
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)

	if rr.Code != http.StatusForbidden {
		t.Fatalf("status = %d, want 403 for crawler UA", rr.Code)
	}
}

func TestHealthz(t *testing.T) {
	s, _ := testServer(t)
	h := s.Router()

	rr, _ := doJSON(t, h, http.MethodGet, "/healthz", "")
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rr.Code)
	}
}

func TestSecurityHeadersPresent(t *testing.T) {
	s, _ := testServer(t)
	h := s.Router()

	rr, _ := doJSON(t, h, http.MethodGet, "/healthz", "")
	if rr.Header().Get("X-Content-Type-Options") != "nosniff" {
		t.Fatal("missing X-Content-Type-Options header")
	}
	if rr.Header().Get("X-Frame-Options") != "DENY" {
		t.Fatal("missing X-Frame-Options header")
	}
}
