// internal/web/handlers.go
//
// Route handlers and their JSON view types.
//
// Status contract for GET /{city}/{service}:
//
//   - resolved page              → 200, full page view
//   - close fuzzy matches exist  → 200, did-you-mean view (found=false);
//     the frontend renders a suggestion page, never a silent redirect
//   - nothing close              → 404
package web

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/wasatchbuilt/siteengine/internal/content"
	"github.com/wasatchbuilt/siteengine/internal/head"
	"github.com/wasatchbuilt/siteengine/internal/lead"
	"github.com/wasatchbuilt/siteengine/internal/match"
	"github.com/wasatchbuilt/siteengine/internal/metrics"
	"github.com/wasatchbuilt/siteengine/internal/requestinfo"
	"github.com/wasatchbuilt/siteengine/internal/resolve"
	"github.com/wasatchbuilt/siteengine/internal/slug"
)

const maxLeadBody = 64 << 10

/*──────────────────────────── view types ───────────────────────────────────*/

// headView carries pre-rendered head tags for the frontend template.
type headView struct {
	Title   string `json:"title"`
	Metas   string `json:"metas"`
	Links   string `json:"links"`
	JSONLD  string `json:"jsonld,omitempty"`
	Scripts string `json:"scripts,omitempty"`
}

type relatedServiceView struct {
	Keyword  string `json:"keyword"`
	Title    string `json:"title"`
	URLPath  string `json:"url_path"`
	Category string `json:"category"`
}

type nearbyCityView struct {
	CitySlug string `json:"city_slug"`
	Name     string `json:"name"`
	URLPath  string `json:"url_path"`
}

type pageView struct {
	Found       bool   `json:"found"`
	Source      string `json:"source,omitempty"`
	CitySlug    string `json:"city_slug,omitempty"`
	ServiceSlug string `json:"service_slug,omitempty"`
	CityName    string `json:"city_name,omitempty"`
	URLPath     string `json:"url_path,omitempty"`

	Head *headView `json:"head,omitempty"`

	H1              string `json:"h1,omitempty"`
	HeroText        string `json:"hero_text,omitempty"`
	Description     string `json:"description,omitempty"`
	CityDescription string `json:"city_description,omitempty"`
	CTAText         string `json:"cta_text,omitempty"`

	Keywords       []string       `json:"keywords,omitempty"`
	Benefits       []string       `json:"benefits,omitempty"`
	ProblemsSolved []string       `json:"problems_solved,omitempty"`
	WhyChooseUs    []string       `json:"why_choose_us,omitempty"`
	ProcessSteps   []content.Step `json:"process_steps,omitempty"`
	FAQs           []content.FAQ  `json:"faqs,omitempty"`

	PriceRange     string   `json:"price_range,omitempty"`
	Timeline       string   `json:"timeline,omitempty"`
	Warranty       string   `json:"warranty,omitempty"`
	Materials      []string `json:"materials,omitempty"`
	Certifications []string `json:"certifications,omitempty"`

	SectionsJSON     json.RawMessage `json:"sections,omitempty"`
	FeaturesJSON     json.RawMessage `json:"features,omitempty"`
	TestimonialsJSON json.RawMessage `json:"testimonials,omitempty"`
	FAQJSON          json.RawMessage `json:"faq_overrides,omitempty"`

	RelatedServices []relatedServiceView `json:"related_services,omitempty"`
	NearbyCities    []nearbyCityView     `json:"nearby_cities,omitempty"`

	Suggestions []suggestionView `json:"suggestions,omitempty"`
}

type suggestionView struct {
	Label   string  `json:"label"`
	URLPath string  `json:"url_path"`
	Score   float64 `json:"score"`
}

/*──────────────────────────── GET /{city}/{service} ────────────────────────*/

func (s *Server) handlePage(w http.ResponseWriter, r *http.Request) {
	city := chi.URLParam(r, "city")
	service := chi.URLParam(r, "service")

	res, err := s.resolver.Resolve(r.Context(), city, service)
	if err != nil {
		s.log.Errorw("resolve failed", "city", city, "service", service, "err", err)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}

	if res.Found {
		writeJSON(w, http.StatusOK, s.pageViewOf(res.Page))
		return
	}

	if len(res.Suggestions) > 0 {
		writeJSON(w, http.StatusOK, pageView{
			Found:       false,
			Suggestions: suggestionViews(res.Suggestions),
		})
		return
	}

	writeError(w, http.StatusNotFound, "page not found")
}

func (s *Server) pageViewOf(pc *resolve.PageContent) pageView {
	b := head.FromPage(pc, s.opts.BaseURL)

	pv := pageView{
		Found:       true,
		Source:      string(pc.Source),
		CitySlug:    pc.CitySlug,
		ServiceSlug: pc.ServiceSlug,
		CityName:    pc.CityName,
		URLPath:     pc.URLPath,
		Head: &headView{
			Title:   string(b.Title()),
			Metas:   string(b.Metas()),
			Links:   string(b.Links()),
			JSONLD:  string(b.JSON()),
			Scripts: string(b.Scripts()),
		},
		H1:              pc.H1,
		HeroText:        pc.HeroText,
		Description:     pc.Description,
		CityDescription: pc.CityDescription,
		CTAText:         pc.CTAText,
		Keywords:        pc.Keywords,
		Benefits:        pc.Benefits,
		ProblemsSolved:  pc.ProblemsSolved,
		WhyChooseUs:     pc.WhyChooseUs,
		ProcessSteps:    pc.ProcessSteps,
		FAQs:            pc.FAQs,
		PriceRange:      pc.PriceRange,
		Timeline:        pc.Timeline,
		Warranty:        pc.Warranty,
		Materials:       pc.Materials,
		Certifications:  pc.Certifications,
	}

	// Editor-authored JSON blobs pass through untouched when valid.
	pv.SectionsJSON = rawJSON(pc.SectionsJSON)
	pv.FeaturesJSON = rawJSON(pc.FeaturesJSON)
	pv.TestimonialsJSON = rawJSON(pc.TestimonialsJSON)
	pv.FAQJSON = rawJSON(pc.FAQJSON)

	for _, rs := range pc.Related.Services {
		pv.RelatedServices = append(pv.RelatedServices, relatedServiceView(rs))
	}
	for _, nc := range pc.Related.Cities {
		pv.NearbyCities = append(pv.NearbyCities, nearbyCityView(nc))
	}
	return pv
}

func suggestionViews(sugs []match.Suggestion) []suggestionView {
	out := make([]suggestionView, 0, len(sugs))
	for _, sg := range sugs {
		label := sg.Record.H1
		if label == "" {
			label = sg.Record.Keyword
		}
		out = append(out, suggestionView{
			Label:   label,
			URLPath: sg.Record.URLPath,
			Score:   sg.Score,
		})
	}
	return out
}

/*──────────────────────────── GET /services/{service} ──────────────────────*/

type serviceHubView struct {
	ServiceSlug string   `json:"service_slug"`
	Title       string   `json:"title"`
	Category    string   `json:"category,omitempty"`
	Description string   `json:"description,omitempty"`
	Keywords    []string `json:"keywords,omitempty"`
	PriceRange  string   `json:"price_range,omitempty"`

	Cities []nearbyCityView `json:"cities,omitempty"`
}

func (s *Server) handleServiceHub(w http.ResponseWriter, r *http.Request) {
	serviceSlug := slug.Make(chi.URLParam(r, "service"))

	entry, haveEntry := s.store.Get(serviceSlug)
	cities := s.idx.CitiesForService(serviceSlug)
	if !haveEntry && len(cities) == 0 {
		writeError(w, http.StatusNotFound, "service not found")
		return
	}

	hub := serviceHubView{
		ServiceSlug: serviceSlug,
		Title:       entry.Title,
		Category:    content.CategoryOf(serviceSlug),
		Description: entry.ShortDescription,
		Keywords:    entry.Keywords,
		PriceRange:  entry.PriceRange,
	}
	if hub.Title == "" {
		hub.Title = slug.TitleWords(serviceSlug)
	}

	for _, citySlug := range cities {
		nc := nearbyCityView{
			CitySlug: citySlug,
			Name:     slug.CityDisplayName(citySlug),
			URLPath:  "/" + citySlug + "/" + serviceSlug,
		}
		if rec, ok := s.idx.FindByURL(citySlug, serviceSlug); ok && rec.URLPath != "" {
			nc.URLPath = rec.URLPath
		}
		hub.Cities = append(hub.Cities, nc)
	}

	writeJSON(w, http.StatusOK, hub)
}

/*──────────────────────────── POST /lead ───────────────────────────────────*/

type leadAccepted struct {
	ID int64 `json:"id"`
}

func (s *Server) handleLead(w http.ResponseWriter, r *http.Request) {
	if s.leads == nil {
		writeError(w, http.StatusServiceUnavailable, "lead intake disabled")
		return
	}

	info := requestinfo.FromContext(r.Context())

	// Crawler-flagged agents never reach the database.
	if info != nil && info.UA.IsBot {
		metrics.LeadRejectTotal.Inc()
		writeError(w, http.StatusForbidden, "rejected")
		return
	}

	var l lead.Lead
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxLeadBody))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&l); err != nil {
		writeError(w, http.StatusBadRequest, "malformed body")
		return
	}
	if l.CitySlug != "" {
		l.CitySlug = slug.Make(l.CitySlug)
	}
	if l.ServiceSlug != "" {
		l.ServiceSlug = slug.Make(l.ServiceSlug)
	}

	// Attribution rides along server-side so sales sees device class and
	// rough origin even when the visitor picked no city.
	if info != nil {
		l.UADevice = info.UA.Device
		l.UABrowser = info.UA.Browser
		l.GeoCity = info.Geo.City
		l.GeoRegion = info.Geo.Region
	}

	id, err := s.leads.Submit(r.Context(), &l)
	if err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			writeJSON(w, http.StatusUnprocessableEntity, map[string]any{
				"error":  "validation failed",
				"fields": fieldNames(verrs),
			})
			return
		}
		s.log.Errorw("lead insert failed", "err", err)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}

	writeJSON(w, http.StatusCreated, leadAccepted{ID: id})
}

func fieldNames(verrs validator.ValidationErrors) []string {
	out := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		out = append(out, fe.Field())
	}
	return out
}

/*──────────────────────────── JSON helpers ─────────────────────────────────*/

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

// rawJSON passes an editor-authored blob through when it is valid JSON
// and drops it otherwise, so one bad row cannot break the page payload.
func rawJSON(s string) json.RawMessage {
	if s == "" || !json.Valid([]byte(s)) {
		return nil
	}
	return json.RawMessage(s)
}
