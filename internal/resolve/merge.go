// internal/resolve/merge.go
//
// Field-level merge of the database, catalog, and curated content tiers.
//
// Context
// -------
// A rendered page draws each field through one documented fallback chain.
// The database record (when present) always wins; the catalog row and the
// location-templated content entry fill the gaps; the last link of every
// chain is a synthesized default, so a malformed upstream record degrades
// to a complete page instead of failing the request.
//
// Fallback chains
// ---------------
//	SEOTitle    DB seo_title → catalog seo_title → "<title> in <city> | <brand>"
//	MetaDesc    DB meta_description → catalog meta_description → entry meta
//	H1          DB h1 → catalog h1 → "<title> in <city>"
//	HeroText    DB hero_text → entry short description → generic line
//	Description DB description → entry long description (city-templated)
//	PriceRange  DB price_range → entry price range
//	CityDesc    DB city_description → synthesized service-area line
//	CTAText     DB cta_text → synthesized estimate line
//	URLPath     catalog url_path → "/<city>/<service>"
//	JSON blobs  DB only (sections/features/testimonials/faq)
//	JSONLD, InternalLinks  catalog only
//	Keywords, Benefits, ProcessSteps, FAQs, …  entry only
//
// Notes
// -----
// • The curated entry is fetched through a best-effort slug remap (see
//   remap.go) so niche keywords reuse their parent service's copy.

package resolve

import (
	"strings"

	"github.com/wasatchbuilt/siteengine/internal/content"
	"github.com/wasatchbuilt/siteengine/internal/page"
	"github.com/wasatchbuilt/siteengine/internal/slug"
)

// Brand is appended to synthesized SEO titles.
const Brand = "Wasatch Built"

// PageContent is the fully merged view handed to the rendering layer.
type PageContent struct {
	CitySlug    string
	ServiceSlug string
	CityName    string
	URLPath     string
	Source      Source

	SEOTitle        string
	MetaDescription string
	H1              string
	HeroText        string
	Description     string
	CityDescription string
	CTAText         string

	Keywords       []string
	Benefits       []string
	ProblemsSolved []string
	WhyChooseUs    []string
	ProcessSteps   []content.Step
	FAQs           []content.FAQ

	PriceRange     string
	Timeline       string
	Warranty       string
	Materials      []string
	Certifications []string

	SectionsJSON     string
	FeaturesJSON     string
	TestimonialsJSON string
	FAQJSON          string
	JSONLD           string
	InternalLinks    string

	Related Related
}

// compose merges the tiers for a resolved request.  dbRec is nil for
// catalog-tier hits.
func (r *Resolver) compose(citySlugRaw, serviceSlugRaw string, dbRec *page.Record) *PageContent {
	citySlug := slug.Make(citySlugRaw)
	serviceSlug := slug.Make(serviceSlugRaw)
	cityName := slug.CityDisplayName(citySlug)

	catRec, _ := r.idx.FindByURL(citySlug, serviceSlug)
	entry, haveEntry := r.contentFor(serviceSlug, cityName)

	pc := &PageContent{
		CitySlug:    citySlug,
		ServiceSlug: serviceSlug,
		CityName:    cityName,
		Source:      SourceCatalog,
	}
	if dbRec != nil {
		pc.Source = SourceDatabase
	}

	// Static-tier spine.
	if haveEntry {
		pc.MetaDescription = entry.MetaDescription
		pc.HeroText = entry.ShortDescription
		pc.Description = entry.LongDescription
		pc.Keywords = entry.Keywords
		pc.Benefits = entry.Benefits
		pc.ProblemsSolved = entry.ProblemsSolved
		pc.WhyChooseUs = entry.WhyChooseUs
		pc.ProcessSteps = entry.ProcessSteps
		pc.FAQs = entry.FAQs
		pc.PriceRange = entry.PriceRange
		pc.Timeline = entry.Timeline
		pc.Warranty = entry.Warranty
		pc.Materials = entry.Materials
		pc.Certifications = entry.Certifications
	}

	// Catalog row: SEO fields and raw blocks.
	if catRec != nil {
		pc.URLPath = catRec.URLPath
		pc.SEOTitle = catRec.SEOTitle
		if catRec.MetaDescription != "" {
			pc.MetaDescription = catRec.MetaDescription
		}
		pc.H1 = catRec.H1
		pc.JSONLD = catRec.JSONLD
		pc.InternalLinks = catRec.InternalLinks
	}

	// Database overrides, field by field.
	if dbRec != nil {
		override(&pc.SEOTitle, dbRec.SEOTitle)
		override(&pc.MetaDescription, dbRec.MetaDescription)
		override(&pc.H1, dbRec.H1)
		override(&pc.HeroText, dbRec.HeroText)
		override(&pc.Description, dbRec.Description)
		override(&pc.CityDescription, dbRec.CityDescription)
		override(&pc.CTAText, dbRec.CTAText)
		override(&pc.PriceRange, dbRec.PriceRange)
		override(&pc.SectionsJSON, dbRec.SectionsJSON)
		override(&pc.FeaturesJSON, dbRec.FeaturesJSON)
		override(&pc.TestimonialsJSON, dbRec.TestimonialsJSON)
		override(&pc.FAQJSON, dbRec.FAQJSON)
	}

	r.fillDefaults(pc, entry, haveEntry)
	pc.Related = r.related(pc, catRec)
	return pc
}

// override copies a non-empty database value over the fallback.
func override(dst *string, src *string) {
	if src != nil && strings.TrimSpace(*src) != "" {
		*dst = *src
	}
}

// fillDefaults synthesizes the last link of every fallback chain.
func (r *Resolver) fillDefaults(pc *PageContent, entry content.Entry, haveEntry bool) {
	title := titleFor(entry, haveEntry, pc.ServiceSlug)

	if pc.SEOTitle == "" {
		pc.SEOTitle = title + " in " + pc.CityName + " | " + Brand
	}
	if pc.H1 == "" {
		pc.H1 = title + " in " + pc.CityName
	}
	if pc.MetaDescription == "" {
		pc.MetaDescription = title + " in " + pc.CityName +
			".  Licensed, local, and free estimates from " + Brand + "."
	}
	if pc.HeroText == "" {
		pc.HeroText = title + " done right in " + pc.CityName + "."
	}
	if pc.CityDescription == "" {
		pc.CityDescription = Brand + " serves " + pc.CityName +
			" and the surrounding Wasatch Front."
	}
	if pc.CTAText == "" {
		pc.CTAText = "Get a free " + strings.ToLower(title) + " estimate in " + pc.CityName + "."
	}
	if pc.URLPath == "" {
		pc.URLPath = "/" + pc.CitySlug + "/" + pc.ServiceSlug
	}
}

// titleFor prefers the curated title, then title-cases the keyword.
func titleFor(entry content.Entry, haveEntry bool, serviceSlug string) string {
	if haveEntry && entry.Title != "" {
		return entry.Title
	}
	return slug.TitleWords(serviceSlug)
}
