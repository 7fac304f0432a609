// internal/head/seo.go
//
// SEO head tags for resolved landing pages.
//
// Context
// -------
// FromPage turns one resolved PageContent into a fully seeded Builder:
// title, meta description, keywords, canonical link, and the raw JSON-LD
// block carried by the catalog row.  Handlers call it once per request
// and hand the Builder to the layout.

package head

import (
	"html/template"
	"strings"

	"github.com/wasatchbuilt/siteengine/internal/resolve"
)

// FromPage seeds a Builder from resolved page content.  baseURL is the
// canonical scheme+host without a trailing slash.
func FromPage(pc *resolve.PageContent, baseURL string) *Builder {
	b := New()
	b.SetTitle(pc.SEOTitle)

	b.Meta(`<meta charset="utf-8">`)
	b.Meta(metaTag("description", pc.MetaDescription))
	if len(pc.Keywords) > 0 {
		b.Meta(metaTag("keywords", strings.Join(pc.Keywords, ", ")))
	}

	if baseURL != "" {
		href := template.HTMLEscapeString(strings.TrimSuffix(baseURL, "/") + pc.URLPath)
		b.Link(`<link rel="canonical" href="` + href + `">`)
	}

	if pc.JSONLD != "" {
		b.JSONLD(pc.JSONLD)
	}
	return b
}

// metaTag escapes content into a name/content meta element.
func metaTag(name, content string) string {
	return `<meta name="` + name + `" content="` +
		template.HTMLEscapeString(content) + `">`
}
