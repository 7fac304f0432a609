// internal/catalog/record.go
//
// Landing-page catalog row model.
//
// Context
// -------
// The `Record` struct mirrors one row of the landing-page catalog: one
// (city, service) combination with its pre-written SEO fields.  Rows are
// sourced from the flat CSV export at boot (see csv.go) or from the pages
// table when a database is configured, and they are immutable once the
// Index is built.
//
// Column reference (2026-07 export)
//
//	city_slug, keyword, category, url_path, seo_title,
//	meta_description, h1, json_ld, internal_links
//
// Notes
// -----
// • Identity is the (CitySlug, Keyword) pair, unique within the catalog.
// • `JSONLD` holds a raw schema.org block; it is emitted verbatim into the
//   page head and never parsed here.
// • This struct contains no behaviour—pure data model.

package catalog

// Record is one city × service landing page.
type Record struct {
	CitySlug        string `db:"city_slug"`
	Keyword         string `db:"keyword"` // service slug, e.g. "kitchen-remodeling"
	Category        string `db:"category"`
	URLPath         string `db:"url_path"`
	SEOTitle        string `db:"seo_title"`
	MetaDescription string `db:"meta_description"`
	H1              string `db:"h1"`
	JSONLD          string `db:"json_ld"`
	InternalLinks   string `db:"internal_links"`
}
