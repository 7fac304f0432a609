// internal/content/entry.go
//
// Curated service content model.
//
// Context
// -------
// Each well-known service (kitchen remodeling, basement finishing, …) has
// one hand-written long-form entry: descriptions, FAQs, process steps,
// pricing, and cross-links.  Entries are declared in YAML files under
// `content/services/` and loaded once at boot (see loader.go); after that
// the catalog is immutable.
//
// The long-form text is written against a generic region placeholder (the
// literal configured in Store options, `Utah` by default).  Location pages
// substitute the requested city name on read; the stored entry is never
// mutated.
//
// Notes
// -----
// • Struct tags use `yaml:"…"`; the loader parses with gopkg.in/yaml.v3.
// • `RelatedSlugs` may reference entries that were never written.  That is
//   a data-quality concern, not an error; Related() drops them silently.

package content

// Entry is one curated service content record.
type Entry struct {
	Slug             string   `yaml:"slug"`              // canonical service slug, unique
	Title            string   `yaml:"title"`             // display title
	ShortDescription string   `yaml:"short_description"` // card/teaser copy
	LongDescription  string   `yaml:"long_description"`  // region-templated body copy
	MetaDescription  string   `yaml:"meta_description"`  // region-templated SEO description
	Keywords         []string `yaml:"keywords"`          // base SEO keywords

	Benefits       []string `yaml:"benefits"`
	ProcessSteps   []Step   `yaml:"process_steps"`
	ProblemsSolved []string `yaml:"problems_solved"`
	WhyChooseUs    []string `yaml:"why_choose_us"`
	FAQs           []FAQ    `yaml:"faqs"`
	RelatedSlugs   []string `yaml:"related_slugs"`

	PriceRange     string   `yaml:"price_range"` // e.g. "$15,000 – $45,000"
	Timeline       string   `yaml:"timeline"`    // e.g. "3–6 weeks"
	Warranty       string   `yaml:"warranty"`
	Materials      []string `yaml:"materials"`
	Certifications []string `yaml:"certifications"`
}

// Step is one ordered stage of the service process.
type Step struct {
	Index       int    `yaml:"index"`
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
	Duration    string `yaml:"duration"` // optional, e.g. "1–2 days"
}

// FAQ is one question/answer pair.  Category is optional and used only for
// grouping on the page.
type FAQ struct {
	Question string `yaml:"question"`
	Answer   string `yaml:"answer"`
	Category string `yaml:"category"`
}
