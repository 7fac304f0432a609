// internal/content/categories.go
//
// Fixed service-slug → category mapping.
//
// Context
// -------
// Category membership is editorial, not derived from entry text, so it
// lives in this table rather than in the YAML files.  Keep it in sync with
// the category values used by the landing-page catalog CSV so category
// pages and related-service selection agree.

package content

// serviceCategories maps canonical service slugs to their category tag.
var serviceCategories = map[string]string{
	"kitchen-remodeling":    "remodeling",
	"bathroom-remodeling":   "remodeling",
	"basement-finishing":    "remodeling",
	"home-additions":        "remodeling",
	"whole-home-remodel":    "remodeling",
	"flooring-installation": "interior",
	"laminate-installation": "interior",
	"hardwood-flooring":     "interior",
	"tile-installation":     "interior",
	"interior-painting":     "interior",
	"drywall-repair":        "interior",
	"custom-cabinetry":      "interior",
	"deck-construction":     "outdoor",
	"patio-installation":    "outdoor",
	"fence-installation":    "outdoor",
	"concrete-work":         "outdoor",
	"roofing-replacement":   "exterior",
	"siding-installation":   "exterior",
	"window-replacement":    "exterior",
	"exterior-painting":     "exterior",
}

// CategoryOf returns the category tag for a service slug, or "" when the
// slug is not in the table.
func CategoryOf(serviceSlug string) string {
	return serviceCategories[serviceSlug]
}
