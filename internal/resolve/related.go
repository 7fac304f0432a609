// internal/resolve/related.go
//
// Related-content selection for resolved pages.
//
// Context
// -------
// Every landing page cross-links two lists: other services in the same
// category for the same city, and nearby cities offering the same
// service.  Both are derived from the catalog indices in catalog order,
// with the resolved page itself excluded, capped, and fully deterministic
// for a given catalog snapshot.

package resolve

import (
	"github.com/wasatchbuilt/siteengine/internal/catalog"
	"github.com/wasatchbuilt/siteengine/internal/content"
	"github.com/wasatchbuilt/siteengine/internal/slug"
)

// Caps for the two cross-link lists.
const (
	MaxRelatedServices = 5
	MaxNearbyCities    = 8
)

// RelatedService is one same-city, same-category cross-link.
type RelatedService struct {
	Keyword  string
	Title    string
	URLPath  string
	Category string
}

// NearbyCity is one same-service, different-city cross-link.
type NearbyCity struct {
	CitySlug string
	Name     string
	URLPath  string
}

// Related groups both cross-link lists.
type Related struct {
	Services []RelatedService
	Cities   []NearbyCity
}

// related builds the cross-links for a composed page.  catRec may be nil
// for database-only pages; category then falls back to the fixed content
// mapping table.
func (r *Resolver) related(pc *PageContent, catRec *catalog.Record) Related {
	category := ""
	if catRec != nil {
		category = catRec.Category
	}
	if category == "" {
		category = content.CategoryOf(pc.ServiceSlug)
	}

	var rel Related

	// Same category, same city, self excluded, catalog order.
	if category != "" {
		selfCity := slug.Normalize(pc.CitySlug)
		selfKeyword := slug.Normalize(pc.ServiceSlug)
		for _, rec := range r.idx.ByCategory(category) {
			if len(rel.Services) == MaxRelatedServices {
				break
			}
			if slug.Normalize(rec.CitySlug) != selfCity {
				continue
			}
			if slug.Normalize(rec.Keyword) == selfKeyword {
				continue
			}
			rel.Services = append(rel.Services, RelatedService{
				Keyword:  rec.Keyword,
				Title:    serviceTitle(rec),
				URLPath:  rec.URLPath,
				Category: rec.Category,
			})
		}
	}

	// Same service, other cities, index order.
	selfCity := slug.Normalize(pc.CitySlug)
	for _, city := range r.idx.CitiesForService(pc.ServiceSlug) {
		if len(rel.Cities) == MaxNearbyCities {
			break
		}
		if slug.Normalize(city) == selfCity {
			continue
		}
		urlPath := "/" + slug.Make(city) + "/" + pc.ServiceSlug
		if rec, ok := r.idx.FindByURL(city, pc.ServiceSlug); ok && rec.URLPath != "" {
			urlPath = rec.URLPath
		}
		rel.Cities = append(rel.Cities, NearbyCity{
			CitySlug: city,
			Name:     slug.CityDisplayName(city),
			URLPath:  urlPath,
		})
	}

	return rel
}

// serviceTitle prefers the catalog H1, falling back to the keyword.
func serviceTitle(rec *catalog.Record) string {
	if rec.H1 != "" {
		return rec.H1
	}
	return rec.Keyword
}
