//
//  internal/requestinfo/requestinfo.go
//
//  Per-request visitor metadata: user-agent fingerprint, IP + geolocation
//  hint, URL, and timestamp.  The structs are inert.  They hold no
//  database handles or large buffers, so they are safe to log or
//  JSON-encode.
//
//  Dependencies
//  • github.com/avct/uasurfer          (UA parsing)
//  • github.com/oschwald/geoip2-golang (MaxMind lookup)
//
//  The geo hint feeds the lead intake path: when a visitor submits a
//  quote request without picking a city, sales still sees roughly where
//  the request came from.
//

package requestinfo

import (
	"context"
	"net"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/avct/uasurfer"
	"github.com/oschwald/geoip2-golang"
)

// UA holds the parsed user-agent properties we keep per request.
type UA struct {
	Raw         string // entire User-Agent header
	Browser     string // "Chrome", "Firefox", "Safari", ...
	Version     string // "124.0.6367"
	OS          string // "macOS", "Windows", "Android", "iOS", ...
	Device      string // "Desktop", "Phone", "Tablet", "TV", ...
	IsBot       bool   // true when the UA matches a crawler signature
	PrimaryLang string // first tag from Accept-Language ("en", "es", ...)
}

// Geo holds IP-based geolocation hints.  Best effort; fields stay empty
// when the database has no match or is not loaded.
type Geo struct {
	IP         net.IP
	CountryISO string // "US", "CA", ...
	Region     string // "Utah", "Idaho", ...
	City       string // "Sandy", "Provo", ...
}

// Info is stored on the request context by Enrich.
type Info struct {
	UA        UA
	Geo       Geo
	URL       *url.URL // pointer copy, safe to dereference read-only
	Timestamp time.Time
}

// geoReader is a singleton MaxMind handle.  Concurrent reads are safe,
// which is all we ever perform.
var geoReader *geoip2.Reader

// InitGeo opens the GeoLite2-City database at startup.  The database is
// optional; callers that get an error back should log it and continue
// without geo hints.
func InitGeo(dbPath string) error {
	r, err := geoip2.Open(dbPath)
	if err != nil {
		return err
	}
	geoReader = r
	return nil
}

type ctxKey struct{} // unexported, collision-proof

// FromContext returns the pointer previously stored by Enrich, or nil
// when the middleware has not run.
func FromContext(ctx context.Context) *Info {
	v, _ := ctx.Value(ctxKey{}).(*Info)
	return v
}

/*──────────────────────────── internal helpers ─────────────────────────────*/

// parseUA converts a raw header into our UA struct using uasurfer.
func parseUA(uaHeader, acceptLang string) UA {
	u := uasurfer.Parse(uaHeader)

	osName := strings.TrimPrefix(u.OS.Name.String(), "OS")
	if osName == "MacOSX" {
		osName = "macOS"
	}

	return UA{
		Raw:         uaHeader,
		Browser:     strings.TrimPrefix(u.Browser.Name.String(), "Browser"),
		Version:     trimVersion(u.Browser.Version),
		OS:          osName,
		Device:      deviceTypeToString(u.DeviceType),
		IsBot:       u.IsBot(),
		PrimaryLang: primaryLang(acceptLang),
	}
}

// trimVersion builds "major.minor.patch" and removes trailing ".0".
func trimVersion(v uasurfer.Version) string {
	out := strings.Join([]string{
		strconv.Itoa(v.Major),
		strconv.Itoa(v.Minor),
		strconv.Itoa(v.Patch),
	}, ".")
	for strings.HasSuffix(out, ".0") {
		out = strings.TrimSuffix(out, ".0")
	}
	if out == "" {
		return "0"
	}
	return out
}

// deviceTypeToString maps uasurfer.DeviceType to a user-friendly string.
func deviceTypeToString(dt uasurfer.DeviceType) string {
	switch dt {
	case uasurfer.DeviceComputer:
		return "Desktop"
	case uasurfer.DevicePhone:
		return "Phone"
	case uasurfer.DeviceTablet:
		return "Tablet"
	case uasurfer.DeviceConsole:
		return "Console"
	case uasurfer.DeviceWearable:
		return "Wearable"
	case uasurfer.DeviceTV:
		return "TV"
	default:
		return "Unknown"
	}
}

// primaryLang extracts the first language subtag before any ";q=" rule.
func primaryLang(al string) string {
	if al == "" {
		return ""
	}
	tag := strings.TrimSpace(strings.Split(al, ",")[0])
	if i := strings.Index(tag, ";"); i != -1 {
		tag = tag[:i]
	}
	return strings.ToLower(tag)
}

// lookupGeo returns best-effort Geo data using the global reader.
func lookupGeo(ip net.IP) Geo {
	if geoReader == nil || ip == nil {
		return Geo{IP: ip}
	}
	rec, err := geoReader.City(ip)
	if err != nil {
		return Geo{IP: ip}
	}
	g := Geo{
		IP:         ip,
		CountryISO: rec.Country.IsoCode,
		City:       rec.City.Names["en"],
	}
	if len(rec.Subdivisions) > 0 {
		g.Region = rec.Subdivisions[0].Names["en"]
	}
	return g
}
