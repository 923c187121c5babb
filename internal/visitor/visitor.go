//
//  internal/visitor/visitor.go
//
//  Per-request visitor metadata for the portfolio pages: user-agent class,
//  client IP, and an optional GeoLite2 city lookup.  The structs are inert,
//  so they are safe to log.
//
//  Dependencies
//  • github.com/avct/uasurfer          (UA parsing)
//  • github.com/oschwald/geoip2-golang (MaxMind lookup, optional)
//

package visitor

import (
	"context"
	"fmt"
	"net"
	"strconv"
	"time"

	surfer "github.com/avct/uasurfer"
	"github.com/oschwald/geoip2-golang"
)

// UA holds the parsed user-agent attributes we log and label metrics with.
type UA struct {
	Browser string // "BrowserChrome" trimmed to "Chrome"
	Version string // "125.0.6422", trailing zeros dropped
	OS      string
	Device  string // Desktop, Mobile, Tablet, Bot, or Other
	IsBot   bool
}

// Geo holds best-effort IP geolocation.  Fields stay empty without a DB.
type Geo struct {
	IP         net.IP
	CountryISO string
	City       string
}

// Info is stored in the request context by Enrich.
type Info struct {
	UA        UA
	Geo       Geo
	Path      string
	Timestamp time.Time
}

type ctxKey struct{}

// FromContext returns the *Info stored by Enrich, or nil.
func FromContext(ctx context.Context) *Info {
	v, _ := ctx.Value(ctxKey{}).(*Info)
	return v
}

/*──────────────────────────── UA parsing ───────────────────────────────────*/

// ParseUA classifies a raw User-Agent header.
func ParseUA(raw string) UA {
	ua := surfer.Parse(raw)

	out := UA{
		Browser: trimEnum(ua.Browser.Name.String(), "Browser"),
		Version: versionString(ua.Browser.Version),
		OS:      trimEnum(ua.OS.Name.String(), "OS"),
		IsBot:   ua.IsBot(),
	}

	switch {
	case out.IsBot:
		out.Device = "Bot"
	case ua.DeviceType == surfer.DeviceComputer:
		out.Device = "Desktop"
	case ua.DeviceType == surfer.DeviceTablet:
		out.Device = "Tablet"
	case ua.DeviceType == surfer.DevicePhone, ua.DeviceType == surfer.DeviceWearable:
		out.Device = "Mobile"
	default:
		out.Device = "Other"
	}
	return out
}

func trimEnum(s, prefix string) string {
	if len(s) > len(prefix) && s[:len(prefix)] == prefix {
		return s[len(prefix):]
	}
	return s
}

// versionString renders 17.0.0 → "17", 17.3.0 → "17.3", 17.3.1 → "17.3.1".
func versionString(v surfer.Version) string {
	switch {
	case v.Major == 0 && v.Minor == 0 && v.Patch == 0:
		return ""
	case v.Patch != 0:
		return fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Patch)
	case v.Minor != 0:
		return fmt.Sprintf("%d.%d", v.Major, v.Minor)
	default:
		return strconv.Itoa(int(v.Major))
	}
}

/*──────────────────────────── geo lookup ───────────────────────────────────*/

// CityReader is the subset of *geoip2.Reader used here.
type CityReader interface {
	City(ip net.IP) (*geoip2.City, error)
}

func lookupGeo(r CityReader, ip net.IP) Geo {
	g := Geo{IP: ip}
	if r == nil || ip == nil {
		return g
	}
	rec, err := r.City(ip)
	if err != nil || rec == nil {
		return g
	}
	g.CountryISO = rec.Country.IsoCode
	g.City = rec.City.Names["en"]
	return g
}
