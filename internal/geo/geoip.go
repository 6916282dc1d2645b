package geo

import (
	"net"
	"strings"
	"time"

	geoip2 "github.com/oschwald/geoip2-golang"
	gocache "github.com/patrickmn/go-cache"
)

// Unknown is returned whenever a country cannot be determined.
const Unknown = "unknown"

// Resolver resolves IP addresses to ISO country codes using a GeoIP2
// country database. Results, including misses, are cached per IP.
type Resolver struct {
	db     *geoip2.Reader
	lookup func(ip net.IP) (string, error)
	cache  *gocache.Cache
}

// NewResolver opens the database at dbPath. An empty dbPath yields a
// resolver that answers Unknown for every address.
func NewResolver(dbPath string, ttl time.Duration) (*Resolver, error) {
	r := &Resolver{
		cache: gocache.New(ttl, 2*ttl),
	}
	if dbPath == "" {
		return r, nil
	}

	db, err := geoip2.Open(dbPath)
	if err != nil {
		return nil, err
	}
	r.db = db
	r.lookup = func(ip net.IP) (string, error) {
		record, err := db.Country(ip)
		if err != nil {
			return "", err
		}
		return record.Country.IsoCode, nil
	}
	return r, nil
}

// Close closes the GeoIP database reader.
func (r *Resolver) Close() error {
	if r.db == nil {
		return nil
	}
	return r.db.Close()
}

// ResolveCountry returns the ISO country code for the given IP address.
// Returns Unknown for private IPs, invalid IPs, or lookup failures.
func (r *Resolver) ResolveCountry(ipStr string) string {
	if r.lookup == nil {
		return Unknown
	}

	ip := parseIP(ipStr)
	if ip == nil || ip.IsPrivate() || ip.IsLoopback() || ip.IsUnspecified() {
		return Unknown
	}

	key := ip.String()
	if cached, ok := r.cache.Get(key); ok {
		return cached.(string)
	}

	country, err := r.lookup(ip)
	if err != nil || country == "" {
		country = Unknown
	}
	r.cache.SetDefault(key, country)
	return country
}

// parseIP accepts plain addresses as well as IPv4-mapped IPv6 and host:port forms.
func parseIP(s string) net.IP {
	s = strings.TrimSpace(s)
	if host, _, err := net.SplitHostPort(s); err == nil {
		s = host
	}
	s = strings.TrimPrefix(s, "::ffff:")
	return net.ParseIP(s)
}
