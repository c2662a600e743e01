package sysinfo

import (
	"context"
	"fmt"
	"math"
	"net"
	"strconv"
	"strings"

	"github.com/oschwald/maxminddb-golang"
)

// GeoIPLocator estimates the device position by looking up its public IP
// address in a MaxMind City database (e.g. GeoLite2-City.mmdb).
type GeoIPLocator struct {
	// DBPath is the mmdb file; empty disables the lookup.
	DBPath string

	// PublicIP skips WAN discovery when set.
	PublicIP net.IP

	// DisableWAN forbids contacting the public echo services.
	DisableWAN bool

	WAN *WANResolver
}

type cityLocation struct {
	Location struct {
		Latitude  *float64 `maxminddb:"latitude"`
		Longitude *float64 `maxminddb:"longitude"`
	} `maxminddb:"location"`
}

// Position implements LocationQuery.
func (g *GeoIPLocator) Position(ctx context.Context) (Coordinate, error) {
	if g.DBPath == "" {
		return Coordinate{}, ErrNoGeoDatabase
	}

	ip, err := g.publicIP(ctx)
	if err != nil {
		return Coordinate{}, err
	}

	db, err := maxminddb.Open(g.DBPath)
	if err != nil {
		return Coordinate{}, fmt.Errorf("open geoip database: %w", err)
	}
	defer func() { _ = db.Close() }()

	var city cityLocation
	_, ok, err := db.LookupNetwork(ip, &city)
	if err != nil {
		return Coordinate{}, fmt.Errorf("geoip lookup %s: %w", ip, err)
	}
	if !ok || city.Location.Latitude == nil || city.Location.Longitude == nil {
		return Coordinate{}, fmt.Errorf("%w: %s", ErrLocationNotFound, ip)
	}

	return Coordinate{
		Latitude:  *city.Location.Latitude,
		Longitude: *city.Location.Longitude,
	}, nil
}

func (g *GeoIPLocator) publicIP(ctx context.Context) (net.IP, error) {
	if g.PublicIP != nil {
		return g.PublicIP, nil
	}
	if g.DisableWAN {
		return nil, ErrWANDisabled
	}

	wan := g.WAN
	if wan == nil {
		wan = NewWANResolver()
	}

	return wan.PublicIP(ctx)
}

// FixedLocator always reports the same configured position.
type FixedLocator struct {
	Coordinate Coordinate
}

// ParseFixedLocator parses "lat,lon" in decimal degrees.
//
// Parameters:
//   - s: The coordinate pair (e.g. "37.422,-122.084")
//
// Returns:
//   - A FixedLocator on success
//   - ErrInvalidCoordinate if s is malformed or out of range
func ParseFixedLocator(s string) (*FixedLocator, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return nil, fmt.Errorf("%w: %q", ErrInvalidCoordinate, s)
	}

	lat, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return nil, fmt.Errorf("%w: latitude %q", ErrInvalidCoordinate, parts[0])
	}
	lon, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return nil, fmt.Errorf("%w: longitude %q", ErrInvalidCoordinate, parts[1])
	}
	if math.IsNaN(lat) || math.IsNaN(lon) {
		return nil, fmt.Errorf("%w: %q is not a number", ErrInvalidCoordinate, s)
	}
	if lat < -90 || lat > 90 || lon < -180 || lon > 180 {
		return nil, fmt.Errorf("%w: %q out of range", ErrInvalidCoordinate, s)
	}

	return &FixedLocator{Coordinate: Coordinate{Latitude: lat, Longitude: lon}}, nil
}

// Position implements LocationQuery.
func (f *FixedLocator) Position(context.Context) (Coordinate, error) {
	return f.Coordinate, nil
}
