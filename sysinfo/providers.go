//go:generate mockgen -destination=mock_providers.go -package=sysinfo devicecard/sysinfo PermissionAuthority,NetworkQuery,StorageQuery,LocationQuery,MetadataProvider

package sysinfo

import (
	"context"
	"errors"
)

var (
	ErrNoAddress         = errors.New("no usable network address")
	ErrNoGeoDatabase     = errors.New("no geoip database configured")
	ErrWANDisabled       = errors.New("public address lookup disabled")
	ErrNoWANAddress      = errors.New("public address could not be resolved")
	ErrLocationNotFound  = errors.New("no location recorded for address")
	ErrInvalidCoordinate = errors.New("invalid coordinate")
	ErrUnknownPolicy     = errors.New("unknown location permission policy")

	errNotConfigured = errors.New("provider not configured")
	errLookupPanic   = errors.New("lookup panicked")
)

// PermissionStatus is the answer of a PermissionAuthority. Only
// PermissionGranted enables the location lookup.
type PermissionStatus string

const (
	PermissionGranted      PermissionStatus = "granted"
	PermissionDenied       PermissionStatus = "denied"
	PermissionUndetermined PermissionStatus = "undetermined"
)

// PermissionAuthority decides whether the location may be queried.
type PermissionAuthority interface {
	RequestLocation(ctx context.Context) (PermissionStatus, error)
}

// NetworkQuery resolves the device's network address.
type NetworkQuery interface {
	Address(ctx context.Context) (string, error)
}

// StorageQuery reports on-device storage capacity in bytes.
type StorageQuery interface {
	Capacity(ctx context.Context) (total, free uint64, err error)
}

// LocationQuery resolves the device's current geographic position.
type LocationQuery interface {
	Position(ctx context.Context) (Coordinate, error)
}

// MetadataProvider reads static device information. It never fails;
// unavailable fields are left nil.
type MetadataProvider interface {
	Metadata() Metadata
}

// Providers bundles the capability boundaries consulted by an Aggregator.
type Providers struct {
	Permissions PermissionAuthority
	Network     NetworkQuery
	Storage     StorageQuery
	Location    LocationQuery
	Metadata    MetadataProvider
}
