// Package sysinfo gathers device-level information (network address,
// storage capacity, geolocation, device class and OS/model metadata) through
// pluggable capability providers and merges it into a single Record.
package sysinfo

import "strings"

// DeviceClass classifies the device form factor.
type DeviceClass int

const (
	// ClassUnknown means a classification was attempted but did not match
	// any known form factor. A nil *DeviceClass means no classification
	// could be attempted at all.
	ClassUnknown DeviceClass = iota
	ClassPhone
	ClassTablet
	ClassDesktop
	ClassTV
)

var deviceClassNames = map[DeviceClass]string{
	ClassUnknown: "UNKNOWN",
	ClassPhone:   "PHONE",
	ClassTablet:  "TABLET",
	ClassDesktop: "DESKTOP",
	ClassTV:      "TV",
}

// String returns the upper-case enumeration name (e.g. "PHONE").
func (c DeviceClass) String() string {
	if name, ok := deviceClassNames[c]; ok {
		return name
	}
	return "UNKNOWN"
}

// MarshalText encodes the class by name so JSON output stays readable.
func (c DeviceClass) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// UnmarshalText decodes a class name; unrecognized names decode as
// ClassUnknown.
func (c *DeviceClass) UnmarshalText(text []byte) error {
	*c, _ = ParseDeviceClass(string(text))
	return nil
}

// ParseDeviceClass parses an enumeration name, case-insensitively.
//
// Parameters:
//   - s: The class name (e.g. "tablet")
//
// Returns:
//   - The parsed class and true on success
//   - ClassUnknown and false if s names no class
func ParseDeviceClass(s string) (DeviceClass, bool) {
	want := strings.ToUpper(strings.TrimSpace(s))
	for class, name := range deviceClassNames {
		if name == want {
			return class, true
		}
	}
	return ClassUnknown, false
}

// Coordinate is a geographic position in decimal degrees.
type Coordinate struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Record is the merged snapshot of every lookup. Each field is optional: a
// nil pointer means the lookup failed, was skipped, or returned nothing,
// which is distinct from a present empty string.
//
// A Record is built in full by the Aggregator and handed to a Store as one
// value; it is never patched field by field.
type Record struct {
	// NetworkAddress is the device's primary local IP address
	NetworkAddress *string `json:"network_address,omitempty"`

	// DeviceClass is the form factor; nil when unclassifiable
	DeviceClass *DeviceClass `json:"device_class,omitempty"`

	// OSName is the operating system or distribution name
	OSName *string `json:"os_name,omitempty"`

	// OSVersion is the operating system version
	OSVersion *string `json:"os_version,omitempty"`

	// ModelName is the manufacturer and model of the device
	ModelName *string `json:"model_name,omitempty"`

	// TotalStorage is the capacity of the measured filesystem in bytes
	TotalStorage *uint64 `json:"total_storage,omitempty"`

	// FreeStorage is the free space on the measured filesystem in bytes
	FreeStorage *uint64 `json:"free_storage,omitempty"`

	// Coordinate is the last known position; only set when location
	// permission was granted and the query succeeded
	Coordinate *Coordinate `json:"coordinate,omitempty"`
}

// Metadata is the static device information read synchronously from the
// host. Unavailable fields are nil.
type Metadata struct {
	DeviceClass *DeviceClass
	OSName      *string
	OSVersion   *string
	ModelName   *string
}

func ptr[T any](v T) *T {
	return &v
}

// nonEmpty returns a pointer to the trimmed value, or nil when it is blank.
func nonEmpty(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}
