package sysinfo

import (
	"strings"

	"github.com/shirou/gopsutil/v3/host"
)

// platformDetails is what the OS-specific reader found. Preferred values
// override the generic host information; fallback values fill in when the
// generic read failed.
type platformDetails struct {
	class     *DeviceClass
	model     *string
	osName    *string
	osVersion *string

	fallbackOSName    *string
	fallbackOSVersion *string
}

// HostMetadata reads static device metadata from the running host.
type HostMetadata struct {
	hostInfo func() (*host.InfoStat, error)
	platform func() platformDetails
}

// NewHostMetadata returns a provider backed by gopsutil and the platform's
// native model/chassis sources.
func NewHostMetadata() *HostMetadata {
	return &HostMetadata{
		hostInfo: host.Info,
		platform: readPlatformDetails,
	}
}

// Metadata implements MetadataProvider.
func (h *HostMetadata) Metadata() Metadata {
	var details platformDetails
	if h.platform != nil {
		details = h.platform()
	}

	var generic host.InfoStat
	if h.hostInfo != nil {
		if info, err := h.hostInfo(); err == nil && info != nil {
			generic = *info
		}
	}

	return Metadata{
		DeviceClass: details.class,
		ModelName:   details.model,
		OSName: firstPresent(
			details.osName,
			nonEmpty(prettyPlatform(generic.Platform)),
			nonEmpty(generic.OS),
			details.fallbackOSName,
		),
		OSVersion: firstPresent(
			details.osVersion,
			nonEmpty(generic.PlatformVersion),
			nonEmpty(generic.KernelVersion),
			details.fallbackOSVersion,
		),
	}
}

func firstPresent(values ...*string) *string {
	for _, v := range values {
		if v != nil {
			return v
		}
	}
	return nil
}

// prettyPlatform capitalizes distribution identifiers such as "ubuntu".
func prettyPlatform(p string) string {
	switch strings.ToLower(p) {
	case "":
		return ""
	case "darwin":
		return "macOS"
	}
	if strings.ToLower(p) == p {
		return strings.ToUpper(p[:1]) + p[1:]
	}
	return p
}

// classifyChassis maps an SMBIOS system enclosure type to a device class.
// Laptops and servers are desktop-class.
func classifyChassis(code int) DeviceClass {
	switch code {
	case 3, 4, 5, 6, 7, 8, 9, 10, 12, 13, 14, 15, 16, 17, 18, 19, 20, 21, 22, 23, 24, 25, 28, 29, 33, 34, 35, 36:
		return ClassDesktop
	case 11:
		return ClassPhone
	case 30, 31, 32:
		return ClassTablet
	default:
		return ClassUnknown
	}
}

// classifyAndroid maps the ro.build.characteristics property.
func classifyAndroid(characteristics string) DeviceClass {
	for _, c := range strings.Split(characteristics, ",") {
		switch strings.TrimSpace(c) {
		case "tv":
			return ClassTV
		case "tablet":
			return ClassTablet
		}
	}
	return ClassPhone
}

// classifyAppleModel maps an Apple hardware identifier (hw.model or
// hw.machine) to a device class.
func classifyAppleModel(model string) DeviceClass {
	switch {
	case strings.HasPrefix(model, "iPhone"), strings.HasPrefix(model, "iPod"):
		return ClassPhone
	case strings.HasPrefix(model, "iPad"):
		return ClassTablet
	case strings.HasPrefix(model, "AppleTV"):
		return ClassTV
	case strings.HasPrefix(model, "Mac"), strings.HasPrefix(model, "iMac"):
		return ClassDesktop
	default:
		return ClassUnknown
	}
}

// joinModel combines manufacturer and product, skipping placeholder values
// firmware vendors leave in unset fields.
func joinModel(manufacturer, product string) *string {
	manufacturer = cleanFirmwareString(manufacturer)
	product = cleanFirmwareString(product)
	switch {
	case manufacturer != "" && product != "":
		if strings.HasPrefix(strings.ToLower(product), strings.ToLower(manufacturer)) {
			return &product
		}
		return ptr(manufacturer + " " + product)
	case manufacturer != "":
		return &manufacturer
	case product != "":
		return &product
	}
	return nil
}

var firmwareFillers = []string{
	"to be filled by o.e.m.",
	"system product name",
	"system manufacturer",
	"default string",
	"not applicable",
	"not specified",
	"none",
	"o.e.m.",
}

func cleanFirmwareString(s string) string {
	s = strings.TrimSpace(s)
	lower := strings.ToLower(s)
	for _, f := range firmwareFillers {
		if lower == f {
			return ""
		}
	}
	return s
}
