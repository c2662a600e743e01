// Package ascii provides the device-type icons drawn beside the device card
// and the mapping from device class to icon.
package ascii

import "devicecard/sysinfo"

// Icon names a device-type glyph.
type Icon string

const (
	IconPhone      Icon = "cellphone"
	IconTablet     Icon = "tablet"
	IconTelevision Icon = "television"
	IconLaptop     Icon = "laptop"
)

// FallbackIcon is drawn for desktop-class, unknown and unclassifiable
// devices alike. Desktops have no glyph of their own, so a desktop is
// indistinguishable from an unknown device on the card.
const FallbackIcon = IconLaptop

// IconFor maps a device class to its icon.
//
// Parameters:
//   - class: The device class (nil when the device is unclassifiable)
//
// Returns:
//   - The icon for the class
//   - true when the icon is FallbackIcon chosen because no dedicated glyph
//     exists for the class
func IconFor(class *sysinfo.DeviceClass) (Icon, bool) {
	if class == nil {
		return FallbackIcon, true
	}

	switch *class {
	case sysinfo.ClassPhone:
		return IconPhone, false
	case sysinfo.ClassTablet:
		return IconTablet, false
	case sysinfo.ClassTV:
		return IconTelevision, false
	case sysinfo.ClassDesktop, sysinfo.ClassUnknown:
		return FallbackIcon, true
	default:
		return FallbackIcon, true
	}
}

// Art returns the glyph for icon, one string per line. compact selects the
// smaller variant.
func Art(icon Icon, compact bool) []string {
	if compact {
		return getCompactArt(icon)
	}

	switch icon {
	case IconPhone:
		return []string{
			" .---------. ",
			" |  _____  | ",
			" | |     | | ",
			" | |     | | ",
			" | |     | | ",
			" | |     | | ",
			" | |_____| | ",
			" |    o    | ",
			" '---------' ",
		}
	case IconTablet:
		return []string{
			" .-------------------. ",
			" | .---------------. | ",
			" | |               | | ",
			" | |               | | ",
			" | |               | | ",
			" | |               | | ",
			" | '---------------' | ",
			" |         o         | ",
			" '-------------------' ",
		}
	case IconTelevision:
		return []string{
			"      \\     /       ",
			"       \\   /        ",
			" .------'-'-------. ",
			" | .------------. | ",
			" | |            | | ",
			" | |            | | ",
			" | '------------' | ",
			" '----------------' ",
			"     _|      |_     ",
		}
	default:
		return []string{
			"    .--------------.    ",
			"    | .----------. |    ",
			"    | |          | |    ",
			"    | |          | |    ",
			"    | |          | |    ",
			"    | '----------' |    ",
			"  .-'--------------'-.  ",
			" /  ::::::::::::::::  \\ ",
			"'----------------------'",
		}
	}
}

// getCompactArt returns a three-line variant for narrow terminals.
func getCompactArt(icon Icon) []string {
	switch icon {
	case IconPhone:
		return []string{
			".---.",
			"|   |",
			"'-o-'",
		}
	case IconTablet:
		return []string{
			".-------.",
			"|       |",
			"'---o---'",
		}
	case IconTelevision:
		return []string{
			" \\ / ",
			"[===]",
			" ' ' ",
		}
	default:
		return []string{
			" .---. ",
			" |   | ",
			"'-----'",
		}
	}
}
