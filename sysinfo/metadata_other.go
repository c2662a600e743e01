//go:build !linux && !windows && !darwin

package sysinfo

// readPlatformDetails has no native model or chassis source here; the
// generic host information still fills the OS fields.
func readPlatformDetails() platformDetails {
	return platformDetails{}
}
