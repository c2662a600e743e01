//go:build darwin

package sysinfo

import (
	"runtime"

	"golang.org/x/sys/unix"
)

// readPlatformDetails covers macOS and iOS. Macs report their identifier in
// hw.model; iPhones and iPads in hw.machine.
func readPlatformDetails() platformDetails {
	var d platformDetails

	key := "hw.model"
	if runtime.GOOS == "ios" {
		key = "hw.machine"
		d.osName = ptr("iOS")
	}

	if model, err := unix.Sysctl(key); err == nil {
		d.model = joinModel("Apple", model)
		d.class = ptr(classifyAppleModel(model))
	} else if runtime.GOOS == "ios" {
		d.class = ptr(ClassPhone)
	}

	if release, err := unix.Sysctl("kern.osrelease"); err == nil {
		d.fallbackOSVersion = nonEmpty(release)
	}
	d.fallbackOSName = ptr("Darwin")

	return d
}
