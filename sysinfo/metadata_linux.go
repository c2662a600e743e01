//go:build linux

package sysinfo

import (
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"
	"time"

	"golang.org/x/sys/unix"
)

// dmiDir holds the firmware identification files exported by the kernel.
var dmiDir = "/sys/class/dmi/id"

// readPlatformDetails covers Linux and Android (GOOS=android builds with the
// linux tag as well).
func readPlatformDetails() platformDetails {
	var d platformDetails

	var u unix.Utsname
	if err := unix.Uname(&u); err == nil {
		d.fallbackOSName = nonEmpty(unix.ByteSliceToString(u.Sysname[:]))
		d.fallbackOSVersion = nonEmpty(unix.ByteSliceToString(u.Release[:]))
	}

	if runtime.GOOS == "android" {
		return readAndroidDetails(d)
	}

	return readDMIDetails(d, dmiDir)
}

func readDMIDetails(d platformDetails, dir string) platformDetails {
	d.model = joinModel(readDMI(dir, "sys_vendor"), readDMI(dir, "product_name"))

	if raw := readDMI(dir, "chassis_type"); raw != "" {
		if code, err := strconv.Atoi(raw); err == nil {
			d.class = ptr(classifyChassis(code))
		} else {
			d.class = ptr(ClassUnknown)
		}
	}

	return d
}

func readDMI(dir, name string) string {
	b, err := os.ReadFile(filepath.Join(dir, name))
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(b))
}

func readAndroidDetails(d platformDetails) platformDetails {
	d.osName = ptr("Android")
	d.osVersion = nonEmpty(getprop("ro.build.version.release"))
	d.model = joinModel(getprop("ro.product.manufacturer"), getprop("ro.product.model"))
	d.class = ptr(classifyAndroid(getprop("ro.build.characteristics")))
	return d
}

func getprop(name string) string {
	ctx, cancel := context.WithTimeout(context.Background(), 500*time.Millisecond)
	defer cancel()

	out, err := exec.CommandContext(ctx, "getprop", name).Output()
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(out))
}
