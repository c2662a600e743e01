//go:build windows

package sysinfo

import (
	"strconv"
	"strings"
	"time"

	"golang.org/x/sys/windows"
	"golang.org/x/sys/windows/registry"
)

const currentVersionKey = `SOFTWARE\Microsoft\Windows NT\CurrentVersion`

func readPlatformDetails() platformDetails {
	var d platformDetails

	d.osName = windowsProductName()
	d.osVersion = windowsDisplayVersion()
	d.model = windowsModel()
	d.class = windowsChassisClass()

	return d
}

// windowsProductName reads the product name (e.g. "Windows 11 Pro"). Windows
// 11 still reports "Windows 10" in the registry, so the build number from
// RtlGetVersion disambiguates.
func windowsProductName() *string {
	productName := getRegistryString(registry.LOCAL_MACHINE, currentVersionKey, "ProductName")
	if productName == "" {
		return nil
	}

	build := uint32(0)
	if v := windows.RtlGetVersion(); v != nil {
		build = v.BuildNumber
	}
	if build == 0 {
		if n, err := strconv.Atoi(getRegistryString(registry.LOCAL_MACHINE, currentVersionKey, "CurrentBuild")); err == nil {
			build = uint32(n)
		}
	}

	if build >= 22000 && strings.Contains(strings.ToLower(productName), "windows 10") {
		productName = strings.Replace(productName, "Windows 10", "Windows 11", 1)
	}

	return &productName
}

// windowsDisplayVersion returns e.g. "23H2 (Build 22631)".
func windowsDisplayVersion() *string {
	display := getRegistryString(registry.LOCAL_MACHINE, currentVersionKey, "DisplayVersion")
	build := getRegistryString(registry.LOCAL_MACHINE, currentVersionKey, "CurrentBuild")

	switch {
	case display != "" && build != "":
		return ptr(display + " (Build " + build + ")")
	case display != "":
		return &display
	case build != "":
		return ptr("Build " + build)
	}
	return nil
}

func windowsModel() *string {
	manufacturer := getRegistryString(registry.LOCAL_MACHINE, `SYSTEM\CurrentControlSet\Control\SystemInformation`, "SystemManufacturer")
	model := getRegistryString(registry.LOCAL_MACHINE, `SYSTEM\CurrentControlSet\Control\SystemInformation`, "SystemProductName")

	if manufacturer == "" {
		manufacturer = getRegistryString(registry.LOCAL_MACHINE, `HARDWARE\DESCRIPTION\System\BIOS`, "SystemManufacturer")
	}
	if model == "" {
		model = getRegistryString(registry.LOCAL_MACHINE, `HARDWARE\DESCRIPTION\System\BIOS`, "SystemProductName")
	}

	return joinModel(manufacturer, model)
}

// windowsChassisClass asks CIM for the enclosure type; the registry does not
// carry it.
func windowsChassisClass() *DeviceClass {
	var enclosure struct {
		ChassisTypes []int
	}

	psCmd := "Get-CimInstance Win32_SystemEnclosure | Select-Object -First 1 -Property ChassisTypes | ConvertTo-Json -Compress"
	if _, err := runPowerShellJSON(psCmd, 1500*time.Millisecond, &enclosure); err != nil {
		return nil
	}
	if len(enclosure.ChassisTypes) == 0 {
		return ptr(ClassUnknown)
	}

	return ptr(classifyChassis(enclosure.ChassisTypes[0]))
}

func getRegistryString(key registry.Key, path string, valueName string) string {
	k, err := registry.OpenKey(key, path, registry.QUERY_VALUE)
	if err != nil {
		return ""
	}
	defer func() { _ = k.Close() }()

	value, _, err := k.GetStringValue(valueName)
	if err != nil {
		return ""
	}

	return strings.TrimSpace(value)
}
