package sysinfo

import (
	"errors"
	"testing"

	"github.com/shirou/gopsutil/v3/host"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassifyChassisIsTotal(t *testing.T) {
	for code := -1; code <= 64; code++ {
		class := classifyChassis(code)
		_, known := deviceClassNames[class]
		assert.True(t, known, "chassis %d", code)
	}

	assert.Equal(t, ClassDesktop, classifyChassis(3))
	assert.Equal(t, ClassDesktop, classifyChassis(10))
	assert.Equal(t, ClassPhone, classifyChassis(11))
	assert.Equal(t, ClassTablet, classifyChassis(30))
	assert.Equal(t, ClassTablet, classifyChassis(32))
	assert.Equal(t, ClassUnknown, classifyChassis(1))
	assert.Equal(t, ClassUnknown, classifyChassis(2))
}

func TestClassifyAndroid(t *testing.T) {
	assert.Equal(t, ClassTV, classifyAndroid("tv"))
	assert.Equal(t, ClassTablet, classifyAndroid("nosdcard,tablet"))
	assert.Equal(t, ClassPhone, classifyAndroid("default"))
	assert.Equal(t, ClassPhone, classifyAndroid(""))
}

func TestClassifyAppleModel(t *testing.T) {
	assert.Equal(t, ClassPhone, classifyAppleModel("iPhone15,2"))
	assert.Equal(t, ClassTablet, classifyAppleModel("iPad13,4"))
	assert.Equal(t, ClassTV, classifyAppleModel("AppleTV11,1"))
	assert.Equal(t, ClassDesktop, classifyAppleModel("MacBookPro18,3"))
	assert.Equal(t, ClassUnknown, classifyAppleModel("Watch6,1"))
}

func TestJoinModel(t *testing.T) {
	assert.Equal(t, "Dell Inc. XPS 15 9520", *joinModel("Dell Inc.", "XPS 15 9520"))
	assert.Equal(t, "LENOVO ThinkPad", *joinModel("LENOVO", "LENOVO ThinkPad"))
	assert.Equal(t, "QEMU", *joinModel("QEMU", "To be filled by O.E.M."))
	assert.Equal(t, "Standard PC", *joinModel(" ", "Standard PC"))
	assert.Nil(t, joinModel("System manufacturer", "System Product Name"))
}

func TestParseDeviceClass(t *testing.T) {
	for class, name := range deviceClassNames {
		got, ok := ParseDeviceClass(name)
		require.True(t, ok)
		assert.Equal(t, class, got)
		assert.Equal(t, name, class.String())
	}

	got, ok := ParseDeviceClass(" tablet ")
	assert.True(t, ok)
	assert.Equal(t, ClassTablet, got)

	_, ok = ParseDeviceClass("watch")
	assert.False(t, ok)
	assert.Equal(t, "UNKNOWN", DeviceClass(99).String())
}

func TestHostMetadataMerges(t *testing.T) {
	desktop := ClassDesktop
	h := &HostMetadata{
		hostInfo: func() (*host.InfoStat, error) {
			return &host.InfoStat{OS: "linux", Platform: "ubuntu", PlatformVersion: "24.04", KernelVersion: "6.8.0"}, nil
		},
		platform: func() platformDetails {
			return platformDetails{class: &desktop, model: ptr("Framework Laptop 13")}
		},
	}

	meta := h.Metadata()

	require.NotNil(t, meta.DeviceClass)
	assert.Equal(t, ClassDesktop, *meta.DeviceClass)
	assert.Equal(t, "Ubuntu", FormatString(meta.OSName))
	assert.Equal(t, "24.04", FormatString(meta.OSVersion))
	assert.Equal(t, "Framework Laptop 13", FormatString(meta.ModelName))
}

func TestHostMetadataPlatformOverridesAndFallbacks(t *testing.T) {
	h := &HostMetadata{
		hostInfo: func() (*host.InfoStat, error) {
			return nil, errors.New("host info unavailable")
		},
		platform: func() platformDetails {
			return platformDetails{
				osName:            ptr("Android"),
				fallbackOSName:    ptr("Linux"),
				fallbackOSVersion: ptr("5.15.0"),
			}
		},
	}

	meta := h.Metadata()

	assert.Equal(t, "Android", FormatString(meta.OSName))
	assert.Equal(t, "5.15.0", FormatString(meta.OSVersion))
	assert.Nil(t, meta.DeviceClass)
	assert.Nil(t, meta.ModelName)
}

func TestHostMetadataNothingAvailable(t *testing.T) {
	meta := (&HostMetadata{}).Metadata()

	assert.Equal(t, Metadata{}, meta)
}

func TestPrettyPlatform(t *testing.T) {
	assert.Equal(t, "Ubuntu", prettyPlatform("ubuntu"))
	assert.Equal(t, "macOS", prettyPlatform("darwin"))
	assert.Equal(t, "Microsoft Windows 11 Pro", prettyPlatform("Microsoft Windows 11 Pro"))
	assert.Equal(t, "", prettyPlatform(""))
}
