package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"devicecard/sysinfo"
)

func TestParseConfigDefaults(t *testing.T) {
	t.Setenv("DEVICECARD_LOCATION_PERMISSION", "")
	t.Setenv("DEVICECARD_THEME", "")
	t.Setenv("DEVICECARD_TUI", "")

	cfg, err := parseConfig(nil, &bytes.Buffer{})
	require.NoError(t, err)

	assert.Equal(t, sysinfo.PolicyPrompt, cfg.Location)
	assert.Equal(t, "auto", cfg.Theme)
	assert.Equal(t, 4, cfg.Gap)
	assert.False(t, cfg.TUI)
	assert.Equal(t, sysinfo.DefaultStoragePath(), cfg.StoragePath)
}

func TestParseConfigEnvFallbacks(t *testing.T) {
	t.Setenv("DEVICECARD_LOCATION_PERMISSION", "granted")
	t.Setenv("DEVICECARD_NO_WAN", "true")
	t.Setenv("DEVICECARD_THEME", "light")

	cfg, err := parseConfig([]string{"-theme", "dark"}, &bytes.Buffer{})
	require.NoError(t, err)

	assert.Equal(t, "granted", cfg.Location)
	assert.True(t, cfg.NoWAN)
	assert.Equal(t, "dark", cfg.Theme)
}

func TestParseConfigRejects(t *testing.T) {
	_, err := parseConfig([]string{"-tui", "-json"}, &bytes.Buffer{})
	assert.Error(t, err)

	_, err = parseConfig([]string{"-wan-ip", "not-an-ip"}, &bytes.Buffer{})
	assert.Error(t, err)
}

func TestLocatorSelection(t *testing.T) {
	fixed, err := config{Coords: "1.5,2.5"}.locator()
	require.NoError(t, err)
	assert.IsType(t, &sysinfo.FixedLocator{}, fixed)

	geo, err := config{GeoIPDB: "city.mmdb", WANIP: "203.0.113.9", NoWAN: true}.locator()
	require.NoError(t, err)
	require.IsType(t, &sysinfo.GeoIPLocator{}, geo)
	g := geo.(*sysinfo.GeoIPLocator)
	assert.Equal(t, "203.0.113.9", g.PublicIP.String())
	assert.True(t, g.DisableWAN)

	_, err = config{Coords: "north"}.locator()
	assert.ErrorIs(t, err, sysinfo.ErrInvalidCoordinate)
}

func TestLogConfigKeepsTerminalClearInTUI(t *testing.T) {
	t.Setenv("LOG_OUTPUT", "")

	assert.Equal(t, "stderr", config{}.logConfig().Output)
	assert.Equal(t, "discard", config{TUI: true}.logConfig().Output)

	debug := config{TUI: true, Debug: true}.logConfig()
	assert.True(t, debug.Debug)
	assert.Equal(t, filepath.Join(os.TempDir(), "devicecard.log"), debug.Output)

	t.Setenv("LOG_OUTPUT", "stdout")
	assert.Equal(t, "stdout", config{TUI: true, Debug: true}.logConfig().Output)
}

func TestRunJSON(t *testing.T) {
	var stdout, stderr bytes.Buffer

	code := run([]string{
		"-json",
		"-location", "granted",
		"-coords", "37.4219999,-122.0840575",
		"-storage-path", t.TempDir(),
	}, strings.NewReader(""), &stdout, &stderr)
	require.Equal(t, 0, code, stderr.String())

	var rec sysinfo.Record
	require.NoError(t, json.Unmarshal(stdout.Bytes(), &rec))
	require.NotNil(t, rec.Coordinate)
	assert.Equal(t, "37.422000, -122.084058", sysinfo.FormatCoordinate(rec.Coordinate))
	assert.NotNil(t, rec.TotalStorage)
	assert.NotNil(t, rec.FreeStorage)
}

func TestRunDeniedLocationPrintsPlaceholder(t *testing.T) {
	var stdout, stderr bytes.Buffer

	code := run([]string{
		"-theme", "dark",
		"-location", "denied",
		"-coords", "37.4219999,-122.0840575",
		"-storage-path", t.TempDir(),
	}, strings.NewReader(""), &stdout, &stderr)
	require.Equal(t, 0, code, stderr.String())

	assert.Contains(t, stdout.String(), "Device Info")
	assert.NotContains(t, stdout.String(), "37.422000")
	assert.Contains(t, stdout.String(), sysinfo.Placeholder)
}

func TestRunPromptAnsweredNo(t *testing.T) {
	var stdout, stderr bytes.Buffer

	code := run([]string{
		"-json",
		"-coords", "1,2",
		"-storage-path", t.TempDir(),
	}, strings.NewReader("n\n"), &stdout, &stderr)
	require.Equal(t, 0, code, stderr.String())

	assert.Contains(t, stderr.String(), "Allow location lookup?")
	assert.NotContains(t, stdout.String(), "coordinate")
}

func TestRunConfigErrors(t *testing.T) {
	var stdout, stderr bytes.Buffer

	assert.Equal(t, 2, run([]string{"-theme", "sepia"}, nil, &stdout, &stderr))
	assert.Equal(t, 2, run([]string{"-location", "maybe"}, nil, &stdout, &stderr))
	assert.Equal(t, 0, run([]string{"-h"}, nil, &stdout, &stderr))
}
