package main

import (
	"flag"
	"fmt"
	"io"
	"net"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"devicecard/logger"
	"devicecard/sysinfo"
)

// config holds the parsed command line, with DEVICECARD_* environment
// variables as defaults.
type config struct {
	TUI         bool
	JSON        bool
	Theme       string
	Compact     bool
	Gap         int
	Location    string
	GeoIPDB     string
	Coords      string
	WANIP       string
	NoWAN       bool
	StoragePath string
	Debug       bool
}

func parseConfig(args []string, stderr io.Writer) (config, error) {
	var cfg config

	fs := flag.NewFlagSet("devicecard", flag.ContinueOnError)
	fs.SetOutput(stderr)

	fs.BoolVar(&cfg.TUI, "tui", envBool("DEVICECARD_TUI"), "open the interactive, scrollable screen")
	fs.BoolVar(&cfg.JSON, "json", false, "print the device record as JSON")
	fs.StringVar(&cfg.Theme, "theme", envOr("DEVICECARD_THEME", "auto"), "color scheme: auto, dark or light")
	fs.BoolVar(&cfg.Compact, "compact", false, "use compact device icons")
	fs.IntVar(&cfg.Gap, "gap", 4, "number of spaces between icon and info")
	fs.StringVar(&cfg.Location, "location", envOr("DEVICECARD_LOCATION_PERMISSION", sysinfo.PolicyPrompt), "location permission: granted, denied or prompt")
	fs.StringVar(&cfg.GeoIPDB, "geoip-db", os.Getenv("DEVICECARD_GEOIP_DB"), "path to a GeoLite2-City .mmdb database")
	fs.StringVar(&cfg.Coords, "coords", os.Getenv("DEVICECARD_COORDS"), "fixed location as lat,lon instead of a GeoIP lookup")
	fs.StringVar(&cfg.WANIP, "wan-ip", os.Getenv("DEVICECARD_WAN_IP"), "public IP to geolocate instead of discovering it")
	fs.BoolVar(&cfg.NoWAN, "no-wan", envBool("DEVICECARD_NO_WAN"), "disable public WAN IP lookup")
	fs.StringVar(&cfg.StoragePath, "storage-path", envOr("DEVICECARD_STORAGE_PATH", sysinfo.DefaultStoragePath()), "filesystem to measure")
	fs.BoolVar(&cfg.Debug, "debug", envBool("DEVICECARD_DEBUG"), "enable debug logging")

	if err := fs.Parse(args); err != nil {
		return cfg, err
	}

	if cfg.TUI && cfg.JSON {
		return cfg, fmt.Errorf("-tui and -json are mutually exclusive")
	}
	if cfg.WANIP != "" && net.ParseIP(cfg.WANIP) == nil {
		return cfg, fmt.Errorf("invalid -wan-ip %q", cfg.WANIP)
	}

	return cfg, nil
}

// logConfig builds the logger configuration. The interactive screen owns the
// terminal, so unless LOG_OUTPUT says otherwise it logs to a file under the
// temp dir with -debug and nowhere without it.
func (c config) logConfig() logger.Config {
	logCfg := logger.DefaultConfig()
	if c.Debug {
		logCfg.Debug = true
	}

	if c.TUI && os.Getenv("LOG_OUTPUT") == "" {
		logCfg.Output = "discard"
		if c.Debug {
			logCfg.Output = filepath.Join(os.TempDir(), "devicecard.log")
		}
	}

	return logCfg
}

// locator builds the location provider: a fixed coordinate when one is
// configured, otherwise a GeoIP lookup.
func (c config) locator() (sysinfo.LocationQuery, error) {
	if c.Coords != "" {
		return sysinfo.ParseFixedLocator(c.Coords)
	}

	return &sysinfo.GeoIPLocator{
		DBPath:     c.GeoIPDB,
		PublicIP:   net.ParseIP(c.WANIP),
		DisableWAN: c.NoWAN,
		WAN:        sysinfo.NewWANResolver(),
	}, nil
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envBool(key string) bool {
	v, err := strconv.ParseBool(strings.TrimSpace(os.Getenv(key)))
	return err == nil && v
}
