package sysinfo

import (
	"context"
	"io"
	"net"
	"net/http"
	"slices"
	"strings"
	"time"

	psnet "github.com/shirou/gopsutil/v3/net"
)

var (
	// Interfaces whose names contain any of these are never reported.
	virtualInterfaceNames = []string{"vmware", "vbox", "virtual", "veth", "docker", "hyper-v", "loopback", "hamachi", "tunnel", "br-", "virbr"}

	// Preferred interface name fragments, wired first, then Wi-Fi.
	preferredInterfaceNames = []string{"eth", "ethernet", "lan", "en", "wi", "wlan", "wifi", "wireless"}

	defaultWANServices = []string{
		"https://api.ipify.org",
		"https://icanhazip.com",
	}
)

// HostNetwork resolves the host's primary local IPv4 address.
type HostNetwork struct {
	// Probe is the address used to discover the outbound route.
	Probe string

	// DialTimeout bounds the route probe.
	DialTimeout time.Duration

	// interfaces lists interfaces; replaced in tests.
	interfaces func(ctx context.Context) (psnet.InterfaceStatList, error)
}

// NewHostNetwork returns a HostNetwork probing the default route via 8.8.8.8.
func NewHostNetwork() *HostNetwork {
	return &HostNetwork{
		Probe:       "8.8.8.8:53",
		DialTimeout: 500 * time.Millisecond,
		interfaces:  psnet.InterfacesWithContext,
	}
}

// Address implements NetworkQuery.
//
// The outbound route is tried first: a UDP "connection" to the probe
// address selects the local address the kernel would use, which avoids
// virtual adapters that carry no traffic. A private (RFC1918) answer wins
// immediately; otherwise the interfaces are scanned, preferring
// wired/wireless names, and the non-private route address is the last
// resort.
func (h *HostNetwork) Address(ctx context.Context) (string, error) {
	var nonPrivateCandidate string

	d := net.Dialer{Timeout: h.DialTimeout}
	if conn, err := d.DialContext(ctx, "udp", h.Probe); err == nil {
		if ua, ok := conn.LocalAddr().(*net.UDPAddr); ok {
			ip4 := ua.IP.To4()
			if ip4 != nil && !ip4.IsLoopback() {
				if isPrivateIP(ip4) {
					_ = conn.Close()
					return ip4.String(), nil
				}
				nonPrivateCandidate = ip4.String()
			}
		}
		_ = conn.Close()
	}

	if ip := h.scanInterfaces(ctx); ip != "" {
		return ip, nil
	}

	if nonPrivateCandidate != "" {
		return nonPrivateCandidate, nil
	}

	return "", ErrNoAddress
}

func (h *HostNetwork) scanInterfaces(ctx context.Context) string {
	list := h.interfaces
	if list == nil {
		list = psnet.InterfacesWithContext
	}

	ifaces, err := list(ctx)
	if err != nil {
		return ""
	}

	type candidate struct {
		name string
		ip   string
	}

	var candidates []candidate

	for _, iface := range ifaces {
		if !slices.Contains(iface.Flags, "up") || slices.Contains(iface.Flags, "loopback") {
			continue
		}
		lname := strings.ToLower(iface.Name)
		if slices.ContainsFunc(virtualInterfaceNames, func(bad string) bool {
			return strings.Contains(lname, bad)
		}) {
			continue
		}
		for _, a := range iface.Addrs {
			ip, _, err := net.ParseCIDR(a.Addr)
			if err != nil {
				ip = net.ParseIP(a.Addr)
			}
			if ip == nil {
				continue
			}
			ip4 := ip.To4()
			if ip4 == nil || ip4.IsLoopback() {
				continue
			}
			candidates = append(candidates, candidate{iface.Name, ip4.String()})
		}
	}

	for _, pref := range preferredInterfaceNames {
		for _, c := range candidates {
			if strings.Contains(strings.ToLower(c.name), pref) {
				return c.ip
			}
		}
	}

	if len(candidates) > 0 {
		return candidates[0].ip
	}

	return ""
}

// isPrivateIP checks for RFC1918 addresses (10/8, 172.16/12, 192.168/16)
func isPrivateIP(ip net.IP) bool {
	if ip4 := ip.To4(); ip4 != nil {
		b0 := ip4[0]
		b1 := ip4[1]
		switch {
		case b0 == 10:
			return true
		case b0 == 172 && b1 >= 16 && b1 <= 31:
			return true
		case b0 == 192 && b1 == 168:
			return true
		}
	}
	return false
}

// WANResolver discovers the host's public IP address by asking a short list
// of echo services in order.
type WANResolver struct {
	Services []string
	Client   *http.Client
}

// NewWANResolver returns a resolver using the default echo services with a
// short per-request timeout.
func NewWANResolver() *WANResolver {
	return &WANResolver{
		Services: defaultWANServices,
		Client:   &http.Client{Timeout: 1500 * time.Millisecond},
	}
}

// PublicIP returns the first valid address any service answers with.
func (w *WANResolver) PublicIP(ctx context.Context) (net.IP, error) {
	client := w.Client
	if client == nil {
		client = http.DefaultClient
	}

	for _, url := range w.Services {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, http.NoBody)
		if err != nil {
			continue
		}
		resp, err := client.Do(req)
		if err != nil {
			continue
		}
		body, err := io.ReadAll(io.LimitReader(resp.Body, 256))
		_ = resp.Body.Close()
		if err != nil || resp.StatusCode != http.StatusOK {
			continue
		}
		if ip := net.ParseIP(strings.TrimSpace(string(body))); ip != nil {
			return ip, nil
		}
	}

	return nil, ErrNoWANAddress
}
