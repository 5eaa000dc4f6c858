package network

import (
	"context"
	"net"
	"strings"

	psnet "github.com/shirou/gopsutil/v3/net"
)

// Connection types as shown to the user
const (
	TypeWiFi         = "Wi-Fi"
	TypeMobile       = "Mobile Data"
	TypeEthernet     = "Ethernet"
	TypeDisconnected = "Disconnected"

	Unavailable = "Unavailable"
)

// Info describes the active connection
type Info struct {
	Type      string `json:"type"`
	Interface string `json:"interface,omitempty"`
	IPv4      string `json:"ipv4"`
}

// Interface is the subset of interface state we classify on
type Interface struct {
	Name  string
	Up    bool
	Loop  bool
	Addrs []string // CIDR or bare addresses
}

// Reader reads network state
type Reader interface {
	GetInfo(ctx context.Context) (*Info, error)
}

type gopsutilReader struct{}

// NewReader creates a reader backed by the host's interface list
func NewReader() Reader {
	return &gopsutilReader{}
}

func (gopsutilReader) GetInfo(ctx context.Context) (*Info, error) {
	stats, err := psnet.InterfacesWithContext(ctx)
	if err != nil {
		return nil, err
	}

	ifaces := make([]Interface, 0, len(stats))
	for _, s := range stats {
		iface := Interface{Name: s.Name}
		for _, flag := range s.Flags {
			switch flag {
			case "up":
				iface.Up = true
			case "loopback":
				iface.Loop = true
			}
		}
		for _, a := range s.Addrs {
			iface.Addrs = append(iface.Addrs, a.Addr)
		}
		ifaces = append(ifaces, iface)
	}

	return Classify(ifaces), nil
}

// Classify picks the first up, non-loopback interface with an IPv4 address.
func Classify(ifaces []Interface) *Info {
	for _, iface := range ifaces {
		if !iface.Up || iface.Loop {
			continue
		}
		ip := firstIPv4(iface.Addrs)
		if ip == "" {
			continue
		}
		return &Info{
			Type:      connectionType(iface.Name),
			Interface: iface.Name,
			IPv4:      ip,
		}
	}

	return &Info{Type: TypeDisconnected, IPv4: Unavailable}
}

func connectionType(name string) string {
	switch {
	case hasAnyPrefix(name, "wl", "wifi", "ath"):
		return TypeWiFi
	case hasAnyPrefix(name, "rmnet", "ccmni", "wwan", "pdp", "ppp", "seth", "v4-rmnet"):
		return TypeMobile
	default:
		return TypeEthernet
	}
}

func firstIPv4(addrs []string) string {
	for _, a := range addrs {
		host := a
		if ip, _, err := net.ParseCIDR(a); err == nil {
			host = ip.String()
		}
		ip := net.ParseIP(host)
		if ip != nil && ip.To4() != nil {
			return ip.String()
		}
	}
	return ""
}

func hasAnyPrefix(s string, prefixes ...string) bool {
	for _, p := range prefixes {
		if strings.HasPrefix(s, p) {
			return true
		}
	}
	return false
}
