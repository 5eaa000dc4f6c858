package network

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name   string
		ifaces []Interface
		want   *Info
	}{
		{
			name: "wifi",
			ifaces: []Interface{
				{Name: "lo", Up: true, Loop: true, Addrs: []string{"127.0.0.1/8"}},
				{Name: "wlan0", Up: true, Addrs: []string{"fe80::1/64", "192.168.1.23/24"}},
			},
			want: &Info{Type: TypeWiFi, Interface: "wlan0", IPv4: "192.168.1.23"},
		},
		{
			name: "mobile",
			ifaces: []Interface{
				{Name: "wlan0", Up: false, Addrs: []string{"192.168.1.23/24"}},
				{Name: "rmnet_data0", Up: true, Addrs: []string{"10.64.3.7/30"}},
			},
			want: &Info{Type: TypeMobile, Interface: "rmnet_data0", IPv4: "10.64.3.7"},
		},
		{
			name: "ethernet bare address",
			ifaces: []Interface{
				{Name: "eth0", Up: true, Addrs: []string{"172.16.0.5"}},
			},
			want: &Info{Type: TypeEthernet, Interface: "eth0", IPv4: "172.16.0.5"},
		},
		{
			name: "ipv6 only",
			ifaces: []Interface{
				{Name: "wlan0", Up: true, Addrs: []string{"2001:db8::1/64"}},
			},
			want: &Info{Type: TypeDisconnected, IPv4: Unavailable},
		},
		{
			name: "nothing",
			want: &Info{Type: TypeDisconnected, IPv4: Unavailable},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.ifaces))
		})
	}
}
