package netns_test

import (
	"testing"

	"github.com/dimasg/namespaced-openvpn/internal/netns"
)

func TestParseIPv4(t *testing.T) {
	cases := []struct {
		in   string
		want string
		ok   bool
	}{
		{"10.8.0.2", "10.8.0.2", true},
		{"10.8.0.2/24", "10.8.0.2", true},
		{"192.168.1.1/32", "192.168.1.1", true},
		{"fe80::1", "", false},
		{"not-an-address", "", false},
		{"", "", false},
		{"/24", "", false},
	}
	for _, c := range cases {
		ip, err := netns.ParseIPv4(c.in)
		if c.ok {
			if err != nil {
				t.Errorf("ParseIPv4(%q): unexpected error %v", c.in, err)
				continue
			}
			if ip.String() != c.want {
				t.Errorf("ParseIPv4(%q) = %s, want %s", c.in, ip, c.want)
			}
		} else if err == nil {
			t.Errorf("ParseIPv4(%q): expected error, got %s", c.in, ip)
		}
	}
}
