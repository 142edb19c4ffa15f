package netns

import (
	"fmt"
	"net"
	"strings"
)

// ParseIPv4 parses an IPv4 host address, accepting either plain dotted-quad
// or CIDR notation (the prefix length is discarded). OpenVPN supplies both
// forms depending on topology.
func ParseIPv4(s string) (net.IP, error) {
	host := s
	if i := strings.IndexByte(s, '/'); i >= 0 {
		host = s[:i]
	}
	ip := net.ParseIP(host)
	if ip == nil || ip.To4() == nil {
		return nil, fmt.Errorf("invalid IPv4 address %q", s)
	}
	return ip.To4(), nil
}
