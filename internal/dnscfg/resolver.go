package dnscfg

import (
	"fmt"
	"net"
	"os"
	"path/filepath"
	"strings"
)

// ModePush selects nameservers pushed by the VPN server via DHCP options.
// Any other mode string is treated as a comma-separated IPv4 address list.
const ModePush = "push"

// maxPushedNameservers caps how many server-pushed DNS options are honored.
const maxPushedNameservers = 2

// Nameservers resolves the desired nameserver set for the given DNS mode.
// In push mode the server-pushed foreign options are scanned for
// "dhcp-option DNS <addr>" entries, keeping at most two in order of
// appearance; otherwise the mode itself is split as an explicit override
// list and each address validated.
func Nameservers(mode string, foreignOptions []string) ([]string, error) {
	if mode == ModePush {
		return fromForeignOptions(foreignOptions), nil
	}
	var servers []string
	for _, s := range strings.Split(mode, ",") {
		s = strings.TrimSpace(s)
		if s == "" {
			continue
		}
		ip := net.ParseIP(s)
		if ip == nil || ip.To4() == nil {
			return nil, fmt.Errorf("invalid nameserver address %q in DNS mode", s)
		}
		servers = append(servers, s)
	}
	return servers, nil
}

func fromForeignOptions(opts []string) []string {
	var servers []string
	for _, opt := range opts {
		if len(servers) == maxPushedNameservers {
			break
		}
		fields := strings.Fields(opt)
		if len(fields) == 3 && fields[0] == "dhcp-option" && fields[1] == "DNS" {
			servers = append(servers, fields[2])
		}
	}
	return servers
}

// WriteResolvConf persists the nameserver list as the namespace-scoped
// resolver file, creating parent directories as needed. The file is written
// even when the list is empty so that the bind mount performed by
// `ip netns exec` always has a target.
func WriteResolvConf(path string, servers []string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("create resolver dir: %w", err)
	}
	var b strings.Builder
	for _, s := range servers {
		fmt.Fprintf(&b, "nameserver %s\n", s)
	}
	if err := os.WriteFile(path, []byte(b.String()), 0644); err != nil {
		return fmt.Errorf("write resolver file: %w", err)
	}
	return nil
}

// ReadResolvConf reads the nameserver addresses back out of a resolver file.
func ReadResolvConf(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read resolver file: %w", err)
	}
	var servers []string
	for _, line := range strings.Split(string(data), "\n") {
		fields := strings.Fields(line)
		if len(fields) == 2 && fields[0] == "nameserver" {
			servers = append(servers, fields[1])
		}
	}
	return servers, nil
}
