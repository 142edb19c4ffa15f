package netns

import (
	"fmt"
	"os"

	cnins "github.com/containernetworking/plugins/pkg/ns"

	"github.com/dimasg/namespaced-openvpn/internal/platform"
)

const disableIPv6Sysctl = "/proc/sys/net/ipv6/conf/all/disable_ipv6"

// Do runs fn with the calling thread switched into the named namespace, then
// restores the original namespace.
func Do(name string, fn func() error) error {
	return cnins.WithNetNSPath(platform.NetnsPath(name), func(cnins.NetNS) error {
		return fn()
	})
}

// DisableIPv6 turns IPv6 off inside the named namespace so that no IPv6
// traffic can slip around the IPv4-only tunnel. /proc/sys/net resolves
// against the network namespace of the opening thread, so the write must
// happen from inside the namespace. A kernel without IPv6 has nothing to
// disable and is not an error.
func DisableIPv6(name string) error {
	err := Do(name, func() error {
		if err := os.WriteFile(disableIPv6Sysctl, []byte("1"), 0644); err != nil {
			if os.IsNotExist(err) {
				return nil
			}
			return err
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("disable ipv6 in netns %s: %w", name, err)
	}
	return nil
}
