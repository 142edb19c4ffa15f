package platform

import "path/filepath"

const (
	// Base directories.
	ConfigDir  = "/etc/namespaced-openvpn"
	ConfigFile = ConfigDir + "/config.yaml"

	// Named network namespaces live under /run/netns. Per-namespace
	// configuration, bind-mounted by `ip netns exec`, lives under /etc/netns.
	NetnsRunDir = "/run/netns"
	NetnsEtcDir = "/etc/netns"
)

// NetnsPath returns the filesystem path of a named network namespace.
func NetnsPath(name string) string {
	return filepath.Join(NetnsRunDir, name)
}

// ResolvConf returns the path of the namespace-scoped resolver file.
func ResolvConf(name string) string {
	return filepath.Join(NetnsEtcDir, name, "resolv.conf")
}
