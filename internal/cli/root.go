package cli

import (
	"github.com/spf13/cobra"
)

// version is set at build time via ldflags.
var version = "dev"

func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "namespaced-openvpn",
		Short: "Run OpenVPN with its tunnel confined to a network namespace",
		Long: `namespaced-openvpn launches an OpenVPN client and, the moment the tunnel
comes up, moves the tunnel adapter with its addressing, default route, and
DNS into a dedicated network namespace. Processes started inside that
namespace can only reach the network through the tunnel; the root namespace
keeps its original routing table so signals to the openvpn process keep
working.`,
	}
	root.CompletionOptions.DisableDefaultCmd = true

	root.AddCommand(
		newRunCmd(),
		newRouteUpCmd(),
		newStatusCmd(),
		newCheckCmd(),
		newVersionCmd(),
	)

	return root
}

// SetVersion sets the version string (called from main).
func SetVersion(v string) {
	version = v
}
