package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dimasg/namespaced-openvpn/internal/dnscfg"
	"github.com/dimasg/namespaced-openvpn/internal/netns"
	"github.com/dimasg/namespaced-openvpn/internal/openvpn"
	"github.com/dimasg/namespaced-openvpn/internal/platform"
)

// route-up is the re-entrant phase: openvpn calls this binary back once the
// tunnel is up and addressed. Every step is fatal on failure — a partially
// confined tunnel is worse than no tunnel, and the non-zero exit propagates
// to openvpn, which treats it as a fatal tunnel-up failure.
func newRouteUpCmd() *cobra.Command {
	return &cobra.Command{
		Use:    "route-up <namespace> <dns-mode> <hook-token>",
		Short:  "Route-up hook entry (called by openvpn, not user-facing)",
		Hidden: true,
		Args:   cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !openvpn.IsRouteUpInvocation() {
				return fmt.Errorf("not invoked by openvpn as a route-up hook (%s=%q)",
					openvpn.ScriptTypeVar, os.Getenv(openvpn.ScriptTypeVar))
			}
			namespace, dnsMode, token := args[0], args[1], args[2]
			logger := platform.NewLogger("info")

			env, err := openvpn.ReadRouteUpEnv()
			if err != nil {
				return err
			}
			local, err := netns.ParseIPv4(env.Local)
			if err != nil {
				return fmt.Errorf("ifconfig_local: %w", err)
			}
			gateway, err := netns.ParseIPv4(env.Gateway)
			if err != nil {
				return fmt.Errorf("route_vpn_gateway: %w", err)
			}

			logger.Info("confining tunnel",
				"dev", env.Device, "namespace", namespace,
				"local", env.Local, "gateway", env.Gateway)

			if err := netns.Ensure(namespace); err != nil {
				return err
			}
			if err := netns.DisableIPv6(namespace); err != nil {
				return err
			}

			h, err := netns.Open(namespace)
			if err != nil {
				return err
			}
			defer h.Close()

			if err := h.MoveIn(env.Device); err != nil {
				return err
			}
			if err := h.AssignPointToPoint(env.Device, local, gateway); err != nil {
				return err
			}
			if err := h.InstallDefaultRoute(env.Device, gateway, local); err != nil {
				return err
			}

			servers, err := dnscfg.Nameservers(dnsMode, openvpn.ForeignOptions())
			if err != nil {
				return err
			}
			resolvPath := platform.ResolvConf(namespace)
			if len(servers) == 0 {
				logger.Warn("no nameservers resolved, writing empty resolver file", "path", resolvPath)
			}
			if err := dnscfg.WriteResolvConf(resolvPath, servers); err != nil {
				return err
			}

			// Replay the user's original hook, in the root namespace, with
			// one layer of quoting stripped.
			original, ok, err := openvpn.DecodeHook(token)
			if err != nil {
				return err
			}
			if ok {
				line := openvpn.UnquoteOnce(original)
				logger.Info("replaying original route-up hook", "command", line)
				if err := platform.RunShell(cmd.Context(), line); err != nil {
					return fmt.Errorf("original route-up hook: %w", err)
				}
			}

			logger.Info("tunnel confined", "namespace", namespace, "nameservers", len(servers))
			return nil
		},
	}
}
