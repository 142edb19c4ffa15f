package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dimasg/namespaced-openvpn/internal/config"
	"github.com/dimasg/namespaced-openvpn/internal/dnscfg"
	"github.com/dimasg/namespaced-openvpn/internal/netns"
	"github.com/dimasg/namespaced-openvpn/internal/platform"
)

func newCheckCmd() *cobra.Command {
	var namespace, domain string

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Resolve a probe domain through the namespace's nameservers",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(platform.ConfigFile)
			if err != nil {
				return err
			}
			if namespace == "" {
				namespace = cfg.Namespace
			}

			servers, err := dnscfg.ReadResolvConf(platform.ResolvConf(namespace))
			if err != nil {
				return err
			}
			if len(servers) == 0 {
				return fmt.Errorf("no nameservers configured for namespace %s", namespace)
			}

			ctx := cmd.Context()
			resolved := 0
			// Queries must originate inside the namespace: that is the only
			// vantage point where the tunnel-scoped nameservers are reachable.
			err = netns.Do(namespace, func() error {
				for _, server := range servers {
					probe := dnscfg.NewProbe(server)
					fmt.Printf("resolving %s via %s...\n", domain, server)
					ips, err := probe.Resolve(ctx, domain)
					if err != nil {
						fmt.Printf("  error: %v\n", err)
						continue
					}
					for _, ip := range ips {
						fmt.Printf("  %s\n", ip)
					}
					resolved++
				}
				return nil
			})
			if err != nil {
				return err
			}
			if resolved == 0 {
				return fmt.Errorf("no nameserver in namespace %s answered", namespace)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&namespace, "namespace", "n", "", `target network namespace (default "protected")`)
	cmd.Flags().StringVar(&domain, "domain", "example.com", "domain to resolve")
	return cmd
}
