package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dimasg/namespaced-openvpn/internal/config"
	"github.com/dimasg/namespaced-openvpn/internal/dnscfg"
	"github.com/dimasg/namespaced-openvpn/internal/openvpn"
	"github.com/dimasg/namespaced-openvpn/internal/platform"
)

func newRunCmd() *cobra.Command {
	var namespace, configPath, dnsMode string

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Launch openvpn and confine its tunnel to the namespace",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(platform.ConfigFile)
			if err != nil {
				return err
			}
			if namespace == "" {
				namespace = cfg.Namespace
			}
			if dnsMode == "" {
				dnsMode = cfg.DNS
			}
			logger := platform.NewLogger(cfg.LogLevel)

			// Both values travel through the openvpn --route-up argument,
			// which is split on whitespace. Reject anything that would not
			// survive the trip before any OS state is touched.
			if err := validateToken("namespace", namespace); err != nil {
				return err
			}
			if err := validateToken("dns mode", dnsMode); err != nil {
				return err
			}
			if dnsMode != dnscfg.ModePush {
				if _, err := dnscfg.Nameservers(dnsMode, nil); err != nil {
					return err
				}
			}

			// Capture the user's route-up hook now: once openvpn starts with
			// our --route-up, the directive in the file is overridden.
			hook, err := openvpn.ScanRouteUp(configPath)
			if err != nil {
				return err
			}
			if hook != "" {
				logger.Info("preserving existing route-up hook", "command", hook)
			}

			self, err := os.Executable()
			if err != nil {
				return fmt.Errorf("locate own executable: %w", err)
			}

			launcher := &openvpn.Launcher{
				Binary:     cfg.OpenVPN,
				ConfigPath: configPath,
				Namespace:  namespace,
				DNSMode:    dnsMode,
				HookToken:  openvpn.EncodeHook(hook),
				SelfPath:   self,
			}
			logger.Info("replacing process with openvpn",
				"config", configPath, "namespace", namespace, "dns", dnsMode)
			return launcher.Exec()
		},
	}

	cmd.Flags().StringVarP(&namespace, "namespace", "n", "", `target network namespace (default "protected")`)
	cmd.Flags().StringVarP(&configPath, "config", "c", "", "openvpn config file (required)")
	cmd.Flags().StringVar(&dnsMode, "dns", "", `DNS mode: "push" or comma-separated IPv4 list (default "push")`)
	_ = cmd.MarkFlagRequired("config")
	return cmd
}

func validateToken(what, v string) error {
	if v == "" {
		return fmt.Errorf("%s must not be empty", what)
	}
	if strings.ContainsAny(v, " \t\r\n") {
		return fmt.Errorf("%s must not contain whitespace: %q", what, v)
	}
	return nil
}
