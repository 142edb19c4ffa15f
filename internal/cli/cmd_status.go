package cli

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dimasg/namespaced-openvpn/internal/config"
	"github.com/dimasg/namespaced-openvpn/internal/netns"
	"github.com/dimasg/namespaced-openvpn/internal/platform"
)

func newStatusCmd() *cobra.Command {
	var namespace string

	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show namespace, tunnel, and resolver state",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(platform.ConfigFile)
			if err != nil {
				return err
			}
			if namespace == "" {
				namespace = cfg.Namespace
			}

			h, err := netns.Open(namespace)
			if err != nil {
				if errors.Is(err, os.ErrNotExist) {
					fmt.Printf("namespace %s: not present\n", namespace)
					return nil
				}
				return err
			}
			defer h.Close()

			fmt.Printf("namespace %s:\n", namespace)
			printLinks(h)
			printRoutes(h)
			printResolver(namespace)
			return nil
		},
	}

	cmd.Flags().StringVarP(&namespace, "namespace", "n", "", `target network namespace (default "protected")`)
	return cmd
}

func printLinks(h *netns.Handle) {
	links, err := h.Links()
	if err != nil {
		fmt.Printf("  links: %v\n", err)
		return
	}
	fmt.Println("  links:")
	for _, link := range links {
		attrs := link.Attrs()
		state := "down"
		if attrs.OperState.String() == "up" || attrs.OperState.String() == "unknown" {
			state = "up"
		}
		var addrs []string
		if list, err := h.Addrs(link); err == nil {
			for _, a := range list {
				addrs = append(addrs, a.IPNet.String())
			}
		}
		fmt.Printf("    %-8s %-5s %s\n", attrs.Name, state, strings.Join(addrs, " "))
	}
}

func printRoutes(h *netns.Handle) {
	routes, err := h.Routes()
	if err != nil {
		fmt.Printf("  routes: %v\n", err)
		return
	}
	fmt.Println("  routes:")
	for _, r := range routes {
		dst := "default"
		if r.Dst != nil {
			dst = r.Dst.String()
		}
		line := "    " + dst
		if r.Gw != nil {
			line += " via " + r.Gw.String()
		}
		if r.Src != nil {
			line += " src " + r.Src.String()
		}
		fmt.Println(line)
	}
}

func printResolver(namespace string) {
	path := platform.ResolvConf(namespace)
	data, err := os.ReadFile(path)
	if err != nil {
		fmt.Printf("  resolver: %s not present\n", path)
		return
	}
	fmt.Printf("  resolver (%s):\n", path)
	if len(data) == 0 {
		fmt.Println("    (empty)")
		return
	}
	for _, line := range strings.Split(strings.TrimRight(string(data), "\n"), "\n") {
		fmt.Println("    " + line)
	}
}
