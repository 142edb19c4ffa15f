package openvpn

import (
	"fmt"
	"os"
	"strings"
)

// ScriptTypeVar is the environment discriminator OpenVPN sets on every
// script invocation; its value selects which hook is being called.
const ScriptTypeVar = "script_type"

// RouteUpScriptType is the discriminator value for route-up invocations.
const RouteUpScriptType = "route-up"

// RouteUpEnv is the execution context OpenVPN supplies to its route-up hook.
// All three values are mandatory at tunnel-up; the struct is populated once
// and treated as read-only.
type RouteUpEnv struct {
	Device  string // tunnel device name ($dev)
	Local   string // locally assigned tunnel address ($ifconfig_local)
	Gateway string // remote gateway address ($route_vpn_gateway)
}

// IsRouteUpInvocation reports whether the process is being invoked by
// OpenVPN as a route-up hook.
func IsRouteUpInvocation() bool {
	return os.Getenv(ScriptTypeVar) == RouteUpScriptType
}

// ReadRouteUpEnv reads the mandatory route-up environment into a typed
// context. Any missing value is a contract violation by the VPN client and
// is fatal.
func ReadRouteUpEnv() (*RouteUpEnv, error) {
	env := &RouteUpEnv{
		Device:  os.Getenv("dev"),
		Local:   os.Getenv("ifconfig_local"),
		Gateway: os.Getenv("route_vpn_gateway"),
	}

	var missing []string
	if env.Device == "" {
		missing = append(missing, "dev")
	}
	if env.Local == "" {
		missing = append(missing, "ifconfig_local")
	}
	if env.Gateway == "" {
		missing = append(missing, "route_vpn_gateway")
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("openvpn did not supply mandatory environment: %s", strings.Join(missing, ", "))
	}
	return env, nil
}

// ForeignOptions returns the foreign_option_N values pushed by the server,
// in order, stopping at the first missing index.
func ForeignOptions() []string {
	var opts []string
	for i := 1; ; i++ {
		v := os.Getenv(fmt.Sprintf("foreign_option_%d", i))
		if v == "" {
			return opts
		}
		opts = append(opts, v)
	}
}
