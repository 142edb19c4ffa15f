package openvpn_test

import (
	"strings"
	"testing"

	"github.com/dimasg/namespaced-openvpn/internal/openvpn"
)

func TestReadRouteUpEnv(t *testing.T) {
	t.Setenv("dev", "tun0")
	t.Setenv("ifconfig_local", "10.8.0.2")
	t.Setenv("route_vpn_gateway", "10.8.0.1")

	env, err := openvpn.ReadRouteUpEnv()
	if err != nil {
		t.Fatal(err)
	}
	if env.Device != "tun0" || env.Local != "10.8.0.2" || env.Gateway != "10.8.0.1" {
		t.Fatalf("unexpected context: %+v", env)
	}
}

func TestReadRouteUpEnvMissing(t *testing.T) {
	t.Setenv("dev", "tun0")
	t.Setenv("ifconfig_local", "")
	t.Setenv("route_vpn_gateway", "")

	_, err := openvpn.ReadRouteUpEnv()
	if err == nil {
		t.Fatal("expected error for missing environment")
	}
	if !strings.Contains(err.Error(), "ifconfig_local") || !strings.Contains(err.Error(), "route_vpn_gateway") {
		t.Fatalf("error should name missing variables, got: %v", err)
	}
}

func TestIsRouteUpInvocation(t *testing.T) {
	t.Setenv(openvpn.ScriptTypeVar, "")
	if openvpn.IsRouteUpInvocation() {
		t.Fatal("no discriminator set, should not be a route-up invocation")
	}
	t.Setenv(openvpn.ScriptTypeVar, "up")
	if openvpn.IsRouteUpInvocation() {
		t.Fatal("wrong discriminator, should not be a route-up invocation")
	}
	t.Setenv(openvpn.ScriptTypeVar, openvpn.RouteUpScriptType)
	if !openvpn.IsRouteUpInvocation() {
		t.Fatal("discriminator set, should be a route-up invocation")
	}
}

func TestForeignOptionsStopAtGap(t *testing.T) {
	t.Setenv("foreign_option_1", "dhcp-option DNS 10.8.0.1")
	t.Setenv("foreign_option_2", "dhcp-option NTP 10.8.0.1")
	t.Setenv("foreign_option_3", "dhcp-option DNS 10.8.0.2")
	t.Setenv("foreign_option_4", "")
	t.Setenv("foreign_option_5", "dhcp-option DNS 10.8.0.3")

	opts := openvpn.ForeignOptions()
	if len(opts) != 3 {
		t.Fatalf("expected scan to stop at the first gap, got %d options: %v", len(opts), opts)
	}
	for i, want := range []string{"dhcp-option DNS 10.8.0.1", "dhcp-option NTP 10.8.0.1", "dhcp-option DNS 10.8.0.2"} {
		if opts[i] != want {
			t.Errorf("option %d = %q, want %q", i+1, opts[i], want)
		}
	}
}

func TestForeignOptionsEmpty(t *testing.T) {
	t.Setenv("foreign_option_1", "")
	if opts := openvpn.ForeignOptions(); len(opts) != 0 {
		t.Fatalf("expected no options, got %v", opts)
	}
}
