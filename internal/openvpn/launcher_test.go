package openvpn_test

import (
	"reflect"
	"testing"

	"github.com/dimasg/namespaced-openvpn/internal/openvpn"
)

func TestLauncherArgs(t *testing.T) {
	l := &openvpn.Launcher{
		Binary:     "openvpn",
		ConfigPath: "/etc/openvpn/client.conf",
		Namespace:  "protected",
		DNSMode:    "push",
		HookToken:  openvpn.HookSentinel,
		SelfPath:   "/usr/local/bin/namespaced-openvpn",
	}

	want := []string{
		"openvpn",
		"--config", "/etc/openvpn/client.conf",
		"--ifconfig-noexec",
		"--route-noexec",
		"--script-security", "2",
		"--route-up", "/usr/local/bin/namespaced-openvpn route-up protected push -",
	}
	if got := l.Args(); !reflect.DeepEqual(got, want) {
		t.Fatalf("argv mismatch:\ngot:  %v\nwant: %v", got, want)
	}
}

func TestLauncherArgsCarryHookToken(t *testing.T) {
	token := openvpn.EncodeHook("/bin/mycustomscript arg1")
	l := &openvpn.Launcher{
		Binary:     "openvpn",
		ConfigPath: "client.conf",
		Namespace:  "vpn",
		DNSMode:    "8.8.8.8,1.1.1.1",
		HookToken:  token,
		SelfPath:   "/opt/namespaced-openvpn",
	}

	args := l.Args()
	hook := args[len(args)-1]
	want := "/opt/namespaced-openvpn route-up vpn 8.8.8.8,1.1.1.1 " + token
	if hook != want {
		t.Fatalf("hook command mismatch:\ngot:  %q\nwant: %q", hook, want)
	}
}
