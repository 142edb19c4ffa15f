package openvpn

import (
	"fmt"
	"os"
	"os/exec"
	"strings"

	"golang.org/x/sys/unix"
)

// Launcher builds the openvpn argument vector and replaces the current
// process image with it. Replacement rather than spawning keeps exactly one
// process tree in the root namespace, so operator signals reach the live
// openvpn client directly.
type Launcher struct {
	Binary     string // openvpn binary name or path
	ConfigPath string // user's openvpn config file
	Namespace  string // target network namespace
	DNSMode    string // "push" or comma-separated address list
	HookToken  string // encoded original route-up hook, or the sentinel
	SelfPath   string // this executable, registered as the route-up hook
}

// Args returns the full argument vector. Options appended after --config
// take precedence over directives in the file: interface and route side
// effects are disabled, script-security is capped at 2 (no reason to allow
// unrestricted shell invocation client-side), and this program is installed
// as the route-up hook.
func (l *Launcher) Args() []string {
	hook := strings.Join([]string{l.SelfPath, "route-up", l.Namespace, l.DNSMode, l.HookToken}, " ")
	return []string{
		l.Binary,
		"--config", l.ConfigPath,
		"--ifconfig-noexec",
		"--route-noexec",
		"--script-security", "2",
		"--route-up", hook,
	}
}

// Exec replaces the current process with openvpn. It only returns on error.
func (l *Launcher) Exec() error {
	path, err := exec.LookPath(l.Binary)
	if err != nil {
		return fmt.Errorf("locate %s: %w", l.Binary, err)
	}
	if err := unix.Exec(path, l.Args(), os.Environ()); err != nil {
		return fmt.Errorf("exec %s: %w", path, err)
	}
	return nil
}
