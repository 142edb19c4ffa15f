package openvpn

import (
	"bufio"
	"encoding/base64"
	"fmt"
	"os"
	"strings"
)

// routeUpDirective is the config keyword whose command this wrapper must
// preserve: launching openvpn with our own --route-up would silently
// override it otherwise.
const routeUpDirective = "route-up"

// HookSentinel marks "no original route-up hook". A single dash is not part
// of the standard base64 alphabet, so it can never collide with a real
// encoding, and it survives argv transport without quoting.
const HookSentinel = "-"

// ScanRouteUp scans an OpenVPN config file for a route-up directive and
// returns its command text verbatim. OpenVPN treats repeated directives with
// overwrite semantics, so the last occurrence wins. Returns "" when the file
// has no route-up directive.
func ScanRouteUp(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("open config: %w", err)
	}
	defer f.Close()

	var command string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") || strings.HasPrefix(line, ";") {
			continue
		}
		fields := strings.Fields(line)
		if fields[0] != routeUpDirective {
			continue
		}
		rest := strings.TrimSpace(strings.TrimPrefix(line, routeUpDirective))
		if rest != "" {
			command = rest
		}
	}
	if err := sc.Err(); err != nil {
		return "", fmt.Errorf("read config: %w", err)
	}
	return command, nil
}

// EncodeHook encodes a route-up command for transport through a command-line
// argument. An empty command means "no hook" and yields the sentinel.
func EncodeHook(command string) string {
	if command == "" {
		return HookSentinel
	}
	return base64.StdEncoding.EncodeToString([]byte(command))
}

// DecodeHook reverses EncodeHook. The second return value reports whether a
// real command was present; the sentinel decodes to ("", false) and is never
// treated as a command.
func DecodeHook(token string) (string, bool, error) {
	if token == HookSentinel {
		return "", false, nil
	}
	raw, err := base64.StdEncoding.DecodeString(token)
	if err != nil {
		return "", false, fmt.Errorf("decode hook token %q: %w", token, err)
	}
	return string(raw), true, nil
}

// UnquoteOnce strips one layer of matching surrounding quotes, approximating
// how OpenVPN splits a single quoted directive value. It deliberately does
// not attempt full compatibility with OpenVPN's quoting rules.
func UnquoteOnce(s string) string {
	s = strings.TrimSpace(s)
	if len(s) >= 2 {
		first, last := s[0], s[len(s)-1]
		if first == last && (first == '\'' || first == '"') {
			return s[1 : len(s)-1]
		}
	}
	return s
}
