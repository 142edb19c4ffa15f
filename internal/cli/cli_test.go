package cli

import "testing"

func TestValidateToken(t *testing.T) {
	valid := []string{"protected", "vpn0", "push", "8.8.8.8,1.1.1.1"}
	for _, v := range valid {
		if err := validateToken("namespace", v); err != nil {
			t.Errorf("validateToken(%q): unexpected error %v", v, err)
		}
	}

	invalid := []string{"", "my namespace", "push\tpush", "a\nb", " leading"}
	for _, v := range invalid {
		if err := validateToken("namespace", v); err == nil {
			t.Errorf("validateToken(%q): expected error", v)
		}
	}
}
