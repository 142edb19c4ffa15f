package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/dimasg/namespaced-openvpn/internal/config"
)

func TestLoadMissingFile(t *testing.T) {
	cfg, err := config.Load(filepath.Join(t.TempDir(), "config.yaml"))
	if err != nil {
		t.Fatal(err)
	}

	want := config.Defaults()
	if *cfg != want {
		t.Fatalf("got %+v, want defaults %+v", *cfg, want)
	}
}

func TestLoadOverlaysDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := "namespace: vpn0\nlog_level: debug\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := config.Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Namespace != "vpn0" || cfg.LogLevel != "debug" {
		t.Fatalf("file values not applied: %+v", cfg)
	}
	if cfg.DNS != "push" || cfg.OpenVPN != "openvpn" {
		t.Fatalf("unset keys should keep defaults: %+v", cfg)
	}
}

func TestLoadMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("namespace: [unterminated"), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := config.Load(path); err == nil {
		t.Fatal("expected parse error")
	}
}
