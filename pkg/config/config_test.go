package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

type sample struct {
	Name string `yaml:"name"`
	Port int    `yaml:"port"`
}

func (s *sample) Validate() error {
	if s.Port <= 0 {
		return errors.New("port must be positive")
	}
	return nil
}

func writeFile(t *testing.T, body string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(p, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return p
}

func TestLoad_ExpandsEnv(t *testing.T) {
	t.Setenv("OSIRRIS_TEST_NAME", "from-env")
	p := writeFile(t, "name: ${OSIRRIS_TEST_NAME}\nport: ${OSIRRIS_TEST_PORT:-9090}\n")

	cfg := sample{Port: 1}
	if err := Load(p, &cfg); err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Name != "from-env" || cfg.Port != 9090 {
		t.Errorf("cfg = %+v", cfg)
	}
}

func TestLoad_KeepsDefaultsForMissingKeys(t *testing.T) {
	p := writeFile(t, "name: site\n")
	cfg := sample{Port: 8080}
	if err := Load(p, &cfg); err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Port != 8080 {
		t.Errorf("port = %d, want default", cfg.Port)
	}
}

func TestLoad_EmptyFile(t *testing.T) {
	p := writeFile(t, "")
	cfg := sample{Port: 8080}
	if err := Load(p, &cfg); err != nil {
		t.Fatalf("Load: %v", err)
	}
}

func TestLoad_UnknownKey(t *testing.T) {
	p := writeFile(t, "name: x\nprot: 80\n")
	cfg := sample{Port: 1}
	if err := Load(p, &cfg); err == nil {
		t.Fatal("expected unknown key error")
	}
}

func TestLoad_Validates(t *testing.T) {
	p := writeFile(t, "port: 0\n")
	cfg := sample{Port: 1}
	err := Load(p, &cfg)
	if err == nil || !strings.Contains(err.Error(), "port must be positive") {
		t.Fatalf("err = %v", err)
	}
}

func TestLoadOptional_MissingFile(t *testing.T) {
	cfg := sample{Port: 8080}
	if err := LoadOptional(filepath.Join(t.TempDir(), "nope.yaml"), &cfg); err != nil {
		t.Fatalf("LoadOptional: %v", err)
	}
	bad := sample{}
	if err := LoadOptional(filepath.Join(t.TempDir(), "nope.yaml"), &bad); err == nil {
		t.Fatal("defaults should still be validated")
	}
}

func TestExpandEnv(t *testing.T) {
	t.Setenv("OSIRRIS_SET", "v")
	t.Setenv("OSIRRIS_EMPTY", "")
	tests := map[string]string{
		"${OSIRRIS_SET}":          "v",
		"${OSIRRIS_SET:-x}":       "v",
		"${OSIRRIS_EMPTY:-x}":     "x",
		"${OSIRRIS_UNSET_VAR:-x}": "x",
		"${OSIRRIS_UNSET_VAR}":    "",
		"$OSIRRIS_SET/path":       "v/path",
	}
	for in, want := range tests {
		if got := ExpandEnv(in); got != want {
			t.Errorf("ExpandEnv(%q) = %q, want %q", in, got, want)
		}
	}
}
