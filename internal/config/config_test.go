package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	t.Setenv("STRESSCHECK_LANG", "")
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Locale != "ja" || cfg.Method != "sumup" || cfg.Format != "text" || cfg.NoColor {
		t.Fatalf("defaults = %+v", cfg)
	}
}

func TestLoadFile(t *testing.T) {
	t.Setenv("STRESSCHECK_LANG", "")
	path := filepath.Join(t.TempDir(), "config.yaml")
	body := "locale: en\nmethod: both\nformat: csv\nno_color: true\n"
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Locale != "en" || cfg.Method != "both" || cfg.Format != "csv" || !cfg.NoColor {
		t.Fatalf("loaded = %+v", cfg)
	}
}

func TestLoadEnvOverridesLocale(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("locale: ja\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("STRESSCHECK_LANG", "en")
	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Locale != "en" {
		t.Fatalf("locale = %q, want env override", cfg.Locale)
	}
}

func TestLoadRejectsBadValues(t *testing.T) {
	t.Setenv("STRESSCHECK_LANG", "")
	cases := []string{
		"method: average\n",
		"format: xml\n",
		"method: [1,2]\n",
	}
	for _, body := range cases {
		path := filepath.Join(t.TempDir(), "config.yaml")
		if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
			t.Fatal(err)
		}
		if _, err := Load(path); err == nil {
			t.Fatalf("Load accepted %q", body)
		}
	}
}
