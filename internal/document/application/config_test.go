package application

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("BILLDESK_CONFIG", "")
	t.Setenv("BILLDESK_OUTPUT_DIR", "")
	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("load error: %v", err)
	}
	if cfg.OutputDir != filepath.FromSlash("var/documents") {
		t.Fatalf("unexpected output dir %q", cfg.OutputDir)
	}
	if cfg.DefaultTheme != "classic" {
		t.Fatalf("unexpected default theme %q", cfg.DefaultTheme)
	}
	if cfg.FontTier != "medium" {
		t.Fatalf("unexpected font tier %q", cfg.FontTier)
	}
}

func TestLoadConfigFromYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "billdesk.yaml")
	content := []byte(`
output_dir: /tmp/docs
default_theme: vibrant
font_tier: large
company:
  name: Acme Painters
  gstin: 22AAAAA0000A1Z5
  address_lines:
    - 12 High St
    - Springfield
  signature:
    type: text
    font: cursive
    name: A. Painter
`)
	if err := os.WriteFile(path, content, 0o644); err != nil {
		t.Fatalf("write error: %v", err)
	}
	t.Setenv("BILLDESK_CONFIG", path)

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("load error: %v", err)
	}
	if cfg.OutputDir != "/tmp/docs" || cfg.DefaultTheme != "vibrant" || cfg.FontTier != "large" {
		t.Fatalf("unexpected config: %+v", cfg)
	}
	if cfg.Company.Name != "Acme Painters" || len(cfg.Company.AddressLines) != 2 {
		t.Fatalf("unexpected company: %+v", cfg.Company)
	}
	if cfg.Company.Signature.Type != "text" || cfg.Company.Signature.Name != "A. Painter" {
		t.Fatalf("unexpected signature: %+v", cfg.Company.Signature)
	}
}

func TestLoadConfigEnvOverrides(t *testing.T) {
	t.Setenv("BILLDESK_CONFIG", "")
	t.Setenv("BILLDESK_OUTPUT_DIR", "/tmp/override")
	t.Setenv("BILLDESK_THEME", "elegant")
	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("load error: %v", err)
	}
	if cfg.OutputDir != "/tmp/override" || cfg.DefaultTheme != "elegant" {
		t.Fatalf("unexpected config: %+v", cfg)
	}
}
