package application

import (
	"errors"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// SignatureConfig mirrors document.SignatureSettings for the yaml profile.
type SignatureConfig struct {
	Type string `yaml:"type"`
	Font string `yaml:"font"`
	Data string `yaml:"data"`
	Name string `yaml:"name"`
}

// CompanyConfig is the issuing-company profile the excluded settings screen
// would normally persist; records missing a company block fall back to it.
type CompanyConfig struct {
	Name         string          `yaml:"name"`
	AddressLines []string        `yaml:"address_lines"`
	Phone        string          `yaml:"phone"`
	Email        string          `yaml:"email"`
	GSTIN        string          `yaml:"gstin"`
	Logo         string          `yaml:"logo"`
	Signature    SignatureConfig `yaml:"signature"`
}

// Config defines renderer configuration.
type Config struct {
	OutputDir    string        `yaml:"output_dir"`
	DefaultTheme string        `yaml:"default_theme"`
	FontTier     string        `yaml:"font_tier"`
	Company      CompanyConfig `yaml:"company"`
}

// LoadConfig loads config from yaml or env.
func LoadConfig() (Config, error) {
	cfg := Config{
		OutputDir:    getenvDefault("BILLDESK_OUTPUT_DIR", filepath.FromSlash("var/documents")),
		DefaultTheme: getenvDefault("BILLDESK_THEME", "classic"),
		FontTier:     getenvDefault("BILLDESK_FONT_TIER", "medium"),
	}

	if path := os.Getenv("BILLDESK_CONFIG"); path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return cfg, err
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, err
		}
	}

	if cfg.OutputDir == "" {
		return cfg, errors.New("config: output dir required")
	}
	if cfg.DefaultTheme == "" {
		cfg.DefaultTheme = "classic"
	}
	return cfg, nil
}

func getenvDefault(key, fallback string) string {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	return value
}
