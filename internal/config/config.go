// Package config loads the optional .ninjafmt.yaml application
// configuration, providing defaults for the command line flags.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// AppConfig holds defaults that CLI flags override.
type AppConfig struct {
	Color        string `yaml:"color"`         // always, never, auto
	Tee          string `yaml:"tee"`           // mirror file path
	NoGCC        bool   `yaml:"nogcc"`         // disable diagnostic classification
	StatusFormat string `yaml:"status_format"` // used when NINJA_STATUS is unset
}

// DefaultColorMode is used when neither flag nor config selects one.
const DefaultColorMode = "auto"

func debugEnabled() bool {
	return os.Getenv("NINJAFMT_DEBUG") != ""
}

// Load reads the config file if one exists. A missing file yields the
// defaults; a malformed file warns and yields the defaults. Never fatal.
func Load() *AppConfig {
	cfg := &AppConfig{Color: DefaultColorMode}

	path := configPath()
	if path == "" {
		if debugEnabled() {
			fmt.Fprintln(os.Stderr, "[DEBUG config.Load] no .ninjafmt.yaml found, using defaults")
		}
		return cfg
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			fmt.Fprintf(os.Stderr, "Warning: error reading config file %s: %v. Using defaults.\n", path, err)
		}
		return cfg
	}
	if err := yaml.Unmarshal(raw, cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: error parsing config file %s: %v. Using defaults.\n", path, err)
		return &AppConfig{Color: DefaultColorMode}
	}
	if cfg.Color == "" {
		cfg.Color = DefaultColorMode
	}
	return cfg
}

// configPath finds the configuration file: a local .ninjafmt.yaml first,
// then the user config directory.
func configPath() string {
	local := ".ninjafmt.yaml"
	if _, err := os.Stat(local); err == nil {
		return local
	}
	configHome, err := os.UserConfigDir()
	if err != nil || configHome == "" || configHome == "/" {
		return ""
	}
	xdgPath := filepath.Join(configHome, "ninjafmt", ".ninjafmt.yaml")
	if _, err := os.Stat(xdgPath); err == nil {
		return xdgPath
	}
	if debugEnabled() {
		fmt.Fprintf(os.Stderr, "[DEBUG config.configPath] no config at %s\n", xdgPath)
	}
	return ""
}
