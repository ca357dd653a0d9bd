package config

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// applyDefaults seeds Viper with defaults defined in GetConfigOptions.
// This centralizes default values and descriptions in one place.
func applyDefaults(v *viper.Viper) {
	for _, o := range GetConfigOptions() {
		v.SetDefault(o.Key, o.Default)
	}
}

// Load resolves configuration with precedence: defaults < file < env.
// The provided Viper instance is mutated with defaults, file contents, and env.
func Load(ctx context.Context, v *viper.Viper) error {
	// Configure Viper search paths. If SetConfigFile was provided upstream,
	// it takes precedence; these paths are harmless fallbacks.
	if v.ConfigFileUsed() == "" {
		v.SetConfigName("config")
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			v.AddConfigPath(filepath.Join(xdg, "inkpad"))
		}
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".config", "inkpad"))
		}
		v.AddConfigPath(".")
	}

	// Apply centralized defaults (lowest precedence)
	applyDefaults(v)

	// Read config file if present (overrides defaults)
	_ = v.ReadInConfig()

	// Environment variables: INKPAD_* (highest among these sources)
	v.SetEnvPrefix("inkpad")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	return CheckConfigValidity(v)
}

// DefaultConfigPath resolves the standard config.toml location.
func DefaultConfigPath() string {
	xdg := os.Getenv("XDG_CONFIG_HOME")
	if xdg == "" {
		home, _ := os.UserHomeDir()
		xdg = filepath.Join(home, ".config")
	}
	return filepath.Join(xdg, "inkpad", "config.toml")
}

// CheckConfigValidity reports every problem with the resolved settings at
// once, joined one per line.
func CheckConfigValidity(v *viper.Viper) error {
	var problems []string
	for _, key := range []string{
		"theme.accent",
		"theme.code_background",
		"theme.quote_border",
		"theme.quote_background",
	} {
		if strings.TrimSpace(v.GetString(key)) == "" {
			problems = append(problems, key+" is required")
		}
	}
	if v.GetInt("preview.wrap") < 0 {
		problems = append(problems, "preview.wrap must not be negative")
	}
	if len(problems) > 0 {
		return fmt.Errorf("invalid config:\n%s", strings.Join(problems, "\n"))
	}
	return nil
}

// Settings is the resolved, typed view of the configuration the rest of
// the application consumes.
type Settings struct {
	Accent          string
	CodeBackground  string
	QuoteBorder     string
	QuoteBackground string

	// Wrap hard-wraps the preview at this width; 0 follows the pane.
	Wrap int

	Sample      bool
	LineNumbers bool
}

// FromViper extracts Settings from a loaded Viper instance.
func FromViper(v *viper.Viper) Settings {
	return Settings{
		Accent:          v.GetString("theme.accent"),
		CodeBackground:  v.GetString("theme.code_background"),
		QuoteBorder:     v.GetString("theme.quote_border"),
		QuoteBackground: v.GetString("theme.quote_background"),
		Wrap:            v.GetInt("preview.wrap"),
		Sample:          v.GetBool("editor.sample"),
		LineNumbers:     v.GetBool("editor.line_numbers"),
	}
}
