// SPDX-License-Identifier: MIT
// Package config loads listmerge settings from defaults, a YAML file,
// LISTMERGE_* environment variables and command-line flags.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/pflag"
)

// Output formats.
const (
	OutputText = "text"
	OutputJSON = "json"
)

// Element kinds the CLI can parse.
const (
	KindInt    = "int"
	KindFloat  = "float"
	KindString = "string"
)

const (
	// EnvPrefix prefixes every environment override.
	EnvPrefix = "LISTMERGE_"

	// DefaultConfigFile is looked up in the working directory when no
	// explicit file is given.
	DefaultConfigFile = "listmerge.yaml"
)

// ErrInvalidConfig is returned when a loaded value is out of its domain.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config holds the resolved CLI settings.
type Config struct {
	Output   string `koanf:"output"`
	Kind     string `koanf:"kind"`
	Strict   bool   `koanf:"validate"`
	Verbose  bool   `koanf:"verbose"`

	// File is the config file that was read, empty if none.
	File string `koanf:"-"`
}

// Defaults returns the built-in settings.
func Defaults() map[string]interface{} {
	return map[string]interface{}{
		"output":   OutputText,
		"kind":     KindInt,
		"validate": false,
		"verbose":  false,
	}
}

// Load resolves configuration.
// Precedence (highest to lowest): flags > env vars > config file > defaults.
// Only flags that were explicitly set override lower layers.
func Load(cfgFile string, flags *pflag.FlagSet) (*Config, error) {
	k := koanf.New(".")

	// 1. Defaults
	if err := k.Load(confmap.Provider(Defaults(), "."), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	// 2. Config file
	used := findConfigFile(cfgFile)
	if used != "" {
		if err := k.Load(file.Provider(used), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("error reading config file %s: %w", used, err)
		}
	}

	// 3. Environment: LISTMERGE_OUTPUT -> output
	if err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	}), nil); err != nil {
		return nil, fmt.Errorf("failed to load env vars: %w", err)
	}

	// 4. Flags
	if flags != nil {
		if err := k.Load(posflag.ProviderWithFlag(flags, ".", k, func(f *pflag.Flag) (string, interface{}) {
			if !f.Changed {
				return "", nil
			}
			return strings.ReplaceAll(f.Name, "-", "_"), posflag.FlagVal(flags, f)
		}), nil); err != nil {
			return nil, fmt.Errorf("failed to load flags: %w", err)
		}
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}
	cfg.File = used
	cfg.Output = strings.ToLower(strings.TrimSpace(cfg.Output))
	cfg.Kind = strings.ToLower(strings.TrimSpace(cfg.Kind))

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate rejects unknown output formats and element kinds.
func (c *Config) Validate() error {
	switch c.Output {
	case OutputText, OutputJSON:
	default:
		return fmt.Errorf("%w: unknown output format %q (want text|json)", ErrInvalidConfig, c.Output)
	}
	switch c.Kind {
	case KindInt, KindFloat, KindString:
	default:
		return fmt.Errorf("%w: unknown kind %q (want int|float|string)", ErrInvalidConfig, c.Kind)
	}

	return nil
}

// findConfigFile returns the explicit path, or DefaultConfigFile if it
// exists in the working directory, or "".
func findConfigFile(explicit string) string {
	if explicit != "" {
		return explicit
	}
	if _, err := os.Stat(DefaultConfigFile); err == nil {
		return DefaultConfigFile
	}

	return ""
}
