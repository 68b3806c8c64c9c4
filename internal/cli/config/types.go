// Package config provides configuration management for the lsa CLI.
//
// Settings come from built-in defaults, an optional YAML file, LSA_*
// environment variables and command-line flags, in increasing priority.
package config

import (
	"github.com/leapstack-labs/lsa/internal/cli/output"
	"github.com/leapstack-labs/lsa/internal/source"
	"github.com/leapstack-labs/lsa/pkg/listing"
)

// Config holds all CLI configuration options.
type Config struct {
	Sort      string   `koanf:"sort"`
	Color     string   `koanf:"color"`
	LSCommand string   `koanf:"ls_command"`
	LSArgs    []string `koanf:"ls_args"`
	// Input names a captured listing to read instead of running LSCommand.
	// "-" reads stdin.
	Input   string `koanf:"input"`
	Verbose bool   `koanf:"verbose"`
}

// Default configuration values.
const (
	DefaultSort      = "name"
	DefaultColor     = string(output.ModeAuto)
	DefaultLSCommand = source.DefaultCommand
	EnvPrefix        = "LSA_"
)

// DefaultLSArgs returns the default ls flags.
func DefaultLSArgs() []string {
	return append([]string(nil), source.DefaultArgs...)
}

// Default returns a Config populated with defaults only.
func Default() *Config {
	return &Config{
		Sort:      DefaultSort,
		Color:     DefaultColor,
		LSCommand: DefaultLSCommand,
		LSArgs:    DefaultLSArgs(),
	}
}

// SortMode returns the parsed sort setting.
func (c *Config) SortMode() (listing.SortMode, error) {
	return listing.ParseSortMode(c.Sort)
}

// ColorMode returns the parsed color setting.
func (c *Config) ColorMode() (output.Mode, error) {
	return output.ParseMode(c.Color)
}
