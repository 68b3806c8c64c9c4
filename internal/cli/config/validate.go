package config

import "fmt"

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if _, err := c.SortMode(); err != nil {
		return fmt.Errorf("invalid sort setting: %w", err)
	}
	if _, err := c.ColorMode(); err != nil {
		return fmt.Errorf("invalid color setting: %w", err)
	}
	if c.Input == "" && c.LSCommand == "" {
		return fmt.Errorf("ls_command is required when no input file is given")
	}
	return nil
}
