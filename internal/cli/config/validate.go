package config

import "fmt"

var validOutputs = map[string]bool{
	"table": true,
	"plain": true,
	"json":  true,
}

// Validate checks that enumerated config values are recognized.
func (c *Config) Validate() error {
	if _, err := c.OverflowMode(); err != nil {
		return fmt.Errorf("invalid overflow policy %q (want wrap or error)", c.Overflow)
	}
	if !validOutputs[c.OutputFormat] {
		return fmt.Errorf("invalid output format %q (want table, plain or json)", c.OutputFormat)
	}
	if c.WorkspacePath == "" {
		return fmt.Errorf("workspace_path must not be empty")
	}
	return nil
}
