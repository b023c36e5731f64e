package config

import (
	"fmt"
	"os"
	"slices"
	"strings"
)

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.Elements == "" {
		return fmt.Errorf("elements is required")
	}
	if c.OutputFormat != "" && !slices.Contains(OutputModes, c.OutputFormat) {
		return fmt.Errorf("invalid output mode %q (expected one of: %s)",
			c.OutputFormat, strings.Join(OutputModes, ", "))
	}
	return nil
}

// ValidateDataset checks that the element dataset exists.
// The group dataset is optional unless RequireGroups is set.
func (c *Config) ValidateDataset() error {
	if _, err := os.Stat(c.Elements); os.IsNotExist(err) {
		return fmt.Errorf("element dataset does not exist: %s\nHint: Use --elements or set elements in %s", c.Elements, "periodic.yaml")
	}
	if c.RequireGroups {
		if _, err := os.Stat(c.Groups); os.IsNotExist(err) {
			return fmt.Errorf("group dataset does not exist: %s\nHint: Use --groups to specify a different path", c.Groups)
		}
	}
	return nil
}
