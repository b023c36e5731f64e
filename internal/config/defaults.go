package config

// Default configuration values.
const (
	DefaultElementsFile = "elements.csv"
	DefaultGroupsFile   = "groups.json"
	DefaultOutputDir    = "."
)

// ApplyDefaults applies default values to a ProjectConfig.
func ApplyDefaults(c *ProjectConfig) {
	if c == nil {
		return
	}
	if c.Elements == "" {
		c.Elements = DefaultElementsFile
	}
	if c.Groups == "" {
		c.Groups = DefaultGroupsFile
	}
	if c.OutputDir == "" {
		c.OutputDir = DefaultOutputDir
	}
}
