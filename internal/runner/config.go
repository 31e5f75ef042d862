// Package runner wires the reader, resolver, and validators into a single
// pass over a schema root, and owns the on-disk configuration format that
// lets a project pin its own severity overrides and locale.
package runner

import (
	"os"

	"github.com/goccy/go-yaml"

	"github.com/ocsf-tools/ocsflint/internal/diag"
)

// Config is the on-disk shape of an ocsflint config file. It is parsed with
// goccy/go-yaml, which accepts plain JSON as a YAML subset, so the same
// loader serves both .yaml and .json config files.
type Config struct {
	// Severities overrides diag.DefaultSeverity per kind, by its string
	// code (e.g. "unknown_key": "ignore").
	Severities map[string]string `yaml:"severities"`
	// Lang selects the locale used to render diagnostics ("en" or
	// "zh-Hans"). Empty means the bundle's default.
	Lang string `yaml:"lang"`
	// FailFast switches the Collector into Eager mode.
	FailFast bool `yaml:"fail_fast"`
}

// LoadConfig reads and parses the config file at path.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// SeverityTable converts Config.Severities into the diag.Severity map the
// Collector expects, skipping (and letting the caller report) any entry
// whose kind or severity string it doesn't recognize.
func (c *Config) SeverityTable() (map[diag.Kind]diag.Severity, []string) {
	if c == nil || len(c.Severities) == 0 {
		return nil, nil
	}
	table := make(map[diag.Kind]diag.Severity, len(c.Severities))
	var warnings []string
	for kindName, severityName := range c.Severities {
		kind := diag.Kind(kindName)
		if _, ok := diag.DefaultSeverity[kind]; !ok {
			warnings = append(warnings, "unknown diagnostic kind in config: "+kindName)
			continue
		}
		severity, ok := diag.ParseSeverity(severityName)
		if !ok {
			warnings = append(warnings, "unknown severity in config for "+kindName+": "+severityName)
			continue
		}
		table[kind] = severity
	}
	return table, warnings
}
