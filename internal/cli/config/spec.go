// Package config defines the CLI configuration structure.
package config

// CLIConfig is the configuration for gravsweep-cli.
type CLIConfig struct {
	// Default connection settings
	DefaultServer string `yaml:"default_server"`
	DefaultOutput string `yaml:"default_output"` // table, json, yaml

	// CAFile is an optional PEM bundle trusted when connecting over
	// TLS, in addition to the system roots.
	CAFile string `yaml:"ca_file,omitempty"`

	// Servers are named server addresses, selectable with --server NAME.
	Servers map[string]string `yaml:"servers,omitempty"`
}

// Default returns the default CLI configuration.
func Default() *CLIConfig {
	return &CLIConfig{
		DefaultServer: "http://localhost:7080",
		DefaultOutput: "table",
		Servers:       make(map[string]string),
	}
}

// Resolve maps a named server to its address. Unknown names pass
// through unchanged so raw addresses keep working.
func (c *CLIConfig) Resolve(server string) string {
	if addr, ok := c.Servers[server]; ok {
		return addr
	}
	return server
}
