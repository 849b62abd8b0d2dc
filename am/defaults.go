package am

import (
	"fmt"

	"github.com/spf13/viper"

	"github.com/teranos/codedom/provider"
)

// SetDefaults configures default values for all configuration options
func SetDefaults(v *viper.Viper) {
	defaults := provider.DefaultOptions()

	v.SetDefault("generator.provider", "csharp")
	v.SetDefault("generator.tab", "    ")
	v.SetDefault("generator.output", "generated")
	v.SetDefault("generator.base_file_name", "Generated")
	v.SetDefault("generator.post_format", "")
	v.SetDefault("generator.options.blank_lines_between_members", defaults.BlankLinesBetweenMembers)
	v.SetDefault("generator.options.bracing_style", defaults.BracingStyle)
	v.SetDefault("generator.options.else_on_closing", defaults.ElseOnClosing)
	v.SetDefault("generator.options.verbatim_order", defaults.VerbatimOrder)
	v.SetDefault("generator.options.header", defaults.Header)

	v.SetDefault("wrapper.namespace", "Generated")
	v.SetDefault("wrapper.keep_namespaces", false)
	v.SetDefault("wrapper.legacy_collections", false)
	v.SetDefault("wrapper.naming", "default")

	v.SetDefault("log.json", false)
}

// Default returns a Config populated only from SetDefaults.
func Default() *Config {
	v := viper.New()
	SetDefaults(v)
	cfg, err := LoadWithViper(v)
	if err != nil {
		// defaults always decode
		panic(err)
	}
	return cfg
}

// GetOutput returns the output root, falling back to "generated"
func (c *Config) GetOutput() string {
	if c.Generator.Output == "" {
		return "generated"
	}
	return c.Generator.Output
}

// GetTab returns the indent unit, falling back to four spaces
func (c *Config) GetTab() string {
	if c.Generator.Tab == "" {
		return "    "
	}
	return c.Generator.Tab
}

// String returns a one-line summary of the config
func (c *Config) String() string {
	return fmt.Sprintf("Config{Generator: {Provider: %s, Output: %s}, Wrapper: {Namespace: %s, Naming: %s}}",
		c.Generator.Provider, c.GetOutput(), c.Wrapper.Namespace, c.Wrapper.Naming)
}
