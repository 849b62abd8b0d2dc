// Package am holds the codedom configuration: which provider to emit with,
// where generated files go, and how the descriptor wrapper names things.
package am

import "github.com/teranos/codedom/provider"

// Config is the full codedom configuration
type Config struct {
	Generator GeneratorConfig `mapstructure:"generator" toml:"generator" yaml:"generator" json:"generator"`
	Wrapper   WrapperConfig   `mapstructure:"wrapper" toml:"wrapper" yaml:"wrapper" json:"wrapper"`
	Log       LogConfig       `mapstructure:"log" toml:"log" yaml:"log" json:"log"`
}

// GeneratorConfig configures the code generator and its provider
type GeneratorConfig struct {
	Provider     string           `mapstructure:"provider" toml:"provider" yaml:"provider" json:"provider"` // csharp | vb
	Tab          string           `mapstructure:"tab" toml:"tab" yaml:"tab" json:"tab"`
	Output       string           `mapstructure:"output" toml:"output" yaml:"output" json:"output"` // output root directory
	BaseFileName string           `mapstructure:"base_file_name" toml:"base_file_name" yaml:"base_file_name" json:"base_file_name"`
	PostFormat   string           `mapstructure:"post_format" toml:"post_format" yaml:"post_format" json:"post_format"` // e.g. "dotnet format whitespace --include {file}"
	Options      provider.Options `mapstructure:"options" toml:"options" yaml:"options" json:"options"`
}

// WrapperConfig configures wrapper generation from descriptors
type WrapperConfig struct {
	Namespace         string `mapstructure:"namespace" toml:"namespace" yaml:"namespace" json:"namespace"`
	KeepNamespaces    bool   `mapstructure:"keep_namespaces" toml:"keep_namespaces" yaml:"keep_namespaces" json:"keep_namespaces"`
	LegacyCollections bool   `mapstructure:"legacy_collections" toml:"legacy_collections" yaml:"legacy_collections" json:"legacy_collections"`
	Naming            string `mapstructure:"naming" toml:"naming" yaml:"naming" json:"naming"` // default | pascal
}

// LogConfig configures logger output
type LogConfig struct {
	JSON bool `mapstructure:"json" toml:"json" yaml:"json" json:"json"`
}

// File system constants
const (
	DefaultDirPermissions  = 0755
	DefaultFilePermissions = 0644
)

// Config file names
const (
	ConfigFileName = "codedom.toml"
	UserConfigDir  = ".codedom"
	EnvPrefix      = "CODEDOM"
)
