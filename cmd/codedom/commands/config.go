package commands

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	gotoml "github.com/pelletier/go-toml/v2"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/teranos/codedom/am"
	"github.com/teranos/codedom/errors"
)

// ConfigCmd manages codedom configuration
var ConfigCmd = &cobra.Command{
	Use:   "config",
	Short: "Show and manage codedom configuration",
	Long: `Display and manage codedom configuration.

Configuration sources (in order of precedence):
1. Command line flags
2. Environment variables (CODEDOM_* prefix, e.g. CODEDOM_GENERATOR_PROVIDER)
3. Project config (./codedom.toml, searched up directories)
4. User config (~/.codedom/codedom.toml)
5. Default values

Examples:
  codedom config show                # Show current configuration
  codedom config show --format yaml  # Show configuration as YAML
  codedom config get wrapper.naming  # Get a single value
  codedom config init                # Write ./codedom.toml with defaults
  codedom config validate            # Validate current configuration
  codedom config where               # Show which files are loaded`,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current configuration",
	RunE:  runConfigShow,
}

var configGetCmd = &cobra.Command{
	Use:   "get <key>",
	Short: "Get a configuration value by dotted key",
	Args:  cobra.ExactArgs(1),
	RunE:  runConfigGet,
}

var configInitCmd = &cobra.Command{
	Use:   "init [path]",
	Short: "Write a config file with default values",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runConfigInit,
}

var configValidateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate current configuration",
	RunE:  runConfigValidate,
}

var configWhereCmd = &cobra.Command{
	Use:   "where",
	Short: "Show where configuration is loaded from",
	RunE:  runConfigWhere,
}

var (
	configFormat string
	configForce  bool
)

func init() {
	configShowCmd.Flags().StringVar(&configFormat, "format", "toml", "Output format: toml, json, yaml")
	configInitCmd.Flags().BoolVarP(&configForce, "force", "f", false, "Overwrite an existing file")

	ConfigCmd.AddCommand(configShowCmd)
	ConfigCmd.AddCommand(configGetCmd)
	ConfigCmd.AddCommand(configInitCmd)
	ConfigCmd.AddCommand(configValidateCmd)
	ConfigCmd.AddCommand(configWhereCmd)
}

// marshalConfig renders cfg in format.
func marshalConfig(cfg *am.Config, format string) ([]byte, error) {
	switch strings.ToLower(format) {
	case "json":
		data, err := json.MarshalIndent(cfg, "", "  ")
		if err != nil {
			return nil, errors.Wrap(err, "failed to marshal config to JSON")
		}
		return append(data, '\n'), nil
	case "yaml":
		data, err := yaml.Marshal(cfg)
		if err != nil {
			return nil, errors.Wrap(err, "failed to marshal config to YAML")
		}
		return append([]byte("# codedom configuration\n"), data...), nil
	case "toml":
		data, err := gotoml.Marshal(cfg)
		if err != nil {
			return nil, errors.Wrap(err, "failed to marshal config to TOML")
		}
		return append([]byte("# codedom configuration\n"), data...), nil
	}
	return nil, errors.Newf("unsupported format: %s (supported: toml, json, yaml)", format)
}

func runConfigShow(cmd *cobra.Command, args []string) error {
	cfg, err := am.Load()
	if err != nil {
		return errors.Wrap(err, "failed to load config")
	}
	data, err := marshalConfig(cfg, configFormat)
	if err != nil {
		return err
	}
	_, err = cmd.OutOrStdout().Write(data)
	return err
}

func runConfigGet(cmd *cobra.Command, args []string) error {
	key := args[0]
	if !am.GetViper().IsSet(key) {
		return errors.Newf("configuration key %q not found", key)
	}
	fmt.Fprintln(cmd.OutOrStdout(), am.Get(key))
	return nil
}

// writeDefaultConfig encodes the default config to path.
func writeDefaultConfig(path string, force bool) error {
	if _, err := os.Stat(path); err == nil && !force {
		return errors.WithHint(errors.Newf("%s already exists", path), "pass --force to overwrite it")
	}
	var buf bytes.Buffer
	buf.WriteString("# codedom configuration\n")
	if err := toml.NewEncoder(&buf).Encode(am.Default()); err != nil {
		return errors.Wrap(err, "failed to encode default config")
	}
	if err := os.MkdirAll(filepath.Dir(path), am.DefaultDirPermissions); err != nil {
		return errors.Wrapf(err, "failed to create directory for %s", path)
	}
	if err := os.WriteFile(path, buf.Bytes(), am.DefaultFilePermissions); err != nil {
		return errors.Wrapf(err, "failed to write %s", path)
	}
	return nil
}

func runConfigInit(cmd *cobra.Command, args []string) error {
	path := am.ConfigFileName
	if len(args) == 1 {
		path = args[0]
	}
	if err := writeDefaultConfig(path, configForce); err != nil {
		return err
	}
	pterm.Success.Printfln("Wrote %s", path)
	return nil
}

func runConfigValidate(cmd *cobra.Command, args []string) error {
	cfg, err := am.Load()
	if err != nil {
		return errors.Wrap(err, "failed to load config")
	}
	if err := cfg.Validate(); err != nil {
		return errors.Wrap(err, "configuration validation failed")
	}
	pterm.Success.Println("Configuration is valid")
	return nil
}

func runConfigWhere(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "Configuration cascade (later overrides earlier):")
	fmt.Fprintln(out, "  [DEFAULT]  Built-in defaults")
	for _, src := range am.Sources() {
		state := "missing"
		if src.Exists {
			state = "loaded"
		}
		fmt.Fprintf(out, "  [%s]  %s (%s)\n", strings.ToUpper(src.Level), src.Path, state)
	}

	var env []string
	for _, kv := range os.Environ() {
		if strings.HasPrefix(kv, am.EnvPrefix+"_") {
			env = append(env, kv[:strings.IndexByte(kv, '=')])
		}
	}
	if len(env) == 0 {
		fmt.Fprintf(out, "  [ENV]      no %s_* variables set\n", am.EnvPrefix)
		return nil
	}
	fmt.Fprintf(out, "  [ENV]      %s\n", strings.Join(env, ", "))
	return nil
}
