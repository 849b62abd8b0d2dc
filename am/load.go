package am

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/teranos/codedom/errors"
	"github.com/teranos/codedom/logger"
)

var globalConfig *Config
var viperInstance *viper.Viper

// Load reads the codedom configuration using Viper. The result is cached
// until Reset.
func Load() (*Config, error) {
	if globalConfig != nil {
		return globalConfig, nil
	}

	cfg, err := LoadWithViper(initViper())
	if err != nil {
		return nil, err
	}
	globalConfig = cfg
	return globalConfig, nil
}

// GetViper returns the Viper instance for advanced configuration access
func GetViper() *viper.Viper {
	return initViper()
}

// LoadWithViper loads configuration using a provided Viper instance
func LoadWithViper(v *viper.Viper) (*Config, error) {
	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal config")
	}
	return &config, nil
}

// LoadFromFile loads configuration from a specific file path, on top of
// defaults and without environment overrides.
func LoadFromFile(configPath string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(configPath)
	v.SetConfigType("toml")
	SetDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		return nil, errors.Wrapf(err, "failed to read config file %s", configPath)
	}

	cfg, err := LoadWithViper(v)
	if err != nil {
		return nil, errors.Wrapf(err, "from %s", configPath)
	}
	return cfg, nil
}

// Reset clears the cached configuration
func Reset() {
	globalConfig = nil
	viperInstance = nil
}

func initViper() *viper.Viper {
	if viperInstance != nil {
		return viperInstance
	}

	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	SetDefaults(v)

	for _, src := range Sources() {
		if !src.Exists {
			continue
		}
		if err := mergeFile(v, src.Path); err != nil {
			logger.Warnw("Skipping unreadable config file",
				logger.FieldPath, src.Path,
				logger.FieldError, err)
		}
	}

	viperInstance = v
	return v
}

func mergeFile(v *viper.Viper, path string) error {
	tmp := viper.New()
	tmp.SetConfigFile(path)
	tmp.SetConfigType("toml")
	if err := tmp.ReadInConfig(); err != nil {
		return err
	}
	return v.MergeConfigMap(tmp.AllSettings())
}

// Source is one config file in the cascade.
type Source struct {
	Level  string
	Path   string
	Exists bool
}

// Sources lists config files in precedence order, lowest first: the user
// file in ~/.codedom, then the nearest project codedom.toml. Environment
// variables with the CODEDOM_ prefix override both.
func Sources() []Source {
	var out []Source
	if home, err := os.UserHomeDir(); err == nil {
		out = append(out, source("user", filepath.Join(home, UserConfigDir, ConfigFileName)))
	}
	if p := FindProjectConfig(); p != "" {
		out = append(out, source("project", p))
	}
	return out
}

func source(level, path string) Source {
	_, err := os.Stat(path)
	return Source{Level: level, Path: path, Exists: err == nil}
}

// FindProjectConfig walks up from the working directory looking for
// codedom.toml. It returns "" when none is found.
func FindProjectConfig() string {
	dir, err := os.Getwd()
	if err != nil {
		return ""
	}
	return findConfigFrom(dir)
}

func findConfigFrom(dir string) string {
	for {
		p := filepath.Join(dir, ConfigFileName)
		if _, err := os.Stat(p); err == nil {
			return p
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return ""
		}
		dir = parent
	}
}

// Get returns a configuration value using dot notation
func Get(key string) interface{} {
	return initViper().Get(key)
}

// GetString returns a configuration value as string using dot notation
func GetString(key string) string {
	return initViper().GetString(key)
}

// GetBool returns a configuration value as bool using dot notation
func GetBool(key string) bool {
	return initViper().GetBool(key)
}
