package am

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teranos/codedom/errors"
	"github.com/teranos/codedom/provider"
)

func TestLoad_Defaults(t *testing.T) {
	v := viper.New()
	SetDefaults(v)

	cfg, err := LoadWithViper(v)
	require.NoError(t, err)

	assert.Equal(t, "csharp", cfg.Generator.Provider)
	assert.Equal(t, "    ", cfg.Generator.Tab)
	assert.Equal(t, "generated", cfg.Generator.Output)
	assert.Equal(t, "Generated", cfg.Generator.BaseFileName)
	assert.Equal(t, provider.DefaultOptions(), cfg.Generator.Options)
	assert.Equal(t, "Generated", cfg.Wrapper.Namespace)
	assert.Equal(t, "default", cfg.Wrapper.Naming)
	assert.False(t, cfg.Log.JSON)
	require.NoError(t, cfg.Validate())
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), ConfigFileName)
	content := `
[generator]
provider = "vb"
tab = "\t"
output = "out"

[generator.options]
bracing_style = "C"
header = false

[wrapper]
namespace = "Acme.Orders"
keep_namespaces = true
naming = "pascal"
`
	require.NoError(t, os.WriteFile(path, []byte(content), DefaultFilePermissions))

	cfg, err := LoadFromFile(path)
	require.NoError(t, err)

	assert.Equal(t, "vb", cfg.Generator.Provider)
	assert.Equal(t, "\t", cfg.Generator.Tab)
	assert.Equal(t, "out", cfg.GetOutput())
	assert.Equal(t, provider.BracingC, cfg.Generator.Options.BracingStyle)
	assert.False(t, cfg.Generator.Options.Header)
	// untouched keys keep their defaults
	assert.True(t, cfg.Generator.Options.BlankLinesBetweenMembers)
	assert.Equal(t, "Generated", cfg.Generator.BaseFileName)
	assert.Equal(t, "Acme.Orders", cfg.Wrapper.Namespace)
	assert.True(t, cfg.Wrapper.KeepNamespaces)
	require.NoError(t, cfg.Validate())
}

func TestLoadFromFile_Missing(t *testing.T) {
	_, err := LoadFromFile(filepath.Join(t.TempDir(), "nope.toml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read config file")
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"defaults", func(*Config) {}, ""},
		{"vb provider", func(c *Config) { c.Generator.Provider = "VB" }, ""},
		{"unknown provider", func(c *Config) { c.Generator.Provider = "cobol" }, "generator.provider"},
		{"non-blank tab", func(c *Config) { c.Generator.Tab = "--" }, "generator.tab"},
		{"empty tab uses fallback", func(c *Config) { c.Generator.Tab = "" }, ""},
		{"empty base file name", func(c *Config) { c.Generator.BaseFileName = "" }, "generator.base_file_name"},
		{"bad bracing", func(c *Config) { c.Generator.Options.BracingStyle = "K&R" }, "bracing_style"},
		{"empty namespace", func(c *Config) { c.Wrapper.Namespace = "" }, "wrapper.namespace"},
		{"bad naming", func(c *Config) { c.Wrapper.Naming = "kebab" }, "wrapper.naming"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestValidate_UnknownProviderIsSentinel(t *testing.T) {
	cfg := Default()
	cfg.Generator.Provider = "fortran"
	assert.True(t, errors.Is(cfg.Validate(), errors.ErrUnknownProvider))
}

func TestGetters(t *testing.T) {
	var cfg Config
	assert.Equal(t, "generated", cfg.GetOutput())
	assert.Equal(t, "    ", cfg.GetTab())
	assert.Contains(t, Default().String(), "Provider: csharp")
}

func TestFindConfigFrom(t *testing.T) {
	root := t.TempDir()
	nested := filepath.Join(root, "a", "b")
	require.NoError(t, os.MkdirAll(nested, DefaultDirPermissions))

	assert.Equal(t, "", findConfigFrom(nested))

	cfgPath := filepath.Join(root, ConfigFileName)
	require.NoError(t, os.WriteFile(cfgPath, []byte("[wrapper]\nnamespace = \"X\"\n"), DefaultFilePermissions))
	assert.Equal(t, cfgPath, findConfigFrom(nested))
}

func TestLoad_EnvOverride(t *testing.T) {
	Reset()
	t.Cleanup(Reset)
	t.Setenv("HOME", t.TempDir())
	t.Setenv("CODEDOM_GENERATOR_PROVIDER", "vb")
	t.Chdir(t.TempDir())

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "vb", cfg.Generator.Provider)
	assert.Equal(t, "vb", GetString("generator.provider"))

	again, err := Load()
	require.NoError(t, err)
	assert.Same(t, cfg, again)
}

func TestLoad_ProjectOverridesUser(t *testing.T) {
	Reset()
	t.Cleanup(Reset)
	home := t.TempDir()
	t.Setenv("HOME", home)
	require.NoError(t, os.MkdirAll(filepath.Join(home, UserConfigDir), DefaultDirPermissions))
	require.NoError(t, os.WriteFile(filepath.Join(home, UserConfigDir, ConfigFileName),
		[]byte("[wrapper]\nnamespace = \"User\"\nnaming = \"pascal\"\n"), DefaultFilePermissions))

	project := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(project, ConfigFileName),
		[]byte("[wrapper]\nnamespace = \"Project\"\n"), DefaultFilePermissions))
	t.Chdir(project)

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "Project", cfg.Wrapper.Namespace)
	assert.Equal(t, "pascal", cfg.Wrapper.Naming)

	srcs := Sources()
	require.Len(t, srcs, 2)
	assert.Equal(t, "user", srcs[0].Level)
	assert.True(t, srcs[0].Exists)
	assert.Equal(t, "project", srcs[1].Level)
}
