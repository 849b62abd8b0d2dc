package am

import (
	"strings"

	"github.com/teranos/codedom/errors"
	"github.com/teranos/codedom/generator"
	"github.com/teranos/codedom/naming"
	"github.com/teranos/codedom/provider"
)

// Validate checks that the configuration is usable
func (c *Config) Validate() error {
	if _, err := generator.ProviderByName(c.Generator.Provider); err != nil {
		return errors.Wrap(err, "generator.provider")
	}

	if strings.Trim(c.Generator.Tab, " \t") != "" {
		return errors.Newf("generator.tab must contain only spaces or tabs, got %q", c.Generator.Tab)
	}

	if c.Generator.BaseFileName == "" {
		return errors.New("generator.base_file_name cannot be empty")
	}

	switch c.Generator.Options.BracingStyle {
	case "", provider.BracingBlock, provider.BracingC:
	default:
		return errors.Newf("generator.options.bracing_style must be %q or %q, got %q",
			provider.BracingBlock, provider.BracingC, c.Generator.Options.BracingStyle)
	}

	if c.Wrapper.Namespace == "" {
		return errors.New("wrapper.namespace cannot be empty")
	}

	if _, err := naming.ByName(c.Wrapper.Naming); err != nil {
		return errors.Wrap(err, "wrapper.naming")
	}

	return nil
}
