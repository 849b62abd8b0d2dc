package generator

import (
	"sort"
	"strings"

	"github.com/teranos/codedom/errors"
	"github.com/teranos/codedom/provider"
	"github.com/teranos/codedom/provider/csharp"
	"github.com/teranos/codedom/provider/vb"
)

var providerFactories = map[string]func() provider.Provider{
	"csharp":      func() provider.Provider { return csharp.New() },
	"cs":          func() provider.Provider { return csharp.New() },
	"c#":          func() provider.Provider { return csharp.New() },
	"vb":          func() provider.Provider { return vb.New() },
	"visualbasic": func() provider.Provider { return vb.New() },
}

// ProviderByName returns a fresh provider for a language name, ignoring case.
func ProviderByName(name string) (provider.Provider, error) {
	factory, ok := providerFactories[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return nil, errors.Wrapf(errors.ErrUnknownProvider, "%q (known: %s)", name, strings.Join(ProviderNames(), ", "))
	}
	return factory(), nil
}

// ProviderNames lists the accepted provider names, sorted.
func ProviderNames() []string {
	names := make([]string, 0, len(providerFactories))
	for n := range providerFactories {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
