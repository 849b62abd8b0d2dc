package commands

import (
	"github.com/spf13/cobra"

	"github.com/teranos/codedom/am"
	"github.com/teranos/codedom/dom"
	"github.com/teranos/codedom/errors"
	"github.com/teranos/codedom/generator"
	"github.com/teranos/codedom/logger"
	"github.com/teranos/codedom/naming"
	"github.com/teranos/codedom/schema"
	"github.com/teranos/codedom/wrapper"
)

// sourceFlags are shared by generate and check.
type sourceFlags struct {
	goPackage         string
	namespace         string
	provider          string
	output            string
	keepNamespaces    bool
	legacyCollections bool
}

func (f *sourceFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.goPackage, "go-package", "", "Derive descriptors from a Go package pattern instead of a file")
	cmd.Flags().StringVarP(&f.namespace, "namespace", "n", "", "Target namespace (default: wrapper.namespace)")
	cmd.Flags().StringVarP(&f.provider, "provider", "p", "", "Output language: csharp, vb (default: generator.provider)")
	cmd.Flags().StringVarP(&f.output, "out", "o", "", "Output root directory (default: generator.output)")
	cmd.Flags().BoolVar(&f.keepNamespaces, "keep-namespaces", false, "Emit XML namespaces on types and members")
	cmd.Flags().BoolVar(&f.legacyCollections, "legacy-collections", false, "Emit CollectionBase collections instead of List<T>")
}

// apply overlays explicitly set flags onto cfg.
func (f *sourceFlags) apply(cmd *cobra.Command, cfg *am.Config) {
	if f.namespace != "" {
		cfg.Wrapper.Namespace = f.namespace
	}
	if f.provider != "" {
		cfg.Generator.Provider = f.provider
	}
	if f.output != "" {
		cfg.Generator.Output = f.output
	}
	if cmd.Flags().Changed("keep-namespaces") {
		cfg.Wrapper.KeepNamespaces = f.keepNamespaces
	}
	if cmd.Flags().Changed("legacy-collections") {
		cfg.Wrapper.LegacyCollections = f.legacyCollections
	}
}

// loadConfig returns a copy of the loaded config so flag overrides never
// leak into the cached instance.
func loadConfig() (*am.Config, error) {
	cfg, err := am.Load()
	if err != nil {
		return nil, errors.Wrap(err, "failed to load config")
	}
	c := *cfg
	return &c, nil
}

// loadDocument reads descriptors from path or, when goPackage is set, from
// Go source.
func loadDocument(path, goPackage, namespace string) (*schema.Document, error) {
	switch {
	case goPackage != "" && path != "":
		return nil, errors.New("pass either a descriptor file or --go-package, not both")
	case goPackage != "":
		return schema.FromGoPackage(goPackage, namespace)
	case path != "":
		return schema.LoadFile(path)
	}
	return nil, errors.NewArgumentNullError("descriptor")
}

// buildNamespace runs the wrapper generator over doc. A namespace named in
// the document wins over the configured one.
func buildNamespace(cfg *am.Config, doc *schema.Document) (*dom.NamespaceDeclaration, error) {
	conformer, err := naming.ByName(cfg.Wrapper.Naming)
	if err != nil {
		return nil, err
	}
	ns := cfg.Wrapper.Namespace
	if doc.Namespace != "" {
		ns = doc.Namespace
	}

	opts := []wrapper.Option{wrapper.WithConformer(conformer)}
	if cfg.Wrapper.KeepNamespaces {
		opts = append(opts, wrapper.WithKeepNamespaces())
	}
	if cfg.Wrapper.LegacyCollections {
		opts = append(opts, wrapper.WithLegacyCollections())
	}

	w, err := wrapper.New(ns, opts...)
	if err != nil {
		return nil, err
	}
	if err := w.AddAll(doc); err != nil {
		return nil, err
	}
	logger.Debugw("Built namespace",
		logger.FieldNamespace, ns,
		logger.FieldCount, w.Namespace().Len())
	return w.Namespace(), nil
}

// newCodeGenerator configures a CodeGenerator from cfg.
func newCodeGenerator(cfg *am.Config) (*generator.CodeGenerator, error) {
	p, err := generator.ProviderByName(cfg.Generator.Provider)
	if err != nil {
		return nil, err
	}
	g := generator.New(p)
	g.Tab = cfg.GetTab()
	g.Options = cfg.Generator.Options
	g.PostFormat = cfg.Generator.PostFormat
	return g, nil
}
