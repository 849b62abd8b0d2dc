package wrapper

import (
	"go.uber.org/zap"

	"github.com/teranos/codedom/naming"
)

// Option configures a Generator.
type Option func(*Generator)

// WithKeepNamespaces carries descriptor XML namespaces into the
// serialization attributes.
func WithKeepNamespaces() Option {
	return func(g *Generator) { g.keepNamespaces = true }
}

// WithLegacyCollections generates array collections over CollectionBase
// with the full typed member set instead of deriving from List<T>.
func WithLegacyCollections() Option {
	return func(g *Generator) { g.legacyCollections = true }
}

// WithConformer sets the naming rules of the generated namespace.
func WithConformer(c naming.Conformer) Option {
	return func(g *Generator) { g.ns.SetConformer(c) }
}

// WithLogger replaces the component logger.
func WithLogger(l *zap.SugaredLogger) Option {
	return func(g *Generator) { g.logger = l }
}
