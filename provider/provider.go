// Package provider defines the backend contract that turns a lowered
// namespace into source text, plus the pieces every backend shares: an
// indenting writer, the generated-file banner and member ordering.
//
// Backends live in subpackages (provider/csharp, provider/vb). They are
// stateless; construct one per use with New.
package provider

import (
	"io"
	"sort"

	"github.com/teranos/codedom/ast"
	"github.com/teranos/codedom/version"
)

// Provider emits one namespace as source text in a single language.
type Provider interface {
	// Language is the canonical provider name, e.g. "csharp".
	Language() string
	// FileExtension includes the leading dot, e.g. ".cs".
	FileExtension() string
	// GenerateNamespace writes ns to w, indenting with tab.
	GenerateNamespace(w io.Writer, ns *ast.Namespace, tab string, opts Options) error
}

// Bracing styles.
const (
	BracingBlock = "Block" // opening brace on the declaring line
	BracingC     = "C"     // opening brace on its own line
)

// Options are formatting switches forwarded verbatim to the backend.
// Backends ignore switches that have no meaning in their language.
type Options struct {
	BlankLinesBetweenMembers bool   `mapstructure:"blank_lines_between_members" json:"blank_lines_between_members" yaml:"blank_lines_between_members" toml:"blank_lines_between_members"`
	BracingStyle             string `mapstructure:"bracing_style" json:"bracing_style" yaml:"bracing_style" toml:"bracing_style"`
	ElseOnClosing            bool   `mapstructure:"else_on_closing" json:"else_on_closing" yaml:"else_on_closing" toml:"else_on_closing"`
	VerbatimOrder            bool   `mapstructure:"verbatim_order" json:"verbatim_order" yaml:"verbatim_order" toml:"verbatim_order"`
	Header                   bool   `mapstructure:"header" json:"header" yaml:"header" toml:"header"`
}

// DefaultOptions returns the options used when none are configured.
func DefaultOptions() Options {
	return Options{
		BlankLinesBetweenMembers: true,
		BracingStyle:             BracingBlock,
		Header:                   true,
	}
}

// VersionMarker prefixes the banner line that carries the generator
// version. Directory comparison skips lines containing it.
const VersionMarker = "Generator version:"

// HeaderLines is the auto-generated banner, without comment prefixes.
func HeaderLines() []string {
	return []string{
		"------------------------------------------------------------------------------",
		"<auto-generated>",
		"    This code was generated by codedom.",
		"    " + VersionMarker + " " + version.Get().Stamp(),
		"",
		"    Changes to this file may cause incorrect behavior and will be lost if",
		"    the code is regenerated.",
		"</auto-generated>",
		"------------------------------------------------------------------------------",
	}
}

// OrderMembers returns the members in emission order: fields, constructors,
// properties, methods, then nested types, each group in declaration order.
// With VerbatimOrder the declaration order is kept as is.
func OrderMembers(members []ast.TypeMember, opts Options) []ast.TypeMember {
	out := append([]ast.TypeMember(nil), members...)
	if opts.VerbatimOrder {
		return out
	}
	sort.SliceStable(out, func(i, j int) bool {
		return ast.KindOf(out[i]) < ast.KindOf(out[j])
	})
	return out
}
