package wrapper

import (
	"strings"

	"github.com/teranos/codedom/dom"
	"github.com/teranos/codedom/logger"
	"github.com/teranos/codedom/schema"
)

// builtins maps descriptor type names to platform types.
var builtins = map[string]func() (dom.TypeRef, error){
	"string":   fixed(dom.String),
	"int":      fixed(dom.Int32),
	"long":     fixed(dom.Int64),
	"bool":     fixed(dom.Bool),
	"boolean":  fixed(dom.Bool),
	"double":   fixed(dom.Double),
	"decimal":  fixed(dom.Decimal),
	"dateTime": fixed(dom.DateTime),
	"date":     fixed(dom.DateTime),
	"object":   fixed(dom.Object),
	"anyURI":   fixed(dom.String),
	"short":    resolved("System.Int16"),
	"byte":     resolved("System.Byte"),
	"float":    resolved("System.Single"),
}

func fixed(t dom.TypeRef) func() (dom.TypeRef, error) {
	return func() (dom.TypeRef, error) { return t, nil }
}

func resolved(fullName string) func() (dom.TypeRef, error) {
	return func() (dom.TypeRef, error) { return dom.Resolved(fullName) }
}

// MapType resolves a descriptor type name, memoizing the answer:
//   - names registered through Add resolve to their generated declaration
//   - builtin names resolve to platform types
//   - "T[]" resolves to an array of MapType("T")
//   - dotted names resolve to that platform type
//   - anything else becomes a plain reference by name
//
// Resolution happens when a field is added, so a type referenced before it
// is registered keeps the plain reference in every field mapped so far.
// Registering it later only affects later lookups.
func (g *Generator) MapType(name string) (dom.TypeRef, error) {
	if t, ok := g.memo[name]; ok {
		return t, nil
	}

	var (
		t   dom.TypeRef
		err error
	)
	switch {
	case strings.HasSuffix(name, schema.ArraySuffix):
		elem, elemErr := g.MapType(strings.TrimSuffix(name, schema.ArraySuffix))
		if elemErr != nil {
			return nil, elemErr
		}
		t, err = dom.ArrayOf(elem)
	case builtins[name] != nil:
		t, err = builtins[name]()
	case strings.Contains(name, "."):
		t, err = dom.Resolved(name)
	default:
		g.log().Debugw("unregistered type, using plain reference", logger.FieldType, name)
		t, err = dom.Named(name)
	}
	if err != nil {
		return nil, err
	}
	g.memo[name] = t
	return t, nil
}

// register makes name resolve to decl from now on.
func (g *Generator) register(name string, decl dom.TypeRef) {
	g.registered[name] = decl
	g.memo[name] = decl
}

// Registered reports whether name was added as a generated type.
func (g *Generator) Registered(name string) bool {
	_, ok := g.registered[name]
	return ok
}
