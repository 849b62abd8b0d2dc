package dom

import (
	"strings"

	"github.com/teranos/codedom/ast"
	"github.com/teranos/codedom/errors"
)

// TypeRef is the uniform handle for "a type" in the declaration model.
// Implemented by ResolvedType, NamedType and the class and enum declarations,
// so a member can reference a platform type, a textual name or a type being
// generated in the same run without special-casing any of them.
type TypeRef interface {
	// Name is the unqualified name, e.g. "String" or "Widget[]".
	Name() string
	// FullName is the namespace-qualified name.
	FullName() string
	// TypeReference lowers the handle into a target type reference.
	TypeReference() *ast.TypeReference
}

// ResolvedType is a known platform type: a namespace and a name, optionally
// an array over another TypeRef or a generic instantiation.
type ResolvedType struct {
	namespace string
	name      string
	elem      TypeRef
	args      []TypeRef
}

// Resolved returns a reference to the platform type fullName
// ("System.Collections.IEnumerator"), optionally instantiated with args.
func Resolved(fullName string, args ...TypeRef) (*ResolvedType, error) {
	if strings.TrimSpace(fullName) == "" {
		return nil, errors.NewArgumentNullError("fullName")
	}
	for i, a := range args {
		if a == nil {
			return nil, errors.Wrapf(errors.NewArgumentNullError("args"), "type argument %d", i)
		}
	}
	t := &ResolvedType{name: fullName, args: args}
	if i := strings.LastIndexByte(fullName, '.'); i >= 0 {
		t.namespace, t.name = fullName[:i], fullName[i+1:]
	}
	return t, nil
}

// ArrayOf returns a single-rank array type over elem.
func ArrayOf(elem TypeRef) (*ResolvedType, error) {
	if elem == nil {
		return nil, errors.NewArgumentNullError("elem")
	}
	return &ResolvedType{elem: elem}, nil
}

// Namespace is empty for array types and unqualified names.
func (t *ResolvedType) Namespace() string { return t.namespace }

// Elem returns the element type of an array, or nil.
func (t *ResolvedType) Elem() TypeRef { return t.elem }

// IsArray reports whether t is an array type.
func (t *ResolvedType) IsArray() bool { return t.elem != nil }

func (t *ResolvedType) Name() string {
	if t.elem != nil {
		return t.elem.Name() + "[]"
	}
	return t.name + t.argSuffix(TypeRef.Name)
}

func (t *ResolvedType) FullName() string {
	if t.elem != nil {
		return t.elem.FullName() + "[]"
	}
	full := t.name
	if t.namespace != "" {
		full = t.namespace + "." + t.name
	}
	return full + t.argSuffix(TypeRef.FullName)
}

func (t *ResolvedType) argSuffix(name func(TypeRef) string) string {
	if len(t.args) == 0 {
		return ""
	}
	parts := make([]string, len(t.args))
	for i, a := range t.args {
		parts[i] = name(a)
	}
	return "<" + strings.Join(parts, ", ") + ">"
}

// Stem returns an identifier-shaped stem for t, used to derive member and
// class names from a type: "Widget[]" gives "WidgetArray" and
// "List<String>" gives "ListOfString".
func Stem(t TypeRef) string {
	r, ok := t.(*ResolvedType)
	if !ok {
		return t.Name()
	}
	if r.elem != nil {
		return Stem(r.elem) + "Array"
	}
	if len(r.args) == 0 {
		return r.name
	}
	parts := make([]string, len(r.args))
	for i, a := range r.args {
		parts[i] = Stem(a)
	}
	return r.name + "Of" + strings.Join(parts, "And")
}

func (t *ResolvedType) TypeReference() *ast.TypeReference {
	if t.elem != nil {
		return ast.ArrayOf(t.elem.TypeReference())
	}
	base := t.name
	if t.namespace != "" {
		base = t.namespace + "." + t.name
	}
	ref := ast.NewTypeReference(base)
	for _, a := range t.args {
		ref.TypeArguments = append(ref.TypeArguments, a.TypeReference())
	}
	return ref
}

// NamedType is a type known only by its textual name. It lowers to a plain
// reference and never resolves against generated declarations.
type NamedType struct {
	name string
}

// Named returns a textual type reference.
func Named(name string) (*NamedType, error) {
	if strings.TrimSpace(name) == "" {
		return nil, errors.NewArgumentNullError("name")
	}
	return &NamedType{name: name}, nil
}

func (t *NamedType) Name() string     { return t.name }
func (t *NamedType) FullName() string { return t.name }

func (t *NamedType) TypeReference() *ast.TypeReference {
	return ast.NewTypeReference(t.name)
}

func mustResolved(fullName string, args ...TypeRef) *ResolvedType {
	return Must(Resolved(fullName, args...))
}

// Platform types used by the templates.
var (
	Object                = mustResolved("System.Object")
	String                = mustResolved("System.String")
	Int32                 = mustResolved("System.Int32")
	Int64                 = mustResolved("System.Int64")
	Bool                  = mustResolved("System.Boolean")
	Double                = mustResolved("System.Double")
	Decimal               = mustResolved("System.Decimal")
	DateTime              = mustResolved("System.DateTime")
	Void                  = mustResolved("System.Void")
	ArgumentNullException = mustResolved("System.ArgumentNullException")
	Exception             = mustResolved("System.Exception")
	FlagsAttribute        = mustResolved("System.FlagsAttribute")
	IEnumerator           = mustResolved("System.Collections.IEnumerator")
	IEnumerable           = mustResolved("System.Collections.IEnumerable")
	CollectionBase        = mustResolved("System.Collections.CollectionBase")
)

// GenericList returns System.Collections.Generic.List<elem>.
func GenericList(elem TypeRef) (*ResolvedType, error) {
	if elem == nil {
		return nil, errors.NewArgumentNullError("elem")
	}
	return Resolved("System.Collections.Generic.List", elem)
}

// IsVoid reports whether t is nil or System.Void.
func IsVoid(t TypeRef) bool {
	return t == nil || t.FullName() == Void.FullName()
}
