package dom

import (
	"github.com/teranos/codedom/ast"
	"github.com/teranos/codedom/errors"
)

// EnumDeclaration is an enum with ordered named fields. Flags enums carry
// [System.Flags] when lowered.
type EnumDeclaration struct {
	declaration
	ns     *NamespaceDeclaration
	fields []*EnumField
	flags  bool
}

func newEnum(name string, ns *NamespaceDeclaration) *EnumDeclaration {
	return &EnumDeclaration{
		declaration: declaration{name: name, attributes: ast.Public},
		ns:          ns,
	}
}

func (e *EnumDeclaration) FullName() string { return e.ns.name + "." + e.name }

func (e *EnumDeclaration) TypeReference() *ast.TypeReference {
	return ast.NewTypeReference(e.name)
}

// Namespace returns the owning namespace.
func (e *EnumDeclaration) Namespace() *NamespaceDeclaration { return e.ns }

// IsFlags reports whether the enum is a bit set.
func (e *EnumDeclaration) IsFlags() bool { return e.flags }

// SetFlags marks the enum as a bit set.
func (e *EnumDeclaration) SetFlags(flags bool) { e.flags = flags }

// EnumField is one enum member with an optional explicit value.
type EnumField struct {
	declaration
	value    int64
	hasValue bool
}

// SetValue gives the member an explicit value.
func (f *EnumField) SetValue(v int64) {
	f.value, f.hasValue = v, true
}

// Value returns the explicit value and whether one was set.
func (f *EnumField) Value() (int64, bool) { return f.value, f.hasValue }

// AddField appends a member named after the capitalized form of name.
func (e *EnumDeclaration) AddField(name string) (*EnumField, error) {
	if name == "" {
		return nil, errors.NewArgumentNullError("name")
	}
	conformed, err := e.ns.conformer.ToCapitalized(name)
	if err != nil {
		return nil, err
	}
	for _, f := range e.fields {
		if f.name == conformed {
			return nil, errors.NewDuplicateNameError("enum "+e.name, conformed)
		}
	}
	f := &EnumField{declaration: declaration{name: conformed, attributes: ast.Public}}
	e.fields = append(e.fields, f)
	return f, nil
}

// Fields returns the members in declaration order.
func (e *EnumDeclaration) Fields() []*EnumField {
	return append([]*EnumField(nil), e.fields...)
}

// ToNode lowers the enum.
func (e *EnumDeclaration) ToNode() *ast.TypeDeclaration {
	node := &ast.TypeDeclaration{MemberBase: e.memberBase(), IsEnum: true}
	if e.flags {
		node.CustomAttributes = append(node.CustomAttributes, &ast.AttributeDeclaration{Type: FlagsAttribute.TypeReference()})
	}
	for _, f := range e.fields {
		field := &ast.MemberField{MemberBase: f.memberBase(), Type: ast.NewTypeReference(e.name)}
		if f.hasValue {
			field.InitExpression = &ast.PrimitiveExpression{Value: f.value}
		}
		node.Members = append(node.Members, field)
	}
	return node
}
