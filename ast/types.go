// Package ast is the target syntax tree that declarations lower into and
// backend providers print. Node shapes follow the classic CodeDom object
// model so a provider can emit either C# or Visual Basic from one tree.
//
// Nodes are plain structs with exported fields. Nothing here validates;
// the dom package guarantees well-formed input.
package ast

// MemberAttributes is the visibility and modifier set of a type or member.
type MemberAttributes uint32

const (
	Public MemberAttributes = 1 << iota
	Private
	Protected
	Internal
	Static
	Abstract
	Virtual
	Override
	Final
	New
	Const
)

// AccessMask selects the visibility bits.
const AccessMask = Public | Private | Protected | Internal

// Access returns the visibility portion of a.
func (a MemberAttributes) Access() MemberAttributes { return a & AccessMask }

// Has reports whether every bit in flag is set.
func (a MemberAttributes) Has(flag MemberAttributes) bool { return a&flag == flag }

// WithAccess replaces the visibility bits of a.
func (a MemberAttributes) WithAccess(access MemberAttributes) MemberAttributes {
	return a&^AccessMask | access.Access()
}

// TypeReference names a type by its full name. Array references carry the
// element type in ArrayElementType and a rank of at least one.
type TypeReference struct {
	BaseType         string
	ArrayElementType *TypeReference
	ArrayRank        int
	TypeArguments    []*TypeReference
}

// NewTypeReference returns a reference to baseType with optional generic arguments.
func NewTypeReference(baseType string, args ...*TypeReference) *TypeReference {
	return &TypeReference{BaseType: baseType, TypeArguments: args}
}

// ArrayOf returns a single-rank array reference over elem.
func ArrayOf(elem *TypeReference) *TypeReference {
	return &TypeReference{BaseType: elem.BaseType, ArrayElementType: elem, ArrayRank: 1}
}

// IsArray reports whether t is an array reference.
func (t *TypeReference) IsArray() bool {
	return t != nil && t.ArrayRank > 0 && t.ArrayElementType != nil
}

// Comment is a single comment line. DocComment lines are printed with the
// language's documentation prefix (/// or ''').
type Comment struct {
	Text       string
	DocComment bool
}

// ParameterDirection is how an argument is passed.
type ParameterDirection int

const (
	In ParameterDirection = iota
	Ref
	Out
)

// ParameterDeclaration is one formal parameter of a method, constructor or indexer.
type ParameterDeclaration struct {
	Type             *TypeReference
	Name             string
	Direction        ParameterDirection
	CustomAttributes []*AttributeDeclaration
}

// AttributeArgument is a positional (Name == "") or named attribute argument.
type AttributeArgument struct {
	Name  string
	Value Expression
}

// AttributeDeclaration is a custom attribute applied to a type or member.
type AttributeDeclaration struct {
	Type      *TypeReference
	Arguments []AttributeArgument
}

// Namespace is the unit a provider prints: imports, comments and the
// top-level types, in order.
type Namespace struct {
	Name     string
	Imports  []string
	Comments []Comment
	Types    []*TypeDeclaration
}
