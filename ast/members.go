package ast

// TypeMember is a field, property, method, constructor or nested type.
type TypeMember interface {
	Member() *MemberBase
}

// MemberBase carries what every member has in common.
type MemberBase struct {
	Name             string
	Attributes       MemberAttributes
	Comments         []Comment
	CustomAttributes []*AttributeDeclaration
}

func (m *MemberBase) Member() *MemberBase { return m }

type MemberField struct {
	MemberBase
	Type           *TypeReference
	InitExpression Expression
}

// MemberProperty is a property, or an indexer when Parameters is non-empty.
// PrivateImplementationType marks an explicit interface implementation;
// ImplementationTypes lists interfaces the member implicitly implements.
type MemberProperty struct {
	MemberBase
	Type                      *TypeReference
	HasGet                    bool
	HasSet                    bool
	GetStatements             []Statement
	SetStatements             []Statement
	Parameters                []*ParameterDeclaration
	PrivateImplementationType *TypeReference
	ImplementationTypes       []*TypeReference
}

// MemberMethod has a nil ReturnType for void methods.
type MemberMethod struct {
	MemberBase
	ReturnType                *TypeReference
	Parameters                []*ParameterDeclaration
	Statements                []Statement
	PrivateImplementationType *TypeReference
	ImplementationTypes       []*TypeReference
}

type Constructor struct {
	MemberBase
	Parameters          []*ParameterDeclaration
	Statements          []Statement
	BaseConstructorArgs []Expression
}

// TypeDeclaration is a class or enum. BaseType is the base class, or nil.
// Enum members are MemberFields whose InitExpression, when set, is the
// explicit value.
type TypeDeclaration struct {
	MemberBase
	IsClass    bool
	IsEnum     bool
	BaseType   *TypeReference
	Interfaces []*TypeReference
	Members    []TypeMember
}

// MemberKind orders members when a provider groups them.
type MemberKind int

const (
	KindField MemberKind = iota
	KindConstructor
	KindProperty
	KindMethod
	KindNestedType
)

// KindOf classifies m.
func KindOf(m TypeMember) MemberKind {
	switch m.(type) {
	case *MemberField:
		return KindField
	case *Constructor:
		return KindConstructor
	case *MemberProperty:
		return KindProperty
	case *MemberMethod:
		return KindMethod
	default:
		return KindNestedType
	}
}
