package ast

// Expression is any node that yields a value.
type Expression interface {
	expressionNode()
}

// PrimitiveExpression is a literal. A nil Value is the null reference.
// Supported values are string, bool and the integer and float kinds.
type PrimitiveExpression struct {
	Value any
}

// SnippetExpression is emitted verbatim.
type SnippetExpression struct {
	Value string
}

type ThisReferenceExpression struct{}

type BaseReferenceExpression struct{}

// PropertySetValueReferenceExpression is the implicit value inside a setter.
type PropertySetValueReferenceExpression struct{}

type ArgumentReferenceExpression struct {
	ParameterName string
}

type VariableReferenceExpression struct {
	VariableName string
}

type FieldReferenceExpression struct {
	TargetObject Expression
	FieldName    string
}

type PropertyReferenceExpression struct {
	TargetObject Expression
	PropertyName string
}

type MethodReferenceExpression struct {
	TargetObject Expression
	MethodName   string
}

type MethodInvokeExpression struct {
	Method     *MethodReferenceExpression
	Parameters []Expression
}

type ObjectCreateExpression struct {
	CreateType *TypeReference
	Parameters []Expression
}

type CastExpression struct {
	TargetType *TypeReference
	Expression Expression
}

type IndexerExpression struct {
	TargetObject Expression
	Indices      []Expression
}

type TypeOfExpression struct {
	Type *TypeReference
}

// TypeReferenceExpression names a type in expression position, as the
// target of a static member access.
type TypeReferenceExpression struct {
	Type *TypeReference
}

// BinaryOperator enumerates the operators a BinaryOperatorExpression can carry.
type BinaryOperator int

const (
	IdentityEquality BinaryOperator = iota
	IdentityInequality
	ValueEquality
	LessThan
	GreaterThan
	Add
	Subtract
	BooleanAnd
	BooleanOr
)

type BinaryOperatorExpression struct {
	Left     Expression
	Operator BinaryOperator
	Right    Expression
}

func (*PrimitiveExpression) expressionNode()                 {}
func (*SnippetExpression) expressionNode()                   {}
func (*ThisReferenceExpression) expressionNode()             {}
func (*BaseReferenceExpression) expressionNode()             {}
func (*PropertySetValueReferenceExpression) expressionNode() {}
func (*ArgumentReferenceExpression) expressionNode()         {}
func (*VariableReferenceExpression) expressionNode()         {}
func (*FieldReferenceExpression) expressionNode()            {}
func (*PropertyReferenceExpression) expressionNode()         {}
func (*MethodReferenceExpression) expressionNode()           {}
func (*MethodInvokeExpression) expressionNode()              {}
func (*ObjectCreateExpression) expressionNode()              {}
func (*CastExpression) expressionNode()                      {}
func (*IndexerExpression) expressionNode()                   {}
func (*TypeOfExpression) expressionNode()                    {}
func (*TypeReferenceExpression) expressionNode()             {}
func (*BinaryOperatorExpression) expressionNode()            {}
