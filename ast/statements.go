package ast

// Statement is any node that can appear in a body.
type Statement interface {
	statementNode()
}

type AssignStatement struct {
	Left  Expression
	Right Expression
}

type ExpressionStatement struct {
	Expression Expression
}

// MethodReturnStatement returns Expression, or nothing when it is nil.
type MethodReturnStatement struct {
	Expression Expression
}

type CommentStatement struct {
	Comment Comment
}

// SnippetStatement is emitted verbatim on its own line.
type SnippetStatement struct {
	Value string
}

// ConditionStatement is an if. FalseStatements exists for printers; the
// declaration layer never fills it.
type ConditionStatement struct {
	Condition       Expression
	TrueStatements  []Statement
	FalseStatements []Statement
}

type ThrowExceptionStatement struct {
	ToThrow Expression
}

type CatchClause struct {
	LocalName          string
	CatchExceptionType *TypeReference
	Statements         []Statement
}

type TryCatchFinallyStatement struct {
	TryStatements     []Statement
	CatchClauses      []*CatchClause
	FinallyStatements []Statement
}

type VariableDeclarationStatement struct {
	Type           *TypeReference
	Name           string
	InitExpression Expression
}

// IterationStatement is a for loop. InitStatement and IncrementStatement
// may be nil.
type IterationStatement struct {
	InitStatement      Statement
	TestExpression     Expression
	IncrementStatement Statement
	Statements         []Statement
}

func (*AssignStatement) statementNode()              {}
func (*ExpressionStatement) statementNode()          {}
func (*MethodReturnStatement) statementNode()        {}
func (*CommentStatement) statementNode()             {}
func (*SnippetStatement) statementNode()             {}
func (*ConditionStatement) statementNode()           {}
func (*ThrowExceptionStatement) statementNode()      {}
func (*TryCatchFinallyStatement) statementNode()     {}
func (*VariableDeclarationStatement) statementNode() {}
func (*IterationStatement) statementNode()           {}
