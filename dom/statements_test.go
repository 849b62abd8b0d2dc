package dom

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teranos/codedom/ast"
	"github.com/teranos/codedom/errors"
)

func TestThrowIfNullLowering(t *testing.T) {
	c := newTestClass(t, "WidgetCollection")
	m, err := c.AddMethod("AddRange")
	require.NoError(t, err)
	p, err := m.AddParam(String, "items")
	require.NoError(t, err)

	guard, err := ThrowIfNull(p)
	require.NoError(t, err)

	cond, ok := guard.ToNode().(*ast.ConditionStatement)
	require.True(t, ok)
	assert.Empty(t, cond.FalseStatements)

	test := cond.Condition.(*ast.BinaryOperatorExpression)
	assert.Equal(t, ast.IdentityEquality, test.Operator)
	assert.Equal(t, "items", test.Left.(*ast.ArgumentReferenceExpression).ParameterName)
	assert.Nil(t, test.Right.(*ast.PrimitiveExpression).Value)

	require.Len(t, cond.TrueStatements, 1)
	throw := cond.TrueStatements[0].(*ast.ThrowExceptionStatement)
	create := throw.ToThrow.(*ast.ObjectCreateExpression)
	assert.Equal(t, "System.ArgumentNullException", create.CreateType.BaseType)
	require.Len(t, create.Parameters, 1)
	assert.Equal(t, "items", create.Parameters[0].(*ast.PrimitiveExpression).Value)

	_, err = ThrowIfNull(nil)
	assert.True(t, errors.IsArgumentNullError(err))
}

func TestStatementFactoriesRejectMissingArguments(t *testing.T) {
	tests := []struct {
		name string
		make func() (Stmt, error)
	}{
		{"assign nil left", func() (Stmt, error) { return Assign(nil, This()) }},
		{"assign bad right", func() (Stmt, error) { return Assign(VarRef("x"), Arg("")) }},
		{"eval nil", func() (Stmt, error) { return Eval(nil) }},
		{"return nil", func() (Stmt, error) { return Return(nil) }},
		{"snippet empty", func() (Stmt, error) { return SnippetStmt("") }},
		{"if nil cond", func() (Stmt, error) { return If(nil) }},
		{"if null nil", func() (Stmt, error) { return IfNull(nil) }},
		{"throw nil", func() (Stmt, error) { return Throw(nil) }},
		{"throw nested bad", func() (Stmt, error) { return Throw(New(nil)) }},
		{"var nil type", func() (Stmt, error) { return Var(nil, "x", nil) }},
		{"var no name", func() (Stmt, error) { return Var(Int32, "", nil) }},
		{"for nil test", func() (Stmt, error) { return For(nil, nil, nil) }},
		{"foreach nil type", func() (Stmt, error) { return ForEach(nil, "w", This()) }},
		{"foreach no local", func() (Stmt, error) { return ForEach(String, "", This()) }},
		{"foreach nil collection", func() (Stmt, error) { return ForEach(String, "w", nil) }},
		{"try without handlers", func() (Stmt, error) { return Try([]Stmt{ReturnVoid()}, nil) }},
		{"call bad arg", func() (Stmt, error) { return Eval(Call(This(), "Add", nil)) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := tt.make()
			assert.Nil(t, s)
			assert.True(t, errors.IsArgumentNullError(err), "got %v", err)
		})
	}
}

func TestStatementSingleOwnership(t *testing.T) {
	ret := ReturnVoid()
	body := &Body{}
	require.NoError(t, body.Add(ret))

	other := &Body{}
	err := other.Add(ret)
	assert.True(t, errors.Is(err, errors.ErrStatementOwned))
	assert.Equal(t, 0, other.Len())

	_, err = If(Literal(true), ret)
	assert.True(t, errors.Is(err, errors.ErrStatementOwned))

	// All-or-nothing: a failing batch claims nothing.
	fresh := Comment("fresh")
	err = other.Add(fresh, ret)
	assert.Error(t, err)
	require.NoError(t, other.Add(fresh))

	dup := Comment("dup")
	assert.Error(t, (&Body{}).Add(dup, dup))
}

func TestIfHasNoElseBranch(t *testing.T) {
	s, err := IfNotNull(Arg("x"), Comment("set"))
	require.NoError(t, err)

	cond := s.ToNode().(*ast.ConditionStatement)
	assert.Equal(t, ast.IdentityInequality, cond.Condition.(*ast.BinaryOperatorExpression).Operator)
	assert.Len(t, cond.TrueStatements, 1)
	assert.Nil(t, cond.FalseStatements)
}

func TestForEachLowering(t *testing.T) {
	widget := Must(Named("Widget"))
	add := Must(Eval(Call(This(), "Add", VarRef("widget"))))
	s, err := ForEach(widget, "widget", Arg("items"), add)
	require.NoError(t, err)

	loop := s.ToNode().(*ast.IterationStatement)
	init := loop.InitStatement.(*ast.VariableDeclarationStatement)
	assert.Equal(t, "widgetEnumerator", init.Name)
	assert.Equal(t, "System.Collections.IEnumerator", init.Type.BaseType)
	assert.Equal(t, "GetEnumerator", init.InitExpression.(*ast.MethodInvokeExpression).Method.MethodName)

	test := loop.TestExpression.(*ast.MethodInvokeExpression)
	assert.Equal(t, "MoveNext", test.Method.MethodName)
	assert.Nil(t, loop.IncrementStatement)

	require.Len(t, loop.Statements, 2)
	current := loop.Statements[0].(*ast.VariableDeclarationStatement)
	assert.Equal(t, "widget", current.Name)
	cast := current.InitExpression.(*ast.CastExpression)
	assert.Equal(t, "Widget", cast.TargetType.BaseType)
	assert.IsType(t, &ast.ExpressionStatement{}, loop.Statements[1])
}

func TestTryCatchFinally(t *testing.T) {
	catch, err := Catch(Exception, "ex", Must(Throw(VarRef("ex"))))
	require.NoError(t, err)

	s, err := Try([]Stmt{Must(Eval(Call(This(), "Open")))}, []*CatchClause{catch}, Must(Eval(Call(This(), "Close"))))
	require.NoError(t, err)

	node := s.ToNode().(*ast.TryCatchFinallyStatement)
	assert.Len(t, node.TryStatements, 1)
	require.Len(t, node.CatchClauses, 1)
	assert.Equal(t, "ex", node.CatchClauses[0].LocalName)
	assert.Equal(t, "System.Exception", node.CatchClauses[0].CatchExceptionType.BaseType)
	assert.Len(t, node.FinallyStatements, 1)

	_, err = Try(nil, []*CatchClause{catch})
	assert.True(t, errors.Is(err, errors.ErrStatementOwned), "catch clause reused")

	_, err = Catch(nil, "ex")
	assert.True(t, errors.IsArgumentNullError(err))
}

func TestLoweringIsFresh(t *testing.T) {
	s := Must(Return(Field(This(), "count")))
	a := s.ToNode().(*ast.MethodReturnStatement)
	b := s.ToNode().(*ast.MethodReturnStatement)
	assert.NotSame(t, a.Expression, b.Expression)
}

func TestLiteral(t *testing.T) {
	assert.NoError(t, Literal("x").Err())
	assert.NoError(t, Literal(3.5).Err())
	assert.NoError(t, Literal(nil).Err())
	assert.Error(t, Literal(struct{}{}).Err())
	assert.True(t, errors.IsArgumentNullError(Index(This()).Err()))
}
