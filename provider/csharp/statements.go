package csharp

import (
	"strings"

	"github.com/teranos/codedom/ast"
)

func (e *emitter) statements(stmts []ast.Statement) {
	for _, s := range stmts {
		e.statement(s)
	}
}

func (e *emitter) statement(s ast.Statement) {
	switch s := s.(type) {
	case *ast.CommentStatement:
		e.comment(s.Comment)
	case *ast.SnippetStatement:
		for _, line := range strings.Split(s.Value, "\n") {
			e.w.Line(line)
		}
	case *ast.ConditionStatement:
		e.w.Write("if (" + expression(s.Condition) + ")")
		e.open()
		e.statements(s.TrueStatements)
		if len(s.FalseStatements) > 0 {
			e.closeThen("else")
			e.open()
			e.statements(s.FalseStatements)
		}
		e.close()
	case *ast.TryCatchFinallyStatement:
		e.w.Write("try")
		e.open()
		e.statements(s.TryStatements)
		for _, c := range s.CatchClauses {
			e.closeThen("catch (" + typeName(c.CatchExceptionType) + " " + identifier(c.LocalName) + ")")
			e.open()
			e.statements(c.Statements)
		}
		if len(s.FinallyStatements) > 0 {
			e.closeThen("finally")
			e.open()
			e.statements(s.FinallyStatements)
		}
		e.close()
	case *ast.IterationStatement:
		e.w.Write("for (" + inline(s.InitStatement) + "; " + expression(s.TestExpression) + "; " + inline(s.IncrementStatement) + ")")
		e.open()
		e.statements(s.Statements)
		e.close()
	default:
		e.w.Line(inline(s) + ";")
	}
}

// inline renders a simple statement without its terminator, as it appears
// in a for header.
func inline(s ast.Statement) string {
	switch s := s.(type) {
	case nil:
		return ""
	case *ast.AssignStatement:
		return expression(s.Left) + " = " + expression(s.Right)
	case *ast.ExpressionStatement:
		return expression(s.Expression)
	case *ast.MethodReturnStatement:
		if s.Expression == nil {
			return "return"
		}
		return "return " + expression(s.Expression)
	case *ast.ThrowExceptionStatement:
		return "throw " + expression(s.ToThrow)
	case *ast.VariableDeclarationStatement:
		out := typeName(s.Type) + " " + identifier(s.Name)
		if s.InitExpression != nil {
			out += " = " + expression(s.InitExpression)
		}
		return out
	case *ast.SnippetStatement:
		return strings.TrimSuffix(s.Value, ";")
	}
	return ""
}
