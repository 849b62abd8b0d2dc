package vb

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
		e.w.Line("If " + expression(s.Condition) + " Then")
		e.block("", func() { e.statements(s.TrueStatements) })
		if len(s.FalseStatements) > 0 {
			e.w.Line("Else")
			e.block("", func() { e.statements(s.FalseStatements) })
		}
		e.w.Line("End If")
	case *ast.TryCatchFinallyStatement:
		e.w.Line("Try")
		e.block("", func() { e.statements(s.TryStatements) })
		for _, c := range s.CatchClauses {
			e.w.Line("Catch " + identifier(c.LocalName) + " As " + typeName(c.CatchExceptionType))
			e.block("", func() { e.statements(c.Statements) })
		}
		if len(s.FinallyStatements) > 0 {
			e.w.Line("Finally")
			e.block("", func() { e.statements(s.FinallyStatements) })
		}
		e.w.Line("End Try")
	case *ast.IterationStatement:
		// Visual Basic's For only counts, so the general loop is a Do While
		// with the increment appended to the body.
		if s.InitStatement != nil {
			e.statement(s.InitStatement)
		}
		e.w.Line("Do While " + expression(s.TestExpression))
		e.block("Loop", func() {
			e.statements(s.Statements)
			if s.IncrementStatement != nil {
				e.statement(s.IncrementStatement)
			}
		})
	default:
		e.w.Line(simple(s))
	}
}

func simple(s ast.Statement) string {
	switch s := s.(type) {
	case *ast.AssignStatement:
		return expression(s.Left) + " = " + expression(s.Right)
	case *ast.ExpressionStatement:
		return expression(s.Expression)
	case *ast.MethodReturnStatement:
		if s.Expression == nil {
			return "Return"
		}
		return "Return " + expression(s.Expression)
	case *ast.ThrowExceptionStatement:
		return "Throw " + expression(s.ToThrow)
	case *ast.VariableDeclarationStatement:
		out := "Dim " + identifier(s.Name) + " As " + typeName(s.Type)
		if s.InitExpression != nil {
			out += " = " + expression(s.InitExpression)
		}
		return out
	}
	return ""
}
