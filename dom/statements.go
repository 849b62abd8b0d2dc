package dom

import (
	"github.com/teranos/codedom/ast"
	"github.com/teranos/codedom/errors"
)

// Stmt is a statement in the IR. A statement is owned by exactly one body
// (a method, constructor, accessor, branch, loop or try block); handing it
// to a second owner fails with errors.ErrStatementOwned.
type Stmt interface {
	ToNode() ast.Statement
	isOwned() bool
	setOwned()
}

type stmt struct {
	owned bool
	lower func() ast.Statement
}

func (s *stmt) ToNode() ast.Statement { return s.lower() }
func (s *stmt) isOwned() bool         { return s.owned }
func (s *stmt) setOwned()             { s.owned = true }

func newStmt(lower func() ast.Statement) *stmt { return &stmt{lower: lower} }

// claimAll takes ownership of stmts, or of none of them.
func claimAll(stmts []Stmt) error {
	seen := make(map[Stmt]bool, len(stmts))
	for i, s := range stmts {
		if s == nil {
			return errors.Wrapf(errors.NewArgumentNullError("statements"), "statement %d", i)
		}
		if s.isOwned() || seen[s] {
			return errors.Wrapf(errors.ErrStatementOwned, "statement %d", i)
		}
		seen[s] = true
	}
	for _, s := range stmts {
		s.setOwned()
	}
	return nil
}

func lowerStmts(stmts []Stmt) []ast.Statement {
	out := make([]ast.Statement, len(stmts))
	for i, s := range stmts {
		out[i] = s.ToNode()
	}
	return out
}

// Body is an ordered statement list owned by a method, constructor or accessor.
type Body struct {
	stmts []Stmt
}

// Add appends stmts in order. Either all are added or none.
func (b *Body) Add(stmts ...Stmt) error {
	if err := claimAll(stmts); err != nil {
		return err
	}
	b.stmts = append(b.stmts, stmts...)
	return nil
}

// Len returns the number of statements.
func (b *Body) Len() int { return len(b.stmts) }

// Statements returns a copy of the statement list.
func (b *Body) Statements() []Stmt {
	return append([]Stmt(nil), b.stmts...)
}

// ToNodes lowers the body.
func (b *Body) ToNodes() []ast.Statement { return lowerStmts(b.stmts) }

// Assign is left = right.
func Assign(left, right Expr) (Stmt, error) {
	if err := checkExprs("left", left); err != nil {
		return nil, err
	}
	if err := checkExprs("right", right); err != nil {
		return nil, err
	}
	return newStmt(func() ast.Statement {
		return &ast.AssignStatement{Left: left.ToNode(), Right: right.ToNode()}
	}), nil
}

// Eval evaluates e for its side effects.
func Eval(e Expr) (Stmt, error) {
	if err := checkExprs("expression", e); err != nil {
		return nil, err
	}
	return newStmt(func() ast.Statement {
		return &ast.ExpressionStatement{Expression: e.ToNode()}
	}), nil
}

// Return returns e.
func Return(e Expr) (Stmt, error) {
	if err := checkExprs("expression", e); err != nil {
		return nil, err
	}
	return newStmt(func() ast.Statement {
		return &ast.MethodReturnStatement{Expression: e.ToNode()}
	}), nil
}

// ReturnVoid returns without a value.
func ReturnVoid() Stmt {
	return newStmt(func() ast.Statement { return &ast.MethodReturnStatement{} })
}

// Comment is a plain comment line. An empty text is a blank comment.
func Comment(text string) Stmt {
	return newStmt(func() ast.Statement {
		return &ast.CommentStatement{Comment: ast.Comment{Text: text}}
	})
}

// SnippetStmt is raw target-language text on its own line.
func SnippetStmt(text string) (Stmt, error) {
	if text == "" {
		return nil, errors.NewArgumentNullError("text")
	}
	return newStmt(func() ast.Statement { return &ast.SnippetStatement{Value: text} }), nil
}

// If runs body when cond holds. There is no else branch; nest another If
// on the negated condition for alternation.
func If(cond Expr, body ...Stmt) (Stmt, error) {
	if err := checkExprs("condition", cond); err != nil {
		return nil, err
	}
	if err := claimAll(body); err != nil {
		return nil, err
	}
	return newStmt(func() ast.Statement {
		return &ast.ConditionStatement{Condition: cond.ToNode(), TrueStatements: lowerStmts(body)}
	}), nil
}

// IfNull runs body when e is identity-equal to null.
func IfNull(e Expr, body ...Stmt) (Stmt, error) {
	if err := checkExprs("expression", e); err != nil {
		return nil, err
	}
	return If(Identity(e, Null()), body...)
}

// IfNotNull runs body when e is not identity-equal to null.
func IfNotNull(e Expr, body ...Stmt) (Stmt, error) {
	if err := checkExprs("expression", e); err != nil {
		return nil, err
	}
	return If(NotIdentity(e, Null()), body...)
}

// Throw raises e.
func Throw(e Expr) (Stmt, error) {
	if err := checkExprs("expression", e); err != nil {
		return nil, err
	}
	return newStmt(func() ast.Statement {
		return &ast.ThrowExceptionStatement{ToThrow: e.ToNode()}
	}), nil
}

// ThrowIfNull is the entry guard for a reference parameter:
//
//	if (p == null) throw new System.ArgumentNullException("p");
func ThrowIfNull(p *ParameterDeclaration) (Stmt, error) {
	if p == nil {
		return nil, errors.NewArgumentNullError("param")
	}
	throw, err := Throw(New(ArgumentNullException, Literal(p.Name())))
	if err != nil {
		return nil, err
	}
	return IfNull(p.Ref(), throw)
}

// CatchClause handles one exception type inside a Try.
type CatchClause struct {
	owned bool
	typ   TypeRef
	local string
	body  []Stmt
}

// Catch builds a clause catching exType into local.
func Catch(exType TypeRef, local string, body ...Stmt) (*CatchClause, error) {
	if exType == nil {
		return nil, errors.NewArgumentNullError("exceptionType")
	}
	if local == "" {
		return nil, errors.NewArgumentNullError("local")
	}
	if err := claimAll(body); err != nil {
		return nil, err
	}
	return &CatchClause{typ: exType, local: local, body: body}, nil
}

// Try builds a try block with catch clauses and an optional finally block.
// At least one catch clause or finally statement is required.
func Try(body []Stmt, catches []*CatchClause, finally ...Stmt) (Stmt, error) {
	if len(catches) == 0 && len(finally) == 0 {
		return nil, errors.NewArgumentNullError("catches")
	}
	for i, c := range catches {
		if c == nil {
			return nil, errors.Wrapf(errors.NewArgumentNullError("catches"), "clause %d", i)
		}
		if c.owned {
			return nil, errors.Wrapf(errors.ErrStatementOwned, "catch clause %d", i)
		}
	}
	all := append(append([]Stmt(nil), body...), finally...)
	if err := claimAll(all); err != nil {
		return nil, err
	}
	for _, c := range catches {
		c.owned = true
	}
	return newStmt(func() ast.Statement {
		node := &ast.TryCatchFinallyStatement{
			TryStatements:     lowerStmts(body),
			FinallyStatements: lowerStmts(finally),
		}
		for _, c := range catches {
			node.CatchClauses = append(node.CatchClauses, &ast.CatchClause{
				LocalName:          c.local,
				CatchExceptionType: c.typ.TypeReference(),
				Statements:         lowerStmts(c.body),
			})
		}
		return node
	}), nil
}

// Var declares a local of type t. init may be nil.
func Var(t TypeRef, name string, init Expr) (Stmt, error) {
	if t == nil {
		return nil, errors.NewArgumentNullError("type")
	}
	if name == "" {
		return nil, errors.NewArgumentNullError("name")
	}
	if init != nil {
		if err := init.Err(); err != nil {
			return nil, err
		}
	}
	return newStmt(func() ast.Statement {
		node := &ast.VariableDeclarationStatement{Type: t.TypeReference(), Name: name}
		if init != nil {
			node.InitExpression = init.ToNode()
		}
		return node
	}), nil
}

// For is a loop with optional init and increment statements.
func For(init Stmt, test Expr, increment Stmt, body ...Stmt) (Stmt, error) {
	if err := checkExprs("test", test); err != nil {
		return nil, err
	}
	var owned []Stmt
	if init != nil {
		owned = append(owned, init)
	}
	if increment != nil {
		owned = append(owned, increment)
	}
	if err := claimAll(append(owned, body...)); err != nil {
		return nil, err
	}
	return newStmt(func() ast.Statement {
		node := &ast.IterationStatement{TestExpression: test.ToNode(), Statements: lowerStmts(body)}
		if init != nil {
			node.InitStatement = init.ToNode()
		}
		if increment != nil {
			node.IncrementStatement = increment.ToNode()
		}
		return node
	}), nil
}

// ForEach iterates collection through its enumerator, binding each element
// cast to elem as local:
//
//	for (IEnumerator localEnumerator = collection.GetEnumerator(); localEnumerator.MoveNext(); ) {
//	    T local = ((T)(localEnumerator.Current));
//	    body...
//	}
func ForEach(elem TypeRef, local string, collection Expr, body ...Stmt) (Stmt, error) {
	if elem == nil {
		return nil, errors.NewArgumentNullError("elementType")
	}
	if local == "" {
		return nil, errors.NewArgumentNullError("local")
	}
	if err := checkExprs("collection", collection); err != nil {
		return nil, err
	}

	enumerator := local + "Enumerator"
	init, err := Var(IEnumerator, enumerator, Call(collection, "GetEnumerator"))
	if err != nil {
		return nil, err
	}
	current, err := Var(elem, local, Cast(elem, Prop(VarRef(enumerator), "Current")))
	if err != nil {
		return nil, err
	}
	return For(init, Call(VarRef(enumerator), "MoveNext"), nil, append([]Stmt{current}, body...)...)
}
