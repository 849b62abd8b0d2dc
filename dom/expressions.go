package dom

import (
	"github.com/teranos/codedom/ast"
	"github.com/teranos/codedom/errors"
)

// Expr is an expression in the IR. Expressions are immutable; operands are
// captured at construction and every ToNode call builds a fresh subtree.
//
// Expression factories never return nil. A factory given a missing operand
// returns an expression whose Err is an argument error; statement factories
// refuse such expressions, so nothing is built from a bad operand.
type Expr interface {
	ToNode() ast.Expression
	Err() error
}

type badExpr struct{ err error }

func (e badExpr) ToNode() ast.Expression { return &ast.SnippetExpression{} }
func (e badExpr) Err() error             { return e.err }

func missing(param string) Expr {
	return badExpr{err: errors.NewArgumentNullError(param)}
}

// checkExprs returns the first error among operands, including nil operands.
func checkExprs(param string, es ...Expr) error {
	for _, e := range es {
		if e == nil {
			return errors.NewArgumentNullError(param)
		}
		if err := e.Err(); err != nil {
			return err
		}
	}
	return nil
}

// node is the shared shape of all valid expressions.
type node struct {
	lower func() ast.Expression
}

func (n node) ToNode() ast.Expression { return n.lower() }
func (n node) Err() error             { return nil }

func lowerAll(es []Expr) []ast.Expression {
	out := make([]ast.Expression, len(es))
	for i, e := range es {
		out[i] = e.ToNode()
	}
	return out
}

// This is the current instance (this / Me).
func This() Expr {
	return node{func() ast.Expression { return &ast.ThisReferenceExpression{} }}
}

// Base is the base-class instance (base / MyBase).
func Base() Expr {
	return node{func() ast.Expression { return &ast.BaseReferenceExpression{} }}
}

// Null is the null reference (null / Nothing).
func Null() Expr {
	return node{func() ast.Expression { return &ast.PrimitiveExpression{} }}
}

// Value is the implicit value inside a property setter.
func Value() Expr {
	return node{func() ast.Expression { return &ast.PropertySetValueReferenceExpression{} }}
}

// Literal is a primitive constant: string, bool, integer or float.
// Literal(nil) is the same as Null.
func Literal(v any) Expr {
	switch v.(type) {
	case nil, string, bool, int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64, float32, float64:
	default:
		return badExpr{err: errors.Newf("unsupported literal type %T", v)}
	}
	return node{func() ast.Expression { return &ast.PrimitiveExpression{Value: v} }}
}

// Snippet is raw target-language text in expression position.
func Snippet(text string) Expr {
	if text == "" {
		return missing("text")
	}
	return node{func() ast.Expression { return &ast.SnippetExpression{Value: text} }}
}

// Arg references a method parameter by name.
func Arg(name string) Expr {
	if name == "" {
		return missing("name")
	}
	return node{func() ast.Expression { return &ast.ArgumentReferenceExpression{ParameterName: name} }}
}

// VarRef references a local variable by name.
func VarRef(name string) Expr {
	if name == "" {
		return missing("name")
	}
	return node{func() ast.Expression { return &ast.VariableReferenceExpression{VariableName: name} }}
}

// Field is target.name for a field.
func Field(target Expr, name string) Expr {
	if err := checkExprs("target", target); err != nil {
		return badExpr{err}
	}
	if name == "" {
		return missing("name")
	}
	return node{func() ast.Expression {
		return &ast.FieldReferenceExpression{TargetObject: target.ToNode(), FieldName: name}
	}}
}

// Prop is target.name for a property.
func Prop(target Expr, name string) Expr {
	if err := checkExprs("target", target); err != nil {
		return badExpr{err}
	}
	if name == "" {
		return missing("name")
	}
	return node{func() ast.Expression {
		return &ast.PropertyReferenceExpression{TargetObject: target.ToNode(), PropertyName: name}
	}}
}

// Call invokes target.method(args...).
func Call(target Expr, method string, args ...Expr) Expr {
	if err := checkExprs("target", target); err != nil {
		return badExpr{err}
	}
	if method == "" {
		return missing("method")
	}
	if err := checkExprs("args", args...); err != nil {
		return badExpr{err}
	}
	return node{func() ast.Expression {
		return &ast.MethodInvokeExpression{
			Method:     &ast.MethodReferenceExpression{TargetObject: target.ToNode(), MethodName: method},
			Parameters: lowerAll(args),
		}
	}}
}

// New constructs an instance of t with args.
func New(t TypeRef, args ...Expr) Expr {
	if t == nil {
		return missing("type")
	}
	if err := checkExprs("args", args...); err != nil {
		return badExpr{err}
	}
	return node{func() ast.Expression {
		return &ast.ObjectCreateExpression{CreateType: t.TypeReference(), Parameters: lowerAll(args)}
	}}
}

// Cast converts e to t.
func Cast(t TypeRef, e Expr) Expr {
	if t == nil {
		return missing("type")
	}
	if err := checkExprs("expression", e); err != nil {
		return badExpr{err}
	}
	return node{func() ast.Expression {
		return &ast.CastExpression{TargetType: t.TypeReference(), Expression: e.ToNode()}
	}}
}

// Index is target[indices...].
func Index(target Expr, indices ...Expr) Expr {
	if err := checkExprs("target", target); err != nil {
		return badExpr{err}
	}
	if len(indices) == 0 {
		return missing("indices")
	}
	if err := checkExprs("indices", indices...); err != nil {
		return badExpr{err}
	}
	return node{func() ast.Expression {
		return &ast.IndexerExpression{TargetObject: target.ToNode(), Indices: lowerAll(indices)}
	}}
}

// TypeOf is typeof(t) / GetType(t).
func TypeOf(t TypeRef) Expr {
	if t == nil {
		return missing("type")
	}
	return node{func() ast.Expression { return &ast.TypeOfExpression{Type: t.TypeReference()} }}
}

// TypeExpr names t in expression position, for static member access.
func TypeExpr(t TypeRef) Expr {
	if t == nil {
		return missing("type")
	}
	return node{func() ast.Expression { return &ast.TypeReferenceExpression{Type: t.TypeReference()} }}
}

func binary(left Expr, op ast.BinaryOperator, right Expr) Expr {
	if err := checkExprs("left", left); err != nil {
		return badExpr{err}
	}
	if err := checkExprs("right", right); err != nil {
		return badExpr{err}
	}
	return node{func() ast.Expression {
		return &ast.BinaryOperatorExpression{Left: left.ToNode(), Operator: op, Right: right.ToNode()}
	}}
}

// Identity is reference equality (== on references / Is).
func Identity(left, right Expr) Expr { return binary(left, ast.IdentityEquality, right) }

// NotIdentity is reference inequality (!= / IsNot).
func NotIdentity(left, right Expr) Expr { return binary(left, ast.IdentityInequality, right) }

// Equal is value equality (== / =).
func Equal(left, right Expr) Expr { return binary(left, ast.ValueEquality, right) }

// Less is left < right.
func Less(left, right Expr) Expr { return binary(left, ast.LessThan, right) }

// Plus is left + right.
func Plus(left, right Expr) Expr { return binary(left, ast.Add, right) }

// And is the short-circuit boolean and.
func And(left, right Expr) Expr { return binary(left, ast.BooleanAnd, right) }

// Or is the short-circuit boolean or.
func Or(left, right Expr) Expr { return binary(left, ast.BooleanOr, right) }
