package csharp

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/teranos/codedom/ast"
)

// typeAliases maps platform type names to C# keywords.
var typeAliases = map[string]string{
	"System.Boolean": "bool",
	"System.Byte":    "byte",
	"System.SByte":   "sbyte",
	"System.Char":    "char",
	"System.Decimal": "decimal",
	"System.Double":  "double",
	"System.Single":  "float",
	"System.Int16":   "short",
	"System.Int32":   "int",
	"System.Int64":   "long",
	"System.UInt16":  "ushort",
	"System.UInt32":  "uint",
	"System.UInt64":  "ulong",
	"System.Object":  "object",
	"System.String":  "string",
	"System.Void":    "void",
}

var keywords = map[string]bool{}

func init() {
	for _, k := range strings.Fields(`abstract as base bool break byte case catch char checked class const
		continue decimal default delegate do double else enum event explicit extern false finally
		fixed float for foreach goto if implicit in int interface internal is lock long namespace
		new null object operator out override params private protected public readonly ref return
		sbyte sealed short sizeof stackalloc static string struct switch this throw true try typeof
		uint ulong unchecked unsafe ushort using virtual void volatile while`) {
		keywords[k] = true
	}
}

// identifier escapes C# keywords with '@'.
func identifier(name string) string {
	if keywords[name] {
		return "@" + name
	}
	return name
}

// typeName renders a type reference. nil is void.
func typeName(t *ast.TypeReference) string {
	if t == nil {
		return "void"
	}
	if t.IsArray() {
		return typeName(t.ArrayElementType) + "[" + strings.Repeat(",", t.ArrayRank-1) + "]"
	}
	if alias, ok := typeAliases[t.BaseType]; ok && len(t.TypeArguments) == 0 {
		return alias
	}
	if len(t.TypeArguments) == 0 {
		return t.BaseType
	}
	args := make([]string, len(t.TypeArguments))
	for i, a := range t.TypeArguments {
		args[i] = typeName(a)
	}
	return t.BaseType + "<" + strings.Join(args, ", ") + ">"
}

var binaryOperators = map[ast.BinaryOperator]string{
	ast.IdentityEquality:   "==",
	ast.IdentityInequality: "!=",
	ast.ValueEquality:      "==",
	ast.LessThan:           "<",
	ast.GreaterThan:        ">",
	ast.Add:                "+",
	ast.Subtract:           "-",
	ast.BooleanAnd:         "&&",
	ast.BooleanOr:          "||",
}

func expressions(es []ast.Expression) string {
	parts := make([]string, len(es))
	for i, e := range es {
		parts[i] = expression(e)
	}
	return strings.Join(parts, ", ")
}

// expression renders e. Binary operations and casts are fully
// parenthesized so operator precedence never depends on context.
func expression(e ast.Expression) string {
	switch e := e.(type) {
	case *ast.PrimitiveExpression:
		return literal(e.Value)
	case *ast.SnippetExpression:
		return e.Value
	case *ast.ThisReferenceExpression:
		return "this"
	case *ast.BaseReferenceExpression:
		return "base"
	case *ast.PropertySetValueReferenceExpression:
		return "value"
	case *ast.ArgumentReferenceExpression:
		return identifier(e.ParameterName)
	case *ast.VariableReferenceExpression:
		return identifier(e.VariableName)
	case *ast.FieldReferenceExpression:
		return qualified(e.TargetObject, e.FieldName)
	case *ast.PropertyReferenceExpression:
		return qualified(e.TargetObject, e.PropertyName)
	case *ast.MethodReferenceExpression:
		return qualified(e.TargetObject, e.MethodName)
	case *ast.MethodInvokeExpression:
		return expression(e.Method) + "(" + expressions(e.Parameters) + ")"
	case *ast.ObjectCreateExpression:
		return "new " + typeName(e.CreateType) + "(" + expressions(e.Parameters) + ")"
	case *ast.CastExpression:
		return "((" + typeName(e.TargetType) + ")(" + expression(e.Expression) + "))"
	case *ast.IndexerExpression:
		return expression(e.TargetObject) + "[" + expressions(e.Indices) + "]"
	case *ast.TypeOfExpression:
		return "typeof(" + typeName(e.Type) + ")"
	case *ast.TypeReferenceExpression:
		return typeName(e.Type)
	case *ast.BinaryOperatorExpression:
		return "(" + expression(e.Left) + " " + binaryOperators[e.Operator] + " " + expression(e.Right) + ")"
	}
	return ""
}

func qualified(target ast.Expression, name string) string {
	if target == nil {
		return identifier(name)
	}
	return expression(target) + "." + identifier(name)
}

func literal(v any) string {
	switch v := v.(type) {
	case nil:
		return "null"
	case string:
		return quote(v)
	case bool:
		return strconv.FormatBool(v)
	case float32:
		if named, ok := nonFinite(float64(v), "float"); ok {
			return named
		}
		return strconv.FormatFloat(float64(v), 'g', -1, 32) + "F"
	case float64:
		if named, ok := nonFinite(v, "double"); ok {
			return named
		}
		return strconv.FormatFloat(v, 'g', -1, 64) + "D"
	}
	return fmt.Sprint(v)
}

// nonFinite names the NaN and infinity constants of typ, which have no
// literal form.
func nonFinite(v float64, typ string) (string, bool) {
	switch {
	case math.IsNaN(v):
		return typ + ".NaN", true
	case math.IsInf(v, 1):
		return typ + ".PositiveInfinity", true
	case math.IsInf(v, -1):
		return typ + ".NegativeInfinity", true
	}
	return "", false
}

// quote renders s as a regular C# string literal.
func quote(s string) string {
	var b strings.Builder
	b.WriteByte('"')
	for _, r := range s {
		switch r {
		case '"':
			b.WriteString(`\"`)
		case '\\':
			b.WriteString(`\\`)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		case '\t':
			b.WriteString(`\t`)
		case 0:
			b.WriteString(`\0`)
		default:
			if r < 0x20 || r == 0x2028 || r == 0x2029 {
				fmt.Fprintf(&b, `\u%04x`, r)
			} else {
				b.WriteRune(r)
			}
		}
	}
	b.WriteByte('"')
	return b.String()
}
