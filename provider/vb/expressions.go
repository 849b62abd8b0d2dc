package vb

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/teranos/codedom/ast"
)

var typeAliases = map[string]string{
	"System.Boolean":  "Boolean",
	"System.Byte":     "Byte",
	"System.SByte":    "SByte",
	"System.Char":     "Char",
	"System.Decimal":  "Decimal",
	"System.Double":   "Double",
	"System.Single":   "Single",
	"System.Int16":    "Short",
	"System.Int32":    "Integer",
	"System.Int64":    "Long",
	"System.UInt16":   "UShort",
	"System.UInt32":   "UInteger",
	"System.UInt64":   "ULong",
	"System.Object":   "Object",
	"System.String":   "String",
	"System.DateTime": "Date",
}

// keywords is keyed in lower case; Visual Basic ignores identifier case.
var keywords = map[string]bool{}

func init() {
	for _, k := range strings.Fields(`addhandler addressof alias and andalso as boolean byref byte byval
		call case catch cbool cbyte cchar cdate cdbl cdec char cint class clng cobj const continue
		csbyte cshort csng cstr ctype cuint culng cushort date decimal declare default delegate dim
		directcast do double each else elseif end endif enum erase error event exit false finally for
		friend function get gettype getxmlnamespace global gosub goto handles if implements imports in
		inherits integer interface is isnot let lib like long loop me mod module mustinherit
		mustoverride mybase myclass namespace narrowing new next not nothing notinheritable
		notoverridable object of on operator option optional or orelse overloads overridable
		overrides paramarray partial private property protected public raiseevent readonly redim rem
		removehandler resume return sbyte select set shadows shared short single static step stop
		string structure sub synclock then throw to true try trycast typeof uinteger ulong ushort
		using variant wend when while widening with withevents writeonly xor`) {
		keywords[k] = true
	}
}

// identifier escapes keywords with brackets.
func identifier(name string) string {
	if keywords[strings.ToLower(name)] {
		return "[" + name + "]"
	}
	return name
}

// typeName renders a type reference. nil renders as Object since Visual
// Basic has no void type name; Sub and Function carry that distinction.
func typeName(t *ast.TypeReference) string {
	if t == nil {
		return "Object"
	}
	if t.IsArray() {
		return typeName(t.ArrayElementType) + "(" + strings.Repeat(",", t.ArrayRank-1) + ")"
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
	return t.BaseType + "(Of " + strings.Join(args, ", ") + ")"
}

var binaryOperators = map[ast.BinaryOperator]string{
	ast.IdentityEquality:   "Is",
	ast.IdentityInequality: "IsNot",
	ast.ValueEquality:      "=",
	ast.LessThan:           "<",
	ast.GreaterThan:        ">",
	ast.Add:                "+",
	ast.Subtract:           "-",
	ast.BooleanAnd:         "AndAlso",
	ast.BooleanOr:          "OrElse",
}

func expressions(es []ast.Expression) string {
	parts := make([]string, len(es))
	for i, e := range es {
		parts[i] = expression(e)
	}
	return strings.Join(parts, ", ")
}

func expression(e ast.Expression) string {
	switch e := e.(type) {
	case *ast.PrimitiveExpression:
		return literal(e.Value)
	case *ast.SnippetExpression:
		return e.Value
	case *ast.ThisReferenceExpression:
		return "Me"
	case *ast.BaseReferenceExpression:
		return "MyBase"
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
		return "New " + typeName(e.CreateType) + "(" + expressions(e.Parameters) + ")"
	case *ast.CastExpression:
		return "CType(" + expression(e.Expression) + "," + typeName(e.TargetType) + ")"
	case *ast.IndexerExpression:
		return expression(e.TargetObject) + "(" + expressions(e.Indices) + ")"
	case *ast.TypeOfExpression:
		return "GetType(" + typeName(e.Type) + ")"
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
		return "Nothing"
	case string:
		return quote(v)
	case bool:
		if v {
			return "True"
		}
		return "False"
	case float32:
		if named, ok := nonFinite(float64(v), "Single"); ok {
			return named
		}
		return strconv.FormatFloat(float64(v), 'g', -1, 32) + "!"
	case float64:
		if named, ok := nonFinite(v, "Double"); ok {
			return named
		}
		return strconv.FormatFloat(v, 'g', -1, 64) + "R"
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

// quote renders s as a Visual Basic string expression. Quotes are doubled;
// control characters have no escape syntax and are concatenated as ChrW
// calls.
func quote(s string) string {
	var parts []string
	var b strings.Builder
	flush := func() {
		if b.Len() > 0 {
			parts = append(parts, `"`+b.String()+`"`)
			b.Reset()
		}
	}
	for _, r := range s {
		switch {
		case r == '"':
			b.WriteString(`""`)
		case r < 0x20 || r == 0x2028 || r == 0x2029:
			flush()
			parts = append(parts, fmt.Sprintf("ChrW(%d)", r))
		default:
			b.WriteRune(r)
		}
	}
	flush()
	if len(parts) == 0 {
		return `""`
	}
	return strings.Join(parts, " & ")
}
