package csharp

import (
	"bytes"
	"math"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teranos/codedom/ast"
	"github.com/teranos/codedom/dom"
	"github.com/teranos/codedom/errors"
	"github.com/teranos/codedom/provider"
)

func buildSample(t *testing.T) *ast.Namespace {
	t.Helper()
	ns, err := dom.NewNamespace("Foo.Bar")
	require.NoError(t, err)
	ns.AddImport("System")

	baz, err := ns.AddClass("baz")
	require.NoError(t, err)
	baz.Doc().Summary = "A <sample> type."

	reset, err := baz.AddMethod("Reset")
	require.NoError(t, err)

	name, err := baz.AddField(dom.String, "name")
	require.NoError(t, err)
	name.SetAccess(ast.Private)

	clear, err := dom.Assign(name.Ref(), dom.Null())
	require.NoError(t, err)
	guard, err := dom.IfNotNull(name.Ref(), clear)
	require.NoError(t, err)
	require.NoError(t, reset.Body().Add(guard))

	_, err = baz.AddProperty(name, true, true, false)
	require.NoError(t, err)
	baz.AddConstructor()

	return ns.ToNode()
}

func generate(t *testing.T, ns *ast.Namespace, opts provider.Options) string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, New().GenerateNamespace(&buf, ns, "    ", opts))
	return buf.String()
}

func TestGenerateNamespace(t *testing.T) {
	opts := provider.DefaultOptions()
	opts.Header = false

	want := `namespace Foo.Bar {
    using System;

    /// <summary>
    /// A &lt;sample&gt; type.
    /// </summary>
    public class Baz {
        private string name;

        public Baz() {
        }

        public string Name {
            get {
                return this.name;
            }
            set {
                this.name = value;
            }
        }

        public void Reset() {
            if ((this.name != null)) {
                this.name = null;
            }
        }
    }
}
`
	got := generate(t, buildSample(t), opts)
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("GenerateNamespace() mismatch (-want +got):\n%s", diff)
	}
}

func TestGenerateCBracingVerbatimOrder(t *testing.T) {
	opts := provider.Options{BracingStyle: provider.BracingC, VerbatimOrder: true}
	got := generate(t, buildSample(t), opts)

	assert.Contains(t, got, "namespace Foo.Bar\n{\n")
	// Declaration order: method, field, property, constructor.
	reset := strings.Index(got, "public void Reset()")
	field := strings.Index(got, "private string name;")
	ctor := strings.Index(got, "public Baz()")
	require.True(t, reset >= 0 && field >= 0 && ctor >= 0)
	assert.Less(t, reset, field)
	assert.Less(t, field, ctor)
	assert.NotContains(t, got, "\n\n        private", "no blank lines between members")
}

func TestGenerateHeader(t *testing.T) {
	got := generate(t, buildSample(t), provider.DefaultOptions())
	lines := strings.Split(got, "\n")
	assert.Equal(t, "// ------------------------------------------------------------------------------", lines[0])
	assert.Contains(t, got, "// "+"    "+provider.VersionMarker)
	assert.Contains(t, got, "// </auto-generated>\n")
}

func TestGenerateNilNamespace(t *testing.T) {
	err := New().GenerateNamespace(&bytes.Buffer{}, nil, "    ", provider.DefaultOptions())
	assert.True(t, errors.IsArgumentNullError(err))
}

func TestExpressionRendering(t *testing.T) {
	widget := ast.NewTypeReference("Widget")
	tests := []struct {
		name string
		expr ast.Expression
		want string
	}{
		{"null", &ast.PrimitiveExpression{}, "null"},
		{"string escapes", &ast.PrimitiveExpression{Value: "a\"b\\\n"}, `"a\"b\\\n"`},
		{"bool", &ast.PrimitiveExpression{Value: true}, "true"},
		{"int", &ast.PrimitiveExpression{Value: 42}, "42"},
		{"double", &ast.PrimitiveExpression{Value: 1.5}, "1.5D"},
		{"NaN", &ast.PrimitiveExpression{Value: math.NaN()}, "double.NaN"},
		{"positive infinity", &ast.PrimitiveExpression{Value: math.Inf(1)}, "double.PositiveInfinity"},
		{"negative infinity", &ast.PrimitiveExpression{Value: math.Inf(-1)}, "double.NegativeInfinity"},
		{"float NaN", &ast.PrimitiveExpression{Value: float32(math.NaN())}, "float.NaN"},
		{"float", &ast.PrimitiveExpression{Value: float32(0.25)}, "0.25F"},
		{"cast", &ast.CastExpression{TargetType: widget, Expression: &ast.VariableReferenceExpression{VariableName: "x"}}, "((Widget)(x))"},
		{"indexer", &ast.IndexerExpression{
			TargetObject: &ast.PropertyReferenceExpression{TargetObject: &ast.ThisReferenceExpression{}, PropertyName: "List"},
			Indices:      []ast.Expression{&ast.ArgumentReferenceExpression{ParameterName: "index"}},
		}, "this.List[index]"},
		{"new", &ast.ObjectCreateExpression{CreateType: ast.NewTypeReference("System.ArgumentNullException"), Parameters: []ast.Expression{&ast.PrimitiveExpression{Value: "items"}}}, `new System.ArgumentNullException("items")`},
		{"typeof", &ast.TypeOfExpression{Type: ast.NewTypeReference("System.String")}, "typeof(string)"},
		{"keyword arg", &ast.ArgumentReferenceExpression{ParameterName: "string"}, "@string"},
		{"identity", &ast.BinaryOperatorExpression{Left: &ast.ArgumentReferenceExpression{ParameterName: "x"}, Operator: ast.IdentityEquality, Right: &ast.PrimitiveExpression{}}, "(x == null)"},
		{"invoke", &ast.MethodInvokeExpression{
			Method:     &ast.MethodReferenceExpression{TargetObject: &ast.BaseReferenceExpression{}, MethodName: "Add"},
			Parameters: []ast.Expression{&ast.PropertySetValueReferenceExpression{}},
		}, "base.Add(value)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, expression(tt.expr))
		})
	}
}

func TestTypeName(t *testing.T) {
	assert.Equal(t, "void", typeName(nil))
	assert.Equal(t, "string[]", typeName(ast.ArrayOf(ast.NewTypeReference("System.String"))))
	assert.Equal(t, "System.Collections.Generic.List<Widget>",
		typeName(ast.NewTypeReference("System.Collections.Generic.List", ast.NewTypeReference("Widget"))))
	assert.Equal(t, "System.Collections.IEnumerator", typeName(ast.NewTypeReference("System.Collections.IEnumerator")))
}

func TestStatementsRendering(t *testing.T) {
	catch := &ast.CatchClause{LocalName: "ex", CatchExceptionType: ast.NewTypeReference("System.Exception"),
		Statements: []ast.Statement{&ast.ThrowExceptionStatement{ToThrow: &ast.VariableReferenceExpression{VariableName: "ex"}}}}
	try := &ast.TryCatchFinallyStatement{
		TryStatements:     []ast.Statement{&ast.CommentStatement{Comment: ast.Comment{Text: "work"}}},
		CatchClauses:      []*ast.CatchClause{catch},
		FinallyStatements: []ast.Statement{&ast.MethodReturnStatement{}},
	}

	tests := []struct {
		name string
		opts provider.Options
		want string
	}{
		{"else on closing", provider.Options{ElseOnClosing: true}, "try {\n    // work\n} catch (System.Exception ex) {\n    throw ex;\n} finally {\n    return;\n}\n"},
		{"separate lines", provider.Options{}, "try {\n    // work\n}\ncatch (System.Exception ex) {\n    throw ex;\n}\nfinally {\n    return;\n}\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			e := &emitter{w: provider.NewWriter(&buf, "    "), opts: tt.opts}
			e.statement(try)
			require.NoError(t, e.w.Err())
			assert.Equal(t, tt.want, buf.String())
		})
	}
}

func TestMemberModifiers(t *testing.T) {
	assert.Equal(t, "public new ", memberModifiers(ast.Public|ast.New))
	assert.Equal(t, "protected internal static ", memberModifiers(ast.Protected|ast.Internal|ast.Static))
	assert.Equal(t, "public sealed override ", memberModifiers(ast.Public|ast.Override|ast.Final))
	assert.Equal(t, "private ", memberModifiers(ast.Private))
	assert.Equal(t, "", memberModifiers(0))
}

func TestLanguageAndExtension(t *testing.T) {
	var p provider.Provider = New()
	assert.Equal(t, "csharp", p.Language())
	assert.Equal(t, ".cs", p.FileExtension())
}
