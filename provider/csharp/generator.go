// Package csharp prints a lowered namespace as C# source.
package csharp

import (
	"io"
	"strings"

	"github.com/teranos/codedom/ast"
	"github.com/teranos/codedom/errors"
	"github.com/teranos/codedom/provider"
)

// Generator is the C# backend. It holds no state.
type Generator struct{}

// New returns a C# backend.
func New() *Generator {
	return &Generator{}
}

// Language returns the provider name
func (g *Generator) Language() string {
	return "csharp"
}

// FileExtension returns the file extension for C# files
func (g *Generator) FileExtension() string {
	return ".cs"
}

// GenerateNamespace writes ns as a single C# compilation unit.
func (g *Generator) GenerateNamespace(w io.Writer, ns *ast.Namespace, tab string, opts provider.Options) error {
	if ns == nil {
		return errors.NewArgumentNullError("namespace")
	}
	e := &emitter{w: provider.NewWriter(w, tab), opts: opts}
	e.compileUnit(ns)
	if err := e.w.Err(); err != nil {
		return errors.Wrapf(err, "failed to write namespace %s", ns.Name)
	}
	return nil
}

type emitter struct {
	w    *provider.Writer
	opts provider.Options
}

func (e *emitter) compileUnit(ns *ast.Namespace) {
	if e.opts.Header {
		for _, line := range provider.HeaderLines() {
			e.w.Line(strings.TrimRight("// "+line, " "))
		}
		e.w.Blank()
	}
	for _, c := range ns.Comments {
		e.comment(c)
	}

	if ns.Name != "" {
		e.w.Write("namespace " + ns.Name)
		e.open()
	}
	for _, imp := range ns.Imports {
		e.w.Linef("using %s;", imp)
	}
	if len(ns.Imports) > 0 && len(ns.Types) > 0 {
		e.w.Blank()
	}
	for i, td := range ns.Types {
		if i > 0 {
			e.w.Blank()
		}
		e.typeDeclaration(td)
	}
	if ns.Name != "" {
		e.close()
	}
}

// open finishes a declaring line with an opening brace.
func (e *emitter) open() {
	if e.opts.BracingStyle == provider.BracingC {
		e.w.EndLine()
		e.w.Line("{")
	} else {
		e.w.Line(" {")
	}
	e.w.Indent()
}

func (e *emitter) close() {
	e.w.Outdent()
	e.w.Line("}")
}

// closeThen closes a block that continues with keyword (else, catch,
// finally), honouring ElseOnClosing.
func (e *emitter) closeThen(keyword string) {
	e.w.Outdent()
	if e.opts.ElseOnClosing {
		e.w.Write("} " + keyword)
		return
	}
	e.w.Line("}")
	e.w.Write(keyword)
}

func (e *emitter) comment(c ast.Comment) {
	prefix := "// "
	if c.DocComment {
		prefix = "/// "
	}
	for _, line := range strings.Split(c.Text, "\n") {
		e.w.Line(strings.TrimRight(prefix+line, " "))
	}
}

func (e *emitter) attributes(attrs []*ast.AttributeDeclaration) {
	for _, a := range attrs {
		e.w.Line("[" + attribute(a) + "]")
	}
}

func attribute(a *ast.AttributeDeclaration) string {
	var b strings.Builder
	b.WriteString(typeName(a.Type))
	if len(a.Arguments) > 0 {
		b.WriteString("(")
		for i, arg := range a.Arguments {
			if i > 0 {
				b.WriteString(", ")
			}
			if arg.Name != "" {
				b.WriteString(arg.Name + "=")
			}
			b.WriteString(expression(arg.Value))
		}
		b.WriteString(")")
	}
	return b.String()
}

func (e *emitter) typeDeclaration(td *ast.TypeDeclaration) {
	for _, c := range td.Comments {
		e.comment(c)
	}
	e.attributes(td.CustomAttributes)

	e.w.Write(typeModifiers(td.Attributes))
	if td.IsEnum {
		e.w.Write("enum " + identifier(td.Name))
	} else {
		e.w.Write("class " + identifier(td.Name))
	}
	var bases []string
	if td.BaseType != nil {
		bases = append(bases, typeName(td.BaseType))
	}
	for _, i := range td.Interfaces {
		bases = append(bases, typeName(i))
	}
	if len(bases) > 0 {
		e.w.Write(" : " + strings.Join(bases, ", "))
	}
	e.open()

	if td.IsEnum {
		e.enumMembers(td)
	} else {
		for i, m := range provider.OrderMembers(td.Members, e.opts) {
			if i > 0 && e.opts.BlankLinesBetweenMembers {
				e.w.Blank()
			}
			e.member(m)
		}
	}
	e.close()
}

func (e *emitter) enumMembers(td *ast.TypeDeclaration) {
	for i, m := range td.Members {
		f, ok := m.(*ast.MemberField)
		if !ok {
			continue
		}
		if i > 0 && e.opts.BlankLinesBetweenMembers && (len(f.Comments) > 0 || len(f.CustomAttributes) > 0) {
			e.w.Blank()
		}
		for _, c := range f.Comments {
			e.comment(c)
		}
		e.attributes(f.CustomAttributes)
		e.w.Write(identifier(f.Name))
		if f.InitExpression != nil {
			e.w.Write(" = " + expression(f.InitExpression))
		}
		e.w.Line(",")
	}
}

func (e *emitter) member(m ast.TypeMember) {
	switch m := m.(type) {
	case *ast.MemberField:
		e.field(m)
	case *ast.Constructor:
		e.constructor(m)
	case *ast.MemberProperty:
		e.property(m)
	case *ast.MemberMethod:
		e.method(m)
	case *ast.TypeDeclaration:
		e.typeDeclaration(m)
	}
}

func (e *emitter) memberPreamble(mb *ast.MemberBase) {
	for _, c := range mb.Comments {
		e.comment(c)
	}
	e.attributes(mb.CustomAttributes)
}

func (e *emitter) field(f *ast.MemberField) {
	e.memberPreamble(&f.MemberBase)
	e.w.Write(memberModifiers(f.Attributes))
	e.w.Write(typeName(f.Type) + " " + identifier(f.Name))
	if f.InitExpression != nil {
		e.w.Write(" = " + expression(f.InitExpression))
	}
	e.w.Line(";")
}

func (e *emitter) constructor(c *ast.Constructor) {
	e.memberPreamble(&c.MemberBase)
	e.w.Write(memberModifiers(c.Attributes))
	e.w.Write(identifier(c.Name) + "(" + parameters(c.Parameters) + ")")
	if len(c.BaseConstructorArgs) > 0 {
		e.w.Write(" : base(" + expressions(c.BaseConstructorArgs) + ")")
	}
	e.open()
	e.statements(c.Statements)
	e.close()
}

func (e *emitter) property(p *ast.MemberProperty) {
	e.memberPreamble(&p.MemberBase)
	if p.PrivateImplementationType == nil {
		e.w.Write(memberModifiers(p.Attributes))
	}
	e.w.Write(typeName(p.Type) + " ")
	if p.PrivateImplementationType != nil {
		e.w.Write(typeName(p.PrivateImplementationType) + ".")
	}
	if len(p.Parameters) > 0 {
		e.w.Write("this[" + parameters(p.Parameters) + "]")
	} else {
		e.w.Write(identifier(p.Name))
	}
	e.open()
	abstract := p.Attributes.Has(ast.Abstract)
	if p.HasGet {
		e.accessor("get", p.GetStatements, abstract)
	}
	if p.HasSet {
		e.accessor("set", p.SetStatements, abstract)
	}
	e.close()
}

func (e *emitter) accessor(keyword string, body []ast.Statement, abstract bool) {
	if abstract {
		e.w.Line(keyword + ";")
		return
	}
	e.w.Write(keyword)
	e.open()
	e.statements(body)
	e.close()
}

func (e *emitter) method(m *ast.MemberMethod) {
	e.memberPreamble(&m.MemberBase)
	if m.PrivateImplementationType == nil {
		e.w.Write(memberModifiers(m.Attributes))
	}
	e.w.Write(typeName(m.ReturnType) + " ")
	if m.PrivateImplementationType != nil {
		e.w.Write(typeName(m.PrivateImplementationType) + ".")
	}
	e.w.Write(identifier(m.Name) + "(" + parameters(m.Parameters) + ")")
	if m.Attributes.Has(ast.Abstract) {
		e.w.Line(";")
		return
	}
	e.open()
	e.statements(m.Statements)
	e.close()
}

func parameters(params []*ast.ParameterDeclaration) string {
	parts := make([]string, len(params))
	for i, p := range params {
		var b strings.Builder
		for _, a := range p.CustomAttributes {
			b.WriteString("[" + attribute(a) + "] ")
		}
		switch p.Direction {
		case ast.Ref:
			b.WriteString("ref ")
		case ast.Out:
			b.WriteString("out ")
		}
		b.WriteString(typeName(p.Type) + " " + identifier(p.Name))
		parts[i] = b.String()
	}
	return strings.Join(parts, ", ")
}

func typeModifiers(a ast.MemberAttributes) string {
	var b strings.Builder
	b.WriteString(access(a))
	if a.Has(ast.New) {
		b.WriteString("new ")
	}
	switch {
	case a.Has(ast.Static):
		b.WriteString("static ")
	case a.Has(ast.Abstract):
		b.WriteString("abstract ")
	case a.Has(ast.Final):
		b.WriteString("sealed ")
	}
	return b.String()
}

func memberModifiers(a ast.MemberAttributes) string {
	var b strings.Builder
	b.WriteString(access(a))
	if a.Has(ast.New) {
		b.WriteString("new ")
	}
	switch {
	case a.Has(ast.Const):
		b.WriteString("const ")
	case a.Has(ast.Static):
		b.WriteString("static ")
	}
	switch {
	case a.Has(ast.Abstract):
		b.WriteString("abstract ")
	case a.Has(ast.Override | ast.Final):
		b.WriteString("sealed override ")
	case a.Has(ast.Override):
		b.WriteString("override ")
	case a.Has(ast.Virtual):
		b.WriteString("virtual ")
	}
	return b.String()
}

func access(a ast.MemberAttributes) string {
	switch {
	case a.Has(ast.Protected | ast.Internal):
		return "protected internal "
	case a.Has(ast.Public):
		return "public "
	case a.Has(ast.Private):
		return "private "
	case a.Has(ast.Protected):
		return "protected "
	case a.Has(ast.Internal):
		return "internal "
	}
	return ""
}
