// Package vb prints a lowered namespace as Visual Basic source.
//
// Visual Basic identifiers are case-insensitive: a field "name" and a
// property "Name" in one class collide. Callers that target this backend
// should keep member names distinct ignoring case.
package vb

import (
	"io"
	"strings"

	"github.com/teranos/codedom/ast"
	"github.com/teranos/codedom/errors"
	"github.com/teranos/codedom/provider"
)

// Generator is the Visual Basic backend. It holds no state.
type Generator struct{}

// New returns a Visual Basic backend.
func New() *Generator {
	return &Generator{}
}

// Language returns the provider name
func (g *Generator) Language() string {
	return "vb"
}

// FileExtension returns the file extension for Visual Basic files
func (g *Generator) FileExtension() string {
	return ".vb"
}

// GenerateNamespace writes ns as a single Visual Basic source file.
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
			e.w.Line(strings.TrimRight("'"+line, " "))
		}
		e.w.Blank()
	}
	e.w.Line("Option Strict Off")
	e.w.Line("Option Explicit On")
	e.w.Blank()

	for _, imp := range ns.Imports {
		e.w.Line("Imports " + imp)
	}
	if len(ns.Imports) > 0 {
		e.w.Blank()
	}
	for _, c := range ns.Comments {
		e.comment(c)
	}

	if ns.Name != "" {
		e.w.Line("Namespace " + ns.Name)
		e.w.Indent()
	}
	for i, td := range ns.Types {
		if i > 0 {
			e.w.Blank()
		}
		e.typeDeclaration(td)
	}
	if ns.Name != "" {
		e.w.Outdent()
		e.w.Line("End Namespace")
	}
}

// block writes the body of a construct one level deeper and closes it.
func (e *emitter) block(end string, body func()) {
	e.w.Indent()
	body()
	e.w.Outdent()
	if end != "" {
		e.w.Line(end)
	}
}

func (e *emitter) comment(c ast.Comment) {
	prefix := "' "
	if c.DocComment {
		prefix = "''' "
	}
	for _, line := range strings.Split(c.Text, "\n") {
		e.w.Line(strings.TrimRight(prefix+line, " "))
	}
}

func (e *emitter) attributes(attrs []*ast.AttributeDeclaration) {
	for _, a := range attrs {
		e.w.Line("<" + attribute(a) + ">  _")
	}
}

func attribute(a *ast.AttributeDeclaration) string {
	var b strings.Builder
	b.WriteString(typeName(a.Type) + "(")
	for i, arg := range a.Arguments {
		if i > 0 {
			b.WriteString(", ")
		}
		if arg.Name != "" {
			b.WriteString(arg.Name + ":=")
		}
		b.WriteString(expression(arg.Value))
	}
	b.WriteString(")")
	return b.String()
}

func (e *emitter) typeDeclaration(td *ast.TypeDeclaration) {
	for _, c := range td.Comments {
		e.comment(c)
	}
	e.attributes(td.CustomAttributes)

	if td.IsEnum {
		e.w.Line(typeModifiers(td.Attributes) + "Enum " + identifier(td.Name))
		e.block("End Enum", func() { e.enumMembers(td) })
		return
	}

	e.w.Line(typeModifiers(td.Attributes) + "Class " + identifier(td.Name))
	e.block("End Class", func() {
		if td.BaseType != nil {
			e.w.Line("Inherits " + typeName(td.BaseType))
		}
		for _, i := range td.Interfaces {
			e.w.Line("Implements " + typeName(i))
		}
		header := td.BaseType != nil || len(td.Interfaces) > 0
		for i, m := range provider.OrderMembers(td.Members, e.opts) {
			if (i > 0 || header) && e.opts.BlankLinesBetweenMembers {
				e.w.Blank()
			}
			e.member(m)
		}
	})
}

func (e *emitter) enumMembers(td *ast.TypeDeclaration) {
	for _, m := range td.Members {
		f, ok := m.(*ast.MemberField)
		if !ok {
			continue
		}
		for _, c := range f.Comments {
			e.comment(c)
		}
		e.attributes(f.CustomAttributes)
		line := identifier(f.Name)
		if f.InitExpression != nil {
			line += " = " + expression(f.InitExpression)
		}
		e.w.Line(line)
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
	mods := memberModifiers(f.Attributes)
	if mods == "" {
		mods = "Dim "
	}
	line := mods + identifier(f.Name) + " As " + typeName(f.Type)
	if f.InitExpression != nil {
		line += " = " + expression(f.InitExpression)
	}
	e.w.Line(line)
}

func (e *emitter) constructor(c *ast.Constructor) {
	e.memberPreamble(&c.MemberBase)
	e.w.Line(memberModifiers(c.Attributes) + "Sub New(" + parameters(c.Parameters) + ")")
	e.block("End Sub", func() {
		e.w.Line("MyBase.New(" + expressions(c.BaseConstructorArgs) + ")")
		e.statements(c.Statements)
	})
}

// implementsClause lists the interface members a property or method
// implements, explicitly or implicitly.
func implementsClause(name string, private *ast.TypeReference, implicit []*ast.TypeReference) string {
	var targets []string
	if private != nil {
		targets = append(targets, typeName(private)+"."+name)
	}
	for _, t := range implicit {
		targets = append(targets, typeName(t)+"."+name)
	}
	if len(targets) == 0 {
		return ""
	}
	return " Implements " + strings.Join(targets, ", ")
}

// memberName is the declared name; explicit implementations are renamed
// after their interface so they never clash with a public member.
func memberName(name string, private *ast.TypeReference) string {
	if private == nil {
		return identifier(name)
	}
	return strings.NewReplacer(".", "_", "(", "_", ")", "_", " ", "").Replace(typeName(private)) + "_" + name
}

func (e *emitter) property(p *ast.MemberProperty) {
	e.memberPreamble(&p.MemberBase)
	var b strings.Builder
	if len(p.Parameters) > 0 {
		b.WriteString("Default ")
	}
	if p.PrivateImplementationType == nil {
		b.WriteString(memberModifiers(p.Attributes))
	} else {
		b.WriteString(overrideModifiers(p.Attributes))
	}
	switch {
	case p.HasGet && !p.HasSet:
		b.WriteString("ReadOnly ")
	case p.HasSet && !p.HasGet:
		b.WriteString("WriteOnly ")
	}
	b.WriteString("Property " + memberName(p.Name, p.PrivateImplementationType))
	b.WriteString("(" + parameters(p.Parameters) + ") As " + typeName(p.Type))
	b.WriteString(implementsClause(p.Name, p.PrivateImplementationType, p.ImplementationTypes))
	e.w.Line(b.String())

	if p.Attributes.Has(ast.Abstract) {
		return
	}
	e.block("End Property", func() {
		if p.HasGet {
			e.w.Line("Get")
			e.block("End Get", func() { e.statements(p.GetStatements) })
		}
		if p.HasSet {
			e.w.Line("Set")
			e.block("End Set", func() { e.statements(p.SetStatements) })
		}
	})
}

func (e *emitter) method(m *ast.MemberMethod) {
	e.memberPreamble(&m.MemberBase)
	var b strings.Builder
	if m.PrivateImplementationType == nil {
		b.WriteString(memberModifiers(m.Attributes))
	} else {
		b.WriteString(overrideModifiers(m.Attributes))
	}
	keyword, end := "Sub ", "End Sub"
	if m.ReturnType != nil && m.ReturnType.BaseType != "System.Void" {
		keyword, end = "Function ", "End Function"
	}
	b.WriteString(keyword + memberName(m.Name, m.PrivateImplementationType))
	b.WriteString("(" + parameters(m.Parameters) + ")")
	if keyword == "Function " {
		b.WriteString(" As " + typeName(m.ReturnType))
	}
	b.WriteString(implementsClause(m.Name, m.PrivateImplementationType, m.ImplementationTypes))
	e.w.Line(b.String())

	if m.Attributes.Has(ast.Abstract) {
		return
	}
	e.block(end, func() { e.statements(m.Statements) })
}

func parameters(params []*ast.ParameterDeclaration) string {
	parts := make([]string, len(params))
	for i, p := range params {
		var b strings.Builder
		for _, a := range p.CustomAttributes {
			b.WriteString("<" + attribute(a) + "> ")
		}
		if p.Direction == ast.In {
			b.WriteString("ByVal ")
		} else {
			b.WriteString("ByRef ")
		}
		b.WriteString(identifier(p.Name) + " As " + typeName(p.Type))
		parts[i] = b.String()
	}
	return strings.Join(parts, ", ")
}

func typeModifiers(a ast.MemberAttributes) string {
	var b strings.Builder
	b.WriteString(access(a))
	if a.Has(ast.New) {
		b.WriteString("Shadows ")
	}
	switch {
	case a.Has(ast.Abstract):
		b.WriteString("MustInherit ")
	case a.Has(ast.Final):
		b.WriteString("NotInheritable ")
	}
	return b.String()
}

func memberModifiers(a ast.MemberAttributes) string {
	var b strings.Builder
	b.WriteString(access(a))
	b.WriteString(overrideModifiers(a))
	return b.String()
}

func overrideModifiers(a ast.MemberAttributes) string {
	var b strings.Builder
	if a.Has(ast.New) {
		b.WriteString("Shadows ")
	}
	switch {
	case a.Has(ast.Const):
		b.WriteString("Const ")
	case a.Has(ast.Static):
		b.WriteString("Shared ")
	}
	switch {
	case a.Has(ast.Abstract):
		b.WriteString("MustOverride ")
	case a.Has(ast.Override | ast.Final):
		b.WriteString("NotOverridable Overrides ")
	case a.Has(ast.Override):
		b.WriteString("Overrides ")
	case a.Has(ast.Virtual):
		b.WriteString("Overridable ")
	}
	return b.String()
}

func access(a ast.MemberAttributes) string {
	switch {
	case a.Has(ast.Protected | ast.Internal):
		return "Protected Friend "
	case a.Has(ast.Public):
		return "Public "
	case a.Has(ast.Private):
		return "Private "
	case a.Has(ast.Protected):
		return "Protected "
	case a.Has(ast.Internal):
		return "Friend "
	}
	return ""
}
