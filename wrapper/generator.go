// Package wrapper generates XML-serializable wrapper classes from schema
// descriptors: one enum or class per descriptor type, with array fields
// turned into nested typed collections.
package wrapper

import (
	"go.uber.org/zap"

	"github.com/teranos/codedom/ast"
	"github.com/teranos/codedom/dom"
	"github.com/teranos/codedom/errors"
	"github.com/teranos/codedom/logger"
	"github.com/teranos/codedom/naming"
	"github.com/teranos/codedom/schema"
)

// Serialization attribute types.
var (
	xmlType      = xmlAttribute("XmlTypeAttribute")
	xmlElement   = xmlAttribute("XmlElementAttribute")
	xmlAttr      = xmlAttribute("XmlAttributeAttribute")
	xmlEnum      = xmlAttribute("XmlEnumAttribute")
	xmlNamespace = "Namespace"
	isNullable   = "IsNullable"
)

func xmlAttribute(name string) dom.TypeRef {
	return dom.Must(dom.Resolved("System.Xml.Serialization." + name))
}

// Generator accumulates wrapper declarations in one namespace. Types must
// be added in dependency order for fields to reference generated types.
type Generator struct {
	ns *dom.NamespaceDeclaration

	keepNamespaces    bool
	legacyCollections bool

	registered map[string]dom.TypeRef
	memo       map[string]dom.TypeRef

	logger *zap.SugaredLogger
}

// New returns a generator declaring into a fresh namespace.
func New(namespace string, opts ...Option) (*Generator, error) {
	ns, err := dom.NewNamespace(namespace)
	if err != nil {
		return nil, err
	}
	g := &Generator{
		ns:         ns,
		registered: make(map[string]dom.TypeRef),
		memo:       make(map[string]dom.TypeRef),
		logger:     logger.ComponentLogger("wrapper"),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g, nil
}

// Namespace returns the namespace the declarations are added to.
func (g *Generator) Namespace() *dom.NamespaceDeclaration { return g.ns }

func (g *Generator) log() *zap.SugaredLogger {
	if g.logger == nil {
		return logger.ComponentLogger("wrapper")
	}
	return g.logger
}

// AddAll adds every type of doc in document order. Names that collide once
// conformed fail the whole document before anything is declared.
func (g *Generator) AddAll(doc *schema.Document) error {
	if doc == nil {
		return errors.NewArgumentNullError("document")
	}
	if err := doc.CheckNames(g.ns.Conformer()); err != nil {
		return err
	}
	for _, t := range doc.Types {
		if _, err := g.Add(t); err != nil {
			return err
		}
	}
	return nil
}

// Add declares t and registers it for later MapType lookups. On error the
// namespace is left as it was.
func (g *Generator) Add(t schema.Type) (dom.TypeRef, error) {
	if t.Name == "" {
		return nil, errors.NewArgumentNullError("name")
	}
	if err := g.rehearse(t); err != nil {
		return nil, errors.Wrapf(err, "failed to add %s", t.Name)
	}
	decl, err := g.declare(g.ns, t)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to add %s", t.Name)
	}
	g.register(t.Name, decl)
	g.log().Debugw("registered type", logger.FieldType, t.Name, logger.FieldKind, string(t.Kind))
	return decl, nil
}

// rehearse declares t into a scratch namespace first, so a type that fails
// halfway never reaches the real one.
func (g *Generator) rehearse(t schema.Type) error {
	name, err := t.DeclaredName(g.ns.Conformer())
	if err != nil {
		return err
	}
	_, isClass := g.ns.Class(name)
	_, isEnum := g.ns.Enum(name)
	if isClass || isEnum {
		return errors.NewDuplicateNameError("namespace "+g.ns.Name(), name)
	}

	scratch, err := dom.NewNamespace(g.ns.Name())
	if err != nil {
		return err
	}
	scratch.SetConformer(g.ns.Conformer())
	_, err = g.declare(scratch, t)
	return err
}

func (g *Generator) declare(ns *dom.NamespaceDeclaration, t schema.Type) (dom.TypeRef, error) {
	switch t.Kind {
	case schema.KindEnum:
		return g.addEnum(ns, t)
	case schema.KindClass, "":
		return g.addClass(ns, t)
	}
	return nil, errors.NewInvalidDescriptorError("type %s: unknown kind %q", t.Name, t.Kind)
}

func (g *Generator) addEnum(ns *dom.NamespaceDeclaration, t schema.Type) (*dom.EnumDeclaration, error) {
	name, err := naming.Sanitize(t.Name)
	if err != nil {
		return nil, err
	}
	e, err := ns.AddEnum(name)
	if err != nil {
		return nil, err
	}
	e.SetFlags(t.Flags)
	if t.Doc != "" {
		e.Doc().Summary = t.Doc
	}
	if err := g.typeNamespace(e.AddAttribute, t.Namespace); err != nil {
		return nil, err
	}

	for _, m := range t.Members {
		memberName, err := naming.Sanitize(m.Name)
		if err != nil {
			return nil, err
		}
		f, err := e.AddField(memberName)
		if err != nil {
			return nil, err
		}
		if m.Value != nil {
			f.SetValue(*m.Value)
		}
		a, err := f.AddAttribute(xmlEnum)
		if err != nil {
			return nil, err
		}
		if err := a.Arg(dom.Literal(m.MemberLabel())); err != nil {
			return nil, err
		}
	}
	return e, nil
}

// typeNamespace adds XmlType(Namespace=ns) when namespaces are kept.
func (g *Generator) typeNamespace(add func(dom.TypeRef) (*dom.AttributeDeclaration, error), ns string) error {
	if !g.keepNamespaces || ns == "" {
		return nil
	}
	a, err := add(xmlType)
	if err != nil {
		return err
	}
	return a.NamedArg(xmlNamespace, dom.Literal(ns))
}

func (g *Generator) addClass(ns *dom.NamespaceDeclaration, t schema.Type) (*dom.ClassDeclaration, error) {
	name, err := naming.Sanitize(t.Name)
	if err != nil {
		return nil, err
	}
	c, err := ns.AddClass(name)
	if err != nil {
		return nil, err
	}
	if t.Doc != "" {
		c.Doc().Summary = t.Doc
	}
	if err := g.typeNamespace(c.AddAttribute, t.Namespace); err != nil {
		return nil, err
	}
	for _, f := range t.Fields {
		if err := g.addField(c, f); err != nil {
			return nil, errors.Wrapf(err, "field %s", f.Name)
		}
	}
	return c, nil
}

// addField declares a private backing field and the public property over
// it, annotated for serialization.
func (g *Generator) addField(c *dom.ClassDeclaration, f schema.Field) error {
	names, err := f.Names(c.Conformer())
	if err != nil {
		return err
	}

	var typ dom.TypeRef
	if f.IsArray() {
		typ, err = g.addCollection(c, names.Collection, f)
	} else {
		typ, err = g.MapType(f.Type)
	}
	if err != nil {
		return err
	}

	backing, err := c.AddField(typ, names.Backing)
	if err != nil {
		return err
	}
	backing.SetAccess(ast.Private)

	p, err := c.AddNamedProperty(typ, names.Property)
	if err != nil {
		return err
	}
	if f.Doc != "" {
		p.Doc().Summary = f.Doc
	}
	get, err := dom.Return(backing.Ref())
	if err != nil {
		return err
	}
	if err := p.Getter().Add(get); err != nil {
		return err
	}
	set, err := dom.Assign(backing.Ref(), dom.Value())
	if err != nil {
		return err
	}
	if err := p.Setter().Add(set); err != nil {
		return err
	}
	return g.annotate(p, f)
}

// annotate picks the serialization attributes of a property:
// XmlAttribute(name) for attributes, one XmlElement(name, typeof(T)) per
// array item, otherwise XmlElement(name[, typeof(T)][, IsNullable=true])
// with the field's own name when none is given.
func (g *Generator) annotate(p *dom.PropertyDeclaration, f schema.Field) error {
	withNamespace := func(a *dom.AttributeDeclaration) error {
		if !g.keepNamespaces || f.Namespace == "" {
			return nil
		}
		return a.NamedArg(xmlNamespace, dom.Literal(f.Namespace))
	}

	if f.Attribute != "" {
		a, err := p.AddAttribute(xmlAttr)
		if err != nil {
			return err
		}
		if err := a.Arg(dom.Literal(f.Attribute)); err != nil {
			return err
		}
		return withNamespace(a)
	}

	if len(f.Items) > 0 {
		for _, item := range f.Items {
			itemType, err := g.MapType(item.Type)
			if err != nil {
				return err
			}
			a, err := p.AddAttribute(xmlElement)
			if err != nil {
				return err
			}
			if err := a.Arg(dom.Literal(item.Name)); err != nil {
				return err
			}
			if err := a.Arg(dom.TypeOf(itemType)); err != nil {
				return err
			}
			if err := withNamespace(a); err != nil {
				return err
			}
		}
		return nil
	}

	name := f.Element
	if name == "" {
		name = f.Name
	}
	a, err := p.AddAttribute(xmlElement)
	if err != nil {
		return err
	}
	if err := a.Arg(dom.Literal(name)); err != nil {
		return err
	}
	if f.ElementType != "" {
		elemType, err := g.MapType(f.ElementType)
		if err != nil {
			return err
		}
		if err := a.Arg(dom.TypeOf(elemType)); err != nil {
			return err
		}
	}
	if f.Nullable {
		if err := a.NamedArg(isNullable, dom.Literal(true)); err != nil {
			return err
		}
	}
	return withNamespace(a)
}
