package dom

import (
	"github.com/teranos/codedom/ast"
	"github.com/teranos/codedom/errors"
	"github.com/teranos/codedom/naming"
)

// member is anything a class owns in its ordered member list.
type member interface {
	toMember() ast.TypeMember
}

// ClassDeclaration is a class owned by a namespace or, when nested, by an
// enclosing class. Its owner is fixed at construction.
type ClassDeclaration struct {
	declaration
	ns    *NamespaceDeclaration
	outer *ClassDeclaration

	baseType   TypeRef
	interfaces []TypeRef

	members []member
	names   map[string]bool

	fields       []*FieldDeclaration
	properties   []*PropertyDeclaration
	methods      []*MethodDeclaration
	constructors []*ConstructorDeclaration
	nested       []*ClassDeclaration
}

func newClass(name string, ns *NamespaceDeclaration, outer *ClassDeclaration) *ClassDeclaration {
	return &ClassDeclaration{
		declaration: declaration{name: name, attributes: ast.Public},
		ns:          ns,
		outer:       outer,
		names:       make(map[string]bool),
	}
}

// Namespace returns the owning namespace.
func (c *ClassDeclaration) Namespace() *NamespaceDeclaration { return c.ns }

// Outer returns the enclosing class of a nested class, or nil.
func (c *ClassDeclaration) Outer() *ClassDeclaration { return c.outer }

// Conformer returns the owning namespace's conformer.
func (c *ClassDeclaration) Conformer() naming.Conformer { return c.ns.conformer }

// qualifiedName is the name relative to the namespace, e.g.
// "WidgetCollection.Enumerator".
func (c *ClassDeclaration) qualifiedName() string {
	if c.outer != nil {
		return c.outer.qualifiedName() + "." + c.name
	}
	return c.name
}

// FullName is the namespace-qualified name.
func (c *ClassDeclaration) FullName() string {
	return c.ns.name + "." + c.qualifiedName()
}

// TypeReference refers to the class relative to its namespace so generated
// sources stay readable; every generated file opens that namespace.
func (c *ClassDeclaration) TypeReference() *ast.TypeReference {
	return ast.NewTypeReference(c.qualifiedName())
}

// BaseType returns the base class, or nil.
func (c *ClassDeclaration) BaseType() TypeRef { return c.baseType }

// SetBaseType fills the single inheritance slot. nil clears it.
func (c *ClassDeclaration) SetBaseType(t TypeRef) { c.baseType = t }

// AddInterface marks the class as implementing t.
func (c *ClassDeclaration) AddInterface(t TypeRef) error {
	if t == nil {
		return errors.NewArgumentNullError("interface")
	}
	for _, existing := range c.interfaces {
		if existing.FullName() == t.FullName() {
			return errors.NewDuplicateNameError("class "+c.name+" interfaces", t.FullName())
		}
	}
	c.interfaces = append(c.interfaces, t)
	return nil
}

// Interfaces returns the implemented interfaces in order.
func (c *ClassDeclaration) Interfaces() []TypeRef { return append([]TypeRef(nil), c.interfaces...) }

func (c *ClassDeclaration) memberKey(implType TypeRef, name string) string {
	if implType != nil {
		return implType.FullName() + "." + name
	}
	return name
}

func (c *ClassDeclaration) reserve(implType TypeRef, name string) (string, error) {
	if name == "" {
		return "", errors.NewArgumentNullError("name")
	}
	key := c.memberKey(implType, name)
	if c.names[key] || (implType == nil && name == c.name) {
		return "", errors.NewDuplicateNameError("class "+c.name, key)
	}
	return key, nil
}

func (c *ClassDeclaration) capitalize(name string) (string, error) {
	if name == "" {
		return "", errors.NewArgumentNullError("name")
	}
	return c.ns.conformer.ToCapitalized(name)
}

// AddField declares a public field of type t named name, verbatim.
func (c *ClassDeclaration) AddField(t TypeRef, name string) (*FieldDeclaration, error) {
	if t == nil {
		return nil, errors.NewArgumentNullError("type")
	}
	key, err := c.reserve(nil, name)
	if err != nil {
		return nil, err
	}
	f := &FieldDeclaration{declaration: declaration{name: name, attributes: ast.Public}, owner: c, typ: t}
	c.names[key] = true
	c.fields = append(c.fields, f)
	c.members = append(c.members, f)
	return f, nil
}

// AddProperty declares a public property over a field of this class,
// named after the field's capitalized name. hasGet and hasSet generate
// trivial accessors reading and writing this.<field>.
//
// With isIndexer the property becomes an indexer over the field: it takes
// an int index, has the field's element type, and its accessors read and
// write this.<field>[index].
func (c *ClassDeclaration) AddProperty(field *FieldDeclaration, hasGet, hasSet, isIndexer bool) (*PropertyDeclaration, error) {
	if field == nil {
		return nil, errors.NewArgumentNullError("field")
	}
	if field.owner != c {
		return nil, errors.Newf("field %s does not belong to class %s", field.name, c.name)
	}

	name, typ := "", field.typ
	if isIndexer {
		name = indexerName
		if arr, ok := typ.(*ResolvedType); ok && arr.IsArray() {
			typ = arr.Elem()
		}
	} else {
		var err error
		if name, err = c.capitalize(field.name); err != nil {
			return nil, err
		}
	}

	p, key, err := c.newProperty(nil, typ, name)
	if err != nil {
		return nil, err
	}

	target := Field(This(), field.name)
	if isIndexer {
		if err := p.addIndexParam(); err != nil {
			return nil, err
		}
		target = Index(target, Arg(indexParam))
	}
	if hasGet {
		ret, err := Return(target)
		if err != nil {
			return nil, err
		}
		if err := p.Getter().Add(ret); err != nil {
			return nil, err
		}
	}
	if hasSet {
		set, err := Assign(target, Value())
		if err != nil {
			return nil, err
		}
		if err := p.Setter().Add(set); err != nil {
			return nil, err
		}
	}
	c.insertProperty(key, p)
	return p, nil
}

// AddNamedProperty declares a public property with no accessors; call
// Getter and Setter to give it bodies.
func (c *ClassDeclaration) AddNamedProperty(t TypeRef, name string) (*PropertyDeclaration, error) {
	if t == nil {
		return nil, errors.NewArgumentNullError("type")
	}
	conformed, err := c.capitalize(name)
	if err != nil {
		return nil, err
	}
	return c.addProperty(nil, t, conformed)
}

// AddExplicitProperty declares a property that explicitly implements
// iface.name. It carries no access modifier in C#.
func (c *ClassDeclaration) AddExplicitProperty(iface, t TypeRef, name string) (*PropertyDeclaration, error) {
	if iface == nil {
		return nil, errors.NewArgumentNullError("interface")
	}
	if t == nil {
		return nil, errors.NewArgumentNullError("type")
	}
	p, err := c.addProperty(iface, t, name)
	if err != nil {
		return nil, err
	}
	p.attributes = 0
	return p, nil
}

// AddIndexer declares a public indexer of elementType taking an int index.
// Accessors start empty.
func (c *ClassDeclaration) AddIndexer(elementType TypeRef) (*PropertyDeclaration, error) {
	if elementType == nil {
		return nil, errors.NewArgumentNullError("elementType")
	}
	p, key, err := c.newProperty(nil, elementType, indexerName)
	if err != nil {
		return nil, err
	}
	if err := p.addIndexParam(); err != nil {
		return nil, err
	}
	c.insertProperty(key, p)
	return p, nil
}

func (c *ClassDeclaration) addProperty(impl, t TypeRef, name string) (*PropertyDeclaration, error) {
	p, key, err := c.newProperty(impl, t, name)
	if err != nil {
		return nil, err
	}
	c.insertProperty(key, p)
	return p, nil
}

// newProperty checks the name and builds a property the class does not own
// yet; insertProperty makes it visible.
func (c *ClassDeclaration) newProperty(impl, t TypeRef, name string) (*PropertyDeclaration, string, error) {
	key, err := c.reserve(impl, name)
	if err != nil {
		return nil, "", err
	}
	return &PropertyDeclaration{
		declaration: declaration{name: name, attributes: ast.Public},
		owner:       c,
		typ:         t,
		privateImpl: impl,
	}, key, nil
}

func (c *ClassDeclaration) insertProperty(key string, p *PropertyDeclaration) {
	c.names[key] = true
	c.properties = append(c.properties, p)
	c.members = append(c.members, p)
}

// AddMethod declares a public void method named after the capitalized form
// of name.
func (c *ClassDeclaration) AddMethod(name string) (*MethodDeclaration, error) {
	conformed, err := c.capitalize(name)
	if err != nil {
		return nil, err
	}
	key, err := c.reserve(nil, conformed)
	if err != nil {
		return nil, err
	}
	m := &MethodDeclaration{
		declaration: declaration{name: conformed, attributes: ast.Public},
		owner:       c,
		signature:   newSignature(),
		body:        &Body{},
	}
	c.names[key] = true
	c.methods = append(c.methods, m)
	c.members = append(c.members, m)
	return m, nil
}

// AddConstructor declares a public constructor. Overloads are told apart
// by their parameters, so constructors are not name-checked.
func (c *ClassDeclaration) AddConstructor() *ConstructorDeclaration {
	ctor := &ConstructorDeclaration{
		declaration: declaration{name: c.name, attributes: ast.Public},
		owner:       c,
		signature:   newSignature(),
		body:        &Body{},
	}
	c.constructors = append(c.constructors, ctor)
	c.members = append(c.members, ctor)
	return ctor
}

// AddClass declares a public nested class.
func (c *ClassDeclaration) AddClass(name string) (*ClassDeclaration, error) {
	conformed, err := c.capitalize(name)
	if err != nil {
		return nil, err
	}
	key, err := c.reserve(nil, conformed)
	if err != nil {
		return nil, err
	}
	nested := newClass(conformed, c.ns, c)
	c.names[key] = true
	c.nested = append(c.nested, nested)
	c.members = append(c.members, nested)
	return nested, nil
}

// Fields returns the fields in declaration order.
func (c *ClassDeclaration) Fields() []*FieldDeclaration {
	return append([]*FieldDeclaration(nil), c.fields...)
}

// Properties returns properties and indexers in declaration order.
func (c *ClassDeclaration) Properties() []*PropertyDeclaration {
	return append([]*PropertyDeclaration(nil), c.properties...)
}

// Methods returns the methods in declaration order.
func (c *ClassDeclaration) Methods() []*MethodDeclaration {
	return append([]*MethodDeclaration(nil), c.methods...)
}

// Constructors returns the constructors in declaration order.
func (c *ClassDeclaration) Constructors() []*ConstructorDeclaration {
	return append([]*ConstructorDeclaration(nil), c.constructors...)
}

// Nested returns the nested classes in declaration order.
func (c *ClassDeclaration) Nested() []*ClassDeclaration {
	return append([]*ClassDeclaration(nil), c.nested...)
}

// Method looks up a method by name.
func (c *ClassDeclaration) Method(name string) (*MethodDeclaration, bool) {
	for _, m := range c.methods {
		if m.name == name {
			return m, true
		}
	}
	return nil, false
}

// Property looks up a non-explicit property or indexer by name.
func (c *ClassDeclaration) Property(name string) (*PropertyDeclaration, bool) {
	for _, p := range c.properties {
		if p.name == name && p.privateImpl == nil {
			return p, true
		}
	}
	return nil, false
}

// Field looks up a field by name.
func (c *ClassDeclaration) Field(name string) (*FieldDeclaration, bool) {
	for _, f := range c.fields {
		if f.name == name {
			return f, true
		}
	}
	return nil, false
}

// HasMember reports whether name (or "Iface.Name" for explicit
// implementations) is taken in this class.
func (c *ClassDeclaration) HasMember(name string) bool { return c.names[name] }

// ToNode lowers the class and all its members.
func (c *ClassDeclaration) ToNode() *ast.TypeDeclaration {
	node := &ast.TypeDeclaration{MemberBase: c.memberBase(), IsClass: true}
	if c.baseType != nil {
		node.BaseType = c.baseType.TypeReference()
	}
	for _, i := range c.interfaces {
		node.Interfaces = append(node.Interfaces, i.TypeReference())
	}
	for _, m := range c.members {
		node.Members = append(node.Members, m.toMember())
	}
	return node
}

func (c *ClassDeclaration) toMember() ast.TypeMember { return c.ToNode() }
