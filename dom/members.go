package dom

import (
	"github.com/teranos/codedom/ast"
	"github.com/teranos/codedom/errors"
)

const (
	indexerName = "Item"
	indexParam  = "index"
)

// FieldDeclaration is a field with an optional initializer.
type FieldDeclaration struct {
	declaration
	owner *ClassDeclaration
	typ   TypeRef
	init  Expr
}

// Type returns the field type.
func (f *FieldDeclaration) Type() TypeRef { return f.typ }

// Owner returns the declaring class.
func (f *FieldDeclaration) Owner() *ClassDeclaration { return f.owner }

// SetInitializer sets the initial value. nil clears it.
func (f *FieldDeclaration) SetInitializer(e Expr) error {
	if e != nil {
		if err := e.Err(); err != nil {
			return err
		}
	}
	f.init = e
	return nil
}

// Ref is this.<field>.
func (f *FieldDeclaration) Ref() Expr { return Field(This(), f.name) }

func (f *FieldDeclaration) toMember() ast.TypeMember {
	node := &ast.MemberField{MemberBase: f.memberBase(), Type: f.typ.TypeReference()}
	if f.init != nil {
		node.InitExpression = f.init.ToNode()
	}
	return node
}

// ParameterDeclaration is a formal parameter.
type ParameterDeclaration struct {
	typ   TypeRef
	name  string
	byRef bool
}

func (p *ParameterDeclaration) Name() string  { return p.name }
func (p *ParameterDeclaration) Type() TypeRef { return p.typ }
func (p *ParameterDeclaration) IsByRef() bool { return p.byRef }

// Ref references the parameter in a body.
func (p *ParameterDeclaration) Ref() Expr { return Arg(p.name) }

func (p *ParameterDeclaration) toNode() *ast.ParameterDeclaration {
	node := &ast.ParameterDeclaration{Type: p.typ.TypeReference(), Name: p.name}
	if p.byRef {
		node.Direction = ast.Ref
	}
	return node
}

// MethodSignature is an ordered parameter list and a return type. A nil
// return type means void.
type MethodSignature struct {
	params     []*ParameterDeclaration
	returnType TypeRef
}

func newSignature() *MethodSignature { return &MethodSignature{} }

// AddParam appends a by-value parameter.
func (s *MethodSignature) AddParam(t TypeRef, name string) (*ParameterDeclaration, error) {
	return s.add(t, name, false)
}

// AddRefParam appends a by-reference parameter.
func (s *MethodSignature) AddRefParam(t TypeRef, name string) (*ParameterDeclaration, error) {
	return s.add(t, name, true)
}

func (s *MethodSignature) add(t TypeRef, name string, byRef bool) (*ParameterDeclaration, error) {
	if t == nil {
		return nil, errors.NewArgumentNullError("type")
	}
	if name == "" {
		return nil, errors.NewArgumentNullError("name")
	}
	for _, p := range s.params {
		if p.name == name {
			return nil, errors.NewDuplicateNameError("parameter list", name)
		}
	}
	p := &ParameterDeclaration{typ: t, name: name, byRef: byRef}
	s.params = append(s.params, p)
	return p, nil
}

// Params returns the parameters in order.
func (s *MethodSignature) Params() []*ParameterDeclaration {
	return append([]*ParameterDeclaration(nil), s.params...)
}

// ReturnType returns the declared return type, or nil for void.
func (s *MethodSignature) ReturnType() TypeRef { return s.returnType }

// SetReturnType sets the return type. nil or System.Void makes it void.
func (s *MethodSignature) SetReturnType(t TypeRef) {
	if IsVoid(t) {
		t = nil
	}
	s.returnType = t
}

func (s *MethodSignature) paramNodes() []*ast.ParameterDeclaration {
	var out []*ast.ParameterDeclaration
	for _, p := range s.params {
		out = append(out, p.toNode())
	}
	return out
}

// implementations tracks the interfaces a member implicitly implements.
// Visual Basic spells these out with an Implements clause.
type implementations struct {
	types []TypeRef
}

// AddImplementationType records that the member implements iface.<name>.
func (i *implementations) AddImplementationType(iface TypeRef) error {
	if iface == nil {
		return errors.NewArgumentNullError("interface")
	}
	i.types = append(i.types, iface)
	return nil
}

// ImplementationTypes returns the recorded interfaces.
func (i *implementations) ImplementationTypes() []TypeRef {
	return append([]TypeRef(nil), i.types...)
}

func (i *implementations) nodes() []*ast.TypeReference {
	var out []*ast.TypeReference
	for _, t := range i.types {
		out = append(out, t.TypeReference())
	}
	return out
}

// MethodDeclaration is a method with a signature and a body.
type MethodDeclaration struct {
	declaration
	implementations
	owner     *ClassDeclaration
	signature *MethodSignature
	body      *Body
}

func (m *MethodDeclaration) Owner() *ClassDeclaration     { return m.owner }
func (m *MethodDeclaration) Signature() *MethodSignature { return m.signature }
func (m *MethodDeclaration) Body() *Body                 { return m.body }

// AddParam appends a by-value parameter to the signature.
func (m *MethodDeclaration) AddParam(t TypeRef, name string) (*ParameterDeclaration, error) {
	return m.signature.AddParam(t, name)
}

// SetReturnType sets the signature's return type.
func (m *MethodDeclaration) SetReturnType(t TypeRef) { m.signature.SetReturnType(t) }

func (m *MethodDeclaration) toMember() ast.TypeMember {
	node := &ast.MemberMethod{
		MemberBase:          m.memberBase(),
		Parameters:          m.signature.paramNodes(),
		Statements:          m.body.ToNodes(),
		ImplementationTypes: m.nodes(),
	}
	if m.signature.returnType != nil {
		node.ReturnType = m.signature.returnType.TypeReference()
	}
	return node
}

// ConstructorDeclaration is a constructor, optionally chaining to the base
// constructor with arguments.
type ConstructorDeclaration struct {
	declaration
	owner     *ClassDeclaration
	signature *MethodSignature
	body      *Body
	baseArgs  []Expr
}

func (c *ConstructorDeclaration) Owner() *ClassDeclaration     { return c.owner }
func (c *ConstructorDeclaration) Signature() *MethodSignature { return c.signature }
func (c *ConstructorDeclaration) Body() *Body                 { return c.body }

// AddParam appends a by-value parameter to the signature.
func (c *ConstructorDeclaration) AddParam(t TypeRef, name string) (*ParameterDeclaration, error) {
	return c.signature.AddParam(t, name)
}

// AddBaseArg appends an argument passed to the base constructor.
func (c *ConstructorDeclaration) AddBaseArg(e Expr) error {
	if err := checkExprs("argument", e); err != nil {
		return err
	}
	c.baseArgs = append(c.baseArgs, e)
	return nil
}

func (c *ConstructorDeclaration) toMember() ast.TypeMember {
	return &ast.Constructor{
		MemberBase:          c.memberBase(),
		Parameters:          c.signature.paramNodes(),
		Statements:          c.body.ToNodes(),
		BaseConstructorArgs: lowerAll(c.baseArgs),
	}
}

// PropertyDeclaration is a property or indexer. Accessors exist once
// Getter or Setter has been called.
type PropertyDeclaration struct {
	declaration
	implementations
	owner       *ClassDeclaration
	typ         TypeRef
	get         *Body
	set         *Body
	params      []*ParameterDeclaration
	privateImpl TypeRef
}

func (p *PropertyDeclaration) Owner() *ClassDeclaration { return p.owner }
func (p *PropertyDeclaration) Type() TypeRef            { return p.typ }

// PrivateImplementationType returns the explicitly implemented interface, or nil.
func (p *PropertyDeclaration) PrivateImplementationType() TypeRef { return p.privateImpl }

// IsIndexer reports whether the property takes index parameters.
func (p *PropertyDeclaration) IsIndexer() bool { return len(p.params) > 0 }

// Params returns the index parameters.
func (p *PropertyDeclaration) Params() []*ParameterDeclaration {
	return append([]*ParameterDeclaration(nil), p.params...)
}

func (p *PropertyDeclaration) HasGet() bool { return p.get != nil }
func (p *PropertyDeclaration) HasSet() bool { return p.set != nil }

// Getter returns the get accessor body, creating the accessor.
func (p *PropertyDeclaration) Getter() *Body {
	if p.get == nil {
		p.get = &Body{}
	}
	return p.get
}

// Setter returns the set accessor body, creating the accessor.
func (p *PropertyDeclaration) Setter() *Body {
	if p.set == nil {
		p.set = &Body{}
	}
	return p.set
}

func (p *PropertyDeclaration) addIndexParam() error {
	if len(p.params) > 0 {
		return errors.NewDuplicateNameError("indexer "+p.name, indexParam)
	}
	p.params = append(p.params, &ParameterDeclaration{typ: Int32, name: indexParam})
	return nil
}

// IndexParam returns the index parameter of an indexer, or nil.
func (p *PropertyDeclaration) IndexParam() *ParameterDeclaration {
	if len(p.params) == 0 {
		return nil
	}
	return p.params[0]
}

func (p *PropertyDeclaration) toMember() ast.TypeMember {
	node := &ast.MemberProperty{
		MemberBase:          p.memberBase(),
		Type:                p.typ.TypeReference(),
		HasGet:              p.get != nil,
		HasSet:              p.set != nil,
		ImplementationTypes: p.nodes(),
	}
	if p.get != nil {
		node.GetStatements = p.get.ToNodes()
	}
	if p.set != nil {
		node.SetStatements = p.set.ToNodes()
	}
	for _, param := range p.params {
		node.Parameters = append(node.Parameters, param.toNode())
	}
	if p.privateImpl != nil {
		node.PrivateImplementationType = p.privateImpl.TypeReference()
	}
	return node
}
