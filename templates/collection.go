// Package templates synthesizes whole classes through the declaration
// builder API.
package templates

import (
	"github.com/teranos/codedom/ast"
	"github.com/teranos/codedom/dom"
	"github.com/teranos/codedom/errors"
	"github.com/teranos/codedom/naming"
)

const (
	listProperty  = "List"
	indexParam    = "index"
	wrappedField  = "wrapped"
	collectionArg = "collection"
)

// Owner is a namespace or class that can declare the generated collection.
type Owner interface {
	AddClass(name string) (*dom.ClassDeclaration, error)
	Conformer() naming.Conformer
}

// CollectionTemplate generates <Elem>Collection, a strongly typed collection
// over the internal untyped List of System.Collections.CollectionBase. Each
// flag toggles one member; every member body is a one-line delegation to
// List.
//
// With Generic set the class derives from List<Elem> instead and only the
// constructor is generated.
type CollectionTemplate struct {
	ElementType dom.TypeRef
	// ClassName overrides the default <Elem>Collection name.
	ClassName string

	ItemGet    bool
	ItemSet    bool
	Add        bool
	AddRange   bool
	Contains   bool
	Remove     bool
	Insert     bool
	IndexOf    bool
	Enumerator bool

	Generic bool
}

// NewCollectionTemplate returns a template for elem with every member enabled.
func NewCollectionTemplate(elem dom.TypeRef) *CollectionTemplate {
	return &CollectionTemplate{
		ElementType: elem,
		ItemGet:     true,
		ItemSet:     true,
		Add:         true,
		AddRange:    true,
		Contains:    true,
		Remove:      true,
		Insert:      true,
		IndexOf:     true,
		Enumerator:  true,
	}
}

// Name is the generated class name.
func (t *CollectionTemplate) Name() string {
	if t.ClassName != "" {
		return t.ClassName
	}
	if t.ElementType == nil {
		return ""
	}
	stem, err := elementStem(t.ElementType)
	if err != nil {
		return ""
	}
	return stem + "Collection"
}

// elementStem is the identifier the element type lends to the class and
// parameter names.
func elementStem(elem dom.TypeRef) (string, error) {
	return naming.Sanitize(dom.Stem(elem))
}

// Generate declares the collection class in owner and returns it.
func (t *CollectionTemplate) Generate(owner Owner) (*dom.ClassDeclaration, error) {
	if owner == nil {
		return nil, errors.NewArgumentNullError("owner")
	}
	if t.ElementType == nil {
		return nil, errors.NewArgumentNullError("elementType")
	}
	stem, err := elementStem(t.ElementType)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to derive names from %s", t.ElementType.Name())
	}
	param, err := owner.Conformer().ToCamel(stem)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to derive parameter name from %s", t.ElementType.Name())
	}

	c, err := owner.AddClass(t.Name())
	if err != nil {
		return nil, err
	}
	c.AddConstructor()

	if t.Generic {
		base, err := dom.GenericList(t.ElementType)
		if err != nil {
			return nil, err
		}
		c.SetBaseType(base)
		return c, nil
	}
	c.SetBaseType(dom.CollectionBase)

	b := &collectionBuilder{c: c, elem: t.ElementType, param: param}
	steps := []struct {
		enabled bool
		build   func() error
	}{
		{t.ItemGet || t.ItemSet, func() error { return b.indexer(t.ItemGet, t.ItemSet) }},
		{t.Add, b.add},
		{t.AddRange, b.addRange},
		{t.Contains, b.contains},
		{t.Remove, b.remove},
		{t.Insert, b.insert},
		{t.IndexOf, b.indexOf},
		{t.Enumerator, b.enumerator},
	}
	for _, s := range steps {
		if !s.enabled {
			continue
		}
		if err := s.build(); err != nil {
			return nil, errors.Wrapf(err, "failed to generate %s", c.Name())
		}
	}
	return c, nil
}

// collectionBuilder adds the CollectionBase members to one class.
type collectionBuilder struct {
	c     *dom.ClassDeclaration
	elem  dom.TypeRef
	param string
}

func list() dom.Expr { return dom.Prop(dom.This(), listProperty) }

// appendTo adds the result of a statement factory to body.
func appendTo(body *dom.Body) func(dom.Stmt, error) error {
	return func(s dom.Stmt, err error) error {
		if err != nil {
			return err
		}
		return body.Add(s)
	}
}

// method declares name taking one element parameter and returns both.
func (b *collectionBuilder) method(name string, returns dom.TypeRef) (*dom.MethodDeclaration, *dom.ParameterDeclaration, error) {
	m, err := b.c.AddMethod(name)
	if err != nil {
		return nil, nil, err
	}
	m.SetReturnType(returns)
	p, err := m.AddParam(b.elem, b.param)
	if err != nil {
		return nil, nil, err
	}
	return m, p, nil
}

func (b *collectionBuilder) indexer(get, set bool) error {
	p, err := b.c.AddIndexer(b.elem)
	if err != nil {
		return err
	}
	item := dom.Index(list(), dom.Arg(indexParam))
	if get {
		if err := appendTo(p.Getter())(dom.Return(dom.Cast(b.elem, item))); err != nil {
			return err
		}
	}
	if set {
		if err := appendTo(p.Setter())(dom.Assign(item, dom.Value())); err != nil {
			return err
		}
	}
	return nil
}

func (b *collectionBuilder) add() error {
	m, p, err := b.method("Add", dom.Int32)
	if err != nil {
		return err
	}
	return appendTo(m.Body())(dom.Return(dom.Call(list(), "Add", p.Ref())))
}

func (b *collectionBuilder) addRange() error {
	m, err := b.c.AddMethod("AddRange")
	if err != nil {
		return err
	}
	items, err := m.AddParam(b.c, "items")
	if err != nil {
		return err
	}
	into := appendTo(m.Body())
	if err := into(dom.ThrowIfNull(items)); err != nil {
		return err
	}
	call, err := dom.Eval(dom.Call(dom.This(), "Add", dom.VarRef(b.param)))
	if err != nil {
		return err
	}
	return into(dom.ForEach(b.elem, b.param, items.Ref(), call))
}

func (b *collectionBuilder) contains() error {
	m, p, err := b.method("Contains", dom.Bool)
	if err != nil {
		return err
	}
	return appendTo(m.Body())(dom.Return(dom.Call(list(), "Contains", p.Ref())))
}

func (b *collectionBuilder) remove() error {
	m, p, err := b.method("Remove", dom.Void)
	if err != nil {
		return err
	}
	return appendTo(m.Body())(dom.Eval(dom.Call(list(), "Remove", p.Ref())))
}

func (b *collectionBuilder) insert() error {
	m, err := b.c.AddMethod("Insert")
	if err != nil {
		return err
	}
	index, err := m.AddParam(dom.Int32, indexParam)
	if err != nil {
		return err
	}
	p, err := m.AddParam(b.elem, b.param)
	if err != nil {
		return err
	}
	return appendTo(m.Body())(dom.Eval(dom.Call(list(), "Insert", index.Ref(), p.Ref())))
}

func (b *collectionBuilder) indexOf() error {
	m, p, err := b.method("IndexOf", dom.Int32)
	if err != nil {
		return err
	}
	return appendTo(m.Body())(dom.Return(dom.Call(list(), "IndexOf", p.Ref())))
}

// enumerator declares the nested Enumerator and the GetEnumerator that
// shadows the untyped one inherited from CollectionBase.
func (b *collectionBuilder) enumerator() error {
	e, err := b.c.AddClass("Enumerator")
	if err != nil {
		return err
	}
	if err := e.AddInterface(dom.IEnumerator); err != nil {
		return err
	}

	wrapped, err := e.AddField(dom.IEnumerator, wrappedField)
	if err != nil {
		return err
	}
	wrapped.SetAccess(ast.Private)

	ctor := e.AddConstructor()
	collection, err := ctor.AddParam(b.c, collectionArg)
	if err != nil {
		return err
	}
	inner := dom.Call(dom.Cast(dom.IEnumerable, collection.Ref()), "GetEnumerator")
	if err := appendTo(ctor.Body())(dom.Assign(wrapped.Ref(), inner)); err != nil {
		return err
	}

	current := dom.Prop(wrapped.Ref(), "Current")
	typed, err := e.AddNamedProperty(b.elem, "Current")
	if err != nil {
		return err
	}
	if err := appendTo(typed.Getter())(dom.Return(dom.Cast(b.elem, current))); err != nil {
		return err
	}
	untyped, err := e.AddExplicitProperty(dom.IEnumerator, dom.Object, "Current")
	if err != nil {
		return err
	}
	if err := appendTo(untyped.Getter())(dom.Return(current)); err != nil {
		return err
	}

	moveNext, err := e.AddMethod("MoveNext")
	if err != nil {
		return err
	}
	moveNext.SetReturnType(dom.Bool)
	if err := moveNext.AddImplementationType(dom.IEnumerator); err != nil {
		return err
	}
	if err := appendTo(moveNext.Body())(dom.Return(dom.Call(wrapped.Ref(), "MoveNext"))); err != nil {
		return err
	}

	reset, err := e.AddMethod("Reset")
	if err != nil {
		return err
	}
	if err := reset.AddImplementationType(dom.IEnumerator); err != nil {
		return err
	}
	if err := appendTo(reset.Body())(dom.Eval(dom.Call(wrapped.Ref(), "Reset"))); err != nil {
		return err
	}

	get, err := b.c.AddMethod("GetEnumerator")
	if err != nil {
		return err
	}
	get.SetAttributes(ast.Public | ast.New)
	get.SetReturnType(e)
	return appendTo(get.Body())(dom.Return(dom.New(e, dom.This())))
}
