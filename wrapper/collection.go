package wrapper

import (
	"github.com/teranos/codedom/dom"
	"github.com/teranos/codedom/naming"
	"github.com/teranos/codedom/schema"
	"github.com/teranos/codedom/templates"
)

// addCollection declares the nested collection class named className in c
// for an array field, with Add<T>, Contains<T> and Remove<T> for each
// distinct item type.
func (g *Generator) addCollection(c *dom.ClassDeclaration, className string, f schema.Field) (dom.TypeRef, error) {
	elem, err := g.MapType(f.ElemType())
	if err != nil {
		return nil, err
	}

	tmpl := &templates.CollectionTemplate{ElementType: elem, Generic: true}
	if g.legacyCollections {
		tmpl = templates.NewCollectionTemplate(elem)
	}
	tmpl.ClassName = className
	coll, err := tmpl.Generate(c)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]bool)
	for _, item := range f.Items {
		if seen[item.Type] {
			continue
		}
		seen[item.Type] = true
		itemType, err := g.MapType(item.Type)
		if err != nil {
			return nil, err
		}
		if err := addItemMethods(coll, itemType); err != nil {
			return nil, err
		}
	}
	return coll, nil
}

// addItemMethods declares the typed convenience overloads for one item
// type, each delegating to the collection's own member.
func addItemMethods(coll *dom.ClassDeclaration, itemType dom.TypeRef) error {
	stem, err := naming.Sanitize(dom.Stem(itemType))
	if err != nil {
		return err
	}
	param, err := coll.Conformer().ToCamel(stem)
	if err != nil {
		return err
	}
	methods := []struct {
		prefix  string
		returns dom.TypeRef
		body    func(dom.Expr) (dom.Stmt, error)
	}{
		{"Add", dom.Void, func(p dom.Expr) (dom.Stmt, error) { return dom.Eval(dom.Call(dom.This(), "Add", p)) }},
		{"Contains", dom.Bool, func(p dom.Expr) (dom.Stmt, error) { return dom.Return(dom.Call(dom.This(), "Contains", p)) }},
		{"Remove", dom.Void, func(p dom.Expr) (dom.Stmt, error) { return dom.Eval(dom.Call(dom.This(), "Remove", p)) }},
	}
	for _, m := range methods {
		decl, err := coll.AddMethod(m.prefix + stem)
		if err != nil {
			return err
		}
		decl.SetReturnType(m.returns)
		p, err := decl.AddParam(itemType, param)
		if err != nil {
			return err
		}
		stmt, err := m.body(p.Ref())
		if err != nil {
			return err
		}
		if err := decl.Body().Add(stmt); err != nil {
			return err
		}
	}
	return nil
}
