package dom

import (
	"github.com/teranos/codedom/ast"
	"github.com/teranos/codedom/errors"
)

// declaration is embedded by every named entity of the model.
type declaration struct {
	name       string
	attributes ast.MemberAttributes
	doc        *Documentation
	custom     []*AttributeDeclaration
}

// Name returns the declared name.
func (d *declaration) Name() string { return d.name }

// Attributes returns the visibility and modifier flags.
func (d *declaration) Attributes() ast.MemberAttributes { return d.attributes }

// SetAttributes replaces the visibility and modifier flags.
func (d *declaration) SetAttributes(a ast.MemberAttributes) { d.attributes = a }

// SetAccess replaces only the visibility flags.
func (d *declaration) SetAccess(access ast.MemberAttributes) {
	d.attributes = d.attributes.WithAccess(access)
}

// Doc returns the declaration's documentation, creating it on first use.
func (d *declaration) Doc() *Documentation {
	if d.doc == nil {
		d.doc = &Documentation{}
	}
	return d.doc
}

// AddAttribute appends a custom attribute of type t and returns it for
// argument configuration.
func (d *declaration) AddAttribute(t TypeRef) (*AttributeDeclaration, error) {
	if t == nil {
		return nil, errors.NewArgumentNullError("attributeType")
	}
	a := &AttributeDeclaration{typ: t}
	d.custom = append(d.custom, a)
	return a, nil
}

// CustomAttributes returns the attached attributes in order.
func (d *declaration) CustomAttributes() []*AttributeDeclaration {
	return append([]*AttributeDeclaration(nil), d.custom...)
}

func (d *declaration) memberBase() ast.MemberBase {
	mb := ast.MemberBase{Name: d.name, Attributes: d.attributes}
	if d.doc != nil {
		mb.Comments = d.doc.ToComments()
	}
	for _, a := range d.custom {
		mb.CustomAttributes = append(mb.CustomAttributes, a.ToNode())
	}
	return mb
}

// AttributeDeclaration is a custom attribute with positional and named
// arguments, e.g. [XmlElement("item", IsNullable = true)].
type AttributeDeclaration struct {
	typ  TypeRef
	args []attributeArg
}

type attributeArg struct {
	name  string
	value Expr
}

// Type returns the attribute type.
func (a *AttributeDeclaration) Type() TypeRef { return a.typ }

// Arg appends a positional argument. Positional arguments must precede
// named ones.
func (a *AttributeDeclaration) Arg(value Expr) error {
	if err := checkExprs("value", value); err != nil {
		return err
	}
	for _, existing := range a.args {
		if existing.name != "" {
			return errors.Newf("positional argument after named argument on %s", a.typ.Name())
		}
	}
	a.args = append(a.args, attributeArg{value: value})
	return nil
}

// NamedArg appends name = value.
func (a *AttributeDeclaration) NamedArg(name string, value Expr) error {
	if name == "" {
		return errors.NewArgumentNullError("name")
	}
	if err := checkExprs("value", value); err != nil {
		return err
	}
	for _, existing := range a.args {
		if existing.name == name {
			return errors.NewDuplicateNameError("attribute "+a.typ.Name(), name)
		}
	}
	a.args = append(a.args, attributeArg{name: name, value: value})
	return nil
}

// Len returns the number of arguments.
func (a *AttributeDeclaration) Len() int { return len(a.args) }

// ToNode lowers the attribute.
func (a *AttributeDeclaration) ToNode() *ast.AttributeDeclaration {
	node := &ast.AttributeDeclaration{Type: a.typ.TypeReference()}
	for _, arg := range a.args {
		node.Arguments = append(node.Arguments, ast.AttributeArgument{Name: arg.name, Value: arg.value.ToNode()})
	}
	return node
}
