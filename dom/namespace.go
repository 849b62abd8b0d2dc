package dom

import (
	"strings"

	"github.com/teranos/codedom/ast"
	"github.com/teranos/codedom/errors"
	"github.com/teranos/codedom/naming"
)

// typeDeclaration is a top-level or nested type: a class or an enum.
type typeDeclaration interface {
	TypeRef
	ToNode() *ast.TypeDeclaration
}

// NamespaceDeclaration is the root of a declaration tree. It owns its
// classes and enums, keyed by conformed name, and the conformer used to
// derive type and member names.
type NamespaceDeclaration struct {
	name      string
	conformer naming.Conformer
	imports   []string
	comments  []string
	types     []typeDeclaration
	names     map[string]bool
}

// NewNamespace returns an empty namespace using naming.Default.
func NewNamespace(name string) (*NamespaceDeclaration, error) {
	if strings.TrimSpace(name) == "" {
		return nil, errors.NewArgumentNullError("name")
	}
	return &NamespaceDeclaration{
		name:      name,
		conformer: naming.Default,
		names:     make(map[string]bool),
	}, nil
}

func (n *NamespaceDeclaration) Name() string { return n.name }

// Conformer returns the active name conformer.
func (n *NamespaceDeclaration) Conformer() naming.Conformer { return n.conformer }

// SetConformer replaces the active conformer. A nil conformer restores
// naming.Default. Names already declared are not re-conformed.
func (n *NamespaceDeclaration) SetConformer(c naming.Conformer) {
	if c == nil {
		c = naming.Default
	}
	n.conformer = c
}

// AddImport adds a using/Imports directive. Duplicates are ignored.
func (n *NamespaceDeclaration) AddImport(namespace string) {
	for _, existing := range n.imports {
		if existing == namespace {
			return
		}
	}
	n.imports = append(n.imports, namespace)
}

// AddComment adds a namespace-level comment line.
func (n *NamespaceDeclaration) AddComment(text string) {
	n.comments = append(n.comments, text)
}

func (n *NamespaceDeclaration) reserve(raw string) (string, error) {
	if raw == "" {
		return "", errors.NewArgumentNullError("name")
	}
	name, err := n.conformer.ToCapitalized(raw)
	if err != nil {
		return "", err
	}
	if n.names[name] {
		return "", errors.NewDuplicateNameError("namespace "+n.name, name)
	}
	return name, nil
}

// AddClass declares a public class named after the capitalized form of
// name and returns it for further configuration.
func (n *NamespaceDeclaration) AddClass(name string) (*ClassDeclaration, error) {
	conformed, err := n.reserve(name)
	if err != nil {
		return nil, err
	}
	c := newClass(conformed, n, nil)
	n.names[conformed] = true
	n.types = append(n.types, c)
	return c, nil
}

// AddEnum declares a public enum named after the capitalized form of name.
func (n *NamespaceDeclaration) AddEnum(name string) (*EnumDeclaration, error) {
	conformed, err := n.reserve(name)
	if err != nil {
		return nil, err
	}
	e := newEnum(conformed, n)
	n.names[conformed] = true
	n.types = append(n.types, e)
	return e, nil
}

// Classes returns the top-level classes in declaration order.
func (n *NamespaceDeclaration) Classes() []*ClassDeclaration {
	var out []*ClassDeclaration
	for _, t := range n.types {
		if c, ok := t.(*ClassDeclaration); ok {
			out = append(out, c)
		}
	}
	return out
}

// Enums returns the enums in declaration order.
func (n *NamespaceDeclaration) Enums() []*EnumDeclaration {
	var out []*EnumDeclaration
	for _, t := range n.types {
		if e, ok := t.(*EnumDeclaration); ok {
			out = append(out, e)
		}
	}
	return out
}

// Class looks up a top-level class by its conformed name.
func (n *NamespaceDeclaration) Class(name string) (*ClassDeclaration, bool) {
	for _, c := range n.Classes() {
		if c.name == name {
			return c, true
		}
	}
	return nil, false
}

// Enum looks up an enum by its conformed name.
func (n *NamespaceDeclaration) Enum(name string) (*EnumDeclaration, bool) {
	for _, e := range n.Enums() {
		if e.name == name {
			return e, true
		}
	}
	return nil, false
}

// Len returns the number of top-level types.
func (n *NamespaceDeclaration) Len() int { return len(n.types) }

// ToNode lowers the namespace and every type it owns.
func (n *NamespaceDeclaration) ToNode() *ast.Namespace {
	node := &ast.Namespace{
		Name:    n.name,
		Imports: append([]string(nil), n.imports...),
	}
	for _, c := range n.comments {
		node.Comments = append(node.Comments, ast.Comment{Text: c})
	}
	for _, t := range n.types {
		node.Types = append(node.Types, t.ToNode())
	}
	return node
}
