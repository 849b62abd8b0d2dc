// Package schema describes the types a wrapper namespace is generated from.
//
// A Document is read from YAML, JSON or TOML (see LoadFile) or derived from
// the structs and string constants of a Go package (see FromGoPackage).
package schema

import (
	"strings"

	"github.com/teranos/codedom/errors"
	"github.com/teranos/codedom/naming"
)

// Kind tells classes from enums.
type Kind string

const (
	KindClass Kind = "class"
	KindEnum  Kind = "enum"
)

// ArraySuffix marks an array field type, e.g. "Widget[]".
const ArraySuffix = "[]"

// Document is one descriptor file.
type Document struct {
	// Format is the descriptor format version, checked against FormatConstraint.
	Format string `yaml:"format" toml:"format" json:"format"`
	// Namespace is the target namespace. It may be overridden by the caller.
	Namespace string `yaml:"namespace" toml:"namespace" json:"namespace"`
	Types     []Type `yaml:"types" toml:"types" json:"types"`
}

// Type describes a class or an enum.
type Type struct {
	Name string `yaml:"name" toml:"name" json:"name"`
	Kind Kind   `yaml:"kind" toml:"kind" json:"kind"`
	Doc  string `yaml:"doc,omitempty" toml:"doc,omitempty" json:"doc,omitempty"`
	// Namespace is the XML namespace of the type.
	Namespace string `yaml:"namespace,omitempty" toml:"namespace,omitempty" json:"namespace,omitempty"`

	// Flags marks an enum whose members combine bitwise.
	Flags   bool     `yaml:"flags,omitempty" toml:"flags,omitempty" json:"flags,omitempty"`
	Members []Member `yaml:"members,omitempty" toml:"members,omitempty" json:"members,omitempty"`

	Fields []Field `yaml:"fields,omitempty" toml:"fields,omitempty" json:"fields,omitempty"`
}

// Member is one enum value. Label is the serialized form and defaults to Name.
type Member struct {
	Name  string `yaml:"name" toml:"name" json:"name"`
	Label string `yaml:"label,omitempty" toml:"label,omitempty" json:"label,omitempty"`
	Value *int64 `yaml:"value,omitempty" toml:"value,omitempty" json:"value,omitempty"`
}

// Field is one class field. At most one of Attribute and Element is set;
// with neither the field serializes as an element named after itself.
type Field struct {
	Name string `yaml:"name" toml:"name" json:"name"`
	Type string `yaml:"type" toml:"type" json:"type"`
	Doc  string `yaml:"doc,omitempty" toml:"doc,omitempty" json:"doc,omitempty"`

	Attribute   string `yaml:"attribute,omitempty" toml:"attribute,omitempty" json:"attribute,omitempty"`
	Element     string `yaml:"element,omitempty" toml:"element,omitempty" json:"element,omitempty"`
	ElementType string `yaml:"element_type,omitempty" toml:"element_type,omitempty" json:"element_type,omitempty"`
	Nullable    bool   `yaml:"nullable,omitempty" toml:"nullable,omitempty" json:"nullable,omitempty"`
	Namespace   string `yaml:"namespace,omitempty" toml:"namespace,omitempty" json:"namespace,omitempty"`

	// Items are the element annotations of an array field, one per
	// element name the array may hold.
	Items []Item `yaml:"items,omitempty" toml:"items,omitempty" json:"items,omitempty"`
}

// Item names one element an array field may contain.
type Item struct {
	Name string `yaml:"name" toml:"name" json:"name"`
	Type string `yaml:"type" toml:"type" json:"type"`
}

// IsArray reports whether the field holds a sequence.
func (f Field) IsArray() bool { return strings.HasSuffix(f.Type, ArraySuffix) }

// ElemType is the field type without the array suffix.
func (f Field) ElemType() string { return strings.TrimSuffix(f.Type, ArraySuffix) }

// MemberLabel returns the serialized form of m.
func (m Member) MemberLabel() string {
	if m.Label != "" {
		return m.Label
	}
	return m.Name
}

// Type looks a type up by name.
func (d *Document) Type(name string) (Type, bool) {
	for _, t := range d.Types {
		if t.Name == name {
			return t, true
		}
	}
	return Type{}, false
}

// Validate checks names and annotation combinations, including names that
// collide once conformed with naming.Default. It does not resolve field
// types; unknown types are allowed and fall back to plain references.
func (d *Document) Validate() error {
	seen := make(map[string]bool)
	for i, t := range d.Types {
		if t.Name == "" {
			return errors.NewInvalidDescriptorError("types[%d]: missing name", i)
		}
		if seen[t.Name] {
			return errors.NewInvalidDescriptorError("type %s declared twice", t.Name)
		}
		seen[t.Name] = true

		switch t.Kind {
		case KindEnum:
			if len(t.Fields) > 0 {
				return errors.NewInvalidDescriptorError("enum %s: enums have members, not fields", t.Name)
			}
			if err := validateMembers(t); err != nil {
				return err
			}
		case KindClass, "":
			if len(t.Members) > 0 || t.Flags {
				return errors.NewInvalidDescriptorError("class %s: members and flags apply to enums only", t.Name)
			}
			if err := validateFields(t); err != nil {
				return err
			}
		default:
			return errors.NewInvalidDescriptorError("type %s: unknown kind %q", t.Name, t.Kind)
		}
	}
	return d.CheckNames(naming.Default)
}

func validateMembers(t Type) error {
	seen := make(map[string]bool)
	for i, m := range t.Members {
		if m.Name == "" {
			return errors.NewInvalidDescriptorError("enum %s: members[%d]: missing name", t.Name, i)
		}
		if seen[m.Name] {
			return errors.NewInvalidDescriptorError("enum %s: member %s declared twice", t.Name, m.Name)
		}
		seen[m.Name] = true
	}
	return nil
}

func validateFields(t Type) error {
	seen := make(map[string]bool)
	for i, f := range t.Fields {
		if f.Name == "" {
			return errors.NewInvalidDescriptorError("class %s: fields[%d]: missing name", t.Name, i)
		}
		if f.Type == "" || f.ElemType() == "" {
			return errors.NewInvalidDescriptorError("class %s: field %s: missing type", t.Name, f.Name)
		}
		if seen[f.Name] {
			return errors.NewInvalidDescriptorError("class %s: field %s declared twice", t.Name, f.Name)
		}
		seen[f.Name] = true

		if f.Attribute != "" && (f.Element != "" || f.ElementType != "" || f.Nullable) {
			return errors.NewInvalidDescriptorError("class %s: field %s: attribute and element annotations are exclusive", t.Name, f.Name)
		}
		if len(f.Items) > 0 && !f.IsArray() {
			return errors.NewInvalidDescriptorError("class %s: field %s: items require an array type", t.Name, f.Name)
		}
		for j, item := range f.Items {
			if item.Name == "" || item.Type == "" {
				return errors.NewInvalidDescriptorError("class %s: field %s: items[%d]: name and type are required", t.Name, f.Name, j)
			}
		}
	}
	return nil
}
