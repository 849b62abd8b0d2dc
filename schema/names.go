package schema

import (
	"github.com/teranos/codedom/errors"
	"github.com/teranos/codedom/naming"
)

// Suffixes of the member names a wrapper class derives from each field.
// The backing suffix keeps fields apart from their properties even in
// case-insensitive languages.
const (
	BackingSuffix    = "Field"
	CollectionSuffix = "Collection"
)

// FieldNames are the class member names one field declares.
type FieldNames struct {
	Backing  string
	Property string
	// Collection is empty unless the field is an array.
	Collection string
}

// Names derives the member names of f under c.
func (f Field) Names(c naming.Conformer) (FieldNames, error) {
	clean, err := naming.Sanitize(f.Name)
	if err != nil {
		return FieldNames{}, err
	}
	camel, err := c.ToCamel(clean)
	if err != nil {
		return FieldNames{}, err
	}
	prop, err := c.ToCapitalized(clean)
	if err != nil {
		return FieldNames{}, err
	}
	names := FieldNames{Backing: camel + BackingSuffix, Property: prop}
	if f.IsArray() {
		if names.Collection, err = c.ToCapitalized(prop + CollectionSuffix); err != nil {
			return FieldNames{}, err
		}
	}
	return names, nil
}

// DeclaredName is the conformed name t is declared under.
func (t Type) DeclaredName(c naming.Conformer) (string, error) {
	clean, err := naming.Sanitize(t.Name)
	if err != nil {
		return "", err
	}
	return c.ToCapitalized(clean)
}

// CheckNames conforms every declared name with c and reports names that
// only collide after conforming, such as fields "id" and "Id", or types
// "order-line" and "order line".
func (d *Document) CheckNames(c naming.Conformer) error {
	if c == nil {
		return errors.NewArgumentNullError("conformer")
	}
	types := make(map[string]string)
	for _, t := range d.Types {
		name, err := t.DeclaredName(c)
		if err != nil {
			return errors.Wrapf(err, "type %s", t.Name)
		}
		if prev, ok := types[name]; ok {
			return collision("namespace", name, prev, t.Name)
		}
		types[name] = t.Name

		if t.Kind == KindEnum {
			err = checkMemberNames(c, t, name)
		} else {
			err = checkFieldNames(c, t, name)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

func checkMemberNames(c naming.Conformer, t Type, declared string) error {
	seen := make(map[string]string)
	for _, m := range t.Members {
		clean, err := naming.Sanitize(m.Name)
		if err != nil {
			return errors.Wrapf(err, "enum %s: member %s", t.Name, m.Name)
		}
		name, err := c.ToCapitalized(clean)
		if err != nil {
			return errors.Wrapf(err, "enum %s: member %s", t.Name, m.Name)
		}
		if prev, ok := seen[name]; ok {
			return collision("enum "+declared, name, prev, m.Name)
		}
		seen[name] = m.Name
	}
	return nil
}

func checkFieldNames(c naming.Conformer, t Type, declared string) error {
	// the class name is taken in its own member scope
	seen := map[string]string{declared: t.Name}
	for _, f := range t.Fields {
		names, err := f.Names(c)
		if err != nil {
			return errors.Wrapf(err, "class %s: field %s", t.Name, f.Name)
		}
		for _, name := range []string{names.Backing, names.Property, names.Collection} {
			if name == "" {
				continue
			}
			if prev, ok := seen[name]; ok {
				return collision("class "+declared, name, prev, f.Name)
			}
			seen[name] = f.Name
		}
	}
	return nil
}

func collision(scope, name, first, second string) error {
	return errors.Wrapf(errors.NewDuplicateNameError(scope, name), "%q and %q conform to the same name", first, second)
}
