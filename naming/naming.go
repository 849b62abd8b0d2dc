// Package naming conforms external identifiers (schema element names,
// Go struct fields, CLI arguments) into the two casings the declaration
// model uses: Capitalized for type and member names, camel for parameters.
//
// Case mapping is ordinal (package unicode), never locale-aware, so the
// same input always yields the same identifier.
package naming

import (
	"strings"
	"unicode"

	"github.com/teranos/codedom/errors"
)

// Conformer turns raw identifiers into conforming names.
// Both operations are idempotent and fail on empty input.
type Conformer interface {
	ToCapitalized(name string) (string, error)
	ToCamel(name string) (string, error)
}

// Default upper-cases or lower-cases only the first rune.
// Both conformers prefix an underscore to a name that would start with a digit.
var Default Conformer = defaultConformer{}

// Pascal joins '_', '-', '.' and space separated words before casing,
// so "order-line_item" becomes "OrderLineItem" / "orderLineItem".
var Pascal Conformer = pascalConformer{}

// ByName returns the conformer registered under name ("default" or "pascal").
// The empty string selects Default.
func ByName(name string) (Conformer, error) {
	switch strings.ToLower(name) {
	case "", "default":
		return Default, nil
	case "pascal":
		return Pascal, nil
	}
	return nil, errors.Newf("unknown naming style %q (use default or pascal)", name)
}

type defaultConformer struct{}

func (defaultConformer) ToCapitalized(name string) (string, error) {
	if name == "" {
		return "", errors.NewArgumentNullError("name")
	}
	return guardLeadingDigit(mapFirst(name, unicode.ToUpper)), nil
}

func (defaultConformer) ToCamel(name string) (string, error) {
	if name == "" {
		return "", errors.NewArgumentNullError("name")
	}
	return guardLeadingDigit(mapFirst(name, unicode.ToLower)), nil
}

type pascalConformer struct{}

func (pascalConformer) ToCapitalized(name string) (string, error) {
	if name == "" {
		return "", errors.NewArgumentNullError("name")
	}
	out := ToPascalCase(name)
	if out == "" {
		return "", errors.Newf("identifier %q has no word characters", name)
	}
	return guardLeadingDigit(out), nil
}

func (pascalConformer) ToCamel(name string) (string, error) {
	if name == "" {
		return "", errors.NewArgumentNullError("name")
	}
	out := ToCamelCase(name)
	if out == "" {
		return "", errors.Newf("identifier %q has no word characters", name)
	}
	return guardLeadingDigit(out), nil
}

func mapFirst(s string, fn func(rune) rune) string {
	runes := []rune(s)
	runes[0] = fn(runes[0])
	return string(runes)
}

func isSeparator(r rune) bool {
	return r == '_' || r == '-' || r == '.' || r == ' '
}

// ToPascalCase converts snake_case, kebab-case or dotted names to PascalCase
func ToPascalCase(s string) string {
	parts := strings.FieldsFunc(s, isSeparator)

	var result strings.Builder
	for _, part := range parts {
		result.WriteString(mapFirst(part, unicode.ToUpper))
	}

	return result.String()
}

// ToCamelCase converts snake_case, kebab-case or dotted names to camelCase
func ToCamelCase(s string) string {
	pascal := ToPascalCase(s)
	if len(pascal) == 0 {
		return pascal
	}
	return mapFirst(pascal, unicode.ToLower)
}
