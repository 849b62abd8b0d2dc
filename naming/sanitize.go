package naming

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/teranos/codedom/errors"
)

// stripNonIdentifier removes everything except letters, digits, marks and the separators the
// Pascal conformer splits on.
var stripNonIdentifier = runes.Remove(runes.Predicate(func(r rune) bool {
	return !(unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.Is(unicode.Mn, r) || isSeparator(r))
}))

// Sanitize normalizes name to NFC and drops runes that cannot appear in an
// identifier. Each run of separators becomes a single underscore, trailing
// separators are dropped and a leading digit gets an underscore prefix. The
// result is a valid identifier under either conformer.
//
//	Sanitize("unit-price (€)") == "unit_price"
//	Sanitize("3dModel")        == "_3dModel"
func Sanitize(name string) (string, error) {
	if name == "" {
		return "", errors.NewArgumentNullError("name")
	}

	stripped, _, err := transform.String(transform.Chain(norm.NFC, stripNonIdentifier), name)
	if err != nil {
		return "", errors.Wrapf(err, "failed to sanitize %q", name)
	}
	out := joinSeparators(stripped)
	if out == "" || out == "_" {
		return "", errors.Newf("identifier %q has no usable characters", name)
	}
	return guardLeadingDigit(out), nil
}

// joinSeparators keeps a leading underscore, folds inner separator runs
// into one underscore and drops the rest.
func joinSeparators(s string) string {
	var b strings.Builder
	pending := false
	for i, r := range s {
		if isSeparator(r) {
			if i == 0 && r == '_' {
				b.WriteRune(r)
				continue
			}
			pending = b.Len() > 0
			continue
		}
		if pending {
			b.WriteByte('_')
			pending = false
		}
		b.WriteRune(r)
	}
	return b.String()
}

func guardLeadingDigit(s string) string {
	if s != "" && unicode.IsDigit([]rune(s)[0]) {
		return "_" + s
	}
	return s
}
