package naming

import (
	"testing"
	"unicode"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teranos/codedom/errors"
)

func TestDefaultConformer(t *testing.T) {
	tests := []struct {
		in    string
		cap   string
		camel string
	}{
		{"widget", "Widget", "widget"},
		{"Widget", "Widget", "widget"},
		{"x", "X", "x"},
		{"orderLine", "OrderLine", "orderLine"},
		{"ümlaut", "Ümlaut", "ümlaut"},
		{"_private", "_private", "_private"},
		{"HTTPServer", "HTTPServer", "hTTPServer"},
		{"3dModel", "_3dModel", "_3dModel"},
		{"_3dModel", "_3dModel", "_3dModel"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := Default.ToCapitalized(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.cap, got)

			got, err = Default.ToCamel(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.camel, got)
		})
	}
}

func TestConformersAreIdempotent(t *testing.T) {
	inputs := []string{"a", "widget", "Widget", "order-line_item", "ALLCAPS", "mixed.Case name", "ß", "9lives", "İstanbul"}

	for _, c := range []Conformer{Default, Pascal} {
		for _, in := range inputs {
			once, err := c.ToCapitalized(in)
			require.NoError(t, err, in)
			twice, err := c.ToCapitalized(once)
			require.NoError(t, err, in)
			assert.Equal(t, once, twice, "ToCapitalized(%q)", in)

			once, err = c.ToCamel(in)
			require.NoError(t, err, in)
			twice, err = c.ToCamel(once)
			require.NoError(t, err, in)
			assert.Equal(t, once, twice, "ToCamel(%q)", in)
		}
	}
}

func TestConformersRejectEmpty(t *testing.T) {
	for _, c := range []Conformer{Default, Pascal} {
		_, err := c.ToCapitalized("")
		assert.True(t, errors.IsArgumentNullError(err))
		_, err = c.ToCamel("")
		assert.True(t, errors.IsArgumentNullError(err))
	}

	_, err := Pascal.ToCapitalized("__")
	assert.Error(t, err)
}

func TestPascalConformer(t *testing.T) {
	got, err := Pascal.ToCapitalized("order-line_item")
	require.NoError(t, err)
	assert.Equal(t, "OrderLineItem", got)

	got, err = Pascal.ToCamel("Unit price")
	require.NoError(t, err)
	assert.Equal(t, "unitPrice", got)
}

func TestPascalConformerKeepsLeadingDigitGuard(t *testing.T) {
	for _, in := range []string{"_3dModel", "3d_model", "9lives"} {
		got, err := Pascal.ToCapitalized(in)
		require.NoError(t, err, in)
		assert.Equal(t, '_', []rune(got)[0], in)
		assert.True(t, unicode.IsDigit([]rune(got)[1]), in)

		got, err = Pascal.ToCamel(in)
		require.NoError(t, err, in)
		assert.Equal(t, '_', []rune(got)[0], in)
	}

	got, err := Pascal.ToCapitalized("_3dModel")
	require.NoError(t, err)
	assert.Equal(t, "_3dModel", got)
}

func TestByName(t *testing.T) {
	c, err := ByName("")
	require.NoError(t, err)
	assert.Equal(t, Default, c)

	c, err = ByName("Pascal")
	require.NoError(t, err)
	assert.Equal(t, Pascal, c)

	_, err = ByName("kebab")
	assert.Error(t, err)
}

func TestSanitize(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"unit-price (€)", "unit_price"},
		{"3dModel", "_3dModel"},
		{"Order-line", "Order_line"},
		{"unit price", "unit_price"},
		{"a - b.c", "a_b_c"},
		{"_private", "_private"},
		{" padded ", "padded"},
		{"éclair", "éclair"},
		{"plain", "plain"},
	}
	for _, tt := range tests {
		got, err := Sanitize(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got)
	}

	_, err := Sanitize("")
	assert.True(t, errors.IsArgumentNullError(err))
	_, err = Sanitize("()")
	assert.Error(t, err)
	_, err = Sanitize("- -")
	assert.Error(t, err)
}

func TestSanitizedNamesConformToIdentifiers(t *testing.T) {
	for _, in := range []string{"Order-line", "unit price", "unit-price (€)", "3dModel", "line (v2)"} {
		clean, err := Sanitize(in)
		require.NoError(t, err, in)
		for _, c := range []Conformer{Default, Pascal} {
			for _, conform := range []func(string) (string, error){c.ToCapitalized, c.ToCamel} {
				got, err := conform(clean)
				require.NoError(t, err, in)
				for i, r := range got {
					ok := r == '_' || unicode.IsLetter(r) || unicode.Is(unicode.Mn, r) || (i > 0 && unicode.IsDigit(r))
					assert.True(t, ok, "%q -> %q", in, got)
				}
			}
		}
	}
}
