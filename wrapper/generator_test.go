package wrapper

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/teranos/codedom/dom"
	"github.com/teranos/codedom/errors"
	"github.com/teranos/codedom/naming"
	"github.com/teranos/codedom/provider"
	"github.com/teranos/codedom/provider/csharp"
	"github.com/teranos/codedom/schema"
)

func newTestGenerator(t *testing.T, opts ...Option) *Generator {
	t.Helper()
	opts = append([]Option{WithLogger(zaptest.NewLogger(t).Sugar())}, opts...)
	g, err := New("Shop.Wire", opts...)
	require.NoError(t, err)
	return g
}

func render(t *testing.T, g *Generator) string {
	t.Helper()
	var buf bytes.Buffer
	opts := provider.DefaultOptions()
	opts.Header = false
	require.NoError(t, csharp.New().GenerateNamespace(&buf, g.Namespace().ToNode(), "    ", opts))
	return buf.String()
}

var (
	typeA = schema.Type{Name: "A", Kind: schema.KindClass, Fields: []schema.Field{{Name: "b", Type: "B"}}}
	typeB = schema.Type{Name: "B", Kind: schema.KindClass, Fields: []schema.Field{{Name: "id", Type: "int"}}}
)

func fieldType(t *testing.T, g *Generator, class, field string) dom.TypeRef {
	t.Helper()
	c, ok := g.Namespace().Class(class)
	require.True(t, ok)
	f, ok := c.Field(field)
	require.True(t, ok)
	return f.Type()
}

func TestRegistrationOrderDependentFirst(t *testing.T) {
	g := newTestGenerator(t)
	_, err := g.Add(typeA)
	require.NoError(t, err)
	_, err = g.Add(typeB)
	require.NoError(t, err)

	ref := fieldType(t, g, "A", "bField")
	assert.IsType(t, &dom.NamedType{}, ref, "B was not registered yet")
	assert.Equal(t, "B", ref.FullName())

	// Later lookups see the registration.
	b, err := g.MapType("B")
	require.NoError(t, err)
	assert.IsType(t, &dom.ClassDeclaration{}, b)
}

func TestRegistrationOrderDependencyFirst(t *testing.T) {
	g := newTestGenerator(t)
	declB, err := g.Add(typeB)
	require.NoError(t, err)
	_, err = g.Add(typeA)
	require.NoError(t, err)

	ref := fieldType(t, g, "A", "bField")
	assert.Same(t, declB, ref)
	assert.Equal(t, "Shop.Wire.B", ref.FullName())
}

func TestMapType(t *testing.T) {
	g := newTestGenerator(t)
	tests := []struct {
		name string
		want string
	}{
		{"string", "System.String"},
		{"int", "System.Int32"},
		{"dateTime", "System.DateTime"},
		{"float", "System.Single"},
		{"int[]", "System.Int32[]"},
		{"System.Xml.XmlNode", "System.Xml.XmlNode"},
		{"Unknown", "Unknown"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := g.MapType(tt.name)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.FullName())

			again, err := g.MapType(tt.name)
			require.NoError(t, err)
			assert.Same(t, got, again, "lookups are memoized")
		})
	}
	assert.False(t, g.Registered("Unknown"))
}

func TestAddEnum(t *testing.T) {
	one := int64(1)
	g := newTestGenerator(t)
	decl, err := g.Add(schema.Type{
		Name:  "color",
		Kind:  schema.KindEnum,
		Flags: true,
		Members: []schema.Member{
			{Name: "red", Label: "RED", Value: &one},
			{Name: "green"},
		},
	})
	require.NoError(t, err)
	assert.True(t, g.Registered("color"))

	e, ok := decl.(*dom.EnumDeclaration)
	require.True(t, ok)
	assert.Equal(t, "Color", e.Name())
	assert.True(t, e.IsFlags())

	got := render(t, g)
	assert.Contains(t, got, "[System.FlagsAttribute]")
	assert.Contains(t, got, "[System.Xml.Serialization.XmlEnumAttribute(\"RED\")]\n        Red = 1,")
	assert.Contains(t, got, "[System.Xml.Serialization.XmlEnumAttribute(\"green\")]\n        Green,")
}

func TestAddClassAnnotations(t *testing.T) {
	g := newTestGenerator(t)
	_, err := g.Add(schema.Type{
		Name: "Widget",
		Doc:  "A widget.",
		Fields: []schema.Field{
			{Name: "id", Type: "string", Attribute: "id"},
			{Name: "label", Type: "string", Element: "title", Nullable: true},
			{Name: "payload", Type: "object", ElementType: "System.Xml.XmlNode"},
			{Name: "count", Type: "int"},
		},
	})
	require.NoError(t, err)

	got := render(t, g)
	for _, want := range []string{
		"private string idField;",
		"[System.Xml.Serialization.XmlAttributeAttribute(\"id\")]\n        public string Id {",
		"return this.idField;",
		"this.idField = value;",
		"[System.Xml.Serialization.XmlElementAttribute(\"title\", IsNullable=true)]\n        public string Label {",
		"[System.Xml.Serialization.XmlElementAttribute(\"payload\", typeof(System.Xml.XmlNode))]",
		"[System.Xml.Serialization.XmlElementAttribute(\"count\")]\n        public int Count {",
		"/// A widget.",
	} {
		assert.Contains(t, got, want)
	}
}

func TestArrayFieldGenericCollection(t *testing.T) {
	g := newTestGenerator(t)
	_, err := g.Add(schema.Type{
		Name: "Order",
		Fields: []schema.Field{{
			Name: "parts",
			Type: "Part[]",
			Items: []schema.Item{
				{Name: "bolt", Type: "Bolt"},
				{Name: "nut", Type: "Nut"},
				{Name: "bigBolt", Type: "Bolt"},
			},
		}},
	})
	require.NoError(t, err)

	order, ok := g.Namespace().Class("Order")
	require.True(t, ok)
	require.Len(t, order.Nested(), 1)
	coll := order.Nested()[0]
	assert.Equal(t, "PartsCollection", coll.Name())
	assert.Equal(t, "System.Collections.Generic.List<Part>", coll.BaseType().FullName())
	assert.Same(t, coll, fieldType(t, g, "Order", "partsField"))

	var names []string
	for _, m := range coll.Methods() {
		names = append(names, m.Name())
	}
	assert.Equal(t, []string{"AddBolt", "ContainsBolt", "RemoveBolt", "AddNut", "ContainsNut", "RemoveNut"}, names)

	got := render(t, g)
	assert.Contains(t, got, "[System.Xml.Serialization.XmlElementAttribute(\"bolt\", typeof(Bolt))]")
	assert.Contains(t, got, "[System.Xml.Serialization.XmlElementAttribute(\"bigBolt\", typeof(Bolt))]")
	assert.Contains(t, got, "public bool ContainsNut(Nut nut) {\n                return this.Contains(nut);")
}

func TestArrayFieldLegacyCollection(t *testing.T) {
	g := newTestGenerator(t, WithLegacyCollections())
	_, err := g.Add(schema.Type{Name: "Order", Fields: []schema.Field{{Name: "parts", Type: "Part[]"}}})
	require.NoError(t, err)

	order, _ := g.Namespace().Class("Order")
	coll := order.Nested()[0]
	assert.Equal(t, "System.Collections.CollectionBase", coll.BaseType().FullName())
	_, ok := coll.Method("IndexOf")
	assert.True(t, ok)
	assert.Len(t, coll.Nested(), 1, "typed enumerator")
}

func TestKeepNamespaces(t *testing.T) {
	doc := &schema.Document{Types: []schema.Type{{
		Name:      "Widget",
		Namespace: "urn:shop",
		Fields:    []schema.Field{{Name: "id", Type: "string", Attribute: "id", Namespace: "urn:ids"}},
	}}}

	kept := newTestGenerator(t, WithKeepNamespaces())
	require.NoError(t, kept.AddAll(doc))
	got := render(t, kept)
	assert.Contains(t, got, "[System.Xml.Serialization.XmlTypeAttribute(Namespace=\"urn:shop\")]")
	assert.Contains(t, got, "[System.Xml.Serialization.XmlAttributeAttribute(\"id\", Namespace=\"urn:ids\")]")

	dropped := newTestGenerator(t)
	require.NoError(t, dropped.AddAll(doc))
	assert.NotContains(t, render(t, dropped), "urn:")
}

func TestConformer(t *testing.T) {
	g := newTestGenerator(t, WithConformer(naming.Pascal))
	_, err := g.Add(schema.Type{Name: "order_line", Fields: []schema.Field{{Name: "unit_price", Type: "decimal"}}})
	require.NoError(t, err)

	c, ok := g.Namespace().Class("OrderLine")
	require.True(t, ok)
	_, ok = c.Property("UnitPrice")
	assert.True(t, ok)
	_, ok = c.Field("unitPriceField")
	assert.True(t, ok)
}

func TestSanitizedNames(t *testing.T) {
	g := newTestGenerator(t, WithConformer(naming.Pascal))
	_, err := g.Add(schema.Type{Name: "line (v2)", Fields: []schema.Field{{Name: "unit-price (€)", Type: "decimal"}}})
	require.NoError(t, err)

	c, ok := g.Namespace().Class("LineV2")
	require.True(t, ok)
	_, ok = c.Property("UnitPrice")
	assert.True(t, ok)
	_, ok = c.Field("unitPriceField")
	assert.True(t, ok)
	// the serialized name stays raw
	assert.Contains(t, render(t, g), `("unit-price (€)")`)
	assert.True(t, g.Registered("line (v2)"))

	_, err = g.Add(schema.Type{Name: "()"})
	require.Error(t, err)
}

func TestAddErrors(t *testing.T) {
	g := newTestGenerator(t)
	_, err := g.Add(schema.Type{})
	assert.True(t, errors.IsArgumentNullError(err))

	_, err = g.Add(schema.Type{Name: "X", Kind: "struct"})
	assert.True(t, errors.IsInvalidDescriptorError(err))

	_, err = g.Add(typeB)
	require.NoError(t, err)
	_, err = g.Add(typeB)
	assert.True(t, errors.IsDuplicateNameError(err))

	assert.True(t, errors.IsArgumentNullError(g.AddAll(nil)))

	_, err = New("")
	assert.True(t, errors.IsArgumentNullError(err))
}

func TestDefaultConformerSanitizedNames(t *testing.T) {
	g := newTestGenerator(t)
	_, err := g.Add(schema.Type{Name: "order-line", Fields: []schema.Field{
		{Name: "unit price", Type: "decimal"},
		{Name: "3d model", Type: "int"},
	}})
	require.NoError(t, err)

	c, ok := g.Namespace().Class("Order_line")
	require.True(t, ok)
	for _, name := range []string{"Unit_price", "_3d_model"} {
		_, ok = c.Property(name)
		assert.True(t, ok, name)
	}
	for _, name := range []string{"unit_priceField", "_3d_modelField"} {
		_, ok = c.Field(name)
		assert.True(t, ok, name)
	}

	got := render(t, g)
	assert.Contains(t, got, "public class Order_line {")
	assert.Contains(t, got, "public decimal Unit_price {")
	assert.Contains(t, got, `("unit price")`)
	assert.NotContains(t, got, "Order-line")
}

func TestFailedAddLeavesNamespaceUnchanged(t *testing.T) {
	g := newTestGenerator(t)
	bad := []schema.Type{
		{Name: "Widget", Fields: []schema.Field{{Name: "id", Type: "int"}, {Name: "Id", Type: "int"}}},
		{Name: "Widget", Fields: []schema.Field{{Name: "id", Type: "int"}, {Name: "size"}}},
		{Name: "Widget", Fields: []schema.Field{{Name: "widget", Type: "int"}}},
	}
	for _, typ := range bad {
		_, err := g.Add(typ)
		require.Error(t, err)
		assert.Equal(t, 0, g.Namespace().Len())
		assert.False(t, g.Registered("Widget"))
	}
	_, err := g.Add(bad[0])
	assert.True(t, errors.IsDuplicateNameError(err))

	_, err = g.Add(schema.Type{Name: "Widget", Fields: []schema.Field{{Name: "id", Type: "int"}, {Name: "size", Type: "int"}}})
	require.NoError(t, err)
	assert.Equal(t, 1, g.Namespace().Len())
	c, _ := g.Namespace().Class("Widget")
	assert.Len(t, c.Properties(), 2)
}

func TestAddAllChecksNamesFirst(t *testing.T) {
	doc := &schema.Document{Types: []schema.Type{
		typeB,
		{Name: "Line", Fields: []schema.Field{{Name: "unitPrice", Type: "int"}, {Name: "unit_price", Type: "int"}}},
	}}

	pascal := newTestGenerator(t, WithConformer(naming.Pascal))
	err := pascal.AddAll(doc)
	assert.True(t, errors.IsDuplicateNameError(err))
	assert.Equal(t, 0, pascal.Namespace().Len())

	require.NoError(t, newTestGenerator(t).AddAll(doc))
}

func TestCompositeElementCollections(t *testing.T) {
	for _, legacy := range []bool{false, true} {
		var opts []Option
		if legacy {
			opts = append(opts, WithLegacyCollections())
		}
		g := newTestGenerator(t, opts...)
		_, err := g.Add(schema.Type{Name: "Sheet", Fields: []schema.Field{{
			Name:  "grid",
			Type:  "Row[][]",
			Items: []schema.Item{{Name: "cells", Type: "Cell[]"}},
		}}})
		require.NoError(t, err)

		sheet, _ := g.Namespace().Class("Sheet")
		coll := sheet.Nested()[0]
		assert.Equal(t, "GridCollection", coll.Name())

		m, ok := coll.Method("AddCellArray")
		require.True(t, ok)
		assert.Equal(t, "cellArray", m.Signature().Params()[0].Name())
		assert.Equal(t, "Cell[]", m.Signature().Params()[0].Type().Name())

		got := render(t, g)
		assert.NotContains(t, got, "[]Collection")
		assert.NotContains(t, got, "cell[]")
		if legacy {
			add, ok := coll.Method("Add")
			require.True(t, ok)
			assert.Equal(t, "rowArray", add.Signature().Params()[0].Name())
		}
	}
}
