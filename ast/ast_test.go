package ast

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMemberAttributes(t *testing.T) {
	a := Public | Static | New

	assert.Equal(t, Public, a.Access())
	assert.True(t, a.Has(Static|New))
	assert.False(t, a.Has(Override))

	b := a.WithAccess(Private)
	assert.Equal(t, Private, b.Access())
	assert.True(t, b.Has(Static))
	assert.False(t, b.Has(Public))
}

func TestArrayOf(t *testing.T) {
	elem := NewTypeReference("Shop.Widget")
	arr := ArrayOf(elem)

	assert.True(t, arr.IsArray())
	assert.False(t, elem.IsArray())
	assert.Same(t, elem, arr.ArrayElementType)

	var nilRef *TypeReference
	assert.False(t, nilRef.IsArray())
}

func TestKindOf(t *testing.T) {
	assert.Equal(t, KindField, KindOf(&MemberField{}))
	assert.Equal(t, KindConstructor, KindOf(&Constructor{}))
	assert.Equal(t, KindProperty, KindOf(&MemberProperty{}))
	assert.Equal(t, KindMethod, KindOf(&MemberMethod{}))
	assert.Equal(t, KindNestedType, KindOf(&TypeDeclaration{}))

	f := &MemberField{MemberBase: MemberBase{Name: "count"}}
	assert.Equal(t, "count", TypeMember(f).Member().Name)
}
