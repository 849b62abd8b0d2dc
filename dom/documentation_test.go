package dom

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teranos/codedom/ast"
)

func TestDocumentationLowering(t *testing.T) {
	d := &Documentation{Summary: "Adds a <Widget>.\nSecond line.", Returns: "The index."}
	d.Param("widget", "The item & more.").Param("widget", "The item.")
	d.Exception(ArgumentNullException, "widget is null.")

	comments := d.ToComments()
	var lines []string
	for _, c := range comments {
		assert.True(t, c.DocComment)
		lines = append(lines, c.Text)
	}

	assert.Equal(t, []string{
		"<summary>",
		"Adds a &lt;Widget&gt;.",
		"Second line.",
		"</summary>",
		`<param name="widget">The item.</param>`,
		"<returns>The index.</returns>",
		`<exception cref="System.ArgumentNullException">widget is null.</exception>`,
	}, lines)
}

func TestDocumentationEmpty(t *testing.T) {
	var d *Documentation
	assert.True(t, d.IsEmpty())
	assert.Nil(t, d.ToComments())
	assert.True(t, (&Documentation{}).IsEmpty())
}

func TestDocumentationAttachedToMember(t *testing.T) {
	c := newTestClass(t, "Widget")
	m, err := c.AddMethod("Reset")
	require.NoError(t, err)
	m.Doc().Summary = "Clears state."
	m.Doc().Remarks = "Idempotent."

	node := m.toMember().(*ast.MemberMethod)
	require.Len(t, node.Comments, 6)
	assert.Equal(t, "<remarks>", node.Comments[3].Text)
}
