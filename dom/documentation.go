package dom

import (
	"bytes"
	"encoding/xml"
	"strings"

	"github.com/teranos/codedom/ast"
)

// Documentation is the structured doc comment of a declaration. It lowers
// to XML doc comment lines:
//
//	/// <summary>
//	/// Adds an item.
//	/// </summary>
//	/// <param name="widget">The item.</param>
type Documentation struct {
	Summary string
	Remarks string
	Returns string

	params     []docEntry
	exceptions []docEntry
}

type docEntry struct {
	key  string
	text string
}

// Param documents a parameter. Repeated names replace the earlier text.
func (d *Documentation) Param(name, text string) *Documentation {
	d.params = setEntry(d.params, name, text)
	return d
}

// Exception documents an exception the member throws.
func (d *Documentation) Exception(t TypeRef, text string) *Documentation {
	if t != nil {
		d.exceptions = setEntry(d.exceptions, t.FullName(), text)
	}
	return d
}

func setEntry(entries []docEntry, key, text string) []docEntry {
	for i := range entries {
		if entries[i].key == key {
			entries[i].text = text
			return entries
		}
	}
	return append(entries, docEntry{key: key, text: text})
}

// IsEmpty reports whether nothing has been documented.
func (d *Documentation) IsEmpty() bool {
	return d == nil || (d.Summary == "" && d.Remarks == "" && d.Returns == "" &&
		len(d.params) == 0 && len(d.exceptions) == 0)
}

// ToComments lowers the documentation to doc comment lines.
func (d *Documentation) ToComments() []ast.Comment {
	if d.IsEmpty() {
		return nil
	}
	var out []ast.Comment
	block := func(tag, text string) {
		if text == "" {
			return
		}
		out = append(out, ast.Comment{Text: "<" + tag + ">", DocComment: true})
		for _, line := range strings.Split(text, "\n") {
			out = append(out, ast.Comment{Text: escape(line), DocComment: true})
		}
		out = append(out, ast.Comment{Text: "</" + tag + ">", DocComment: true})
	}

	block("summary", d.Summary)
	block("remarks", d.Remarks)
	for _, p := range d.params {
		out = append(out, ast.Comment{
			Text:       `<param name="` + escape(p.key) + `">` + escape(p.text) + `</param>`,
			DocComment: true,
		})
	}
	if d.Returns != "" {
		out = append(out, ast.Comment{Text: "<returns>" + escape(d.Returns) + "</returns>", DocComment: true})
	}
	for _, e := range d.exceptions {
		out = append(out, ast.Comment{
			Text:       `<exception cref="` + escape(e.key) + `">` + escape(e.text) + `</exception>`,
			DocComment: true,
		})
	}
	return out
}

func escape(s string) string {
	var buf bytes.Buffer
	_ = xml.EscapeText(&buf, []byte(s))
	return buf.String()
}
