// Package dom is the declaration model: namespaces, classes, enums and
// their members, plus the expression and statement IR that fills member
// bodies.
//
// Declarations are built top-down through Add* calls on a parent, which
// allocate the child, wire it to the parent and return it:
//
//	ns, _ := dom.NewNamespace("Shop.Model")
//	widget, _ := ns.AddClass("widget")          // "Widget"
//	name, _ := widget.AddField(dom.String, "name")
//	name.SetAccess(ast.Private)
//	widget.AddProperty(name, true, true, false)  // public String Name { get; set; }
//
// Names are unique within their direct parent; a duplicate Add fails with
// errors.ErrDuplicateName and leaves the parent unchanged. There is no
// removal API.
//
// Every declaration, expression and statement lowers to the ast package
// through ToNode; providers print only ast.
package dom
