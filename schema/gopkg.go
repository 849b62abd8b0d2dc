package schema

import (
	"go/constant"
	"go/types"
	"reflect"
	"sort"
	"strings"

	"golang.org/x/tools/go/packages"

	"github.com/teranos/codedom/errors"
	"github.com/teranos/codedom/logger"
)

// goBasics maps Go basic kinds to descriptor type names.
var goBasics = map[types.BasicKind]string{
	types.String:  "string",
	types.Bool:    "bool",
	types.Int:     "int",
	types.Int32:   "int",
	types.Int64:   "long",
	types.Int16:   "short",
	types.Uint8:   "byte",
	types.Float32: "float",
	types.Float64: "double",
}

// goNamed maps well-known named Go types to descriptor type names.
var goNamed = map[string]string{
	"time.Time": "dateTime",
}

// FromGoPackage derives a document from the exported declarations of the
// package matching pattern:
//   - struct types become classes; fields follow their xml tags
//     ("name,attr" is an attribute, "-" skips the field)
//   - named string or integer types with constants become enums; string
//     constant values become member labels and integer values member values
//
// Fields whose Go type has no descriptor equivalent are skipped.
func FromGoPackage(pattern, namespace string) (*Document, error) {
	cfg := &packages.Config{
		Mode: packages.NeedName | packages.NeedTypes,
	}
	pkgs, err := packages.Load(cfg, pattern)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to load package %s", pattern)
	}
	if len(pkgs) == 0 {
		return nil, errors.Newf("no packages found for %s", pattern)
	}
	pkg := pkgs[0]
	if len(pkg.Errors) > 0 {
		return nil, errors.Newf("package %s has errors: %v", pattern, pkg.Errors[0])
	}
	if namespace == "" {
		namespace = pkg.Name
	}

	doc := &Document{Format: CurrentFormat, Namespace: namespace}
	scope := pkg.Types.Scope()
	consts := constantsByType(scope)

	// Scope names are sorted, which keeps the output deterministic.
	for _, name := range scope.Names() {
		tn, ok := scope.Lookup(name).(*types.TypeName)
		if !ok || !tn.Exported() || tn.IsAlias() {
			continue
		}
		named, ok := tn.Type().(*types.Named)
		if !ok {
			continue
		}
		switch u := named.Underlying().(type) {
		case *types.Struct:
			doc.Types = append(doc.Types, classFromStruct(name, u))
		case *types.Basic:
			if members := consts[tn]; len(members) > 0 && u.Info()&(types.IsString|types.IsInteger) != 0 {
				doc.Types = append(doc.Types, enumFromConsts(name, members))
			}
		}
	}

	if err := doc.Validate(); err != nil {
		return nil, err
	}
	return doc, nil
}

func constantsByType(scope *types.Scope) map[*types.TypeName][]*types.Const {
	out := make(map[*types.TypeName][]*types.Const)
	for _, name := range scope.Names() {
		c, ok := scope.Lookup(name).(*types.Const)
		if !ok || !c.Exported() {
			continue
		}
		if named, ok := c.Type().(*types.Named); ok {
			out[named.Obj()] = append(out[named.Obj()], c)
		}
	}
	for _, cs := range out {
		sort.Slice(cs, func(i, j int) bool { return cs[i].Pos() < cs[j].Pos() })
	}
	return out
}

func classFromStruct(name string, st *types.Struct) Type {
	t := Type{Name: name, Kind: KindClass}
	for i := 0; i < st.NumFields(); i++ {
		v := st.Field(i)
		if !v.Exported() || v.Embedded() || v.Name() == "XMLName" {
			continue
		}
		tag := reflect.StructTag(st.Tag(i)).Get("xml")
		if tag == "-" {
			continue
		}
		typeName, ok := descriptorType(v.Type())
		if !ok {
			logger.Debugw("skipping field with unmapped type",
				logger.FieldType, name, logger.FieldMember, v.Name(), "go_type", v.Type().String())
			continue
		}

		f := Field{Name: v.Name(), Type: typeName}
		parts := strings.Split(tag, ",")
		xmlName := parts[0]
		if i := strings.LastIndexByte(xmlName, ' '); i >= 0 {
			f.Namespace, xmlName = xmlName[:i], xmlName[i+1:]
		}
		attr := false
		for _, opt := range parts[1:] {
			attr = attr || opt == "attr"
		}
		switch {
		case attr:
			f.Attribute = xmlName
			if f.Attribute == "" {
				f.Attribute = v.Name()
			}
		case xmlName != "":
			f.Element = xmlName
		}
		t.Fields = append(t.Fields, f)
	}
	return t
}

func enumFromConsts(name string, consts []*types.Const) Type {
	t := Type{Name: name, Kind: KindEnum}
	for _, c := range consts {
		m := Member{Name: strings.TrimPrefix(c.Name(), name)}
		if m.Name == "" {
			m.Name = c.Name()
		}
		switch c.Val().Kind() {
		case constant.String:
			m.Label = constant.StringVal(c.Val())
		case constant.Int:
			if v, ok := constant.Int64Val(c.Val()); ok {
				m.Value = &v
			}
		}
		t.Members = append(t.Members, m)
	}
	return t
}

func descriptorType(t types.Type) (string, bool) {
	switch t := t.(type) {
	case *types.Pointer:
		return descriptorType(t.Elem())
	case *types.Slice:
		elem, ok := descriptorType(t.Elem())
		if !ok || strings.HasSuffix(elem, ArraySuffix) {
			return "", false
		}
		return elem + ArraySuffix, true
	case *types.Basic:
		name, ok := goBasics[t.Kind()]
		return name, ok
	case *types.Named:
		obj := t.Obj()
		if obj.Pkg() != nil {
			if name, ok := goNamed[obj.Pkg().Path()+"."+obj.Name()]; ok {
				return name, true
			}
		}
		if !obj.Exported() {
			return "", false
		}
		return obj.Name(), true
	}
	return "", false
}
