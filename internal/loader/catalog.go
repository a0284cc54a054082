package loader

import (
	"strings"

	"github.com/cockroachdb/errors"

	"github.com/cmmoran/uextern/internal/model"
)

// ErrInvalidDocument marks a document that decodes but cannot be converted.
var ErrInvalidDocument = errors.New("invalid reflection document")

// Export is one class announced by a module, in document order.
type Export struct {
	Module string
	Header string
	Class  *model.Class
}

// Registrar receives export events. It is implemented by the generator.
type Registrar interface {
	RegisterType(class *model.Class, header, module string)
}

// Catalog indexes the converted native types of a document by path.
type Catalog struct {
	natives map[string]model.NativeType
	exports []Export
}

// NewCatalog converts doc into model snapshots. Every name in the document
// must be known: unknown categories, flags, visibilities, forms and exported
// classes are errors.
func NewCatalog(doc *Document) (*Catalog, error) {
	c := &Catalog{natives: make(map[string]model.NativeType)}

	for i := range doc.Enums {
		e, err := convertEnum(&doc.Enums[i])
		if err != nil {
			return nil, err
		}
		if err := c.add(e); err != nil {
			return nil, err
		}
	}
	for i := range doc.Structs {
		s, err := convertStruct(&doc.Structs[i])
		if err != nil {
			return nil, err
		}
		if err := c.add(s); err != nil {
			return nil, err
		}
	}
	for i := range doc.Classes {
		cl, err := convertClass(&doc.Classes[i])
		if err != nil {
			return nil, err
		}
		if err := c.add(cl); err != nil {
			return nil, err
		}
	}

	for _, m := range doc.Modules {
		for _, ex := range m.Exports {
			native, ok := c.natives[ex.Class]
			if !ok {
				return nil, errors.Wrapf(ErrInvalidDocument, "module %s exports unknown class %s", m.Name, ex.Class)
			}
			class, ok := native.(*model.Class)
			if !ok {
				return nil, errors.Wrapf(ErrInvalidDocument, "module %s exports %s, which is not a class", m.Name, ex.Class)
			}
			c.exports = append(c.exports, Export{Module: m.Name, Header: ex.Header, Class: class})
		}
	}
	return c, nil
}

func (c *Catalog) add(n model.NativeType) error {
	path := n.NativePath()
	if path == "" {
		return errors.Wrap(ErrInvalidDocument, "type without path")
	}
	if _, dup := c.natives[path]; dup {
		return errors.Wrapf(ErrInvalidDocument, "duplicate type %s", path)
	}
	c.natives[path] = n
	return nil
}

// LookupNative returns the native type declared at path.
func (c *Catalog) LookupNative(path string) (model.NativeType, bool) {
	n, ok := c.natives[path]
	return n, ok
}

// Exports returns the export events in document order.
func (c *Catalog) Exports() []Export {
	return append([]Export(nil), c.exports...)
}

// Replay feeds every export event to r and returns how many were sent.
func (c *Catalog) Replay(r Registrar) int {
	for _, ex := range c.exports {
		r.RegisterType(ex.Class, ex.Header, ex.Module)
	}
	return len(c.exports)
}

// splitPath derives package and short name from "/Script/Engine.Actor".
func splitPath(path string) (pkg, name string) {
	if i := strings.LastIndexByte(path, '.'); i >= 0 {
		return path[:i], path[i+1:]
	}
	return "", path
}

func convertClass(d *ClassDoc) (*model.Class, error) {
	pkg, name := splitPath(d.Path)
	c := &model.Class{
		Path:       d.Path,
		Name:       or(d.Name, name),
		Package:    or(d.Package, pkg),
		Super:      d.Super,
		Interfaces: append([]string(nil), d.Interfaces...),
		ToolTip:    d.ToolTip,
	}
	c.CppName = or(d.CppName, c.Name)
	for _, f := range d.Flags {
		flag, ok := model.ParseClassFlag(f)
		if !ok {
			return nil, errors.Wrapf(ErrInvalidDocument, "class %s: unknown flag %q", d.Path, f)
		}
		c.Flags |= flag
	}
	fields, err := convertFields(d.Path, d.Fields)
	if err != nil {
		return nil, errors.Wrapf(err, "class %s", d.Path)
	}
	c.Fields = fields
	return c, nil
}

func convertStruct(d *StructDoc) (*model.Struct, error) {
	pkg, name := splitPath(d.Path)
	s := &model.Struct{
		Path:     d.Path,
		Name:     or(d.Name, name),
		Package:  or(d.Package, pkg),
		Super:    d.Super,
		NoExport: d.NoExport,
		ToolTip:  d.ToolTip,
	}
	s.CppName = or(d.CppName, s.Name)
	fields, err := convertFields(d.Path, d.Fields)
	if err != nil {
		return nil, errors.Wrapf(err, "struct %s", d.Path)
	}
	s.Fields = fields
	return s, nil
}

func convertEnum(d *EnumDoc) (*model.Enum, error) {
	pkg, name := splitPath(d.Path)
	form, ok := model.ParseCppForm(d.Form)
	if !ok {
		return nil, errors.Wrapf(ErrInvalidDocument, "enum %s: unknown form %q", d.Path, d.Form)
	}
	e := &model.Enum{
		Path:    d.Path,
		Name:    or(d.Name, name),
		CppType: d.CppType,
		Package: or(d.Package, pkg),
		Form:    form,
		ToolTip: d.ToolTip,
	}
	for _, v := range d.Values {
		e.Values = append(e.Values, model.EnumValue{Name: v.Name, ToolTip: v.ToolTip, DisplayName: v.DisplayName})
	}
	return e, nil
}

// convertFields returns fields in reflection order, last declared first.
func convertFields(owner string, docs []FieldDoc) ([]model.Field, error) {
	fields := make([]model.Field, 0, len(docs))
	for i := len(docs) - 1; i >= 0; i-- {
		f := docs[i]
		switch {
		case f.Property != nil && f.Function == nil:
			p, err := convertProperty(f.Property)
			if err != nil {
				return nil, err
			}
			fields = append(fields, model.Field{Property: p})
		case f.Function != nil && f.Property == nil:
			fn, err := convertFunction(owner, f.Function)
			if err != nil {
				return nil, err
			}
			fields = append(fields, model.Field{Function: fn})
		default:
			return nil, errors.Wrapf(ErrInvalidDocument, "field %d must hold exactly one of property or function", i)
		}
	}
	return fields, nil
}

func convertProperty(d *PropertyDoc) (*model.Property, error) {
	cat, ok := model.ParseCategory(d.Category)
	if !ok {
		return nil, errors.Wrapf(ErrInvalidDocument, "property %s: unknown category %q", d.Name, d.Category)
	}
	vis, ok := model.ParseVisibility(d.Visibility)
	if !ok {
		return nil, errors.Wrapf(ErrInvalidDocument, "property %s: unknown visibility %q", d.Name, d.Visibility)
	}
	p := &model.Property{
		Name:       d.Name,
		Category:   cat,
		Visibility: vis,
		ArrayDim:   d.ArrayDim,
		TypePath:   d.Type,
		MetaClass:  d.MetaClass,
		ToolTip:    d.ToolTip,
	}
	for _, f := range d.Flags {
		flag, ok := model.ParsePropertyFlag(f)
		if !ok {
			return nil, errors.Wrapf(ErrInvalidDocument, "property %s: unknown flag %q", d.Name, f)
		}
		p.Flags |= flag
	}
	if d.Inner != nil {
		inner, err := convertProperty(d.Inner)
		if err != nil {
			return nil, errors.Wrapf(err, "property %s", d.Name)
		}
		p.Inner = inner
	}
	return p, nil
}

func convertFunction(owner string, d *FunctionDoc) (*model.Function, error) {
	vis, ok := model.ParseVisibility(d.Visibility)
	if !ok {
		return nil, errors.Wrapf(ErrInvalidDocument, "function %s: unknown visibility %q", d.Name, d.Visibility)
	}
	fn := &model.Function{
		Name:       d.Name,
		Owner:      or(d.Owner, owner),
		Visibility: vis,
		ToolTip:    d.ToolTip,
	}
	for _, f := range d.Flags {
		flag, ok := model.ParseFunctionFlag(f)
		if !ok {
			return nil, errors.Wrapf(ErrInvalidDocument, "function %s: unknown flag %q", d.Name, f)
		}
		fn.Flags |= flag
	}
	for i := range d.Params {
		p, err := convertProperty(&d.Params[i])
		if err != nil {
			return nil, errors.Wrapf(err, "function %s", d.Name)
		}
		fn.Params = append(fn.Params, *p)
	}
	if d.Return != nil {
		p, err := convertProperty(d.Return)
		if err != nil {
			return nil, errors.Wrapf(err, "function %s", d.Name)
		}
		if p.Name == "" {
			p.Name = "ReturnValue"
		}
		p.Flags |= model.PropReturnParm
		fn.Params = append(fn.Params, *p)
	}
	return fn, nil
}

func or(v, fallback string) string {
	if v != "" {
		return v
	}
	return fallback
}
