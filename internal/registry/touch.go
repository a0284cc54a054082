package registry

import (
	"github.com/cmmoran/uextern/internal/model"
)

// Catalog resolves native paths to their reflected definitions.
type Catalog interface {
	LookupNative(path string) (model.NativeType, bool)
}

// Touch registers an exported class and every struct and enum reachable from
// its members. Referenced structs and enums record the class header as one of
// their declaration sites. Classes are only ever registered through Touch.
func (r *Registry) Touch(catalog Catalog, class *model.Class, header, module string) *model.Descriptor {
	d, _ := r.register(class, header, module)
	if d == nil {
		return nil
	}
	r.touchFields(catalog, class.Fields, header, module)
	return d
}

func (r *Registry) touchFields(catalog Catalog, fields []model.Field, header, module string) {
	for _, f := range fields {
		switch {
		case f.Property != nil:
			r.touchProperty(catalog, f.Property, header, module)
		case f.Function != nil:
			for i := range f.Function.Params {
				r.touchProperty(catalog, &f.Function.Params[i], header, module)
			}
		}
	}
}

func (r *Registry) touchProperty(catalog Catalog, p *model.Property, header, module string) {
	switch {
	case p.Category == model.CategoryArray:
		if p.Inner != nil {
			r.touchProperty(catalog, p.Inner, header, module)
		}
	case p.Category == model.CategoryStruct:
		r.touchStruct(catalog, p.TypePath, header, module)
	case p.Category.IsNumeric() && p.TypePath != "":
		native, ok := catalog.LookupNative(p.TypePath)
		if !ok {
			r.log.Debugw("enum not in catalog", "property", p.Name, "enum", p.TypePath)
			return
		}
		if e, ok := native.(*model.Enum); ok {
			r.register(e, header, moduleOf(e, module))
		}
	}
}

func (r *Registry) touchStruct(catalog Catalog, path, header, module string) {
	if path == "" {
		return
	}
	native, ok := catalog.LookupNative(path)
	if !ok {
		r.log.Debugw("struct not in catalog", "struct", path)
		return
	}
	s, ok := native.(*model.Struct)
	if !ok {
		return
	}
	// recurse only when something changed, so cyclic references terminate
	if _, changed := r.register(s, header, moduleOf(s, module)); !changed {
		return
	}
	r.touchStruct(catalog, s.Super, header, module)
	r.touchFields(catalog, s.Fields, header, module)
}

func moduleOf(native model.NativeType, fallback string) string {
	if pkg := native.NativePackage(); pkg != "" {
		return model.ShortPackage(pkg)
	}
	return fallback
}
