// Package registry holds the descriptor of every native type seen during
// collection and resolves native paths to their Haxe identity.
//
// A Registry is not safe for concurrent use. Collection and emission run on a
// single goroutine.
package registry

import (
	"strings"

	"go.uber.org/zap"

	"github.com/cmmoran/uextern/internal/model"
)

// RootInterface is the name of the native base class every interface derives
// from. It has no bindable counterpart.
const RootInterface = "Interface"

// Namer derives the Haxe identity of a native type.
type Namer struct {
	BasePackage string   // "unreal"
	CoreModules []string // modules bound directly into BasePackage
}

// TypeRef returns the Haxe identity for native registered under module.
func (n Namer) TypeRef(native model.NativeType, module string) model.TypeRef {
	pack := n.pack(module)
	switch v := native.(type) {
	case *model.Class:
		if v.Flags.Has(model.ClassInterface) {
			if v.Name == RootInterface {
				return model.NewTypeRef(pack, v.CppName, model.KindNone)
			}
			return model.NewTypeRef(pack, "I"+v.Name, model.KindInterface)
		}
		return model.NewTypeRef(pack, v.CppName, model.KindClass)
	case *model.Struct:
		return model.NewTypeRef(pack, v.CppName, model.KindStruct)
	case *model.Enum:
		return model.NewTypeRef(pack, v.Name, model.KindEnum)
	}
	return model.TypeRef{Kind: model.KindNone}
}

func (n Namer) pack(module string) []string {
	var pack []string
	if n.BasePackage != "" {
		pack = append(pack, n.BasePackage)
	}
	if module == "" {
		return pack
	}
	for _, core := range n.CoreModules {
		if strings.EqualFold(core, module) {
			return pack
		}
	}
	return append(pack, strings.ToLower(module))
}

type Registry struct {
	namer   Namer
	log     *zap.SugaredLogger
	exclude func(model.NativeType) bool
	byPath  map[string]*model.Descriptor
	ordered map[model.DescriptorKind][]*model.Descriptor
}

func New(namer Namer, log *zap.SugaredLogger) *Registry {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	return &Registry{
		namer:   namer,
		log:     log,
		byPath:  make(map[string]*model.Descriptor),
		ordered: make(map[model.DescriptorKind][]*model.Descriptor),
	}
}

// Exclude installs a predicate for types that must never be registered.
// Members referencing an excluded type are then dropped like any other
// unsupported type.
func (r *Registry) Exclude(fn func(model.NativeType) bool) {
	r.exclude = fn
}

// Register returns the descriptor for native, creating it on first sight, or
// nil when native is excluded. Module and the first header are fixed by the
// first registration. Struct and enum descriptors collect every further
// distinct header; class descriptors are never altered.
func (r *Registry) Register(native model.NativeType, header, module string) *model.Descriptor {
	d, _ := r.register(native, header, module)
	return d
}

// register also reports whether the descriptor was created or gained a header.
func (r *Registry) register(native model.NativeType, header, module string) (*model.Descriptor, bool) {
	if native == nil {
		return nil, false
	}
	path := native.NativePath()
	if d, ok := r.byPath[path]; ok {
		if d.Kind != model.ClassDescriptor && !d.HasHeader(header) {
			d.Headers = append(d.Headers, header)
			return d, true
		}
		return d, false
	}
	if r.exclude != nil && r.exclude(native) {
		r.log.Debugw("excluded", "path", path)
		return nil, false
	}

	d := &model.Descriptor{
		Module:  module,
		Headers: []string{header},
	}
	switch v := native.(type) {
	case *model.Class:
		c := *v
		d.Kind, d.Class = model.ClassDescriptor, &c
	case *model.Struct:
		s := *v
		d.Kind, d.Struct = model.StructDescriptor, &s
	case *model.Enum:
		e := *v
		d.Kind, d.Enum = model.EnumDescriptor, &e
	default:
		r.log.Warnw("unknown native type, not registered", "path", path)
		return nil, false
	}
	d.Type = r.namer.TypeRef(d.Native(), module)

	r.byPath[path] = d
	r.ordered[d.Kind] = append(r.ordered[d.Kind], d)
	r.log.Debugw("registered", "path", path, "type", d.Type.String(), "kind", d.Kind.String(), "module", module)
	return d, true
}

// Lookup returns the descriptor registered for a native path.
func (r *Registry) Lookup(path string) (*model.Descriptor, bool) {
	d, ok := r.byPath[path]
	return d, ok
}

// AllOfKind returns every descriptor of kind in registration order.
func (r *Registry) AllOfKind(kind model.DescriptorKind) []*model.Descriptor {
	return append([]*model.Descriptor(nil), r.ordered[kind]...)
}

// Len returns the number of registered descriptors.
func (r *Registry) Len() int {
	return len(r.byPath)
}
