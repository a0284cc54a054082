// Package externgen compiles reflected native types into Haxe extern
// declarations. A Generator is fed export events during collection and
// emits every registered type once collection is over.
package externgen

import (
	"github.com/cockroachdb/errors"
	"go.uber.org/zap"

	"github.com/cmmoran/uextern/internal/emitter"
	"github.com/cmmoran/uextern/internal/mapper"
	"github.com/cmmoran/uextern/internal/model"
	"github.com/cmmoran/uextern/internal/registry"
)

// ErrFinalized is returned when FinalizeAndEmit runs more than once.
var ErrFinalized = errors.New("generator already finalized")

// Output is one generated declaration.
type Output struct {
	Type   model.TypeRef
	Kind   model.DescriptorKind
	Source string
}

// File returns the output path of o relative to the output root.
func (o Output) File(ext string) string {
	return o.Type.Path() + "." + ext
}

type Generator struct {
	Opts Options

	catalog   registry.Catalog
	registry  *registry.Registry
	log       *zap.SugaredLogger
	omitted   map[string]bool
	finalized bool
}

type emptyCatalog struct{}

func (emptyCatalog) LookupNative(string) (model.NativeType, bool) { return nil, false }

func New(catalog registry.Catalog, log *zap.SugaredLogger, opts ...Option) *Generator {
	o := NewOptions()
	for _, fn := range opts {
		fn(o)
	}
	return NewWithOpts(catalog, log, o)
}

// NewWithOpts normalizes opts and returns a Generator resolving referenced
// structs and enums through catalog, which may be nil.
func NewWithOpts(catalog registry.Catalog, log *zap.SugaredLogger, opts *Options) *Generator {
	opts.Normalize()
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	if catalog == nil {
		catalog = emptyCatalog{}
	}

	g := &Generator{
		Opts:    *opts,
		catalog: catalog,
		log:     log,
		omitted: make(map[string]bool),
	}
	g.registry = registry.New(registry.Namer{
		BasePackage: g.Opts.BasePackage,
		CoreModules: g.Opts.CoreModules,
	}, log.Named("registry"))
	g.registry.Exclude(func(n model.NativeType) bool {
		if shouldOmitType(n, &g.Opts) {
			g.omitted[n.NativePath()] = true
			return true
		}
		return false
	})
	return g
}

// RegisterType records an exported class declared in header of module, along
// with the structs and enums its members reach. It may be called any number
// of times for the same class.
func (g *Generator) RegisterType(class *model.Class, header, module string) {
	if g.finalized {
		g.log.Warnw("type registered after finalize, ignored", "class", class.Path)
		return
	}
	g.registry.Touch(g.catalog, class, header, module)
}

// Registered returns the number of distinct types registered so far.
func (g *Generator) Registered() int {
	return g.registry.Len()
}

// Omitted returns how many distinct types ExcludeTypes kept out.
func (g *Generator) Omitted() int {
	return len(g.omitted)
}

// FinalizeAndEmit renders every registered type, classes first, then structs,
// then enums, each in registration order. It must be called exactly once,
// after collection. An unresolvable header aborts the whole run.
//
// Types named with KindNone (the root interface) are never emitted. When two
// types map to the same output path only the first one registered is kept.
func (g *Generator) FinalizeAndEmit() ([]Output, error) {
	if g.finalized {
		return nil, ErrFinalized
	}
	g.finalized = true

	m := mapper.New(g.registry, mapper.DefaultVocabulary(), g.Opts.ArrayDenylist, g.log.Named("mapper"))
	e := emitter.New(g.registry, m, g.log.Named("emitter"))

	out := make([]Output, 0, g.registry.Len())
	seen := make(map[string]model.TypeRef, g.registry.Len())
	for _, kind := range []model.DescriptorKind{model.ClassDescriptor, model.StructDescriptor, model.EnumDescriptor} {
		for _, d := range g.registry.AllOfKind(kind) {
			if d.Type.Kind == model.KindNone {
				g.log.Debugw("type has no usable kind, not emitted", "type", d.Type.String())
				continue
			}
			path := d.Type.Path()
			if first, dup := seen[path]; dup {
				g.log.Warnw("output path collision, later type not emitted",
					"path", path, "kept", first.String(), "kept_kind", first.Kind.String(),
					"dropped_kind", d.Type.Kind.String())
				continue
			}
			seen[path] = d.Type

			src, err := e.Emit(d)
			if err != nil {
				return nil, err
			}
			out = append(out, Output{Type: d.Type, Kind: d.Kind, Source: src})
		}
	}
	g.log.Debugw("emitted", "declarations", len(out))
	return out, nil
}
