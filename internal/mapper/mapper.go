// Package mapper renders reflected property types as Haxe type expressions.
package mapper

import (
	"strings"

	"go.uber.org/zap"

	"github.com/cmmoran/uextern/internal/model"
)

// Lookup resolves a native path to its registered descriptor.
type Lookup interface {
	Lookup(path string) (*model.Descriptor, bool)
}

type Mapper struct {
	types    Lookup
	vocab    Vocabulary
	denylist []string
	log      *zap.SugaredLogger
}

func New(types Lookup, vocab Vocabulary, denylist []string, log *zap.SugaredLogger) *Mapper {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	return &Mapper{
		types:    types,
		vocab:    vocab,
		denylist: append([]string(nil), denylist...),
		log:      log,
	}
}

// Resolve returns the Haxe type expression for p, with modifiers applied.
// ok is false when the property cannot be represented; that is never an error.
func (m *Mapper) Resolve(p *model.Property) (string, bool) {
	base, ok := m.base(p)
	if !ok {
		return "", false
	}
	return WithModifiers(m.vocab, base, p)
}

func (m *Mapper) base(p *model.Property) (string, bool) {
	switch c := p.Category; {
	case c == model.CategoryStruct:
		return m.descriptor(p, p.TypePath, "struct")

	case c == model.CategoryClass && p.Flags.Has(model.PropUObjectWrapper):
		meta, ok := m.descriptor(p, p.MetaClass, "subclass")
		if !ok {
			return "", false
		}
		return generic(m.vocab.SubclassOf, meta), true

	case c == model.CategoryObject || c == model.CategoryClass:
		return m.descriptor(p, p.TypePath, "class")

	case c.IsNumeric():
		if p.TypePath != "" || c == model.CategoryEnum {
			return m.descriptor(p, p.TypePath, "enum")
		}
		if name, ok := m.vocab.Numeric[c]; ok {
			return name, true
		}
		m.skip(p, "numeric type not supported")
		return "", false

	case c == model.CategoryBool:
		return m.vocab.Bool, true

	case c == model.CategoryName:
		return m.vocab.Name, true

	case c == model.CategoryStr:
		return m.vocab.String, true

	case c == model.CategoryArray:
		if p.Inner == nil {
			m.skip(p, "array without inner property")
			return "", false
		}
		inner, ok := m.Resolve(p.Inner)
		if !ok {
			m.skip(p, "array inner type not supported")
			return "", false
		}
		if m.denied(inner) {
			m.skip(p, "array inner type denylisted")
			return "", false
		}
		return generic(m.vocab.Array, inner), true
	}

	m.skip(p, "property category not supported")
	return "", false
}

func (m *Mapper) descriptor(p *model.Property, path, what string) (string, bool) {
	if path == "" {
		m.skip(p, what+" reference is empty")
		return "", false
	}
	d, ok := m.types.Lookup(path)
	if !ok {
		m.log.Debugw("type not supported", "property", p.Name, "kind", what, "type", path)
		return "", false
	}
	if d.Type.Kind == model.KindNone {
		m.log.Debugw("type has no usable kind", "property", p.Name, "kind", what, "type", path)
		return "", false
	}
	return d.Type.String(), true
}

func (m *Mapper) denied(inner string) bool {
	for _, d := range m.denylist {
		if d != "" && strings.Contains(inner, d) {
			return true
		}
	}
	return false
}

func (m *Mapper) skip(p *model.Property, reason string) {
	m.log.Debugw(reason, "property", p.Name, "category", p.Category.String())
}
