package mapper

import (
	"github.com/cmmoran/uextern/internal/model"
)

// WithModifiers wraps base according to the parameter flags of p. When both
// apply, Const encloses Ref, e.g. unreal.Const<unreal.PRef<T>>:
//
//	return value:  const -> Const, reference -> Ref
//	other:         const or (reference and not out) -> Const, reference or out -> Ref
//
// Fixed-size array properties cannot be represented.
func WithModifiers(vocab Vocabulary, base string, p *model.Property) (string, bool) {
	if p.ArrayDim > 1 {
		return "", false
	}

	var isConst, isRef bool
	if p.Flags.Has(model.PropReturnParm) {
		isConst = p.Flags.Has(model.PropConstParm)
		isRef = p.Flags.Has(model.PropReferenceParm)
	} else {
		isConst = p.Flags.Has(model.PropConstParm) ||
			(p.Flags.Has(model.PropReferenceParm) && !p.Flags.Has(model.PropOutParm))
		isRef = p.Flags.Has(model.PropReferenceParm | model.PropOutParm)
	}

	out := base
	if isRef {
		out = generic(vocab.Ref, out)
	}
	if isConst {
		out = generic(vocab.Const, out)
	}
	return out, true
}
