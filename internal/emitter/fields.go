package emitter

import (
	"strings"

	"github.com/cmmoran/uextern/internal/model"
)

// body tracks whether the member being written sits inside an editor-only region.
type body struct {
	w          *Writer
	editorOnly bool
}

func (b *body) setEditorOnly(on bool) {
	if on == b.editorOnly {
		return
	}
	if on {
		b.w.BeginRegion(editorOnlyOpen, editorOnlyClose)
	} else {
		b.w.End()
	}
	b.editorOnly = on
}

// fields writes the members declared by owner. Reflection lists fields last
// declared first, so they are walked backwards.
func (e *Emitter) fields(w *Writer, owner string, fields []model.Field) {
	b := &body{w: w}
	for i := len(fields) - 1; i >= 0; i-- {
		switch f := fields[i]; {
		case f.Property != nil:
			e.property(b, f.Property)
		case f.Function != nil:
			e.function(b, owner, f.Function)
		}
	}
	b.setEditorOnly(false)
}

func (e *Emitter) property(b *body, p *model.Property) {
	switch {
	case p.Visibility == model.Protected && p.Category == model.CategoryBool:
		// protected bools may be bitfields, which cannot be bound
		e.log.Debugw("protected bool skipped", "property", p.Name)
		return
	case p.Visibility == model.Private:
		return
	}

	typ, ok := e.mapper.Resolve(p)
	if !ok {
		e.log.Debugw("property skipped", "property", p.Name, "category", p.Category.String())
		return
	}

	b.setEditorOnly(p.Flags.Has(model.PropEditorOnly))
	if p.ToolTip != "" {
		b.w.Comment(p.ToolTip)
	}
	accessor := ""
	if p.Flags.Has(model.PropConstParm) {
		accessor = "(default,never)"
	}
	b.w.Line(visibility(p.Visibility), " var ", p.Name, accessor, " : ", typ, ";")
}

// function writes fn only when every parameter and the return type resolve.
// The signature is assembled aside and dropped whole otherwise.
func (e *Emitter) function(b *body, owner string, fn *model.Function) {
	if fn.Owner != owner {
		return
	}
	if fn.Visibility == model.Private {
		return
	}

	var sig strings.Builder
	if fn.Flags.Has(model.FuncConst) {
		sig.WriteString("@:thisConst ")
	}
	if fn.Flags.Has(model.FuncStatic) {
		sig.WriteString("static ")
	} else if fn.Flags.Has(model.FuncFinal) {
		sig.WriteString("@:final ")
	}
	sig.WriteString(visibility(fn.Visibility))
	sig.WriteString(" function ")
	sig.WriteString(fn.Name)
	sig.WriteString("(")

	ret := "Void"
	first := true
	for i := range fn.Params {
		p := &fn.Params[i]
		typ, ok := e.mapper.Resolve(p)
		if !ok {
			e.log.Debugw("function skipped", "function", fn.Name, "param", p.Name, "category", p.Category.String())
			return
		}
		if p.Flags.Has(model.PropReturnParm) {
			ret = typ
			continue
		}
		if !first {
			sig.WriteString(", ")
		}
		first = false
		sig.WriteString(p.Name)
		sig.WriteString(" : ")
		sig.WriteString(typ)
	}
	sig.WriteString(") : ")
	sig.WriteString(ret)
	sig.WriteString(";")

	// functions are never editor-only
	b.setEditorOnly(false)
	if fn.ToolTip != "" {
		b.w.Comment(fn.ToolTip)
	}
	b.w.Line(sig.String())
}

// visibility maps native access to Haxe: protected members become private,
// which Haxe subclasses can still reach.
func visibility(v model.Visibility) string {
	if v == model.Public {
		return "public"
	}
	return "private"
}
