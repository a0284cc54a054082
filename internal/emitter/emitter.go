// Package emitter renders registered native types as Haxe extern declarations.
package emitter

import (
	"strings"

	"github.com/cockroachdb/errors"
	"go.uber.org/zap"

	"github.com/cmmoran/uextern/internal/headerpath"
	"github.com/cmmoran/uextern/internal/mapper"
	"github.com/cmmoran/uextern/internal/model"
)

// Prelude heads every generated file.
const Prelude = "This file was autogenerated by uextern using reflection definitions. It only includes UPROPERTYs and UFUNCTIONs. Do not modify it!\n" +
	"In order to add more definitions, create or edit a type with the same name/package, but with a `_Extra` suffix"

// NoExportWarning is prepended to the doc comment of types with a suppressed body.
const NoExportWarning = "WARNING: This type is defined as NoExport. It will be empty because of it"

const (
	editorOnlyOpen  = "#if WITH_EDITORONLY_DATA"
	editorOnlyClose = "#end // WITH_EDITORONLY_DATA"
)

type Emitter struct {
	types  mapper.Lookup
	mapper *mapper.Mapper
	log    *zap.SugaredLogger
}

func New(types mapper.Lookup, m *mapper.Mapper, log *zap.SugaredLogger) *Emitter {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	return &Emitter{types: types, mapper: m, log: log}
}

// Emit renders d as a complete Haxe source file. The only error is an
// unresolvable header path, which callers must treat as fatal.
func (e *Emitter) Emit(d *model.Descriptor) (string, error) {
	var (
		out string
		err error
	)
	switch d.Kind {
	case model.ClassDescriptor:
		out, err = e.Class(d)
	case model.StructDescriptor:
		out, err = e.Struct(d)
	default:
		out, err = e.Enum(d)
	}
	if err != nil {
		return "", errors.Wrapf(err, "emit %s", d.Type.String())
	}
	return out, nil
}

func (e *Emitter) Class(d *model.Descriptor) (string, error) {
	c := d.Class
	w := NewWriter()
	e.prelude(w, d.Type)

	noExport := c.Flags.Has(model.ClassNoExport)
	e.docComment(w, c.ToolTip, noExport)
	e.module(w, d)
	if err := e.includes(w, d); err != nil {
		return "", err
	}

	isInterface := d.Type.Kind == model.KindInterface
	keyword := "class "
	if isInterface {
		keyword = "interface "
	}
	w.Write("@:uextern extern ", keyword, d.Type.Name)

	if !isInterface && c.Super != "" {
		super, ok := e.types.Lookup(c.Super)
		switch {
		case !ok:
			e.log.Warnw("superclass not registered, extends clause omitted", "type", d.Type.String(), "super", c.Super)
		case super.Type.Kind == model.KindNone:
			e.log.Debugw("superclass has no usable kind, extends clause omitted", "type", d.Type.String(), "super", c.Super)
		default:
			w.Write(" extends ", super.Type.String())
		}
	}

	implements := " implements "
	if isInterface {
		implements = " extends "
	}
	for _, path := range c.Interfaces {
		iface, ok := e.types.Lookup(path)
		if !ok {
			e.log.Debugw("interface not registered", "type", d.Type.String(), "interface", path)
			continue
		}
		if iface.Type.Kind == model.KindNone {
			continue
		}
		w.Write(implements, iface.Type.String())
	}

	w.Begin(" {")
	if !noExport {
		e.fields(w, c.Path, c.Fields)
	}
	w.End()
	return w.String(), nil
}

func (e *Emitter) Struct(d *model.Descriptor) (string, error) {
	s := d.Struct
	w := NewWriter()
	e.prelude(w, d.Type)

	e.docComment(w, s.ToolTip, s.NoExport)
	e.module(w, d)
	if err := e.includes(w, d); err != nil {
		return "", err
	}

	w.Write("@:uextern extern class ", d.Type.Name)
	if s.Super != "" {
		if super, ok := e.types.Lookup(s.Super); ok && super.Type.Kind != model.KindNone {
			w.Write(" extends ", super.Type.String())
		} else {
			e.log.Debugw("parent struct not registered", "type", d.Type.String(), "super", s.Super)
		}
	}

	w.Begin(" {")
	if !s.NoExport {
		e.fields(w, s.Path, s.Fields)
	}
	w.End()
	return w.String(), nil
}

func (e *Emitter) Enum(d *model.Descriptor) (string, error) {
	en := d.Enum
	w := NewWriter()
	e.prelude(w, d.Type)

	if en.ToolTip != "" {
		w.Comment(en.ToolTip)
	}
	e.module(w, d)
	if err := e.includes(w, d); err != nil {
		return "", err
	}

	cppType := en.CppType
	if cppType == "" {
		cppType = en.Name
	}
	w.Line(`@:uname("`, Escaped(strings.ReplaceAll(cppType, "::", ".")), `")`)
	if en.Form == model.FormEnumClass {
		w.Write("@:class ")
	}
	w.Write("@:uextern extern enum ", d.Type.Name)

	w.Begin(" {")
	// the last value is the implicit _MAX sentinel
	for i := 0; i < len(en.Values)-1; i++ {
		v := en.Values[i]
		comment := v.ToolTip
		if v.DisplayName != "" {
			if comment == "" {
				comment = v.DisplayName
			} else {
				comment += "\n@DisplayName " + v.DisplayName
			}
		}
		if comment != "" {
			w.Comment(comment)
		}
		if v.DisplayName != "" {
			w.Line(`@DisplayName("`, Escaped(v.DisplayName), `")`)
		}
		w.Line(v.Name, ";")
	}
	w.End()
	return w.String(), nil
}

func (e *Emitter) prelude(w *Writer, t model.TypeRef) {
	w.Comment(Prelude)
	if len(t.Pack) > 0 {
		w.Line("package ", strings.Join(t.Pack, "."), ";")
		w.Newline()
	}
}

func (e *Emitter) docComment(w *Writer, comment string, noExport bool) {
	if noExport {
		comment = NoExportWarning + "\n\n" + comment
	}
	if comment = strings.TrimRight(comment, "\n"); comment != "" {
		w.Comment(comment)
	}
}

func (e *Emitter) module(w *Writer, d *model.Descriptor) {
	if d.Module != "" {
		w.Line(`@:umodule("`, Escaped(d.Module), `")`)
	}
}

// includes writes the @:glueCppIncludes annotation with one resolved path
// per distinct header of d.
func (e *Emitter) includes(w *Writer, d *model.Descriptor) error {
	pkg := d.Package()
	if pkg == "" && d.Module != "" {
		pkg = model.ScriptPrefix + d.Module
	}

	seen := make(map[string]bool, len(d.Headers))
	quoted := make([]string, 0, len(d.Headers))
	for _, h := range d.Headers {
		path, err := headerpath.Resolve(h, pkg)
		if err != nil {
			return err
		}
		if seen[path] {
			continue
		}
		seen[path] = true
		quoted = append(quoted, `"`+Escaped(path)+`"`)
	}
	w.Line("@:glueCppIncludes(", strings.Join(quoted, ", "), ")")
	return nil
}
