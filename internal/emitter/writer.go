package emitter

import (
	"strings"
)

const indentUnit = "  "

// frame is an open Begin or BeginRegion awaiting its End.
type frame struct {
	close  string
	indent bool
}

// Writer is an append-only text buffer with a stack of open blocks. Begin
// pushes an indented block closed by "}", BeginRegion pushes an unindented
// region closed by an arbitrary line; End pops whichever is on top.
type Writer struct {
	buf       strings.Builder
	depth     int
	lineStart bool
	frames    []frame
}

func NewWriter() *Writer {
	return &Writer{lineStart: true}
}

// Write appends parts to the current line.
func (w *Writer) Write(parts ...string) *Writer {
	for _, p := range parts {
		if p == "" {
			continue
		}
		if w.lineStart {
			w.buf.WriteString(strings.Repeat(indentUnit, w.depth))
			w.lineStart = false
		}
		w.buf.WriteString(p)
	}
	return w
}

// Newline terminates the current line.
func (w *Writer) Newline() *Writer {
	w.buf.WriteByte('\n')
	w.lineStart = true
	return w
}

// Line writes parts as one complete line.
func (w *Writer) Line(parts ...string) *Writer {
	return w.Write(parts...).Newline()
}

// Begin ends the current line with open and indents until the matching End.
func (w *Writer) Begin(open string) *Writer {
	w.Line(open)
	w.frames = append(w.frames, frame{close: "}", indent: true})
	w.depth++
	return w
}

// BeginRegion writes open on its own line; the matching End writes close.
func (w *Writer) BeginRegion(open, close string) *Writer {
	w.breakLine()
	w.Line(open)
	w.frames = append(w.frames, frame{close: close})
	return w
}

// End closes the innermost Begin or BeginRegion. It is a no-op when nothing is open.
func (w *Writer) End() *Writer {
	if len(w.frames) == 0 {
		return w
	}
	f := w.frames[len(w.frames)-1]
	w.frames = w.frames[:len(w.frames)-1]
	w.breakLine()
	if f.indent {
		w.depth--
	}
	return w.Line(f.close)
}

// Close ends every open block.
func (w *Writer) Close() *Writer {
	for len(w.frames) > 0 {
		w.End()
	}
	return w
}

// Open returns the number of blocks and regions not yet ended.
func (w *Writer) Open() int {
	return len(w.frames)
}

// Comment writes text as a Haxe doc comment, one source line per line.
func (w *Writer) Comment(text string) *Writer {
	w.breakLine()
	w.Line("/**")
	w.depth++
	for _, l := range strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n") {
		l = strings.TrimRight(l, " \t\r")
		if l == "" {
			w.Newline()
			continue
		}
		w.Line(strings.ReplaceAll(l, "*/", "* /"))
	}
	w.depth--
	return w.Line("**/")
}

func (w *Writer) String() string {
	return w.buf.String()
}

func (w *Writer) breakLine() {
	if !w.lineStart {
		w.Newline()
	}
}

var escaper = strings.NewReplacer(`\`, `\\`, `"`, `\"`, "\n", `\n`, "\r", `\r`, "\t", `\t`)

// Escaped quotes s for use inside a double-quoted Haxe string literal.
func Escaped(s string) string {
	return escaper.Replace(s)
}
