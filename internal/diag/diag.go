// Package diag builds diagnostic values carrying a message, the originating
// byte range, and the surrounding source lines for display. Kind plays the
// role a set of sentinel errors would: a stable identity callers can switch
// on, with the byte-range and source-excerpt payload attached.
package diag

import (
	"fmt"
	"io"

	"github.com/mshkit/gmsh41/internal/pool"
	"github.com/mshkit/gmsh41/internal/srcbuf"
)

// Kind enumerates the fatal error taxonomy.
type Kind string

const (
	IoError                Kind = "IoError"
	InvalidFormat          Kind = "InvalidFormat"
	UnsupportedVersion     Kind = "UnsupportedVersion"
	UnsupportedFileType    Kind = "UnsupportedFileType"
	InvalidSection         Kind = "InvalidSection"
	DuplicateSection       Kind = "DuplicateSection"
	MissingSection         Kind = "MissingSection"
	InvalidEntityDimension Kind = "InvalidEntityDimension"
	InvalidElementType     Kind = "InvalidElementType"
	InvalidData            Kind = "InvalidData"
	DuplicateTag           Kind = "DuplicateTag"
)

// Diagnostic is the single top-level failure value returned by a parse.
//
// It implements error, so section parsers can be written to return a plain
// `error` and the caller type-asserts back to *Diagnostic when it needs the
// byte range.
type Diagnostic struct {
	Kind    Kind
	Message string
	Range   srcbuf.Range
	Section string // section in which the error occurred, "" if none
	buf     *srcbuf.Buffer
	wrapped error
}

// New constructs a Diagnostic anchored at r within buf.
func New(buf *srcbuf.Buffer, kind Kind, section string, r srcbuf.Range, format string, args ...any) *Diagnostic {
	return &Diagnostic{
		Kind:    kind,
		Message: fmt.Sprintf(format, args...),
		Range:   r,
		Section: section,
		buf:     buf,
	}
}

// NewIO constructs an IoError Diagnostic wrapping err. It carries no source
// buffer: the failure happened before a source buffer was built (reading
// or decompressing the input).
func NewIO(err error, format string, args ...any) *Diagnostic {
	return &Diagnostic{
		Kind:    IoError,
		Message: fmt.Sprintf(format, args...),
		wrapped: err,
	}
}

// Unwrap returns the underlying error an IoError diagnostic wraps, or nil.
func (d *Diagnostic) Unwrap() error { return d.wrapped }

// Error implements the error interface with a single-line rendering.
func (d *Diagnostic) Error() string {
	if d.buf == nil {
		return fmt.Sprintf("%s: %s", d.Kind, d.Message)
	}
	line, col := d.buf.Resolve(d.Range.Begin)

	return fmt.Sprintf("%s: %s:%d:%d: %s", d.Kind, d.buf.Origin, line, col, d.Message)
}

// Render writes a caret-style excerpt of the diagnostic to w, with up to
// context lines of surrounding source before and after the offending line.
func (d *Diagnostic) Render(w io.Writer, context int) {
	if d.buf == nil {
		fmt.Fprintln(w, d.Error())
		return
	}

	bb := pool.GetDiagBuffer()
	defer pool.PutDiagBuffer(bb)

	line, col := d.buf.Resolve(d.Range.Begin)
	bb.MustWrite(fmt.Appendf(nil, "%s: %s\n", d.Kind, d.Message))
	bb.MustWrite(fmt.Appendf(nil, "  --> %s:%d:%d\n", d.buf.Origin, line, col))

	first := line - context
	if first < 1 {
		first = 1
	}
	last := line + context
	if last > d.buf.LineCount() {
		last = d.buf.LineCount()
	}

	for l := first; l <= last; l++ {
		bb.MustWrite(fmt.Appendf(nil, "%5d | %s\n", l, d.buf.LineText(l)))
		if l == line {
			caretLen := d.Range.End - d.Range.Begin
			if caretLen < 1 {
				caretLen = 1
			}
			bb.MustWrite(fmt.Appendf(nil, "      | %s%s\n", spaces(col-1), carets(caretLen)))
		}
	}

	w.Write(bb.Bytes())
}

func spaces(n int) string {
	if n < 0 {
		n = 0
	}
	b := make([]byte, n)
	for i := range b {
		b[i] = ' '
	}

	return string(b)
}

func carets(n int) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = '^'
	}

	return string(b)
}

// Warning is a non-fatal issue accumulated on the Mesh during parsing.
type Warning struct {
	Message string
	Range   srcbuf.Range
	Section string
}

func (w Warning) String() string {
	return fmt.Sprintf("[%s] %s", w.Section, w.Message)
}
