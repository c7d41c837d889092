// Package scanner implements the primitive token readers the section
// parsers are built on: integer/float literals, quoted strings, and
// section header/footer recognition. Every read records the byte range it
// consumed so callers can build precise diagnostics.
package scanner

import (
	"strconv"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"github.com/mshkit/gmsh41/internal/diag"
	"github.com/mshkit/gmsh41/internal/srcbuf"
)

// Scanner is a cursor over a source buffer.
type Scanner struct {
	buf *srcbuf.Buffer
	pos int
}

// New creates a Scanner positioned at the start of buf.
func New(buf *srcbuf.Buffer) *Scanner {
	return &Scanner{buf: buf}
}

// Buffer returns the underlying source buffer.
func (s *Scanner) Buffer() *srcbuf.Buffer { return s.buf }

// Pos returns the current cursor position.
func (s *Scanner) Pos() int { return s.pos }

// AtEOF reports whether the cursor has reached the end of the buffer.
func (s *Scanner) AtEOF() bool { return s.pos >= s.buf.Len() }

func (s *Scanner) byteAt(i int) byte {
	data := s.buf.Bytes()
	if i < 0 || i >= len(data) {
		return 0
	}

	return data[i]
}

// skipInlineSpace advances past spaces, tabs and carriage returns but stops
// at a newline.
func (s *Scanner) skipInlineSpace() {
	data := s.buf.Bytes()
	for s.pos < len(data) {
		c := data[s.pos]
		if c == ' ' || c == '\t' || c == '\r' {
			s.pos++
			continue
		}

		break
	}
}

// skipWhitespace advances past any run of spaces, tabs, and newlines.
func (s *Scanner) skipWhitespace() {
	data := s.buf.Bytes()
	for s.pos < len(data) {
		c := data[s.pos]
		if c == ' ' || c == '\t' || c == '\r' || c == '\n' {
			s.pos++
			continue
		}

		break
	}
}

// atLineStart reports whether the cursor sits at the first byte of a line.
func (s *Scanner) atLineStart() bool {
	return s.pos == 0 || s.byteAt(s.pos-1) == '\n'
}

func (s *Scanner) err(kind diag.Kind, section string, r srcbuf.Range, format string, args ...any) error {
	return diag.New(s.buf, kind, section, r, format, args...)
}

// ReadI32 reads an optionally-signed decimal integer and returns it as int32.
func (s *Scanner) ReadI32(section string) (int32, srcbuf.Range, error) {
	v, r, err := s.readInt(section, true)
	if err != nil {
		return 0, r, err
	}
	if v < int64(minInt32) || v > int64(maxInt32) {
		return 0, r, s.err(diag.InvalidData, section, r, "integer %d out of int32 range", v)
	}

	return int32(v), r, nil
}

// ReadI64 reads an optionally-signed decimal integer and returns it as int64.
func (s *Scanner) ReadI64(section string) (int64, srcbuf.Range, error) {
	return s.readInt(section, true)
}

// ReadUsize reads an unsigned decimal integer and returns it as uint64.
func (s *Scanner) ReadUsize(section string) (uint64, srcbuf.Range, error) {
	v, r, err := s.readInt(section, false)
	if err != nil {
		return 0, r, err
	}

	return uint64(v), r, nil
}

const (
	minInt32 = -2147483648
	maxInt32 = 2147483647
)

func (s *Scanner) readInt(section string, signed bool) (int64, srcbuf.Range, error) {
	s.skipWhitespace()
	begin := s.pos
	data := s.buf.Bytes()

	// A leading '-' is consumed for unsigned reads too, so a negative value
	// is reported as out of range rather than as a missing literal.
	if s.pos < len(data) && (data[s.pos] == '-' || (signed && data[s.pos] == '+')) {
		s.pos++
	}

	digitsStart := s.pos
	for s.pos < len(data) && data[s.pos] >= '0' && data[s.pos] <= '9' {
		s.pos++
	}

	if s.pos == digitsStart {
		r := srcbuf.Range{Begin: begin, End: s.pos + 1}
		return 0, r, s.err(diag.InvalidFormat, section, r, "expected integer literal")
	}

	r := srcbuf.Range{Begin: begin, End: s.pos}
	text := string(data[begin:s.pos])
	v, err := strconv.ParseInt(text, 10, 64)
	if err != nil {
		return 0, r, s.err(diag.InvalidData, section, r, "invalid integer literal %q", text)
	}
	if !signed && (v < 0 || data[begin] == '-') {
		return 0, r, s.err(diag.InvalidData, section, r, "expected unsigned integer, got %q", text)
	}

	return v, r, nil
}

// ReadF64 reads a floating-point literal, accepting decimal, exponent,
// "inf", "-inf", and "nan" forms.
func (s *Scanner) ReadF64(section string) (float64, srcbuf.Range, error) {
	s.skipWhitespace()
	begin := s.pos
	data := s.buf.Bytes()

	for s.pos < len(data) && isFloatByte(data[s.pos]) {
		s.pos++
	}

	if s.pos == begin {
		r := srcbuf.Range{Begin: begin, End: s.pos + 1}
		return 0, r, s.err(diag.InvalidFormat, section, r, "expected floating-point literal")
	}

	r := srcbuf.Range{Begin: begin, End: s.pos}
	text := string(data[begin:s.pos])
	v, err := strconv.ParseFloat(strings.ToLower(text), 64)
	if err != nil {
		return 0, r, s.err(diag.InvalidData, section, r, "invalid floating-point literal %q", text)
	}

	return v, r, nil
}

func isFloatByte(c byte) bool {
	switch {
	case c >= '0' && c <= '9':
		return true
	case c == '+' || c == '-' || c == '.' || c == 'e' || c == 'E':
		return true
	case c == 'i' || c == 'n' || c == 'f' || c == 'a' || c == 'I' || c == 'N' || c == 'F' || c == 'A':
		// permits inf/Inf/INF/nan/NaN
		return true
	default:
		return false
	}
}

// ReadQuotedString reads a double-quoted string, returning its content with
// the quotes stripped. No escape processing is performed; bytes are
// preserved verbatim.
func (s *Scanner) ReadQuotedString(section string) (string, srcbuf.Range, error) {
	s.skipWhitespace()
	begin := s.pos
	data := s.buf.Bytes()

	if s.pos >= len(data) || data[s.pos] != '"' {
		r := srcbuf.Range{Begin: begin, End: begin + 1}
		return "", r, s.err(diag.InvalidFormat, section, r, "expected opening quote")
	}
	s.pos++
	contentStart := s.pos

	for s.pos < len(data) && data[s.pos] != '"' {
		s.pos++
	}

	if s.pos >= len(data) {
		r := srcbuf.Range{Begin: begin, End: s.pos}
		return "", r, s.err(diag.InvalidFormat, section, r, "unterminated quoted string")
	}

	raw := data[contentStart:s.pos]
	s.pos++ // consume closing quote
	r := srcbuf.Range{Begin: begin, End: s.pos}

	if utf8.Valid(raw) {
		return string(raw), r, nil
	}

	// $PhysicalNames and other quoted-string content is specified as UTF-8,
	// but large-mesh pipelines regularly hand this parser Latin-1 or
	// UTF-16 exports from older Gmsh/CAD toolchains. Retry as BOM-sniffed
	// UTF-16 before giving up.
	recovered, ok := recoverUTF16(raw)
	if !ok {
		return "", r, s.err(diag.InvalidData, section, r, "quoted string is not valid UTF-8")
	}

	return recovered, r, nil
}

// recoverUTF16 attempts to decode raw as BOM-sniffed UTF-16 (defaulting to
// big-endian when no BOM is present), returning the transcoded UTF-8 string.
func recoverUTF16(raw []byte) (string, bool) {
	e := unicode.BOMOverride(unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM).NewDecoder())
	out, _, err := transform.Bytes(e, raw)
	if err != nil || !utf8.Valid(out) {
		return "", false
	}

	return string(out), true
}

// PeekLineTrimmed returns the remainder of the current line, trimmed of
// leading/trailing inline whitespace, without advancing the cursor.
func (s *Scanner) PeekLineTrimmed() string {
	data := s.buf.Bytes()
	end := s.pos
	for end < len(data) && data[end] != '\n' {
		end++
	}

	return strings.TrimSpace(string(data[s.pos:end]))
}

// SkipLine advances the cursor past the remainder of the current line,
// including its terminating newline if present.
func (s *Scanner) SkipLine() {
	data := s.buf.Bytes()
	for s.pos < len(data) && data[s.pos] != '\n' {
		s.pos++
	}
	if s.pos < len(data) {
		s.pos++
	}
}

// ExpectSectionHeader requires, at a line boundary, the literal "$name"
// followed by a newline (or EOF).
func (s *Scanner) ExpectSectionHeader(name string) (srcbuf.Range, error) {
	return s.expectLineLiteral("$"+name, "<top-level>")
}

// ExpectSectionFooter requires the literal "$Endname".
func (s *Scanner) ExpectSectionFooter(name string) (srcbuf.Range, error) {
	return s.expectLineLiteral("$End"+name, name)
}

func (s *Scanner) expectLineLiteral(literal, section string) (srcbuf.Range, error) {
	s.skipWhitespace()
	begin := s.pos

	if !s.atLineStart() {
		r := srcbuf.Range{Begin: begin, End: begin + 1}
		return r, s.err(diag.InvalidSection, section, r, "expected %q at start of line", literal)
	}

	line := s.PeekLineTrimmed()
	if line != literal {
		r := srcbuf.Range{Begin: begin, End: begin + len(line)}
		if len(line) == 0 {
			r.End = begin + 1
		}

		return r, s.err(diag.InvalidSection, section, r, "expected %q, got %q", literal, line)
	}

	s.SkipLine()
	r := srcbuf.Range{Begin: begin, End: s.pos}

	return r, nil
}

// NextHeaderToken peeks the next non-blank line and, if it begins with '$',
// returns the header name (without the leading '$') and true.
func (s *Scanner) NextHeaderToken() (name string, ok bool) {
	save := s.pos
	s.skipWhitespace()
	if s.AtEOF() {
		s.pos = save
		return "", false
	}
	if s.byteAt(s.pos) != '$' {
		s.pos = save
		return "", false
	}

	line := s.PeekLineTrimmed()
	s.pos = save

	return strings.TrimPrefix(line, "$"), true
}

// SkipBlank advances past any run of whitespace, so AtEOF afterwards
// reports whether real content remains.
func (s *Scanner) SkipBlank() { s.skipWhitespace() }

// SkipUnknownSection consumes lines until a matching "$End<name>" footer is
// seen, where name is read from the just-consumed header line.
func (s *Scanner) SkipUnknownSection(headerName string) error {
	footer := "$End" + headerName
	for {
		s.skipWhitespace()
		if s.AtEOF() {
			begin := s.pos
			r := srcbuf.Range{Begin: begin, End: begin + 1}
			return s.err(diag.InvalidSection, headerName, r, "EOF while skipping unknown section %q", headerName)
		}
		line := s.PeekLineTrimmed()
		s.SkipLine()
		if line == footer {
			return nil
		}
	}
}
