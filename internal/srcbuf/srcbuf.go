// Package srcbuf owns the full contents of a source file as a contiguous byte
// slice and provides byte-offset to (line, column) resolution for
// diagnostics.
package srcbuf

import "sort"

// Range is an inclusive-exclusive byte span [Begin, End) within a Buffer.
type Range struct {
	Begin int
	End   int
}

// Buffer holds the entire input and a precomputed line-start index.
//
// The whole file is read into memory once; MSH files are typically
// megabytes, rarely gigabytes, and full-buffer parsing simplifies error
// reporting and the multi-pass header validation the format requires.
type Buffer struct {
	Origin     string
	data       []byte
	lineStarts []int // byte offset of the first byte of each line
}

// New builds a Buffer over data, precomputing the line-start index.
func New(origin string, data []byte) *Buffer {
	b := &Buffer{Origin: origin, data: data}
	b.lineStarts = append(b.lineStarts, 0)
	for i, c := range data {
		if c == '\n' {
			b.lineStarts = append(b.lineStarts, i+1)
		}
	}

	return b
}

// Bytes returns the full buffer contents. Callers must not mutate it.
func (b *Buffer) Bytes() []byte { return b.data }

// Len returns the number of bytes in the buffer.
func (b *Buffer) Len() int { return len(b.data) }

// Slice returns the bytes in the given range, clamped to the buffer bounds.
func (b *Buffer) Slice(r Range) []byte {
	begin, end := r.Begin, r.End
	if begin < 0 {
		begin = 0
	}
	if begin > len(b.data) {
		begin = len(b.data)
	}
	if end > len(b.data) {
		end = len(b.data)
	}
	if end < begin {
		end = begin
	}

	return b.data[begin:end]
}

// Resolve converts a byte offset into a 1-based (line, column) pair.
func (b *Buffer) Resolve(offset int) (line, col int) {
	if offset < 0 {
		offset = 0
	}
	if offset > len(b.data) {
		offset = len(b.data)
	}

	// lineStarts is sorted; find the last line-start <= offset.
	idx := sort.Search(len(b.lineStarts), func(i int) bool {
		return b.lineStarts[i] > offset
	})
	lineIdx := idx - 1
	if lineIdx < 0 {
		lineIdx = 0
	}

	return lineIdx + 1, offset - b.lineStarts[lineIdx] + 1
}

// LineText returns the contents of the given 1-based line number, without
// its trailing newline.
func (b *Buffer) LineText(line int) string {
	if line < 1 || line > len(b.lineStarts) {
		return ""
	}
	start := b.lineStarts[line-1]
	end := len(b.data)
	if line < len(b.lineStarts) {
		end = b.lineStarts[line]
	}
	for end > start && (b.data[end-1] == '\n' || b.data[end-1] == '\r') {
		end--
	}

	return string(b.data[start:end])
}

// LineCount returns the number of lines in the buffer.
func (b *Buffer) LineCount() int { return len(b.lineStarts) }
