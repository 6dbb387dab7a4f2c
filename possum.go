package possum

import (
	"fmt"
	"sort"
	"unicode/utf8"
)

// --- Spans ------------------------------------------------------------

// Span is a small type for capturing a run of input bytes. Every token and every
// expression node tracks which input positions it covers. A span denotes a start
// offset and the offset just behind the end, i.e. [x…y).
type Span [2]int // (x…y)

// MakeSpan creates a span from two byte offsets.
func MakeSpan(from, to int) Span {
	if to < from {
		to = from
	}
	return Span{from, to}
}

// From returns the start value of a span.
func (s Span) From() int {
	return s[0]
}

// To returns the end value of a span.
func (s Span) To() int {
	return s[1]
}

// Len returns the length of (x…y)
func (s Span) Len() int {
	return s[1] - s[0]
}

// IsEmpty is true for spans covering no input, e.g. the position of a missing token.
func (s Span) IsEmpty() bool {
	return s[0] == s[1]
}

// Extend returns the union of two spans.
func (s Span) Extend(other Span) Span {
	if other[0] < s[0] {
		s[0] = other[0]
	}
	if other[1] > s[1] {
		s[1] = other[1]
	}
	return s
}

// Contains is true if other lies completely within s.
func (s Span) Contains(other Span) bool {
	return s[0] <= other[0] && other[1] <= s[1]
}

// Text returns the portion of source covered by s. Out-of-range spans are clipped.
func (s Span) Text(source string) string {
	from, to := s[0], s[1]
	if from > len(source) {
		from = len(source)
	}
	if to > len(source) {
		to = len(source)
	}
	return source[from:to]
}

func (s Span) String() string {
	return fmt.Sprintf("(%d…%d)", s[0], s[1])
}

// --- Positions --------------------------------------------------------

// Position is a human readable location in a source text.
// Line and column are 1-based, columns are counted in runes.
type Position struct {
	Offset int `json:"offset"`
	Line   int `json:"line"`
	Column int `json:"column"`
}

func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// LineIndex maps byte offsets of a source text to line/column positions.
type LineIndex struct {
	source string
	starts []int // byte offset of the start of each line
}

// NewLineIndex scans source once for line breaks.
func NewLineIndex(source string) *LineIndex {
	idx := &LineIndex{source: source, starts: []int{0}}
	for i := 0; i < len(source); i++ {
		if source[i] == '\n' {
			idx.starts = append(idx.starts, i+1)
		}
	}
	return idx
}

// Position returns the position for a byte offset. Offsets past the end of the
// source are clamped to the end.
func (idx *LineIndex) Position(offset int) Position {
	if offset < 0 {
		offset = 0
	}
	if offset > len(idx.source) {
		offset = len(idx.source)
	}
	line := sort.Search(len(idx.starts), func(i int) bool {
		return idx.starts[i] > offset
	}) - 1
	start := idx.starts[line]
	return Position{
		Offset: offset,
		Line:   line + 1,
		Column: utf8.RuneCountInString(idx.source[start:offset]) + 1,
	}
}

// Line returns the text of 1-based line n, without its line break.
func (idx *LineIndex) Line(n int) string {
	if n < 1 || n > len(idx.starts) {
		return ""
	}
	start := idx.starts[n-1]
	end := len(idx.source)
	if n < len(idx.starts) {
		end = idx.starts[n] - 1
	}
	if end > start && idx.source[end-1] == '\r' {
		end--
	}
	return idx.source[start:end]
}

// Lines returns the number of lines in the source.
func (idx *LineIndex) Lines() int {
	return len(idx.starts)
}
