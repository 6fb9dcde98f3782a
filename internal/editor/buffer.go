package editor

import (
	"errors"
	"io/fs"
	"os"
	"strings"

	"github.com/mattn/go-runewidth"
)

// Pos is a 1-based line and rune column. Column len+1 is the end of a line.
type Pos struct {
	Line int
	Col  int
}

// Before reports whether p sorts before q.
func (p Pos) Before(q Pos) bool {
	return p.Line < q.Line || (p.Line == q.Line && p.Col < q.Col)
}

// Range is a half-open span of text.
type Range struct {
	Start Pos
	End   Pos
}

func newRange(a, b Pos) Range {
	if b.Before(a) {
		a, b = b, a
	}
	return Range{Start: a, End: b}
}

// Empty reports whether the range covers no text.
func (r Range) Empty() bool {
	return r.Start == r.End
}

// Buffer is an in-memory text buffer.
type Buffer struct {
	Name  string
	lines [][]rune
}

// NewBuffer splits text into lines. A buffer always has at least one line.
func NewBuffer(name, text string) *Buffer {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.TrimSuffix(text, "\n")
	parts := strings.Split(text, "\n")
	lines := make([][]rune, len(parts))
	for i, part := range parts {
		lines[i] = []rune(part)
	}
	return &Buffer{Name: name, lines: lines}
}

// LoadBuffer reads path. A missing file yields an empty buffer with that name.
func LoadBuffer(path string) (*Buffer, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return NewBuffer(path, ""), nil
	}
	if err != nil {
		return nil, err
	}
	return NewBuffer(path, string(data)), nil
}

func (b *Buffer) LineCount() int {
	return len(b.lines)
}

// Line returns line n, or "" when out of range.
func (b *Buffer) Line(n int) string {
	if n < 1 || n > len(b.lines) {
		return ""
	}
	return string(b.lines[n-1])
}

// LineLen returns the rune length of line n.
func (b *Buffer) LineLen(n int) int {
	if n < 1 || n > len(b.lines) {
		return 0
	}
	return len(b.lines[n-1])
}

// VisualWidth returns the display width of line n in terminal cells.
func (b *Buffer) VisualWidth(n int) int {
	return runewidth.StringWidth(b.Line(n))
}

// String returns the whole buffer.
func (b *Buffer) String() string {
	parts := make([]string, len(b.lines))
	for i, line := range b.lines {
		parts[i] = string(line)
	}
	return strings.Join(parts, "\n")
}

// Clamp moves p onto existing text.
func (b *Buffer) Clamp(p Pos) Pos {
	if p.Line < 1 {
		p.Line = 1
	}
	if p.Line > len(b.lines) {
		p.Line = len(b.lines)
	}
	if p.Col < 1 {
		p.Col = 1
	}
	if limit := b.LineLen(p.Line) + 1; p.Col > limit {
		p.Col = limit
	}
	return p
}

// Text returns the text covered by r.
func (b *Buffer) Text(r Range) string {
	r = newRange(b.Clamp(r.Start), b.Clamp(r.End))
	if r.Start.Line == r.End.Line {
		line := b.lines[r.Start.Line-1]
		return string(line[r.Start.Col-1 : r.End.Col-1])
	}
	var sb strings.Builder
	sb.WriteString(string(b.lines[r.Start.Line-1][r.Start.Col-1:]))
	for n := r.Start.Line + 1; n < r.End.Line; n++ {
		sb.WriteByte('\n')
		sb.WriteString(string(b.lines[n-1]))
	}
	sb.WriteByte('\n')
	sb.WriteString(string(b.lines[r.End.Line-1][:r.End.Col-1]))
	return sb.String()
}

// Insert places text at p and returns the position just after it.
func (b *Buffer) Insert(p Pos, text string) Pos {
	p = b.Clamp(p)
	line := b.lines[p.Line-1]
	head := append([]rune(nil), line[:p.Col-1]...)
	tail := append([]rune(nil), line[p.Col-1:]...)
	parts := strings.Split(text, "\n")

	inserted := make([][]rune, len(parts))
	for i, part := range parts {
		inserted[i] = []rune(part)
	}
	inserted[0] = append(head, inserted[0]...)
	last := len(inserted) - 1
	end := Pos{Line: p.Line + last, Col: len(inserted[last]) + 1}
	inserted[last] = append(inserted[last], tail...)

	lines := make([][]rune, 0, len(b.lines)+last)
	lines = append(lines, b.lines[:p.Line-1]...)
	lines = append(lines, inserted...)
	lines = append(lines, b.lines[p.Line:]...)
	b.lines = lines
	return end
}

// Delete removes the text covered by r and returns the range start.
func (b *Buffer) Delete(r Range) Pos {
	r = newRange(b.Clamp(r.Start), b.Clamp(r.End))
	if r.Empty() {
		return r.Start
	}
	head := b.lines[r.Start.Line-1][:r.Start.Col-1]
	tail := b.lines[r.End.Line-1][r.End.Col-1:]
	joined := append(append([]rune(nil), head...), tail...)

	lines := make([][]rune, 0, len(b.lines))
	lines = append(lines, b.lines[:r.Start.Line-1]...)
	lines = append(lines, joined)
	lines = append(lines, b.lines[r.End.Line:]...)
	b.lines = lines
	return r.Start
}
