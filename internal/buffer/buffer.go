package buffer

import "strings"

// TextBuffer accumulates formatter output and tracks where the current line starts.
type TextBuffer struct {
	b         strings.Builder
	lineStart int // 最后一个 '\n' 之后的字节位置
}

// New creates a new TextBuffer.
func New() *TextBuffer {
	return &TextBuffer{}
}

// Grow 预留容量
func (tb *TextBuffer) Grow(n int) {
	tb.b.Grow(n)
}

// Write appends text to the buffer.
func (tb *TextBuffer) Write(text string) {
	if text == "" {
		return
	}
	if i := strings.LastIndexByte(text, '\n'); i >= 0 {
		tb.lineStart = tb.b.Len() + i + 1
	}
	tb.b.WriteString(text)
}

// Len returns the number of bytes written so far.
func (tb *TextBuffer) Len() int {
	return tb.b.Len()
}

// EndsWithNewline reports whether the last written byte is '\n'.
func (tb *TextBuffer) EndsWithNewline() bool {
	return tb.b.Len() > 0 && tb.lineStart == tb.b.Len()
}

// CurrentLine returns the text written since the last newline.
func (tb *TextBuffer) CurrentLine() string {
	return tb.b.String()[tb.lineStart:]
}

// String returns the accumulated text.
func (tb *TextBuffer) String() string {
	return tb.b.String()
}

// Reset clears the buffer.
func (tb *TextBuffer) Reset() {
	tb.b.Reset()
	tb.lineStart = 0
}
