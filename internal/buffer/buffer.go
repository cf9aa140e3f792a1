package buffer

import "strings"

// UTF16Len returns the length of text measured in UTF-16 code units.
func UTF16Len(text string) int {
	count := 0
	for _, r := range text {
		if r > 0xFFFF {
			count += 2
		} else {
			count++
		}
	}
	return count
}

// TextBuffer accumulates clean text. Offsets are byte offsets.
type TextBuffer struct {
	sb strings.Builder
}

// New creates a new TextBuffer.
func New() *TextBuffer {
	return &TextBuffer{}
}

// Write appends text to the buffer.
func (tb *TextBuffer) Write(text string) {
	tb.sb.WriteString(text)
}

// Len returns the current byte offset.
func (tb *TextBuffer) Len() int {
	return tb.sb.Len()
}

// TrailingNewlineCount counts trailing newline characters in the buffer.
func (tb *TextBuffer) TrailingNewlineCount() int {
	text := tb.sb.String()
	count := 0
	for i := len(text) - 1; i >= 0 && text[i] == '\n'; i-- {
		count++
	}
	return count
}

// String returns the accumulated text.
func (tb *TextBuffer) String() string {
	return tb.sb.String()
}
