package types

import "strings"

// ExtractMode selects the bounds used by ExtractTextBetween and ExtractFullBetween.
type ExtractMode int

const (
	// StartToNext runs from the start of the first tag to the start of the second.
	StartToNext ExtractMode = iota
	// IntermediateToNext runs from the end of the first tag to the start of the second.
	IntermediateToNext
	// IntermediateToEnd runs from the end of the first tag to the end of the second.
	IntermediateToEnd
)

// ExtractText returns the tag's content with escape backslashes removed.
func (t Tag) ExtractText(source string) string {
	return t.unescape(source, t.TextStart, t.TextEnd)
}

// ExtractFull returns the tag's complete source range, markup included.
func (t Tag) ExtractFull(source string) string {
	return t.unescape(source, t.Start, t.End)
}

// ExtractExtra returns the captured link URL, or "" when there is none.
func (t Tag) ExtractExtra(source string) string {
	if !t.HasExtra() || t.ExtraEnd <= t.ExtraStart {
		return ""
	}
	return t.unescape(source, t.ExtraStart, t.ExtraEnd)
}

// EscapedCharacters returns the characters following each escape symbol of the tag.
func (t Tag) EscapedCharacters(source string) string {
	var sb strings.Builder
	for _, esc := range t.Escapes {
		if esc.End < len(source) {
			sb.WriteByte(source[esc.End])
		}
	}
	return sb.String()
}

// ExtractTextBetween returns the content between two tags.
func ExtractTextBetween(source string, from, to Tag, mode ExtractMode) string {
	var start, end int
	switch mode {
	case StartToNext:
		start, end = from.TextStart, to.Start
	case IntermediateToNext:
		start, end = from.End, to.Start
	case IntermediateToEnd:
		start, end = from.End, to.TextEnd
	}
	if start >= end {
		return ""
	}
	return from.unescape(source, start, end)
}

// ExtractFullBetween is ExtractTextBetween using full ranges.
func ExtractFullBetween(source string, from, to Tag, mode ExtractMode) string {
	var start, end int
	switch mode {
	case StartToNext:
		start, end = from.Start, to.Start
	case IntermediateToNext:
		start, end = from.End, to.Start
	case IntermediateToEnd:
		start, end = from.End, to.End
	}
	if start >= end {
		return ""
	}
	return from.unescape(source, start, end)
}

// unescape drops the backslashes of the tag's escape symbols inside [start, end).
func (t Tag) unescape(source string, start, end int) string {
	if start < 0 {
		start = 0
	}
	if end > len(source) {
		end = len(source)
	}
	if start >= end {
		return ""
	}
	if len(t.Escapes) == 0 {
		return source[start:end]
	}
	var sb strings.Builder
	sb.Grow(end - start)
	pos := start
	for _, esc := range t.Escapes {
		if esc.Start < start || esc.Start >= end {
			continue
		}
		sb.WriteString(source[pos:esc.Start])
		pos = esc.End
	}
	if pos < end {
		sb.WriteString(source[pos:end])
	}
	return sb.String()
}
