// Package parser turns markdown text into symbols and assembles them into tags.
package parser

import (
	"sort"

	"github.com/riverfjs/simplemarkdown-go/internal/types"
)

// Parse scans text and returns its sorted tag list.
func Parse(text string) []types.Tag {
	return FindTags(text, ScanSymbols(text))
}

// FindTags groups symbols into section tags and the line, style, link and
// list item tags inside each section.
func FindTags(text string, symbols []types.Symbol) []types.Tag {
	result := make([]types.Tag, 0)
	if len(symbols) == 0 {
		return result
	}
	kinds := newLineKinds(symbols)

	sectionIndex := nextSectionIndex(symbols, kinds, -1)
	startSymbolIndex := len(symbols)
	leadingEnd := len(text)
	if sectionIndex >= 0 {
		for i, sym := range symbols {
			if sym.Start >= symbols[sectionIndex].Start {
				startSymbolIndex = i
				break
			}
		}
		leadingEnd = lineStart(symbols[startSymbolIndex])
	}

	// Lines before the first section only produce line tags
	if startSymbolIndex > 0 {
		leading := types.NewTag(types.TagParagraph, 0, symbols[0].Start, leadingEnd, symbols[0].Start, leadingEnd)
		result = append(result, findLineTags(text, symbols[:startSymbolIndex], leading)...)
	}

	for sectionIndex >= 0 {
		next := nextSectionIndex(symbols, kinds, sectionIndex)
		section := makeSectionTag(text, symbols, kinds, sectionIndex, next)

		endSymbolIndex := startSymbolIndex
		for i := startSymbolIndex; i < len(symbols) && symbols[i].Start < section.End; i++ {
			if symbols[i].Start >= section.Start && symbols[i].End <= section.End {
				endSymbolIndex = i + 1
			}
		}
		scan := symbols[startSymbolIndex:endSymbolIndex]

		// Empty lines at the end don't belong to the section
		lines := findLineTags(text, scan, section)
		for i, line := range lines {
			if line.TextStart >= line.TextEnd {
				if i > 0 {
					section.End = lines[i-1].End
				}
				break
			}
		}

		result = append(result, section)
		result = append(result, lines...)
		result = append(result, findTextStyleTags(scan)...)
		result = append(result, findLinkTags(text, scan)...)
		result = append(result, findListTags(text, scan, section)...)

		startSymbolIndex = endSymbolIndex
		sectionIndex = next
	}

	attachEscapes(result, symbols)
	SortTags(result)
	return result
}

// SortTags orders tags by start offset, then by kind.
func SortTags(tags []types.Tag) {
	sort.SliceStable(tags, func(i, j int) bool {
		if tags[i].Start != tags[j].Start {
			return tags[i].Start < tags[j].Start
		}
		return tags[i].Kind < tags[j].Kind
	})
}

func attachEscapes(tags []types.Tag, symbols []types.Symbol) {
	var escapes []types.Symbol
	for _, sym := range symbols {
		if sym.Kind == types.SymbolEscape {
			escapes = append(escapes, sym)
		}
	}
	if len(escapes) == 0 {
		return
	}
	for i := range tags {
		for _, esc := range escapes {
			if esc.Start >= tags[i].Start && esc.Start < tags[i].End {
				tags[i].Escapes = append(tags[i].Escapes, esc)
			}
		}
	}
}

// lineStart returns the offset of the line a text block starts on.
// Only whitespace precedes a text block on its line, so rune and byte counts agree.
func lineStart(sym types.Symbol) int {
	return sym.Start - sym.LinePosition
}

func isWhitespace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n'
}

// trimText shrinks the text range of a tag until it no longer starts or ends with whitespace.
func trimText(text string, tag *types.Tag) {
	start := tag.TextStart
	for start < tag.TextEnd && isWhitespace(text[start]) {
		start++
	}
	tag.TextStart = start
	end := tag.TextEnd
	for end > tag.TextStart && isWhitespace(text[end-1]) {
		end--
	}
	tag.TextEnd = end
}

func trimExtra(text string, tag *types.Tag) {
	if tag.ExtraEnd < 0 {
		return
	}
	end := tag.ExtraEnd
	for end > tag.ExtraStart && isWhitespace(text[end-1]) {
		end--
	}
	tag.ExtraEnd = end
}
