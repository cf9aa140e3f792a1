package parser

import "github.com/riverfjs/simplemarkdown-go/internal/types"

type lineKey struct {
	line, position int
}

// lineKinds maps a line/column to the section kind announced by a header or list marker there.
type lineKinds map[lineKey]types.TagKind

func newLineKinds(symbols []types.Symbol) lineKinds {
	kinds := make(lineKinds)
	for _, sym := range symbols {
		var kind types.TagKind
		switch {
		case sym.Kind == types.SymbolHeader:
			kind = types.TagHeader
		case sym.Kind.IsListItem():
			kind = types.TagList
		default:
			continue
		}
		key := lineKey{sym.Line, sym.LinePosition}
		if _, ok := kinds[key]; !ok {
			kinds[key] = kind
		}
	}
	return kinds
}

func (k lineKinds) sectionType(sym types.Symbol) types.TagKind {
	if kind, ok := k[lineKey{sym.Line, sym.LinePosition}]; ok {
		return kind
	}
	return types.TagParagraph
}

// nextSectionIndex returns the index of the text block starting the section
// after the one at after (-1 for the first section), or -1 when there is none.
func nextSectionIndex(symbols []types.Symbol, kinds lineKinds, after int) int {
	afterType := types.TagParagraph
	previousListPosition := 0
	if after >= 0 {
		afterType = kinds.sectionType(symbols[after])
		previousListPosition = symbols[after].LinePosition
	}
	newlines := 0
	for i := after + 1; i < len(symbols); i++ {
		sym := symbols[i]
		switch {
		case sym.Kind == types.SymbolNewline:
			newlines++
		case sym.Kind == types.SymbolTextBlock:
			sectionType := kinds.sectionType(sym)
			canBreak := sectionType == types.TagHeader || afterType == types.TagHeader || sectionType != afterType
			// Indented text continues the list item above it
			if afterType == types.TagList && sectionType == types.TagParagraph && sym.LinePosition >= previousListPosition {
				canBreak = false
			}
			if newlines > 1 || after < 0 || (newlines > 0 && canBreak) {
				return i
			}
			newlines = 0
		case sym.Kind.IsListItem():
			previousListPosition = sym.LinePosition + sym.Len() + 1
		}
	}
	return -1
}

func makeSectionTag(text string, symbols []types.Symbol, kinds lineKinds, from, to int) types.Tag {
	first := symbols[from]
	end := len(text)
	if to >= 0 {
		end = lineStart(symbols[to])
	}
	textEnd := first.End
	last := len(symbols)
	if to >= 0 {
		last = to
	}
	for i := from; i < last; i++ {
		if symbols[i].Kind == types.SymbolTextBlock {
			textEnd = symbols[i].End
		}
	}
	tag := types.NewTag(kinds.sectionType(first), 0, lineStart(first), end, first.Start, textEnd)
	if tag.Kind != types.TagHeader {
		return tag
	}

	// Strip the leading hash run (its length is the level) and any closing run
	leading := true
	for _, sym := range symbols {
		if sym.Start < tag.Start {
			continue
		}
		if sym.End > tag.End {
			break
		}
		if sym.Kind != types.SymbolHeader {
			continue
		}
		if leading {
			tag.TextStart = sym.End
			tag.Weight = sym.Len()
			leading = false
		} else {
			tag.TextEnd = sym.Start
			break
		}
	}
	if tag.TextEnd < tag.TextStart {
		tag.TextEnd = tag.TextStart
	}
	trimText(text, &tag)
	tag.Weight = clamp(tag.Weight, 1, 6)
	return tag
}

func findLineTags(text string, symbols []types.Symbol, section types.Tag) []types.Tag {
	var result []types.Tag
	start := section.Start
	seenNewline := false
	for _, sym := range symbols {
		if sym.Kind != types.SymbolNewline {
			continue
		}
		result = append(result, makeLineTag(text, start, sym.End, sym.Start))
		start = sym.End
		seenNewline = true
	}
	if !seenNewline || start < section.End {
		result = append(result, makeLineTag(text, start, section.End, section.End))
	}
	return result
}

func makeLineTag(text string, start, end, textEnd int) types.Tag {
	tag := types.NewTag(types.TagLine, 0, start, end, start, textEnd)
	trimText(text, &tag)
	return tag
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
