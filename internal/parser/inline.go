package parser

import "github.com/riverfjs/simplemarkdown-go/internal/types"

// findTextStyleTags pairs emphasis symbols of the same family.
func findTextStyleTags(symbols []types.Symbol) []types.Tag {
	var pending []types.Symbol
	for _, sym := range symbols {
		if sym.Kind.IsEmphasis() {
			pending = append(pending, sym)
		}
	}
	return pairTextStyles(pending, 0)
}

// pairTextStyles matches markers in two phases. Phase 0 pairs directly
// adjacent markers of one family, which catches well-formed nesting. Phase 1
// pairs what is left with the nearest later marker of the same family.
func pairTextStyles(pending []types.Symbol, phase int) []types.Tag {
	if phase > 1 || len(pending) < 2 {
		return nil
	}
	for i := 0; i < len(pending)-1; i++ {
		if phase == 0 && pending[i+1].Kind == pending[i].Kind {
			tag := makeTextStyleTag(pending[i], pending[i+1])
			return append([]types.Tag{tag}, pairTextStyles(without(pending, i, i+2), phase)...)
		}
		if phase == 1 {
			if j := nextOfKind(pending, i); j > 0 {
				tag := makeTextStyleTag(pending[i], pending[j])
				return append([]types.Tag{tag}, pairTextStyles(without(pending, i, j+1), phase)...)
			}
		}
	}
	return pairTextStyles(pending, phase+1)
}

func nextOfKind(symbols []types.Symbol, index int) int {
	for j := index + 1; j < len(symbols); j++ {
		if symbols[j].Kind == symbols[index].Kind {
			return j
		}
	}
	return -1
}

// without returns a new slice lacking symbols[from:to].
func without(symbols []types.Symbol, from, to int) []types.Symbol {
	rest := make([]types.Symbol, 0, len(symbols)-(to-from))
	rest = append(rest, symbols[:from]...)
	return append(rest, symbols[to:]...)
}

func makeTextStyleTag(open, close types.Symbol) types.Tag {
	weight := min(open.Len(), close.Len())
	kind := types.TagTextStyle
	if open.Kind == types.SymbolEmphasisC {
		kind = types.TagAlternativeTextStyle
	}
	return types.NewTag(kind, weight, open.Start, close.End, open.Start+weight, close.End-weight)
}

// findLinkTags matches brackets on a single line.
func findLinkTags(text string, symbols []types.Symbol) []types.Tag {
	var result []types.Tag
	var open *types.Symbol
	for i, sym := range symbols {
		switch {
		case sym.Kind == types.SymbolNewline:
			open = nil
		case sym.Kind == types.SymbolOpenLink && open == nil:
			open = &symbols[i]
		case open != nil && sym.Kind == types.SymbolCloseLink:
			result = append(result, makeLinkTag(text, *open, sym, symbols))
			open = nil
		}
	}
	return result
}

// makeLinkTag builds a link and picks up a directly following (url "title") part.
func makeLinkTag(text string, open, close types.Symbol, symbols []types.Symbol) types.Tag {
	tag := types.NewTag(types.TagLink, 0, open.Start, close.End, open.Start+1, close.End-1)
	var url *types.Symbol
	quotes := 0
	cutOff := 0
	for i, sym := range symbols {
		switch {
		case sym.Start == close.End && sym.Kind == types.SymbolOpenUrl:
			url = &symbols[i]
		case sym.Start > close.End && (url == nil || sym.Kind == types.SymbolNewline):
			return tag
		case url != nil && sym.Kind == types.SymbolDoubleQuote:
			if quotes == 0 {
				cutOff = sym.Start
			}
			quotes++
		case url != nil && sym.Kind == types.SymbolCloseUrl:
			tag.ExtraStart = url.End
			tag.ExtraEnd = sym.Start
			if quotes > 1 {
				tag.ExtraEnd = cutOff
			}
			tag.End = sym.End
			trimExtra(text, &tag)
			return tag
		}
	}
	return tag
}

// findListTags creates an item per marker, running up to the next marker or the section end.
func findListTags(text string, symbols []types.Symbol, section types.Tag) []types.Tag {
	var result []types.Tag
	var current *types.Symbol
	for i, sym := range symbols {
		if !sym.Kind.IsListItem() {
			continue
		}
		if current != nil {
			result = append(result, makeListItemTag(text, *current, sym.Start))
		}
		current = &symbols[i]
	}
	if current != nil {
		result = append(result, makeListItemTag(text, *current, section.End))
	}
	return result
}

func makeListItemTag(text string, marker types.Symbol, end int) types.Tag {
	kind := types.TagUnorderedItem
	if marker.Kind == types.SymbolOrderedItem {
		kind = types.TagOrderedItem
	}
	tag := types.NewTag(kind, 1+marker.LinePosition/2, marker.Start, end, marker.End, end)
	trimText(text, &tag)
	return tag
}
