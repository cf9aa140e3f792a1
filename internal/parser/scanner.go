package parser

import (
	"sort"
	"unicode/utf8"

	"github.com/riverfjs/simplemarkdown-go/internal/types"
)

// noEscape is far enough below zero that position-1 never matches it.
const noEscape = -100

// Scanner walks the text once and collects markdown symbols.
type Scanner struct {
	symbols []types.Symbol

	line         int
	linePosition int
	lastEscape   int
	textBlock    *types.Symbol
	header       *types.Symbol
	emphasis     *types.Symbol
	listItem     *types.Symbol
	needListDot  bool
}

// NewScanner creates an empty scanner.
func NewScanner() *Scanner {
	return &Scanner{
		symbols:    make([]types.Symbol, 0),
		lastEscape: noEscape,
	}
}

// ScanSymbols scans text and returns its symbols sorted by start offset.
func ScanSymbols(text string) []types.Symbol {
	s := NewScanner()
	for pos := 0; pos < len(text); {
		r, size := utf8.DecodeRuneInString(text[pos:])
		s.addCharacter(pos, size, r)
		pos += size
	}
	return s.finish()
}

func (s *Scanner) emit(sym types.Symbol) {
	s.symbols = append(s.symbols, sym)
}

func (s *Scanner) newSymbol(kind types.SymbolKind, pos, size int) *types.Symbol {
	return &types.Symbol{
		Kind:         kind,
		Line:         s.line,
		LinePosition: s.linePosition,
		Start:        pos,
		End:          pos + size,
	}
}

func (s *Scanner) addCharacter(pos, size int, c rune) {
	// Escapes
	var escaped bool
	if c == '\\' {
		if s.lastEscape != pos-1 {
			s.lastEscape = pos
			s.emit(*s.newSymbol(types.SymbolEscape, pos, size))
		}
		escaped = true
	} else {
		escaped = s.lastEscape == pos-1
	}

	if !escaped && c == '"' {
		s.emit(*s.newSymbol(types.SymbolDoubleQuote, pos, size))
	}

	// Text blocks run from the first to the last text character of a line
	isText := escaped || (c != ' ' && c != '\n' && c != '\t')
	if s.textBlock != nil {
		if isText {
			s.textBlock.End = pos + size
		}
	} else if isText {
		s.textBlock = s.newSymbol(types.SymbolTextBlock, pos, size)
	}

	if c == '\n' && !escaped {
		if s.textBlock != nil {
			s.emit(*s.textBlock)
			s.textBlock = nil
		}
		s.emit(*s.newSymbol(types.SymbolNewline, pos, size))
	}

	// Headers
	isHeader := c == '#' && !escaped
	if s.header != nil {
		if isHeader {
			s.header.End = pos + size
		} else {
			s.emit(*s.header)
			s.header = nil
		}
	} else if isHeader {
		s.header = s.newSymbol(types.SymbolHeader, pos, size)
	}

	// Emphasis runs
	kind, isEmphasis := emphasisKind(c, escaped)
	if s.emphasis != nil {
		if isEmphasis && s.emphasis.Kind == kind {
			s.emphasis.End = pos + size
		} else {
			s.emit(*s.emphasis)
			s.emphasis = nil
			if isEmphasis {
				s.emphasis = s.newSymbol(kind, pos, size)
			}
		}
	} else if isEmphasis {
		s.emphasis = s.newSymbol(kind, pos, size)
	}

	s.checkListItem(pos, size, c, escaped)

	if !escaped {
		if kind, ok := linkKind(c); ok {
			s.emit(*s.newSymbol(kind, pos, size))
		}
	}

	// Line position
	if !escaped && c == '\n' {
		s.linePosition = 0
		s.line++
	} else if s.lastEscape != pos {
		s.linePosition++
	}
}

// checkListItem tracks a list marker that may only start at the first text character of a line.
func (s *Scanner) checkListItem(pos, size int, c rune, escaped bool) {
	if escaped {
		s.listItem = nil
		return
	}
	if s.listItem != nil {
		switch {
		case s.listItem.Kind == types.SymbolUnorderedItem && c == ' ':
			s.emit(*s.listItem)
			s.listItem = nil
		case s.listItem.Kind == types.SymbolOrderedItem:
			if s.needListDot && (isDigit(c) || c == '.') {
				s.listItem.End = pos + size
				if c == '.' {
					s.needListDot = false
				}
			} else if !s.needListDot && c == ' ' {
				s.emit(*s.listItem)
				s.listItem = nil
			} else {
				s.listItem = nil
			}
		default:
			s.listItem = nil
		}
		return
	}
	if s.textBlock != nil && s.textBlock.Start == pos {
		isBullet := c == '*' || c == '+' || c == '-'
		if isBullet || isDigit(c) {
			kind := types.SymbolOrderedItem
			if isBullet {
				kind = types.SymbolUnorderedItem
			}
			s.listItem = s.newSymbol(kind, pos, size)
			s.needListDot = !isBullet
		}
	}
}

// finish flushes runs in progress, sorts and drops bullets misread as emphasis.
func (s *Scanner) finish() []types.Symbol {
	if s.textBlock != nil {
		s.emit(*s.textBlock)
		s.textBlock = nil
	}
	if s.header != nil {
		s.emit(*s.header)
		s.header = nil
	}
	if s.emphasis != nil {
		s.emit(*s.emphasis)
		s.emphasis = nil
	}
	sort.SliceStable(s.symbols, func(i, j int) bool {
		return s.symbols[i].Start < s.symbols[j].Start
	})
	return cleanOverlaps(s.symbols)
}

// cleanOverlaps removes single '*' symbols sharing their start with an unordered list marker.
func cleanOverlaps(symbols []types.Symbol) []types.Symbol {
	bullets := make(map[int]bool)
	for _, sym := range symbols {
		if sym.Kind == types.SymbolUnorderedItem {
			bullets[sym.Start] = true
		}
	}
	if len(bullets) == 0 {
		return symbols
	}
	result := make([]types.Symbol, 0, len(symbols))
	for _, sym := range symbols {
		if sym.Kind == types.SymbolEmphasisA && sym.Len() == 1 && bullets[sym.Start] {
			continue
		}
		result = append(result, sym)
	}
	return result
}

func emphasisKind(c rune, escaped bool) (types.SymbolKind, bool) {
	if escaped {
		return 0, false
	}
	switch c {
	case '*':
		return types.SymbolEmphasisA, true
	case '_':
		return types.SymbolEmphasisB, true
	case '~':
		return types.SymbolEmphasisC, true
	}
	return 0, false
}

func linkKind(c rune) (types.SymbolKind, bool) {
	switch c {
	case '[':
		return types.SymbolOpenLink, true
	case ']':
		return types.SymbolCloseLink, true
	case '(':
		return types.SymbolOpenUrl, true
	case ')':
		return types.SymbolCloseUrl, true
	}
	return 0, false
}

func isDigit(c rune) bool {
	return c >= '0' && c <= '9'
}
