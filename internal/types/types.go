package types

import "fmt"

// SymbolKind identifies a lexical marker found by the scanner.
type SymbolKind int

const (
	SymbolEscape SymbolKind = iota
	SymbolDoubleQuote
	SymbolTextBlock
	SymbolNewline
	SymbolHeader
	SymbolEmphasisA // '*'
	SymbolEmphasisB // '_'
	SymbolEmphasisC // '~'
	SymbolOrderedItem
	SymbolUnorderedItem
	SymbolOpenLink
	SymbolCloseLink
	SymbolOpenUrl
	SymbolCloseUrl
)

var symbolKindNames = [...]string{
	"Escape", "DoubleQuote", "TextBlock", "Newline", "Header",
	"EmphasisA", "EmphasisB", "EmphasisC",
	"OrderedItem", "UnorderedItem",
	"OpenLink", "CloseLink", "OpenUrl", "CloseUrl",
}

func (k SymbolKind) String() string {
	if k < 0 || int(k) >= len(symbolKindNames) {
		return "Unknown"
	}
	return symbolKindNames[k]
}

// IsEmphasis reports whether the symbol is one of the three emphasis marker families.
func (k SymbolKind) IsEmphasis() bool {
	return k == SymbolEmphasisA || k == SymbolEmphasisB || k == SymbolEmphasisC
}

// IsListItem reports whether the symbol is a list marker.
func (k SymbolKind) IsListItem() bool {
	return k == SymbolOrderedItem || k == SymbolUnorderedItem
}

// Symbol is a marker in the source text. Start and End are byte offsets,
// LinePosition counts runes from the start of the line (escape backslashes excluded).
type Symbol struct {
	Kind         SymbolKind
	Line         int
	LinePosition int
	Start        int
	End          int
}

// Len returns the byte length of the symbol.
func (s Symbol) Len() int {
	return s.End - s.Start
}

// TagKind identifies an assembled tag. The declaration order is also the
// tie-break order when sorting tags that start at the same offset.
type TagKind int

const (
	TagParagraph TagKind = iota
	TagHeader
	TagList
	TagLine
	TagSectionSpacer
	TagOrderedItem
	TagUnorderedItem
	TagLink
	TagTextStyle
	TagAlternativeTextStyle
)

var tagKindNames = [...]string{
	"Paragraph", "Header", "List", "Line", "SectionSpacer",
	"OrderedItem", "UnorderedItem", "Link", "TextStyle", "AlternativeTextStyle",
}

func (k TagKind) String() string {
	if k < 0 || int(k) >= len(tagKindNames) {
		return "Unknown"
	}
	return tagKindNames[k]
}

// IsSection reports whether the kind owns a top-level block of the document.
func (k TagKind) IsSection() bool {
	return k == TagParagraph || k == TagHeader || k == TagList
}

// IsListItem reports whether the kind is an ordered or unordered list item.
func (k TagKind) IsListItem() bool {
	return k == TagOrderedItem || k == TagUnorderedItem
}

// IsTextStyle reports whether the kind is emphasis or strikethrough.
func (k TagKind) IsTextStyle() bool {
	return k == TagTextStyle || k == TagAlternativeTextStyle
}

// Tag is a range of the source text. [Start, End) includes markup,
// [TextStart, TextEnd) is the content. ExtraStart/ExtraEnd hold a link URL and are -1 when absent.
type Tag struct {
	Kind       TagKind
	Weight     int
	Start      int
	End        int
	TextStart  int
	TextEnd    int
	ExtraStart int
	ExtraEnd   int
	Escapes    []Symbol
}

// NewTag creates a tag without an extra range.
func NewTag(kind TagKind, weight, start, end, textStart, textEnd int) Tag {
	return Tag{
		Kind:       kind,
		Weight:     weight,
		Start:      start,
		End:        end,
		TextStart:  textStart,
		TextEnd:    textEnd,
		ExtraStart: -1,
		ExtraEnd:   -1,
	}
}

// HasExtra reports whether an extra (URL) range was captured.
func (t Tag) HasExtra() bool {
	return t.ExtraStart >= 0 && t.ExtraEnd >= t.ExtraStart
}

// ProcessedTag is a tag remapped onto the clean text.
type ProcessedTag struct {
	Kind   TagKind `json:"kind"`
	Weight int     `json:"weight"`
	Start  int     `json:"start"`
	End    int     `json:"end"`
	Link   string  `json:"link,omitempty"`
	Index  int     `json:"index,omitempty"`
}

// Len returns the byte length of the tag's clean-text range.
func (t ProcessedTag) Len() int {
	return t.End - t.Start
}

// MarshalText lets kinds appear by name in JSON output.
func (k TagKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// UnmarshalText parses a kind name written by MarshalText.
func (k *TagKind) UnmarshalText(text []byte) error {
	for i, name := range tagKindNames {
		if name == string(text) {
			*k = TagKind(i)
			return nil
		}
	}
	return fmt.Errorf("unknown tag kind %q", text)
}

// Span is a style applied to a range of clean text, as reported to a styler.
// Gap is the spacer height in pixels for section spacers.
type Span struct {
	Kind   TagKind `json:"kind"`
	Weight int     `json:"weight,omitempty"`
	Start  int     `json:"start"`
	End    int     `json:"end"`
	Extra  string  `json:"extra,omitempty"`
	Gap    int     `json:"gap,omitempty"`
}
