package simplemarkdown

import (
	"strings"

	"github.com/riverfjs/simplemarkdown-go/internal/types"
)

// Styler receives the styles of a conversion. Offsets are byte offsets into
// the clean text returned by ToStyled.
type Styler interface {
	// ApplyStyle is called for every tag except section spacers, in offset order.
	// extra holds the list token for list items and the link target for links.
	ApplyStyle(kind TagKind, weight, start, end int, extra string) error
	// ApplySectionSpacer is called for the empty line between two sections.
	ApplySectionSpacer(prevKind TagKind, prevWeight int, nextKind TagKind, nextWeight int, start, end int) error
	// ListToken returns the text inserted in front of a list item. index is
	// the 1-based position among its siblings. Continuation lines ask for
	// (TagLine, 0, 0).
	ListToken(kind TagKind, weight, index int) string
}

// DefaultStyler records spans and takes list tokens and spacing from a RenderConfig.
// It is not safe for concurrent use; create one per conversion.
type DefaultStyler struct {
	cfg   *RenderConfig
	spans []Span
}

// NewDefaultStyler 创建默认样式器
//
// 参数:
//   - cfg: 渲染配置，如为 nil 则使用默认配置
func NewDefaultStyler(cfg *RenderConfig) *DefaultStyler {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	return &DefaultStyler{cfg: cfg}
}

func (s *DefaultStyler) ApplyStyle(kind TagKind, weight, start, end int, extra string) error {
	s.spans = append(s.spans, Span{Kind: kind, Weight: weight, Start: start, End: end, Extra: extra})
	return nil
}

func (s *DefaultStyler) ApplySectionSpacer(prevKind TagKind, _ int, nextKind TagKind, _ int, start, end int) error {
	s.spans = append(s.spans, Span{
		Kind:  TagSectionSpacer,
		Start: start,
		End:   end,
		Gap:   s.cfg.SpacingBetween(prevKind, nextKind),
	})
	return nil
}

func (s *DefaultStyler) ListToken(kind TagKind, weight, index int) string {
	switch kind {
	case TagOrderedItem:
		return s.cfg.OrderedToken(index)
	case TagUnorderedItem:
		return s.cfg.BulletToken(weight)
	case TagLine:
		return s.cfg.ContinuationToken
	}
	return ""
}

// Spans returns a copy of the recorded spans.
func (s *DefaultStyler) Spans() []Span {
	return append([]Span(nil), s.spans...)
}

// Reset drops the recorded spans so the styler can be reused.
func (s *DefaultStyler) Reset() {
	s.spans = s.spans[:0]
}

// Entities 将记录的 span 转换为 UTF-16 偏移的 Entity 列表
//
// 段落、列表区块、行和区块间隔不产生 entity。
//
// 参数:
//   - text: ToStyled 返回的纯文本
func (s *DefaultStyler) Entities(text string) []Entity {
	offsets := buildUTF16OffsetTable(text)
	at := func(pos int) int {
		return offsets[min(max(pos, 0), len(text))]
	}

	var entities []Entity
	for _, span := range s.spans {
		entity := Entity{Offset: at(span.Start), Length: at(span.End) - at(span.Start)}
		switch span.Kind {
		case types.TagTextStyle:
			switch {
			case span.Weight >= 3:
				entity.Type = EntityBoldItalic
			case span.Weight == 2:
				entity.Type = EntityBold
			default:
				entity.Type = EntityItalic
			}
		case types.TagAlternativeTextStyle:
			entity.Type = EntityStrikethrough
		case types.TagLink:
			entity.Type = EntityTextLink
			entity.URL = linkTarget(span.Extra)
		case types.TagHeader:
			entity.Type = EntityHeading
			entity.Level = span.Weight
		case types.TagOrderedItem, types.TagUnorderedItem:
			entity.Type = EntityListItem
			entity.Level = span.Weight
		default:
			continue
		}
		if entity.Length > 0 {
			entities = append(entities, entity)
		}
	}
	return entities
}

// linkTarget drops an optional title after the URL.
func linkTarget(link string) string {
	fields := strings.Fields(link)
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}
