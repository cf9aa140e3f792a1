package simplemarkdown

import (
	"fmt"

	"github.com/riverfjs/simplemarkdown-go/internal/converter"
	"github.com/riverfjs/simplemarkdown-go/internal/parser"
)

// StyledText is clean text with the tags that were applied to it.
type StyledText struct {
	Text string
	Tags []ProcessedTag
}

// ToStyled 将 Markdown 转换为纯文本，并通过 styler 回调逐个应用样式
//
// 列表项前会插入 styler.ListToken 返回的符号，区块之间以空行分隔。
// 同类嵌套样式会被拆平，例如 "_a **b** c_" 中的 b 以 weight 3 报告。
//
// 参数:
//   - markdown: 原始 Markdown 文本
//   - styler: 样式回调，不能为 nil
//   - opts: 转换选项
//
// 返回:
//   - StyledText: 纯文本与处理后的 tag
//   - error: ErrNilStyler，或包装了回调错误的 ErrStyleCallback；出错时不返回部分结果
func ToStyled(markdown string, styler Styler, opts ...Option) (StyledText, error) {
	if styler == nil {
		return StyledText{}, ErrNilStyler
	}
	options := applyOptions(opts...)

	text := converter.Preprocess(markdown, options.Normalize)
	result := converter.Process(text, parser.Parse(text), styler.ListToken)
	converter.SortProcessed(result.Tags)
	tags := converter.RearrangeNestedTextStyles(result.Tags)

	var previous *ProcessedTag
	for i := range tags {
		tag := tags[i]
		var err error
		switch {
		case tag.Kind == TagSectionSpacer:
			next := nextSection(tags, i)
			if previous == nil || next == nil {
				continue
			}
			err = styler.ApplySectionSpacer(previous.Kind, previous.Weight, next.Kind, next.Weight, tag.Start, tag.End)
		default:
			if tag.Kind.IsSection() {
				previous = &tags[i]
			}
			err = styler.ApplyStyle(tag.Kind, tag.Weight, tag.Start, tag.End, extraValue(tag, styler))
		}
		if err != nil {
			err = fmt.Errorf("%w: %s [%d,%d): %w", ErrStyleCallback, tag.Kind, tag.Start, tag.End, err)
			Logger.Printf("ToStyled: %v", err)
			return StyledText{}, err
		}
	}
	return StyledText{Text: result.Text, Tags: tags}, nil
}

// ToText converts markdown to plain text without list tokens. Sections are
// separated by a single newline.
func ToText(markdown string, opts ...Option) string {
	options := applyOptions(opts...)
	text := converter.Preprocess(markdown, options.Normalize)
	return converter.Process(text, parser.Parse(text), nil).Text
}

// FindTags returns the tags of markdown with offsets into the preprocessed source.
func FindTags(markdown string, opts ...Option) []Tag {
	options := applyOptions(opts...)
	return parser.Parse(converter.Preprocess(markdown, options.Normalize))
}

// FindSymbols returns the markers found by the scanner.
func FindSymbols(markdown string, opts ...Option) []Symbol {
	options := applyOptions(opts...)
	return parser.ScanSymbols(converter.Preprocess(markdown, options.Normalize))
}

func nextSection(tags []ProcessedTag, after int) *ProcessedTag {
	for i := after + 1; i < len(tags); i++ {
		if tags[i].Kind.IsSection() {
			return &tags[i]
		}
	}
	return nil
}

func extraValue(tag ProcessedTag, styler Styler) string {
	switch {
	case tag.Kind.IsListItem():
		return styler.ListToken(tag.Kind, tag.Weight, tag.Index)
	case tag.Kind == TagLink:
		return tag.Link
	}
	return ""
}
