package simplemarkdown

import (
	"context"
	"strings"
)

// Chunk 将 Markdown 转换为带 Entity 的纯文本块
//
// 先用 DefaultStyler 转换，再按 maxUTF16Len 拆分。每块去除首尾换行，
// 空块会被丢弃。
//
// 参数：
//   - ctx: 上下文，取消后停止处理剩余块
//   - markdown: 原始 Markdown 文本
//   - maxUTF16Len: 每块的最大 UTF-16 code units，<= 0 表示不拆分
//   - opts: 转换选项
//
// 返回：
//   - []TextChunk: 有序的文本块
//   - error: 转换错误或 ctx.Err()
func Chunk(ctx context.Context, markdown string, maxUTF16Len int, opts ...Option) ([]TextChunk, error) {
	options := applyOptions(opts...)
	styler := NewDefaultStyler(options.Config)
	styled, err := ToStyled(markdown, styler, opts...)
	if err != nil {
		return nil, err
	}

	entities := styler.Entities(styled.Text)
	var chunks []TextChunk
	for _, chunk := range SplitEntities(styled.Text, entities, maxUTF16Len) {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		text, adjusted := stripNewlinesAdjust(chunk.Text, chunk.Entities)
		if text == "" {
			continue
		}
		chunks = append(chunks, TextChunk{Text: text, Entities: adjusted})
	}
	return chunks, nil
}

// stripNewlinesAdjust 去除首尾换行符并调整 entity 偏移量
func stripNewlinesAdjust(text string, entities []Entity) (string, []Entity) {
	trimmed := strings.TrimLeft(text, "\n")
	leading := len(text) - len(trimmed)
	trimmed = strings.TrimRight(trimmed, "\n")
	if len(trimmed) == len(text) {
		return text, entities
	}
	if trimmed == "" {
		return "", nil
	}

	// Newlines are each 1 UTF-16 code unit
	newUTF16Len := UTF16Len(trimmed)
	var adjusted []Entity
	for _, ent := range entities {
		start := max(0, ent.Offset-leading)
		end := min(ent.Offset+ent.Length-leading, newUTF16Len)
		if end <= start {
			continue
		}
		ent.Offset = start
		ent.Length = end - start
		adjusted = append(adjusted, ent)
	}
	return trimmed, adjusted
}
