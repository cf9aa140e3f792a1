package simplemarkdown

import (
	"unicode/utf8"

	"github.com/riverfjs/simplemarkdown-go/internal/buffer"
)

// Entity types produced by DefaultStyler.Entities.
const (
	EntityBold          = "bold"
	EntityItalic        = "italic"
	EntityBoldItalic    = "bold_italic"
	EntityStrikethrough = "strikethrough"
	EntityTextLink      = "text_link"
	EntityHeading       = "heading"
	EntityListItem      = "list_item"
)

// Entity is a style range measured in UTF-16 code units.
// Level is the header level or list depth.
type Entity struct {
	Type   string `json:"type"`
	Offset int    `json:"offset"`
	Length int    `json:"length"`
	URL    string `json:"url,omitempty"`
	Level  int    `json:"level,omitempty"`
}

// ToDict 将 Entity 转换为 map
func (e Entity) ToDict() map[string]interface{} {
	result := map[string]interface{}{
		"type":   e.Type,
		"offset": e.Offset,
		"length": e.Length,
	}
	if e.URL != "" {
		result["url"] = e.URL
	}
	if e.Level != 0 {
		result["level"] = e.Level
	}
	return result
}

// UTF16Len returns the length of text measured in UTF-16 code units.
//
// Characters outside the BMP (codepoint > 0xFFFF) take 2 UTF-16 code units
// (a surrogate pair); all others take 1.
func UTF16Len(text string) int {
	return buffer.UTF16Len(text)
}

// TextChunk represents a chunk of text with its entities.
type TextChunk struct {
	Text     string
	Entities []Entity
}

// buildUTF16OffsetTable builds a cumulative UTF-16 offset table for each byte position.
// Bytes inside a multi-byte rune get the offset of the rune start.
func buildUTF16OffsetTable(text string) []int {
	offsets := make([]int, len(text)+1)
	cum := 0
	for pos := 0; pos < len(text); {
		r, size := utf8.DecodeRuneInString(text[pos:])
		for i := pos; i < pos+size; i++ {
			offsets[i] = cum
		}
		if r > 0xFFFF {
			cum += 2
		} else {
			cum++
		}
		pos += size
	}
	offsets[len(text)] = cum
	return offsets
}

// SplitEntities splits (text, entities) into chunks not exceeding maxUTF16Len UTF-16 code units.
//
// Tries to split after a newline. Lines longer than the budget are split at the
// last rune that fits. Entities that span a split boundary are clipped into both chunks.
func SplitEntities(text string, entities []Entity, maxUTF16Len int) []TextChunk {
	if maxUTF16Len <= 0 || UTF16Len(text) <= maxUTF16Len {
		return []TextChunk{{Text: text, Entities: entities}}
	}

	offsets := buildUTF16OffsetTable(text)

	var chunkRanges [][2]int // [byteStart, byteEnd]
	byteStart := 0
	for byteStart < len(text) {
		budget := offsets[byteStart] + maxUTF16Len
		if offsets[len(text)] <= budget {
			chunkRanges = append(chunkRanges, [2]int{byteStart, len(text)})
			break
		}

		hard, soft := byteStart, -1
		for pos := byteStart; pos < len(text); {
			_, size := utf8.DecodeRuneInString(text[pos:])
			next := pos + size
			if offsets[next] > budget {
				break
			}
			hard = next
			if text[pos] == '\n' {
				soft = next
			}
			pos = next
		}

		split := soft
		if split <= byteStart {
			split = hard
		}
		if split <= byteStart {
			// A single rune wider than the budget
			_, size := utf8.DecodeRuneInString(text[byteStart:])
			split = byteStart + size
		}
		chunkRanges = append(chunkRanges, [2]int{byteStart, split})
		byteStart = split
	}

	result := make([]TextChunk, 0, len(chunkRanges))
	for _, chunkRange := range chunkRanges {
		chunkUTF16Start := offsets[chunkRange[0]]
		chunkUTF16End := offsets[chunkRange[1]]
		var chunkEntities []Entity

		for _, ent := range entities {
			clippedStart := max(ent.Offset, chunkUTF16Start)
			clippedEnd := min(ent.Offset+ent.Length, chunkUTF16End)
			if clippedEnd <= clippedStart {
				continue
			}
			ent.Offset = clippedStart - chunkUTF16Start
			ent.Length = clippedEnd - clippedStart
			chunkEntities = append(chunkEntities, ent)
		}

		result = append(result, TextChunk{
			Text:     text[chunkRange[0]:chunkRange[1]],
			Entities: chunkEntities,
		})
	}
	return result
}
