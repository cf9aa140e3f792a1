package converter

import (
	"sort"

	"github.com/riverfjs/simplemarkdown-go/internal/types"
)

// SortProcessed orders processed tags by start offset, then by kind.
func SortProcessed(tags []types.ProcessedTag) {
	sort.SliceStable(tags, func(i, j int) bool {
		if tags[i].Start != tags[j].Start {
			return tags[i].Start < tags[j].Start
		}
		return tags[i].Kind < tags[j].Kind
	})
}

// RearrangeNestedTextStyles flattens nested text styles of the same kind so
// that no two of them overlap. "_a **b** c_" becomes italic "a ", bold-italic
// "b" (weights add up) and italic " c". The input must be sorted.
func RearrangeNestedTextStyles(tags []types.ProcessedTag) []types.ProcessedTag {
	result := make([]types.ProcessedTag, 0, len(tags))
	scanned := make(map[types.TagKind]int, 2)
	for i, tag := range tags {
		if !tag.Kind.IsTextStyle() {
			result = append(result, tag)
			continue
		}
		if tag.Start < scanned[tag.Kind] {
			continue
		}
		pieces := rearranged(tags, i, 0)
		result = append(result, pieces...)
		if len(pieces) > 0 {
			scanned[tag.Kind] = pieces[len(pieces)-1].End
		}
	}
	SortProcessed(result)
	return result
}

func rearranged(tags []types.ProcessedTag, index, addWeight int) []types.ProcessedTag {
	outer := tags[index]
	weight := outer.Weight + addWeight
	var result []types.ProcessedTag
	position := outer.Start
	for i := index + 1; i < len(tags); i++ {
		check := tags[i]
		if check.Start >= outer.End {
			break
		}
		if check.Kind != outer.Kind || check.Start < position {
			continue
		}
		if position < check.Start {
			result = append(result, piece(outer, weight, position, check.Start))
		}
		nested := rearranged(tags, i, weight)
		result = append(result, nested...)
		position = check.Start
		if len(nested) > 0 {
			position = nested[len(nested)-1].End
		}
	}
	if position < outer.End {
		result = append(result, piece(outer, weight, position, outer.End))
	}
	return result
}

func piece(tag types.ProcessedTag, weight, start, end int) types.ProcessedTag {
	tag.Weight = weight
	tag.Start = start
	tag.End = end
	return tag
}
