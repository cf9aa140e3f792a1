package converter

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/riverfjs/simplemarkdown-go/internal/types"
)

func styleTag(kind types.TagKind, weight, start, end int) types.ProcessedTag {
	return types.ProcessedTag{Kind: kind, Weight: weight, Start: start, End: end}
}

func TestRearrangeNestedTextStyles(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   []types.ProcessedTag
		want []types.ProcessedTag
	}{
		{
			name: "nested in the middle",
			in: []types.ProcessedTag{
				styleTag(types.TagParagraph, 0, 0, 10),
				styleTag(types.TagTextStyle, 1, 0, 10),
				styleTag(types.TagTextStyle, 2, 3, 6),
			},
			want: []types.ProcessedTag{
				styleTag(types.TagParagraph, 0, 0, 10),
				styleTag(types.TagTextStyle, 1, 0, 3),
				styleTag(types.TagTextStyle, 3, 3, 6),
				styleTag(types.TagTextStyle, 1, 6, 10),
			},
		},
		{
			name: "other kind inside nested",
			in: []types.ProcessedTag{
				styleTag(types.TagParagraph, 0, 0, 9),
				styleTag(types.TagTextStyle, 1, 0, 9),
				styleTag(types.TagTextStyle, 2, 2, 6),
				styleTag(types.TagAlternativeTextStyle, 1, 3, 5),
			},
			want: []types.ProcessedTag{
				styleTag(types.TagParagraph, 0, 0, 9),
				styleTag(types.TagTextStyle, 1, 0, 2),
				styleTag(types.TagTextStyle, 3, 2, 6),
				styleTag(types.TagAlternativeTextStyle, 1, 3, 5),
				styleTag(types.TagTextStyle, 1, 6, 9),
			},
		},
		{
			name: "nested at the start",
			in: []types.ProcessedTag{
				styleTag(types.TagTextStyle, 1, 0, 10),
				styleTag(types.TagTextStyle, 2, 0, 4),
			},
			want: []types.ProcessedTag{
				styleTag(types.TagTextStyle, 3, 0, 4),
				styleTag(types.TagTextStyle, 1, 4, 10),
			},
		},
		{
			name: "other kinds untouched",
			in: []types.ProcessedTag{
				styleTag(types.TagTextStyle, 1, 0, 10),
				styleTag(types.TagAlternativeTextStyle, 1, 2, 8),
			},
			want: []types.ProcessedTag{
				styleTag(types.TagTextStyle, 1, 0, 10),
				styleTag(types.TagAlternativeTextStyle, 1, 2, 8),
			},
		},
		{
			name: "siblings",
			in: []types.ProcessedTag{
				styleTag(types.TagTextStyle, 1, 0, 2),
				styleTag(types.TagTextStyle, 2, 4, 6),
			},
			want: []types.ProcessedTag{
				styleTag(types.TagTextStyle, 1, 0, 2),
				styleTag(types.TagTextStyle, 2, 4, 6),
			},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, RearrangeNestedTextStyles(tt.in))
		})
	}
}

func TestSortProcessed_KindTieBreak(t *testing.T) {
	t.Parallel()

	tags := []types.ProcessedTag{
		styleTag(types.TagTextStyle, 1, 0, 3),
		styleTag(types.TagLink, 0, 0, 3),
		styleTag(types.TagParagraph, 0, 0, 9),
		styleTag(types.TagSectionSpacer, 0, 9, 10),
	}
	SortProcessed(tags)
	kinds := make([]types.TagKind, len(tags))
	for i, tag := range tags {
		kinds[i] = tag.Kind
	}
	assert.Equal(t, []types.TagKind{types.TagParagraph, types.TagLink, types.TagTextStyle, types.TagSectionSpacer}, kinds)
}
