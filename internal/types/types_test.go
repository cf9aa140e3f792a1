package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTagKind_UnmarshalText(t *testing.T) {
	t.Parallel()

	var kind TagKind
	require.NoError(t, kind.UnmarshalText([]byte("AlternativeTextStyle")))
	assert.Equal(t, TagAlternativeTextStyle, kind)

	out, err := TagOrderedItem.MarshalText()
	require.NoError(t, err)
	require.NoError(t, kind.UnmarshalText(out))
	assert.Equal(t, TagOrderedItem, kind)

	assert.Error(t, kind.UnmarshalText([]byte("Table")))
	assert.Equal(t, "Unknown", TagKind(42).String())
}

func TestTag_ExtractWithEscapes(t *testing.T) {
	t.Parallel()

	source := `x a\*b y`
	tag := NewTag(TagTextStyle, 1, 2, 6, 2, 6)
	tag.Escapes = []Symbol{{Kind: SymbolEscape, Start: 3, End: 4}}

	assert.Equal(t, "a*b", tag.ExtractText(source))
	assert.Equal(t, "a*b", tag.ExtractFull(source))
	assert.Equal(t, "*", tag.EscapedCharacters(source))
	assert.False(t, tag.HasExtra())
	assert.Empty(t, tag.ExtractExtra(source))
}

func TestExtractBetween(t *testing.T) {
	t.Parallel()

	source := "ab cd ef"
	first := NewTag(TagLink, 0, 0, 2, 0, 2)
	second := NewTag(TagLink, 0, 6, 8, 6, 8)

	tests := []struct {
		name string
		mode ExtractMode
		text string
		full string
	}{
		{"start to next", StartToNext, "ab cd ", "ab cd "},
		{"intermediate to next", IntermediateToNext, " cd ", " cd "},
		{"intermediate to end", IntermediateToEnd, " cd ef", " cd ef"},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.text, ExtractTextBetween(source, first, second, tt.mode))
			assert.Equal(t, tt.full, ExtractFullBetween(source, first, second, tt.mode))
		})
	}

	assert.Empty(t, ExtractTextBetween(source, second, first, StartToNext))
}

func TestRenderConfig_Tokens(t *testing.T) {
	t.Parallel()

	cfg := DefaultRenderConfig()
	assert.Equal(t, "• ", cfg.BulletToken(0))
	assert.Equal(t, "◦ ", cfg.BulletToken(2))
	assert.Equal(t, "▪ ", cfg.BulletToken(9))
	assert.Equal(t, "3. ", cfg.OrderedToken(3))

	cfg.OrderedFormat = "-> "
	assert.Equal(t, "-> ", cfg.OrderedToken(3))

	cfg.BulletTokens = nil
	assert.Empty(t, cfg.BulletToken(1))
}

func TestRenderConfig_Sizes(t *testing.T) {
	t.Parallel()

	cfg := DefaultRenderConfig()
	assert.Equal(t, 1.5, cfg.HeaderScaleFor(1))
	assert.Equal(t, 1.0, cfg.HeaderScaleFor(0))
	assert.Equal(t, 1.0, cfg.HeaderScaleFor(7))

	assert.Equal(t, cfg.HeaderSpacing, cfg.SpacingBetween(TagParagraph, TagHeader))
	assert.Equal(t, cfg.SectionSpacing, cfg.SpacingBetween(TagHeader, TagHeader))
	assert.Equal(t, cfg.SectionSpacing, cfg.SpacingBetween(TagHeader, TagList))
}

func TestRenderConfig_Validate(t *testing.T) {
	t.Parallel()

	require.NoError(t, DefaultRenderConfig().Validate())

	tests := []struct {
		name   string
		modify func(*RenderConfig)
	}{
		{"negative spacing", func(c *RenderConfig) { c.SectionSpacing = -1 }},
		{"zero header scale", func(c *RenderConfig) { c.HeaderScale[2] = 0 }},
		{"two verbs", func(c *RenderConfig) { c.OrderedFormat = "%d.%d " }},
		{"negative margin", func(c *RenderConfig) { c.Preview.Margin = -1 }},
		{"narrow width", func(c *RenderConfig) { c.Preview.Width = 40 }},
		{"zero font size", func(c *RenderConfig) { c.Preview.FontSize = 0 }},
		{"tight lines", func(c *RenderConfig) { c.Preview.LineSpacing = 0.5 }},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			cfg := DefaultRenderConfig()
			tt.modify(cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}
