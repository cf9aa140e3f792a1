package htmlgen

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/riverfjs/simplemarkdown-go/internal/converter"
	"github.com/riverfjs/simplemarkdown-go/internal/parser"
	"github.com/riverfjs/simplemarkdown-go/internal/reference"
	"github.com/riverfjs/simplemarkdown-go/internal/types"
)

func toHTML(markdown string) string {
	result := converter.Process(markdown, parser.Parse(markdown), nil)
	return Render(result.Text, result.Tags)
}

func TestRender(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		markdown string
		want     string
	}{
		{"empty", "", ""},
		{"header and body", "# H\n\nBody", "<h1>H</h1><p>Body</p>"},
		{"header level", "### T", "<h3>T</h3>"},
		{"styles", "Some *text* and ~~gone~~", "<p>Some <i>text</i> and <del>gone</del></p>"},
		{"bold italic", "***x***", "<p><b><i>x</i></b></p>"},
		{"line break", "a\nb", "<p>a<br/>\nb</p>"},
		{"escaping", "a < b & c", "<p>a &lt; b &amp; c</p>"},
		{"link", "[x](http://a.b \"title\")", `<p><a href="http://a.b">x</a></p>`},
		{"unordered list", "* One\n* Two", "<ul><li>One</li>\n<li>Two</li></ul><br/>"},
		{"nested list", "1. A\n  * B", "<ol><li>A</li>\n<ul><li>B</li></ul></ol><br/>"},
		{"list then paragraph", "* One\n\nEnd", "<ul><li>One</li></ul><br/><p>End</p>"},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, toHTML(tt.markdown))
		})
	}
}

func TestRender_Href(t *testing.T) {
	t.Parallel()

	text := "go"
	tags := []types.ProcessedTag{
		{Kind: types.TagParagraph, Start: 0, End: 2},
		{Kind: types.TagLink, Start: 0, End: 2, Link: "http://a.b?x=1&y=2 \"title\""},
	}
	assert.Equal(t, `<p><a href="http://a.b?x=1&amp;y=2">go</a></p>`, Render(text, tags))
}

func TestRender_NestedSameStart(t *testing.T) {
	t.Parallel()

	// Both styles open at 0, the shorter one added first
	text := "abcd"
	tags := []types.ProcessedTag{
		{Kind: types.TagParagraph, Start: 0, End: 4},
		{Kind: types.TagAlternativeTextStyle, Start: 0, End: 2},
		{Kind: types.TagTextStyle, Weight: 2, Start: 0, End: 4},
	}
	assert.Equal(t, "<p><b><del>ab</del>cd</b></p>", Render(text, tags))
}

func TestRender_Balanced(t *testing.T) {
	t.Parallel()

	inputs := []string{
		"# Header\nText *with* _styles_\n\n* List\n  * Nested\n1. Ordered\n\nEnd",
		"Some lines of _styled and **double styled** text_\nAlso new lines.",
		"+ A bullet list\n- Second bullet item\n  * A nested item\n* Third bullet item\n  1. Nested first item\n  2. Nested second item",
		"See [docs](https://example.com) and [https://example.org]",
		"\n\nLeading lines\n\n\n\n  Trailing spaces  \n",
	}
	for _, markdown := range inputs {
		out := toHTML(markdown)
		assert.NoError(t, reference.CheckBalanced(out), "%q -> %s", markdown, out)
	}
}

func TestRender_StyleCrossingListItems(t *testing.T) {
	t.Parallel()

	out := toHTML("- bb**x y\n* 1. )\\ * ")
	assert.Contains(t, out, "<li>bb<i>*x y</li>")
	assert.ErrorIs(t, reference.CheckBalanced(out), reference.ErrUnbalanced)
}

func TestRender_TextMatchesPlainOutput(t *testing.T) {
	t.Parallel()

	markdown := "# Title\n\nBody with *style*\nand a second line"
	result := converter.Process(markdown, parser.Parse(markdown), nil)
	text, err := reference.PlainText(Render(result.Text, result.Tags))
	assert.NoError(t, err)
	assert.Equal(t, result.Text, text)
}
