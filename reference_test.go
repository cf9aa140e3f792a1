package simplemarkdown

import (
	"strings"
	"testing"

	"github.com/riverfjs/simplemarkdown-go/internal/converter"
	"github.com/riverfjs/simplemarkdown-go/internal/parser"
	"github.com/riverfjs/simplemarkdown-go/internal/reference"
)

// agreedMarkdown 两种方言解析结果一致的输入
var agreedMarkdown = []string{
	"# Title\n\nSome *text* and **bold**",
	"## Sub\n\nPara _it_\n\n* a\n* b",
	"See [docs](https://example.com) now",
	"1. One\n2. Two",
	"Intro line\n\n### Small\n\n* x [y](http://a.b)",
}

// TestToText_MatchesGoldmark 测试纯文本与 tag 和 goldmark 的解析一致
func TestToText_MatchesGoldmark(t *testing.T) {
	for _, markdown := range agreedMarkdown {
		wantText, wantTags := reference.Parse(markdown)
		if got := ToText(markdown); got != wantText {
			t.Errorf("ToText(%q) = %q, goldmark gives %q", markdown, got, wantText)
			continue
		}

		source := converter.Preprocess(markdown, false)
		plain := converter.Process(source, parser.Parse(source), nil)
		want := reference.Outline(wantText, wantTags)
		got := reference.Outline(plain.Text, plain.Tags)
		if got != want {
			diff, _ := reference.Diff("goldmark", "simplemarkdown", want, got)
			t.Errorf("tags of %q differ from goldmark:\n%s", markdown, diff)
		}
	}
}

// TestFindTags_SectionsPartitionSource 测试区块与区块间的空行拼接后还原原文
func TestFindTags_SectionsPartitionSource(t *testing.T) {
	tests := []string{
		"# H\n\nBody\n\n* a\n* b",
		"Para one\nstill one\n\n\n1. x\n   2. y\n\nEnd",
		"# A\n# B",
		"text\n\n",
		"\n\nlead\n\n  * a\n  continued\n\nz",
	}
	for _, source := range tests {
		var rebuilt strings.Builder
		pos := 0
		for _, tag := range FindTags(source) {
			if !tag.Kind.IsSection() {
				continue
			}
			if tag.Start < pos {
				t.Errorf("%q: section %s [%d,%d) overlaps previous end %d", source, tag.Kind, tag.Start, tag.End, pos)
				break
			}
			gap := source[pos:tag.Start]
			if strings.Trim(gap, " \t\n") != "" {
				t.Errorf("%q: gap %q before %s holds content", source, gap, tag.Kind)
			}
			rebuilt.WriteString(gap)
			rebuilt.WriteString(source[tag.Start:tag.End])
			pos = tag.End
		}
		if tail := source[pos:]; strings.Trim(tail, " \t\n") != "" {
			t.Errorf("%q: trailing %q is outside every section", source, tail)
		}
		rebuilt.WriteString(source[pos:])
		if rebuilt.String() != source {
			t.Errorf("sections of %q rebuild %q", source, rebuilt.String())
		}
	}
}

// TestToText_IdempotentOnMarkup 测试转换结果再次转换保持不变
func TestToText_IdempotentOnMarkup(t *testing.T) {
	tests := []string{
		"# H\n\n- *a* [b](c)",
		"# Title\n\nSome *text* and **bold** ~gone~",
		"* One\n  * Nested\n* Two",
		"1. A\n2. B\n\nAfter",
		"Some lines of _styled and **double styled** text_",
		"See [https://example.org] or [docs](https://example.com \"t\")",
	}
	for _, markdown := range tests {
		once := ToText(markdown)
		if twice := ToText(once); twice != once {
			t.Errorf("ToText(%q) = %q, converting again gives %q", markdown, once, twice)
		}
	}
}
