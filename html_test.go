package simplemarkdown

import (
	"strings"
	"testing"
)

// TestToHTML 测试 HTML 输出
func TestToHTML(t *testing.T) {
	tests := []struct {
		markdown string
		want     string
	}{
		{"", ""},
		{"# H\n\nBody", "<h1>H</h1><p>Body</p>"},
		{"# H\r\n\r\nBody", "<h1>H</h1><p>Body</p>"},
		{"###### Six", "<h6>Six</h6>"},
		{"Some *text* and **more**", "<p>Some <i>text</i> and <b>more</b></p>"},
		{"a\nb", "<p>a<br/>\nb</p>"},
		{"a < b", "<p>a &lt; b</p>"},
		{"* One\n* Two", "<ul><li>One</li>\n<li>Two</li></ul><br/>"},
		{"[x](http://a.b)", `<p><a href="http://a.b">x</a></p>`},
	}
	for _, tt := range tests {
		if got := ToHTML(tt.markdown); got != tt.want {
			t.Errorf("ToHTML(%q) = %q, want %q", tt.markdown, got, tt.want)
		}
	}
}

// TestToHTML_Normalization 测试规范化选项
func TestToHTML_Normalization(t *testing.T) {
	if got := ToHTML("e\u0301", WithNormalization(true)); got != "<p>\u00e9</p>" {
		t.Errorf("ToHTML(normalized) = %q, want %q", got, "<p>\u00e9</p>")
	}
	if got := ToHTML("e\u0301"); got != "<p>e\u0301</p>" {
		t.Errorf("ToHTML(raw) = %q, want input unchanged", got)
	}
}

// TestToHTML_NoMarkupLeaks 测试转义后的标记不再出现
func TestToHTML_NoMarkupLeaks(t *testing.T) {
	got := ToHTML("Text with \\*stars\\* and \\[brackets\\]")
	if !strings.Contains(got, "*stars*") || !strings.Contains(got, "[brackets]") {
		t.Errorf("ToHTML() = %q, want escaped characters as text", got)
	}
	if strings.Contains(got, "\\") {
		t.Errorf("ToHTML() = %q still contains escape backslashes", got)
	}
}
