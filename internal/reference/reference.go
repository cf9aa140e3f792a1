// Package reference renders markdown with goldmark as a CommonMark baseline
// and inspects HTML with the x/net/html tokenizer.
package reference

import (
	"errors"
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/pmezard/go-difflib/difflib"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/text"
	"golang.org/x/net/html"

	"github.com/riverfjs/simplemarkdown-go/internal/converter"
	"github.com/riverfjs/simplemarkdown-go/internal/types"
)

// StandardOptions goldmark 扩展配置，只开启本方言覆盖的语法
var StandardOptions = []goldmark.Option{
	goldmark.WithExtensions(
		extension.Strikethrough,
		extension.Linkify,
	),
}

// ErrUnbalanced is returned by CheckBalanced when open and close tags do not match.
var ErrUnbalanced = errors.New("unbalanced html")

// Parse 解析 Markdown 并遍历 AST 生成 (text, tags)
func Parse(markdown string) (string, []types.ProcessedTag) {
	md := goldmark.New(StandardOptions...)
	source := []byte(markdown)
	node := md.Parser().Parse(text.NewReader(source))

	walker := NewEventWalker(source)
	_ = ast.Walk(node, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		return walker.Walk(n, entering)
	})
	return walker.Result()
}

// outlineKinds are the tags that both goldmark and the simple dialect report
// with the same ranges on the plain text layout.
var outlineKinds = map[types.TagKind]bool{
	types.TagHeader:               true,
	types.TagOrderedItem:          true,
	types.TagUnorderedItem:        true,
	types.TagLink:                 true,
	types.TagTextStyle:            true,
	types.TagAlternativeTextStyle: true,
}

// Outline 将纯文本与可比较的 tag 列成文本，用于与 goldmark 结果做 diff
//
// 第一部分是原样的纯文本，"--" 之后每行一个 tag，按位置排序。
// 段落、列表与分隔 tag 不参与比较。
func Outline(text string, tags []types.ProcessedTag) string {
	sorted := slices.Clone(tags)
	converter.SortProcessed(sorted)

	var sb strings.Builder
	sb.WriteString(text)
	sb.WriteString("\n--\n")
	for _, tag := range sorted {
		if !outlineKinds[tag.Kind] {
			continue
		}
		content := ""
		if tag.Start >= 0 && tag.Start <= tag.End && tag.End <= len(text) {
			content = text[tag.Start:tag.End]
		}
		switch {
		case tag.Kind == types.TagLink:
			fmt.Fprintf(&sb, "%s %q -> %s\n", tag.Kind, content, tag.Link)
		case tag.Kind.IsListItem():
			fmt.Fprintf(&sb, "%s %q\n", tag.Kind, content)
		default:
			fmt.Fprintf(&sb, "%s %d %q\n", tag.Kind, tag.Weight, content)
		}
	}
	return sb.String()
}

// blockElements end a line in PlainText.
var blockElements = map[string]bool{
	"p": true, "li": true, "ul": true, "ol": true, "br": true,
	"h1": true, "h2": true, "h3": true, "h4": true, "h5": true, "h6": true,
}

// PlainText extracts the text content of an HTML fragment. A block end or
// line break separates the text around it with one newline.
func PlainText(fragment string) (string, error) {
	var sb strings.Builder
	pending := false

	z := html.NewTokenizer(strings.NewReader(fragment))
	for {
		switch z.Next() {
		case html.ErrorToken:
			if errors.Is(z.Err(), io.EOF) {
				return sb.String(), nil
			}
			return "", z.Err()
		case html.TextToken:
			content := z.Text()
			if len(content) == 0 {
				continue
			}
			if pending && sb.Len() > 0 && content[0] != '\n' {
				sb.WriteByte('\n')
			}
			pending = false
			sb.Write(content)
		case html.StartTagToken, html.SelfClosingTagToken:
			name, _ := z.TagName()
			if string(name) == "br" {
				pending = true
			}
		case html.EndTagToken:
			name, _ := z.TagName()
			if blockElements[string(name)] {
				pending = true
			}
		}
	}
}

// CheckBalanced verifies that every element of fragment is closed in order.
// br is the only void element accepted.
func CheckBalanced(fragment string) error {
	var stack []string
	z := html.NewTokenizer(strings.NewReader(fragment))
	for {
		switch z.Next() {
		case html.ErrorToken:
			if !errors.Is(z.Err(), io.EOF) {
				return z.Err()
			}
			if len(stack) > 0 {
				return fmt.Errorf("%w: <%s> never closed", ErrUnbalanced, stack[len(stack)-1])
			}
			return nil
		case html.StartTagToken:
			name, _ := z.TagName()
			if string(name) != "br" {
				stack = append(stack, string(name))
			}
		case html.EndTagToken:
			name, _ := z.TagName()
			if len(stack) == 0 || stack[len(stack)-1] != string(name) {
				return fmt.Errorf("%w: unexpected </%s>", ErrUnbalanced, name)
			}
			stack = stack[:len(stack)-1]
		}
	}
}

// Diff returns a unified diff from want to got, or "" when they match.
func Diff(fromName, toName, want, got string) (string, error) {
	if want == got {
		return "", nil
	}
	return difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(want + "\n"),
		B:        difflib.SplitLines(got + "\n"),
		FromFile: fromName,
		ToFile:   toName,
		Context:  2,
	})
}
