package reference

import (
	"github.com/yuin/goldmark/ast"
	east "github.com/yuin/goldmark/extension/ast"

	"github.com/riverfjs/simplemarkdown-go/internal/buffer"
	"github.com/riverfjs/simplemarkdown-go/internal/converter"
	"github.com/riverfjs/simplemarkdown-go/internal/types"
)

// scope 记录尚未闭合的标签
type scope struct {
	kind   types.TagKind
	weight int
	start  int
	link   string
	index  int
}

// EventWalker 遍历 goldmark AST，生成与 plain 模式相同布局的文本和标签
type EventWalker struct {
	buf    *buffer.TextBuffer
	source []byte
	stack  []scope
	tags   []types.ProcessedTag

	blockCount int
	listStack  []int // 每层列表已输出的项数
	ordered    []bool
}

// NewEventWalker 创建新的 EventWalker
func NewEventWalker(source []byte) *EventWalker {
	return &EventWalker{
		buf:    buffer.New(),
		source: source,
		tags:   make([]types.ProcessedTag, 0),
	}
}

// Walk 遍历 AST 节点
func (w *EventWalker) Walk(node ast.Node, entering bool) (ast.WalkStatus, error) {
	switch n := node.(type) {
	// --- Inline elements ---
	case *ast.Text:
		if entering {
			w.buf.Write(string(n.Segment.Value(w.source)))
			if n.SoftLineBreak() || n.HardLineBreak() {
				w.buf.Write("\n")
			}
		}

	case *ast.String:
		if entering {
			w.buf.Write(string(n.Value))
		}

	case *ast.CodeSpan:
		if entering {
			for c := n.FirstChild(); c != nil; c = c.NextSibling() {
				if t, ok := c.(*ast.Text); ok {
					w.buf.Write(string(t.Segment.Value(w.source)))
				}
			}
			return ast.WalkSkipChildren, nil
		}

	case *ast.Emphasis:
		if entering {
			w.push(types.TagTextStyle, n.Level, "", 0)
		} else {
			w.pop(types.TagTextStyle)
		}

	case *east.Strikethrough:
		if entering {
			w.push(types.TagAlternativeTextStyle, 1, "", 0)
		} else {
			w.pop(types.TagAlternativeTextStyle)
		}

	case *ast.Link:
		if entering {
			w.push(types.TagLink, 0, string(n.Destination), 0)
		} else {
			w.pop(types.TagLink)
		}

	case *ast.AutoLink:
		if entering {
			url := string(n.URL(w.source))
			w.push(types.TagLink, 0, url, 0)
			w.buf.Write(url)
			w.pop(types.TagLink)
			return ast.WalkSkipChildren, nil
		}

	// --- Block elements ---
	case *ast.Paragraph:
		if len(w.listStack) > 0 {
			break
		}
		if entering {
			w.ensureBlockSpacing()
			w.push(types.TagParagraph, 0, "", 0)
		} else {
			w.pop(types.TagParagraph)
			w.blockCount++
		}

	case *ast.Heading:
		if entering {
			w.ensureBlockSpacing()
			w.push(types.TagHeader, n.Level, "", 0)
		} else {
			w.pop(types.TagHeader)
			w.blockCount++
		}

	case *ast.List:
		if entering {
			w.onStartList(n)
		} else {
			w.onEndList()
		}

	case *ast.ListItem:
		if entering {
			w.onStartItem()
		} else {
			w.popAny()
		}

	case *ast.FencedCodeBlock, *ast.CodeBlock, *ast.HTMLBlock, *ast.ThematicBreak, *ast.RawHTML:
		// Not part of the dialect
		return ast.WalkSkipChildren, nil
	}

	return ast.WalkContinue, nil
}

// Result 返回转换结果，标签按起始位置排序
func (w *EventWalker) Result() (string, []types.ProcessedTag) {
	converter.SortProcessed(w.tags)
	return w.buf.String(), w.tags
}

// --- Lists ---

func (w *EventWalker) onStartList(n *ast.List) {
	if len(w.listStack) == 0 {
		w.ensureBlockSpacing()
		w.push(types.TagList, 0, "", 0)
	}
	w.listStack = append(w.listStack, 0)
	w.ordered = append(w.ordered, n.IsOrdered())
}

func (w *EventWalker) onEndList() {
	w.listStack = w.listStack[:len(w.listStack)-1]
	w.ordered = w.ordered[:len(w.ordered)-1]
	if len(w.listStack) == 0 {
		w.pop(types.TagList)
		w.blockCount++
	}
}

func (w *EventWalker) onStartItem() {
	// 嵌套列表：父项文本后没有换行时，插入换行确保子项独占一行
	if w.buf.Len() > 0 && w.buf.TrailingNewlineCount() == 0 {
		w.buf.Write("\n")
	}
	depth := len(w.listStack)
	w.listStack[depth-1]++
	kind := types.TagUnorderedItem
	if w.ordered[depth-1] {
		kind = types.TagOrderedItem
	}
	w.push(kind, depth, "", w.listStack[depth-1])
}

// --- Scopes ---

func (w *EventWalker) push(kind types.TagKind, weight int, link string, index int) {
	w.stack = append(w.stack, scope{
		kind:   kind,
		weight: weight,
		start:  w.buf.Len(),
		link:   link,
		index:  index,
	})
}

func (w *EventWalker) pop(kind types.TagKind) {
	// Find the matching scope (search from top)
	for i := len(w.stack) - 1; i >= 0; i-- {
		if w.stack[i].kind == kind {
			s := w.stack[i]
			w.stack = append(w.stack[:i], w.stack[i+1:]...)
			w.finalize(s)
			return
		}
	}
}

func (w *EventWalker) popAny() {
	if len(w.stack) > 0 {
		s := w.stack[len(w.stack)-1]
		w.stack = w.stack[:len(w.stack)-1]
		w.finalize(s)
	}
}

func (w *EventWalker) finalize(s scope) {
	end := w.buf.Len()
	if end <= s.start {
		return
	}
	w.tags = append(w.tags, types.ProcessedTag{
		Kind:   s.kind,
		Weight: s.weight,
		Start:  s.start,
		End:    end,
		Link:   s.link,
		Index:  s.index,
	})
}

func (w *EventWalker) ensureBlockSpacing() {
	// Blocks are separated by a single newline, as in plain output
	if w.blockCount > 0 && w.buf.TrailingNewlineCount() == 0 {
		w.buf.Write("\n")
	}
}
