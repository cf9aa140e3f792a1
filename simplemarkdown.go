// Package simplemarkdown 解析一种精简的 Markdown 方言，输出 HTML 或带样式的纯文本
//
// 支持的语法：段落、# 标题、有序与无序列表（按缩进嵌套）、*斜体* / **粗体**
// （* 和 _ 两种写法）、~删除线~、[链接](url) 与 [url] 链接、反斜杠转义和
// "文本块" 引号。代码块、表格、图片等不在支持范围内。
//
// 处理分为四个阶段：符号扫描、tag 组装、文本转换和 HTML 输出。所有偏移量均为
// 字节偏移；需要 UTF-16 偏移时使用 DefaultStyler.Entities。
//
// 主要 API：
//   - ToHTML(): 转换为 HTML 片段
//   - ToStyled(): 转换为纯文本，并通过 Styler 回调应用样式
//   - FindTags() / FindSymbols(): 访问解析器的中间结果
//   - RenderPreview(): 渲染为 PNG 预览图
//
// 示例：
//
//	html := simplemarkdown.ToHTML("# Title\n\nSome *styled* text")
//
//	styler := simplemarkdown.NewDefaultStyler(nil)
//	styled, err := simplemarkdown.ToStyled(markdown, styler)
//	if err != nil {
//	    return err
//	}
//	entities := styler.Entities(styled.Text)
package simplemarkdown

import (
	"github.com/riverfjs/simplemarkdown-go/internal/converter"
	"github.com/riverfjs/simplemarkdown-go/internal/htmlgen"
	"github.com/riverfjs/simplemarkdown-go/internal/parser"
)

// ToHTML 将 Markdown 转换为 HTML 片段
//
// 段落输出为 <p>，标题为 <hN>，列表为嵌套的 <ul>/<ol>，行尾为 <br/>。
// 区块之间的分隔符不会输出，例如 ToHTML("# H\n\nBody") 返回
// "<h1>H</h1><p>Body</p>"。
//
// 参数:
//   - markdown: 原始 Markdown 文本
//   - opts: 转换选项
//
// 返回:
//   - string: HTML 片段，解析不会失败
func ToHTML(markdown string, opts ...Option) string {
	options := applyOptions(opts...)
	text := converter.Preprocess(markdown, options.Normalize)
	result := converter.Process(text, parser.Parse(text), nil)
	return htmlgen.Render(result.Text, result.Tags)
}
