package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"image/png"

	"github.com/fatih/color"

	sm "github.com/riverfjs/simplemarkdown-go"
	"github.com/riverfjs/simplemarkdown-go/internal/converter"
	"github.com/riverfjs/simplemarkdown-go/internal/parser"
	"github.com/riverfjs/simplemarkdown-go/internal/reference"
)

// renderer converts one markdown document for a mode.
type renderer struct {
	mode      outputMode
	config    *sm.RenderConfig
	opts      []sm.Option
	normalize bool
	colorize  bool
}

func newRenderer(mode outputMode, config *sm.RenderConfig, normalize, colorize bool) *renderer {
	return &renderer{
		mode:      mode,
		config:    config,
		opts:      []sm.Option{sm.WithConfig(config), sm.WithNormalization(normalize)},
		normalize: normalize,
		colorize:  colorize,
	}
}

// styledDocument is the JSON shape of --styled output.
type styledDocument struct {
	Text     string            `json:"text"`
	Entities []sm.Entity       `json:"entities"`
	Tags     []sm.ProcessedTag `json:"tags"`
}

func (r *renderer) render(markdown string) ([]byte, error) {
	switch r.mode {
	case modeStyled:
		return r.styled(markdown)
	case modePNG:
		img, err := sm.RenderPreview(markdown, r.opts...)
		if err != nil {
			return nil, err
		}
		var buf bytes.Buffer
		if err := png.Encode(&buf, img); err != nil {
			return nil, fmt.Errorf("encode png: %w", err)
		}
		return buf.Bytes(), nil
	case modeTags:
		return r.tags(markdown), nil
	case modeCompare:
		return r.compare(markdown)
	}
	return []byte(sm.ToHTML(markdown, r.opts...)), nil
}

func (r *renderer) styled(markdown string) ([]byte, error) {
	styler := sm.NewDefaultStyler(r.config)
	styled, err := sm.ToStyled(markdown, styler, r.opts...)
	if err != nil {
		return nil, err
	}
	doc := styledDocument{
		Text:     styled.Text,
		Entities: styler.Entities(styled.Text),
		Tags:     styled.Tags,
	}
	out, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode json: %w", err)
	}
	return append(out, '\n'), nil
}

// kindColors colors the tag dump by tag family.
var kindColors = map[sm.TagKind]color.Attribute{
	sm.TagParagraph:            color.FgBlue,
	sm.TagHeader:               color.FgMagenta,
	sm.TagList:                 color.FgCyan,
	sm.TagLine:                 color.Faint,
	sm.TagOrderedItem:          color.FgCyan,
	sm.TagUnorderedItem:        color.FgCyan,
	sm.TagLink:                 color.FgGreen,
	sm.TagTextStyle:            color.FgYellow,
	sm.TagAlternativeTextStyle: color.FgRed,
}

func (r *renderer) tags(markdown string) []byte {
	var buf bytes.Buffer
	// Tag offsets refer to the preprocessed source
	source := converter.Preprocess(markdown, r.normalize)
	for _, tag := range sm.FindTags(source) {
		c := color.New(kindColors[tag.Kind])
		if r.colorize {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
		fmt.Fprintf(&buf, "%s weight=%d [%d,%d) %q", c.Sprintf("%-20s", tag.Kind), tag.Weight, tag.Start, tag.End, tag.ExtractText(source))
		if tag.HasExtra() {
			fmt.Fprintf(&buf, " extra=%q", tag.ExtractExtra(source))
		}
		buf.WriteByte('\n')
	}
	return buf.Bytes()
}

// compare diffs goldmark's reading of the document against the simple
// dialect's, then checks that the HTML output is balanced and carries the
// same text as the plain output.
func (r *renderer) compare(markdown string) ([]byte, error) {
	source := converter.Preprocess(markdown, r.normalize)
	plain := converter.Process(source, parser.Parse(source), nil)

	var out bytes.Buffer
	diff, err := reference.Diff("goldmark", "simplemarkdown",
		reference.Outline(reference.Parse(source)), reference.Outline(plain.Text, plain.Tags))
	if err != nil {
		return nil, err
	}
	out.WriteString(diff)

	page := sm.ToHTML(markdown, r.opts...)
	if err := reference.CheckBalanced(page); err != nil {
		fmt.Fprintf(&out, "html: %v\n", err)
		return out.Bytes(), nil
	}
	htmlText, err := reference.PlainText(page)
	if err != nil {
		return nil, fmt.Errorf("html text: %w", err)
	}
	diff, err = reference.Diff("plain", "html", plain.Text, htmlText)
	if err != nil {
		return nil, err
	}
	out.WriteString(diff)
	return out.Bytes(), nil
}
