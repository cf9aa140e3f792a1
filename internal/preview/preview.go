// Package preview rasterizes styled clean text with the Go fonts.
package preview

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"slices"
	"strconv"
	"strings"
	"sync"
	"unicode"
	"unicode/utf8"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gobolditalic"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"

	"github.com/riverfjs/simplemarkdown-go/internal/types"
)

var (
	// ErrFont reports that the embedded fonts could not be loaded or sized.
	ErrFont = errors.New("preview: font")
	// ErrColor reports an unparsable color in the preview settings.
	ErrColor = errors.New("preview: color")
)

// fallbackRune replaces runes the Go fonts have no glyph for.
const fallbackRune = '?'

type fontStyle int

const (
	styleRegular fontStyle = iota
	styleBold
	styleItalic
	styleBoldItalic
)

var fontData = [...][]byte{goregular.TTF, gobold.TTF, goitalic.TTF, gobolditalic.TTF}

var (
	parsedFonts     [len(fontData)]*opentype.Font
	parsedFontsErr  error
	parsedFontsOnce sync.Once
)

// loadFonts parses the embedded Go fonts once per process.
func loadFonts() ([len(fontData)]*opentype.Font, error) {
	parsedFontsOnce.Do(func() {
		for i, data := range fontData {
			f, err := opentype.Parse(data)
			if err != nil {
				parsedFontsErr = fmt.Errorf("%w: parse font %d: %w", ErrFont, i, err)
				return
			}
			parsedFonts[i] = f
		}
	})
	return parsedFonts, parsedFontsErr
}

type faceKey struct {
	style fontStyle
	size  float64
}

// Renderer draws styled text. It caches font faces and is not safe for concurrent use.
type Renderer struct {
	// Logf reports runes drawn with the fallback glyph. Nil discards.
	Logf func(format string, args ...any)

	cfg   *types.RenderConfig
	fonts [len(fontData)]*opentype.Font
	faces map[faceKey]font.Face

	background color.RGBA
	foreground color.RGBA
	link       color.RGBA
}

// New creates a renderer for the preview settings of cfg.
func New(cfg *types.RenderConfig) (*Renderer, error) {
	fonts, err := loadFonts()
	if err != nil {
		return nil, err
	}
	r := &Renderer{cfg: cfg, fonts: fonts, faces: make(map[faceKey]font.Face)}
	for _, c := range []struct {
		name string
		dst  *color.RGBA
		src  string
	}{
		{"background", &r.background, cfg.Preview.Background},
		{"foreground", &r.foreground, cfg.Preview.Foreground},
		{"link_color", &r.link, cfg.Preview.LinkColor},
	} {
		if *c.dst, err = ParseColor(c.src); err != nil {
			return nil, fmt.Errorf("%w: %s: %w", ErrColor, c.name, err)
		}
	}
	return r, nil
}

// Close releases the cached font faces.
func (r *Renderer) Close() error {
	var firstErr error
	for key, face := range r.faces {
		if err := face.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
		delete(r.faces, key)
	}
	return firstErr
}

func (r *Renderer) face(style fontStyle, size float64) (font.Face, error) {
	key := faceKey{style, size}
	if face, ok := r.faces[key]; ok {
		return face, nil
	}
	face, err := opentype.NewFace(r.fonts[style], &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: create face: %w", ErrFont, err)
	}
	r.faces[key] = face
	return face, nil
}

// attrs is the resolved style of one byte of text.
type attrs struct {
	bold   bool
	italic bool
	strike bool
	link   bool
	scale  float64
	gap    int
}

func (a attrs) style() fontStyle {
	switch {
	case a.bold && a.italic:
		return styleBoldItalic
	case a.bold:
		return styleBold
	case a.italic:
		return styleItalic
	}
	return styleRegular
}

func (r *Renderer) resolve(text string, spans []types.Span) []attrs {
	resolved := make([]attrs, len(text))
	for i := range resolved {
		resolved[i].scale = 1
	}
	for _, span := range spans {
		start := max(0, span.Start)
		end := min(len(text), span.End)
		for i := start; i < end; i++ {
			a := &resolved[i]
			switch span.Kind {
			case types.TagTextStyle:
				a.italic = a.italic || span.Weight != 2
				a.bold = a.bold || span.Weight >= 2
			case types.TagAlternativeTextStyle:
				a.strike = true
			case types.TagLink:
				a.link = true
			case types.TagHeader:
				a.bold = true
				a.scale = r.cfg.HeaderScaleFor(span.Weight)
			case types.TagSectionSpacer:
				a.gap = span.Gap
			}
		}
	}
	return resolved
}

// run is a piece of text drawn with one face.
type run struct {
	text     string
	x        int
	baseline int
	width    int
	face     font.Face
	attrs    attrs
}

// Render lays out text with word wrapping and draws it. Each span colors or
// decorates its range; section spacers set the height of the empty line they cover.
func (r *Renderer) Render(text string, spans []types.Span) (*image.RGBA, error) {
	p := r.cfg.Preview
	resolved := r.resolve(text, spans)
	right := p.Width - p.Margin

	var runs []run
	missing := make(map[rune]bool)
	y := p.Margin
	lineStart := 0
	for lineStart <= len(text) {
		lineEnd := strings.IndexByte(text[lineStart:], '\n')
		if lineEnd < 0 {
			lineEnd = len(text)
		} else {
			lineEnd += lineStart
		}

		if lineStart == lineEnd {
			gap := 0
			if lineStart < len(text) {
				gap = resolved[lineStart].gap
			}
			if gap == 0 {
				gap = int(p.FontSize * p.LineSpacing)
			}
			y += gap
			lineStart = lineEnd + 1
			continue
		}

		scale := 1.0
		for i := lineStart; i < lineEnd; i++ {
			scale = max(scale, resolved[i].scale)
		}
		size := p.FontSize * scale
		lineHeight := int(size * p.LineSpacing)
		regular, err := r.face(styleRegular, size)
		if err != nil {
			return nil, err
		}
		ascent := regular.Metrics().Ascent.Ceil()

		x := p.Margin
		for _, seg := range segments(text, resolved, lineStart, lineEnd) {
			a := resolved[seg.start]
			face, err := r.face(a.style(), size)
			if err != nil {
				return nil, err
			}
			piece := withFallback(face, text[seg.start:seg.end], missing)
			width := font.MeasureString(face, piece).Ceil()
			if x+width > right && x > p.Margin {
				y += lineHeight
				x = p.Margin
				if seg.space {
					continue
				}
			}
			runs = append(runs, run{text: piece, x: x, baseline: y + ascent, width: width, face: face, attrs: a})
			x += width
		}
		y += lineHeight
		lineStart = lineEnd + 1
	}

	if len(missing) > 0 && r.Logf != nil {
		runes := make([]rune, 0, len(missing))
		for c := range missing {
			runes = append(runes, c)
		}
		slices.Sort(runes)
		r.Logf("preview: no glyph for %q, drawn as %q", string(runes), fallbackRune)
	}

	img := image.NewRGBA(image.Rect(0, 0, p.Width, y+p.Margin))
	draw.Draw(img, img.Bounds(), image.NewUniform(r.background), image.Point{}, draw.Src)
	for _, rn := range runs {
		r.drawRun(img, rn)
	}
	return img, nil
}

func (r *Renderer) drawRun(img *image.RGBA, rn run) {
	col := r.foreground
	if rn.attrs.link {
		col = r.link
	}
	src := image.NewUniform(col)
	d := font.Drawer{Dst: img, Src: src, Face: rn.face, Dot: fixed.P(rn.x, rn.baseline)}
	d.DrawString(rn.text)

	if rn.attrs.strike {
		y := rn.baseline - rn.face.Metrics().XHeight.Ceil()/2
		draw.Draw(img, image.Rect(rn.x, y, rn.x+rn.width, y+1), src, image.Point{}, draw.Src)
	}
	if rn.attrs.link {
		y := rn.baseline + 2
		draw.Draw(img, image.Rect(rn.x, y, rn.x+rn.width, y+1), src, image.Point{}, draw.Src)
	}
}

// withFallback replaces the runes face cannot draw and records them in missing.
func withFallback(face font.Face, piece string, missing map[rune]bool) string {
	var sb *strings.Builder
	for i, c := range piece {
		if _, ok := face.GlyphAdvance(c); ok || unicode.IsSpace(c) {
			if sb != nil {
				sb.WriteRune(c)
			}
			continue
		}
		if sb == nil {
			sb = &strings.Builder{}
			sb.WriteString(piece[:i])
		}
		missing[c] = true
		sb.WriteRune(fallbackRune)
	}
	if sb == nil {
		return piece
	}
	return sb.String()
}

type segment struct {
	start, end int
	space      bool
}

// segments splits a line where the style changes or whitespace begins or ends.
func segments(text string, resolved []attrs, start, end int) []segment {
	var result []segment
	segStart := start
	prevSpace := false
	for i := start; i < end; {
		c, size := utf8.DecodeRuneInString(text[i:])
		space := unicode.IsSpace(c)
		if i > segStart && (space != prevSpace || resolved[i] != resolved[segStart]) {
			result = append(result, segment{segStart, i, prevSpace})
			segStart = i
		}
		prevSpace = space
		i += size
	}
	if segStart < end {
		result = append(result, segment{segStart, end, prevSpace})
	}
	return result
}

// ParseColor parses "#rgb" or "#rrggbb".
func ParseColor(s string) (color.RGBA, error) {
	hex := strings.TrimPrefix(s, "#")
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	if len(hex) != 6 || !strings.HasPrefix(s, "#") {
		return color.RGBA{}, fmt.Errorf("invalid color %q", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("invalid color %q: %w", s, err)
	}
	return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xff}, nil
}
