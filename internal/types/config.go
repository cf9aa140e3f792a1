package types

import (
	"errors"
	"fmt"
	"strings"
)

// PreviewConfig controls the raster preview renderer.
type PreviewConfig struct {
	Width       int     `yaml:"width"`
	Margin      int     `yaml:"margin"`
	FontSize    float64 `yaml:"font_size"`
	LineSpacing float64 `yaml:"line_spacing"`
	Background  string  `yaml:"background"`
	Foreground  string  `yaml:"foreground"`
	LinkColor   string  `yaml:"link_color"`
}

// RenderConfig holds list tokens, spacing and preview settings.
type RenderConfig struct {
	// BulletTokens are indexed by list depth; the last one repeats for deeper levels.
	BulletTokens []string `yaml:"bullet_tokens"`
	// OrderedFormat is a fmt verb string receiving the 1-based item index.
	OrderedFormat string `yaml:"ordered_format"`
	// ContinuationToken is inserted before list lines that don't start a new item.
	ContinuationToken string `yaml:"continuation_token"`
	// HeaderScale holds the relative text size for header levels 1..6.
	HeaderScale    []float64     `yaml:"header_scale"`
	SectionSpacing int           `yaml:"section_spacing"`
	HeaderSpacing  int           `yaml:"header_spacing"`
	Preview        PreviewConfig `yaml:"preview"`
}

// DefaultRenderConfig returns the built-in configuration.
func DefaultRenderConfig() *RenderConfig {
	return &RenderConfig{
		BulletTokens:      []string{"• ", "◦ ", "▪ "},
		OrderedFormat:     "%d. ",
		ContinuationToken: "  ",
		HeaderScale:       []float64{1.5, 1.4, 1.3, 1.2, 1.1, 1.0},
		SectionSpacing:    8,
		HeaderSpacing:     16,
		Preview: PreviewConfig{
			Width:       800,
			Margin:      24,
			FontSize:    16,
			LineSpacing: 1.4,
			Background:  "#ffffff",
			Foreground:  "#111111",
			LinkColor:   "#1a4fd8",
		},
	}
}

// BulletToken returns the unordered list token for a nesting weight.
func (c *RenderConfig) BulletToken(weight int) string {
	if len(c.BulletTokens) == 0 {
		return ""
	}
	idx := weight - 1
	if idx < 0 {
		idx = 0
	}
	if idx >= len(c.BulletTokens) {
		idx = len(c.BulletTokens) - 1
	}
	return c.BulletTokens[idx]
}

// OrderedToken formats the ordered list token for a 1-based index.
func (c *RenderConfig) OrderedToken(index int) string {
	if !strings.Contains(c.OrderedFormat, "%") {
		return c.OrderedFormat
	}
	return fmt.Sprintf(c.OrderedFormat, index)
}

// HeaderScaleFor returns the relative size for a header weight, 1 when unknown.
func (c *RenderConfig) HeaderScaleFor(weight int) float64 {
	if weight < 1 || weight > len(c.HeaderScale) {
		return 1
	}
	return c.HeaderScale[weight-1]
}

// SpacingBetween returns the spacer size used between two sections.
func (c *RenderConfig) SpacingBetween(prev, next TagKind) int {
	if next == TagHeader && prev != TagHeader {
		return c.HeaderSpacing
	}
	return c.SectionSpacing
}

// Validate checks that sizes are usable. Colors are checked by the preview renderer.
func (c *RenderConfig) Validate() error {
	var errs []error
	if c.SectionSpacing < 0 || c.HeaderSpacing < 0 {
		errs = append(errs, errors.New("spacing must not be negative"))
	}
	for i, scale := range c.HeaderScale {
		if scale <= 0 {
			errs = append(errs, fmt.Errorf("header_scale[%d] must be positive, got %v", i, scale))
		}
	}
	if strings.Count(c.OrderedFormat, "%") > 1 {
		errs = append(errs, fmt.Errorf("ordered_format %q has more than one verb", c.OrderedFormat))
	}
	p := c.Preview
	if p.Margin < 0 {
		errs = append(errs, fmt.Errorf("preview.margin must not be negative, got %d", p.Margin))
	}
	if p.Width <= 2*p.Margin {
		errs = append(errs, fmt.Errorf("preview.width %d leaves no room inside margin %d", p.Width, p.Margin))
	}
	if p.FontSize <= 0 {
		errs = append(errs, fmt.Errorf("preview.font_size must be positive, got %v", p.FontSize))
	}
	if p.LineSpacing < 1 {
		errs = append(errs, fmt.Errorf("preview.line_spacing must be at least 1, got %v", p.LineSpacing))
	}
	return errors.Join(errs...)
}
