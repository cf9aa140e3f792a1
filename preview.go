package simplemarkdown

import (
	"errors"
	"fmt"
	"image"

	"github.com/riverfjs/simplemarkdown-go/internal/preview"
)

// RenderPreview converts markdown with a DefaultStyler and draws the styled
// text with the preview settings of the configured RenderConfig. Runes
// without a glyph in the Go fonts are drawn as "?" and reported to Logger.
//
// Errors wrap ErrInvalidConfig for unparsable colors and ErrPreviewFont for
// font failures.
func RenderPreview(markdown string, opts ...Option) (*image.RGBA, error) {
	options := applyOptions(opts...)
	styler := NewDefaultStyler(options.Config)
	styled, err := ToStyled(markdown, styler, opts...)
	if err != nil {
		return nil, err
	}

	renderer, err := preview.New(options.Config)
	if err != nil {
		return nil, previewError(err)
	}
	renderer.Logf = Logger.Printf
	defer func() {
		if err := renderer.Close(); err != nil {
			Logger.Printf("RenderPreview: close renderer: %v", err)
		}
	}()
	img, err := renderer.Render(styled.Text, styler.Spans())
	if err != nil {
		return nil, previewError(err)
	}
	return img, nil
}

func previewError(err error) error {
	if errors.Is(err, preview.ErrColor) {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	return fmt.Errorf("%w: %w", ErrPreviewFont, err)
}
