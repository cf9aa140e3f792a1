package simplemarkdown

import "errors"

var (
	// ErrNilStyler is returned by ToStyled when no styler is given.
	ErrNilStyler = errors.New("simplemarkdown: nil styler")
	// ErrStyleCallback wraps an error returned by a Styler callback.
	ErrStyleCallback = errors.New("simplemarkdown: style callback failed")

	ErrConfigRead    = errors.New("simplemarkdown: read config")
	ErrConfigParse   = errors.New("simplemarkdown: parse config")
	ErrInvalidConfig = errors.New("simplemarkdown: invalid config")
	// ErrPreviewFont reports that the preview fonts could not be loaded or sized.
	ErrPreviewFont = errors.New("simplemarkdown: preview font")
)
