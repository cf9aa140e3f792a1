package simplemarkdown

// ConvertOptions holds options for markdown conversion.
type ConvertOptions struct {
	Normalize bool
	Config    *RenderConfig
}

// Option is a function that configures ConvertOptions.
type Option func(*ConvertOptions)

// WithNormalization sets whether the input is NFC-normalized before scanning.
// Offsets in the result refer to the normalized text.
func WithNormalization(enable bool) Option {
	return func(opts *ConvertOptions) {
		opts.Normalize = enable
	}
}

// WithConfig sets a custom RenderConfig. A nil config keeps the default.
func WithConfig(config *RenderConfig) Option {
	return func(opts *ConvertOptions) {
		if config != nil {
			opts.Config = config
		}
	}
}

// defaultConvertOptions returns the default conversion options.
func defaultConvertOptions() *ConvertOptions {
	return &ConvertOptions{
		Config: DefaultConfig(),
	}
}

// applyOptions applies the given options to the default options.
func applyOptions(opts ...Option) *ConvertOptions {
	options := defaultConvertOptions()
	for _, opt := range opts {
		opt(options)
	}
	return options
}
