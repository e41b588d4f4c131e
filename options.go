package mathnorm

// ConvertOptions holds options for formula preprocessing.
type ConvertOptions struct {
	Config *Config
}

// Option is a function that configures ConvertOptions.
type Option func(*ConvertOptions)

// WithSkipCode sets whether delimiters inside Markdown code spans and code blocks
// are ignored.
func WithSkipCode(enable bool) Option {
	return func(opts *ConvertOptions) {
		opts.Config.SkipCode = enable
	}
}

// WithFoldFullwidth sets whether fullwidth delimiters (＄ ＼（ ＼） ＼［ ＼］) are
// treated as their ASCII forms.
func WithFoldFullwidth(enable bool) Option {
	return func(opts *ConvertOptions) {
		opts.Config.FoldFullwidth = enable
	}
}

// WithWorkers sets the worker limit of PreprocessBatchContext.
func WithWorkers(n int) Option {
	return func(opts *ConvertOptions) {
		opts.Config.Workers = n
	}
}

// WithConfig replaces the whole configuration. Options after it still apply.
func WithConfig(config *Config) Option {
	return func(opts *ConvertOptions) {
		if config == nil {
			return
		}
		c := *config
		opts.Config = &c
	}
}

// defaultConvertOptions returns the default conversion options.
func defaultConvertOptions() *ConvertOptions {
	c := *DefaultConfig()
	return &ConvertOptions{
		Config: &c,
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
