package docpipe

import "log/slog"

// Config configures the document pipeline.
type Config struct {
	// MaxFileSize is the maximum file size to process (default: 100 MB).
	MaxFileSize int64 `json:"max_file_size" yaml:"max_file_size"`

	// MaxImageWidth is the bounded display width for embedded images in
	// pixels (default: 180).
	MaxImageWidth int `json:"max_image_width" yaml:"max_image_width"`

	// HTMLWinRatio controls when the tag-stripped HTML rendition replaces
	// the raw text rendition: it wins when longer than raw × (1+ratio).
	// Empirical, tuned per extraction backend (default: 0.8).
	HTMLWinRatio float64 `json:"html_win_ratio" yaml:"html_win_ratio"`

	// Logger for debug/error messages.
	Logger *slog.Logger `json:"-" yaml:"-"`
}

func (c *Config) defaults() {
	if c.MaxFileSize <= 0 {
		c.MaxFileSize = 100 * 1024 * 1024
	}
	if c.MaxImageWidth <= 0 {
		c.MaxImageWidth = 180
	}
	if c.HTMLWinRatio <= 0 {
		c.HTMLWinRatio = 0.8
	}
	if c.Logger == nil {
		c.Logger = slog.Default()
	}
}
