package canvas

import "time"

// Option configures a Document created by New.
type Option func(*documentConfig)

type documentConfig struct {
	title       string
	author      string
	creator     string
	compress    bool
	createdAt   time.Time
	defaultSize Size
}

// WithTitle sets the document title metadata.
func WithTitle(title string) Option {
	return func(c *documentConfig) {
		c.title = title
	}
}

// WithAuthor sets the document author metadata.
func WithAuthor(author string) Option {
	return func(c *documentConfig) {
		c.author = author
	}
}

// WithCreator sets the producing application name.
func WithCreator(creator string) Option {
	return func(c *documentConfig) {
		c.creator = creator
	}
}

// WithCompression toggles content stream compression. Enabled by default.
func WithCompression(enabled bool) Option {
	return func(c *documentConfig) {
		c.compress = enabled
	}
}

// WithCreationDate pins the creation timestamp, making output reproducible.
func WithCreationDate(t time.Time) Option {
	return func(c *documentConfig) {
		c.createdAt = t
	}
}

// WithDefaultSize sets the size used when AddPage receives a zero Size.
func WithDefaultSize(size Size) Option {
	return func(c *documentConfig) {
		c.defaultSize = size
	}
}
