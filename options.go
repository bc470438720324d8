package booknav

import (
	"github.com/tsawler/booknav/resolver"
	"github.com/tsawler/booknav/toc"
)

// resolveOptions holds configuration for a Resolve call.
type resolveOptions struct {
	indexMarker string
	tocDepth    int
}

// defaultOptions returns the default resolve options.
func defaultOptions() resolveOptions {
	return resolveOptions{
		indexMarker: resolver.DefaultIndexMarker,
		tocDepth:    toc.MaxDepth,
	}
}

// Option configures a Resolve call.
type Option func(*resolveOptions)

// WithIndexMarker overrides the filename identifying section index nodes
// in content paths (default "_index.md").
func WithIndexMarker(marker string) Option {
	return func(o *resolveOptions) {
		if marker != "" {
			o.indexMarker = marker
		}
	}
}

// WithTocDepth limits the in-page table of contents to the given number of
// heading levels. Values are clamped to [1, toc.MaxDepth]; the default is
// the full six levels.
func WithTocDepth(depth int) Option {
	return func(o *resolveOptions) {
		if depth < 1 {
			depth = 1
		}
		if depth > toc.MaxDepth {
			depth = toc.MaxDepth
		}
		o.tocDepth = depth
	}
}
