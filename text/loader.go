package text

import (
	"golang.org/x/image/math/fixed"
)

// DefaultSourceCacheSize is the soft limit of the FileLoader source cache.
const DefaultSourceCacheSize = 16

// FileLoader opens faces from font files. Parsed files are kept in an LRU
// cache keyed by path, so repeated text rendering with the same font reads
// and parses the file once.
//
// FileLoader is safe for concurrent use; the faces it returns are not.
type FileLoader struct {
	sources *Cache[string, *FontSource]
}

// LoaderOption configures a FileLoader.
type LoaderOption func(*loaderConfig)

type loaderConfig struct {
	cacheSize int
}

// WithCacheSize sets the soft limit of the source cache. 0 means unlimited.
func WithCacheSize(n int) LoaderOption {
	return func(c *loaderConfig) {
		c.cacheSize = max(n, 0)
	}
}

// NewFileLoader creates a FileLoader.
func NewFileLoader(opts ...LoaderOption) *FileLoader {
	cfg := loaderConfig{cacheSize: DefaultSourceCacheSize}
	for _, opt := range opts {
		opt(&cfg)
	}
	return &FileLoader{
		sources: NewCache(cfg.cacheSize, func(path string, s *FontSource) {
			logger().Debug("text: font source evicted", "path", path)
			_ = s.Close()
		}),
	}
}

// Source returns the parsed font at path, loading it on first use.
func (l *FileLoader) Source(path string) (*FontSource, error) {
	return l.sources.GetOrLoad(path, func() (*FontSource, error) {
		s, err := NewFontSourceFromFile(path)
		if err != nil {
			return nil, err
		}
		logger().Debug("text: font source loaded", "path", path, "family", s.Name())
		return s, nil
	})
}

// Open returns a face for the font at path with the given character size
// in 26.6 points at 72 dpi.
func (l *FileLoader) Open(path string, size fixed.Int26_6) (Face, error) {
	s, err := l.Source(path)
	if err != nil {
		return nil, err
	}
	return s.Face(size)
}

// Close drops every cached source.
func (l *FileLoader) Close() error {
	l.sources.Clear()
	return nil
}
