package scenefile

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/gogpu/motion/text"
)

// Layouter names accepted by the layouter fields of a document.
const (
	// LayouterCluster lays out one monospace glyph per grapheme cluster.
	LayouterCluster = "cluster"
	// LayouterShaped shapes with HarfBuzz, using Go Regular unless a font
	// file is named.
	LayouterShaped = "shaped"
)

// BuildOption configures Build.
type BuildOption func(*buildConfig)

type buildConfig struct {
	shaper  string
	baseDir string
}

// WithShaper sets the layouter used by text layers when neither the layer
// nor the document names one.
func WithShaper(name string) BuildOption {
	return func(c *buildConfig) { c.shaper = name }
}

// WithBaseDir sets the directory relative font paths are resolved
// against. The default is the working directory.
func WithBaseDir(dir string) BuildOption {
	return func(c *buildConfig) { c.baseDir = dir }
}

func validLayouter(name string) bool {
	return name == LayouterCluster || name == LayouterShaped
}

// goRegular is shared by every build; shaped layouts are cached inside it.
var goRegular = sync.OnceValues(func() (*text.GoTextLayouter, error) {
	return text.NewGoTextLayouter()
})

// layouter returns the layouter for a text layer, or nil for the layer
// default.
func (b *builder) layouter(def *Layer) (text.Layouter, error) {
	name := def.Layouter
	if name == "" && def.Font != "" {
		name = LayouterShaped
	}
	if name == "" {
		name = b.shaper
	}
	switch name {
	case LayouterCluster:
		if def.Font != "" {
			return nil, fmt.Errorf("%w: font %q needs the %s layouter", ErrUnknownLayouter, def.Font, LayouterShaped)
		}
		return nil, nil
	case LayouterShaped:
		if def.Font == "" {
			return goRegular()
		}
		return b.fontLayouter(def.Font)
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownLayouter, name)
}

// fontLayouter parses each font file once per build.
func (b *builder) fontLayouter(path string) (text.Layouter, error) {
	if !filepath.IsAbs(path) && b.cfg.baseDir != "" {
		path = filepath.Join(b.cfg.baseDir, path)
	}
	if l, ok := b.shapers[path]; ok {
		return l, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading font: %w", err)
	}
	l, err := text.NewGoTextLayouter(text.WithFont(data))
	if err != nil {
		return nil, fmt.Errorf("font %s: %w", path, err)
	}
	b.shapers[path] = l
	return l, nil
}
