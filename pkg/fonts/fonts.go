// Package fonts provides the typeface used to draw the time phrase.
//
// The Go fonts ship inside golang.org/x/image, so the binary needs no font
// files on disk. The parsed font source is shared and built on first use.
package fonts

import (
	"sync"

	"github.com/gogpu/gg/text"
	"golang.org/x/image/font/gofont/gomedium"
	"golang.org/x/image/font/gofont/goregular"
)

// Weight selects one of the embedded faces.
type Weight int

const (
	Regular Weight = iota
	Medium
)

// TTF returns the raw font data for w.
func TTF(w Weight) []byte {
	if w == Medium {
		return gomedium.TTF
	}
	return goregular.TTF
}

// Cache for parsed font sources (built once on first access).
var (
	sources    [2]*text.FontSource
	errs       [2]error
	sourceOnce [2]sync.Once
)

// Source returns the shared parsed font source for w.
func Source(w Weight) (*text.FontSource, error) {
	i := 0
	if w == Medium {
		i = 1
	}
	sourceOnce[i].Do(func() {
		sources[i], errs[i] = text.NewFontSource(TTF(w))
	})
	return sources[i], errs[i]
}

// Face returns a face of w at size points.
func Face(w Weight, size float64) (text.Face, error) {
	src, err := Source(w)
	if err != nil {
		return nil, err
	}
	return src.Face(size), nil
}

// FontFamily is the CSS font-family used by vector output.
const FontFamily = "Go"

// FallbackFontFamily lists fallbacks for viewers without the Go fonts.
const FallbackFontFamily = `'Helvetica Neue', Arial, sans-serif`
