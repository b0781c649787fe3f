// Package minify wraps the tdewolff minifiers behind ports.Minifier.
package minify

import (
	"github.com/tdewolff/minify/v2"
	"github.com/tdewolff/minify/v2/css"
	"github.com/tdewolff/minify/v2/js"
	"go.trai.ch/casset/internal/core/domain"
	"go.trai.ch/casset/internal/core/ports"
	"go.trai.ch/zerr"
)

// Media types the minifiers are registered under.
const (
	MediaTypeCSS = "text/css"
	MediaTypeJS  = "application/javascript"
)

// Minifier minifies a single media type.
type Minifier struct {
	m         *minify.M
	mediatype string
}

var _ ports.Minifier = (*Minifier)(nil)

// NewCSSMinifier creates the stylesheet minifier.
func NewCSSMinifier() *Minifier {
	m := minify.New()
	m.AddFunc(MediaTypeCSS, css.Minify)
	return &Minifier{m: m, mediatype: MediaTypeCSS}
}

// NewJSMinifier creates the script minifier.
// Malformed scripts are reported as errors instead of being passed through.
func NewJSMinifier() *Minifier {
	m := minify.New()
	m.AddFunc(MediaTypeJS, js.Minify)
	return &Minifier{m: m, mediatype: MediaTypeJS}
}

// Minify implements ports.Minifier.
func (m *Minifier) Minify(src string) (string, error) {
	out, err := m.m.String(m.mediatype, src)
	if err != nil {
		return "", zerr.With(zerr.Wrap(err, domain.ErrMinifyFailed.Error()), "mediatype", m.mediatype)
	}
	return out, nil
}
