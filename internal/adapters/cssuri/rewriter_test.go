package cssuri_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/casset/internal/adapters/cssuri"
	"go.trai.ch/casset/internal/core/domain"
	"go.trai.ch/zerr"
)

func TestRewriter_Modes(t *testing.T) {
	const css = "a{background:url(img/x.png)}"

	tests := []struct {
		mode domain.RewriteMode
		want string
	}{
		{domain.RewriteAbsolute, "a{background:url(/site/css/img/x.png)}"},
		{domain.RewriteRelative, "a{background:url(../css/img/x.png)}"},
		{domain.RewriteNone, css},
	}

	r := cssuri.NewRewriter()
	for _, tt := range tests {
		t.Run(string(tt.mode), func(t *testing.T) {
			got, err := r.Rewrite(css, "site/css", "site/cache", tt.mode)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRewriter_References(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"double quoted", `a{b:url("img/x.png")}`, `a{b:url("../css/img/x.png")}`},
		{"single quoted with spaces", `a{b:url( 'img/x.png' )}`, `a{b:url('../css/img/x.png')}`},
		{"parent directory", `a{b:url(../fonts/f.woff)}`, `a{b:url(../fonts/f.woff)}`},
		{"query and fragment", `a{b:url(font.svg?v=2#icon)}`, `a{b:url(../css/font.svg?v=2#icon)}`},
		{"scheme", `a{b:url(https://cdn.example.com/x.png)}`, `a{b:url(https://cdn.example.com/x.png)}`},
		{"protocol relative", `a{b:url(//cdn.example.com/x.png)}`, `a{b:url(//cdn.example.com/x.png)}`},
		{"root relative", `a{b:url(/img/x.png)}`, `a{b:url(/img/x.png)}`},
		{"data uri", `a{b:url(data:image/png;base64,AAAA)}`, `a{b:url(data:image/png;base64,AAAA)}`},
		{"fragment only", `a{b:url(#mask)}`, `a{b:url(#mask)}`},
		{"import string", `@import "base.css";`, `@import "../css/base.css";`},
		{"import url", `@import url(base.css) screen;`, `@import url(../css/base.css) screen;`},
		{"other strings untouched", `a:after{content:"img/x.png"}`, `a:after{content:"img/x.png"}`},
	}

	r := cssuri.NewRewriter()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := r.Rewrite(tt.in, "site/css", "site/cache", domain.RewriteRelative)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRewriter_AbsoluteBaseURL(t *testing.T) {
	r := cssuri.NewRewriter(cssuri.WithBaseURL("/static"))

	got, err := r.Rewrite("a{b:url(../img/x.png)}", "assets/css", "", domain.RewriteAbsolute)
	require.NoError(t, err)
	assert.Equal(t, "a{b:url(/static/assets/img/x.png)}", got)
}

func TestRewriter_RelativeToRoot(t *testing.T) {
	r := cssuri.NewRewriter()

	got, err := r.Rewrite("a{b:url(img/x.png)}", "assets/css", "", domain.RewriteRelative)
	require.NoError(t, err)
	assert.Equal(t, "a{b:url(assets/css/img/x.png)}", got)
}

func TestRewriter_RemoteOrigin(t *testing.T) {
	tests := []struct {
		name   string
		origin string
		in     string
		want   string
	}{
		{"sibling", "https://cdn.example.com/lib/css", "a{b:url(img/x.png)}", "a{b:url(https://cdn.example.com/lib/css/img/x.png)}"},
		{"parent", "https://cdn.example.com/lib/css", "a{b:url(../font/f.woff?v=1)}", "a{b:url(https://cdn.example.com/lib/font/f.woff?v=1)}"},
		{"import", "https://cdn.example.com/lib", `@import "base.css";`, `@import "https://cdn.example.com/lib/base.css";`},
		{"protocol relative origin", "//cdn.example.com/lib", "a{b:url(x.png)}", "a{b:url(//cdn.example.com/lib/x.png)}"},
		{"root relative untouched", "https://cdn.example.com/lib", "a{b:url(/x.png)}", "a{b:url(/x.png)}"},
	}

	r := cssuri.NewRewriter()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, mode := range []domain.RewriteMode{domain.RewriteAbsolute, domain.RewriteRelative} {
				got, err := r.Rewrite(tt.in, tt.origin, "assets/cache", mode)
				require.NoError(t, err)
				assert.Equal(t, tt.want, got, string(mode))
			}
		})
	}
}

func TestRewriter_UnclosedInputKept(t *testing.T) {
	r := cssuri.NewRewriter()

	in := "a{b:url(img/x.png)} b{content:\"open"
	got, err := r.Rewrite(in, "site/css", "site/cache", domain.RewriteRelative)
	require.NoError(t, err)
	assert.Equal(t, "a{b:url(../css/img/x.png)} b{content:\"open", got)
}

func TestRewriter_UnknownMode(t *testing.T) {
	r := cssuri.NewRewriter()

	_, err := r.Rewrite("a{}", "", "", domain.RewriteMode("sideways"))
	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrUnknownRewriteMode.Error())

	zErr, ok := err.(*zerr.Error)
	require.True(t, ok, "expected *zerr.Error, got %T", err)
	assert.Equal(t, "sideways", zErr.Metadata()["mode"])
}
