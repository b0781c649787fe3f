package fs_test

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/casset/internal/adapters/fs"
	"go.trai.ch/casset/internal/core/domain"
	"go.trai.ch/zerr"
)

func newResolverSession() *domain.Session {
	s := domain.NewSession(domain.DefaultSettings())
	s.Paths.RegisterPath("foo", "vendor/foo/", nil)
	s.Paths.RegisterPath("cdn", "//cdn.example.com/lib/", nil)
	return s
}

func newTree() fstest.MapFS {
	return fstest.MapFS{
		"assets/css/bar.css":       {Data: []byte("bar{}")},
		"assets/css/site/a.css":    {Data: []byte("a{}")},
		"assets/css/site/b.css":    {Data: []byte("b{}")},
		"assets/css/site/sub/c.css": {Data: []byte("c{}")},
		"assets/robots.css":        {Data: []byte("r{}")},
		"vendor/foo/css/bar.css":   {Data: []byte("foo{}")},
		"vendor/foo/js/dir.js/x":   {Data: []byte("x")},
	}
}

func TestResolver_Namespaces(t *testing.T) {
	r := fs.NewResolver(fs.NewMapFS(newTree()))
	s := newResolverSession()

	t.Run("explicit namespace uses its type dir", func(t *testing.T) {
		files, err := r.Resolve(s, domain.TypeCSS, "foo::bar.css")
		require.NoError(t, err)
		assert.Equal(t, []domain.ResolvedFile{{Path: "vendor/foo/css/bar.css"}}, files)
	})

	t.Run("bare pattern uses the active namespace", func(t *testing.T) {
		files, err := r.Resolve(s, domain.TypeCSS, "bar.css")
		require.NoError(t, err)
		assert.Equal(t, []domain.ResolvedFile{{Path: "assets/css/bar.css"}}, files)
	})

	t.Run("changing the active namespace", func(t *testing.T) {
		s := newResolverSession()
		require.NoError(t, s.Paths.SetActive("foo"))

		files, err := r.Resolve(s, domain.TypeCSS, "bar.css")
		require.NoError(t, err)
		assert.Equal(t, "vendor/foo/css/bar.css", files[0].Path)
	})

	t.Run("leading slash skips the type dir", func(t *testing.T) {
		files, err := r.Resolve(s, domain.TypeCSS, "core::/robots.css")
		require.NoError(t, err)
		assert.Equal(t, "assets/robots.css", files[0].Path)
	})
}

func TestResolver_Glob(t *testing.T) {
	r := fs.NewResolver(fs.NewMapFS(newTree()))
	s := newResolverSession()

	files, err := r.Resolve(s, domain.TypeCSS, "site/*.css")
	require.NoError(t, err)
	assert.Equal(t, []domain.ResolvedFile{
		{Path: "assets/css/site/a.css"},
		{Path: "assets/css/site/b.css"},
	}, files)

	files, err = r.Resolve(s, domain.TypeCSS, "site/**/*.css")
	require.NoError(t, err)
	assert.Len(t, files, 3)
}

func TestResolver_FiltersDirectories(t *testing.T) {
	r := fs.NewResolver(fs.NewMapFS(newTree()))
	s := newResolverSession()

	_, err := r.Resolve(s, domain.TypeJS, "foo::*.js")
	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrNoFilesMatched.Error())
}

func TestResolver_Remote(t *testing.T) {
	r := fs.NewResolver(fs.NewMapFS(fstest.MapFS{}))
	s := newResolverSession()

	files, err := r.Resolve(s, domain.TypeJS, "cdn::jquery-*.js")
	require.NoError(t, err)
	assert.Equal(t, []domain.ResolvedFile{{Path: "//cdn.example.com/lib/js/jquery-*.js", Remote: true}}, files)
}

func TestResolver_Errors(t *testing.T) {
	r := fs.NewResolver(fs.NewMapFS(newTree()))
	s := newResolverSession()

	_, err := r.Resolve(s, domain.TypeCSS, "nope::bar.css")
	require.Error(t, err)
	zErr, ok := err.(*zerr.Error)
	require.True(t, ok, "expected *zerr.Error, got %T", err)
	assert.Equal(t, "nope", zErr.Metadata()["namespace"])
	assert.Equal(t, "nope::bar.css", zErr.Metadata()["pattern"])

	_, err = r.Resolve(s, domain.TypeCSS, "missing.css")
	require.Error(t, err)
	zErr, ok = err.(*zerr.Error)
	require.True(t, ok, "expected *zerr.Error, got %T", err)
	assert.Equal(t, "assets/css/missing.css", zErr.Metadata()["pattern"])
}

func TestResolver_RootDir(t *testing.T) {
	r := fs.NewResolver(fs.NewMapFS(fstest.MapFS{
		"site/public/assets/js/app.js": {Data: []byte("var a;")},
	}))
	s := domain.NewSession(domain.Settings{RootDir: "site/public"})

	files, err := r.Resolve(s, domain.TypeJS, "app.js")
	require.NoError(t, err)
	assert.Equal(t, "assets/js/app.js", files[0].Path)
}
