package config_test

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/casset/internal/adapters/config"
	"go.trai.ch/casset/internal/adapters/fs"
	"go.trai.ch/casset/internal/core/domain"
	"go.trai.ch/casset/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

const fullConfig = `
url: https://static.example.com
cache_path: public/cache
min: false
deps_max_depth: 3
css_uri_rewriter: relative
cache_key: content
move_imports_to_top: false
show_files: true
html5: false
active_path: site
dirs: {css: styles}
paths:
  site: {path: public}
  vendor: {path: vendor/, js_dir: scripts/}
groups:
  js:
    app:
      files:
        - app.js
        - {file: "vendor::lib.js", min_file: "vendor::lib.min.js"}
      deps: [base]
      min: true
      attr: {defer: defer}
    base:
      files: [base.js]
      inline: true
  css:
    global:
      files: [reset.css]
`

func newLoader(t *testing.T, files fstest.MapFS, environ ...string) *config.Loader {
	t.Helper()
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)
	mockLogger.EXPECT().Warn(gomock.Any()).AnyTimes()

	l := config.NewLoader(mockLogger, fs.NewMapFS(files))
	l.Environ = func() []string { return environ }
	return l
}

func TestLoader_Load_Full(t *testing.T) {
	l := newLoader(t, fstest.MapFS{
		"proj/casset.yaml": {Data: []byte(fullConfig)},
	})

	s, err := l.Load("/proj")
	require.NoError(t, err)

	assert.Equal(t, domain.Settings{
		AssetURL:         "https://static.example.com/",
		RootDir:          "/proj",
		CachePath:        "public/cache/",
		DepsMaxDepth:     3,
		RewriteMode:      domain.RewriteRelative,
		CacheKey:         domain.CacheKeyContent,
		MoveImportsToTop: false,
		ShowFiles:        true,
		ShowFilesInline:  false,
		HTML5:            false,
	}, s.Settings)

	assert.Equal(t, "site", s.Paths.Active())
	assert.Equal(t, []string{"core", "site", "vendor"}, s.Paths.Keys())

	site, err := s.Paths.Resolve("site")
	require.NoError(t, err)
	assert.Equal(t, "public/", site.Root)
	assert.Equal(t, "styles/", site.Dir(domain.TypeCSS))
	assert.Equal(t, domain.DefaultJSDir, site.Dir(domain.TypeJS))

	core, err := s.Paths.Resolve("core")
	require.NoError(t, err)
	assert.Equal(t, "styles/", core.Dir(domain.TypeCSS))

	vendor, err := s.Paths.Resolve("vendor")
	require.NoError(t, err)
	assert.Equal(t, "scripts/", vendor.Dir(domain.TypeJS))

	app, err := s.Groups.Group(domain.TypeJS, "app")
	require.NoError(t, err)
	assert.True(t, app.Min)
	assert.True(t, app.Combine)
	assert.Equal(t, []string{"base"}, app.Deps)
	assert.Equal(t, map[string]string{"defer": "defer"}, app.Attrs)
	assert.Equal(t, []domain.FileRef{
		{Primary: "app.js"},
		{Primary: "vendor::lib.js", MinifiedOverride: "vendor::lib.min.js"},
	}, app.Files)

	base, err := s.Groups.Group(domain.TypeJS, "base")
	require.NoError(t, err)
	assert.False(t, base.Min)
	assert.True(t, base.Inline)

	global, err := s.Groups.Group(domain.TypeCSS, domain.GlobalGroup)
	require.NoError(t, err)
	assert.False(t, global.Min)
	assert.Equal(t, []domain.FileRef{{Primary: "reset.css"}}, global.Files)
}

func TestLoader_Load_Defaults(t *testing.T) {
	l := newLoader(t, fstest.MapFS{
		"proj/casset.yaml": {Data: []byte("groups:\n  js:\n    app:\n      files: [app.js]\n")},
	})

	s, err := l.Load("/proj")
	require.NoError(t, err)

	want := domain.DefaultSettings()
	want.RootDir = "/proj"
	assert.Equal(t, want, s.Settings)

	app, err := s.Groups.Group(domain.TypeJS, "app")
	require.NoError(t, err)
	assert.True(t, app.Enabled)
	assert.True(t, app.Min)
	assert.True(t, app.Combine)
	assert.False(t, app.Inline)
}

func TestLoader_Load_WalksUp(t *testing.T) {
	l := newLoader(t, fstest.MapFS{
		"proj/casset.yaml":          {Data: []byte("root: web\n")},
		"proj/web/templates/x.html": {Data: []byte("")},
	})

	s, err := l.Load("/proj/web/templates")
	require.NoError(t, err)
	assert.Equal(t, "/proj/web", s.Settings.RootDir)
}

func TestLoader_Load_NotFound(t *testing.T) {
	l := newLoader(t, fstest.MapFS{})

	_, err := l.Load("/proj")
	assert.ErrorContains(t, err, domain.ErrConfigNotFound.Error())
}

func TestLoader_Load_ParseError(t *testing.T) {
	l := newLoader(t, fstest.MapFS{
		"proj/casset.yaml": {Data: []byte("groups: [not, a, map")},
	})

	_, err := l.Load("/proj")
	assert.ErrorContains(t, err, domain.ErrConfigParseFailed.Error())
}

func TestLoader_Load_EnvOverrides(t *testing.T) {
	l := newLoader(t, fstest.MapFS{
		"proj/casset.yaml": {Data: []byte("url: /assets\ncache_path: cache\n")},
		"proj/.env":        {Data: []byte("CASSET_URL=https://cdn.example.com\nCASSET_MIN=false\nCASSET_COMBINE=false\n")},
	}, "CASSET_URL=/static", "CASSET_CACHE_PATH=build/cache")

	s, err := l.Load("/proj")
	require.NoError(t, err)

	// The process environment wins over .env.
	assert.Equal(t, "/static/", s.Settings.AssetURL)
	assert.Equal(t, "build/cache/", s.Settings.CachePath)

	defaults := s.Groups.Defaults(domain.TypeJS)
	assert.False(t, defaults.Min)
	assert.False(t, defaults.Combine)
}

func TestLoader_Load_InvalidEnvBool(t *testing.T) {
	l := newLoader(t, fstest.MapFS{
		"proj/casset.yaml": {Data: []byte("")},
	}, "CASSET_MIN=maybe")

	_, err := l.Load("/proj")
	assert.ErrorContains(t, err, domain.ErrConfigParseFailed.Error())
}

func TestLoader_Load_Conditions(t *testing.T) {
	cfg := `
groups:
  js:
    analytics:
      when: env == "production"
      files: [analytics.js]
    app:
      deps: [analytics]
      files:
        - app.js
        - {file: debug.js, when: 'env != "production"'}
        - {file: flags.js, when: 'vars.FEATURE_FLAGS == "on"'}
`
	tests := []struct {
		name          string
		environ       []string
		wantEnabled   bool
		wantAnalytics []domain.FileRef
		wantApp       []domain.FileRef
	}{
		{
			name:          "production",
			environ:       []string{"CASSET_ENV=production", "FEATURE_FLAGS=on"},
			wantEnabled:   true,
			wantAnalytics: []domain.FileRef{{Primary: "analytics.js"}},
			wantApp:       []domain.FileRef{{Primary: "app.js"}, {Primary: "flags.js"}},
		},
		{
			name:          "development",
			environ:       []string{"CASSET_ENV=development"},
			wantEnabled:   false,
			wantAnalytics: nil,
			wantApp:       []domain.FileRef{{Primary: "app.js"}, {Primary: "debug.js"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := newLoader(t, fstest.MapFS{
				"proj/casset.yaml": {Data: []byte(cfg)},
			}, tt.environ...)

			s, err := l.Load("/proj")
			require.NoError(t, err)

			analytics, err := s.Groups.Group(domain.TypeJS, "analytics")
			require.NoError(t, err)
			assert.Equal(t, tt.wantEnabled, analytics.Enabled)
			assert.Equal(t, tt.wantAnalytics, analytics.Files)

			app, err := s.Groups.Group(domain.TypeJS, "app")
			require.NoError(t, err)
			assert.Equal(t, tt.wantApp, app.Files)
		})
	}
}

func TestLoader_Load_InvalidCondition(t *testing.T) {
	tests := []struct {
		name string
		when string
	}{
		{name: "syntax", when: "env ==="},
		{name: "not boolean", when: `env + "x"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := "groups:\n  js:\n    app:\n      when: '" + tt.when + "'\n      files: [app.js]\n"
			l := newLoader(t, fstest.MapFS{
				"proj/casset.yaml": {Data: []byte(cfg)},
			})

			_, err := l.Load("/proj")
			assert.ErrorContains(t, err, domain.ErrInvalidCondition.Error())
		})
	}
}

func TestLoader_Load_InvalidValues(t *testing.T) {
	tests := []struct {
		name    string
		cfg     string
		wantErr error
	}{
		{name: "rewriter", cfg: "css_uri_rewriter: sideways\n", wantErr: domain.ErrUnknownRewriteMode},
		{name: "cache key", cfg: "cache_key: sha\n", wantErr: domain.ErrUnknownCacheKeyMode},
		{name: "active path", cfg: "active_path: nowhere\n", wantErr: domain.ErrUnknownNamespace},
		{name: "group type", cfg: "groups:\n  img:\n    logos:\n      files: [a.png]\n", wantErr: domain.ErrUnknownAssetType},
		{name: "unknown type", cfg: "groups:\n  html:\n    x: {}\n", wantErr: domain.ErrUnknownAssetType},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := newLoader(t, fstest.MapFS{
				"proj/casset.yaml": {Data: []byte(tt.cfg)},
			})

			_, err := l.Load("/proj")
			assert.ErrorContains(t, err, tt.wantErr.Error())
		})
	}
}

func TestLoader_Load_WarnsOnIgnoredMinFile(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)
	mockLogger.EXPECT().Warn(`min_file "lib.min.js" of group "app" has no effect, min is disabled`).Times(1)

	l := config.NewLoader(mockLogger, fs.NewMapFS(fstest.MapFS{
		"proj/casset.yaml": {Data: []byte("min: false\ngroups:\n  js:\n    app:\n      files: [{file: lib.js, min_file: lib.min.js}]\n")},
	}))
	l.Environ = func() []string { return nil }

	_, err := l.Load("/proj")
	require.NoError(t, err)
}
