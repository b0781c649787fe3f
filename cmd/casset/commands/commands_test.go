package commands_test

import (
	"bytes"
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/casset/cmd/casset/commands"
	"go.trai.ch/casset/internal/app"
	"go.trai.ch/casset/internal/build"
	"go.trai.ch/casset/internal/core/domain"
)

type mockApp struct {
	renderFunc   func(ctx context.Context, w io.Writer, groups []string, opts app.RenderOptions) error
	filepathFunc func(ctx context.Context, w io.Writer, pattern string, t domain.AssetType, addURL bool) error
	imgFunc      func(ctx context.Context, w io.Writer, patterns []string, alt string, attrs map[string]string) error
	cleanFunc    func(ctx context.Context, opts app.CleanOptions) error
	publishFunc  func(ctx context.Context, groups []string, types []domain.AssetType) error

	jsonLogs, quiet bool
	tracing         bool
	flushed         bool
}

func (m *mockApp) Render(ctx context.Context, w io.Writer, groups []string, opts app.RenderOptions) error {
	if m.renderFunc != nil {
		return m.renderFunc(ctx, w, groups, opts)
	}
	return nil
}

func (m *mockApp) Filepath(ctx context.Context, w io.Writer, pattern string, t domain.AssetType, addURL bool) error {
	if m.filepathFunc != nil {
		return m.filepathFunc(ctx, w, pattern, t, addURL)
	}
	return nil
}

func (m *mockApp) Img(ctx context.Context, w io.Writer, patterns []string, alt string, attrs map[string]string) error {
	if m.imgFunc != nil {
		return m.imgFunc(ctx, w, patterns, alt, attrs)
	}
	return nil
}

func (m *mockApp) Clean(ctx context.Context, opts app.CleanOptions) error {
	if m.cleanFunc != nil {
		return m.cleanFunc(ctx, opts)
	}
	return nil
}

func (m *mockApp) Publish(ctx context.Context, groups []string, types []domain.AssetType) error {
	if m.publishFunc != nil {
		return m.publishFunc(ctx, groups, types)
	}
	return nil
}

func (m *mockApp) ConfigureLogging(json, quiet bool) {
	m.jsonLogs = json
	m.quiet = quiet
}

func (m *mockApp) EnableTracing() func(context.Context) error {
	m.tracing = true
	return func(context.Context) error {
		m.flushed = true
		return nil
	}
}

func execute(t *testing.T, m *mockApp, args ...string) (string, error) {
	t.Helper()
	cli := commands.New(m)
	buf := new(bytes.Buffer)
	cli.SetOutput(buf, buf)
	cli.SetArgs(args)
	err := cli.Execute(context.Background())
	return buf.String(), err
}

func TestCommands_Render(t *testing.T) {
	t.Run("wires flags correctly", func(t *testing.T) {
		var (
			capturedGroups []string
			capturedOpts   app.RenderOptions
		)
		mock := &mockApp{
			renderFunc: func(_ context.Context, w io.Writer, groups []string, opts app.RenderOptions) error {
				capturedGroups = groups
				capturedOpts = opts
				_, err := io.WriteString(w, "<script></script>\n")
				return err
			},
		}

		out, err := execute(t, mock, "render", "app", "lib",
			"--type", "js", "--no-tags", "--page-dir", "pages", "--attr", "defer=defer")
		require.NoError(t, err)
		assert.Equal(t, "<script></script>\n", out)
		assert.Equal(t, []string{"app", "lib"}, capturedGroups)
		assert.Equal(t, []domain.AssetType{domain.TypeJS}, capturedOpts.Types)
		assert.True(t, capturedOpts.NoTags)
		assert.Equal(t, "pages", capturedOpts.PageDir)
		assert.Equal(t, map[string]string{"defer": "defer"}, capturedOpts.Attrs)
		assert.Nil(t, capturedOpts.Inline)
	})

	t.Run("inline is only set when given", func(t *testing.T) {
		var capturedOpts app.RenderOptions
		mock := &mockApp{
			renderFunc: func(_ context.Context, _ io.Writer, _ []string, opts app.RenderOptions) error {
				capturedOpts = opts
				return nil
			},
		}

		_, err := execute(t, mock, "render", "--inline=false")
		require.NoError(t, err)
		require.NotNil(t, capturedOpts.Inline)
		assert.False(t, *capturedOpts.Inline)
		assert.Empty(t, capturedOpts.Types)
	})

	t.Run("rejects image type", func(t *testing.T) {
		mock := &mockApp{
			renderFunc: func(context.Context, io.Writer, []string, app.RenderOptions) error {
				panic("should not be called")
			},
		}

		_, err := execute(t, mock, "render", "--type", "img")
		require.Error(t, err)
		assert.ErrorContains(t, err, domain.ErrUnknownAssetType.Error())
	})

	t.Run("returns error on render failure", func(t *testing.T) {
		mock := &mockApp{
			renderFunc: func(context.Context, io.Writer, []string, app.RenderOptions) error {
				return errors.New("simulated error")
			},
		}

		_, err := execute(t, mock, "render")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "simulated error")
	})
}

func TestCommands_Filepath(t *testing.T) {
	var (
		capturedPattern string
		capturedType    domain.AssetType
		capturedURL     bool
	)
	mock := &mockApp{
		filepathFunc: func(_ context.Context, _ io.Writer, pattern string, typ domain.AssetType, addURL bool) error {
			capturedPattern = pattern
			capturedType = typ
			capturedURL = addURL
			return nil
		},
	}

	_, err := execute(t, mock, "filepath", "vendor::*.css", "--type", "css", "--url")
	require.NoError(t, err)
	assert.Equal(t, "vendor::*.css", capturedPattern)
	assert.Equal(t, domain.TypeCSS, capturedType)
	assert.True(t, capturedURL)

	_, err = execute(t, mock, "filepath")
	require.Error(t, err)
}

func TestCommands_Img(t *testing.T) {
	var (
		capturedPatterns []string
		capturedAlt      string
		capturedAttrs    map[string]string
	)
	mock := &mockApp{
		imgFunc: func(_ context.Context, _ io.Writer, patterns []string, alt string, attrs map[string]string) error {
			capturedPatterns = patterns
			capturedAlt = alt
			capturedAttrs = attrs
			return nil
		},
	}

	_, err := execute(t, mock, "img", "logo.png", "icons/*.png", "--alt", "Logo", "--attr", "class=brand")
	require.NoError(t, err)
	assert.Equal(t, []string{"logo.png", "icons/*.png"}, capturedPatterns)
	assert.Equal(t, "Logo", capturedAlt)
	assert.Equal(t, map[string]string{"class": "brand"}, capturedAttrs)
}

func TestCommands_Clean(t *testing.T) {
	t.Run("defaults to every artifact", func(t *testing.T) {
		var capturedOpts app.CleanOptions
		mock := &mockApp{
			cleanFunc: func(_ context.Context, opts app.CleanOptions) error {
				capturedOpts = opts
				return nil
			},
		}

		_, err := execute(t, mock, "clean")
		require.NoError(t, err)
		assert.True(t, capturedOpts.Before.IsZero())
		assert.Empty(t, capturedOpts.Type)
	})

	t.Run("parses duration and type", func(t *testing.T) {
		var capturedOpts app.CleanOptions
		mock := &mockApp{
			cleanFunc: func(_ context.Context, opts app.CleanOptions) error {
				capturedOpts = opts
				return nil
			},
		}

		start := time.Now()
		_, err := execute(t, mock, "clean", "--before", "24h", "--type", "css")
		require.NoError(t, err)
		assert.Equal(t, domain.TypeCSS, capturedOpts.Type)
		assert.WithinDuration(t, start.Add(-24*time.Hour), capturedOpts.Before, time.Minute)
	})

	t.Run("parses RFC3339 time", func(t *testing.T) {
		var capturedOpts app.CleanOptions
		mock := &mockApp{
			cleanFunc: func(_ context.Context, opts app.CleanOptions) error {
				capturedOpts = opts
				return nil
			},
		}

		_, err := execute(t, mock, "clean", "--before", "2024-01-02T03:04:05Z")
		require.NoError(t, err)
		assert.Equal(t, time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC), capturedOpts.Before.UTC())
	})

	t.Run("rejects invalid before", func(t *testing.T) {
		mock := &mockApp{
			cleanFunc: func(context.Context, app.CleanOptions) error {
				panic("should not be called")
			},
		}

		_, err := execute(t, mock, "clean", "--before", "yesterday")
		require.Error(t, err)
		assert.ErrorContains(t, err, "invalid --before")
	})
}

func TestCommands_Publish(t *testing.T) {
	var (
		capturedGroups []string
		capturedTypes  []domain.AssetType
	)
	mock := &mockApp{
		publishFunc: func(_ context.Context, groups []string, types []domain.AssetType) error {
			capturedGroups = groups
			capturedTypes = types
			return nil
		},
	}

	_, err := execute(t, mock, "publish", "site", "--type", "css")
	require.NoError(t, err)
	assert.Equal(t, []string{"site"}, capturedGroups)
	assert.Equal(t, []domain.AssetType{domain.TypeCSS}, capturedTypes)
}

func TestCommands_PersistentFlags(t *testing.T) {
	t.Run("configures logging", func(t *testing.T) {
		mock := &mockApp{}
		_, err := execute(t, mock, "clean", "--json-logs", "-q")
		require.NoError(t, err)
		assert.True(t, mock.jsonLogs)
		assert.True(t, mock.quiet)
		assert.False(t, mock.tracing)
	})

	t.Run("flushes tracing on failure", func(t *testing.T) {
		mock := &mockApp{
			publishFunc: func(context.Context, []string, []domain.AssetType) error {
				return errors.New("upload failed")
			},
		}
		_, err := execute(t, mock, "publish", "--trace")
		require.Error(t, err)
		assert.True(t, mock.tracing)
		assert.True(t, mock.flushed)
	})
}

func TestCommands_Version(t *testing.T) {
	out, err := execute(t, &mockApp{}, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "casset version "+build.Version)
}
