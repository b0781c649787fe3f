// Package app implements the application layer for casset.
package app

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"go.trai.ch/casset/internal/core/domain"
	"go.trai.ch/casset/internal/core/ports"
	"go.trai.ch/casset/internal/engine/pipeline"
	"go.trai.ch/zerr"
)

// App represents the main application logic.
type App struct {
	configLoader ports.ConfigLoader
	pipeline     *pipeline.Pipeline
	publisher    ports.Publisher
	logger       ports.Logger
	workDir      string
}

// New creates a new App instance.
func New(
	loader ports.ConfigLoader,
	pipe *pipeline.Pipeline,
	publisher ports.Publisher,
	log ports.Logger,
) *App {
	return &App{
		configLoader: loader,
		pipeline:     pipe,
		publisher:    publisher,
		logger:       log,
	}
}

// WithWorkDir sets the directory the configuration is searched from.
// By default the process working directory is used.
func (a *App) WithWorkDir(dir string) *App {
	a.workDir = dir
	return a
}

// WithFilepathHook installs a hook applied to every emitted path.
func (a *App) WithFilepathHook(hook domain.FilepathHook) *App {
	a.pipeline.SetFilepathHook(hook)
	return a
}

// WithPostLoadHook installs a hook run on every file loaded into an artifact.
func (a *App) WithPostLoadHook(hook domain.PostLoadHook) *App {
	a.pipeline.SetPostLoadHook(hook)
	return a
}

func (a *App) session() (*domain.Session, error) {
	dir := a.workDir
	if dir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, zerr.Wrap(err, domain.ErrConfigReadFailed.Error())
		}
		dir = wd
	}

	s, err := a.configLoader.Load(dir)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to load configuration")
	}
	return s, nil
}

// RenderOptions configuration for the Render method.
type RenderOptions struct {
	// Types are rendered in order. Empty means css then js.
	Types []domain.AssetType
	// Inline forces inline or linked output when set.
	Inline *bool
	// NoTags writes bare URLs or contents, one per line.
	NoTags bool
	// PageDir is the directory of the page inline CSS is embedded in.
	PageDir string
	// Attrs replace the attributes of every rendered group.
	Attrs map[string]string
}

// Render writes the markup of the requested groups, or of every group, to w.
func (a *App) Render(ctx context.Context, w io.Writer, groups []string, opts RenderOptions) error {
	s, err := a.session()
	if err != nil {
		return err
	}

	types := opts.Types
	if len(types) == 0 {
		types = domain.BundleTypes
	}

	for _, t := range types {
		items, err := a.pipeline.Render(ctx, s, t, groups, pipeline.RenderOptions{
			Inline:  opts.Inline,
			Attrs:   opts.Attrs,
			NoTags:  opts.NoTags,
			PageDir: opts.PageDir,
		})
		if err != nil {
			return zerr.With(zerr.Wrap(err, domain.ErrRenderFailed.Error()), "type", t)
		}
		for _, item := range items {
			if opts.NoTags {
				item = strings.TrimSuffix(item, "\n") + "\n"
			}
			if _, err := io.WriteString(w, item); err != nil {
				return zerr.Wrap(err, domain.ErrRenderFailed.Error())
			}
		}
	}
	return nil
}

// Filepath writes the paths pattern resolves to, one per line.
func (a *App) Filepath(_ context.Context, w io.Writer, pattern string, t domain.AssetType, addURL bool) error {
	s, err := a.session()
	if err != nil {
		return err
	}

	paths, err := a.pipeline.Filepath(s, pattern, t, addURL)
	if err != nil {
		return err
	}
	for _, p := range paths {
		if _, err := fmt.Fprintln(w, p); err != nil {
			return zerr.Wrap(err, domain.ErrRenderFailed.Error())
		}
	}
	return nil
}

// Img writes an img tag for every image the patterns resolve to.
func (a *App) Img(_ context.Context, w io.Writer, patterns []string, alt string, attrs map[string]string) error {
	s, err := a.session()
	if err != nil {
		return err
	}

	out, err := a.pipeline.Img(s, patterns, alt, attrs)
	if err != nil {
		return err
	}
	if out == "" {
		return nil
	}
	_, err = fmt.Fprintln(w, out)
	return err
}

// CleanOptions configuration for the Clean method.
type CleanOptions struct {
	// Before removes only artifacts modified earlier. Zero means now.
	Before time.Time
	// Type restricts the sweep to one type. Empty means both.
	Type domain.AssetType
}

// Clean removes stale artifacts from the cache directory.
func (a *App) Clean(_ context.Context, opts CleanOptions) error {
	s, err := a.session()
	if err != nil {
		return err
	}

	filter := domain.FilterAll
	switch opts.Type {
	case domain.TypeCSS:
		filter = domain.FilterCSS
	case domain.TypeJS:
		filter = domain.FilterJS
	}

	removed, err := a.pipeline.ClearCache(s, domain.SweepOptions{Before: opts.Before, Filter: filter})
	if err != nil {
		return err
	}
	for _, name := range removed {
		a.logger.Info("removed " + name)
	}
	a.logger.Info(fmt.Sprintf("removed %d artifact(s)", len(removed)))
	return nil
}

// Publish builds the requested groups and uploads their artifacts.
func (a *App) Publish(ctx context.Context, groups []string, types []domain.AssetType) error {
	s, err := a.session()
	if err != nil {
		return err
	}
	if len(types) == 0 {
		types = domain.BundleTypes
	}

	for _, t := range types {
		artifacts, err := a.pipeline.Build(ctx, s, t, groups)
		if err != nil {
			return err
		}
		for _, artifact := range artifacts {
			content, err := a.pipeline.ArtifactContent(s, artifact)
			if err != nil {
				return err
			}
			loc, err := a.publisher.Publish(ctx, artifact.RelPath, []byte(content), t.ContentType())
			if err != nil {
				return zerr.With(err, "artifact", artifact.Name)
			}
			a.logger.Info(fmt.Sprintf("published %s to %s", artifact.Name, loc))
		}
	}
	return nil
}
