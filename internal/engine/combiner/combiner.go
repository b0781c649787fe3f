// Package combiner builds the cached artifact of a combined group.
package combiner

import (
	"context"
	"path"
	"regexp"
	"strconv"
	"strings"

	"go.trai.ch/casset/internal/core/domain"
	"go.trai.ch/casset/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/singleflight"
)

var importRe = regexp.MustCompile(`@import.*?;`)

// Combiner concatenates, rewrites and minifies the files of a group into one
// artifact in the cache directory. An artifact is only built when no artifact
// with the same key exists.
type Combiner struct {
	fs        ports.FileSystem
	fetcher   ports.RemoteFetcher
	hasher    ports.Hasher
	store     ports.ArtifactStore
	minifiers ports.Minifiers
	rewriter  ports.URIRewriter
	tracer    ports.Tracer

	hook   domain.PostLoadHook
	flight singleflight.Group
}

// New creates a Combiner.
func New(
	fsys ports.FileSystem,
	fetcher ports.RemoteFetcher,
	hasher ports.Hasher,
	store ports.ArtifactStore,
	minifiers ports.Minifiers,
	rewriter ports.URIRewriter,
	tracer ports.Tracer,
) *Combiner {
	return &Combiner{
		fs:        fsys,
		fetcher:   fetcher,
		hasher:    hasher,
		store:     store,
		minifiers: minifiers,
		rewriter:  rewriter,
		tracer:    tracer,
	}
}

// SetPostLoadHook installs the hook run on each file loaded for a combined artifact.
// A nil hook removes it.
func (c *Combiner) SetPostLoadHook(hook domain.PostLoadHook) {
	c.hook = hook
}

// CacheDir returns the cache directory relative to the project root.
func CacheDir(s *domain.Session) string {
	return path.Clean(s.Settings.CachePath)
}

// Combine returns the artifact for the files of gf, building it if needed.
// Remote files are downloaded into the artifact in group order. Their URLs
// are part of the key but they never affect its freshness, so a built
// artifact is not refetched.
func (c *Combiner) Combine(ctx context.Context, s *domain.Session, gf domain.GroupFiles) (domain.Artifact, error) {
	g := gf.Group
	files := gf.Files
	if len(files) == 0 {
		err := zerr.With(domain.ErrNoFilesMatched, "group", g.Name)
		return domain.Artifact{}, zerr.With(err, "type", g.Type)
	}

	paths := make([]string, len(files))
	var local []string
	for i, f := range files {
		paths[i] = f.Path
		if !f.Remote {
			local = append(local, f.Path)
		}
	}

	freshness, err := c.freshness(s, local)
	if err != nil {
		return domain.Artifact{}, zerr.With(err, "group", g.Name)
	}

	key := c.hasher.ArtifactKey(paths, g.Min, freshness)
	name := key + g.Type.Ext()
	cacheDir := CacheDir(s)
	artifact := domain.Artifact{
		Key:     key,
		Name:    name,
		RelPath: path.Join(cacheDir, name),
		Type:    g.Type,
	}

	ctx, span := c.tracer.Start(ctx, "combine",
		ports.WithAttribute("group", g.Name),
		ports.WithAttribute("artifact", name),
	)
	defer span.End()

	absDir := path.Join(s.Settings.RootDir, cacheDir)
	v, err, _ := c.flight.Do(path.Join(absDir, name), func() (any, error) {
		exists, err := c.store.Exists(absDir, name)
		if err != nil {
			return false, err
		}
		if exists {
			return true, nil
		}

		content, err := c.build(ctx, s, g, files, cacheDir)
		if err != nil {
			return false, err
		}
		if err := c.store.Write(absDir, name, []byte(content)); err != nil {
			return false, err
		}
		return false, nil
	})
	if err != nil {
		span.RecordError(err)
		return domain.Artifact{}, zerr.With(err, "group", g.Name)
	}

	artifact.Cached = v.(bool)
	span.SetAttribute("cached", artifact.Cached)
	return artifact, nil
}

// freshness returns the token that changes whenever the local sources change.
func (c *Combiner) freshness(s *domain.Session, paths []string) (string, error) {
	if s.Settings.CacheKey == domain.CacheKeyContent {
		abs := make([]string, len(paths))
		for i, p := range paths {
			abs[i] = path.Join(s.Settings.RootDir, p)
		}
		return c.hasher.ContentDigest(abs)
	}

	var latest int64
	for _, p := range paths {
		info, err := c.fs.Stat(path.Join(s.Settings.RootDir, p))
		if err != nil {
			return "", zerr.With(zerr.Wrap(err, domain.ErrFileReadFailed.Error()), "file", p)
		}
		if mod := info.ModTime().Unix(); mod > latest {
			latest = mod
		}
	}
	return strconv.FormatInt(latest, 10), nil
}

func (c *Combiner) build(ctx context.Context, s *domain.Session, g *domain.Group, files []domain.ResolvedFile, cacheDir string) (string, error) {
	var b strings.Builder
	for _, f := range files {
		if s.Settings.ShowFilesInline {
			b.WriteString("\n/* " + f.Path + " */\n\n")
		}

		content, err := c.load(ctx, s, g, f, cacheDir, true)
		if err != nil {
			return "", err
		}

		if g.Min && !f.PreMinified {
			content, err = c.minify(g.Type, content)
			if err != nil {
				return "", zerr.With(err, "file", f.Path)
			}
		}
		b.WriteString(content)
		b.WriteByte('\n')
	}

	out := b.String()
	if g.Type == domain.TypeCSS && s.Settings.MoveImportsToTop {
		out = HoistImports(out)
	}
	return out, nil
}

func (c *Combiner) minify(t domain.AssetType, content string) (string, error) {
	m, ok := c.minifiers[t]
	if !ok {
		return "", zerr.With(domain.ErrMinifyFailed, "type", t)
	}
	return m.Minify(content)
}

// Load reads a file and rewrites its CSS references towards destDir.
// The post-load hook does not run.
func (c *Combiner) Load(ctx context.Context, s *domain.Session, t domain.AssetType, f domain.ResolvedFile, destDir string) (string, error) {
	return c.load(ctx, s, &domain.Group{Type: t}, f, destDir, false)
}

func (c *Combiner) load(
	ctx context.Context,
	s *domain.Session,
	g *domain.Group,
	f domain.ResolvedFile,
	destDir string,
	withHook bool,
) (string, error) {
	data, err := c.read(ctx, s, f)
	if err != nil {
		return "", err
	}
	content := string(data)

	if withHook && c.hook != nil {
		content, err = c.hook(content, f.Path, g.Type, g)
		if err != nil {
			return "", zerr.With(zerr.Wrap(err, domain.ErrPostLoadHookFailed.Error()), "file", f.Path)
		}
	}

	if g.Type == domain.TypeCSS {
		content, err = c.rewriter.Rewrite(content, sourceDir(f), destDir, s.Settings.RewriteMode)
		if err != nil {
			return "", zerr.With(err, "file", f.Path)
		}
	}
	return content, nil
}

func (c *Combiner) read(ctx context.Context, s *domain.Session, f domain.ResolvedFile) ([]byte, error) {
	if f.Remote {
		data, err := c.fetcher.Fetch(ctx, f.Path)
		if err != nil {
			return nil, zerr.With(err, "file", f.Path)
		}
		return data, nil
	}
	data, err := c.fs.ReadFile(path.Join(s.Settings.RootDir, f.Path))
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrFileReadFailed.Error()), "file", f.Path)
	}
	return data, nil
}

// sourceDir returns the directory relative CSS references in f resolve against.
// For remote files it keeps the scheme and host intact.
func sourceDir(f domain.ResolvedFile) string {
	if f.Remote {
		if i := strings.LastIndex(f.Path, "/"); i >= 0 {
			return f.Path[:i]
		}
	}
	return path.Dir(f.Path)
}

// ReadArtifact returns the content of a built artifact.
func (c *Combiner) ReadArtifact(s *domain.Session, a domain.Artifact) (string, error) {
	data, err := c.store.Read(path.Join(s.Settings.RootDir, CacheDir(s)), a.Name)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// HoistImports moves every @import statement to the top, keeping their order.
func HoistImports(css string) string {
	var imports []string
	rest := importRe.ReplaceAllStringFunc(css, func(m string) string {
		imports = append(imports, m)
		return ""
	})
	if len(imports) == 0 {
		return css
	}
	return strings.Join(imports, "\n") + "\n" + rest
}
