// Package pipeline turns render requests into markup, links or inline content.
package pipeline

import (
	"context"
	"maps"
	"path"
	"strings"

	"go.trai.ch/casset/internal/core/domain"
	"go.trai.ch/casset/internal/core/ports"
	"go.trai.ch/casset/internal/engine/combiner"
	"go.trai.ch/casset/internal/engine/deps"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// RenderOptions adjust a single render call.
type RenderOptions struct {
	// Inline overrides the inline option of every rendered group when set.
	Inline *bool
	// Attrs replaces the attributes of every rendered group when not empty.
	Attrs map[string]string
	// NoTags returns bare URLs or contents instead of markup.
	NoTags bool
	// PageDir is the directory, relative to the project root, of the page
	// inline CSS ends up in.
	PageDir string
}

// Pipeline renders groups of a session.
type Pipeline struct {
	resolver ports.FileResolver
	combiner *combiner.Combiner
	rewriter ports.URIRewriter
	store    ports.ArtifactStore
	emitter  ports.Emitter
	tracer   ports.Tracer

	filepathHook domain.FilepathHook
}

// New creates a Pipeline.
func New(
	resolver ports.FileResolver,
	comb *combiner.Combiner,
	rewriter ports.URIRewriter,
	store ports.ArtifactStore,
	emitter ports.Emitter,
	tracer ports.Tracer,
) *Pipeline {
	return &Pipeline{
		resolver: resolver,
		combiner: comb,
		rewriter: rewriter,
		store:    store,
		emitter:  emitter,
		tracer:   tracer,
	}
}

// SetFilepathHook installs the hook applied to every path handed to the emitter.
func (p *Pipeline) SetFilepathHook(hook domain.FilepathHook) {
	p.filepathHook = hook
}

// SetPostLoadHook installs the hook run on files loaded into combined artifacts.
func (p *Pipeline) SetPostLoadHook(hook domain.PostLoadHook) {
	p.combiner.SetPostLoadHook(hook)
}

// FilesToRender resolves the requested groups and their dependencies into
// groups with concrete files. Once every group resolves, each returned group
// is marked rendered and disabled so it is not returned again. A failed
// resolution leaves all groups renderable.
func (p *Pipeline) FilesToRender(s *domain.Session, t domain.AssetType, groups []string) ([]domain.GroupFiles, error) {
	names, err := deps.Resolve(s, t, groups)
	if err != nil {
		return nil, err
	}

	var planned []domain.GroupFiles
	for _, name := range names {
		g, err := s.Groups.Group(t, name)
		if err != nil {
			return nil, err
		}
		if !g.Enabled || !g.HasFiles() {
			continue
		}
		planned = append(planned, domain.GroupFiles{Group: g})
	}

	var eg errgroup.Group
	for i := range planned {
		eg.Go(func() error {
			files, err := p.resolveGroup(s, planned[i].Group)
			if err != nil {
				return err
			}
			planned[i].Files = files
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	for _, gf := range planned {
		gf.Group.Enabled = false
		s.State.MarkRendered(t, gf.Group.Name)
	}
	return planned, nil
}

func (p *Pipeline) resolveGroup(s *domain.Session, g *domain.Group) ([]domain.ResolvedFile, error) {
	var files []domain.ResolvedFile
	for _, ref := range g.Files {
		pattern, pre := ref.Primary, false
		if g.Min && ref.HasOverride() {
			pattern, pre = ref.MinifiedOverride, true
		}

		resolved, err := p.resolver.Resolve(s, g.Type, pattern)
		if err != nil {
			return nil, zerr.With(err, "group", g.Name)
		}
		for _, f := range resolved {
			f.PreMinified = pre
			files = append(files, f)
		}
	}
	return files, nil
}

// Render renders the requested groups of type t, or every group when none
// are named. Each returned item is a tag followed by a newline, or a bare
// URL or content with opts.NoTags.
func (p *Pipeline) Render(ctx context.Context, s *domain.Session, t domain.AssetType, groups []string, opts RenderOptions) ([]string, error) {
	ctx, span := p.tracer.Start(ctx, "render",
		ports.WithAttribute("type", t.String()),
		ports.WithAttribute("groups", strings.Join(groups, ",")),
	)
	defer span.End()

	planned, err := p.FilesToRender(s, t, groups)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}

	names := make([]string, len(planned))
	for i, gf := range planned {
		names[i] = gf.Group.Name
	}
	p.tracer.EmitPlan(ctx, names)

	var out []string
	for _, gf := range planned {
		items, err := p.renderGroup(ctx, s, gf, opts)
		if err != nil {
			span.RecordError(err)
			return nil, err
		}
		out = append(out, items...)
	}
	return out, nil
}

func (p *Pipeline) renderGroup(ctx context.Context, s *domain.Session, gf domain.GroupFiles, opts RenderOptions) ([]string, error) {
	g := gf.Group
	inline := g.Inline
	if opts.Inline != nil {
		inline = *opts.Inline
	}
	attrs := p.attrs(s, g, opts)

	if !g.Combine {
		return p.renderFiles(ctx, s, g.Type, gf.Files, inline, attrs, opts)
	}

	var out []string
	artifact, err := p.combiner.Combine(ctx, s, gf)
	if err != nil {
		return nil, err
	}

	if !inline && s.Settings.ShowFiles && !opts.NoTags {
		lines := []string{"Group: " + g.Name}
		for _, f := range gf.Files {
			lines = append(lines, "\t"+f.Path)
		}
		out = append(out, p.emitter.Comment(lines)+"\n")
	}

	if !inline {
		return append(out, p.link(s, g.Type, artifact.RelPath, false, attrs, opts)), nil
	}

	content, err := p.combiner.ReadArtifact(s, artifact)
	if err != nil {
		return nil, err
	}
	if g.Type == domain.TypeCSS {
		content, err = p.rewriter.Rewrite(content, combiner.CacheDir(s), opts.PageDir, s.Settings.RewriteMode)
		if err != nil {
			return nil, err
		}
	}
	return append(out, p.inline(g.Type, content, attrs, opts)), nil
}

func (p *Pipeline) renderFiles(
	ctx context.Context,
	s *domain.Session,
	t domain.AssetType,
	files []domain.ResolvedFile,
	inline bool,
	attrs map[string]string,
	opts RenderOptions,
) ([]string, error) {
	out := make([]string, 0, len(files))
	for _, f := range files {
		if !inline || f.Remote {
			out = append(out, p.link(s, t, f.Path, f.Remote, attrs, opts))
			continue
		}
		content, err := p.combiner.Load(ctx, s, t, f, opts.PageDir)
		if err != nil {
			return nil, err
		}
		out = append(out, p.inline(t, content, attrs, opts))
	}
	return out, nil
}

func (p *Pipeline) link(s *domain.Session, t domain.AssetType, file string, remote bool, attrs map[string]string, opts RenderOptions) string {
	url := p.processPath(file, t, remote)
	if !remote {
		url = s.Settings.AssetURL + url
	}
	if opts.NoTags {
		return url
	}
	if t == domain.TypeCSS {
		return p.emitter.Stylesheet(url, attrs) + "\n"
	}
	return p.emitter.Script(url, attrs) + "\n"
}

func (p *Pipeline) inline(t domain.AssetType, content string, attrs map[string]string, opts RenderOptions) string {
	if opts.NoTags {
		return content
	}
	if t == domain.TypeCSS {
		return p.emitter.InlineStyle(content, attrs) + "\n"
	}
	return p.emitter.InlineScript(content, attrs) + "\n"
}

func (p *Pipeline) attrs(s *domain.Session, g *domain.Group, opts RenderOptions) map[string]string {
	attrs := maps.Clone(g.Attrs)
	if len(opts.Attrs) > 0 {
		attrs = maps.Clone(opts.Attrs)
	}
	if attrs == nil {
		attrs = map[string]string{}
	}
	if !s.Settings.HTML5 {
		if _, ok := attrs["type"]; !ok {
			attrs["type"] = typeAttr(g.Type)
		}
	}
	return attrs
}

func (p *Pipeline) processPath(file string, t domain.AssetType, remote bool) string {
	if p.filepathHook == nil {
		return file
	}
	return p.filepathHook(file, t, remote)
}

// RenderInline renders the raw content queued on the session as one block.
func (p *Pipeline) RenderInline(s *domain.Session, t domain.AssetType) string {
	content := s.Inline(t)
	if len(content) == 0 {
		return ""
	}
	attrs := map[string]string{}
	if !s.Settings.HTML5 {
		attrs["type"] = typeAttr(t)
	}
	return p.inline(t, strings.Join(content, "\n"), attrs, RenderOptions{})
}

// Img renders an img tag for every image the patterns resolve to.
func (p *Pipeline) Img(s *domain.Session, patterns []string, alt string, attrs map[string]string) (string, error) {
	var b strings.Builder
	for _, pattern := range patterns {
		files, err := p.resolver.Resolve(s, domain.TypeImg, pattern)
		if err != nil {
			return "", err
		}
		for _, f := range files {
			tag := maps.Clone(attrs)
			if tag == nil {
				tag = map[string]string{}
			}
			tag["alt"] = alt
			src := p.processPath(f.Path, domain.TypeImg, f.Remote)
			if !f.Remote {
				src = s.Settings.AssetURL + src
			}
			b.WriteString(p.emitter.Image(src, tag))
		}
	}
	return b.String(), nil
}

// Filepath returns the paths pattern resolves to, after the filepath hook.
// With addURL local paths are prefixed with the asset URL.
func (p *Pipeline) Filepath(s *domain.Session, pattern string, t domain.AssetType, addURL bool) ([]string, error) {
	files, err := p.resolver.Resolve(s, t, pattern)
	if err != nil {
		return nil, err
	}

	out := make([]string, len(files))
	for i, f := range files {
		out[i] = p.processPath(f.Path, t, f.Remote)
		if addURL && !f.Remote {
			out[i] = s.Settings.AssetURL + out[i]
		}
	}
	return out, nil
}

// Build combines the requested groups without rendering them and returns the
// artifacts. Groups that are not combined produce none.
func (p *Pipeline) Build(ctx context.Context, s *domain.Session, t domain.AssetType, groups []string) ([]domain.Artifact, error) {
	ctx, span := p.tracer.Start(ctx, "build",
		ports.WithAttribute("type", t.String()),
		ports.WithAttribute("groups", strings.Join(groups, ",")),
	)
	defer span.End()

	planned, err := p.FilesToRender(s, t, groups)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}

	var artifacts []domain.Artifact
	for _, gf := range planned {
		if !gf.Group.Combine || len(gf.Files) == 0 {
			continue
		}
		a, err := p.combiner.Combine(ctx, s, gf)
		if err != nil {
			span.RecordError(err)
			return nil, err
		}
		artifacts = append(artifacts, a)
	}
	return artifacts, nil
}

// ArtifactContent returns the content of a built artifact.
func (p *Pipeline) ArtifactContent(s *domain.Session, a domain.Artifact) (string, error) {
	return p.combiner.ReadArtifact(s, a)
}

// ClearCache removes artifacts modified before opts.Before and returns their names.
func (p *Pipeline) ClearCache(s *domain.Session, opts domain.SweepOptions) ([]string, error) {
	return p.store.Sweep(path.Join(s.Settings.RootDir, combiner.CacheDir(s)), opts)
}

func typeAttr(t domain.AssetType) string {
	if t == domain.TypeCSS {
		return "text/css"
	}
	return "text/javascript"
}
