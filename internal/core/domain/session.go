package domain

import "slices"

// RenderState tracks which groups were already handed to the emitter during a session.
type RenderState struct {
	rendered map[AssetType][]string
}

// NewRenderState creates an empty render state.
func NewRenderState() *RenderState {
	s := &RenderState{}
	s.Reset()
	return s
}

// Reset forgets every rendered group.
func (s *RenderState) Reset() {
	s.rendered = make(map[AssetType][]string)
}

// Rendered reports whether the group was rendered in this session.
func (s *RenderState) Rendered(t AssetType, name string) bool {
	return slices.Contains(s.rendered[t], name)
}

// MarkRendered records the group. Repeated calls are no-ops.
func (s *RenderState) MarkRendered(t AssetType, name string) {
	if s.Rendered(t, name) {
		return
	}
	s.rendered[t] = append(s.rendered[t], name)
}

// RenderedGroups returns the rendered group names of type t in render order.
func (s *RenderState) RenderedGroups(t AssetType) []string {
	return slices.Clone(s.rendered[t])
}

// ResolvedFile is a concrete file produced by expanding a FileRef.
type ResolvedFile struct {
	// Path is slash-separated and relative to the project root, or a full URL when Remote.
	Path        string
	PreMinified bool
	Remote      bool
}

// Artifact is a combined, persisted group output.
type Artifact struct {
	Key     string
	Name    string
	RelPath string
	Type    AssetType
	Cached  bool
}

// GroupFiles is a group ready for combining, paired with its resolved files.
type GroupFiles struct {
	Group *Group
	Files []ResolvedFile
}

// Settings are the process-wide knobs of the pipeline.
type Settings struct {
	AssetURL         string
	RootDir          string
	CachePath        string
	DepsMaxDepth     int
	RewriteMode      RewriteMode
	CacheKey         CacheKeyMode
	MoveImportsToTop bool
	ShowFiles        bool
	ShowFilesInline  bool
	HTML5            bool
}

// DefaultSettings returns the settings used when no configuration overrides them.
func DefaultSettings() Settings {
	return Settings{
		AssetURL:         DefaultAssetURL,
		RootDir:          ".",
		CachePath:        DefaultCachePath(),
		DepsMaxDepth:     DefaultDepsMaxDepth,
		RewriteMode:      RewriteAbsolute,
		CacheKey:         CacheKeyMtime,
		MoveImportsToTop: true,
		ShowFiles:        false,
		ShowFilesInline:  false,
		HTML5:            true,
	}
}

// Session is the explicit context every render operation works on.
type Session struct {
	Paths    *PathRegistry
	Groups   *GroupRegistry
	State    *RenderState
	Settings Settings

	inline map[AssetType][]string
}

// NewSession creates a session with the default namespace and the global groups.
func NewSession(settings Settings) *Session {
	s := &Session{
		Paths:    NewPathRegistry(),
		Groups:   NewGroupRegistry(),
		State:    NewRenderState(),
		Settings: settings,
		inline:   make(map[AssetType][]string),
	}
	s.EnsureGlobalGroups()
	return s
}

// EnsureGlobalGroups creates the reserved global group for every bundled type.
func (s *Session) EnsureGlobalGroups() {
	for _, t := range BundleTypes {
		_, _ = s.Groups.EnsureGroup(t, GlobalGroup)
	}
}

// Reset starts a new render session on the same registrations.
// Groups disabled by a previous render stay disabled.
func (s *Session) Reset() {
	s.State.Reset()
	s.inline = make(map[AssetType][]string)
}

// AddInline queues raw content rendered as one inline block per type.
func (s *Session) AddInline(t AssetType, content string) {
	s.inline[t] = append(s.inline[t], content)
}

// Inline returns the queued raw content of type t.
func (s *Session) Inline(t AssetType) []string {
	return slices.Clone(s.inline[t])
}
