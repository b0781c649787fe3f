// Package config provides the configuration loader for casset.
package config

import (
	"fmt"
	"maps"
	"path"
	"path/filepath"
	"slices"
	"strings"

	"go.trai.ch/casset/internal/core/domain"
	"go.trai.ch/casset/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// Loader implements ports.ConfigLoader using a YAML file.
type Loader struct {
	Logger ports.Logger
	// Environ returns the process environment. Nil means os.Environ.
	Environ func() []string

	fs ports.FileSystem
}

// NewLoader creates a new Loader reading through fsys.
func NewLoader(logger ports.Logger, fsys ports.FileSystem) *Loader {
	return &Loader{Logger: logger, fs: fsys}
}

// Load finds casset.yaml in cwd or one of its parents and builds a session from it.
func (l *Loader) Load(cwd string) (*domain.Session, error) {
	configPath, err := l.findConfiguration(filepath.ToSlash(cwd))
	if err != nil {
		return nil, err
	}
	configDir := path.Dir(configPath)

	env, err := l.loadEnv(configDir)
	if err != nil {
		return nil, err
	}

	var file Cassetfile
	if err := l.readAndUnmarshalYAML(configPath, &file); err != nil {
		return nil, err
	}
	if err := applyEnvOverrides(&file, env); err != nil {
		return nil, err
	}

	s, err := l.build(configPath, &file, newConditions(env[EnvName], env))
	if err != nil {
		return nil, zerr.With(err, "config", configPath)
	}
	return s, nil
}

func (l *Loader) findConfiguration(cwd string) (string, error) {
	currentDir := path.Clean(cwd)
	for {
		candidate := path.Join(currentDir, domain.ConfigFileName)
		if _, err := l.fs.Stat(candidate); err == nil {
			return candidate, nil
		}

		parentDir := path.Dir(currentDir)
		if parentDir == currentDir {
			break
		}
		currentDir = parentDir
	}
	return "", zerr.With(domain.ErrConfigNotFound, "cwd", cwd)
}

func (l *Loader) readAndUnmarshalYAML(configPath string, target *Cassetfile) error {
	data, err := l.fs.ReadFile(configPath)
	if err != nil {
		return zerr.Wrap(err, domain.ErrConfigReadFailed.Error())
	}
	if err := yaml.Unmarshal(data, target); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrConfigParseFailed.Error()), "config", configPath)
	}
	return nil
}

func (l *Loader) build(configPath string, file *Cassetfile, cond *conditions) (*domain.Session, error) {
	settings, err := buildSettings(configPath, file)
	if err != nil {
		return nil, err
	}

	s := domain.NewSession(settings)
	if err := registerPaths(s, file); err != nil {
		return nil, err
	}
	if err := applyDefaults(s, file); err != nil {
		return nil, err
	}
	if err := l.registerGroups(s, file, cond); err != nil {
		return nil, err
	}
	return s, nil
}

func buildSettings(configPath string, file *Cassetfile) (domain.Settings, error) {
	settings := domain.DefaultSettings()
	settings.RootDir = resolveRoot(configPath, file.Root)

	if file.URL != "" {
		settings.AssetURL = withTrailingSlash(file.URL)
	}
	if file.CachePath != "" {
		settings.CachePath = withTrailingSlash(file.CachePath)
	}
	if file.DepsMaxDepth > 0 {
		settings.DepsMaxDepth = file.DepsMaxDepth
	}
	if file.CSSURIRewriter != "" {
		mode, err := domain.ParseRewriteMode(file.CSSURIRewriter)
		if err != nil {
			return settings, err
		}
		settings.RewriteMode = mode
	}
	mode, err := domain.ParseCacheKeyMode(file.CacheKey)
	if err != nil {
		return settings, err
	}
	settings.CacheKey = mode
	if file.MoveImportsToTop != nil {
		settings.MoveImportsToTop = *file.MoveImportsToTop
	}
	if file.HTML5 != nil {
		settings.HTML5 = *file.HTML5
	}
	settings.ShowFiles = file.ShowFiles
	settings.ShowFilesInline = file.ShowFilesInline
	return settings, nil
}

func registerPaths(s *domain.Session, file *Cassetfile) error {
	dirs := dirMap(file.Dirs.CSS, file.Dirs.JS, file.Dirs.Img)
	if len(dirs) > 0 {
		s.Paths.SetDefaultDirs(dirs)
		if _, ok := file.Paths[domain.DefaultPathKey]; !ok {
			s.Paths.RegisterPath(domain.DefaultPathKey, domain.DefaultAssetRoot, nil)
		}
	}

	for _, key := range sortedKeys(file.Paths) {
		p := file.Paths[key]
		s.Paths.RegisterPath(key, withTrailingSlash(p.Path), dirMap(p.CSSDir, p.JSDir, p.ImgDir))
	}

	if file.ActivePath != "" {
		if err := s.Paths.SetActive(file.ActivePath); err != nil {
			return err
		}
	}
	return nil
}

func applyDefaults(s *domain.Session, file *Cassetfile) error {
	for _, t := range domain.BundleTypes {
		if file.Min != nil {
			if err := s.Groups.SetDefault(t, domain.OptionMin, *file.Min); err != nil {
				return err
			}
		}
		if file.Combine != nil {
			if err := s.Groups.SetDefault(t, domain.OptionCombine, *file.Combine); err != nil {
				return err
			}
		}
		// The global groups exist before the defaults are known.
		if err := setGroupOptions(s, t, domain.GlobalGroup, &GroupDTO{Min: file.Min, Combine: file.Combine}); err != nil {
			return err
		}
	}
	return nil
}

// registerGroups creates the configured groups. A group whose condition is
// false is created disabled and without files, so dependents still resolve.
func (l *Loader) registerGroups(s *domain.Session, file *Cassetfile, cond *conditions) error {
	for _, typeName := range sortedKeys(file.Groups) {
		t, err := domain.ParseAssetType(typeName)
		if err != nil {
			return err
		}
		if !t.Bundled() {
			return zerr.With(domain.ErrUnknownAssetType, "type", typeName)
		}

		groups := file.Groups[typeName]
		for _, name := range sortedKeys(groups) {
			dto := groups[name]
			if dto == nil {
				dto = &GroupDTO{}
			}
			if err := l.registerGroup(s, t, name, dto, cond); err != nil {
				return zerr.With(err, "group", name)
			}
		}
	}
	return nil
}

func (l *Loader) registerGroup(s *domain.Session, t domain.AssetType, name string, dto *GroupDTO, cond *conditions) error {
	if _, err := s.Groups.EnsureGroup(t, name); err != nil {
		return err
	}

	active, err := cond.eval(dto.When)
	if err != nil {
		return err
	}
	if !active {
		s.Groups.SetEnabled(t, []string{name}, false)
		return nil
	}

	if err := setGroupOptions(s, t, name, dto); err != nil {
		return err
	}
	if len(dto.Deps) > 0 {
		if err := s.Groups.AddDependencies(t, name, dto.Deps...); err != nil {
			return err
		}
	}

	g, err := s.Groups.Group(t, name)
	if err != nil {
		return err
	}

	refs := make([]domain.FileRef, 0, len(dto.Files))
	for _, f := range dto.Files {
		ok, err := cond.eval(f.When)
		if err != nil {
			return zerr.With(err, "file", f.File)
		}
		if !ok {
			continue
		}
		if f.MinFile != "" && !g.Min {
			l.Logger.Warn(fmt.Sprintf("min_file %q of group %q has no effect, min is disabled", f.MinFile, name))
		}
		refs = append(refs, domain.FileRef{Primary: f.File, MinifiedOverride: f.MinFile})
	}
	if len(refs) == 0 {
		return nil
	}
	return s.Groups.AddFiles(t, name, refs...)
}

func setGroupOptions(s *domain.Session, t domain.AssetType, name string, dto *GroupDTO) error {
	names := []string{name}
	flags := []struct {
		key   string
		value *bool
	}{
		{domain.OptionEnabled, dto.Enabled},
		{domain.OptionCombine, dto.Combine},
		{domain.OptionMin, dto.Min},
		{domain.OptionInline, dto.Inline},
	}
	for _, f := range flags {
		if f.value == nil {
			continue
		}
		if err := s.Groups.SetOption(t, names, f.key, *f.value); err != nil {
			return err
		}
	}
	if dto.Attr != nil {
		if err := s.Groups.SetOption(t, names, domain.OptionAttr, dto.Attr); err != nil {
			return err
		}
	}
	return nil
}

// resolveRoot returns the project root. Relative roots are taken from the config directory.
func resolveRoot(configPath, configuredRoot string) string {
	configDir := path.Dir(configPath)
	if configuredRoot == "" {
		return configDir
	}
	configuredRoot = filepath.ToSlash(configuredRoot)
	if path.IsAbs(configuredRoot) {
		return path.Clean(configuredRoot)
	}
	return path.Join(configDir, configuredRoot)
}

func dirMap(css, js, img string) map[domain.AssetType]string {
	dirs := make(map[domain.AssetType]string)
	for t, dir := range map[domain.AssetType]string{domain.TypeCSS: css, domain.TypeJS: js, domain.TypeImg: img} {
		if dir != "" {
			dirs[t] = withTrailingSlash(dir)
		}
	}
	return dirs
}

func withTrailingSlash(s string) string {
	if strings.HasSuffix(s, "/") {
		return s
	}
	return s + "/"
}

func sortedKeys[V any](m map[string]V) []string {
	return slices.Sorted(maps.Keys(m))
}
