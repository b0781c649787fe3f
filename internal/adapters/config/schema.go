package config

import (
	"gopkg.in/yaml.v3"
)

// Cassetfile represents the structure of the casset.yaml configuration file.
type Cassetfile struct {
	URL              string                          `yaml:"url"`
	Root             string                          `yaml:"root"`
	CachePath        string                          `yaml:"cache_path"`
	Min              *bool                           `yaml:"min"`
	Combine          *bool                           `yaml:"combine"`
	DepsMaxDepth     int                             `yaml:"deps_max_depth"`
	CSSURIRewriter   string                          `yaml:"css_uri_rewriter"`
	CacheKey         string                          `yaml:"cache_key"`
	MoveImportsToTop *bool                           `yaml:"move_imports_to_top"`
	ShowFiles        bool                            `yaml:"show_files"`
	ShowFilesInline  bool                            `yaml:"show_files_inline"`
	HTML5            *bool                           `yaml:"html5"`
	ActivePath       string                          `yaml:"active_path"`
	Dirs             DirsDTO                         `yaml:"dirs"`
	Paths            map[string]PathDTO              `yaml:"paths"`
	Groups           map[string]map[string]*GroupDTO `yaml:"groups"`
}

// DirsDTO holds per-type subdirectories.
type DirsDTO struct {
	CSS string `yaml:"css"`
	JS  string `yaml:"js"`
	Img string `yaml:"img"`
}

// PathDTO represents a namespace registration.
type PathDTO struct {
	Path   string `yaml:"path"`
	CSSDir string `yaml:"css_dir"`
	JSDir  string `yaml:"js_dir"`
	ImgDir string `yaml:"img_dir"`
}

// GroupDTO represents a group definition.
type GroupDTO struct {
	Files   []FileDTO         `yaml:"files"`
	Deps    []string          `yaml:"deps"`
	When    string            `yaml:"when"`
	Attr    map[string]string `yaml:"attr"`
	Enabled *bool             `yaml:"enabled"`
	Combine *bool             `yaml:"combine"`
	Min     *bool             `yaml:"min"`
	Inline  *bool             `yaml:"inline"`
}

// FileDTO is a group entry, written either as a plain pattern or as a mapping.
type FileDTO struct {
	File    string `yaml:"file"`
	MinFile string `yaml:"min_file"`
	When    string `yaml:"when"`
}

// UnmarshalYAML accepts "pattern" as well as {file: pattern, min_file: ..., when: ...}.
func (f *FileDTO) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.ScalarNode {
		f.File = node.Value
		return nil
	}

	type plain FileDTO
	var p plain
	if err := node.Decode(&p); err != nil {
		return err
	}
	*f = FileDTO(p)
	return nil
}
