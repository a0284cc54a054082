package externgen

import (
	"path/filepath"
	"strings"

	"github.com/cmmoran/uextern/internal/mapper"
)

// Options control collection and emission.
//
// Input         – reflection document (yaml, json or toml)
// OutDir        – root directory of the generated externs
// Extension     – file extension of generated externs, without the dot
// BasePackage   – Haxe package every binding lives under
// CoreModules   – modules bound directly into BasePackage (case‑insensitive)
// ArrayDenylist – array element types that must not be bound
// ExcludeTypes  – native names, C++ names or paths to skip (case‑insensitive)
// ManifestFile  – manifest of generated files, relative to OutDir unless absolute
type Options struct {
	Input         string   `json:"input,omitempty" yaml:"input,omitempty" toml:"input,omitempty" mapstructure:"input,omitempty"`
	OutDir        string   `json:"out_dir,omitempty" yaml:"out_dir,omitempty" toml:"out_dir,omitempty" mapstructure:"out_dir,omitempty"`
	Extension     string   `json:"extension,omitempty" yaml:"extension,omitempty" toml:"extension,omitempty" mapstructure:"extension,omitempty"`
	BasePackage   string   `json:"base_package,omitempty" yaml:"base_package,omitempty" toml:"base_package,omitempty" mapstructure:"base_package,omitempty"`
	CoreModules   []string `json:"core_modules,omitempty" yaml:"core_modules,omitempty" toml:"core_modules,omitempty" mapstructure:"core_modules,omitempty"`
	ArrayDenylist []string `json:"array_denylist,omitempty" yaml:"array_denylist,omitempty" toml:"array_denylist,omitempty" mapstructure:"array_denylist,omitempty"`
	ExcludeTypes  []string `json:"exclude_types,omitempty" yaml:"exclude_types,omitempty" toml:"exclude_types,omitempty" mapstructure:"exclude_types,omitempty"`
	ManifestFile  string   `json:"manifest_file,omitempty" yaml:"manifest_file,omitempty" toml:"manifest_file,omitempty" mapstructure:"manifest_file,omitempty"`
}

const (
	DefaultOutDir       = "Externs"
	DefaultExtension    = "hx"
	DefaultBasePackage  = "unreal"
	DefaultManifestFile = "externs.yaml"
)

// DefaultCoreModules are bound into the base package without a module segment.
func DefaultCoreModules() []string {
	return []string{"CoreUObject", "Engine"}
}

func NewOptions() *Options {
	return &Options{
		OutDir:        DefaultOutDir,
		Extension:     DefaultExtension,
		BasePackage:   DefaultBasePackage,
		CoreModules:   DefaultCoreModules(),
		ArrayDenylist: mapper.DefaultArrayDenylist(),
		ManifestFile:  DefaultManifestFile,
	}
}

// Normalize fills unset fields with their defaults and cleans paths.
// A nil denylist takes the default; an empty, non-nil one disables it.
func (o *Options) Normalize() {
	if len(o.OutDir) == 0 {
		o.OutDir = DefaultOutDir
	}
	o.OutDir = filepath.Clean(o.OutDir)
	if o.Input != "" {
		o.Input = filepath.Clean(o.Input)
	}

	o.Extension = strings.TrimPrefix(strings.TrimSpace(o.Extension), ".")
	if len(o.Extension) == 0 {
		o.Extension = DefaultExtension
	}
	if o.CoreModules == nil {
		o.CoreModules = DefaultCoreModules()
	}
	if o.ArrayDenylist == nil {
		o.ArrayDenylist = mapper.DefaultArrayDenylist()
	}
	if len(o.ManifestFile) == 0 {
		o.ManifestFile = DefaultManifestFile
	}
	o.CoreModules = trimAll(o.CoreModules)
	o.ExcludeTypes = trimAll(o.ExcludeTypes)
}

// ManifestPath returns where the manifest is read and written.
func (o *Options) ManifestPath() string {
	if filepath.IsAbs(o.ManifestFile) {
		return o.ManifestFile
	}
	return filepath.Join(o.OutDir, o.ManifestFile)
}

func trimAll(in []string) []string {
	if in == nil {
		return nil
	}
	out := make([]string, 0, len(in))
	for _, s := range in {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}

// functional option pattern ---------------------------------------------------

type Option func(*Options)

func WithInput(path string) Option     { return func(o *Options) { o.Input = path } }
func WithOutDir(d string) Option       { return func(o *Options) { o.OutDir = d } }
func WithExtension(ext string) Option  { return func(o *Options) { o.Extension = ext } }
func WithBasePackage(p string) Option  { return func(o *Options) { o.BasePackage = p } }
func WithManifestFile(f string) Option { return func(o *Options) { o.ManifestFile = f } }
func WithCoreModules(names ...string) Option {
	return func(o *Options) { o.CoreModules = append([]string{}, names...) }
}
func WithArrayDenylist(names ...string) Option {
	return func(o *Options) { o.ArrayDenylist = append([]string{}, names...) }
}
func WithExcludeTypes(names ...string) Option {
	return func(o *Options) {
		for _, n := range names {
			o.ExcludeTypes = append(o.ExcludeTypes, strings.TrimSpace(n))
		}
	}
}
