package project

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

var (
	// ErrPackageSectionMissing indicates that [package] is missing.
	ErrPackageSectionMissing = errors.New("missing [package]")
	// ErrPackageNameMissing indicates that [package].name is missing or blank.
	ErrPackageNameMissing = errors.New("missing [package].name")
	// ErrBuildSrcMissing indicates that [build].src is missing or blank.
	ErrBuildSrcMissing = errors.New("missing [build].src")
)

// Package is the [package] section.
type Package struct {
	Name string `toml:"name"`
}

// Build is the [build] section.
type Build struct {
	Src       string `toml:"src"`
	Out       string `toml:"out"`
	Separator string `toml:"separator"`
	Latinize  bool   `toml:"latinize"`
	Banner    bool   `toml:"banner"`
}

// Manifest is a parsed lugha.toml.
type Manifest struct {
	Package Package `toml:"package"`
	Build   Build   `toml:"build"`

	// Root is the directory holding the manifest; not part of the file.
	Root string `toml:"-"`
}

// Defaults for optional [build] keys.
const (
	DefaultOut       = "build"
	DefaultSeparator = "\n"
)

// SrcDir returns the absolute source directory.
func (m *Manifest) SrcDir() string { return m.resolve(m.Build.Src) }

// OutDir returns the absolute output directory.
func (m *Manifest) OutDir() string { return m.resolve(m.Build.Out) }

func (m *Manifest) resolve(p string) string {
	if filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(m.Root, p)
}

// LoadManifest parses and validates lugha.toml at path.
func LoadManifest(path string) (*Manifest, error) {
	m := &Manifest{Build: Build{Banner: true}}
	meta, err := toml.DecodeFile(path, m)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if !meta.IsDefined("package") {
		return nil, fmt.Errorf("%s: %w", path, ErrPackageSectionMissing)
	}
	m.Package.Name = strings.TrimSpace(m.Package.Name)
	if m.Package.Name == "" {
		return nil, fmt.Errorf("%s: %w", path, ErrPackageNameMissing)
	}
	m.Build.Src = strings.TrimSpace(m.Build.Src)
	if m.Build.Src == "" {
		return nil, fmt.Errorf("%s: %w", path, ErrBuildSrcMissing)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, fmt.Errorf("%s: unknown keys: %s", path, strings.Join(keys, ", "))
	}

	if strings.TrimSpace(m.Build.Out) == "" {
		m.Build.Out = DefaultOut
	}
	if !meta.IsDefined("build", "separator") {
		m.Build.Separator = DefaultSeparator
	}

	abs, err := filepath.Abs(filepath.Dir(path))
	if err != nil {
		return nil, fmt.Errorf("failed to resolve project root: %w", err)
	}
	m.Root = abs
	return m, nil
}
