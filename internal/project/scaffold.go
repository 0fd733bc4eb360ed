package project

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// ErrManifestExists is returned by Scaffold when lugha.toml is already present.
var ErrManifestExists = errors.New("lugha.toml already exists")

// SampleProgram is the src/main.lugha written by Scaffold.
const SampleProgram = `// أول برنامج
شيء تحية = "مرحبا"
اطبع تحية
`

// Scaffold writes lugha.toml and src/main.lugha into dir.
func Scaffold(dir, name string) (*Manifest, error) {
	manifestPath := filepath.Join(dir, ManifestName)
	if _, err := os.Stat(manifestPath); err == nil {
		return nil, fmt.Errorf("%s: %w", manifestPath, ErrManifestExists)
	}
	if name == "" {
		abs, err := filepath.Abs(dir)
		if err != nil {
			return nil, err
		}
		name = filepath.Base(abs)
	}

	m := &Manifest{
		Package: Package{Name: name},
		Build: Build{
			Src:       "src",
			Out:       DefaultOut,
			Separator: DefaultSeparator,
			Banner:    true,
		},
	}
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(m); err != nil {
		return nil, fmt.Errorf("encode manifest: %w", err)
	}

	srcDir := filepath.Join(dir, m.Build.Src)
	if err := os.MkdirAll(srcDir, 0o755); err != nil {
		return nil, fmt.Errorf("create %s: %w", srcDir, err)
	}
	// #nosec G306 -- project files
	if err := os.WriteFile(manifestPath, buf.Bytes(), 0o644); err != nil {
		return nil, fmt.Errorf("write %s: %w", manifestPath, err)
	}
	mainPath := filepath.Join(srcDir, "main.lugha")
	if _, err := os.Stat(mainPath); errors.Is(err, os.ErrNotExist) {
		// #nosec G306 -- project files
		if err := os.WriteFile(mainPath, []byte(SampleProgram), 0o644); err != nil {
			return nil, fmt.Errorf("write %s: %w", mainPath, err)
		}
	}
	return LoadManifest(manifestPath)
}
