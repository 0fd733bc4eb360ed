package driver

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// OutputExt is the extension of emitted files.
const OutputExt = ".js"

// OutputPath maps a source under srcDir to its output under outDir,
// keeping the relative directory layout.
func OutputPath(src, srcDir, outDir string) (string, error) {
	rel, err := filepath.Rel(srcDir, src)
	if err != nil {
		return "", fmt.Errorf("relative path of %s: %w", src, err)
	}
	if strings.HasPrefix(rel, "..") {
		return "", fmt.Errorf("%s is outside %s", src, srcDir)
	}
	rel = strings.TrimSuffix(rel, SourceExt) + OutputExt
	return filepath.Join(outDir, rel), nil
}

// WriteOutput writes r.Output to path, creating parent directories.
func WriteOutput(r *Result, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}
	// #nosec G306 -- emitted sources are meant to be world-readable
	if err := os.WriteFile(path, []byte(r.Output), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
