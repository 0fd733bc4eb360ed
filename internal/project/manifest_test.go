package project_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"lugha/internal/project"
)

func writeManifest(t *testing.T, dir, body string) string {
	t.Helper()
	path := filepath.Join(dir, project.ManifestName)
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("write manifest: %v", err)
	}
	return path
}

func TestLoadManifestDefaults(t *testing.T) {
	dir := t.TempDir()
	path := writeManifest(t, dir, "[package]\nname = \"demo\"\n[build]\nsrc = \"src\"\n")

	m, err := project.LoadManifest(path)
	if err != nil {
		t.Fatalf("LoadManifest: %v", err)
	}
	if m.Package.Name != "demo" {
		t.Errorf("name = %q", m.Package.Name)
	}
	if m.Build.Out != project.DefaultOut || m.Build.Separator != project.DefaultSeparator {
		t.Errorf("defaults not applied: %+v", m.Build)
	}
	if !m.Build.Banner || m.Build.Latinize {
		t.Errorf("banner/latinize defaults wrong: %+v", m.Build)
	}
	if m.SrcDir() != filepath.Join(m.Root, "src") {
		t.Errorf("SrcDir = %q", m.SrcDir())
	}
}

func TestLoadManifestExplicit(t *testing.T) {
	dir := t.TempDir()
	path := writeManifest(t, dir, `[package]
name = "demo"
[build]
src = "code"
out = "dist"
separator = ""
latinize = true
banner = false
`)
	m, err := project.LoadManifest(path)
	if err != nil {
		t.Fatalf("LoadManifest: %v", err)
	}
	if m.Build.Out != "dist" || m.Build.Separator != "" || !m.Build.Latinize || m.Build.Banner {
		t.Fatalf("explicit values lost: %+v", m.Build)
	}
}

func TestLoadManifestErrors(t *testing.T) {
	tests := []struct {
		name string
		body string
		want error
	}{
		{"no package", "[build]\nsrc = \"src\"\n", project.ErrPackageSectionMissing},
		{"blank name", "[package]\nname = \"  \"\n[build]\nsrc = \"src\"\n", project.ErrPackageNameMissing},
		{"no src", "[package]\nname = \"demo\"\n", project.ErrBuildSrcMissing},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeManifest(t, t.TempDir(), tt.body)
			_, err := project.LoadManifest(path)
			if !errors.Is(err, tt.want) {
				t.Fatalf("err = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestLoadManifestRejectsUnknownKeys(t *testing.T) {
	path := writeManifest(t, t.TempDir(), "[package]\nname = \"demo\"\n[build]\nsrc = \"src\"\nminify = true\n")
	if _, err := project.LoadManifest(path); err == nil {
		t.Fatal("expected error for unknown key")
	}
}

func TestLoadManifestBadTOML(t *testing.T) {
	path := writeManifest(t, t.TempDir(), "[package\n")
	if _, err := project.LoadManifest(path); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestFindManifestWalksUp(t *testing.T) {
	root := t.TempDir()
	writeManifest(t, root, "[package]\nname = \"demo\"\n[build]\nsrc = \"src\"\n")
	deep := filepath.Join(root, "src", "a", "b")
	if err := os.MkdirAll(deep, 0o755); err != nil {
		t.Fatal(err)
	}

	path, ok, err := project.FindManifest(deep)
	if err != nil || !ok {
		t.Fatalf("FindManifest: ok=%v err=%v", ok, err)
	}
	if filepath.Dir(path) != root {
		t.Fatalf("found %q, want dir %q", path, root)
	}

	// путь к файлу внутри проекта тоже подходит
	file := filepath.Join(deep, "x.lugha")
	if err := os.WriteFile(file, nil, 0o600); err != nil {
		t.Fatal(err)
	}
	if got, ok, err := project.FindManifest(file); err != nil || !ok || got != path {
		t.Fatalf("FindManifest(file) = %q %v %v", got, ok, err)
	}
}

func TestScaffold(t *testing.T) {
	dir := t.TempDir()
	m, err := project.Scaffold(dir, "hello")
	if err != nil {
		t.Fatalf("Scaffold: %v", err)
	}
	if m.Package.Name != "hello" || m.Build.Src != "src" {
		t.Fatalf("unexpected manifest: %+v", m)
	}
	data, err := os.ReadFile(filepath.Join(dir, "src", "main.lugha"))
	if err != nil {
		t.Fatalf("main.lugha: %v", err)
	}
	if string(data) != project.SampleProgram {
		t.Fatalf("main.lugha = %q", data)
	}
	if _, err := project.Scaffold(dir, "hello"); !errors.Is(err, project.ErrManifestExists) {
		t.Fatalf("second Scaffold err = %v", err)
	}
}
