// Package testutil orchestrates test environments for the gamebox model:
// an in-memory filesystem for fast unit tests, or a real temp directory
// when symlink fidelity matters.
package testutil

import (
	"path/filepath"
	"testing"

	"github.com/spf13/afero"

	"github.com/arthur-debert/gamebox/pkg/config"
	"github.com/arthur-debert/gamebox/pkg/filesystem"
	"github.com/arthur-debert/gamebox/pkg/trash"
)

// EnvType defines the type of test environment
type EnvType int

const (
	EnvMemoryOnly EnvType = iota // Pure in-memory, no real filesystem
	EnvIsolated                  // Real filesystem in temp directory
)

// TestEnvironment provides a filesystem, settings and a trash recorder
// for gamebox tests.
type TestEnvironment struct {
	FS       filesystem.FS
	Settings *config.Settings
	Trash    *trash.Recorder

	// Root is the directory test gameboxes are created under.
	Root string

	Type EnvType
	t    *testing.T
}

// NewTestEnvironment creates a new test environment
func NewTestEnvironment(t *testing.T, envType EnvType) *TestEnvironment {
	t.Helper()

	env := &TestEnvironment{Type: envType, t: t}

	switch envType {
	case EnvMemoryOnly:
		env.FS = filesystem.NewAferoFS(afero.NewMemMapFs())
		env.Root = "/boxes"
		if err := env.FS.MkdirAll(env.Root, 0755); err != nil {
			t.Fatalf("failed to create root: %v", err)
		}
	case EnvIsolated:
		env.FS = filesystem.NewOS()
		env.Root = t.TempDir()
	}

	settings, err := config.Load()
	if err != nil {
		t.Fatalf("failed to load settings: %v", err)
	}
	env.Settings = settings
	env.Trash = trash.NewRecorder(env.FS)

	return env
}

// BoxConfig describes the contents of a test gamebox.
type BoxConfig struct {
	// Files maps box-relative paths to contents. Parent directories are
	// created as needed.
	Files map[string]string
	// Dirs lists box-relative directories to create, for empty folders
	// and extension-suffixed volume folders.
	Dirs []string
}

// SetupBox creates a gamebox directory under Root and returns its path.
// The name should carry the package extension ("Zork.boxer") when the
// test cares about display-name derivation.
func (env *TestEnvironment) SetupBox(name string, cfg BoxConfig) string {
	env.t.Helper()

	boxPath := filepath.Join(env.Root, name)
	if err := env.FS.MkdirAll(boxPath, 0755); err != nil {
		env.t.Fatalf("failed to create box %s: %v", name, err)
	}
	for _, dir := range cfg.Dirs {
		if err := env.FS.MkdirAll(filepath.Join(boxPath, dir), 0755); err != nil {
			env.t.Fatalf("failed to create dir %s: %v", dir, err)
		}
	}
	for file, content := range cfg.Files {
		full := filepath.Join(boxPath, file)
		if err := env.FS.MkdirAll(filepath.Dir(full), 0755); err != nil {
			env.t.Fatalf("failed to create parent of %s: %v", file, err)
		}
		if err := env.FS.WriteFile(full, []byte(content), 0644); err != nil {
			env.t.Fatalf("failed to write %s: %v", file, err)
		}
	}
	return boxPath
}
