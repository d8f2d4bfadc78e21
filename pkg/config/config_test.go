package config_test

import (
	"testing"

	"github.com/arthur-debert/gamebox/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	settings, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, ".boxer", settings.Gamebox.PackageExtension)
	assert.Equal(t, "gamebox.toml", settings.Gamebox.ManifestName)
	assert.Equal(t, "Game Info.plist", settings.Gamebox.LegacyManifestName)
	assert.Equal(t, "Documentation", settings.Gamebox.DocumentationFolder)

	assert.Contains(t, settings.FileTypes.Executables, ".exe")
	assert.Contains(t, settings.FileTypes.Executables, ".com")
	assert.Contains(t, settings.FileTypes.Executables, ".bat")
	assert.Contains(t, settings.FileTypes.Documentation, ".txt")

	assert.Contains(t, settings.Volumes.CDROM, ".iso")
	assert.Contains(t, settings.Volumes.Harddisk, ".harddisk")
	assert.Contains(t, settings.Volumes.Floppy, ".img")

	assert.Contains(t, settings.Exclusions.Executables, "dos4gw.exe")
}

func TestLoadWithOverrides(t *testing.T) {
	settings, err := config.LoadWithOverrides(map[string]interface{}{
		"gamebox.documentation-folder": "Docs",
		"filetypes.executables":        []string{".exe"},
	})
	require.NoError(t, err)

	assert.Equal(t, "Docs", settings.Gamebox.DocumentationFolder)
	assert.Equal(t, []string{".exe"}, settings.FileTypes.Executables)
	// Untouched sections keep their defaults.
	assert.Equal(t, "gamebox.toml", settings.Gamebox.ManifestName)
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("GAMEBOX_GAMEBOX__DOCUMENTATION_FOLDER", "Docs")
	t.Setenv("GAMEBOX_FILETYPES__EXECUTABLES", ".exe, .com,.btm")

	settings, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "Docs", settings.Gamebox.DocumentationFolder)
	assert.Equal(t, []string{".exe", ".com", ".btm"}, settings.FileTypes.Executables)
}

func TestDefaultDoesNotPanic(t *testing.T) {
	assert.NotPanics(t, func() {
		settings := config.Default()
		assert.NotEmpty(t, settings.FileTypes.Documentation)
	})
}

func TestGetDefaultConfigContent(t *testing.T) {
	content := config.GetDefaultConfigContent()
	assert.Contains(t, content, "[filetypes]")
	assert.Contains(t, content, "package-extension")
}
