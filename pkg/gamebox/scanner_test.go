package gamebox_test

import (
	"path/filepath"
	"sort"
	"testing"

	"github.com/arthur-debert/gamebox/pkg/classify"
	"github.com/arthur-debert/gamebox/pkg/gamebox"
	"github.com/arthur-debert/gamebox/pkg/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func relative(t *testing.T, boxPath string, paths []string) []string {
	t.Helper()
	rels := make([]string, 0, len(paths))
	for _, path := range paths {
		rel, err := filepath.Rel(boxPath, path)
		require.NoError(t, err)
		rels = append(rels, rel)
	}
	sort.Strings(rels)
	return rels
}

func TestExecutables(t *testing.T) {
	env := testutil.NewTestEnvironment(t, testutil.EnvMemoryOnly)
	boxPath := env.SetupBox("Zork.boxer", testutil.BoxConfig{
		Files: map[string]string{
			"ZORK.EXE":                   "MZ",
			"INTRO.EXE":                  "MZ",
			"START.BAT":                  "@echo off",
			"nested/deep/HIDDEN.COM":     "MZ",
			"README.TXT":                 "docs",
			"DOS4GW.EXE":                 "MZ excluded extender",
			"Drive C.harddisk/GAME.EXE":  "MZ inside volume",
			"Drive C.harddisk/DATA.BIN":  "not an exe",
		},
	})
	box := openBox(t, env, boxPath)

	executables, err := box.Executables()
	require.NoError(t, err)

	assert.Equal(t, []string{
		filepath.Join("Drive C.harddisk", "GAME.EXE"),
		"INTRO.EXE",
		"START.BAT",
		"ZORK.EXE",
		filepath.Join("nested", "deep", "HIDDEN.COM"),
	}, relative(t, boxPath, executables))
}

func TestVolumes(t *testing.T) {
	env := testutil.NewTestEnvironment(t, testutil.EnvMemoryOnly)
	boxPath := env.SetupBox("Zork.boxer", testutil.BoxConfig{
		Files: map[string]string{
			"DISC1.ISO":  "iso bytes",
			"BOOT.IMG":   "floppy bytes",
			"ZORK.EXE":   "MZ",
		},
		Dirs: []string{"Drive C.harddisk", "Game Disc.cdrom"},
	})
	box := openBox(t, env, boxPath)

	t.Run("all_kinds", func(t *testing.T) {
		volumes, err := box.VolumesOfKinds()
		require.NoError(t, err)

		assert.Equal(t, []string{"Drive C.harddisk"},
			relative(t, boxPath, volumes[classify.VolumeHarddisk]))
		assert.Equal(t, []string{"DISC1.ISO", "Game Disc.cdrom"},
			relative(t, boxPath, volumes[classify.VolumeCDROM]))
		assert.Equal(t, []string{"BOOT.IMG"},
			relative(t, boxPath, volumes[classify.VolumeFloppy]))
	})

	t.Run("single_kind", func(t *testing.T) {
		cds, err := box.CDROMVolumes()
		require.NoError(t, err)
		assert.Len(t, cds, 2)

		hdds, err := box.HarddiskVolumes()
		require.NoError(t, err)
		assert.Len(t, hdds, 1)

		floppies, err := box.FloppyVolumes()
		require.NoError(t, err)
		assert.Len(t, floppies, 1)
	})
}

func TestScanCachingAndRefresh(t *testing.T) {
	env := testutil.NewTestEnvironment(t, testutil.EnvMemoryOnly)
	boxPath := env.SetupBox("Zork.boxer", testutil.BoxConfig{
		Files: map[string]string{"ZORK.EXE": "MZ"},
	})
	box := openBox(t, env, boxPath)

	executables, err := box.Executables()
	require.NoError(t, err)
	require.Len(t, executables, 1)

	// A file added behind the cache's back is invisible until Refresh.
	require.NoError(t, env.FS.WriteFile(filepath.Join(boxPath, "NEW.EXE"), []byte("MZ"), 0644))

	executables, err = box.Executables()
	require.NoError(t, err)
	assert.Len(t, executables, 1)

	box.Refresh()
	executables, err = box.Executables()
	require.NoError(t, err)
	assert.Len(t, executables, 2)
}

func TestScannerSkipsReservedFiles(t *testing.T) {
	env := testutil.NewTestEnvironment(t, testutil.EnvMemoryOnly)
	boxPath := env.SetupBox("Zork.boxer", testutil.BoxConfig{
		Files: map[string]string{
			"ZORK.EXE":     "MZ",
			"DOSBox Target": "stale symlink placeholder",
		},
	})
	box := openBox(t, env, boxPath)

	executables, err := box.Executables()
	require.NoError(t, err)
	assert.Equal(t, []string{"ZORK.EXE"}, relative(t, boxPath, executables))
}

func TestScannerCustomRuleset(t *testing.T) {
	env := testutil.NewTestEnvironment(t, testutil.EnvMemoryOnly)
	boxPath := env.SetupBox("Zork.boxer", testutil.BoxConfig{
		Files: map[string]string{
			"ZORK.EXE": "MZ",
			"RUN.BTM":  "4dos batch",
		},
	})

	rules := classify.FromSettings(env.Settings)
	rules.ExecutableTypes = classify.NewExtensionSet(".exe", ".btm")
	box, err := gamebox.Open(boxPath,
		gamebox.WithFS(env.FS),
		gamebox.WithSettings(env.Settings),
		gamebox.WithRuleset(rules),
	)
	require.NoError(t, err)

	executables, err := box.Executables()
	require.NoError(t, err)
	assert.Len(t, executables, 2)
}
