package testutil_test

import (
	"path/filepath"
	"testing"

	"github.com/arthur-debert/gamebox/pkg/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetupBoxMemory(t *testing.T) {
	env := testutil.NewTestEnvironment(t, testutil.EnvMemoryOnly)

	boxPath := env.SetupBox("Zork.boxer", testutil.BoxConfig{
		Files: map[string]string{
			"ZORK.EXE":           "MZ zork",
			"DATA/STORY.DAT":     "story",
			"Drive C.harddisk/x": "x",
		},
		Dirs: []string{"SAVES"},
	})

	for _, rel := range []string{"ZORK.EXE", "DATA/STORY.DAT"} {
		_, err := env.FS.Stat(filepath.Join(boxPath, rel))
		require.NoError(t, err)
	}
	info, err := env.FS.Stat(filepath.Join(boxPath, "SAVES"))
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestSetupBoxIsolated(t *testing.T) {
	env := testutil.NewTestEnvironment(t, testutil.EnvIsolated)

	boxPath := env.SetupBox("Empty.boxer", testutil.BoxConfig{})
	info, err := env.FS.Stat(boxPath)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}
