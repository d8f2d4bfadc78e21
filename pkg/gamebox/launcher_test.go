package gamebox_test

import (
	"testing"

	"github.com/arthur-debert/gamebox/pkg/errors"
	"github.com/arthur-debert/gamebox/pkg/gamebox"
	"github.com/arthur-debert/gamebox/pkg/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func launcherBox(t *testing.T) (*testutil.TestEnvironment, *gamebox.Gamebox) {
	t.Helper()
	env := testutil.NewTestEnvironment(t, testutil.EnvMemoryOnly)
	boxPath := env.SetupBox("Zork.boxer", testutil.BoxConfig{
		Files: map[string]string{
			"ZORK.EXE":  "MZ zork",
			"INTRO.EXE": "MZ intro",
		},
	})
	return env, openBox(t, env, boxPath)
}

// atMostOneDefault asserts the single-default invariant.
func atMostOneDefault(t *testing.T, box *gamebox.Gamebox) {
	t.Helper()
	defaults := 0
	for _, launcher := range box.Launchers() {
		if launcher.IsDefault {
			defaults++
		}
	}
	assert.LessOrEqual(t, defaults, 1)
}

func TestAddAndInsertLaunchers(t *testing.T) {
	_, box := launcherBox(t)

	box.AddLauncherWithFields("Play Zork", "ZORK.EXE", "")
	box.AddLauncherWithFields("Intro", "INTRO.EXE", "/skip")
	require.NoError(t, box.InsertLauncherWithFields("First", "ZORK.EXE", "", 0))

	launchers := box.Launchers()
	require.Len(t, launchers, 3)
	assert.Equal(t, "First", launchers[0].Title)
	assert.Equal(t, "Play Zork", launchers[1].Title)
	assert.Equal(t, "Intro", launchers[2].Title)
	assert.Equal(t, "/skip", launchers[2].Arguments)
}

func TestInsertLauncherIndexValidation(t *testing.T) {
	_, box := launcherBox(t)

	err := box.InsertLauncher(gamebox.Launcher{Title: "X", Path: "ZORK.EXE"}, 5)
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrIndexOutOfRange))

	err = box.InsertLauncher(gamebox.Launcher{Title: "X", Path: "ZORK.EXE"}, -1)
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrIndexOutOfRange))
}

func TestInsertDefaultClearsOtherDefaults(t *testing.T) {
	_, box := launcherBox(t)

	box.AddLauncher(gamebox.Launcher{Title: "A", Path: "ZORK.EXE", IsDefault: true})
	box.AddLauncher(gamebox.Launcher{Title: "B", Path: "INTRO.EXE", IsDefault: true})

	launchers := box.Launchers()
	assert.False(t, launchers[0].IsDefault)
	assert.True(t, launchers[1].IsDefault)
	atMostOneDefault(t, box)
}

func TestRemoveLauncher(t *testing.T) {
	t.Run("by_value", func(t *testing.T) {
		_, box := launcherBox(t)
		box.AddLauncherWithFields("A", "ZORK.EXE", "")
		box.AddLauncherWithFields("B", "INTRO.EXE", "")

		removed := box.RemoveLauncher(gamebox.Launcher{Title: "A", Path: "ZORK.EXE"})
		assert.True(t, removed)
		require.Len(t, box.Launchers(), 1)
		assert.Equal(t, "B", box.Launchers()[0].Title)

		assert.False(t, box.RemoveLauncher(gamebox.Launcher{Title: "missing"}))
	})

	t.Run("by_index", func(t *testing.T) {
		_, box := launcherBox(t)
		box.AddLauncherWithFields("A", "ZORK.EXE", "")

		err := box.RemoveLauncherAt(3)
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrIndexOutOfRange))

		require.NoError(t, box.RemoveLauncherAt(0))
		assert.Empty(t, box.Launchers())
	})

	t.Run("removing_default_leaves_no_default", func(t *testing.T) {
		_, box := launcherBox(t)
		box.AddLauncher(gamebox.Launcher{Title: "A", Path: "ZORK.EXE", IsDefault: true})
		box.AddLauncherWithFields("B", "INTRO.EXE", "")

		require.NoError(t, box.RemoveLauncherAt(0))
		_, ok := box.DefaultLauncher()
		assert.False(t, ok)
		assert.Equal(t, -1, box.DefaultLauncherIndex())
	})
}

func TestDefaultLauncherIndex(t *testing.T) {
	_, box := launcherBox(t)
	box.AddLauncherWithFields("A", "ZORK.EXE", "")
	box.AddLauncherWithFields("B", "INTRO.EXE", "")

	t.Run("no_default_initially", func(t *testing.T) {
		assert.Equal(t, -1, box.DefaultLauncherIndex())
		_, ok := box.DefaultLauncher()
		assert.False(t, ok)
	})

	t.Run("set_and_move_default", func(t *testing.T) {
		require.NoError(t, box.SetDefaultLauncherIndex(0))
		assert.Equal(t, 0, box.DefaultLauncherIndex())

		require.NoError(t, box.SetDefaultLauncherIndex(1))
		assert.Equal(t, 1, box.DefaultLauncherIndex())
		atMostOneDefault(t, box)

		launcher, ok := box.DefaultLauncher()
		require.True(t, ok)
		assert.Equal(t, "B", launcher.Title)
	})

	t.Run("minus_one_clears", func(t *testing.T) {
		require.NoError(t, box.SetDefaultLauncherIndex(-1))
		assert.Equal(t, -1, box.DefaultLauncherIndex())
	})

	t.Run("out_of_range_rejected", func(t *testing.T) {
		err := box.SetDefaultLauncherIndex(2)
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrIndexOutOfRange))

		err = box.SetDefaultLauncherIndex(-2)
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrIndexOutOfRange))
	})
}

func TestLauncherAt(t *testing.T) {
	_, box := launcherBox(t)
	box.AddLauncherWithFields("A", "ZORK.EXE", "")

	launcher, err := box.LauncherAt(0)
	require.NoError(t, err)
	assert.Equal(t, "A", launcher.Title)

	_, err = box.LauncherAt(1)
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrIndexOutOfRange))
}

func TestLaunchersSurviveRoundTrip(t *testing.T) {
	env, box := launcherBox(t)

	box.AddLauncher(gamebox.Launcher{Title: "Play", Path: "ZORK.EXE", Arguments: "/fast", IsDefault: true})
	box.AddLauncherWithFields("Intro", "INTRO.EXE", "")
	require.NoError(t, box.Save())

	reopened := openBox(t, env, box.Path())
	launchers := reopened.Launchers()
	require.Len(t, launchers, 2)
	assert.Equal(t, gamebox.Launcher{Title: "Play", Path: "ZORK.EXE", Arguments: "/fast", IsDefault: true}, launchers[0])
	assert.Equal(t, gamebox.Launcher{Title: "Intro", Path: "INTRO.EXE"}, launchers[1])
	assert.Equal(t, 0, reopened.DefaultLauncherIndex())
}

func TestDefaultInvariantUnderMixedOperations(t *testing.T) {
	_, box := launcherBox(t)

	box.AddLauncher(gamebox.Launcher{Title: "A", Path: "ZORK.EXE", IsDefault: true})
	require.NoError(t, box.InsertLauncher(gamebox.Launcher{Title: "B", Path: "INTRO.EXE", IsDefault: true}, 0))
	box.AddLauncherWithFields("C", "ZORK.EXE", "")
	require.NoError(t, box.SetDefaultLauncherIndex(2))
	require.NoError(t, box.RemoveLauncherAt(0))
	atMostOneDefault(t, box)

	launcher, ok := box.DefaultLauncher()
	require.True(t, ok)
	assert.Equal(t, "C", launcher.Title)
}
