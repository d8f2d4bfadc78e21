package filesystem_test

import (
	"testing"

	"github.com/arthur-debert/gamebox/pkg/filesystem"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"
)

func TestNextAvailableName(t *testing.T) {
	fs := filesystem.NewAferoFS(afero.NewMemMapFs())
	require.NoError(t, fs.MkdirAll("/docs", 0755))

	t.Run("free_name_unchanged", func(t *testing.T) {
		require.Equal(t, "readme.txt", filesystem.NextAvailableName(fs, "/docs", "readme.txt"))
	})

	t.Run("first_collision_gets_2", func(t *testing.T) {
		require.NoError(t, fs.WriteFile("/docs/readme.txt", []byte("a"), 0644))
		require.Equal(t, "readme 2.txt", filesystem.NextAvailableName(fs, "/docs", "readme.txt"))
	})

	t.Run("lowest_free_integer_wins", func(t *testing.T) {
		require.NoError(t, fs.WriteFile("/docs/readme 2.txt", []byte("b"), 0644))
		require.NoError(t, fs.WriteFile("/docs/readme 4.txt", []byte("d"), 0644))
		require.Equal(t, "readme 3.txt", filesystem.NextAvailableName(fs, "/docs", "readme.txt"))
	})

	t.Run("no_extension", func(t *testing.T) {
		require.NoError(t, fs.WriteFile("/docs/MANUAL", []byte("m"), 0644))
		require.Equal(t, "MANUAL 2", filesystem.NextAvailableName(fs, "/docs", "MANUAL"))
	})
}
