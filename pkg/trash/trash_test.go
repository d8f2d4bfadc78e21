package trash_test

import (
	"os"
	"path/filepath"
	"syscall"
	"testing"

	"github.com/arthur-debert/gamebox/pkg/errors"
	"github.com/arthur-debert/gamebox/pkg/filesystem"
	"github.com/arthur-debert/gamebox/pkg/trash"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHomeTrashMovesItem(t *testing.T) {
	fs := filesystem.NewAferoFS(afero.NewMemMapFs())
	require.NoError(t, fs.MkdirAll("/box", 0755))
	require.NoError(t, fs.WriteFile("/box/readme.txt", []byte("old"), 0644))

	ht := trash.NewHomeTrashAt(fs, "/trash/files")
	dest, err := ht.Trash("/box/readme.txt")
	require.NoError(t, err)
	assert.Equal(t, "/trash/files/readme.txt", dest)

	_, err = fs.Stat("/box/readme.txt")
	assert.Error(t, err)
	data, err := fs.ReadFile(dest)
	require.NoError(t, err)
	assert.Equal(t, "old", string(data))
}

func TestHomeTrashCollisionKeepsBoth(t *testing.T) {
	fs := filesystem.NewAferoFS(afero.NewMemMapFs())
	require.NoError(t, fs.MkdirAll("/box", 0755))
	require.NoError(t, fs.MkdirAll("/trash/files", 0755))
	require.NoError(t, fs.WriteFile("/trash/files/readme.txt", []byte("first"), 0644))
	require.NoError(t, fs.WriteFile("/box/readme.txt", []byte("second"), 0644))

	ht := trash.NewHomeTrashAt(fs, "/trash/files")
	dest, err := ht.Trash("/box/readme.txt")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("/trash/files", "readme 2.txt"), dest)

	first, err := fs.ReadFile("/trash/files/readme.txt")
	require.NoError(t, err)
	assert.Equal(t, "first", string(first))
}

// crossDeviceFS simulates a trash directory on a different filesystem by
// failing every rename the way the kernel does between mounts.
type crossDeviceFS struct {
	filesystem.FS
}

func (c *crossDeviceFS) Rename(oldpath, newpath string) error {
	return &os.LinkError{Op: "rename", Old: oldpath, New: newpath, Err: syscall.EXDEV}
}

func TestHomeTrashCopiesAcrossFilesystems(t *testing.T) {
	fs := &crossDeviceFS{FS: filesystem.NewAferoFS(afero.NewMemMapFs())}
	require.NoError(t, fs.MkdirAll("/box/Documentation", 0755))
	require.NoError(t, fs.WriteFile("/box/Documentation/MANUAL.TXT", []byte("read me"), 0644))

	ht := trash.NewHomeTrashAt(fs, "/trash/files")
	dest, err := ht.Trash("/box/Documentation/MANUAL.TXT")
	require.NoError(t, err)
	assert.Equal(t, "/trash/files/MANUAL.TXT", dest)

	_, err = fs.Stat("/box/Documentation/MANUAL.TXT")
	assert.Error(t, err)
	data, err := fs.ReadFile(dest)
	require.NoError(t, err)
	assert.Equal(t, "read me", string(data))
}

func TestHomeTrashCopiesFoldersAcrossFilesystems(t *testing.T) {
	fs := &crossDeviceFS{FS: filesystem.NewAferoFS(afero.NewMemMapFs())}
	require.NoError(t, fs.MkdirAll("/box/Extras/scans", 0755))
	require.NoError(t, fs.WriteFile("/box/Extras/notes.txt", []byte("n"), 0644))
	require.NoError(t, fs.WriteFile("/box/Extras/scans/map.png", []byte("png"), 0644))
	require.NoError(t, fs.Symlink("/box/MANUAL.TXT", "/box/Extras/manual"))

	ht := trash.NewHomeTrashAt(fs, "/trash/files")
	dest, err := ht.Trash("/box/Extras")
	require.NoError(t, err)
	assert.Equal(t, "/trash/files/Extras", dest)

	_, err = fs.Stat("/box/Extras")
	assert.Error(t, err)
	data, err := fs.ReadFile(filepath.Join(dest, "scans", "map.png"))
	require.NoError(t, err)
	assert.Equal(t, "png", string(data))
	target, err := fs.Readlink(filepath.Join(dest, "manual"))
	require.NoError(t, err)
	assert.Equal(t, "/box/MANUAL.TXT", target)
}

func TestHomeTrashMissingItem(t *testing.T) {
	fs := filesystem.NewAferoFS(afero.NewMemMapFs())
	ht := trash.NewHomeTrashAt(fs, "/trash/files")

	_, err := ht.Trash("/box/missing.txt")
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrTrashFailed))
}

func TestRecorder(t *testing.T) {
	fs := filesystem.NewAferoFS(afero.NewMemMapFs())
	require.NoError(t, fs.MkdirAll("/box", 0755))
	require.NoError(t, fs.WriteFile("/box/manual.pdf", []byte("m"), 0644))

	rec := trash.NewRecorder(fs)
	dest, err := rec.Trash("/box/manual.pdf")
	require.NoError(t, err)
	assert.NotEmpty(t, dest)
	assert.Equal(t, []string{"/box/manual.pdf"}, rec.Trashed)

	_, err = fs.Stat("/box/manual.pdf")
	assert.Error(t, err)

	_, err = rec.Trash("/box/manual.pdf")
	assert.Error(t, err)
}
