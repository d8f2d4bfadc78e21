// Package trash moves files into a recoverable trash location instead of
// deleting them. The gamebox model depends only on the Trasher interface;
// the default implementation follows the freedesktop home-trash layout.
package trash

import (
	stderrors "errors"
	"io/fs"
	"path/filepath"
	"syscall"

	"github.com/adrg/xdg"
	"github.com/rs/zerolog"

	"github.com/arthur-debert/gamebox/pkg/errors"
	"github.com/arthur-debert/gamebox/pkg/filesystem"
	"github.com/arthur-debert/gamebox/pkg/logging"
)

// Trasher moves items to a recoverable location.
type Trasher interface {
	// Trash moves path out of the way and returns its new location.
	Trash(path string) (string, error)
}

// HomeTrash moves items into the user's home trash directory
// ($XDG_DATA_HOME/Trash/files), renaming on collision so nothing in the
// trash is ever overwritten.
type HomeTrash struct {
	fs     filesystem.FS
	dir    string
	logger zerolog.Logger
}

// NewHomeTrash creates a HomeTrash rooted at the XDG data directory.
func NewHomeTrash(fs filesystem.FS) *HomeTrash {
	return NewHomeTrashAt(fs, filepath.Join(xdg.DataHome, "Trash", "files"))
}

// NewHomeTrashAt creates a HomeTrash rooted at an explicit directory.
func NewHomeTrashAt(fs filesystem.FS, dir string) *HomeTrash {
	return &HomeTrash{
		fs:     fs,
		dir:    dir,
		logger: logging.GetLogger("trash"),
	}
}

// Trash moves path into the trash directory and returns its new location.
func (t *HomeTrash) Trash(path string) (string, error) {
	if err := t.fs.MkdirAll(t.dir, 0755); err != nil {
		return "", errors.Wrapf(err, errors.ErrTrashFailed,
			"could not create trash directory %s", t.dir)
	}

	name := filesystem.NextAvailableName(t.fs, t.dir, filepath.Base(path))
	dest := filepath.Join(t.dir, name)

	if err := t.fs.Rename(path, dest); err != nil {
		if !isCrossDevice(err) {
			return "", errors.Wrapf(err, errors.ErrTrashFailed,
				"could not move %s to trash", path)
		}
		// The trash directory lives on another filesystem, so rename
		// cannot work. Copy the item over, then remove the original.
		if err := t.copyTree(path, dest); err != nil {
			_ = t.fs.RemoveAll(dest)
			return "", err
		}
		if err := t.fs.RemoveAll(path); err != nil {
			return "", errors.Wrapf(err, errors.ErrTrashFailed,
				"could not remove %s after copying it to trash", path)
		}
	}

	t.logger.Debug().
		Str("path", path).
		Str("trashedTo", dest).
		Msg("moved item to trash")
	return dest, nil
}

func isCrossDevice(err error) bool {
	return stderrors.Is(err, syscall.EXDEV)
}

// copyTree mirrors source at dest through the FS interface. Symlinks are
// recreated pointing at their original target, not followed.
func (t *HomeTrash) copyTree(source, dest string) error {
	info, err := t.fs.Lstat(source)
	if err != nil {
		return errors.Wrapf(err, errors.ErrTrashFailed, "cannot trash %s", source)
	}

	switch {
	case info.Mode()&fs.ModeSymlink != 0:
		target, err := t.fs.Readlink(source)
		if err != nil {
			return errors.Wrapf(err, errors.ErrTrashFailed, "cannot read link %s", source)
		}
		if err := t.fs.Symlink(target, dest); err != nil {
			return errors.Wrapf(err, errors.ErrTrashFailed, "cannot recreate link at %s", dest)
		}
	case info.IsDir():
		if err := t.fs.MkdirAll(dest, info.Mode().Perm()); err != nil {
			return errors.Wrapf(err, errors.ErrTrashFailed, "cannot create %s", dest)
		}
		entries, err := t.fs.ReadDir(source)
		if err != nil {
			return errors.Wrapf(err, errors.ErrTrashFailed, "cannot read %s", source)
		}
		for _, entry := range entries {
			err := t.copyTree(filepath.Join(source, entry.Name()),
				filepath.Join(dest, entry.Name()))
			if err != nil {
				return err
			}
		}
	default:
		data, err := t.fs.ReadFile(source)
		if err != nil {
			return errors.Wrapf(err, errors.ErrTrashFailed, "cannot read %s", source)
		}
		if err := t.fs.WriteFile(dest, data, info.Mode().Perm()); err != nil {
			return errors.Wrapf(err, errors.ErrTrashFailed, "cannot write %s", dest)
		}
	}
	return nil
}

// Recorder is a Trasher for tests. It removes the item from the filesystem
// and records the call, returning a stable fake trash location.
type Recorder struct {
	fs      filesystem.FS
	Trashed []string
}

// NewRecorder creates a Recorder over the given filesystem.
func NewRecorder(fs filesystem.FS) *Recorder {
	return &Recorder{fs: fs}
}

// Trash removes path and records it.
func (r *Recorder) Trash(path string) (string, error) {
	if _, err := r.fs.Lstat(path); err != nil {
		return "", errors.Wrapf(err, errors.ErrTrashFailed, "cannot trash %s", path)
	}
	if err := r.fs.RemoveAll(path); err != nil {
		return "", errors.Wrapf(err, errors.ErrTrashFailed, "cannot trash %s", path)
	}
	r.Trashed = append(r.Trashed, path)
	return filepath.Join("/", "trash", filepath.Base(path)), nil
}
