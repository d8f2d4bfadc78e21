package gamebox

import (
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/arthur-debert/gamebox/pkg/errors"
	"github.com/arthur-debert/gamebox/pkg/filesystem"
)

// DocumentationEntry is one discovered or managed documentation file.
// Entries are transient query results, recomputed on each call; they are
// never cached across a Refresh.
type DocumentationEntry struct {
	// Path is the resolved filesystem location.
	Path string
	// IsSymlink is true when the entry is a symbolic reference rather
	// than a real copy.
	IsSymlink bool
	// InFolder is true when the entry lives inside the managed
	// documentation folder.
	InFolder bool
}

// ConflictBehaviour selects what happens when an imported documentation
// file collides with an existing name in the documentation folder.
type ConflictBehaviour int

const (
	// ConflictRename picks a free numbered variant of the name
	// ("readme.txt" becomes "readme 2.txt").
	ConflictRename ConflictBehaviour = iota
	// ConflictReplace moves the existing file to the trash and takes
	// over its exact name, so the replacement is itself recoverable.
	ConflictReplace
)

// DocumentationFolderPath returns where the managed documentation folder
// is (or would be, if it does not exist yet).
func (g *Gamebox) DocumentationFolderPath() string {
	return filepath.Join(g.path, g.settings.Gamebox.DocumentationFolder)
}

// HasDocumentationFolder reports whether the managed folder exists.
func (g *Gamebox) HasDocumentationFolder() bool {
	info, err := g.fs.Stat(g.DocumentationFolderPath())
	return err == nil && info.IsDir()
}

// DocumentationFiles returns the box's documentation. With a managed
// folder present its direct contents are returned; otherwise the rest of
// the box is searched for recognized documentation types.
func (g *Gamebox) DocumentationFiles() ([]DocumentationEntry, error) {
	if g.HasDocumentationFolder() {
		return g.listDocumentationFolder()
	}

	discovered, err := g.autodiscoverDocumentation()
	if err != nil {
		return nil, err
	}
	entries := make([]DocumentationEntry, 0, len(discovered))
	for _, path := range discovered {
		entries = append(entries, DocumentationEntry{
			Path:      path,
			IsSymlink: g.isSymlink(path),
			InFolder:  false,
		})
	}
	return entries, nil
}

func (g *Gamebox) listDocumentationFolder() ([]DocumentationEntry, error) {
	folder := g.DocumentationFolderPath()
	dirEntries, err := g.fs.ReadDir(folder)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrGameboxAccess,
			"could not read documentation folder %s", folder)
	}

	entries := make([]DocumentationEntry, 0, len(dirEntries))
	for _, entry := range dirEntries {
		if strings.HasPrefix(entry.Name(), ".") {
			continue
		}
		full := filepath.Join(folder, entry.Name())
		entries = append(entries, DocumentationEntry{
			Path:      full,
			IsSymlink: entry.Type()&fs.ModeSymlink != 0,
			InFolder:  true,
		})
	}
	return entries, nil
}

// DocumentationFolder returns the managed folder's path. When the folder
// is missing and createIfMissing is true, it is created and seeded with
// symbolic references to every documentation file found elsewhere in the
// box; with createIfMissing false a missing folder is an error.
func (g *Gamebox) DocumentationFolder(createIfMissing bool) (string, error) {
	folder := g.DocumentationFolderPath()
	if g.HasDocumentationFolder() {
		return folder, nil
	}
	if !createIfMissing {
		return "", errors.Newf(errors.ErrNotFound,
			"gamebox has no documentation folder at %s", folder)
	}

	if err := g.fs.MkdirAll(folder, 0755); err != nil {
		return "", errors.Wrapf(err, errors.ErrFolderCreate,
			"could not create documentation folder %s", folder)
	}
	if err := g.PopulateDocumentationFolder(); err != nil {
		return "", err
	}

	g.logger.Info().Str("folder", folder).Msg("created documentation folder")
	return folder, nil
}

// PopulateDocumentationFolder seeds the existing documentation folder with
// symbolic references to documentation found elsewhere in the box. It does
// not create the folder.
func (g *Gamebox) PopulateDocumentationFolder() error {
	if !g.HasDocumentationFolder() {
		return errors.Newf(errors.ErrNotFound,
			"gamebox has no documentation folder at %s", g.DocumentationFolderPath())
	}

	discovered, err := g.autodiscoverDocumentation()
	if err != nil {
		return err
	}
	for _, source := range discovered {
		if _, err := g.AddDocumentationSymlink(source, "", ConflictRename); err != nil {
			return err
		}
	}
	return nil
}

// AddDocumentationFile copies the source file into the documentation
// folder, creating the folder first if needed, and returns the final
// destination. title overrides the destination filename; the source's
// extension is kept when title has none.
func (g *Gamebox) AddDocumentationFile(source, title string, conflict ConflictBehaviour) (string, error) {
	return g.importDocumentation(source, title, conflict, false)
}

// AddDocumentationSymlink is AddDocumentationFile but creates a symbolic
// reference instead of a copy.
func (g *Gamebox) AddDocumentationSymlink(source, title string, conflict ConflictBehaviour) (string, error) {
	return g.importDocumentation(source, title, conflict, true)
}

func (g *Gamebox) importDocumentation(source, title string, conflict ConflictBehaviour, asSymlink bool) (string, error) {
	folder, err := g.DocumentationFolder(true)
	if err != nil {
		return "", err
	}

	name := destinationName(source, title)
	switch conflict {
	case ConflictRename:
		name = filesystem.NextAvailableName(g.fs, folder, name)
	case ConflictReplace:
		existing := filepath.Join(folder, name)
		if _, statErr := g.fs.Lstat(existing); statErr == nil {
			if _, err := g.trasher.Trash(existing); err != nil {
				return "", err
			}
		}
	}
	dest := filepath.Join(folder, name)

	if asSymlink {
		if err := g.fs.Symlink(source, dest); err != nil {
			return "", errors.Wrapf(err, errors.ErrSymlinkCreate,
				"could not link %s into documentation folder", source)
		}
	} else {
		if err := g.copyFile(source, dest); err != nil {
			return "", err
		}
	}

	g.logger.Debug().
		Str("source", source).
		Str("dest", dest).
		Bool("symlink", asSymlink).
		Msg("imported documentation")
	g.notify(Event{Kind: EventDocumentationChanged})
	return dest, nil
}

// destinationName resolves the filename an import lands under. An empty
// title keeps the source's name; a title without an extension inherits
// the source's.
func destinationName(source, title string) string {
	if title == "" {
		return filepath.Base(source)
	}
	if filepath.Ext(title) == "" {
		return title + filepath.Ext(source)
	}
	return title
}

// copyFile copies source to dest via a temporary file in the destination
// directory so the final name only ever appears fully written.
func (g *Gamebox) copyFile(source, dest string) error {
	data, err := g.fs.ReadFile(source)
	if err != nil {
		return errors.Wrapf(err, errors.ErrFileCopy, "could not read %s", source)
	}

	dir := filepath.Dir(dest)
	tmpName := filesystem.NextAvailableName(g.fs, dir, "."+filepath.Base(dest)+".tmp")
	tmpPath := filepath.Join(dir, tmpName)
	if err := g.fs.WriteFile(tmpPath, data, 0644); err != nil {
		return errors.Wrapf(err, errors.ErrFileCopy, "could not write %s", tmpPath)
	}
	if err := g.fs.Rename(tmpPath, dest); err != nil {
		_ = g.fs.Remove(tmpPath)
		return errors.Wrapf(err, errors.ErrFileCopy, "could not move %s into place", dest)
	}
	return nil
}

// TrashDocumentation moves the given documentation file to the trash and
// returns its new location. The file's parent must be exactly the managed
// documentation folder.
func (g *Gamebox) TrashDocumentation(path string) (string, error) {
	if !g.CanTrashDocumentation(path) {
		return "", errors.Newf(errors.ErrNotInDocsFolder,
			"%s is not inside the documentation folder", path).
			WithDetail("folder", g.DocumentationFolderPath())
	}

	location, err := g.trasher.Trash(filepath.Clean(path))
	if err != nil {
		return "", err
	}
	g.notify(Event{Kind: EventDocumentationChanged})
	return location, nil
}

// CanTrashDocumentation mirrors TrashDocumentation's containment check
// without performing the operation: the path's parent must be exactly the
// managed documentation folder. A prefix check is not enough; similarly
// named siblings must be rejected.
func (g *Gamebox) CanTrashDocumentation(path string) bool {
	return filepath.Dir(filepath.Clean(path)) == filepath.Clean(g.DocumentationFolderPath())
}

// IsDocumentationFile reports whether the path appears to be a
// documentation file under the box's classification rules.
func (g *Gamebox) IsDocumentationFile(path string) bool {
	return g.rules.IsDocumentation(path, false)
}

// DocumentationInLocation returns all documentation files directly inside
// dir, descending into subdirectories when searchSubdirs is true.
func (g *Gamebox) DocumentationInLocation(dir string, searchSubdirs bool) ([]string, error) {
	entries, err := g.fs.ReadDir(dir)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrGameboxAccess, "could not read %s", dir)
	}

	var found []string
	for _, entry := range entries {
		full := filepath.Join(dir, entry.Name())
		if entry.IsDir() {
			if searchSubdirs {
				nested, err := g.DocumentationInLocation(full, true)
				if err != nil {
					return nil, err
				}
				found = append(found, nested...)
			}
			continue
		}
		if g.rules.IsDocumentation(entry.Name(), false) {
			found = append(found, full)
		}
	}
	return found, nil
}

// autodiscoverDocumentation searches the whole box, excluding the managed
// documentation folder, for recognized documentation. Directories named
// like the documentation folder contribute their direct files but are not
// descended into further; everywhere else the search is recursive.
func (g *Gamebox) autodiscoverDocumentation() ([]string, error) {
	var found []string
	err := g.discoverDocs(g.path, &found)
	return found, err
}

func (g *Gamebox) discoverDocs(dir string, found *[]string) error {
	entries, err := g.fs.ReadDir(dir)
	if err != nil {
		return errors.Wrapf(err, errors.ErrGameboxAccess, "could not read %s", dir)
	}

	docFolder := filepath.Clean(g.DocumentationFolderPath())
	for _, entry := range entries {
		name := entry.Name()
		full := filepath.Join(dir, name)

		if entry.IsDir() {
			if filepath.Clean(full) == docFolder {
				continue
			}
			if strings.EqualFold(name, g.settings.Gamebox.DocumentationFolder) {
				// A nested documentation-like folder: take its direct
				// files, do not descend further.
				direct, err := g.DocumentationInLocation(full, false)
				if err != nil {
					return err
				}
				*found = append(*found, direct...)
				continue
			}
			if err := g.discoverDocs(full, found); err != nil {
				return err
			}
			continue
		}

		if dir == g.path && g.isReservedName(name) {
			continue
		}
		if g.rules.IsDocumentation(name, false) {
			*found = append(*found, full)
		}
	}
	return nil
}

func (g *Gamebox) isSymlink(path string) bool {
	info, err := g.fs.Lstat(path)
	return err == nil && info.Mode()&fs.ModeSymlink != 0
}
