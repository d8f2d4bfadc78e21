// Package gamebox models a gamebox: a self-contained directory bundling a
// DOS program with its drives, launch configuration and documentation.
// A Gamebox is opened from a directory path; metadata lives in a manifest
// file inside the box, and the box's contents are discovered and
// classified on demand.
//
// A Gamebox instance assumes a single logical owner; operations on the
// same instance are not safe to call concurrently without external
// synchronization. Instances over different paths are independent.
package gamebox

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"

	"github.com/arthur-debert/gamebox/pkg/classify"
	"github.com/arthur-debert/gamebox/pkg/config"
	"github.com/arthur-debert/gamebox/pkg/errors"
	"github.com/arthur-debert/gamebox/pkg/filesystem"
	"github.com/arthur-debert/gamebox/pkg/logging"
	"github.com/arthur-debert/gamebox/pkg/trash"
)

// Gamebox is the package model over one gamebox directory.
type Gamebox struct {
	path     string
	fs       filesystem.FS
	settings *config.Settings
	rules    *classify.Ruleset
	trasher  trash.Trasher
	logger   zerolog.Logger

	store *metadataStore
	undo  UndoRecorder

	observers      map[int]func(Event)
	nextObserverID int

	scanCache *scanResults
}

// Option customizes a Gamebox at open time.
type Option func(*Gamebox)

// WithFS substitutes the filesystem implementation.
func WithFS(fs filesystem.FS) Option {
	return func(g *Gamebox) { g.fs = fs }
}

// WithSettings substitutes the configuration.
func WithSettings(settings *config.Settings) Option {
	return func(g *Gamebox) { g.settings = settings }
}

// WithRuleset substitutes the classification rules.
func WithRuleset(rules *classify.Ruleset) Option {
	return func(g *Gamebox) { g.rules = rules }
}

// WithTrasher substitutes the trash collaborator.
func WithTrasher(trasher trash.Trasher) Option {
	return func(g *Gamebox) { g.trasher = trasher }
}

// WithUndoRecorder registers the external undo stack.
func WithUndoRecorder(recorder UndoRecorder) Option {
	return func(g *Gamebox) { g.undo = recorder }
}

// Open points the model at a gamebox directory, loads its manifest and
// ensures the box has an identifier.
//
// A missing manifest initializes defaults silently. A corrupt manifest
// returns the opened Gamebox together with an ErrManifestCorrupt error:
// the metadata is left at defaults and nothing is auto-repaired, but the
// caller may keep the instance and recover manually.
func Open(path string, opts ...Option) (*Gamebox, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrInvalidInput, "invalid gamebox path %q", path)
	}

	g := &Gamebox{
		path:      abs,
		observers: make(map[int]func(Event)),
		logger:    logging.GetLogger("gamebox"),
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.fs == nil {
		g.fs = filesystem.NewOS()
	}
	if g.settings == nil {
		settings, err := config.Load()
		if err != nil {
			return nil, err
		}
		g.settings = settings
	}
	if g.rules == nil {
		g.rules = classify.FromSettings(g.settings)
	}
	if g.trasher == nil {
		g.trasher = trash.NewHomeTrash(g.fs)
	}

	info, err := g.fs.Stat(abs)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrapf(err, errors.ErrGameboxNotFound, "no gamebox at %s", abs)
		}
		return nil, errors.Wrapf(err, errors.ErrGameboxAccess, "cannot open gamebox at %s", abs)
	}
	if !info.IsDir() {
		return nil, errors.Newf(errors.ErrInvalidInput, "%s is not a directory", abs)
	}

	g.store = newMetadataStore(g.fs, abs,
		g.settings.Gamebox.ManifestName, g.settings.Gamebox.LegacyManifestName)
	loadErr := g.store.load()

	if g.store.identifier() == "" {
		g.ensureIdentifier()
	}

	g.logger.Debug().
		Str("path", abs).
		Str("identifier", g.store.identifier()).
		Msg("opened gamebox")
	return g, loadErr
}

// ensureIdentifier generates and records an identifier for a box that has
// none. Scan failures fall through to a UUID so the identifier invariant
// holds even on unreadable boxes.
func (g *Gamebox) ensureIdentifier() {
	executables, err := g.Executables()
	if err != nil {
		g.logger.Warn().Err(err).Msg("executable scan failed, falling back to UUID identifier")
		executables = nil
	}
	id, idType := generateIdentifier(g.fs, executables)
	g.store.setIdentifier(id, idType)
}

// Path returns the absolute path of the gamebox directory.
func (g *Gamebox) Path() string {
	return g.path
}

// Name returns the display name: the directory's base name minus the
// package extension.
func (g *Gamebox) Name() string {
	base := filepath.Base(g.path)
	ext := g.settings.Gamebox.PackageExtension
	if ext != "" && strings.EqualFold(filepath.Ext(base), ext) {
		return base[:len(base)-len(ext)]
	}
	return base
}

// GameIdentifier returns the box's unique identifier. Never empty once
// the box has been opened.
func (g *Gamebox) GameIdentifier() string {
	return g.store.identifier()
}

// GameIdentifierType returns how the identifier was produced.
func (g *Gamebox) GameIdentifierType() IdentifierType {
	return g.store.identifierType()
}

// SetGameIdentifier assigns an identifier explicitly, e.g. a user-chosen
// or reverse-DNS identifier.
func (g *Gamebox) SetGameIdentifier(id string, idType IdentifierType) error {
	if id == "" {
		return errors.New(errors.ErrInvalidInput, "game identifier cannot be empty")
	}

	previous, previousType := g.store.identifier(), g.store.identifierType()
	g.recordUndo(Change{
		Label: "Set Game Identifier",
		Forward: Command{Op: "setGameIdentifier", Args: map[string]interface{}{
			"identifier": id, "type": int(idType),
		}},
		Inverse: []Command{{Op: "setGameIdentifier", Args: map[string]interface{}{
			"identifier": previous, "type": int(previousType),
		}}},
	})

	g.store.setIdentifier(id, idType)
	g.notify(Event{Kind: EventMetadataChanged})
	return nil
}

// TargetPath returns the default program path, relative to the box root.
// Empty when the box has no default target.
func (g *Gamebox) TargetPath() string {
	return g.store.targetPath()
}

// SetTargetPath sets the default program. The path must stay inside the
// box root once joined to it; violations are rejected with
// ErrTargetOutsideGamebox and the previous value is kept. An empty path
// clears the target.
func (g *Gamebox) SetTargetPath(path string) error {
	normalized, err := validateTargetPath(g.path, path)
	if err != nil {
		return err
	}

	previous := g.store.targetPath()
	if previous == normalized {
		return nil
	}

	g.recordUndo(Change{
		Label: "Set Target Program",
		Forward: Command{Op: "setTargetPath", Args: map[string]interface{}{
			"path": normalized,
		}},
		Inverse: []Command{{Op: "setTargetPath", Args: map[string]interface{}{
			"path": previous,
		}}},
	})

	g.store.setTargetPath(normalized)
	g.notify(Event{Kind: EventTargetChanged})
	return nil
}

// CloseOnExit reports whether the session should end when the target
// program exits instead of returning to the DOS prompt.
func (g *Gamebox) CloseOnExit() bool {
	return g.store.closeOnExit()
}

// SetCloseOnExit sets the close-on-exit flag.
func (g *Gamebox) SetCloseOnExit(close bool) {
	previous := g.store.closeOnExit()
	if previous == close {
		return
	}

	g.recordUndo(Change{
		Label: "Set Close On Exit",
		Forward: Command{Op: "setCloseOnExit", Args: map[string]interface{}{
			"close": close,
		}},
		Inverse: []Command{{Op: "setCloseOnExit", Args: map[string]interface{}{
			"close": previous,
		}}},
	})

	g.store.setCloseOnExit(close)
	g.notify(Event{Kind: EventMetadataChanged})
}

// GameInfo returns the metadata value stored under key, or nil.
func (g *Gamebox) GameInfo(key string) interface{} {
	return g.store.value(key)
}

// SetGameInfo stores an arbitrary metadata value under key. A nil value
// removes the key.
func (g *Gamebox) SetGameInfo(key string, value interface{}) {
	previous := g.store.value(key)
	g.recordUndo(Change{
		Label: "Set Game Info",
		Forward: Command{Op: "setGameInfo", Args: map[string]interface{}{
			"key": key, "value": value,
		}},
		Inverse: []Command{{Op: "setGameInfo", Args: map[string]interface{}{
			"key": key, "value": previous,
		}}},
	})

	g.store.setValue(key, value)
	g.notify(Event{Kind: EventMetadataChanged})
}

// Save writes the manifest. Mutations only mark the store dirty; nothing
// is written until Save is called.
func (g *Gamebox) Save() error {
	return g.store.save()
}

// Dirty reports whether there are unsaved metadata changes.
func (g *Gamebox) Dirty() bool {
	return g.store.dirty
}

// ConfigurationFilePath returns where the emulator configuration file is
// located, or would be if it does not exist.
func (g *Gamebox) ConfigurationFilePath() string {
	return filepath.Join(g.path, g.settings.Gamebox.ConfigFileName)
}

// ConfigurationFile returns the path of the emulator configuration file,
// or empty if the box has none.
func (g *Gamebox) ConfigurationFile() string {
	path := g.ConfigurationFilePath()
	if _, err := g.fs.Stat(path); err != nil {
		return ""
	}
	return path
}

// CoverArt returns the box's cover art blob, or nil when it has none.
// The on-disk representation is opaque to the model.
func (g *Gamebox) CoverArt() ([]byte, error) {
	path := filepath.Join(g.path, g.settings.Gamebox.CoverArtName)
	data, err := g.fs.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, errors.Wrapf(err, errors.ErrFileAccess, "could not read cover art %s", path)
	}
	return data, nil
}

// SetCoverArt stores the cover art blob. A nil or empty blob removes it.
func (g *Gamebox) SetCoverArt(data []byte) error {
	path := filepath.Join(g.path, g.settings.Gamebox.CoverArtName)
	if len(data) == 0 {
		if err := g.fs.Remove(path); err != nil && !os.IsNotExist(err) {
			return errors.Wrapf(err, errors.ErrFileAccess, "could not remove cover art %s", path)
		}
		g.notify(Event{Kind: EventMetadataChanged})
		return nil
	}
	if err := g.fs.WriteFile(path, data, 0644); err != nil {
		return errors.Wrapf(err, errors.ErrFileWrite, "could not write cover art %s", path)
	}
	g.notify(Event{Kind: EventMetadataChanged})
	return nil
}

// Refresh drops the cached scan results. Executables, volumes and
// documentation autodiscovery all go stale together; the next query
// rescans the tree.
func (g *Gamebox) Refresh() {
	g.scanCache = nil
	g.notify(Event{Kind: EventRefreshed})
}

// SetUndoRecorder registers (or clears, with nil) the undo collaborator.
func (g *Gamebox) SetUndoRecorder(recorder UndoRecorder) {
	g.undo = recorder
}
