package gamebox

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/beevik/etree"
	"github.com/pelletier/go-toml/v2"

	"github.com/arthur-debert/gamebox/pkg/errors"
	"github.com/arthur-debert/gamebox/pkg/filesystem"
)

// Manifest keys. The typed accessors on Gamebox read and write these keys
// inside the free-form metadata mapping; anything else in the mapping is
// preserved untouched across load/save.
const (
	GameIdentifierKey     = "game-identifier"
	GameIdentifierTypeKey = "game-identifier-type"
	TargetProgramKey      = "target-program"
	CloseOnExitKey        = "close-on-exit"
	LaunchersKey          = "launchers"
)

// Launcher record keys inside the manifest's launcher array.
const (
	LauncherTitleKey     = "title"
	LauncherPathKey      = "path"
	LauncherArgsKey      = "arguments"
	LauncherIsDefaultKey = "default"
)

// Keys used by the original application's XML plist manifest. Read-only:
// a legacy manifest is imported once and saved back in the TOML format.
const (
	legacyGameIdentifierKey     = "BXGameIdentifier"
	legacyGameIdentifierTypeKey = "BXGameIdentifierType"
	legacyTargetProgramKey      = "BXTargetProgram"
	legacyCloseOnExitKey        = "BXCloseOnExit"
	legacyLaunchersKey          = "BXLaunchers"
	legacyLauncherTitleKey      = "BXLauncherTitle"
	legacyLauncherPathKey       = "BXLauncherPath"
	legacyLauncherArgsKey       = "BXLauncherArgs"
	legacyLauncherIsDefaultKey  = "BXLauncherIsDefault"
)

// metadataStore persists the gamebox's metadata mapping to the manifest
// file, keeping the typed launcher list synchronized with the launchers key.
type metadataStore struct {
	fs           filesystem.FS
	boxPath      string
	manifestName string
	legacyName   string

	info      map[string]interface{}
	launchers []Launcher
	dirty     bool
}

func newMetadataStore(fs filesystem.FS, boxPath, manifestName, legacyName string) *metadataStore {
	return &metadataStore{
		fs:           fs,
		boxPath:      boxPath,
		manifestName: manifestName,
		legacyName:   legacyName,
		info:         make(map[string]interface{}),
	}
}

func (s *metadataStore) manifestPath() string {
	return filepath.Join(s.boxPath, s.manifestName)
}

func (s *metadataStore) legacyManifestPath() string {
	return filepath.Join(s.boxPath, s.legacyName)
}

func (s *metadataStore) markDirty() {
	s.dirty = true
}

// load reads the manifest. A missing manifest is a fresh box and loads
// defaults silently; an unparsable manifest surfaces ErrManifestCorrupt and
// leaves the store holding defaults so the caller may recover manually.
func (s *metadataStore) load() error {
	data, err := s.fs.ReadFile(s.manifestPath())
	if err == nil {
		return s.loadTOML(data)
	}
	if !os.IsNotExist(err) {
		return errors.Wrapf(err, errors.ErrGameboxAccess,
			"could not read manifest %s", s.manifestPath())
	}

	// Fall back to the legacy plist manifest, if any.
	data, err = s.fs.ReadFile(s.legacyManifestPath())
	if err == nil {
		return s.loadLegacyPlist(data)
	}
	if !os.IsNotExist(err) {
		return errors.Wrapf(err, errors.ErrGameboxAccess,
			"could not read manifest %s", s.legacyManifestPath())
	}

	// Fresh box: empty metadata.
	s.info = make(map[string]interface{})
	s.launchers = nil
	return nil
}

func (s *metadataStore) loadTOML(data []byte) error {
	raw := make(map[string]interface{})
	if err := toml.Unmarshal(data, &raw); err != nil {
		return errors.Wrapf(err, errors.ErrManifestCorrupt,
			"manifest %s is not valid TOML", s.manifestPath())
	}
	s.adopt(raw)
	return nil
}

// adopt takes a freshly parsed metadata mapping, splitting the launcher
// array out into its typed form.
func (s *metadataStore) adopt(raw map[string]interface{}) {
	s.launchers = parseLaunchers(raw[LaunchersKey])
	delete(raw, LaunchersKey)
	s.info = raw
	s.dirty = false
}

func parseLaunchers(value interface{}) []Launcher {
	records, ok := asSlice(value)
	if !ok {
		return nil
	}
	var launchers []Launcher
	for _, record := range records {
		dict, ok := record.(map[string]interface{})
		if !ok {
			continue
		}
		launchers = append(launchers, Launcher{
			Title:     asString(dict[LauncherTitleKey]),
			Path:      asString(dict[LauncherPathKey]),
			Arguments: asString(dict[LauncherArgsKey]),
			IsDefault: asBool(dict[LauncherIsDefaultKey]),
		})
	}
	return launchers
}

// save writes the whole metadata mapping atomically: marshal, write to a
// temporary file beside the manifest, then rename into place.
func (s *metadataStore) save() error {
	doc := make(map[string]interface{}, len(s.info)+1)
	for key, value := range s.info {
		doc[key] = value
	}
	if len(s.launchers) > 0 {
		records := make([]map[string]interface{}, len(s.launchers))
		for i, launcher := range s.launchers {
			record := map[string]interface{}{
				LauncherTitleKey:     launcher.Title,
				LauncherPathKey:      launcher.Path,
				LauncherIsDefaultKey: launcher.IsDefault,
			}
			if launcher.Arguments != "" {
				record[LauncherArgsKey] = launcher.Arguments
			}
			records[i] = record
		}
		doc[LaunchersKey] = records
	}

	data, err := toml.Marshal(doc)
	if err != nil {
		return errors.Wrap(err, errors.ErrInternal, "could not marshal manifest")
	}

	tmpName := filesystem.NextAvailableName(s.fs, s.boxPath, "."+s.manifestName+".tmp")
	tmpPath := filepath.Join(s.boxPath, tmpName)
	if err := s.fs.WriteFile(tmpPath, data, 0644); err != nil {
		return errors.Wrapf(err, errors.ErrFileWrite,
			"could not write manifest %s", tmpPath)
	}
	if err := s.fs.Rename(tmpPath, s.manifestPath()); err != nil {
		_ = s.fs.Remove(tmpPath)
		return errors.Wrapf(err, errors.ErrFileWrite,
			"could not move manifest into place at %s", s.manifestPath())
	}

	s.dirty = false
	return nil
}

// Typed accessors over the metadata mapping.

func (s *metadataStore) identifier() string {
	return asString(s.info[GameIdentifierKey])
}

func (s *metadataStore) identifierType() IdentifierType {
	return IdentifierType(asInt(s.info[GameIdentifierTypeKey]))
}

func (s *metadataStore) setIdentifier(id string, idType IdentifierType) {
	s.info[GameIdentifierKey] = id
	s.info[GameIdentifierTypeKey] = int64(idType)
	s.markDirty()
}

func (s *metadataStore) targetPath() string {
	return asString(s.info[TargetProgramKey])
}

func (s *metadataStore) setTargetPath(path string) {
	if path == "" {
		delete(s.info, TargetProgramKey)
	} else {
		s.info[TargetProgramKey] = path
	}
	s.markDirty()
}

func (s *metadataStore) closeOnExit() bool {
	return asBool(s.info[CloseOnExitKey])
}

func (s *metadataStore) setCloseOnExit(close bool) {
	s.info[CloseOnExitKey] = close
	s.markDirty()
}

func (s *metadataStore) value(key string) interface{} {
	return s.info[key]
}

func (s *metadataStore) setValue(key string, value interface{}) {
	if value == nil {
		delete(s.info, key)
	} else {
		s.info[key] = value
	}
	s.markDirty()
}

// validateTargetPath normalizes a candidate target path and enforces the
// containment invariant: the path, joined to the box root, must stay inside
// the root. Returns the normalized relative path. An empty path clears the
// target and is always valid.
func validateTargetPath(root, path string) (string, error) {
	if path == "" {
		return "", nil
	}

	if filepath.IsAbs(path) {
		rel, err := filepath.Rel(root, filepath.Clean(path))
		if err != nil {
			return "", errors.Wrapf(err, errors.ErrTargetOutsideGamebox,
				"target %q is not inside the gamebox", path)
		}
		path = rel
	}

	cleaned := filepath.Clean(path)
	if cleaned == ".." || strings.HasPrefix(cleaned, ".."+string(filepath.Separator)) {
		return "", errors.Newf(errors.ErrTargetOutsideGamebox,
			"target %q escapes the gamebox root", path)
	}
	return cleaned, nil
}

// loadLegacyPlist imports metadata from the original application's XML
// plist manifest, mapping its keys onto the current manifest keys.
func (s *metadataStore) loadLegacyPlist(data []byte) error {
	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(data); err != nil {
		return errors.Wrapf(err, errors.ErrManifestCorrupt,
			"legacy manifest %s is not valid XML", s.legacyManifestPath())
	}

	root := doc.FindElement("/plist/dict")
	if root == nil {
		return errors.Newf(errors.ErrManifestCorrupt,
			"legacy manifest %s has no plist dictionary", s.legacyManifestPath())
	}

	raw := plistDict(root)

	info := make(map[string]interface{})
	for key, value := range raw {
		switch key {
		case legacyGameIdentifierKey:
			info[GameIdentifierKey] = value
		case legacyGameIdentifierTypeKey:
			info[GameIdentifierTypeKey] = value
		case legacyTargetProgramKey:
			info[TargetProgramKey] = value
		case legacyCloseOnExitKey:
			info[CloseOnExitKey] = value
		case legacyLaunchersKey:
			records, _ := asSlice(value)
			converted := make([]interface{}, 0, len(records))
			for _, record := range records {
				dict, ok := record.(map[string]interface{})
				if !ok {
					continue
				}
				converted = append(converted, map[string]interface{}{
					LauncherTitleKey:     dict[legacyLauncherTitleKey],
					LauncherPathKey:      dict[legacyLauncherPathKey],
					LauncherArgsKey:      dict[legacyLauncherArgsKey],
					LauncherIsDefaultKey: dict[legacyLauncherIsDefaultKey],
				})
			}
			info[LaunchersKey] = converted
		default:
			info[key] = value
		}
	}

	s.adopt(info)
	// Imported metadata has not been written in the current format yet.
	s.dirty = true
	return nil
}

// plistDict converts a plist <dict> element into a map. Supported value
// elements: string, integer, real, true, false, array (of dicts or
// scalars), and nested dict.
func plistDict(dict *etree.Element) map[string]interface{} {
	result := make(map[string]interface{})
	children := dict.ChildElements()
	for i := 0; i+1 < len(children); i += 2 {
		if children[i].Tag != "key" {
			continue
		}
		result[strings.TrimSpace(children[i].Text())] = plistValue(children[i+1])
	}
	return result
}

func plistValue(elem *etree.Element) interface{} {
	switch elem.Tag {
	case "string":
		return elem.Text()
	case "integer":
		return asInt64Text(elem.Text())
	case "real":
		return asFloatText(elem.Text())
	case "true":
		return true
	case "false":
		return false
	case "dict":
		return plistDict(elem)
	case "array":
		children := elem.ChildElements()
		values := make([]interface{}, 0, len(children))
		for _, child := range children {
			values = append(values, plistValue(child))
		}
		return values
	default:
		return elem.Text()
	}
}
