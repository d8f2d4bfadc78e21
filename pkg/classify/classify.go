// Package classify decides what role a path plays inside a gamebox:
// executable, documentation, or drive volume. Matching is driven entirely
// by data (extension sets and exclusion globs), so deployments can swap in
// their own rules without touching code.
package classify

import (
	"path/filepath"
	"strings"

	"github.com/arthur-debert/gamebox/pkg/config"
)

// VolumeKind identifies the kind of drive-volume container a path holds.
type VolumeKind string

const (
	VolumeHarddisk VolumeKind = "harddisk"
	VolumeCDROM    VolumeKind = "cdrom"
	VolumeFloppy   VolumeKind = "floppy"
)

// AllVolumeKinds lists every recognized volume kind.
func AllVolumeKinds() []VolumeKind {
	return []VolumeKind{VolumeHarddisk, VolumeCDROM, VolumeFloppy}
}

// ExtensionSet is a case-insensitive set of file extensions.
type ExtensionSet map[string]struct{}

// NewExtensionSet builds an ExtensionSet, normalizing each extension to
// lowercase with a leading dot.
func NewExtensionSet(extensions ...string) ExtensionSet {
	set := make(ExtensionSet, len(extensions))
	for _, ext := range extensions {
		ext = strings.ToLower(ext)
		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		set[ext] = struct{}{}
	}
	return set
}

// Contains reports whether the set holds the given extension.
func (s ExtensionSet) Contains(ext string) bool {
	_, ok := s[strings.ToLower(ext)]
	return ok
}

// Ruleset holds the classification rules for one gamebox instance.
// The zero value matches nothing; build one with FromSettings or compose
// one by hand to override individual sets.
type Ruleset struct {
	ExecutableTypes    ExtensionSet
	DocumentationTypes ExtensionSet
	VolumeTypes        map[VolumeKind]ExtensionSet

	// Case-insensitive glob patterns matched against base filenames.
	ExecutableExclusions    []string
	DocumentationExclusions []string
}

// FromSettings builds a Ruleset from configuration.
func FromSettings(settings *config.Settings) *Ruleset {
	return &Ruleset{
		ExecutableTypes:    NewExtensionSet(settings.FileTypes.Executables...),
		DocumentationTypes: NewExtensionSet(settings.FileTypes.Documentation...),
		VolumeTypes: map[VolumeKind]ExtensionSet{
			VolumeHarddisk: NewExtensionSet(settings.Volumes.Harddisk...),
			VolumeCDROM:    NewExtensionSet(settings.Volumes.CDROM...),
			VolumeFloppy:   NewExtensionSet(settings.Volumes.Floppy...),
		},
		ExecutableExclusions:    settings.Exclusions.Executables,
		DocumentationExclusions: settings.Exclusions.Documentation,
	}
}

// IsExecutable reports whether path names a DOS executable file.
// Directories are never executables.
func (r *Ruleset) IsExecutable(path string, isDir bool) bool {
	if isDir {
		return false
	}
	if !r.ExecutableTypes.Contains(filepath.Ext(path)) {
		return false
	}
	return !matchesAny(filepath.Base(path), r.ExecutableExclusions)
}

// IsDocumentation reports whether path names a documentation file.
// Directories are never documentation.
func (r *Ruleset) IsDocumentation(path string, isDir bool) bool {
	if isDir {
		return false
	}
	if !r.DocumentationTypes.Contains(filepath.Ext(path)) {
		return false
	}
	return !matchesAny(filepath.Base(path), r.DocumentationExclusions)
}

// VolumeKindOf returns the volume kind of path. Volumes may be image files
// (.iso, .img) or extension-suffixed folders (.harddisk, .cdrom), so the
// caller's isDir is irrelevant here.
func (r *Ruleset) VolumeKindOf(path string) (VolumeKind, bool) {
	ext := filepath.Ext(path)
	if ext == "" {
		return "", false
	}
	for _, kind := range AllVolumeKinds() {
		if r.VolumeTypes[kind].Contains(ext) {
			return kind, true
		}
	}
	return "", false
}

// matchesAny reports whether name matches any of the glob patterns,
// case-insensitively. Malformed patterns never match.
func matchesAny(name string, patterns []string) bool {
	name = strings.ToLower(name)
	for _, pattern := range patterns {
		matched, _ := filepath.Match(strings.ToLower(pattern), name)
		if matched {
			return true
		}
	}
	return false
}
