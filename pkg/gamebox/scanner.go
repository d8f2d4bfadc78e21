package gamebox

import (
	"path/filepath"
	"time"

	"github.com/arthur-debert/gamebox/pkg/classify"
	"github.com/arthur-debert/gamebox/pkg/errors"
	"github.com/arthur-debert/gamebox/pkg/logging"
)

// scanResults caches one full walk of the gamebox tree. Invalidated by
// Refresh; executables and volumes always go stale together.
type scanResults struct {
	executables []string
	volumes     map[classify.VolumeKind][]string
}

// Executables returns the absolute path of every DOS executable found
// inside the gamebox, at any depth. Traversal order is not guaranteed;
// callers needing stable order sort explicitly.
func (g *Gamebox) Executables() ([]string, error) {
	results, err := g.ensureScanned()
	if err != nil {
		return nil, err
	}
	executables := make([]string, len(results.executables))
	copy(executables, results.executables)
	return executables, nil
}

// VolumesOfKinds returns the discovered drive volumes, partitioned by kind.
// With no arguments every kind is returned.
func (g *Gamebox) VolumesOfKinds(kinds ...classify.VolumeKind) (map[classify.VolumeKind][]string, error) {
	results, err := g.ensureScanned()
	if err != nil {
		return nil, err
	}
	if len(kinds) == 0 {
		kinds = classify.AllVolumeKinds()
	}
	volumes := make(map[classify.VolumeKind][]string, len(kinds))
	for _, kind := range kinds {
		found := results.volumes[kind]
		volumes[kind] = make([]string, len(found))
		copy(volumes[kind], found)
	}
	return volumes, nil
}

// HarddiskVolumes returns the discovered hard-disk volumes.
func (g *Gamebox) HarddiskVolumes() ([]string, error) {
	return g.volumesOf(classify.VolumeHarddisk)
}

// CDROMVolumes returns the discovered CD-ROM volumes.
func (g *Gamebox) CDROMVolumes() ([]string, error) {
	return g.volumesOf(classify.VolumeCDROM)
}

// FloppyVolumes returns the discovered floppy volumes.
func (g *Gamebox) FloppyVolumes() ([]string, error) {
	return g.volumesOf(classify.VolumeFloppy)
}

func (g *Gamebox) volumesOf(kind classify.VolumeKind) ([]string, error) {
	volumes, err := g.VolumesOfKinds(kind)
	if err != nil {
		return nil, err
	}
	return volumes[kind], nil
}

// ensureScanned returns the cached scan, walking the tree on first use.
func (g *Gamebox) ensureScanned() (*scanResults, error) {
	if g.scanCache != nil {
		return g.scanCache, nil
	}
	defer logging.LogDuration(time.Now(), "scan gamebox tree")

	results := &scanResults{
		volumes: make(map[classify.VolumeKind][]string),
	}
	if err := g.scanTree(g.path, results); err != nil {
		return nil, err
	}

	g.logger.Debug().
		Int("executables", len(results.executables)).
		Msg("scanned gamebox tree")

	g.scanCache = results
	return results, nil
}

// scanTree walks dir to unlimited depth, classifying every entry.
func (g *Gamebox) scanTree(dir string, results *scanResults) error {
	entries, err := g.fs.ReadDir(dir)
	if err != nil {
		return errors.Wrapf(err, errors.ErrGameboxAccess, "could not read %s", dir)
	}

	for _, entry := range entries {
		name := entry.Name()
		full := filepath.Join(dir, name)

		// Well-known bookkeeping files at the box root are never
		// classified; the legacy target symlink in particular must not
		// count as an executable.
		if dir == g.path && g.isReservedName(name) {
			continue
		}

		if kind, ok := g.rules.VolumeKindOf(name); ok {
			results.volumes[kind] = append(results.volumes[kind], full)
		}
		if g.rules.IsExecutable(name, entry.IsDir()) {
			results.executables = append(results.executables, full)
		}
		if entry.IsDir() {
			if err := g.scanTree(full, results); err != nil {
				return err
			}
		}
	}
	return nil
}

func (g *Gamebox) isReservedName(name string) bool {
	switch name {
	case g.settings.Gamebox.ManifestName,
		g.settings.Gamebox.LegacyManifestName,
		g.settings.Gamebox.CoverArtName,
		g.settings.Gamebox.TargetSymlinkName:
		return true
	}
	return false
}
