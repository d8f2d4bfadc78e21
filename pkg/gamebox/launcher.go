package gamebox

import (
	"github.com/arthur-debert/gamebox/pkg/errors"
)

// Launcher is one shortcut to a program inside the gamebox. The registry
// on Gamebox owns ordering and default-uniqueness; a Launcher record is
// mutated only by whole-record replacement through the registry.
type Launcher struct {
	Title     string
	Path      string
	Arguments string
	IsDefault bool
}

// Launchers returns the box's launchers in display order. The returned
// slice is a copy; mutations go through the registry operations.
func (g *Gamebox) Launchers() []Launcher {
	launchers := make([]Launcher, len(g.store.launchers))
	copy(launchers, g.store.launchers)
	return launchers
}

// LauncherAt returns the launcher at the given index.
func (g *Gamebox) LauncherAt(index int) (Launcher, error) {
	if index < 0 || index >= len(g.store.launchers) {
		return Launcher{}, errors.Newf(errors.ErrIndexOutOfRange,
			"launcher index %d out of range [0..%d)", index, len(g.store.launchers))
	}
	return g.store.launchers[index], nil
}

// AddLauncher appends a launcher to the end of the list.
func (g *Gamebox) AddLauncher(launcher Launcher) {
	// Appending at len(launchers) cannot be out of range.
	_ = g.InsertLauncher(launcher, len(g.store.launchers))
}

// InsertLauncher inserts a launcher at the given index. If the inserted
// record is flagged default, the default flag is cleared on every other
// launcher so at most one default exists.
func (g *Gamebox) InsertLauncher(launcher Launcher, index int) error {
	if index < 0 || index > len(g.store.launchers) {
		return errors.Newf(errors.ErrIndexOutOfRange,
			"launcher index %d out of range [0..%d]", index, len(g.store.launchers))
	}

	inverse := []Command{{Op: "removeLauncherAt", Args: map[string]interface{}{
		"index": index,
	}}}
	if launcher.IsDefault {
		// Clearing the old default is part of the forward edit, so the
		// inverse has to restore it after removing the insertion. Removal
		// puts the remaining launchers back at their pre-insert indices.
		if previous := g.DefaultLauncherIndex(); previous >= 0 {
			inverse = append(inverse, Command{Op: "setDefaultLauncherIndex",
				Args: map[string]interface{}{"index": previous}})
		}
	}
	g.recordUndo(Change{
		Label: "Insert Launcher",
		Forward: Command{Op: "insertLauncher", Args: map[string]interface{}{
			"launcher": launcher, "index": index,
		}},
		Inverse: inverse,
	})

	if launcher.IsDefault {
		g.clearDefaultFlags()
	}

	launchers := g.store.launchers
	launchers = append(launchers, Launcher{})
	copy(launchers[index+1:], launchers[index:])
	launchers[index] = launcher
	g.store.launchers = launchers

	g.store.markDirty()
	g.notify(Event{Kind: EventLaunchersChanged})
	return nil
}

// AddLauncherWithFields builds a launcher record and appends it.
func (g *Gamebox) AddLauncherWithFields(title, path, arguments string) {
	g.AddLauncher(Launcher{Title: title, Path: path, Arguments: arguments})
}

// InsertLauncherWithFields builds a launcher record and inserts it.
func (g *Gamebox) InsertLauncherWithFields(title, path, arguments string, index int) error {
	return g.InsertLauncher(Launcher{Title: title, Path: path, Arguments: arguments}, index)
}

// RemoveLauncher removes the first launcher equal to the given record.
// Returns false if no launcher matched.
func (g *Gamebox) RemoveLauncher(launcher Launcher) bool {
	for i, existing := range g.store.launchers {
		if existing == launcher {
			// Index came from the scan above, cannot be out of range.
			_ = g.RemoveLauncherAt(i)
			return true
		}
	}
	return false
}

// RemoveLauncherAt removes the launcher at the given index. Removing the
// current default leaves the box with no default; that is not an error.
func (g *Gamebox) RemoveLauncherAt(index int) error {
	if index < 0 || index >= len(g.store.launchers) {
		return errors.Newf(errors.ErrIndexOutOfRange,
			"launcher index %d out of range [0..%d)", index, len(g.store.launchers))
	}

	removed := g.store.launchers[index]
	g.recordUndo(Change{
		Label: "Remove Launcher",
		Forward: Command{Op: "removeLauncherAt", Args: map[string]interface{}{
			"index": index,
		}},
		Inverse: []Command{{Op: "insertLauncher", Args: map[string]interface{}{
			"launcher": removed, "index": index,
		}}},
	})

	g.store.launchers = append(g.store.launchers[:index], g.store.launchers[index+1:]...)

	g.store.markDirty()
	g.notify(Event{Kind: EventLaunchersChanged})
	return nil
}

// DefaultLauncher returns the launcher flagged as default, if any.
func (g *Gamebox) DefaultLauncher() (Launcher, bool) {
	index := g.DefaultLauncherIndex()
	if index < 0 {
		return Launcher{}, false
	}
	return g.store.launchers[index], true
}

// DefaultLauncherIndex returns the index of the default launcher, or -1 if
// no launcher is flagged default.
func (g *Gamebox) DefaultLauncherIndex() int {
	for i, launcher := range g.store.launchers {
		if launcher.IsDefault {
			return i
		}
	}
	return -1
}

// SetDefaultLauncherIndex flags the launcher at the given index as default
// and clears the flag on every other launcher. Passing -1 clears the
// default entirely.
func (g *Gamebox) SetDefaultLauncherIndex(index int) error {
	if index < -1 || index >= len(g.store.launchers) {
		return errors.Newf(errors.ErrIndexOutOfRange,
			"launcher index %d out of range [0..%d)", index, len(g.store.launchers))
	}

	previous := g.DefaultLauncherIndex()
	if previous == index {
		return nil
	}

	g.recordUndo(Change{
		Label: "Set Default Launcher",
		Forward: Command{Op: "setDefaultLauncherIndex", Args: map[string]interface{}{
			"index": index,
		}},
		Inverse: []Command{{Op: "setDefaultLauncherIndex", Args: map[string]interface{}{
			"index": previous,
		}}},
	})

	g.clearDefaultFlags()
	if index >= 0 {
		g.store.launchers[index].IsDefault = true
	}

	g.store.markDirty()
	g.notify(Event{Kind: EventLaunchersChanged})
	return nil
}

func (g *Gamebox) clearDefaultFlags() {
	for i := range g.store.launchers {
		g.store.launchers[i].IsDefault = false
	}
}
