package gamebox

import (
	"github.com/arthur-debert/gamebox/pkg/errors"
)

// Command describes one model operation as data: an operation name plus its
// arguments. Commands are handed to the external undo stack, which replays
// them against the model to undo or redo an edit.
type Command struct {
	Op   string
	Args map[string]interface{}
}

// Change pairs a forward command with the inverse commands that revert it.
// The model constructs both explicitly at mutation time rather than
// reaching into ambient state for an undo manager. Most edits invert with
// a single command; a compound inverse is replayed in order.
type Change struct {
	Label   string
	Forward Command
	Inverse []Command
}

// UndoRecorder is the external undo-stack collaborator. Record is called
// with the full change descriptor before the forward operation is applied.
type UndoRecorder interface {
	Record(change Change)
}

// recordUndo hands a change to the registered recorder, if any.
func (g *Gamebox) recordUndo(change Change) {
	if g.undo != nil {
		g.undo.Record(change)
	}
}

// Apply replays a recorded command against the model. An external undo
// stack reverts an edit by applying each of its inverse commands in order,
// and redoes it by applying the forward command.
func (g *Gamebox) Apply(cmd Command) error {
	switch cmd.Op {
	case "setGameIdentifier":
		return g.SetGameIdentifier(asString(cmd.Args["identifier"]),
			IdentifierType(asInt(cmd.Args["type"])))
	case "setTargetPath":
		return g.SetTargetPath(asString(cmd.Args["path"]))
	case "setCloseOnExit":
		g.SetCloseOnExit(asBool(cmd.Args["close"]))
		return nil
	case "setGameInfo":
		g.SetGameInfo(asString(cmd.Args["key"]), cmd.Args["value"])
		return nil
	case "insertLauncher":
		launcher, _ := cmd.Args["launcher"].(Launcher)
		return g.InsertLauncher(launcher, asInt(cmd.Args["index"]))
	case "removeLauncherAt":
		return g.RemoveLauncherAt(asInt(cmd.Args["index"]))
	case "setDefaultLauncherIndex":
		return g.SetDefaultLauncherIndex(asInt(cmd.Args["index"]))
	}
	return errors.Newf(errors.ErrInvalidInput, "unknown command %q", cmd.Op)
}
