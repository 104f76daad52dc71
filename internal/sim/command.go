package sim

import "github.com/jakecoffman/cp"

type CommandKind int

const (
	CmdPick CommandKind = iota
	CmdDrag
	CmdRelease
	CmdGrow
	CmdShrink
	CmdDelete
	CmdSpawn
)

var commandNames = [...]string{"pick", "drag", "release", "grow", "shrink", "delete", "spawn"}

func (k CommandKind) String() string {
	if k < 0 || int(k) >= len(commandNames) {
		return "unknown"
	}
	return commandNames[k]
}

// Command is an interaction intent queued for the next tick.
type Command struct {
	Kind       CommandKind
	Pos        cp.Vector
	Radius     float64
	ColorIndex int
}

func Pick(x, y float64) Command { return Command{Kind: CmdPick, Pos: cp.Vector{X: x, Y: y}} }
func Drag(x, y float64) Command { return Command{Kind: CmdDrag, Pos: cp.Vector{X: x, Y: y}} }
func Release() Command          { return Command{Kind: CmdRelease} }
func Grow() Command             { return Command{Kind: CmdGrow} }
func Shrink() Command           { return Command{Kind: CmdShrink} }
func Delete() Command           { return Command{Kind: CmdDelete} }

// Spawn adds a body with a random palette colour.
func Spawn(radius float64) Command {
	return Command{Kind: CmdSpawn, Radius: radius, ColorIndex: RandomColor}
}
