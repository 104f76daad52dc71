package control

import (
	"fmt"
	"sort"
	"strings"
)

type Action int

const (
	ActionNone Action = iota
	ActionGrow
	ActionShrink
	ActionDelete
	ActionSpawn
)

var actionNames = map[Action]string{
	ActionNone:   "none",
	ActionGrow:   "grow",
	ActionShrink: "shrink",
	ActionDelete: "delete",
	ActionSpawn:  "spawn",
}

func (a Action) String() string {
	if name, ok := actionNames[a]; ok {
		return name
	}
	return "unknown"
}

func ParseAction(name string) (Action, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for a, n := range actionNames {
		if n == name {
			return a, nil
		}
	}
	return ActionNone, fmt.Errorf("unknown action: %s", name)
}

// KeyMap binds key names, as reported by the frontend, to actions.
type KeyMap map[string]Action

func DefaultKeyMap() KeyMap {
	return KeyMap{
		"+":         ActionGrow,
		"=":         ActionGrow,
		"-":         ActionShrink,
		"_":         ActionShrink,
		"delete":    ActionDelete,
		"backspace": ActionDelete,
		"a":         ActionSpawn,
	}
}

// Bindings lists the keys bound to a, sorted.
func (k KeyMap) Bindings(a Action) []string {
	keys := make([]string, 0)
	for key, act := range k {
		if act == a {
			keys = append(keys, key)
		}
	}
	sort.Strings(keys)
	return keys
}
