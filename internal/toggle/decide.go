package toggle

import (
	"fmt"

	"github.com/swaypad/swaypad/internal/config"
	"github.com/swaypad/swaypad/internal/state"
)

// State is the three-way classification of an application derived from one
// snapshot. It is recomputed on every invocation and never persisted.
type State int

const (
	StateAbsent State = iota
	StateUnfocused
	StateFocused
)

func (s State) String() string {
	switch s {
	case StateAbsent:
		return "absent"
	case StateUnfocused:
		return "unfocused"
	case StateFocused:
		return "focused"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Resolve classifies the identified application against a window list.
// Total for any input: no matching window means absent, a focused matching
// window wins over unfocused ones, anything else is unfocused. Focus held
// by non-matching windows is irrelevant.
func Resolve(windows []state.Window, id Identifier) State {
	matched := false
	for _, w := range windows {
		if !id.Matches(w) {
			continue
		}
		if w.Focused {
			return StateFocused
		}
		matched = true
	}
	if !matched {
		return StateAbsent
	}
	return StateUnfocused
}

// ActionKind enumerates the corrective actions.
type ActionKind int

const (
	ActionLaunch ActionKind = iota
	ActionFocus
	ActionHide
)

func (k ActionKind) String() string {
	switch k {
	case ActionLaunch:
		return "launch"
	case ActionFocus:
		return "focus"
	case ActionHide:
		return "hide"
	default:
		return fmt.Sprintf("ActionKind(%d)", int(k))
	}
}

// Action is the single corrective step for one toggle invocation. Command
// is set for launches, Criteria for focus and hide.
type Action struct {
	Kind     ActionKind
	Command  string
	Criteria string
}

// Decide maps an aggregate state to exactly one action.
func Decide(st State, id Identifier, app config.App, terminal string) Action {
	switch st {
	case StateUnfocused:
		return Action{Kind: ActionFocus, Criteria: id.Criteria()}
	case StateFocused:
		return Action{Kind: ActionHide, Criteria: id.Criteria()}
	default:
		return Action{Kind: ActionLaunch, Command: startupCommand(id, app, terminal)}
	}
}

// startupCommand resolves the launch command. An explicit override wins.
// Terminal-hosted apps identified by title get wrapped in the configured
// terminal so the terminal window itself carries a matchable title; GUI
// apps already expose a usable identifier and launch as configured.
func startupCommand(id Identifier, app config.App, terminal string) string {
	if app.StartupOverride != "" {
		return app.StartupOverride
	}
	if app.Terminal && id.Kind == ByTitle {
		return fmt.Sprintf("%s --title %s --command %s", terminal, id.Value, app.Command)
	}
	return app.Command
}
