package core

// Action is a semantic game action, abstracted from physical key presses.
type Action int

const (
	ActionNone         Action = iota
	ActionLeft                // Held: move the vessel left
	ActionRight               // Held: move the vessel right
	ActionShoot               // Space
	ActionPause               // P
	ActionRestart             // R, only meaningful after game over
	ActionNextLevel           // N, only meaningful after a cleared level
	ActionQuit                // Q, Ctrl+C
	ActionMute                // M
	ActionSpawnPowerUp        // O, debug helper
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionShoot:
		return "Shoot"
	case ActionPause:
		return "Pause"
	case ActionRestart:
		return "Restart"
	case ActionNextLevel:
		return "NextLevel"
	case ActionQuit:
		return "Quit"
	case ActionMute:
		return "Mute"
	case ActionSpawnPowerUp:
		return "SpawnPowerUp"
	default:
		return "Unknown"
	}
}

// Held reports whether the action describes continuous state rather than a press.
func (a Action) Held() bool {
	return a == ActionLeft || a == ActionRight
}

// InputFrame is the input for one simulation tick: discrete presses that
// happened since the previous tick plus the held state sampled for this tick.
type InputFrame struct {
	Actions map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set marks an action as active for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has reports whether the action is active this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
}

// Empty reports whether no action is active this frame.
func (f InputFrame) Empty() bool {
	for _, on := range f.Actions {
		if on {
			return false
		}
	}
	return true
}
