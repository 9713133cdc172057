package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows the simulation to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone          Action = iota
	ActionForward              // W
	ActionBack                 // S
	ActionLeft                 // A
	ActionRight                // D
	ActionHarvest              // E
	ActionEat                  // F
	ActionCraftCampfire        // C
	ActionCraftAxe             // X
	ActionLookLeft             // Left arrow, J
	ActionLookRight            // Right arrow, L
	ActionLookUp               // Up arrow, I
	ActionLookDown             // Down arrow, K
	ActionConfirm              // Enter
	ActionMenu                 // Escape
	ActionPause                // P
	ActionHelp                 // ?, reopens the tutorial
	ActionQuit                 // Q, Ctrl+C
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionForward:
		return "Forward"
	case ActionBack:
		return "Back"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionHarvest:
		return "Harvest"
	case ActionEat:
		return "Eat"
	case ActionCraftCampfire:
		return "CraftCampfire"
	case ActionCraftAxe:
		return "CraftAxe"
	case ActionLookLeft:
		return "LookLeft"
	case ActionLookRight:
		return "LookRight"
	case ActionLookUp:
		return "LookUp"
	case ActionLookDown:
		return "LookDown"
	case ActionConfirm:
		return "Confirm"
	case ActionMenu:
		return "Menu"
	case ActionPause:
		return "Pause"
	case ActionHelp:
		return "Help"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// MoveSet is the set of movement keys held during one tick.
type MoveSet uint8

// Movement keys. Directions are relative to the camera yaw.
const (
	MoveForward MoveSet = 1 << iota
	MoveBack
	MoveLeft
	MoveRight
)

// Has reports whether every key in k is held.
func (s MoveSet) Has(k MoveSet) bool {
	return s&k == k && k != 0
}

// With returns the set with k added.
func (s MoveSet) With(k MoveSet) MoveSet {
	return s | k
}

// Empty reports whether no movement key is held.
func (s MoveSet) Empty() bool {
	return s == 0
}

// MoveKeyFor maps a movement action to its key, or 0 for other actions.
func MoveKeyFor(a Action) MoveSet {
	switch a {
	case ActionForward:
		return MoveForward
	case ActionBack:
		return MoveBack
	case ActionLeft:
		return MoveLeft
	case ActionRight:
		return MoveRight
	}
	return 0
}

// InputFrame represents the input state for the player during one simulation tick.
// It contains all actions that were triggered during this frame.
type InputFrame struct {
	// Actions maps action types to whether they were triggered this frame.
	// Using a map allows checking multiple actions without order dependency.
	Actions map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set marks an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// Moves collects the movement keys present in this frame.
func (f InputFrame) Moves() MoveSet {
	var s MoveSet
	for a, on := range f.Actions {
		if on {
			s = s.With(MoveKeyFor(a))
		}
	}
	return s
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
}
