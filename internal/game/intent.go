package game

import (
	"github.com/vovakirdan/wanderer/internal/core"
	"github.com/vovakirdan/wanderer/internal/world"
)

// Intent is everything the player asks for during one tick.
type Intent struct {
	Held          core.MoveSet
	Harvest       bool
	Eat           bool
	CraftCampfire bool
	CraftAxe      bool
	YawDelta      float64
	PitchDelta    float64
}

// IntentFromFrame converts a host input frame into an intent. Look actions
// map to unit yaw/pitch deltas.
func IntentFromFrame(f core.InputFrame) Intent {
	in := Intent{
		Held:          f.Moves(),
		Harvest:       f.Has(core.ActionHarvest),
		Eat:           f.Has(core.ActionEat),
		CraftCampfire: f.Has(core.ActionCraftCampfire),
		CraftAxe:      f.Has(core.ActionCraftAxe),
	}
	if f.Has(core.ActionLookLeft) {
		in.YawDelta--
	}
	if f.Has(core.ActionLookRight) {
		in.YawDelta++
	}
	if f.Has(core.ActionLookUp) {
		in.PitchDelta--
	}
	if f.Has(core.ActionLookDown) {
		in.PitchDelta++
	}
	return in
}

// Empty reports whether the intent requests nothing.
func (in Intent) Empty() bool {
	return in.Held.Empty() && !in.Harvest && !in.Eat && !in.CraftCampfire && !in.CraftAxe &&
		in.YawDelta == 0 && in.PitchDelta == 0
}

// ActionKind identifies a discrete player action.
type ActionKind int

const (
	ActionHarvest ActionKind = iota
	ActionEat
	ActionCraftCampfire
	ActionCraftAxe
)

func (a ActionKind) String() string {
	switch a {
	case ActionHarvest:
		return "harvest"
	case ActionEat:
		return "eat"
	case ActionCraftCampfire:
		return "craft_campfire"
	case ActionCraftAxe:
		return "craft_axe"
	default:
		return "unknown"
	}
}

// Outcome records the result of one discrete action in a tick.
type Outcome struct {
	Action   ActionKind
	Resource world.Resource // Harvest target, if any
	Err      error
}

// OK reports whether the action succeeded.
func (o Outcome) OK() bool {
	return o.Err == nil
}
