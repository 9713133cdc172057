package render

import (
	"errors"
	"fmt"
	"strings"

	"github.com/vovakirdan/wanderer/internal/core"
	"github.com/vovakirdan/wanderer/internal/daynight"
	"github.com/vovakirdan/wanderer/internal/game"
	"github.com/vovakirdan/wanderer/internal/survival"
)

// TimeLabel formats the clock with a sun or moon marker.
func TimeLabel(d daynight.Display) string {
	marker := "(sun)"
	if d.Night {
		marker = "(moon)"
	}
	return d.String() + " " + marker
}

// InventoryLines returns one line per inventory slot.
func InventoryLines(p survival.Player) []string {
	lines := []string{
		fmt.Sprintf("Herb  %3d", p.Inventory.Herb),
		fmt.Sprintf("Wood  %3d", p.Inventory.Wood),
		fmt.Sprintf("Stone %3d", p.Inventory.Stone),
		fmt.Sprintf("Food  %3d", p.Inventory.Food),
	}
	if p.HasAxe {
		lines = append(lines, "Axe   yes")
	} else {
		lines = append(lines, "Axe   no")
	}
	return lines
}

// HoverPrompt describes the resource in reach, or "" when nothing is.
func HoverPrompt(snap game.Snapshot) string {
	if !snap.HasHover {
		return ""
	}
	name := DisplayName(snap.Hover.Kind)
	if snap.HoverNeedsAxe() {
		return "E: harvest " + name + " (axe needed)"
	}
	if snap.Hover.Kind.NeedsAxe() {
		return "E: harvest " + name + " (axe)"
	}
	return "E: harvest " + name
}

// DisplayName capitalises a tile or resource kind name.
func DisplayName(k fmt.Stringer) string {
	s := k.String()
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// Bar renders a textual meter such as "[#####-----]".
func Bar(value, max, width int) string {
	if width <= 0 {
		return ""
	}
	filled := 0
	if max > 0 {
		filled = core.Clamp(value*width/max, 0, width)
	}
	return "[" + strings.Repeat("#", filled) + strings.Repeat("-", width-filled) + "]"
}

// OutcomeMessage turns an action outcome into a one-line status message.
func OutcomeMessage(o game.Outcome) string {
	if o.OK() {
		switch o.Action {
		case game.ActionHarvest:
			return "Gathered " + DisplayName(o.Resource.Kind)
		case game.ActionEat:
			return "You eat some food"
		case game.ActionCraftCampfire:
			return "You build a campfire and cook a meal"
		case game.ActionCraftAxe:
			return "You craft an axe"
		}
		return ""
	}
	switch {
	case errors.Is(o.Err, survival.ErrNeedsAxe):
		return "You need an axe for that"
	case errors.Is(o.Err, survival.ErrNoResource), errors.Is(o.Err, survival.ErrOutOfRange):
		return "Nothing to gather here"
	case errors.Is(o.Err, survival.ErrAlreadyOwned):
		return "You already have an axe"
	case errors.Is(o.Err, survival.ErrInsufficient):
		switch o.Action {
		case game.ActionEat:
			return "You have no food"
		case game.ActionCraftCampfire:
			return "Not enough wood for a campfire"
		case game.ActionCraftAxe:
			return "Not enough wood or stone for an axe"
		}
		return "Not enough materials"
	}
	return o.Err.Error()
}

// LastMessage returns the message for the last outcome in the snapshot.
func LastMessage(snap game.Snapshot) string {
	if len(snap.Outcomes) == 0 {
		if snap.Decay.Starved {
			return "You are starving!"
		}
		return ""
	}
	return OutcomeMessage(snap.Outcomes[len(snap.Outcomes)-1])
}
