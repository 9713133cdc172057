package protocol

import (
	"fmt"
	"strings"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/vovakirdan/wanderer/internal/core"
	"github.com/vovakirdan/wanderer/internal/game"
	"github.com/vovakirdan/wanderer/internal/world"
)

var moveNames = []struct {
	name string
	key  core.MoveSet
}{
	{"forward", core.MoveForward},
	{"back", core.MoveBack},
	{"left", core.MoveLeft},
	{"right", core.MoveRight},
}

// NewWelcome describes the world of g as it is now. The terrain never
// changes afterwards, so it is sent only here.
func NewWelcome(sessionID string, g *game.Game, tickRate int) WelcomeMsg {
	snap := g.Snapshot()
	t := snap.Terrain
	msg := WelcomeMsg{
		Type:            TypeWelcome,
		ProtocolVersion: Version,
		SessionID:       sessionID,
		WorldParams: WorldParams{
			Seed:           g.Seed(),
			Size:           t.Size(),
			TileSize:       t.TileSize(),
			TickRateHz:     tickRate,
			ReachRadius:    t.ReachRadius(),
			HoursPerMinute: g.Settings().HoursPerMinute,
		},
		Terrain:   NewTerrain(t),
		Resources: make([]ResourceMsg, len(snap.Resources)),
		Snapshot:  NewSnapshot(snap, 0),
	}
	for i, r := range snap.Resources {
		msg.Resources[i] = resourceMsg(r)
	}
	return msg
}

// NewTerrain encodes the grid as a digit string plus heights.
func NewTerrain(t *world.Terrain) TerrainMsg {
	msg := TerrainMsg{
		Legend: make([]string, len(world.TileKinds)),
		Colors: make([]string, len(world.TileKinds)),
	}
	for i, k := range world.TileKinds {
		msg.Legend[i] = k.String()
		msg.Colors[i] = hexColor(k.RGB())
	}

	cells := t.Cells()
	var kinds strings.Builder
	kinds.Grow(len(cells))
	msg.Heights = make([]float64, len(cells))
	for i, c := range cells {
		kinds.WriteByte('0' + byte(c.Kind))
		msg.Heights[i] = c.Height
	}
	msg.Kinds = kinds.String()
	return msg
}

// NewSnapshot converts a tick result. ack is the sequence number of the
// last intent folded into the tick.
func NewSnapshot(snap game.Snapshot, ack uint64) SnapshotMsg {
	p := snap.Player
	d := snap.Time
	l := snap.Lighting
	msg := SnapshotMsg{
		Type:            TypeSnapshot,
		ProtocolVersion: Version,
		Tick:            snap.Tick,
		Ack:             ack,
		Player: PlayerMsg{
			Pos:       [3]float64{p.X, snap.Ground, p.Z},
			Vel:       [2]float64{p.VX, p.VZ},
			Facing:    p.Facing,
			Health:    p.Health,
			Hunger:    p.Hunger,
			MaxHealth: p.MaxHealth,
			MaxHunger: p.MaxHunger,
			Inventory: InventoryMsg{
				Herb:  p.Inventory.Herb,
				Wood:  p.Inventory.Wood,
				Stone: p.Inventory.Stone,
				Food:  p.Inventory.Food,
			},
			HasAxe: p.HasAxe,
		},
		Camera: CameraMsg{
			Yaw:     snap.Camera.Yaw,
			Height:  snap.Camera.Height,
			Pos:     vec3(snap.Camera.Position),
			LookAt:  vec3(snap.Camera.LookAt),
			Forward: vec3(snap.Camera.Forward()),
		},
		Lighting: LightingMsg{
			Night:      l.Night,
			SunPos:     vec3(l.SunPos),
			SunDir:     vec3(l.SunDirection()),
			Intensity:  l.Intensity,
			LightColor: hexColor(l.LightColor),
			SkyColor:   hexColor(l.SkyColor),
			FogColor:   hexColor(l.FogColor),
			FogNear:    l.FogNear,
			FogFar:     l.FogFar,
		},
		Clock: ClockMsg{
			Day:    d.Day,
			Hour:   d.Hour,
			Minute: d.Minute,
			Hours:  snap.Clock.Hours,
			Night:  d.Night,
			Label:  d.String(),
		},
		Decay: DecayMsg{
			HungerDrained: snap.Decay.HungerDrained,
			Starved:       snap.Decay.Starved,
		},
		GameOver: snap.GameOver,
		Stats: StatsMsg{
			ItemsGathered: snap.Stats.ItemsGathered(),
			Crafted:       snap.Stats.CraftedTotal(),
			Distance:      snap.Stats.Distance,
			ElapsedMs:     snap.Stats.ElapsedMs,
		},
	}
	if snap.HasHover {
		h := resourceMsg(snap.Hover)
		msg.Hover = &h
	}
	for _, o := range snap.Outcomes {
		ev := EventMsg{Action: o.Action.String(), OK: o.OK(), Code: CodeFor(o.Err)}
		if o.Action == game.ActionHarvest && o.OK() {
			r := resourceMsg(o.Resource)
			ev.Resource = &r
			msg.Removed = append(msg.Removed, r.ID)
		}
		msg.Events = append(msg.Events, ev)
	}
	return msg
}

// Intent converts the message into a simulation intent. Unknown key or
// action names are rejected.
func (m IntentMsg) Intent() (game.Intent, error) {
	var in game.Intent
	for _, h := range m.Held {
		key, ok := moveKey(h)
		if !ok {
			return game.Intent{}, fmt.Errorf("protocol: unknown held key %q", h)
		}
		in.Held = in.Held.With(key)
	}
	for _, a := range m.Actions {
		switch a {
		case game.ActionHarvest.String():
			in.Harvest = true
		case game.ActionEat.String():
			in.Eat = true
		case game.ActionCraftCampfire.String():
			in.CraftCampfire = true
		case game.ActionCraftAxe.String():
			in.CraftAxe = true
		default:
			return game.Intent{}, fmt.Errorf("protocol: unknown action %q", a)
		}
	}
	in.YawDelta = m.YawDelta
	in.PitchDelta = m.PitchDelta
	return in, nil
}

// HeldNames lists the held keys of s in wire form.
func HeldNames(s core.MoveSet) []string {
	var names []string
	for _, m := range moveNames {
		if s.Has(m.key) {
			names = append(names, m.name)
		}
	}
	return names
}

func moveKey(name string) (core.MoveSet, bool) {
	for _, m := range moveNames {
		if m.name == name {
			return m.key, true
		}
	}
	return 0, false
}

func resourceMsg(r world.Resource) ResourceMsg {
	return ResourceMsg{ID: uint32(r.ID), X: r.X, Z: r.Z, Kind: r.Kind.String()}
}

func vec3(v mgl64.Vec3) [3]float64 {
	return [3]float64{v[0], v[1], v[2]}
}

func hexColor(c uint32) string {
	return fmt.Sprintf("#%06x", c&0xffffff)
}
