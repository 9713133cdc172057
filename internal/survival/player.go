package survival

import "github.com/vovakirdan/wanderer/internal/core"

// Inventory counts the items the player carries.
type Inventory struct {
	Herb  int
	Wood  int
	Stone int
	Food  int
}

// Total returns the number of items carried.
func (inv Inventory) Total() int {
	return inv.Herb + inv.Wood + inv.Stone + inv.Food
}

// Player is the avatar state. Health and Hunger stay within [0, max]; use
// the setters rather than assigning them directly.
type Player struct {
	X, Z   float64
	VX, VZ float64
	Facing float64

	Health    float64
	Hunger    float64
	MaxHealth float64
	MaxHunger float64

	Inventory Inventory
	HasAxe    bool

	hungerAcc float64
	healthAcc float64
}

// NewPlayer creates a player at (x, z) with full health and hunger.
func NewPlayer(x, z float64, r Rules) *Player {
	return &Player{
		X:         x,
		Z:         z,
		Health:    r.MaxHealth,
		Hunger:    r.MaxHunger,
		MaxHealth: r.MaxHealth,
		MaxHunger: r.MaxHunger,
	}
}

// SetHealth assigns health clamped to [0, MaxHealth].
func (p *Player) SetHealth(v float64) {
	p.Health = core.ClampF(v, 0, p.MaxHealth)
}

// SetHunger assigns hunger clamped to [0, MaxHunger].
func (p *Player) SetHunger(v float64) {
	p.Hunger = core.ClampF(v, 0, p.MaxHunger)
}

// Dead reports whether health has run out.
func (p *Player) Dead() bool {
	return p.Health <= 0
}
