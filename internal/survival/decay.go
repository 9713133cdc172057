package survival

// DecayEvents reports which decay steps fired during a tick.
type DecayEvents struct {
	HungerDrained bool
	Starved       bool
}

// Decay advances the hunger and starvation timers by dtMillis of game time.
// The two timers are independent; each resets only when it fires, and
// starvation only fires while hunger is exactly zero.
func Decay(p *Player, dtMillis float64, r Rules) DecayEvents {
	var ev DecayEvents
	dt := dtMillis / 1000

	p.hungerAcc += dt
	if p.hungerAcc >= r.HungerInterval {
		p.hungerAcc = 0
		p.SetHunger(p.Hunger - r.HungerDrain)
		ev.HungerDrained = true
	}

	p.healthAcc += dt
	if p.healthAcc >= r.StarveInterval && p.Hunger == 0 {
		p.healthAcc = 0
		p.SetHealth(p.Health - r.StarveDamage)
		ev.Starved = true
	}
	return ev
}
