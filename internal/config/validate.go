package config

import (
	"errors"
	"fmt"
)

// Validate rejects configurations the engine cannot run with.
func (c Config) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf(format, args...))
		}
	}

	check(c.World.Size > 0, "world.size must be positive, got %d", c.World.Size)
	check(c.World.TileSize > 0, "world.tile_size must be positive, got %v", c.World.TileSize)
	check(len(c.Generation.HeightWeights) > 0, "generation.height_weights must not be empty")
	check(len(c.Generation.MoistureWeights) > 0, "generation.moisture_weights must not be empty")
	check(c.Generation.SpawnClearRadius >= 0, "generation.spawn_clear_radius must not be negative")
	chances := []struct {
		name string
		p    float64
	}{
		{"herb", c.Generation.Resources.Herb},
		{"tree", c.Generation.Resources.Tree},
		{"rock", c.Generation.Resources.Rock},
		{"bush", c.Generation.Resources.Bush},
	}
	for _, ch := range chances {
		check(ch.p >= 0 && ch.p <= 1, "generation.resources.%s must be within [0, 1], got %v", ch.name, ch.p)
	}

	check(c.Player.Speed > 0, "player.speed must be positive")
	check(c.Player.MaxHealth > 0, "player.max_health must be positive")
	check(c.Player.MaxHunger > 0, "player.max_hunger must be positive")

	check(c.Survival.HungerInterval > 0, "survival.hunger_interval must be positive")
	check(c.Survival.StarveInterval > 0, "survival.starve_interval must be positive")
	check(c.Survival.HungerDrain >= 0, "survival.hunger_drain must not be negative")
	check(c.Survival.StarveDamage >= 0, "survival.starve_damage must not be negative")

	check(c.Crafting.CampfireWood >= 0 && c.Crafting.AxeWood >= 0 && c.Crafting.AxeStone >= 0 && c.Crafting.EatFood >= 0,
		"crafting costs must not be negative")

	check(c.Clock.StartHour >= 0 && c.Clock.StartHour < 24, "clock.start_hour must be within [0, 24), got %v", c.Clock.StartHour)
	check(c.Clock.HoursPerMinute > 0, "clock.hours_per_minute must be positive")

	check(c.Camera.MinHeight <= c.Camera.MaxHeight, "camera.min_height must not exceed camera.max_height")
	check(c.Camera.InputDamping >= 0 && c.Camera.InputDamping < 1, "camera.input_damping must be within [0, 1)")

	check(c.Runtime.TickRate > 0 && c.Runtime.TickRate <= 240, "runtime.tick_rate must be within (0, 240], got %d", c.Runtime.TickRate)
	check(c.Runtime.MaxFrameMs > 0, "runtime.max_frame_ms must be positive")
	check(c.Runtime.KeyHoldMs > 0, "runtime.key_hold_ms must be positive")

	if len(errs) > 0 {
		return fmt.Errorf("invalid config: %w", errors.Join(errs...))
	}
	return nil
}
