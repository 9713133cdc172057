package config

import (
	"time"

	"github.com/vovakirdan/wanderer/internal/game"
	"github.com/vovakirdan/wanderer/internal/survival"
	"github.com/vovakirdan/wanderer/internal/world"
)

// GenParams converts the world and generation sections for the generator.
func (c Config) GenParams() world.GenParams {
	g := c.Generation
	return world.GenParams{
		Size:             c.World.Size,
		TileSize:         c.World.TileSize,
		HeightWeights:    append([]float64(nil), g.HeightWeights...),
		HeightFalloff:    g.HeightFalloff,
		MoistureWeights:  append([]float64(nil), g.MoistureWeights...),
		MoistureFalloff:  g.MoistureFalloff,
		WaterBelow:       g.WaterBelow,
		SandBelow:        g.SandBelow,
		SandMoisture:     g.SandMoisture,
		StoneAbove:       g.StoneAbove,
		ForestMoisture:   g.ForestMoisture,
		ForestAbove:      g.ForestAbove,
		HerbChance:       g.Resources.Herb,
		TreeChance:       g.Resources.Tree,
		RockChance:       g.Resources.Rock,
		BushChance:       g.Resources.Bush,
		SpawnClearRadius: g.SpawnClearRadius,
	}
}

// Rules converts the player, survival and crafting sections.
func (c Config) Rules() survival.Rules {
	return survival.Rules{
		Speed:          c.Player.Speed,
		MaxHealth:      c.Player.MaxHealth,
		MaxHunger:      c.Player.MaxHunger,
		HungerInterval: c.Survival.HungerInterval,
		HungerDrain:    c.Survival.HungerDrain,
		StarveInterval: c.Survival.StarveInterval,
		StarveDamage:   c.Survival.StarveDamage,
		HerbYield:      c.Survival.Yields.Herb,
		WoodYield:      c.Survival.Yields.Wood,
		StoneYield:     c.Survival.Yields.Stone,
		FoodYield:      c.Survival.Yields.Food,
		Campfire:       survival.CampfireRecipe{Wood: c.Crafting.CampfireWood, Restore: c.Crafting.CampfireRestore},
		Axe:            survival.AxeRecipe{Wood: c.Crafting.AxeWood, Stone: c.Crafting.AxeStone},
		Eat:            survival.EatRecipe{Food: c.Crafting.EatFood, Restore: c.Crafting.EatRestore},
	}
}

// GameSettings assembles everything game.New needs.
func (c Config) GameSettings() game.Settings {
	return game.Settings{
		Seed:  c.World.Seed,
		Gen:   c.GenParams(),
		Rules: c.Rules(),
		Camera: game.CameraParams{
			Sensitivity:  c.Camera.Sensitivity,
			Distance:     c.Camera.Distance,
			StartHeight:  c.Camera.StartHeight,
			MinHeight:    c.Camera.MinHeight,
			MaxHeight:    c.Camera.MaxHeight,
			LookAtOffset: c.Camera.LookAtOffset,
		},
		StartHour:      c.Clock.StartHour,
		HoursPerMinute: c.Clock.HoursPerMinute,
	}
}

// ClampFrame limits a host frame delta to Runtime.MaxFrameMs.
func (c Config) ClampFrame(dtMillis float64) float64 {
	if dtMillis > c.Runtime.MaxFrameMs {
		return c.Runtime.MaxFrameMs
	}
	if dtMillis < 0 {
		return 0
	}
	return dtMillis
}

// KeyHold is how long a terminal key press keeps a movement key held.
func (c Config) KeyHold() time.Duration {
	return time.Duration(c.Runtime.KeyHoldMs * float64(time.Millisecond))
}
