package config

import (
	_ "embed"
)

//go:embed defaults/wanderer.yaml
var defaultYAML []byte

// Default returns the built-in configuration. It matches the embedded
// defaults/wanderer.yaml.
func Default() Config {
	return Config{
		World: WorldConfig{
			Seed:     12345,
			Size:     60,
			TileSize: 4,
		},
		Generation: GenerationConfig{
			HeightWeights:   []float64{0.5, 0.3, 0.2},
			HeightFalloff:   0.5,
			MoistureWeights: []float64{0.5, 0.5},
			MoistureFalloff: 0.3,
			WaterBelow:      -0.2,
			SandBelow:       0,
			SandMoisture:    0.4,
			StoneAbove:      0.3,
			ForestMoisture:  0.5,
			ForestAbove:     0,
			Resources: ResourceChances{
				Herb: 0.03,
				Tree: 0.08,
				Rock: 0.15,
				Bush: 0.02,
			},
			SpawnClearRadius: 2,
		},
		Player: PlayerConfig{
			Speed:     2.5,
			MaxHealth: 100,
			MaxHunger: 100,
		},
		Survival: SurvivalConfig{
			HungerInterval: 3,
			HungerDrain:    2,
			StarveInterval: 2,
			StarveDamage:   5,
			Yields: Yields{
				Herb:  1,
				Wood:  2,
				Stone: 1,
				Food:  1,
			},
		},
		Crafting: CraftingConfig{
			CampfireWood:    5,
			CampfireRestore: 30,
			AxeWood:         3,
			AxeStone:        2,
			EatFood:         1,
			EatRestore:      25,
		},
		Clock: ClockConfig{
			StartHour:      6,
			HoursPerMinute: 1,
		},
		Camera: CameraConfig{
			Sensitivity:  0.08,
			Distance:     12,
			StartHeight:  5,
			MinHeight:    3,
			MaxHeight:    8,
			LookAtOffset: 1.5,
			InputDamping: 0.85,
		},
		Runtime: RuntimeConfig{
			TickRate:   60,
			MaxFrameMs: 100,
			KeyHoldMs:  150,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultYAML
}
