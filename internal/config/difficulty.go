package config

import "fmt"

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ParseDifficulty converts a flag value into a preset. The empty string
// means normal.
func ParseDifficulty(s string) (DifficultyPreset, error) {
	switch DifficultyPreset(s) {
	case "", DifficultyNormal:
		return DifficultyNormal, nil
	case DifficultyEasy:
		return DifficultyEasy, nil
	case DifficultyHard:
		return DifficultyHard, nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal or hard)", s)
	}
}

// ApplyPreset adjusts survival pressure for a difficulty preset. Normal
// leaves the configuration untouched.
func ApplyPreset(cfg *Config, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Survival.HungerInterval = 5
		cfg.Survival.HungerDrain = 1
		cfg.Survival.StarveDamage = 3
		cfg.Crafting.EatRestore = 35
	case DifficultyHard:
		cfg.Survival.HungerInterval = 2
		cfg.Survival.HungerDrain = 3
		cfg.Survival.StarveDamage = 8
		cfg.Crafting.EatRestore = 20
	}
}
