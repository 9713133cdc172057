package game

import (
	"github.com/vovakirdan/wanderer/internal/survival"
	"github.com/vovakirdan/wanderer/internal/world"
)

// Settings are the constants a game is created with.
type Settings struct {
	Seed           int64
	Gen            world.GenParams
	Rules          survival.Rules
	Camera         CameraParams
	StartHour      float64
	HoursPerMinute float64
}

// CameraParams configure the follow camera.
type CameraParams struct {
	Sensitivity  float64
	Distance     float64
	StartHeight  float64
	MinHeight    float64
	MaxHeight    float64
	LookAtOffset float64
}

// DefaultSettings returns the standard game on seed 12345.
func DefaultSettings() Settings {
	return Settings{
		Seed:  12345,
		Gen:   world.DefaultGenParams(),
		Rules: survival.DefaultRules(),
		Camera: CameraParams{
			Sensitivity:  0.08,
			Distance:     12,
			StartHeight:  5,
			MinHeight:    3,
			MaxHeight:    8,
			LookAtOffset: 1.5,
		},
		StartHour:      6,
		HoursPerMinute: 1,
	}
}
