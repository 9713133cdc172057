// Package replay runs the simulation headlessly from YAML intent scripts.
package replay

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/wanderer/internal/config"
	"github.com/vovakirdan/wanderer/internal/game"
	"github.com/vovakirdan/wanderer/internal/protocol"
)

// DefaultDt is the tick length used when a script sets none.
const DefaultDt = 16

// Script is a sequence of intent steps, optionally pinning the world.
//
//	seed: 12345
//	difficulty: hard
//	dt: 16
//	steps:
//	  - {repeat: 30, held: [forward]}
//	  - {actions: [harvest]}
//	  - {repeat: 10, yaw: 1, dt: 100}
type Script struct {
	Seed       *int64  `yaml:"seed"`
	Difficulty string  `yaml:"difficulty"`
	Dt         float64 `yaml:"dt"`
	Steps      []Step  `yaml:"steps"`
}

// Step repeats one intent for Repeat ticks (at least one). Held keys and
// actions use the wire names: forward, back, left, right and harvest, eat,
// craft_campfire, craft_axe.
type Step struct {
	Repeat  int      `yaml:"repeat"`
	Dt      float64  `yaml:"dt"`
	Held    []string `yaml:"held"`
	Actions []string `yaml:"actions"`
	Yaw     float64  `yaml:"yaw"`
	Pitch   float64  `yaml:"pitch"`
}

// Parse decodes and validates a script.
func Parse(data []byte) (Script, error) {
	var s Script
	if err := yaml.Unmarshal(data, &s); err != nil {
		return s, fmt.Errorf("replay: parse script: %w", err)
	}
	if err := s.Validate(); err != nil {
		return s, err
	}
	return s, nil
}

// Load reads a script file.
func Load(path string) (Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Script{}, fmt.Errorf("replay: %w", err)
	}
	return Parse(data)
}

// Validate rejects negative timings and unknown key or action names.
func (s Script) Validate() error {
	if s.Dt < 0 {
		return fmt.Errorf("replay: dt must not be negative")
	}
	if len(s.Steps) == 0 {
		return fmt.Errorf("replay: script has no steps")
	}
	for i, st := range s.Steps {
		if st.Repeat < 0 {
			return fmt.Errorf("replay: step %d: repeat must not be negative", i+1)
		}
		if st.Dt < 0 {
			return fmt.Errorf("replay: step %d: dt must not be negative", i+1)
		}
		if _, err := st.Intent(); err != nil {
			return fmt.Errorf("replay: step %d: %w", i+1, err)
		}
	}
	if s.Difficulty != "" {
		if _, err := config.ParseDifficulty(s.Difficulty); err != nil {
			return fmt.Errorf("replay: %w", err)
		}
	}
	return nil
}

// Configure applies the script's seed and difficulty to cfg.
func (s Script) Configure(cfg *config.Config) error {
	if s.Seed != nil {
		cfg.World.Seed = *s.Seed
	}
	if s.Difficulty != "" {
		preset, err := config.ParseDifficulty(s.Difficulty)
		if err != nil {
			return fmt.Errorf("replay: %w", err)
		}
		config.ApplyPreset(cfg, preset)
	}
	return nil
}

// Intent converts the step into a simulation intent.
func (st Step) Intent() (game.Intent, error) {
	msg := protocol.IntentMsg{
		Held:       st.Held,
		Actions:    st.Actions,
		YawDelta:   st.Yaw,
		PitchDelta: st.Pitch,
	}
	return msg.Intent()
}

// Ticks is the number of ticks the step runs.
func (st Step) Ticks() int {
	return max(st.Repeat, 1)
}
