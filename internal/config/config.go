// Package config provides YAML-based configuration loading and difficulty
// presets for the wanderer engine and its hosts.
package config

// Config contains all tunable values. It is loaded once at startup and
// treated as immutable afterwards.
type Config struct {
	World      WorldConfig      `yaml:"world"`
	Generation GenerationConfig `yaml:"generation"`
	Player     PlayerConfig     `yaml:"player"`
	Survival   SurvivalConfig   `yaml:"survival"`
	Crafting   CraftingConfig   `yaml:"crafting"`
	Clock      ClockConfig      `yaml:"clock"`
	Camera     CameraConfig     `yaml:"camera"`
	Runtime    RuntimeConfig    `yaml:"runtime"`
}

// WorldConfig selects the world.
type WorldConfig struct {
	Seed     int64   `yaml:"seed"`
	Size     int     `yaml:"size"`      // Cells per side
	TileSize float64 `yaml:"tile_size"` // World units per cell
}

// GenerationConfig defines the noise and classification parameters.
type GenerationConfig struct {
	HeightWeights    []float64       `yaml:"height_weights"`
	HeightFalloff    float64         `yaml:"height_falloff"`
	MoistureWeights  []float64       `yaml:"moisture_weights"`
	MoistureFalloff  float64         `yaml:"moisture_falloff"`
	WaterBelow       float64         `yaml:"water_below"`
	SandBelow        float64         `yaml:"sand_below"`
	SandMoisture     float64         `yaml:"sand_moisture"`
	StoneAbove       float64         `yaml:"stone_above"`
	ForestMoisture   float64         `yaml:"forest_moisture"`
	ForestAbove      float64         `yaml:"forest_above"`
	Resources        ResourceChances `yaml:"resources"`
	SpawnClearRadius int             `yaml:"spawn_clear_radius"`
}

// ResourceChances are per-cell placement probabilities.
type ResourceChances struct {
	Herb float64 `yaml:"herb"`
	Tree float64 `yaml:"tree"`
	Rock float64 `yaml:"rock"`
	Bush float64 `yaml:"bush"`
}

// PlayerConfig defines the avatar.
type PlayerConfig struct {
	Speed     float64 `yaml:"speed"` // World units per 16 ms
	MaxHealth float64 `yaml:"max_health"`
	MaxHunger float64 `yaml:"max_hunger"`
}

// SurvivalConfig defines decay timers and harvest yields.
type SurvivalConfig struct {
	HungerInterval float64 `yaml:"hunger_interval"` // Seconds
	HungerDrain    float64 `yaml:"hunger_drain"`
	StarveInterval float64 `yaml:"starve_interval"` // Seconds
	StarveDamage   float64 `yaml:"starve_damage"`
	Yields         Yields  `yaml:"yields"`
}

// Yields are inventory gains per harvested resource.
type Yields struct {
	Herb  int `yaml:"herb"`
	Wood  int `yaml:"wood"`
	Stone int `yaml:"stone"`
	Food  int `yaml:"food"`
}

// CraftingConfig defines recipe costs and effects.
type CraftingConfig struct {
	CampfireWood    int     `yaml:"campfire_wood"`
	CampfireRestore float64 `yaml:"campfire_restore"`
	AxeWood         int     `yaml:"axe_wood"`
	AxeStone        int     `yaml:"axe_stone"`
	EatFood         int     `yaml:"eat_food"`
	EatRestore      float64 `yaml:"eat_restore"`
}

// ClockConfig defines the day/night cycle.
type ClockConfig struct {
	StartHour      float64 `yaml:"start_hour"`
	HoursPerMinute float64 `yaml:"hours_per_minute"` // Game hours per real minute
}

// CameraConfig defines the follow camera.
type CameraConfig struct {
	Sensitivity  float64 `yaml:"sensitivity"`
	Distance     float64 `yaml:"distance"`
	StartHeight  float64 `yaml:"start_height"`
	MinHeight    float64 `yaml:"min_height"`
	MaxHeight    float64 `yaml:"max_height"`
	LookAtOffset float64 `yaml:"look_at_offset"`
	InputDamping float64 `yaml:"input_damping"` // Per-frame decay of look input in hosts
}

// RuntimeConfig defines host loop behaviour.
type RuntimeConfig struct {
	TickRate   int     `yaml:"tick_rate"`    // Frames per second
	MaxFrameMs float64 `yaml:"max_frame_ms"` // Clamp applied to frame deltas
	KeyHoldMs  float64 `yaml:"key_hold_ms"`  // How long a terminal key press counts as held
}
