package protocol

// HelloMsg opens a session. Player names the run in the history board.
type HelloMsg struct {
	Type            string `json:"type"`
	ProtocolVersion string `json:"protocol_version"`
	ClientName      string `json:"client_name,omitempty"`
	Player          string `json:"player,omitempty"`
}

// WelcomeMsg answers HELLO with everything that does not change during a
// session: world parameters, the terrain and the initial resources.
type WelcomeMsg struct {
	Type            string        `json:"type"`
	ProtocolVersion string        `json:"protocol_version"`
	SessionID       string        `json:"session_id"`
	WorldParams     WorldParams   `json:"world_params"`
	Terrain         TerrainMsg    `json:"terrain"`
	Resources       []ResourceMsg `json:"resources"`
	Snapshot        SnapshotMsg   `json:"snapshot"`
}

type WorldParams struct {
	Seed           int64   `json:"seed"`
	Size           int     `json:"size"`
	TileSize       float64 `json:"tile_size"`
	TickRateHz     int     `json:"tick_rate_hz"`
	ReachRadius    float64 `json:"reach_radius"`
	HoursPerMinute float64 `json:"hours_per_minute"`
}

// TerrainMsg carries the grid row-major. Kinds holds one digit per cell,
// indexing Legend; Heights are in tile units.
type TerrainMsg struct {
	Legend  []string  `json:"legend"`
	Colors  []string  `json:"colors"`
	Kinds   string    `json:"kinds"`
	Heights []float64 `json:"heights"`
}

type ResourceMsg struct {
	ID   uint32 `json:"id"`
	X    int    `json:"x"`
	Z    int    `json:"z"`
	Kind string `json:"kind"`
}

// IntentMsg is one client input update. Held replaces the held movement
// keys; actions and look deltas accumulate until the next tick.
type IntentMsg struct {
	Type            string   `json:"type"`
	ProtocolVersion string   `json:"protocol_version"`
	Seq             uint64   `json:"seq"`
	Held            []string `json:"held,omitempty"`
	Actions         []string `json:"actions,omitempty"`
	YawDelta        float64  `json:"yaw_delta,omitempty"`
	PitchDelta      float64  `json:"pitch_delta,omitempty"`
}

// SnapshotMsg is the per-tick state. Resources harvested this tick are
// listed in Removed; clients apply them to the list from WELCOME.
type SnapshotMsg struct {
	Type            string       `json:"type"`
	ProtocolVersion string       `json:"protocol_version"`
	Tick            uint64       `json:"tick"`
	Ack             uint64       `json:"ack"`
	Player          PlayerMsg    `json:"player"`
	Camera          CameraMsg    `json:"camera"`
	Lighting        LightingMsg  `json:"lighting"`
	Clock           ClockMsg     `json:"clock"`
	Hover           *ResourceMsg `json:"hover,omitempty"`
	Removed         []uint32     `json:"removed,omitempty"`
	Events          []EventMsg   `json:"events,omitempty"`
	Decay           DecayMsg     `json:"decay"`
	GameOver        bool         `json:"game_over"`
	Stats           StatsMsg     `json:"stats"`
}

type PlayerMsg struct {
	Pos       [3]float64   `json:"pos"`
	Vel       [2]float64   `json:"vel"`
	Facing    float64      `json:"facing"`
	Health    float64      `json:"health"`
	Hunger    float64      `json:"hunger"`
	MaxHealth float64      `json:"max_health"`
	MaxHunger float64      `json:"max_hunger"`
	Inventory InventoryMsg `json:"inventory"`
	HasAxe    bool         `json:"has_axe"`
}

type InventoryMsg struct {
	Herb  int `json:"herb"`
	Wood  int `json:"wood"`
	Stone int `json:"stone"`
	Food  int `json:"food"`
}

type CameraMsg struct {
	Yaw     float64    `json:"yaw"`
	Height  float64    `json:"height"`
	Pos     [3]float64 `json:"pos"`
	LookAt  [3]float64 `json:"look_at"`
	Forward [3]float64 `json:"forward"`
}

type LightingMsg struct {
	Night      bool       `json:"night"`
	SunPos     [3]float64 `json:"sun_pos"`
	SunDir     [3]float64 `json:"sun_dir"`
	Intensity  float64    `json:"intensity"`
	LightColor string     `json:"light_color"`
	SkyColor   string     `json:"sky_color"`
	FogColor   string     `json:"fog_color"`
	FogNear    float64    `json:"fog_near"`
	FogFar     float64    `json:"fog_far"`
}

// DecayMsg flags the survival timers that fired this tick.
type DecayMsg struct {
	HungerDrained bool `json:"hunger_drained"`
	Starved       bool `json:"starved"`
}

type ClockMsg struct {
	Day    int     `json:"day"`
	Hour   int     `json:"hour"`
	Minute int     `json:"minute"`
	Hours  float64 `json:"hours"`
	Night  bool    `json:"night"`
	Label  string  `json:"label"`
}

// EventMsg reports the outcome of one requested action.
type EventMsg struct {
	Action   string       `json:"action"`
	OK       bool         `json:"ok"`
	Code     string       `json:"code,omitempty"`
	Resource *ResourceMsg `json:"resource,omitempty"`
}

type StatsMsg struct {
	ItemsGathered int     `json:"items_gathered"`
	Crafted       int     `json:"crafted"`
	Distance      float64 `json:"distance"`
	ElapsedMs     float64 `json:"elapsed_ms"`
}

type ErrorMsg struct {
	Type            string `json:"type"`
	ProtocolVersion string `json:"protocol_version"`
	Code            string `json:"code"`
	Message         string `json:"message"`
}

// NewError builds an ERROR message.
func NewError(code, message string) ErrorMsg {
	return ErrorMsg{
		Type:            TypeError,
		ProtocolVersion: Version,
		Code:            code,
		Message:         message,
	}
}
