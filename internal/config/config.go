// Package config provides YAML/TOML-based game configuration loading,
// difficulty presets and progression rules for Tenure Rush.
package config

// TenureConfig contains all tunable parameters of a run.
type TenureConfig struct {
	World       WorldConfig       `yaml:"world" toml:"world"`
	Scroll      ScrollConfig      `yaml:"scroll" toml:"scroll"`
	Player      PlayerConfig      `yaml:"player" toml:"player"`
	Doors       DoorConfig        `yaml:"doors" toml:"doors"`
	PowerUps    PowerUpConfig     `yaml:"powerups" toml:"powerups"`
	Friends     FriendConfig      `yaml:"friends" toml:"friends"`
	Wanderers   WandererConfig    `yaml:"wanderers" toml:"wanderers"`
	Spawning    SpawningConfig    `yaml:"spawning" toml:"spawning"`
	Progression ProgressionConfig `yaml:"progression" toml:"progression"`
	Effects     EffectsConfig     `yaml:"effects" toml:"effects"`
}

// WorldConfig defines the playfield in world units.
type WorldConfig struct {
	Width          float64 `yaml:"width" toml:"width"`
	Height         float64 `yaml:"height" toml:"height"`
	WallInset      float64 `yaml:"wall_inset" toml:"wall_inset"`         // Left wall x
	HallwayWidth   float64 `yaml:"hallway_width" toml:"hallway_width"`   // Corridor width between walls
	CullMargin     float64 `yaml:"cull_margin" toml:"cull_margin"`       // Entities below height+margin are removed
	TicksPerSecond int     `yaml:"ticks_per_second" toml:"ticks_per_second"`
}

// ScrollConfig defines forward scrolling.
type ScrollConfig struct {
	BaseSpeed       float64 `yaml:"base_speed" toml:"base_speed"`
	BoostMultiplier float64 `yaml:"boost_multiplier" toml:"boost_multiplier"`
}

// PlayerConfig defines the player body and damage rules.
type PlayerConfig struct {
	Width                float64 `yaml:"width" toml:"width"`
	Height               float64 `yaml:"height" toml:"height"`
	BottomOffset         float64 `yaml:"bottom_offset" toml:"bottom_offset"` // Distance from the bottom edge to the player's top
	MaxHP                int     `yaml:"max_hp" toml:"max_hp"`
	MoveSpeed            float64 `yaml:"move_speed" toml:"move_speed"`
	CoffeeMoveMultiplier float64 `yaml:"coffee_move_multiplier" toml:"coffee_move_multiplier"`
	ImmunityTicks        int     `yaml:"immunity_ticks" toml:"immunity_ticks"`
}

// DoorConfig defines doors and their interaction window.
type DoorConfig struct {
	Width           float64 `yaml:"width" toml:"width"`
	Height          float64 `yaml:"height" toml:"height"`
	BandAhead       float64 `yaml:"band_ahead" toml:"band_ahead"`   // Window extends this far above the player
	BandBehind      float64 `yaml:"band_behind" toml:"band_behind"` // and this far below
	MaxSequence     int     `yaml:"max_sequence" toml:"max_sequence"`
	LevelsPerSymbol int     `yaml:"levels_per_symbol" toml:"levels_per_symbol"`
}

// PowerUpConfig defines pickup tokens and effect durations in ticks.
type PowerUpConfig struct {
	Size         float64 `yaml:"size" toml:"size"`
	CoffeeTicks  int     `yaml:"coffee_ticks" toml:"coffee_ticks"`
	GlassesTicks int     `yaml:"glasses_ticks" toml:"glasses_ticks"`
	CheeseTicks  int     `yaml:"cheese_ticks" toml:"cheese_ticks"`
	ToolGrant    int     `yaml:"tool_grant" toml:"tool_grant"`
	HealAmount   int     `yaml:"heal_amount" toml:"heal_amount"`
}

// FriendConfig defines friends.
type FriendConfig struct {
	Width     float64 `yaml:"width" toml:"width"`
	Height    float64 `yaml:"height" toml:"height"`
	PassGrant int     `yaml:"pass_grant" toml:"pass_grant"`
}

// WandererConfig defines hostile wanderers.
type WandererConfig struct {
	Width    float64 `yaml:"width" toml:"width"`
	Height   float64 `yaml:"height" toml:"height"`
	MinSpeed float64 `yaml:"min_speed" toml:"min_speed"`
	MaxSpeed float64 `yaml:"max_speed" toml:"max_speed"` // Exclusive
}

// Span is an inclusive tick interval.
type Span struct {
	Min int `yaml:"min" toml:"min"`
	Max int `yaml:"max" toml:"max"`
}

// LevelSpan is the wanderer interval used at a given level.
type LevelSpan struct {
	Level int `yaml:"level" toml:"level"`
	Min   int `yaml:"min" toml:"min"`
	Max   int `yaml:"max" toml:"max"`
}

// SpawningConfig defines spawn intervals.
type SpawningConfig struct {
	Door          Span        `yaml:"door" toml:"door"`
	PowerUp       Span        `yaml:"powerup" toml:"powerup"`
	Friend        Span        `yaml:"friend" toml:"friend"`
	Wanderer      []LevelSpan `yaml:"wanderer" toml:"wanderer"`
	CheeseDivisor int         `yaml:"cheese_divisor" toml:"cheese_divisor"` // Friend interval divisor while cheese is active
}

// ProgressionConfig defines tenure and level rules.
type ProgressionConfig struct {
	WinTenure         int `yaml:"win_tenure" toml:"win_tenure"`
	TenurePerLevel    int `yaml:"tenure_per_level" toml:"tenure_per_level"`
	MaxLevel          int `yaml:"max_level" toml:"max_level"`
	DoorGain          int `yaml:"door_gain" toml:"door_gain"`
	GlassesMultiplier int `yaml:"glasses_multiplier" toml:"glasses_multiplier"`
	DevMultiplier     int `yaml:"dev_multiplier" toml:"dev_multiplier"`
	RomanticHearts    int `yaml:"romantic_hearts" toml:"romantic_hearts"` // Hearts needed for the romantic ending
}

// EffectsConfig defines decorative markers.
type EffectsConfig struct {
	HeartTicks   int     `yaml:"heart_ticks" toml:"heart_ticks"`
	HeartRise    float64 `yaml:"heart_rise" toml:"heart_rise"`
	CalloutTicks int     `yaml:"callout_ticks" toml:"callout_ticks"`
	CalloutRise  float64 `yaml:"callout_rise" toml:"callout_rise"`
}

// CorridorLeft returns the x of the left wall.
func (w WorldConfig) CorridorLeft() float64 {
	return w.WallInset
}

// CorridorRight returns the x of the right wall.
func (w WorldConfig) CorridorRight() float64 {
	return w.WallInset + w.HallwayWidth
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)
