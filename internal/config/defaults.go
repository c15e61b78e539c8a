package config

import (
	_ "embed"
)

//go:embed defaults/tenure.yaml
var defaultTenureYAML []byte

// DefaultTenureConfig returns the default Tenure Rush configuration.
func DefaultTenureConfig() TenureConfig {
	return TenureConfig{
		World: WorldConfig{
			Width:          768,
			Height:         800,
			WallInset:      50,
			HallwayWidth:   668,
			CullMargin:     50,
			TicksPerSecond: 60,
		},
		Scroll: ScrollConfig{
			BaseSpeed:       2.0,
			BoostMultiplier: 2.5,
		},
		Player: PlayerConfig{
			Width:                30,
			Height:               40,
			BottomOffset:         80,
			MaxHP:                5,
			MoveSpeed:            2.5,
			CoffeeMoveMultiplier: 2.0,
			ImmunityTicks:        80,
		},
		Doors: DoorConfig{
			Width:           60,
			Height:          60,
			BandAhead:       160,
			BandBehind:      80,
			MaxSequence:     4,
			LevelsPerSymbol: 3,
		},
		PowerUps: PowerUpConfig{
			Size:         30,
			CoffeeTicks:  1200, // 20 seconds
			GlassesTicks: 900,
			CheeseTicks:  900,
			ToolGrant:    5,
			HealAmount:   1,
		},
		Friends: FriendConfig{
			Width:     30,
			Height:    40,
			PassGrant: 1,
		},
		Wanderers: WandererConfig{
			Width:    40,
			Height:   80,
			MinSpeed: 1.5,
			MaxSpeed: 3.5,
		},
		Spawning: SpawningConfig{
			Door:          Span{Min: 40, Max: 150},
			PowerUp:       Span{Min: 100, Max: 200},
			Friend:        Span{Min: 200, Max: 300},
			CheeseDivisor: 2,
			Wanderer: []LevelSpan{
				{Level: 1, Min: 600, Max: 800},
				{Level: 2, Min: 500, Max: 700},
				{Level: 3, Min: 400, Max: 600},
				{Level: 4, Min: 350, Max: 550},
				{Level: 5, Min: 300, Max: 500},
				{Level: 6, Min: 250, Max: 450},
				{Level: 7, Min: 200, Max: 400},
				{Level: 8, Min: 180, Max: 350},
				{Level: 9, Min: 150, Max: 300},
				{Level: 10, Min: 120, Max: 250},
			},
		},
		Progression: ProgressionConfig{
			WinTenure:         100,
			TenurePerLevel:    10,
			MaxLevel:          10,
			DoorGain:          1,
			GlassesMultiplier: 2,
			DevMultiplier:     10,
			RomanticHearts:    50,
		},
		Effects: EffectsConfig{
			HeartTicks:   60,
			HeartRise:    2,
			CalloutTicks: 60,
			CalloutRise:  1,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultTenureYAML
}
