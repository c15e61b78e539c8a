package config

import (
	"errors"
	"fmt"
)

// Validate reports every invalid field at once.
func (c TenureConfig) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf(format, args...))
		}
	}

	check(c.World.Width > 0 && c.World.Height > 0, "world: size must be positive")
	check(c.World.HallwayWidth > 0, "world.hallway_width must be positive")
	check(c.World.CorridorRight() <= c.World.Width, "world: corridor exceeds width")
	check(c.World.TicksPerSecond > 0, "world.ticks_per_second must be positive")

	check(c.Scroll.BaseSpeed > 0, "scroll.base_speed must be positive")
	check(c.Scroll.BoostMultiplier >= 1, "scroll.boost_multiplier must be at least 1")

	check(c.Player.Width > 0 && c.Player.Height > 0, "player: size must be positive")
	check(c.Player.Width <= c.World.HallwayWidth, "player.width exceeds the corridor")
	check(c.Player.MaxHP > 0, "player.max_hp must be positive")
	check(c.Player.ImmunityTicks >= 0, "player.immunity_ticks must not be negative")

	check(c.Doors.Width > 0 && c.Doors.Height > 0, "doors: size must be positive")
	check(c.Doors.MaxSequence >= 1, "doors.max_sequence must be at least 1")
	check(c.Doors.LevelsPerSymbol >= 1, "doors.levels_per_symbol must be at least 1")

	check(c.PowerUps.CoffeeTicks > 0 && c.PowerUps.GlassesTicks > 0 && c.PowerUps.CheeseTicks > 0,
		"powerups: durations must be positive")
	check(c.PowerUps.ToolGrant >= 0 && c.PowerUps.HealAmount >= 0, "powerups: grants must not be negative")

	check(c.Wanderers.MinSpeed > 0 && c.Wanderers.MaxSpeed >= c.Wanderers.MinSpeed,
		"wanderers: speed range [%v, %v) is invalid", c.Wanderers.MinSpeed, c.Wanderers.MaxSpeed)
	check(c.Wanderers.Width <= c.World.HallwayWidth, "wanderers.width exceeds the corridor")

	spans := []struct {
		name string
		span Span
	}{
		{"door", c.Spawning.Door},
		{"powerup", c.Spawning.PowerUp},
		{"friend", c.Spawning.Friend},
	}
	for _, sp := range spans {
		check(sp.span.Min > 0 && sp.span.Max >= sp.span.Min,
			"spawning.%s: interval [%d, %d] is invalid", sp.name, sp.span.Min, sp.span.Max)
	}
	check(len(c.Spawning.Wanderer) > 0, "spawning.wanderer must have at least one entry")
	for i, s := range c.Spawning.Wanderer {
		check(s.Min > 0 && s.Max >= s.Min, "spawning.wanderer[%d]: interval [%d, %d] is invalid", i, s.Min, s.Max)
		if i > 0 {
			check(s.Level > c.Spawning.Wanderer[i-1].Level, "spawning.wanderer: levels must increase")
		}
	}
	check(c.Spawning.CheeseDivisor >= 1, "spawning.cheese_divisor must be at least 1")

	check(c.Progression.WinTenure > 0, "progression.win_tenure must be positive")
	check(c.Progression.TenurePerLevel > 0, "progression.tenure_per_level must be positive")
	check(c.Progression.MaxLevel >= 1, "progression.max_level must be at least 1")
	check(c.Progression.DoorGain > 0, "progression.door_gain must be positive")
	check(c.Progression.GlassesMultiplier >= 1 && c.Progression.DevMultiplier >= 1,
		"progression: multipliers must be at least 1")

	return errors.Join(errs...)
}
