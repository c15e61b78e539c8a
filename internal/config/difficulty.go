package config

// LevelFor returns the level reached at the given tenure:
// min(floor(tenure / tenure_per_level) + 1, max_level).
func (p ProgressionConfig) LevelFor(tenure int) int {
	if tenure < 0 {
		tenure = 0
	}
	level := tenure/p.TenurePerLevel + 1
	if level > p.MaxLevel {
		level = p.MaxLevel
	}
	return level
}

// SequenceLength returns the door sequence length at a level:
// min(floor((level-1) / levels_per_symbol) + 1, max_sequence).
func (d DoorConfig) SequenceLength(level int) int {
	if level < 1 {
		level = 1
	}
	n := (level-1)/d.LevelsPerSymbol + 1
	if n > d.MaxSequence {
		n = d.MaxSequence
	}
	return n
}

// WandererSpan returns the wanderer interval for a level. Levels without an
// explicit entry use the highest-level entry.
func (s SpawningConfig) WandererSpan(level int) Span {
	if len(s.Wanderer) == 0 {
		return Span{Min: 600, Max: 800}
	}
	for _, ls := range s.Wanderer {
		if ls.Level == level {
			return Span{Min: ls.Min, Max: ls.Max}
		}
	}
	last := s.Wanderer[len(s.Wanderer)-1]
	return Span{Min: last.Min, Max: last.Max}
}

// FriendInterval applies the cheese divisor to a rolled friend interval.
func (s SpawningConfig) FriendInterval(rolled int, cheese bool) int {
	if !cheese || s.CheeseDivisor <= 1 {
		return rolled
	}
	return rolled / s.CheeseDivisor
}
