package config

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg, err := decode("tenure.yaml", DefaultYAML())
	if err != nil {
		t.Fatalf("decode embedded defaults: %v", err)
	}
	if !reflect.DeepEqual(cfg, DefaultTenureConfig()) {
		t.Errorf("embedded YAML and DefaultTenureConfig differ:\n%+v\n%+v", cfg, DefaultTenureConfig())
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults should validate: %v", err)
	}
}

func TestLoadCustomYAMLPartial(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	data := "player:\n  max_hp: 9\nscroll:\n  base_speed: 3\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Player.MaxHP != 9 || cfg.Scroll.BaseSpeed != 3 {
		t.Errorf("overrides not applied: hp=%d speed=%v", cfg.Player.MaxHP, cfg.Scroll.BaseSpeed)
	}
	if cfg.Player.Width != 30 || cfg.PowerUps.CoffeeTicks != 1200 {
		t.Error("unset keys should keep defaults")
	}
	if len(cfg.Spawning.Wanderer) != 10 {
		t.Errorf("wanderer table len = %d, expected defaults", len(cfg.Spawning.Wanderer))
	}
}

func TestLoadCustomTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.toml")
	data := `
[player]
max_hp = 4

[[spawning.wanderer]]
level = 1
min = 90
max = 100
`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Player.MaxHP != 4 {
		t.Errorf("MaxHP = %d, expected 4", cfg.Player.MaxHP)
	}
	want := []LevelSpan{{Level: 1, Min: 90, Max: 100}}
	if !reflect.DeepEqual(cfg.Spawning.Wanderer, want) {
		t.Errorf("wanderer table = %v, expected %v", cfg.Spawning.Wanderer, want)
	}
}

func TestLoadCustomErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := Load(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("missing custom file should fail")
	}

	bad := filepath.Join(dir, "bad.yaml")
	os.WriteFile(bad, []byte("player: [not a map"), 0o644)
	if _, err := Load(bad); err == nil {
		t.Error("malformed YAML should fail")
	}

	invalid := filepath.Join(dir, "invalid.yaml")
	os.WriteFile(invalid, []byte("player:\n  max_hp: 0\nscroll:\n  base_speed: -1\n"), 0o644)
	_, err := Load(invalid)
	if err == nil {
		t.Fatal("invalid values should fail validation")
	}
	for _, want := range []string{"player.max_hp", "scroll.base_speed"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("error %q should mention %s", err, want)
		}
	}
}

func TestValidateRejectsBadSpans(t *testing.T) {
	cfg := DefaultTenureConfig()
	cfg.Spawning.Door = Span{Min: 50, Max: 10}
	cfg.Spawning.Wanderer = []LevelSpan{{Level: 2, Min: 1, Max: 2}, {Level: 1, Min: 1, Max: 2}}

	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected validation error")
	}
	if !strings.Contains(err.Error(), "spawning.door") || !strings.Contains(err.Error(), "levels must increase") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestValidateErrorOrderIsStable(t *testing.T) {
	cfg := DefaultTenureConfig()
	cfg.Spawning.Door = Span{Min: 0, Max: 0}
	cfg.Spawning.PowerUp = Span{Min: 9, Max: 1}
	cfg.Spawning.Friend = Span{Min: -1, Max: 5}

	first := cfg.Validate().Error()
	for range 20 {
		if got := cfg.Validate().Error(); got != first {
			t.Fatalf("validation output changed:\n%s\n---\n%s", first, got)
		}
	}
	door := strings.Index(first, "spawning.door")
	powerup := strings.Index(first, "spawning.powerup")
	friend := strings.Index(first, "spawning.friend")
	if door < 0 || !(door < powerup && powerup < friend) {
		t.Errorf("span errors out of order: %v", first)
	}
}

func TestLevelFor(t *testing.T) {
	p := DefaultTenureConfig().Progression

	tests := []struct {
		tenure   int
		expected int
	}{
		{0, 1},
		{9, 1},
		{10, 2},
		{55, 6},
		{99, 10},
		{100, 10},
		{250, 10},
		{-3, 1},
	}

	for _, tc := range tests {
		if got := p.LevelFor(tc.tenure); got != tc.expected {
			t.Errorf("LevelFor(%d) = %d, expected %d", tc.tenure, got, tc.expected)
		}
	}
}

func TestSequenceLength(t *testing.T) {
	d := DefaultTenureConfig().Doors

	tests := []struct {
		level    int
		expected int
	}{
		{1, 1}, {3, 1}, {4, 2}, {6, 2}, {7, 3}, {9, 3}, {10, 4}, {25, 4}, {0, 1},
	}

	for _, tc := range tests {
		if got := d.SequenceLength(tc.level); got != tc.expected {
			t.Errorf("SequenceLength(%d) = %d, expected %d", tc.level, got, tc.expected)
		}
	}
}

func TestWandererSpanFallsBackToHighest(t *testing.T) {
	s := DefaultTenureConfig().Spawning

	if got := s.WandererSpan(1); got != (Span{Min: 600, Max: 800}) {
		t.Errorf("level 1 = %v", got)
	}
	if got := s.WandererSpan(8); got != (Span{Min: 180, Max: 350}) {
		t.Errorf("level 8 = %v", got)
	}
	if got := s.WandererSpan(42); got != (Span{Min: 120, Max: 250}) {
		t.Errorf("unknown level = %v, expected highest entry", got)
	}
}

func TestFriendIntervalCheese(t *testing.T) {
	s := DefaultTenureConfig().Spawning

	if got := s.FriendInterval(251, false); got != 251 {
		t.Errorf("no cheese = %d", got)
	}
	if got := s.FriendInterval(251, true); got != 125 {
		t.Errorf("cheese = %d, expected floor(251/2)", got)
	}
}

func TestPresets(t *testing.T) {
	tests := []struct {
		input string
		hp    int
		table int
	}{
		{"easy", 7, 10},
		{"normal", 5, 10},
		{"", 5, 10},
		{"HARD", 3, 10},
		{"fixed", 5, 1},
	}

	for _, tc := range tests {
		t.Run(tc.input, func(t *testing.T) {
			preset, err := ParseDifficulty(tc.input)
			if err != nil {
				t.Fatalf("ParseDifficulty: %v", err)
			}
			cfg := DefaultTenureConfig()
			ApplyPreset(&cfg, preset)
			if cfg.Player.MaxHP != tc.hp {
				t.Errorf("MaxHP = %d, expected %d", cfg.Player.MaxHP, tc.hp)
			}
			if len(cfg.Spawning.Wanderer) != tc.table {
				t.Errorf("wanderer table len = %d, expected %d", len(cfg.Spawning.Wanderer), tc.table)
			}
			if err := cfg.Validate(); err != nil {
				t.Errorf("preset config invalid: %v", err)
			}
		})
	}

	if _, err := ParseDifficulty("nightmare"); err == nil {
		t.Error("unknown preset should fail")
	}
}
