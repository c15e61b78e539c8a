// Package powerup defines the power-up kinds and the timed effect system
// that tracks which buffs are active and for how long.
package powerup

// Kind identifies a power-up, both as a world token and as an active effect.
type Kind int

const (
	Coffee     Kind = iota // Timed: enables the forward speed boost, doubles lateral speed
	Glasses                // Timed: doubles tenure gained per door
	Cheese                 // Timed: halves the friend spawn interval
	Chopsticks             // Tool: adds tool tokens to the player
	Sushi                  // Consumable: heals when a tool token is held
	KindCount              // Sentinel for counting kinds
)

// Category groups kinds by how a pickup resolves.
type Category int

const (
	CategoryTimed Category = iota
	CategoryTool
	CategoryConsumable
)

// Category returns how a pickup of this kind is resolved.
func (k Kind) Category() Category {
	switch k {
	case Chopsticks:
		return CategoryTool
	case Sushi:
		return CategoryConsumable
	default:
		return CategoryTimed
	}
}

// Valid reports whether k is a member of the enumeration.
func (k Kind) Valid() bool {
	return k >= 0 && k < KindCount
}

// String returns the name of the kind.
func (k Kind) String() string {
	switch k {
	case Coffee:
		return "coffee"
	case Glasses:
		return "glasses"
	case Cheese:
		return "cheese"
	case Chopsticks:
		return "chopsticks"
	case Sushi:
		return "sushi"
	default:
		return "unknown"
	}
}

// Glyph returns the display character for a token of this kind.
func (k Kind) Glyph() rune {
	switch k {
	case Coffee:
		return 'C'
	case Glasses:
		return 'G'
	case Cheese:
		return 'Z'
	case Chopsticks:
		return 'K'
	case Sushi:
		return 'S'
	default:
		return '?'
	}
}
