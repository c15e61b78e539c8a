package core

// Direction is a held movement intent reported by the input collaborator.
type Direction int

const (
	DirLeft Direction = iota
	DirRight
	DirUp // forward; drives the coffee speed boost
)

// String returns a human-readable name for the direction.
func (d Direction) String() string {
	switch d {
	case DirLeft:
		return "Left"
	case DirRight:
		return "Right"
	case DirUp:
		return "Up"
	default:
		return "Unknown"
	}
}

// Symbol is one entry of a door's required key sequence.
type Symbol int

const (
	SymbolUp Symbol = iota
	SymbolDown
	SymbolSpace
	SymbolCount // Sentinel: size of the alphabet
)

// Glyph returns the display character for a symbol.
func (s Symbol) Glyph() rune {
	switch s {
	case SymbolUp:
		return '↑'
	case SymbolDown:
		return '↓'
	case SymbolSpace:
		return '␣'
	default:
		return '?'
	}
}

// String returns the glyph as a string.
func (s Symbol) String() string {
	return string(s.Glyph())
}

// SequenceString renders a sequence as space-separated glyphs.
func SequenceString(seq []Symbol) string {
	out := make([]rune, 0, len(seq)*2)
	for i, s := range seq {
		if i > 0 {
			out = append(out, ' ')
		}
		out = append(out, s.Glyph())
	}
	return string(out)
}
