package game

import (
	"math/rand"

	"github.com/vovakirdan/tenure-rush/internal/core"
	"github.com/vovakirdan/tenure-rush/internal/powerup"
)

// Tone selects how a callout is drawn.
type Tone int

const (
	ToneSuccess Tone = iota
	ToneFailure
	TonePass
	ToneFriend
	ToneWanderer
	TonePickup
	ToneInfo
)

// Color maps a tone to a screen color.
func (t Tone) Color() core.Color {
	switch t {
	case ToneSuccess:
		return core.ColorBrightGreen
	case ToneFailure, ToneWanderer:
		return core.ColorBrightRed
	case TonePass, ToneFriend:
		return core.ColorPink
	case TonePickup:
		return core.ColorBrightYellow
	default:
		return core.ColorGray
	}
}

var (
	successLines = []string{"Alright!", ":)", "Great", "Yeah!", "Perfect!"}
	failureLines = []string{"Ouch!!", "Yeah, no", "Watch those toes!!", "Grrr! Grrr! Grrr!", "Watch it!"}

	wandererLines = []string{
		"Break the silos!",
		"Let's collaborate!",
		"Glad we could network!",
		"Teamwork makes the dream work!",
		"Update your LinkedIn!",
		"I submitted 10 grants last week!",
		"Multidisciplinary research is so important!",
	}

	friendLines = []string{
		"Have a good day!",
		"Need a hug?",
		"Need some coffee?",
		"Good to see you!",
		"You've got this!",
		"Hi there.",
	}
)

const (
	passUsedLine = "DOOR PASS USED!"
	devOnLine    = "DEV MODE ON"
	devOffLine   = "DEV MODE OFF"
)

// pickupLine returns the callout shown when a kind is collected.
func pickupLine(k powerup.Kind) string {
	switch k {
	case powerup.Coffee:
		return "2x speed!"
	case powerup.Glasses:
		return "2x experience!"
	case powerup.Cheese:
		return "Cheese! 2x Friends!"
	case powerup.Chopsticks:
		return "Sushi time!"
	case powerup.Sushi:
		return "Yummy! +1 HP"
	default:
		return ""
	}
}

func pick(rng *rand.Rand, lines []string) string {
	return lines[rng.Intn(len(lines))]
}
