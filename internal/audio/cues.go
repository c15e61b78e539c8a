// Package audio plays short synthesized cues in response to run events.
package audio

import (
	"time"

	"github.com/vovakirdan/tenure-rush/internal/event"
)

// Wave is an oscillator shape.
type Wave int

const (
	WaveSine Wave = iota
	WaveSquare
	WaveSaw
	WaveTriangle
)

// Note is one tone of a cue. A non-zero EndFreq sweeps exponentially from
// Freq to EndFreq over the note.
type Note struct {
	At       time.Duration // Offset from the start of the cue
	Freq     float64
	EndFreq  float64
	Duration time.Duration
	Wave     Wave
	Volume   float64
}

// Cue is a named group of notes played together.
type Cue struct {
	Name  string
	Notes []Note
}

// Length returns the time until the last note ends.
func (c Cue) Length() time.Duration {
	var end time.Duration
	for _, n := range c.Notes {
		end = max(end, n.At+n.Duration)
	}
	return end
}

const ms = time.Millisecond

var (
	CueKey = Cue{Name: "key", Notes: []Note{
		{Freq: 800, Duration: 50 * ms, Wave: WaveSquare, Volume: 0.3},
	}}

	CueSuccess = Cue{Name: "success", Notes: []Note{
		{Freq: 200, EndFreq: 600, Duration: 150 * ms, Wave: WaveSaw, Volume: 0.6},
		{Freq: 523, Duration: 100 * ms, Wave: WaveSine, Volume: 0.4},
		{At: 100 * ms, Freq: 659, Duration: 100 * ms, Wave: WaveSine, Volume: 0.4},
		{At: 200 * ms, Freq: 784, Duration: 200 * ms, Wave: WaveSine, Volume: 0.5},
	}}

	CueError = Cue{Name: "error", Notes: []Note{
		{Freq: 150, EndFreq: 50, Duration: 200 * ms, Wave: WaveSaw, Volume: 0.8},
		{At: 50 * ms, Freq: 100, Duration: 50 * ms, Wave: WaveSaw, Volume: 0.6},
	}}

	CuePowerUp = Cue{Name: "powerup", Notes: []Note{
		{Freq: 330, Duration: 80 * ms, Wave: WaveSine, Volume: 0.4},
		{At: 80 * ms, Freq: 440, Duration: 80 * ms, Wave: WaveSine, Volume: 0.4},
		{At: 160 * ms, Freq: 550, Duration: 80 * ms, Wave: WaveSine, Volume: 0.4},
		{At: 240 * ms, Freq: 660, Duration: 120 * ms, Wave: WaveSine, Volume: 0.5},
	}}

	CueFriend = Cue{Name: "friend", Notes: []Note{
		{Freq: 440, Duration: 100 * ms, Wave: WaveSine, Volume: 0.5},
		{At: 100 * ms, Freq: 554, Duration: 100 * ms, Wave: WaveSine, Volume: 0.5},
		{At: 200 * ms, Freq: 659, Duration: 150 * ms, Wave: WaveSine, Volume: 0.6},
		{At: 300 * ms, Freq: 880, Duration: 80 * ms, Wave: WaveTriangle, Volume: 0.4},
		{At: 380 * ms, Freq: 1108, Duration: 80 * ms, Wave: WaveTriangle, Volume: 0.4},
	}}

	CuePass = Cue{Name: "pass", Notes: []Note{
		{Freq: 659, Duration: 100 * ms, Wave: WaveSine, Volume: 0.5},
		{At: 100 * ms, Freq: 784, Duration: 100 * ms, Wave: WaveSine, Volume: 0.5},
		{At: 200 * ms, Freq: 988, Duration: 150 * ms, Wave: WaveSine, Volume: 0.6},
		{At: 300 * ms, Freq: 1319, Duration: 200 * ms, Wave: WaveSine, Volume: 0.7},
	}}

	CueGameOver = Cue{Name: "game-over", Notes: []Note{
		{Freq: 440, Duration: 200 * ms, Wave: WaveSine, Volume: 0.6},
		{At: 200 * ms, Freq: 370, Duration: 200 * ms, Wave: WaveSine, Volume: 0.6},
		{At: 400 * ms, Freq: 330, Duration: 200 * ms, Wave: WaveSine, Volume: 0.6},
		{At: 600 * ms, Freq: 294, Duration: 400 * ms, Wave: WaveSine, Volume: 0.7},
	}}

	CueVictory = Cue{Name: "victory", Notes: []Note{
		{Freq: 523, Duration: 200 * ms, Wave: WaveSine, Volume: 0.7},
		{At: 150 * ms, Freq: 659, Duration: 200 * ms, Wave: WaveSine, Volume: 0.7},
		{At: 300 * ms, Freq: 784, Duration: 200 * ms, Wave: WaveSine, Volume: 0.7},
		{At: 450 * ms, Freq: 1047, Duration: 200 * ms, Wave: WaveSine, Volume: 0.7},
		{At: 600 * ms, Freq: 1319, Duration: 200 * ms, Wave: WaveSine, Volume: 0.7},
		{At: time.Second, Freq: 1047, Duration: 500 * ms, Wave: WaveSine, Volume: 0.8},
		{At: time.Second, Freq: 1319, Duration: 500 * ms, Wave: WaveSine, Volume: 0.6},
		{At: time.Second, Freq: 1568, Duration: 500 * ms, Wave: WaveSine, Volume: 0.4},
	}}
)

// Player outputs a cue.
type Player interface {
	Play(c Cue)
}

// Cues maps run events to cues. It is attached to every run's bus.
type Cues struct {
	player Player
}

// NewCues returns a collaborator that plays through p.
func NewCues(p Player) *Cues {
	return &Cues{player: p}
}

// Attach subscribes to the notification topics on bus.
func (c *Cues) Attach(bus *event.Bus) {
	event.On(bus, func(event.PauseToggled) { c.player.Play(CueKey) })
	event.On(bus, func(ev event.DoorOpened) {
		if ev.PassUsed {
			c.player.Play(CuePass)
			return
		}
		c.player.Play(CueSuccess)
	})
	event.On(bus, func(event.DoorFailed) { c.player.Play(CueError) })
	event.On(bus, func(event.PowerUpCollected) { c.player.Play(CuePowerUp) })
	event.On(bus, func(event.FriendContacted) { c.player.Play(CueFriend) })
	event.On(bus, func(event.WandererContacted) { c.player.Play(CueError) })
	event.On(bus, func(event.GameOver) { c.player.Play(CueGameOver) })
	event.On(bus, func(event.GameWon) { c.player.Play(CueVictory) })
}
