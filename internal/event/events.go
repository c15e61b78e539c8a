package event

import (
	"time"

	"github.com/vovakirdan/tenure-rush/internal/core"
	"github.com/vovakirdan/tenure-rush/internal/powerup"
)

// Input topics, published by the input collaborator.
const (
	TopicDirectionPress   Topic = "input.direction.press"
	TopicDirectionRelease Topic = "input.direction.release"
	TopicSequenceKey      Topic = "input.sequence"
	TopicPause            Topic = "game.pause"
	TopicRestart          Topic = "game.restart"
	TopicDevToggle        Topic = "input.dev.toggle"
)

// Notification topics, published by the simulation.
const (
	TopicPlayerDamaged     Topic = "player.damaged"
	TopicPlayerHealed      Topic = "player.healed"
	TopicDoorSelected      Topic = "door.sequence.start"
	TopicDoorOpened        Topic = "door.opened"
	TopicDoorFailed        Topic = "door.failed"
	TopicPowerUpCollected  Topic = "powerup.collected"
	TopicPowerUpExpired    Topic = "powerup.expired"
	TopicFriendContacted   Topic = "friend.contacted"
	TopicWandererContacted Topic = "wanderer.contact"
	TopicLevelChanged      Topic = "level.changed"
	TopicGameOver          Topic = "game.over"
	TopicGameWon           Topic = "game.win"
	TopicRunRecorded       Topic = "run.recorded"
)

// DirectionPressed starts holding a movement direction.
type DirectionPressed struct{ Dir core.Direction }

// DirectionReleased stops holding a movement direction.
type DirectionReleased struct{ Dir core.Direction }

// SequenceKey is one door-sequence symbol typed by the player.
type SequenceKey struct{ Symbol core.Symbol }

// PauseToggled asks the run to pause or resume.
type PauseToggled struct{}

// RestartRequested asks for a fresh run.
type RestartRequested struct{}

// DevModeToggled flips the developer tenure multiplier.
type DevModeToggled struct{}

func (DirectionPressed) Topic() Topic  { return TopicDirectionPress }
func (DirectionReleased) Topic() Topic { return TopicDirectionRelease }
func (SequenceKey) Topic() Topic       { return TopicSequenceKey }
func (PauseToggled) Topic() Topic      { return TopicPause }
func (RestartRequested) Topic() Topic  { return TopicRestart }
func (DevModeToggled) Topic() Topic    { return TopicDevToggle }

// PlayerDamaged reports an applied damage unit and the resulting hit points.
type PlayerDamaged struct{ HP int }

// PlayerHealed reports a heal and the resulting hit points.
type PlayerHealed struct{ HP int }

func (PlayerDamaged) Topic() Topic { return TopicPlayerDamaged }
func (PlayerHealed) Topic() Topic  { return TopicPlayerHealed }

// DoorSelected is published when a door enters its interaction window and
// starts accepting sequence input.
type DoorSelected struct {
	DoorID   int
	Sequence []core.Symbol
}

// DoorOpened is published when a door resolves open, by sequence or pass.
type DoorOpened struct {
	DoorID   int
	PassUsed bool
	Gain     int
	Tenure   int
}

// FailCause tells why a door failure notification was emitted.
type FailCause int

const (
	CauseWrongKey FailCause = iota
	CauseCollision
)

func (c FailCause) String() string {
	if c == CauseWrongKey {
		return "wrong-key"
	}
	return "collision"
}

// DoorFailed is published when the player breaks a door with a wrong key or
// walks into a closed door without a pass.
type DoorFailed struct {
	DoorID int
	Cause  FailCause
}

func (DoorSelected) Topic() Topic { return TopicDoorSelected }
func (DoorOpened) Topic() Topic   { return TopicDoorOpened }
func (DoorFailed) Topic() Topic   { return TopicDoorFailed }

// PowerUpCollected is published for every resolved pickup.
type PowerUpCollected struct{ Kind powerup.Kind }

// PowerUpExpired is published when a timed effect runs out.
type PowerUpExpired struct{ Kind powerup.Kind }

func (PowerUpCollected) Topic() Topic { return TopicPowerUpCollected }
func (PowerUpExpired) Topic() Topic   { return TopicPowerUpExpired }

// FriendContacted is published on the first contact with a friend.
type FriendContacted struct {
	FriendID int
	Hearts   int
}

// WandererContacted is published when a wanderer strips the player.
type WandererContacted struct{ WandererID int }

func (FriendContacted) Topic() Topic   { return TopicFriendContacted }
func (WandererContacted) Topic() Topic { return TopicWandererContacted }

// LevelChanged is published when the derived level increases.
type LevelChanged struct{ Level int }

// Outcome summarizes a finished run.
type Outcome struct {
	Tenure  int
	Hearts  int
	Level   int
	Elapsed time.Duration
}

// GameOver is published once when hit points reach zero.
type GameOver struct{ Outcome }

// GameWon is published once when tenure reaches the win threshold.
type GameWon struct{ Outcome }

// RunRecorded reports the persistence result for a won run.
type RunRecorded struct {
	Elapsed   time.Duration
	Best      time.Duration // zero when no best is stored
	NewRecord bool
}

func (LevelChanged) Topic() Topic { return TopicLevelChanged }
func (GameOver) Topic() Topic     { return TopicGameOver }
func (GameWon) Topic() Topic      { return TopicGameWon }
func (RunRecorded) Topic() Topic  { return TopicRunRecorded }
