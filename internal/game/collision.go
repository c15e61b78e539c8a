package game

import (
	"github.com/vovakirdan/tenure-rush/internal/core"
	"github.com/vovakirdan/tenure-rush/internal/event"
	"github.com/vovakirdan/tenure-rush/internal/powerup"
)

// resolveCollisions checks the player against doors, tokens, friends and
// wanderers, in that order.
func (s *Scene) resolveCollisions() {
	pb := s.player.Box

	for _, d := range s.doors {
		if d.Resolved() || d.Hit || !core.Overlap(pb, d.Box) {
			continue
		}
		s.hitDoor(d)
	}

	// At most one pickup per step
	for i := len(s.tokens) - 1; i >= 0; i-- {
		t := s.tokens[i]
		if !core.Overlap(pb, t.Box) {
			continue
		}
		s.tokens = append(s.tokens[:i], s.tokens[i+1:]...)
		s.collect(t.Kind)
		break
	}

	for _, f := range s.friends {
		if f.Contacted || !core.Overlap(pb, f.Box) {
			continue
		}
		s.contactFriend(f)
	}

	for i := len(s.wanderers) - 1; i >= 0; i-- {
		w := s.wanderers[i]
		if !core.Overlap(pb, w.Box) {
			continue
		}
		s.contactWanderer(w)
		break
	}
}

// hitDoor resolves the single collision a closed door may register.
func (s *Scene) hitDoor(d *Door) {
	d.Hit = true
	if s.player.Passes > 0 {
		s.player.Passes--
		s.passesUsed++
		d.resolve(DoorOpenViaPass)
		s.openDoor(d, true)
		return
	}
	s.damage()
	s.addPlayerCallout(pick(s.rng, failureLines), ToneFailure)
	s.bus.Publish(event.DoorFailed{DoorID: d.ID, Cause: event.CauseCollision})
}

// collect applies a picked-up token. A consumable without a tool token to
// spend is dropped with no effect.
func (s *Scene) collect(k powerup.Kind) {
	switch k.Category() {
	case powerup.CategoryTimed:
		s.effects.Activate(k, s.duration(k))
	case powerup.CategoryTool:
		s.player.Tools += s.cfg.PowerUps.ToolGrant
	case powerup.CategoryConsumable:
		if !s.player.UseTool() {
			return
		}
		s.player.Heal(s.cfg.PowerUps.HealAmount)
		s.bus.Publish(event.PlayerHealed{HP: s.player.HP})
	}
	s.addPlayerCallout(pickupLine(k), TonePickup)
	s.bus.Publish(event.PowerUpCollected{Kind: k})
}

func (s *Scene) duration(k powerup.Kind) int {
	switch k {
	case powerup.Coffee:
		return s.cfg.PowerUps.CoffeeTicks
	case powerup.Glasses:
		return s.cfg.PowerUps.GlassesTicks
	case powerup.Cheese:
		return s.cfg.PowerUps.CheeseTicks
	default:
		return 0
	}
}

func (s *Scene) contactFriend(f *Friend) {
	f.Contacted = true
	s.collected++
	s.player.Passes += s.cfg.Friends.PassGrant

	s.addHeart(s.player.Box.CenterX(), s.player.Box.Y-10)
	s.addHeart(f.Box.CenterX(), f.Box.Y-10)
	s.callouts = append(s.callouts, Callout{
		X:    f.Box.CenterX(),
		Y:    f.Box.Y,
		Text: pick(s.rng, friendLines),
		Tone: ToneFriend,
		Life: s.cfg.Effects.CalloutTicks,
	})
	s.bus.Publish(event.FriendContacted{FriendID: f.ID, Hearts: s.collected})
}

// contactWanderer strips the player unless immune. The wanderer stays.
func (s *Scene) contactWanderer(w *Wanderer) {
	if s.player.Immune() {
		return
	}
	s.effects.Clear()
	s.setBoost(false)
	s.player.Strip()
	s.damage()
	s.addPlayerCallout(pick(s.rng, wandererLines), ToneWanderer)
	s.bus.Publish(event.WandererContacted{WandererID: w.ID})
}
