package systems

import (
	"strings"

	"github.com/lixenwraith/cyber-invaders/engine"
)

// MatchSystem maps keystrokes to a single active word
// Idle: no target and an empty buffer
// Targeting: a target whose text starts with the buffer
type MatchSystem struct {
	ctx *engine.GameContext
}

// NewMatchSystem creates a new match system
func NewMatchSystem(ctx *engine.GameContext) *MatchSystem {
	return &MatchSystem{ctx: ctx}
}

// HandleKey applies one keystroke; keys outside the alphabet are dropped
// Returns the word completed by this keystroke, if any
func (s *MatchSystem) HandleKey(key engine.Key) *engine.Word {
	if s.ctx.State.GameOver {
		return nil
	}

	switch key.Kind {
	case engine.KeyChar:
		c, ok := key.Normalized()
		if !ok {
			return nil
		}
		return s.handleChar(c)
	case engine.KeyBackspace:
		s.handleBackspace()
	case engine.KeyEscape:
		s.Cancel()
	}
	return nil
}

// handleChar advances the active word or retargets on mismatch
func (s *MatchSystem) handleChar(c byte) *engine.Word {
	gs := s.ctx.State
	newInput := gs.CurrentInput + string(c)

	target := gs.ActiveWord()
	if target == nil || !strings.HasPrefix(target.Text, newInput) {
		// Mismatch: the abandoned word restarts from zero
		if target != nil {
			target.Progress = 0
		}

		target = s.findCandidate(newInput)
		if target == nil {
			gs.ClearTarget()
			s.ctx.Sound.PlayMiss()
			return nil
		}
		gs.ActiveWordID = target.ID
	}

	target.Progress = len(newInput)
	gs.CurrentInput = newInput

	if newInput == target.Text {
		s.complete(target)
		return target
	}
	return nil
}

// findCandidate selects the untouched word starting with prefix that is closest to the bottom
// Ties on y keep the earliest spawned word
func (s *MatchSystem) findCandidate(prefix string) *engine.Word {
	var best *engine.Word
	for _, w := range s.ctx.State.Words() {
		if w.Progress != 0 || !strings.HasPrefix(w.Text, prefix) {
			continue
		}
		if best == nil || w.Y > best.Y {
			best = w
		}
	}
	return best
}

// complete removes the word and awards score in the same step that matched it
func (s *MatchSystem) complete(w *engine.Word) {
	gs := s.ctx.State

	gs.RemoveWord(w.ID)
	gs.ClearTarget()

	points := engine.ScoreFor(w.Text)
	gs.Score += points
	gs.WordsCleared++
	gs.AddExplosion(w.X, w.Y, s.ctx.Now())

	s.ctx.Log.Debug().
		Str("word", w.Text).
		Int("points", points).
		Int("cleared", gs.WordsCleared).
		Int("needed", gs.WordsNeeded).
		Msg("word completed")
	s.ctx.Sound.PlayHit()
}

// handleBackspace trims the buffer; the target and its progress are kept
// Progress reconciles on the next keystroke
func (s *MatchSystem) handleBackspace() {
	gs := s.ctx.State
	if gs.CurrentInput == "" {
		return
	}
	gs.CurrentInput = gs.CurrentInput[:len(gs.CurrentInput)-1]
}

// Cancel abandons the target, resetting its progress so it can be targeted again
func (s *MatchSystem) Cancel() {
	gs := s.ctx.State
	if w := gs.ActiveWord(); w != nil {
		w.Progress = 0
	}
	gs.ClearTarget()
}
