package systems

import (
	"github.com/lixenwraith/cyber-invaders/constants"
	"github.com/lixenwraith/cyber-invaders/engine"
)

// MotionSystem advances falling words and detects the loss condition
type MotionSystem struct {
	ctx *engine.GameContext
}

// NewMotionSystem creates a new motion system
func NewMotionSystem(ctx *engine.GameContext) *MotionSystem {
	return &MotionSystem{ctx: ctx}
}

// Update advances every live word by its speed
// A word passing FieldBottom ends the game and clears the whole wave
// Returns true if this tick ended the game
func (s *MotionSystem) Update() bool {
	gs := s.ctx.State
	if gs.GameOver {
		return false
	}

	var breached *engine.Word
	for _, w := range gs.Words() {
		w.Y += w.Speed
		if w.Y > constants.FieldBottom && breached == nil {
			breached = w
		}
	}

	if breached == nil {
		return false
	}

	gs.GameOver = true
	gs.ClearWords()

	s.ctx.Log.Info().
		Str("word", breached.Text).
		Int("score", gs.Score).
		Int("level", gs.Level).
		Msg("field breached, game over")
	s.ctx.Sound.PlayGameOver()
	return true
}
