package systems

import (
	"github.com/lixenwraith/cyber-invaders/constants"
	"github.com/lixenwraith/cyber-invaders/engine"
)

// ProgressionSystem drives level transitions
// A level completes once the quota is cleared and the field is empty
type ProgressionSystem struct {
	ctx *engine.GameContext
}

// NewProgressionSystem creates a new progression system
func NewProgressionSystem(ctx *engine.GameContext) *ProgressionSystem {
	return &ProgressionSystem{ctx: ctx}
}

// ShouldLevelUp reports whether the level-up condition holds
func (s *ProgressionSystem) ShouldLevelUp() bool {
	gs := s.ctx.State
	return !gs.GameOver && gs.WordsCleared >= gs.WordsNeeded && gs.WordCount() == 0
}

// Update checks the level-up condition and applies it; returns true on level-up
func (s *ProgressionSystem) Update() bool {
	if !s.ShouldLevelUp() {
		return false
	}

	gs := s.ctx.State
	now := s.ctx.Now()

	gs.ClearWords()
	gs.CompletedLevel = gs.Level
	gs.Level++
	gs.WordsCleared = 0
	gs.WordsSpawned = 0
	gs.WordsNeeded = engine.NextWordsNeeded(gs.WordsNeeded)
	gs.LevelUp = true
	gs.LevelUpUntil = now.Add(constants.LevelUpDisplayDuration)

	s.ctx.Log.Info().
		Int("level", gs.Level).
		Int("words_needed", gs.WordsNeeded).
		Int("score", gs.Score).
		Str("theme", s.ctx.Catalog.Theme(gs.Level)).
		Msg("level up")
	s.ctx.Sound.PlayLevelUp()
	return true
}
