package systems

import (
	"github.com/lixenwraith/cyber-invaders/constants"
	"github.com/lixenwraith/cyber-invaders/engine"
)

// HousekeepingSystem expires transient visual events
type HousekeepingSystem struct {
	ctx *engine.GameContext
}

// NewHousekeepingSystem creates a new housekeeping system
func NewHousekeepingSystem(ctx *engine.GameContext) *HousekeepingSystem {
	return &HousekeepingSystem{ctx: ctx}
}

// Update prunes expired explosions and hides an expired level-up banner
func (s *HousekeepingSystem) Update() {
	gs := s.ctx.State
	now := s.ctx.Now()

	gs.PruneExplosions(now, constants.ExplosionTTL)

	if gs.LevelUp && !now.Before(gs.LevelUpUntil) {
		gs.LevelUp = false
	}
}
