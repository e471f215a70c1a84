package systems

import (
	"math"

	"github.com/lixenwraith/cyber-invaders/constants"
	"github.com/lixenwraith/cyber-invaders/engine"
)

// SpawnSystem introduces new falling words
// Spawning is advisory: when a gate fails the attempt is skipped silently
type SpawnSystem struct {
	ctx *engine.GameContext
}

// NewSpawnSystem creates a new spawn system
func NewSpawnSystem(ctx *engine.GameContext) *SpawnSystem {
	return &SpawnSystem{ctx: ctx}
}

// CanSpawn reports whether both the concurrency cap and the level quota allow a spawn
func (s *SpawnSystem) CanSpawn() bool {
	gs := s.ctx.State
	if gs.GameOver {
		return false
	}
	// Concurrency cap
	if gs.WordCount() >= engine.MaxWords(gs.Level) {
		return false
	}
	// Per-level quota
	if gs.WordsSpawned >= gs.WordsNeeded {
		return false
	}
	return true
}

// Update performs one spawn attempt on the spawn timer and reports whether a word was added
func (s *SpawnSystem) Update() bool {
	if !s.CanSpawn() {
		return false
	}
	x := constants.SpawnMinX + s.ctx.Rand.Float64()*constants.SpawnRangeX
	w := s.spawnAt(x, 0)
	s.ctx.Log.Debug().Uint64("word_id", uint64(w.ID)).Str("text", w.Text).Int("spawned", s.ctx.State.WordsSpawned).Msg("word spawned")
	return true
}

// SpawnInitialBatch places the opening wave with bounded pairwise horizontal separation
// Each word retries placement up to InitialPlacementAttempts times, then accepts a crowded spot
// Words start above the field at staggered negative offsets so they fall into place
func (s *SpawnSystem) SpawnInitialBatch() int {
	gs := s.ctx.State
	count := engine.MaxWords(gs.Level)
	placed := make([]float64, 0, count)

	spawned := 0
	for i := 0; i < count; i++ {
		if !s.CanSpawn() {
			break
		}

		x := s.pickSeparatedX(placed)
		placed = append(placed, x)

		y := -float64(i)*constants.InitialRowOffset - s.ctx.Rand.Float64()*constants.InitialOffsetJitter
		s.spawnAt(x, y)
		spawned++
	}

	s.ctx.Log.Debug().Int("count", spawned).Msg("initial batch spawned")
	return spawned
}

// pickSeparatedX draws candidate positions until one keeps the minimum separation
func (s *SpawnSystem) pickSeparatedX(placed []float64) float64 {
	var x float64
	for attempt := 0; attempt < constants.InitialPlacementAttempts; attempt++ {
		x = constants.SpawnMinX + s.ctx.Rand.Float64()*constants.SpawnRangeX
		if isSeparated(x, placed) {
			return x
		}
	}
	// Budget exhausted, accept the last candidate even if crowded
	return x
}

func isSeparated(x float64, placed []float64) bool {
	for _, p := range placed {
		if math.Abs(x-p) < constants.InitialMinSeparation {
			return false
		}
	}
	return true
}

// spawnAt appends one word drawn from the current level's tier
func (s *SpawnSystem) spawnAt(x, y float64) *engine.Word {
	gs := s.ctx.State
	text := s.ctx.Catalog.Pick(gs.Level, s.ctx.Rand)
	speed := engine.WordSpeed(gs.Level, s.ctx.Rand.Float64())

	w := gs.AddWord(text, x, y, speed)
	gs.WordsSpawned++
	return w
}
