// Package game wires the systems into one reducer per event type
// Every method runs to completion against the single session state; callers
// must invoke them from one goroutine
package game

import (
	"github.com/google/uuid"
	"github.com/lixenwraith/cyber-invaders/engine"
	"github.com/lixenwraith/cyber-invaders/systems"
)

// Game is the session orchestrator consumed by the clock scheduler and input handler
type Game struct {
	ctx *engine.GameContext

	spawn        *systems.SpawnSystem
	motion       *systems.MotionSystem
	match        *systems.MatchSystem
	progression  *systems.ProgressionSystem
	housekeeping *systems.HousekeepingSystem

	newSessionID func() string
}

// New creates a game and starts its first session
func New(ctx *engine.GameContext) *Game {
	g := &Game{
		ctx:          ctx,
		spawn:        systems.NewSpawnSystem(ctx),
		motion:       systems.NewMotionSystem(ctx),
		match:        systems.NewMatchSystem(ctx),
		progression:  systems.NewProgressionSystem(ctx),
		housekeeping: systems.NewHousekeepingSystem(ctx),
		newSessionID: uuid.NewString,
	}
	g.Restart()
	return g
}

// Context returns the game context
func (g *Game) Context() *engine.GameContext {
	return g.ctx
}

// Restart discards the session and begins a new one with a fresh initial batch
func (g *Game) Restart() {
	prev := g.ctx.State.SessionID
	g.ctx.BeginSession(g.newSessionID())
	g.spawn.SpawnInitialBatch()

	ev := g.ctx.Log.Info()
	if prev != "" {
		ev = ev.Str("previous_session_id", prev)
	}
	ev.Msg("session started")
}

// OnTick advances motion then checks progression
func (g *Game) OnTick() {
	if g.ctx.State.GameOver {
		return
	}
	if g.motion.Update() {
		return
	}
	g.progression.Update()
}

// OnSpawnTimer performs one spawn attempt
func (g *Game) OnSpawnTimer() {
	if g.ctx.State.GameOver {
		return
	}
	g.spawn.Update()
}

// OnKeystroke feeds the match engine; on game over only Enter is honored and restarts
func (g *Game) OnKeystroke(key engine.Key) {
	if g.ctx.State.GameOver {
		if key.Kind == engine.KeyEnter {
			g.Restart()
		}
		return
	}

	g.match.HandleKey(key)
	g.progression.Update()
}

// OnHousekeeping expires transient visual events
func (g *Game) OnHousekeeping() {
	g.housekeeping.Update()
}

// Level returns the current level
func (g *Game) Level() int {
	return g.ctx.State.Level
}

// IsGameOver reports the terminal flag
func (g *Game) IsGameOver() bool {
	return g.ctx.State.GameOver
}

// Snapshot returns the read-only projection for presentation
func (g *Game) Snapshot() engine.Snapshot {
	return g.ctx.Snapshot()
}
