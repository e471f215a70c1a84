package engine

import (
	"math/rand"
	"time"

	"github.com/lixenwraith/cyber-invaders/content"
	"github.com/rs/zerolog"
)

// GameContext bundles the session state with the services systems depend on
type GameContext struct {
	// ===== Session =====
	State *GameState

	// ===== Services (immutable after init) =====
	Catalog      *content.Catalog
	TimeProvider TimeProvider
	Rand         *rand.Rand

	// ===== Ambient =====
	// BaseLog is the process logger, Log carries the current session fields
	BaseLog zerolog.Logger
	Log     zerolog.Logger
	Sound   SoundPlayer
}

// NewGameContext creates a context with a fresh session state
// A zero seed derives one from the clock
func NewGameContext(catalog *content.Catalog, timeProvider TimeProvider, seed int64, logger zerolog.Logger) *GameContext {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	if timeProvider == nil {
		timeProvider = NewMonotonicTimeProvider()
	}

	return &GameContext{
		State:        NewGameState(),
		Catalog:      catalog,
		TimeProvider: timeProvider,
		Rand:         rand.New(rand.NewSource(seed)),
		BaseLog:      logger,
		Log:          logger,
		Sound:        nopSound{},
	}
}

// SetSound installs an audio sink, nil restores silence
func (ctx *GameContext) SetSound(sound SoundPlayer) {
	if sound == nil {
		ctx.Sound = nopSound{}
		return
	}
	ctx.Sound = sound
}

// Now returns the context time
func (ctx *GameContext) Now() time.Time {
	return ctx.TimeProvider.Now()
}

// BeginSession resets state under a new session id and rebinds the session logger
func (ctx *GameContext) BeginSession(sessionID string) {
	ctx.State.Reset(sessionID)
	ctx.Log = ctx.BaseLog.With().Str("session_id", sessionID).Logger()
}
