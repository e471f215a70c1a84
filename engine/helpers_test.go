package engine

import (
	"github.com/lixenwraith/cyber-invaders/content"
	"github.com/rs/zerolog"
)

// newTestContext builds a deterministic context over the embedded catalog
func newTestContext() (*GameContext, *MockTimeProvider) {
	clock := NewMockTimeProvider()
	ctx := NewGameContext(content.DefaultCatalog(), clock, 1, zerolog.Nop())
	ctx.BeginSession("test-session")
	return ctx, clock
}
