package systems

import (
	"github.com/lixenwraith/cyber-invaders/content"
	"github.com/lixenwraith/cyber-invaders/engine"
	"github.com/rs/zerolog"
)

// recordingSound counts gameplay cues
type recordingSound struct {
	hits, misses, levelUps, gameOvers int
}

func (r *recordingSound) PlayHit()      { r.hits++ }
func (r *recordingSound) PlayMiss()     { r.misses++ }
func (r *recordingSound) PlayLevelUp()  { r.levelUps++ }
func (r *recordingSound) PlayGameOver() { r.gameOvers++ }

// newTestContext builds a seeded context with an empty field
func newTestContext() (*engine.GameContext, *engine.MockTimeProvider, *recordingSound) {
	clock := engine.NewMockTimeProvider()
	ctx := engine.NewGameContext(content.DefaultCatalog(), clock, 42, zerolog.Nop())
	ctx.BeginSession("test-session")

	sound := &recordingSound{}
	ctx.SetSound(sound)
	return ctx, clock, sound
}

// typeString feeds every rune of s as a character keystroke
func typeString(s *MatchSystem, text string) *engine.Word {
	var completed *engine.Word
	for _, r := range text {
		if w := s.HandleKey(engine.CharKey(r)); w != nil {
			completed = w
		}
	}
	return completed
}

// checkTargetInvariant verifies the active word, when set, is live and starts with the buffer
func checkTargetInvariant(ctx *engine.GameContext) (ok bool, reason string) {
	gs := ctx.State
	if gs.ActiveWordID == 0 {
		return true, ""
	}
	w := gs.ActiveWord()
	if w == nil {
		return false, "active id does not resolve to a live word"
	}
	if len(gs.CurrentInput) > len(w.Text) || w.Text[:len(gs.CurrentInput)] != gs.CurrentInput {
		return false, "buffer is not a prefix of the active word"
	}
	return true, ""
}
