package engine

import (
	"time"

	"github.com/lixenwraith/cyber-invaders/constants"
)

// WordView is the read-only projection of a live word
type WordView struct {
	ID        WordID
	Text      string
	X, Y      float64
	Progress  int
	Matched   string
	Remaining string
	Active    bool
}

// ExplosionView is a live explosion with its age
type ExplosionView struct {
	X, Y float64
	Age  time.Duration
}

// Snapshot is everything the presentation layer may read
type Snapshot struct {
	SessionID      string
	Words          []WordView
	ActiveWordID   WordID
	Input          string
	Score          int
	Level          int
	Theme          string
	WordsCleared   int
	WordsNeeded    int
	GameOver       bool
	LevelUp        bool
	CompletedLevel int
	Explosions     []ExplosionView
}

// Snapshot projects the session state at the context time
// Explosions past their TTL are excluded even if housekeeping has not run yet
func (ctx *GameContext) Snapshot() Snapshot {
	gs := ctx.State
	now := ctx.Now()

	snap := Snapshot{
		SessionID:      gs.SessionID,
		Words:          make([]WordView, 0, len(gs.words)),
		ActiveWordID:   gs.ActiveWordID,
		Input:          gs.CurrentInput,
		Score:          gs.Score,
		Level:          gs.Level,
		Theme:          ctx.Catalog.Theme(gs.Level),
		WordsCleared:   gs.WordsCleared,
		WordsNeeded:    gs.WordsNeeded,
		GameOver:       gs.GameOver,
		LevelUp:        gs.IsLevelUpShowing(now),
		CompletedLevel: gs.CompletedLevel,
	}

	for _, w := range gs.words {
		snap.Words = append(snap.Words, WordView{
			ID:        w.ID,
			Text:      w.Text,
			X:         w.X,
			Y:         w.Y,
			Progress:  w.Progress,
			Matched:   w.Matched(),
			Remaining: w.Remaining(),
			Active:    w.ID == gs.ActiveWordID,
		})
	}

	for _, e := range gs.Explosions {
		age := now.Sub(e.Time)
		if age < 0 || age >= constants.ExplosionTTL {
			continue
		}
		snap.Explosions = append(snap.Explosions, ExplosionView{X: e.X, Y: e.Y, Age: age})
	}

	return snap
}
