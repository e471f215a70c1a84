package engine

import (
	"time"

	"github.com/lixenwraith/cyber-invaders/constants"
)

// GameState is the single session aggregate mutated by the systems
// All access happens on the main loop goroutine, handlers run to completion
// so no locking is required
type GameState struct {
	// ===== SESSION IDENTITY =====
	SessionID string

	// ===== LIVE WORDS =====
	// Ordered by insertion; ids are unique within the session
	words  []*Word
	nextID WordID

	// ===== SCORING & PROGRESSION =====
	Score        int // Non-decreasing until reset
	Level        int // Non-decreasing until reset
	WordsCleared int // Per level
	WordsNeeded  int // Per level quota
	WordsSpawned int // Per level

	// ===== MATCH STATE =====
	// ActiveWordID is a weak reference, cleared whenever the word leaves the live set
	ActiveWordID WordID
	CurrentInput string

	// ===== TERMINAL FLAG =====
	GameOver bool

	// ===== TRANSIENT NOTIFICATIONS =====
	LevelUp        bool
	LevelUpUntil   time.Time
	CompletedLevel int
	Explosions     []Explosion
}

// NewGameState creates a session state at its initial values
func NewGameState() *GameState {
	gs := &GameState{}
	gs.Reset("")
	return gs
}

// Reset returns every field to its initial value; no word survives
func (gs *GameState) Reset(sessionID string) {
	*gs = GameState{
		SessionID:   sessionID,
		words:       make([]*Word, 0, constants.BaseMaxWords*2),
		nextID:      1,
		Level:       constants.StartLevel,
		WordsNeeded: constants.InitialWordsNeeded,
	}
}

// ===== LIVE WORD SET =====

// Words returns the live words in insertion order
// The slice is a copy; the words are shared and must only be mutated by systems
func (gs *GameState) Words() []*Word {
	out := make([]*Word, len(gs.words))
	copy(out, gs.words)
	return out
}

// WordCount returns the number of live words
func (gs *GameState) WordCount() int {
	return len(gs.words)
}

// AddWord appends a new word with the next session id
func (gs *GameState) AddWord(text string, x, y, speed float64) *Word {
	w := &Word{
		ID:    gs.nextID,
		Text:  text,
		X:     x,
		Y:     y,
		Speed: speed,
	}
	gs.nextID++
	gs.words = append(gs.words, w)
	return w
}

// FindWord returns the live word with id or nil
func (gs *GameState) FindWord(id WordID) *Word {
	if id == 0 {
		return nil
	}
	for _, w := range gs.words {
		if w.ID == id {
			return w
		}
	}
	return nil
}

// RemoveWord drops a word from the live set
// Removing the active word also clears the target and input buffer
func (gs *GameState) RemoveWord(id WordID) bool {
	for i, w := range gs.words {
		if w.ID != id {
			continue
		}
		gs.words = append(gs.words[:i], gs.words[i+1:]...)
		if gs.ActiveWordID == id {
			gs.ClearTarget()
		}
		return true
	}
	return false
}

// ClearWords empties the live set along with the target
func (gs *GameState) ClearWords() {
	gs.words = gs.words[:0]
	gs.ClearTarget()
}

// ===== MATCH STATE =====

// ActiveWord resolves the weak active reference
func (gs *GameState) ActiveWord() *Word {
	return gs.FindWord(gs.ActiveWordID)
}

// ClearTarget returns the match state to idle without touching word progress
func (gs *GameState) ClearTarget() {
	gs.ActiveWordID = 0
	gs.CurrentInput = ""
}

// ===== TRANSIENT EVENTS =====

// AddExplosion records a visual event at a position
func (gs *GameState) AddExplosion(x, y float64, now time.Time) {
	gs.Explosions = append(gs.Explosions, Explosion{X: x, Y: y, Time: now})
}

// PruneExplosions drops explosions older than ttl and returns how many were removed
func (gs *GameState) PruneExplosions(now time.Time, ttl time.Duration) int {
	kept := gs.Explosions[:0]
	for _, e := range gs.Explosions {
		if now.Sub(e.Time) < ttl {
			kept = append(kept, e)
		}
	}
	removed := len(gs.Explosions) - len(kept)
	gs.Explosions = kept
	return removed
}

// IsLevelUpShowing reports whether the level complete banner is visible at now
func (gs *GameState) IsLevelUpShowing(now time.Time) bool {
	return gs.LevelUp && now.Before(gs.LevelUpUntil)
}
