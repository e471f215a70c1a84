package engine

import "time"

// WordID identifies a live word for its whole lifetime
// Issued from a per-session monotonic counter, zero means "no word"
type WordID uint64

// Word is a falling word owned by the session's live set
type Word struct {
	ID    WordID
	Text  string  // Immutable after spawn
	X     float64 // Fixed at spawn
	Y     float64 // Advanced only by the motion system
	Speed float64 // Logical units per animation tick, fixed at spawn

	// Progress is the count of matched leading characters, 0..len(Text)
	// Mutated only by the match system
	Progress int
}

// Matched returns the typed prefix of the word
func (w *Word) Matched() string {
	return w.Text[:w.clampedProgress()]
}

// Remaining returns the part of the word still to type
func (w *Word) Remaining() string {
	return w.Text[w.clampedProgress():]
}

// IsComplete reports whether every character has been matched
func (w *Word) IsComplete() bool {
	return w.Progress >= len(w.Text)
}

func (w *Word) clampedProgress() int {
	if w.Progress < 0 {
		return 0
	}
	if w.Progress > len(w.Text) {
		return len(w.Text)
	}
	return w.Progress
}

// Explosion is a transient visual event left by a completed word
// Advisory only, never read by game logic
type Explosion struct {
	X, Y float64
	Time time.Time
}
