package engine

// SoundPlayer is the audio sink for gameplay cues
// Implementations must not block the caller
type SoundPlayer interface {
	PlayHit()
	PlayMiss()
	PlayLevelUp()
	PlayGameOver()
}

// nopSound is used when audio is unavailable or muted
type nopSound struct{}

func (nopSound) PlayHit()      {}
func (nopSound) PlayMiss()     {}
func (nopSound) PlayLevelUp()  {}
func (nopSound) PlayGameOver() {}
