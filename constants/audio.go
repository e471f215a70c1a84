package constants

import "time"

// Audio Output
const (
	AudioSampleRate = 44100

	// AudioBufferDuration is the speaker buffer length
	AudioBufferDuration = 100 * time.Millisecond

	// MasterVolume is the linear gain applied to every cue
	MasterVolume = 0.5
)

// Hit Sound (word completion)
const (
	HitSoundFrequency = 880.0
	HitSoundDuration  = 70 * time.Millisecond
	HitSoundAttack    = 5 * time.Millisecond
	HitSoundRelease   = 40 * time.Millisecond
)

// Miss Sound (dropped keystroke)
const (
	MissSoundFrequency = 110.0
	MissSoundDuration  = 80 * time.Millisecond
	MissSoundAttack    = 5 * time.Millisecond
	MissSoundRelease   = 20 * time.Millisecond
)

// Level Up Arpeggio
const (
	LevelUpNoteDuration = 90 * time.Millisecond
	LevelUpNoteAttack   = 5 * time.Millisecond
	LevelUpNoteRelease  = 40 * time.Millisecond
)

// LevelUpNotes are the arpeggio frequencies (C5 E5 G5 C6)
var LevelUpNotes = []float64{523.25, 659.25, 783.99, 1046.50}

// Game Over Sound (falling sweep)
const (
	GameOverSoundDuration = 700 * time.Millisecond
	GameOverSoundAttack   = 10 * time.Millisecond
	GameOverSoundRelease  = 300 * time.Millisecond
	GameOverStartFreq     = 440.0
	GameOverEndFreq       = 80.0
)
