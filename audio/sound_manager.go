package audio

import (
	"fmt"
	"sync"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
	"github.com/lixenwraith/cyber-invaders/constants"
)

const (
	sampleRate = beep.SampleRate(constants.AudioSampleRate)
)

// SoundManager plays gameplay cues through a shared mixer
// Satisfies engine.SoundPlayer; every Play call returns immediately
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	volume      float64
	initialized bool

	// play hands a streamer to the output; replaced in tests
	play func(beep.Streamer)
}

// NewSoundManager creates a new sound manager
func NewSoundManager() *SoundManager {
	sm := &SoundManager{
		mixer:  &beep.Mixer{},
		volume: constants.MasterVolume,
	}
	sm.play = sm.playSpeaker
	return sm
}

// Initialize sets up the audio system
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	// Initialize speaker with sample rate and buffer size
	if err := speaker.Init(sampleRate, sampleRate.N(constants.AudioBufferDuration)); err != nil {
		return fmt.Errorf("speaker init: %w", err)
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Cleanup stops all sounds
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()

	// Speaker stays open; cues after Cleanup are dropped
	sm.initialized = false
}

// PlayHit plays the word completion blip
func (sm *SoundManager) PlayHit() {
	sm.enqueue(CreateHitSound(sampleRate, sm.volume))
}

// PlayMiss plays the dropped keystroke buzz
func (sm *SoundManager) PlayMiss() {
	sm.enqueue(CreateMissSound(sampleRate, sm.volume))
}

// PlayLevelUp plays the level complete arpeggio
func (sm *SoundManager) PlayLevelUp() {
	sm.enqueue(CreateLevelUpSound(sampleRate, sm.volume))
}

// PlayGameOver plays the falling sweep
func (sm *SoundManager) PlayGameOver() {
	sm.enqueue(CreateGameOverSound(sampleRate, sm.volume))
}

func (sm *SoundManager) enqueue(s beep.Streamer) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	sm.play(s)
}

// playSpeaker adds s to the mixer; the speaker lock guards the mixer while it streams
func (sm *SoundManager) playSpeaker(s beep.Streamer) {
	speaker.Lock()
	sm.mixer.Add(s)
	speaker.Unlock()
}
