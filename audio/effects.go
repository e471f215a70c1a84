package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/lixenwraith/cyber-invaders/constants"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// oscillator generates raw audio waves, optionally sweeping frequency linearly
type oscillator struct {
	freq     float64
	endFreq  float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
}

// NewOscillator creates a new fixed-frequency oscillator
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return NewSweep(freq, freq, duration, wave, rate)
}

// NewSweep creates an oscillator gliding from startFreq to endFreq over duration
func NewSweep(startFreq, endFreq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     startFreq,
		endFreq:  endFreq,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			if o.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		case WaveSaw:
			val = 2.0 * (o.phase - 0.5)
		case WaveNoise:
			val = rand.Float64()*2 - 1
		}

		samples[i][0] = val
		samples[i][1] = val

		// Advance phase at the instantaneous frequency
		t := float64(o.position) / float64(o.duration)
		freq := o.freq + (o.endFreq-o.freq)*t
		o.phase += freq / float64(o.rate)
		o.phase = o.phase - math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies attack/release shaping to a stream
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	sustainSamples int
	totalSamples   int
}

// NewEnvelope creates an attack/release envelope truncating the stream at duration
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	total := rate.N(duration)
	att := rate.N(attack)
	rel := rate.N(release)
	sus := total - att - rel
	if sus < 0 {
		sus = 0
	}

	return &envelope{
		streamer:       s,
		attackSamples:  att,
		releaseSamples: rel,
		sustainSamples: sus,
		totalSamples:   total,
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	if e.position >= e.totalSamples {
		return 0, false
	}
	if remaining := e.totalSamples - e.position; len(samples) > remaining {
		samples = samples[:remaining]
	}

	n, ok = e.streamer.Stream(samples)

	for i := 0; i < n; i++ {
		vol := 1.0

		if e.position < e.attackSamples && e.attackSamples > 0 {
			vol = float64(e.position) / float64(e.attackSamples)
		}
		releaseStart := e.attackSamples + e.sustainSamples
		if e.position >= releaseStart && e.releaseSamples > 0 {
			vol = float64(e.totalSamples-e.position) / float64(e.releaseSamples)
			if vol < 0 {
				vol = 0
			}
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}

	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume wraps s with a linear gain
// math.Log2(0) is -Inf, so 0 volume is made silent
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// Sound effect generators

// CreateHitSound generates a bright blip for a completed word
func CreateHitSound(rate beep.SampleRate, volume float64) beep.Streamer {
	tone, err := generators.SineTone(rate, constants.HitSoundFrequency)
	if err != nil {
		tone = NewOscillator(constants.HitSoundFrequency, constants.HitSoundDuration, WaveSine, rate)
	}
	shaped := NewEnvelope(tone, constants.HitSoundDuration, constants.HitSoundAttack, constants.HitSoundRelease, rate)
	return newVolume(shaped, volume)
}

// CreateMissSound generates a short low buzz for a dropped keystroke
func CreateMissSound(rate beep.SampleRate, volume float64) beep.Streamer {
	osc := NewOscillator(constants.MissSoundFrequency, constants.MissSoundDuration, WaveSaw, rate)
	shaped := NewEnvelope(osc, constants.MissSoundDuration, constants.MissSoundAttack, constants.MissSoundRelease, rate)
	return newVolume(shaped, volume*0.5)
}

// CreateLevelUpSound generates a rising arpeggio
func CreateLevelUpSound(rate beep.SampleRate, volume float64) beep.Streamer {
	notes := make([]beep.Streamer, 0, len(constants.LevelUpNotes))
	for _, freq := range constants.LevelUpNotes {
		osc := NewOscillator(freq, constants.LevelUpNoteDuration, WaveSquare, rate)
		notes = append(notes, NewEnvelope(osc, constants.LevelUpNoteDuration, constants.LevelUpNoteAttack, constants.LevelUpNoteRelease, rate))
	}
	return newVolume(beep.Seq(notes...), volume*0.4)
}

// CreateGameOverSound generates a falling sweep
func CreateGameOverSound(rate beep.SampleRate, volume float64) beep.Streamer {
	sweep := NewSweep(constants.GameOverStartFreq, constants.GameOverEndFreq, constants.GameOverSoundDuration, WaveSaw, rate)
	shaped := NewEnvelope(sweep, constants.GameOverSoundDuration, constants.GameOverSoundAttack, constants.GameOverSoundRelease, rate)
	return newVolume(shaped, volume*0.6)
}
