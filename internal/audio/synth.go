package audio

import (
	"math"
	"math/rand/v2"
	"sync/atomic"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// noiseSeq advances per oscillator so repeated noise cues do not replay the
// same samples.
var noiseSeq atomic.Uint64

// oscillator generates a raw wave, optionally gliding from freq to endFreq
type oscillator struct {
	freq     float64
	endFreq  float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
	noise    *rand.Rand
}

// NewOscillator creates a fixed-pitch oscillator
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return NewSweep(freq, freq, duration, wave, rate)
}

// NewSweep creates an oscillator whose pitch glides linearly from freq to endFreq
func NewSweep(freq, endFreq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     freq,
		endFreq:  endFreq,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
		noise:    rand.New(rand.NewPCG(uint64(freq), noiseSeq.Add(1))), //#nosec G115 -- seed only
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
			val = o.noise.Float64()*2 - 1
		}

		samples[i][0] = val
		samples[i][1] = val

		progress := float64(o.position) / float64(o.duration)
		freq := o.freq + (o.endFreq-o.freq)*progress
		o.phase += freq / float64(o.rate)
		o.phase -= math.Floor(o.phase) // Keep in [0, 1)
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

// NewEnvelope creates an attack/sustain/release envelope
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	total := rate.N(duration)
	att := rate.N(attack)
	rel := rate.N(release)
	sus := max(0, total-att-rel)

	return &envelope{
		streamer:       s,
		attackSamples:  att,
		releaseSamples: rel,
		sustainSamples: sus,
		totalSamples:   total,
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	for i := 0; i < n; i++ {
		if e.position >= e.totalSamples {
			return i, i > 0
		}

		vol := 1.0
		if e.position < e.attackSamples && e.attackSamples > 0 {
			vol = float64(e.position) / float64(e.attackSamples)
		}
		releaseStart := e.attackSamples + e.sustainSamples
		if e.position >= releaseStart && e.releaseSamples > 0 {
			vol = max(0, float64(e.totalSamples-e.position)/float64(e.releaseSamples))
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}

	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume scales a stream linearly; zero or less is silent.
// math.Log2(0) is -Inf, so silence is flagged explicitly.
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// tone is a shaped oscillator note.
func tone(freq float64, d time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	attack := min(5*time.Millisecond, d/4)
	release := d / 2
	return NewEnvelope(NewOscillator(freq, d, wave, rate), d, attack, release, rate)
}

// arpeggio plays notes one after another.
func arpeggio(freqs []float64, each time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	notes := make([]beep.Streamer, len(freqs))
	for i, f := range freqs {
		notes[i] = tone(f, each, wave, rate)
	}
	return beep.Seq(notes...)
}

// Cue generators. Each returns a fresh, finite streamer at full scale;
// the player applies cue and master volume.

// shootSound is a short descending zap.
func shootSound(rate beep.SampleRate) beep.Streamer {
	d := 70 * time.Millisecond
	return NewEnvelope(NewSweep(1400, 500, d, WaveSquare, rate), d, 2*time.Millisecond, 50*time.Millisecond, rate)
}

// hitSound is a noise crack over a low square thump.
func hitSound(rate beep.SampleRate) beep.Streamer {
	d := 110 * time.Millisecond
	crack := NewEnvelope(NewOscillator(0, d, WaveNoise, rate), d, time.Millisecond, 90*time.Millisecond, rate)
	thump := NewEnvelope(NewSweep(220, 90, d, WaveSquare, rate), d, time.Millisecond, 80*time.Millisecond, rate)
	return beep.Mix(newVolume(crack, 0.5), newVolume(thump, 0.4))
}

// explosionSound is a long noise burst with a falling rumble.
func explosionSound(rate beep.SampleRate) beep.Streamer {
	d := 650 * time.Millisecond
	burst := NewEnvelope(NewOscillator(0, d, WaveNoise, rate), d, 5*time.Millisecond, 550*time.Millisecond, rate)
	rumble := NewEnvelope(NewSweep(110, 35, d, WaveSine, rate), d, 5*time.Millisecond, 500*time.Millisecond, rate)
	return beep.Mix(newVolume(burst, 0.55), newVolume(rumble, 0.45))
}

// gameOverSound is a slow descending minor line.
func gameOverSound(rate beep.SampleRate) beep.Streamer {
	return arpeggio([]float64{440, 349.23, 293.66, 220}, 220*time.Millisecond, WaveSaw, rate)
}

// powerUpSound is a quick rising arpeggio.
func powerUpSound(rate beep.SampleRate) beep.Streamer {
	return arpeggio([]float64{523.25, 659.25, 783.99, 1046.5}, 60*time.Millisecond, WaveSquare, rate)
}

// levelUpSound is a rising arpeggio resolving on a chord.
func levelUpSound(rate beep.SampleRate) beep.Streamer {
	run := arpeggio([]float64{392, 523.25, 659.25}, 90*time.Millisecond, WaveSine, rate)
	chordLen := 350 * time.Millisecond
	chord := beep.Mix(
		newVolume(tone(523.25, chordLen, WaveSine, rate), 0.4),
		newVolume(tone(659.25, chordLen, WaveSine, rate), 0.3),
		newVolume(tone(783.99, chordLen, WaveSine, rate), 0.3),
	)
	return beep.Seq(run, chord)
}

// generators maps cue names to their sound generator.
var generators = map[string]func(beep.SampleRate) beep.Streamer{
	"shoot":     shootSound,
	"hit":       hitSound,
	"explosion": explosionSound,
	"game_over": gameOverSound,
	"powerup":   powerUpSound,
	"level_up":  levelUpSound,
}
