package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
)

// SampleRate is the rate every sound is synthesized at.
const SampleRate = beep.SampleRate(44100)

// sweep is a sine oscillator whose frequency slides linearly from one value
// to another over a fixed duration.
type sweep struct {
	from, to float64
	total    int
	pos      int
	phase    float64
}

func newSweep(from, to float64, d time.Duration) *sweep {
	return &sweep{from: from, to: to, total: SampleRate.N(d)}
}

func (s *sweep) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if s.pos >= s.total {
			return i, i > 0
		}
		progress := float64(s.pos) / float64(s.total)
		freq := s.from + (s.to-s.from)*progress

		v := math.Sin(2 * math.Pi * s.phase)
		samples[i][0] = v
		samples[i][1] = v

		s.phase += freq / float64(SampleRate)
		s.phase -= math.Floor(s.phase)
		s.pos++
	}
	return len(samples), true
}

func (s *sweep) Err() error { return nil }

// buzz is a harsh tone built from a fundamental and two harmonics.
type buzz struct {
	freq  float64
	total int
	pos   int
}

func newBuzz(freq float64, d time.Duration) *buzz {
	return &buzz{freq: freq, total: SampleRate.N(d)}
}

func (b *buzz) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if b.pos >= b.total {
			return i, i > 0
		}
		t := float64(b.pos) / float64(SampleRate)
		v := 0.6*math.Sin(2*math.Pi*b.freq*t) +
			0.3*math.Sin(2*math.Pi*b.freq*2*t) +
			0.15*math.Sin(2*math.Pi*b.freq*3*t)
		samples[i][0] = v
		samples[i][1] = v
		b.pos++
	}
	return len(samples), true
}

func (b *buzz) Err() error { return nil }

// fade applies a linear attack and release to a finite streamer.
type fade struct {
	s       beep.Streamer
	total   int
	attack  int
	release int
	pos     int
}

func newFade(s beep.Streamer, d, attack, release time.Duration) *fade {
	return &fade{
		s:       s,
		total:   SampleRate.N(d),
		attack:  SampleRate.N(attack),
		release: SampleRate.N(release),
	}
}

func (f *fade) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = f.s.Stream(samples)
	for i := 0; i < n; i++ {
		gain := 1.0
		if f.attack > 0 && f.pos < f.attack {
			gain = float64(f.pos) / float64(f.attack)
		}
		if left := f.total - f.pos; f.release > 0 && left < f.release {
			gain = math.Max(float64(left)/float64(f.release), 0)
		}
		samples[i][0] *= gain
		samples[i][1] *= gain
		f.pos++
	}
	return n, ok
}

func (f *fade) Err() error { return f.s.Err() }

// tone is a sine note of the given length with a short fade.
func tone(freq float64, d time.Duration) beep.Streamer {
	sine, err := generators.SineTone(SampleRate, freq)
	if err != nil {
		// Only frequencies above the Nyquist limit fail.
		return beep.Silence(SampleRate.N(d))
	}
	return newFade(beep.Take(SampleRate.N(d), sine), d, 5*time.Millisecond, d/3)
}

// flapSound is a short upward chirp.
func flapSound() beep.Streamer {
	d := 90 * time.Millisecond
	return newFade(newSweep(420, 880, d), d, 5*time.Millisecond, 40*time.Millisecond)
}

// enemyHitSound is a low buzz layered with a falling chirp.
func enemyHitSound() beep.Streamer {
	d := 160 * time.Millisecond
	return beep.Mix(
		newFade(newBuzz(110, d), d, 2*time.Millisecond, 80*time.Millisecond),
		newFade(newSweep(600, 150, d), d, 2*time.Millisecond, 60*time.Millisecond),
	)
}

// gameOverSound is a three-note falling phrase.
func gameOverSound() beep.Streamer {
	return beep.Seq(
		tone(523.25, 140*time.Millisecond), // C5
		tone(392.00, 140*time.Millisecond), // G4
		tone(261.63, 320*time.Millisecond), // C4
	)
}

// musicNotes is the background arpeggio, one note per step: C, Am, F, G.
var musicNotes = []float64{
	261.63, 329.63, 392.00, 329.63,
	220.00, 261.63, 329.63, 261.63,
	174.61, 220.00, 261.63, 220.00,
	196.00, 246.94, 293.66, 246.94,
}

// music is an endless soft arpeggio. Each note decays and is cut with a
// short release so note boundaries do not click.
type music struct {
	pos     int
	step    int
	release int
}

func newMusic() *music {
	return &music{
		step:    SampleRate.N(250 * time.Millisecond),
		release: SampleRate.N(20 * time.Millisecond),
	}
}

func (m *music) Stream(samples [][2]float64) (n int, ok bool) {
	loop := m.step * len(musicNotes)
	for i := range samples {
		p := m.pos % loop
		freq := musicNotes[p/m.step]
		inNote := p % m.step

		t := float64(inNote) / float64(SampleRate)
		env := math.Exp(-t * 5)
		if left := m.step - inNote; left < m.release {
			env *= float64(left) / float64(m.release)
		}

		v := 0.15 * env * math.Sin(2*math.Pi*freq*t)
		samples[i] = [2]float64{v, v}
		m.pos++
	}
	return len(samples), true
}

func (m *music) Err() error { return nil }
