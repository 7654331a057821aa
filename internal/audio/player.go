// Package audio synthesizes the game's sound effects and background loop and
// mixes them into a single stream. Opening the sound card lives in the device subpackage so
// that the rest of the program, and its tests, never touch audio hardware.
package audio

import (
	"math"
	"sync"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"

	"github.com/vovakirdan/tui-flapper/internal/config"
	"github.com/vovakirdan/tui-flapper/internal/core"
	"github.com/vovakirdan/tui-flapper/internal/games/flappy"
)

// Player turns game events into sounds. It is itself a beep.Streamer: the
// device pulls samples from it while the game goroutine queues sounds.
type Player struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	volume      float64
	muted       bool
	sounds      map[core.Event]func() beep.Streamer
	musicOn     bool
	musicVolume float64
	music       *beep.Ctrl // nil until StartMusic
	buf         [][2]float64
}

// NewPlayer creates a player with the configured volume. A disabled audio
// section starts the player muted.
func NewPlayer(cfg config.AudioSettings) *Player {
	return &Player{
		mixer:  &beep.Mixer{},
		volume: core.ClampF(cfg.Volume, 0, 1),
		muted:  !cfg.Enabled,
		sounds: map[core.Event]func() beep.Streamer{
			flappy.EventFlap:     flapSound,
			flappy.EventEnemyHit: enemyHitSound,
			flappy.EventGameOver: gameOverSound,
		},
		musicOn:     cfg.Music,
		musicVolume: core.ClampF(cfg.MusicVolume, 0, 1),
	}
}

// StartMusic starts the background loop when it is enabled. It is paused
// while muted and does not count as an active sound.
func (p *Player) StartMusic() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.musicOn || p.music != nil {
		return
	}
	p.music = &beep.Ctrl{
		Streamer: withVolume(newMusic(), p.volume*p.musicVolume),
		Paused:   p.muted,
	}
}

// MusicPlaying reports whether the background loop is audible.
func (p *Player) MusicPlaying() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.music != nil && !p.music.Paused
}

// Play queues the sound for e. It reports false when muted or when e has
// no sound.
func (p *Player) Play(e core.Event) bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.muted {
		return false
	}
	sound, ok := p.sounds[e]
	if !ok {
		return false
	}
	p.mixer.Add(withVolume(sound(), p.volume))
	return true
}

// PlayAll queues a sound for every event of a step.
func (p *Player) PlayAll(events []core.Event) {
	for _, e := range events {
		p.Play(e)
	}
}

// ToggleMute flips the mute state and returns the new value.
// Muting cuts off sounds that are still playing.
func (p *Player) ToggleMute() bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.muted = !p.muted
	if p.muted {
		p.mixer.Clear()
	}
	if p.music != nil {
		p.music.Paused = p.muted
	}
	return p.muted
}

// Muted reports whether sounds are dropped.
func (p *Player) Muted() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.muted
}

// Active returns the number of sounds still playing.
func (p *Player) Active() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.mixer.Len()
}

// Stream mixes all queued sounds over the background loop. It streams
// silence when nothing plays and never ends.
func (p *Player) Stream(samples [][2]float64) (n int, ok bool) {
	p.mu.Lock()
	defer p.mu.Unlock()

	n, ok = p.mixer.Stream(samples)
	if p.music == nil || p.music.Paused {
		return n, ok
	}
	if cap(p.buf) < n {
		p.buf = make([][2]float64, n)
	}
	buf := p.buf[:n]
	m, _ := p.music.Stream(buf)
	for i := range buf[:m] {
		samples[i][0] += buf[i][0]
		samples[i][1] += buf[i][1]
	}
	return n, ok
}

// Err always returns nil; synthesized sounds cannot fail.
func (p *Player) Err() error { return nil }

// Close stops all sounds and the background loop.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.mixer.Clear()
	p.music = nil
}

// withVolume scales s by a linear volume in [0, 1].
func withVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}
