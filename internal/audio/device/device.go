// Package device connects a sound stream to the system audio output.
package device

import (
	"fmt"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/tui-flapper/internal/audio"
)

// bufferTime is the speaker buffer length; longer is safer, shorter reacts faster.
const bufferTime = 100 * time.Millisecond

// Open initializes the speaker and starts playing s. The returned function
// releases the device.
func Open(s beep.Streamer) (func(), error) {
	if err := speaker.Init(audio.SampleRate, audio.SampleRate.N(bufferTime)); err != nil {
		return nil, fmt.Errorf("audio: cannot open output device: %w", err)
	}
	speaker.Play(s)
	return speaker.Close, nil
}
