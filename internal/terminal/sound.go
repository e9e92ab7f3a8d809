package terminal

import (
	"fmt"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(44100)

// bumpSound plays a short tone when a step runs into the bounds
type bumpSound struct {
	enabled   bool
	frequency float64
	duration  time.Duration
}

// newBumpSound initializes the speaker. Failure is returned but leaves the
// sound disabled, so callers can carry on silently.
func newBumpSound(frequency float64, duration time.Duration) (*bumpSound, error) {
	bs := &bumpSound{frequency: frequency, duration: duration}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return bs, fmt.Errorf("failed to init speaker: %w", err)
	}
	bs.enabled = true
	return bs, nil
}

func (bs *bumpSound) play() {
	if bs == nil || !bs.enabled {
		return
	}

	sine, err := generators.SineTone(sampleRate, bs.frequency)
	if err != nil {
		return
	}
	speaker.Play(beep.Take(sampleRate.N(bs.duration), sine))
}

func (bs *bumpSound) close() {
	if bs != nil && bs.enabled {
		speaker.Close()
		bs.enabled = false
	}
}
