package ui

import (
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(44100)

// Audio plays short cue tones. Failing to open the speaker is not
// fatal; the game just runs silent.
type Audio struct {
	ready bool
}

func NewAudio() *Audio {
	a := &Audio{}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err == nil {
		a.ready = true
	}
	return a
}

func (a *Audio) tone(freq float64, d time.Duration) {
	if !a.ready {
		return
	}
	sine, err := generators.SineTone(sampleRate, freq)
	if err != nil {
		return
	}
	speaker.Play(beep.Take(sampleRate.N(d), sine))
}

func (a *Audio) Bite()  { a.tone(660, 80*time.Millisecond) }
func (a *Audio) Hit()   { a.tone(880, 60*time.Millisecond) }
func (a *Audio) Miss()  { a.tone(220, 120*time.Millisecond) }
func (a *Audio) Boss()  { a.tone(110, 300*time.Millisecond) }
func (a *Audio) Coins() { a.tone(1320, 50*time.Millisecond) }
