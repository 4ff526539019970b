package game

import (
	mrand "math/rand"
	"time"

	"github.com/mossreef/angler/internal/fish"
)

// TrackWidth is the number of cells the pointer traverses in one cast.
const TrackWidth = 26

// trackMargin widens the hit window by one cell on each side; a press
// one cell past the painted zone still counts.
const trackMargin = 1

// minZoneStart keeps the catch zone away from the left edge so every
// cast has a lead-in.
const minZoneStart = 5

// Track is one cast of the timing minigame. The pointer starts at cell
// 0 and advances one cell per step; the caller animates it and reports
// the press position. Pure so the resolution is testable without a
// terminal.
type Track struct {
	Width     int
	ZoneStart int
	ZoneEnd   int
	Margin    int
}

func NewTrack(rng *mrand.Rand, zoneLen int) Track {
	if zoneLen < 1 {
		zoneLen = 1
	}
	if zoneLen > TrackWidth-minZoneStart {
		zoneLen = TrackWidth - minZoneStart
	}
	start := minZoneStart + rng.Intn(TrackWidth-zoneLen-minZoneStart+1)
	return Track{
		Width:     TrackWidth,
		ZoneStart: start,
		ZoneEnd:   start + zoneLen - 1,
		Margin:    trackMargin,
	}
}

// Advance moves the pointer one cell toward the far edge. The pointer
// makes a single pass over the track; done reports that it has run off
// the end, and a cast with no press by then is a miss.
func (t Track) Advance(pos int) (next int, done bool) {
	pos++
	if pos >= t.Width {
		return t.Width - 1, true
	}
	return pos, false
}

// Hit reports whether a press at the given pointer cell lands the fish.
func (t Track) Hit(pos int) bool {
	lo := t.ZoneStart - t.Margin
	if lo < 0 {
		lo = 0
	}
	hi := t.ZoneEnd + t.Margin
	if hi > t.Width-1 {
		hi = t.Width - 1
	}
	return lo <= pos && pos <= hi
}

// InZone reports whether the cell is inside the painted catch zone,
// without the hit margin. Rendering only.
func (t Track) InZone(pos int) bool {
	return t.ZoneStart <= pos && pos <= t.ZoneEnd
}

// StepInterval is the pointer's dwell per cell: the base interval
// divided by the zone's speed, scaled by a slowdown factor (>1 on
// Speedy Fisher days), floored so deep zones stay physically playable.
func StepInterval(baseMs, minMs int, z *fish.Zone, slow float64) time.Duration {
	ms := float64(baseMs) / z.SpeedDiv
	if slow > 1 {
		ms *= slow
	}
	if ms < float64(minMs) {
		ms = float64(minMs)
	}
	return time.Duration(ms * float64(time.Millisecond))
}
