package ui

import (
	"context"
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/mossreef/angler/internal/game"
)

func (a *App) fishingScreen(ctx context.Context) error {
	for {
		a.clear()
		z := a.game.Zone()
		a.drawText(1, 3, styleTitle, "Fishing at "+z.Name)
		a.drawText(1, 5, styleWater, "~ ~ ~ casting ~ ~ ~")
		a.drawText(1, 7, styleDim, "esc reels in and leaves")
		a.screen.Show()

		// dead time before anything happens
		ev, ok := a.keyWithin(ctx, a.waiter.Next())
		if !ok {
			return ctx.Err()
		}
		if ev != nil {
			if ev.Key() == tcell.KeyEscape {
				return nil
			}
			continue
		}

		if !a.game.RollBite() {
			a.waiter.NoBite()
			a.drawText(1, 5, styleDim, "...nothing. The line drifts.")
			a.screen.Show()
			continue
		}
		a.waiter.Bit()
		a.audio.Bite()

		var err error
		switch {
		case a.game.MoonlitBite():
			err = a.moonlitCast(ctx)
		case a.game.RollBoss():
			err = a.bossFight(ctx)
		default:
			err = a.normalCast(ctx)
		}
		if err != nil {
			return err
		}

		if err := a.game.AdvanceHour(ctx); err != nil {
			return err
		}
	}
}

func (a *App) normalCast(ctx context.Context) error {
	track := a.game.NewTrack()
	pos, pressed, err := a.runTrack(ctx, track, a.game.TrackInterval(), "A bite! Hit SPACE in the green zone!")
	if err != nil {
		return err
	}

	if pressed && track.Hit(pos) {
		sp := a.game.Draw()
		r, err := a.game.Land(ctx, sp)
		if err != nil {
			return err
		}
		a.audio.Hit()
		a.showCatch(ctx, r)
		return nil
	}

	a.audio.Miss()
	lost := a.game.MissNormal()
	lines := []string{"It got away!"}
	if lost > 0 {
		lines = append(lines, fmt.Sprintf("Your %d-catch streak is gone.", lost))
	}
	a.pause(ctx, lines...)
	return nil
}

// moonlitCast is the forced exotic encounter under a Bathyal full
// moon: a tiny zone at ten times the speed, and a monster on the line.
func (a *App) moonlitCast(ctx context.Context) error {
	track := a.game.MoonlitTrack()
	pos, pressed, err := a.runTrack(ctx, track, a.game.MoonlitInterval(),
		"The water glows silver... something vast is rising!")
	if err != nil {
		return err
	}

	if pressed && track.Hit(pos) {
		r, err := a.game.Land(ctx, a.game.DrawMoonlit())
		if err != nil {
			return err
		}
		a.audio.Hit()
		a.showCatch(ctx, r)
		return nil
	}

	a.audio.Miss()
	lost := a.game.MissNormal()
	lines := []string{"It sinks back into the dark."}
	if lost > 0 {
		lines = append(lines, fmt.Sprintf("Your %d-catch streak is gone.", lost))
	}
	a.pause(ctx, lines...)
	return nil
}

// runTrack animates the pointer across the track in a single pass and
// reports the pointer cell at press time. The pointer running off the
// far edge is a miss. Inert keys are drained without touching the
// step deadline.
func (a *App) runTrack(ctx context.Context, track game.Track, interval time.Duration, banner string) (int, bool, error) {
	pos := 0
	for {
		a.drawTrack(track, pos, banner)

		deadline := time.Now().Add(interval)
		for {
			ev, ok := a.keyWithin(ctx, time.Until(deadline))
			if !ok {
				return 0, false, ctx.Err()
			}
			if ev == nil {
				break
			}
			switch {
			case ev.Key() == tcell.KeyEscape:
				return pos, false, nil
			case ev.Key() == tcell.KeyEnter,
				ev.Key() == tcell.KeyRune && ev.Rune() == ' ':
				return pos, true, nil
			}
		}

		next, done := track.Advance(pos)
		pos = next
		if done {
			return pos, false, nil
		}
	}
}

func (a *App) drawTrack(track game.Track, pos int, banner string) {
	a.clear()
	a.drawText(1, 3, styleTitle, banner)

	y := 6
	a.drawText(1, y-1, styleDim, "["+spaces(track.Width)+"]")
	for i := 0; i < track.Width; i++ {
		style := styleWater
		r := '·'
		if track.InZone(i) {
			style = styleZone
			r = '█'
		}
		a.screen.SetContent(2+i, y, r, nil, style)
	}
	a.screen.SetContent(2+pos, y+1, '^', nil, stylePointer)
	a.screen.Show()
}

func spaces(n int) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = ' '
	}
	return string(b)
}

func (a *App) showCatch(ctx context.Context, r *game.CatchReport) {
	a.clear()
	c := r.Catch
	a.drawText(1, 3, tierStyle(c.Tier), fmt.Sprintf("You caught a %s %s!", r.Class, c.Name))
	a.drawText(1, 4, styleDefault, fmt.Sprintf("[%s] %.1f kg, worth %.2f coins", c.Tier, c.Kg, c.Value()))
	a.drawText(1, 5, styleDefault, fmt.Sprintf("+%d xp, streak %d", r.XP, r.Streak))

	y := 7
	if r.LevelsGained > 0 {
		a.drawText(1, y, styleGood, fmt.Sprintf("Level up! You are now level %d.", a.game.State.Level))
		y++
	}
	if r.TreasureCoins > 0 {
		a.audio.Coins()
		a.drawText(1, y, styleGood, fmt.Sprintf("A drifting chest! +%.0f coins", r.TreasureCoins))
		y++
	}
	if r.FoundAncient {
		a.drawText(1, y, styleTitle, "Something metal glints inside it... the Ancient Key!")
		y++
	}
	if r.FoundFloating {
		a.drawText(1, y, styleTitle, "A strange feather-shaped key was stuck in its gills!")
		y++
	}
	for _, n := range r.QuestNotes {
		a.drawText(1, y, styleDim, n)
		y++
	}

	a.drawText(1, y+1, styleDim, "press any key")
	a.screen.Show()
	a.nextKey(ctx)
}
