package ui

import (
	"context"
	"fmt"
	mrand "math/rand"
	"time"

	"github.com/mossreef/angler/internal/game"
)

// bossFight runs the two-stage encounter. Any missed round and the
// boss tears free; the streak survives either way.
func (a *App) bossFight(ctx context.Context) error {
	z := a.game.Zone()
	plan := game.PlanBossFight(z)

	a.audio.Boss()
	a.clear()
	a.drawText(1, 3, styleBad, "!!! "+z.Boss.Warning)
	a.drawText(1, 5, styleTitle, z.Boss.Name+" has taken the bait!")
	a.drawText(1, 7, styleDim, "press any key to fight")
	a.screen.Show()
	if _, ok := a.nextKey(ctx); !ok {
		return ctx.Err()
	}

	rng := mrand.New(mrand.NewSource(time.Now().UnixNano()))

	won, err := a.bossStage(ctx, rng, plan.Opening, "Hold on! Round %d of %d")
	if err != nil || !won {
		if err == nil {
			a.bossEscaped(ctx, z.Boss.Name)
		}
		return err
	}

	a.clear()
	a.drawText(1, 3, styleBad, z.Boss.Name+" dives!")
	a.drawText(1, 5, styleDim, "The line screams off the reel...")
	a.screen.Show()
	if _, ok := a.keyWithin(ctx, 1500*time.Millisecond); !ok {
		return ctx.Err()
	}

	won, err = a.bossStage(ctx, rng, plan.Final, "Last pull! Round %d of %d")
	if err != nil || !won {
		if err == nil {
			a.bossEscaped(ctx, z.Boss.Name)
		}
		return err
	}

	r, err := a.game.LandBoss(ctx)
	if err != nil {
		return err
	}
	a.audio.Hit()
	a.showCatch(ctx, r)
	return nil
}

func (a *App) bossStage(ctx context.Context, rng *mrand.Rand, st game.BossStage, banner string) (bool, error) {
	for round := 1; round <= st.Rounds; round++ {
		track := game.NewTrack(rng, st.ZoneLen)
		pos, pressed, err := a.runTrack(ctx, track, st.Interval, fmt.Sprintf(banner, round, st.Rounds))
		if err != nil {
			return false, err
		}
		if !pressed || !track.Hit(pos) {
			return false, nil
		}
		a.audio.Hit()
	}
	return true, nil
}

func (a *App) bossEscaped(ctx context.Context, name string) {
	a.audio.Miss()
	a.pause(ctx, name+" tore the line and vanished into the deep.")
}
