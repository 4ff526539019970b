package ui

import (
	"context"
	"fmt"
	"strconv"
	"strings"
)

func (a *App) fastFishingScreen(ctx context.Context) error {
	a.clear()
	a.drawText(1, 3, styleTitle, "Fast Fishing")
	a.drawText(1, 5, styleDefault, fmt.Sprintf("Current price per fish: %.4f coins", a.game.State.FastPrice))
	a.drawText(1, 6, styleDefault, "The first fish of every batch is on the house.")
	a.drawText(1, 7, styleDim, "Skips the minigame, but some fish slip the net and bosses never bite.")
	a.screen.Show()

	input, ok := a.prompt(ctx, "how many (1-10)?")
	if !ok {
		return nil
	}
	n, err := strconv.Atoi(strings.TrimSpace(input))
	if err != nil {
		a.pause(ctx, "That's not a number.")
		return nil
	}

	r, err := a.game.FastFish(ctx, n)
	if err != nil {
		a.pause(ctx, err.Error())
		return nil
	}

	a.clear()
	a.drawText(1, 3, styleTitle, fmt.Sprintf("Paid %.2f coins.", r.Cost))
	y := 5
	for _, c := range r.Caught {
		a.drawText(1, y, tierStyle(c.Tier), fmt.Sprintf("%s [%s] %.1f kg", c.Name, c.Tier, c.Kg))
		y++
	}
	if r.Escaped > 0 {
		a.drawText(1, y, styleBad, fmt.Sprintf("%d slipped the net.", r.Escaped))
		y++
	}
	a.drawText(1, y+1, styleDefault, fmt.Sprintf("+%d xp, next price %.4f", r.TotalXP, r.Price))
	y += 2
	for _, n := range r.QuestNotes {
		a.drawText(1, y, styleDim, n)
		y++
	}
	a.drawText(1, y+1, styleDim, "press any key")
	a.screen.Show()
	a.nextKey(ctx)

	return a.game.AdvanceHour(ctx)
}
