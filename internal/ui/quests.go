package ui

import (
	"context"
	"fmt"
	"strconv"
	"strings"
)

func (a *App) questScreen(ctx context.Context) error {
	for {
		zone := a.game.State.Zone
		quests := a.game.Quests.ZoneQuests(zone)

		a.clear()
		a.drawText(1, 3, styleTitle, "Quests: "+zone)
		y := 5
		for i, q := range quests {
			style := styleDefault
			mark := " "
			if q.Completed() {
				style = styleGood
				mark = "*"
			}
			a.drawText(1, y, style, fmt.Sprintf("%2d %s %-40s %d/%d  %d coins",
				i+1, mark, q.Describe(), q.Progress, q.Amount, q.Reward))
			y++
		}
		a.drawText(1, y+1, styleDim, "type a quest number to claim, esc leaves")
		a.screen.Show()

		input, ok := a.prompt(ctx, "claim>")
		if !ok {
			return nil
		}
		n, err := strconv.Atoi(strings.TrimSpace(input))
		if err != nil || n < 1 || n > len(quests) {
			a.pause(ctx, "Pick a quest number from the board.")
			continue
		}

		q, err := a.game.ClaimQuest(ctx, n-1)
		if err != nil {
			a.pause(ctx, err.Error())
			continue
		}
		a.audio.Coins()
		a.pause(ctx, fmt.Sprintf("Quest complete! +%d coins, +%d xp. A new notice is pinned up.",
			q.Reward, q.RewardXP()))
	}
}
