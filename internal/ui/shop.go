package ui

import (
	"context"
	"fmt"

	"github.com/mossreef/angler/internal/game"
)

func (a *App) shopScreen(ctx context.Context) error {
	for {
		items := game.ShopItems()
		labels := make([]string, 0, len(items)+1)
		for _, it := range items {
			tag := fmt.Sprintf("%-22s %14.0f coins  %s", it.Name, it.Price, it.Description)
			if a.game.State.HasItem(it.Key) {
				tag = fmt.Sprintf("%-22s %14s  %s", it.Name, "owned", it.Description)
			}
			labels = append(labels, tag)
		}
		labels = append(labels, "Back")

		sel := a.pickFrom(ctx, "Shop", labels)
		if sel < 0 || sel == len(items) {
			return ctx.Err()
		}

		it, err := a.game.Buy(ctx, items[sel].Key)
		if err != nil {
			a.pause(ctx, err.Error())
			continue
		}
		a.audio.Coins()
		a.pause(ctx, fmt.Sprintf("Bought the %s!", it.Name))
	}
}

func (a *App) travelScreen(ctx context.Context) error {
	zones := a.game.UnlockedZones()
	labels := make([]string, 0, len(zones))
	for _, z := range zones {
		label := z.Name
		if z.Name == a.game.State.Zone {
			label += " (here)"
		}
		labels = append(labels, label)
	}

	sel := a.pickFrom(ctx, "Travel", labels)
	if sel < 0 {
		return ctx.Err()
	}
	if err := a.game.SelectZone(zones[sel].Name); err != nil {
		a.pause(ctx, err.Error())
		return nil
	}
	a.pause(ctx, "You head out to "+zones[sel].Name+".")
	return nil
}
