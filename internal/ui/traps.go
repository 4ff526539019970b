package ui

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/mossreef/angler/internal/trap"
)

func (a *App) trapScreen(ctx context.Context) error {
	for {
		sel := a.pickFrom(ctx, "Fish Traps", []string{"View traps", "Set a trap", "Collect a trap", "Buy gear", "Back"})
		switch sel {
		case 0:
			a.viewTraps(ctx)
		case 1:
			if err := a.setTrap(ctx); err != nil {
				return err
			}
		case 2:
			if err := a.collectTrap(ctx); err != nil {
				return err
			}
		case 3:
			if err := a.buyTrapGear(ctx); err != nil {
				return err
			}
		default:
			return ctx.Err()
		}
	}
}

func (a *App) viewTraps(ctx context.Context) {
	a.clear()
	a.drawText(1, 3, styleTitle, "Fish Traps")
	s := a.game.State
	a.drawText(1, 4, styleDim, fmt.Sprintf("stock %d | bait: normal %d, advanced %d, expert %d, legend %d",
		s.TrapStock, s.BaitNormal, s.BaitAdvanced, s.BaitExpert, s.BaitLegend))

	now := time.Now()
	y := 6
	for i, t := range a.game.Traps {
		var state string
		switch t.StatusAt(now) {
		case trap.StatusReady:
			state = "READY"
		case trap.StatusBroken:
			state = "BROKEN"
		default:
			state = "soaking, " + t.RemainingAt(now).Round(time.Minute).String() + " left"
		}
		a.drawText(1, y, styleDefault, fmt.Sprintf("%2d  %-14s %-14s %s", i+1, t.Zone, t.Bait.Label(), state))
		y++
	}
	if len(a.game.Traps) == 0 {
		a.drawText(1, y, styleDim, "no traps in the water")
		y++
	}
	a.drawText(1, y+1, styleDim, "press any key")
	a.screen.Show()
	a.nextKey(ctx)
}

func (a *App) setTrap(ctx context.Context) error {
	zones := a.game.UnlockedZones()
	names := make([]string, len(zones))
	for i, z := range zones {
		names[i] = z.Name
	}
	zi := a.pickFrom(ctx, "Trap zone", names)
	if zi < 0 {
		return ctx.Err()
	}

	baits := make([]string, len(trap.BaitOrder))
	for i, b := range trap.BaitOrder {
		baits[i] = fmt.Sprintf("%-14s (you have %d)", b.Label(), a.game.State.BaitCount(string(b)))
	}
	bi := a.pickFrom(ctx, "Bait", baits)
	if bi < 0 {
		return ctx.Err()
	}

	t, err := a.game.SetTrap(ctx, names[zi], trap.BaitOrder[bi])
	if err != nil {
		a.pause(ctx, err.Error())
		return nil
	}
	a.pause(ctx, fmt.Sprintf("Trap set in %s with %s. Come back in a day.", t.Zone, t.Bait.Label()))
	return nil
}

func (a *App) collectTrap(ctx context.Context) error {
	if len(a.game.Traps) == 0 {
		a.pause(ctx, "You have no traps in the water.")
		return nil
	}

	now := time.Now()
	labels := make([]string, len(a.game.Traps))
	for i, t := range a.game.Traps {
		labels[i] = fmt.Sprintf("%s / %s / set %s ago", t.Zone, t.Bait.Label(), now.Sub(t.SetAt).Round(time.Minute))
	}
	sel := a.pickFrom(ctx, "Collect which trap?", labels)
	if sel < 0 {
		return ctx.Err()
	}

	h, err := a.game.CollectTrap(ctx, a.game.Traps[sel].Id)
	if err != nil {
		a.pause(ctx, err.Error())
		return nil
	}
	if h.Broken {
		a.pause(ctx, "The trap sat too long. Something big smashed it and ate the lot.")
		return nil
	}

	a.clear()
	a.drawText(1, 3, styleTitle, fmt.Sprintf("The trap holds %d fish!", len(h.Caught)))
	y := 5
	for _, c := range h.Caught {
		a.drawText(1, y, tierStyle(c.Tier), fmt.Sprintf("%s [%s] %.1f kg", c.Name, c.Tier, c.Kg))
		y++
	}
	a.drawText(1, y+1, styleDefault, fmt.Sprintf("+%d xp", h.XP))
	y += 2
	for _, n := range h.QuestNotes {
		a.drawText(1, y, styleDim, n)
		y++
	}
	a.drawText(1, y+1, styleDim, "press any key")
	a.screen.Show()
	a.nextKey(ctx)
	return nil
}

func (a *App) buyTrapGear(ctx context.Context) error {
	items := []string{"trap", string(trap.BaitNormal), string(trap.BaitAdvanced), string(trap.BaitExpert), string(trap.BaitLegend)}
	labels := make([]string, len(items))
	for i, it := range items {
		labels[i] = fmt.Sprintf("%-14s %12.0f coins", it, trap.Prices[it])
	}
	sel := a.pickFrom(ctx, "Trap gear", labels)
	if sel < 0 {
		return ctx.Err()
	}

	input, ok := a.prompt(ctx, "how many?")
	if !ok {
		return nil
	}
	qty, err := strconv.Atoi(strings.TrimSpace(input))
	if err != nil {
		a.pause(ctx, "That's not a number.")
		return nil
	}

	cost, err := a.game.BuyTrapGear(ctx, items[sel], qty)
	if err != nil {
		a.pause(ctx, err.Error())
		return nil
	}
	a.audio.Coins()
	a.pause(ctx, fmt.Sprintf("Paid %.0f coins.", cost))
	return nil
}
