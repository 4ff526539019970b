package game

import (
	"context"
	"fmt"
	"time"

	"github.com/mossreef/angler/internal/fish"
	"github.com/mossreef/angler/internal/trap"
)

// SetTrap deploys a trap with one unit of bait in an unlocked zone.
func (g *Game) SetTrap(ctx context.Context, zoneName string, bait trap.Bait) (trap.Trap, error) {
	z, ok := g.Reg.Zone(zoneName)
	if !ok {
		return trap.Trap{}, fmt.Errorf("unknown zone %q", zoneName)
	}
	if !g.State.HasItem(z.Unlock) {
		return trap.Trap{}, fmt.Errorf("you haven't unlocked %s yet", z.Name)
	}
	if len(g.Traps) >= trap.MaxActive {
		return trap.Trap{}, fmt.Errorf("you can run at most %d traps at once", trap.MaxActive)
	}
	if g.State.TrapStock < 1 {
		return trap.Trap{}, fmt.Errorf("you have no traps left, buy one first")
	}
	if g.State.BaitCount(string(bait)) < 1 {
		return trap.Trap{}, fmt.Errorf("you have no %s left", bait.Label())
	}

	g.State.TrapStock--
	g.State.AddBait(string(bait), -1)
	t := trap.New(z.Name, bait, g.now())
	g.Traps = append(g.Traps, t)

	if err := g.Store.ReplaceTraps(ctx, trapRows(g.Traps)); err != nil {
		return trap.Trap{}, fmt.Errorf("failed to save traps: %w", err)
	}
	return t, g.Store.SavePlayer(ctx, g.State.Row())
}

type TrapHaul struct {
	Trap       trap.Trap
	Broken     bool
	Caught     []fish.Catch
	XP         int
	QuestNotes []string
}

// CollectTrap empties a ready trap, or clears a broken one with nothing
// to show for it. Soaking traps refuse collection.
func (g *Game) CollectTrap(ctx context.Context, id string) (*TrapHaul, error) {
	idx := -1
	for i, t := range g.Traps {
		if t.Id == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil, fmt.Errorf("no trap with id %s", id)
	}

	t := g.Traps[idx]
	now := g.now()
	switch t.StatusAt(now) {
	case trap.StatusSoaking:
		return nil, fmt.Errorf("that trap needs %s more", t.RemainingAt(now).Round(time.Second))
	case trap.StatusBroken:
		g.Traps = append(g.Traps[:idx], g.Traps[idx+1:]...)
		if err := g.Store.ReplaceTraps(ctx, trapRows(g.Traps)); err != nil {
			return nil, fmt.Errorf("failed to save traps: %w", err)
		}
		return &TrapHaul{Trap: t, Broken: true}, nil
	}

	z, ok := g.Reg.Zone(t.Zone)
	if !ok {
		z = g.Zone()
	}
	h := &TrapHaul{Trap: t, Caught: trap.Resolve(t, z, g.picker, g.rng, now)}
	for i := range h.Caught {
		c := &h.Caught[i]
		xp := fish.XPForTier(c.Tier)
		if c.Tier == fish.TierBoss {
			xp = z.Boss.XP
		} else if id, ok := z.IdByKey(c.Key); ok {
			if sp, ok := z.GetById(id); ok {
				xp = fish.XPOf(sp)
			}
		}
		if g.State.DailyEvent == EventDoubleXP {
			xp *= 2
		}
		h.XP += xp
		g.State.AddXP(xp)

		id, err := g.Store.AddCatch(ctx, *c)
		if err != nil {
			return nil, fmt.Errorf("failed to save catch: %w", err)
		}
		c.Id = id
		if err := g.Store.RecordDiscovery(ctx, *c); err != nil {
			return nil, fmt.Errorf("failed to record discovery: %w", err)
		}
		h.QuestNotes = append(h.QuestNotes, g.Quests.Record(c.Zone, c.Name, c.Tier)...)
	}

	g.Traps = append(g.Traps[:idx], g.Traps[idx+1:]...)
	if err := g.Store.ReplaceTraps(ctx, trapRows(g.Traps)); err != nil {
		return nil, fmt.Errorf("failed to save traps: %w", err)
	}
	if err := g.Store.ReplaceQuests(ctx, questRows(g.Quests.All())); err != nil {
		return nil, fmt.Errorf("failed to save quests: %w", err)
	}
	return h, g.Store.SavePlayer(ctx, g.State.Row())
}

// BuyTrapGear buys traps or bait by the shop key in trap.Prices.
func (g *Game) BuyTrapGear(ctx context.Context, item string, qty int) (float64, error) {
	price, ok := trap.Prices[item]
	if !ok {
		return 0, fmt.Errorf("the shop doesn't sell %q", item)
	}
	if qty < 1 {
		return 0, fmt.Errorf("amount must be at least 1")
	}
	cost := price * float64(qty)
	if g.State.Balance < cost {
		return 0, fmt.Errorf("not enough money")
	}

	g.State.Balance -= cost
	if item == "trap" {
		g.State.TrapStock += qty
	} else {
		g.State.AddBait(item, qty)
	}
	return cost, g.Store.SavePlayer(ctx, g.State.Row())
}
