package ui

import (
	"context"
	"fmt"
)

// discoveryScreen shows the field guide for the current zone: every
// species slot, filled in once the fish has been landed at least once.
func (a *App) discoveryScreen(ctx context.Context) error {
	zone := a.game.Zone()
	seen, err := a.game.Store.Discovered(ctx, zone.Name)
	if err != nil {
		return err
	}

	a.clear()
	a.drawText(1, 3, styleTitle, "Field Guide: "+zone.Name)

	y := 5
	found := 0
	for _, sp := range zone.All() {
		d, ok := seen[sp.Key]
		if !ok {
			a.drawText(1, y, styleDim, fmt.Sprintf("%-24s ???", "???"))
			y++
			continue
		}
		found++
		a.drawText(1, y, tierStyle(sp.Tier), fmt.Sprintf("%-24s [%s] x%d, best %.1f kg, record %.2f coins",
			d.Name, d.Tier, d.Count, d.MaxKg, d.MaxValue))
		y++
	}
	if d, ok := seen["boss"]; ok {
		a.drawText(1, y, tierStyle(d.Tier), fmt.Sprintf("%-24s [%s] x%d, best %.1f kg",
			d.Name, d.Tier, d.Count, d.MaxKg))
		y++
	}

	a.drawText(1, y+1, styleStatus, fmt.Sprintf("%d of %d species discovered", found, zone.Count()))
	a.drawText(1, y+3, styleDim, "press any key")
	a.screen.Show()
	a.nextKey(ctx)
	return nil
}
