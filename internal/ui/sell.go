package ui

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/agnivade/levenshtein"
)

func (a *App) sellScreen(ctx context.Context) error {
	for {
		inv, err := a.game.Inventory(ctx)
		if err != nil {
			return err
		}

		a.clear()
		a.drawText(1, 3, styleTitle, "Inventory")
		if len(inv) == 0 {
			a.pause(ctx, "Your creel is empty.")
			return nil
		}

		// group by name for display
		type line struct {
			name  string
			count int
			value float64
		}
		byName := make(map[string]*line)
		var order []string
		var total float64
		for _, c := range inv {
			l, ok := byName[c.Name]
			if !ok {
				l = &line{name: c.Name}
				byName[c.Name] = l
				order = append(order, c.Name)
			}
			l.count++
			l.value += c.Value()
			total += c.Value()
		}
		sort.Strings(order)

		y := 5
		for _, name := range order {
			l := byName[name]
			a.drawText(1, y, styleDefault, fmt.Sprintf("%-24s x%-3d %10.2f coins", l.name, l.count, l.value))
			y++
		}
		a.drawText(1, y+1, styleStatus, fmt.Sprintf("%d fish, %.2f coins total", len(inv), total))
		a.drawText(1, y+3, styleDim, `type "all", "<name>", or "<count> <name>"; esc leaves`)
		a.screen.Show()

		input, ok := a.prompt(ctx, "sell>")
		if !ok {
			return nil
		}
		input = strings.TrimSpace(input)
		if input == "" {
			continue
		}

		if strings.EqualFold(input, "all") {
			r, err := a.game.SellAll(ctx)
			if err != nil {
				a.pause(ctx, err.Error())
				continue
			}
			a.audio.Coins()
			msg := fmt.Sprintf("Sold %d fish for %.2f coins.", r.Count, r.Total)
			if r.Jackpot {
				msg += " JACKPOT! Triple payout!"
			}
			a.pause(ctx, msg)
			continue
		}

		count := 1
		name := input
		if fields := strings.Fields(input); len(fields) > 1 {
			// both "2 Carp" and "x2 Carp" work
			head := strings.TrimPrefix(strings.ToLower(fields[0]), "x")
			if n, err := strconv.Atoi(head); err == nil {
				count = n
				name = strings.Join(fields[1:], " ")
			}
		}

		match, ok := closestName(name, order)
		if !ok {
			a.pause(ctx, fmt.Sprintf("No fish called %q in your creel.", name))
			continue
		}
		r, err := a.game.SellNamed(ctx, match, count)
		if err != nil {
			a.pause(ctx, err.Error())
			continue
		}
		a.audio.Coins()
		msg := fmt.Sprintf("Sold %d %s for %.2f coins.", r.Count, match, r.Total)
		if r.Jackpot {
			msg += " JACKPOT! Triple payout!"
		}
		a.pause(ctx, msg)
	}
}

// maxNameDistance is how many edits a typo may be from a creel name
// and still sell the fish.
const maxNameDistance = 2

func closestName(input string, names []string) (string, bool) {
	input = strings.ToLower(input)
	best, bestDist := "", 1<<30
	for _, n := range names {
		d := levenshtein.ComputeDistance(input, strings.ToLower(n))
		if d < bestDist {
			best, bestDist = n, d
		}
	}
	if best == "" || bestDist > maxNameDistance {
		return "", false
	}
	return best, true
}
