package trap

import (
	mrand "math/rand"
	"slices"
	"time"

	"github.com/mossreef/angler/internal/fish"
)

// bossChanceLegend is the per-fish chance that legend bait hauls in the
// zone boss itself.
const bossChanceLegend = 0.40

// Resolve empties a ready trap into catch records. The zone supplies
// species and pricing; the picker rolls body weights.
func Resolve(t Trap, z *fish.Zone, p *fish.Picker, rng *mrand.Rand, now time.Time) []fish.Catch {
	count := 3 + rng.Intn(5)
	out := make([]fish.Catch, 0, count)

	for i := 0; i < count; i++ {
		if t.Bait == BaitLegend && rng.Float64() < bossChanceLegend {
			out = append(out, fish.Catch{
				Zone:     z.Name,
				Key:      "boss",
				Name:     z.Boss.Name,
				Tier:     fish.TierBoss,
				Kg:       p.RollBossKg(),
				Price:    z.Boss.Price,
				CaughtAt: now,
			})
			continue
		}

		pool := baitPool(t.Bait, z.All())
		sp := pool[rng.Intn(len(pool))]
		out = append(out, fish.Catch{
			Zone:     z.Name,
			Key:      sp.Key,
			Name:     sp.Name,
			Tier:     sp.Tier,
			Kg:       p.RollKg(sp),
			Price:    z.PriceOf(sp),
			CaughtAt: now,
		})
	}
	return out
}

func baitPool(b Bait, all []fish.Species) []fish.Species {
	var pool []fish.Species
	if b == BaitLegend {
		for _, sp := range all {
			if sp.Tier == fish.TierExotic {
				pool = append(pool, sp)
			}
		}
	} else {
		tiers := b.Tiers()
		for _, sp := range all {
			if slices.Contains(tiers, sp.Tier) {
				pool = append(pool, sp)
			}
		}
	}
	if len(pool) == 0 {
		pool = all
	}
	return pool
}
