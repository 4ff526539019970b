package fish

import (
	"crypto/rand"
	"encoding/binary"
	"math"
	mrand "math/rand"
	"slices"
	"time"
)

type Picker struct {
	rng *mrand.Rand
}

// DrawConfig carries the state the resolver needs from the session.
type DrawConfig struct {
	Streak    int
	TimeOfDay string
	Season    string
	// RareScale multiplies the per-point rare bonus (Streak Madness
	// doubles it). Zero means 1.
	RareScale   float64
	AllowExotic bool
	Exotics     []Species
}

func NewPicker(rng *mrand.Rand) *Picker {
	if rng == nil {
		var b [8]byte
		if _, err := rand.Read(b[:]); err != nil {
			rng = mrand.New(mrand.NewSource(time.Now().UnixNano()))
		} else {
			rng = mrand.New(mrand.NewSource(int64(binary.LittleEndian.Uint64(b[:]))))
		}
	}
	return &Picker{rng: rng}
}

// Draw resolves a species for one cast. Streak boosts convert to extra
// weight on the rare pool: the rare-pool probability is its base weight
// share plus the streak bonus, clamped at 1. Within a pool, species are
// drawn by base weight.
func (p *Picker) Draw(z *Zone, cfg DrawConfig) Species {
	pool := z.All()
	if cfg.AllowExotic {
		pool = append(pool, cfg.Exotics...)
	}

	filtered := filterGates(pool, cfg.TimeOfDay, cfg.Season)
	if len(filtered) == 0 {
		filtered = pool
	}

	var rarePool, commonPool []Species
	rareWeight, totalWeight := 0, 0
	for _, sp := range filtered {
		if sp.Tier == TierExotic && !cfg.AllowExotic {
			continue
		}
		totalWeight += sp.Weight
		if sp.Tier.IsRarePool() {
			rareWeight += sp.Weight
			rarePool = append(rarePool, sp)
		} else {
			commonPool = append(commonPool, sp)
		}
	}

	if len(rarePool) == 0 {
		if len(commonPool) == 0 {
			commonPool = filtered
		}
		return p.weightedPick(commonPool)
	}
	if len(commonPool) == 0 {
		return p.weightedPick(rarePool)
	}

	scale := cfg.RareScale
	if scale <= 0 {
		scale = 1
	}
	chance := float64(rareWeight)/float64(totalWeight) + RareBonus(cfg.Streak)*scale
	chance = math.Min(chance, 1)

	if p.rng.Float64() < chance {
		return p.weightedPick(rarePool)
	}
	return p.weightedPick(commonPool)
}

func filterGates(pool []Species, timeOfDay, season string) []Species {
	out := make([]Species, 0, len(pool))
	for _, sp := range pool {
		if len(sp.Times) > 0 && !slices.Contains(sp.Times, timeOfDay) {
			continue
		}
		if len(sp.Seasons) > 0 && !slices.Contains(sp.Seasons, season) {
			continue
		}
		out = append(out, sp)
	}
	return out
}

func (p *Picker) weightedPick(pool []Species) Species {
	cumulative := make([]int, len(pool))
	total := 0
	for i, sp := range pool {
		w := sp.Weight
		if w < 1 {
			w = 1
		}
		total += w
		cumulative[i] = total
	}

	roll := p.rng.Intn(total) // random int from [0,total)

	// binary search for the species using the cumulative table
	lo, hi := 0, len(cumulative)-1
	for lo < hi {
		mid := (lo + hi) >> 1
		if roll < cumulative[mid] {
			hi = mid
		} else {
			lo = mid + 1
		}
	}
	return pool[lo]
}

// RollBoss decides whether this cast becomes a boss encounter.
func (p *Picker) RollBoss(streak int, fullMoon bool) bool {
	return p.rng.Float64() < BossChance(streak, fullMoon)
}

// Body weights are determined by u^k, where u is a random value between
// 0 and 1 and k is the weight bias of the species. A higher k means the
// fish tend to be lighter, whereas k = 1 is a uniform distribution.
func (p *Picker) RollKg(sp Species) float64 {
	min, max := sp.MinKg, sp.MaxKg
	if max < min {
		max = min
	}
	u := p.rng.Float64()
	k := sp.KgBias
	if k < 1 {
		k = 1
	}
	scaled := math.Pow(u, k)
	kg := min + (max-min)*scaled

	// weights are rounded to 100 g
	return math.Round(kg*10) / 10
}

// RollBossKg rolls the outsized body weight of a landed boss.
func (p *Picker) RollBossKg() float64 {
	return float64(1000 + p.rng.Intn(9001))
}

// Roll exposes a bare probability check for session-level chances
// (treasure hunts, key drops, jackpots).
func (p *Picker) Roll(chance float64) bool {
	return p.rng.Float64() < chance
}

// Intn mirrors math/rand for session-level ranges.
func (p *Picker) Intn(n int) int { return p.rng.Intn(n) }
