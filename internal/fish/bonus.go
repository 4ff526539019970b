package fish

import "math"

// Streak bonuses are additive per point of streak, with the per-point
// rate set by the bracket the point falls in. A streak of 6 earns the
// 1-4 rate four times and the 5-9 rate twice.
type bracket struct {
	lo, hi int
	rare   float64
	boss   float64
}

var brackets = []bracket{
	{1, 4, 0.05, 0.002},
	{5, 9, 0.06, 0.0025},
	{10, math.MaxInt, 0.07, 0.003},
}

// BaseBossChance is the flat chance of a boss encounter before streak
// bonuses apply.
const BaseBossChance = 0.01

const bossChanceCap = 0.25

// RareBonus is the extra probability of drawing from the rare pool at
// the given streak, before any event multiplier.
func RareBonus(streak int) float64 {
	var sum float64
	for _, b := range brackets {
		if streak < b.lo {
			break
		}
		hi := b.hi
		if streak < hi {
			hi = streak
		}
		sum += float64(hi-b.lo+1) * b.rare
	}
	return sum
}

// BossBonus is the extra boss encounter chance earned by the streak.
func BossBonus(streak int) float64 {
	var sum float64
	for _, b := range brackets {
		if streak < b.lo {
			break
		}
		hi := b.hi
		if streak < hi {
			hi = streak
		}
		sum += float64(hi-b.lo+1) * b.boss
	}
	return sum
}

// BossChance combines the base chance, the streak bonus, and the full
// moon surge. The result is capped so long streaks cannot turn every
// cast into a boss fight.
func BossChance(streak int, fullMoon bool) float64 {
	c := BaseBossChance + BossBonus(streak)
	if fullMoon {
		c += 0.10
	}
	return math.Min(c, bossChanceCap)
}
