package fish

import (
	mrand "math/rand"
	"testing"
)

func testZone(t *testing.T) *Zone {
	t.Helper()
	z, err := buildZone(zoneJSON{
		Name:         "Testwater",
		CatchZoneLen: 5,
		SpeedDiv:     1,
		Boss:         bossJSON{Name: "Test King", Price: 1000, XP: 6000, Warning: "!"},
		Species: []speciesJSON{
			{Key: "minnow", Name: "Minnow", Rarity: "Common", Price: 1, XP: 5, MinKg: 0.5, MaxKg: 2.5},
			{Key: "perch", Name: "Perch", Rarity: "Uncommon", Price: 5, XP: 7, MinKg: 1, MaxKg: 4},
			{Key: "pike", Name: "Pike", Rarity: "Rare", Price: 10, XP: 10, MinKg: 2, MaxKg: 6},
			{Key: "sturgeon", Name: "Sturgeon", Rarity: "Legendary", Price: 50, XP: 50, MinKg: 5, MaxKg: 12},
			{Key: "nightcat", Name: "Night Catfish", Rarity: "Rare", Price: 10, XP: 10, MinKg: 2, MaxKg: 6, Times: []string{"Night"}},
			{Key: "springling", Name: "Springling", Rarity: "Common", Price: 2, XP: 5, MinKg: 0.5, MaxKg: 2, Seasons: []string{"Spring"}},
		},
	})
	if err != nil {
		t.Fatalf("buildZone: %v", err)
	}
	return z
}

func TestDrawRespectsGates(t *testing.T) {
	z := testZone(t)
	p := NewPicker(mrand.New(mrand.NewSource(1)))

	for i := 0; i < 500; i++ {
		sp := p.Draw(z, DrawConfig{TimeOfDay: "Day", Season: "Winter"})
		if sp.Key == "nightcat" {
			t.Fatal("night-gated species drawn during the day")
		}
		if sp.Key == "springling" {
			t.Fatal("spring-gated species drawn in winter")
		}
	}
}

func TestDrawExcludesExoticsByDefault(t *testing.T) {
	z := testZone(t)
	exotics := []Species{{Key: "phantom", Name: "Phantom Shark", Tier: TierExotic, Weight: 1, Price: 100, XP: 1000}}
	p := NewPicker(mrand.New(mrand.NewSource(2)))

	for i := 0; i < 500; i++ {
		sp := p.Draw(z, DrawConfig{TimeOfDay: "Day", Season: "Summer", Exotics: exotics})
		if sp.Tier == TierExotic {
			t.Fatal("exotic drawn without AllowExotic")
		}
	}
}

func TestDrawAdmitsExoticsWhenAllowed(t *testing.T) {
	z := testZone(t)
	exotics := []Species{{Key: "phantom", Name: "Phantom Shark", Tier: TierExotic, Weight: 1, Price: 100, XP: 1000}}
	p := NewPicker(mrand.New(mrand.NewSource(3)))

	seen := false
	for i := 0; i < 5000 && !seen; i++ {
		sp := p.Draw(z, DrawConfig{TimeOfDay: "Day", Season: "Summer", AllowExotic: true, Exotics: exotics, Streak: 20})
		seen = sp.Tier == TierExotic
	}
	if !seen {
		t.Fatal("exotic never drawn with AllowExotic and a long streak")
	}
}

func TestDrawSaturatedBonusAlwaysRare(t *testing.T) {
	z := testZone(t)
	p := NewPicker(mrand.New(mrand.NewSource(4)))

	// base share + RareBonus(14) exceeds 1, so every draw must come
	// from the rare pool.
	for i := 0; i < 200; i++ {
		sp := p.Draw(z, DrawConfig{TimeOfDay: "Day", Season: "Summer", Streak: 14})
		if !sp.Tier.IsRarePool() {
			t.Fatalf("draw %d returned %s (%s) despite saturated rare chance", i, sp.Name, sp.Tier)
		}
	}
}

func TestDrawStreakRaisesRareRate(t *testing.T) {
	z := testZone(t)

	rareShare := func(streak int, seed int64) float64 {
		p := NewPicker(mrand.New(mrand.NewSource(seed)))
		rare := 0
		const n = 4000
		for i := 0; i < n; i++ {
			if p.Draw(z, DrawConfig{TimeOfDay: "Day", Season: "Summer", Streak: streak}).Tier.IsRarePool() {
				rare++
			}
		}
		return float64(rare) / n
	}

	cold := rareShare(0, 5)
	hot := rareShare(4, 5)
	// streak 4 adds +20 points of rare chance; allow sampling slack
	if hot-cold < 0.12 {
		t.Errorf("rare share rose only %.3f (%.3f -> %.3f), expected ~0.20", hot-cold, cold, hot)
	}
}

func TestRollKgStaysInRange(t *testing.T) {
	p := NewPicker(mrand.New(mrand.NewSource(6)))
	sp := Species{MinKg: 2, MaxKg: 6, KgBias: 2.5}
	for i := 0; i < 1000; i++ {
		kg := p.RollKg(sp)
		if kg < sp.MinKg || kg > sp.MaxKg {
			t.Fatalf("RollKg = %v outside [%v, %v]", kg, sp.MinKg, sp.MaxKg)
		}
	}
}

func TestRollBossKgRange(t *testing.T) {
	p := NewPicker(mrand.New(mrand.NewSource(7)))
	for i := 0; i < 1000; i++ {
		kg := p.RollBossKg()
		if kg < 1000 || kg > 10000 {
			t.Fatalf("RollBossKg = %v outside [1000, 10000]", kg)
		}
	}
}
