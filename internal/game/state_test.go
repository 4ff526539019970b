package game

import "testing"

func TestXPForLevelCurve(t *testing.T) {
	cases := []struct {
		level int
		want  int
	}{
		{0, 100},
		{1, 200},
		{2, 300},
		{10, 1100},
		{99, 10000},
	}
	for _, c := range cases {
		if got := XPForLevel(c.level); got != c.want {
			t.Errorf("XPForLevel(%d) = %d, want %d", c.level, got, c.want)
		}
	}
}

func TestAddXPLevelsUp(t *testing.T) {
	s := NewState(100, 15)
	if gained := s.AddXP(99); gained != 0 {
		t.Errorf("gained %d levels on 99 xp, want 0", gained)
	}
	if gained := s.AddXP(1); gained != 1 {
		t.Errorf("gained %d levels, want 1", gained)
	}
	if s.Level != 1 || s.XP != 0 {
		t.Errorf("got level %d xp %d, want level 1 xp 0", s.Level, s.XP)
	}
}

func TestAddXPRollsOverMultipleLevels(t *testing.T) {
	s := NewState(100, 15)
	// 100 + 200 + 300 = 600 clears three levels with 50 left over
	if gained := s.AddXP(650); gained != 3 {
		t.Errorf("gained %d levels, want 3", gained)
	}
	if s.Level != 3 || s.XP != 50 {
		t.Errorf("got level %d xp %d, want level 3 xp 50", s.Level, s.XP)
	}
}

func TestAddXPCapsAtMaxLevel(t *testing.T) {
	s := NewState(100, 15)
	s.Level = MaxLevel - 1
	s.AddXP(1_000_000)
	if s.Level != MaxLevel {
		t.Errorf("level = %d, want %d", s.Level, MaxLevel)
	}
	if s.XP != 0 {
		t.Errorf("xp = %d, want 0 at the cap", s.XP)
	}
	if gained := s.AddXP(500); gained != 0 {
		t.Errorf("gained %d levels past the cap", gained)
	}
}

func TestHasItem(t *testing.T) {
	s := NewState(100, 15)
	if !s.HasItem("") {
		t.Error("empty unlock should always be owned")
	}
	if s.HasItem("boat") {
		t.Error("boat owned on a fresh state")
	}
	s.HasBoat = true
	if !s.HasItem("boat") {
		t.Error("boat not owned after setting the flag")
	}
	if s.HasItem("jetpack") {
		t.Error("unknown item reported as owned")
	}
}

func TestRowRoundTrip(t *testing.T) {
	s := NewState(100, 15)
	s.Balance = 1234.5
	s.Level = 7
	s.Streak = 3
	s.Zone = "Sea"
	s.HasBoat = true
	s.MoonEvent = MoonFullEvent
	s.TrapStock = 2
	s.BaitLegend = 1

	back := StateFromRow(s.Row())
	if *back != *s {
		t.Errorf("round trip mismatch:\n got %+v\nwant %+v", back, s)
	}
}
