package game

import "github.com/mossreef/angler/internal/store"

const MaxLevel = 100

// State is the in-memory player record; the store keeps the durable
// copy plus inventory, discovery, quests and traps.
type State struct {
	Balance   float64
	XP        int
	Level     int
	Streak    int
	Zone      string
	FastPrice float64

	HasBoat        bool
	HasSubmarine   bool
	HasTorch       bool
	HasTrenchPass  bool
	HasAncientPass bool
	HasAncientKey  bool
	HasFloatingKey bool

	Hour          int
	Day           int
	MoonEvent     string
	DailyEvent    string
	DailyEventDay int

	FloatingDay     int
	FloatingToday   bool
	FloatingVisible bool

	TrapStock    int
	BaitNormal   int
	BaitAdvanced int
	BaitExpert   int
	BaitLegend   int
}

func NewState(startingBalance, fastBasePrice float64) *State {
	return &State{
		Balance:   startingBalance,
		Zone:      "Lake",
		FastPrice: fastBasePrice,
	}
}

// XPForLevel is the experience needed to leave the given level.
func XPForLevel(level int) int {
	if level == 0 {
		return 100
	}
	return 100 + level*100
}

// AddXP applies experience and rolls levels over, returning how many
// levels were gained. Level 100 is the cap; residual XP is zeroed there.
func (s *State) AddXP(xp int) int {
	s.XP += xp
	gained := 0
	for s.Level < MaxLevel {
		need := XPForLevel(s.Level)
		if s.XP < need {
			break
		}
		s.XP -= need
		s.Level++
		gained++
	}
	if s.Level >= MaxLevel {
		s.Level = MaxLevel
		s.XP = 0
	}
	return gained
}

// HasItem reports whether the unlock named by a zone's catalog entry is
// owned.
func (s *State) HasItem(key string) bool {
	switch key {
	case "":
		return true
	case "boat":
		return s.HasBoat
	case "submarine":
		return s.HasSubmarine
	case "torch":
		return s.HasTorch
	case "upgrade01":
		return s.HasTrenchPass
	case "upgrade02":
		return s.HasAncientPass
	case "floating-key":
		return s.HasFloatingKey
	}
	return false
}

func (s *State) BaitCount(bait string) int {
	switch bait {
	case "normal":
		return s.BaitNormal
	case "advanced":
		return s.BaitAdvanced
	case "expert":
		return s.BaitExpert
	case "legend":
		return s.BaitLegend
	}
	return 0
}

func (s *State) AddBait(bait string, n int) {
	switch bait {
	case "normal":
		s.BaitNormal += n
	case "advanced":
		s.BaitAdvanced += n
	case "expert":
		s.BaitExpert += n
	case "legend":
		s.BaitLegend += n
	}
}

func (s *State) Row() store.PlayerRow {
	return store.PlayerRow{
		Balance:         s.Balance,
		XP:              s.XP,
		Level:           s.Level,
		Streak:          s.Streak,
		Zone:            s.Zone,
		FastPrice:       s.FastPrice,
		HasBoat:         s.HasBoat,
		HasSubmarine:    s.HasSubmarine,
		HasTorch:        s.HasTorch,
		HasTrenchPass:   s.HasTrenchPass,
		HasAncientPass:  s.HasAncientPass,
		HasAncientKey:   s.HasAncientKey,
		HasFloatingKey:  s.HasFloatingKey,
		Hour:            s.Hour,
		Day:             s.Day,
		MoonEvent:       s.MoonEvent,
		DailyEvent:      s.DailyEvent,
		DailyEventDay:   s.DailyEventDay,
		FloatingDay:     s.FloatingDay,
		FloatingToday:   s.FloatingToday,
		FloatingVisible: s.FloatingVisible,
		TrapStock:       s.TrapStock,
		BaitNormal:      s.BaitNormal,
		BaitAdvanced:    s.BaitAdvanced,
		BaitExpert:      s.BaitExpert,
		BaitLegend:      s.BaitLegend,
	}
}

func StateFromRow(r store.PlayerRow) *State {
	return &State{
		Balance:         r.Balance,
		XP:              r.XP,
		Level:           r.Level,
		Streak:          r.Streak,
		Zone:            r.Zone,
		FastPrice:       r.FastPrice,
		HasBoat:         r.HasBoat,
		HasSubmarine:    r.HasSubmarine,
		HasTorch:        r.HasTorch,
		HasTrenchPass:   r.HasTrenchPass,
		HasAncientPass:  r.HasAncientPass,
		HasAncientKey:   r.HasAncientKey,
		HasFloatingKey:  r.HasFloatingKey,
		Hour:            r.Hour,
		Day:             r.Day,
		MoonEvent:       r.MoonEvent,
		DailyEvent:      r.DailyEvent,
		DailyEventDay:   r.DailyEventDay,
		FloatingDay:     r.FloatingDay,
		FloatingToday:   r.FloatingToday,
		FloatingVisible: r.FloatingVisible,
		TrapStock:       r.TrapStock,
		BaitNormal:      r.BaitNormal,
		BaitAdvanced:    r.BaitAdvanced,
		BaitExpert:      r.BaitExpert,
		BaitLegend:      r.BaitLegend,
	}
}
