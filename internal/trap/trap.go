package trap

import (
	"time"

	"github.com/google/uuid"

	"github.com/mossreef/angler/internal/fish"
)

// Traps run on wall-clock time so they keep working between sessions.
const (
	Duration  = 24 * time.Hour
	Overdue   = 12 * time.Hour
	MaxActive = 10
	Capacity  = 50
)

type Bait string

const (
	BaitNormal   Bait = "normal"
	BaitAdvanced Bait = "advanced"
	BaitExpert   Bait = "expert"
	BaitLegend   Bait = "legend"
)

var BaitOrder = []Bait{BaitNormal, BaitAdvanced, BaitExpert, BaitLegend}

func (b Bait) Label() string {
	switch b {
	case BaitAdvanced:
		return "Advanced Bait"
	case BaitExpert:
		return "Expert Bait"
	case BaitLegend:
		return "Legend Bait"
	default:
		return "Normal Bait"
	}
}

// Tiers a bait attracts. Legend bait is special-cased in Resolve.
func (b Bait) Tiers() []fish.RarityTier {
	switch b {
	case BaitAdvanced:
		return []fish.RarityTier{fish.TierRare, fish.TierEpic}
	case BaitExpert:
		return []fish.RarityTier{fish.TierLegendary, fish.TierMythical}
	default:
		return []fish.RarityTier{fish.TierCommon, fish.TierUncommon}
	}
}

// Shop prices in coins.
var Prices = map[string]float64{
	"trap":               1500,
	string(BaitNormal):   1000,
	string(BaitAdvanced): 5000,
	string(BaitExpert):   100000,
	string(BaitLegend):   1500000,
}

type Status int

const (
	StatusSoaking Status = iota
	StatusReady
	StatusBroken
)

type Trap struct {
	Id       string
	Zone     string
	Bait     Bait
	SetAt    time.Time
	Capacity int
	Caught   int
}

func New(zone string, bait Bait, now time.Time) Trap {
	return Trap{
		Id:       uuid.NewString(),
		Zone:     zone,
		Bait:     bait,
		SetAt:    now,
		Capacity: Capacity,
	}
}

func (t Trap) StatusAt(now time.Time) Status {
	elapsed := now.Sub(t.SetAt)
	switch {
	case elapsed >= Duration+Overdue:
		return StatusBroken
	case elapsed >= Duration:
		return StatusReady
	default:
		return StatusSoaking
	}
}

func (t Trap) RemainingAt(now time.Time) time.Duration {
	rem := Duration - now.Sub(t.SetAt)
	if rem < 0 {
		return 0
	}
	return rem
}
