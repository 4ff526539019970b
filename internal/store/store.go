package store

import (
	"context"
	"time"

	"github.com/mossreef/angler/internal/fish"
)

// PlayerRow is the single persisted player record. The game session
// owns the richer state type and converts at the boundary.
type PlayerRow struct {
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

type DiscoveryRow struct {
	Zone     string
	Key      string
	Name     string
	Tier     fish.RarityTier
	Count    int
	MaxKg    float64
	MaxValue float64
}

type QuestRow struct {
	Zone       string
	Idx        int
	Kind       int
	TargetKey  string
	TargetName string
	Tier       int
	Amount     int
	Progress   int
	Reward     int
}

type TrapRow struct {
	Id       string
	Zone     string
	Bait     string
	SetAt    time.Time
	Capacity int
	Caught   int
}

type Store interface {
	LoadPlayer(ctx context.Context) (PlayerRow, bool, error)
	SavePlayer(ctx context.Context, p PlayerRow) error

	AddCatch(ctx context.Context, c fish.Catch) (int64, error)
	Inventory(ctx context.Context) ([]fish.Catch, error)
	RemoveCatches(ctx context.Context, ids []int64) error
	ClearInventory(ctx context.Context) error

	RecordDiscovery(ctx context.Context, c fish.Catch) error
	Discovered(ctx context.Context, zone string) (map[string]DiscoveryRow, error)

	ReplaceQuests(ctx context.Context, rows []QuestRow) error
	LoadQuests(ctx context.Context) ([]QuestRow, error)

	ReplaceTraps(ctx context.Context, rows []TrapRow) error
	LoadTraps(ctx context.Context) ([]TrapRow, error)

	Close() error
}
