package quest

import (
	"fmt"

	"github.com/mossreef/angler/internal/fish"
)

type Kind int

const (
	// KindSpecies asks for N of one species, KindTier for N fish of a
	// rarity tier.
	KindSpecies Kind = iota + 1
	KindTier
)

type Quest struct {
	Kind       Kind
	Zone       string
	TargetKey  string
	TargetName string
	Tier       fish.RarityTier
	Amount     int
	Progress   int
	Reward     int
}

func (q Quest) Completed() bool {
	return q.Progress >= q.Amount
}

func (q Quest) Describe() string {
	if q.Kind == KindSpecies {
		return fmt.Sprintf("Catch %d %s", q.Amount, q.TargetName)
	}
	return fmt.Sprintf("Catch %d %s fish", q.Amount, q.Tier)
}

// RewardXP is paid alongside the coin reward on claim.
func (q Quest) RewardXP() int {
	return q.Reward / 2
}

// Coin reward per required catch, by tier.
func baseValue(t fish.RarityTier) int {
	switch t {
	case fish.TierLegendary:
		return 500
	case fish.TierMythical:
		return 200
	case fish.TierEpic:
		return 175
	case fish.TierRare:
		return 100
	case fish.TierUncommon:
		return 20
	default:
		return 10
	}
}
