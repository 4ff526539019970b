package fish

import "fmt"

type RarityTier int

const (
	TierCommon RarityTier = iota
	TierUncommon
	TierRare
	TierEpic
	TierLegendary
	TierMythical
	TierExotic
	TierBoss
)

func (t RarityTier) String() string {
	switch t {
	case TierBoss:
		return "???"
	case TierExotic:
		return "Exotic"
	case TierMythical:
		return "Mythical"
	case TierLegendary:
		return "Legendary"
	case TierEpic:
		return "Epic"
	case TierRare:
		return "Rare"
	case TierUncommon:
		return "Uncommon"
	default:
		return "Common"
	}
}

func ParseTier(s string) (RarityTier, error) {
	switch s {
	case "Common":
		return TierCommon, nil
	case "Uncommon":
		return TierUncommon, nil
	case "Rare":
		return TierRare, nil
	case "Epic":
		return TierEpic, nil
	case "Legendary":
		return TierLegendary, nil
	case "Mythical":
		return TierMythical, nil
	case "Exotic":
		return TierExotic, nil
	case "???":
		return TierBoss, nil
	}
	return TierCommon, fmt.Errorf("unknown rarity tier %q", s)
}

// IsRarePool reports whether the tier belongs to the rare half of the
// two-stage draw, the half that streak bonuses inflate.
func (t RarityTier) IsRarePool() bool {
	switch t {
	case TierRare, TierEpic, TierLegendary, TierMythical, TierExotic:
		return true
	}
	return false
}

// XPForTier is the experience granted by a regular catch. Bosses carry
// their own XP in the catalog.
func XPForTier(t RarityTier) int {
	switch t {
	case TierExotic:
		return 100000
	case TierMythical, TierLegendary:
		return 1000
	case TierEpic:
		return 100
	case TierRare:
		return 30
	case TierUncommon:
		return 10
	default:
		return 5
	}
}

// XPOf resolves a species' catch award, falling back to the tier
// default when the catalog doesn't set one.
func XPOf(sp Species) int {
	if sp.XP > 0 {
		return sp.XP
	}
	return XPForTier(sp.Tier)
}

// SpawnWeight is the base draw weight for a tier (higher = more common).
func SpawnWeight(t RarityTier) int {
	switch t {
	case TierCommon:
		return 5
	case TierUncommon:
		return 3
	case TierRare:
		return 2
	default:
		return 1
	}
}
