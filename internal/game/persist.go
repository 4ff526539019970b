package game

import (
	"github.com/mossreef/angler/internal/fish"
	"github.com/mossreef/angler/internal/quest"
	"github.com/mossreef/angler/internal/store"
	"github.com/mossreef/angler/internal/trap"
)

// Tiers cross the store boundary as small ints so the schema never
// depends on display strings.
var tierCodes = []fish.RarityTier{
	fish.TierCommon,
	fish.TierUncommon,
	fish.TierRare,
	fish.TierEpic,
	fish.TierLegendary,
	fish.TierMythical,
	fish.TierExotic,
	fish.TierBoss,
}

func tierCode(t fish.RarityTier) int {
	for i, c := range tierCodes {
		if c == t {
			return i
		}
	}
	return 0
}

func tierFromCode(code int) fish.RarityTier {
	if code < 0 || code >= len(tierCodes) {
		return fish.TierCommon
	}
	return tierCodes[code]
}

func questRows(quests []quest.Quest) []store.QuestRow {
	rows := make([]store.QuestRow, 0, len(quests))
	perZone := make(map[string]int)
	for _, q := range quests {
		rows = append(rows, store.QuestRow{
			Zone:       q.Zone,
			Idx:        perZone[q.Zone],
			Kind:       int(q.Kind),
			TargetKey:  q.TargetKey,
			TargetName: q.TargetName,
			Tier:       tierCode(q.Tier),
			Amount:     q.Amount,
			Progress:   q.Progress,
			Reward:     q.Reward,
		})
		perZone[q.Zone]++
	}
	return rows
}

func questsFromRows(rows []store.QuestRow) []quest.Quest {
	quests := make([]quest.Quest, 0, len(rows))
	for _, r := range rows {
		quests = append(quests, quest.Quest{
			Kind:       quest.Kind(r.Kind),
			Zone:       r.Zone,
			TargetKey:  r.TargetKey,
			TargetName: r.TargetName,
			Tier:       tierFromCode(r.Tier),
			Amount:     r.Amount,
			Progress:   r.Progress,
			Reward:     r.Reward,
		})
	}
	return quests
}

func trapRows(traps []trap.Trap) []store.TrapRow {
	rows := make([]store.TrapRow, 0, len(traps))
	for _, t := range traps {
		rows = append(rows, store.TrapRow{
			Id:       t.Id,
			Zone:     t.Zone,
			Bait:     string(t.Bait),
			SetAt:    t.SetAt,
			Capacity: t.Capacity,
			Caught:   t.Caught,
		})
	}
	return rows
}

func trapsFromRows(rows []store.TrapRow) []trap.Trap {
	traps := make([]trap.Trap, 0, len(rows))
	for _, r := range rows {
		traps = append(traps, trap.Trap{
			Id:       r.Id,
			Zone:     r.Zone,
			Bait:     trap.Bait(r.Bait),
			SetAt:    r.SetAt,
			Capacity: r.Capacity,
			Caught:   r.Caught,
		})
	}
	return traps
}
