package quest

import (
	"fmt"
	mrand "math/rand"

	"github.com/mossreef/angler/internal/fish"
)

// QuestsPerZone is the fixed board size; claiming a quest immediately
// generates its replacement so a zone never drops below this.
const QuestsPerZone = 10

type Log struct {
	reg   *fish.Registry
	rng   *mrand.Rand
	zones map[string][]Quest
}

// NewLog restores a log from saved quests and tops every zone board up
// to QuestsPerZone.
func NewLog(reg *fish.Registry, rng *mrand.Rand, saved []Quest) *Log {
	l := &Log{
		reg:   reg,
		rng:   rng,
		zones: make(map[string][]Quest),
	}
	for _, q := range saved {
		if _, ok := reg.Zone(q.Zone); !ok {
			continue
		}
		if len(l.zones[q.Zone]) >= QuestsPerZone {
			continue
		}
		l.zones[q.Zone] = append(l.zones[q.Zone], q)
	}
	for _, z := range reg.Zones() {
		for len(l.zones[z.Name]) < QuestsPerZone {
			l.zones[z.Name] = append(l.zones[z.Name], l.Generate(z.Name))
		}
	}
	return l
}

func (l *Log) ZoneQuests(zone string) []Quest {
	out := make([]Quest, len(l.zones[zone]))
	copy(out, l.zones[zone])
	return out
}

// All flattens the log for persistence, in zone catalog order.
func (l *Log) All() []Quest {
	var out []Quest
	for _, z := range l.reg.Zones() {
		out = append(out, l.zones[z.Name]...)
	}
	return out
}

// Generate rolls a fresh quest for the zone. Bosses and exotics never
// appear as targets; Legendary requirements are capped low.
func (l *Log) Generate(zone string) Quest {
	z, ok := l.reg.Zone(zone)
	if !ok {
		return Quest{Kind: KindSpecies, Zone: zone, TargetName: "Carp", Amount: 1, Reward: 10}
	}

	candidates := make([]fish.Species, 0, z.Count())
	for _, sp := range z.All() {
		if sp.Tier == fish.TierExotic || sp.Tier == fish.TierBoss {
			continue
		}
		candidates = append(candidates, sp)
	}
	if len(candidates) == 0 {
		return Quest{Kind: KindSpecies, Zone: zone, TargetName: "Carp", Amount: 1, Reward: 10}
	}

	q := Quest{Zone: zone, Amount: 1 + l.rng.Intn(15)}
	if l.rng.Intn(2) == 0 {
		sp := candidates[l.rng.Intn(len(candidates))]
		q.Kind = KindSpecies
		q.TargetKey = sp.Key
		q.TargetName = sp.Name
		q.Tier = sp.Tier
	} else {
		tiers := make([]fish.RarityTier, 0, 8)
		seen := make(map[fish.RarityTier]bool)
		for _, sp := range candidates {
			if !seen[sp.Tier] {
				seen[sp.Tier] = true
				tiers = append(tiers, sp.Tier)
			}
		}
		q.Kind = KindTier
		q.Tier = tiers[l.rng.Intn(len(tiers))]
	}

	if q.Tier == fish.TierLegendary && q.Amount > 5 {
		q.Amount = 5
	}
	q.Reward = baseValue(q.Tier) * q.Amount
	return q
}

// Record bumps every matching, unfinished quest in the zone and returns
// one progress note per bump.
func (l *Log) Record(zone, speciesName string, tier fish.RarityTier) []string {
	var notes []string
	quests := l.zones[zone]
	for i := range quests {
		q := &quests[i]
		if q.Completed() {
			continue
		}
		switch q.Kind {
		case KindSpecies:
			if q.TargetName != speciesName {
				continue
			}
		case KindTier:
			if q.Tier != tier {
				continue
			}
		}
		q.Progress++
		notes = append(notes, fmt.Sprintf("Quest update: %s (%d/%d)", q.Describe(), q.Progress, q.Amount))
	}
	return notes
}

// Claim pays out a finished quest and swaps in a fresh one. It returns
// the claimed quest and false when the index is invalid or unfinished.
func (l *Log) Claim(zone string, idx int) (Quest, bool) {
	quests := l.zones[zone]
	if idx < 0 || idx >= len(quests) {
		return Quest{}, false
	}
	q := quests[idx]
	if !q.Completed() {
		return Quest{}, false
	}
	quests[idx] = l.Generate(zone)
	return q, true
}
