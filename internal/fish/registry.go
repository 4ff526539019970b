package fish

import (
	"encoding/json"
	"fmt"
	"os"
)

type SpeciesId int

type Species struct {
	Id      SpeciesId
	Key     string // stable string id if we decide to rename the fish
	Name    string
	Tier    RarityTier
	Weight  int     // spawn weight (higher = more common)
	MinKg   float64 // body weight range in kg
	MaxKg   float64
	KgBias  float64 // 1.0 is uniform, >1 means heavier is rarer
	Price   float64 // per-kg sale price before zone pricing
	XP      int
	Times   []string // time-of-day gates, empty = any
	Seasons []string // season gates, empty = any
}

// Boss is the per-zone pseudo-species drawn by the resolver, never by
// normal weighting.
type Boss struct {
	Name    string
	Price   float64
	XP      int
	Warning string
}

type Zone struct {
	Name         string
	CatchZoneLen int     // cells of the timing track that count as a hit
	SpeedDiv     float64 // pointer speed divisor, higher = faster
	TierPricing  bool    // apply per-tier price multipliers (Sea)
	Unlock       string  // shop item key required, "" = always open
	Boss         Boss

	byId  []Species
	byKey map[string]SpeciesId
}

type Registry struct {
	zones   []*Zone
	byName  map[string]*Zone
	exotics []Species
}

type speciesJSON struct {
	Key     string   `json:"key"`
	Name    string   `json:"name"`
	Rarity  string   `json:"rarity"`
	Weight  int      `json:"weight"`
	MinKg   float64  `json:"minKg"`
	MaxKg   float64  `json:"maxKg"`
	KgBias  float64  `json:"kgBias"`
	Price   float64  `json:"price"`
	XP      int      `json:"xp"`
	Times   []string `json:"timeOfDay"`
	Seasons []string `json:"seasons"`
}

type bossJSON struct {
	Name    string  `json:"name"`
	Price   float64 `json:"price"`
	XP      int     `json:"xp"`
	Warning string  `json:"warning"`
}

type zoneJSON struct {
	Name         string        `json:"name"`
	CatchZoneLen int           `json:"catchZoneLen"`
	SpeedDiv     float64       `json:"speedDiv"`
	TierPricing  bool          `json:"tierPricing"`
	Unlock       string        `json:"unlock"`
	Boss         bossJSON      `json:"boss"`
	Species      []speciesJSON `json:"species"`
}

type catalogJSON struct {
	Zones   []zoneJSON    `json:"zones"`
	Exotics []speciesJSON `json:"exotics"`
}

func LoadRegistryFromJSON(path string) (*Registry, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cat catalogJSON
	if err := json.Unmarshal(raw, &cat); err != nil {
		return nil, err
	}
	if len(cat.Zones) == 0 {
		return nil, fmt.Errorf("zone list is empty")
	}

	reg := &Registry{byName: make(map[string]*Zone, len(cat.Zones))}
	for _, zj := range cat.Zones {
		z, err := buildZone(zj)
		if err != nil {
			return nil, fmt.Errorf("zone %q: %w", zj.Name, err)
		}
		if _, dup := reg.byName[z.Name]; dup {
			return nil, fmt.Errorf("duplicate zone %q", z.Name)
		}
		reg.zones = append(reg.zones, z)
		reg.byName[z.Name] = z
	}

	for i, sj := range cat.Exotics {
		sp, err := buildSpecies(SpeciesId(i), sj)
		if err != nil {
			return nil, fmt.Errorf("exotics: %w", err)
		}
		if sp.Tier != TierExotic {
			return nil, fmt.Errorf("exotics: %q is not Exotic", sp.Name)
		}
		reg.exotics = append(reg.exotics, sp)
	}

	return reg, nil
}

func buildZone(zj zoneJSON) (*Zone, error) {
	if zj.Name == "" {
		return nil, fmt.Errorf("missing name")
	}
	if len(zj.Species) == 0 {
		return nil, fmt.Errorf("species list is empty")
	}
	if zj.CatchZoneLen < 1 {
		return nil, fmt.Errorf("catchZoneLen must be >= 1")
	}
	if zj.SpeedDiv <= 0 {
		zj.SpeedDiv = 1
	}
	if zj.Boss.Name == "" {
		return nil, fmt.Errorf("missing boss")
	}

	z := &Zone{
		Name:         zj.Name,
		CatchZoneLen: zj.CatchZoneLen,
		SpeedDiv:     zj.SpeedDiv,
		TierPricing:  zj.TierPricing,
		Unlock:       zj.Unlock,
		Boss:         Boss(zj.Boss),
		byId:         make([]Species, 0, len(zj.Species)),
		byKey:        make(map[string]SpeciesId, len(zj.Species)),
	}

	for i, sj := range zj.Species {
		sp, err := buildSpecies(SpeciesId(i), sj)
		if err != nil {
			return nil, err
		}
		if sp.Tier == TierBoss {
			return nil, fmt.Errorf("species %q: bosses belong in the boss block", sp.Name)
		}
		if _, dup := z.byKey[sp.Key]; dup {
			return nil, fmt.Errorf("duplicate key %q", sp.Key)
		}
		z.byId = append(z.byId, sp)
		z.byKey[sp.Key] = sp.Id
	}
	return z, nil
}

func buildSpecies(id SpeciesId, sj speciesJSON) (Species, error) {
	if sj.Key == "" {
		return Species{}, fmt.Errorf("missing key at index %d", id)
	}
	tier, err := ParseTier(sj.Rarity)
	if err != nil {
		return Species{}, fmt.Errorf("species %q: %w", sj.Key, err)
	}
	if sj.Weight < 1 {
		sj.Weight = SpawnWeight(tier)
	}
	if sj.MaxKg < sj.MinKg {
		sj.MaxKg = sj.MinKg
	}
	if sj.KgBias < 1 {
		sj.KgBias = 1
	}
	return Species{
		Id:      id,
		Key:     sj.Key,
		Name:    sj.Name,
		Tier:    tier,
		Weight:  sj.Weight,
		MinKg:   sj.MinKg,
		MaxKg:   sj.MaxKg,
		KgBias:  sj.KgBias,
		Price:   sj.Price,
		XP:      sj.XP,
		Times:   sj.Times,
		Seasons: sj.Seasons,
	}, nil
}

func (r *Registry) Zone(name string) (*Zone, bool) {
	z, ok := r.byName[name]
	return z, ok
}

// Zones preserves catalog order, which doubles as menu order.
func (r *Registry) Zones() []*Zone {
	out := make([]*Zone, len(r.zones))
	copy(out, r.zones)
	return out
}

// Exotics are full-moon visitors shared by every zone.
func (r *Registry) Exotics() []Species {
	out := make([]Species, len(r.exotics))
	copy(out, r.exotics)
	return out
}

func (z *Zone) GetById(id SpeciesId) (Species, bool) {
	if int(id) < 0 || int(id) >= len(z.byId) {
		return Species{}, false
	}
	return z.byId[id], true
}

func (z *Zone) IdByKey(key string) (SpeciesId, bool) {
	id, ok := z.byKey[key]
	return id, ok
}

func (z *Zone) All() []Species {
	out := make([]Species, len(z.byId))
	copy(out, z.byId)
	return out
}

func (z *Zone) Count() int { return len(z.byId) }

// Per-tier sale multipliers for zones that price by rarity.
var tierPriceScale = map[RarityTier]float64{
	TierUncommon:  1.25,
	TierRare:      2,
	TierEpic:      3,
	TierLegendary: 5,
	TierMythical:  7,
}

// PriceOf resolves the per-kg sale price of a species in this zone.
func (z *Zone) PriceOf(sp Species) float64 {
	if !z.TierPricing {
		return sp.Price
	}
	scale, ok := tierPriceScale[sp.Tier]
	if !ok {
		scale = 1
	}
	return sp.Price * scale
}
