package game

import (
	"context"
	"fmt"
	"math"
	mrand "math/rand"
	"time"

	"github.com/mossreef/angler/internal/config"
	"github.com/mossreef/angler/internal/fish"
	"github.com/mossreef/angler/internal/quest"
	"github.com/mossreef/angler/internal/store"
	"github.com/mossreef/angler/internal/trap"
)

// Game ties the catalog, player state, quest log, traps and store into
// one turn-based session. Methods mutate state and persist before
// returning; the UI layer only renders and forwards input.
type Game struct {
	Reg    *fish.Registry
	State  *State
	Quests *quest.Log
	Traps  []trap.Trap
	Store  store.Store
	Tuning config.Tuning

	picker *fish.Picker
	rng    *mrand.Rand
	now    func() time.Time
}

// New restores a session from the store, or starts a fresh one when no
// player row exists yet.
func New(ctx context.Context, reg *fish.Registry, st store.Store, tuning config.Tuning, rng *mrand.Rand) (*Game, error) {
	if rng == nil {
		rng = mrand.New(mrand.NewSource(time.Now().UnixNano()))
	}

	row, found, err := st.LoadPlayer(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load player: %w", err)
	}
	var state *State
	if found {
		state = StateFromRow(row)
	} else {
		state = NewState(tuning.StartingBalance, tuning.FastBasePrice)
	}
	if _, ok := reg.Zone(state.Zone); !ok {
		state.Zone = reg.Zones()[0].Name
	}

	savedQuests, err := st.LoadQuests(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load quests: %w", err)
	}
	savedTraps, err := st.LoadTraps(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load traps: %w", err)
	}

	g := &Game{
		Reg:    reg,
		State:  state,
		Quests: quest.NewLog(reg, rng, questsFromRows(savedQuests)),
		Traps:  trapsFromRows(savedTraps),
		Store:  st,
		Tuning: tuning,
		picker: fish.NewPicker(rng),
		rng:    rng,
		now:    time.Now,
	}
	g.refreshFloatingIsland()
	g.rollDailyEventIfNeeded()
	return g, nil
}

func (g *Game) Zone() *fish.Zone {
	z, _ := g.Reg.Zone(g.State.Zone)
	return z
}

func (g *Game) TimeOfDay() string { return TimeOfDayAt(g.State.Hour) }
func (g *Game) Season() string    { return SeasonAt(g.State.Day) }

// UnlockedZones lists the zones the player can fish right now.
func (g *Game) UnlockedZones() []*fish.Zone {
	var out []*fish.Zone
	for _, z := range g.Reg.Zones() {
		if !g.State.HasItem(z.Unlock) {
			continue
		}
		if z.Unlock == "floating-key" && !g.State.FloatingVisible {
			continue
		}
		out = append(out, z)
	}
	return out
}

// SelectZone switches the current zone after checking its unlock.
func (g *Game) SelectZone(name string) error {
	z, ok := g.Reg.Zone(name)
	if !ok {
		return fmt.Errorf("unknown zone %q", name)
	}
	if !g.State.HasItem(z.Unlock) {
		return fmt.Errorf("you haven't unlocked %s yet", z.Name)
	}
	if z.Unlock == "floating-key" && !g.State.FloatingVisible {
		return fmt.Errorf("the Floating Island is not visible right now (12-16h only)")
	}
	g.State.Zone = z.Name
	return nil
}

// RollBite decides whether a waiting cycle produces a bite.
func (g *Game) RollBite() bool {
	return g.rng.Float64() < g.Tuning.BiteChance
}

// RollBoss decides whether this bite is a boss encounter.
func (g *Game) RollBoss() bool {
	fullMoon := g.State.MoonEvent == MoonFullEvent || g.State.DailyEvent == EventFullMoonNight
	return g.picker.RollBoss(g.State.Streak, fullMoon)
}

// NewTrack rolls one cast of the timing minigame for the current zone.
func (g *Game) NewTrack() Track {
	return NewTrack(g.rng, g.Zone().CatchZoneLen)
}

// TrackInterval is the pointer dwell for the current zone and event.
func (g *Game) TrackInterval() time.Duration {
	slow := 1.0
	if g.State.DailyEvent == EventSpeedyFisher {
		slow = g.Tuning.SpeedyFactor
	}
	return StepInterval(g.Tuning.BaseStepMs, g.Tuning.MinStepMs, g.Zone(), slow)
}

// A full moon over the Bathyal drags the exotics up from the dark:
// the bite is forced exotic, the minigame shrinks and runs ten times
// as fast, and the bodies that surface are enormous.
const (
	moonlitZone     = "Bathyal"
	moonlitZoneLen  = 2
	moonlitSpeedDiv = 10
	moonlitMinKg    = 1000
	moonlitMaxKg    = 100000
)

// MoonlitBite reports whether the next bite is a moonlit exotic
// instead of a regular cast or a boss.
func (g *Game) MoonlitBite() bool {
	if g.State.Zone != moonlitZone {
		return false
	}
	return g.State.MoonEvent == MoonFullEvent || g.State.DailyEvent == EventFullMoonNight
}

// MoonlitTrack rolls the shrunken moonlit cast.
func (g *Game) MoonlitTrack() Track {
	return NewTrack(g.rng, moonlitZoneLen)
}

// MoonlitInterval is the pointer dwell of a moonlit cast, floored like
// any other track speed.
func (g *Game) MoonlitInterval() time.Duration {
	iv := g.TrackInterval() / moonlitSpeedDiv
	if floor := time.Duration(g.Tuning.MinStepMs) * time.Millisecond; iv < floor {
		iv = floor
	}
	return iv
}

// DrawMoonlit picks the exotic pulled up by the moon. The body roll
// ignores the catalog range.
func (g *Game) DrawMoonlit() fish.Species {
	exotics := g.Reg.Exotics()
	if len(exotics) == 0 {
		return g.Draw()
	}
	sp := exotics[g.picker.Intn(len(exotics))]
	sp.MinKg, sp.MaxKg = moonlitMinKg, moonlitMaxKg
	return sp
}

// Draw resolves the species for a successful cast.
func (g *Game) Draw() fish.Species {
	scale := 1.0
	if g.State.DailyEvent == EventStreakMadness {
		scale = 2
	}
	return g.picker.Draw(g.Zone(), fish.DrawConfig{
		Streak:      g.State.Streak,
		TimeOfDay:   g.TimeOfDay(),
		Season:      g.Season(),
		RareScale:   scale,
		AllowExotic: exoticsAdmitted(g.State.DailyEvent),
		Exotics:     g.Reg.Exotics(),
	})
}

type CatchReport struct {
	Catch         fish.Catch
	Class         fish.WeightClass
	XP            int
	LevelsGained  int
	Streak        int
	TreasureCoins float64
	QuestNotes    []string
	FoundAncient  bool
	FoundFloating bool
}

// Land books a successful Normal-mode catch: weight roll, XP, streak,
// discovery, quests, key drops, persistence.
func (g *Game) Land(ctx context.Context, sp fish.Species) (*CatchReport, error) {
	z := g.Zone()
	c := fish.Catch{
		Zone:     z.Name,
		Key:      sp.Key,
		Name:     sp.Name,
		Tier:     sp.Tier,
		Kg:       g.picker.RollKg(sp),
		Price:    z.PriceOf(sp),
		CaughtAt: g.now(),
	}

	r := &CatchReport{Catch: c, Class: fish.WeightClassFor(sp, c.Kg)}
	g.bookCatch(r, fish.XPOf(sp))

	g.State.Streak++
	r.Streak = g.State.Streak

	if sp.Key == "ancient-key" && !g.State.HasAncientKey {
		g.State.HasAncientKey = true
		r.FoundAncient = true
	}
	if z.Name == "Sea" && !g.State.HasFloatingKey && g.picker.Roll(g.Tuning.FloatingKeyChance) {
		g.State.HasFloatingKey = true
		r.FoundFloating = true
		g.refreshFloatingIsland()
	}

	return r, g.persistCatch(ctx, r)
}

// MissNormal resets the streak after a failed Normal-mode cast and
// returns the streak that was lost.
func (g *Game) MissNormal() int {
	lost := g.State.Streak
	g.State.Streak = 0
	return lost
}

// LandBoss books a victorious boss encounter. The streak is left
// untouched: boss fights replace the normal minigame entirely.
func (g *Game) LandBoss(ctx context.Context) (*CatchReport, error) {
	z := g.Zone()
	c := fish.Catch{
		Zone:     z.Name,
		Key:      "boss",
		Name:     z.Boss.Name,
		Tier:     fish.TierBoss,
		Kg:       g.picker.RollBossKg(),
		Price:    z.Boss.Price,
		CaughtAt: g.now(),
	}

	r := &CatchReport{Catch: c, Class: fish.WeightEnormous, Streak: g.State.Streak}
	g.bookCatch(r, z.Boss.XP)

	return r, g.persistCatch(ctx, r)
}

// bookCatch applies the shared bookkeeping of any landed fish: XP
// (doubled on event days), level-ups, treasure rolls and quest
// progress. The caller persists.
func (g *Game) bookCatch(r *CatchReport, xp int) {
	if g.State.DailyEvent == EventDoubleXP {
		xp *= 2
	}
	r.XP = xp
	r.LevelsGained = g.State.AddXP(xp)

	if g.State.DailyEvent == EventTreasureHunt && g.picker.Roll(g.Tuning.TreasureChance) {
		span := g.Tuning.TreasureMax - g.Tuning.TreasureMin
		bonus := float64(g.Tuning.TreasureMin)
		if span > 0 {
			bonus += float64(g.picker.Intn(span + 1))
		}
		g.State.Balance += bonus
		r.TreasureCoins = bonus
	}

	r.QuestNotes = g.Quests.Record(r.Catch.Zone, r.Catch.Name, r.Catch.Tier)
}

func (g *Game) persistCatch(ctx context.Context, r *CatchReport) error {
	id, err := g.Store.AddCatch(ctx, r.Catch)
	if err != nil {
		return fmt.Errorf("failed to save catch: %w", err)
	}
	r.Catch.Id = id
	if err := g.Store.RecordDiscovery(ctx, r.Catch); err != nil {
		return fmt.Errorf("failed to record discovery: %w", err)
	}
	if err := g.Store.ReplaceQuests(ctx, questRows(g.Quests.All())); err != nil {
		return fmt.Errorf("failed to save quests: %w", err)
	}
	if err := g.Store.SavePlayer(ctx, g.State.Row()); err != nil {
		return fmt.Errorf("failed to save player: %w", err)
	}
	return nil
}

type FastReport struct {
	Caught     []fish.Catch
	Escaped    int
	TotalXP    int
	Cost       float64
	Price      float64
	QuestNotes []string
}

// FastFish buys up to n fish without the timing minigame. Every fish
// rides a flat auto-miss roll; the streak never moves in either
// direction, and the per-fish price compounds once per action.
func (g *Game) FastFish(ctx context.Context, n int) (*FastReport, error) {
	if n < 1 || n > 10 {
		return nil, fmt.Errorf("amount must be between 1 and 10")
	}
	cost := roundMoney(float64(n-1) * g.State.FastPrice)
	if g.State.Balance < cost {
		return nil, fmt.Errorf("not enough money for fast fishing")
	}
	g.State.Balance -= cost

	r := &FastReport{Cost: cost}
	for i := 0; i < n; i++ {
		if g.picker.Roll(g.Tuning.FastMissChance) {
			r.Escaped++
			continue
		}
		sp := g.Draw()
		z := g.Zone()
		c := fish.Catch{
			Zone:     z.Name,
			Key:      sp.Key,
			Name:     sp.Name,
			Tier:     sp.Tier,
			Kg:       g.picker.RollKg(sp),
			Price:    z.PriceOf(sp),
			CaughtAt: g.now(),
		}

		cr := &CatchReport{Catch: c}
		g.bookCatch(cr, fish.XPOf(sp))
		r.TotalXP += cr.XP
		r.QuestNotes = append(r.QuestNotes, cr.QuestNotes...)

		id, err := g.Store.AddCatch(ctx, c)
		if err != nil {
			return nil, fmt.Errorf("failed to save catch: %w", err)
		}
		c.Id = id
		if err := g.Store.RecordDiscovery(ctx, c); err != nil {
			return nil, fmt.Errorf("failed to record discovery: %w", err)
		}
		r.Caught = append(r.Caught, c)
	}

	g.State.FastPrice = math.Round(g.State.FastPrice*g.Tuning.FastGrowth*10000) / 10000
	r.Price = g.State.FastPrice

	if err := g.Store.ReplaceQuests(ctx, questRows(g.Quests.All())); err != nil {
		return nil, fmt.Errorf("failed to save quests: %w", err)
	}
	if err := g.Store.SavePlayer(ctx, g.State.Row()); err != nil {
		return nil, fmt.Errorf("failed to save player: %w", err)
	}
	return r, nil
}

type SaleReport struct {
	Count   int
	Total   float64
	Jackpot bool
}

func (g *Game) Inventory(ctx context.Context) ([]fish.Catch, error) {
	return g.Store.Inventory(ctx)
}

// SellAll liquidates the whole inventory.
func (g *Game) SellAll(ctx context.Context) (*SaleReport, error) {
	inv, err := g.Store.Inventory(ctx)
	if err != nil {
		return nil, err
	}
	if len(inv) == 0 {
		return nil, fmt.Errorf("you have no fish to sell")
	}

	var total float64
	for _, c := range inv {
		total += c.Value()
	}
	r := &SaleReport{Count: len(inv)}
	if g.State.DailyEvent == EventJackpotSell && g.picker.Roll(g.Tuning.JackpotChance) {
		total *= 3
		r.Jackpot = true
	}
	r.Total = roundMoney(total)
	g.State.Balance += r.Total

	if err := g.Store.ClearInventory(ctx); err != nil {
		return nil, fmt.Errorf("failed to clear inventory: %w", err)
	}
	return r, g.Store.SavePlayer(ctx, g.State.Row())
}

// SellNamed sells up to count fish with the exact given name.
func (g *Game) SellNamed(ctx context.Context, name string, count int) (*SaleReport, error) {
	if count < 1 {
		return nil, fmt.Errorf("nothing to sell")
	}
	inv, err := g.Store.Inventory(ctx)
	if err != nil {
		return nil, err
	}

	var ids []int64
	var total float64
	for _, c := range inv {
		if c.Name != name {
			continue
		}
		ids = append(ids, c.Id)
		total += c.Value()
		if len(ids) == count {
			break
		}
	}
	if len(ids) < count {
		return nil, fmt.Errorf("you don't have %d %q to sell", count, name)
	}

	r := &SaleReport{Count: count}
	if g.State.DailyEvent == EventJackpotSell && g.picker.Roll(g.Tuning.JackpotChance) {
		total *= 3
		r.Jackpot = true
	}
	r.Total = roundMoney(total)
	g.State.Balance += r.Total

	if err := g.Store.RemoveCatches(ctx, ids); err != nil {
		return nil, fmt.Errorf("failed to remove sold fish: %w", err)
	}
	return r, g.Store.SavePlayer(ctx, g.State.Row())
}

// ClaimQuest pays out a finished quest and persists the fresh board.
func (g *Game) ClaimQuest(ctx context.Context, idx int) (quest.Quest, error) {
	q, ok := g.Quests.Claim(g.State.Zone, idx)
	if !ok {
		return q, fmt.Errorf("you haven't met the requirements yet")
	}
	g.State.Balance += float64(q.Reward)
	g.State.AddXP(q.RewardXP())

	if err := g.Store.ReplaceQuests(ctx, questRows(g.Quests.All())); err != nil {
		return q, fmt.Errorf("failed to save quests: %w", err)
	}
	return q, g.Store.SavePlayer(ctx, g.State.Row())
}

// AdvanceHour moves the world clock one hour and re-rolls nightly and
// daily events. Called after each fishing action.
func (g *Game) AdvanceHour(ctx context.Context) error {
	g.State.Hour = (g.State.Hour + 1) % 24
	if g.State.Hour == 0 {
		g.State.Day++
	}

	if g.State.Hour < 20 {
		g.State.MoonEvent = ""
	} else if g.State.MoonEvent == "" && g.picker.Roll(g.Tuning.FullMoonChance) {
		g.State.MoonEvent = MoonFullEvent
	}

	g.rollDailyEventIfNeeded()
	g.refreshFloatingIsland()
	return g.Store.SavePlayer(ctx, g.State.Row())
}

func (g *Game) rollDailyEventIfNeeded() {
	if g.State.DailyEventDay == g.State.Day {
		return
	}
	g.State.DailyEventDay = g.State.Day
	g.State.DailyEvent = ""
	if !g.picker.Roll(g.Tuning.DailyEventChance) {
		return
	}
	candidates := []string{
		EventDoubleXP,
		EventTreasureHunt,
		EventSpeedyFisher,
		EventExoticSurge,
		EventJackpotSell,
		EventStreakMadness,
	}
	if g.State.MoonEvent == MoonFullEvent {
		candidates = append(candidates, EventFullMoonNight)
	}
	g.State.DailyEvent = candidates[g.picker.Intn(len(candidates))]
}

// refreshFloatingIsland rolls the island's daily appearance and its
// 12-16h visibility window, evicting the player when it fades.
func (g *Game) refreshFloatingIsland() {
	if g.State.FloatingDay != g.State.Day {
		g.State.FloatingDay = g.State.Day
		g.State.FloatingToday = g.State.HasFloatingKey && g.picker.Roll(g.Tuning.FloatingDailyChance)
	}
	g.State.FloatingVisible = g.State.FloatingToday && g.State.Hour >= 12 && g.State.Hour <= 16

	if z := g.Zone(); z != nil && z.Unlock == "floating-key" && !g.State.FloatingVisible {
		if g.State.HasBoat {
			g.State.Zone = "Sea"
		} else {
			g.State.Zone = "Lake"
		}
	}
}

func roundMoney(v float64) float64 {
	return math.Round(v*100) / 100
}
