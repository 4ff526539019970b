package game

import (
	"context"
	"math"
	mrand "math/rand"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/mossreef/angler/internal/config"
	"github.com/mossreef/angler/internal/fish"
	"github.com/mossreef/angler/internal/store"
	"github.com/mossreef/angler/internal/trap"
)

// fakeStore keeps everything in memory so session tests never touch
// sqlite.
type fakeStore struct {
	player    store.PlayerRow
	found     bool
	nextId    int64
	catches   []fish.Catch
	discovery map[string]store.DiscoveryRow
	quests    []store.QuestRow
	traps     []store.TrapRow
}

func newFakeStore() *fakeStore {
	return &fakeStore{discovery: make(map[string]store.DiscoveryRow)}
}

func (f *fakeStore) LoadPlayer(ctx context.Context) (store.PlayerRow, bool, error) {
	return f.player, f.found, nil
}

func (f *fakeStore) SavePlayer(ctx context.Context, p store.PlayerRow) error {
	f.player = p
	f.found = true
	return nil
}

func (f *fakeStore) AddCatch(ctx context.Context, c fish.Catch) (int64, error) {
	f.nextId++
	c.Id = f.nextId
	f.catches = append(f.catches, c)
	return c.Id, nil
}

func (f *fakeStore) Inventory(ctx context.Context) ([]fish.Catch, error) {
	out := make([]fish.Catch, len(f.catches))
	copy(out, f.catches)
	return out, nil
}

func (f *fakeStore) RemoveCatches(ctx context.Context, ids []int64) error {
	drop := make(map[int64]bool, len(ids))
	for _, id := range ids {
		drop[id] = true
	}
	kept := f.catches[:0]
	for _, c := range f.catches {
		if !drop[c.Id] {
			kept = append(kept, c)
		}
	}
	f.catches = kept
	return nil
}

func (f *fakeStore) ClearInventory(ctx context.Context) error {
	f.catches = nil
	return nil
}

func (f *fakeStore) RecordDiscovery(ctx context.Context, c fish.Catch) error {
	key := c.Zone + "/" + c.Key
	d := f.discovery[key]
	d.Zone, d.Key, d.Name, d.Tier = c.Zone, c.Key, c.Name, c.Tier
	d.Count++
	if c.Kg > d.MaxKg {
		d.MaxKg = c.Kg
	}
	if v := c.Value(); v > d.MaxValue {
		d.MaxValue = v
	}
	f.discovery[key] = d
	return nil
}

func (f *fakeStore) Discovered(ctx context.Context, zone string) (map[string]store.DiscoveryRow, error) {
	out := make(map[string]store.DiscoveryRow)
	for _, d := range f.discovery {
		if d.Zone == zone {
			out[d.Key] = d
		}
	}
	return out, nil
}

func (f *fakeStore) ReplaceQuests(ctx context.Context, rows []store.QuestRow) error {
	f.quests = rows
	return nil
}

func (f *fakeStore) LoadQuests(ctx context.Context) ([]store.QuestRow, error) {
	return f.quests, nil
}

func (f *fakeStore) ReplaceTraps(ctx context.Context, rows []store.TrapRow) error {
	f.traps = rows
	return nil
}

func (f *fakeStore) LoadTraps(ctx context.Context) ([]store.TrapRow, error) {
	return f.traps, nil
}

func (f *fakeStore) Close() error { return nil }

const sessionCatalog = `{
  "zones": [
    {
      "name": "Lake",
      "catchZoneLen": 6,
      "speedDiv": 1,
      "boss": {"name": "Leviathan Pike", "price": 50, "xp": 5000, "warning": "The water stirs..."},
      "species": [
        {"key": "minnow", "name": "Minnow", "rarity": "Common", "minKg": 0.1, "maxKg": 0.5, "price": 2, "xp": 5},
        {"key": "perch", "name": "Perch", "rarity": "Uncommon", "minKg": 0.5, "maxKg": 2, "price": 4, "xp": 10},
        {"key": "pike", "name": "Pike", "rarity": "Rare", "minKg": 2, "maxKg": 10, "price": 8, "xp": 30}
      ]
    },
    {
      "name": "Sea",
      "catchZoneLen": 5,
      "speedDiv": 2,
      "tierPricing": true,
      "unlock": "boat",
      "boss": {"name": "Kraken", "price": 80, "xp": 20000, "warning": "Tentacles rise!"},
      "species": [
        {"key": "herring", "name": "Herring", "rarity": "Common", "minKg": 0.2, "maxKg": 1, "price": 3, "xp": 5},
        {"key": "tuna", "name": "Tuna", "rarity": "Rare", "minKg": 5, "maxKg": 60, "price": 10, "xp": 30}
      ]
    },
    {
      "name": "Bathyal",
      "catchZoneLen": 5,
      "speedDiv": 4,
      "unlock": "submarine",
      "boss": {"name": "The Gulper", "price": 90, "xp": 30000, "warning": "The dark swallows the line..."},
      "species": [
        {"key": "anglerfish", "name": "Anglerfish", "rarity": "Rare", "minKg": 1, "maxKg": 8, "price": 12, "xp": 40}
      ]
    }
  ],
  "exotics": [
    {"key": "moonfish", "name": "Moonfish", "rarity": "Exotic", "minKg": 1, "maxKg": 4, "price": 400, "xp": 1000}
  ]
}`

func testGame(t *testing.T, seed int64) (*Game, *fakeStore) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "zones.json")
	if err := os.WriteFile(path, []byte(sessionCatalog), 0o644); err != nil {
		t.Fatalf("failed to write catalog: %v", err)
	}
	reg, err := fish.LoadRegistryFromJSON(path)
	if err != nil {
		t.Fatalf("failed to load catalog: %v", err)
	}

	st := newFakeStore()
	g, err := New(context.Background(), reg, st, config.Default(), mrand.New(mrand.NewSource(seed)))
	if err != nil {
		t.Fatalf("failed to build game: %v", err)
	}
	g.now = func() time.Time { return time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC) }
	return g, st
}

func lakeSpecies(t *testing.T, g *Game, key string) fish.Species {
	t.Helper()
	z, _ := g.Reg.Zone("Lake")
	id, ok := z.IdByKey(key)
	if !ok {
		t.Fatalf("no species %q in Lake", key)
	}
	sp, _ := z.GetById(id)
	return sp
}

func TestNewFreshSession(t *testing.T) {
	g, st := testGame(t, 1)
	if g.State.Zone != "Lake" {
		t.Errorf("fresh zone = %q, want Lake", g.State.Zone)
	}
	if g.State.Balance != config.Default().StartingBalance {
		t.Errorf("fresh balance = %v", g.State.Balance)
	}
	if got := len(g.Quests.All()); got != 30 {
		t.Errorf("quest board has %d quests, want 30 for three zones", got)
	}
	if st.found {
		t.Error("store should not hold a player row before the first save")
	}
}

func TestNewRestoresPlayer(t *testing.T) {
	st := newFakeStore()
	st.player = store.PlayerRow{Balance: 9000, Level: 12, Zone: "Sea", HasBoat: true, FastPrice: 20}
	st.found = true

	path := filepath.Join(t.TempDir(), "zones.json")
	if err := os.WriteFile(path, []byte(sessionCatalog), 0o644); err != nil {
		t.Fatalf("failed to write catalog: %v", err)
	}
	reg, err := fish.LoadRegistryFromJSON(path)
	if err != nil {
		t.Fatalf("failed to load catalog: %v", err)
	}
	g, err := New(context.Background(), reg, st, config.Default(), mrand.New(mrand.NewSource(3)))
	if err != nil {
		t.Fatalf("failed to build game: %v", err)
	}

	if g.State.Balance != 9000 || g.State.Level != 12 || g.State.Zone != "Sea" {
		t.Errorf("restored state = %+v", g.State)
	}
}

func TestLandBooksCatchAndStreak(t *testing.T) {
	g, st := testGame(t, 2)
	sp := lakeSpecies(t, g, "perch")

	r, err := g.Land(context.Background(), sp)
	if err != nil {
		t.Fatalf("Land: %v", err)
	}
	if r.Streak != 1 || g.State.Streak != 1 {
		t.Errorf("streak = %d, want 1", g.State.Streak)
	}
	if r.Catch.Kg < sp.MinKg || r.Catch.Kg > sp.MaxKg {
		t.Errorf("kg %v outside [%v, %v]", r.Catch.Kg, sp.MinKg, sp.MaxKg)
	}
	if r.XP != fish.XPOf(sp) {
		t.Errorf("xp = %d, want %d", r.XP, fish.XPOf(sp))
	}
	if len(st.catches) != 1 {
		t.Fatalf("store holds %d catches, want 1", len(st.catches))
	}
	if d := st.discovery["Lake/perch"]; d.Count != 1 {
		t.Errorf("discovery count = %d, want 1", d.Count)
	}
	if !st.found {
		t.Error("player row not saved after landing")
	}
}

func TestMissResetsStreak(t *testing.T) {
	g, _ := testGame(t, 4)
	g.State.Streak = 7
	if lost := g.MissNormal(); lost != 7 {
		t.Errorf("lost = %d, want 7", lost)
	}
	if g.State.Streak != 0 {
		t.Errorf("streak = %d after a miss, want 0", g.State.Streak)
	}
}

func TestLandBossKeepsStreak(t *testing.T) {
	g, st := testGame(t, 5)
	g.State.Streak = 4

	r, err := g.LandBoss(context.Background())
	if err != nil {
		t.Fatalf("LandBoss: %v", err)
	}
	if g.State.Streak != 4 {
		t.Errorf("streak = %d after a boss, want 4 unchanged", g.State.Streak)
	}
	if r.Catch.Tier != fish.TierBoss || r.Catch.Name != "Leviathan Pike" {
		t.Errorf("boss catch = %+v", r.Catch)
	}
	if r.Catch.Kg < 1000 || r.Catch.Kg > 10000 {
		t.Errorf("boss kg = %v, want 1000..10000", r.Catch.Kg)
	}
	if len(st.catches) != 1 {
		t.Errorf("store holds %d catches, want 1", len(st.catches))
	}
}

func TestDoubleXPDay(t *testing.T) {
	g, _ := testGame(t, 6)
	g.State.DailyEvent = EventDoubleXP
	sp := lakeSpecies(t, g, "minnow")

	r, err := g.Land(context.Background(), sp)
	if err != nil {
		t.Fatalf("Land: %v", err)
	}
	if want := fish.XPOf(sp) * 2; r.XP != want {
		t.Errorf("xp = %d, want %d on Double XP Day", r.XP, want)
	}
}

func TestFastFishPriceCompounds(t *testing.T) {
	g, _ := testGame(t, 7)
	g.State.Balance = 1_000_000

	price := g.State.FastPrice
	for i := 0; i < 5; i++ {
		r, err := g.FastFish(context.Background(), 3)
		if err != nil {
			t.Fatalf("FastFish: %v", err)
		}
		if wantCost := math.Round(2*price*100) / 100; r.Cost != wantCost {
			t.Errorf("cost = %v, want %v", r.Cost, wantCost)
		}
		wantPrice := math.Round(price*g.Tuning.FastGrowth*10000) / 10000
		if r.Price != wantPrice {
			t.Errorf("price after action = %v, want %v", r.Price, wantPrice)
		}
		if got := len(r.Caught) + r.Escaped; got != 3 {
			t.Errorf("caught %d + escaped %d != 3", len(r.Caught), r.Escaped)
		}
		price = r.Price
	}
}

func TestFastFishValidation(t *testing.T) {
	g, _ := testGame(t, 8)
	if _, err := g.FastFish(context.Background(), 0); err == nil {
		t.Error("accepted amount 0")
	}
	if _, err := g.FastFish(context.Background(), 11); err == nil {
		t.Error("accepted amount 11")
	}
	g.State.Balance = 0
	if _, err := g.FastFish(context.Background(), 10); err == nil {
		t.Error("accepted fast fishing without funds")
	}
}

func TestFastFishLeavesStreakAlone(t *testing.T) {
	g, _ := testGame(t, 9)
	g.State.Balance = 10_000
	g.State.Streak = 5
	if _, err := g.FastFish(context.Background(), 10); err != nil {
		t.Fatalf("FastFish: %v", err)
	}
	if g.State.Streak != 5 {
		t.Errorf("streak = %d after fast fishing, want 5", g.State.Streak)
	}
}

func TestSellAll(t *testing.T) {
	g, st := testGame(t, 10)
	sp := lakeSpecies(t, g, "minnow")
	var want float64
	for i := 0; i < 3; i++ {
		r, err := g.Land(context.Background(), sp)
		if err != nil {
			t.Fatalf("Land: %v", err)
		}
		want += r.Catch.Value()
	}

	before := g.State.Balance
	r, err := g.SellAll(context.Background())
	if err != nil {
		t.Fatalf("SellAll: %v", err)
	}
	if r.Count != 3 {
		t.Errorf("sold %d, want 3", r.Count)
	}
	if got := math.Round((g.State.Balance-before)*100) / 100; got != math.Round(want*100)/100 {
		t.Errorf("balance moved %v, want %v", got, want)
	}
	if len(st.catches) != 0 {
		t.Errorf("inventory still holds %d fish", len(st.catches))
	}

	if _, err := g.SellAll(context.Background()); err == nil {
		t.Error("sold an empty inventory")
	}
}

func TestSellNamed(t *testing.T) {
	g, st := testGame(t, 11)
	minnow := lakeSpecies(t, g, "minnow")
	perch := lakeSpecies(t, g, "perch")
	for i := 0; i < 2; i++ {
		if _, err := g.Land(context.Background(), minnow); err != nil {
			t.Fatalf("Land: %v", err)
		}
	}
	if _, err := g.Land(context.Background(), perch); err != nil {
		t.Fatalf("Land: %v", err)
	}

	r, err := g.SellNamed(context.Background(), "Minnow", 2)
	if err != nil {
		t.Fatalf("SellNamed: %v", err)
	}
	if r.Count != 2 {
		t.Errorf("sold %d, want 2", r.Count)
	}
	if len(st.catches) != 1 || st.catches[0].Name != "Perch" {
		t.Errorf("inventory after sale = %+v", st.catches)
	}

	if _, err := g.SellNamed(context.Background(), "Minnow", 1); err == nil {
		t.Error("sold a fish that is no longer in the inventory")
	}
}

func TestBuyUnlocks(t *testing.T) {
	g, _ := testGame(t, 12)
	g.State.Balance = 30_000

	if _, err := g.Buy(context.Background(), "boat"); err != nil {
		t.Fatalf("Buy boat: %v", err)
	}
	if !g.State.HasBoat {
		t.Error("boat flag not set")
	}
	if g.State.Balance != 5_000 {
		t.Errorf("balance = %v, want 5000", g.State.Balance)
	}
	if _, err := g.Buy(context.Background(), "boat"); err == nil {
		t.Error("bought the boat twice")
	}
	if _, err := g.Buy(context.Background(), "submarine"); err == nil {
		t.Error("bought a submarine without funds")
	}
}

func TestBuyAncientUpgradeNeedsKeyAndFirstUpgrade(t *testing.T) {
	g, _ := testGame(t, 13)
	g.State.Balance = 1e12

	if _, err := g.Buy(context.Background(), "upgrade02"); err == nil {
		t.Error("bought upgrade02 without the Ancient Key")
	}
	g.State.HasAncientKey = true
	if _, err := g.Buy(context.Background(), "upgrade02"); err == nil {
		t.Error("bought upgrade02 without upgrade01")
	}
	g.State.HasTrenchPass = true
	if _, err := g.Buy(context.Background(), "upgrade02"); err != nil {
		t.Errorf("Buy upgrade02: %v", err)
	}
}

func TestSelectZoneChecksUnlocks(t *testing.T) {
	g, _ := testGame(t, 14)
	if err := g.SelectZone("Sea"); err == nil {
		t.Error("entered Sea without a boat")
	}
	g.State.HasBoat = true
	if err := g.SelectZone("Sea"); err != nil {
		t.Errorf("SelectZone Sea: %v", err)
	}
	if err := g.SelectZone("Atlantis"); err == nil {
		t.Error("entered an unknown zone")
	}
}

func TestAdvanceHourRollsDays(t *testing.T) {
	g, _ := testGame(t, 15)
	g.State.Hour = 23
	day := g.State.Day
	if err := g.AdvanceHour(context.Background()); err != nil {
		t.Fatalf("AdvanceHour: %v", err)
	}
	if g.State.Hour != 0 || g.State.Day != day+1 {
		t.Errorf("clock = day %d hour %d, want day %d hour 0", g.State.Day, g.State.Hour, day+1)
	}
}

func TestMoonClearsBeforeEvening(t *testing.T) {
	g, _ := testGame(t, 16)
	g.State.Hour = 2
	g.State.MoonEvent = MoonFullEvent
	if err := g.AdvanceHour(context.Background()); err != nil {
		t.Fatalf("AdvanceHour: %v", err)
	}
	if g.State.MoonEvent != "" {
		t.Errorf("moon event %q persisted past the night", g.State.MoonEvent)
	}
}

func TestSetTrapNeedsStockAndBait(t *testing.T) {
	g, st := testGame(t, 17)
	if _, err := g.SetTrap(context.Background(), "Lake", trap.BaitNormal); err == nil {
		t.Error("set a trap with no stock")
	}
	g.State.TrapStock = 1
	if _, err := g.SetTrap(context.Background(), "Lake", trap.BaitNormal); err == nil {
		t.Error("set a trap with no bait")
	}
	g.State.BaitNormal = 1

	tr, err := g.SetTrap(context.Background(), "Lake", trap.BaitNormal)
	if err != nil {
		t.Fatalf("SetTrap: %v", err)
	}
	if tr.Zone != "Lake" || tr.Id == "" {
		t.Errorf("trap = %+v", tr)
	}
	if g.State.TrapStock != 0 || g.State.BaitNormal != 0 {
		t.Errorf("stock %d bait %d after setting, want 0 0", g.State.TrapStock, g.State.BaitNormal)
	}
	if len(st.traps) != 1 {
		t.Errorf("store holds %d traps, want 1", len(st.traps))
	}
}

func TestCollectTrapLifecycle(t *testing.T) {
	g, st := testGame(t, 18)
	g.State.TrapStock = 2
	g.State.BaitNormal = 2

	tr, err := g.SetTrap(context.Background(), "Lake", trap.BaitNormal)
	if err != nil {
		t.Fatalf("SetTrap: %v", err)
	}

	// still soaking
	if _, err := g.CollectTrap(context.Background(), tr.Id); err == nil {
		t.Error("collected a soaking trap")
	}

	// push the clock past the soak
	done := time.Date(2025, 6, 2, 13, 0, 0, 0, time.UTC)
	g.now = func() time.Time { return done }
	h, err := g.CollectTrap(context.Background(), tr.Id)
	if err != nil {
		t.Fatalf("CollectTrap: %v", err)
	}
	if h.Broken {
		t.Error("trap broke inside the ready window")
	}
	if n := len(h.Caught); n < 3 || n > 7 {
		t.Errorf("haul size %d, want 3..7", n)
	}
	if len(g.Traps) != 0 || len(st.traps) != 0 {
		t.Error("collected trap still tracked")
	}
	if _, err := g.CollectTrap(context.Background(), tr.Id); err == nil {
		t.Error("collected the same trap twice")
	}
}

func TestCollectBrokenTrap(t *testing.T) {
	g, _ := testGame(t, 19)
	g.State.TrapStock = 1
	g.State.BaitNormal = 1

	tr, err := g.SetTrap(context.Background(), "Lake", trap.BaitNormal)
	if err != nil {
		t.Fatalf("SetTrap: %v", err)
	}
	g.now = func() time.Time { return tr.SetAt.Add(trap.Duration + trap.Overdue + time.Hour) }

	h, err := g.CollectTrap(context.Background(), tr.Id)
	if err != nil {
		t.Fatalf("CollectTrap: %v", err)
	}
	if !h.Broken || len(h.Caught) != 0 {
		t.Errorf("broken haul = %+v, want empty", h)
	}
}

func TestBuyTrapGear(t *testing.T) {
	g, _ := testGame(t, 20)
	g.State.Balance = 10_000

	cost, err := g.BuyTrapGear(context.Background(), "trap", 2)
	if err != nil {
		t.Fatalf("BuyTrapGear: %v", err)
	}
	if cost != 3000 || g.State.TrapStock != 2 {
		t.Errorf("cost %v stock %d, want 3000 and 2", cost, g.State.TrapStock)
	}
	if _, err := g.BuyTrapGear(context.Background(), "legend", 1); err == nil {
		t.Error("bought legend bait without funds")
	}
	if _, err := g.BuyTrapGear(context.Background(), "net", 1); err == nil {
		t.Error("bought an unknown item")
	}
}

func TestClaimQuestPaysOut(t *testing.T) {
	g, st := testGame(t, 21)
	quests := g.Quests.ZoneQuests("Lake")

	if _, err := g.ClaimQuest(context.Background(), 0); err == nil {
		t.Error("claimed an unfinished quest")
	}

	// finish quest 0 by force-feeding matching catches
	q := quests[0]
	for i := 0; i < q.Amount; i++ {
		g.Quests.Record("Lake", q.TargetName, q.Tier)
	}
	before := g.State.Balance
	claimed, err := g.ClaimQuest(context.Background(), 0)
	if err != nil {
		t.Fatalf("ClaimQuest: %v", err)
	}
	if g.State.Balance != before+float64(claimed.Reward) {
		t.Errorf("balance moved %v, want %d", g.State.Balance-before, claimed.Reward)
	}
	if got := len(g.Quests.ZoneQuests("Lake")); got != 10 {
		t.Errorf("board size %d after claim, want 10", got)
	}
	if len(st.quests) != 30 {
		t.Errorf("store holds %d quest rows, want 30", len(st.quests))
	}
}

func TestUnlockedZonesHidesLockedOnes(t *testing.T) {
	g, _ := testGame(t, 22)
	zones := g.UnlockedZones()
	if len(zones) != 1 || zones[0].Name != "Lake" {
		t.Errorf("unlocked = %v, want just Lake", zoneNames(zones))
	}
	g.State.HasBoat = true
	zones = g.UnlockedZones()
	if len(zones) != 2 {
		t.Errorf("unlocked = %v, want Lake and Sea", zoneNames(zones))
	}
}

func zoneNames(zs []*fish.Zone) []string {
	out := make([]string, len(zs))
	for i, z := range zs {
		out[i] = z.Name
	}
	return out
}

func TestMoonlitBiteNeedsBathyalAndMoon(t *testing.T) {
	g, _ := testGame(t, 23)

	g.State.MoonEvent = MoonFullEvent
	if g.MoonlitBite() {
		t.Error("moonlit bite outside the Bathyal")
	}

	g.State.Zone = "Bathyal"
	g.State.MoonEvent = ""
	if g.MoonlitBite() {
		t.Error("moonlit bite without a full moon")
	}

	g.State.MoonEvent = MoonFullEvent
	if !g.MoonlitBite() {
		t.Error("full moon over the Bathyal should force the encounter")
	}

	g.State.MoonEvent = ""
	g.State.DailyEvent = EventFullMoonNight
	if !g.MoonlitBite() {
		t.Error("Full Moon Night should force the encounter too")
	}
}

func TestMoonlitCastShape(t *testing.T) {
	g, _ := testGame(t, 24)
	g.State.Zone = "Bathyal"
	g.State.MoonEvent = MoonFullEvent

	tr := g.MoonlitTrack()
	if got := tr.ZoneEnd - tr.ZoneStart + 1; got != 2 {
		t.Errorf("moonlit zone length = %d, want 2", got)
	}

	// 100ms base over speedDiv 4 is 25ms; a tenth of that lands on
	// the 5ms floor
	if got := g.MoonlitInterval(); got != 5*time.Millisecond {
		t.Errorf("moonlit interval = %v, want 5ms", got)
	}
}

func TestMoonlitLandingIsAHugeExotic(t *testing.T) {
	g, st := testGame(t, 25)
	g.State.Zone = "Bathyal"
	g.State.MoonEvent = MoonFullEvent

	sp := g.DrawMoonlit()
	if sp.Tier != fish.TierExotic {
		t.Fatalf("moonlit draw = %s (%s), want an exotic", sp.Name, sp.Tier)
	}

	r, err := g.Land(context.Background(), sp)
	if err != nil {
		t.Fatalf("Land: %v", err)
	}
	if r.Catch.Kg < 1000 || r.Catch.Kg > 100000 {
		t.Errorf("moonlit body = %.1f kg, want 1000..100000", r.Catch.Kg)
	}
	if r.Catch.Zone != "Bathyal" {
		t.Errorf("catch zone = %q", r.Catch.Zone)
	}
	if g.State.Streak != 1 {
		t.Errorf("streak = %d after a landed moonlit cast, want 1", g.State.Streak)
	}
	if len(st.catches) != 1 {
		t.Errorf("inventory = %d catches, want 1", len(st.catches))
	}
}
