package game

// Daily events rolled each in-game morning. One at most is active.
const (
	EventDoubleXP      = "Double XP Day"
	EventTreasureHunt  = "Treasure Hunt"
	EventSpeedyFisher  = "Speedy Fisher"
	EventExoticSurge   = "Exotic Surge"
	EventJackpotSell   = "Jackpot Sell"
	EventStreakMadness = "Streak Madness"
	EventFullMoonNight = "Full Moon Night"
)

// MoonFullEvent marks the nightly full-moon state on the world clock.
const MoonFullEvent = "Full Moon"

var eventEffects = map[string]string{
	EventDoubleXP:      "XP x2",
	EventTreasureHunt:  "10% chest per catch",
	EventSpeedyFisher:  "Easier minigame",
	EventExoticSurge:   "Exotic fish anywhere",
	EventJackpotSell:   "5% sale x3",
	EventStreakMadness: "Double rare bonus per streak",
	EventFullMoonNight: "Exotic + boss boosted",
}

func EventEffect(event string) string {
	return eventEffects[event]
}

// exoticsAdmitted reports whether today's event opens the exotic pool.
func exoticsAdmitted(event string) bool {
	return event == EventExoticSurge || event == EventFullMoonNight
}
