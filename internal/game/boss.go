package game

import (
	"time"

	"github.com/mossreef/angler/internal/fish"
)

// A boss encounter replaces the normal cast with two minigame stages
// separated by a non-interactive dive: the boss plunges and the final
// stage's catch zone shrinks by one cell.
type BossStage struct {
	Rounds   int
	ZoneLen  int
	Interval time.Duration
}

type BossPlan struct {
	Opening BossStage
	Final   BossStage
}

func PlanBossFight(z *fish.Zone) BossPlan {
	opening := BossStage{Rounds: 5, ZoneLen: 3, Interval: 20 * time.Millisecond}
	if z.SpeedDiv >= 12 {
		// sky fights are faster and tighter
		opening = BossStage{Rounds: 6, ZoneLen: 2, Interval: 15 * time.Millisecond}
	}

	final := opening
	if final.ZoneLen > 1 {
		final.ZoneLen--
	}
	return BossPlan{Opening: opening, Final: final}
}
