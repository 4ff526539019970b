package ui

import (
	"github.com/gdamore/tcell/v2"

	"github.com/mossreef/angler/internal/fish"
)

var (
	styleDefault = tcell.StyleDefault
	styleTitle   = tcell.StyleDefault.Foreground(tcell.ColorAqua).Bold(true)
	styleStatus  = tcell.StyleDefault.Foreground(tcell.ColorYellow)
	styleDim     = tcell.StyleDefault.Foreground(tcell.ColorGray)
	styleGood    = tcell.StyleDefault.Foreground(tcell.ColorGreen)
	styleBad     = tcell.StyleDefault.Foreground(tcell.ColorRed)
	styleSelect  = tcell.StyleDefault.Reverse(true)

	styleZone    = tcell.StyleDefault.Foreground(tcell.ColorGreen)
	stylePointer = tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true)
	styleWater   = tcell.StyleDefault.Foreground(tcell.ColorBlue)
)

var tierStyles = map[fish.RarityTier]tcell.Style{
	fish.TierCommon:    tcell.StyleDefault.Foreground(tcell.ColorSilver),
	fish.TierUncommon:  tcell.StyleDefault.Foreground(tcell.ColorGreen),
	fish.TierRare:      tcell.StyleDefault.Foreground(tcell.ColorBlue),
	fish.TierEpic:      tcell.StyleDefault.Foreground(tcell.ColorPurple),
	fish.TierLegendary: tcell.StyleDefault.Foreground(tcell.ColorOrange),
	fish.TierMythical:  tcell.StyleDefault.Foreground(tcell.ColorRed),
	fish.TierExotic:    tcell.StyleDefault.Foreground(tcell.ColorFuchsia).Bold(true),
	fish.TierBoss:      tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true),
}

func tierStyle(t fish.RarityTier) tcell.Style {
	if s, ok := tierStyles[t]; ok {
		return s
	}
	return styleDefault
}
