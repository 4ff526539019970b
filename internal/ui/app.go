package ui

import (
	"context"
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/mossreef/angler/internal/bite"
	"github.com/mossreef/angler/internal/game"
)

// App owns the terminal and drives every screen. Screens are plain
// methods: they draw, block on keys, call into the game session and
// return to the menu.
type App struct {
	screen tcell.Screen
	game   *game.Game
	waiter *bite.Waiter
	audio  *Audio

	events chan tcell.Event
	status string
}

func NewApp(g *game.Game, waitMin, waitMax time.Duration) (*App, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("failed to open terminal: %w", err)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("failed to init terminal: %w", err)
	}

	a := &App{
		screen: screen,
		game:   g,
		waiter: bite.NewWaiter(waitMin, waitMax),
		audio:  NewAudio(),
		events: make(chan tcell.Event, 64),
	}
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				close(a.events)
				return
			}
			a.events <- ev
		}
	}()
	return a, nil
}

// Run drives the main menu until the player quits.
func (a *App) Run(ctx context.Context) error {
	defer a.screen.Fini()

	items := []string{
		"Go Fishing",
		"Fast Fishing",
		"Inventory & Sell",
		"Shop",
		"Travel",
		"Quests",
		"Discovery",
		"Fish Traps",
		"Quit",
	}

	sel := 0
	for {
		a.drawMenu("ANGLER", items, sel)
		ev, ok := a.nextKey(ctx)
		if !ok {
			return ctx.Err()
		}
		switch {
		case ev.Key() == tcell.KeyEscape, ev.Key() == tcell.KeyCtrlC:
			return nil
		case ev.Key() == tcell.KeyUp:
			sel = (sel + len(items) - 1) % len(items)
		case ev.Key() == tcell.KeyDown:
			sel = (sel + 1) % len(items)
		case ev.Key() == tcell.KeyEnter:
			var err error
			switch sel {
			case 0:
				err = a.fishingScreen(ctx)
			case 1:
				err = a.fastFishingScreen(ctx)
			case 2:
				err = a.sellScreen(ctx)
			case 3:
				err = a.shopScreen(ctx)
			case 4:
				err = a.travelScreen(ctx)
			case 5:
				err = a.questScreen(ctx)
			case 6:
				err = a.discoveryScreen(ctx)
			case 7:
				err = a.trapScreen(ctx)
			case 8:
				return nil
			}
			if err != nil {
				if ctx.Err() != nil {
					return ctx.Err()
				}
				a.status = err.Error()
			}
		}
	}
}

// nextKey blocks for the next key press, dropping other event kinds.
func (a *App) nextKey(ctx context.Context) (*tcell.EventKey, bool) {
	for {
		select {
		case <-ctx.Done():
			return nil, false
		case ev, ok := <-a.events:
			if !ok {
				return nil, false
			}
			switch ev := ev.(type) {
			case *tcell.EventKey:
				return ev, true
			case *tcell.EventResize:
				a.screen.Sync()
			}
		}
	}
}

// keyWithin waits up to d for a key press; nil means the timer won.
func (a *App) keyWithin(ctx context.Context, d time.Duration) (*tcell.EventKey, bool) {
	t := time.NewTimer(d)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return nil, false
		case <-t.C:
			return nil, true
		case ev, ok := <-a.events:
			if !ok {
				return nil, false
			}
			switch ev := ev.(type) {
			case *tcell.EventKey:
				return ev, true
			case *tcell.EventResize:
				a.screen.Sync()
			}
		}
	}
}

func (a *App) drawText(x, y int, style tcell.Style, s string) int {
	for _, r := range s {
		a.screen.SetContent(x, y, r, nil, style)
		x++
	}
	return x
}

// statusBar paints the player strip at the top of every screen.
func (a *App) statusBar() {
	s := a.game.State
	line := fmt.Sprintf("%s | Lv %d (%d xp) | %.2f coins | Streak %d | Day %d %02d:00 %s, %s",
		s.Zone, s.Level, s.XP, s.Balance, s.Streak, s.Day, s.Hour, a.game.TimeOfDay(), a.game.Season())
	a.drawText(1, 0, styleStatus, line)

	var tags string
	if s.DailyEvent != "" {
		tags = s.DailyEvent + ": " + game.EventEffect(s.DailyEvent)
	}
	if s.MoonEvent != "" {
		if tags != "" {
			tags += " | "
		}
		tags += s.MoonEvent
	}
	if tags != "" {
		a.drawText(1, 1, styleDim, tags)
	}
}

func (a *App) drawMenu(title string, items []string, sel int) {
	a.screen.Clear()
	a.statusBar()
	a.drawText(1, 3, styleTitle, title)
	for i, it := range items {
		style := styleDefault
		prefix := "  "
		if i == sel {
			style = styleSelect
			prefix = "> "
		}
		a.drawText(1, 5+i, style, prefix+it)
	}
	if a.status != "" {
		a.drawText(1, 5+len(items)+1, styleBad, a.status)
		a.status = ""
	}
	a.drawText(1, 5+len(items)+3, styleDim, "arrows move, enter selects, esc quits")
	a.screen.Show()
}

// pickFrom runs a one-shot selection list and returns the chosen index,
// or -1 when the player backs out.
func (a *App) pickFrom(ctx context.Context, title string, items []string) int {
	if len(items) == 0 {
		return -1
	}
	sel := 0
	for {
		a.drawMenu(title, items, sel)
		ev, ok := a.nextKey(ctx)
		if !ok {
			return -1
		}
		switch {
		case ev.Key() == tcell.KeyEscape:
			return -1
		case ev.Key() == tcell.KeyUp:
			sel = (sel + len(items) - 1) % len(items)
		case ev.Key() == tcell.KeyDown:
			sel = (sel + 1) % len(items)
		case ev.Key() == tcell.KeyEnter:
			return sel
		}
	}
}

// prompt runs a one-line editor at the bottom of the screen.
func (a *App) prompt(ctx context.Context, label string) (string, bool) {
	var buf []rune
	_, h := a.screen.Size()
	y := h - 2
	for {
		a.drawText(1, y, styleDefault, label+" "+string(buf)+"  ")
		a.screen.ShowCursor(1+len(label)+1+len(buf), y)
		a.screen.Show()

		ev, ok := a.nextKey(ctx)
		if !ok {
			a.screen.HideCursor()
			return "", false
		}
		switch ev.Key() {
		case tcell.KeyEscape:
			a.screen.HideCursor()
			return "", false
		case tcell.KeyEnter:
			a.screen.HideCursor()
			return string(buf), true
		case tcell.KeyBackspace, tcell.KeyBackspace2:
			if len(buf) > 0 {
				buf = buf[:len(buf)-1]
			}
		case tcell.KeyRune:
			buf = append(buf, ev.Rune())
		}
	}
}

// pause shows a message and waits for any key.
func (a *App) pause(ctx context.Context, lines ...string) {
	_, h := a.screen.Size()
	y := h - len(lines) - 2
	if y < 3 {
		y = 3
	}
	for i, l := range lines {
		a.drawText(1, y+i, styleDefault, l)
	}
	a.drawText(1, y+len(lines), styleDim, "press any key")
	a.screen.Show()
	a.nextKey(ctx)
}

func (a *App) clear() {
	a.screen.Clear()
	a.statusBar()
}
