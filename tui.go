package main

import (
	"fmt"
	"sync"

	tcell "github.com/gdamore/tcell/v2"
)

// terminalTray is a full-screen stand-in for the menu-bar menu
type terminalTray struct {
	screen    tcell.Screen
	selected  chan string
	done      chan struct{}
	closeOnce sync.Once

	// Owned by the screen goroutine
	menu   Menu
	cursor int
}

// newTerminalTray initialises screen and starts handling its events.
func newTerminalTray(screen tcell.Screen) (*terminalTray, error) {
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize screen: %w", err)
	}

	screen.SetStyle(tcell.StyleDefault.
		Foreground(tcell.ColorWhite).
		Background(tcell.ColorBlack))
	screen.Clear()
	screen.Show()

	t := &terminalTray{
		screen:   screen,
		selected: make(chan string),
		done:     make(chan struct{}),
	}
	go t.run()
	return t, nil
}

// Display hands the menu to the screen goroutine.
func (t *terminalTray) Display(menu Menu) {
	_ = t.screen.PostEvent(tcell.NewEventInterrupt(menu))
}

func (t *terminalTray) Selections() <-chan string {
	return t.selected
}

func (t *terminalTray) Close() {
	t.closeOnce.Do(func() {
		close(t.done)
		t.screen.Fini()
	})
}

func (t *terminalTray) run() {
	defer close(t.selected)

	for {
		switch ev := t.screen.PollEvent().(type) {
		case nil:
			return
		case *tcell.EventInterrupt:
			if menu, ok := ev.Data().(Menu); ok {
				t.menu = menu
				if t.cursor >= len(menu.Entries) {
					t.cursor = len(menu.Entries) - 1
				}
				if t.cursor < 0 {
					t.cursor = 0
				}
			}
		case *tcell.EventKey:
			if id, ok := t.handleKeyEvent(ev); ok {
				select {
				case t.selected <- id:
				case <-t.done:
					return
				}
			}
		case *tcell.EventResize:
			t.screen.Sync()
		}

		select {
		case <-t.done:
			return
		default:
		}
		t.render()
	}
}

// handleKeyEvent moves the cursor and returns the ID of a picked entry.
func (t *terminalTray) handleKeyEvent(ev *tcell.EventKey) (string, bool) {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return quitEntryID, true
	case tcell.KeyUp:
		if t.cursor > 0 {
			t.cursor--
		}
	case tcell.KeyDown:
		if t.cursor < len(t.menu.Entries)-1 {
			t.cursor++
		}
	case tcell.KeyEnter:
		if t.cursor < len(t.menu.Entries) {
			entry := t.menu.Entries[t.cursor]
			if !entry.Disabled {
				return entry.ID, true
			}
		}
	case tcell.KeyRune:
		if ev.Rune() == 'q' || ev.Rune() == 'Q' {
			return quitEntryID, true
		}
	}
	return "", false
}

func (t *terminalTray) render() {
	t.screen.Clear()
	width, height := t.screen.Size()

	title := "=== Mounted Volumes ==="
	drawText(t.screen, (width-len(title))/2, 0, width, title, tcell.StyleDefault.Bold(true))

	y := 2
	if t.menu.Status != "" {
		drawText(t.screen, 0, y, width, t.menu.Status, tcell.StyleDefault.Foreground(tcell.ColorRed))
		y += 2
	}

	for i, entry := range t.menu.Entries {
		if y >= height-1 {
			break
		}

		style := tcell.StyleDefault
		prefix := "  "
		if entry.Disabled {
			style = style.Dim(true)
		}
		if i == t.cursor {
			style = tcell.StyleDefault.
				Foreground(tcell.ColorBlack).
				Background(tcell.ColorWhite)
			prefix = "> "
		}
		drawText(t.screen, 0, y, width, prefix+entry.Label, style)
		y++
	}

	instructions := "↑↓: Navigate | Enter: Unmount | Q/Ctrl+C: Quit"
	drawText(t.screen, (width-len(instructions))/2, height-1, width, instructions, tcell.StyleDefault.Dim(true))

	t.screen.Show()
}

// drawText writes text starting at x, clipped to width
func drawText(screen tcell.Screen, x, y, width int, text string, style tcell.Style) {
	if x < 0 {
		x = 0
	}
	for _, ch := range text {
		if x >= width {
			break
		}
		screen.SetContent(x, y, ch, nil, style)
		x++
	}
}
