//go:build darwin

package main

import (
	"context"
	"runtime"
	"sync"

	"github.com/getlantern/systray"
	"go.uber.org/zap"
)

func init() {
	// The menu bar has to be driven from the main thread
	runtime.LockOSThread()
}

// runMenuBar shows the menu-bar icon and runs the loop built by newLoop
// against it. It returns once the loop has stopped and the icon is gone.
func runMenuBar(ctx context.Context, icon []byte, newLoop func(Tray) *Loop) error {
	errc := make(chan error, 1)

	onReady := func() {
		tray := newSystrayTray(icon)
		go func() {
			err := newLoop(tray).Run(ctx)
			tray.Close()
			errc <- err
		}()
	}
	onExit := func() {
		zap.S().Info("Tray closed")
	}

	systray.Run(onReady, onExit)

	select {
	case err := <-errc:
		return err
	default:
		return nil
	}
}

// systrayTray is the macOS menu-bar icon. systray can only append items, so
// a fixed set of hidden items sits above Quit and is retitled on Display.
type systrayTray struct {
	status *systray.MenuItem
	slots  []*systray.MenuItem
	quit   *systray.MenuItem

	bound *slotBindings

	selected  chan string
	done      chan struct{}
	closeOnce sync.Once
}

// newSystrayTray must be called from the systray onReady callback.
func newSystrayTray(icon []byte) *systrayTray {
	systray.SetIcon(icon)
	systray.SetTooltip("mountd - mounted disk volumes")

	t := &systrayTray{
		bound:    newSlotBindings(traySlots),
		selected: make(chan string),
		done:     make(chan struct{}),
	}

	t.status = systray.AddMenuItem("", "")
	t.status.Disable()
	t.status.Hide()

	for i := 0; i < traySlots; i++ {
		item := systray.AddMenuItem("", "Unmount this volume")
		item.Hide()
		t.slots = append(t.slots, item)
		go t.forward(item.ClickedCh, func() string { return t.bound.lookup(i) })
	}

	systray.AddSeparator()
	t.quit = systray.AddMenuItem("Quit", "Quit mountd")
	go t.forward(t.quit.ClickedCh, func() string { return quitEntryID })

	return t
}

// forward turns clicks on one menu item into entry IDs.
func (t *systrayTray) forward(clicked <-chan struct{}, entry func() string) {
	for {
		select {
		case <-t.done:
			return
		case <-clicked:
			id := entry()
			if id == "" {
				continue
			}
			select {
			case t.selected <- id:
			case <-t.done:
				return
			}
		}
	}
}

func (t *systrayTray) Display(menu Menu) {
	if menu.Status != "" {
		t.status.SetTitle(menu.Status)
		t.status.Show()
	} else {
		t.status.Hide()
	}

	layout := layoutSlots(menu.DiskEntries(), len(t.slots))
	t.bound.rebind(layout, func(i int, slot slotState) {
		item := t.slots[i]
		if !slot.Visible {
			item.Hide()
			return
		}
		item.SetTitle(slot.Title)
		if slot.Enabled {
			item.Enable()
		} else {
			item.Disable()
		}
		item.Show()
	})

	t.quit.SetTitle(menu.Quit.Label)
}

func (t *systrayTray) Selections() <-chan string {
	return t.selected
}

func (t *systrayTray) Close() {
	t.closeOnce.Do(func() {
		close(t.done)
		systray.Quit()
	})
}
