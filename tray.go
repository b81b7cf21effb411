package main

import (
	"fmt"
	"sync"
)

// Tray shows a Menu and reports which entries the user picks
type Tray interface {
	// Display replaces whatever menu is showing.
	Display(menu Menu)
	// Selections yields the IDs of picked entries. A nil channel means the
	// tray never produces any.
	Selections() <-chan string
	// Close tears the tray down. It is safe to call more than once.
	Close()
}

// traySlots is how many disk entries the menu-bar menu can hold
const traySlots = 24

// slotState is what one pre-allocated menu item should show
type slotState struct {
	ID      string
	Title   string
	Visible bool
	Enabled bool
}

// layoutSlots maps disk entries onto n menu items. If they do not fit, the
// last item summarises the rest.
func layoutSlots(entries []MenuEntry, n int) []slotState {
	slots := make([]slotState, n)
	overflow := len(entries) > n

	for i := range slots {
		if i >= len(entries) {
			break
		}
		if overflow && i == n-1 {
			slots[i] = slotState{
				Title:   fmt.Sprintf("… and %d more", len(entries)-i),
				Visible: true,
			}
			break
		}
		slots[i] = slotState{
			ID:      entries[i].ID,
			Title:   entries[i].Label,
			Visible: true,
			Enabled: !entries[i].Disabled,
		}
	}

	return slots
}

// slotBindings holds the entry ID behind each menu item. A slot's title and
// its ID change under one lock, so a click is resolved against the ID that
// belongs to the title it was shown with.
type slotBindings struct {
	mu  sync.Mutex
	ids []string
}

func newSlotBindings(n int) *slotBindings {
	return &slotBindings{ids: make([]string, n)}
}

// rebind calls show for every slot and takes over its ID in the same step.
func (b *slotBindings) rebind(layout []slotState, show func(i int, slot slotState)) {
	b.mu.Lock()
	defer b.mu.Unlock()

	for i, slot := range layout {
		show(i, slot)
		b.ids[i] = slot.ID
	}
}

// lookup returns the ID behind slot i, or "" if nothing is bound to it.
func (b *slotBindings) lookup(i int) string {
	b.mu.Lock()
	defer b.mu.Unlock()

	if i < 0 || i >= len(b.ids) {
		return ""
	}
	return b.ids[i]
}
