package main

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLayoutSlots(t *testing.T) {
	entries := []MenuEntry{
		{ID: "a", Label: "USB: 1.00 GiB/2.00 GiB"},
		{ID: "b", Label: "Data: 10.00 GiB/100.00 GiB", Disabled: true},
	}

	slots := layoutSlots(entries, 4)

	assert.Equal(t, []slotState{
		{ID: "a", Title: "USB: 1.00 GiB/2.00 GiB", Visible: true, Enabled: true},
		{ID: "b", Title: "Data: 10.00 GiB/100.00 GiB", Visible: true},
		{},
		{},
	}, slots)
}

func TestLayoutSlots_Overflow(t *testing.T) {
	entries := []MenuEntry{
		{ID: "a", Label: "A"},
		{ID: "b", Label: "B"},
		{ID: "c", Label: "C"},
		{ID: "d", Label: "D"},
		{ID: "e", Label: "E"},
	}

	slots := layoutSlots(entries, 3)

	assert.Equal(t, []slotState{
		{ID: "a", Title: "A", Visible: true, Enabled: true},
		{ID: "b", Title: "B", Visible: true, Enabled: true},
		{Title: "… and 3 more", Visible: true},
	}, slots)
}

func TestLayoutSlots_ExactFit(t *testing.T) {
	entries := []MenuEntry{{ID: "a", Label: "A"}, {ID: "b", Label: "B"}}

	slots := layoutSlots(entries, 2)

	assert.Equal(t, "B", slots[1].Title)
	assert.Equal(t, "b", slots[1].ID)
}

func TestSlotBindings_ClickWaitsForRedraw(t *testing.T) {
	bindings := newSlotBindings(2)
	bindings.rebind(layoutSlots([]MenuEntry{{ID: "old-usb", Label: "USB: 1.00 GiB/2.00 GiB"}}, 2), func(int, slotState) {})
	require.Equal(t, "old-usb", bindings.lookup(0))

	clicked := make(chan string, 1)
	next := layoutSlots([]MenuEntry{
		{ID: "new-backup", Label: "Backup: 1.00 TiB/4.00 TiB"},
		{ID: "new-usb", Label: "USB: 1.00 GiB/2.00 GiB"},
	}, 2)

	var titles []string
	bindings.rebind(next, func(i int, slot slotState) {
		titles = append(titles, slot.Title)
		if i == 0 {
			// Slot 0 already shows the new title; the click must not see the old ID
			go func() { clicked <- bindings.lookup(0) }()
			select {
			case id := <-clicked:
				t.Errorf("lookup returned %q during redraw", id)
			case <-time.After(50 * time.Millisecond):
			}
		}
	})

	select {
	case id := <-clicked:
		assert.Equal(t, "new-backup", id)
	case <-time.After(testTimeout):
		t.Fatal("lookup never returned")
	}
	assert.Equal(t, []string{"Backup: 1.00 TiB/4.00 TiB", "USB: 1.00 GiB/2.00 GiB"}, titles)
	assert.Equal(t, "new-usb", bindings.lookup(1))
	assert.Empty(t, bindings.lookup(5))
}
