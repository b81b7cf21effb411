package main

import (
	"fmt"
)

// BuildMenu turns a volume list into a tray menu. The boot volume gets no
// entry; every other volume gets one, in order, and Quit comes last. Each
// disk entry receives a fresh ID from newID which maps back to its volume
// through Menu.Targets.
func BuildMenu(volumes []Volume, newID func() string) Menu {
	menu := Menu{
		Entries: make([]MenuEntry, 0, len(volumes)+1),
		Targets: make(map[string]Volume, len(volumes)),
	}

	for _, volume := range volumes {
		if volume.Boot {
			continue
		}
		id := newID()
		menu.Entries = append(menu.Entries, MenuEntry{
			ID:       id,
			Label:    volumeLabel(volume),
			Disabled: !volume.Removable,
		})
		menu.Targets[id] = volume
	}

	menu.Quit = MenuEntry{ID: quitEntryID, Label: "Quit"}
	menu.Entries = append(menu.Entries, menu.Quit)
	return menu
}

// volumeLabel formats "<name>: <available>/<total>"
func volumeLabel(v Volume) string {
	return fmt.Sprintf("%s: %s/%s", v.Name, formatBytes(v.Available), formatBytes(v.Total))
}

// DiskEntries returns the entries before Quit.
func (m Menu) DiskEntries() []MenuEntry {
	if len(m.Entries) == 0 {
		return nil
	}
	return m.Entries[:len(m.Entries)-1]
}
