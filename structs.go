package main

import "time"

var appversion = "0.1.0"

const (
	kb = 1 << 10
	mb = 1 << 20
	gb = 1 << 30
	tb = 1 << 40
	pb = 1 << 50
	eb = 1 << 60
)

// Unit represents a data size unit with its name and threshold.
type Unit struct {
	Name      string
	Threshold uint64
}

// Predefined binary units in descending order.
var units = []Unit{
	{"EiB", eb},
	{"PiB", pb},
	{"TiB", tb},
	{"GiB", gb},
	{"MiB", mb},
	{"KiB", kb},
}

const (
	defaultIconPath = "/Applications/System-Tray-Mounter.app/Contents/Resources/icon.png"
	defaultInterval = 500 * time.Millisecond

	// quitEntryID is the same in every menu; disk entry IDs are not.
	quitEntryID = "quit"
)

// Volume represents one mounted disk partition
type Volume struct {
	Name       string // Volume name as shown in Finder
	Device     string // Device node, e.g. /dev/disk4s1
	MountPath  string
	Filesystem string
	Available  uint64 // Bytes available to the user
	Total      uint64 // Filesystem size in bytes
	Removable  bool   // Removable, ejectable or external media
	Boot       bool   // Mounted as the root filesystem
}

// MenuEntry is one selectable line of the tray menu.
type MenuEntry struct {
	ID       string
	Label    string
	Disabled bool
}

// Menu is a complete tray menu. It is built from scratch on every refresh
// and never modified after being displayed.
type Menu struct {
	Entries []MenuEntry // Disk entries followed by Quit
	Quit    MenuEntry
	Targets map[string]Volume // Entry ID -> volume it was built from
	Status  string            // Shown as a disabled header when not empty
}
