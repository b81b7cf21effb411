package main

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Loop drives a Tray: it refreshes the menu on every tick and acts on the
// entries the user selects. All state changes happen on the goroutine
// calling Run.
type Loop struct {
	volumes   Enumerator
	tray      Tray
	unmounter Unmounter
	interval  time.Duration
	newID     func() string
	log       *zap.SugaredLogger
}

// loopState is owned by Run
type loopState struct {
	menu      Menu
	readErr   string // Problem reading disks on the last tick
	actionErr string // Problem with the last unmount
}

func NewLoop(volumes Enumerator, tray Tray, unmounter Unmounter, interval time.Duration, log *zap.SugaredLogger) *Loop {
	if interval <= 0 {
		interval = defaultInterval
	}
	return &Loop{
		volumes:   volumes,
		tray:      tray,
		unmounter: unmounter,
		interval:  interval,
		newID:     uuid.NewString,
		log:       log,
	}
}

// Run refreshes immediately, then on every tick, until Quit is selected,
// the tray goes away or ctx is done. Quit returns nil.
func (l *Loop) Run(ctx context.Context) error {
	ticker := time.NewTicker(l.interval)
	defer ticker.Stop()

	state := &loopState{}
	l.refresh(ctx, state)

	for {
		select {
		case <-ctx.Done():
			l.tray.Close()
			return ctx.Err()

		case <-ticker.C:
			l.refresh(ctx, state)

		case id, ok := <-l.tray.Selections():
			if !ok {
				l.log.Debug("Tray closed its selection channel")
				return nil
			}
			if id == quitEntryID {
				l.log.Info("Quit selected")
				l.tray.Close()
				return nil
			}
			if l.selected(ctx, state, id) {
				l.refresh(ctx, state)
			}
		}
	}
}

// refresh enumerates, rebuilds the menu and hands it to the tray. When the
// disks cannot be listed at all the previous entries stay up.
func (l *Loop) refresh(ctx context.Context, state *loopState) {
	volumes, err := l.volumes.Volumes(ctx)

	var menu Menu
	switch {
	case err != nil && len(volumes) == 0:
		l.log.Errorw("Failed to read disks", "error", err)
		state.readErr = "Unable to read disks"
		menu = state.menu
		if menu.Entries == nil {
			menu = BuildMenu(nil, l.newID)
		}
	case err != nil:
		l.log.Warnw("Some disks could not be read", "error", err)
		state.readErr = "Some disks could not be read"
		menu = BuildMenu(volumes, l.newID)
	default:
		state.readErr = ""
		menu = BuildMenu(volumes, l.newID)
	}

	menu.Status = state.status()
	state.menu = menu
	l.tray.Display(menu)
}

// selected handles a click on a disk entry and reports whether anything
// was attempted.
func (l *Loop) selected(ctx context.Context, state *loopState, id string) bool {
	volume, ok := state.menu.Targets[id]
	if !ok {
		l.log.Debugw("Ignoring selection from an older menu", "entry", id)
		return false
	}

	if !volume.Removable {
		l.log.Debugw("Ignoring selection of a fixed volume", "volume", volume.Name, "mount", volume.MountPath)
		return false
	}

	l.log.Infow("Unmounting", "volume", volume.Name, "mount", volume.MountPath)
	if err := l.unmounter.Unmount(ctx, volume.MountPath); err != nil {
		l.log.Errorw("Unmount failed", "volume", volume.Name, "error", err)
		state.actionErr = fmt.Sprintf("Could not unmount %s", volume.Name)
		return true
	}

	state.actionErr = ""
	return true
}

func (s *loopState) status() string {
	var parts []string
	for _, msg := range []string{s.actionErr, s.readErr} {
		if msg != "" {
			parts = append(parts, msg)
		}
	}
	return strings.Join(parts, " · ")
}
