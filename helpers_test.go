package main

import (
	"context"
	"sync"
	"testing"
	"time"

	"go.uber.org/zap"
)

const testTimeout = 2 * time.Second

type fakeEnumerator struct {
	mu      sync.Mutex
	volumes []Volume
	err     error
	calls   int
}

func (e *fakeEnumerator) Volumes(context.Context) ([]Volume, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.calls++
	out := append([]Volume(nil), e.volumes...)
	return out, e.err
}

func (e *fakeEnumerator) set(volumes []Volume, err error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.volumes = volumes
	e.err = err
}

type fakeTray struct {
	displayed chan Menu
	selected  chan string

	mu     sync.Mutex
	closed bool
}

func newFakeTray() *fakeTray {
	return &fakeTray{
		displayed: make(chan Menu, 64),
		selected:  make(chan string),
	}
}

func (t *fakeTray) Display(menu Menu) {
	select {
	case t.displayed <- menu:
	default:
	}
}

func (t *fakeTray) Selections() <-chan string {
	return t.selected
}

func (t *fakeTray) Close() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.closed = true
}

func (t *fakeTray) isClosed() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.closed
}

// nextMenu waits for the next Display call.
func (t *fakeTray) nextMenu(tb testing.TB) Menu {
	tb.Helper()
	select {
	case menu := <-t.displayed:
		return menu
	case <-time.After(testTimeout):
		tb.Fatal("timed out waiting for a menu")
		return Menu{}
	}
}

// menuWithStatus waits for a menu carrying a status line.
func (t *fakeTray) menuWithStatus(tb testing.TB) Menu {
	tb.Helper()
	deadline := time.After(testTimeout)
	for {
		select {
		case menu := <-t.displayed:
			if menu.Status != "" {
				return menu
			}
		case <-deadline:
			tb.Fatal("timed out waiting for a status line")
			return Menu{}
		}
	}
}

// pick sends a selection as the user would.
func (t *fakeTray) pick(tb testing.TB, id string) {
	tb.Helper()
	select {
	case t.selected <- id:
	case <-time.After(testTimeout):
		tb.Fatalf("timed out selecting %q", id)
	}
}

type fakeUnmounter struct {
	mu    sync.Mutex
	paths []string
	err   error
}

func (u *fakeUnmounter) Unmount(_ context.Context, mountPath string) error {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.paths = append(u.paths, mountPath)
	return u.err
}

func (u *fakeUnmounter) unmounted() []string {
	u.mu.Lock()
	defer u.mu.Unlock()
	return append([]string(nil), u.paths...)
}

func bootVolume() Volume {
	return Volume{Name: "Macintosh HD", Device: "/dev/disk3s1s1", MountPath: "/", Available: 200 * gb, Total: 500 * gb, Boot: true}
}

func usbVolume() Volume {
	return Volume{Name: "USB", Device: "/dev/disk4s1", MountPath: "/Volumes/USB", Available: gb, Total: 2 * gb, Removable: true}
}

func fixedVolume() Volume {
	return Volume{Name: "Data", Device: "/dev/disk0s3", MountPath: "/Volumes/Data", Available: 10 * gb, Total: 100 * gb}
}

// entryFor returns the ID of the entry built from the volume mounted at path.
func entryFor(tb testing.TB, menu Menu, mountPath string) string {
	tb.Helper()
	for id, volume := range menu.Targets {
		if volume.MountPath == mountPath {
			return id
		}
	}
	tb.Fatalf("no entry for %s", mountPath)
	return ""
}

func labels(entries []MenuEntry) []string {
	out := make([]string, 0, len(entries))
	for _, entry := range entries {
		out = append(out, entry.Label)
	}
	return out
}

func nopLogger() *zap.SugaredLogger {
	return zap.NewNop().Sugar()
}
