package main

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
)

// Unmounter detaches a mounted volume
type Unmounter interface {
	Unmount(ctx context.Context, mountPath string) error
}

// diskutilUnmounter unmounts volumes with `diskutil unmount`
type diskutilUnmounter struct {
	run     commandRunner
	timeout time.Duration // Zero waits for diskutil indefinitely
}

func newDiskutilUnmounter(timeout time.Duration) *diskutilUnmounter {
	return &diskutilUnmounter{run: execRunner, timeout: timeout}
}

// Unmount runs diskutil and waits for it to finish.
func (u *diskutilUnmounter) Unmount(ctx context.Context, mountPath string) error {
	if mountPath == "" {
		return errors.New("no mount path to unmount")
	}

	if u.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, u.timeout)
		defer cancel()
	}

	output, err := u.run(ctx, "diskutil", "unmount", mountPath)
	if err != nil {
		return fmt.Errorf("failed to unmount %s: %w: %s", mountPath, err, strings.TrimSpace(string(output)))
	}

	return nil
}
