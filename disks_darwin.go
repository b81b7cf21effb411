//go:build darwin

package main

import (
	"context"

	"github.com/shirou/gopsutil/v3/disk"
	"golang.org/x/sys/unix"
)

// Mount flags from <sys/mount.h>
const (
	mntRemovable  = 0x00000200
	mntRootFS     = 0x00004000
	mntDontBrowse = 0x00100000
)

func newSystemEnumerator() (Enumerator, error) {
	return newVolumeSource(
		func(ctx context.Context) ([]disk.PartitionStat, error) {
			return disk.PartitionsWithContext(ctx, false)
		},
		disk.UsageWithContext,
		statfsFlags,
		describeWith(execRunner),
	), nil
}

// statfsFlags classifies a mount from its statfs flags. Hidden covers the
// system volumes under /System/Volumes that Finder does not show either.
func statfsFlags(mountPath string) (mountFlags, error) {
	var fs unix.Statfs_t
	if err := unix.Statfs(mountPath, &fs); err != nil {
		return mountFlags{}, err
	}

	return mountFlags{
		Boot:      fs.Flags&mntRootFS != 0,
		Hidden:    fs.Flags&mntDontBrowse != 0,
		Removable: fs.Flags&mntRemovable != 0,
	}, nil
}
