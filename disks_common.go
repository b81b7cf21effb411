package main

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/hashicorp/go-multierror"
	"github.com/shirou/gopsutil/v3/disk"
)

var errUnsupportedPlatform = errors.New("volume enumeration is only supported on macOS")

// Enumerator lists the volumes currently mounted
// Platform-specific constructors in disks_darwin.go and disks_other.go
type Enumerator interface {
	Volumes(ctx context.Context) ([]Volume, error)
}

// mountFlags is the classification read from the mount table itself.
type mountFlags struct {
	Boot      bool
	Hidden    bool
	Removable bool
}

// volumeSource builds Volumes out of the mount table, statfs flags,
// `diskutil info` and filesystem usage. Nothing is kept between calls.
type volumeSource struct {
	partitions func(ctx context.Context) ([]disk.PartitionStat, error)
	usage      func(ctx context.Context, path string) (*disk.UsageStat, error)
	flags      func(mountPath string) (mountFlags, error)
	describe   func(ctx context.Context, mountPath string) (diskDescription, error)
}

func newVolumeSource(
	partitions func(ctx context.Context) ([]disk.PartitionStat, error),
	usage func(ctx context.Context, path string) (*disk.UsageStat, error),
	flags func(mountPath string) (mountFlags, error),
	describe func(ctx context.Context, mountPath string) (diskDescription, error),
) *volumeSource {
	return &volumeSource{
		partitions: partitions,
		usage:      usage,
		flags:      flags,
		describe:   describe,
	}
}

// Volumes returns the browsable, device-backed volumes with the boot volume
// first and the rest ordered by mount path. Volumes that cannot be read are
// left out and reported through the returned error, which may accompany a
// non-empty result.
func (s *volumeSource) Volumes(ctx context.Context) ([]Volume, error) {
	partitions, err := s.partitions(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing mounts: %w", err)
	}

	var (
		volumes []Volume
		errs    *multierror.Error
	)

	for _, part := range partitions {
		if !strings.HasPrefix(part.Device, "/dev/") {
			continue
		}

		flags, err := s.flags(part.Mountpoint)
		if err != nil {
			errs = multierror.Append(errs, fmt.Errorf("%s: reading mount flags: %w", part.Mountpoint, err))
			continue
		}
		if flags.Hidden {
			continue
		}

		desc, err := s.describe(ctx, part.Mountpoint)
		if err != nil {
			// Still list the volume, classified by its mount flags only
			errs = multierror.Append(errs, err)
		}

		usage, err := s.usage(ctx, part.Mountpoint)
		if err != nil {
			errs = multierror.Append(errs, fmt.Errorf("%s: reading usage: %w", part.Mountpoint, err))
			continue
		}

		volumes = append(volumes, Volume{
			Name:       volumeName(desc.Name, part),
			Device:     part.Device,
			MountPath:  part.Mountpoint,
			Filesystem: part.Fstype,
			Available:  usage.Free,
			Total:      usage.Total,
			Removable:  flags.Removable || desc.removable(),
			Boot:       flags.Boot || part.Mountpoint == "/",
		})
	}

	sortVolumes(volumes)
	return volumes, errs.ErrorOrNil()
}

// volumeName prefers the label diskutil reports and falls back to the last
// element of the mount path, or the device for the root filesystem.
func volumeName(label string, part disk.PartitionStat) string {
	if label != "" && !strings.HasPrefix(label, "Not applicable") {
		return label
	}
	if part.Mountpoint == "/" {
		return filepath.Base(part.Device)
	}
	return filepath.Base(part.Mountpoint)
}

func sortVolumes(volumes []Volume) {
	sort.SliceStable(volumes, func(i, j int) bool {
		if volumes[i].Boot != volumes[j].Boot {
			return volumes[i].Boot
		}
		return volumes[i].MountPath < volumes[j].MountPath
	})
}
