package main

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"
)

// commandRunner runs an external command and returns its combined output.
type commandRunner func(ctx context.Context, name string, args ...string) ([]byte, error)

func execRunner(ctx context.Context, name string, args ...string) ([]byte, error) {
	return exec.CommandContext(ctx, name, args...).CombinedOutput()
}

// diskDescription is the part of `diskutil info` we care about
type diskDescription struct {
	Name           string
	RemovableMedia string // "Removable", "Fixed", or "Yes"/"No" on older releases
	Ejectable      bool
	External       bool
}

// removable reports whether the user can be expected to detach the media.
// Disk images, USB sticks, SD cards and external drives all qualify.
func (d diskDescription) removable() bool {
	switch d.RemovableMedia {
	case "Removable", "Yes":
		return true
	}
	return d.Ejectable || d.External
}

// describeWith returns a function that classifies the volume mounted at a
// path by running `diskutil info`.
func describeWith(run commandRunner) func(ctx context.Context, mountPath string) (diskDescription, error) {
	return func(ctx context.Context, mountPath string) (diskDescription, error) {
		output, err := run(ctx, "diskutil", "info", mountPath)
		if err != nil {
			return diskDescription{}, fmt.Errorf("diskutil info %s: %w: %s", mountPath, err, strings.TrimSpace(string(output)))
		}
		return parseDiskutilInfo(output), nil
	}
}

// parseDiskutilInfo reads the "Key: Value" lines printed by `diskutil info`.
func parseDiskutilInfo(output []byte) diskDescription {
	var desc diskDescription

	scanner := bufio.NewScanner(bytes.NewReader(output))
	for scanner.Scan() {
		key, value, ok := strings.Cut(scanner.Text(), ":")
		if !ok {
			continue
		}
		value = strings.TrimSpace(value)

		switch strings.TrimSpace(key) {
		case "Volume Name":
			desc.Name = value
		case "Removable Media":
			desc.RemovableMedia = value
		case "Ejectable":
			desc.Ejectable = value == "Yes"
		case "Device Location":
			desc.External = value == "External"
		case "Internal":
			// Older releases print "Internal: No" instead of a location
			if value == "No" {
				desc.External = true
			}
		}
	}

	return desc
}
