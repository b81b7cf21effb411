package main

import (
	"fmt"
	"strings"
)

// formatBytes renders a byte count with binary prefixes and two decimals,
// e.g. "11.77 MiB". Counts below 1 KiB are shown as plain bytes.
func formatBytes(n uint64) string {
	for _, unit := range units {
		if n >= unit.Threshold {
			return fmt.Sprintf("%.2f %s", float64(n)/float64(unit.Threshold), unit.Name)
		}
	}
	return fmt.Sprintf("%d B", n)
}

// foregroundArgs returns args with --foreground set, for re-executing the
// tray in the background.
func foregroundArgs(args []string) []string {
	out := make([]string, 0, len(args)+1)
	for _, arg := range args {
		if arg == "--foreground" || strings.HasPrefix(arg, "--foreground=") {
			continue
		}
		out = append(out, arg)
	}
	return append(out, "--foreground")
}
