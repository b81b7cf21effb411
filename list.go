package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

func newListCommand(opts *options) *cobra.Command {
	var all, watch bool

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"l", "ls"},
		Short:   "List mounted volumes",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			volumes, err := newSystemEnumerator()
			if err != nil {
				return err
			}

			if watch {
				logger := newLogger(os.Stderr, opts.verbose)
				defer func() { _ = logger.Sync() }()

				ctx, stop := signalContext(cmd.Context())
				defer stop()

				tray := newLiveTray(cmd.OutOrStdout())
				loop := NewLoop(volumes, tray, newDiskutilUnmounter(opts.unmountTimeout), opts.interval, logger.Sugar())
				if err := loop.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
					return err
				}
				return nil
			}

			found, err := volumes.Volumes(cmd.Context())
			if err != nil {
				if len(found) == 0 {
					return err
				}
				fmt.Fprintf(cmd.ErrOrStderr(), "Warning: %v\n", err)
			}
			printVolumes(cmd.OutOrStdout(), found, all)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&all, "all", "a", false, "Include the boot volume")
	cmd.Flags().BoolVarP(&watch, "watch", "w", false, "Keep the list updated until interrupted")
	return cmd
}

// printVolumes writes one table row per volume, leaving out the boot
// volume unless all is set.
func printVolumes(out io.Writer, volumes []Volume, all bool) {
	t := table.NewWriter()
	t.SetOutputMirror(out)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Name", "Available", "Total", "Mount", "Device", "Removable"})

	for _, v := range volumes {
		if v.Boot && !all {
			continue
		}
		removable := "no"
		if v.Removable {
			removable = "yes"
		}
		t.AppendRow(table.Row{v.Name, formatBytes(v.Available), formatBytes(v.Total), v.MountPath, v.Device, removable})
	}

	t.Render()
}
