package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	tcell "github.com/gdamore/tcell/v2"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// options are the flags shared by the commands
type options struct {
	foreground     bool
	iconPath       string
	interval       time.Duration
	logFile        string
	verbose        bool
	unmountTimeout time.Duration
}

func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:          "mountd",
		Short:        "Menu-bar list of mounted volumes with one-click unmount",
		Version:      appversion,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runTray(cmd.Context(), opts)
		},
	}

	cmd.Flags().BoolVar(&opts.foreground, "foreground", false, "Stay attached to the terminal instead of running in the background")
	cmd.Flags().StringVar(&opts.iconPath, "icon", defaultIconPath, "PNG image for the menu-bar icon")

	flags := cmd.PersistentFlags()
	flags.DurationVar(&opts.interval, "interval", defaultInterval, "How often the volume list is refreshed")
	flags.StringVar(&opts.logFile, "log-file", defaultLogFile(), "Where logs go when not attached to a terminal")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "Print debug logs")
	flags.DurationVar(&opts.unmountTimeout, "unmount-timeout", 0, "Give up on an unmount after this long (0 waits indefinitely)")

	cmd.AddCommand(
		newListCommand(opts),
		newTUICommand(opts),
		newUnmountCommand(opts),
		newVersionCommand(),
	)

	return cmd
}

func defaultLogFile() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(os.TempDir(), "mountd.log")
	}
	return filepath.Join(home, "Library", "Logs", "mountd.log")
}

func signalContext(parent context.Context) (context.Context, context.CancelFunc) {
	if parent == nil {
		parent = context.Background()
	}
	return signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
}

// runTray shows the menu-bar icon. Without --foreground it only checks the
// icon and starts a detached copy of itself.
func runTray(ctx context.Context, opts *options) error {
	icon, err := loadIcon(opts.iconPath)
	if err != nil {
		return err
	}

	if !opts.foreground {
		pid, err := detach(os.Args[1:], opts.logFile)
		if err != nil {
			return err
		}
		fmt.Printf("mountd running in the background (pid %d), logging to %s\n", pid, opts.logFile)
		return nil
	}

	logger := newLogger(os.Stdout, opts.verbose)
	defer func() { _ = logger.Sync() }()
	zap.ReplaceGlobals(logger)

	volumes, err := newSystemEnumerator()
	if err != nil {
		return err
	}

	ctx, stop := signalContext(ctx)
	defer stop()

	zap.S().Infow("Starting tray", "version", appversion, "interval", opts.interval)
	err = runMenuBar(ctx, icon, func(tray Tray) *Loop {
		return NewLoop(volumes, tray, newDiskutilUnmounter(opts.unmountTimeout), opts.interval, logger.Sugar())
	})
	if err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}

func newTUICommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Show the volume menu in the terminal",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			volumes, err := newSystemEnumerator()
			if err != nil {
				return err
			}

			logFile, err := openLogFile(opts.logFile)
			if err != nil {
				return fmt.Errorf("opening log file: %w", err)
			}
			defer logFile.Close()
			logger := newLogger(logFile, opts.verbose)
			defer func() { _ = logger.Sync() }()

			screen, err := tcell.NewScreen()
			if err != nil {
				return fmt.Errorf("failed to create screen: %w", err)
			}
			tray, err := newTerminalTray(screen)
			if err != nil {
				return err
			}
			defer tray.Close()

			ctx, stop := signalContext(cmd.Context())
			defer stop()

			loop := NewLoop(volumes, tray, newDiskutilUnmounter(opts.unmountTimeout), opts.interval, logger.Sugar())
			if err := loop.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
				return err
			}
			return nil
		},
	}
}

func newUnmountCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:     "unmount MOUNTPATH",
		Aliases: []string{"u"},
		Short:   "Unmount the volume mounted at MOUNTPATH",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signalContext(cmd.Context())
			defer stop()
			return newDiskutilUnmounter(opts.unmountTimeout).Unmount(ctx, args[0])
		},
	}
}

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "version",
		Aliases: []string{"v"},
		Short:   "Print the version",
		Args:    cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintln(cmd.OutOrStdout(), appversion)
		},
	}
}
