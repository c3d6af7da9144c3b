package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/nguyentantai21042004/subpoint/internal/watcher"
)

var flagWatchConcurrent int

var watchCmd = &cobra.Command{
	Use:   "watch [dir]",
	Short: "Watch a drop directory and process audio or subtitle files placed in it",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, log, err := setup()
		if err != nil {
			return err
		}

		dir := cfg.Paths.Watch
		if len(args) > 0 {
			dir = args[0]
		}
		if dir == "" {
			return fmt.Errorf("no watch directory: pass one as an argument or set paths.watch")
		}
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create watch directory: %w", err)
		}

		p := buildPipeline(cfg, log)
		handler := func(ctx context.Context, path string) error {
			_, err := p.ProcessLocal(ctx, path)
			return err
		}

		w, err := watcher.New(dir, handler, log, flagWatchConcurrent)
		if err != nil {
			return err
		}
		defer w.Stop()

		log.Info(cmd.Context(), "Watching %s, drop audio or subtitle files to process them", dir)
		if err := w.Start(cmd.Context()); err != nil && !errors.Is(err, context.Canceled) {
			return err
		}
		return nil
	},
}

func init() {
	watchCmd.Flags().IntVar(&flagWatchConcurrent, "max-concurrent", 2, "files processed at the same time")
	rootCmd.AddCommand(watchCmd)
}
