package main

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/nguyentantai21042004/subpoint/internal/source"
	"github.com/nguyentantai21042004/subpoint/pkg/executor"
)

var infoCmd = &cobra.Command{
	Use:   "info <url>",
	Short: "Show video metadata and caption availability without downloading",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, log, err := setup()
		if err != nil {
			return err
		}

		src := source.New(executor.New(), log, source.Options{
			CookiesFromBrowser: cfg.YouTube.CookiesFromBrowser,
			AudioFormat:        cfg.Audio.Format,
			AudioQuality:       cfg.Audio.Quality,
		})

		md, err := src.FetchMetadata(cmd.Context(), args[0])
		if err != nil {
			return err
		}

		fmt.Printf("Title:       %s\n", md.Title)
		fmt.Printf("Channel:     %s\n", md.Channel)
		fmt.Printf("Duration:    %s\n", formatDuration(md.Duration))
		if md.UploadDate != "" {
			fmt.Printf("Uploaded:    %s\n", md.UploadDate)
		}
		fmt.Printf("Manual subs: %s\n", langList(md.ManualCaptions))
		fmt.Printf("Auto subs:   %s\n", langList(md.AutoCaptions))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(infoCmd)
}

func langList(tracks map[string]source.Track) string {
	if len(tracks) == 0 {
		return "none"
	}
	langs := make([]string, 0, len(tracks))
	for lang := range tracks {
		langs = append(langs, lang)
	}
	sort.Strings(langs)
	return strings.Join(langs, ", ")
}

func formatDuration(seconds int) string {
	if seconds <= 0 {
		return "unknown"
	}
	if seconds >= 3600 {
		return fmt.Sprintf("%d:%02d:%02d", seconds/3600, seconds%3600/60, seconds%60)
	}
	return fmt.Sprintf("%d:%02d", seconds/60, seconds%60)
}
