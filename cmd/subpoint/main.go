package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"

	"github.com/nguyentantai21042004/subpoint/internal/config"
	"github.com/nguyentantai21042004/subpoint/internal/logger"
	"github.com/nguyentantai21042004/subpoint/internal/notify"
	"github.com/nguyentantai21042004/subpoint/internal/pipeline"
	"github.com/nguyentantai21042004/subpoint/internal/source"
	"github.com/nguyentantai21042004/subpoint/internal/summarizer"
	"github.com/nguyentantai21042004/subpoint/internal/transcript"
	"github.com/nguyentantai21042004/subpoint/internal/transcriber"
	"github.com/nguyentantai21042004/subpoint/pkg/executor"
)

var (
	flagConfig       string
	flagOutput       string
	flagLang         string
	flagSummaryLang  string
	flagAIModel      string
	flagWhisperModel string
	flagForce        bool
	flagSkipSummary  bool
	flagCookies      string
	flagClipboard    bool
)

var rootCmd = &cobra.Command{
	Use:   "subpoint [url]",
	Short: "Download YouTube audio, extract subtitles, and summarize with AI",
	Long: `SubPoint downloads a YouTube video's audio, resolves a plain-text
transcript (captions when available, speech recognition otherwise), and
generates a structured AI summary.

Without a URL the newest video of the configured channel is processed.`,
	Args:          cobra.MaximumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, log, err := setup()
		if err != nil {
			return err
		}

		p := buildPipeline(cfg, log)

		ref := ""
		if len(args) > 0 {
			ref = args[0]
		}

		outcome, err := p.Process(cmd.Context(), ref)
		if err != nil {
			return err
		}

		if flagClipboard && outcome.SummaryPath != "" {
			copySummaryToClipboard(cmd.Context(), log, outcome.SummaryPath)
		}
		return nil
	},
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&flagConfig, "config", "", "config file (default: config.yaml if present)")
	flags.StringVarP(&flagOutput, "output", "o", "", "output directory")
	flags.StringVarP(&flagLang, "lang", "l", "", "wanted caption language (default: zh)")
	flags.StringVarP(&flagCookies, "cookies", "c", "", "read cookies from this browser (safari/chrome/firefox/edge)")

	rootCmd.Flags().StringVarP(&flagSummaryLang, "summary-lang", "s", "", "summary language: zh or en")
	rootCmd.Flags().StringVarP(&flagAIModel, "ai-model", "m", "", "summary model override")
	rootCmd.Flags().StringVarP(&flagWhisperModel, "whisper-model", "w", "", "speech recognition model override")
	rootCmd.Flags().BoolVarP(&flagForce, "force-whisper", "f", false, "force speech recognition, ignore captions")
	rootCmd.Flags().BoolVar(&flagSkipSummary, "skip-summary", false, "skip the AI summary step")
	rootCmd.Flags().BoolVar(&flagClipboard, "clipboard", false, "copy the summary to the clipboard")
}

// setup loads configuration, applies flag overrides, and builds the logger.
func setup() (*config.Config, logger.Logger, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, nil, err
	}

	if flagOutput != "" {
		cfg.Paths.Output = flagOutput
	}
	if flagLang != "" {
		cfg.YouTube.SubtitleLang = flagLang
	}
	if flagSummaryLang != "" {
		cfg.Summary.Language = flagSummaryLang
	}
	if flagWhisperModel != "" {
		cfg.OpenAI.WhisperModel = flagWhisperModel
	}
	if flagCookies != "" {
		cfg.YouTube.CookiesFromBrowser = flagCookies
	}
	if flagAIModel != "" {
		switch cfg.Summary.Provider {
		case "gemini":
			cfg.Gemini.Model = flagAIModel
		default:
			cfg.OpenAI.Model = flagAIModel
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, nil, fmt.Errorf("validate config: %w", err)
	}

	return cfg, logger.New(cfg.Logging.Level), nil
}

func loadConfig() (*config.Config, error) {
	if flagConfig != "" {
		return config.Load(flagConfig)
	}
	if _, err := os.Stat("config.yaml"); err == nil {
		return config.Load("config.yaml")
	}
	return config.Default()
}

// buildPipeline wires every capability behind the pipeline. Missing
// credentials surface when the capability is actually needed, so caption
// runs with --skip-summary work without any API key.
func buildPipeline(cfg *config.Config, log logger.Logger) pipeline.Pipeline {
	exec := executor.New()

	src := source.New(exec, log, source.Options{
		CookiesFromBrowser: cfg.YouTube.CookiesFromBrowser,
		AudioFormat:        cfg.Audio.Format,
		AudioQuality:       cfg.Audio.Quality,
	})

	rec, err := transcriber.NewWhisper(cfg.OpenAI.APIKey, cfg.OpenAI.BaseURL, cfg.OpenAI.WhisperModel, log)
	if err != nil {
		rec = unavailableTranscriber{err}
	}
	resolver := transcript.New(src, rec, log)

	completer := buildCompleter(cfg)
	sum := summarizer.New(completer, log, cfg.Summary.Docx)

	opts := pipeline.Options{
		OutputDir:        cfg.Paths.Output,
		SubtitleLang:     cfg.YouTube.SubtitleLang,
		ForceRecognition: flagForce,
		SkipSummary:      flagSkipSummary,
		Summary: summarizer.Options{
			Language:       cfg.Summary.Language,
			MaxDirectChars: cfg.Summary.MaxDirectChars,
			ChunkChars:     cfg.Summary.ChunkChars,
			MaxConcurrent:  cfg.Summary.MaxConcurrent,
		},
	}

	return pipeline.New(src, resolver, sum, notify.New(exec, log), cfg.YouTube.ChannelURL, log, opts)
}

func buildCompleter(cfg *config.Config) summarizer.Completer {
	var completer summarizer.Completer
	var err error

	switch cfg.Summary.Provider {
	case "gemini":
		completer, err = summarizer.NewGeminiCompleter(cfg.Gemini.APIKeys, cfg.Gemini.Model)
	default:
		completer, err = summarizer.NewOpenAICompleter(cfg.OpenAI.APIKey, cfg.OpenAI.BaseURL, cfg.OpenAI.Model)
	}
	if err != nil {
		return unavailableCompleter{err}
	}
	return completer
}

func copySummaryToClipboard(ctx context.Context, log logger.Logger, path string) {
	data, err := os.ReadFile(path)
	if err != nil {
		log.Warn(ctx, "Failed to read summary for clipboard: %v", err)
		return
	}
	if err := clipboard.WriteAll(string(data)); err != nil {
		log.Warn(ctx, "Failed to copy summary to clipboard: %v", err)
		return
	}
	log.Info(ctx, "Summary copied to clipboard")
}

// unavailableTranscriber defers a construction error until recognition is
// actually requested.
type unavailableTranscriber struct{ err error }

func (u unavailableTranscriber) Recognize(ctx context.Context, audioPath, language string) (*transcriber.Result, error) {
	return nil, u.err
}

// unavailableCompleter does the same for summarization.
type unavailableCompleter struct{ err error }

func (u unavailableCompleter) Complete(ctx context.Context, system, prompt string) (string, error) {
	return "", u.err
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
