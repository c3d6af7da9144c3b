package config

import "fmt"

type Config struct {
	OpenAI  OpenAIConfig  `yaml:"openai"`
	Gemini  GeminiConfig  `yaml:"gemini"`
	Summary SummaryConfig `yaml:"summary"`
	YouTube YouTubeConfig `yaml:"youtube"`
	Audio   AudioConfig   `yaml:"audio"`
	Paths   PathsConfig   `yaml:"paths"`
	Logging LoggingConfig `yaml:"logging"`
}

type OpenAIConfig struct {
	APIKey       string `yaml:"api_key"`
	BaseURL      string `yaml:"base_url"`
	Model        string `yaml:"model"`
	WhisperModel string `yaml:"whisper_model"`
}

type GeminiConfig struct {
	APIKeys []string `yaml:"api_keys"`
	Model   string   `yaml:"model"`
}

type SummaryConfig struct {
	Provider       string `yaml:"provider"` // openai or gemini
	Language       string `yaml:"language"` // zh or en
	MaxDirectChars int    `yaml:"max_direct_chars"`
	ChunkChars     int    `yaml:"chunk_chars"`
	MaxConcurrent  int    `yaml:"max_concurrent"`
	Docx           bool   `yaml:"docx"`
}

type YouTubeConfig struct {
	ChannelURL         string `yaml:"channel_url"`
	SubtitleLang       string `yaml:"subtitle_lang"`
	CookiesFromBrowser string `yaml:"cookies_from_browser"`
}

type AudioConfig struct {
	Format  string `yaml:"format"`
	Quality string `yaml:"quality"`
}

type PathsConfig struct {
	Output string `yaml:"output"`
	Watch  string `yaml:"watch"`
}

type LoggingConfig struct {
	Level string `yaml:"level"`
}

func (c *Config) Validate() error {
	switch c.Summary.Provider {
	case "":
		c.Summary.Provider = "openai"
	case "openai", "gemini":
	default:
		return fmt.Errorf("summary.provider must be openai or gemini, got %q", c.Summary.Provider)
	}

	switch c.Summary.Language {
	case "":
		c.Summary.Language = "zh"
	case "zh", "en":
	default:
		return fmt.Errorf("summary.language must be zh or en, got %q", c.Summary.Language)
	}

	if c.Summary.MaxDirectChars < 0 || c.Summary.ChunkChars < 0 {
		return fmt.Errorf("summary chunk sizes must not be negative")
	}
	if c.Summary.MaxDirectChars == 0 {
		c.Summary.MaxDirectChars = 100000
	}
	if c.Summary.ChunkChars == 0 {
		c.Summary.ChunkChars = 80000
	}
	if c.Summary.MaxConcurrent <= 0 {
		c.Summary.MaxConcurrent = 1
	}

	if c.OpenAI.Model == "" {
		c.OpenAI.Model = "gpt-4o-mini"
	}
	if c.OpenAI.WhisperModel == "" {
		c.OpenAI.WhisperModel = "whisper-1"
	}
	if c.Gemini.Model == "" {
		c.Gemini.Model = "gemini-2.5-flash"
	}

	if c.YouTube.SubtitleLang == "" {
		c.YouTube.SubtitleLang = "zh"
	}

	if c.Audio.Format == "" {
		c.Audio.Format = "mp3"
	}
	if c.Audio.Quality == "" {
		c.Audio.Quality = "192"
	}

	if c.Paths.Output == "" {
		c.Paths.Output = "output"
	}
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}

	return nil
}
