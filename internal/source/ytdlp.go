package source

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ErrMetadataUnavailable marks a video reference that could not be resolved
// to metadata. Fatal for the run.
var ErrMetadataUnavailable = errors.New("video metadata unavailable")

// ytdlpVideo mirrors the fields we use from `yt-dlp -J` output. Subtitle
// maps are keyed by language code; each language lists every offered
// rendition of that track.
type ytdlpVideo struct {
	ID                string                   `json:"id"`
	Title             string                   `json:"title"`
	Channel           string                   `json:"channel"`
	Uploader          string                   `json:"uploader"`
	Duration          float64                  `json:"duration"`
	UploadDate        string                   `json:"upload_date"`
	Subtitles         map[string][]ytdlpTrack `json:"subtitles"`
	AutomaticCaptions map[string][]ytdlpTrack `json:"automatic_captions"`
	Entries           []ytdlpPlaylistEntry    `json:"entries"`
}

type ytdlpTrack struct {
	Ext string `json:"ext"`
	URL string `json:"url"`
}

type ytdlpPlaylistEntry struct {
	ID    string `json:"id"`
	URL   string `json:"url"`
	Title string `json:"title"`
}

// FetchMetadata runs `yt-dlp -J` and converts the dump into a Metadata
// snapshot.
func (s *implSource) FetchMetadata(ctx context.Context, url string) (*Metadata, error) {
	s.logger.Debug(ctx, "Fetching metadata: %s", url)

	args := s.baseArgs("-J", "--no-warnings")
	args = append(args, url)

	out, err := s.executor.Execute(ctx, "yt-dlp", args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMetadataUnavailable, err)
	}

	video, err := parseVideoJSON(out)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMetadataUnavailable, err)
	}

	return video.toMetadata(), nil
}

func parseVideoJSON(out string) (*ytdlpVideo, error) {
	out = strings.TrimSpace(out)
	if out == "" {
		return nil, fmt.Errorf("empty yt-dlp output")
	}

	var video ytdlpVideo
	if err := json.Unmarshal([]byte(out), &video); err != nil {
		return nil, fmt.Errorf("parse yt-dlp json: %w", err)
	}
	return &video, nil
}

func (v *ytdlpVideo) toMetadata() *Metadata {
	title := v.Title
	if title == "" {
		title = "unknown"
	}

	channel := v.Channel
	if channel == "" {
		channel = v.Uploader
	}

	return &Metadata{
		ID:             v.ID,
		Title:          title,
		Channel:        channel,
		Duration:       int(v.Duration),
		UploadDate:     v.UploadDate,
		ManualCaptions: preferredTracks(v.Subtitles),
		AutoCaptions:   preferredTracks(v.AutomaticCaptions),
	}
}

// preferredTracks reduces each language's track list to one descriptor,
// preferring srt over vtt over whatever comes first.
func preferredTracks(all map[string][]ytdlpTrack) map[string]Track {
	if len(all) == 0 {
		return nil
	}

	tracks := make(map[string]Track, len(all))
	for lang, items := range all {
		if len(items) == 0 {
			continue
		}
		best := items[0]
		for _, item := range items {
			if item.Ext == "srt" {
				best = item
				break
			}
			if item.Ext == "vtt" && best.Ext != "vtt" {
				best = item
			}
		}
		tracks[lang] = Track{Lang: lang, Ext: best.Ext, URL: best.URL}
	}
	return tracks
}

// FetchAudio downloads the best audio stream and extracts it via ffmpeg.
// Skips the download when the target file already exists. When the default
// format selector is rejected it retries once with the looser "best".
func (s *implSource) FetchAudio(ctx context.Context, url string, md *Metadata, dir string) (string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("create output dir: %w", err)
	}

	safe := md.SafeTitle()
	audioPath := filepath.Join(dir, safe+"."+s.opts.AudioFormat)
	if _, err := os.Stat(audioPath); err == nil {
		s.logger.Info(ctx, "Audio file already exists, skipping download: %s", filepath.Base(audioPath))
		return audioPath, nil
	}

	template := filepath.Join(dir, safe+".%(ext)s")
	s.logger.Info(ctx, "Downloading audio: %s", md.Title)

	if err := s.downloadAudio(ctx, url, template, "bestaudio/best"); err != nil {
		if !strings.Contains(err.Error(), "Requested format is not available") {
			return "", fmt.Errorf("download audio: %w", err)
		}
		s.logger.Warn(ctx, "Audio format not available, retrying with best: %v", err)
		if err := s.downloadAudio(ctx, url, template, "best"); err != nil {
			return "", fmt.Errorf("download audio: %w", err)
		}
	}

	if _, err := os.Stat(audioPath); err != nil {
		return "", fmt.Errorf("audio file missing after download: %w", err)
	}

	s.logger.Info(ctx, "Audio downloaded: %s", filepath.Base(audioPath))
	return audioPath, nil
}

func (s *implSource) downloadAudio(ctx context.Context, url, template, format string) error {
	args := s.baseArgs(
		"-f", format,
		"-x",
		"--audio-format", s.opts.AudioFormat,
		"--audio-quality", s.opts.AudioQuality,
		"-o", template,
		"--no-warnings",
		"-q",
	)
	args = append(args, url)

	_, err := s.executor.Execute(ctx, "yt-dlp", args...)
	return err
}

// FetchCaption downloads one caption track into dir and returns its raw
// content together with the written file path.
func (s *implSource) FetchCaption(ctx context.Context, url string, md *Metadata, track Track, manual bool, dir string) (string, string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", "", fmt.Errorf("create output dir: %w", err)
	}

	safe := md.SafeTitle()
	template := filepath.Join(dir, safe+".%(ext)s")

	kind := "auto-generated"
	if manual {
		kind = "manual"
	}
	s.logger.Info(ctx, "Downloading %s captions (%s)", kind, track.Lang)

	args := s.baseArgs(
		"--skip-download",
		"--write-subs",
		"--sub-langs", track.Lang,
		"--sub-format", "srt/vtt/best",
		"-o", template,
		"--no-warnings",
		"-q",
	)
	if !manual {
		args = append(args, "--write-auto-subs")
	}
	args = append(args, url)

	if _, err := s.executor.Execute(ctx, "yt-dlp", args...); err != nil {
		return "", "", fmt.Errorf("download captions: %w", err)
	}

	path, err := findCaptionFile(dir, safe, track.Lang)
	if err != nil {
		return "", "", err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", "", fmt.Errorf("read caption file: %w", err)
	}

	s.logger.Info(ctx, "Captions downloaded: %s", filepath.Base(path))
	return string(data), path, nil
}

// findCaptionFile locates the subtitle file yt-dlp wrote, trying the exact
// language-tagged names first and globbing as a fallback.
func findCaptionFile(dir, safe, lang string) (string, error) {
	candidates := []string{
		safe + "." + lang + ".srt",
		safe + "." + lang + ".vtt",
		safe + ".srt",
		safe + ".vtt",
	}
	for _, name := range candidates {
		path := filepath.Join(dir, name)
		if _, err := os.Stat(path); err == nil {
			return path, nil
		}
	}

	for _, ext := range []string{".srt", ".vtt"} {
		matches, _ := filepath.Glob(filepath.Join(dir, safe+"*"+ext))
		if len(matches) > 0 {
			return matches[0], nil
		}
	}

	return "", fmt.Errorf("caption file not found under %s", dir)
}

// LatestFromChannel resolves a channel page to its newest video URL using a
// flat playlist dump limited to one entry.
func (s *implSource) LatestFromChannel(ctx context.Context, channelURL string) (string, error) {
	s.logger.Info(ctx, "Looking up latest video from channel: %s", channelURL)

	args := s.baseArgs("-J", "--flat-playlist", "--playlist-end", "1", "--no-warnings")
	args = append(args, channelURL)

	out, err := s.executor.Execute(ctx, "yt-dlp", args...)
	if err != nil {
		return "", fmt.Errorf("list channel videos: %w", err)
	}

	video, err := parseVideoJSON(out)
	if err != nil {
		return "", fmt.Errorf("list channel videos: %w", err)
	}
	if len(video.Entries) == 0 {
		return "", fmt.Errorf("channel has no videos: %s", channelURL)
	}

	entry := video.Entries[0]
	url := entry.URL
	if url == "" {
		url = entry.ID
	}
	if url == "" {
		return "", fmt.Errorf("channel entry has no video reference")
	}
	if !strings.HasPrefix(url, "http") {
		url = "https://www.youtube.com/watch?v=" + url
	}

	s.logger.Info(ctx, "Latest video: %s (%s)", entry.Title, url)
	return url, nil
}

// baseArgs prepends the shared yt-dlp flags, including browser cookies when
// configured.
func (s *implSource) baseArgs(args ...string) []string {
	if s.opts.CookiesFromBrowser == "" {
		return args
	}
	return append([]string{"--cookies-from-browser", s.opts.CookiesFromBrowser}, args...)
}
