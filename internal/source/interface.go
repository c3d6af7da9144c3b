package source

import "context"

// Source is the capability that retrieves video metadata and media. One
// implementation wraps yt-dlp; tests substitute fakes.
type Source interface {
	// FetchMetadata resolves a video reference to its metadata snapshot.
	FetchMetadata(ctx context.Context, url string) (*Metadata, error)

	// FetchAudio downloads the audio stream into dir and returns the
	// audio file path. An already-present file is returned as is.
	FetchAudio(ctx context.Context, url string, md *Metadata, dir string) (string, error)

	// FetchCaption downloads one caption track into dir and returns its
	// raw content plus the path it was written to.
	FetchCaption(ctx context.Context, url string, md *Metadata, track Track, manual bool, dir string) (string, string, error)

	// LatestFromChannel returns the URL of the newest video on a channel.
	LatestFromChannel(ctx context.Context, channelURL string) (string, error)
}
