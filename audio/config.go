package audio

import "time"

// ExtractorConfig holds the fixed parameters of the embedding/tagging
// pipeline.
type ExtractorConfig struct {
	SampleRate int `json:"sample_rate"` // decoded PCM rate fed to the embedder
	FrameSize  int `json:"frame_size"`  // STFT frame length in samples
	HopSize    int `json:"hop_size"`    // STFT hop in samples

	Workers int `json:"workers"`  // fixed pool size for batch processing
	TopTags int `json:"top_tags"` // tags kept per file, highest score first

	FFmpegPath string        `json:"ffmpeg_path"`
	Timeout    time.Duration `json:"timeout"` // per-file decode timeout
}

// DefaultExtractorConfig returns default extractor configuration.
func DefaultExtractorConfig() *ExtractorConfig {
	return &ExtractorConfig{
		SampleRate: 16000,
		FrameSize:  1024,
		HopSize:    512,
		Workers:    2,
		TopTags:    5,
		FFmpegPath: "ffmpeg", // Assume in PATH
		Timeout:    30 * time.Second,
	}
}
