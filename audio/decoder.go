package audio

import (
	"context"
	"encoding/binary"
	"fmt"
	"math"
	"os/exec"
	"strconv"

	"github.com/RyanBlaney/soma-signal/logging"
)

// Decoder decodes audio files to mono float64 PCM at a fixed rate using
// FFmpeg. One file in, one PCM buffer out.
type Decoder struct {
	cfg *ExtractorConfig
}

// NewDecoder creates a decoder. A nil config takes the defaults.
func NewDecoder(cfg *ExtractorConfig) *Decoder {
	if cfg == nil {
		cfg = DefaultExtractorConfig()
	}
	return &Decoder{cfg: cfg}
}

// DecodeFile decodes an audio file to mono PCM at the configured rate.
func (d *Decoder) DecodeFile(ctx context.Context, filename string) ([]float64, error) {
	logger := logging.WithFields(logging.Fields{
		"component": "audio_decoder",
		"filename":  filename,
	})

	if d.cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, d.cfg.Timeout)
		defer cancel()
	}

	args := []string{
		"-v", "error",
		"-i", filename,
		"-vn",         // No video
		"-f", "f64le", // Output raw float64 little-endian
		"-ac", "1", // Mono
		"-ar", strconv.Itoa(d.cfg.SampleRate),
		"pipe:1",
	}

	cmd := exec.CommandContext(ctx, d.cfg.FFmpegPath, args...)

	output, err := cmd.Output()
	if err != nil {
		if exitError, ok := err.(*exec.ExitError); ok {
			return nil, fmt.Errorf("ffmpeg decode failed: %w, stderr: %s", err, string(exitError.Stderr))
		}
		return nil, fmt.Errorf("ffmpeg decode failed: %w", err)
	}

	samples := bytesToFloat64(output)
	if len(samples) == 0 {
		return nil, fmt.Errorf("no audio samples decoded")
	}

	logger.Debug("Audio file decoded", logging.Fields{
		"samples":     len(samples),
		"sample_rate": d.cfg.SampleRate,
	})

	return samples, nil
}

// bytesToFloat64 converts raw f64le bytes to []float64.
func bytesToFloat64(data []byte) []float64 {
	if len(data)%8 != 0 {
		// Trim to multiple of 8 bytes
		data = data[:len(data)-(len(data)%8)]
	}

	if len(data) == 0 {
		return nil
	}

	sampleCount := len(data) / 8
	samples := make([]float64, sampleCount)

	for i := range sampleCount {
		bits := binary.LittleEndian.Uint64(data[i*8 : i*8+8])
		samples[i] = math.Float64frombits(bits)
	}

	return samples
}
