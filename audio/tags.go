package audio

import (
	"math"
	"sort"

	"github.com/mjibson/go-dsp/fft"
	"gonum.org/v1/gonum/stat"
)

// Tag is a named tag with a confidence score in [0, 1]. It serializes as
// the two-element [name, score] array form downstream consumers expect.
type Tag struct {
	Name  string
	Score float64
}

// tagVocabulary is the fixed set of tags every file is scored against.
var tagVocabulary = []string{
	"music", "speech", "percussive", "harmonic", "bright",
	"dark", "energetic", "calm", "noisy", "quiet",
}

// acousticProfile holds the summary features tag scores derive from.
type acousticProfile struct {
	rms           float64 // overall level
	zcr           float64 // zero-crossing rate, crude noisiness/pitch proxy
	centroid      float64 // spectral centroid as a fraction of Nyquist
	silenceRatio  float64 // fraction of near-silent 100 ms blocks
	energyStdDev  float64 // block energy spread, rhythmic/dynamic content
	lowBandShare  float64 // energy below ~250 Hz
	highBandShare float64 // energy above ~4 kHz
}

// TagScores scores the fixed tag vocabulary against the acoustic profile
// of the PCM buffer and returns all tags sorted by descending score. The
// result is never empty for non-empty input.
func TagScores(pcm []float64, sampleRate int) []Tag {
	if len(pcm) == 0 || sampleRate <= 0 {
		return nil
	}

	p := profile(pcm, sampleRate)

	tags := make([]Tag, 0, len(tagVocabulary))
	for _, name := range tagVocabulary {
		tags = append(tags, Tag{Name: name, Score: scoreTag(name, p)})
	}

	sort.SliceStable(tags, func(i, j int) bool {
		return tags[i].Score > tags[j].Score
	})

	return tags
}

// scoreTag maps one tag name to a score from the profile. The heuristics
// follow the usual content-detection cues: centroid and band balance for
// brightness, zero crossings for noisiness, block energy spread for
// rhythmic content, silence for speech pauses.
func scoreTag(name string, p acousticProfile) float64 {
	switch name {
	case "music":
		return clamp01(0.5 + 0.3*(1-p.silenceRatio) - 0.2*math.Abs(p.zcr-0.05)*10)
	case "speech":
		return clamp01(0.3 + 0.4*p.silenceRatio + 0.3*ramp(p.zcr, 0.02, 0.15))
	case "percussive":
		return clamp01(ramp(p.energyStdDev, 0.01, 0.2))
	case "harmonic":
		return clamp01(p.lowBandShare + 0.3*(1-ramp(p.zcr, 0.05, 0.3)))
	case "bright":
		return clamp01(ramp(p.centroid, 0.05, 0.4) + 0.3*p.highBandShare)
	case "dark":
		return clamp01(1 - ramp(p.centroid, 0.05, 0.4))
	case "energetic":
		return clamp01(ramp(p.rms, 0.01, 0.3) * (1 - p.silenceRatio))
	case "calm":
		return clamp01(1 - ramp(p.rms, 0.01, 0.3))
	case "noisy":
		return clamp01(ramp(p.zcr, 0.1, 0.4))
	case "quiet":
		return clamp01(p.silenceRatio)
	default:
		return 0
	}
}

// profile extracts the acoustic summary features from the PCM buffer.
func profile(pcm []float64, sampleRate int) acousticProfile {
	var p acousticProfile

	// Level and zero crossings.
	sum := 0.0
	crossings := 0
	for i, v := range pcm {
		sum += v * v
		if i > 0 && (v >= 0) != (pcm[i-1] >= 0) {
			crossings++
		}
	}
	p.rms = math.Sqrt(sum / float64(len(pcm)))
	if len(pcm) > 1 {
		p.zcr = float64(crossings) / float64(len(pcm)-1)
	}

	// Block energies over 100 ms blocks.
	blockSize := sampleRate / 10
	if blockSize < 1 {
		blockSize = 1
	}
	var blockRMS []float64
	for start := 0; start+blockSize <= len(pcm); start += blockSize {
		e := 0.0
		for _, v := range pcm[start : start+blockSize] {
			e += v * v
		}
		blockRMS = append(blockRMS, math.Sqrt(e/float64(blockSize)))
	}
	if len(blockRMS) > 0 {
		silent := 0
		for _, r := range blockRMS {
			if r < 0.01*math.Max(p.rms, 1e-9) || r < 1e-4 {
				silent++
			}
		}
		p.silenceRatio = float64(silent) / float64(len(blockRMS))
		_, p.energyStdDev = stat.MeanStdDev(blockRMS, nil)
		if math.IsNaN(p.energyStdDev) {
			p.energyStdDev = 0
		}
	}

	// Spectral centroid and band balance over a single analysis window.
	analysisLen := min(len(pcm), 16384)
	window := hannWindow(analysisLen)
	frame := make([]float64, analysisLen)
	for i := range frame {
		frame[i] = pcm[i] * window[i]
	}
	spectrum := fft.FFTReal(frame)

	nyquist := float64(sampleRate) / 2
	binHz := float64(sampleRate) / float64(analysisLen)

	total, weighted, low, high := 0.0, 0.0, 0.0, 0.0
	for k := 1; k <= analysisLen/2; k++ {
		re, im := real(spectrum[k]), imag(spectrum[k])
		power := re*re + im*im
		freq := float64(k) * binHz

		total += power
		weighted += power * freq
		if freq < 250 {
			low += power
		}
		if freq > 4000 {
			high += power
		}
	}
	if total > 1e-12 {
		p.centroid = (weighted / total) / nyquist
		p.lowBandShare = low / total
		p.highBandShare = high / total
	}

	return p
}

// ramp maps v linearly from [lo, hi] onto [0, 1], clamped.
func ramp(v, lo, hi float64) float64 {
	if hi <= lo {
		return 0
	}
	return clamp01((v - lo) / (hi - lo))
}

func clamp01(v float64) float64 {
	return math.Min(1, math.Max(0, v))
}
