package audio

import (
	"fmt"
	"math"

	"github.com/mjibson/go-dsp/fft"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// EmbeddingSize is the fixed length of every audio embedding vector.
const EmbeddingSize = 512

// embeddingBands is the number of log-spaced frequency bands the spectrum
// is pooled into. Four statistics per band give the 512-dim embedding.
const embeddingBands = 128

// Embedding computes a deterministic fixed-length embedding of a PCM
// buffer: Hann-windowed STFT frames, log energies over log-spaced frequency
// bands, then mean/stddev/min/max of each band across frames, L2-normalized.
// It is a spectral summary in the shape pretrained audio encoders emit, not
// a learned representation.
func Embedding(pcm []float64, sampleRate, frameSize, hopSize int) ([]float64, error) {
	if frameSize <= 0 || hopSize <= 0 {
		return nil, fmt.Errorf("frame size and hop size must be positive: %d, %d", frameSize, hopSize)
	}
	if len(pcm) < frameSize {
		return nil, fmt.Errorf("audio too short: %d samples, need at least %d", len(pcm), frameSize)
	}

	window := hannWindow(frameSize)
	edges := bandEdges(frameSize/2+1, embeddingBands)

	numFrames := (len(pcm)-frameSize)/hopSize + 1

	// bandEnergies[b] collects the log band energy of band b per frame.
	bandEnergies := make([][]float64, embeddingBands)
	for b := range bandEnergies {
		bandEnergies[b] = make([]float64, numFrames)
	}

	frame := make([]float64, frameSize)
	for f := range numFrames {
		start := f * hopSize
		for i := range frame {
			frame[i] = pcm[start+i] * window[i]
		}

		spectrum := fft.FFTReal(frame)

		for b := range embeddingBands {
			energy := 0.0
			for k := edges[b]; k < edges[b+1]; k++ {
				re, im := real(spectrum[k]), imag(spectrum[k])
				energy += re*re + im*im
			}
			bandEnergies[b][f] = math.Log1p(energy)
		}
	}

	embedding := make([]float64, EmbeddingSize)
	for b, energies := range bandEnergies {
		mean, std := stat.MeanStdDev(energies, nil)
		if math.IsNaN(std) {
			std = 0 // single frame
		}

		embedding[b] = mean
		embedding[embeddingBands+b] = std
		embedding[2*embeddingBands+b] = floats.Min(energies)
		embedding[3*embeddingBands+b] = floats.Max(energies)
	}

	if norm := floats.Norm(embedding, 2); norm > 1e-12 {
		floats.Scale(1/norm, embedding)
	}

	return embedding, nil
}

// hannWindow generates periodic Hann window coefficients.
func hannWindow(size int) []float64 {
	coefficients := make([]float64, size)
	for i := range size {
		coefficients[i] = 0.5 * (1.0 - math.Cos(2*math.Pi*float64(i)/float64(size)))
	}
	return coefficients
}

// bandEdges splits bins [1, binCount) into `bands` geometrically spaced
// groups and returns the bands+1 edge indices. Every band spans at least
// one bin; bin 0 (DC) is excluded.
func bandEdges(binCount, bands int) []int {
	edges := make([]int, bands+1)

	ratio := math.Pow(float64(binCount-1), 1/float64(bands))
	for i := range edges {
		edge := int(math.Round(math.Pow(ratio, float64(i))))
		edges[i] = edge
	}
	edges[0] = 1
	edges[bands] = binCount

	// Geometric spacing collapses at the low end; force monotonicity.
	for i := 1; i <= bands; i++ {
		if edges[i] <= edges[i-1] {
			edges[i] = edges[i-1] + 1
		}
	}
	if edges[bands] > binCount {
		edges[bands] = binCount
		for i := bands; i > 0; i-- {
			if edges[i-1] >= edges[i] {
				edges[i-1] = edges[i] - 1
			}
		}
	}

	return edges
}
