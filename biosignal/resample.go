package biosignal

import (
	"math"

	"github.com/mjibson/go-dsp/fft"
)

// Resample resamples x to exactly n samples using the Fourier method:
// the signal is transformed with an FFT, the spectrum is truncated or
// zero-padded to the new length, and the inverse transform is scaled by
// n/len(x). The result is band-limited by construction, which is what the
// physiological channels need when collapsing hundreds of hertz down to a
// few.
//
// mjibson/go-dsp handles all sizes efficiently, including non-power-of-2,
// so the input length carries no constraints.
func Resample(x []float64, n int) []float64 {
	nx := len(x)
	if n <= 0 || nx == 0 {
		return []float64{}
	}
	if n == nx {
		out := make([]float64, nx)
		copy(out, x)
		return out
	}

	spectrum := fft.FFTReal(x)

	// Keep the lowest min(n, nx) frequency bins, split between the
	// positive and negative halves of the spectrum.
	kept := min(n, nx)
	nyq := kept/2 + 1

	resized := make([]complex128, n)
	copy(resized[:nyq], spectrum[:nyq])
	if neg := kept - nyq; neg > 0 {
		copy(resized[n-neg:], spectrum[nx-neg:])
	}

	// The shared Nyquist bin needs special treatment when the kept band
	// has even length: fold it when shrinking, split it when growing.
	if kept%2 == 0 {
		if n < nx {
			resized[kept/2] += spectrum[nx-kept/2]
		} else {
			resized[kept/2] /= 2
			resized[n-kept/2] = resized[kept/2]
		}
	}

	inverse := fft.IFFT(resized)

	scale := float64(n) / float64(nx)
	out := make([]float64, n)
	for i, v := range inverse {
		out[i] = real(v) * scale
	}

	return out
}

// ResampleRate resamples x from srcRate to dstRate. The output length is
// round(len(x) * dstRate / srcRate), the row-count contract every channel
// of a recording must agree on.
func ResampleRate(x []float64, srcRate, dstRate int) []float64 {
	if srcRate <= 0 || dstRate <= 0 {
		return []float64{}
	}
	n := TargetLength(len(x), srcRate, dstRate)
	return Resample(x, n)
}

// TargetLength returns round(n * dstRate / srcRate), the number of samples
// a series of length n holds after resampling between the two rates.
func TargetLength(n, srcRate, dstRate int) int {
	return int(math.Round(float64(n) * float64(dstRate) / float64(srcRate)))
}
