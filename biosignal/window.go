package biosignal

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// SentinelLabel marks samples recorded outside any defined condition,
// e.g. transition periods between protocol phases.
const SentinelLabel = 0

// Window is a fixed-length contiguous slice of a signal matrix together
// with the single condition label assigned to it and the row it starts at.
// Data is a view into the source matrix, not a copy.
type Window struct {
	Data  *mat.Dense
	Label int
	Start int
}

// Slide cuts m into fixed-length overlapping windows of `window` rows,
// stepping by `stride` rows. Each window is labeled by majority vote over
// the per-row labels; ties break toward the smaller label value. A window
// containing even one sentinel-labeled row is discarded entirely, no
// partial salvage.
//
// Before sentinel filtering the emitted count is floor((rows-window)/stride)+1.
func Slide(m *mat.Dense, labels []int, window, stride int) ([]Window, error) {
	rows, cols := m.Dims()
	if len(labels) != rows {
		return nil, fmt.Errorf("label count (%d) doesn't match row count (%d)", len(labels), rows)
	}
	if window <= 0 {
		return nil, fmt.Errorf("window length must be positive: %d", window)
	}
	if stride <= 0 {
		return nil, fmt.Errorf("stride must be positive: %d", stride)
	}

	var windows []Window
	for start := 0; start+window <= rows; start += stride {
		label, ok := majorityLabel(labels[start : start+window])
		if !ok {
			continue
		}

		windows = append(windows, Window{
			Data:  m.Slice(start, start+window, 0, cols).(*mat.Dense),
			Label: label,
			Start: start,
		})
	}

	return windows, nil
}

// majorityLabel returns the most frequent label in the slice, ties broken
// toward the smaller value. ok is false when any sample carries the
// sentinel label, which rejects the whole window.
func majorityLabel(labels []int) (label int, ok bool) {
	counts := make(map[int]int, 4)
	for _, l := range labels {
		if l == SentinelLabel {
			return 0, false
		}
		counts[l]++
	}

	best, bestCount := 0, 0
	for l, c := range counts {
		if c > bestCount || (c == bestCount && l < best) {
			best, bestCount = l, c
		}
	}

	return best, bestCount > 0
}
