package biosignal

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

func testMatrix(rows, cols int) *mat.Dense {
	m := mat.NewDense(rows, cols, nil)
	for i := range rows {
		for j := range cols {
			m.Set(i, j, float64(i*cols+j))
		}
	}
	return m
}

func uniformLabels(n, label int) []int {
	labels := make([]int, n)
	for i := range labels {
		labels[i] = label
	}
	return labels
}

func TestSlideWindowCount(t *testing.T) {
	// floor((N - W) / S) + 1 windows when nothing is dropped.
	m := testMatrix(40, 2)

	windows, err := Slide(m, uniformLabels(40, 1), 8, 4)
	require.NoError(t, err)
	require.Len(t, windows, 9)

	for i, w := range windows {
		assert.Equal(t, i*4, w.Start)
		assert.Equal(t, 1, w.Label)

		rows, cols := w.Data.Dims()
		assert.Equal(t, 8, rows)
		assert.Equal(t, 2, cols)
	}
}

func TestSlideWindowIsViewIntoMatrix(t *testing.T) {
	m := testMatrix(16, 1)

	windows, err := Slide(m, uniformLabels(16, 2), 4, 4)
	require.NoError(t, err)
	require.Len(t, windows, 4)

	// Third window starts at row 8.
	assert.Equal(t, m.At(8, 0), windows[2].Data.At(0, 0))
}

func TestSlideMajorityLabel(t *testing.T) {
	m := testMatrix(8, 1)
	labels := []int{2, 2, 2, 1, 1, 2, 2, 2}

	windows, err := Slide(m, labels, 8, 8)
	require.NoError(t, err)
	require.Len(t, windows, 1)
	assert.Equal(t, 2, windows[0].Label)
}

func TestSlideMajorityTieBreaksSmaller(t *testing.T) {
	m := testMatrix(8, 1)
	labels := []int{3, 3, 3, 3, 1, 1, 1, 1}

	windows, err := Slide(m, labels, 8, 8)
	require.NoError(t, err)
	require.Len(t, windows, 1)
	assert.Equal(t, 1, windows[0].Label)
}

func TestSlideDropsSentinelWindows(t *testing.T) {
	m := testMatrix(40, 1)
	labels := uniformLabels(40, 1)
	labels[10] = SentinelLabel

	windows, err := Slide(m, labels, 8, 4)
	require.NoError(t, err)

	// Starts 4 and 8 cover row 10 and must be gone.
	require.Len(t, windows, 7)
	starts := make([]int, len(windows))
	for i, w := range windows {
		starts[i] = w.Start
	}
	assert.Equal(t, []int{0, 12, 16, 20, 24, 28, 32}, starts)

	// No surviving window contains a sentinel sample.
	for _, w := range windows {
		for _, l := range labels[w.Start : w.Start+8] {
			assert.NotEqual(t, SentinelLabel, l)
		}
	}
}

func TestSlideAllSentinel(t *testing.T) {
	m := testMatrix(20, 1)

	windows, err := Slide(m, uniformLabels(20, SentinelLabel), 5, 5)
	require.NoError(t, err)
	assert.Empty(t, windows)
}

func TestSlideShortRecording(t *testing.T) {
	// A recording shorter than one window yields no windows, not an error.
	m := testMatrix(5, 1)

	windows, err := Slide(m, uniformLabels(5, 1), 8, 4)
	require.NoError(t, err)
	assert.Empty(t, windows)
}

func TestSlideInvalidArguments(t *testing.T) {
	m := testMatrix(10, 1)

	_, err := Slide(m, uniformLabels(9, 1), 4, 2)
	assert.Error(t, err, "mismatched label count")

	_, err = Slide(m, uniformLabels(10, 1), 0, 2)
	assert.Error(t, err, "zero window")

	_, err = Slide(m, uniformLabels(10, 1), 4, 0)
	assert.Error(t, err, "zero stride")
}
