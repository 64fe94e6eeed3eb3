package wesad

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// tenSecondRecording builds a 10 s in-memory recording with the given
// channels populated at their native rates.
func tenSecondRecording(t *testing.T, chest map[Channel]int, wrist map[Channel]int) *Recording {
	t.Helper()

	const chestRate = 700
	const seconds = 10

	rec := NewRecording("S99")
	rec.Labels = make([]float64, seconds*chestRate)
	for i := range rec.Labels {
		rec.Labels[i] = 2
	}

	fill := func(n int) []float64 {
		col := make([]float64, n)
		for i := range col {
			col[i] = math.Sin(2 * math.Pi * 3 * float64(i) / float64(n))
		}
		return col
	}

	for ch, axes := range chest {
		for range axes {
			rec.Chest[ch] = append(rec.Chest[ch], fill(seconds*chestRate))
		}
	}
	for ch, axes := range wrist {
		// Wrist native rates per channel.
		rate := map[Channel]int{
			ChannelACC: 32, ChannelBVP: 64, ChannelEDA: 4, ChannelTEMP: 4,
		}[ch]
		for range axes {
			rec.Wrist[ch] = append(rec.Wrist[ch], fill(seconds*rate))
		}
	}

	return rec
}

func testConfig(channels []Channel, devices DeviceMode) *PipelineConfig {
	cfg := DefaultPipelineConfig()
	cfg.Channels = channels
	cfg.Devices = devices
	return cfg
}

func TestBuildMatrixBothDevices(t *testing.T) {
	rec := tenSecondRecording(t,
		map[Channel]int{ChannelEDA: 1},
		map[Channel]int{ChannelEDA: 1},
	)

	m, err := BuildMatrix(rec, testConfig([]Channel{ChannelEDA}, DevicesBoth))
	require.NoError(t, err)

	rows, cols := m.Data.Dims()
	assert.Equal(t, 40, rows) // round(7000 * 4 / 700)
	assert.Equal(t, 2, cols)
	assert.Equal(t, []string{"chest EDA", "wrist EDA"}, m.Columns)
	assert.Len(t, m.Labels, 40)
}

func TestBuildMatrixSkipsUnavailablePairings(t *testing.T) {
	// BVP doesn't exist on the chest: selecting it chest-only contributes
	// nothing, silently, while EDA still lands.
	rec := tenSecondRecording(t, map[Channel]int{ChannelEDA: 1}, nil)

	m, err := BuildMatrix(rec, testConfig([]Channel{ChannelEDA, ChannelBVP}, DevicesChest))
	require.NoError(t, err)

	_, cols := m.Data.Dims()
	assert.Equal(t, 1, cols)
	assert.Equal(t, []string{"chest EDA"}, m.Columns)
}

func TestBuildMatrixZeroColumnsIsError(t *testing.T) {
	rec := tenSecondRecording(t, map[Channel]int{ChannelEDA: 1}, nil)

	_, err := BuildMatrix(rec, testConfig([]Channel{ChannelBVP}, DevicesChest))
	assert.Error(t, err)
}

func TestBuildMatrixUnknownChannel(t *testing.T) {
	rec := tenSecondRecording(t, map[Channel]int{ChannelEDA: 1}, nil)

	_, err := BuildMatrix(rec, testConfig([]Channel{Channel("PPG")}, DevicesChest))
	assert.Error(t, err)
}

func TestBuildMatrixMultiAxisChannel(t *testing.T) {
	rec := tenSecondRecording(t, map[Channel]int{ChannelACC: 3}, nil)

	m, err := BuildMatrix(rec, testConfig([]Channel{ChannelACC}, DevicesChest))
	require.NoError(t, err)

	_, cols := m.Data.Dims()
	assert.Equal(t, 3, cols)
	assert.Equal(t, []string{"chest ACC", "chest ACC", "chest ACC"}, m.Columns)
}

func TestBuildMatrixColumnOrderFollowsRequest(t *testing.T) {
	rec := tenSecondRecording(t,
		map[Channel]int{ChannelEDA: 1, ChannelECG: 1},
		map[Channel]int{ChannelEDA: 1},
	)

	m, err := BuildMatrix(rec, testConfig([]Channel{ChannelECG, ChannelEDA}, DevicesBoth))
	require.NoError(t, err)

	// Request order first, chest before wrist within a channel.
	assert.Equal(t, []string{"chest ECG", "chest EDA", "wrist EDA"}, m.Columns)
}

func TestBuildMatrixLabelsRounded(t *testing.T) {
	rec := tenSecondRecording(t, map[Channel]int{ChannelEDA: 1}, nil)

	m, err := BuildMatrix(rec, testConfig([]Channel{ChannelEDA}, DevicesChest))
	require.NoError(t, err)

	for i, l := range m.Labels {
		assert.Equalf(t, 2, l, "label row %d", i)
	}
}

func TestBuildMatrixStepLabelsRoundCleanly(t *testing.T) {
	// A condition change halfway through the recording rings when the
	// label series passes through the Fourier resampler; rounding must
	// still yield the clean 1...1 2...2 sequence with no flips near the
	// boundary or the periodic wrap.
	rec := tenSecondRecording(t, map[Channel]int{ChannelEDA: 1}, nil)
	rec.Labels = stepLabels(len(rec.Labels), 1, 2)

	m, err := BuildMatrix(rec, testConfig([]Channel{ChannelEDA}, DevicesChest))
	require.NoError(t, err)

	require.Len(t, m.Labels, 40)
	for i, l := range m.Labels {
		want := 1
		if i >= 20 {
			want = 2
		}
		assert.Equalf(t, want, l, "label row %d", i)
	}
}

func TestBuildMatrixInvalidRecording(t *testing.T) {
	rec := NewRecording("S0") // no label series

	_, err := BuildMatrix(rec, testConfig([]Channel{ChannelEDA}, DevicesChest))
	assert.Error(t, err)
}
