package wesad

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/RyanBlaney/soma-signal/biosignal"
	"github.com/RyanBlaney/soma-signal/logging"
)

// SignalMatrix is the aligned multichannel view of one recording at the
// target rate: one row per time step, one column per resolved physical
// channel, plus the per-row condition labels.
type SignalMatrix struct {
	Data    *mat.Dense
	Labels  []int
	Columns []string // column names in assembly order, e.g. "chest EDA"
}

// BuildMatrix resolves the requested channels against the device mode and
// the availability table, Fourier-resamples every resolved column to the
// common target rate, and concatenates them column-wise in request order
// (chest sources before wrist within a channel). The label series is
// resampled to the same row count and rounded to the nearest integer.
//
// Channels unavailable on the selected devices contribute nothing, silently.
// A selection that contributes zero columns overall is a configuration
// error.
func BuildMatrix(rec *Recording, cfg *PipelineConfig) (*SignalMatrix, error) {
	if err := rec.Validate(); err != nil {
		return nil, err
	}

	targetRows := biosignal.TargetLength(len(rec.Labels), cfg.ChestSampleRate, cfg.TargetSampleRate)
	if targetRows <= 0 {
		return nil, fmt.Errorf("recording too short: %d label samples at %d Hz resample to zero rows",
			len(rec.Labels), cfg.ChestSampleRate)
	}

	logger := logging.WithFields(logging.Fields{
		"component": "signal_loader",
		"subject":   rec.Subject,
	})

	var columns []float64 // column-major scratch, appended per column
	var names []string

	appendSource := func(device Device, ch Channel, cols [][]float64) {
		for _, col := range cols {
			columns = append(columns, biosignal.Resample(col, targetRows)...)
			names = append(names, fmt.Sprintf("%s %s", device, ch))
		}
	}

	for _, ch := range cfg.Channels {
		avail, known := ChannelSources[ch]
		if !known {
			return nil, fmt.Errorf("unknown channel %q", ch)
		}

		if cfg.Devices.Chest() && avail.Chest {
			appendSource(DeviceChest, ch, rec.Chest[ch])
		}
		if cfg.Devices.Wrist() && avail.Wrist {
			appendSource(DeviceWrist, ch, rec.Wrist[ch])
		}
	}

	if len(names) == 0 {
		return nil, fmt.Errorf("channel selection %v on devices %q contributes no columns", cfg.Channels, cfg.Devices)
	}

	data := mat.NewDense(targetRows, len(names), nil)
	for j := range names {
		data.SetCol(j, columns[j*targetRows:(j+1)*targetRows])
	}

	labels := make([]int, targetRows)
	for i, v := range biosignal.Resample(rec.Labels, targetRows) {
		labels[i] = int(math.Round(v))
	}

	logger.Debug("Signal matrix assembled", logging.Fields{
		"rows":    targetRows,
		"columns": len(names),
	})

	return &SignalMatrix{
		Data:    data,
		Labels:  labels,
		Columns: names,
	}, nil
}
