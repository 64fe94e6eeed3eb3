package wesad

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/OpenPSG/edf"

	"github.com/RyanBlaney/soma-signal/logging"
)

// Per-subject recordings are stored as EDF files, the standard container
// for multichannel physiological data. Each physical channel column is one
// EDF signal labeled "<device> <channel>[ <axis>]" (e.g. "chest EDA",
// "wrist ACC X") and the condition labels are a signal named "label"
// sampled at the chest rate.
const labelSignalName = "label"

// ReadRecording reads one subject's EDF record into a Recording. Signals
// with labels that don't follow the naming scheme are skipped with a debug
// log; a missing label signal is an error.
func ReadRecording(r io.ReadSeeker, subject string) (*Recording, error) {
	logger := logging.WithFields(logging.Fields{
		"component": "recording_reader",
		"subject":   subject,
	})

	names, err := readSignalNames(r)
	if err != nil {
		return nil, fmt.Errorf("reading signal names: %w", err)
	}

	if _, err := r.Seek(0, io.SeekStart); err != nil {
		return nil, fmt.Errorf("rewinding record: %w", err)
	}

	er, err := edf.Open(r)
	if err != nil {
		return nil, fmt.Errorf("opening record: %w", err)
	}

	rec := NewRecording(subject)
	for i, name := range names {
		sr, err := er.Signal(i)
		if err != nil {
			return nil, fmt.Errorf("signal %d (%s): %w", i, name, err)
		}

		samples, err := readAllSamples(sr)
		if err != nil {
			return nil, fmt.Errorf("signal %d (%s): %w", i, name, err)
		}

		if name == labelSignalName {
			rec.Labels = samples
			continue
		}

		device, channel, ok := parseSignalName(name)
		if !ok {
			logger.Debug("Skipping unrecognized signal", logging.Fields{
				"signal": name,
			})
			continue
		}

		switch device {
		case DeviceChest:
			rec.Chest[channel] = append(rec.Chest[channel], samples)
		case DeviceWrist:
			rec.Wrist[channel] = append(rec.Wrist[channel], samples)
		}
	}

	if err := rec.Validate(); err != nil {
		return nil, err
	}

	return rec, nil
}

// parseSignalName splits "<device> <channel>[ <axis>]" into its parts.
// Axis suffixes are ignored: column order within a channel follows signal
// order in the file.
func parseSignalName(name string) (Device, Channel, bool) {
	fields := strings.Fields(name)
	if len(fields) < 2 {
		return "", "", false
	}

	device := Device(fields[0])
	if device != DeviceChest && device != DeviceWrist {
		return "", "", false
	}

	channel := Channel(fields[1])
	if _, known := ChannelSources[channel]; !known {
		return "", "", false
	}

	return device, channel, true
}

// readAllSamples drains a signal reader to the end of the data records.
func readAllSamples(sr *edf.SignalReader) ([]float64, error) {
	buf := make([]float64, 8192)

	var out []float64
	for {
		n, err := sr.Read(buf)
		out = append(out, buf[:n]...)
		if err == io.EOF {
			return out, nil
		}
		if err != nil {
			return nil, err
		}
	}
}

// readSignalNames scans the fixed-layout EDF header for the signal labels.
// The edf package parses the full header internally but doesn't expose it,
// and the labels are all the channel mapping needs: 4 ASCII bytes of signal
// count at offset 252, then 16 bytes of label per signal.
func readSignalNames(r io.ReadSeeker) ([]string, error) {
	header := make([]byte, 256)
	if _, err := io.ReadFull(r, header); err != nil {
		return nil, fmt.Errorf("reading header: %w", err)
	}

	count, err := strconv.Atoi(strings.TrimSpace(string(header[252:256])))
	if err != nil {
		return nil, fmt.Errorf("parsing signal count: %w", err)
	}
	if count <= 0 {
		return nil, fmt.Errorf("record has no signals")
	}

	labels := make([]byte, count*16)
	if _, err := io.ReadFull(r, labels); err != nil {
		return nil, fmt.Errorf("reading signal labels: %w", err)
	}

	names := make([]string, count)
	for i := range count {
		names[i] = strings.TrimSpace(string(labels[i*16 : (i+1)*16]))
	}

	return names, nil
}
