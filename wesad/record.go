package wesad

import (
	"fmt"
)

// Device identifies the wearable a channel was recorded on.
type Device string

const (
	DeviceChest Device = "chest"
	DeviceWrist Device = "wrist"
)

// DeviceMode selects which devices contribute channels to the signal matrix.
type DeviceMode string

const (
	DevicesChest DeviceMode = "chest"
	DevicesWrist DeviceMode = "wrist"
	DevicesBoth  DeviceMode = "both"
)

// Chest reports whether the mode includes the chest device.
func (m DeviceMode) Chest() bool { return m == DevicesChest || m == DevicesBoth }

// Wrist reports whether the mode includes the wrist device.
func (m DeviceMode) Wrist() bool { return m == DevicesWrist || m == DevicesBoth }

// Channel is a logical physiological channel name. A logical channel maps
// to zero, one or two physical sources depending on the device mode and on
// which devices actually record it.
type Channel string

const (
	ChannelEDA  Channel = "EDA"  // electrodermal activity
	ChannelTEMP Channel = "TEMP" // skin temperature
	ChannelRESP Channel = "RESP" // respiration
	ChannelECG  Channel = "ECG"  // electrocardiogram
	ChannelACC  Channel = "ACC"  // 3-axis acceleration
	ChannelEMG  Channel = "EMG"  // electromyogram
	ChannelBVP  Channel = "BVP"  // blood volume pulse
)

// Availability records which devices carry a channel.
type Availability struct {
	Chest bool
	Wrist bool
}

// ChannelSources is the fixed channel-availability table. Absent pairings
// are skipped during matrix assembly, never zero-filled. The table is
// static data; treat it as read-only.
var ChannelSources = map[Channel]Availability{
	ChannelEDA:  {Chest: true, Wrist: true},
	ChannelTEMP: {Chest: true, Wrist: true},
	ChannelRESP: {Chest: true},
	ChannelECG:  {Chest: true},
	ChannelACC:  {Chest: true, Wrist: true},
	ChannelEMG:  {Chest: true},
	ChannelBVP:  {Wrist: true},
}

// Recording is one subject's raw multichannel recording: per-device channel
// columns at each device's native rate, plus the per-sample condition label
// series at the chest device's rate. Multi-dimensional channels (ACC) hold
// one column per axis.
type Recording struct {
	Subject string

	// Labels holds the integer condition label of every chest-rate sample.
	// Stored as float64 because the series passes through the same Fourier
	// resampler as the signals before being rounded back to integers.
	Labels []float64

	Chest map[Channel][][]float64
	Wrist map[Channel][][]float64
}

// NewRecording returns an empty recording for the given subject.
func NewRecording(subject string) *Recording {
	return &Recording{
		Subject: subject,
		Chest:   make(map[Channel][][]float64),
		Wrist:   make(map[Channel][][]float64),
	}
}

// Validate checks the structural invariants of the recording: a label
// series must be present and every chest channel column must match its
// length sample for sample.
func (r *Recording) Validate() error {
	if len(r.Labels) == 0 {
		return fmt.Errorf("recording %s has no label series", r.Subject)
	}

	for ch, cols := range r.Chest {
		for axis, col := range cols {
			if len(col) != len(r.Labels) {
				return fmt.Errorf("chest %s column %d has %d samples, label series has %d",
					ch, axis, len(col), len(r.Labels))
			}
		}
	}

	return nil
}
