package wesad

// PipelineConfig holds every fixed parameter of the preprocessing pipeline.
// Callers take the defaults and override fields in code.
type PipelineConfig struct {
	// Sample rates
	ChestSampleRate  int `json:"chest_sample_rate"`  // native rate of the chest device and the label series
	TargetSampleRate int `json:"target_sample_rate"` // common rate every channel is resampled to

	// Windowing
	WindowSeconds int `json:"window_seconds"`
	StrideSeconds int `json:"stride_seconds"`

	// Channel selection
	Channels []Channel  `json:"channels"`
	Devices  DeviceMode `json:"devices"`

	// Regression targets: the PANAS adjectives whose self-report scores
	// become the per-window target vector, rescaled to [0, 1].
	TargetAdjectives []string `json:"target_adjectives"`

	// Dataset layout
	SubjectPrefix string `json:"subject_prefix"`
}

// DefaultPipelineConfig returns the parameters the pipeline was tuned with.
func DefaultPipelineConfig() *PipelineConfig {
	return &PipelineConfig{
		ChestSampleRate:  700,
		TargetSampleRate: 4,
		WindowSeconds:    60,
		StrideSeconds:    30,
		Channels: []Channel{
			ChannelEDA, ChannelTEMP, ChannelRESP, ChannelECG,
			ChannelACC, ChannelEMG, ChannelBVP,
		},
		Devices:          DevicesBoth,
		TargetAdjectives: []string{"Stressed", "Frustrated", "Happy", "Sad", "Nervous"},
		SubjectPrefix:    "S",
	}
}

// WindowSamples returns the window length in samples at the target rate.
func (c *PipelineConfig) WindowSamples() int {
	return c.WindowSeconds * c.TargetSampleRate
}

// StrideSamples returns the window stride in samples at the target rate.
func (c *PipelineConfig) StrideSamples() int {
	return c.StrideSeconds * c.TargetSampleRate
}
