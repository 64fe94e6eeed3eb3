package wesad

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gonum.org/v1/gonum/mat"

	"github.com/RyanBlaney/soma-signal/biosignal"
	"github.com/RyanBlaney/soma-signal/logging"
)

// Dataset holds the assembled examples of every successfully processed
// subject: the four slices are index-aligned, one entry per window.
type Dataset struct {
	Windows  []*mat.Dense // normalized signal windows, WindowSamples rows each
	Labels   []int        // majority-vote condition label per window
	Targets  [][]float64  // PANAS regression target per window, in [0, 1]
	Subjects []string     // subject tag per window, for subject-disjoint splits
}

// Len returns the number of assembled examples.
func (d *Dataset) Len() int { return len(d.Windows) }

// Assembler runs the full per-subject pipeline (load, resample, normalize,
// window, join questionnaire) and concatenates the results across subjects.
// Subjects with a missing or unreadable record or questionnaire are logged
// and skipped; the dataset degrades rather than aborts.
type Assembler struct {
	cfg    *PipelineConfig
	logger logging.Logger
}

// NewAssembler creates an assembler. A nil config takes the defaults.
func NewAssembler(cfg *PipelineConfig) *Assembler {
	if cfg == nil {
		cfg = DefaultPipelineConfig()
	}
	return &Assembler{
		cfg: cfg,
		logger: logging.WithFields(logging.Fields{
			"component": "dataset_assembler",
		}),
	}
}

// Assemble walks root for subject directories (name prefix per config,
// record and questionnaire named after the directory) and builds the
// combined dataset. Processing is sequential, one subject at a time.
func (a *Assembler) Assemble(root string) (*Dataset, error) {
	entries, err := os.ReadDir(root)
	if err != nil {
		return nil, fmt.Errorf("reading dataset root: %w", err)
	}

	ds := &Dataset{}
	for _, entry := range entries {
		if !entry.IsDir() || !strings.HasPrefix(entry.Name(), a.cfg.SubjectPrefix) {
			continue
		}

		subject := entry.Name()
		if err := a.appendSubject(ds, filepath.Join(root, subject), subject); err != nil {
			a.logger.Warn("Skipping subject", logging.Fields{
				"subject": subject,
				"reason":  err.Error(),
			})
		}
	}

	a.logger.Info("Dataset assembled", logging.Fields{
		"examples": ds.Len(),
	})

	return ds, nil
}

// appendSubject processes a single subject directory and appends its
// examples to the dataset. Any failure leaves the dataset untouched.
func (a *Assembler) appendSubject(ds *Dataset, dir, subject string) error {
	recordPath := filepath.Join(dir, subject+".edf")
	questPath := filepath.Join(dir, subject+"_quest.csv")

	recordFile, err := os.Open(recordPath)
	if err != nil {
		return fmt.Errorf("record: %w", err)
	}
	defer recordFile.Close()

	questFile, err := os.Open(questPath)
	if err != nil {
		return fmt.Errorf("questionnaire: %w", err)
	}
	defer questFile.Close()

	rec, err := ReadRecording(recordFile, subject)
	if err != nil {
		return err
	}

	matrix, err := BuildMatrix(rec, a.cfg)
	if err != nil {
		return err
	}

	biosignal.ZScoreColumns(matrix.Data)

	windows, err := biosignal.Slide(matrix.Data, matrix.Labels, a.cfg.WindowSamples(), a.cfg.StrideSamples())
	if err != nil {
		return err
	}

	scores, err := ParsePANAS(questFile)
	if err != nil {
		return err
	}

	for _, w := range windows {
		ds.Windows = append(ds.Windows, w.Data)
		ds.Labels = append(ds.Labels, w.Label)
		ds.Targets = append(ds.Targets, regressionTarget(scores, w.Label, a.cfg.TargetAdjectives))
		ds.Subjects = append(ds.Subjects, subject)
	}

	a.logger.Info("Subject assembled", logging.Fields{
		"subject": subject,
		"windows": len(windows),
	})

	return nil
}

// regressionTarget looks up the score set for a condition label (label i
// maps to score set i-1) and rescales the target adjectives' 1-5 scores to
// [0, 1]. A label without a questionnaire entry falls back to an all-zero
// vector of the same length rather than failing; so does an adjective the
// score set doesn't carry, keeping every entry inside [0, 1].
func regressionTarget(scores []ScoreSet, label int, adjectives []string) []float64 {
	target := make([]float64, len(adjectives))

	idx := label - 1
	if idx < 0 || idx >= len(scores) {
		return target
	}

	for i, adj := range adjectives {
		if score, ok := scores[idx][adj]; ok {
			target[i] = float64(score-1) / 4.0
		}
	}

	return target
}
