package audio

import (
	"context"

	"github.com/RyanBlaney/soma-signal/logging"
)

// Extractor runs the embedding/tagging pipeline over batches of audio
// files.
type Extractor struct {
	cfg     *ExtractorConfig
	decoder *Decoder
	logger  logging.Logger
}

// NewExtractor creates an extractor. A nil config takes the defaults.
func NewExtractor(cfg *ExtractorConfig) *Extractor {
	if cfg == nil {
		cfg = DefaultExtractorConfig()
	}
	return &Extractor{
		cfg:     cfg,
		decoder: NewDecoder(cfg),
		logger: logging.WithFields(logging.Fields{
			"component": "audio_extractor",
		}),
	}
}

// ProcessFiles maps N input files to exactly N results in input order,
// using a fixed pool of cfg.Workers workers with files assigned round-robin
// by position. A per-file failure becomes an error-tagged result; the batch
// never aborts.
func (e *Extractor) ProcessFiles(ctx context.Context, files []string) []FileResult {
	results := make([]FileResult, len(files))

	pool := NewPool(e.cfg.Workers)
	for i, file := range files {
		pool.Add(func() error {
			results[i] = e.processFile(ctx, file)
			return nil
		})
	}
	pool.Wait()

	return results
}

// processFile decodes one file and computes its embedding and tags.
func (e *Extractor) processFile(ctx context.Context, file string) FileResult {
	pcm, err := e.decoder.DecodeFile(ctx, file)
	if err != nil {
		e.logger.Error(err, "Audio file processing failed", logging.Fields{
			"file": file,
		})
		return FileResult{File: file, Error: err.Error()}
	}

	embedding, err := Embedding(pcm, e.cfg.SampleRate, e.cfg.FrameSize, e.cfg.HopSize)
	if err != nil {
		e.logger.Error(err, "Embedding failed", logging.Fields{
			"file": file,
		})
		return FileResult{File: file, Error: err.Error()}
	}

	tags := TagScores(pcm, e.cfg.SampleRate)
	if e.cfg.TopTags > 0 && len(tags) > e.cfg.TopTags {
		tags = tags[:e.cfg.TopTags]
	}

	return FileResult{
		File:      file,
		Embedding: embedding,
		Tags:      tags,
	}
}
