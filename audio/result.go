package audio

import (
	"encoding/json"
	"fmt"
	"io"
)

// FileResult is the per-file output record of the batch pipeline: either a
// success carrying the embedding and tags, or a failure carrying the
// original filename and the error text.
type FileResult struct {
	File      string    `json:"file"`
	Embedding []float64 `json:"embedding,omitempty"`
	Tags      []Tag     `json:"tags,omitempty"`
	Error     string    `json:"error,omitempty"`
}

// Failed reports whether the record is an error result.
func (r FileResult) Failed() bool { return r.Error != "" }

// MarshalJSON serializes the tag as a [name, score] pair.
func (t Tag) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]any{t.Name, t.Score})
}

// UnmarshalJSON parses the [name, score] pair form.
func (t *Tag) UnmarshalJSON(data []byte) error {
	var pair [2]json.RawMessage
	if err := json.Unmarshal(data, &pair); err != nil {
		return err
	}
	if err := json.Unmarshal(pair[0], &t.Name); err != nil {
		return fmt.Errorf("tag name: %w", err)
	}
	if err := json.Unmarshal(pair[1], &t.Score); err != nil {
		return fmt.Errorf("tag score: %w", err)
	}
	return nil
}

// WriteResults dumps the results as a JSON array.
func WriteResults(w io.Writer, results []FileResult) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(results)
}
