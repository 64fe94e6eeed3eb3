package wesad

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/RyanBlaney/soma-signal/logging"
)

// PANASItems is the fixed 26-item affect-adjective vocabulary, in the
// column order the self-report files use: the 20 standard PANAS adjectives
// followed by the study's six extra items.
var PANASItems = [26]string{
	"Active", "Distressed", "Interested", "Inspired", "Annoyed",
	"Strong", "Guilty", "Scared", "Hostile", "Excited",
	"Proud", "Irritable", "Enthusiastic", "Ashamed", "Alert",
	"Nervous", "Determined", "Attentive", "Jittery", "Afraid",
	"Stressed", "Frustrated", "Happy", "Angry", "Irritated", "Sad",
}

// panasMarker prefixes the questionnaire rows we care about; everything
// else in the file (other instruments, metadata) is ignored.
const panasMarker = "# PANAS"

// ScoreSet maps affect adjectives to their 1-5 self-report scores for one
// experimental condition.
type ScoreSet map[string]int

// ParsePANAS scans a semicolon-delimited questionnaire file for PANAS rows
// and returns one ScoreSet per row, in file order. File order is assumed to
// match ascending condition-label order; nothing in the file lets us verify
// that, so condition i in the result corresponds to label value i+1 by
// position.
//
// A row is accepted only if at least len(PANASItems) numeric fields parse;
// the first 26 values are zipped positionally to the vocabulary and extra
// trailing fields are ignored. Malformed rows are logged and skipped, never
// fatal.
func ParsePANAS(r io.Reader) ([]ScoreSet, error) {
	logger := logging.WithFields(logging.Fields{
		"component": "questionnaire",
	})

	var sets []ScoreSet

	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		text := scanner.Text()
		if !strings.HasPrefix(text, panasMarker) {
			continue
		}

		scores, err := parseScoreFields(strings.TrimPrefix(text, panasMarker))
		if err != nil {
			logger.Error(err, "Skipping malformed PANAS row", logging.Fields{
				"line": line,
			})
			continue
		}
		if len(scores) < len(PANASItems) {
			logger.Warn("Skipping short PANAS row", logging.Fields{
				"line":   line,
				"fields": len(scores),
				"want":   len(PANASItems),
			})
			continue
		}

		set := make(ScoreSet, len(PANASItems))
		for i, item := range PANASItems {
			set[item] = scores[i]
		}
		sets = append(sets, set)
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return sets, nil
}

// parseScoreFields parses the trailing numeric fields of a PANAS row.
// Empty fields (trailing delimiters, padding) are skipped; a non-numeric
// field fails the whole row.
func parseScoreFields(rest string) ([]int, error) {
	fields := strings.Split(rest, ";")

	scores := make([]int, 0, len(fields))
	for _, f := range fields {
		f = strings.TrimSpace(f)
		if f == "" {
			continue
		}

		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return nil, err
		}
		scores = append(scores, int(v))
	}

	return scores, nil
}
