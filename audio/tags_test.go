package audio

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tagByName(t *testing.T, tags []Tag, name string) Tag {
	t.Helper()
	for _, tag := range tags {
		if tag.Name == name {
			return tag
		}
	}
	t.Fatalf("tag %q not found", name)
	return Tag{}
}

func TestTagScoresVocabulary(t *testing.T) {
	tags := TagScores(sinePCM(16000, 440, 16000), 16000)

	require.Len(t, tags, len(tagVocabulary))
	for i, tag := range tags {
		assert.GreaterOrEqual(t, tag.Score, 0.0)
		assert.LessOrEqual(t, tag.Score, 1.0)
		if i > 0 {
			assert.GreaterOrEqual(t, tags[i-1].Score, tag.Score)
		}
	}
}

func TestTagScoresLowToneReadsDark(t *testing.T) {
	tags := TagScores(sinePCM(32000, 100, 16000), 16000)

	dark := tagByName(t, tags, "dark")
	bright := tagByName(t, tags, "bright")
	assert.Greater(t, dark.Score, bright.Score)
}

func TestTagScoresHighToneReadsBright(t *testing.T) {
	tags := TagScores(sinePCM(32000, 6000, 16000), 16000)

	dark := tagByName(t, tags, "dark")
	bright := tagByName(t, tags, "bright")
	assert.Greater(t, bright.Score, dark.Score)
}

func TestTagScoresSilence(t *testing.T) {
	tags := TagScores(make([]float64, 16000), 16000)

	require.NotEmpty(t, tags)
	assert.InDelta(t, 1.0, tags[0].Score, 1e-9)
	quiet := tagByName(t, tags, "quiet")
	assert.InDelta(t, 1.0, quiet.Score, 1e-9)
	energetic := tagByName(t, tags, "energetic")
	assert.InDelta(t, 0.0, energetic.Score, 1e-9)
}

func TestTagScoresEmptyInput(t *testing.T) {
	assert.Nil(t, TagScores(nil, 16000))
	assert.Nil(t, TagScores([]float64{}, 16000))
}
