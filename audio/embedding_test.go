package audio

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats"
)

func sinePCM(n int, freq, sampleRate float64) []float64 {
	pcm := make([]float64, n)
	for i := range pcm {
		pcm[i] = math.Sin(2 * math.Pi * freq * float64(i) / sampleRate)
	}
	return pcm
}

func TestEmbeddingShape(t *testing.T) {
	pcm := sinePCM(16000, 440, 16000)

	emb, err := Embedding(pcm, 16000, 1024, 512)
	require.NoError(t, err)
	require.Len(t, emb, EmbeddingSize)

	assert.InDelta(t, 1.0, floats.Norm(emb, 2), 1e-9)
}

func TestEmbeddingDeterministic(t *testing.T) {
	pcm := sinePCM(8000, 220, 16000)

	a, err := Embedding(pcm, 16000, 1024, 512)
	require.NoError(t, err)
	b, err := Embedding(pcm, 16000, 1024, 512)
	require.NoError(t, err)

	assert.Equal(t, a, b)
}

func TestEmbeddingDistinguishesContent(t *testing.T) {
	low, err := Embedding(sinePCM(16000, 100, 16000), 16000, 1024, 512)
	require.NoError(t, err)
	high, err := Embedding(sinePCM(16000, 6000, 16000), 16000, 1024, 512)
	require.NoError(t, err)

	assert.Greater(t, floats.Distance(low, high, 2), 0.1)
}

func TestEmbeddingSingleFrame(t *testing.T) {
	// Exactly one frame: per-band std collapses to zero but the vector
	// still normalizes.
	emb, err := Embedding(sinePCM(1024, 440, 16000), 16000, 1024, 512)
	require.NoError(t, err)
	require.Len(t, emb, EmbeddingSize)
	assert.InDelta(t, 1.0, floats.Norm(emb, 2), 1e-9)
}

func TestEmbeddingTooShort(t *testing.T) {
	_, err := Embedding(sinePCM(512, 440, 16000), 16000, 1024, 512)
	assert.Error(t, err)
}

func TestEmbeddingInvalidFraming(t *testing.T) {
	pcm := sinePCM(4096, 440, 16000)

	_, err := Embedding(pcm, 16000, 0, 512)
	assert.Error(t, err)
	_, err = Embedding(pcm, 16000, 1024, 0)
	assert.Error(t, err)
}
