package biosignal

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

func TestZScoreColumns(t *testing.T) {
	const rows = 100

	m := mat.NewDense(rows, 2, nil)
	for i := range rows {
		m.Set(i, 0, float64(i))
		m.Set(i, 1, float64(i*i)/10)
	}

	ZScoreColumns(m)

	col := make([]float64, rows)
	for j := range 2 {
		mat.Col(col, j, m)
		mean, std := stat.MeanStdDev(col, nil)
		assert.InDeltaf(t, 0, mean, 1e-9, "column %d mean", j)
		assert.InDeltaf(t, 1, std, 1e-9, "column %d std", j)
	}
}

func TestZScoreColumnsConstantColumn(t *testing.T) {
	const rows = 50

	m := mat.NewDense(rows, 1, nil)
	for i := range rows {
		m.Set(i, 0, 7.5)
	}

	ZScoreColumns(m)

	for i := range rows {
		assert.Equal(t, 0.0, m.At(i, 0))
	}
}

func TestZScoreColumnsEmpty(t *testing.T) {
	m := &mat.Dense{}
	assert.NotPanics(t, func() { ZScoreColumns(m) })
}
