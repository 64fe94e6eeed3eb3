package biosignal

import (
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

// ZScoreColumns standardizes each column of m in place to zero mean and
// unit variance, computed over the full recording rather than per window.
// Columns with (near) zero spread are only centered, matching the usual
// constant-signal edge case.
func ZScoreColumns(m *mat.Dense) {
	rows, cols := m.Dims()
	if rows == 0 {
		return
	}

	col := make([]float64, rows)
	for j := range cols {
		mat.Col(col, j, m)
		mean, std := stat.MeanStdDev(col, nil)

		if std < 1e-10 {
			for i := range col {
				col[i] -= mean
			}
		} else {
			for i := range col {
				col[i] = (col[i] - mean) / std
			}
		}

		m.SetCol(j, col)
	}
}
