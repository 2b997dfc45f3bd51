package calculator

import (
	"errors"
	"math"
)

// LinearModel is an ordinary least-squares fit y = Intercept + Coef·x.
type LinearModel struct {
	Intercept float64
	Coef      []float64
}

// FitLinear fits an OLS model with intercept by solving the normal
// equations. Every feature row must have the same width as the first.
// A degenerate (singular) design matrix is reported as an error.
func FitLinear(features [][]float64, targets []float64) (*LinearModel, error) {
	if len(features) == 0 {
		return nil, errors.New("no feature rows")
	}
	if len(features) != len(targets) {
		return nil, errors.New("feature/target length mismatch")
	}
	k := len(features[0])
	for _, row := range features {
		if len(row) != k {
			return nil, errors.New("ragged feature matrix")
		}
	}

	// Build X'X and X'y with an implicit leading 1 column for the intercept.
	dim := k + 1
	xtx := make([][]float64, dim)
	for i := range xtx {
		xtx[i] = make([]float64, dim)
	}
	xty := make([]float64, dim)

	for r, row := range features {
		aug := make([]float64, dim)
		aug[0] = 1
		copy(aug[1:], row)
		for i := 0; i < dim; i++ {
			for j := 0; j < dim; j++ {
				xtx[i][j] += aug[i] * aug[j]
			}
			xty[i] += aug[i] * targets[r]
		}
	}

	beta, err := solve(xtx, xty)
	if err != nil {
		return nil, err
	}
	return &LinearModel{Intercept: beta[0], Coef: beta[1:]}, nil
}

// Predict evaluates the fitted model on a single feature row.
func (m *LinearModel) Predict(row []float64) (float64, error) {
	if len(row) != len(m.Coef) {
		return 0, errors.New("feature width mismatch")
	}
	y := m.Intercept
	for i, v := range row {
		y += m.Coef[i] * v
	}
	return y, nil
}

// solve performs Gaussian elimination with partial pivoting on a copy
// of the inputs.
func solve(a [][]float64, b []float64) ([]float64, error) {
	n := len(a)
	m := make([][]float64, n)
	for i := range a {
		m[i] = make([]float64, n+1)
		copy(m[i], a[i])
		m[i][n] = b[i]
	}

	for col := 0; col < n; col++ {
		pivot := col
		for r := col + 1; r < n; r++ {
			if math.Abs(m[r][col]) > math.Abs(m[pivot][col]) {
				pivot = r
			}
		}
		if math.Abs(m[pivot][col]) < 1e-12 {
			return nil, errors.New("singular matrix")
		}
		m[col], m[pivot] = m[pivot], m[col]

		for r := 0; r < n; r++ {
			if r == col {
				continue
			}
			factor := m[r][col] / m[col][col]
			for c := col; c <= n; c++ {
				m[r][c] -= factor * m[col][c]
			}
		}
	}

	x := make([]float64, n)
	for i := 0; i < n; i++ {
		x[i] = m[i][n] / m[i][i]
	}
	return x, nil
}
