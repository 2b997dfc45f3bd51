package calculator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFitLinear_RecoversKnownModel(t *testing.T) {
	// y = 2 + 3*x1 - x2, exactly.
	features := [][]float64{
		{0, 0}, {1, 0}, {0, 1}, {1, 1}, {2, 1}, {1, 2},
	}
	targets := make([]float64, len(features))
	for i, f := range features {
		targets[i] = 2 + 3*f[0] - f[1]
	}

	m, err := FitLinear(features, targets)
	require.NoError(t, err)
	assert.InDelta(t, 2, m.Intercept, 1e-9)
	assert.InDelta(t, 3, m.Coef[0], 1e-9)
	assert.InDelta(t, -1, m.Coef[1], 1e-9)

	pred, err := m.Predict([]float64{4, 2})
	require.NoError(t, err)
	assert.InDelta(t, 12, pred, 1e-9)
}

func TestFitLinear_SingularMatrix(t *testing.T) {
	// Second feature is a constant multiple of the first.
	features := [][]float64{
		{1, 2}, {2, 4}, {3, 6}, {4, 8}, {5, 10},
	}
	targets := []float64{1, 2, 3, 4, 5}

	_, err := FitLinear(features, targets)
	assert.Error(t, err)
}

func TestFitLinear_Validation(t *testing.T) {
	_, err := FitLinear(nil, nil)
	assert.Error(t, err)

	_, err = FitLinear([][]float64{{1, 2}}, []float64{1, 2})
	assert.Error(t, err)

	_, err = FitLinear([][]float64{{1, 2}, {1}}, []float64{1, 2})
	assert.Error(t, err)
}

func TestPredict_WidthMismatch(t *testing.T) {
	m := &LinearModel{Intercept: 1, Coef: []float64{1, 1}}
	_, err := m.Predict([]float64{1})
	assert.Error(t, err)
}
