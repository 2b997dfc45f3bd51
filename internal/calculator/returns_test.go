package calculator

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"StockGenie/internal/model"
)

func bars(closes, volumes []float64) []model.PriceSample {
	out := make([]model.PriceSample, len(closes))
	for i := range closes {
		out[i] = model.PriceSample{Close: closes[i], Volume: volumes[i]}
	}
	return out
}

func TestReturns(t *testing.T) {
	got := Returns(bars([]float64{100, 110, 99}, []float64{1, 1, 1}))
	assert.Len(t, got, 2)
	assert.InDelta(t, 0.10, got[0], 1e-9)
	assert.InDelta(t, -0.10, got[1], 1e-9)

	assert.Nil(t, Returns(bars([]float64{100}, []float64{1})))
}

func TestVolumeChanges_ZeroPreviousVolume(t *testing.T) {
	got := VolumeChanges(bars([]float64{1, 1, 1}, []float64{0, 500, 1000}))
	assert.Len(t, got, 2)
	assert.Equal(t, 0.0, got[0]) // undefined change treated as 0
	assert.InDelta(t, 1.0, got[1], 1e-9)
}

func TestSign(t *testing.T) {
	assert.Equal(t, 1.0, Sign(0.003))
	assert.Equal(t, -1.0, Sign(-2))
	assert.Equal(t, 0.0, Sign(0))
}

func TestRound2(t *testing.T) {
	assert.Equal(t, -1.23, Round2(-1.2345))
	assert.Equal(t, 2.68, Round2(2.675000001))
	assert.Equal(t, 0.0, Round2(0.0001))
}
