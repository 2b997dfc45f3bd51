package calculator

import (
	"math"

	"StockGenie/internal/model"
)

// Returns computes per-bar simple returns close[t]/close[t-1] - 1.
// The result has len(bars)-1 entries, aligned to bars[1:].
func Returns(bars []model.PriceSample) []float64 {
	if len(bars) < 2 {
		return nil
	}
	out := make([]float64, len(bars)-1)
	for i := 1; i < len(bars); i++ {
		prev := bars[i-1].Close
		if prev == 0 {
			out[i-1] = 0
			continue
		}
		out[i-1] = bars[i].Close/prev - 1
	}
	return out
}

// VolumeChanges computes per-bar fractional volume changes, aligned to
// bars[1:] like Returns. A zero previous volume yields 0, matching the
// fill-with-zero treatment of the undefined leading value.
func VolumeChanges(bars []model.PriceSample) []float64 {
	if len(bars) < 2 {
		return nil
	}
	out := make([]float64, len(bars)-1)
	for i := 1; i < len(bars); i++ {
		prev := bars[i-1].Volume
		if prev == 0 {
			out[i-1] = 0
			continue
		}
		out[i-1] = bars[i].Volume/prev - 1
	}
	return out
}

// Sign returns +1, -1 or 0 for the given value.
func Sign(v float64) float64 {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}

// Round2 rounds to two decimal places.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}
