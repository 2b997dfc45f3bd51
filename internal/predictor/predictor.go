// Package predictor derives a coarse directional trend signal from a
// symbol's recent history. The model is a per-call OLS fit of
// [return, volume change] against the sign of the next bar's return.
// It is a crude heuristic signal, not a forecasting guarantee.
package predictor

import (
	"errors"

	"go.uber.org/zap"

	"StockGenie/internal/calculator"
	"StockGenie/internal/collector"
	"StockGenie/internal/model"
)

// minFeatureRows is the minimum number of usable feature rows required
// for a fit; below it the predictor reports no data rather than an error.
const minFeatureRows = 5

// Predictor classifies a symbol's trend from its historical series.
// It holds no state across calls; every prediction is a fresh fit.
type Predictor struct {
	fetcher collector.Fetcher
	log     *zap.Logger
}

// New creates a Predictor reading history through the given fetcher.
func New(fetcher collector.Fetcher, log *zap.Logger) *Predictor {
	return &Predictor{fetcher: fetcher, log: log}
}

// Predict fetches the symbol's history and classifies its trend.
// Failures never propagate: an unavailable or too-short series maps to
// TrendNoData, anything else (transport, degenerate fit) to TrendError.
func (p *Predictor) Predict(symbol string) model.Trend {
	bars, err := p.fetcher.FetchHistory(symbol)
	if err != nil {
		if errors.Is(err, collector.ErrNoData) {
			return model.TrendNoData
		}
		p.log.Error("predict: fetch history failed", zap.String("symbol", symbol), zap.Error(err))
		return model.TrendError
	}
	return p.classify(symbol, bars)
}

func (p *Predictor) classify(symbol string, bars []model.PriceSample) model.Trend {
	if len(bars) < 6 {
		return model.TrendNoData
	}

	returns := calculator.Returns(bars)
	volChanges := calculator.VolumeChanges(bars)

	// Design matrix: all derived rows except the last; target: sign of
	// the next row's return, aligned one step ahead.
	n := len(returns)
	features := make([][]float64, 0, n-1)
	targets := make([]float64, 0, n-1)
	for i := 0; i < n-1; i++ {
		features = append(features, []float64{returns[i], volChanges[i]})
		targets = append(targets, calculator.Sign(returns[i+1]))
	}
	if len(features) < minFeatureRows {
		return model.TrendNoData
	}

	fit, err := calculator.FitLinear(features, targets)
	if err != nil {
		p.log.Error("predict: fit failed", zap.String("symbol", symbol), zap.Error(err))
		return model.TrendError
	}

	pred, err := fit.Predict(features[len(features)-1])
	if err != nil {
		p.log.Error("predict: evaluate failed", zap.String("symbol", symbol), zap.Error(err))
		return model.TrendError
	}

	switch {
	case pred > 0:
		return model.TrendUp
	case pred < 0:
		return model.TrendDown
	default:
		return model.TrendNeutral
	}
}
