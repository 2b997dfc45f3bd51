package collector

import (
	"errors"

	"StockGenie/internal/model"
)

// ErrNoData indicates the feed returned no usable bars for a symbol.
// It is non-fatal: the scan skips the symbol and moves on.
var ErrNoData = errors.New("no price data available")

// Fetcher defines the interface for fetching market data.
type Fetcher interface {
	// FetchIntraday returns one trading day of fine-grained bars
	// (the Yahoo source uses 5-minute bars).
	FetchIntraday(symbol string) ([]model.PriceSample, error)
	// FetchHistory returns a multi-day series for trend prediction
	// (the Yahoo source uses 5 days at 30-minute bars).
	FetchHistory(symbol string) ([]model.PriceSample, error)
	Name() string
}
