package model

import "time"

// PriceSample represents a single OHLCV bar.
type PriceSample struct {
	Time   time.Time
	Open   float64
	High   float64
	Low    float64
	Close  float64
	Volume float64
}

// SymbolSnapshot is the derived per-symbol result of one scan pass.
// It is built fresh from an intraday series each cycle and discarded
// after classification; nothing persists it.
type SymbolSnapshot struct {
	Symbol    string  `json:"symbol"`
	Price     float64 `json:"price"`      // last close of the intraday series
	ChangePct float64 `json:"change_pct"` // (last close - first open) / first open * 100, 2 decimals
	Volume    float64 `json:"volume"`     // summed intraday volume
}
