package collector

import (
	"fmt"
	"time"

	"StockGenie/internal/calculator"
	"StockGenie/internal/model"
)

// MockFetcher returns controllable fixed data for development and testing.
type MockFetcher struct {
	Price        float64
	IntradayData []model.PriceSample
	HistoryData  []model.PriceSample
	IntradayErr  error
	HistoryErr   error
}

func (m *MockFetcher) Name() string { return "mock" }

func (m *MockFetcher) FetchIntraday(_ string) ([]model.PriceSample, error) {
	if m.IntradayErr != nil {
		return nil, m.IntradayErr
	}
	if m.IntradayData != nil {
		return m.IntradayData, nil
	}
	return GenerateMockBars(m.Price, 78), nil
}

func (m *MockFetcher) FetchHistory(_ string) ([]model.PriceSample, error) {
	if m.HistoryErr != nil {
		return nil, m.HistoryErr
	}
	if m.HistoryData != nil {
		return m.HistoryData, nil
	}
	return GenerateMockBars(m.Price, 65), nil
}

// GenerateMockBars produces a mildly trending series around basePrice.
func GenerateMockBars(basePrice float64, count int) []model.PriceSample {
	bars := make([]model.PriceSample, count)
	for i := 0; i < count; i++ {
		p := basePrice * (1 + float64(i-count/2)*0.001)
		bars[i] = model.PriceSample{
			Time:   time.Now().Add(-time.Duration(count-i) * 5 * time.Minute),
			Open:   p * 0.999,
			High:   p * 1.005,
			Low:    p * 0.995,
			Close:  p,
			Volume: 1000000,
		}
	}
	return bars
}

// Collector builds per-symbol snapshots from intraday data.
type Collector struct {
	Fetcher Fetcher
}

// NewCollector creates a new Collector.
func NewCollector(fetcher Fetcher) *Collector {
	return &Collector{Fetcher: fetcher}
}

// Snapshot fetches the intraday series for a symbol and derives its
// scan-cycle snapshot. An empty or unavailable series yields ErrNoData.
func (c *Collector) Snapshot(symbol string) (*model.SymbolSnapshot, error) {
	bars, err := c.Fetcher.FetchIntraday(symbol)
	if err != nil {
		return nil, err
	}
	if len(bars) == 0 {
		return nil, ErrNoData
	}

	openPrice := bars[0].Open
	lastPrice := bars[len(bars)-1].Close
	if openPrice == 0 {
		return nil, fmt.Errorf("zero opening price for %s", symbol)
	}

	var volume float64
	for _, b := range bars {
		volume += b.Volume
	}

	return &model.SymbolSnapshot{
		Symbol:    symbol,
		Price:     lastPrice,
		ChangePct: calculator.Round2((lastPrice - openPrice) / openPrice * 100),
		Volume:    volume,
	}, nil
}
