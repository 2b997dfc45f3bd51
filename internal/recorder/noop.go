package recorder

import "StockGenie/internal/model"

// NoopRecorder is a no-op implementation used when SQLite cannot be opened.
type NoopRecorder struct{}

func NewNoopRecorder() *NoopRecorder { return &NoopRecorder{} }

func (n *NoopRecorder) SaveAlert(_ *model.Alert) error            { return nil }
func (n *NoopRecorder) RecentAlerts(_ int) ([]model.Alert, error) { return nil, nil }
func (n *NoopRecorder) Close() error                              { return nil }
