package recorder

import "StockGenie/internal/model"

// Recorder persists qualifying alerts and serves the recent-alert query.
// Implementations must serialize writes internally: the engine runs
// scheduled and manual scan passes concurrently and imposes no mutual
// exclusion of its own.
type Recorder interface {
	// SaveAlert appends an alert, assigning a monotonically increasing
	// ID and a UTC creation timestamp when absent. Duplicate content is
	// accepted; there is no idempotence key.
	SaveAlert(alert *model.Alert) error
	// RecentAlerts returns up to limit alerts, most recent first.
	RecentAlerts(limit int) ([]model.Alert, error)
	Close() error
}
