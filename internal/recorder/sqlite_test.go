package recorder

import (
	"fmt"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"StockGenie/internal/model"
)

func newTestRecorder(t *testing.T) *SQLiteRecorder {
	t.Helper()
	r, err := NewSQLiteRecorder(filepath.Join(t.TempDir(), "alerts.db"), zap.NewNop())
	require.NoError(t, err)
	t.Cleanup(func() { r.Close() })
	return r
}

func testAlert(symbol string) *model.Alert {
	return &model.Alert{
		Symbol:       symbol,
		Price:        2500.50,
		ChangePct:    -2.1,
		AIPrediction: string(model.TrendDown),
		AlertType:    model.AlertFalling,
	}
}

func TestSaveAlert_AssignsIDAndTimestamp(t *testing.T) {
	r := newTestRecorder(t)

	a := testAlert("RELIANCE.NS")
	require.NoError(t, r.SaveAlert(a))

	assert.Equal(t, int64(1), a.ID)
	assert.False(t, a.CreatedAt.IsZero())
	assert.Equal(t, time.UTC, a.CreatedAt.Location())
	assert.WithinDuration(t, time.Now().UTC(), a.CreatedAt, 5*time.Second)
}

func TestSaveAlert_IDsAreMonotonic(t *testing.T) {
	r := newTestRecorder(t)

	var last int64
	for i := 0; i < 10; i++ {
		a := testAlert("TCS.NS")
		require.NoError(t, r.SaveAlert(a))
		assert.Greater(t, a.ID, last)
		last = a.ID
	}
}

func TestRecentAlerts_MostRecentFirstBounded(t *testing.T) {
	r := newTestRecorder(t)

	for i := 0; i < 7; i++ {
		require.NoError(t, r.SaveAlert(testAlert(fmt.Sprintf("SYM%d", i))))
	}

	alerts, err := r.RecentAlerts(3)
	require.NoError(t, err)
	require.Len(t, alerts, 3)
	assert.Equal(t, "SYM6", alerts[0].Symbol)
	assert.Equal(t, "SYM5", alerts[1].Symbol)
	assert.Equal(t, "SYM4", alerts[2].Symbol)
	assert.Greater(t, alerts[0].ID, alerts[1].ID)
	assert.Greater(t, alerts[1].ID, alerts[2].ID)
}

func TestRecentAlerts_RoundTripFields(t *testing.T) {
	r := newTestRecorder(t)
	require.NoError(t, r.SaveAlert(testAlert("HDFCBANK.NS")))

	alerts, err := r.RecentAlerts(10)
	require.NoError(t, err)
	require.Len(t, alerts, 1)

	got := alerts[0]
	assert.Equal(t, "HDFCBANK.NS", got.Symbol)
	assert.Equal(t, 2500.50, got.Price)
	assert.Equal(t, -2.1, got.ChangePct)
	assert.Equal(t, string(model.TrendDown), got.AIPrediction)
	assert.Equal(t, model.AlertFalling, got.AlertType)
	assert.Equal(t, time.UTC, got.CreatedAt.Location())
}

// Overlapping scan passes may record the same condition twice; the
// store accepts both without any unique-constraint rejection.
func TestSaveAlert_ConcurrentDuplicatesBothSucceed(t *testing.T) {
	r := newTestRecorder(t)

	const writers = 8
	var wg sync.WaitGroup
	errs := make([]error, writers)
	for i := 0; i < writers; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			errs[n] = r.SaveAlert(testAlert("INFY.NS"))
		}(i)
	}
	wg.Wait()

	for _, err := range errs {
		assert.NoError(t, err)
	}
	alerts, err := r.RecentAlerts(100)
	require.NoError(t, err)
	assert.Len(t, alerts, writers)
}
