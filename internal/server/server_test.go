package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"StockGenie/internal/collector"
	"StockGenie/internal/engine"
	"StockGenie/internal/model"
	"StockGenie/internal/notifier"
	"StockGenie/internal/predictor"
	"StockGenie/internal/recorder"
	"StockGenie/internal/strategy"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newTestServer(t *testing.T) (*Server, *recorder.SQLiteRecorder) {
	t.Helper()
	log := zap.NewNop()
	rec, err := recorder.NewSQLiteRecorder(filepath.Join(t.TempDir(), "alerts.db"), log)
	require.NoError(t, err)
	t.Cleanup(func() { rec.Close() })

	f := &collector.MockFetcher{
		IntradayData: []model.PriceSample{
			{Open: 100, Close: 101, Volume: 1000},
			{Open: 101, Close: 101.5, Volume: 1000},
		},
	}
	eng := engine.New([]string{"RELIANCE.NS"}, strategy.Thresholds{Fall: -1.5, Rise: 2.0},
		collector.NewCollector(f), predictor.New(f, log), rec, notifier.NewConsoleNotifier(log), log)
	return New(eng, 0, log), rec
}

func do(router *gin.Engine, method, target string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, target, nil)
	router.ServeHTTP(w, req)
	return w
}

func TestHealthz(t *testing.T) {
	s, _ := newTestServer(t)
	w := do(s.Router(), http.MethodGet, "/healthz")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "ok", w.Body.String())
}

func TestTriggerScan_AcknowledgesImmediately(t *testing.T) {
	s, _ := newTestServer(t)
	router := s.Router()

	for _, method := range []string{http.MethodPost, http.MethodGet} {
		w := do(router, method, "/trigger-scan")
		assert.Equal(t, http.StatusAccepted, w.Code)
		assert.JSONEq(t, `{"status":"started"}`, w.Body.String())
	}
}

func TestListAlerts(t *testing.T) {
	s, rec := newTestServer(t)
	router := s.Router()

	for i := 0; i < 4; i++ {
		require.NoError(t, rec.SaveAlert(&model.Alert{
			Symbol:       "TCS.NS",
			Price:        3500 + float64(i),
			ChangePct:    -2.5,
			AIPrediction: string(model.TrendNoData),
			AlertType:    model.AlertFalling,
		}))
	}

	w := do(router, http.MethodGet, "/api/alerts?limit=3")
	require.Equal(t, http.StatusOK, w.Code)

	var alerts []model.Alert
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &alerts))
	require.Len(t, alerts, 3)
	assert.Equal(t, 3503.0, alerts[0].Price) // newest first
	assert.Equal(t, model.AlertFalling, alerts[0].AlertType)
}

func TestListAlerts_BadLimitFallsBackToDefault(t *testing.T) {
	s, _ := newTestServer(t)
	w := do(s.Router(), http.MethodGet, "/api/alerts?limit=banana")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())
}

func TestListStocks(t *testing.T) {
	s, _ := newTestServer(t)
	w := do(s.Router(), http.MethodGet, "/api/stocks")
	require.Equal(t, http.StatusOK, w.Code)

	var out []map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	require.Len(t, out, 1)
	assert.Equal(t, "RELIANCE.NS", out[0]["symbol"])
	assert.Equal(t, 1.5, out[0]["change_pct"])
	assert.NotEmpty(t, out[0]["ai_prediction"])
}
