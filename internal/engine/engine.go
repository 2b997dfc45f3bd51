// Package engine drives scan passes over the configured symbols:
// fetch intraday data, predict the trend, classify against thresholds,
// persist qualifying alerts and notify. Scheduled and manual passes may
// run concurrently; write serialization is the recorder's job.
package engine

import (
	"errors"
	"sort"
	"sync"
	"sync/atomic"

	"go.uber.org/zap"

	"StockGenie/internal/collector"
	"StockGenie/internal/model"
	"StockGenie/internal/notifier"
	"StockGenie/internal/predictor"
	"StockGenie/internal/recorder"
	"StockGenie/internal/strategy"
)

// Engine owns the scan configuration and collaborator handles. The
// symbol list and thresholds are immutable after construction, so
// overlapping passes share them freely.
type Engine struct {
	symbols    []string
	thresholds strategy.Thresholds

	collector *collector.Collector
	predictor *predictor.Predictor
	recorder  recorder.Recorder
	notifier  notifier.Notifier
	log       *zap.Logger

	scanning atomic.Bool // scheduled-pass state: false = idle
}

// New creates an Engine. All collaborators are required.
func New(symbols []string, th strategy.Thresholds, col *collector.Collector,
	pred *predictor.Predictor, rec recorder.Recorder, not notifier.Notifier, log *zap.Logger) *Engine {
	return &Engine{
		symbols:    symbols,
		thresholds: th,
		collector:  col,
		predictor:  pred,
		recorder:   rec,
		notifier:   not,
		log:        log,
	}
}

// RunScheduled executes one scan pass on behalf of the timer. If a
// scheduled pass is still running, the tick is skipped.
func (e *Engine) RunScheduled() {
	if !e.scanning.CompareAndSwap(false, true) {
		e.log.Warn("scheduled scan skipped, previous pass still running")
		return
	}
	defer e.scanning.Store(false)
	e.ScanPass()
}

// TriggerScan starts a manual scan pass and returns immediately. The
// pass may overlap a scheduled one; overlapping passes can record the
// same condition twice, which is accepted behavior.
func (e *Engine) TriggerScan() {
	go e.ScanPass()
}

// ScanPass runs one full pass over all configured symbols. Each
// symbol's work is independent; a failure skips that symbol only.
func (e *Engine) ScanPass() {
	e.log.Info("starting market scan", zap.Int("symbols", len(e.symbols)))
	for _, symbol := range e.symbols {
		e.scanSymbol(symbol)
	}
	e.log.Info("market scan finished")
}

func (e *Engine) scanSymbol(symbol string) {
	snap, err := e.collector.Snapshot(symbol)
	if err != nil {
		if errors.Is(err, collector.ErrNoData) {
			e.log.Warn("no intraday data, skipping symbol", zap.String("symbol", symbol))
		} else {
			e.log.Error("snapshot failed, skipping symbol", zap.String("symbol", symbol), zap.Error(err))
		}
		return
	}

	trend := e.predictor.Predict(symbol)

	alertType := strategy.Classify(snap, trend, e.thresholds)
	if alertType == model.AlertNone {
		return
	}

	alert := &model.Alert{
		Symbol:       snap.Symbol,
		Price:        snap.Price,
		ChangePct:    snap.ChangePct,
		AIPrediction: string(trend),
		AlertType:    alertType,
	}
	if err := e.recorder.SaveAlert(alert); err != nil {
		// The alert is lost for this cycle; the pass continues.
		e.log.Error("persist alert failed", zap.String("symbol", symbol), zap.Error(err))
		return
	}

	text := notifier.FormatAlert(alert)
	e.log.Info("alert", zap.String("symbol", alert.Symbol),
		zap.String("type", string(alert.AlertType)), zap.Float64("change_pct", alert.ChangePct))
	if err := e.notifier.Send(text); err != nil {
		e.log.Error("send notification failed", zap.String("symbol", symbol), zap.Error(err))
	}
}

// Snapshots returns the current snapshot and trend for every configured
// symbol, sorted by descending intraday volume. Symbols without data
// are omitted; this read-through view never touches the alert store.
func (e *Engine) Snapshots() []notifier.SnapshotView {
	var (
		mu    sync.Mutex
		wg    sync.WaitGroup
		views = make([]notifier.SnapshotView, 0, len(e.symbols))
	)
	for _, symbol := range e.symbols {
		wg.Add(1)
		go func(sym string) {
			defer wg.Done()
			snap, err := e.collector.Snapshot(sym)
			if err != nil {
				if !errors.Is(err, collector.ErrNoData) {
					e.log.Error("snapshot failed", zap.String("symbol", sym), zap.Error(err))
				}
				return
			}
			view := notifier.SnapshotView{Snapshot: *snap, Trend: e.predictor.Predict(sym)}
			mu.Lock()
			views = append(views, view)
			mu.Unlock()
		}(symbol)
	}
	wg.Wait()

	sort.SliceStable(views, func(i, j int) bool {
		return views[i].Snapshot.Volume > views[j].Snapshot.Volume
	})
	return views
}

// RecentAlerts returns up to limit persisted alerts, most recent first.
func (e *Engine) RecentAlerts(limit int) ([]model.Alert, error) {
	return e.recorder.RecentAlerts(limit)
}

// HandleCommand processes a Telegram command and returns a reply.
func (e *Engine) HandleCommand(command string) string {
	switch command {
	case "/scan":
		e.TriggerScan()
		return "🔍 Scan started."
	case "/alerts":
		alerts, err := e.recorder.RecentAlerts(10)
		if err != nil {
			e.log.Error("list alerts failed", zap.Error(err))
			return "Could not load alerts."
		}
		return notifier.FormatAlertList(alerts)
	case "/stocks":
		return notifier.FormatSnapshotReport(e.Snapshots())
	default:
		return "Available commands:\n• /scan - run a scan now\n• /alerts - recent alerts\n• /stocks - market snapshot"
	}
}
