package recorder

import (
	"database/sql"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"
	_ "modernc.org/sqlite"

	"StockGenie/internal/model"
)

// SQLiteRecorder persists alerts to a SQLite database.
type SQLiteRecorder struct {
	db  *sql.DB
	mu  sync.Mutex
	log *zap.Logger
}

// NewSQLiteRecorder opens (or creates) the SQLite database and runs migrations.
func NewSQLiteRecorder(dbPath string, log *zap.Logger) (*SQLiteRecorder, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	// WAL mode so the recent-alerts query never blocks a writing scan pass.
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("set WAL mode: %w", err)
	}

	r := &SQLiteRecorder{db: db, log: log}
	if err := r.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	log.Info("sqlite recorder opened", zap.String("path", dbPath))
	return r, nil
}

func (r *SQLiteRecorder) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS alerts (
			id            INTEGER PRIMARY KEY AUTOINCREMENT,
			symbol        TEXT NOT NULL,
			price         REAL,
			change_pct    REAL,
			ai_prediction TEXT,
			alert_type    TEXT NOT NULL,
			created_at    INTEGER NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_alerts_created ON alerts(created_at)`,
	}

	for _, s := range stmts {
		if _, err := r.db.Exec(s); err != nil {
			return fmt.Errorf("exec %q: %w", s[:40], err)
		}
	}
	return nil
}

// SaveAlert appends one alert. The mutex gives single-writer discipline
// across concurrent scan passes.
func (r *SQLiteRecorder) SaveAlert(alert *model.Alert) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if alert.CreatedAt.IsZero() {
		alert.CreatedAt = time.Now().UTC()
	}

	res, err := r.db.Exec(`INSERT INTO alerts
		(symbol, price, change_pct, ai_prediction, alert_type, created_at)
		VALUES (?,?,?,?,?,?)`,
		alert.Symbol, alert.Price, alert.ChangePct,
		alert.AIPrediction, string(alert.AlertType), alert.CreatedAt.Unix(),
	)
	if err != nil {
		return err
	}
	if id, err := res.LastInsertId(); err == nil {
		alert.ID = id
	}
	return nil
}

// RecentAlerts returns up to limit alerts in descending insertion order.
func (r *SQLiteRecorder) RecentAlerts(limit int) ([]model.Alert, error) {
	rows, err := r.db.Query(`SELECT id, symbol, price, change_pct, ai_prediction, alert_type, created_at
		FROM alerts ORDER BY id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	alerts := make([]model.Alert, 0, limit)
	for rows.Next() {
		var a model.Alert
		var alertType string
		var created int64
		if err := rows.Scan(&a.ID, &a.Symbol, &a.Price, &a.ChangePct, &a.AIPrediction, &alertType, &created); err != nil {
			return nil, err
		}
		a.AlertType = model.AlertType(alertType)
		a.CreatedAt = time.Unix(created, 0).UTC()
		alerts = append(alerts, a)
	}
	return alerts, rows.Err()
}

func (r *SQLiteRecorder) Close() error {
	r.log.Info("closing sqlite recorder")
	return r.db.Close()
}
