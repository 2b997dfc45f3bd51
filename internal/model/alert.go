package model

import "time"

// Trend is the coarse directional classification produced by the predictor.
type Trend string

const (
	TrendUp      Trend = "Uptrend Expected"
	TrendDown    Trend = "Possible Downtrend"
	TrendNeutral Trend = "Neutral"
	TrendNoData  Trend = "No Data"
	TrendError   Trend = "Error"
)

// AlertType indicates what condition triggered an alert.
type AlertType string

const (
	AlertFalling AlertType = "Falling"
	AlertRising  AlertType = "Rising"
	AlertAIDown  AlertType = "AI-down"
	AlertNone    AlertType = "" // no alert; never persisted
)

// Alert is a persisted record of a symbol crossing a configured
// price-change threshold or exhibiting a negative trend signal.
// IDs are assigned by the store in insertion order; records are
// never mutated after insertion.
type Alert struct {
	ID           int64     `json:"id"`
	Symbol       string    `json:"symbol"`
	Price        float64   `json:"price"`
	ChangePct    float64   `json:"change_pct"`
	AIPrediction string    `json:"ai_prediction"`
	AlertType    AlertType `json:"alert_type"`
	CreatedAt    time.Time `json:"created_at"` // UTC
}
