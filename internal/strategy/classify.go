package strategy

import "StockGenie/internal/model"

// Thresholds holds the configured alert thresholds in percent.
// Fall is negative, Rise positive; operators must keep them on the
// correct sides of zero, the classifier does not re-check.
type Thresholds struct {
	Fall float64
	Rise float64
}

// Classify decides the alert type for one symbol from its snapshot and
// trend classification. Threshold rules take precedence over the AI
// signal; at most one alert type is produced per symbol per cycle.
func Classify(snap *model.SymbolSnapshot, trend model.Trend, th Thresholds) model.AlertType {
	switch {
	case snap.ChangePct <= th.Fall:
		return model.AlertFalling
	case snap.ChangePct >= th.Rise:
		return model.AlertRising
	case trend == model.TrendDown:
		return model.AlertAIDown
	default:
		return model.AlertNone
	}
}
