package notifier

import (
	"fmt"
	"strings"

	"StockGenie/internal/model"
)

// FormatAlert formats a single alert into a Telegram message.
func FormatAlert(a *model.Alert) string {
	return fmt.Sprintf("🚨 <b>ALERT</b> %s %s %+.2f%% price %.2f",
		a.Symbol, a.AlertType, a.ChangePct, a.Price)
}

// FormatAlertList formats recent alerts for the /alerts command.
func FormatAlertList(alerts []model.Alert) string {
	if len(alerts) == 0 {
		return "No alerts recorded yet."
	}
	var b strings.Builder
	b.WriteString("📋 <b>Recent alerts</b>\n\n")
	for _, a := range alerts {
		b.WriteString(fmt.Sprintf("%s · %s · %+.2f%% · %s\n",
			a.Symbol, a.AlertType, a.ChangePct, a.CreatedAt.Format("01-02 15:04")))
	}
	return b.String()
}

// SnapshotView pairs a snapshot with its trend for display.
type SnapshotView struct {
	Snapshot model.SymbolSnapshot
	Trend    model.Trend
}

// FormatSnapshotReport formats the current per-symbol view for the
// /stocks command, in the same descending-volume order the HTTP
// surface uses.
func FormatSnapshotReport(views []SnapshotView) string {
	if len(views) == 0 {
		return "No market data available right now."
	}
	var b strings.Builder
	b.WriteString("📊 <b>Market snapshot</b>\n\n")
	for _, v := range views {
		b.WriteString(fmt.Sprintf("<b>%s</b> %.2f (%+.2f%%) vol %.0f · %s\n",
			v.Snapshot.Symbol, v.Snapshot.Price, v.Snapshot.ChangePct,
			v.Snapshot.Volume, v.Trend))
	}
	return b.String()
}
