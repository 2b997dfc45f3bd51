package notifier

import "go.uber.org/zap"

// Notifier delivers outbound messages. Delivery is best-effort: callers
// log a failed send and move on, it never aborts a scan.
type Notifier interface {
	Send(text string) error
}

// ConsoleNotifier logs messages instead of delivering them. Used when
// Telegram credentials are not configured.
type ConsoleNotifier struct {
	log *zap.Logger
}

func NewConsoleNotifier(log *zap.Logger) *ConsoleNotifier {
	return &ConsoleNotifier{log: log}
}

func (c *ConsoleNotifier) Send(text string) error {
	c.log.Info("notification", zap.String("text", text))
	return nil
}
