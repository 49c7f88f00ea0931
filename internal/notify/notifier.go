// Package notify delivers user-facing job notifications. Delivery is
// fire-and-forget: the job core never waits for confirmation, and a failed
// send is logged, not propagated.
package notify

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
)

// Severity of a notification.
type Severity string

const (
	SeverityInfo    Severity = "info"
	SeveritySuccess Severity = "success"
	SeverityWarning Severity = "warning"
	SeverityError   Severity = "error"
)

// Notification is one message pushed to a user.
type Notification struct {
	Title     string   `json:"title"`
	Message   string   `json:"message"`
	Severity  Severity `json:"severity"`
	ActionRef string   `json:"actionRef,omitempty"`
}

// Notifier pushes notifications to the owning user.
type Notifier interface {
	Send(ctx context.Context, userID uuid.UUID, n Notification)
}

// LogNotifier writes notifications to the log. Used when no channel is
// configured and in tests.
type LogNotifier struct {
	Logger *slog.Logger
}

func NewLogNotifier(logger *slog.Logger) *LogNotifier {
	if logger == nil {
		logger = slog.Default()
	}
	return &LogNotifier{Logger: logger}
}

func (l *LogNotifier) Send(_ context.Context, userID uuid.UUID, n Notification) {
	l.Logger.Info("notify.send",
		"user_id", userID,
		"severity", string(n.Severity),
		"title", n.Title,
		"message", n.Message,
	)
}
