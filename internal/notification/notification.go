// Package notification decouples user-facing notices from business logic.
// Services emit messages through a Notifier; the presentation layer decides
// how to surface them.
package notification

import (
	"context"
	"fmt"
	"io"

	"github.com/its-steo/GrandV-sub001/internal/logging"
)

const (
	// KindLogin indicates a successful sign-in.
	KindLogin = "login"
	// KindRegister indicates a successful account creation.
	KindRegister = "register"
	// KindLogout indicates the session was ended by the user.
	KindLogout = "logout"
)

// Message describes a notification payload.
type Message struct {
	Kind string
	Body string
}

// Notifier delivers notifications to the user.
type Notifier interface {
	Notify(ctx context.Context, message Message)
}

// ConsoleNotifier writes notifications to a terminal writer. This is the
// interactive CLI's equivalent of a toast.
type ConsoleNotifier struct {
	w io.Writer
}

// NewConsoleNotifier constructs a notifier writing to w.
func NewConsoleNotifier(w io.Writer) *ConsoleNotifier {
	return &ConsoleNotifier{w: w}
}

func (n *ConsoleNotifier) Notify(_ context.Context, message Message) {
	if n == nil || n.w == nil {
		return
	}
	fmt.Fprintln(n.w, message.Body)
}

// LoggerNotifier routes notifications to the structured logger. Useful in
// tests and non-interactive runs.
type LoggerNotifier struct {
	logger logging.Logger
}

// NewLoggerNotifier constructs a logging notifier.
func NewLoggerNotifier(logger logging.Logger) *LoggerNotifier {
	return &LoggerNotifier{logger: logger}
}

func (n *LoggerNotifier) Notify(ctx context.Context, message Message) {
	if n == nil || n.logger == nil {
		return
	}
	n.logger.Info(ctx, "notification", "kind", message.Kind, "body", message.Body)
}
