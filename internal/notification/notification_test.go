package notification

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/its-steo/GrandV-sub001/internal/logging"
)

func TestConsoleNotifier(t *testing.T) {
	var buf bytes.Buffer
	n := NewConsoleNotifier(&buf)

	n.Notify(context.Background(), Message{Kind: KindLogin, Body: "Welcome back, steo!"})

	assert.Equal(t, "Welcome back, steo!\n", buf.String())
}

func TestConsoleNotifier_NilWriter(t *testing.T) {
	n := NewConsoleNotifier(nil)
	assert.NotPanics(t, func() {
		n.Notify(context.Background(), Message{Kind: KindLogout, Body: "bye"})
	})
}

func TestLoggerNotifier(t *testing.T) {
	n := NewLoggerNotifier(logging.Discard())
	assert.NotPanics(t, func() {
		n.Notify(context.Background(), Message{Kind: KindRegister, Body: "Welcome"})
	})
}
