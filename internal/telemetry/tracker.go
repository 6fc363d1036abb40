package telemetry

import (
	"fmt"
	"strings"

	"github.com/10gen/realm-backend/internal/terminal"
)

// Tracker logs events
type Tracker interface {
	Track(event event)
	Close()
}

type noopTracker struct{}

func (tracker *noopTracker) Track(event event) {}

func (tracker *noopTracker) Close() {}

// stdoutTracker prints each event as a debug log
type stdoutTracker struct {
	ui terminal.UI
}

func (tracker *stdoutTracker) Track(event event) {
	data := make([]string, len(event.data))
	for i, d := range event.data {
		data[i] = fmt.Sprintf("%s=%v", d.Key, d.Value)
	}

	tracker.ui.Print(terminal.NewDebugLog(
		"TELEM %s: %s[%s]",
		event.command,
		event.eventType,
		strings.Join(data, ", "),
	))
}

func (tracker *stdoutTracker) Close() {}
