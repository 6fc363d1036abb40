package telemetry

import (
	"bytes"
	"errors"
	"testing"

	"github.com/10gen/realm-backend/internal/terminal"
	"github.com/10gen/realm-backend/internal/utils/test/assert"
)

const (
	testCommand = "command"
	testVersion = "version"
	testXID     = "executionID"
)

type testTracker struct {
	lastTrackedEvent event
}

func (tracker *testTracker) Track(event event) {
	tracker.lastTrackedEvent = event
}

func (tracker *testTracker) Close() {}

func newTestUI() (*bytes.Buffer, terminal.UI) {
	out := new(bytes.Buffer)
	return out, terminal.NewUI(terminal.UIConfig{DisableColors: true}, nil, out, out)
}

func TestNewService(t *testing.T) {
	_, ui := newTestUI()

	t.Run("Should create the expected Service", func(t *testing.T) {
		service := NewService(ModeStdout, ui, testCommand, testVersion)

		assert.Equal(t, testCommand, service.command)
		assert.True(t, service.executionID != "", "service execution id must not be blank")
		assert.Equal(t, testVersion, service.version)

		tracker, ok := service.tracker.(*stdoutTracker)
		assert.True(t, ok, "expected a stdout tracker but got: %T", service.tracker)
		assert.True(t, tracker.ui == ui, "expected the tracker to print to the ui")
	})

	for _, mode := range []Mode{ModeEmpty, ModeOff} {
		t.Run("Should create a noop tracker for mode '"+mode.String()+"'", func(t *testing.T) {
			service := NewService(mode, ui, testCommand, testVersion)
			assert.Equal(t, &noopTracker{}, service.tracker)
		})
	}
}

func TestServiceTrackEvent(t *testing.T) {
	t.Run("Should track the expected event", func(t *testing.T) {
		tracker := &testTracker{}
		service := &Service{
			command:     testCommand,
			version:     testVersion,
			executionID: testXID,
			tracker:     tracker,
		}

		service.TrackEvent(EventTypeCommandError, EventData{Key: EventDataKeyError, Value: errors.New("error")})

		assert.Equal(t, EventTypeCommandError, tracker.lastTrackedEvent.eventType)
		assert.Equal(t, testCommand, tracker.lastTrackedEvent.command)
		assert.Equal(t, testXID, tracker.lastTrackedEvent.executionID)
		assert.Equal(t, testVersion, tracker.lastTrackedEvent.version)
		assert.True(t, tracker.lastTrackedEvent.id != "", "event id must not be blank")
		assert.Equal(t, 1, len(tracker.lastTrackedEvent.data))
		assert.Equal(t, EventDataKeyError, tracker.lastTrackedEvent.data[0].Key)
		assert.Equal(t, errors.New("error"), tracker.lastTrackedEvent.data[0].Value)
	})

	t.Run("Should print events to the ui with the stdout tracker", func(t *testing.T) {
		out, ui := newTestUI()
		service := NewService(ModeStdout, ui, "describe", testVersion)

		service.TrackEvent(EventTypeCommandStart)
		service.TrackEvent(EventTypeCommandError, EventData{Key: EventDataKeyError, Value: errors.New("oh no")})
		service.Close()

		assert.Equal(t, `TELEM describe: COMMAND_START[]
TELEM describe: COMMAND_ERROR[err=oh no]
`, out.String())
	})

	t.Run("Should print nothing with the noop tracker", func(t *testing.T) {
		out, ui := newTestUI()
		service := NewService(ModeOff, ui, "describe", testVersion)

		service.TrackEvent(EventTypeCommandStart)
		service.Close()

		assert.Equal(t, "", out.String())
	})
}
