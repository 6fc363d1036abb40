package telemetry

import (
	"time"

	"github.com/10gen/realm-backend/internal/terminal"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Service tracks telemetry events
type Service struct {
	command     string
	version     string
	executionID string
	tracker     Tracker
}

// NewService creates a new telemetry service
func NewService(mode Mode, ui terminal.UI, command, version string) *Service {
	service := Service{
		command:     command,
		version:     version,
		executionID: primitive.NewObjectID().Hex(),
	}

	switch mode {
	case ModeStdout:
		service.tracker = &stdoutTracker{ui}
	default:
		service.tracker = &noopTracker{}
	}

	return &service
}

// TrackEvent tracks events
func (service *Service) TrackEvent(eventType EventType, data ...EventData) {
	service.tracker.Track(event{
		id:          primitive.NewObjectID().Hex(),
		eventType:   eventType,
		time:        time.Now(),
		executionID: service.executionID,
		command:     service.command,
		version:     service.version,
		data:        data,
	})
}

// Close shuts down the Service
func (service Service) Close() {
	service.tracker.Close()
}
