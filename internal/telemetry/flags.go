package telemetry

import (
	"fmt"
	"strings"
)

// set of telemetry flags
const (
	FlagMode      = "telemetry"
	FlagModeUsage = `enable or disable telemetry, available options: ["off", "stdout"]`
)

// Mode is the Telemetry Mode
type Mode string

// NewMode creates a new Mode from the modeString or returns ModeEmpty
func NewMode(modeString string) Mode {
	mode := Mode(modeString)
	if !isValidMode(mode) {
		return ModeEmpty
	}
	return mode
}

// String returns the string representation
func (m Mode) String() string { return string(m) }

// Type returns the Mode type
func (m Mode) Type() string { return "string" }

// Set validates and sets the telemetry mode value
func (m *Mode) Set(val string) error {
	mode := Mode(val)

	if !isValidMode(mode) {
		allModes := []string{ModeOff.String(), ModeStdout.String()}
		return fmt.Errorf("unsupported value, use one of [%s] instead", strings.Join(allModes, ", "))
	}

	*m = mode
	return nil
}

// set of supported telemetry modes
const (
	ModeEmpty  Mode = "" // zero-valued to be flag's default
	ModeOff    Mode = "off"
	ModeStdout Mode = "stdout"
)

func isValidMode(mode Mode) bool {
	switch mode {
	case
		ModeEmpty,
		ModeOff,
		ModeStdout:
		return true
	}
	return false
}
