package domain

import "time"

// Translation keys for the start/stop control label.
const (
	LabelStart = "startButton"
	LabelStop  = "stopButton"
)

// Controls is the enable/disable bookkeeping for the input surface.
type Controls struct {
	StartStopLabel    string
	StartStopDisabled bool
	ResetDisabled     bool
	SetDisabled       bool
	InputsDisabled    bool
	// Alerting switches the display to the alert color after completion.
	Alerting bool
}

// InitialControls is the control state right after startup.
func InitialControls() Controls {
	return Controls{
		StartStopLabel: LabelStart,
		ResetDisabled:  true,
	}
}

// Frame is one published view of the countdown.
type Frame struct {
	SessionID string
	Phase     Phase
	Clock     Clock
	Remaining time.Duration
	Total     time.Duration
	Progress  float64
	Controls  Controls
	// StartStopText is the translated start/stop label.
	StartStopText string
}
