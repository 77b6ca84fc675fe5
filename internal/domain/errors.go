package domain

import "errors"

// Domain errors
var (
	ErrControlDisabled        = errors.New("control is disabled")
	ErrInputsLocked           = errors.New("duration inputs are locked while the countdown runs")
	ErrNotRunning             = errors.New("countdown is not running")
	ErrAlreadyRunning         = errors.New("countdown is already running")
	ErrUnsupportedLanguage    = errors.New("unsupported language")
	ErrUnsupportedThemeMode   = errors.New("unsupported theme mode")
	ErrUnsupportedColorScheme = errors.New("unsupported color scheme")
	ErrPreferenceNotFound     = errors.New("preference not found")
)
