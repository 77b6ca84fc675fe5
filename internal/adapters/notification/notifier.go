// Package notification plays the completion alert: a short beep pattern
// and an optional desktop notification.
package notification

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/gen2brain/beeep"

	"github.com/CrueChan/Timer/internal/config"
	"github.com/CrueChan/Timer/internal/i18n"
	"github.com/CrueChan/Timer/internal/ports"
)

const defaultFrequency = 880.0

// Notifier implements ports.Alerter with beeep.
type Notifier struct {
	cfg        config.AlertConfig
	translator ports.Translator

	beep   func(freq float64, ms int) error
	notify func(title, message string, icon any) error
}

// Ensure Notifier implements ports.Alerter.
var _ ports.Alerter = (*Notifier)(nil)

// New creates a new notifier with the given configuration.
func New(cfg config.AlertConfig, translator ports.Translator) *Notifier {
	return &Notifier{
		cfg:        cfg,
		translator: translator,
		beep:       beeep.Beep,
		notify:     beeep.Notify,
	}
}

// IsEnabled returns true if any alert output is enabled.
func (n *Notifier) IsEnabled() bool {
	return n.cfg.Sound || n.cfg.Notify
}

// Alert plays the beep pattern and shows the notification. Failures of
// either are collected and returned together.
func (n *Notifier) Alert(ctx context.Context) error {
	var errs []error

	if n.cfg.Notify {
		title, message := i18n.KeyAlertTitle, i18n.KeyAlertMessage
		if n.translator != nil {
			title, message = n.translator.T(title), n.translator.T(message)
		}
		if err := n.notify(title, message, ""); err != nil {
			errs = append(errs, fmt.Errorf("notify: %w", err))
		}
	}

	if n.cfg.Sound {
		if err := n.playPattern(ctx); err != nil {
			errs = append(errs, err)
		}
	}

	return errors.Join(errs...)
}

// playPattern beeps BeepCount times with a gap as long as each beep.
func (n *Notifier) playPattern(ctx context.Context) error {
	count := n.cfg.BeepCount
	if count <= 0 {
		count = 1
	}
	length := time.Duration(n.cfg.BeepLength)
	if length <= 0 {
		length = 180 * time.Millisecond
	}
	freq := n.cfg.BeepFrequency
	if freq <= 0 {
		freq = defaultFrequency
	}

	for i := 0; i < count; i++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := n.beep(freq, int(length/time.Millisecond)); err != nil {
			return fmt.Errorf("beep: %w", err)
		}
		if i == count-1 {
			break
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(length):
		}
	}
	return nil
}
