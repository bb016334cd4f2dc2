package display

import (
	"time"

	"github.com/BrandonKowalski/onboard/pkg/onboard/constants"
)

// DirectionalInput turns a held directional button into repeated presses.
// Embed it in views that move a selection.
type DirectionalInput struct {
	held           constants.VirtualButton
	lastRepeatTime time.Time
	repeatDelay    time.Duration
	repeatInterval time.Duration
	hasRepeated    bool
}

// NewDirectionalInput waits 300ms before the first repeat, then repeats
// every 120ms.
func NewDirectionalInput() DirectionalInput {
	return NewDirectionalInputWithTiming(300*time.Millisecond, 120*time.Millisecond)
}

func NewDirectionalInputWithTiming(delay, interval time.Duration) DirectionalInput {
	return DirectionalInput{
		repeatDelay:    delay,
		repeatInterval: interval,
		lastRepeatTime: time.Now(),
	}
}

func isDirectional(button constants.VirtualButton) bool {
	switch button {
	case constants.VirtualButtonUp, constants.VirtualButtonDown, constants.VirtualButtonLeft, constants.VirtualButtonRight:
		return true
	}
	return false
}

// SetHeld records a press or release. It returns false for buttons that are
// not directional.
func (d *DirectionalInput) SetHeld(button constants.VirtualButton, held bool, now time.Time) bool {
	if !isDirectional(button) {
		return false
	}
	switch {
	case held:
		d.held = button
		d.hasRepeated = false
		d.lastRepeatTime = now
	case d.held == button:
		d.held = constants.VirtualButtonUnassigned
		d.hasRepeated = false
	}
	return true
}

// Update returns the held direction when a repeat is due, otherwise
// VirtualButtonUnassigned. Call it every frame.
func (d *DirectionalInput) Update(now time.Time) constants.VirtualButton {
	if d.held == constants.VirtualButtonUnassigned {
		d.lastRepeatTime = now
		return constants.VirtualButtonUnassigned
	}

	threshold := d.repeatInterval
	if !d.hasRepeated {
		threshold = d.repeatDelay
	}

	if now.Sub(d.lastRepeatTime) >= threshold {
		d.lastRepeatTime = now
		d.hasRepeated = true
		return d.held
	}

	return constants.VirtualButtonUnassigned
}

// Reset forgets the held direction.
func (d *DirectionalInput) Reset() {
	d.held = constants.VirtualButtonUnassigned
	d.hasRepeated = false
	d.lastRepeatTime = time.Now()
}
