// Package constants defines shared constants, types, and configuration values
// used throughout the onboarding flow.
package constants

import (
	"os"
	"time"
)

// Development is the environment variable value for development mode.
const Development = "DEV"

// Environment variables read by the onboarding flow and its binary.
const (
	EnvironmentEnvVar  = "ENVIRONMENT"
	LogLevelEnvVar     = "ONBOARD_LOG_LEVEL"
	LocaleEnvVar       = "ONBOARD_LOCALE"
	StoreDirEnvVar     = "ONBOARD_STORE_DIR"
	WindowWidthEnvVar  = "WINDOW_WIDTH"
	WindowHeightEnvVar = "WINDOW_HEIGHT"
)

// StorageKey identifies the persisted onboarding record.
const StorageKey = "app.onboarding"

// IsDevMode returns true if running in development mode (ENVIRONMENT=DEV).
// Assertion failures panic in development mode and are only logged otherwise.
func IsDevMode() bool {
	return os.Getenv(EnvironmentEnvVar) == Development
}

// VirtualButton represents an abstract input button, mapped from physical hardware.
type VirtualButton int

const (
	VirtualButtonUnassigned VirtualButton = iota
	VirtualButtonUp
	VirtualButtonDown
	VirtualButtonLeft
	VirtualButtonRight
	VirtualButtonA
	VirtualButtonB
	VirtualButtonStart
	VirtualButtonSelect
	VirtualButtonMenu
)

func (vb VirtualButton) GetName() string {
	switch vb {
	case VirtualButtonUnassigned:
		return "Unassigned"
	case VirtualButtonUp:
		return "Up"
	case VirtualButtonDown:
		return "Down"
	case VirtualButtonLeft:
		return "Left"
	case VirtualButtonRight:
		return "Right"
	case VirtualButtonA:
		return "A"
	case VirtualButtonB:
		return "B"
	case VirtualButtonStart:
		return "Start"
	case VirtualButtonSelect:
		return "Select"
	case VirtualButtonMenu:
		return "Menu"
	default:
		return "Unknown"
	}
}

// Default timing values for the display layer.
const (
	DefaultInputDelay        = 20 * time.Millisecond  // Debounce delay between input events
	DefaultPageTransition    = 350 * time.Millisecond // Duration of an animated page slide
	DefaultRevealDuration    = 350 * time.Millisecond // Overview reveal on the welcome page
	DefaultFrameDelay uint32 = 16
)

// TextAlign is the horizontal alignment of rendered text.
type TextAlign int

const (
	TextAlignLeft TextAlign = iota
	TextAlignCenter
	TextAlignRight
)

// Layout spacing shared by every onboarding page, in logical pixels.
const (
	HorizontalMargin  int32 = 32
	VerticalSpacing   int32 = 24
	VerticalSpacingSm int32 = 12
	ButtonHeight      int32 = 44
	ButtonWidth       int32 = 300
)
