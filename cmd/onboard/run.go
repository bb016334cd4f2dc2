package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/BrandonKowalski/onboard/pkg/onboard"
	"github.com/BrandonKowalski/onboard/pkg/onboard/flow"
	"github.com/BrandonKowalski/onboard/pkg/onboard/text"
	"github.com/BrandonKowalski/onboard/pkg/onboard/ui"
)

// RunCmd shows the onboarding flow.
type RunCmd struct {
	StoreFlags `kong:"embed"`

	Locale   string `kong:"name='locale',env='ONBOARD_LOCALE',help='Preferred language, e.g. de or en-US.'"`
	Font     string `kong:"name='font',help='Path to the TTF font.'"`
	Windowed bool   `kong:"name='windowed',help='Use a resizable window instead of fullscreen.'"`
	Cannoli  bool   `kong:"name='cannoli',help='Use the Cannoli CFW theme.'"`
	Force    bool   `kong:"name='force',help='Start over even if onboarding was completed.'"`
	Preview  string `kong:"name='preview',placeholder='STEP',help='Show a single step (welcome, overview, skill_level, completion) without saving anything.'"`
	LogPath  string `kong:"name='log-path',help='Log file path.'"`
	LogLevel string `kong:"name='log-level',env='ONBOARD_LOG_LEVEL',help='Log level (debug, info, warn, error).'"`
}

// Run executes the onboard run command.
func (cmd RunCmd) Run(ctx context.Context) error {
	onboard.Init(onboard.Options{LogPath: cmd.LogPath, LogLevel: cmd.LogLevel})
	defer onboard.Close()

	logger := onboard.GetLogger()

	var preview *flow.State
	if cmd.Preview != "" {
		step, err := flow.ParseStep(cmd.Preview)
		if err != nil {
			return err
		}
		state := flow.At(step, flow.Model{})
		preview = &state
	}

	records, err := cmd.open()
	if err != nil {
		return err
	}

	if preview == nil && !cmd.Force && !onboard.IsRequired(records) {
		logger.Info("Onboarding already completed")
		return nil
	}

	catalog, err := text.New(cmd.Locale)
	if err != nil {
		return err
	}

	if err := ui.Init(ui.Options{
		WindowTitle: "Onboarding",
		Windowed:    cmd.Windowed,
		FontPath:    cmd.Font,
		IsCannoli:   cmd.Cannoli,
	}); err != nil {
		return err
	}
	defer ui.Close()

	screen, err := ui.NewScreen(catalog)
	if err != nil {
		return err
	}
	defer screen.Destroy()

	settings := screen.Settings()
	settings.Logger = logger

	var f *onboard.Flow
	switch {
	case preview != nil:
		f, err = onboard.New(*preview, settings)
	case cmd.Force:
		settings.Persistence = records
		f, err = onboard.New(flow.Initial(flow.Model{}), settings)
	default:
		f, err = onboard.Start(records, settings)
	}
	if onboard.IsNotRequired(err) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("start onboarding: %w", err)
	}
	defer f.Close()

	err = screen.Run(ctx, f)
	switch {
	case errors.Is(err, ui.ErrQuit), errors.Is(err, context.Canceled):
		logger.Info("Onboarding interrupted", "step", f.State().Step.String())
		return nil
	case err != nil:
		return err
	}

	return nil
}
