package onboard

import (
	"errors"
	"log/slog"

	"github.com/BrandonKowalski/onboard/pkg/onboard/flow"
	"github.com/BrandonKowalski/onboard/pkg/onboard/internal"
	"github.com/BrandonKowalski/onboard/pkg/onboard/router"
	"github.com/google/uuid"
	"go.uber.org/atomic"
)

// Indicator is the page indicator shown below the step views.
type Indicator interface {
	SetPage(index int)
	Hide()
}

// Background is the screen background treatment.
type Background interface {
	// ApplyVariant switches to the treatment used on the terminal step.
	ApplyVariant()
}

// Settings configures a Flow. Views is required; zero values select the
// defaults for everything else.
type Settings struct {
	Views        router.ViewFactory  // Builds the view for each page
	Transitioner router.Transitioner // Defaults to router.InstantTransitioner
	Indicator    Indicator           // Defaults to no indicator
	Background   Background          // Defaults to no background
	Persistence  Persistence         // Defaults to keeping the model in memory only
	Logger       *slog.Logger        // Defaults to the internal logger
}

// Flow hosts one onboarding session. It owns the shared state, keeps the
// pager in step with it and persists the model whenever it changes.
type Flow struct {
	id          string
	state       *flow.Subject
	pager       *router.Pager
	indicator   Indicator
	background  Background
	persistence Persistence
	logger      *slog.Logger

	cancels         []func()
	terminalApplied atomic.Bool
	closed          atomic.Bool
}

// New starts a flow at initial. Use it for previews and tests, or after
// deciding with IsRequired that onboarding should be shown.
func New(initial flow.State, settings Settings) (*Flow, error) {
	if settings.Views == nil {
		return nil, errors.New("onboard: settings.Views is required")
	}

	f := &Flow{
		id:          uuid.Must(uuid.NewV7()).String(),
		state:       flow.NewSubject(initial),
		indicator:   settings.Indicator,
		background:  settings.Background,
		persistence: settings.Persistence,
		logger:      settings.Logger,
	}

	if f.indicator == nil {
		f.indicator = noIndicator{}
	}
	if f.background == nil {
		f.background = noBackground{}
	}
	if f.persistence == nil {
		f.persistence = noPersistence{}
	}
	if f.logger == nil {
		f.logger = internal.GetInternalLogger()
	}
	f.logger = f.logger.With("session", f.id)

	pager, err := router.New(f.state, settings.Views, router.Options{
		Transitioner: settings.Transitioner,
		Logger:       f.logger,
	})
	if err != nil {
		return nil, NewInvariantError("new_pager", err)
	}
	f.pager = pager

	if initial.Step.IsTerminal() {
		f.applyTerminal()
	} else {
		f.indicator.SetPage(initial.Step.Index())
	}

	f.cancels = append(f.cancels,
		flow.OnChange(f.state, flow.StepKey, f.navigate),
		flow.OnChange(f.state, flow.ModelKey, f.persist),
	)

	f.logger.Debug("Onboarding started", "step", initial.Step.String())

	return f, nil
}

// Start loads the persisted model from p and starts a flow on the first step
// that saves back to p. It returns ErrNotRequired if the record shows
// onboarding was already completed. A record that is not completed is resumed
// with its model kept.
func Start(p Persistence, settings Settings) (*Flow, error) {
	if p == nil {
		return nil, errors.New("onboard: persistence is required")
	}
	settings.Persistence = p

	model, ok := p.Load()
	if ok && model.Completed {
		return nil, ErrNotRequired
	}

	return New(flow.Initial(model), settings)
}

// navigate follows step changes only.
func (f *Flow) navigate(state flow.State) {
	f.logger.Debug("Onboarding step changed", "step", state.Step.String())

	if state.Step.IsTerminal() {
		f.applyTerminal()
	} else {
		f.indicator.SetPage(state.Step.Index())
	}

	if err := f.pager.Advance(state.Step); err != nil {
		f.logger.Error("Failed to move to onboarding step", "step", state.Step.String(), "error", NewInvariantError("advance", err))
	}
}

// persist follows model changes only.
func (f *Flow) persist(state flow.State) {
	f.persistence.Save(state.Model)
}

func (f *Flow) applyTerminal() {
	if !f.terminalApplied.CompareAndSwap(false, true) {
		return
	}
	f.indicator.Hide()
	f.background.ApplyVariant()
}

// Continue moves to the next step if the current one allows it. It returns
// false on the terminal step, while the skill level is unset on the skill
// level step, or after Close.
func (f *Flow) Continue() bool {
	if f.closed.Load() || !f.state.Value().CanContinue() {
		return false
	}
	return f.state.Continue()
}

// SelectSkillLevel records level in the model.
func (f *Flow) SelectSkillLevel(level flow.SkillLevel) {
	if f.closed.Load() {
		return
	}
	f.state.Update(f.state.Value().Model.WithSkillLevel(level))
}

// ToggleSkillLevel selects level, or clears it if it is already selected.
func (f *Flow) ToggleSkillLevel(level flow.SkillLevel) {
	if f.closed.Load() {
		return
	}
	f.state.Update(f.state.Value().Model.ToggleSkillLevel(level))
}

// Close ends the session. Subscriptions are cancelled and pending view
// transitions will not act on the torn-down flow.
func (f *Flow) Close() {
	if f.closed.Swap(true) {
		return
	}
	for _, cancel := range f.cancels {
		cancel()
	}
	f.cancels = nil
	f.pager.Close()

	f.logger.Debug("Onboarding closed", "step", f.state.Value().Step.String())
}

// State returns the current flow state.
func (f *Flow) State() flow.State {
	return f.state.Value()
}

// Subject returns the shared observable state handed to every view.
func (f *Flow) Subject() *flow.Subject {
	return f.state
}

// Pager returns the pager driving the step views.
func (f *Flow) Pager() *router.Pager {
	return f.pager
}

// SessionID identifies this flow in logs.
func (f *Flow) SessionID() string {
	return f.id
}

// Completed reports whether the flow reached the terminal step.
func (f *Flow) Completed() bool {
	return f.state.Value().Model.Completed
}

func (f *Flow) PreTransitionState() bool {
	return f.pager.PreTransitionState()
}

func (f *Flow) VisibleState() bool {
	return f.pager.VisibleState()
}

func (f *Flow) PostTransitionState() bool {
	return f.pager.PostTransitionState()
}

type noIndicator struct{}

func (noIndicator) SetPage(int) {}
func (noIndicator) Hide()       {}

type noBackground struct{}

func (noBackground) ApplyVariant() {}

type noPersistence struct{}

func (noPersistence) Load() (flow.Model, bool) { return flow.Model{}, false }
func (noPersistence) Save(flow.Model)          {}
func (noPersistence) Clear()                   {}
