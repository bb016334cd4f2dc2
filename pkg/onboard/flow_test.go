package onboard_test

import (
	"bytes"
	"errors"
	"log/slog"
	"slices"
	"strings"
	"testing"

	"github.com/BrandonKowalski/onboard/pkg/onboard"
	"github.com/BrandonKowalski/onboard/pkg/onboard/flow"
	"github.com/BrandonKowalski/onboard/pkg/onboard/router"
)

type stubView struct {
	page    flow.Page
	renders int
}

func (v *stubView) OnStateChanged() { v.renders++ }

type stubFactory struct {
	built []*stubView
}

func (f *stubFactory) NewView(page flow.Page, _ *flow.Subject) router.View {
	v := &stubView{page: page}
	f.built = append(f.built, v)
	return v
}

type stubIndicator struct {
	pages  []int
	hidden int
}

func (i *stubIndicator) SetPage(index int) { i.pages = append(i.pages, index) }
func (i *stubIndicator) Hide()             { i.hidden++ }

type stubBackground struct {
	variants int
}

func (b *stubBackground) ApplyVariant() { b.variants++ }

type stubPersistence struct {
	loaded  flow.Model
	present bool
	saves   []flow.Model
	clears  int
}

func (p *stubPersistence) Load() (flow.Model, bool) { return p.loaded, p.present }
func (p *stubPersistence) Save(m flow.Model)        { p.saves = append(p.saves, m) }
func (p *stubPersistence) Clear()                   { p.clears++ }

type harness struct {
	flow        *onboard.Flow
	views       *stubFactory
	indicator   *stubIndicator
	background  *stubBackground
	persistence *stubPersistence
}

func newHarness(t *testing.T, initial flow.State) *harness {
	t.Helper()
	h := &harness{
		views:       &stubFactory{},
		indicator:   &stubIndicator{},
		background:  &stubBackground{},
		persistence: &stubPersistence{},
	}
	f, err := onboard.New(initial, onboard.Settings{
		Views:       h.views,
		Indicator:   h.indicator,
		Background:  h.background,
		Persistence: h.persistence,
	})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	t.Cleanup(f.Close)
	h.flow = f
	return h
}

func TestNew_RequiresViews(t *testing.T) {
	if _, err := onboard.New(flow.Initial(flow.Model{}), onboard.Settings{}); err == nil {
		t.Error("New() without views should fail")
	}
}

func TestNew_InitialStateDoesNotNotify(t *testing.T) {
	h := newHarness(t, flow.Initial(flow.Model{}))

	if len(h.persistence.saves) != 0 {
		t.Errorf("saves = %d, want 0", len(h.persistence.saves))
	}
	if len(h.views.built) != 1 || h.views.built[0].page != flow.PageWelcome {
		t.Fatalf("built views = %v, want only the welcome view", h.views.built)
	}
	if len(h.indicator.pages) != 1 || h.indicator.pages[0] != 0 {
		t.Errorf("indicator pages = %v, want [0]", h.indicator.pages)
	}
	if h.flow.SessionID() == "" {
		t.Error("SessionID() is empty")
	}
}

func TestContinue_WelcomeToOverviewKeepsView(t *testing.T) {
	h := newHarness(t, flow.Initial(flow.Model{}))

	if !h.flow.Continue() {
		t.Fatal("Continue() = false, want true")
	}

	got := h.flow.State()
	if got.Step != flow.StepOverview || got.Model != (flow.Model{}) {
		t.Errorf("State() = %v, want (overview, unset)", got)
	}
	if len(h.persistence.saves) != 0 {
		t.Errorf("saves = %d, want 0 for an unchanged model", len(h.persistence.saves))
	}
	if len(h.views.built) != 1 {
		t.Errorf("built %d views, want the welcome view to be reused", len(h.views.built))
	}
	if h.views.built[0].renders != 1 {
		t.Errorf("welcome view rendered %d times, want 1", h.views.built[0].renders)
	}
	if want := []int{0, 1}; !slices.Equal(h.indicator.pages, want) {
		t.Errorf("indicator pages = %v, want %v", h.indicator.pages, want)
	}
}

func TestContinue_OverviewToSkillLevel(t *testing.T) {
	h := newHarness(t, flow.State{Step: flow.StepOverview})

	h.flow.Continue()

	if got := h.flow.State().Step; got != flow.StepSkillLevel {
		t.Fatalf("Step = %v, want skill_level", got)
	}
	if len(h.views.built) != 2 || h.views.built[1].page != flow.PageSkillLevel {
		t.Fatalf("built views = %d, want a new skill level view", len(h.views.built))
	}
	if h.flow.Pager().Current() != router.View(h.views.built[1]) {
		t.Error("pager did not move to the skill level view")
	}
	if len(h.persistence.saves) != 0 {
		t.Errorf("saves = %d, want 0", len(h.persistence.saves))
	}
}

func TestContinue_BlockedWithoutSkillLevel(t *testing.T) {
	h := newHarness(t, flow.State{Step: flow.StepSkillLevel})

	if h.flow.Continue() {
		t.Error("Continue() = true with no skill level selected")
	}
	if got := h.flow.State().Step; got != flow.StepSkillLevel {
		t.Errorf("Step = %v, want skill_level", got)
	}
}

func TestSelectAndContinue_Completes(t *testing.T) {
	h := newHarness(t, flow.State{Step: flow.StepSkillLevel})

	h.flow.SelectSkillLevel(flow.SkillLevelProfessional)
	if !h.flow.Continue() {
		t.Fatal("Continue() = false, want true")
	}

	want := flow.Model{SkillLevel: flow.SkillLevelProfessional, Completed: true}
	if got := h.flow.State(); got.Step != flow.StepCompletion || got.Model != want {
		t.Errorf("State() = %v, want (completion, %+v)", got, want)
	}
	if n := len(h.persistence.saves); n == 0 || h.persistence.saves[n-1] != want {
		t.Errorf("last save = %v, want %+v", h.persistence.saves, want)
	}
	if h.indicator.hidden != 1 || h.background.variants != 1 {
		t.Errorf("terminal effects: hidden=%d variants=%d, want 1 each", h.indicator.hidden, h.background.variants)
	}
	if !h.flow.Completed() {
		t.Error("Completed() = false")
	}

	if h.flow.Continue() {
		t.Error("Continue() on the terminal step = true")
	}
	if h.indicator.hidden != 1 || h.background.variants != 1 {
		t.Error("terminal effects applied more than once")
	}
}

func TestToggleSkillLevel(t *testing.T) {
	h := newHarness(t, flow.State{Step: flow.StepSkillLevel})

	h.flow.ToggleSkillLevel(flow.SkillLevelBeginner)
	h.flow.ToggleSkillLevel(flow.SkillLevelBeginner)

	if got := h.flow.State().Model.SkillLevel; got.IsSet() {
		t.Errorf("SkillLevel = %v, want unset after toggling twice", got)
	}
	if len(h.persistence.saves) != 2 {
		t.Errorf("saves = %d, want 2", len(h.persistence.saves))
	}
}

func TestSelectSameSkillLevel_SavesOnce(t *testing.T) {
	h := newHarness(t, flow.State{Step: flow.StepSkillLevel})

	h.flow.SelectSkillLevel(flow.SkillLevelBeginner)
	h.flow.SelectSkillLevel(flow.SkillLevelBeginner)

	if len(h.persistence.saves) != 1 {
		t.Errorf("saves = %d, want 1", len(h.persistence.saves))
	}
}

func TestClose_StopsActions(t *testing.T) {
	h := newHarness(t, flow.Initial(flow.Model{}))
	h.flow.Close()
	h.flow.Close()

	if h.flow.Continue() {
		t.Error("Continue() after Close = true")
	}
	h.flow.SelectSkillLevel(flow.SkillLevelBeginner)
	if h.flow.State().Model.SkillLevel.IsSet() {
		t.Error("SelectSkillLevel() after Close changed the model")
	}
	if !h.flow.Pager().Closed() {
		t.Error("pager not closed")
	}
}

func TestStart_CompletedRecordNotRequired(t *testing.T) {
	p := &stubPersistence{loaded: flow.Model{Completed: true}, present: true}

	_, err := onboard.Start(p, onboard.Settings{Views: &stubFactory{}})
	if !errors.Is(err, onboard.ErrNotRequired) || !onboard.IsNotRequired(err) {
		t.Errorf("Start() error = %v, want ErrNotRequired", err)
	}
	if onboard.IsRequired(p) {
		t.Error("IsRequired() = true for a completed record")
	}
}

func TestStart_ResumesIncompleteRecord(t *testing.T) {
	p := &stubPersistence{loaded: flow.Model{SkillLevel: flow.SkillLevelBeginner}, present: true}

	f, err := onboard.Start(p, onboard.Settings{Views: &stubFactory{}})
	if err != nil {
		t.Fatalf("Start() error = %v", err)
	}
	defer f.Close()

	got := f.State()
	if got.Step != flow.StepWelcome || got.Model.SkillLevel != flow.SkillLevelBeginner {
		t.Errorf("State() = %v, want (welcome, beginner)", got)
	}
	if !onboard.IsRequired(p) {
		t.Error("IsRequired() = false for an incomplete record")
	}
}

func TestStart_NoRecord(t *testing.T) {
	p := &stubPersistence{}

	f, err := onboard.Start(p, onboard.Settings{Views: &stubFactory{}})
	if err != nil {
		t.Fatalf("Start() error = %v", err)
	}
	defer f.Close()

	if got := f.State(); got != flow.Initial(flow.Model{}) {
		t.Errorf("State() = %v, want the initial state", got)
	}
}

func TestStart_RequiresPersistence(t *testing.T) {
	if _, err := onboard.Start(nil, onboard.Settings{Views: &stubFactory{}}); err == nil {
		t.Error("Start() without persistence should fail")
	}
}

func TestContinue_MissingViewLogsInvariantError(t *testing.T) {
	t.Setenv("ENVIRONMENT", "")

	var logs bytes.Buffer
	views := router.ViewFactoryFunc(func(page flow.Page, _ *flow.Subject) router.View {
		if page == flow.PageSkillLevel {
			return nil
		}
		return &stubView{page: page}
	})

	f, err := onboard.New(flow.State{Step: flow.StepOverview}, onboard.Settings{
		Views:  views,
		Logger: slog.New(slog.NewJSONHandler(&logs, nil)),
	})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	defer f.Close()

	if !f.Continue() {
		t.Fatal("Continue() = false")
	}
	if got := f.Pager().Index(); got != 0 {
		t.Errorf("pager index = %d, want 0 after the failed move", got)
	}
	if !strings.Contains(logs.String(), "onboard: advance: router: view factory returned no view") {
		t.Errorf("log does not carry the invariant error: %s", logs.String())
	}
}

func TestInvariantError(t *testing.T) {
	err := error(onboard.NewInvariantError("advance", router.ErrNoCachedPredecessor))

	if !onboard.IsInvariantError(err) {
		t.Error("IsInvariantError() = false")
	}
	if !errors.Is(err, router.ErrNoCachedPredecessor) {
		t.Error("InvariantError does not unwrap to its cause")
	}
	if onboard.IsInvariantError(onboard.ErrNotRequired) {
		t.Error("IsInvariantError(ErrNotRequired) = true")
	}
}
