package router_test

import (
	"errors"
	"runtime"
	"slices"
	"testing"

	"github.com/BrandonKowalski/onboard/pkg/onboard/flow"
	"github.com/BrandonKowalski/onboard/pkg/onboard/router"
)

type fakeView struct {
	page    flow.Page
	state   *flow.Subject
	updates []flow.Step
	active  bool
}

func (v *fakeView) OnStateChanged() {
	v.updates = append(v.updates, v.state.Value().Step)
}

func (v *fakeView) SetActive(active bool) {
	v.active = active
}

func (v *fakeView) PreTransitionState() bool  { return true }
func (v *fakeView) VisibleState() bool        { return v.page == flow.PageWelcome }
func (v *fakeView) PostTransitionState() bool { return false }

type fakeFactory struct {
	built []*fakeView
}

func (f *fakeFactory) NewView(page flow.Page, state *flow.Subject) router.View {
	v := &fakeView{page: page, state: state}
	f.built = append(f.built, v)
	return v
}

type transition struct {
	from, to router.View
	dir      router.Direction
	animated bool
	done     func()
}

// deferredTransitioner records transitions and completes them on demand.
type deferredTransitioner struct {
	pending []transition
}

func (d *deferredTransitioner) Transition(from, to router.View, dir router.Direction, animated bool, done func()) {
	d.pending = append(d.pending, transition{from: from, to: to, dir: dir, animated: animated, done: done})
}

func (d *deferredTransitioner) finishAll() {
	for _, t := range d.pending {
		t.done()
	}
	d.pending = nil
}

func newPager(t *testing.T, start flow.State, tr router.Transitioner) (*router.Pager, *flow.Subject, *fakeFactory) {
	t.Helper()
	state := flow.NewSubject(start)
	factory := &fakeFactory{}
	p, err := router.New(state, factory, router.Options{Transitioner: tr})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	return p, state, factory
}

// move sends the state for step and asks the pager to follow it.
func move(t *testing.T, p *router.Pager, state *flow.Subject, step flow.Step) {
	t.Helper()
	s := state.Value()
	s.Step = step
	state.Send(s)
	if err := p.Advance(step); err != nil {
		t.Fatalf("Advance(%v) error = %v", step, err)
	}
}

func TestNew_BuildsStartView(t *testing.T) {
	p, _, factory := newPager(t, flow.Initial(flow.Model{}), nil)

	if len(factory.built) != 1 {
		t.Fatalf("built %d views, want 1", len(factory.built))
	}
	start := factory.built[0]
	if start.page != flow.PageWelcome {
		t.Errorf("start page = %v, want welcome", start.page)
	}
	if p.Current() != start || p.Index() != 0 {
		t.Errorf("Current() = %v at %d, want start view at 0", p.Current(), p.Index())
	}
	if !start.active {
		t.Error("start view should be active")
	}
}

func TestNew_NilViewFails(t *testing.T) {
	state := flow.NewSubject(flow.Initial(flow.Model{}))
	nilFactory := router.ViewFactoryFunc(func(flow.Page, *flow.Subject) router.View { return nil })

	_, err := router.New(state, nilFactory, router.Options{})
	if !errors.Is(err, router.ErrNoView) {
		t.Errorf("New() error = %v, want ErrNoView", err)
	}
}

func TestAdvance_MergedStepKeepsView(t *testing.T) {
	tr := &deferredTransitioner{}
	p, state, factory := newPager(t, flow.Initial(flow.Model{}), tr)
	welcome := p.Current()

	move(t, p, state, flow.StepOverview)

	if p.Current() != welcome {
		t.Error("merged step should keep the welcome view")
	}
	if p.Cache().Len() != 1 || len(factory.built) != 1 {
		t.Errorf("cache len = %d, built = %d, want 1 and 1", p.Cache().Len(), len(factory.built))
	}
	if len(tr.pending) != 0 {
		t.Errorf("merged step started %d transitions, want 0", len(tr.pending))
	}
	got := factory.built[0].updates
	if len(got) != 1 || got[0] != flow.StepOverview {
		t.Errorf("welcome view updates = %v, want [overview]", got)
	}
}

func TestAdvance_ForwardCreatesAndAnimates(t *testing.T) {
	tr := &deferredTransitioner{}
	p, state, factory := newPager(t, flow.Initial(flow.Model{}), tr)

	move(t, p, state, flow.StepOverview)
	move(t, p, state, flow.StepSkillLevel)

	if p.Index() != 1 || p.Cache().Len() != 2 {
		t.Fatalf("Index() = %d, Len() = %d, want 1 and 2", p.Index(), p.Cache().Len())
	}
	skill := factory.built[1]
	if skill.page != flow.PageSkillLevel {
		t.Errorf("new view page = %v, want skill_level", skill.page)
	}
	if len(tr.pending) != 1 {
		t.Fatalf("pending transitions = %d, want 1", len(tr.pending))
	}
	got := tr.pending[0]
	if got.dir != router.DirectionForward || !got.animated {
		t.Errorf("transition dir = %v animated = %t, want forward animated", got.dir, got.animated)
	}
	if got.from != factory.built[0] || got.to != skill {
		t.Error("transition should go from the welcome view to the skill level view")
	}
	if !skill.active || factory.built[0].active {
		t.Error("only the skill level view should be active")
	}

	if len(skill.updates) != 0 {
		t.Fatalf("view updated before the transition finished: %v", skill.updates)
	}
	tr.finishAll()
	if len(skill.updates) != 1 || skill.updates[0] != flow.StepSkillLevel {
		t.Errorf("skill level view updates = %v, want [skill_level]", skill.updates)
	}
}

func TestAdvance_ReentryReusesViews(t *testing.T) {
	p, state, factory := newPager(t, flow.Initial(flow.Model{}), nil)

	move(t, p, state, flow.StepOverview)
	move(t, p, state, flow.StepSkillLevel)
	skill := p.Current()
	move(t, p, state, flow.StepCompletion)
	completion := p.Current()

	move(t, p, state, flow.StepSkillLevel) // backward
	if p.Current() != skill || p.Index() != 1 {
		t.Fatalf("backward move landed on index %d, want cached skill level view at 1", p.Index())
	}

	move(t, p, state, flow.StepCompletion) // forward again
	if p.Current() != completion || p.Index() != 2 {
		t.Fatalf("re-entry landed on index %d, want cached completion view at 2", p.Index())
	}

	if len(factory.built) != 3 || p.Cache().Len() != 3 {
		t.Errorf("built %d views, cache len %d, want 3 and 3", len(factory.built), p.Cache().Len())
	}
}

func TestAdvance_MergedStepFromLaterPageKeepsView(t *testing.T) {
	tr := &deferredTransitioner{}
	p, state, factory := newPager(t, flow.Initial(flow.Model{}), tr)

	move(t, p, state, flow.StepOverview)
	move(t, p, state, flow.StepSkillLevel)
	tr.finishAll()
	skill := factory.built[1]
	move(t, p, state, flow.StepOverview)

	if p.Current() != skill || p.Index() != 1 {
		t.Fatalf("overview moved the display to index %d, want the skill level view at 1", p.Index())
	}
	if len(tr.pending) != 0 {
		t.Errorf("merged step started %d transitions, want 0", len(tr.pending))
	}
	if p.Cache().Len() != 2 {
		t.Errorf("cache len = %d, want 2", p.Cache().Len())
	}
	want := []flow.Step{flow.StepSkillLevel, flow.StepOverview}
	if !slices.Equal(skill.updates, want) {
		t.Errorf("skill level view updates = %v, want %v", skill.updates, want)
	}

	// Returning to the page already on screen only re-renders it.
	move(t, p, state, flow.StepSkillLevel)
	if p.Current() != skill || len(tr.pending) != 0 {
		t.Errorf("skill level after overview landed on index %d with %d transitions, want 1 and 0", p.Index(), len(tr.pending))
	}
}

func TestAdvance_BackwardWithoutCacheFails(t *testing.T) {
	p, state, _ := newPager(t, flow.State{Step: flow.StepCompletion}, nil)
	before := p.Current()

	s := state.Value()
	s.Step = flow.StepSkillLevel
	state.Send(s)

	err := p.Advance(flow.StepSkillLevel)
	if !errors.Is(err, router.ErrNoCachedPredecessor) {
		t.Fatalf("Advance() error = %v, want ErrNoCachedPredecessor", err)
	}
	if p.Current() != before || p.Index() != 0 || p.Cache().Len() != 1 {
		t.Error("failed backward move should leave the pager unchanged")
	}
}

func TestAdvance_CacheNeverShrinks(t *testing.T) {
	p, state, _ := newPager(t, flow.Initial(flow.Model{}), nil)

	lengths := []int{}
	for _, step := range []flow.Step{
		flow.StepOverview, flow.StepSkillLevel, flow.StepCompletion,
		flow.StepSkillLevel, flow.StepOverview, flow.StepSkillLevel, flow.StepCompletion,
	} {
		move(t, p, state, step)
		lengths = append(lengths, p.Cache().Len())
	}

	for i := 1; i < len(lengths); i++ {
		if lengths[i] < lengths[i-1] {
			t.Fatalf("cache shrank: %v", lengths)
		}
		if lengths[i]-lengths[i-1] > 1 {
			t.Fatalf("cache grew by more than one view: %v", lengths)
		}
	}
}

func TestAdvance_AfterClose(t *testing.T) {
	p, _, _ := newPager(t, flow.Initial(flow.Model{}), nil)
	p.Close()
	p.Close()

	if err := p.Advance(flow.StepOverview); !errors.Is(err, router.ErrClosed) {
		t.Errorf("Advance() after Close error = %v, want ErrClosed", err)
	}
	if !p.Closed() {
		t.Error("Closed() = false after Close")
	}
}

func TestCompletion_AfterCloseIsNoop(t *testing.T) {
	tr := &deferredTransitioner{}
	p, state, factory := newPager(t, flow.State{Step: flow.StepOverview}, tr)

	move(t, p, state, flow.StepSkillLevel)
	p.Close()
	tr.finishAll()

	if got := factory.built[1].updates; len(got) != 0 {
		t.Errorf("stale completion updated the view: %v", got)
	}
}

func TestCompletion_AfterCollectionIsNoop(t *testing.T) {
	tr := &deferredTransitioner{}
	state := flow.NewSubject(flow.State{Step: flow.StepOverview})
	factory := &fakeFactory{}

	func() {
		p, err := router.New(state, factory, router.Options{Transitioner: tr})
		if err != nil {
			t.Fatalf("New() error = %v", err)
		}
		s := state.Value()
		s.Step = flow.StepSkillLevel
		state.Send(s)
		if err := p.Advance(flow.StepSkillLevel); err != nil {
			t.Fatalf("Advance() error = %v", err)
		}
	}()

	runtime.GC()
	runtime.GC()
	tr.finishAll()

	// Whether or not the pager was collected yet, the callback must not
	// panic, and if it ran the view saw the state it was built for.
	for _, step := range factory.built[1].updates {
		if step != flow.StepSkillLevel {
			t.Errorf("view updated for %v", step)
		}
	}
}

func TestCompletion_SupersededIsNoop(t *testing.T) {
	tr := &deferredTransitioner{}
	p, state, factory := newPager(t, flow.State{Step: flow.StepOverview}, tr)

	move(t, p, state, flow.StepSkillLevel)
	move(t, p, state, flow.StepCompletion)
	tr.finishAll()

	if got := factory.built[1].updates; len(got) != 0 {
		t.Errorf("superseded view updated: %v", got)
	}
	if got := factory.built[2].updates; len(got) != 1 {
		t.Errorf("completion view updates = %v, want one", got)
	}
}

func TestPager_SnapshotHooks(t *testing.T) {
	p, state, _ := newPager(t, flow.Initial(flow.Model{}), nil)

	if !p.PreTransitionState() || !p.VisibleState() || p.PostTransitionState() {
		t.Error("welcome snapshot hooks should be pre=true visible=true post=false")
	}

	move(t, p, state, flow.StepOverview)
	move(t, p, state, flow.StepSkillLevel)
	if p.VisibleState() {
		t.Error("skill level view reports no visible state")
	}
}
