package router

import (
	"errors"
	"fmt"
	"log/slog"
	"weak"

	"github.com/BrandonKowalski/onboard/pkg/onboard/flow"
	"github.com/BrandonKowalski/onboard/pkg/onboard/internal"
	"go.uber.org/atomic"
)

var (
	// ErrNoCachedPredecessor indicates a backward move with no cached view
	// before the current one. The flow never invents a backward target.
	ErrNoCachedPredecessor = errors.New("router: no cached view to move backward to")

	// ErrNoView indicates the view factory returned nil for a page.
	ErrNoView = errors.New("router: view factory returned no view")

	// ErrClosed is returned by Advance after the pager has been closed.
	ErrClosed = errors.New("router: pager closed")
)

// Options configures a Pager. Zero values select the defaults.
type Options struct {
	Transitioner Transitioner // Defaults to InstantTransitioner
	Logger       *slog.Logger // Defaults to the internal logger
}

// Pager owns the view cache and moves the display between step views.
//
// Exactly one cached view is current. Other cached views stay instantiated
// but inactive until they are revisited.
type Pager struct {
	state        *flow.Subject
	factory      ViewFactory
	transitioner Transitioner
	logger       *slog.Logger

	cache *Cache
	index int
	step  flow.Step
	page  flow.Page // page of the current view

	closed atomic.Bool
}

// New creates a Pager showing the view for the state's current step.
func New(state *flow.Subject, factory ViewFactory, options Options) (*Pager, error) {
	p := &Pager{
		state:        state,
		factory:      factory,
		transitioner: options.Transitioner,
		logger:       options.Logger,
		cache:        NewCache(),
		step:         state.Value().Step,
	}
	p.page = p.step.Page()

	if p.transitioner == nil {
		p.transitioner = InstantTransitioner
	}
	if p.logger == nil {
		p.logger = internal.GetInternalLogger()
	}

	start := factory.NewView(p.step.Page(), state)
	if start == nil {
		err := fmt.Errorf("%w: %s", ErrNoView, p.step.Page())
		internal.AssertionFailure("pager.new", err)
		return nil, err
	}

	p.index = p.cache.Append(start)
	setActive(start, true)

	return p, nil
}

// Advance moves the display to the view for step to.
//
// A step merged with its predecessor never changes the visible view or the
// cache: the current view re-renders, whichever page it shows. So does a step
// whose page is already on screen. Moving to the predecessor of the last step
// goes back one cached view; any other move goes forward, reusing the next
// cached view if the user has been there before and building it otherwise.
func (p *Pager) Advance(to flow.Step) error {
	if p.closed.Load() {
		return ErrClosed
	}

	current := p.Current()

	if to.IsMergedWithPredecessor() || to.Page() == p.page {
		p.logger.Debug("Pager updating shared view", "step", to.String(), "page", p.page.String(), "index", p.index)
		p.step = to
		current.OnStateChanged()
		return nil
	}

	dir := DirectionForward
	target := p.index + 1
	if to.IsPredecessorOf(p.step) {
		dir = DirectionBackward
		target = p.index - 1
	}

	view, ok := p.cache.At(target)
	switch {
	case !ok && dir == DirectionBackward:
		err := fmt.Errorf("%w: %s -> %s at index %d", ErrNoCachedPredecessor, p.step, to, p.index)
		internal.AssertionFailure("pager.advance", err)
		return err

	case !ok:
		view = p.factory.NewView(to.Page(), p.state)
		if view == nil {
			err := fmt.Errorf("%w: %s", ErrNoView, to.Page())
			internal.AssertionFailure("pager.advance", err)
			return err
		}
		target = p.cache.Append(view)
		p.logger.Debug("Pager created view", "step", to.String(), "page", to.Page().String(), "index", target)

	default:
		p.logger.Debug("Pager reusing view", "step", to.String(), "index", target)
	}

	p.index = target
	p.step = to
	p.page = to.Page()

	setActive(current, false)
	setActive(view, true)

	animated := to.Transition() == flow.TransitionPage
	p.logger.Debug("Pager transition", "step", to.String(), "direction", dir.String(), "animated", animated)
	p.transitioner.Transition(current, view, dir, animated, p.completion(view))

	return nil
}

// completion builds the transition callback. It holds the pager weakly so a
// pending animation never keeps a torn-down flow alive or acts on it.
func (p *Pager) completion(target View) func() {
	ref := weak.Make(p)
	return func() {
		pager := ref.Value()
		if pager == nil || pager.closed.Load() {
			return
		}
		if pager.Current() != target {
			// superseded by a later transition
			return
		}
		target.OnStateChanged()
	}
}

// Close tears the pager down. Pending transition callbacks become no-ops
// and further calls to Advance return ErrClosed.
func (p *Pager) Close() {
	if p.closed.Swap(true) {
		return
	}
	setActive(p.Current(), false)
}

// Closed reports whether Close has been called.
func (p *Pager) Closed() bool {
	return p.closed.Load()
}

// Current returns the view on screen.
func (p *Pager) Current() View {
	v, _ := p.cache.At(p.index)
	return v
}

// Index returns the cache index of the current view.
func (p *Pager) Index() int {
	return p.index
}

// Step returns the step the pager last moved to.
func (p *Pager) Step() flow.Step {
	return p.step
}

// Cache returns the view cache.
func (p *Pager) Cache() *Cache {
	return p.cache
}

func (p *Pager) PreTransitionState() bool {
	if v, ok := p.Current().(SnapshotTestable); ok {
		return v.PreTransitionState()
	}
	return false
}

func (p *Pager) VisibleState() bool {
	if v, ok := p.Current().(SnapshotTestable); ok {
		return v.VisibleState()
	}
	return false
}

func (p *Pager) PostTransitionState() bool {
	if v, ok := p.Current().(SnapshotTestable); ok {
		return v.PostTransitionState()
	}
	return false
}

func setActive(v View, active bool) {
	if a, ok := v.(Activatable); ok {
		a.SetActive(active)
	}
}
