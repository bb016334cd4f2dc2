package router

import "github.com/BrandonKowalski/onboard/pkg/onboard/flow"

// View is the per-page view managed by the Pager. Views read the shared
// flow state themselves; the pager only tells them when to re-render.
type View interface {
	// OnStateChanged re-renders the view for the current step and model.
	OnStateChanged()
}

// Activatable is implemented by views that do layout or animation work
// while visible. The pager keeps at most one view active.
type Activatable interface {
	SetActive(active bool)
}

// SnapshotTestable is implemented by views that expose their animated states
// to a snapshot harness. Each method moves the view into that state and
// returns true only if something changed and should be captured.
type SnapshotTestable interface {
	PreTransitionState() bool
	VisibleState() bool
	PostTransitionState() bool
}

// ViewFactory builds the view for a page. Factories are keyed by page, never
// by step, so steps merged with their predecessor cannot get a view of their own.
type ViewFactory interface {
	NewView(page flow.Page, state *flow.Subject) View
}

// ViewFactoryFunc adapts a function to ViewFactory.
type ViewFactoryFunc func(page flow.Page, state *flow.Subject) View

func (f ViewFactoryFunc) NewView(page flow.Page, state *flow.Subject) View {
	return f(page, state)
}

// Direction is the visual direction of a page transition.
type Direction int

const (
	DirectionForward Direction = iota
	DirectionBackward
)

func (d Direction) String() string {
	if d == DirectionBackward {
		return "backward"
	}
	return "forward"
}

// Transitioner moves the display from one view to another. It may finish
// immediately or after an animation, and must call done exactly once when
// the target is fully on screen. done may be called after the pager is torn
// down; it is a no-op then.
type Transitioner interface {
	Transition(from, to View, dir Direction, animated bool, done func())
}

// TransitionerFunc adapts a function to Transitioner.
type TransitionerFunc func(from, to View, dir Direction, animated bool, done func())

func (f TransitionerFunc) Transition(from, to View, dir Direction, animated bool, done func()) {
	f(from, to, dir, animated, done)
}

// InstantTransitioner swaps views without animation and completes synchronously.
var InstantTransitioner = TransitionerFunc(func(_, _ View, _ Direction, _ bool, done func()) {
	done()
})
