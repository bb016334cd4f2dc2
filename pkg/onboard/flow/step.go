// Package flow holds the onboarding step catalog, the user-entered model and
// the observable flow state shared by the host, the pager and every step view.
//
// Nothing in this package is safe for concurrent use. All state changes are
// expected to happen on the UI goroutine in response to input events.
package flow

import "fmt"

// Step is one position in the onboarding sequence.
type Step int

const (
	StepWelcome Step = iota
	StepOverview
	StepSkillLevel
	StepCompletion
)

// Page identifies a rendered view kind. Steps merged with their predecessor
// render on the predecessor's page, so there is no page for them.
type Page int

const (
	PageWelcome Page = iota
	PageSkillLevel
	PageCompletion
)

// TransitionStyle is how the display moves onto a step's page.
type TransitionStyle int

const (
	TransitionInstant TransitionStyle = iota // Swap without animation
	TransitionPage                           // Animated page slide
)

type stepPolicy struct {
	name       string
	merged     bool
	transition TransitionStyle
	page       Page
}

// catalog is indexed by Step. Order is the flow order.
var catalog = [...]stepPolicy{
	StepWelcome:    {name: "welcome", transition: TransitionInstant, page: PageWelcome},
	StepOverview:   {name: "overview", merged: true, transition: TransitionInstant, page: PageWelcome},
	StepSkillLevel: {name: "skill_level", transition: TransitionPage, page: PageSkillLevel},
	StepCompletion: {name: "completion", transition: TransitionPage, page: PageCompletion},
}

// Steps returns every step in flow order.
func Steps() []Step {
	steps := make([]Step, len(catalog))
	for i := range catalog {
		steps[i] = Step(i)
	}
	return steps
}

// ParseStep returns the step with the given name.
func ParseStep(name string) (Step, error) {
	for i, p := range catalog {
		if p.name == name {
			return Step(i), nil
		}
	}
	return 0, fmt.Errorf("flow: unknown step %q", name)
}

func (s Step) valid() bool {
	return s >= 0 && int(s) < len(catalog)
}

func (s Step) policy() stepPolicy {
	if !s.valid() {
		panic(fmt.Sprintf("flow: step %d out of range", int(s)))
	}
	return catalog[s]
}

func (s Step) String() string {
	if !s.valid() {
		return fmt.Sprintf("Step(%d)", int(s))
	}
	return catalog[s].name
}

// Index is the step's ordinal position, which is also its page indicator position.
func (s Step) Index() int {
	s.policy()
	return int(s)
}

// Next returns the following step, or false when s is terminal.
func (s Step) Next() (Step, bool) {
	s.policy()
	if int(s)+1 >= len(catalog) {
		return 0, false
	}
	return s + 1, true
}

// Predecessor returns the preceding step, or false for the first step.
func (s Step) Predecessor() (Step, bool) {
	s.policy()
	if s == 0 {
		return 0, false
	}
	return s - 1, true
}

// IsPredecessorOf reports whether s immediately precedes other.
func (s Step) IsPredecessorOf(other Step) bool {
	prev, ok := other.Predecessor()
	return ok && prev == s
}

// IsMergedWithPredecessor reports whether s shares its rendered view with the
// previous step instead of getting a page of its own.
func (s Step) IsMergedWithPredecessor() bool {
	return s.policy().merged
}

// Transition is the animation style used when moving onto s.
func (s Step) Transition() TransitionStyle {
	return s.policy().transition
}

// IsTerminal reports whether s has no successor.
func (s Step) IsTerminal() bool {
	_, ok := s.Next()
	return !ok
}

// Page is the view kind that renders s.
func (s Step) Page() Page {
	return s.policy().page
}

func (p Page) String() string {
	switch p {
	case PageWelcome:
		return "welcome"
	case PageSkillLevel:
		return "skill_level"
	case PageCompletion:
		return "completion"
	default:
		return fmt.Sprintf("Page(%d)", int(p))
	}
}

func (t TransitionStyle) String() string {
	switch t {
	case TransitionInstant:
		return "instant"
	case TransitionPage:
		return "page"
	default:
		return fmt.Sprintf("TransitionStyle(%d)", int(t))
	}
}
