package flow

// Listener receives each state sent to a Subject.
type Listener func(State)

type subscription struct {
	id int
	fn Listener
}

// Subject is the observable container for the flow state. It always holds a
// current value. Listeners run synchronously in subscription order on every
// Send; subscribing never replays the current value.
type Subject struct {
	value  State
	subs   []subscription
	nextID int

	dispatching bool
	pending     []State
}

// NewSubject creates a Subject holding initial.
func NewSubject(initial State) *Subject {
	return &Subject{value: initial}
}

// Value returns the current state.
func (s *Subject) Value() State {
	return s.value
}

// Send replaces the current state and notifies every listener, including
// when the new state equals the old one. Deduplication is left to listeners.
//
// A Send made from inside a listener updates the value immediately but is
// delivered after the current delivery finishes, so every listener sees
// states in the order they were sent.
func (s *Subject) Send(state State) {
	s.value = state
	s.pending = append(s.pending, state)
	if s.dispatching {
		return
	}

	s.dispatching = true
	defer func() {
		// A listener that panicked leaves undelivered states behind.
		s.dispatching = false
		s.pending = nil
	}()

	for len(s.pending) > 0 {
		next := s.pending[0]
		s.pending = s.pending[1:]
		s.deliver(next)
	}
}

func (s *Subject) deliver(state State) {
	// Listeners may subscribe or cancel while being notified.
	subs := make([]subscription, len(s.subs))
	copy(subs, s.subs)
	for _, sub := range subs {
		if s.active(sub.id) {
			sub.fn(state)
		}
	}
}

// Continue advances the current state to the next step, keeping the model.
// Returns false when already on the terminal step.
func (s *Subject) Continue() bool {
	next, ok := Advance(s.value, nil)
	if !ok {
		return false
	}
	s.Send(next)
	return true
}

// Update sends the current state with its model replaced.
func (s *Subject) Update(model Model) {
	state := s.value
	state.Model = model
	s.Send(state)
}

// Subscribe registers fn for future sends. The returned function cancels
// the subscription and is safe to call more than once.
func (s *Subject) Subscribe(fn Listener) (cancel func()) {
	id := s.nextID
	s.nextID++
	s.subs = append(s.subs, subscription{id: id, fn: fn})

	return func() {
		for i, sub := range s.subs {
			if sub.id == id {
				s.subs = append(s.subs[:i], s.subs[i+1:]...)
				return
			}
		}
	}
}

func (s *Subject) active(id int) bool {
	for _, sub := range s.subs {
		if sub.id == id {
			return true
		}
	}
	return false
}

// Subscribers returns the number of registered listeners.
func (s *Subject) Subscribers() int {
	return len(s.subs)
}

// OnChange subscribes fn so it only fires when key(state) differs from the
// key of the previous state seen by this listener. The last-seen key is
// seeded from the current value, so the value held at subscription time
// never fires.
func OnChange[K comparable](s *Subject, key func(State) K, fn Listener) (cancel func()) {
	last := key(s.Value())
	return s.Subscribe(func(state State) {
		k := key(state)
		if k == last {
			return
		}
		last = k
		fn(state)
	})
}

// StepKey projects a state onto its step.
func StepKey(s State) Step { return s.Step }

// ModelKey projects a state onto its model.
func ModelKey(s State) Model { return s.Model }
