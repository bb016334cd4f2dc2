package flow

import "fmt"

// State is an immutable snapshot of the flow: the active step and the model
// gathered so far. A new State is produced for every change.
type State struct {
	Step  Step
	Model Model
}

// Initial returns the state a fresh flow starts in.
func Initial(model Model) State {
	return State{Step: StepWelcome, Model: model}
}

// At returns the state for opening the flow directly on step. Completed is
// set on the terminal step, the same as entering it through Advance.
func At(step Step, model Model) State {
	model.Completed = model.Completed || step.IsTerminal()
	return State{Step: step, Model: model}
}

// Advance computes the state after current. The model is override when
// non-nil, otherwise current's model. Completed is forced true when the next
// step is terminal and kept as-is otherwise. Returns false when current is
// already on the terminal step.
func Advance(current State, override *Model) (State, bool) {
	next, ok := current.Step.Next()
	if !ok {
		return current, false
	}

	model := current.Model
	if override != nil {
		model = *override
	}
	if next.IsTerminal() {
		model.Completed = true
	}

	return State{Step: next, Model: model}, true
}

// CanContinue reports whether the user may move on from s. The skill level
// step needs a level to be chosen first.
func (s State) CanContinue() bool {
	if s.Step.IsTerminal() {
		return false
	}
	if s.Step == StepSkillLevel && !s.Model.SkillLevel.IsSet() {
		return false
	}
	return true
}

func (s State) String() string {
	return fmt.Sprintf("(%s, skill_level=%q, completed=%t)", s.Step, s.Model.SkillLevel, s.Model.Completed)
}
