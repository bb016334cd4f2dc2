package flow_test

import (
	"testing"

	"github.com/BrandonKowalski/onboard/pkg/onboard/flow"
)

func TestAdvance_FollowsCatalog(t *testing.T) {
	for _, s := range flow.Steps() {
		t.Run(s.String(), func(t *testing.T) {
			next, ok := flow.Advance(flow.State{Step: s}, nil)
			want, hasNext := s.Next()
			if ok != hasNext {
				t.Fatalf("Advance() ok = %t, want %t", ok, hasNext)
			}
			if ok && next.Step != want {
				t.Errorf("Advance().Step = %v, want %v", next.Step, want)
			}
		})
	}
}

func TestAdvance_TerminalReturnsFalse(t *testing.T) {
	current := flow.State{Step: flow.StepCompletion, Model: flow.Model{Completed: true}}
	if _, ok := flow.Advance(current, nil); ok {
		t.Error("Advance() from completion should return false")
	}
}

func TestAdvance_CompletedOnlyOnTerminal(t *testing.T) {
	state := flow.Initial(flow.Model{})
	for {
		next, ok := flow.Advance(state, nil)
		if !ok {
			break
		}
		if next.Step.IsTerminal() != next.Model.Completed {
			t.Errorf("Advance() to %v set Completed = %t", next.Step, next.Model.Completed)
		}
		state = next
	}
	if state.Step != flow.StepCompletion {
		t.Errorf("final step = %v, want completion", state.Step)
	}
}

func TestAdvance_ForcesCompletedRegardlessOfOverride(t *testing.T) {
	current := flow.State{Step: flow.StepSkillLevel}
	override := flow.Model{SkillLevel: flow.SkillLevelProfessional, Completed: false}

	next, ok := flow.Advance(current, &override)
	if !ok {
		t.Fatal("Advance() returned false")
	}
	want := flow.Model{SkillLevel: flow.SkillLevelProfessional, Completed: true}
	if next.Model != want {
		t.Errorf("Advance().Model = %+v, want %+v", next.Model, want)
	}
	if override.Completed {
		t.Error("Advance() mutated the override")
	}
}

func TestAdvance_DoesNotMutateInput(t *testing.T) {
	current := flow.State{Step: flow.StepSkillLevel, Model: flow.Model{SkillLevel: flow.SkillLevelBeginner}}
	before := current

	if _, ok := flow.Advance(current, nil); !ok {
		t.Fatal("Advance() returned false")
	}
	if current != before {
		t.Errorf("input changed to %v, want %v", current, before)
	}
}

func TestAdvance_UsesOverrideModel(t *testing.T) {
	current := flow.State{Step: flow.StepWelcome, Model: flow.Model{SkillLevel: flow.SkillLevelBeginner}}
	override := flow.Model{SkillLevel: flow.SkillLevelIntermediate}

	next, _ := flow.Advance(current, &override)
	if next.Model != override {
		t.Errorf("Advance().Model = %+v, want %+v", next.Model, override)
	}
}

func TestModel_ToggleSkillLevel(t *testing.T) {
	m := flow.Model{}

	m = m.ToggleSkillLevel(flow.SkillLevelBeginner)
	if m.SkillLevel != flow.SkillLevelBeginner {
		t.Fatalf("after first toggle SkillLevel = %v, want beginner", m.SkillLevel)
	}

	m = m.ToggleSkillLevel(flow.SkillLevelProfessional)
	if m.SkillLevel != flow.SkillLevelProfessional {
		t.Fatalf("after switching SkillLevel = %v, want professional", m.SkillLevel)
	}

	m = m.ToggleSkillLevel(flow.SkillLevelProfessional)
	if m.SkillLevel.IsSet() {
		t.Errorf("toggling the selected level should clear it, got %v", m.SkillLevel)
	}
}

func TestSkillLevel_Text(t *testing.T) {
	for _, l := range append(flow.SkillLevels(), flow.SkillLevelUnset) {
		text, err := l.MarshalText()
		if err != nil {
			t.Fatalf("MarshalText(%v) error = %v", l, err)
		}

		var got flow.SkillLevel
		if err := got.UnmarshalText(text); err != nil {
			t.Fatalf("UnmarshalText(%q) error = %v", text, err)
		}
		if got != l {
			t.Errorf("round trip of %v = %v", l, got)
		}
	}

	var l flow.SkillLevel
	if err := l.UnmarshalText([]byte("wizard")); err == nil {
		t.Error("UnmarshalText(wizard) should fail")
	}
	if _, err := flow.SkillLevel(42).MarshalText(); err == nil {
		t.Error("MarshalText(42) should fail")
	}
}

func TestState_CanContinue(t *testing.T) {
	tests := []struct {
		state flow.State
		want  bool
	}{
		{flow.State{Step: flow.StepWelcome}, true},
		{flow.State{Step: flow.StepOverview}, true},
		{flow.State{Step: flow.StepSkillLevel}, false},
		{flow.State{Step: flow.StepSkillLevel, Model: flow.Model{SkillLevel: flow.SkillLevelBeginner}}, true},
		{flow.State{Step: flow.StepCompletion, Model: flow.Model{Completed: true}}, false},
	}

	for _, tt := range tests {
		if got := tt.state.CanContinue(); got != tt.want {
			t.Errorf("%v.CanContinue() = %t, want %t", tt.state, got, tt.want)
		}
	}
}

func TestAt_CompletedOnTerminal(t *testing.T) {
	for _, step := range flow.Steps() {
		got := flow.At(step, flow.Model{SkillLevel: flow.SkillLevelProfessional})
		if got.Step != step || got.Model.SkillLevel != flow.SkillLevelProfessional {
			t.Errorf("At(%v) = %v", step, got)
		}
		if got.Model.Completed != step.IsTerminal() {
			t.Errorf("At(%v) completed = %t, want %t", step, got.Model.Completed, step.IsTerminal())
		}
	}
}
