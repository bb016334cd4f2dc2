package flow

import "fmt"

// SkillLevel is the user's self-reported experience. The zero value means
// no level has been chosen.
type SkillLevel int

const (
	SkillLevelUnset SkillLevel = iota
	SkillLevelBeginner
	SkillLevelIntermediate
	SkillLevelProfessional
)

// SkillLevels returns the selectable levels in display order.
func SkillLevels() []SkillLevel {
	return []SkillLevel{SkillLevelBeginner, SkillLevelIntermediate, SkillLevelProfessional}
}

func (l SkillLevel) String() string {
	switch l {
	case SkillLevelUnset:
		return ""
	case SkillLevelBeginner:
		return "beginner"
	case SkillLevelIntermediate:
		return "intermediate"
	case SkillLevelProfessional:
		return "professional"
	default:
		return fmt.Sprintf("SkillLevel(%d)", int(l))
	}
}

// IsSet reports whether a level has been chosen.
func (l SkillLevel) IsSet() bool {
	return l != SkillLevelUnset
}

func (l SkillLevel) MarshalText() ([]byte, error) {
	if l < SkillLevelUnset || l > SkillLevelProfessional {
		return nil, fmt.Errorf("flow: invalid skill level %d", int(l))
	}
	return []byte(l.String()), nil
}

func (l *SkillLevel) UnmarshalText(text []byte) error {
	parsed, err := ParseSkillLevel(string(text))
	if err != nil {
		return err
	}
	*l = parsed
	return nil
}

// ParseSkillLevel returns the level with the given name. The empty string is
// SkillLevelUnset.
func ParseSkillLevel(name string) (SkillLevel, error) {
	for _, l := range append([]SkillLevel{SkillLevelUnset}, SkillLevels()...) {
		if l.String() == name {
			return l, nil
		}
	}
	return SkillLevelUnset, fmt.Errorf("flow: unknown skill level %q", name)
}

// Model is the data gathered during onboarding. It is comparable with ==.
type Model struct {
	SkillLevel SkillLevel
	Completed  bool
}

// WithSkillLevel returns a copy of m with the given level.
func (m Model) WithSkillLevel(level SkillLevel) Model {
	m.SkillLevel = level
	return m
}

// ToggleSkillLevel selects level, or clears the selection if level is
// already selected.
func (m Model) ToggleSkillLevel(level SkillLevel) Model {
	if m.SkillLevel == level {
		level = SkillLevelUnset
	}
	return m.WithSkillLevel(level)
}
