package onboard

import (
	"errors"
	"log/slog"

	"github.com/BrandonKowalski/onboard/pkg/onboard/constants"
	"github.com/BrandonKowalski/onboard/pkg/onboard/flow"
	"github.com/BrandonKowalski/onboard/pkg/onboard/internal"
	"github.com/BrandonKowalski/onboard/pkg/onboard/store"
)

// Persistence loads, saves and clears the single onboarding record.
// Persistence is best effort: implementations never report failures.
type Persistence interface {
	// Load returns the stored model, or false if there is no usable record.
	Load() (flow.Model, bool)
	Save(model flow.Model)
	Clear()
}

// record is the persisted form of a flow.Model.
type record struct {
	SkillLevel string `toml:"skill_level" plist:"skillLevel"`
	Completed  bool   `toml:"completed" plist:"hasCompletedOnboarding"`
}

// ModelStore is the Persistence backed by a store.Defaults. Decode failures
// load as "no record" and encode or write failures are logged and dropped.
type ModelStore struct {
	defaults store.Defaults
	codec    store.Codec
	key      string
	logger   *slog.Logger
}

// NewModelStore creates a ModelStore under constants.StorageKey. A nil codec
// selects TOML.
func NewModelStore(defaults store.Defaults, codec store.Codec) *ModelStore {
	if codec == nil {
		codec = store.TOMLCodec{}
	}
	return &ModelStore{
		defaults: defaults,
		codec:    codec,
		key:      constants.StorageKey,
		logger:   internal.GetInternalLogger(),
	}
}

// NewFileModelStore creates a ModelStore keeping its record in dir, encoded
// with codec.
func NewFileModelStore(dir string, codec store.Codec) *ModelStore {
	if codec == nil {
		codec = store.TOMLCodec{}
	}
	return NewModelStore(store.NewFileDefaults(dir, codec.Name()), codec)
}

func (s *ModelStore) Load() (flow.Model, bool) {
	data, err := s.defaults.Get(s.key)
	if err != nil {
		if !errors.Is(err, store.ErrNotFound) {
			s.logger.Warn("Failed to read onboarding record", "key", s.key, "error", err)
		}
		return flow.Model{}, false
	}

	var rec record
	if err := s.codec.Unmarshal(data, &rec); err != nil {
		s.logger.Warn("Failed to decode onboarding record", "key", s.key, "codec", s.codec.Name(), "error", err)
		return flow.Model{}, false
	}

	level, err := flow.ParseSkillLevel(rec.SkillLevel)
	if err != nil {
		s.logger.Warn("Failed to decode onboarding record", "key", s.key, "codec", s.codec.Name(), "error", err)
		return flow.Model{}, false
	}

	return flow.Model{SkillLevel: level, Completed: rec.Completed}, true
}

func (s *ModelStore) Save(model flow.Model) {
	data, err := s.codec.Marshal(record{SkillLevel: model.SkillLevel.String(), Completed: model.Completed})
	if err != nil {
		s.logger.Warn("Failed to encode onboarding record", "key", s.key, "codec", s.codec.Name(), "error", err)
		return
	}

	if err := s.defaults.Set(s.key, data); err != nil {
		s.logger.Warn("Failed to save onboarding record", "key", s.key, "error", err)
		return
	}

	s.logger.Debug("Saved onboarding record", "key", s.key, "skill_level", model.SkillLevel.String(), "completed", model.Completed)
}

func (s *ModelStore) Clear() {
	if err := s.defaults.Remove(s.key); err != nil {
		s.logger.Warn("Failed to clear onboarding record", "key", s.key, "error", err)
	}
}

// IsRequired reports whether onboarding should be shown: there is no usable
// record, or the record is not marked completed.
func IsRequired(p Persistence) bool {
	model, ok := p.Load()
	return !ok || !model.Completed
}
