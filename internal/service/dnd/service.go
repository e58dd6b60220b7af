// Package dnd owns the Do Not Disturb state: the settings singleton, the
// derived effective flag and the breakthrough policy consulted on every
// notification delivery.
package dnd

import (
	"context"
	"sync"
	"time"

	"github.com/wb-go/wbf/retry"
	"github.com/wb-go/wbf/zlog"

	"github.com/urbanshade/notify-center/internal/dnd"
	"github.com/urbanshade/notify-center/internal/model"
)

// UntilManuallyDisabled is the remaining-time sentinel for manual DND,
// which has no scheduled end.
const UntilManuallyDisabled = "Until manually disabled"

//go:generate mockgen -source=service.go -destination=../../mocks/service/dnd/mock.go -package=mocks

type settingsRepository interface {
	Load(ctx context.Context, strategy retry.Strategy) (model.DndSettings, error)
	Save(ctx context.Context, strategy retry.Strategy, settings model.DndSettings, effective bool) error
	SaveMirror(ctx context.Context, strategy retry.Strategy, effective bool) error
}

// State is an observable snapshot of the derived DND status. Manual and
// scheduled are exposed separately so a UI can offer an override only when
// the schedule, not the user, switched DND on.
type State struct {
	Effective bool   `json:"effective"`
	Manual    bool   `json:"manual"`
	Scheduled bool   `json:"scheduled"`
	Remaining string `json:"remaining,omitempty"`
}

// Service is the process-wide owner of the DND settings. Every mutation is
// persisted before it returns; concurrent instances pick mutations up
// through the storage change feed via Reload.
type Service struct {
	repo settingsRepository
	now  func() time.Time

	mu            sync.RWMutex
	settings      model.DndSettings
	lastEffective bool
	listeners     []func(State)
}

// NewService creates the service. A nil now falls back to time.Now.
func NewService(repo settingsRepository, now func() time.Time) *Service {
	if now == nil {
		now = time.Now
	}

	return &Service{
		repo:     repo,
		now:      now,
		settings: model.DefaultDndSettings(),
	}
}

// Load pulls the persisted settings into memory. Called once at startup.
func (s *Service) Load(ctx context.Context, strategy retry.Strategy) error {
	settings, err := s.repo.Load(ctx, strategy)
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.settings = settings
	s.lastEffective = s.effectiveLocked()
	s.mu.Unlock()

	return nil
}

// Settings returns a copy of the current settings.
func (s *Service) Settings() model.DndSettings {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.copyLocked()
}

// State returns the current derived DND snapshot.
func (s *Service) State() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.stateLocked()
}

// Effective reports whether DND is active right now, via manual override or
// schedule.
func (s *Service) Effective() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.effectiveLocked()
}

// IsManual reports whether the user switched DND on by hand.
func (s *Service) IsManual() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.settings.Enabled
}

// IsScheduled reports whether the recurring window is active right now.
func (s *Service) IsScheduled() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return dnd.InScheduledWindow(s.settings.Schedule, s.now())
}

// ScheduleEnabled reports whether a recurring schedule is configured,
// regardless of whether its window is currently active.
func (s *Service) ScheduleEnabled() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.settings.Schedule.Enabled
}

// Toggle flips the manual override.
func (s *Service) Toggle(ctx context.Context, strategy retry.Strategy) (State, error) {
	return s.mutate(ctx, strategy, func(settings *model.DndSettings) {
		settings.Enabled = !settings.Enabled
	})
}

// Set forces the manual override to the given value.
func (s *Service) Set(ctx context.Context, strategy retry.Strategy, enabled bool) (State, error) {
	return s.mutate(ctx, strategy, func(settings *model.DndSettings) {
		settings.Enabled = enabled
	})
}

// UpdateSchedule merges a partial schedule update into the settings.
func (s *Service) UpdateSchedule(ctx context.Context, strategy retry.Strategy, patch model.DndSchedulePatch) (State, error) {
	return s.mutate(ctx, strategy, func(settings *model.DndSettings) {
		patch.Apply(&settings.Schedule)
	})
}

// UpdateSettings merges a partial settings update.
func (s *Service) UpdateSettings(ctx context.Context, strategy retry.Strategy, patch model.DndSettingsPatch) (State, error) {
	return s.mutate(ctx, strategy, func(settings *model.DndSettings) {
		patch.Apply(settings)
	})
}

// ShouldBreakthrough decides whether a notification with the given
// classification may interrupt the user right now.
func (s *Service) ShouldBreakthrough(isPriority, isAlarm bool) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return Breakthrough(s.effectiveLocked(), isPriority, isAlarm, s.settings)
}

// Breakthrough is the delivery policy: with DND off everything shows; with
// DND on, only priority notifications or alarms covered by the configured
// exceptions get through.
func Breakthrough(dndActive, isPriority, isAlarm bool, settings model.DndSettings) bool {
	if !dndActive {
		return true
	}
	if isPriority && settings.AllowPriority {
		return true
	}
	if isAlarm && settings.AllowAlarms {
		return true
	}
	return false
}

// TimeUntilEnd renders how long the current DND period has left. The
// second return is false when DND is off. Manual DND yields the
// UntilManuallyDisabled sentinel since only the user can end it.
func (s *Service) TimeUntilEnd() (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.settings.Enabled {
		return UntilManuallyDisabled, true
	}

	now := s.now()
	if dnd.InScheduledWindow(s.settings.Schedule, now) {
		return dnd.FormatRemaining(dnd.MinutesUntilEnd(s.settings.Schedule, now)), true
	}

	return "", false
}

// Refresh re-derives the effective flag against the current clock and, when
// a window boundary flipped it, updates the persisted mirror and notifies
// listeners. The schedule poller calls this once a minute.
func (s *Service) Refresh(ctx context.Context, strategy retry.Strategy) (State, bool, error) {
	s.mu.Lock()
	state := s.stateLocked()
	changed := state.Effective != s.lastEffective
	s.lastEffective = state.Effective

	if !changed {
		s.mu.Unlock()
		return state, false, nil
	}

	err := s.repo.SaveMirror(ctx, strategy, state.Effective)
	s.mu.Unlock()

	if err != nil {
		return state, true, err
	}

	s.notify(state)
	return state, true, nil
}

// Reload replaces the in-memory settings with the persisted ones. Called
// when the storage change feed reports a write from another instance.
func (s *Service) Reload(ctx context.Context, strategy retry.Strategy) error {
	settings, err := s.repo.Load(ctx, strategy)
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.settings = settings
	state := s.stateLocked()
	s.lastEffective = state.Effective
	s.mu.Unlock()

	s.notify(state)
	return nil
}

// OnChange registers a listener invoked after every observable state
// change. Listeners must not block.
func (s *Service) OnChange(fn func(State)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listeners = append(s.listeners, fn)
}

// mutate applies a settings change and persists it while still holding the
// lock, so a slow save cannot be overtaken by a later mutation.
func (s *Service) mutate(ctx context.Context, strategy retry.Strategy, apply func(*model.DndSettings)) (State, error) {
	s.mu.Lock()
	apply(&s.settings)
	state := s.stateLocked()
	s.lastEffective = state.Effective
	err := s.repo.Save(ctx, strategy, s.copyLocked(), state.Effective)
	s.mu.Unlock()

	if err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to persist dnd settings")
		return state, err
	}

	s.notify(state)
	return state, nil
}

func (s *Service) stateLocked() State {
	now := s.now()
	scheduled := dnd.InScheduledWindow(s.settings.Schedule, now)
	state := State{
		Effective: s.settings.Enabled || scheduled,
		Manual:    s.settings.Enabled,
		Scheduled: scheduled,
	}

	switch {
	case state.Manual:
		state.Remaining = UntilManuallyDisabled
	case scheduled:
		state.Remaining = dnd.FormatRemaining(dnd.MinutesUntilEnd(s.settings.Schedule, now))
	}

	return state
}

func (s *Service) effectiveLocked() bool {
	return s.settings.Enabled || dnd.InScheduledWindow(s.settings.Schedule, s.now())
}

func (s *Service) copyLocked() model.DndSettings {
	settings := s.settings
	settings.Schedule.Days = append([]int(nil), s.settings.Schedule.Days...)
	return settings
}

func (s *Service) notify(state State) {
	s.mu.RLock()
	listeners := append([]func(State){}, s.listeners...)
	s.mu.RUnlock()

	for _, fn := range listeners {
		fn(state)
	}
}
