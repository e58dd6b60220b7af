// Package notification owns the notification store: creation with delivery
// decisions, read/dismiss lifecycle, bulk clears and the derived views the
// notification center renders.
package notification

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/retry"
	"github.com/wb-go/wbf/zlog"

	"github.com/urbanshade/notify-center/internal/eventbus"
	"github.com/urbanshade/notify-center/internal/model"
	"github.com/urbanshade/notify-center/internal/repository/notification"
)

//go:generate mockgen -source=service.go -destination=../../mocks/service/notification/mock.go -package=mocks

// MaxNotifications caps the stored list; the oldest entries are evicted
// first when an insert overflows it.
const MaxNotifications = 100

type notificationRepository interface {
	Load(ctx context.Context, strategy retry.Strategy) ([]model.SystemNotification, error)
	Save(ctx context.Context, strategy retry.Strategy, notifications []model.SystemNotification) error
}

// deliveryPolicy is the DND decision surface consulted on every insert.
type deliveryPolicy interface {
	Effective() bool
	ShouldBreakthrough(isPriority, isAlarm bool) bool
}

type actionPublisher interface {
	Publish(event eventbus.ActionEvent, strategy retry.Strategy) error
}

// Input is the producer-supplied part of a notification. Sound is a
// tri-state: nil defaults to true only for alert-behavior notifications.
type Input struct {
	Title      string
	Message    string
	Type       model.NotificationType
	App        string
	Priority   model.NotificationPriority
	Behavior   model.NotificationBehavior
	Actions    []model.NotificationAction
	Persistent bool
	GroupID    string
	Sound      *bool
}

// Delivery is the result of an insert: the stored notification plus the
// decision whether it may surface and make noise right now. A suppressed
// notification is still stored for later review.
type Delivery struct {
	Notification    model.SystemNotification `json:"notification"`
	ShouldShow      bool                     `json:"shouldShow"`
	ShouldPlaySound bool                     `json:"shouldPlaySound"`
}

// Service is the process-wide owner of the notification list. Every
// mutation is persisted before it returns.
type Service struct {
	repo   notificationRepository
	policy deliveryPolicy
	bus    actionPublisher
	now    func() time.Time

	mu   sync.RWMutex
	list []model.SystemNotification
}

// NewService creates the service. A nil now falls back to time.Now; a nil
// bus disables action dispatch.
func NewService(repo notificationRepository, policy deliveryPolicy, bus actionPublisher, now func() time.Time) *Service {
	if now == nil {
		now = time.Now
	}

	return &Service{
		repo:   repo,
		policy: policy,
		bus:    bus,
		now:    now,
	}
}

// Load pulls the persisted list into memory. Called once at startup.
func (s *Service) Load(ctx context.Context, strategy retry.Strategy) error {
	list, err := s.repo.Load(ctx, strategy)
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.list = list
	s.mu.Unlock()

	return nil
}

// Reload replaces the in-memory list with the persisted one. Called when
// the storage change feed reports a write from another instance.
func (s *Service) Reload(ctx context.Context, strategy retry.Strategy) error {
	return s.Load(ctx, strategy)
}

// Add stores a new notification and returns the delivery decision. The
// notification is persisted whether or not it may surface; suppression only
// affects the immediate toast and sound.
//
// Sound stays off whenever DND is active, even for notifications that broke
// through on priority grounds: breakthrough under DND is visual only.
func (s *Service) Add(ctx context.Context, strategy retry.Strategy, in Input) (Delivery, error) {
	n := model.SystemNotification{
		ID:         uuid.NewString(),
		Title:      in.Title,
		Message:    in.Message,
		Time:       s.now(),
		Type:       in.Type,
		App:        in.App,
		Priority:   in.Priority,
		Behavior:   in.Behavior,
		Actions:    in.Actions,
		Persistent: in.Persistent,
		GroupID:    in.GroupID,
	}

	if n.Type == "" {
		n.Type = model.TypeInfo
	}
	if n.Priority == "" {
		n.Priority = model.PriorityNormal
	}
	if n.Behavior == "" {
		n.Behavior = model.BehaviorToast
	}
	if in.Sound != nil {
		n.Sound = *in.Sound
	} else {
		n.Sound = n.Behavior == model.BehaviorAlert
	}

	isAlarm := n.Behavior == model.BehaviorAlert
	shouldShow := s.policy.ShouldBreakthrough(n.Priority.Breakthrough(), isAlarm)
	shouldPlaySound := shouldShow && n.Sound && !s.policy.Effective()

	// The lock is held across the save so concurrent mutations cannot
	// persist snapshots out of order.
	s.mu.Lock()
	s.list = append([]model.SystemNotification{n}, s.list...)
	if len(s.list) > MaxNotifications {
		s.list = s.list[:MaxNotifications]
	}
	err := s.repo.Save(ctx, strategy, s.copyLocked())
	s.mu.Unlock()

	if err != nil {
		return Delivery{}, err
	}

	return Delivery{
		Notification:    n,
		ShouldShow:      shouldShow,
		ShouldPlaySound: shouldPlaySound,
	}, nil
}

// MarkAsRead marks one notification read. Unknown ids are a no-op.
func (s *Service) MarkAsRead(ctx context.Context, strategy retry.Strategy, id string) error {
	return s.update(ctx, strategy, func(list []model.SystemNotification) ([]model.SystemNotification, bool) {
		for i := range list {
			if list[i].ID == id && !list[i].Read {
				list[i].Read = true
				return list, true
			}
		}
		return list, false
	})
}

// MarkAllAsRead marks every notification read.
func (s *Service) MarkAllAsRead(ctx context.Context, strategy retry.Strategy) error {
	return s.update(ctx, strategy, func(list []model.SystemNotification) ([]model.SystemNotification, bool) {
		changed := false
		for i := range list {
			if !list[i].Read {
				list[i].Read = true
				changed = true
			}
		}
		return list, changed
	})
}

// Dismiss hides a notification from all active views while keeping it in
// storage. Dismissal also marks it read. There is no undismiss; the entry
// stays hidden until deleted.
func (s *Service) Dismiss(ctx context.Context, strategy retry.Strategy, id string) error {
	return s.update(ctx, strategy, func(list []model.SystemNotification) ([]model.SystemNotification, bool) {
		for i := range list {
			if list[i].ID == id {
				list[i].Dismissed = true
				list[i].Read = true
				return list, true
			}
		}
		return list, false
	})
}

// Delete removes a notification permanently. Unknown ids are a no-op.
func (s *Service) Delete(ctx context.Context, strategy retry.Strategy, id string) error {
	return s.update(ctx, strategy, func(list []model.SystemNotification) ([]model.SystemNotification, bool) {
		kept := list[:0]
		for _, n := range list {
			if n.ID != id {
				kept = append(kept, n)
			}
		}
		return kept, len(kept) != len(list)
	})
}

// ClearAll removes every non-persistent notification. Persistent ones
// survive, marked dismissed and read.
func (s *Service) ClearAll(ctx context.Context, strategy retry.Strategy) error {
	return s.update(ctx, strategy, func(list []model.SystemNotification) ([]model.SystemNotification, bool) {
		kept := make([]model.SystemNotification, 0, len(list))
		for _, n := range list {
			if n.Persistent {
				n.Dismissed = true
				n.Read = true
				kept = append(kept, n)
			}
		}
		return kept, len(list) > 0
	})
}

// ClearByApp removes every notification from the given producer. Untagged
// notifications belong to "System".
func (s *Service) ClearByApp(ctx context.Context, strategy retry.Strategy, app string) error {
	return s.update(ctx, strategy, func(list []model.SystemNotification) ([]model.SystemNotification, bool) {
		kept := list[:0]
		for _, n := range list {
			if n.AppLabel() != app {
				kept = append(kept, n)
			}
		}
		return kept, len(kept) != len(list)
	})
}

// ClearByType removes every notification of the given type.
func (s *Service) ClearByType(ctx context.Context, strategy retry.Strategy, typ model.NotificationType) error {
	return s.update(ctx, strategy, func(list []model.SystemNotification) ([]model.SystemNotification, bool) {
		kept := list[:0]
		for _, n := range list {
			if n.Type != typ {
				kept = append(kept, n)
			}
		}
		return kept, len(kept) != len(list)
	})
}

// ExecuteAction dispatches a named action event for a notification to the
// system event bus and marks the notification read.
func (s *Service) ExecuteAction(ctx context.Context, strategy retry.Strategy, id, action string) error {
	s.mu.RLock()
	var target *model.SystemNotification
	for i := range s.list {
		if s.list[i].ID == id {
			n := s.list[i]
			target = &n
			break
		}
	}
	s.mu.RUnlock()

	if target == nil {
		return notification.ErrNotificationNotFound
	}

	if err := s.MarkAsRead(ctx, strategy, id); err != nil {
		return err
	}

	if s.bus == nil {
		return nil
	}

	event := eventbus.ActionEvent{
		NotificationID: id,
		Action:         action,
		Notification:   *target,
	}

	if err := s.bus.Publish(event, strategy); err != nil {
		zlog.Logger.Error().Err(err).Str("id", id).Str("action", action).Msg("failed to publish action event")
	}

	return nil
}

// update applies fn to the list and persists the result while still holding
// the lock, so a slow save cannot be overtaken by a later mutation.
func (s *Service) update(ctx context.Context, strategy retry.Strategy, fn func([]model.SystemNotification) ([]model.SystemNotification, bool)) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	updated, changed := fn(s.list)
	if !changed {
		return nil
	}

	s.list = updated
	return s.repo.Save(ctx, strategy, s.copyLocked())
}

func (s *Service) copyLocked() []model.SystemNotification {
	return append([]model.SystemNotification(nil), s.list...)
}
