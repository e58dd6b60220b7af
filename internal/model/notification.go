package model

import "time"

// NotificationType classifies a notification for display purposes.
type NotificationType string

const (
	TypeInfo    NotificationType = "info"
	TypeSuccess NotificationType = "success"
	TypeWarning NotificationType = "warning"
	TypeError   NotificationType = "error"
)

// NotificationPriority ranks how important a notification is. High and
// urgent notifications may break through an active Do Not Disturb state.
type NotificationPriority string

const (
	PriorityLow    NotificationPriority = "low"
	PriorityNormal NotificationPriority = "normal"
	PriorityHigh   NotificationPriority = "high"
	PriorityUrgent NotificationPriority = "urgent"
)

// Breakthrough reports whether the priority qualifies for the
// allow-priority DND exception.
func (p NotificationPriority) Breakthrough() bool {
	return p == PriorityHigh || p == PriorityUrgent
}

// NotificationBehavior is the delivery style requested by the producer.
type NotificationBehavior string

const (
	BehaviorToast      NotificationBehavior = "toast"
	BehaviorSilent     NotificationBehavior = "silent"
	BehaviorAlert      NotificationBehavior = "alert"
	BehaviorPersistent NotificationBehavior = "persistent"
)

// NotificationAction is a user-invocable response attached to a notification.
type NotificationAction struct {
	Label   string `json:"label"`
	Action  string `json:"action"`
	Primary bool   `json:"primary,omitempty"`
}

// SystemNotification is a single notification instance.
//
// JSON field names match the blob layout the web client persists, so state
// written by either side stays readable by the other.
type SystemNotification struct {
	ID         string               `json:"id"`
	Title      string               `json:"title"`
	Message    string               `json:"message"`
	Time       time.Time            `json:"time"`
	Read       bool                 `json:"read"`
	Dismissed  bool                 `json:"dismissed"`
	Type       NotificationType     `json:"type"`
	App        string               `json:"app,omitempty"`
	Priority   NotificationPriority `json:"priority"`
	Behavior   NotificationBehavior `json:"behavior"`
	Actions    []NotificationAction `json:"actions,omitempty"`
	Persistent bool                 `json:"persistent,omitempty"`
	GroupID    string               `json:"groupId,omitempty"`
	Sound      bool                 `json:"sound"`
}

// AppLabel returns the producer identifier used for grouping, defaulting
// untagged notifications to "System".
func (n SystemNotification) AppLabel() string {
	if n.App == "" {
		return "System"
	}
	return n.App
}

// TimeRange restricts a notification view to a recency window.
type TimeRange string

const (
	RangeToday TimeRange = "today"
	RangeWeek  TimeRange = "week"
	RangeAll   TimeRange = "all"
)

// Filters are the optional predicates applied to notification views.
// All set fields combine with logical AND.
type Filters struct {
	Type       NotificationType `json:"type,omitempty"`
	App        string           `json:"app,omitempty"`
	TimeRange  TimeRange        `json:"timeRange,omitempty"`
	UnreadOnly bool             `json:"unreadOnly,omitempty"`
}
