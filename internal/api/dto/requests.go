// Package dto holds the request bodies accepted by the API.
package dto

// ActionInput is a user-invocable response attached at creation time.
type ActionInput struct {
	Label   string `json:"label" validate:"required"`
	Action  string `json:"action" validate:"required"`
	Primary bool   `json:"primary"`
}

// CreateNotificationRequest is the body for creating a notification.
type CreateNotificationRequest struct {
	Title      string        `json:"title" validate:"required"`
	Message    string        `json:"message" validate:"required"`
	Type       string        `json:"type" validate:"omitempty,oneof=info success warning error"`
	App        string        `json:"app"`
	Priority   string        `json:"priority" validate:"omitempty,oneof=low normal high urgent"`
	Behavior   string        `json:"behavior" validate:"omitempty,oneof=toast silent alert persistent"`
	Actions    []ActionInput `json:"actions" validate:"omitempty,dive"`
	Persistent bool          `json:"persistent"`
	GroupID    string        `json:"groupId"`
	Sound      *bool         `json:"sound"`
}

// SetDndRequest forces the manual DND override on or off.
type SetDndRequest struct {
	Enabled *bool `json:"enabled" validate:"required"`
}

// UpdateScheduleRequest is a partial schedule update. Hour, minute and day
// ranges are constrained here so garbage never reaches the evaluator.
type UpdateScheduleRequest struct {
	Enabled     *bool  `json:"enabled"`
	StartHour   *int   `json:"startHour" validate:"omitempty,min=0,max=23"`
	StartMinute *int   `json:"startMinute" validate:"omitempty,min=0,max=59"`
	EndHour     *int   `json:"endHour" validate:"omitempty,min=0,max=23"`
	EndMinute   *int   `json:"endMinute" validate:"omitempty,min=0,max=59"`
	Days        *[]int `json:"days" validate:"omitempty,dive,min=0,max=6"`
}

// UpdateDndSettingsRequest is a partial update of the breakthrough
// exceptions and the manual override.
type UpdateDndSettingsRequest struct {
	Enabled            *bool `json:"enabled"`
	AllowPriority      *bool `json:"allowPriority"`
	AllowAlarms        *bool `json:"allowAlarms"`
	AllowRepeatCallers *bool `json:"allowRepeatCallers"`
}

// ExecuteActionRequest names the action to dispatch for a notification.
type ExecuteActionRequest struct {
	Action string `json:"action" validate:"required"`
}
