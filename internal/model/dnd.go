package model

// DndSchedule is a recurring weekly Do Not Disturb window. Start and end are
// wall-clock times of day; when the start lies after the end the window
// spans midnight (e.g. 22:00 to 08:00).
type DndSchedule struct {
	Enabled     bool  `json:"enabled"`
	StartHour   int   `json:"startHour"`
	StartMinute int   `json:"startMinute"`
	EndHour     int   `json:"endHour"`
	EndMinute   int   `json:"endMinute"`
	Days        []int `json:"days"` // 0-6, Sunday = 0
}

// DndSettings holds the full Do Not Disturb configuration: the manual
// override, the recurring schedule and the breakthrough exceptions.
type DndSettings struct {
	Enabled            bool        `json:"enabled"`
	Schedule           DndSchedule `json:"schedule"`
	AllowPriority      bool        `json:"allowPriority"`
	AllowAlarms        bool        `json:"allowAlarms"`
	AllowRepeatCallers bool        `json:"allowRepeatCallers"`
}

// DefaultDndSettings returns the settings used on first run and as the
// fallback when persisted state cannot be parsed.
func DefaultDndSettings() DndSettings {
	return DndSettings{
		Enabled: false,
		Schedule: DndSchedule{
			Enabled:     false,
			StartHour:   22,
			StartMinute: 0,
			EndHour:     8,
			EndMinute:   0,
			Days:        []int{0, 1, 2, 3, 4, 5, 6},
		},
		AllowPriority:      true,
		AllowAlarms:        true,
		AllowRepeatCallers: false,
	}
}

// DndSchedulePatch is a partial schedule update. Nil fields keep their
// current values; set fields are merged shallowly.
type DndSchedulePatch struct {
	Enabled     *bool  `json:"enabled,omitempty"`
	StartHour   *int   `json:"startHour,omitempty"`
	StartMinute *int   `json:"startMinute,omitempty"`
	EndHour     *int   `json:"endHour,omitempty"`
	EndMinute   *int   `json:"endMinute,omitempty"`
	Days        *[]int `json:"days,omitempty"`
}

// Apply merges the patch into the schedule.
func (p DndSchedulePatch) Apply(s *DndSchedule) {
	if p.Enabled != nil {
		s.Enabled = *p.Enabled
	}
	if p.StartHour != nil {
		s.StartHour = *p.StartHour
	}
	if p.StartMinute != nil {
		s.StartMinute = *p.StartMinute
	}
	if p.EndHour != nil {
		s.EndHour = *p.EndHour
	}
	if p.EndMinute != nil {
		s.EndMinute = *p.EndMinute
	}
	if p.Days != nil {
		s.Days = append([]int(nil), (*p.Days)...)
	}
}

// DndSettingsPatch is a partial settings update, merged shallowly over the
// current settings. The schedule is not touched; use DndSchedulePatch.
type DndSettingsPatch struct {
	Enabled            *bool `json:"enabled,omitempty"`
	AllowPriority      *bool `json:"allowPriority,omitempty"`
	AllowAlarms        *bool `json:"allowAlarms,omitempty"`
	AllowRepeatCallers *bool `json:"allowRepeatCallers,omitempty"`
}

// Apply merges the patch into the settings.
func (p DndSettingsPatch) Apply(s *DndSettings) {
	if p.Enabled != nil {
		s.Enabled = *p.Enabled
	}
	if p.AllowPriority != nil {
		s.AllowPriority = *p.AllowPriority
	}
	if p.AllowAlarms != nil {
		s.AllowAlarms = *p.AllowAlarms
	}
	if p.AllowRepeatCallers != nil {
		s.AllowRepeatCallers = *p.AllowRepeatCallers
	}
}
