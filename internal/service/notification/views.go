package notification

import (
	"sort"
	"time"

	"github.com/urbanshade/notify-center/internal/model"
)

// TimeBuckets lists the grouping buckets in display order.
var TimeBuckets = []string{"Just now", "Earlier today", "Yesterday", "This week", "Older"}

// Filter applies the view predicates to a notification list. Dismissed
// notifications are always excluded; the remaining predicates combine with
// logical AND. Recomputed on every read so views never diverge from the
// canonical list.
func Filter(list []model.SystemNotification, f model.Filters, now time.Time) []model.SystemNotification {
	startOfToday := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	weekAgo := now.Add(-7 * 24 * time.Hour)

	out := make([]model.SystemNotification, 0, len(list))
	for _, n := range list {
		if n.Dismissed {
			continue
		}
		if f.UnreadOnly && n.Read {
			continue
		}
		if f.Type != "" && n.Type != f.Type {
			continue
		}
		if f.App != "" && n.App != f.App {
			continue
		}

		switch f.TimeRange {
		case model.RangeToday:
			if n.Time.Before(startOfToday) {
				continue
			}
		case model.RangeWeek:
			if n.Time.Before(weekAgo) {
				continue
			}
		}

		out = append(out, n)
	}

	return out
}

// GroupByTime partitions an already-filtered list into the five fixed
// buckets using half-open boundaries computed from local midnight. Every
// bucket is present in the result, empty or not.
func GroupByTime(list []model.SystemNotification, now time.Time) map[string][]model.SystemNotification {
	groups := make(map[string][]model.SystemNotification, len(TimeBuckets))
	for _, bucket := range TimeBuckets {
		groups[bucket] = []model.SystemNotification{}
	}

	startOfToday := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	startOfYesterday := startOfToday.Add(-24 * time.Hour)
	startOfWeek := startOfToday.Add(-7 * 24 * time.Hour)

	for _, n := range list {
		switch {
		case now.Sub(n.Time) < 5*time.Minute:
			groups["Just now"] = append(groups["Just now"], n)
		case !n.Time.Before(startOfToday):
			groups["Earlier today"] = append(groups["Earlier today"], n)
		case !n.Time.Before(startOfYesterday):
			groups["Yesterday"] = append(groups["Yesterday"], n)
		case !n.Time.Before(startOfWeek):
			groups["This week"] = append(groups["This week"], n)
		default:
			groups["Older"] = append(groups["Older"], n)
		}
	}

	return groups
}

// GroupByApp partitions an already-filtered list by producer, with
// untagged notifications under "System".
func GroupByApp(list []model.SystemNotification) map[string][]model.SystemNotification {
	groups := make(map[string][]model.SystemNotification)
	for _, n := range list {
		app := n.AppLabel()
		groups[app] = append(groups[app], n)
	}
	return groups
}

// All returns a copy of the full list, newest first.
func (s *Service) All() []model.SystemNotification {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.copyLocked()
}

// Filtered returns the active view for the given filters.
func (s *Service) Filtered(f model.Filters) []model.SystemNotification {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return Filter(s.list, f, s.now())
}

// GroupedByTime returns the filtered view partitioned into time buckets.
func (s *Service) GroupedByTime(f model.Filters) map[string][]model.SystemNotification {
	s.mu.RLock()
	defer s.mu.RUnlock()
	now := s.now()
	return GroupByTime(Filter(s.list, f, now), now)
}

// GroupedByApp returns the filtered view partitioned by producer.
func (s *Service) GroupedByApp(f model.Filters) map[string][]model.SystemNotification {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return GroupByApp(Filter(s.list, f, s.now()))
}

// AvailableApps returns the sorted set of producers present in the store.
func (s *Service) AvailableApps() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	seen := make(map[string]struct{})
	for _, n := range s.list {
		seen[n.AppLabel()] = struct{}{}
	}

	apps := make([]string, 0, len(seen))
	for app := range seen {
		apps = append(apps, app)
	}
	sort.Strings(apps)

	return apps
}

// UnreadCount counts notifications that are neither read nor dismissed.
func (s *Service) UnreadCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	count := 0
	for _, n := range s.list {
		if !n.Read && !n.Dismissed {
			count++
		}
	}
	return count
}

// PersistentCount counts persistent notifications that are not dismissed.
func (s *Service) PersistentCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	count := 0
	for _, n := range s.list {
		if n.Persistent && !n.Dismissed {
			count++
		}
	}
	return count
}
