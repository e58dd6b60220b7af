package notification

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/retry"

	"github.com/urbanshade/notify-center/internal/model"
)

func notif(id string, age time.Duration, now time.Time) model.SystemNotification {
	return model.SystemNotification{
		ID:       id,
		Title:    id,
		Message:  "msg",
		Time:     now.Add(-age),
		Type:     model.TypeInfo,
		Priority: model.PriorityNormal,
		Behavior: model.BehaviorToast,
	}
}

func TestFilter_Predicates(t *testing.T) {
	now := time.Date(2025, 9, 16, 12, 0, 0, 0, time.UTC)

	read := notif("read", time.Minute, now)
	read.Read = true

	dismissed := notif("dismissed", time.Minute, now)
	dismissed.Dismissed = true

	errNotif := notif("err", time.Minute, now)
	errNotif.Type = model.TypeError

	mail := notif("mail", time.Minute, now)
	mail.App = "mail"

	old := notif("old", 10*24*time.Hour, now)
	yesterday := notif("yesterday", 20*time.Hour, now)

	list := []model.SystemNotification{read, dismissed, errNotif, mail, old, yesterday}

	// Dismissed entries never show.
	got := Filter(list, model.Filters{}, now)
	assert.Len(t, got, 5)

	got = Filter(list, model.Filters{UnreadOnly: true}, now)
	for _, n := range got {
		assert.False(t, n.Read)
	}

	got = Filter(list, model.Filters{Type: model.TypeError}, now)
	require.Len(t, got, 1)
	assert.Equal(t, "err", got[0].ID)

	got = Filter(list, model.Filters{App: "mail"}, now)
	require.Len(t, got, 1)
	assert.Equal(t, "mail", got[0].ID)

	// today = since local midnight: excludes yesterday's and older entries.
	got = Filter(list, model.Filters{TimeRange: model.RangeToday}, now)
	for _, n := range got {
		assert.NotEqual(t, "old", n.ID)
		assert.NotEqual(t, "yesterday", n.ID)
	}

	// week = last 7x24h.
	got = Filter(list, model.Filters{TimeRange: model.RangeWeek}, now)
	for _, n := range got {
		assert.NotEqual(t, "old", n.ID)
	}
}

func TestGroupByTime_Exhaustive(t *testing.T) {
	now := time.Date(2025, 9, 16, 12, 0, 0, 0, time.UTC)

	list := []model.SystemNotification{
		notif("just-now", time.Minute, now),
		notif("earlier", 3*time.Hour, now),
		notif("yesterday", 20*time.Hour, now),
		notif("this-week", 3*24*time.Hour, now),
		notif("older", 30*24*time.Hour, now),
	}

	groups := GroupByTime(list, now)

	// Every bucket exists, even when empty.
	require.Len(t, groups, len(TimeBuckets))

	assert.Equal(t, "just-now", groups["Just now"][0].ID)
	assert.Equal(t, "earlier", groups["Earlier today"][0].ID)
	assert.Equal(t, "yesterday", groups["Yesterday"][0].ID)
	assert.Equal(t, "this-week", groups["This week"][0].ID)
	assert.Equal(t, "older", groups["Older"][0].ID)

	// The union of all buckets is the input, each entry exactly once.
	seen := make(map[string]int)
	total := 0
	for _, bucket := range TimeBuckets {
		for _, n := range groups[bucket] {
			seen[n.ID]++
			total++
		}
	}
	assert.Equal(t, len(list), total)
	for id, count := range seen {
		assert.Equal(t, 1, count, "notification %s grouped more than once", id)
	}
}

func TestGroupByTime_Boundaries(t *testing.T) {
	now := time.Date(2025, 9, 16, 12, 0, 0, 0, time.UTC)

	// 4m59s old is "Just now"; exactly 5m old is not.
	justUnder := notif("under", 5*time.Minute-time.Second, now)
	exactly := notif("exact", 5*time.Minute, now)

	groups := GroupByTime([]model.SystemNotification{justUnder, exactly}, now)
	assert.Len(t, groups["Just now"], 1)
	assert.Len(t, groups["Earlier today"], 1)

	// A notification from 00:00 today is still "Earlier today".
	midnight := model.SystemNotification{
		ID:   "midnight",
		Time: time.Date(2025, 9, 16, 0, 0, 0, 0, time.UTC),
	}
	groups = GroupByTime([]model.SystemNotification{midnight}, now)
	assert.Len(t, groups["Earlier today"], 1)
}

func TestGroupByApp(t *testing.T) {
	now := time.Date(2025, 9, 16, 12, 0, 0, 0, time.UTC)

	mail := notif("m1", time.Minute, now)
	mail.App = "mail"
	system := notif("s1", time.Minute, now)

	groups := GroupByApp([]model.SystemNotification{mail, system})
	require.Len(t, groups, 2)
	assert.Equal(t, "m1", groups["mail"][0].ID)
	assert.Equal(t, "s1", groups["System"][0].ID)
}

func TestService_AvailableApps(t *testing.T) {
	svc := newTestService(t, nil, nil)

	for _, app := range []string{"mail", "", "terminal", "mail"} {
		_, err := svc.Add(context.Background(), retry.Strategy{}, Input{Title: "t", Message: "m", App: app})
		require.NoError(t, err)
	}

	assert.Equal(t, []string{"System", "mail", "terminal"}, svc.AvailableApps())
}
