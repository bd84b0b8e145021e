package chathistory

import (
	"sort"
	"time"
)

// Group is one date bucket of sessions for the history list.
type Group struct {
	Label    string
	Day      time.Time // midnight of the bucket's day, local time
	Sessions []Session
}

// GroupByDay buckets sessions by calendar day relative to now: "Today",
// "Yesterday", then plain dates. Buckets are ordered newest first; within
// a bucket, sessions keep their input order.
func GroupByDay(sessions []Session, now time.Time) []Group {
	byDay := make(map[time.Time]*Group)
	var order []time.Time

	for _, sess := range sessions {
		day := midnight(sess.UpdatedAt.In(now.Location()))
		g, ok := byDay[day]
		if !ok {
			g = &Group{Label: dayLabel(day, now), Day: day}
			byDay[day] = g
			order = append(order, day)
		}
		g.Sessions = append(g.Sessions, sess)
	}

	sort.Slice(order, func(i, j int) bool { return order[i].After(order[j]) })

	groups := make([]Group, 0, len(order))
	for _, day := range order {
		groups = append(groups, *byDay[day])
	}
	return groups
}

func dayLabel(day, now time.Time) string {
	today := midnight(now)
	switch {
	case day.Equal(today):
		return "Today"
	case day.Equal(today.AddDate(0, 0, -1)):
		return "Yesterday"
	default:
		return day.Format("Jan 2, 2006")
	}
}

func midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
