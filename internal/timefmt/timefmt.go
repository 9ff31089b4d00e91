// Package timefmt formats message timestamps for chat rendering, in the
// style of messaging apps: bare times for today, "Yesterday", weekday names
// for the trailing week, full dates beyond that.
//
// All functions are pure given (timestamp, now) and never fail: a timestamp
// that does not parse degrades to the current instant's display rather than
// surfacing an error to rendering code.
package timefmt

import "time"

// FormatBubble renders the timestamp shown inside a message bubble.
// Today: "HH:MM". Yesterday: "Yesterday HH:MM". Same year: "DD/MM HH:MM".
// Older: "DD/MM/YYYY HH:MM". Unparseable input renders now's time.
func FormatBubble(ts string, now time.Time) string {
	t, ok := parse(ts, now)
	if !ok {
		return now.Format("15:04")
	}
	clock := t.Format("15:04")
	switch {
	case sameDay(t, now):
		return clock
	case sameDay(t, now.AddDate(0, 0, -1)):
		return "Yesterday " + clock
	case t.Year() == now.Year():
		return t.Format("02/01") + " " + clock
	default:
		return t.Format("02/01/2006") + " " + clock
	}
}

// DateSeparator renders the label dividing message groups by day.
// Today: "Today". Yesterday: "Yesterday". Within the trailing 7 calendar
// days: the weekday name. Older: "DD/MM/YYYY". Unparseable input renders
// "Today".
func DateSeparator(ts string, now time.Time) string {
	t, ok := parse(ts, now)
	if !ok {
		return "Today"
	}
	switch {
	case sameDay(t, now):
		return "Today"
	case sameDay(t, now.AddDate(0, 0, -1)):
		return "Yesterday"
	case startOfDay(t).After(startOfDay(now).AddDate(0, 0, -7)):
		return t.Weekday().String()
	default:
		return t.Format("02/01/2006")
	}
}

// SameCalendarDay compares only the year/month/day components of the two
// timestamps. It returns false if either fails to parse.
func SameCalendarDay(a, b string) bool {
	ta, err := time.Parse(time.RFC3339, a)
	if err != nil {
		return false
	}
	tb, err := time.Parse(time.RFC3339, b)
	if err != nil {
		return false
	}
	return sameDay(ta, tb.In(ta.Location()))
}

// DisplayStamp renders the full "DD/MM/YYYY HH:MM" form used for ticket
// creation stamps.
func DisplayStamp(now time.Time) string {
	return now.Format("02/01/2006 15:04")
}

func parse(ts string, now time.Time) (time.Time, bool) {
	t, err := time.Parse(time.RFC3339, ts)
	if err != nil {
		return time.Time{}, false
	}
	return t.In(now.Location()), true
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

func startOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
