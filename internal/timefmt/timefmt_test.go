package timefmt

import (
	"testing"
	"time"
)

var now = time.Date(2024, 6, 15, 10, 0, 0, 0, time.UTC)

func TestFormatBubbleToday(t *testing.T) {
	t.Parallel()
	got := FormatBubble("2024-06-15T09:30:00Z", now)
	if got != "09:30" {
		t.Errorf("FormatBubble(today): got %q, want %q", got, "09:30")
	}
}

func TestFormatBubbleYesterday(t *testing.T) {
	t.Parallel()
	got := FormatBubble("2024-06-14T23:05:00Z", now)
	if got != "Yesterday 23:05" {
		t.Errorf("FormatBubble(yesterday): got %q, want %q", got, "Yesterday 23:05")
	}
}

func TestFormatBubbleSameYear(t *testing.T) {
	t.Parallel()
	got := FormatBubble("2024-03-05T08:15:00Z", now)
	if got != "05/03 08:15" {
		t.Errorf("FormatBubble(same year): got %q, want %q", got, "05/03 08:15")
	}
}

func TestFormatBubblePreviousYear(t *testing.T) {
	t.Parallel()
	got := FormatBubble("2023-12-31T10:00:00Z", now)
	if got != "31/12/2023 10:00" {
		t.Errorf("FormatBubble(previous year): got %q, want %q", got, "31/12/2023 10:00")
	}
}

func TestFormatBubbleUnparseable(t *testing.T) {
	t.Parallel()
	// Malformed timestamps degrade to now's time instead of failing.
	got := FormatBubble("not-a-timestamp", now)
	if got != "10:00" {
		t.Errorf("FormatBubble(garbage): got %q, want %q", got, "10:00")
	}
}

func TestDateSeparatorToday(t *testing.T) {
	t.Parallel()
	got := DateSeparator("2024-06-15T09:30:00Z", now)
	if got != "Today" {
		t.Errorf("DateSeparator(today): got %q, want %q", got, "Today")
	}
}

func TestDateSeparatorYesterday(t *testing.T) {
	t.Parallel()
	got := DateSeparator("2024-06-14T01:00:00Z", now)
	if got != "Yesterday" {
		t.Errorf("DateSeparator(yesterday): got %q, want %q", got, "Yesterday")
	}
}

func TestDateSeparatorWeekdayWithinTrailingWeek(t *testing.T) {
	t.Parallel()
	// June 10, 2024 was a Monday, five days before now.
	got := DateSeparator("2024-06-10T09:30:00Z", now)
	if got != "Monday" {
		t.Errorf("DateSeparator(5 days ago): got %q, want %q", got, "Monday")
	}
}

func TestDateSeparatorOlderThanWeek(t *testing.T) {
	t.Parallel()
	got := DateSeparator("2024-06-08T09:30:00Z", now)
	if got != "08/06/2024" {
		t.Errorf("DateSeparator(7 days ago): got %q, want %q", got, "08/06/2024")
	}
}

func TestDateSeparatorUnparseable(t *testing.T) {
	t.Parallel()
	got := DateSeparator("", now)
	if got != "Today" {
		t.Errorf("DateSeparator(empty): got %q, want %q", got, "Today")
	}
}

func TestSameCalendarDay(t *testing.T) {
	t.Parallel()
	if !SameCalendarDay("2024-06-15T00:01:00Z", "2024-06-15T23:59:00Z") {
		t.Error("SameCalendarDay: same day with different times reported false")
	}
	if SameCalendarDay("2024-06-15T23:59:00Z", "2024-06-16T00:01:00Z") {
		t.Error("SameCalendarDay: adjacent days reported true")
	}
	if SameCalendarDay("garbage", "2024-06-15T12:00:00Z") {
		t.Error("SameCalendarDay: unparseable input reported true")
	}
}

func TestDisplayStamp(t *testing.T) {
	t.Parallel()
	got := DisplayStamp(now)
	if got != "15/06/2024 10:00" {
		t.Errorf("DisplayStamp: got %q, want %q", got, "15/06/2024 10:00")
	}
}
