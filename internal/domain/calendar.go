package domain

import "time"

// DateLayout is how calendar dates are rendered in responses.
const DateLayout = "2006-01-02"

// CalendarDay truncates t to midnight UTC of its calendar date.
func CalendarDay(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func consecutiveDays(later, earlier time.Time) bool {
	return CalendarDay(later).AddDate(0, 0, -1).Equal(CalendarDay(earlier))
}
