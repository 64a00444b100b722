package utils

import (
	"fmt"
	"time"
)

// Store seconds consistently; the DB layer keeps unix-second columns.
func NowUnixSeconds() int64 { return time.Now().Unix() }

// TodayKey returns the calendar-date key for daily snapshots. Server UTC,
// not device-local time, so two timezones cannot double-count the same day.
func TodayKey() string {
	return time.Now().UTC().Format("2006-01-02")
}

// RelativeLabel renders a feed timestamp the way the app displays it:
// "agora" under a minute, then minutes/hours/days, and the plain date
// once a post is older than six days.
func RelativeLabel(t time.Time, now time.Time) string {
	d := now.Sub(t)
	switch {
	case d < time.Minute:
		return "agora"
	case d < time.Hour:
		return fmt.Sprintf("%dmin", int(d.Minutes()))
	case d < 24*time.Hour:
		return fmt.Sprintf("%dh", int(d.Hours()))
	case d <= 6*24*time.Hour:
		return fmt.Sprintf("%dd", int(d.Hours()/24))
	default:
		return t.Format("02/01/2006")
	}
}

func FromUnixSeconds(t int64) time.Time {
	if t <= 0 {
		return time.Time{}
	}
	return time.Unix(t, 0).UTC()
}
