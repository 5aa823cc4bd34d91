package tally

import (
	"time"

	"award-voting/internal/platform/apperr"
)

// Window restricts a tally or export to selections created on or after a
// point in time. The cut is applied at retrieval; the aggregator itself
// never filters by time.
type Window string

const (
	WindowAll    Window = "all"
	WindowToday  Window = "today"
	Window7Days  Window = "7d"
	Window30Days Window = "30d"
)

// ParseWindow accepts the wire form of a window, defaulting empty to all.
func ParseWindow(s string) (Window, error) {
	switch Window(s) {
	case "", WindowAll:
		return WindowAll, nil
	case WindowToday, Window7Days, Window30Days:
		return Window(s), nil
	}
	return "", apperr.BadRequest("invalid_window", "window must be one of all, today, 7d, 30d", nil)
}

// Since resolves the window to its start instant relative to now. The zero
// time means no cut.
func (w Window) Since(now time.Time) time.Time {
	switch w {
	case WindowToday:
		y, m, d := now.Date()
		return time.Date(y, m, d, 0, 0, 0, 0, now.Location())
	case Window7Days:
		return now.AddDate(0, 0, -7)
	case Window30Days:
		return now.AddDate(0, 0, -30)
	}
	return time.Time{}
}

// Label is the filename fragment used by CSV export downloads.
func (w Window) Label() string {
	if w == "" {
		return string(WindowAll)
	}
	return string(w)
}
