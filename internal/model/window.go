package model

import "time"

// Window is an inclusive [Start, End] bound pair for filtering events.
type Window struct {
	Start time.Time
	End   time.Time
}

// DayWindow covers date from 00:00:00 through 23:59:59.
func DayWindow(date time.Time) Window {
	y, m, d := date.Date()
	start := time.Date(y, m, d, 0, 0, 0, 0, date.Location())
	return Window{
		Start: start,
		End:   time.Date(y, m, d, 23, 59, 59, 0, date.Location()),
	}
}

// MonthWindow covers day 1 through day 31 of month in the current year.
// Day 31 overflows into the next month for shorter months (time.Date
// normalizes the date), which keeps the legacy loose upper bound. With
// strict=true the window ends at 23:59:59 on the month's actual last day.
func MonthWindow(year int, month time.Month, loc *time.Location, strict bool) Window {
	start := time.Date(year, month, 1, 0, 0, 0, 0, loc)
	if strict {
		return Window{
			Start: start,
			End:   start.AddDate(0, 1, 0).Add(-time.Second),
		}
	}
	return Window{
		Start: start,
		End:   time.Date(year, month, 31, 0, 0, 0, 0, loc),
	}
}

// RollingWindow is the window of length d ending at now.
func RollingWindow(now time.Time, d time.Duration) Window {
	return Window{Start: now.Add(-d), End: now}
}
