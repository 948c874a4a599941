package model_test

import (
	"testing"
	"time"

	"event-calendar-api/internal/model"

	"github.com/stretchr/testify/assert"
)

func TestDayWindow(t *testing.T) {
	date := time.Date(2024, time.March, 15, 10, 30, 45, 0, time.UTC)
	w := model.DayWindow(date)

	assert.Equal(t, time.Date(2024, time.March, 15, 0, 0, 0, 0, time.UTC), w.Start)
	assert.Equal(t, time.Date(2024, time.March, 15, 23, 59, 59, 0, time.UTC), w.End)
}

func TestMonthWindow(t *testing.T) {
	t.Run("legacy bound is a literal day 31", func(t *testing.T) {
		w := model.MonthWindow(2024, time.January, time.UTC, false)

		assert.Equal(t, time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC), w.Start)
		assert.Equal(t, time.Date(2024, time.January, 31, 0, 0, 0, 0, time.UTC), w.End)
	})

	t.Run("legacy bound overflows short months", func(t *testing.T) {
		// Feb 31 normalizes past the end of the month, so the window
		// admits early-March dates. 2023 is a non-leap year.
		w := model.MonthWindow(2023, time.February, time.UTC, false)
		assert.Equal(t, time.Date(2023, time.March, 3, 0, 0, 0, 0, time.UTC), w.End)

		// Leap year: one day less of overflow.
		w = model.MonthWindow(2024, time.February, time.UTC, false)
		assert.Equal(t, time.Date(2024, time.March, 2, 0, 0, 0, 0, time.UTC), w.End)
	})

	t.Run("strict bound ends on the month's actual last day", func(t *testing.T) {
		w := model.MonthWindow(2023, time.February, time.UTC, true)
		assert.Equal(t, time.Date(2023, time.February, 28, 23, 59, 59, 0, time.UTC), w.End)

		w = model.MonthWindow(2024, time.February, time.UTC, true)
		assert.Equal(t, time.Date(2024, time.February, 29, 23, 59, 59, 0, time.UTC), w.End)

		w = model.MonthWindow(2024, time.April, time.UTC, true)
		assert.Equal(t, time.Date(2024, time.April, 30, 23, 59, 59, 0, time.UTC), w.End)
	})
}

func TestRollingWindow(t *testing.T) {
	now := time.Date(2024, time.March, 15, 18, 0, 0, 0, time.UTC)
	w := model.RollingWindow(now, 24*time.Hour)

	assert.Equal(t, now, w.End)
	assert.Equal(t, now.Add(-24*time.Hour), w.Start)
	assert.Equal(t, 24*time.Hour, w.End.Sub(w.Start))
}
