package repository

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestAppendTypeFilter(t *testing.T) {
	baseQuery := "SELECT event_id FROM events WHERE start_time >= $1 AND end_time <= $2"
	lo := time.Date(2024, time.March, 15, 0, 0, 0, 0, time.UTC)
	hi := time.Date(2024, time.March, 15, 23, 59, 59, 0, time.UTC)

	t.Run("no types leaves query and args untouched", func(t *testing.T) {
		query, args := appendTypeFilter(baseQuery, []interface{}{lo, hi}, nil)

		assert.Equal(t, baseQuery, query)
		assert.Equal(t, []interface{}{lo, hi}, args)
	})

	t.Run("appends one placeholder per type in supplied order", func(t *testing.T) {
		query, args := appendTypeFilter(baseQuery, []interface{}{lo, hi}, []string{"GSB", "personal"})

		assert.Equal(t, baseQuery+" AND event_type IN ($3, $4)", query)
		assert.Equal(t, []interface{}{lo, hi, "GSB", "personal"}, args)
	})

	t.Run("reversed order reverses bound values", func(t *testing.T) {
		query, args := appendTypeFilter(baseQuery, []interface{}{lo, hi}, []string{"personal", "GSB"})

		assert.Equal(t, baseQuery+" AND event_type IN ($3, $4)", query)
		assert.Equal(t, []interface{}{lo, hi, "personal", "GSB"}, args)
	})

	t.Run("placeholder count always matches arg count", func(t *testing.T) {
		for _, types := range [][]string{
			nil,
			{"GSB"},
			{"GSB", "personal"},
			{"GSB", "personal", "banquet"},
		} {
			query, args := appendTypeFilter(baseQuery, []interface{}{lo, hi}, types)

			appended := strings.Count(query, "$") - strings.Count(baseQuery, "$")
			assert.Equal(t, len(args)-2, appended)
			assert.Equal(t, len(types), appended)
		}
	})

	t.Run("placeholders continue numbering from seed args", func(t *testing.T) {
		query, args := appendTypeFilter("SELECT 1 WHERE created_at >= $1", []interface{}{lo}, []string{"GSB"})

		assert.Equal(t, "SELECT 1 WHERE created_at >= $1 AND event_type IN ($2)", query)
		assert.Equal(t, []interface{}{lo, "GSB"}, args)
	})
}
