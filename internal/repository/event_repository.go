package repository

import (
	"context"
	"fmt"

	"event-calendar-api/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type EventRepository interface {
	Insert(ctx context.Context, event *model.Event) error
	ListCreatedWithin(ctx context.Context, w model.Window) ([]*model.Event, error)
	ListInDayWindow(ctx context.Context, w model.Window, types []string, includeOpenEnded bool) ([]*model.Event, error)
	ListDayTypes(ctx context.Context, w model.Window, types []string) ([]model.DayTypes, error)
}

type EventRepositoryImpl struct {
	pool *pgxpool.Pool
}

func NewEventRepository(pool *pgxpool.Pool) EventRepository {
	return &EventRepositoryImpl{
		pool: pool,
	}
}

const eventColumns = "event_id, event_name, event_type, event_details, start_time, end_time, venue, created_by, created_at, updated_at"

func (r *EventRepositoryImpl) Insert(ctx context.Context, event *model.Event) error {
	query := `
		INSERT INTO events (event_id, event_name, event_type, event_details, start_time, end_time, venue, created_by, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`
	_, err := r.pool.Exec(ctx, query,
		event.EventID,
		event.EventName,
		event.EventType,
		event.EventDetails,
		event.StartTime,
		event.EndTime,
		event.Venue,
		event.CreatedBy,
		event.CreatedAt,
		event.UpdatedAt,
	)
	return err
}

func (r *EventRepositoryImpl) ListCreatedWithin(ctx context.Context, w model.Window) ([]*model.Event, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM events
		WHERE created_at >= $1 AND created_at <= $2
		ORDER BY created_at DESC
	`, eventColumns)

	rows, err := r.pool.Query(ctx, query, w.Start, w.End)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanEvents(rows)
}

func (r *EventRepositoryImpl) ListInDayWindow(ctx context.Context, w model.Window, types []string, includeOpenEnded bool) ([]*model.Event, error) {
	// The literal end_time <= $2 predicate excludes open-ended events
	// (null end_time); includeOpenEnded admits them.
	endPredicate := "end_time <= $2"
	if includeOpenEnded {
		endPredicate = "(end_time <= $2 OR end_time IS NULL)"
	}

	query := fmt.Sprintf(`
		SELECT %s
		FROM events
		WHERE start_time >= $1 AND %s`, eventColumns, endPredicate)
	args := []interface{}{w.Start, w.End}

	query, args = appendTypeFilter(query, args, types)
	query += " ORDER BY start_time"

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanEvents(rows)
}

func (r *EventRepositoryImpl) ListDayTypes(ctx context.Context, w model.Window, types []string) ([]model.DayTypes, error) {
	query := `
		SELECT start_time::date AS event_date, array_agg(DISTINCT event_type) AS event_types
		FROM events
		WHERE start_time >= $1 AND start_time <= $2`
	args := []interface{}{w.Start, w.End}

	query, args = appendTypeFilter(query, args, types)
	query += " GROUP BY event_date ORDER BY event_date"

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	days := make([]model.DayTypes, 0)
	for rows.Next() {
		var day model.DayTypes
		if err := rows.Scan(&day.Date, &day.Types); err != nil {
			return nil, err
		}
		days = append(days, day)
	}
	return days, rows.Err()
}

func scanEvents(rows pgx.Rows) ([]*model.Event, error) {
	events := make([]*model.Event, 0)
	for rows.Next() {
		var event model.Event
		err := rows.Scan(
			&event.EventID,
			&event.EventName,
			&event.EventType,
			&event.EventDetails,
			&event.StartTime,
			&event.EndTime,
			&event.Venue,
			&event.CreatedBy,
			&event.CreatedAt,
			&event.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		events = append(events, &event)
	}
	return events, rows.Err()
}
