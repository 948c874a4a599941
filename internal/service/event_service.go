package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"event-calendar-api/internal/model"
	"event-calendar-api/internal/repository"
	apperrors "event-calendar-api/pkg/app_errors"

	"github.com/google/uuid"
)

// recentWindow is the rolling "what's new" lookback.
const recentWindow = 24 * time.Hour

type EventService interface {
	Create(ctx context.Context, params model.CreateEventParams) (*model.Event, error)
	RecentEvents(ctx context.Context) ([]*model.Event, error)
	DayEvents(ctx context.Context, chosenDate time.Time, typeFilter string) ([]model.DayEvent, error)
	MonthEvents(ctx context.Context, month time.Month, typeFilter string) ([]model.MonthDay, error)
}

// Options control the legacy boundary behaviors. Defaults keep the historical
// semantics: month windows end on a literal day 31 and day views exclude
// open-ended events.
type Options struct {
	StrictMonthEnd      bool
	DayIncludeOpenEnded bool
	// Now overrides the service clock; nil means time.Now. Recent and month
	// windows are anchored to this clock, not the store's.
	Now func() time.Time
}

type EventServiceImpl struct {
	repo repository.EventRepository
	opts Options
	now  func() time.Time
}

func NewEventService(repo repository.EventRepository, opts Options) EventService {
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	return &EventServiceImpl{repo: repo, opts: opts, now: now}
}

func (s *EventServiceImpl) Create(ctx context.Context, params model.CreateEventParams) (*model.Event, error) {
	if err := validateCreate(params); err != nil {
		return nil, err
	}

	now := s.now()
	event := &model.Event{
		EventID:      uuid.New(),
		EventName:    params.EventName,
		EventType:    params.EventType,
		EventDetails: params.EventDetails,
		StartTime:    params.StartTime,
		EndTime:      params.EndTime,
		Venue:        params.Venue,
		CreatedBy:    params.CreatedBy,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.repo.Insert(ctx, event); err != nil {
		return nil, err
	}
	return event, nil
}

func (s *EventServiceImpl) RecentEvents(ctx context.Context) ([]*model.Event, error) {
	window := model.RollingWindow(s.now(), recentWindow)
	return s.repo.ListCreatedWithin(ctx, window)
}

func (s *EventServiceImpl) DayEvents(ctx context.Context, chosenDate time.Time, typeFilter string) ([]model.DayEvent, error) {
	window := model.DayWindow(chosenDate)

	events, err := s.repo.ListInDayWindow(ctx, window, SplitTypeFilter(typeFilter), s.opts.DayIncludeOpenEnded)
	if err != nil {
		return nil, err
	}

	dayEvents := make([]model.DayEvent, 0, len(events))
	for _, event := range events {
		dayEvents = append(dayEvents, model.DayEvent{
			EventID:       event.EventID,
			EventName:     event.EventName,
			EventDetails:  event.EventDetails,
			StartTime:     event.StartTime,
			EndTime:       event.EndTime,
			Venue:         event.Venue,
			EventTypeCode: model.EventTypeCode(event.EventType),
		})
	}
	return dayEvents, nil
}

func (s *EventServiceImpl) MonthEvents(ctx context.Context, month time.Month, typeFilter string) ([]model.MonthDay, error) {
	if month < time.January || month > time.December {
		return nil, apperrors.ErrInvalidMonth
	}

	// Year is always the current calendar year; past and future years are
	// not queryable.
	now := s.now()
	window := model.MonthWindow(now.Year(), month, now.Location(), s.opts.StrictMonthEnd)

	days, err := s.repo.ListDayTypes(ctx, window, SplitTypeFilter(typeFilter))
	if err != nil {
		return nil, err
	}

	monthDays := make([]model.MonthDay, 0, len(days))
	for _, day := range days {
		codes := make([]model.EventTypeCodeEntry, 0, len(day.Types))
		for _, t := range day.Types {
			codes = append(codes, model.EventTypeCodeEntry{EventTypeCode: model.EventTypeCode(t)})
		}
		monthDays = append(monthDays, model.MonthDay{
			EventDate:      day.Date.Format("2006-01-02"),
			EventTypeCodes: codes,
		})
	}
	return monthDays, nil
}

// SplitTypeFilter splits a comma-separated event type list and trims each
// token. Empty input means no type restriction. Unknown type tokens are kept
// as-is; they simply match no rows.
func SplitTypeFilter(filter string) []string {
	if filter == "" {
		return nil
	}
	parts := strings.Split(filter, ",")
	types := make([]string, 0, len(parts))
	for _, part := range parts {
		if t := strings.TrimSpace(part); t != "" {
			types = append(types, t)
		}
	}
	return types
}

func validateCreate(p model.CreateEventParams) error {
	switch {
	case p.EventName == "":
		return fmt.Errorf("%w: event_name is required", apperrors.ErrInvalidInput)
	case len(p.EventName) > 100:
		return fmt.Errorf("%w: event_name must be at most 100 characters", apperrors.ErrInvalidInput)
	case p.EventType == "":
		return fmt.Errorf("%w: event_type is required", apperrors.ErrInvalidInput)
	case !model.IsKnownEventType(p.EventType):
		return fmt.Errorf("%w: event_type must be one of GSB, personal", apperrors.ErrInvalidInput)
	case p.EventDetails == "":
		return fmt.Errorf("%w: event_details is required", apperrors.ErrInvalidInput)
	case len(p.EventDetails) > 180:
		return fmt.Errorf("%w: event_details must be at most 180 characters", apperrors.ErrInvalidInput)
	case p.StartTime.IsZero():
		return fmt.Errorf("%w: start_time is required", apperrors.ErrInvalidInput)
	case p.Venue == "":
		return fmt.Errorf("%w: venue is required", apperrors.ErrInvalidInput)
	case len(p.Venue) > 40:
		return fmt.Errorf("%w: venue must be at most 40 characters", apperrors.ErrInvalidInput)
	case p.CreatedBy == "":
		return fmt.Errorf("%w: created_by is required", apperrors.ErrInvalidInput)
	case len(p.CreatedBy) > 25:
		return fmt.Errorf("%w: created_by must be at most 25 characters", apperrors.ErrInvalidInput)
	}
	return nil
}
