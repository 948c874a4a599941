package mocks

import (
	"context"
	"time"

	"event-calendar-api/internal/model"

	"github.com/stretchr/testify/mock"
)

type EventServiceMock struct {
	mock.Mock
}

func NewEventServiceMock() *EventServiceMock {
	return &EventServiceMock{}
}

func (m *EventServiceMock) Create(ctx context.Context, params model.CreateEventParams) (*model.Event, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Event), args.Error(1)
}

func (m *EventServiceMock) RecentEvents(ctx context.Context) ([]*model.Event, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Event), args.Error(1)
}

func (m *EventServiceMock) DayEvents(ctx context.Context, chosenDate time.Time, typeFilter string) ([]model.DayEvent, error) {
	args := m.Called(ctx, chosenDate, typeFilter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.DayEvent), args.Error(1)
}

func (m *EventServiceMock) MonthEvents(ctx context.Context, month time.Month, typeFilter string) ([]model.MonthDay, error) {
	args := m.Called(ctx, month, typeFilter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.MonthDay), args.Error(1)
}
