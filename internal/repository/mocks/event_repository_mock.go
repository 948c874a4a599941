package mocks

import (
	"context"

	"event-calendar-api/internal/model"

	"github.com/stretchr/testify/mock"
)

type EventRepositoryMock struct {
	mock.Mock
}

func NewEventRepositoryMock() *EventRepositoryMock {
	return &EventRepositoryMock{}
}

func (m *EventRepositoryMock) Insert(ctx context.Context, event *model.Event) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

func (m *EventRepositoryMock) ListCreatedWithin(ctx context.Context, w model.Window) ([]*model.Event, error) {
	args := m.Called(ctx, w)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Event), args.Error(1)
}

func (m *EventRepositoryMock) ListInDayWindow(ctx context.Context, w model.Window, types []string, includeOpenEnded bool) ([]*model.Event, error) {
	args := m.Called(ctx, w, types, includeOpenEnded)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Event), args.Error(1)
}

func (m *EventRepositoryMock) ListDayTypes(ctx context.Context, w model.Window, types []string) ([]model.DayTypes, error) {
	args := m.Called(ctx, w, types)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.DayTypes), args.Error(1)
}
