package model_test

import (
	"testing"

	"event-calendar-api/internal/model"

	"github.com/stretchr/testify/assert"
)

func TestEventTypeCode(t *testing.T) {
	assert.Equal(t, 1, model.EventTypeCode(model.EventTypeGSB))
	assert.Equal(t, 2, model.EventTypeCode(model.EventTypePersonal))

	// Unrecognized types stored out-of-band map to 0, never an error.
	assert.Equal(t, 0, model.EventTypeCode("banquet"))
	assert.Equal(t, 0, model.EventTypeCode("gsb"))
	assert.Equal(t, 0, model.EventTypeCode(""))
}

func TestIsKnownEventType(t *testing.T) {
	assert.True(t, model.IsKnownEventType(model.EventTypeGSB))
	assert.True(t, model.IsKnownEventType(model.EventTypePersonal))
	assert.False(t, model.IsKnownEventType("banquet"))
	assert.False(t, model.IsKnownEventType(""))
}
