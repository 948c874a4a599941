package model

import (
	"time"

	"github.com/google/uuid"
)

const (
	EventTypeGSB      = "GSB"
	EventTypePersonal = "personal"
)

// eventTypeCodes is the single type-to-code lookup consulted by every read
// operation. Types stored out-of-band map to 0 rather than failing.
var eventTypeCodes = map[string]int{
	EventTypeGSB:      1,
	EventTypePersonal: 2,
}

func EventTypeCode(eventType string) int {
	return eventTypeCodes[eventType]
}

// IsKnownEventType reports whether eventType is one of the defined enum values.
func IsKnownEventType(eventType string) bool {
	_, ok := eventTypeCodes[eventType]
	return ok
}

type Event struct {
	EventID      uuid.UUID  `json:"event_id" db:"event_id"`
	EventName    string     `json:"event_name" db:"event_name"`
	EventType    string     `json:"event_type" db:"event_type"`
	EventDetails string     `json:"event_details" db:"event_details"`
	StartTime    time.Time  `json:"start_time" db:"start_time"`
	EndTime      *time.Time `json:"end_time" db:"end_time"`
	Venue        string     `json:"venue" db:"venue"`
	CreatedBy    string     `json:"created_by" db:"created_by"`
	CreatedAt    time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at" db:"updated_at"`
}

type CreateEventParams struct {
	EventName    string
	EventType    string
	EventDetails string
	StartTime    time.Time
	EndTime      *time.Time
	Venue        string
	CreatedBy    string
}

// DayEvent is a day-view row with the event type replaced by its numeric code.
type DayEvent struct {
	EventID       uuid.UUID  `json:"event_id"`
	EventName     string     `json:"event_name"`
	EventDetails  string     `json:"event_details"`
	StartTime     time.Time  `json:"start_time"`
	EndTime       *time.Time `json:"end_time"`
	Venue         string     `json:"venue"`
	EventTypeCode int        `json:"event_type_code"`
}

type EventTypeCodeEntry struct {
	EventTypeCode int `json:"event_type_code"`
}

// MonthDay is one calendar date with the codes of the distinct event types
// present on that date. Order of codes within a day is not significant.
type MonthDay struct {
	EventDate      string               `json:"event_date"`
	EventTypeCodes []EventTypeCodeEntry `json:"event_type_codes"`
}

// DayTypes is the repository grouping row behind MonthDay: the distinct
// event types of all events starting on Date.
type DayTypes struct {
	Date  time.Time
	Types []string
}
