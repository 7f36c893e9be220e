package model

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInstantAcceptsNaiveAndZonedValues(t *testing.T) {
	var e Event
	require.NoError(t, json.Unmarshal([]byte(`{"event_date":"2025-05-01T18:30:00","created_at":"2025-04-01T09:00:00.123456"}`), &e))
	assert.Equal(t, time.Date(2025, 5, 1, 18, 30, 0, 0, time.UTC), e.EventDate.Time)
	assert.Equal(t, 2025, e.CreatedAt.Year())

	require.NoError(t, json.Unmarshal([]byte(`{"event_date":"2025-05-01T18:30:00+03:00"}`), &e))
	assert.True(t, e.EventDate.Equal(time.Date(2025, 5, 1, 15, 30, 0, 0, time.UTC)))

	require.NoError(t, json.Unmarshal([]byte(`{"event_date":null}`), &e))
	assert.True(t, e.EventDate.IsZero())

	assert.Error(t, json.Unmarshal([]byte(`{"event_date":"tomorrow"}`), &e))
}

func TestInstantMarshalsUTC(t *testing.T) {
	msk := time.FixedZone("MSK", 3*3600)
	data, err := json.Marshal(NewInstant(time.Date(2025, 5, 1, 21, 0, 0, 0, msk)))
	require.NoError(t, err)
	assert.JSONEq(t, `"2025-05-01T18:00:00Z"`, string(data))
}

func TestUserUpdateOmitsNilFields(t *testing.T) {
	name := "Ann"
	data, err := json.Marshal(UserUpdate{Name: &name})
	require.NoError(t, err)
	assert.JSONEq(t, `{"name":"Ann"}`, string(data))
	assert.True(t, UserUpdate{}.IsEmpty())
}

func TestEventHelpers(t *testing.T) {
	e := Event{AvailableSeats: 0, OrganizerID: 7}
	assert.False(t, e.HasSeats())
	assert.True(t, e.OrganizedBy(7))
	assert.False(t, e.OrganizedBy(0))
	assert.True(t, IsEventType("Webinar"))
	assert.False(t, IsEventType("webinar"))
	assert.Equal(t, "Ann Lee", Organizer{Name: "Ann", Surname: "Lee"}.FullName())
}
