package lists

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"innoevent/internal/app/model"
	"innoevent/internal/app/session"
	"innoevent/internal/configs"
)

var signedIn = session.Session{UserID: 7, DisplayName: "Ann", Authenticated: true}

func event(id int64, available, total int) model.Event {
	return model.Event{
		ID:             id,
		Title:          "Go meetup",
		EventType:      "Meetup",
		EventDate:      model.NewInstant(time.Date(2025, 6, 1, 18, 30, 0, 0, time.UTC)),
		Location:       "Innopolis",
		AvailableSeats: available,
		TotalSeats:     total,
		Organizer:      &model.Organizer{Name: "Ann", Surname: "Lee"},
	}
}

func TestRegisterControlFollowsSeats(t *testing.T) {
	f := NewFormatter(configs.LocaleEnglish, nil)
	list := BuildEvents([]model.Event{event(1, 0, 10), event(2, 3, 10)}, signedIn, f)
	require.Len(t, list.Items, 2)

	soldOut, ok := FindAction(list.Items, 1, ActionRegister)
	require.True(t, ok)
	assert.False(t, soldOut.Enabled)
	assert.Equal(t, "No seats", soldOut.Label)

	open, ok := FindAction(list.Items, 2, ActionRegister)
	require.True(t, ok)
	assert.True(t, open.Enabled)
	assert.Equal(t, "Register", open.Label)

	assert.Equal(t, "3/10", list.Items[1].Seats)
	assert.Equal(t, "Ann Lee", list.Items[1].Organizer)
	assert.Equal(t, "Jun 1, 2025, 6:30 PM", list.Items[1].Date)
}

func TestGuestRegisterControlAsksForSignIn(t *testing.T) {
	f := NewFormatter(configs.LocaleEnglish, nil)
	list := BuildEvents([]model.Event{event(2, 3, 10)}, session.Session{}, f)

	action, ok := FindAction(list.Items, 2, ActionRegister)
	require.True(t, ok)
	assert.False(t, action.Enabled)
	assert.True(t, action.RequiresAuth)
}

func TestEmptyCollectionsUsePlaceholders(t *testing.T) {
	f := NewFormatter(configs.LocaleEnglish, nil)

	events := BuildEvents(nil, signedIn, f)
	assert.True(t, events.Empty)
	assert.Equal(t, "No events available.", events.Placeholder)
	assert.NotNil(t, events.Items)

	regs := BuildRegistrations([]model.Registration{}, f)
	assert.True(t, regs.Empty)
	assert.Equal(t, "You are not registered for any events.", regs.Placeholder)

	owned := BuildOwnedEvents(nil, f)
	assert.Equal(t, "You have not created any events yet.", owned.Placeholder)
}

func TestRegistrationCardsOfferCancel(t *testing.T) {
	f := NewFormatter(configs.LocaleRussian, nil)
	regs := BuildRegistrations([]model.Registration{{
		ID:           5,
		EventID:      1,
		RegisteredAt: model.NewInstant(time.Date(2025, 5, 1, 8, 0, 0, 0, time.UTC)),
		Event:        event(1, 3, 10),
	}}, f)

	require.Len(t, regs.Items, 1)
	card := regs.Items[0]
	assert.Equal(t, "01.05.2025, 08:00", card.RegisteredAt)
	require.Len(t, card.Actions, 1)
	assert.Equal(t, ActionCancel, card.Actions[0].Kind)
	assert.Equal(t, int64(5), card.Actions[0].TargetID)
	assert.Equal(t, "Вы уверены?", card.Actions[0].Confirm)
}

func TestOwnedEventCardsOfferEditAndDelete(t *testing.T) {
	f := NewFormatter("xx", time.FixedZone("MSK", 3*3600))
	owned := BuildOwnedEvents([]model.Event{event(4, 10, 10)}, f)

	require.Len(t, owned.Items, 1)
	_, hasEdit := FindAction(owned.Items, 4, ActionEdit)
	del, hasDelete := FindAction(owned.Items, 4, ActionDelete)
	assert.True(t, hasEdit)
	assert.True(t, hasDelete)
	assert.NotEmpty(t, del.Confirm)
	assert.Equal(t, "Jun 1, 2025, 9:30 PM", owned.Items[0].Date)
}
