package forms

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"innoevent/internal/app/model"
	"innoevent/internal/pkg/errs"
)

func TestValidEmail(t *testing.T) {
	for _, ok := range []string{"user@example.com", "a.b@mail.example.org", "x@y.z"} {
		assert.True(t, ValidEmail(ok), ok)
	}
	for _, bad := range []string{"", "user", "user@example", "user@@example.com", "us@er@example.com", "user@.", "user example@x.com", "@example.com", "user@example."} {
		assert.False(t, ValidEmail(bad), bad)
	}
}

func TestRegistrationRequiresEveryMandatoryField(t *testing.T) {
	full := RegistrationForm{Surname: "Lee", Name: "Ann", Email: "ann@example.com", Password: "pw"}
	blankers := map[string]func(f *RegistrationForm){
		"surname":  func(f *RegistrationForm) { f.Surname = "  " },
		"name":     func(f *RegistrationForm) { f.Name = "" },
		"email":    func(f *RegistrationForm) { f.Email = "" },
		"password": func(f *RegistrationForm) { f.Password = " " },
	}

	// every non-empty subset of blanked fields must be rejected
	keys := []string{"surname", "name", "email", "password"}
	for mask := 1; mask < 1<<len(keys); mask++ {
		f := full
		for i, k := range keys {
			if mask&(1<<i) != 0 {
				blankers[k](&f)
			}
		}
		_, err := f.Validate()
		assert.True(t, errs.Is(err, errs.ErrRequiredFields), "mask %b", mask)
	}

	payload, err := full.Validate()
	require.NoError(t, err)
	assert.Nil(t, payload.Phone)
	require.NotNil(t, payload.Email)
	assert.Equal(t, "ann@example.com", *payload.Email)
}

func TestRegistrationRejectsMalformedEmail(t *testing.T) {
	_, err := RegistrationForm{Surname: "Lee", Name: "Ann", Email: "ann.example.com", Password: "pw"}.Validate()
	assert.True(t, errs.Is(err, errs.ErrInvalidEmail))
}

func TestRegistrationTrimsValues(t *testing.T) {
	payload, err := RegistrationForm{Surname: " Lee ", Name: "\tAnn", Phone: " +7 900 ", Email: " ann@example.com ", Password: "pw"}.Validate()
	require.NoError(t, err)
	assert.Equal(t, "Lee", payload.Surname)
	assert.Equal(t, "Ann", payload.Name)
	assert.Equal(t, "+7 900", *payload.Phone)
}

func TestLoginForm(t *testing.T) {
	_, err := LoginForm{Email: "", Password: "pw"}.Validate()
	assert.True(t, errs.Is(err, errs.ErrRequiredFields))
	_, err = LoginForm{Email: "ann@example.com"}.Validate()
	assert.True(t, errs.Is(err, errs.ErrRequiredFields))

	creds, err := LoginForm{Email: " ann@example.com ", Password: "pw"}.Validate()
	require.NoError(t, err)
	assert.Equal(t, "ann@example.com", creds.Email)
}

func validEventForm() EventForm {
	return EventForm{
		Title:      "Go meetup",
		EventType:  "Meetup",
		Date:       "2025-06-01T18:30",
		Location:   "Innopolis",
		TotalSeats: "25",
	}
}

func TestEventFormRequiredFields(t *testing.T) {
	blank := []func(f *EventForm){
		func(f *EventForm) { f.Title = "" },
		func(f *EventForm) { f.EventType = "" },
		func(f *EventForm) { f.Date = "" },
		func(f *EventForm) { f.Location = " " },
		func(f *EventForm) { f.TotalSeats = "" },
	}
	for i, b := range blank {
		f := validEventForm()
		b(&f)
		_, err := f.Validate(DefaultRules())
		assert.True(t, errs.Is(err, errs.ErrRequiredFields), "case %d", i)
	}
}

func TestEventFormBuildsPayload(t *testing.T) {
	msk := time.FixedZone("MSK", 3*3600)
	in, err := validEventForm().Validate(Rules{MinSeats: 1, Location: msk})
	require.NoError(t, err)

	assert.Equal(t, "Go meetup", in.Title)
	assert.Equal(t, 25, in.TotalSeats)
	assert.Equal(t, time.Date(2025, 6, 1, 15, 30, 0, 0, time.UTC), in.EventDate.Time)
}

func TestEventFormSeatMinimum(t *testing.T) {
	f := validEventForm()
	f.TotalSeats = "0"

	_, err := f.Validate(DefaultRules())
	customErr := errs.From(err)
	assert.Equal(t, errs.ErrInvalidSeats, customErr.Code)
	assert.Equal(t, "Seat count must be a whole number of at least 1.", customErr.Message)

	in, err := f.Validate(Rules{MinSeats: 0})
	require.NoError(t, err)
	assert.Equal(t, 0, in.TotalSeats)

	f.TotalSeats = "ten"
	_, err = f.Validate(DefaultRules())
	assert.True(t, errs.Is(err, errs.ErrInvalidSeats))
}

func TestEventFormRejectsUnknownTypeAndDate(t *testing.T) {
	f := validEventForm()
	f.EventType = "Rave"
	_, err := f.Validate(DefaultRules())
	assert.True(t, errs.Is(err, errs.ErrInvalidEventType))

	f = validEventForm()
	f.Date = "next friday"
	_, err = f.Validate(DefaultRules())
	assert.True(t, errs.Is(err, errs.ErrInvalidDate))

	f.Date = "2025-06-01T18:30:00+03:00"
	in, err := f.Validate(DefaultRules())
	require.NoError(t, err)
	assert.Equal(t, 15, in.EventDate.UTC().Hour())
}

func TestNumericAcceptsNumbersAndStrings(t *testing.T) {
	var f EventForm
	require.NoError(t, json.Unmarshal([]byte(`{"totalSeats":12}`), &f))
	assert.Equal(t, Numeric("12"), f.TotalSeats)
	require.NoError(t, json.Unmarshal([]byte(`{"totalSeats":"7"}`), &f))
	assert.Equal(t, Numeric("7"), f.TotalSeats)
	require.NoError(t, json.Unmarshal([]byte(`{"totalSeats":null}`), &f))
	assert.Equal(t, Numeric(""), f.TotalSeats)
}

func TestEventFormFromRoundTrips(t *testing.T) {
	event := model.Event{
		Title:      "Go meetup",
		EventType:  "Meetup",
		EventDate:  model.NewInstant(time.Date(2025, 6, 1, 18, 30, 0, 0, time.UTC)),
		Location:   "Innopolis",
		TotalSeats: 25,
	}
	form := EventFormFrom(event, nil)
	assert.Equal(t, "2025-06-01T18:30", form.Date)

	in, err := form.Validate(DefaultRules())
	require.NoError(t, err)
	assert.True(t, in.EventDate.Equal(event.EventDate.Time))
	assert.Equal(t, 25, in.TotalSeats)
}

func TestProfileFormOmitsBlankFields(t *testing.T) {
	update, err := ProfileForm{Name: " Anna ", Phone: "  "}.Validate()
	require.NoError(t, err)

	data, err := json.Marshal(update)
	require.NoError(t, err)
	assert.JSONEq(t, `{"name":"Anna"}`, string(data))

	_, err = ProfileForm{Surname: " ", Password: " "}.Validate()
	assert.True(t, errs.Is(err, errs.ErrNothingToUpdate))

	_, err = ProfileForm{Email: "nope"}.Validate()
	assert.True(t, errs.Is(err, errs.ErrInvalidEmail))
}
