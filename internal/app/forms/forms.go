/*
Package forms collects and validates the portal's form input.

Each form trims its fields, checks required values and shapes, and produces the API payload.
A validation error is an *errs.CustomError of the validation kind; callers must not contact the API
when one is returned.
*/
package forms

import (
	"bytes"
	"encoding/json"
	"regexp"
	"strconv"
	"strings"
	"time"

	"innoevent/internal/app/model"
	"innoevent/internal/app/session"
	"innoevent/internal/pkg/errs"
)

// emailPattern accepts local@domain.tld: exactly one "@", a "." somewhere after it, no whitespace.
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// ValidEmail reports whether s looks like local@domain.tld.
func ValidEmail(s string) bool {
	return emailPattern.MatchString(s)
}

// Rules are the tunable validation settings.
type Rules struct {
	// MinSeats is the smallest accepted seat count for an event.
	MinSeats int

	// Location interprets zone-less event dates. Nil means UTC.
	Location *time.Location
}

// DefaultRules rejects zero-seat events and reads dates as UTC.
func DefaultRules() Rules {
	return Rules{MinSeats: 1, Location: time.UTC}
}

func (r Rules) location() *time.Location {
	if r.Location == nil {
		return time.UTC
	}
	return r.Location
}

// Numeric is a form value that may arrive as a JSON number or a JSON string.
type Numeric string

// UnmarshalJSON implements json.Unmarshaler.
func (n *Numeric) UnmarshalJSON(data []byte) error {
	if bytes.HasPrefix(data, []byte(`"`)) {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*n = Numeric(s)
		return nil
	}
	if bytes.Equal(data, []byte("null")) {
		*n = ""
		return nil
	}
	*n = Numeric(data)
	return nil
}

func anyBlank(values ...string) bool {
	for _, v := range values {
		if v == "" {
			return true
		}
	}
	return false
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// RegistrationForm is the sign-up form.
type RegistrationForm struct {
	Surname  string `json:"surname"`
	Name     string `json:"name"`
	Phone    string `json:"phone"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Validate checks the sign-up form and builds the create payload.
func (f RegistrationForm) Validate() (model.UserCreate, error) {
	surname := strings.TrimSpace(f.Surname)
	name := strings.TrimSpace(f.Name)
	phone := strings.TrimSpace(f.Phone)
	email := strings.TrimSpace(f.Email)

	if anyBlank(surname, name, email, strings.TrimSpace(f.Password)) {
		return model.UserCreate{}, errs.NewError(errs.ErrRequiredFields)
	}
	if !ValidEmail(email) {
		return model.UserCreate{}, errs.NewError(errs.ErrInvalidEmail)
	}

	return model.UserCreate{
		Surname:  surname,
		Name:     name,
		Phone:    optional(phone),
		Email:    &email,
		Password: f.Password,
	}, nil
}

// LoginForm is the sign-in form.
type LoginForm struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Validate checks the sign-in form.
func (f LoginForm) Validate() (session.Credentials, error) {
	email := strings.TrimSpace(f.Email)
	if anyBlank(email, strings.TrimSpace(f.Password)) {
		return session.Credentials{}, errs.NewError(errs.ErrRequiredFields)
	}
	return session.Credentials{Email: email, Password: f.Password}, nil
}

// dateLayouts are tried in order for the event date field.
var dateLayouts = []string{
	"2006-01-02T15:04",
	"2006-01-02 15:04",
	"2006-01-02T15:04:05",
}

// FormDateLayout is the layout used to pre-fill the date field.
const FormDateLayout = "2006-01-02T15:04"

// EventForm is the create-event and edit-event form.
type EventForm struct {
	Title       string  `json:"title"`
	Description string  `json:"description"`
	EventType   string  `json:"eventType"`
	Date        string  `json:"date"`
	Location    string  `json:"location"`
	TotalSeats  Numeric `json:"totalSeats"`
}

// Validate checks the event form and builds the create/replace payload.
func (f EventForm) Validate(rules Rules) (model.EventInput, error) {
	title := strings.TrimSpace(f.Title)
	eventType := strings.TrimSpace(f.EventType)
	rawDate := strings.TrimSpace(f.Date)
	location := strings.TrimSpace(f.Location)
	rawSeats := strings.TrimSpace(string(f.TotalSeats))

	if anyBlank(title, eventType, rawDate, location, rawSeats) {
		return model.EventInput{}, errs.NewError(errs.ErrRequiredFields)
	}

	if !model.IsEventType(eventType) {
		return model.EventInput{}, errs.NewError(errs.ErrInvalidEventType, eventType)
	}

	date, err := parseEventDate(rawDate, rules.location())
	if err != nil {
		return model.EventInput{}, err
	}

	seats, err := strconv.Atoi(rawSeats)
	if err != nil || seats < rules.MinSeats {
		return model.EventInput{}, errs.NewError(errs.ErrInvalidSeats, rules.MinSeats)
	}

	return model.EventInput{
		Title:       title,
		Description: strings.TrimSpace(f.Description),
		EventType:   eventType,
		EventDate:   model.NewInstant(date.UTC()),
		Location:    location,
		TotalSeats:  seats,
	}, nil
}

func parseEventDate(raw string, loc *time.Location) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t, nil
	}
	for _, layout := range dateLayouts {
		if t, err := time.ParseInLocation(layout, raw, loc); err == nil {
			return t, nil
		}
	}
	return time.Time{}, errs.NewError(errs.ErrInvalidDate)
}

// EventFormFrom pre-fills the edit form from an existing event.
func EventFormFrom(e model.Event, loc *time.Location) EventForm {
	if loc == nil {
		loc = time.UTC
	}
	return EventForm{
		Title:       e.Title,
		Description: e.Description,
		EventType:   e.EventType,
		Date:        e.EventDate.In(loc).Format(FormDateLayout),
		Location:    e.Location,
		TotalSeats:  Numeric(strconv.Itoa(e.TotalSeats)),
	}
}

// ProfileForm is the profile update form. Blank fields mean "unchanged".
type ProfileForm struct {
	Surname  string `json:"surname"`
	Name     string `json:"name"`
	Phone    string `json:"phone"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Validate builds a partial update that omits every blank field.
func (f ProfileForm) Validate() (model.UserUpdate, error) {
	email := strings.TrimSpace(f.Email)
	if email != "" && !ValidEmail(email) {
		return model.UserUpdate{}, errs.NewError(errs.ErrInvalidEmail)
	}

	update := model.UserUpdate{
		Surname: optional(strings.TrimSpace(f.Surname)),
		Name:    optional(strings.TrimSpace(f.Name)),
		Phone:   optional(strings.TrimSpace(f.Phone)),
		Email:   optional(email),
	}
	if strings.TrimSpace(f.Password) != "" {
		update.Password = optional(f.Password)
	}

	if update.IsEmpty() {
		return model.UserUpdate{}, errs.NewError(errs.ErrNothingToUpdate)
	}
	return update, nil
}

// ProfileFormFrom pre-fills the profile form. The password is never echoed back.
func ProfileFormFrom(u model.User) ProfileForm {
	return ProfileForm{
		Surname: u.Surname,
		Name:    u.Name,
		Phone:   u.Phone,
		Email:   u.Email,
	}
}
