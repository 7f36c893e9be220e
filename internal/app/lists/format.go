package lists

import (
	"time"

	"innoevent/internal/configs"
)

// catalog holds the user-visible strings of one locale.
type catalog struct {
	dateLayout string

	noEvents        string
	noRegistrations string
	noOwnedEvents   string

	register       string
	noSeats        string
	signInRequired string
	cancel         string
	confirmCancel  string
	edit           string
	delete         string
	confirmDelete  string
}

var catalogs = map[string]catalog{
	configs.LocaleEnglish: {
		dateLayout:      "Jan 2, 2006, 3:04 PM",
		noEvents:        "No events available.",
		noRegistrations: "You are not registered for any events.",
		noOwnedEvents:   "You have not created any events yet.",
		register:        "Register",
		noSeats:         "No seats",
		signInRequired:  "Sign in to register",
		cancel:          "Cancel registration",
		confirmCancel:   "Are you sure you want to cancel this registration?",
		edit:            "Edit",
		delete:          "Delete",
		confirmDelete:   "Are you sure you want to delete this event?",
	},
	configs.LocaleRussian: {
		dateLayout:      "02.01.2006, 15:04",
		noEvents:        "Нет доступных событий",
		noRegistrations: "Вы не зарегистрированы ни на одно событие",
		noOwnedEvents:   "Вы ещё не создали ни одного события",
		register:        "Зарегистрироваться",
		noSeats:         "Нет мест",
		signInRequired:  "Войдите, чтобы зарегистрироваться",
		cancel:          "Отменить регистрацию",
		confirmCancel:   "Вы уверены?",
		edit:            "Редактировать",
		delete:          "Удалить",
		confirmDelete:   "Удалить событие?",
	},
}

// Formatter renders dates and labels for one locale and time zone.
type Formatter struct {
	cat catalog
	loc *time.Location
}

// NewFormatter returns a Formatter for locale (falling back to English) in loc (nil means UTC).
func NewFormatter(locale string, loc *time.Location) Formatter {
	cat, ok := catalogs[locale]
	if !ok {
		cat = catalogs[configs.LocaleEnglish]
	}
	if loc == nil {
		loc = time.UTC
	}
	return Formatter{cat: cat, loc: loc}
}

// DateTime formats t for display. The zero time renders as an empty string.
func (f Formatter) DateTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.In(f.loc).Format(f.cat.dateLayout)
}

// Location returns the display time zone.
func (f Formatter) Location() *time.Location {
	return f.loc
}
