/*
Package lists builds the view models for the portal's three collections: all events, the user's
registrations and the user's own events.

Builders are pure functions of the fetched data and the session, so what each card shows and which
actions it offers can be tested without any rendering environment.
*/
package lists

import (
	"fmt"

	"innoevent/internal/app/model"
	"innoevent/internal/app/session"
)

// ActionKind names what an action control does.
type ActionKind string

const (
	ActionRegister ActionKind = "register"
	ActionCancel   ActionKind = "cancel"
	ActionEdit     ActionKind = "edit"
	ActionDelete   ActionKind = "delete"
)

// Action is one control attached to a card.
type Action struct {
	Kind         ActionKind `json:"kind"`
	Label        string     `json:"label"`
	TargetID     int64      `json:"targetId"`
	Enabled      bool       `json:"enabled"`
	RequiresAuth bool       `json:"requiresAuth,omitempty"`
	Confirm      string     `json:"confirm,omitempty"`
}

// EventCard is the display fragment of one event.
type EventCard struct {
	ID             int64    `json:"id"`
	Title          string   `json:"title"`
	Description    string   `json:"description,omitempty"`
	Type           string   `json:"type"`
	Date           string   `json:"date"`
	Location       string   `json:"location"`
	Seats          string   `json:"seats"`
	AvailableSeats int      `json:"availableSeats"`
	TotalSeats     int      `json:"totalSeats"`
	Organizer      string   `json:"organizer,omitempty"`
	Actions        []Action `json:"actions"`
}

// RegistrationCard is the display fragment of one registration.
type RegistrationCard struct {
	ID           int64    `json:"id"`
	EventID      int64    `json:"eventId"`
	Title        string   `json:"title"`
	Date         string   `json:"date"`
	Location     string   `json:"location"`
	RegisteredAt string   `json:"registeredAt"`
	Actions      []Action `json:"actions"`
}

// List is a rendered collection. An empty list carries a placeholder instead of items.
type List[T any] struct {
	Items       []T    `json:"items"`
	Empty       bool   `json:"empty"`
	Placeholder string `json:"placeholder,omitempty"`
}

func newList[T any](items []T, placeholder string) List[T] {
	if len(items) == 0 {
		return List[T]{Items: []T{}, Empty: true, Placeholder: placeholder}
	}
	return List[T]{Items: items}
}

func (f Formatter) eventCard(e model.Event) EventCard {
	card := EventCard{
		ID:             e.ID,
		Title:          e.Title,
		Description:    e.Description,
		Type:           e.EventType,
		Date:           f.DateTime(e.EventDate.Time),
		Location:       e.Location,
		Seats:          fmt.Sprintf("%d/%d", e.AvailableSeats, e.TotalSeats),
		AvailableSeats: e.AvailableSeats,
		TotalSeats:     e.TotalSeats,
	}
	if e.Organizer != nil {
		card.Organizer = e.Organizer.FullName()
	}
	return card
}

// RegisterAction decides the register control for e. It is enabled only for a signed-in
// user and an event with free seats.
func (f Formatter) RegisterAction(e model.Event, sess session.Session) Action {
	action := Action{Kind: ActionRegister, TargetID: e.ID}

	switch {
	case !sess.Authenticated:
		action.Label = f.cat.signInRequired
		action.RequiresAuth = true
	case !e.HasSeats():
		action.Label = f.cat.noSeats
	default:
		action.Label = f.cat.register
		action.Enabled = true
	}

	return action
}

// BuildEvents renders the main event list.
func BuildEvents(events []model.Event, sess session.Session, f Formatter) List[EventCard] {
	cards := make([]EventCard, 0, len(events))
	for _, e := range events {
		card := f.eventCard(e)
		card.Actions = []Action{f.RegisterAction(e, sess)}
		cards = append(cards, card)
	}
	return newList(cards, f.cat.noEvents)
}

// BuildRegistrations renders the user's registrations, each with a cancel control.
func BuildRegistrations(regs []model.Registration, f Formatter) List[RegistrationCard] {
	cards := make([]RegistrationCard, 0, len(regs))
	for _, r := range regs {
		cards = append(cards, RegistrationCard{
			ID:           r.ID,
			EventID:      r.EventID,
			Title:        r.Event.Title,
			Date:         f.DateTime(r.Event.EventDate.Time),
			Location:     r.Event.Location,
			RegisteredAt: f.DateTime(r.RegisteredAt.Time),
			Actions: []Action{{
				Kind:     ActionCancel,
				Label:    f.cat.cancel,
				TargetID: r.ID,
				Enabled:  true,
				Confirm:  f.cat.confirmCancel,
			}},
		})
	}
	return newList(cards, f.cat.noRegistrations)
}

// BuildOwnedEvents renders the user's own events, each with edit and delete controls.
func BuildOwnedEvents(events []model.Event, f Formatter) List[EventCard] {
	cards := make([]EventCard, 0, len(events))
	for _, e := range events {
		card := f.eventCard(e)
		card.Actions = []Action{
			{Kind: ActionEdit, Label: f.cat.edit, TargetID: e.ID, Enabled: true},
			{Kind: ActionDelete, Label: f.cat.delete, TargetID: e.ID, Enabled: true, Confirm: f.cat.confirmDelete},
		}
		cards = append(cards, card)
	}
	return newList(cards, f.cat.noOwnedEvents)
}

// ConfirmCancelPrompt is the confirmation question for cancelling a registration.
func (f Formatter) ConfirmCancelPrompt() string {
	return f.cat.confirmCancel
}

// ConfirmDeletePrompt is the confirmation question for deleting an event.
func (f Formatter) ConfirmDeletePrompt() string {
	return f.cat.confirmDelete
}

// FindAction returns the action of kind on the card with id.
func FindAction(cards []EventCard, id int64, kind ActionKind) (Action, bool) {
	for _, c := range cards {
		if c.ID != id {
			continue
		}
		for _, a := range c.Actions {
			if a.Kind == kind {
				return a, true
			}
		}
	}
	return Action{}, false
}
