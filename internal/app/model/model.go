/*
Package model defines the wire projections of InnoEvent API resources as the portal sees them.

The portal owns none of this data; every value here is a transient copy of server state.
*/
package model

import "strings"

// EventTypes is the fixed set of event categories offered by the API.
var EventTypes = []string{"Meetup", "Conference", "Concert", "Workshop", "Webinar"}

// IsEventType reports whether t is one of EventTypes.
func IsEventType(t string) bool {
	for _, et := range EventTypes {
		if et == t {
			return true
		}
	}
	return false
}

// User is the API's user projection.
type User struct {
	ID        int64   `json:"id"`
	Surname   string  `json:"surname"`
	Name      string  `json:"name"`
	Phone     string  `json:"phone"`
	Email     string  `json:"email"`
	CreatedAt Instant `json:"created_at"`
}

// UserCreate is the payload for POST /api/users.
type UserCreate struct {
	Surname  string  `json:"surname"`
	Name     string  `json:"name"`
	Phone    *string `json:"phone"`
	Email    *string `json:"email"`
	Password string  `json:"password"`
}

// UserUpdate is the payload for PUT /api/users/{id}. Nil fields are left unchanged by the API.
type UserUpdate struct {
	Surname  *string `json:"surname,omitempty"`
	Name     *string `json:"name,omitempty"`
	Phone    *string `json:"phone,omitempty"`
	Email    *string `json:"email,omitempty"`
	Password *string `json:"password,omitempty"`
}

// IsEmpty reports whether the update changes nothing.
func (u UserUpdate) IsEmpty() bool {
	return u.Surname == nil && u.Name == nil && u.Phone == nil && u.Email == nil && u.Password == nil
}

// Organizer is the organizer summary embedded in event responses.
type Organizer struct {
	Name    string `json:"name"`
	Surname string `json:"surname"`
}

// FullName joins name and surname, skipping empty parts.
func (o Organizer) FullName() string {
	return strings.TrimSpace(o.Name + " " + o.Surname)
}

// Event is the API's event projection.
type Event struct {
	ID             int64      `json:"id"`
	Title          string     `json:"title"`
	Description    string     `json:"description"`
	EventType      string     `json:"event_type"`
	EventDate      Instant    `json:"event_date"`
	Location       string     `json:"location"`
	TotalSeats     int        `json:"total_seats"`
	AvailableSeats int        `json:"available_seats"`
	OrganizerID    int64      `json:"organizer_id"`
	Organizer      *Organizer `json:"organizer,omitempty"`
	CreatedAt      Instant    `json:"created_at"`
}

// HasSeats reports whether the event still offers registration.
func (e Event) HasSeats() bool {
	return e.AvailableSeats > 0
}

// OrganizedBy reports whether userID organizes the event.
func (e Event) OrganizedBy(userID int64) bool {
	return userID != 0 && e.OrganizerID == userID
}

// EventInput is the payload for creating an event and for full-replace updates.
type EventInput struct {
	Title       string  `json:"title"`
	Description string  `json:"description"`
	EventType   string  `json:"event_type"`
	EventDate   Instant `json:"event_date"`
	Location    string  `json:"location"`
	TotalSeats  int     `json:"total_seats"`
}

// Registration is the API's registration projection, with its event expanded.
type Registration struct {
	ID           int64   `json:"id"`
	UserID       int64   `json:"user_id"`
	EventID      int64   `json:"event_id"`
	RegisteredAt Instant `json:"registered_at"`
	Event        Event   `json:"event"`
}
