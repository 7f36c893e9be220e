package portal

import (
	"innoevent/internal/app/calendar"
	"innoevent/internal/app/forms"
	"innoevent/internal/app/lists"
	"innoevent/internal/app/model"
	"innoevent/internal/app/session"
	"innoevent/internal/app/view"
)

// Snapshot is everything a browser shell needs to draw the current state.
type Snapshot struct {
	Page       view.Page          `json:"page"`
	Tab        view.Tab           `json:"tab"`
	Header     view.Header        `json:"header"`
	Visible    map[view.Page]bool `json:"visible"`
	Session    session.Session    `json:"session"`
	EventTypes []string           `json:"eventTypes"`
	Filter     string             `json:"filter,omitempty"`

	Events        lists.List[lists.EventCard]        `json:"events"`
	Registrations lists.List[lists.RegistrationCard] `json:"registrations"`
	OwnedEvents   lists.List[lists.EventCard]        `json:"ownedEvents"`
	Calendar      []calendar.Entry                   `json:"calendar"`

	Profile *forms.ProfileForm `json:"profile,omitempty"`
	Editing *EditState         `json:"editing,omitempty"`
}

// Snapshot builds the view models from the cached data. It performs no I/O.
func (p *Portal) Snapshot() Snapshot {
	sess := p.session.Current()

	snap := Snapshot{
		Page:          p.router.Current(),
		Tab:           p.router.Tab(),
		Header:        p.router.Header(),
		Visible:       p.router.Visibility(),
		Session:       sess,
		EventTypes:    append([]string(nil), model.EventTypes...),
		Filter:        p.filter,
		Events:        lists.BuildEvents(p.events, sess, p.format),
		Registrations: lists.BuildRegistrations(p.registrations, p.format),
		OwnedEvents:   lists.BuildOwnedEvents(p.owned, p.format),
		Calendar:      p.feed.Entries(),
	}

	if p.profile != nil {
		profile := *p.profile
		snap.Profile = &profile
	}
	if p.editing != nil {
		editing := *p.editing
		snap.Editing = &editing
	}
	return snap
}
