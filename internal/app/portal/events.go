package portal

import (
	"context"

	"innoevent/internal/app/forms"
	"innoevent/internal/app/model"
	"innoevent/internal/app/session"
	"innoevent/internal/app/view"
	"innoevent/internal/pkg/errs"
)

// RefreshEvents fetches all events, optionally narrowed to one event type. An empty filter
// lists every type. The filter is kept for later refreshes.
func (p *Portal) RefreshEvents(ctx context.Context, filter string) error {
	return p.report("refresh_events", p.refreshEvents(ctx, filter))
}

func (p *Portal) refreshEvents(ctx context.Context, filter string) error {
	if filter != "" && !model.IsEventType(filter) {
		return errs.NewError(errs.ErrInvalidEventType, filter)
	}

	events, err := p.api.ListEvents(ctx, filter)
	if err != nil {
		return err
	}

	p.filter = filter
	p.events = events
	return nil
}

// RefreshOwnedEvents fetches the events the signed-in user organizes.
func (p *Portal) RefreshOwnedEvents(ctx context.Context) error {
	return p.report("refresh_owned_events", p.refreshOwnedEvents(ctx))
}

func (p *Portal) refreshOwnedEvents(ctx context.Context) error {
	return p.requireAuth(func(sess session.Session) error {
		owned, err := p.api.ListUserEvents(ctx, sess.UserID)
		if err != nil {
			return err
		}
		p.owned = owned
		return nil
	})
}

// RegisterForEvent signs the user up for an event and refreshes the event list. An event whose
// card shows no free seats is refused without contacting the API.
func (p *Portal) RegisterForEvent(ctx context.Context, eventID int64) error {
	return p.report("register_for_event", p.requireAuth(func(sess session.Session) error {
		for _, e := range p.events {
			if e.ID == eventID && !e.HasSeats() {
				return errs.NewError(errs.ErrNoSeatsAvailable)
			}
		}

		reg, err := p.api.RegisterForEvent(ctx, sess.UserID, eventID)
		if err != nil {
			return err
		}

		p.log.Info().Int64("user_id", sess.UserID).Int64("event_id", eventID).Int64("registration_id", reg.ID).Msg("Registered for event")
		p.notify(LevelSuccess, "You are registered for the event.")
		return p.refreshEvents(ctx, p.filter)
	}))
}

// CreateEvent publishes a new event organized by the signed-in user and returns to the main page.
func (p *Portal) CreateEvent(ctx context.Context, form forms.EventForm) error {
	return p.report("create_event", p.requireAuth(func(sess session.Session) error {
		input, err := form.Validate(p.rules)
		if err != nil {
			return err
		}

		created, err := p.api.CreateEvent(ctx, sess.UserID, input)
		if err != nil {
			return err
		}

		p.log.Info().Int64("event_id", created.ID).Int64("organizer_id", sess.UserID).Msg("Event created")
		p.notify(LevelSuccess, "Event created.")
		return p.router.Show(ctx, view.PageMain)
	}))
}

// BeginEdit loads one of the user's events into the edit form and shows the edit page.
func (p *Portal) BeginEdit(ctx context.Context, eventID int64) error {
	return p.report("begin_edit", p.requireAuth(func(sess session.Session) error {
		event, err := p.api.GetEvent(ctx, eventID)
		if err != nil {
			return err
		}
		if !event.OrganizedBy(sess.UserID) {
			return errs.NewError(errs.ErrNotOrganizer)
		}

		p.editing = &EditState{
			EventID: event.ID,
			Form:    forms.EventFormFrom(*event, p.rules.Location),
		}
		return p.router.Show(ctx, view.PageEditEvent)
	}))
}

// SaveEdit replaces the event being edited. On success it clears the edit state, waits for the
// event list to refresh and then shows the my-events tab, whose loader refreshes owned events.
// The tab is shown even when the refresh fails, since the edit is already saved. If the update
// itself fails the edit page keeps the submitted values.
func (p *Portal) SaveEdit(ctx context.Context, form forms.EventForm) error {
	return p.report("save_edit", p.requireAuth(func(sess session.Session) error {
		if p.editing == nil {
			return errs.NewError(errs.ErrNoEditInProgress)
		}
		p.editing.Form = form

		input, err := form.Validate(p.rules)
		if err != nil {
			return err
		}

		eventID := p.editing.EventID
		if _, err := p.api.UpdateEvent(ctx, eventID, input); err != nil {
			return err
		}

		p.editing = nil
		p.log.Info().Int64("event_id", eventID).Msg("Event updated")
		p.notify(LevelSuccess, "Event updated.")

		refreshErr := p.refreshEvents(ctx, p.filter)
		tabErr := p.router.ShowTab(ctx, view.TabMyEvents)
		if refreshErr != nil {
			return refreshErr
		}
		return tabErr
	}))
}

// CancelEdit drops the edit state and returns to the my-events tab.
func (p *Portal) CancelEdit(ctx context.Context) error {
	return p.report("cancel_edit", p.requireAuth(func(session.Session) error {
		p.editing = nil
		return p.router.ShowTab(ctx, view.TabMyEvents)
	}))
}

// DeleteEvent deletes one of the user's events after confirmation, then refreshes the owned
// events and the event list. A declined confirmation does nothing.
func (p *Portal) DeleteEvent(ctx context.Context, eventID int64, confirm Confirm) error {
	return p.report("delete_event", p.requireAuth(func(session.Session) error {
		if confirm == nil || !confirm(p.format.ConfirmDeletePrompt()) {
			return nil
		}

		if err := p.api.DeleteEvent(ctx, eventID); err != nil {
			return err
		}
		if p.editing != nil && p.editing.EventID == eventID {
			p.editing = nil
		}

		p.log.Info().Int64("event_id", eventID).Msg("Event deleted")
		p.notify(LevelSuccess, "Event deleted.")

		if err := p.refreshOwnedEvents(ctx); err != nil {
			return err
		}
		return p.refreshEvents(ctx, p.filter)
	}))
}
