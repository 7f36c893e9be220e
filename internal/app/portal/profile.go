package portal

import (
	"context"

	"innoevent/internal/app/calendar"
	"innoevent/internal/app/forms"
	"innoevent/internal/app/session"
)

// LoadProfile fetches the signed-in user's profile into the profile form.
func (p *Portal) LoadProfile(ctx context.Context) error {
	return p.report("load_profile", p.loadProfile(ctx))
}

func (p *Portal) loadProfile(ctx context.Context) error {
	return p.requireAuth(func(sess session.Session) error {
		user, err := p.api.GetUser(ctx, sess.UserID)
		if err != nil {
			return err
		}
		form := forms.ProfileFormFrom(*user)
		p.profile = &form
		return nil
	})
}

// UpdateProfile sends the non-blank profile fields, refreshes the display name and reloads the
// profile form.
func (p *Portal) UpdateProfile(ctx context.Context, form forms.ProfileForm) error {
	return p.report("update_profile", p.requireAuth(func(sess session.Session) error {
		update, err := form.Validate()
		if err != nil {
			return err
		}

		user, err := p.api.UpdateUser(ctx, sess.UserID, update)
		if err != nil {
			return err
		}

		p.session.Refresh(user)
		p.notify(LevelSuccess, "Profile updated.")
		return p.loadProfile(ctx)
	}))
}

// RefreshCalendar re-aggregates the calendar for the signed-in user.
func (p *Portal) RefreshCalendar(ctx context.Context) error {
	return p.report("refresh_calendar", p.refreshCalendar(ctx))
}

func (p *Portal) refreshCalendar(ctx context.Context) error {
	return p.requireAuth(func(sess session.Session) error {
		_, err := p.calendar.Refresh(ctx, sess.UserID)
		return err
	})
}

// CalendarEntries returns the entries of the last calendar render.
func (p *Portal) CalendarEntries() []calendar.Entry {
	return p.feed.Entries()
}
