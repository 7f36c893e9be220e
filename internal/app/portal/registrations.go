package portal

import (
	"context"

	"innoevent/internal/app/session"
)

// RefreshRegistrations fetches the signed-in user's registrations.
func (p *Portal) RefreshRegistrations(ctx context.Context) error {
	return p.report("refresh_registrations", p.refreshRegistrations(ctx))
}

func (p *Portal) refreshRegistrations(ctx context.Context) error {
	return p.requireAuth(func(sess session.Session) error {
		regs, err := p.api.ListUserRegistrations(ctx, sess.UserID)
		if err != nil {
			return err
		}
		p.registrations = regs
		return nil
	})
}

// CancelRegistration cancels a registration after confirmation. It issues exactly one delete and
// then refreshes the registrations and the event list. A declined confirmation does nothing.
func (p *Portal) CancelRegistration(ctx context.Context, registrationID int64, confirm Confirm) error {
	return p.report("cancel_registration", p.requireAuth(func(session.Session) error {
		if confirm == nil || !confirm(p.format.ConfirmCancelPrompt()) {
			return nil
		}

		if err := p.api.CancelRegistration(ctx, registrationID); err != nil {
			return err
		}

		p.log.Info().Int64("registration_id", registrationID).Msg("Registration cancelled")
		p.notify(LevelSuccess, "Registration cancelled.")

		if err := p.refreshRegistrations(ctx); err != nil {
			return err
		}
		return p.refreshEvents(ctx, p.filter)
	}))
}
