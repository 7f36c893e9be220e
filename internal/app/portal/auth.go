package portal

import (
	"context"

	"innoevent/internal/app/forms"
	"innoevent/internal/app/view"
)

// SubmitRegistration creates an account, signs in as it and opens the main page.
func (p *Portal) SubmitRegistration(ctx context.Context, form forms.RegistrationForm) error {
	return p.report("register", p.submitRegistration(ctx, form))
}

func (p *Portal) submitRegistration(ctx context.Context, form forms.RegistrationForm) error {
	profile, err := form.Validate()
	if err != nil {
		return err
	}

	previous := p.session.Current().UserID
	sess, err := p.session.Register(ctx, profile)
	if err != nil {
		return err
	}
	if sess.UserID != previous {
		p.resetUserViews()
	}

	p.log.Info().Int64("user_id", sess.UserID).Msg("User registered")
	p.notify(LevelSuccess, "Registration successful. Welcome, "+sess.DisplayName+"!")
	return p.router.Show(ctx, view.PageMain)
}

// SubmitLogin signs in and opens the main page.
func (p *Portal) SubmitLogin(ctx context.Context, form forms.LoginForm) error {
	return p.report("login", p.submitLogin(ctx, form))
}

func (p *Portal) submitLogin(ctx context.Context, form forms.LoginForm) error {
	creds, err := form.Validate()
	if err != nil {
		return err
	}

	previous := p.session.Current().UserID
	sess, err := p.session.Login(ctx, creds)
	if err != nil {
		return err
	}
	if sess.UserID != previous {
		p.resetUserViews()
	}

	p.log.Info().Int64("user_id", sess.UserID).Msg("User signed in")
	p.notify(LevelSuccess, "Signed in as "+sess.DisplayName+".")
	return p.router.Show(ctx, view.PageMain)
}

// Logout clears the session and every per-user view, then shows the login page whatever page was
// visible before.
func (p *Portal) Logout(ctx context.Context) error {
	p.session.Logout()
	p.resetUserViews()

	p.notify(LevelInfo, "You have been signed out.")
	return p.report("logout", p.router.Show(ctx, view.PageLogin))
}

// resetUserViews drops everything fetched for the previous user.
func (p *Portal) resetUserViews() {
	p.registrations = nil
	p.owned = nil
	p.profile = nil
	p.editing = nil
	p.feed.Destroy()
}
