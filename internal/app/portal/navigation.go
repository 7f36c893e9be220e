package portal

import (
	"context"

	"innoevent/internal/app/session"
	"innoevent/internal/app/view"
	"innoevent/internal/pkg/errs"
)

// Navigate shows page. Pages other than login and main need a signed-in user; a guest is sent
// to the login page instead. The edit page is only reachable while an edit is in progress.
func (p *Portal) Navigate(ctx context.Context, page view.Page) error {
	return p.report("navigate", p.navigate(ctx, page))
}

func (p *Portal) navigate(ctx context.Context, page view.Page) error {
	switch page {
	case view.PageLogin, view.PageMain:
		return p.router.Show(ctx, page)
	}

	if !p.session.Current().Authenticated {
		if err := p.router.Show(ctx, view.PageLogin); err != nil {
			return err
		}
		return errs.NewError(errs.ErrAuthRequired)
	}

	switch page {
	case view.PageProfile:
		return p.router.ShowTab(ctx, p.router.Tab())
	case view.PageEditEvent:
		if p.editing == nil {
			return errs.NewError(errs.ErrNoEditInProgress)
		}
	}
	return p.router.Show(ctx, page)
}

// ShowProfileTab opens the profile page on tab and runs the tab's loader.
func (p *Portal) ShowProfileTab(ctx context.Context, tab view.Tab) error {
	return p.report("show_tab", p.requireAuth(func(session.Session) error {
		return p.router.ShowTab(ctx, tab)
	}))
}
