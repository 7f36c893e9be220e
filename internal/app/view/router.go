/*
Package view implements the portal's page state machine.

Exactly one top-level page is visible at a time. Entering a page hides the others, shows the target
and runs the page's loader (for example, entering the main page refreshes the event list). The
profile page has four tabs, each with its own loader. Transitions are plain method calls; there is
no history.
*/
package view

import (
	"context"

	"innoevent/internal/pkg/errs"
)

// Page names a top-level page.
type Page string

const (
	PageLogin       Page = "login"
	PageMain        Page = "main"
	PageProfile     Page = "profile"
	PageCreateEvent Page = "create-event"
	PageEditEvent   Page = "edit-event"
)

// Pages lists every page in display order.
var Pages = []Page{PageLogin, PageMain, PageProfile, PageCreateEvent, PageEditEvent}

// Tab names a profile sub-tab.
type Tab string

const (
	TabEditProfile   Tab = "edit-profile"
	TabRegistrations Tab = "my-registrations"
	TabMyEvents      Tab = "my-events"
	TabCalendar      Tab = "calendar"
)

// Tabs lists every profile tab in display order.
var Tabs = []Tab{TabEditProfile, TabRegistrations, TabMyEvents, TabCalendar}

// Header is the header variant shown above the pages.
type Header string

const (
	HeaderGuest         Header = "guest"
	HeaderAuthenticated Header = "authenticated"
)

// ParsePage validates a page name.
func ParsePage(s string) (Page, error) {
	for _, p := range Pages {
		if string(p) == s {
			return p, nil
		}
	}
	return "", errs.NewError(errs.ErrPageUnknown, s)
}

// ParseTab validates a tab name.
func ParseTab(s string) (Tab, error) {
	for _, t := range Tabs {
		if string(t) == s {
			return t, nil
		}
	}
	return "", errs.NewError(errs.ErrPageUnknown, s)
}

// Loader is the side effect run after a page or tab becomes visible.
type Loader func(ctx context.Context) error

// Router tracks the visible page, the selected profile tab and the header variant.
type Router struct {
	current Page
	tab     Tab
	header  Header

	authenticated func() bool
	pageLoaders   map[Page]Loader
	tabLoaders    map[Tab]Loader
}

// NewRouter starts on the login page with the guest header. authenticated is consulted
// whenever the header is recomputed.
func NewRouter(authenticated func() bool) *Router {
	return &Router{
		current:       PageLogin,
		tab:           TabEditProfile,
		header:        HeaderGuest,
		authenticated: authenticated,
		pageLoaders:   make(map[Page]Loader),
		tabLoaders:    make(map[Tab]Loader),
	}
}

// OnPage registers the loader run each time page is shown.
func (r *Router) OnPage(page Page, loader Loader) {
	r.pageLoaders[page] = loader
}

// OnTab registers the loader run each time tab is shown.
func (r *Router) OnTab(tab Tab, loader Loader) {
	r.tabLoaders[tab] = loader
}

// Show makes page the only visible page and runs its loader. The page stays visible
// even when the loader fails; the loader's error is returned.
func (r *Router) Show(ctx context.Context, page Page) error {
	r.current = page

	if page == PageMain || page == PageLogin {
		r.recomputeHeader()
	}

	if loader, ok := r.pageLoaders[page]; ok {
		return loader(ctx)
	}
	return nil
}

// ShowTab shows the profile page with tab selected and runs the tab loader.
func (r *Router) ShowTab(ctx context.Context, tab Tab) error {
	r.current = PageProfile
	r.tab = tab

	if loader, ok := r.tabLoaders[tab]; ok {
		return loader(ctx)
	}
	return nil
}

func (r *Router) recomputeHeader() {
	if r.authenticated != nil && r.authenticated() {
		r.header = HeaderAuthenticated
		return
	}
	r.header = HeaderGuest
}

// Current returns the visible page.
func (r *Router) Current() Page {
	return r.current
}

// Tab returns the selected profile tab.
func (r *Router) Tab() Tab {
	return r.tab
}

// Header returns the header variant.
func (r *Router) Header() Header {
	return r.header
}

// Visibility reports, for every page, whether it is visible.
func (r *Router) Visibility() map[Page]bool {
	visible := make(map[Page]bool, len(Pages))
	for _, p := range Pages {
		visible[p] = p == r.current
	}
	return visible
}
