/*
Package portal composes the session, the view router, the forms, the lists and the calendar into
one per-browser controller.

Every operation follows the same shape: validate locally, call the API, update the session or the
cached collections, switch the page and report a notice. A failure is reported as an error notice
and returned; the visible page and cached data stay as they were.

A Portal is not safe for concurrent use. The workspace that owns it serializes calls.
*/
package portal

import (
	"context"

	"github.com/rs/zerolog"

	"innoevent/internal/app/calendar"
	"innoevent/internal/app/forms"
	"innoevent/internal/app/lists"
	"innoevent/internal/app/model"
	"innoevent/internal/app/session"
	"innoevent/internal/app/view"
	"innoevent/internal/pkg/errs"
	"innoevent/internal/pkg/logx"
)

// API is the part of the InnoEvent client the portal drives.
type API interface {
	session.Authenticator
	calendar.Source

	GetUser(ctx context.Context, id int64) (*model.User, error)
	UpdateUser(ctx context.Context, id int64, in model.UserUpdate) (*model.User, error)

	ListEvents(ctx context.Context, eventType string) ([]model.Event, error)
	GetEvent(ctx context.Context, id int64) (*model.Event, error)
	CreateEvent(ctx context.Context, organizerID int64, in model.EventInput) (*model.Event, error)
	UpdateEvent(ctx context.Context, id int64, in model.EventInput) (*model.Event, error)
	DeleteEvent(ctx context.Context, id int64) error

	RegisterForEvent(ctx context.Context, userID, eventID int64) (*model.Registration, error)
	CancelRegistration(ctx context.Context, id int64) error
}

// Confirm asks the user a yes/no question. Returning false aborts the operation.
type Confirm func(prompt string) bool

// Options tune a Portal. A nil Formatter means English dates in the rules' location;
// a nil Palette means calendar.DefaultPalette.
type Options struct {
	Rules     forms.Rules
	Formatter *lists.Formatter
	Palette   calendar.Palette
}

// EditState is the event currently open in the edit form.
type EditState struct {
	EventID int64           `json:"eventId"`
	Form    forms.EventForm `json:"form"`
}

// Portal is the session and view-state controller of one browser.
type Portal struct {
	api      API
	notifier Notifier
	rules    forms.Rules
	format   lists.Formatter
	log      zerolog.Logger

	session  *session.Store
	router   *view.Router
	feed     *calendar.Feed
	calendar *calendar.Aggregator

	filter        string
	events        []model.Event
	registrations []model.Registration
	owned         []model.Event
	profile       *forms.ProfileForm
	editing       *EditState
}

// New returns a signed-out Portal on the login page.
func New(api API, notifier Notifier, opts Options) *Portal {
	rules := opts.Rules
	format := lists.NewFormatter("", rules.Location)
	if opts.Formatter != nil {
		format = *opts.Formatter
	}

	p := &Portal{
		api:      api,
		notifier: notifier,
		rules:    rules,
		format:   format,
		log:      logx.Component("portal"),
		session:  session.NewStore(api),
		feed:     calendar.NewFeed(),
	}
	p.calendar = calendar.NewAggregator(api, p.feed, opts.Palette)
	p.router = view.NewRouter(func() bool { return p.session.Current().Authenticated })

	p.router.OnPage(view.PageMain, func(ctx context.Context) error {
		return p.refreshEvents(ctx, p.filter)
	})
	p.router.OnTab(view.TabEditProfile, p.loadProfile)
	p.router.OnTab(view.TabRegistrations, p.refreshRegistrations)
	p.router.OnTab(view.TabMyEvents, p.refreshOwnedEvents)
	p.router.OnTab(view.TabCalendar, p.refreshCalendar)

	return p
}

// Session returns the current session.
func (p *Portal) Session() session.Session {
	return p.session.Current()
}

func (p *Portal) notify(level Level, msg string) {
	if p.notifier != nil {
		p.notifier.Notify(Notice{Level: level, Message: msg})
	}
}

// report turns a failure into an error notice and returns it unchanged.
func (p *Portal) report(op string, err error) error {
	if err == nil {
		return nil
	}

	customErr := errs.From(err)
	event := p.log.Debug()
	if kind := customErr.Kind(); kind == errs.KindTransport || kind == errs.KindUnknown {
		event = p.log.Warn()
	}
	event.Err(err).Str("op", op).Int("code", customErr.Code).Msg("Portal operation failed")

	if p.notifier != nil {
		p.notifier.Notify(errorNotice(err))
	}
	return err
}

func (p *Portal) requireAuth(action func(sess session.Session) error) error {
	sess := p.session.Current()
	return session.RequireAuth(sess, func() error { return action(sess) })
}
