package workspace

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"innoevent/internal/app/forms"
	"innoevent/internal/app/model"
	"innoevent/internal/app/portal"
	"innoevent/internal/app/view"
)

type stubAPI struct {
	mu    sync.Mutex
	lists int
}

func (s *stubAPI) Login(context.Context, string, string) (*model.User, error) {
	return &model.User{ID: 1, Name: "Ann"}, nil
}
func (s *stubAPI) RegisterUser(context.Context, model.UserCreate) (*model.User, error) {
	return &model.User{ID: 1, Name: "Ann"}, nil
}
func (s *stubAPI) GetUser(context.Context, int64) (*model.User, error) {
	return &model.User{ID: 1, Name: "Ann"}, nil
}
func (s *stubAPI) UpdateUser(context.Context, int64, model.UserUpdate) (*model.User, error) {
	return &model.User{ID: 1, Name: "Ann"}, nil
}
func (s *stubAPI) ListEvents(context.Context, string) ([]model.Event, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lists++
	return nil, nil
}
func (s *stubAPI) GetEvent(context.Context, int64) (*model.Event, error) { return &model.Event{}, nil }
func (s *stubAPI) ListUserEvents(context.Context, int64) ([]model.Event, error) {
	return nil, nil
}
func (s *stubAPI) CreateEvent(context.Context, int64, model.EventInput) (*model.Event, error) {
	return &model.Event{}, nil
}
func (s *stubAPI) UpdateEvent(context.Context, int64, model.EventInput) (*model.Event, error) {
	return &model.Event{}, nil
}
func (s *stubAPI) DeleteEvent(context.Context, int64) error { return nil }
func (s *stubAPI) RegisterForEvent(context.Context, int64, int64) (*model.Registration, error) {
	return &model.Registration{}, nil
}
func (s *stubAPI) ListUserRegistrations(context.Context, int64) ([]model.Registration, error) {
	return nil, nil
}
func (s *stubAPI) CancelRegistration(context.Context, int64) error { return nil }

func newTestManager(t *testing.T, idle time.Duration) (*Manager, *stubAPI) {
	t.Helper()
	api := &stubAPI{}
	m := NewManager(func(n portal.Notifier) *portal.Portal {
		return portal.New(api, n, portal.Options{Rules: forms.DefaultRules()})
	}, idle)
	t.Cleanup(m.Shutdown)
	return m, api
}

func TestGetFindsOnlyLiveWorkspaces(t *testing.T) {
	m, _ := newTestManager(t, time.Minute)

	ws := m.Create()
	require.NotEmpty(t, ws.ID)

	assert.Same(t, ws, m.Get(ws.ID))
	assert.Nil(t, m.Get("unknown"))
	assert.Nil(t, m.Get(""))

	other := m.Create()
	assert.NotEqual(t, ws.ID, other.ID)
	assert.Equal(t, 2, m.Len())
}

func TestDoReturnsViewAndDrainsNotices(t *testing.T) {
	m, _ := newTestManager(t, time.Minute)
	ws := m.Create()

	result, err := ws.Do(func(p *portal.Portal) error {
		return p.SubmitLogin(context.Background(), forms.LoginForm{Email: "ann@example.com", Password: "pw"})
	})
	require.NoError(t, err)
	assert.Equal(t, view.PageMain, result.View.Page)
	assert.Len(t, result.Notices, 1)

	result, err = ws.Do(func(*portal.Portal) error { return nil })
	require.NoError(t, err)
	assert.Empty(t, result.Notices)
	assert.True(t, result.View.Session.Authenticated)
}

func TestWorkspacesAreIsolated(t *testing.T) {
	m, _ := newTestManager(t, time.Minute)
	a, b := m.Create(), m.Create()

	_, err := a.Do(func(p *portal.Portal) error {
		return p.SubmitLogin(context.Background(), forms.LoginForm{Email: "ann@example.com", Password: "pw"})
	})
	require.NoError(t, err)

	result, err := b.Do(func(*portal.Portal) error { return nil })
	require.NoError(t, err)
	assert.False(t, result.View.Session.Authenticated)
	assert.Equal(t, view.PageLogin, result.View.Page)
}

func TestDoSerializesOperations(t *testing.T) {
	m, api := newTestManager(t, time.Minute)
	ws := m.Create()

	var wg sync.WaitGroup
	for range 20 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = ws.Do(func(p *portal.Portal) error {
				return p.RefreshEvents(context.Background(), "")
			})
		}()
	}
	wg.Wait()

	assert.Equal(t, 20, api.lists)
}

func TestIdleWorkspaceExpires(t *testing.T) {
	m, _ := newTestManager(t, 30*time.Millisecond)
	ws := m.Create()

	assert.Eventually(t, func() bool {
		return m.Get(ws.ID) == nil
	}, time.Second, 10*time.Millisecond)
}

func TestShutdownDropsWorkspaces(t *testing.T) {
	api := &stubAPI{}
	m := NewManager(func(n portal.Notifier) *portal.Portal {
		return portal.New(api, n, portal.Options{})
	}, time.Minute)
	m.Create()
	m.Create()

	m.Shutdown()
	assert.Zero(t, m.Len())
}
