package view

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"innoevent/internal/pkg/errs"
)

func visibleCount(r *Router) int {
	n := 0
	for _, v := range r.Visibility() {
		if v {
			n++
		}
	}
	return n
}

func TestExactlyOnePageVisible(t *testing.T) {
	r := NewRouter(func() bool { return false })
	assert.Equal(t, PageLogin, r.Current())
	assert.Equal(t, 1, visibleCount(r))

	for _, p := range Pages {
		require.NoError(t, r.Show(context.Background(), p))
		assert.Equal(t, 1, visibleCount(r))
		assert.True(t, r.Visibility()[p])
	}

	require.NoError(t, r.ShowTab(context.Background(), TabCalendar))
	assert.Equal(t, PageProfile, r.Current())
	assert.Equal(t, TabCalendar, r.Tab())
	assert.Equal(t, 1, visibleCount(r))
}

func TestLoadersRunOnEntry(t *testing.T) {
	r := NewRouter(nil)
	var calls []string
	r.OnPage(PageMain, func(ctx context.Context) error {
		calls = append(calls, "events")
		return nil
	})
	r.OnTab(TabRegistrations, func(ctx context.Context) error {
		calls = append(calls, "registrations")
		return nil
	})

	ctx := context.Background()
	require.NoError(t, r.Show(ctx, PageMain))
	require.NoError(t, r.Show(ctx, PageCreateEvent))
	require.NoError(t, r.ShowTab(ctx, TabRegistrations))
	require.NoError(t, r.Show(ctx, PageMain))

	assert.Equal(t, []string{"events", "registrations", "events"}, calls)
}

func TestLoaderFailureKeepsPageVisible(t *testing.T) {
	r := NewRouter(nil)
	boom := errors.New("boom")
	r.OnPage(PageMain, func(ctx context.Context) error { return boom })

	err := r.Show(context.Background(), PageMain)
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, PageMain, r.Current())
}

func TestHeaderFollowsSessionOnMain(t *testing.T) {
	signedIn := false
	r := NewRouter(func() bool { return signedIn })
	ctx := context.Background()

	signedIn = true
	require.NoError(t, r.Show(ctx, PageCreateEvent))
	assert.Equal(t, HeaderGuest, r.Header())

	require.NoError(t, r.Show(ctx, PageMain))
	assert.Equal(t, HeaderAuthenticated, r.Header())

	signedIn = false
	require.NoError(t, r.Show(ctx, PageLogin))
	assert.Equal(t, HeaderGuest, r.Header())
}

func TestParsePageAndTab(t *testing.T) {
	p, err := ParsePage("create-event")
	require.NoError(t, err)
	assert.Equal(t, PageCreateEvent, p)

	_, err = ParsePage("admin")
	assert.True(t, errs.Is(err, errs.ErrPageUnknown))

	tab, err := ParseTab("calendar")
	require.NoError(t, err)
	assert.Equal(t, TabCalendar, tab)

	_, err = ParseTab("billing")
	assert.Error(t, err)
}
