/*
Package session holds the portal's session state: who is signed in, under which display name.

A Store is an explicit object owned by one portal; nothing here is global. The API remains the only
authority on identity and permissions, so the guard in RequireAuth is a courtesy check that
saves a round trip, not a security boundary.
*/
package session

import (
	"context"

	"innoevent/internal/app/model"
	"innoevent/internal/pkg/errs"
)

// Session is a snapshot of the signed-in state.
type Session struct {
	UserID        int64  `json:"userId,omitempty"`
	DisplayName   string `json:"displayName,omitempty"`
	Authenticated bool   `json:"authenticated"`
}

// Credentials are the login form values.
type Credentials struct {
	Email    string
	Password string
}

// Authenticator is the part of the API client the session needs.
type Authenticator interface {
	Login(ctx context.Context, email, password string) (*model.User, error)
	RegisterUser(ctx context.Context, in model.UserCreate) (*model.User, error)
}

// Store owns the current Session. It is not safe for concurrent use; the workspace
// serializes access.
type Store struct {
	auth    Authenticator
	current Session
}

// NewStore returns a signed-out Store backed by auth.
func NewStore(auth Authenticator) *Store {
	return &Store{auth: auth}
}

// Current returns a copy of the session.
func (s *Store) Current() Session {
	return s.current
}

// Login signs in. On failure the previous session is kept.
func (s *Store) Login(ctx context.Context, creds Credentials) (Session, error) {
	user, err := s.auth.Login(ctx, creds.Email, creds.Password)
	if err != nil {
		return s.current, err
	}
	s.Refresh(user)
	return s.current, nil
}

// Register creates an account and signs in as it. On failure the previous session is kept.
func (s *Store) Register(ctx context.Context, profile model.UserCreate) (Session, error) {
	user, err := s.auth.RegisterUser(ctx, profile)
	if err != nil {
		return s.current, err
	}
	s.Refresh(user)
	return s.current, nil
}

// Refresh replaces every session field from user in one assignment.
func (s *Store) Refresh(user *model.User) {
	s.current = Session{
		UserID:        user.ID,
		DisplayName:   user.Name,
		Authenticated: true,
	}
}

// Logout clears every session field.
func (s *Store) Logout() {
	s.current = Session{}
}

// RequireAuth runs action only for an authenticated session. Otherwise it returns
// ErrAuthRequired and action is not called.
func RequireAuth(sess Session, action func() error) error {
	if !sess.Authenticated {
		return errs.NewError(errs.ErrAuthRequired)
	}
	return action()
}
