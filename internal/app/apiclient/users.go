package apiclient

import (
	"context"
	"net/http"
	"net/url"
	"strings"

	"innoevent/internal/app/model"
	"innoevent/internal/pkg/errs"
)

// RegisterUser creates an account. POST /api/users
func (c *Client) RegisterUser(ctx context.Context, in model.UserCreate) (*model.User, error) {
	var user model.User
	if err := c.doJSON(ctx, http.MethodPost, "users", nil, in, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// loginResponse accepts both a bare user projection and one nested under "user".
type loginResponse struct {
	model.User
	Nested *model.User `json:"user"`
}

// Login signs in with form-encoded credentials. POST /api/auth/login
func (c *Client) Login(ctx context.Context, email, password string) (*model.User, error) {
	form := url.Values{}
	form.Set("username", email)
	form.Set("password", password)

	var out loginResponse
	err := c.do(ctx, http.MethodPost, "auth/login", nil, strings.NewReader(form.Encode()), "application/x-www-form-urlencoded", &out)
	if err != nil {
		return nil, err
	}

	user := out.User
	if out.Nested != nil {
		user = *out.Nested
	}
	if user.ID == 0 {
		return nil, errs.NewError(errs.ErrUnexpectedResponse)
	}
	return &user, nil
}

// GetUser fetches a profile. GET /api/users/{id}
func (c *Client) GetUser(ctx context.Context, id int64) (*model.User, error) {
	var user model.User
	if err := c.doJSON(ctx, http.MethodGet, idPath("users", id), nil, nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// UpdateUser applies a partial profile update. PUT /api/users/{id}
func (c *Client) UpdateUser(ctx context.Context, id int64, in model.UserUpdate) (*model.User, error) {
	var user model.User
	if err := c.doJSON(ctx, http.MethodPut, idPath("users", id), nil, in, &user); err != nil {
		return nil, err
	}
	return &user, nil
}
