package apiclient

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"innoevent/internal/app/model"
)

type registrationCreate struct {
	EventID int64 `json:"event_id"`
}

// RegisterForEvent registers userID for eventID. POST /api/registrations?user_id=
func (c *Client) RegisterForEvent(ctx context.Context, userID, eventID int64) (*model.Registration, error) {
	query := url.Values{"user_id": {strconv.FormatInt(userID, 10)}}

	var reg model.Registration
	if err := c.doJSON(ctx, http.MethodPost, "registrations", query, registrationCreate{EventID: eventID}, &reg); err != nil {
		return nil, err
	}
	return &reg, nil
}

// ListUserRegistrations returns userID's registrations with events expanded.
// GET /api/registrations/user/{uid}
func (c *Client) ListUserRegistrations(ctx context.Context, userID int64) ([]model.Registration, error) {
	regs := []model.Registration{}
	if err := c.doJSON(ctx, http.MethodGet, idPath("registrations/user", userID), nil, nil, &regs); err != nil {
		return nil, err
	}
	return regs, nil
}

// CancelRegistration deletes a registration. DELETE /api/registrations/{id}
func (c *Client) CancelRegistration(ctx context.Context, id int64) error {
	return c.doJSON(ctx, http.MethodDelete, idPath("registrations", id), nil, nil, nil)
}
