package apiclient

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"innoevent/internal/app/model"
)

// ListEvents returns all events, optionally narrowed to one event type.
// GET /api/events[?event_type=]
func (c *Client) ListEvents(ctx context.Context, eventType string) ([]model.Event, error) {
	var query url.Values
	if eventType != "" {
		query = url.Values{"event_type": {eventType}}
	}

	events := []model.Event{}
	if err := c.doJSON(ctx, http.MethodGet, "events", query, nil, &events); err != nil {
		return nil, err
	}
	return events, nil
}

// GetEvent fetches one event. GET /api/events/{id}
func (c *Client) GetEvent(ctx context.Context, id int64) (*model.Event, error) {
	var event model.Event
	if err := c.doJSON(ctx, http.MethodGet, idPath("events", id), nil, nil, &event); err != nil {
		return nil, err
	}
	return &event, nil
}

// ListUserEvents returns the events organized by userID. GET /api/events/user/{uid}
func (c *Client) ListUserEvents(ctx context.Context, userID int64) ([]model.Event, error) {
	events := []model.Event{}
	if err := c.doJSON(ctx, http.MethodGet, idPath("events/user", userID), nil, nil, &events); err != nil {
		return nil, err
	}
	return events, nil
}

// CreateEvent creates an event organized by organizerID. POST /api/events?organizer_id=
func (c *Client) CreateEvent(ctx context.Context, organizerID int64, in model.EventInput) (*model.Event, error) {
	query := url.Values{"organizer_id": {strconv.FormatInt(organizerID, 10)}}

	var event model.Event
	if err := c.doJSON(ctx, http.MethodPost, "events", query, in, &event); err != nil {
		return nil, err
	}
	return &event, nil
}

// UpdateEvent replaces every editable field of an event. PUT /api/events/{id}
func (c *Client) UpdateEvent(ctx context.Context, id int64, in model.EventInput) (*model.Event, error) {
	var event model.Event
	if err := c.doJSON(ctx, http.MethodPut, idPath("events", id), nil, in, &event); err != nil {
		return nil, err
	}
	return &event, nil
}

// DeleteEvent removes an event. DELETE /api/events/{id}
func (c *Client) DeleteEvent(ctx context.Context, id int64) error {
	return c.doJSON(ctx, http.MethodDelete, idPath("events", id), nil, nil, nil)
}
