/*
Package calendar merges the events a user organizes and the events they registered for into one
tagged entry list and hands it to a rendering widget.
*/
package calendar

import (
	"context"
	"fmt"
	"time"

	"innoevent/internal/app/model"
)

// Category tells the two kinds of calendar entry apart.
type Category string

const (
	CategoryOrganized  Category = "organized"
	CategoryRegistered Category = "registered"
)

// Entry is one event placed on the calendar.
type Entry struct {
	ID        string    `json:"id"`
	EventID   int64     `json:"eventId"`
	Title     string    `json:"title"`
	Start     time.Time `json:"start"`
	Location  string    `json:"location,omitempty"`
	Category  Category  `json:"category"`
	Color     string    `json:"color"`
	ClassName string    `json:"className"`
}

// Style is the color and CSS class of one category.
type Style struct {
	Color     string
	ClassName string
}

// Palette maps each category to its style.
type Palette map[Category]Style

// DefaultPalette is red for organized events and blue for registrations.
var DefaultPalette = Palette{
	CategoryOrganized:  {Color: "#FF6B6B", ClassName: "event-organized"},
	CategoryRegistered: {Color: "#4A90E2", ClassName: "event-registered"},
}

func (p Palette) entry(category Category, e model.Event) Entry {
	style := p[category]
	return Entry{
		ID:        fmt.Sprintf("%s-%d", category, e.ID),
		EventID:   e.ID,
		Title:     e.Title,
		Start:     e.EventDate.Time,
		Location:  e.Location,
		Category:  category,
		Color:     style.Color,
		ClassName: style.ClassName,
	}
}

// Aggregate tags owned events as organized and registrations as registered. Organized entries
// come first; an event that is both owned and registered appears once per category.
func Aggregate(owned []model.Event, regs []model.Registration, palette Palette) []Entry {
	entries := make([]Entry, 0, len(owned)+len(regs))
	for _, e := range owned {
		entries = append(entries, palette.entry(CategoryOrganized, e))
	}
	for _, r := range regs {
		ev := r.Event
		if ev.ID == 0 {
			ev.ID = r.EventID
		}
		entries = append(entries, palette.entry(CategoryRegistered, ev))
	}
	return entries
}

// Widget draws calendar entries. Destroy discards the previous render.
type Widget interface {
	Render(entries []Entry) error
	Destroy()
}

// Source is the part of the API client the aggregator reads from.
type Source interface {
	ListUserRegistrations(ctx context.Context, userID int64) ([]model.Registration, error)
	ListUserEvents(ctx context.Context, userID int64) ([]model.Event, error)
}

// Aggregator fetches a user's calendar data and renders it into a widget.
type Aggregator struct {
	source  Source
	widget  Widget
	palette Palette
}

// NewAggregator returns an Aggregator using DefaultPalette when palette is nil.
func NewAggregator(source Source, widget Widget, palette Palette) *Aggregator {
	if palette == nil {
		palette = DefaultPalette
	}
	return &Aggregator{source: source, widget: widget, palette: palette}
}

// Refresh fetches registrations, then owned events, destroys any previous render and renders the
// merged list. On a fetch error the previous render is left alone.
func (a *Aggregator) Refresh(ctx context.Context, userID int64) ([]Entry, error) {
	regs, err := a.source.ListUserRegistrations(ctx, userID)
	if err != nil {
		return nil, err
	}
	owned, err := a.source.ListUserEvents(ctx, userID)
	if err != nil {
		return nil, err
	}

	entries := Aggregate(owned, regs, a.palette)

	a.widget.Destroy()
	if err := a.widget.Render(entries); err != nil {
		return nil, err
	}
	return entries, nil
}
