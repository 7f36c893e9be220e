package model

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"
)

// Instant is a point in time exchanged as ISO-8601.
// It accepts values with or without a zone designator; zone-less values are UTC.
// It always marshals as RFC 3339 in UTC.
type Instant struct {
	time.Time
}

var instantLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04",
}

// NewInstant wraps t.
func NewInstant(t time.Time) Instant {
	return Instant{Time: t}
}

// ParseInstant parses an ISO-8601 instant, reading zone-less values as UTC.
func ParseInstant(s string) (Instant, error) {
	for _, layout := range instantLayouts {
		if t, err := time.ParseInLocation(layout, s, time.UTC); err == nil {
			return Instant{Time: t}, nil
		}
	}
	return Instant{}, fmt.Errorf("unrecognized instant %q", s)
}

// MarshalJSON implements json.Marshaler.
func (i Instant) MarshalJSON() ([]byte, error) {
	if i.IsZero() {
		return []byte("null"), nil
	}
	return json.Marshal(i.UTC().Format(time.RFC3339))
}

// UnmarshalJSON implements json.Unmarshaler.
func (i *Instant) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, []byte("null")) {
		*i = Instant{}
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("instant must be a string: %w", err)
	}
	if s == "" {
		*i = Instant{}
		return nil
	}

	parsed, err := ParseInstant(s)
	if err != nil {
		return err
	}
	*i = parsed
	return nil
}
