package calendar

// Feed is an in-memory widget. It keeps the last rendered entries for a browser calendar to fetch.
type Feed struct {
	entries  []Entry
	rendered bool
}

// NewFeed returns an empty Feed.
func NewFeed() *Feed {
	return &Feed{}
}

// Render implements Widget.
func (f *Feed) Render(entries []Entry) error {
	f.entries = append(make([]Entry, 0, len(entries)), entries...)
	f.rendered = true
	return nil
}

// Destroy implements Widget.
func (f *Feed) Destroy() {
	f.entries = nil
	f.rendered = false
}

// Entries returns a copy of the rendered entries, or an empty slice before the first render.
func (f *Feed) Entries() []Entry {
	return append(make([]Entry, 0, len(f.entries)), f.entries...)
}

// Rendered reports whether the feed holds a live render.
func (f *Feed) Rendered() bool {
	return f.rendered
}
