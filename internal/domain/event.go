package domain

import "context"

// Event represents a JUG evening.
// swagger:model Event
type Event struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	// Date is kept as written in the document, YYYY/MM/DD.
	Date  string   `json:"date"`
	Talks []string `json:"talks"`
}

// NewEvent returns a new Event with the given fields.
func NewEvent(id, title, date string, talks []string) *Event {
	return &Event{
		ID:    id,
		Title: title,
		Date:  date,
		Talks: talks,
	}
}

// ResolveTalks fetches the event's talks through r, in the order they are listed.
// Nothing is cached; every call reads again.
func (e *Event) ResolveTalks(ctx context.Context, r TalkReader) ([]*Talk, error) {
	return ResolveTalks(ctx, r, e.Talks)
}
