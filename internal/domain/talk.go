package domain

import (
	"context"
	"fmt"
)

// Talk is a single presentation, referenced by identifier from events and speakers.
// swagger:model Talk
type Talk struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

// NewTalk returns a new Talk with the given fields.
func NewTalk(id, title, description string) *Talk {
	return &Talk{
		ID:          id,
		Title:       title,
		Description: description,
	}
}

// ResolveTalks looks up every identifier through r, in order. Identifiers with
// no backing talk are skipped; any other failure aborts the resolution. A
// reference that is not a valid identifier is a fault of the owning document
// and is reported as ErrMalformedDocument.
func ResolveTalks(ctx context.Context, r TalkReader, ids []string) ([]*Talk, error) {
	talks := make([]*Talk, 0, len(ids))
	for _, id := range ids {
		if ValidateID(id) != nil {
			return nil, fmt.Errorf("%w: talk reference %q is not a valid identifier", ErrMalformedDocument, id)
		}
		t, ok, err := r.ReadTalk(ctx, id)
		if err != nil {
			return nil, fmt.Errorf("resolve talk %q: %w", id, err)
		}
		if !ok {
			continue
		}
		talks = append(talks, t)
	}
	return talks, nil
}
