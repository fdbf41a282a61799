package domain

import "context"

// Speaker represents a person giving talks.
// swagger:model Speaker
type Speaker struct {
	ID          string   `json:"id"`
	FirstName   string   `json:"first_name"`
	LastName    string   `json:"last_name"`
	Description string   `json:"description"`
	Talks       []string `json:"talks"`
}

// NewSpeaker returns a new Speaker with the given fields.
func NewSpeaker(id, firstName, lastName, description string, talks []string) *Speaker {
	return &Speaker{
		ID:          id,
		FirstName:   firstName,
		LastName:    lastName,
		Description: description,
		Talks:       talks,
	}
}

// ResolveTalks fetches the speaker's talks through r, in the order they are listed.
func (s *Speaker) ResolveTalks(ctx context.Context, r TalkReader) ([]*Talk, error) {
	return ResolveTalks(ctx, r, s.Talks)
}
