package domain

import (
	"fmt"
	"strings"
)

// SponsorType is the sponsorship tier.
type SponsorType string

const (
	SponsorPlatine SponsorType = "PLATINE"
	SponsorGold    SponsorType = "GOLD"
	SponsorSilver  SponsorType = "SILVER"
	SponsorBronze  SponsorType = "BRONZE"
)

// ParseSponsorType maps a document value to a tier. Matching ignores case and
// surrounding spaces; anything else is ErrUnknownSponsorType.
func ParseSponsorType(s string) (SponsorType, error) {
	switch t := SponsorType(strings.ToUpper(strings.TrimSpace(s))); t {
	case SponsorPlatine, SponsorGold, SponsorSilver, SponsorBronze:
		return t, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownSponsorType, s)
}

// Sponsor represents a company supporting the JUG.
// swagger:model Sponsor
type Sponsor struct {
	ID          string      `json:"id"`
	Description string      `json:"description"`
	Type        SponsorType `json:"type"`
}

// NewSponsor returns a new Sponsor with the given fields.
func NewSponsor(id, description string, sponsorType SponsorType) *Sponsor {
	return &Sponsor{
		ID:          id,
		Description: description,
		Type:        sponsorType,
	}
}
