package services

import (
	"strings"

	"jugsite/internal/domain"
)

// Document shapes as written by content authors. Field names follow the YAML keys.

type eventDocument struct {
	Title string   `yaml:"title"`
	Date  string   `yaml:"date"`
	Talks []string `yaml:"talks"`
}

func (d eventDocument) toDomain(id string) *domain.Event {
	return domain.NewEvent(id, d.Title, d.Date, d.Talks)
}

type speakerDocument struct {
	FirstName   string   `yaml:"firstName"`
	LastName    string   `yaml:"lastName"`
	Description string   `yaml:"description"`
	Talks       []string `yaml:"talks"`
}

func (d speakerDocument) toDomain(id string) *domain.Speaker {
	return domain.NewSpeaker(id, d.FirstName, d.LastName, d.Description, d.Talks)
}

type talkDocument struct {
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
}

func (d talkDocument) toDomain(id string) *domain.Talk {
	return domain.NewTalk(id, d.Title, d.Description)
}

type sponsorDocument struct {
	Description string `yaml:"description"`
	Type        string `yaml:"type"`
}

// toDomain leaves Type empty when the document has no type; a type that is
// present must be a known tier.
func (d sponsorDocument) toDomain(id string) (*domain.Sponsor, error) {
	var t domain.SponsorType
	if strings.TrimSpace(d.Type) != "" {
		var err error
		if t, err = domain.ParseSponsorType(d.Type); err != nil {
			return nil, err
		}
	}
	return domain.NewSponsor(id, d.Description, t), nil
}
