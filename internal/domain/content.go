package domain

import (
	"context"
	"fmt"
	"path"
	"strings"
)

// ContentType names a family of documents. Its value is the directory (or
// partition) the documents of that family live under.
type ContentType string

const (
	ContentEvents   ContentType = "events"
	ContentSpeakers ContentType = "speakers"
	ContentTalks    ContentType = "talks"
	ContentSponsors ContentType = "sponsors"
)

func (c ContentType) String() string { return string(c) }

// Valid reports whether c is one of the known content types.
func (c ContentType) Valid() bool {
	switch c {
	case ContentEvents, ContentSpeakers, ContentTalks, ContentSponsors:
		return true
	}
	return false
}

// ValidateID checks that id names a single document: non-empty, relative, and
// free of separators or dot elements.
func ValidateID(id string) error {
	if id == "" || id == "." || id == ".." {
		return fmt.Errorf("%w: %q", ErrInvalidID, id)
	}
	if strings.ContainsAny(id, `/\`) || strings.ContainsRune(id, 0) || path.Clean(id) != id {
		return fmt.Errorf("%w: %q", ErrInvalidID, id)
	}
	return nil
}

// DocumentStore returns the raw YAML bytes of one document.
// Get returns ErrNotFound when the identifier has no backing document.
type DocumentStore interface {
	Get(ctx context.Context, contentType ContentType, id string) ([]byte, error)
}

// TalkReader looks up a single talk. ok is false when the talk does not exist.
type TalkReader interface {
	ReadTalk(ctx context.Context, id string) (talk *Talk, ok bool, err error)
}

// ContentReader materializes typed records from documents.
// Every read returns ok=false with a nil error when no document exists.
type ContentReader interface {
	TalkReader
	ReadEvent(ctx context.Context, id string) (*Event, bool, error)
	ReadSpeaker(ctx context.Context, id string) (*Speaker, bool, error)
	ReadSponsor(ctx context.Context, id string) (*Sponsor, bool, error)
	// EventTalks reads the event and resolves its talks.
	EventTalks(ctx context.Context, id string) ([]*Talk, bool, error)
	// SpeakerTalks reads the speaker and resolves its talks.
	SpeakerTalks(ctx context.Context, id string) ([]*Talk, bool, error)
}
