package services

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"gopkg.in/yaml.v3"

	"jugsite/internal/domain"
)

type contentReader struct {
	store  domain.DocumentStore
	logger *slog.Logger
}

// NewContentReader creates a ContentReader over store. Every call goes back to
// the store; nothing is cached.
func NewContentReader(store domain.DocumentStore, logger *slog.Logger) domain.ContentReader {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &contentReader{
		store:  store,
		logger: logger,
	}
}

func (r *contentReader) ReadEvent(ctx context.Context, id string) (*domain.Event, bool, error) {
	var doc eventDocument
	ok, err := r.load(ctx, domain.ContentEvents, id, &doc)
	if err != nil || !ok {
		return nil, false, err
	}
	return doc.toDomain(id), true, nil
}

func (r *contentReader) ReadSpeaker(ctx context.Context, id string) (*domain.Speaker, bool, error) {
	var doc speakerDocument
	ok, err := r.load(ctx, domain.ContentSpeakers, id, &doc)
	if err != nil || !ok {
		return nil, false, err
	}
	return doc.toDomain(id), true, nil
}

func (r *contentReader) ReadTalk(ctx context.Context, id string) (*domain.Talk, bool, error) {
	var doc talkDocument
	ok, err := r.load(ctx, domain.ContentTalks, id, &doc)
	if err != nil || !ok {
		return nil, false, err
	}
	return doc.toDomain(id), true, nil
}

func (r *contentReader) ReadSponsor(ctx context.Context, id string) (*domain.Sponsor, bool, error) {
	var doc sponsorDocument
	ok, err := r.load(ctx, domain.ContentSponsors, id, &doc)
	if err != nil || !ok {
		return nil, false, err
	}
	sponsor, err := doc.toDomain(id)
	if err != nil {
		return nil, false, fmt.Errorf("%w: %s/%s: %w", domain.ErrMalformedDocument, domain.ContentSponsors, id, err)
	}
	return sponsor, true, nil
}

func (r *contentReader) EventTalks(ctx context.Context, id string) ([]*domain.Talk, bool, error) {
	event, ok, err := r.ReadEvent(ctx, id)
	if err != nil || !ok {
		return nil, false, err
	}
	talks, err := event.ResolveTalks(ctx, r)
	if err != nil {
		return nil, false, fmt.Errorf("event %s: %w", id, err)
	}
	r.logSkipped(ctx, domain.ContentEvents, id, event.Talks, talks)
	return talks, true, nil
}

func (r *contentReader) SpeakerTalks(ctx context.Context, id string) ([]*domain.Talk, bool, error) {
	speaker, ok, err := r.ReadSpeaker(ctx, id)
	if err != nil || !ok {
		return nil, false, err
	}
	talks, err := speaker.ResolveTalks(ctx, r)
	if err != nil {
		return nil, false, fmt.Errorf("speaker %s: %w", id, err)
	}
	r.logSkipped(ctx, domain.ContentSpeakers, id, speaker.Talks, talks)
	return talks, true, nil
}

// load fetches and decodes one document into dest. ok is false when the store
// has no such document.
func (r *contentReader) load(ctx context.Context, contentType domain.ContentType, id string, dest any) (bool, error) {
	if err := domain.ValidateID(id); err != nil {
		return false, err
	}
	data, err := r.store.Get(ctx, contentType, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			r.logger.DebugContext(ctx, "document not found", "content_type", contentType, "id", id)
			return false, nil
		}
		return false, fmt.Errorf("get %s/%s: %w", contentType, id, err)
	}
	if err := decode(data, dest); err != nil {
		return false, fmt.Errorf("%w: %s/%s: %w", domain.ErrMalformedDocument, contentType, id, err)
	}
	r.logger.DebugContext(ctx, "document read", "content_type", contentType, "id", id)
	return true, nil
}

// decode reads a single YAML document. An empty document decodes to zero values.
func decode(data []byte, dest any) error {
	err := yaml.NewDecoder(bytes.NewReader(data)).Decode(dest)
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}

func (r *contentReader) logSkipped(ctx context.Context, contentType domain.ContentType, id string, ids []string, talks []*domain.Talk) {
	if len(talks) == len(ids) {
		return
	}
	found := make(map[string]struct{}, len(talks))
	for _, t := range talks {
		found[t.ID] = struct{}{}
	}
	for _, talkID := range ids {
		if _, ok := found[talkID]; !ok {
			r.logger.WarnContext(ctx, "talk reference not found", "content_type", contentType, "id", id, "talk", talkID)
		}
	}
}
